package log

import (
	"fmt"
	"io"
	"strings"
)

// StepLogger is the interface for logging battle steps.
type StepLogger interface {
	Log(step BattleStep)
	Steps() []BattleStep
}

// --- MemoryLogger: stores steps in memory for test assertions ---

type MemoryLogger struct {
	steps []BattleStep
	seq   int
}

func NewMemoryLogger() *MemoryLogger {
	return &MemoryLogger{}
}

func (l *MemoryLogger) Log(step BattleStep) {
	l.seq++
	step.Seq = l.seq
	l.steps = append(l.steps, step)
}

// Steps returns a copy of the logged steps, so callers never alias the log.
func (l *MemoryLogger) Steps() []BattleStep {
	out := make([]BattleStep, len(l.steps))
	copy(out, l.steps)
	return out
}

// StepsOfType returns all steps matching the given type.
func (l *MemoryLogger) StepsOfType(t StepType) []BattleStep {
	var result []BattleStep
	for _, s := range l.steps {
		if s.Type == t {
			result = append(result, s)
		}
	}
	return result
}

// Count returns how many steps of the given type were logged.
func (l *MemoryLogger) Count(t StepType) int {
	return len(l.StepsOfType(t))
}

// LastStep returns the most recent step, or a zero step if none.
func (l *MemoryLogger) LastStep() BattleStep {
	if len(l.steps) == 0 {
		return BattleStep{}
	}
	return l.steps[len(l.steps)-1]
}

// --- TextLogger: writes human-readable lines to an io.Writer ---

type TextLogger struct {
	MemoryLogger
	w io.Writer
}

func NewTextLogger(w io.Writer) *TextLogger {
	return &TextLogger{w: w}
}

func (l *TextLogger) Log(step BattleStep) {
	l.MemoryLogger.Log(step)
	fmt.Fprintln(l.w, FormatStep(l.LastStep()))
}

// --- Formatting ---

// FormatStep formats a single step as a human-readable line.
func FormatStep(s BattleStep) string {
	phase := s.Phase
	// Pad phase to 16 chars for alignment
	for len(phase) < 16 {
		phase += " "
	}
	return fmt.Sprintf("#%-3d %s| %s", s.Seq, phase, s.Describe())
}

// FormatAll formats all steps as a multi-line string.
func FormatAll(steps []BattleStep) string {
	var sb strings.Builder
	for _, s := range steps {
		sb.WriteString(FormatStep(s))
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Filter returns the steps of the given type from an arbitrary step slice.
func Filter(steps []BattleStep, t StepType) []BattleStep {
	var result []BattleStep
	for _, s := range steps {
		if s.Type == t {
			result = append(result, s)
		}
	}
	return result
}
