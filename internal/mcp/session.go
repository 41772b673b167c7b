package mcp

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/peterkuimelis/clash/internal/log"
	"github.com/peterkuimelis/clash/internal/scenario"
)

// Session keeps the most recent battle resolved by this server process.
type Session struct {
	defaults scenario.Defaults

	mu   sync.Mutex
	last *ToolResponse
}

// NewSession creates a session whose scenarios fall back to defaults for
// player gold and seed.
func NewSession(defaults scenario.Defaults) *Session {
	return &Session{defaults: defaults}
}

// Resolve parses and fights a scenario document. A malformed document is an
// error; equip and precondition failures are reported in the response
// alongside the steps logged so far.
func (s *Session) Resolve(doc string) (*ToolResponse, error) {
	sc, err := scenario.Parse([]byte(doc), s.defaults)
	if err != nil {
		return nil, err
	}

	logger := log.NewMemoryLogger()
	res, runErr := sc.Run(logger)

	resp := &ToolResponse{
		Steps:    stepViews(logger.Steps()),
		Attacker: sideView(sc.Attacker),
		Defender: sideView(sc.Defender),
	}
	if res != nil {
		resp.Outcome = res.Outcome.String()
		resp.Description = res.Outcome.Description()
	}
	if runErr != nil {
		resp.Error = runErr.Error()
	}

	s.mu.Lock()
	s.last = resp
	s.mu.Unlock()
	return resp, nil
}

// Last returns the response of the most recent Resolve call.
func (s *Session) Last() (*ToolResponse, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.last, s.last != nil
}

// respondJSON marshals a tool response to a JSON string.
func respondJSON(resp any) string {
	data, err := json.Marshal(resp)
	if err != nil {
		return fmt.Sprintf(`{"error": "marshal error: %v"}`, err)
	}
	return string(data)
}
