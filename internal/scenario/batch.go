package scenario

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/peterkuimelis/clash/internal/game"
	"github.com/peterkuimelis/clash/internal/log"
)

// Report is the result of resolving one scenario file.
type Report struct {
	Path    string
	Steps   []log.BattleStep
	Outcome game.Outcome
	Err     error // load, equip or fight failure; Outcome is unset when non-nil
}

// RunFiles resolves scenario files concurrently, at most limit at a time
// (limit <= 0 means no limit). Every file gets its own creatures, players and
// logger. A failing file is reported in its Report and does not stop the
// others; the returned error is only ever the context's.
func RunFiles(ctx context.Context, paths []string, defaults Defaults, limit int) ([]Report, error) {
	reports := make([]Report, len(paths))
	for i, path := range paths {
		reports[i].Path = path
	}

	g, gctx := errgroup.WithContext(ctx)
	if limit > 0 {
		g.SetLimit(limit)
	}
	for i := range reports {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			runFile(&reports[i], defaults)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return reports, err
	}
	return reports, nil
}

func runFile(r *Report, defaults Defaults) {
	s, err := Load(r.Path, defaults)
	if err != nil {
		r.Err = err
		return
	}
	logger := log.NewMemoryLogger()
	res, err := s.Run(logger)
	r.Steps = logger.Steps()
	if err != nil {
		r.Err = err
		return
	}
	r.Outcome = res.Outcome
}
