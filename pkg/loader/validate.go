package loader

import (
	"context"
	"runtime"
	"sync"

	"golang.org/x/sync/errgroup"
)

// ValidateAll loads every listed pipeline and returns the failures keyed by pipeline name. Pipelines are loaded
// concurrently, nothing is evaluated. The returned error is only set when the root cannot be listed or ctx is
// done.
func (l *Loader) ValidateAll(ctx context.Context) (map[string]error, error) {
	names, err := l.List()
	if err != nil {
		return nil, err
	}

	var mu sync.Mutex

	failures := make(map[string]error)

	errGrp, dCtx := errgroup.WithContext(ctx)
	errGrp.SetLimit(runtime.GOMAXPROCS(0))

	for _, name := range names {
		errGrp.Go(func() error {
			if err := dCtx.Err(); err != nil {
				return err
			}

			_, _, err := l.Load(name)
			if err != nil {
				l.logger.Debug("pipeline failed validation", "pipeline", name, "error", err)

				mu.Lock()
				failures[name] = err
				mu.Unlock()
			}

			return nil
		})
	}

	err = errGrp.Wait()
	if err != nil {
		return nil, err
	}

	return failures, nil
}
