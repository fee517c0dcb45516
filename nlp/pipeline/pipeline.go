// Package pipeline scores a JSON Lines stream of documents concurrently and
// writes one report per document in input order.
package pipeline

import (
	"context"
	"io"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/oarkflow/summarise/nlp/engine"
	"github.com/oarkflow/summarise/nlp/export"
	"github.com/oarkflow/summarise/nlp/streaming"
)

// Runner scores one document. *engine.Engine satisfies it.
type Runner interface {
	Run(ctx context.Context, req engine.Request) (*export.Report, error)
}

type job struct {
	seq int
	req engine.Request
}

type result struct {
	seq int
	rep *export.Report
}

// Stats summarises a batch.
type Stats struct {
	Documents int
	Failed    int
}

// Run reads documents from r, scores them on workers goroutines and writes
// the reports to w. A document that fails still yields a report carrying its
// error; only read, decode and write errors abort the batch.
func Run(ctx context.Context, r io.Reader, w io.Writer, run Runner, workers int, log *slog.Logger) (Stats, error) {
	if workers < 1 {
		workers = 1
	}
	if log == nil {
		log = slog.Default()
	}
	g, ctx := errgroup.WithContext(ctx)
	jobs := make(chan job)
	results := make(chan result, workers)

	// Reader → jobs
	g.Go(func() error {
		defer close(jobs)
		seq := 0
		return streaming.ProcessDocuments(r, func(_ int, req engine.Request) error {
			select {
			case jobs <- job{seq: seq, req: req}:
				seq++
				return nil
			case <-ctx.Done():
				return ctx.Err()
			}
		})
	})

	// jobs → results
	workerGroup, wctx := errgroup.WithContext(ctx)
	for i := 0; i < workers; i++ {
		workerGroup.Go(func() error {
			for j := range jobs {
				rep, err := run.Run(wctx, j.req)
				if err != nil {
					rep = &export.Report{ID: j.req.ID, Error: err.Error()}
				}
				select {
				case results <- result{seq: j.seq, rep: rep}:
				case <-wctx.Done():
					return wctx.Err()
				}
			}
			return nil
		})
	}
	g.Go(func() error {
		defer close(results)
		return workerGroup.Wait()
	})

	// results → w, reordered by sequence number
	var stats Stats
	g.Go(func() error {
		pending := make(map[int]*export.Report)
		next := 0
		for res := range results {
			pending[res.seq] = res.rep
			for {
				rep, ok := pending[next]
				if !ok {
					break
				}
				delete(pending, next)
				next++
				stats.Documents++
				if rep.Error != "" {
					stats.Failed++
				}
				if err := export.Write(w, rep); err != nil {
					return err
				}
			}
		}
		return nil
	})

	err := g.Wait()
	log.Info("batch finished", slog.Int("documents", stats.Documents), slog.Int("failed", stats.Failed))
	return stats, err
}
