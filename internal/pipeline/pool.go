package pipeline

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"
)

// Pool runs a fixed number of workers feeding files to a FileProcessor.
type Pool struct {
	log          *slog.Logger
	workers      int
	drainTimeout time.Duration
	files        <-chan string
	processor    FileProcessor
}

func NewPool(
	log *slog.Logger,
	workers int,
	drainTimeout time.Duration,
	files <-chan string,
	processor FileProcessor,
) *Pool {
	return &Pool{
		log:          log,
		workers:      max(workers, 1),
		drainTimeout: drainTimeout,
		files:        files,
		processor:    processor,
	}
}

// Run processes files until the channel is closed or ctx is done. Once ctx is
// done no new file is started; files in flight get drainTimeout to finish
// before their context is cancelled.
func (p *Pool) Run(ctx context.Context) error {
	workCtx, cancel := context.WithCancel(context.WithoutCancel(ctx))
	defer cancel()

	var g errgroup.Group
	for range p.workers {
		g.Go(func() error {
			p.work(ctx, workCtx)
			return nil
		})
	}

	done := make(chan struct{})
	go func() {
		_ = g.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
	}

	p.log.InfoContext(ctx, "waiting for files in flight", slog.Duration("drain_timeout", p.drainTimeout))

	timer := time.NewTimer(p.drainTimeout)
	defer timer.Stop()

	select {
	case <-done:
		p.log.InfoContext(ctx, "all files in flight finished")
	case <-timer.C:
		p.log.WarnContext(ctx, "drain timeout exceeded, cancelling files in flight")
		cancel()
		<-done
	}

	return ctx.Err()
}

func (p *Pool) work(intake, workCtx context.Context) {
	for {
		select {
		case path, ok := <-p.files:
			if !ok {
				return
			}

			if intake.Err() != nil {
				p.log.WarnContext(workCtx, "shutting down, file not started", slog.String("filename", path))
				return
			}

			p.process(workCtx, path)

		case <-intake.Done():
			return
		}
	}
}

func (p *Pool) process(ctx context.Context, path string) {
	err := p.processor.ProcessFile(ctx, path)
	if err == nil {
		return
	}

	var procErr *FileProcessingError
	if errors.As(err, &procErr) {
		path = procErr.Path
		err = procErr.Err
	}

	p.log.ErrorContext(ctx, "failed to process file",
		slog.String("filename", path),
		slog.String("err", err.Error()),
	)
}
