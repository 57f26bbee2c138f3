package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"path/filepath"
	"time"

	"github.com/kurochkinivan/payment_ingestor/internal/config"
	v1 "github.com/kurochkinivan/payment_ingestor/internal/controller/http/v1"
	"github.com/kurochkinivan/payment_ingestor/internal/infrastructure/report_generator"
	"github.com/kurochkinivan/payment_ingestor/internal/infrastructure/reportsink"
	"github.com/kurochkinivan/payment_ingestor/internal/pipeline"
	"github.com/kurochkinivan/payment_ingestor/internal/repository/postgresql"
	"golang.org/x/sync/errgroup"
)

const (
	filesBuffer     = 100
	shutdownTimeout = 5 * time.Second
)

type App struct {
	log *slog.Logger
	cfg *config.Config
}

func New(log *slog.Logger, cfg *config.Config) *App {
	return &App{
		log: log,
		cfg: cfg,
	}
}

func (a *App) Run(ctx context.Context) error {
	inputDir, err := filepath.Abs(a.cfg.InputDirectory)
	if err != nil {
		return fmt.Errorf("failed to resolve input directory: %w", err)
	}
	a.cfg.InputDirectory = inputDir

	a.log.InfoContext(ctx, "starting app",
		slog.String("input_dir", a.cfg.InputDirectory),
		slog.String("report_success_dir", a.cfg.ReportSuccessDirectory),
		slog.String("report_error_dir", a.cfg.ReportErrorDirectory),
		slog.Int("workers", a.cfg.Workers),
		slog.Duration("rescan_interval", a.cfg.RescanInterval),
		slog.Duration("settle_delay", a.cfg.SettleDelay),
	)

	a.log.InfoContext(ctx, "establishing postgresql connection",
		slog.String("postgresql_host", a.cfg.PostgreSQL.Host),
		slog.String("postgresql_port", a.cfg.PostgreSQL.Port),
		slog.String("postgresql_dbname", a.cfg.PostgreSQL.DBName),
	)

	pool, err := postgresql.NewConnection(ctx, a.log, a.cfg.PostgreSQL)
	if err != nil {
		return fmt.Errorf("failed to create db connection: %w", err)
	}
	defer pool.Close()

	filesRepository := postgresql.NewFilesRepository(pool)
	paymentsRepository := postgresql.NewPaymentsRepository(pool)
	txManager := postgresql.NewTxManager(pool)

	interrupted, err := filesRepository.FailInterruptedFiles(ctx)
	if err != nil {
		return fmt.Errorf("failed to reset interrupted files: %w", err)
	}
	if interrupted > 0 {
		a.log.WarnContext(ctx, "files interrupted by previous run marked as failed", slog.Int64("count", interrupted))
	}

	return a.startPipeline(ctx, filesRepository, paymentsRepository, txManager)
}

func (a *App) startPipeline(
	ctx context.Context,
	filesRepo *postgresql.FilesRepository,
	paymentsRepo *postgresql.PaymentsRepository,
	txManager *postgresql.TxManager,
) error {
	files := make(chan string, filesBuffer)

	var pdf pipeline.ReportGenerator
	if a.cfg.ReportPDF {
		pdf = report_generator.New()
	}

	writer := pipeline.NewWriter(a.log, paymentsRepo, filesRepo, txManager)
	reporter := pipeline.NewReporter(
		a.log,
		a.cfg.ReportSuccessDirectory,
		a.cfg.ReportErrorDirectory,
		reportsink.New(),
		pdf,
	)
	processor := pipeline.NewBatchProcessor(a.log, a.cfg.InputDirectory, writer, reporter)

	watcher := pipeline.NewWatcher(
		a.log,
		a.cfg.InputDirectory,
		a.cfg.RescanInterval,
		a.cfg.SettleDelay,
		files,
		pipeline.NewProcessedSet(),
	)
	workers := pipeline.NewPool(a.log, a.cfg.Workers, a.cfg.DrainTimeout, files, processor)

	erg, ctx := errgroup.WithContext(ctx)

	erg.Go(func() error {
		a.log.InfoContext(ctx, "watcher started")
		return watcher.Run(ctx)
	})

	erg.Go(func() error {
		a.log.InfoContext(ctx, "worker pool started", slog.Int("workers", a.cfg.Workers))
		return workers.Run(ctx)
	})

	if a.cfg.HTTP.Enabled {
		a.serveHTTP(ctx, erg, v1.NewServer(a.cfg.HTTP, paymentsRepo, filesRepo))
	}

	a.log.InfoContext(ctx, "all components started")

	if err := erg.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		a.log.ErrorContext(ctx, "pipeline stopped with error", slog.String("err", err.Error()))

		return err
	}

	a.log.InfoContext(ctx, "pipeline stopped gracefully")

	return nil
}

func (a *App) serveHTTP(ctx context.Context, erg *errgroup.Group, server *v1.Server) {
	erg.Go(func() error {
		a.log.InfoContext(ctx, "starting http server",
			slog.String("addr", net.JoinHostPort(a.cfg.HTTP.Host, a.cfg.HTTP.Port)),
		)

		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server error: %w", err)
		}

		return nil
	})

	erg.Go(func() error {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		return server.Shutdown(shutdownCtx)
	})
}
