package pipeline

import (
	"context"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/kurochkinivan/payment_ingestor/internal/domain"
	"github.com/kurochkinivan/payment_ingestor/internal/metrics"
)

const reportPrefix = "Report "

const (
	destinationSuccess = "success"
	destinationError   = "error"
)

type Reporter struct {
	log             *slog.Logger
	successDir      string
	errorDir        string
	sink            ReportSink
	reportGenerator ReportGenerator // optional PDF companion
}

func NewReporter(
	log *slog.Logger,
	successDir string,
	errorDir string,
	sink ReportSink,
	reportGenerator ReportGenerator,
) *Reporter {
	return &Reporter{
		log:             log,
		successDir:      successDir,
		errorDir:        errorDir,
		sink:            sink,
		reportGenerator: reportGenerator,
	}
}

// CreateReport writes one line per payment, in order, to the success
// directory when every payment is FULL_SAVED and to the error directory
// otherwise. Failures are logged and never returned.
func (r *Reporter) CreateReport(ctx context.Context, payments []*domain.Payment, fileName string) {
	destination, dir := destinationError, r.errorDir
	if domain.AllFullSaved(payments) {
		destination, dir = destinationSuccess, r.successDir
	}

	path := ReportPath(dir, fileName)

	log := r.log.With(
		slog.String("filename", fileName),
		slog.String("report", path),
		slog.Int("payments_count", len(payments)),
	)

	log.InfoContext(ctx, "writing report")

	if err := r.sink.Write(path, RenderReport(payments)); err != nil {
		log.ErrorContext(ctx, "failed to write report", slog.String("err", err.Error()))
		metrics.ReportsWritten.WithLabelValues(destination, "failed").Inc()
		return
	}

	metrics.ReportsWritten.WithLabelValues(destination, "ok").Inc()
	log.InfoContext(ctx, "report saved")

	if r.reportGenerator == nil {
		return
	}

	pdf, err := r.reportGenerator.GenerateReport(fileName, payments)
	if err != nil {
		log.ErrorContext(ctx, "failed to generate pdf report", slog.String("err", err.Error()))
		return
	}

	if err := r.sink.Write(path+".pdf", pdf); err != nil {
		log.ErrorContext(ctx, "failed to write pdf report", slog.String("err", err.Error()))
	}
}

func ReportPath(dir, fileName string) string {
	return filepath.Join(dir, reportPrefix+fileName)
}

func RenderReport(payments []*domain.Payment) []byte {
	var sb strings.Builder
	for _, p := range payments {
		sb.WriteString(p.String())
		sb.WriteByte('\n')
	}
	return []byte(sb.String())
}
