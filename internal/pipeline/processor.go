package pipeline

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/kurochkinivan/payment_ingestor/internal/domain"
	"github.com/kurochkinivan/payment_ingestor/internal/metrics"
	"github.com/kurochkinivan/payment_ingestor/internal/parser"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

const (
	readBufferSize = 4096
	// longest line kept in memory, far above any valid record
	maxLineSize = 1 << 16
)

var fileNamePattern = regexp.MustCompile(`^BCP_\d{8}_\d{6}_[A-Za-z0-9]{4,}$`)

// FileProcessingError is returned when a file could not be read or its batch
// could not be persisted.
type FileProcessingError struct {
	Path string
	Err  error
}

func (e *FileProcessingError) Error() string {
	return fmt.Sprintf("failed to process file %q: %s", e.Path, e.Err)
}

func (e *FileProcessingError) Unwrap() error {
	return e.Err
}

// BatchProcessor turns a single input file into a persisted and reported batch.
type BatchProcessor struct {
	log      *slog.Logger
	inputDir string
	writer   BatchWriter
	reporter BatchReporter
}

func NewBatchProcessor(log *slog.Logger, inputDir string, writer BatchWriter, reporter BatchReporter) *BatchProcessor {
	return &BatchProcessor{
		log:      log,
		inputDir: filepath.Clean(inputDir),
		writer:   writer,
		reporter: reporter,
	}
}

// ProcessFile reads the file at path line by line, classifies every payment,
// persists the batch and writes its report. Ineligible files are skipped
// without error.
func (p *BatchProcessor) ProcessFile(ctx context.Context, path string) error {
	fileName := filepath.Base(path)
	log := p.log.With(slog.String("filename", fileName))

	if !p.Eligible(path) {
		log.InfoContext(ctx, "file is not eligible for processing, skipping", slog.String("path", path))
		metrics.FilesProcessed.WithLabelValues(metrics.OutcomeIneligible).Inc()
		return nil
	}

	start := time.Now()
	defer func() { metrics.FileProcessingDuration.Observe(time.Since(start).Seconds()) }()

	batch := domain.NewBatch(fileName)
	log = log.With(slog.String("batch_id", batch.ID.String()))

	log.InfoContext(ctx, "processing file")

	if err := p.writer.MarkProcessing(ctx, batch); err != nil {
		log.WarnContext(ctx, "failed to mark file as processing", slog.String("err", err.Error()))
	}

	if err := p.process(ctx, log, path, batch); err != nil {
		metrics.FilesProcessed.WithLabelValues(metrics.OutcomeFailed).Inc()

		// the batch context may already be cancelled
		if markErr := p.writer.MarkFailed(context.WithoutCancel(ctx), batch, err); markErr != nil {
			log.WarnContext(ctx, "failed to mark file as failed", slog.String("err", markErr.Error()))
		}

		return &FileProcessingError{Path: path, Err: err}
	}

	return nil
}

func (p *BatchProcessor) process(ctx context.Context, log *slog.Logger, path string, batch *domain.Batch) error {
	if err := p.readBatch(ctx, log, path, batch); err != nil {
		return err
	}

	log = log.With(
		slog.Int("payments_count", len(batch.Payments)),
		slog.Int("invalid_lines", batch.InvalidLines),
		slog.Int("duplicates", batch.Duplicates),
	)

	if batch.Empty() {
		log.WarnContext(ctx, "no valid payments to save or report")
		metrics.FilesProcessed.WithLabelValues(metrics.OutcomeEmpty).Inc()

		if err := p.writer.MarkEmpty(ctx, batch); err != nil {
			log.WarnContext(ctx, "failed to mark file as empty", slog.String("err", err.Error()))
		}

		return nil
	}

	batch.Finalize()

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("cancelled before saving batch: %w", err)
	}

	if err := p.writer.Write(ctx, batch); err != nil {
		return fmt.Errorf("failed to save batch: %w", err)
	}

	for _, payment := range batch.Payments {
		metrics.PaymentsProcessed.WithLabelValues(payment.Status.String()).Inc()
	}

	outcome := metrics.OutcomePartial
	if batch.Clean() {
		outcome = metrics.OutcomeFullSaved
	}
	metrics.FilesProcessed.WithLabelValues(outcome).Inc()

	log.InfoContext(ctx, "batch saved, generating report", slog.Bool("clean", batch.Clean()))

	p.reporter.CreateReport(ctx, batch.Payments, batch.FileName)

	return nil
}

func (p *BatchProcessor) readBatch(ctx context.Context, log *slog.Logger, path string, batch *domain.Batch) (err error) {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open file: %w", err)
	}
	defer func() { err = errors.Join(err, f.Close()) }()

	decoder := unicode.BOMOverride(unicode.UTF8.NewDecoder())

	reader := bufio.NewReaderSize(transform.NewReader(f, decoder), readBufferSize)

	lineNumber := 0
	for {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("cancelled while reading file: %w", err)
		}

		line, overlong, err := readLine(reader)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return fmt.Errorf("failed to read file at line %d: %w", lineNumber+1, err)
		}

		lineNumber++

		if overlong {
			log.WarnContext(ctx, "invalid line, skipping",
				slog.Int("line", lineNumber),
				slog.String("err", fmt.Sprintf("line exceeds %d bytes", maxLineSize)),
			)
			batch.AddInvalid()
			metrics.InvalidLines.Inc()
			continue
		}

		payment, err := parser.ParseLine(line, batch.FileName)
		if err != nil {
			log.WarnContext(ctx, "invalid line, skipping",
				slog.Int("line", lineNumber),
				slog.String("err", err.Error()),
			)
			batch.AddInvalid()
			metrics.InvalidLines.Inc()
			continue
		}

		batch.Add(payment)

		if payment.Status == domain.StatusDuplicate {
			log.InfoContext(ctx, "duplicate payment",
				slog.Int("line", lineNumber),
				slog.String("payment_id", payment.PaymentID),
			)
		}
	}

	return nil
}

// readLine returns the next line without its terminator. A line longer than
// maxLineSize is consumed up to its end and reported as overlong with no
// content. io.EOF is returned only when no line is left.
func readLine(r *bufio.Reader) (line string, overlong bool, err error) {
	var (
		buf  []byte
		read bool
	)

	for {
		chunk, isPrefix, readErr := r.ReadLine()
		if readErr != nil {
			if errors.Is(readErr, io.EOF) && read {
				return string(buf), overlong, nil
			}
			return "", false, readErr
		}
		read = true

		if !overlong {
			buf = append(buf, chunk...)
			if len(buf) > maxLineSize {
				overlong, buf = true, nil
			}
		}

		if !isPrefix {
			return string(buf), overlong, nil
		}
	}
}

// Eligible reports whether path lies inside the input directory and carries a
// well-formed drop name.
func (p *BatchProcessor) Eligible(path string) bool {
	rel, err := filepath.Rel(p.inputDir, filepath.Clean(path))
	if err != nil || rel == "." || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return false
	}

	return ValidFileName(filepath.Base(path))
}

func ValidFileName(name string) bool {
	return fileNamePattern.MatchString(name)
}
