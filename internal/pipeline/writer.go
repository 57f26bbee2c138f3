package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/kurochkinivan/payment_ingestor/internal/domain"
)

var ErrStatusNotFinal = errors.New("payment status is not final")

// Writer persists batches together with their file audit rows.
type Writer struct {
	log           *slog.Logger
	paymentsSaver PaymentsSaver
	fileRecorder  FileRecorder
	transactor    Transactor
}

func NewWriter(
	log *slog.Logger,
	paymentsSaver PaymentsSaver,
	fileRecorder FileRecorder,
	transactor Transactor,
) *Writer {
	return &Writer{
		log:           log,
		paymentsSaver: paymentsSaver,
		fileRecorder:  fileRecorder,
		transactor:    transactor,
	}
}

// Write saves all payments of the batch and marks the file as done in a single
// transaction. Either everything is persisted or nothing is.
func (w *Writer) Write(ctx context.Context, batch *domain.Batch) error {
	for i, p := range batch.Payments {
		if !p.Status.Final() {
			return fmt.Errorf("payment #%d (%s): %w: %s", i+1, p.PaymentID, ErrStatusNotFinal, p.Status)
		}
	}

	log := w.log.With(
		slog.String("filename", batch.FileName),
		slog.String("batch_id", batch.ID.String()),
	)

	log.DebugContext(ctx, "saving batch to database", slog.Int("payments_count", len(batch.Payments)))

	err := w.transactor.WithTransaction(ctx, func(ctx context.Context) error {
		saved, err := w.paymentsSaver.SaveAll(ctx, batch.Payments)
		if err != nil {
			return fmt.Errorf("failed to save payments: %w", err)
		}

		if len(saved) != len(batch.Payments) {
			return fmt.Errorf("failed to save payments: saved %d, expected %d", len(saved), len(batch.Payments))
		}

		batch.Payments = saved

		err = w.fileRecorder.UpdateOrCreateFile(ctx, w.file(batch, domain.FileStatusDone, ""))
		if err != nil {
			return fmt.Errorf("failed to update file status: %w", err)
		}

		return nil
	})
	if err != nil {
		return err
	}

	log.DebugContext(ctx, "batch saved successfully")

	return nil
}

func (w *Writer) MarkProcessing(ctx context.Context, batch *domain.Batch) error {
	return w.fileRecorder.UpdateOrCreateFile(ctx, &domain.File{
		Name:    batch.FileName,
		BatchID: batch.ID,
		Status:  domain.FileStatusProcessing,
	})
}

func (w *Writer) MarkEmpty(ctx context.Context, batch *domain.Batch) error {
	return w.fileRecorder.UpdateOrCreateFile(ctx, w.file(batch, domain.FileStatusEmpty, ""))
}

func (w *Writer) MarkFailed(ctx context.Context, batch *domain.Batch, cause error) error {
	return w.fileRecorder.UpdateOrCreateFile(ctx, w.file(batch, domain.FileStatusError, cause.Error()))
}

func (w *Writer) file(batch *domain.Batch, status domain.FileStatus, errMsg string) *domain.File {
	now := time.Now()
	return &domain.File{
		Name:          batch.FileName,
		BatchID:       batch.ID,
		Status:        status,
		PaymentsCount: len(batch.Payments),
		InvalidLines:  batch.InvalidLines,
		Duplicates:    batch.Duplicates,
		ErrorMessage:  errMsg,
		ProcessedAt:   &now,
	}
}
