package pipeline

import (
	"context"

	"github.com/kurochkinivan/payment_ingestor/internal/domain"
)

type FileRecorder interface {
	UpdateOrCreateFile(ctx context.Context, file *domain.File) error
}

type PaymentsSaver interface {
	SaveAll(ctx context.Context, payments []*domain.Payment) ([]*domain.Payment, error)
}

type Transactor interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

type ReportSink interface {
	Write(path string, content []byte) error
}

type ReportGenerator interface {
	GenerateReport(sourceFile string, payments []*domain.Payment) ([]byte, error)
}

type FileProcessor interface {
	ProcessFile(ctx context.Context, path string) error
}

type BatchWriter interface {
	MarkProcessing(ctx context.Context, batch *domain.Batch) error
	MarkEmpty(ctx context.Context, batch *domain.Batch) error
	MarkFailed(ctx context.Context, batch *domain.Batch, cause error) error
	Write(ctx context.Context, batch *domain.Batch) error
}

type BatchReporter interface {
	CreateReport(ctx context.Context, payments []*domain.Payment, fileName string)
}
