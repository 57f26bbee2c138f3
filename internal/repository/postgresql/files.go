package postgresql

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/kurochkinivan/payment_ingestor/internal/domain"
)

const TableFiles = "files"

type FilesRepository struct {
	pool *pgxpool.Pool
	qb   sq.StatementBuilderType
}

func NewFilesRepository(pool *pgxpool.Pool) *FilesRepository {
	return &FilesRepository{
		pool: pool,
		qb:   sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

func (r *FilesRepository) Files(ctx context.Context) ([]*domain.File, error) {
	db := extractDB(ctx, r.pool)

	sql, args, err := r.qb.
		Select(
			"name",
			"batch_id",
			"status",
			"payments_count",
			"invalid_lines",
			"duplicates",
			"error_message",
			"processed_at",
		).
		From(TableFiles).
		OrderBy("processed_at DESC NULLS FIRST", "name").
		ToSql()
	if err != nil {
		return nil, createQueryError(err)
	}

	rows, err := db.Query(ctx, sql, args...)
	if err != nil {
		return nil, executeQueryError(err)
	}

	files, err := pgx.CollectRows(rows, pgx.RowToAddrOfStructByNameLax[domain.File])
	if err != nil {
		return nil, collectRowsError(err)
	}

	return files, nil
}

func (r *FilesRepository) UpdateOrCreateFile(ctx context.Context, file *domain.File) error {
	db := extractDB(ctx, r.pool)

	sql, args, err := r.qb.
		Insert(TableFiles).
		Columns(
			"name",
			"batch_id",
			"status",
			"payments_count",
			"invalid_lines",
			"duplicates",
			"error_message",
			"processed_at",
		).
		Values(
			file.Name,
			file.BatchID,
			file.Status,
			file.PaymentsCount,
			file.InvalidLines,
			file.Duplicates,
			file.ErrorMessage,
			file.ProcessedAt,
		).
		Suffix(`ON CONFLICT (name) DO UPDATE SET
			batch_id = EXCLUDED.batch_id,
			status = EXCLUDED.status,
			payments_count = EXCLUDED.payments_count,
			invalid_lines = EXCLUDED.invalid_lines,
			duplicates = EXCLUDED.duplicates,
			error_message = EXCLUDED.error_message,
			processed_at = EXCLUDED.processed_at
		`).
		ToSql()
	if err != nil {
		return createQueryError(err)
	}

	_, err = db.Exec(ctx, sql, args...)
	if err != nil {
		return executeQueryError(err)
	}

	return nil
}

// FailInterruptedFiles marks files left in processing by a previous run as
// failed. Their batches were never committed.
func (r *FilesRepository) FailInterruptedFiles(ctx context.Context) (int64, error) {
	db := extractDB(ctx, r.pool)

	sql, args, err := r.qb.
		Update(TableFiles).
		Set("status", domain.FileStatusError).
		Set("error_message", "interrupted before completion").
		Where(sq.Eq{"status": domain.FileStatusProcessing}).
		ToSql()
	if err != nil {
		return 0, createQueryError(err)
	}

	tag, err := db.Exec(ctx, sql, args...)
	if err != nil {
		return 0, executeQueryError(err)
	}

	return tag.RowsAffected(), nil
}
