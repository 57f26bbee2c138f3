package postgresql

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/kurochkinivan/payment_ingestor/internal/domain"
)

const TablePayments = "payments"

var paymentColumns = []string{
	"id",
	"record_number",
	"payment_id",
	"company_name",
	"payer_tax_id",
	"amount",
	"status_code",
	"file_name",
}

type PaymentsRepository struct {
	pool *pgxpool.Pool
	qb   sq.StatementBuilderType
}

func NewPaymentsRepository(pool *pgxpool.Pool) *PaymentsRepository {
	return &PaymentsRepository{
		pool: pool,
		qb:   sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

func (r *PaymentsRepository) insertQuery(p *domain.Payment) (string, []any, error) {
	return r.qb.
		Insert(TablePayments).
		Columns(
			"record_number",
			"payment_id",
			"company_name",
			"payer_tax_id",
			"amount",
			"status_code",
			"file_name",
		).
		Values(
			p.RecordNumber,
			p.PaymentID,
			p.CompanyName,
			p.PayerTaxID,
			p.Amount,
			int(p.Status),
			p.FileName,
		).
		Suffix("RETURNING id").
		ToSql()
}

// Save inserts p and sets its ID.
func (r *PaymentsRepository) Save(ctx context.Context, p *domain.Payment) (*domain.Payment, error) {
	db := extractDB(ctx, r.pool)

	sql, args, err := r.insertQuery(p)
	if err != nil {
		return nil, createQueryError(err)
	}

	if err := db.QueryRow(ctx, sql, args...).Scan(&p.ID); err != nil {
		return nil, scanRowError(err)
	}

	return p, nil
}

// SaveAll inserts payments in a single round trip and sets their IDs, keeping
// the input order.
func (r *PaymentsRepository) SaveAll(ctx context.Context, payments []*domain.Payment) ([]*domain.Payment, error) {
	if len(payments) == 0 {
		return payments, nil
	}

	db := extractDB(ctx, r.pool)

	batch := &pgx.Batch{}
	for _, p := range payments {
		sql, args, err := r.insertQuery(p)
		if err != nil {
			return nil, createQueryError(err)
		}
		batch.Queue(sql, args...)
	}

	results := db.SendBatch(ctx, batch)

	for i, p := range payments {
		if err := results.QueryRow().Scan(&p.ID); err != nil {
			return nil, errors.Join(fmt.Errorf("failed to save payment #%d: %w", i+1, scanRowError(err)), results.Close())
		}
	}

	if err := results.Close(); err != nil {
		return nil, executeQueryError(err)
	}

	return payments, nil
}

func (r *PaymentsRepository) FindByID(ctx context.Context, id int64) (*domain.Payment, error) {
	return r.findOne(ctx, sq.Eq{"id": id})
}

// FindByPaymentID returns the most recently saved payment with paymentID.
// Payment ids are only unique within a single file.
func (r *PaymentsRepository) FindByPaymentID(ctx context.Context, paymentID string) (*domain.Payment, error) {
	return r.findOne(ctx, sq.Eq{"payment_id": paymentID})
}

func (r *PaymentsRepository) findOne(ctx context.Context, where sq.Eq) (*domain.Payment, error) {
	db := extractDB(ctx, r.pool)

	sql, args, err := r.qb.
		Select(paymentColumns...).
		From(TablePayments).
		Where(where).
		OrderBy("id DESC").
		Limit(1).
		ToSql()
	if err != nil {
		return nil, createQueryError(err)
	}

	rows, err := db.Query(ctx, sql, args...)
	if err != nil {
		return nil, executeQueryError(err)
	}

	payment, err := pgx.CollectExactlyOneRow(rows, pgx.RowToAddrOfStructByNameLax[domain.Payment])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, collectRowsError(err)
	}

	return payment, nil
}

func (r *PaymentsRepository) PaymentsByFile(
	ctx context.Context,
	fileName string,
	limit, offset uint64,
) ([]*domain.Payment, int, error) {
	db := extractDB(ctx, r.pool)

	sql, args, err := r.qb.
		Select("COUNT(*)").
		From(TablePayments).
		Where(sq.Eq{"file_name": fileName}).
		ToSql()
	if err != nil {
		return nil, -1, createQueryError(err)
	}

	var total int
	if err := db.QueryRow(ctx, sql, args...).Scan(&total); err != nil {
		return nil, -1, scanRowError(err)
	}

	sql, args, err = r.qb.
		Select(paymentColumns...).
		From(TablePayments).
		Where(sq.Eq{"file_name": fileName}).
		OrderBy("id ASC").
		Limit(limit).
		Offset(offset).
		ToSql()
	if err != nil {
		return nil, -1, createQueryError(err)
	}

	rows, err := db.Query(ctx, sql, args...)
	if err != nil {
		return nil, -1, executeQueryError(err)
	}

	payments, err := pgx.CollectRows(rows, pgx.RowToAddrOfStructByNameLax[domain.Payment])
	if err != nil {
		return nil, -1, collectRowsError(err)
	}

	return payments, total, nil
}
