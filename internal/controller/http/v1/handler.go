package v1

import (
	"context"
	"encoding/json"
	"errors"
	"math"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/jszwec/csvutil"
	"github.com/kurochkinivan/payment_ingestor/internal/domain"
)

const (
	formatJSON = "json"
	formatCSV  = "csv"
)

type PaymentsRepository interface {
	FindByID(ctx context.Context, id int64) (*domain.Payment, error)
	FindByPaymentID(ctx context.Context, paymentID string) (*domain.Payment, error)
	PaymentsByFile(ctx context.Context, fileName string, limit, offset uint64) ([]*domain.Payment, int, error)
}

type FilesRepository interface {
	Files(ctx context.Context) ([]*domain.File, error)
}

type PaymentsHandler struct {
	paymentsRepository PaymentsRepository
}

func NewPaymentsHandler(paymentsRepository PaymentsRepository) *PaymentsHandler {
	return &PaymentsHandler{
		paymentsRepository: paymentsRepository,
	}
}

func (h *PaymentsHandler) GetPaymentByID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id < 1 {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	payment, err := h.paymentsRepository.FindByID(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, payment)
}

// GetPaymentByPaymentID returns the latest payment saved under the
// payment_id query parameter.
func (h *PaymentsHandler) GetPaymentByPaymentID(w http.ResponseWriter, r *http.Request) {
	paymentID := r.URL.Query().Get("payment_id")
	if paymentID == "" {
		http.Error(w, "payment_id is required", http.StatusBadRequest)
		return
	}

	payment, err := h.paymentsRepository.FindByPaymentID(r.Context(), paymentID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, payment)
}

type GetPaymentsByFileResponse struct {
	Payments   []*domain.Payment `json:"payments"`
	Pagination Pagination        `json:"pagination"`
}

func (h *PaymentsHandler) GetPaymentsByFile(w http.ResponseWriter, r *http.Request) {
	fileName := chi.URLParam(r, "name")

	format := r.URL.Query().Get("format")
	if format == "" {
		format = formatJSON
	}
	if format != formatJSON && format != formatCSV {
		http.Error(w, "invalid format, must be json or csv", http.StatusBadRequest)
		return
	}

	page, limit, err := parsePagination(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	offset := (page - 1) * limit

	payments, total, err := h.paymentsRepository.PaymentsByFile(r.Context(), fileName, limit, offset)
	if err != nil {
		writeError(w, err)
		return
	}

	if format == formatCSV {
		writeCSV(w, payments)
		return
	}

	writeJSON(w, GetPaymentsByFileResponse{
		Payments: payments,
		Pagination: Pagination{
			Page:       page,
			Limit:      limit,
			Total:      total,
			TotalPages: (total + int(limit) - 1) / int(limit),
		},
	})
}

type FilesHandler struct {
	filesRepository FilesRepository
}

func NewFilesHandler(filesRepository FilesRepository) *FilesHandler {
	return &FilesHandler{
		filesRepository: filesRepository,
	}
}

type GetFilesResponse struct {
	Files []*domain.File `json:"files"`
}

func (h *FilesHandler) GetFiles(w http.ResponseWriter, r *http.Request) {
	files, err := h.filesRepository.Files(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, GetFilesResponse{Files: files})
}

func parsePagination(r *http.Request) (page uint64, limit uint64, err error) {
	page, limit = 1, 10

	if p := r.URL.Query().Get("page"); p != "" {
		page, err = strconv.ParseUint(p, 10, 64)
		if err != nil || page == 0 {
			return 0, 0, errors.New("invalid page")
		}
	}

	if l := r.URL.Query().Get("limit"); l != "" {
		limit, err = strconv.ParseUint(l, 10, 64)
		if err != nil || limit < 1 || limit > 100 {
			return 0, 0, errors.New("invalid limit, must be in [1;100]")
		}
	}

	// offset must fit into a signed bigint
	if page > math.MaxInt64/limit {
		return 0, 0, errors.New("invalid page, out of range")
	}

	return page, limit, nil
}

func writeJSON(w http.ResponseWriter, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Write(data)
}

func writeCSV(w http.ResponseWriter, payments []*domain.Payment) {
	data, err := csvutil.Marshal(payments)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Write(data)
}

func writeError(w http.ResponseWriter, err error) {
	if errors.Is(err, domain.ErrNotFound) {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}

	http.Error(w, err.Error(), http.StatusInternalServerError)
}
