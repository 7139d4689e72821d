package handler

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/dpetruk/schedpay/internal/adapter/http/dto"
	"github.com/dpetruk/schedpay/internal/domain"
	"github.com/dpetruk/schedpay/internal/usecase"
)

// ExecutorService defines the behavior needed by PaymentHandler.
type ExecutorService interface {
	RunDue(ctx context.Context, forDate time.Time) ([]*domain.Payment, error)
	GetPayment(ctx context.Context, id string) (*domain.Payment, error)
	ListPayments(ctx context.Context, input usecase.ListPaymentsInput) ([]*domain.Payment, error)
}

// PaymentHandler handles payment outcome HTTP requests.
type PaymentHandler struct {
	executorUC ExecutorService
}

// NewPaymentHandler creates a new PaymentHandler.
func NewPaymentHandler(executorUC ExecutorService) *PaymentHandler {
	return &PaymentHandler{executorUC: executorUC}
}

// Run executes all payments due on a date. Outcomes recorded before a
// per-payment fault are still returned alongside the error.
func (h *PaymentHandler) Run(w http.ResponseWriter, r *http.Request) {
	var req dto.RunPaymentsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	var forDate time.Time

	if req.Date != "" {
		parsed, err := time.Parse("2006-01-02", req.Date)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid date", err.Error())
			return
		}

		forDate = parsed
	}

	payments, err := h.executorUC.RunDue(r.Context(), forDate)
	if err != nil {
		writeError(w, mapDomainError(err), "payment run finished with errors", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.ListPaymentsResponse{
		Payments: dto.PaymentsFromDomain(payments),
		Total:    int64(len(payments)),
	})
}

// Get retrieves a payment outcome by ID.
func (h *PaymentHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing payment ID", "")
		return
	}

	payment, err := h.executorUC.GetPayment(r.Context(), id)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to get payment", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.PaymentFromDomain(payment))
}

// ListByScheduledPayment lists the outcomes recorded for a definition.
func (h *PaymentHandler) ListByScheduledPayment(w http.ResponseWriter, r *http.Request) {
	scheduledPaymentID := chi.URLParam(r, "id")
	if scheduledPaymentID == "" {
		writeError(w, http.StatusBadRequest, "missing scheduled payment ID", "")
		return
	}

	limit := parseIntQuery(r, "limit", 20)
	offset := parseIntQuery(r, "offset", 0)

	payments, err := h.executorUC.ListPayments(r.Context(), usecase.ListPaymentsInput{
		ScheduledPaymentID: scheduledPaymentID,
		Limit:              limit,
		Offset:             offset,
	})
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list payments", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.ListPaymentsResponse{
		Payments: dto.PaymentsFromDomain(payments),
		Total:    int64(len(payments)),
	})
}
