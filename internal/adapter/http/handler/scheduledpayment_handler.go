package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/dpetruk/schedpay/internal/adapter/http/dto"
	"github.com/dpetruk/schedpay/internal/domain"
	"github.com/dpetruk/schedpay/internal/usecase"
)

// SchedulerService defines the behavior needed by ScheduledPaymentHandler.
type SchedulerService interface {
	CreateScheduledPayment(ctx context.Context, input usecase.CreateScheduledPaymentInput) (*domain.ScheduledPayment, error)
	GetScheduledPayment(ctx context.Context, id string) (*domain.ScheduledPayment, error)
	ListScheduledPayments(ctx context.Context, input usecase.ListScheduledPaymentsInput) ([]*domain.ScheduledPayment, error)
	DeleteScheduledPayment(ctx context.Context, id string) error
	DuePayments(ctx context.Context, forDate time.Time) ([]*domain.ScheduledPayment, error)
}

// ScheduledPaymentHandler handles scheduled payment HTTP requests.
type ScheduledPaymentHandler struct {
	schedulerUC SchedulerService
}

// NewScheduledPaymentHandler creates a new ScheduledPaymentHandler.
func NewScheduledPaymentHandler(schedulerUC SchedulerService) *ScheduledPaymentHandler {
	return &ScheduledPaymentHandler{schedulerUC: schedulerUC}
}

// Create creates a scheduled payment definition.
func (h *ScheduledPaymentHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateScheduledPaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	payment, err := h.schedulerUC.CreateScheduledPayment(r.Context(), req.ToUseCaseInput())
	if err != nil {
		writeError(w, mapDomainError(err), "failed to create scheduled payment", err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, dto.ScheduledPaymentFromDomain(payment))
}

// Get retrieves a definition by ID.
func (h *ScheduledPaymentHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing scheduled payment ID", "")
		return
	}

	payment, err := h.schedulerUC.GetScheduledPayment(r.Context(), id)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to get scheduled payment", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.ScheduledPaymentFromDomain(payment))
}

// List lists definitions.
func (h *ScheduledPaymentHandler) List(w http.ResponseWriter, r *http.Request) {
	limit := parseIntQuery(r, "limit", 20)
	offset := parseIntQuery(r, "offset", 0)

	payments, err := h.schedulerUC.ListScheduledPayments(r.Context(), usecase.ListScheduledPaymentsInput{
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list scheduled payments", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.ListScheduledPaymentsResponse{
		ScheduledPayments: dto.ScheduledPaymentsFromDomain(payments),
		Total:             int64(len(payments)),
	})
}

// Delete removes a definition.
func (h *ScheduledPaymentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing scheduled payment ID", "")
		return
	}

	if err := h.schedulerUC.DeleteScheduledPayment(r.Context(), id); err != nil {
		writeError(w, mapDomainError(err), "failed to delete scheduled payment", err.Error())
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Due lists the definitions due on a date. The date query parameter is
// optional and defaults to today.
func (h *ScheduledPaymentHandler) Due(w http.ResponseWriter, r *http.Request) {
	forDate, ok := parseDateQuery(w, r)
	if !ok {
		return
	}

	payments, err := h.schedulerUC.DuePayments(r.Context(), forDate)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to select due payments", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.ListScheduledPaymentsResponse{
		ScheduledPayments: dto.ScheduledPaymentsFromDomain(payments),
		Total:             int64(len(payments)),
	})
}

// parseDateQuery reads an optional date query parameter in YYYY-MM-DD
// form. A zero time means today.
func parseDateQuery(w http.ResponseWriter, r *http.Request) (time.Time, bool) {
	raw := r.URL.Query().Get("date")
	if raw == "" {
		return time.Time{}, true
	}

	forDate, err := time.Parse("2006-01-02", raw)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid date", err.Error())
		return time.Time{}, false
	}

	return forDate, true
}
