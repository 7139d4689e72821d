package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/dpetruk/schedpay/internal/adapter/http/dto"
	"github.com/dpetruk/schedpay/internal/domain"
	"github.com/dpetruk/schedpay/internal/usecase"
)

type executorServiceStub struct {
	runDueFn func(ctx context.Context, forDate time.Time) ([]*domain.Payment, error)
	getFn    func(ctx context.Context, id string) (*domain.Payment, error)
	listFn   func(ctx context.Context, input usecase.ListPaymentsInput) ([]*domain.Payment, error)
}

func (s *executorServiceStub) RunDue(ctx context.Context, forDate time.Time) ([]*domain.Payment, error) {
	return s.runDueFn(ctx, forDate)
}

func (s *executorServiceStub) GetPayment(ctx context.Context, id string) (*domain.Payment, error) {
	return s.getFn(ctx, id)
}

func (s *executorServiceStub) ListPayments(ctx context.Context, input usecase.ListPaymentsInput) ([]*domain.Payment, error) {
	return s.listFn(ctx, input)
}

func TestPaymentHandler_Run_WithDate(t *testing.T) {
	var captured time.Time
	handler := NewPaymentHandler(&executorServiceStub{
		runDueFn: func(ctx context.Context, forDate time.Time) ([]*domain.Payment, error) {
			captured = forDate
			return []*domain.Payment{{ID: "pay-1"}}, nil
		},
	})

	body, _ := json.Marshal(dto.RunPaymentsRequest{Date: "2020-02-29"})
	req := httptest.NewRequest(http.MethodPost, "/payments/run", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	handler.Run(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	expected := time.Date(2020, time.February, 29, 0, 0, 0, 0, time.UTC)
	if !captured.Equal(expected) {
		t.Fatalf("expected date %v, got %v", expected, captured)
	}

	var resp dto.ListPaymentsResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Total != 1 {
		t.Fatalf("expected 1 payment, got %d", resp.Total)
	}
}

func TestPaymentHandler_Run_EmptyBody(t *testing.T) {
	handler := NewPaymentHandler(&executorServiceStub{
		runDueFn: func(ctx context.Context, forDate time.Time) ([]*domain.Payment, error) {
			if !forDate.IsZero() {
				t.Fatalf("expected zero date for empty body, got %v", forDate)
			}
			return nil, nil
		},
	})

	req := httptest.NewRequest(http.MethodPost, "/payments/run", nil)
	rec := httptest.NewRecorder()

	handler.Run(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestPaymentHandler_Run_InvalidDate(t *testing.T) {
	handler := NewPaymentHandler(&executorServiceStub{
		runDueFn: func(ctx context.Context, forDate time.Time) ([]*domain.Payment, error) {
			t.Fatal("RunDue should not be called")
			return nil, nil
		},
	})

	body, _ := json.Marshal(dto.RunPaymentsRequest{Date: "29/02/2020"})
	req := httptest.NewRequest(http.MethodPost, "/payments/run", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	handler.Run(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestPaymentHandler_Run_RunError(t *testing.T) {
	handler := NewPaymentHandler(&executorServiceStub{
		runDueFn: func(ctx context.Context, forDate time.Time) ([]*domain.Payment, error) {
			return nil, errors.New("storage unavailable")
		},
	})

	req := httptest.NewRequest(http.MethodPost, "/payments/run", nil)
	rec := httptest.NewRecorder()

	handler.Run(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
}

func TestPaymentHandler_Get(t *testing.T) {
	reason := domain.ReasonInsufficientFunds
	handler := NewPaymentHandler(&executorServiceStub{
		getFn: func(ctx context.Context, id string) (*domain.Payment, error) {
			return &domain.Payment{ID: id, Reason: &reason}, nil
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/payments/pay-1", nil)
	req = setChiURLParam(req, "id", "pay-1")
	rec := httptest.NewRecorder()

	handler.Get(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp dto.PaymentResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Reason == nil || *resp.Reason != domain.ReasonInsufficientFunds {
		t.Fatalf("expected failure reason to propagate, got %+v", resp)
	}
}

func TestPaymentHandler_Get_NotFound(t *testing.T) {
	handler := NewPaymentHandler(&executorServiceStub{
		getFn: func(ctx context.Context, id string) (*domain.Payment, error) {
			return nil, domain.ErrPaymentNotFound
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/payments/missing", nil)
	req = setChiURLParam(req, "id", "missing")
	rec := httptest.NewRecorder()

	handler.Get(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestPaymentHandler_ListByScheduledPayment(t *testing.T) {
	handler := NewPaymentHandler(&executorServiceStub{
		listFn: func(ctx context.Context, input usecase.ListPaymentsInput) ([]*domain.Payment, error) {
			if input.ScheduledPaymentID != "sp-1" {
				t.Fatalf("expected scheduled payment sp-1, got %s", input.ScheduledPaymentID)
			}
			return []*domain.Payment{{ID: "pay-1"}, {ID: "pay-2"}}, nil
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/scheduled-payments/sp-1/payments", nil)
	req = setChiURLParam(req, "id", "sp-1")
	rec := httptest.NewRecorder()

	handler.ListByScheduledPayment(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}
