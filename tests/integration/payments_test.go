package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/dpetruk/schedpay/internal/adapter/http/dto"
	"github.com/dpetruk/schedpay/internal/domain"
)

func runPayments(t *testing.T, stack *testStack, date string) dto.ListPaymentsResponse {
	t.Helper()

	body, _ := json.Marshal(dto.RunPaymentsRequest{Date: date})
	r := httptest.NewRequest(http.MethodPost, "/api/v1/payments/run", bytes.NewReader(body))
	r.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	stack.Router.ServeHTTP(w, r)

	if w.Code != http.StatusOK {
		t.Fatalf("payment run failed: %d %s", w.Code, w.Body.String())
	}

	var resp dto.ListPaymentsResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to parse response: %v", err)
	}
	return resp
}

func TestScheduledPayments(t *testing.T) {
	stack := newTestStack(t)
	ctx := context.Background()

	t.Run("due payment executes and records transfer", func(t *testing.T) {
		stack.DB.TruncateAll(ctx)

		customer := stack.DB.CreateTestCustomer(ctx, "frank@example.com", "Frank Example")
		source := stack.DB.CreateTestAccount(ctx, customer.ID, 6001, decimal.NewFromInt(500))
		dest := stack.DB.CreateTestAccount(ctx, customer.ID, 6002, decimal.Zero)
		stack.DB.CreateTestScheduledPayment(ctx, source.ID, dest.ID, decimal.NewFromInt(100), 15)

		resp := runPayments(t, stack, "2020-09-15")

		if resp.Total != 1 {
			t.Fatalf("expected 1 outcome, got %d", resp.Total)
		}
		if !resp.Payments[0].IsSuccessful {
			t.Fatalf("expected successful payment, got %+v", resp.Payments[0])
		}
		if resp.Payments[0].TransferID == nil {
			t.Fatal("expected transfer ID on successful payment")
		}

		sourceAccount, _ := stack.AccountRepo.GetByID(ctx, source.ID)
		if !sourceAccount.Balance.Equal(decimal.NewFromInt(400)) {
			t.Errorf("expected source balance 400, got %s", sourceAccount.Balance)
		}
	})

	t.Run("insufficient funds records failure and leaves balance alone", func(t *testing.T) {
		stack.DB.TruncateAll(ctx)

		customer := stack.DB.CreateTestCustomer(ctx, "grace@example.com", "Grace Example")
		source := stack.DB.CreateTestAccount(ctx, customer.ID, 7001, decimal.NewFromInt(50))
		dest := stack.DB.CreateTestAccount(ctx, customer.ID, 7002, decimal.Zero)
		stack.DB.CreateTestScheduledPayment(ctx, source.ID, dest.ID, decimal.NewFromInt(100), 15)

		resp := runPayments(t, stack, "2020-09-15")

		if resp.Total != 1 {
			t.Fatalf("expected 1 outcome, got %d", resp.Total)
		}

		outcome := resp.Payments[0]
		if outcome.IsSuccessful {
			t.Fatal("expected failed payment")
		}
		if outcome.Reason == nil || *outcome.Reason != domain.ReasonInsufficientFunds {
			t.Fatalf("expected insufficient funds reason, got %+v", outcome)
		}
		if outcome.TransferID != nil {
			t.Fatal("failed payment must not reference a transfer")
		}

		sourceAccount, _ := stack.AccountRepo.GetByID(ctx, source.ID)
		if !sourceAccount.Balance.Equal(decimal.NewFromInt(50)) {
			t.Errorf("expected source balance unchanged at 50, got %s", sourceAccount.Balance)
		}
	})

	t.Run("month end runs payments scheduled past the last day", func(t *testing.T) {
		stack.DB.TruncateAll(ctx)

		customer := stack.DB.CreateTestCustomer(ctx, "heidi@example.com", "Heidi Example")
		source := stack.DB.CreateTestAccount(ctx, customer.ID, 8001, decimal.NewFromInt(1000))
		dest := stack.DB.CreateTestAccount(ctx, customer.ID, 8002, decimal.Zero)

		stack.DB.CreateTestScheduledPayment(ctx, source.ID, dest.ID, decimal.NewFromInt(100), 29)
		stack.DB.CreateTestScheduledPayment(ctx, source.ID, dest.ID, decimal.NewFromInt(100), 30)
		stack.DB.CreateTestScheduledPayment(ctx, source.ID, dest.ID, decimal.NewFromInt(100), 31)
		stack.DB.CreateTestScheduledPayment(ctx, source.ID, dest.ID, decimal.NewFromInt(100), 15)

		resp := runPayments(t, stack, "2020-02-29")

		if resp.Total != 3 {
			t.Fatalf("expected 3 outcomes on Feb 29, got %d", resp.Total)
		}

		sourceAccount, _ := stack.AccountRepo.GetByID(ctx, source.ID)
		if !sourceAccount.Balance.Equal(decimal.NewFromInt(700)) {
			t.Errorf("expected source balance 700, got %s", sourceAccount.Balance)
		}
	})

	t.Run("mid month run ignores month end definitions", func(t *testing.T) {
		stack.DB.TruncateAll(ctx)

		customer := stack.DB.CreateTestCustomer(ctx, "ivan@example.com", "Ivan Example")
		source := stack.DB.CreateTestAccount(ctx, customer.ID, 9001, decimal.NewFromInt(1000))
		dest := stack.DB.CreateTestAccount(ctx, customer.ID, 9002, decimal.Zero)

		stack.DB.CreateTestScheduledPayment(ctx, source.ID, dest.ID, decimal.NewFromInt(100), 15)
		stack.DB.CreateTestScheduledPayment(ctx, source.ID, dest.ID, decimal.NewFromInt(100), 31)

		resp := runPayments(t, stack, "2020-09-15")

		if resp.Total != 1 {
			t.Fatalf("expected 1 outcome on the 15th, got %d", resp.Total)
		}
	})

	t.Run("payment history listed per definition", func(t *testing.T) {
		stack.DB.TruncateAll(ctx)

		customer := stack.DB.CreateTestCustomer(ctx, "judy@example.com", "Judy Example")
		source := stack.DB.CreateTestAccount(ctx, customer.ID, 10001, decimal.NewFromInt(150))
		dest := stack.DB.CreateTestAccount(ctx, customer.ID, 10002, decimal.Zero)
		sp := stack.DB.CreateTestScheduledPayment(ctx, source.ID, dest.ID, decimal.NewFromInt(100), 1)

		runPayments(t, stack, "2020-09-01")
		runPayments(t, stack, "2020-10-01")

		r := httptest.NewRequest(http.MethodGet, "/api/v1/scheduled-payments/"+sp.ID+"/payments", nil)
		w := httptest.NewRecorder()
		stack.Router.ServeHTTP(w, r)

		if w.Code != http.StatusOK {
			t.Fatalf("listing failed: %d %s", w.Code, w.Body.String())
		}

		var resp dto.ListPaymentsResponse
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("failed to parse response: %v", err)
		}

		if resp.Total != 2 {
			t.Fatalf("expected 2 outcomes, got %d", resp.Total)
		}

		successes, failures := 0, 0
		for _, p := range resp.Payments {
			if p.IsSuccessful {
				successes++
			} else {
				failures++
			}
		}
		if successes != 1 || failures != 1 {
			t.Errorf("expected one success and one failure, got %d/%d", successes, failures)
		}
	})
}
