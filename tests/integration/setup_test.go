package integration

import (
	"context"
	"net/http"
	"os"
	"testing"

	"github.com/redis/go-redis/v9"

	adaptershttp "github.com/dpetruk/schedpay/internal/adapter/http"
	"github.com/dpetruk/schedpay/internal/adapter/http/handler"
	"github.com/dpetruk/schedpay/internal/adapter/repository/postgres"
	redisrepo "github.com/dpetruk/schedpay/internal/adapter/repository/redis"
	infraredis "github.com/dpetruk/schedpay/internal/infrastructure/redis"
	"github.com/dpetruk/schedpay/internal/usecase"
	"github.com/dpetruk/schedpay/tests/testutil"
)

// testStack wires the full application over a test database and redis
// instance for end-to-end HTTP tests.
type testStack struct {
	DB          *testutil.TestDB
	Router      http.Handler
	AccountRepo *postgres.AccountRepository
	PaymentRepo *postgres.PaymentRepository
	ExecutorUC  *usecase.ExecutorUseCase
	redisClient *redis.Client
}

func newTestStack(t *testing.T) *testStack {
	t.Helper()

	if testing.Short() {
		t.Skip("skipping integration test")
	}

	ctx := context.Background()

	testDB := testutil.NewTestDB(t)
	pool := testDB.Pool

	accountRepo := postgres.NewAccountRepository(pool)
	transferRepo := postgres.NewTransferRepository(pool)
	scheduledPaymentRepo := postgres.NewScheduledPaymentRepository(pool)
	paymentRepo := postgres.NewPaymentRepository(pool)
	customerRepo := postgres.NewCustomerRepository(pool)
	ledgerRepo := postgres.NewLedgerRepository(pool)
	txManager := postgres.NewTxManager(pool)
	idGen := postgres.NewULIDGenerator()
	retrier := postgres.NewRetrier()

	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		redisURL = "redis://localhost:6379"
	}

	redisClient, err := infraredis.NewClient(ctx, redisURL)
	if err != nil {
		t.Fatalf("failed to connect to redis: %v", err)
	}

	cache := redisrepo.NewCache(redisClient)
	idempotencyStore := redisrepo.NewIdempotencyStore(redisClient)

	customerUC := usecase.NewCustomerUseCase(customerRepo, accountRepo, idGen, cache, nil)
	accountUC := usecase.NewAccountUseCase(accountRepo, customerRepo, idGen, nil)
	transferUC := usecase.NewTransferUseCase(txManager, accountRepo, transferRepo, idGen, retrier, nil)
	schedulerUC := usecase.NewSchedulerUseCase(scheduledPaymentRepo, accountRepo, idGen, nil)
	executorUC := usecase.NewExecutorUseCase(transferUC, schedulerUC, paymentRepo, idGen, nil)
	ledgerUC := usecase.NewLedgerUseCase(ledgerRepo)

	router := adaptershttp.NewRouter(adaptershttp.RouterConfig{
		CustomerHandler:         handler.NewCustomerHandler(customerUC),
		AccountHandler:          handler.NewAccountHandler(accountUC),
		TransferHandler:         handler.NewTransferHandler(transferUC),
		ScheduledPaymentHandler: handler.NewScheduledPaymentHandler(schedulerUC),
		PaymentHandler:          handler.NewPaymentHandler(executorUC),
		LedgerHandler:           handler.NewLedgerHandler(ledgerUC),
		HealthHandler:           handler.NewHealthHandler(pool, redisClient),
		IdempotencyStore:        idempotencyStore,
	})

	stack := &testStack{
		DB:          testDB,
		Router:      router,
		AccountRepo: accountRepo,
		PaymentRepo: paymentRepo,
		ExecutorUC:  executorUC,
		redisClient: redisClient,
	}

	t.Cleanup(func() {
		redisClient.Close()
		testDB.Cleanup()
	})

	return stack
}
