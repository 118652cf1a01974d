package etl

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"fakestoredw/internal/domain"
	"fakestoredw/internal/pkg/fakestore"
	"fakestoredw/internal/pkg/logger"
	"fakestoredw/internal/pkg/sink"
	"fakestoredw/internal/service/transform"
)

const (
	usersFile        = "users.csv"
	productsFile     = "products.csv"
	transactionsFile = "f_transactions.csv"
	datesFile        = "d_date.csv"
)

type Service struct {
	client *fakestore.Client
	sink   sink.Sink
}

func NewService(client *fakestore.Client, sink sink.Sink) *Service {
	return &Service{client: client, sink: sink}
}

// Run executes one full extract-transform-load pass. Any failed step
// aborts the run; there is no partial-success mode.
func (s *Service) Run(ctx context.Context) error {
	runID := uuid.NewString()
	start := time.Now()
	logger.Infof(ctx, "starting fake store extraction, run_id-%s", runID)

	if err := s.sink.EnsureReady(); err != nil {
		return fmt.Errorf("sink.EnsureReady: %w", err)
	}

	// Извлечение
	rawUsers, err := s.client.FetchUsers(ctx)
	if err != nil {
		return err
	}
	rawProducts, err := s.client.FetchProducts(ctx)
	if err != nil {
		return err
	}
	rawCarts, err := s.client.FetchCarts(ctx)
	if err != nil {
		return err
	}
	logger.Infof(ctx, "extracted %d users, %d products, %d carts",
		len(rawUsers), len(rawProducts), len(rawCarts))

	// Обработка
	users := transform.Users(rawUsers)

	products, err := transform.Products(rawProducts)
	if err != nil {
		return fmt.Errorf("transform.Products: %w", err)
	}

	transactions, err := transform.Transactions(rawCarts, products)
	if err != nil {
		return fmt.Errorf("transform.Transactions: %w", err)
	}

	dates, err := transform.DateDimension(transactions)
	if err != nil {
		return fmt.Errorf("transform.DateDimension: %w", err)
	}
	logger.Infof(ctx, "processed tables: users-%d, products-%d, transactions-%d, dates-%d",
		len(users), len(products), len(transactions), len(dates))

	// Сохранение
	if err := s.sink.WriteTable(usersFile, domain.UserColumns, records(users)); err != nil {
		return fmt.Errorf("sink.WriteTable %s: %w", usersFile, err)
	}
	if err := s.sink.WriteTable(productsFile, domain.ProductColumns, records(products)); err != nil {
		return fmt.Errorf("sink.WriteTable %s: %w", productsFile, err)
	}
	if err := s.sink.WriteTable(transactionsFile, domain.TransactionColumns, records(transactions)); err != nil {
		return fmt.Errorf("sink.WriteTable %s: %w", transactionsFile, err)
	}
	if err := s.sink.WriteTable(datesFile, domain.DateColumns, records(dates)); err != nil {
		return fmt.Errorf("sink.WriteTable %s: %w", datesFile, err)
	}

	logger.Infof(ctx, "run finished, run_id-%s, duration-%s", runID, time.Since(start))
	return nil
}

func records[T interface{ Record() []string }](rows []T) [][]string {
	out := make([][]string, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.Record())
	}
	return out
}
