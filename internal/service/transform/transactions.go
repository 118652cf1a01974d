package transform

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"fakestoredw/internal/domain"
	"fakestoredw/internal/domain/dto"
	"fakestoredw/internal/pkg/constants"
)

var cartDateLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
}

// Transactions unrolls each cart into one row per product line, keeping
// cart order and line order, and left-joins the unit price from the
// products table. Lines referencing an unknown product keep a null price
// and a null total.
func Transactions(carts []dto.RawCart, products []domain.Product) ([]domain.Transaction, error) {
	prices := make(map[int64]decimal.Decimal, len(products))
	for _, p := range products {
		prices[p.ProductID] = p.UnitPrice
	}

	transactions := make([]domain.Transaction, 0, len(carts))
	for _, cart := range carts {
		date, err := parseCartDate(cart.Date)
		if err != nil {
			return nil, fmt.Errorf("cart %d: %w", cart.ID, err)
		}

		for _, line := range cart.Products {
			quantity, err := coerceInt(line.Quantity)
			if err != nil {
				return nil, fmt.Errorf("cart %d, product %d, quantity: %w", cart.ID, line.ProductID, err)
			}

			transaction := domain.Transaction{
				Date:      date,
				UserID:    cart.UserID,
				ProductID: line.ProductID,
				Quantity:  quantity,
			}
			if price, ok := prices[line.ProductID]; ok {
				transaction.UnitPrice = decimal.NewNullDecimal(price)
				transaction.TotalValue = decimal.NewNullDecimal(price.Mul(decimal.NewFromInt(quantity)))
			}

			transactions = append(transactions, transaction)
		}
	}

	return transactions, nil
}

// parseCartDate разбирает таймстемп корзины и оставляет только дату;
// зона источника отбрасывается.
func parseCartDate(s string) (time.Time, error) {
	for _, layout := range cartDateLayouts {
		t, err := time.Parse(layout, s)
		if err != nil {
			continue
		}
		return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
	}
	return time.Time{}, constants.NewCodedError(
		constants.CodeCoercion, fmt.Sprintf("cannot parse cart date %q", s))
}
