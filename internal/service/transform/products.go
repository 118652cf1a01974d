package transform

import (
	"fmt"

	"fakestoredw/internal/domain"
	"fakestoredw/internal/domain/dto"
)

// Products flattens the raw product payload into the products table.
// Price, rating and rating count are coerced to numeric types; a value
// that cannot be parsed aborts the run.
func Products(raw []dto.RawProduct) ([]domain.Product, error) {
	products := make([]domain.Product, 0, len(raw))
	for _, r := range raw {
		price, err := coerceDecimal(r.Price)
		if err != nil {
			return nil, fmt.Errorf("product %d, unit_price: %w", r.ID, err)
		}

		rating, err := coerceFloat(r.Rating.Rate)
		if err != nil {
			return nil, fmt.Errorf("product %d, rating: %w", r.ID, err)
		}

		count, err := coerceInt(r.Rating.Count)
		if err != nil {
			return nil, fmt.Errorf("product %d, rating_count: %w", r.ID, err)
		}

		products = append(products, domain.Product{
			ProductID:   r.ID,
			Title:       textOrZero(r.Title),
			Category:    textOrZero(r.Category),
			UnitPrice:   price,
			Rating:      rating,
			RatingCount: count,
		})
	}
	return products, nil
}

// Табличный fillna(0) источника задевает и текстовые колонки.
func textOrZero(s *string) string {
	if s == nil {
		return "0"
	}
	return *s
}
