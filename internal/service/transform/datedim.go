package transform

import (
	"fakestoredw/internal/domain"
	"fakestoredw/internal/pkg/constants"
)

// DateDimension derives one calendar row per day in the closed interval
// [min transaction date, max transaction date]. An empty transaction
// table leaves the interval undefined and aborts the run.
func DateDimension(transactions []domain.Transaction) ([]domain.DateRow, error) {
	if len(transactions) == 0 {
		return nil, constants.ErrEmptyTransactions
	}

	minDate, maxDate := transactions[0].Date, transactions[0].Date
	for _, t := range transactions[1:] {
		if t.Date.Before(minDate) {
			minDate = t.Date
		}
		if t.Date.After(maxDate) {
			maxDate = t.Date
		}
	}

	days := int(maxDate.Sub(minDate).Hours()/24) + 1
	rows := make([]domain.DateRow, 0, days)
	for d := minDate; !d.After(maxDate); d = d.AddDate(0, 0, 1) {
		month := int(d.Month())
		rows = append(rows, domain.DateRow{
			Date:      d,
			Year:      d.Year(),
			Month:     month,
			MonthName: d.Month().String(),
			Quarter:   (month-1)/3 + 1,
			YearMonth: d.Format("2006-01"),
		})
	}

	return rows, nil
}
