package domain

import (
	"strconv"
	"time"

	"github.com/shopspring/decimal"
)

const DateLayout = "2006-01-02"

var (
	UserColumns        = []string{"user_id", "first_name", "last_name", "email", "username", "city", "lat", "long"}
	ProductColumns     = []string{"product_id", "product_title", "category", "unit_price", "rating", "rating_count"}
	TransactionColumns = []string{"date", "user_id", "product_id", "quantity", "unit_price", "total_value"}
	DateColumns        = []string{"date", "year", "month", "month_name", "quarter", "year_month"}
)

type User struct {
	UserID    int64
	FirstName string
	LastName  string
	Email     string
	Username  string
	City      string
	Lat       string
	Long      string
}

func (u User) Record() []string {
	return []string{
		strconv.FormatInt(u.UserID, 10),
		u.FirstName,
		u.LastName,
		u.Email,
		u.Username,
		u.City,
		u.Lat,
		u.Long,
	}
}

type Product struct {
	ProductID   int64
	Title       string
	Category    string
	UnitPrice   decimal.Decimal
	Rating      float64
	RatingCount int64
}

func (p Product) Record() []string {
	return []string{
		strconv.FormatInt(p.ProductID, 10),
		p.Title,
		p.Category,
		p.UnitPrice.String(),
		strconv.FormatFloat(p.Rating, 'g', -1, 64),
		strconv.FormatInt(p.RatingCount, 10),
	}
}

// Transaction is one cart product line joined against the product price
// table. UnitPrice and TotalValue stay null when the referenced product
// is unknown.
type Transaction struct {
	Date       time.Time
	UserID     int64
	ProductID  int64
	Quantity   int64
	UnitPrice  decimal.NullDecimal
	TotalValue decimal.NullDecimal
}

func (t Transaction) Record() []string {
	return []string{
		t.Date.Format(DateLayout),
		strconv.FormatInt(t.UserID, 10),
		strconv.FormatInt(t.ProductID, 10),
		strconv.FormatInt(t.Quantity, 10),
		nullDecimalString(t.UnitPrice),
		nullDecimalString(t.TotalValue),
	}
}

type DateRow struct {
	Date      time.Time
	Year      int
	Month     int
	MonthName string
	Quarter   int
	YearMonth string
}

func (d DateRow) Record() []string {
	return []string{
		d.Date.Format(DateLayout),
		strconv.Itoa(d.Year),
		strconv.Itoa(d.Month),
		d.MonthName,
		strconv.Itoa(d.Quarter),
		d.YearMonth,
	}
}

func nullDecimalString(d decimal.NullDecimal) string {
	if !d.Valid {
		return ""
	}
	return d.Decimal.String()
}
