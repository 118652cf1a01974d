package dto

// RawUser mirrors one element of the /users payload. Textual fields the
// source may omit are pointers so that absence survives decoding.
type RawUser struct {
	ID       int64      `json:"id"`
	Email    *string    `json:"email"`
	Username *string    `json:"username"`
	Name     RawName    `json:"name"`
	Address  RawAddress `json:"address"`
}

type RawName struct {
	Firstname *string `json:"firstname"`
	Lastname  *string `json:"lastname"`
}

type RawAddress struct {
	City        *string        `json:"city"`
	Geolocation RawGeolocation `json:"geolocation"`
}

// Lat/Long приходят от источника строками.
type RawGeolocation struct {
	Lat  *string `json:"lat"`
	Long *string `json:"long"`
}

// RawProduct mirrors one element of the /products payload. Numeric fields
// are decoded as-is and coerced by explicit per-field rules later.
type RawProduct struct {
	ID       int64     `json:"id"`
	Title    *string   `json:"title"`
	Category *string   `json:"category"`
	Price    any       `json:"price"`
	Rating   RawRating `json:"rating"`
}

type RawRating struct {
	Rate  any `json:"rate"`
	Count any `json:"count"`
}

// RawCart mirrors one element of the /carts payload.
type RawCart struct {
	ID       int64         `json:"id"`
	UserID   int64         `json:"userId"`
	Date     string        `json:"date"`
	Products []RawCartLine `json:"products"`
}

type RawCartLine struct {
	ProductID int64 `json:"productId"`
	Quantity  any   `json:"quantity"`
}
