package domain

import "time"

// Supported storefront countries.
const (
	CountryMozambique = "mz"
	CountryPortugal   = "pt"
)

// Reservation is a customer's request to hold a product. Immutable after
// creation.
type Reservation struct {
	ID            string    `json:"id"`
	ProductID     string    `json:"product_id"`
	ProductName   string    `json:"product_name"`
	CustomerName  string    `json:"customer_name"`
	CustomerEmail string    `json:"customer_email"`
	CustomerPhone string    `json:"customer_phone"`
	Quantity      int       `json:"quantity"`
	Country       string    `json:"country"`
	CreatedAt     time.Time `json:"created_at"`
}

// ValidCountries returns the closed set of supported countries.
func ValidCountries() []string {
	return []string{CountryMozambique, CountryPortugal}
}

// IsValidCountry checks whether the given country code is supported.
func IsValidCountry(country string) bool {
	for _, c := range ValidCountries() {
		if c == country {
			return true
		}
	}
	return false
}
