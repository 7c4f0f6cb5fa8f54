package domain

// MenuItem is a catalog entry. Prices are in minor currency units.
// The catalog is seeded once at first startup and read-only afterwards.
type MenuItem struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Price       int64  `json:"price"`
	Image       string `json:"image"`
	Description string `json:"description"`
}
