package entity

// ServiceItem represents a bookable salon service from the catalog
type ServiceItem struct {
	ID              int64   `json:"id"`
	Name            string  `json:"name"`
	Price           float64 `json:"price"`
	DurationMinutes int     `json:"duration_minutes,omitempty"`
}

// Product represents a retail product from the catalog. Stock levels are
// owned by the remote store; the figure here is whatever the last catalog
// response carried.
type Product struct {
	ID       int64   `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}
