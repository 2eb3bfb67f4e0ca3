package entities

import "time"

// PricePoint is one day of closing-price history for a ticker.
type PricePoint struct {
	Date  time.Time
	Close float64
}
