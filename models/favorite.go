package models

import "time"

// StockEntry is a single favorite stock. Symbol is the unique key;
// the remaining fields are optional display metadata.
type StockEntry struct {
	Symbol  string    `json:"symbol"`
	Name    string    `json:"name,omitempty"`
	AddedAt time.Time `json:"added_at,omitempty"`
	Note    string    `json:"note,omitempty"`
}

// FavoritesList holds favorites in insertion order.
type FavoritesList []StockEntry
