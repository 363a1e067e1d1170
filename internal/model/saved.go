package model

import "time"

// SavedPlot is a user's bookmark of a listing.
type SavedPlot struct {
	ID      string      `json:"id"`
	UserID  string      `json:"user_id"`
	PlotID  string      `json:"plot_id"`
	SavedAt time.Time   `json:"saved_at"`
	Plot    ListingCard `json:"plot"`
}
