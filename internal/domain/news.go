package domain

import "context"

// NewsItem represents one chapter news entry. News is static seed data.
// swagger:model NewsItem
type NewsItem struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Summary  string `json:"summary"`
	Date     string `json:"date"`
	Author   string `json:"author"`
	Category string `json:"category"`
}

// NewsRepository defines the interface for news storage.
type NewsRepository interface {
	List(ctx context.Context) ([]*NewsItem, error)
}
