package domain

import (
	"context"
	"errors"
)

// ErrNotFound is returned when a requested record does not exist.
var ErrNotFound = errors.New("not found")

// ErrInvalidInput is returned when a request carries invalid data.
var ErrInvalidInput = errors.New("invalid input")

// EventCategory is the fixed enumeration of chapter event types.
type EventCategory string

const (
	CategoryNetworking EventCategory = "Networking"
	CategorySocial     EventCategory = "Social"
	CategoryWorkshop   EventCategory = "Workshop"
	CategoryCampus     EventCategory = "Campus"
)

// ValidCategory reports whether c is one of the known event categories.
func ValidCategory(c EventCategory) bool {
	switch c {
	case CategoryNetworking, CategorySocial, CategoryWorkshop, CategoryCampus:
		return true
	}
	return false
}

// Event represents one chapter event. Events are immutable after creation and
// never deleted.
// swagger:model Event
type Event struct {
	ID          string        `json:"id"`
	Title       string        `json:"title"`
	Date        string        `json:"date"`
	Time        string        `json:"time"`
	Location    string        `json:"location"`
	Description string        `json:"description"`
	Category    EventCategory `json:"category"`
	ImageURL    string        `json:"image_url"`
}

// NewEvent returns a new Event with the given fields. ID is typically set by
// the repository on create.
func NewEvent(title, date, timeRange, location, description string, category EventCategory, imageURL string) *Event {
	return &Event{
		Title:       title,
		Date:        date,
		Time:        timeRange,
		Location:    location,
		Description: description,
		Category:    category,
		ImageURL:    imageURL,
	}
}

// EventRepository defines the interface for event storage.
type EventRepository interface {
	Create(ctx context.Context, event *Event) error
	GetByID(ctx context.Context, id string) (*Event, error)
	List(ctx context.Context) ([]*Event, error)
}

// CalendarExporter produces a downloadable calendar-file record for one event.
type CalendarExporter interface {
	Export(event *Event) (filename string, data []byte)
}
