package domain

import (
	"context"
	"errors"
)

// ErrFlowState is returned when an announcement-flow operation is invoked in a
// state that does not permit it.
var ErrFlowState = errors.New("operation not valid in current flow state")

// FlowState is the event-creation flow's state. Transitions are linear
// (form -> drafting -> preview -> sending -> success) with a single back-edge
// preview -> form that discards the draft.
type FlowState string

const (
	FlowForm     FlowState = "form"
	FlowDrafting FlowState = "drafting"
	FlowPreview  FlowState = "preview"
	FlowSending  FlowState = "sending"
	FlowSuccess  FlowState = "success"
)

// EventForm holds the event-creation form fields. All fields are required
// except ImageURL, which falls back to a placeholder reference.
type EventForm struct {
	Title       string        `json:"title"`
	Date        string        `json:"date"`
	Time        string        `json:"time"`
	Location    string        `json:"location"`
	Description string        `json:"description"`
	Category    EventCategory `json:"category"`
	ImageURL    string        `json:"image_url"`
}

// FlowSnapshot is a read-only view of the announcement flow.
type FlowSnapshot struct {
	State FlowState `json:"state"`
	Form  EventForm `json:"form"`
	Draft string    `json:"draft"`
}

// AnnouncementFlow is the event-creation state machine. Drafting always yields
// some announcement text (failures degrade to a fallback); the event is
// appended to the shared collection only at the sending -> success boundary.
type AnnouncementFlow interface {
	Snapshot(ctx context.Context) FlowSnapshot
	// SubmitForm validates the form, drafts the announcement, and moves the
	// flow to preview. Returns the drafted text.
	SubmitForm(ctx context.Context, form EventForm) (string, error)
	// Edit discards the draft and returns the flow from preview to form.
	Edit(ctx context.Context) error
	// Send dispatches the announcement, appends the event, and moves the flow
	// to success. Returns the created event.
	Send(ctx context.Context) (*Event, error)
	// Reset clears all local flow state back to initial defaults.
	Reset(ctx context.Context)
}
