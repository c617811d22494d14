package services

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"sync"

	"github.com/harvfi/ecudecaalumni2/internal/domain"
)

// Fallback announcement shown when generation fails or returns nothing.
const draftEmptyFallback = "New Event Updated! Log in to view details and RSVP."

type announcementFlow struct {
	mu sync.Mutex

	state domain.FlowState
	form  domain.EventForm
	draft string

	eventRepo    domain.EventRepository
	memberRepo   domain.MemberRepository
	textGen      domain.TextGenerator
	emailService domain.EmailService
	logger       *slog.Logger
}

// NewAnnouncementFlow creates the event-creation state machine in its initial
// form state.
func NewAnnouncementFlow(
	eventRepo domain.EventRepository,
	memberRepo domain.MemberRepository,
	textGen domain.TextGenerator,
	emailService domain.EmailService,
	logger *slog.Logger,
) domain.AnnouncementFlow {
	return &announcementFlow{
		state:        domain.FlowForm,
		eventRepo:    eventRepo,
		memberRepo:   memberRepo,
		textGen:      textGen,
		emailService: emailService,
		logger:       logger,
	}
}

func (f *announcementFlow) Snapshot(ctx context.Context) domain.FlowSnapshot {
	f.mu.Lock()
	defer f.mu.Unlock()
	return domain.FlowSnapshot{State: f.state, Form: f.form, Draft: f.draft}
}

// SubmitForm validates the form and drafts the announcement. Drafting always
// produces some display text: a generation failure degrades to a static
// fallback instead of propagating an error.
func (f *announcementFlow) SubmitForm(ctx context.Context, form domain.EventForm) (string, error) {
	f.mu.Lock()
	if f.state != domain.FlowForm {
		f.mu.Unlock()
		return "", fmt.Errorf("%w: submit requires state %q, have %q", domain.ErrFlowState, domain.FlowForm, f.state)
	}
	if errs := validateEventForm(&form); len(errs) > 0 {
		f.mu.Unlock()
		return "", fmt.Errorf("%w: %s", domain.ErrInvalidInput, errs[0])
	}
	if form.ImageURL == "" {
		form.ImageURL = placeholderImageURL()
	}
	f.form = form
	f.state = domain.FlowDrafting
	f.mu.Unlock()

	event := formEvent(form)
	draft, err := f.textGen.GenerateAnnouncement(ctx, event)
	if err != nil {
		f.logger.WarnContext(ctx, "announcement draft failed, using fallback", "err", err)
		draft = fmt.Sprintf("New event: %s is now live on the ECU DECA Alumni site. Check it out for details!", form.Title)
	}
	if draft == "" {
		draft = draftEmptyFallback
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	// The modal may have been reset while the draft was in flight; a late
	// result is simply not committed.
	if f.state != domain.FlowDrafting {
		return "", fmt.Errorf("%w: flow reset during drafting", domain.ErrFlowState)
	}
	f.draft = draft
	f.state = domain.FlowPreview
	return draft, nil
}

// Edit discards the draft and returns from preview to form.
func (f *announcementFlow) Edit(ctx context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.state != domain.FlowPreview {
		return fmt.Errorf("%w: edit requires state %q, have %q", domain.ErrFlowState, domain.FlowPreview, f.state)
	}
	f.draft = ""
	f.state = domain.FlowForm
	return nil
}

// Send dispatches the announcement to subscribers and appends the event to the
// shared collection. The event becomes visible elsewhere only at this boundary.
func (f *announcementFlow) Send(ctx context.Context) (*domain.Event, error) {
	f.mu.Lock()
	if f.state != domain.FlowPreview {
		f.mu.Unlock()
		return nil, fmt.Errorf("%w: send requires state %q, have %q", domain.ErrFlowState, domain.FlowPreview, f.state)
	}
	f.state = domain.FlowSending
	form := f.form
	draft := f.draft
	f.mu.Unlock()

	recipients, err := f.memberRepo.CountSubscribed(ctx)
	if err != nil {
		f.logger.WarnContext(ctx, "subscriber count failed", "err", err)
		recipients = 0
	}
	if err := f.emailService.BroadcastAnnouncement(ctx, draft, recipients); err != nil {
		f.logger.WarnContext(ctx, "announcement broadcast failed", "err", err)
	}

	event := formEvent(form)
	if err := f.eventRepo.Create(ctx, event); err != nil {
		f.mu.Lock()
		f.state = domain.FlowPreview
		f.mu.Unlock()
		return nil, fmt.Errorf("create event: %w", err)
	}

	f.mu.Lock()
	f.state = domain.FlowSuccess
	f.mu.Unlock()
	return event, nil
}

// Reset clears all local flow state back to initial defaults.
func (f *announcementFlow) Reset(ctx context.Context) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.state = domain.FlowForm
	f.form = domain.EventForm{}
	f.draft = ""
}

func validateEventForm(form *domain.EventForm) []string {
	var errs []string
	if form.Title == "" {
		errs = append(errs, "title is required")
	}
	if form.Date == "" {
		errs = append(errs, "date is required")
	}
	if form.Time == "" {
		errs = append(errs, "time is required")
	}
	if form.Location == "" {
		errs = append(errs, "location is required")
	}
	if form.Description == "" {
		errs = append(errs, "description is required")
	}
	if form.Category == "" {
		form.Category = domain.CategoryNetworking
	} else if !domain.ValidCategory(form.Category) {
		errs = append(errs, fmt.Sprintf("unknown category %q", form.Category))
	}
	return errs
}

func formEvent(form domain.EventForm) *domain.Event {
	return domain.NewEvent(form.Title, form.Date, form.Time, form.Location, form.Description, form.Category, form.ImageURL)
}

func placeholderImageURL() string {
	return fmt.Sprintf("https://picsum.photos/800/400?random=%d", rand.Intn(100))
}
