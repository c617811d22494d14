package domain

import (
	"context"
	"errors"
	"time"
)

// Sentinel errors for the donation flow.
var (
	// ErrPaymentUnsupported is returned when no payment sheet is available in
	// the current environment. Callers degrade to a user-visible message.
	ErrPaymentUnsupported = errors.New("digital wallet payments are not supported in this environment")
)

// Donation payment outcomes.
const (
	DonationSucceeded = "succeeded"
	DonationCancelled = "cancelled"
)

// Donation records one donation attempt to the student travel fund.
// swagger:model Donation
type Donation struct {
	Amount    string    `json:"amount"`
	Currency  string    `json:"currency"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

// PaymentProvider is the payment-sheet collaborator. Availability must be
// probed before use; Pay resolves to a success or cancel outcome.
type PaymentProvider interface {
	Available() bool
	Pay(ctx context.Context, amount, currency, descriptor string) (status string, err error)
}

// DonationService runs the donation flow against the payment provider.
type DonationService interface {
	Donate(ctx context.Context, amount string) (*Donation, error)
}
