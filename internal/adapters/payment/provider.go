// Package payment provides payment provider implementations for donations.
package payment

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/harvfi/ecudecaalumni2/internal/domain"
)

// cancelSentinel lets callers exercise the dismissed-sheet path without a
// real payment UI.
const cancelSentinel = "0.01"

// NewProviderFromConfig creates a payment provider based on configuration.
// Supported providers: "mock", "none".
func NewProviderFromConfig(provider string, logger *slog.Logger) (domain.PaymentProvider, error) {
	switch provider {
	case "mock":
		return NewMockProvider(logger), nil
	case "none", "":
		return NewNoneProvider(logger), nil
	default:
		return nil, fmt.Errorf("unknown payment provider: %s", provider)
	}
}

// MockProvider simulates a payment sheet. Charges settle after a short
// delay; the sentinel amount is reported as cancelled by the user.
type MockProvider struct {
	logger *slog.Logger
	delay  time.Duration
}

func NewMockProvider(logger *slog.Logger) *MockProvider {
	return &MockProvider{
		logger: logger,
		delay:  200 * time.Millisecond,
	}
}

func (p *MockProvider) Available() bool { return true }

func (p *MockProvider) Pay(ctx context.Context, amount, currency, descriptor string) (string, error) {
	select {
	case <-time.After(p.delay):
	case <-ctx.Done():
		return "", ctx.Err()
	}

	if amount == cancelSentinel {
		p.logger.Info("mock payment cancelled", "descriptor", descriptor)
		return domain.DonationCancelled, nil
	}

	p.logger.Info("mock payment settled",
		"amount", amount,
		"currency", currency,
		"descriptor", descriptor,
	)
	return domain.DonationSucceeded, nil
}

// NoneProvider reports payments as unavailable. Used when no payment
// backend is configured for the environment.
type NoneProvider struct {
	logger *slog.Logger
}

func NewNoneProvider(logger *slog.Logger) *NoneProvider {
	return &NoneProvider{logger: logger}
}

func (p *NoneProvider) Available() bool { return false }

func (p *NoneProvider) Pay(ctx context.Context, amount, currency, descriptor string) (string, error) {
	return "", domain.ErrPaymentUnsupported
}
