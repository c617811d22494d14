package services

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"strconv"
	"time"

	"github.com/harvfi/ecudecaalumni2/internal/domain"
)

const (
	donationCurrency   = "USD"
	donationDescriptor = "ECU DECA Alumni - Student Travel Fund"
)

// amountPattern admits plain decimals only, keeping ParseFloat extras like
// "Inf", "NaN", and exponent forms out of the provider.
var amountPattern = regexp.MustCompile(`^[0-9]+(\.[0-9]+)?$`)

type donationService struct {
	provider domain.PaymentProvider
	logger   *slog.Logger
}

// NewDonationService creates a DonationService backed by the given payment
// provider.
func NewDonationService(provider domain.PaymentProvider, logger *slog.Logger) domain.DonationService {
	return &donationService{provider: provider, logger: logger}
}

// Donate validates the string-typed decimal amount, probes provider
// availability, and presents the payment sheet. An unavailable provider is a
// user-visible unsupported condition, not a crash; a cancel is recorded as a
// cancelled donation, not an error.
func (s *donationService) Donate(ctx context.Context, amount string) (*domain.Donation, error) {
	v, err := strconv.ParseFloat(amount, 64)
	if !amountPattern.MatchString(amount) || err != nil || v <= 0 {
		return nil, fmt.Errorf("%w: amount must be a positive decimal", domain.ErrInvalidInput)
	}
	if !s.provider.Available() {
		return nil, domain.ErrPaymentUnsupported
	}
	status, err := s.provider.Pay(ctx, amount, donationCurrency, donationDescriptor)
	if err != nil {
		return nil, fmt.Errorf("payment sheet: %w", err)
	}
	donation := &domain.Donation{
		Amount:    amount,
		Currency:  donationCurrency,
		Status:    status,
		CreatedAt: time.Now(),
	}
	s.logger.InfoContext(ctx, "donation processed", "amount", amount, "status", status)
	return donation, nil
}
