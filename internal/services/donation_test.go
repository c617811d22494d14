package services

import (
	"context"
	"errors"
	"testing"

	"github.com/harvfi/ecudecaalumni2/internal/domain"
)

func TestDonationService_Donate(t *testing.T) {
	tests := []struct {
		name       string
		provider   *mockPaymentProvider
		amount     string
		wantStatus string
		wantErr    error
	}{
		{
			name:       "successful donation",
			provider:   &mockPaymentProvider{available: true, status: domain.DonationSucceeded},
			amount:     "25.00",
			wantStatus: domain.DonationSucceeded,
		},
		{
			name:       "cancelled sheet resolves, not errors",
			provider:   &mockPaymentProvider{available: true, status: domain.DonationCancelled},
			amount:     "25.00",
			wantStatus: domain.DonationCancelled,
		},
		{
			name:     "unavailable provider is unsupported",
			provider: &mockPaymentProvider{available: false},
			amount:   "25.00",
			wantErr:  domain.ErrPaymentUnsupported,
		},
		{
			name:     "non-numeric amount is rejected",
			provider: &mockPaymentProvider{available: true},
			amount:   "lots",
			wantErr:  domain.ErrInvalidInput,
		},
		{
			name:     "zero amount is rejected",
			provider: &mockPaymentProvider{available: true},
			amount:   "0",
			wantErr:  domain.ErrInvalidInput,
		},
		{
			name:     "negative amount is rejected",
			provider: &mockPaymentProvider{available: true},
			amount:   "-5",
			wantErr:  domain.ErrInvalidInput,
		},
		{
			name:     "infinity is rejected",
			provider: &mockPaymentProvider{available: true},
			amount:   "Inf",
			wantErr:  domain.ErrInvalidInput,
		},
		{
			name:     "NaN is rejected",
			provider: &mockPaymentProvider{available: true},
			amount:   "NaN",
			wantErr:  domain.ErrInvalidInput,
		},
		{
			name:     "exponent form is rejected",
			provider: &mockPaymentProvider{available: true},
			amount:   "1e300",
			wantErr:  domain.ErrInvalidInput,
		},
		{
			name:     "signed amount is rejected",
			provider: &mockPaymentProvider{available: true},
			amount:   "+10",
			wantErr:  domain.ErrInvalidInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewDonationService(tt.provider, testLogger)
			donation, err := svc.Donate(context.Background(), tt.amount)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("err = %v, want %v", err, tt.wantErr)
				}
				if len(tt.provider.paid) != 0 {
					t.Error("provider must not be charged on a rejected donation")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if donation.Status != tt.wantStatus {
				t.Errorf("status = %q, want %q", donation.Status, tt.wantStatus)
			}
			if donation.Amount != tt.amount {
				t.Errorf("amount = %q, want %q", donation.Amount, tt.amount)
			}
			if donation.Currency != "USD" {
				t.Errorf("currency = %q, want USD", donation.Currency)
			}
		})
	}
}

func TestDonationService_Donate_ProviderError(t *testing.T) {
	provider := &mockPaymentProvider{available: true, err: errors.New("card network down")}
	svc := NewDonationService(provider, testLogger)
	if _, err := svc.Donate(context.Background(), "10.00"); err == nil {
		t.Fatal("expected error")
	}
}
