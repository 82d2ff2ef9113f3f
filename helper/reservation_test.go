package helper

import (
	"testing"

	"nzoo_immo/constants"
)

func TestInitialStatus(t *testing.T) {
	tests := []struct {
		method string
		want   string
	}{
		{constants.PAYMENT_CASH, constants.RESERVATION_CONFIRMED},
		{constants.PAYMENT_ORANGE_MONEY, constants.RESERVATION_PENDING},
		{constants.PAYMENT_AIRTEL_MONEY, constants.RESERVATION_PENDING},
		{constants.PAYMENT_VISA, constants.RESERVATION_PENDING},
	}

	for _, tt := range tests {
		if got := InitialStatus(tt.method); got != tt.want {
			t.Errorf("InitialStatus(%q) = %q, attendu %q", tt.method, got, tt.want)
		}
	}
}

func TestCanTransition(t *testing.T) {
	tests := []struct {
		name    string
		from    string
		to      string
		allowed bool
	}{
		{"pending vers confirmed", constants.RESERVATION_PENDING, constants.RESERVATION_CONFIRMED, true},
		{"pending vers cancelled", constants.RESERVATION_PENDING, constants.RESERVATION_CANCELLED, true},
		{"pending vers completed interdit", constants.RESERVATION_PENDING, constants.RESERVATION_COMPLETED, false},
		{"confirmed vers completed", constants.RESERVATION_CONFIRMED, constants.RESERVATION_COMPLETED, true},
		{"confirmed vers cancelled", constants.RESERVATION_CONFIRMED, constants.RESERVATION_CANCELLED, true},
		{"confirmed vers pending interdit", constants.RESERVATION_CONFIRMED, constants.RESERVATION_PENDING, false},
		{"cancelled est terminal", constants.RESERVATION_CANCELLED, constants.RESERVATION_PENDING, false},
		{"cancelled vers confirmed interdit", constants.RESERVATION_CANCELLED, constants.RESERVATION_CONFIRMED, false},
		{"completed est terminal", constants.RESERVATION_COMPLETED, constants.RESERVATION_CANCELLED, false},
		{"même statut no-op", constants.RESERVATION_PENDING, constants.RESERVATION_PENDING, true},
		{"même statut terminal no-op", constants.RESERVATION_COMPLETED, constants.RESERVATION_COMPLETED, true},
	}

	for _, tt := range tests {
		err := CanTransition(tt.from, tt.to)
		if tt.allowed && err != nil {
			t.Errorf("%s: transition refusée à tort: %v", tt.name, err)
		}
		if !tt.allowed && err == nil {
			t.Errorf("%s: transition %q -> %q acceptée à tort", tt.name, tt.from, tt.to)
		}
	}
}

func TestStatusAfterExpiry(t *testing.T) {
	tests := []struct {
		status string
		want   string
		ok     bool
	}{
		{constants.RESERVATION_CONFIRMED, constants.RESERVATION_COMPLETED, true},
		{constants.RESERVATION_PENDING, constants.RESERVATION_CANCELLED, true},
		{constants.RESERVATION_CANCELLED, constants.RESERVATION_CANCELLED, false},
		{constants.RESERVATION_COMPLETED, constants.RESERVATION_COMPLETED, false},
	}

	for _, tt := range tests {
		got, ok := StatusAfterExpiry(tt.status)
		if got != tt.want || ok != tt.ok {
			t.Errorf("StatusAfterExpiry(%q) = (%q, %v), attendu (%q, %v)", tt.status, got, ok, tt.want, tt.ok)
		}
	}
}
