package middleware

import "testing"

func TestNormalizePath(t *testing.T) {
	tests := []struct {
		path     string
		expected string
	}{
		{"/api/v1/accounts/01HX5K3M", "/api/v1/accounts/:id"},
		{"/api/v1/accounts/01HX5K3M/transfers", "/api/v1/accounts/:id/transfers"},
		{"/api/v1/transfers/01HX5K3M", "/api/v1/transfers/:id"},
		{"/api/v1/customers/01HX5K3M/default-account", "/api/v1/customers/:id/default-account"},
		{"/api/v1/scheduled-payments/01HX5K3M/payments", "/api/v1/scheduled-payments/:id/payments"},
		{"/api/v1/scheduled-payments/due", "/api/v1/scheduled-payments/due"},
		{"/api/v1/payments/run", "/api/v1/payments/run"},
		{"/api/v1/accounts", "/api/v1/accounts"},
		{"/api/v1/accounts/", "/api/v1/accounts/"},
		{"/health", "/health"},
		{"/metrics", "/metrics"},
	}

	for _, tt := range tests {
		if got := normalizePath(tt.path); got != tt.expected {
			t.Errorf("normalizePath(%q) = %q, expected %q", tt.path, got, tt.expected)
		}
	}
}
