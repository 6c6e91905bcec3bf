package api

import (
	"strings"
	"testing"
)

func strPtr(s string) *string { return &s }

func numPtr(f float64) *float64 { return &f }

func TestValidateRegistration(t *testing.T) {
	tests := []struct {
		name    string
		req     registerRequest
		wantErr int
	}{
		{"valid", registerRequest{"alice", "a@x.com", "pass1234"}, 0},
		{"all empty", registerRequest{"", "", ""}, 3},
		{"short username", registerRequest{"ab", "a@x.com", "pass1234"}, 1},
		{"long username", registerRequest{strings.Repeat("a", 31), "a@x.com", "pass1234"}, 1},
		{"bad charset", registerRequest{"al!ce", "a@x.com", "pass1234"}, 1},
		{"underscore ok", registerRequest{"al_ce", "a@x.com", "pass1234"}, 0},
		{"bad email", registerRequest{"alice", "not-an-email", "pass1234"}, 1},
		{"short password", registerRequest{"alice", "a@x.com", "pass1"}, 1},
		{"no digit", registerRequest{"alice", "a@x.com", "password"}, 1},
		{"no letter", registerRequest{"alice", "a@x.com", "12345678"}, 1},
		{"multibyte password counts characters", registerRequest{"alice", "a@x.com", "日日1a"}, 1},
		{"multibyte password long enough", registerRequest{"alice", "a@x.com", "日本語日本語1a"}, 0},
		{"everything wrong", registerRequest{"a", "bad", "short"}, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := validateRegistration(tt.req)
			if len(errs) != tt.wantErr {
				t.Errorf("expected %d errors, got %d: %v", tt.wantErr, len(errs), errs)
			}
		})
	}
}

func TestValidateRegistrationChecksCharsetAfterLength(t *testing.T) {
	// Length and charset violations report the length message only.
	errs := validateRegistration(registerRequest{"a!", "a@x.com", "pass1234"})
	if len(errs) != 1 {
		t.Fatalf("expected 1 error, got %d: %v", len(errs), errs)
	}
	if !strings.Contains(errs[0], "between 3 and 30") {
		t.Errorf("expected length message, got %q", errs[0])
	}
}

func TestValidateCreateItem(t *testing.T) {
	valid := itemRequest{
		ItemName: strPtr("Widget"),
		Quantity: numPtr(5),
		Price:    numPtr(9.99),
	}
	if errs := validateCreateItem(valid); len(errs) != 0 {
		t.Errorf("expected no errors, got %v", errs)
	}

	tests := []struct {
		name    string
		req     itemRequest
		wantErr int
	}{
		{"empty body", itemRequest{}, 3},
		{"short name", itemRequest{strPtr("ab"), nil, numPtr(1), numPtr(1)}, 1},
		{"long name", itemRequest{strPtr(strings.Repeat("x", 101)), nil, numPtr(1), numPtr(1)}, 1},
		{"long description", itemRequest{strPtr("Widget"), strPtr(strings.Repeat("x", 501)), numPtr(1), numPtr(1)}, 1},
		{"negative quantity", itemRequest{strPtr("Widget"), nil, numPtr(-1), numPtr(1)}, 1},
		{"fractional quantity", itemRequest{strPtr("Widget"), nil, numPtr(5.5), numPtr(1)}, 1},
		{"quantity too large for int64", itemRequest{strPtr("Widget"), nil, numPtr(1e19), numPtr(1)}, 1},
		{"multibyte name one character", itemRequest{strPtr("日"), nil, numPtr(1), numPtr(1)}, 1},
		{"multibyte name counts characters", itemRequest{strPtr("日本語"), nil, numPtr(1), numPtr(1)}, 0},
		{"multibyte description counts characters", itemRequest{strPtr("Widget"), strPtr(strings.Repeat("日", 500)), numPtr(1), numPtr(1)}, 0},
		{"negative price", itemRequest{strPtr("Widget"), nil, numPtr(1), numPtr(-0.01)}, 1},
		{"zero quantity and price ok", itemRequest{strPtr("Widget"), nil, numPtr(0), numPtr(0)}, 0},
		{"all wrong", itemRequest{strPtr("x"), strPtr(strings.Repeat("x", 501)), numPtr(-1), numPtr(-1)}, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := validateCreateItem(tt.req)
			if len(errs) != tt.wantErr {
				t.Errorf("expected %d errors, got %d: %v", tt.wantErr, len(errs), errs)
			}
		})
	}
}

func TestValidateUpdateItemOnlyChecksPresentFields(t *testing.T) {
	// An empty patch is valid: every field keeps its current value.
	if errs := validateUpdateItem(itemRequest{}); len(errs) != 0 {
		t.Errorf("expected no errors for empty patch, got %v", errs)
	}

	// A present field is validated with the create rules.
	errs := validateUpdateItem(itemRequest{Quantity: numPtr(-3)})
	if len(errs) != 1 {
		t.Fatalf("expected 1 error, got %d: %v", len(errs), errs)
	}
	if !strings.Contains(errs[0], "non-negative integer") {
		t.Errorf("expected quantity message, got %q", errs[0])
	}

	errs = validateUpdateItem(itemRequest{ItemName: strPtr("ab"), Price: numPtr(-1)})
	if len(errs) != 2 {
		t.Errorf("expected 2 errors, got %d: %v", len(errs), errs)
	}
}
