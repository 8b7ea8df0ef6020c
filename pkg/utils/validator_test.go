package utils

import (
	"strings"
	"testing"
	"time"
)

type textInput struct {
	Name string `json:"name" validate:"required,min=2,max=5,safetext"`
}

type dateInput struct {
	Date string `json:"date" validate:"required,datetime=2006-01-02,notfuture"`
}

type passwordInput struct {
	Password string `json:"password" validate:"required,strongpassword"`
}

func pinClock(t *testing.T, now time.Time) {
	t.Helper()
	prev := clock
	clock = func() time.Time { return now }
	t.Cleanup(func() { clock = prev })
}

func TestValidateStructSafeText(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr string
	}{
		{"plain", "Abc", ""},
		{"allowed punctuation", "a_b.!", ""},
		{"space and comma", "a, b", ""},
		{"semicolon", "ab;", "Only letters"},
		{"quote", `a"b`, "Only letters"},
		{"too short", "a", "Minimum length is 2"},
		{"too long", "abcdef", "Maximum length is 5"},
		{"empty", "", "This field is required"},
		// lengths are counted in characters
		{"multibyte within max", "ééé", "Only letters"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := ValidateStruct(textInput{Name: tt.input})
			if tt.wantErr == "" {
				if len(errs) != 0 {
					t.Fatalf("ValidateStruct() = %v, want no errors", errs)
				}
				return
			}
			if len(errs) != 1 {
				t.Fatalf("ValidateStruct() = %v, want one error", errs)
			}
			if errs[0].Field != "name" {
				t.Errorf("Field = %q, want %q", errs[0].Field, "name")
			}
			if !strings.HasPrefix(errs[0].Message, tt.wantErr) {
				t.Errorf("Message = %q, want prefix %q", errs[0].Message, tt.wantErr)
			}
		})
	}
}

func TestValidateStructNotFuture(t *testing.T) {
	pinClock(t, time.Date(2024, 6, 15, 23, 59, 0, 0, time.UTC))

	tests := []struct {
		date    string
		wantMsg string
	}{
		{"2024-06-14", ""},
		{"2024-06-15", ""},
		{"1895-12-28", ""},
		{"2024-06-16", "Release date must be in the past"},
		{"2030-01-01", "Release date must be in the past"},
		{"15-06-2024", "Date format must be YYYY-MM-DD"},
		{"2024-02-30", "Date format must be YYYY-MM-DD"},
	}

	for _, tt := range tests {
		t.Run(tt.date, func(t *testing.T) {
			errs := ValidateStruct(dateInput{Date: tt.date})
			if tt.wantMsg == "" {
				if len(errs) != 0 {
					t.Fatalf("ValidateStruct() = %v, want no errors", errs)
				}
				return
			}
			if len(errs) != 1 || errs[0].Message != tt.wantMsg {
				t.Fatalf("ValidateStruct() = %v, want %q", errs, tt.wantMsg)
			}
		})
	}
}

func TestValidateStructStrongPassword(t *testing.T) {
	tests := []struct {
		password string
		valid    bool
	}{
		{"Secret123", true},
		{"secret123", false},
		{"SECRET123", false},
		{"SecretPass", false},
	}

	for _, tt := range tests {
		t.Run(tt.password, func(t *testing.T) {
			errs := ValidateStruct(passwordInput{Password: tt.password})
			if got := len(errs) == 0; got != tt.valid {
				t.Errorf("valid = %v, want %v (errors %v)", got, tt.valid, errs)
			}
		})
	}
}

func TestValidateStructCollectsAllErrors(t *testing.T) {
	type pair struct {
		A string `json:"a" validate:"required"`
		B int    `json:"b" validate:"gte=1"`
	}

	errs := ValidateStruct(pair{})
	if len(errs) != 2 {
		t.Fatalf("ValidateStruct() = %v, want 2 errors", errs)
	}
	if errs[0].Field != "a" || errs[1].Field != "b" {
		t.Errorf("fields = %q, %q, want a, b", errs[0].Field, errs[1].Field)
	}

	got := FormatValidationErrors(errs)
	want := "a: This field is required; b: Must be greater than or equal to 1"
	if got != want {
		t.Errorf("FormatValidationErrors() = %q, want %q", got, want)
	}
}
