package errors

import (
	"math"
	"strings"
	"testing"
)

func TestValidateNonNegative(t *testing.T) {
	tests := []struct {
		name    string
		input   float64
		wantErr bool
	}{
		{"zero", 0, false},
		{"positive", 6650, false},
		{"negative", -1, true},
		{"NaN", math.NaN(), true},
		{"+Inf", math.Inf(1), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateNonNegative("length", tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateNonNegative(%v) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeIngestion) {
				t.Errorf("code = %v, want %v", GetCode(err), ErrCodeIngestion)
			}
		})
	}
}

func TestValidateFinite(t *testing.T) {
	if err := ValidateFinite("avg_temp", -12.5); err != nil {
		t.Errorf("negative temperatures are valid: %v", err)
	}
	if err := ValidateFinite("avg_temp", math.Inf(-1)); err == nil {
		t.Error("expected error for -Inf")
	}
}

func TestValidatePositive(t *testing.T) {
	tests := []struct {
		name    string
		input   float64
		wantErr bool
	}{
		{"positive", 10, false},
		{"zero", 0, true},
		{"negative", -800, true},
		{"NaN", math.NaN(), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePositive("width", tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidatePositive(%v) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidConfig) {
				t.Errorf("code = %v, want %v", GetCode(err), ErrCodeInvalidConfig)
			}
		})
	}
}

func TestValidateSpacing(t *testing.T) {
	if err := ValidateSpacing("row_gap", 0); err != nil {
		t.Errorf("zero spacing should be valid: %v", err)
	}
	if err := ValidateSpacing("row_gap", -0.5); err == nil {
		t.Error("negative spacing should be rejected")
	}
}

func TestValidatePath(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"relative", "assets/rivers.csv", false},
		{"absolute", "/tmp/rivers.csv", false},
		{"empty", "", true},
		{"blank", "   ", true},
		{"null byte", "rivers\x00.csv", true},
		{"newline", "rivers\n.csv", true},
		{"too long", strings.Repeat("a", 5000), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePath(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidatePath(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}
