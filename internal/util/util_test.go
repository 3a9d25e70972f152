package util

import (
	"testing"
	"time"
)

func TestDisplayNameFromEmail(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		email    string
		expected string
	}{
		{name: "university address", email: "jdoe@student.uni.edu", expected: "jdoe"},
		{name: "surrounding spaces", email: "  amy@uni.edu ", expected: "amy"},
		{name: "no at sign", email: "plain", expected: "plain"},
		{name: "empty", email: "", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := DisplayNameFromEmail(tt.email); got != tt.expected {
				t.Fatalf("DisplayNameFromEmail(%q) = %q, want %q", tt.email, got, tt.expected)
			}
		})
	}
}

func TestIsDigits(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		value    string
		expected bool
	}{
		{name: "isbn 13", value: "9780131103627", expected: true},
		{name: "letters", value: "abc123", expected: false},
		{name: "hyphenated", value: "978-0131103627", expected: false},
		{name: "empty", value: "", expected: false},
		{name: "non ascii digit", value: "١٢٣", expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := IsDigits(tt.value); got != tt.expected {
				t.Fatalf("IsDigits(%q) = %v, want %v", tt.value, got, tt.expected)
			}
		})
	}
}

func TestParsePrice(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		value    string
		expected float64
		ok       bool
	}{
		{name: "whole", value: "45", expected: 45, ok: true},
		{name: "two decimals", value: "45.00", expected: 45, ok: true},
		{name: "one decimal", value: "12.5", expected: 12.5, ok: true},
		{name: "zero", value: "0", ok: false},
		{name: "zero with decimals", value: "0.00", ok: false},
		{name: "three decimals", value: "1.005", ok: false},
		{name: "negative", value: "-3", ok: false},
		{name: "trailing dot", value: "3.", ok: false},
		{name: "letters", value: "ten", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, ok := ParsePrice(tt.value)
			if ok != tt.ok {
				t.Fatalf("ParsePrice(%q) ok = %v, want %v", tt.value, ok, tt.ok)
			}
			if ok && got != tt.expected {
				t.Fatalf("ParsePrice(%q) = %v, want %v", tt.value, got, tt.expected)
			}
		})
	}
}

func TestValidPrice(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		price    float64
		expected bool
	}{
		{name: "positive", price: 45, expected: true},
		{name: "cents", price: 19.99, expected: true},
		{name: "zero", price: 0, expected: false},
		{name: "negative", price: -1, expected: false},
		{name: "sub cent", price: 0.001, expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := ValidPrice(tt.price); got != tt.expected {
				t.Fatalf("ValidPrice(%v) = %v, want %v", tt.price, got, tt.expected)
			}
		})
	}
}

func TestFormatPrice(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		price    float64
		expected string
	}{
		{name: "whole", price: 45, expected: "45.00"},
		{name: "one decimal", price: 12.5, expected: "12.50"},
		{name: "cents", price: 19.99, expected: "19.99"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := FormatPrice(tt.price); got != tt.expected {
				t.Fatalf("FormatPrice(%v) = %s, want %s", tt.price, got, tt.expected)
			}
		})
	}
}

func TestFormatBytes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		bytes    int64
		expected string
	}{
		{name: "zero bytes", bytes: 0, expected: "0 B"},
		{name: "bytes under kilobyte", bytes: 512, expected: "512 B"},
		{name: "exact kilobyte", bytes: 1024, expected: "1.0 KB"},
		{name: "fractional kilobyte", bytes: 1536, expected: "1.5 KB"},
		{name: "megabyte", bytes: 1024 * 1024, expected: "1.0 MB"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := FormatBytes(tt.bytes); got != tt.expected {
				t.Fatalf("FormatBytes(%d) = %s, want %s", tt.bytes, got, tt.expected)
			}
		})
	}
}

func TestFormatDuration(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		duration time.Duration
		expected string
	}{
		{name: "sub second", duration: 250 * time.Millisecond, expected: "250ms"},
		{name: "under one minute", duration: 45 * time.Second, expected: "45s"},
		{name: "minutes and seconds", duration: 2*time.Minute + 30*time.Second, expected: "2m30s"},
		{name: "hours and minutes", duration: time.Hour + 30*time.Minute, expected: "1h30m"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := FormatDuration(tt.duration); got != tt.expected {
				t.Fatalf("FormatDuration(%s) = %s, want %s", tt.duration, got, tt.expected)
			}
		})
	}
}
