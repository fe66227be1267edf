package util

import "testing"

func TestFormatPence(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		pence    int64
		expected string
	}{
		{name: "zero", pence: 0, expected: "£0.00"},
		{name: "pence only", pence: 7, expected: "£0.07"},
		{name: "whole pounds", pence: 55000, expected: "£550.00"},
		{name: "thousands", pence: 123456, expected: "£1,234.56"},
		{name: "millions", pence: 123456789, expected: "£1,234,567.89"},
		{name: "negative", pence: -250, expected: "-£2.50"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := FormatPence(tt.pence); got != tt.expected {
				t.Fatalf("FormatPence(%d) = %s, want %s", tt.pence, got, tt.expected)
			}
		})
	}
}

func TestFormatPencePlain(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		pence    int64
		expected string
	}{
		{name: "pence only", pence: 7, expected: "£0.07"},
		{name: "thousands", pence: 123456, expected: "£1234.56"},
		{name: "negative", pence: -250, expected: "-£2.50"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := FormatPencePlain(tt.pence); got != tt.expected {
				t.Fatalf("FormatPencePlain(%d) = %s, want %s", tt.pence, got, tt.expected)
			}
		})
	}
}

func TestSumPence(t *testing.T) {
	t.Parallel()

	type line struct {
		price int64
		qty   int
	}
	lines := []line{{price: 50000, qty: 1}, {price: 2500, qty: 2}}

	got := SumPence(lines, func(l line) int64 { return l.price }, func(l line) int { return l.qty })
	if got != 55000 {
		t.Fatalf("SumPence = %d, want 55000", got)
	}
}
