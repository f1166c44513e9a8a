package format_test

import (
	"strings"
	"testing"
	"time"

	"rentdesk/internal/format"
)

func TestDate(t *testing.T) {
	if got := format.Date(time.Date(2024, 3, 7, 15, 0, 0, 0, time.UTC)); got != "07/03/2024" {
		t.Errorf("Date: got %q", got)
	}
	if got := format.Date(time.Time{}); got != "" {
		t.Errorf("zero time: got %q", got)
	}
	if got := format.DateForInput(time.Date(2024, 3, 7, 0, 0, 0, 0, time.UTC)); got != "2024-03-07" {
		t.Errorf("DateForInput: got %q", got)
	}
}

func TestCPF(t *testing.T) {
	cases := []struct{ in, want string }{
		{"39053344705", "390.533.447-05"},
		{"390.533.447-05", "390.533.447-05"},
		{"1234", "1234"},
		{"", ""},
	}
	for _, tc := range cases {
		if got := format.CPF(tc.in); got != tc.want {
			t.Errorf("CPF(%q): got %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestPhone(t *testing.T) {
	cases := []struct{ in, want string }{
		{"11987654321", "(11) 98765-4321"},
		{"2133445566", "(21) 3344-5566"},
		{"(11) 98765-4321", "(11) 98765-4321"},
		{"123", "123"},
		{"", ""},
	}
	for _, tc := range cases {
		if got := format.Phone(tc.in); got != tc.want {
			t.Errorf("Phone(%q): got %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestCEP(t *testing.T) {
	cases := []struct{ in, want string }{
		{"01310100", "01310-100"},
		{"01310-100", "01310-100"},
		{"123", "123"},
	}
	for _, tc := range cases {
		if got := format.CEP(tc.in); got != tc.want {
			t.Errorf("CEP(%q): got %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestCurrency(t *testing.T) {
	// Exact digit grouping comes from the locale tables; pin down only
	// the parts that must hold for pt-BR.
	got := format.Currency(2450)
	if !strings.HasPrefix(got, "R$ ") {
		t.Errorf("Currency(2450): missing prefix, got %q", got)
	}
	if !strings.Contains(got, ",00") {
		t.Errorf("Currency(2450): want decimal comma, got %q", got)
	}
}

func TestParseBRL(t *testing.T) {
	cases := []struct {
		in   string
		want float64
	}{
		{"R$ 1.234,56", 1234.56},
		{"2450,00", 2450},
		{"980", 980},
		{"", 0},
		{"abc", 0},
	}
	for _, tc := range cases {
		if got := format.ParseBRL(tc.in); got != tc.want {
			t.Errorf("ParseBRL(%q): got %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestCurrencyParseRoundTrip(t *testing.T) {
	for _, v := range []float64{0, 980, 2450.5, 1234567.89} {
		if got := format.ParseBRL(format.Currency(v)); got != v {
			t.Errorf("round trip %v: got %v", v, got)
		}
	}
}
