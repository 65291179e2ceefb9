package foliomail

import "testing"

func TestMoneyString(t *testing.T) {
	tests := []struct {
		m    Money
		want string
	}{
		{M(2250.0, "USD"), "$2,250.00"},
		{M(0.5, "USD"), "$0.50"},
		{M(-125.75, "USD"), "-$125.75"},
		{M(1234567.89, "USD"), "$1,234,567.89"},
		{Money{}, "$0.00"}, // zero value falls back to USD
	}
	for _, tc := range tests {
		if got := tc.m.String(); got != tc.want {
			t.Errorf("String() = %q, want %q", got, tc.want)
		}
	}
}

func TestMoneySignedString(t *testing.T) {
	tests := []struct {
		m    Money
		want string
	}{
		{M(1250.50, "USD"), "+$1,250.50"},
		{M(-80.0, "USD"), "-$80.00"},
		{M(0, "USD"), "-"},
	}
	for _, tc := range tests {
		if got := tc.m.SignedString(); got != tc.want {
			t.Errorf("SignedString() = %q, want %q", got, tc.want)
		}
	}
}

func TestMoneyClass(t *testing.T) {
	if got := M(1.0, "USD").Class(); got != "positive" {
		t.Errorf("positive class = %q", got)
	}
	if got := M(-1.0, "USD").Class(); got != "negative" {
		t.Errorf("negative class = %q", got)
	}
	// zero counts as positive
	if got := M(0, "USD").Class(); got != "positive" {
		t.Errorf("zero class = %q", got)
	}
}

func TestMoneyAddWeakCurrency(t *testing.T) {
	sum := M(0, "").Add(M(10.0, "USD")).Add(M(5.0, "USD"))
	if !sum.Equal(M(15.0, "USD")) {
		t.Errorf("sum = %s, want $15.00", sum)
	}
	if sum.Currency() != "USD" {
		t.Errorf("currency = %q, want USD", sum.Currency())
	}
}

func TestQuantityCommas(t *testing.T) {
	tests := []struct {
		q    Quantity
		want string
	}{
		{Q(75), "75"},
		{Q(1500), "1,500"},
		{Q(18500), "18,500"},
		{Q(2.4), "2"}, // rounded for display
	}
	for _, tc := range tests {
		if got := tc.q.Commas(); got != tc.want {
			t.Errorf("Commas() = %q, want %q", got, tc.want)
		}
	}
}

func TestPercentStrings(t *testing.T) {
	if got := Percent(1.5).String(); got != "1.50%" {
		t.Errorf("String() = %q", got)
	}
	if got := Percent(1.5).SignedString(); got != "+1.50%" {
		t.Errorf("SignedString() = %q", got)
	}
	if got := Percent(-0.8).SignedString(); got != "-0.80%" {
		t.Errorf("SignedString() = %q", got)
	}
	if got := Percent(0).SignedString(); got != "-" {
		t.Errorf("zero SignedString() = %q", got)
	}
	if got := Percent(-0.8).Class(); got != "negative" {
		t.Errorf("Class() = %q", got)
	}
}
