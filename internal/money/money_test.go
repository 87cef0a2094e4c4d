package money

import (
	"math"
	"strings"
	"testing"
)

func mustParse(t *testing.T, s string) Amount {
	t.Helper()
	a, err := Parse(s)
	if err != nil {
		t.Fatalf("Parse(%q) error = %v, want nil", s, err)
	}
	return a
}

func TestParse_Valid(t *testing.T) {
	testCases := []string{"0", "0.01", "100.50", "9999999.99", "-30.25"}

	for _, s := range testCases {
		if _, err := Parse(s); err != nil {
			t.Errorf("Parse(%q) error = %v, want nil", s, err)
		}
	}
}

func TestParse_NonNumeric(t *testing.T) {
	testCases := []string{"", "abc", "10,50", "1.2.3", "NaN"}

	for _, s := range testCases {
		if _, err := Parse(s); err == nil {
			t.Errorf("Parse(%q) error = nil, want error", s)
		}
	}
}

func TestFromFloat_RejectsNonFinite(t *testing.T) {
	for _, f := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		if _, err := FromFloat(f); err == nil {
			t.Errorf("FromFloat(%v) error = nil, want error", f)
		}
	}

	if _, err := FromFloat(100.50); err != nil {
		t.Errorf("FromFloat(100.50) error = %v, want nil", err)
	}
}

func TestNeg(t *testing.T) {
	a := mustParse(t, "30.25")
	if got := a.Neg().String(); got != "-30.25" {
		t.Errorf("Neg() = %s, want -30.25", got)
	}
	if !a.Neg().IsNegative() {
		t.Error("Neg() of a positive amount should be negative")
	}
}

func TestAdd_NoFloatDrift(t *testing.T) {
	// 0.1 + 0.2 must be exactly 0.3, not 0.30000000000000004
	sum := mustParse(t, "0.1").Add(mustParse(t, "0.2"))
	if !sum.Equal(mustParse(t, "0.3")) {
		t.Errorf("0.1 + 0.2 = %s, want 0.3", sum)
	}
}

func TestString_TwoDecimals(t *testing.T) {
	testCases := map[string]string{
		"100.5":   "100.50",
		"0":       "0.00",
		"-30.25":  "-30.25",
		"70.2500": "70.25",
	}

	for in, want := range testCases {
		if got := mustParse(t, in).String(); got != want {
			t.Errorf("String(%s) = %s, want %s", in, got, want)
		}
	}
}

func TestJSON_Roundtrip(t *testing.T) {
	a := mustParse(t, "100.50")
	data, err := a.MarshalJSON()
	if err != nil {
		t.Fatalf("MarshalJSON error = %v", err)
	}
	if string(data) != "100.50" {
		t.Errorf("MarshalJSON = %s, want 100.50 (unquoted number)", data)
	}

	var b Amount
	if err := b.UnmarshalJSON(data); err != nil {
		t.Fatalf("UnmarshalJSON error = %v", err)
	}
	if !a.Equal(b) {
		t.Errorf("roundtrip mismatch: %s != %s", a, b)
	}
}

func TestUnmarshalJSON_RejectsNonNumeric(t *testing.T) {
	testCases := []string{`"abc"`, `true`, `{}`, `"NaN"`}

	for _, in := range testCases {
		var a Amount
		if err := a.UnmarshalJSON([]byte(in)); err == nil {
			t.Errorf("UnmarshalJSON(%s) error = nil, want error", in)
		}
	}
}

func TestDisplay_BrazilianCurrency(t *testing.T) {
	got := mustParse(t, "70.25").Display()
	if !strings.Contains(got, "R$") {
		t.Errorf("Display() = %q, want BRL symbol", got)
	}
	if !strings.Contains(got, "70") {
		t.Errorf("Display() = %q, want the integral part rendered", got)
	}
}
