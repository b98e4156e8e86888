package extract

import (
	"regexp"
	"strings"
	"testing"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"collapses newlines", "a\nb\n\nc", "a b c"},
		{"collapses tabs and spaces", "a \t b   c", "a b c"},
		{"trims ends", "  hello world \n", "hello world"},
		{"empty", "", ""},
		{"whitespace only", " \n\t ", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := normalize(tt.input); got != tt.expected {
				t.Errorf("Expected %q, got %q", tt.expected, got)
			}
		})
	}
}

func TestFirstMatch(t *testing.T) {
	re := regexp.MustCompile(`(?i)Box 1\s+(\d+)`)

	if got := firstMatch(re, "box 1 42 and box 1 99"); got != "42" {
		t.Errorf("Expected first match '42', got %q", got)
	}
	if got := firstMatch(re, "no boxes here"); got != "" {
		t.Errorf("Expected empty string for no match, got %q", got)
	}
}

func TestExtractMoney(t *testing.T) {
	tests := []struct {
		name     string
		label    string
		text     string
		expected string
	}{
		{"plain amount", "Wages, tips, other comp", "Wages, tips, other comp 50000.00", "50000.00"},
		{"dollar sign", "Wages, tips, other comp", "Wages, tips, other comp $1,234.56", "1,234.56"},
		{"no fraction", "Medicare wages", "Medicare wages 61000", "61000"},
		{"label missing", "Wages, tips, other comp", "nothing relevant", ""},
		{"case insensitive", "wages, tips, other comp", "WAGES, TIPS, OTHER COMP 99.00", "99.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := extractMoney(tt.label, tt.text); got != tt.expected {
				t.Errorf("Expected %q, got %q", tt.expected, got)
			}
		})
	}
}

// Extracted amounts must stay literal decimal strings: digits, thousands
// separators and at most one decimal point.
func TestExtractMoneyCharacterSet(t *testing.T) {
	texts := []string{
		"Wages, tips, other comp $52,500.25 extra",
		"Wages, tips, other comp 1.00",
		"Wages, tips, other comp 1,000,000.00 and 17.00",
	}

	for _, text := range texts {
		got := extractMoney("Wages, tips, other comp", text)
		if got == "" {
			t.Fatalf("Expected a match in %q", text)
		}
		if strings.Count(got, ".") > 1 {
			t.Errorf("More than one decimal point in %q", got)
		}
		for _, r := range got {
			if (r < '0' || r > '9') && r != ',' && r != '.' {
				t.Errorf("Unexpected character %q in amount %q", r, got)
			}
		}
	}
}

func TestSplitName(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		first  string
		middle string
		last   string
	}{
		{"empty", "   ", "", "", ""},
		{"single token", "MADONNA", "MADONNA", "", ""},
		{"two tokens", "JOHN DOE", "JOHN", "", "DOE"},
		{"three tokens", "JOHN Q PUBLIC", "JOHN", "Q", "PUBLIC"},
		{"four tokens join middle", "JOHN JACOB JINGLEHEIMER SCHMIDT", "JOHN", "JACOB JINGLEHEIMER", "SCHMIDT"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			first, middle, last := splitName(tt.input)
			if deref(first) != tt.first {
				t.Errorf("Expected first %q, got %q", tt.first, deref(first))
			}
			if deref(middle) != tt.middle {
				t.Errorf("Expected middle %q, got %q", tt.middle, deref(middle))
			}
			if deref(last) != tt.last {
				t.Errorf("Expected last %q, got %q", tt.last, deref(last))
			}
		})
	}
}
