package cli

import (
	"bytes"
	"strings"
	"testing"
)

func TestChoose(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
		ok       bool
	}{
		{"first option", "1\n", "alpha", true},
		{"retries invalid then accepts", "0\nbanana\n2\n", "beta", true},
		{"cancel", "q\n", "", false},
		{"eof", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			p := NewPrompterIO(strings.NewReader(tt.input), &out)

			got, ok := p.Choose("Pick:", []string{"alpha", "beta"})
			if ok != tt.ok || got != tt.expected {
				t.Errorf("Choose = %q, %v; want %q, %v", got, ok, tt.expected, tt.ok)
			}
		})
	}
}

func TestAskInt(t *testing.T) {
	def := 7

	tests := []struct {
		name     string
		input    string
		def      *int
		expected int
		ok       bool
	}{
		{"in range", "5\n", nil, 5, true},
		{"empty uses default", "\n", &def, 7, true},
		{"out of range retries", "99\n3\n", nil, 3, true},
		{"cancel", "q\n", nil, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			p := NewPrompterIO(strings.NewReader(tt.input), &out)

			got, ok := p.AskInt("Blocks:", 0, 10, tt.def)
			if ok != tt.ok || got != tt.expected {
				t.Errorf("AskInt = %d, %v; want %d, %v", got, ok, tt.expected, tt.ok)
			}
		})
	}
}

func TestAskYes(t *testing.T) {
	tests := []struct {
		input    string
		expected bool
	}{
		{"y\n", true},
		{"yes\n", true},
		{"s\n", true},
		{"n\n", false},
		{"\n", false},
	}

	for _, tt := range tests {
		var out bytes.Buffer
		p := NewPrompterIO(strings.NewReader(tt.input), &out)
		if got := p.AskYes("Track blocks?"); got != tt.expected {
			t.Errorf("AskYes(%q) = %v, want %v", strings.TrimSpace(tt.input), got, tt.expected)
		}
	}
}
