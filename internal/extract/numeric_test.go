package extract

import "testing"

func TestParseFloat(t *testing.T) {
	tests := []struct {
		in   string
		want float64
	}{
		{"2.5", 2.5},
		{" 12,500 ", 12500},
		{"１２.５", 12.5},
		{"１，２００", 1200},
		{"3.5kg", 3.5},
		{"約100", 100},
		{"", 0},
		{"unknown", 0},
	}
	for _, tt := range tests {
		if got := ParseFloat(tt.in); got != tt.want {
			t.Errorf("ParseFloat(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestParseInt(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"30", 30},
		{"３０個", 30},
		{"1,200", 1200},
		{"2.9", 2}, // counts truncate
		{"", 0},
	}
	for _, tt := range tests {
		if got := ParseInt(tt.in); got != tt.want {
			t.Errorf("ParseInt(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}
