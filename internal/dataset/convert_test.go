package dataset

import (
	"testing"
	"time"
)

// ----------------------------------------------------------------------------
// parseDate Tests
// ----------------------------------------------------------------------------

func TestParseDate(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantOK   bool
		wantErr  bool
		wantTime time.Time
	}{
		{
			name:     "ISO date",
			input:    "2020-01-15",
			wantOK:   true,
			wantTime: time.Date(2020, 1, 15, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "ISO date with time",
			input:    "2020-01-15 09:30:00",
			wantOK:   true,
			wantTime: time.Date(2020, 1, 15, 9, 30, 0, 0, time.UTC),
		},
		{
			name:     "US slashes",
			input:    "1/15/2020",
			wantOK:   true,
			wantTime: time.Date(2020, 1, 15, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "month name",
			input:    "Jan 15, 2020",
			wantOK:   true,
			wantTime: time.Date(2020, 1, 15, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "compact",
			input:    "20200115",
			wantOK:   true,
			wantTime: time.Date(2020, 1, 15, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "two digit year past",
			input:    "1/15/99",
			wantOK:   true,
			wantTime: time.Date(1999, 1, 15, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "surrounding whitespace",
			input:    "  2020-01-15  ",
			wantOK:   true,
			wantTime: time.Date(2020, 1, 15, 0, 0, 0, 0, time.UTC),
		},
		{
			name:   "empty is absent not error",
			input:  "",
			wantOK: false,
		},
		{
			name:    "garbage",
			input:   "not a date",
			wantErr: true,
		},
		{
			name:    "out of range month",
			input:   "2020-13-01",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok, err := parseDate(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("parseDate(%q) expected error, got %v", tt.input, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("parseDate(%q) error = %v", tt.input, err)
			}
			if ok != tt.wantOK {
				t.Fatalf("parseDate(%q) ok = %v, want %v", tt.input, ok, tt.wantOK)
			}
			if ok && !got.Equal(tt.wantTime) {
				t.Errorf("parseDate(%q) = %v, want %v", tt.input, got, tt.wantTime)
			}
		})
	}
}

// ----------------------------------------------------------------------------
// parseNumber Tests
// ----------------------------------------------------------------------------

func TestParseNumber(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantOK  bool
		wantErr bool
		want    float64
	}{
		{
			name:   "plain integer",
			input:  "123",
			wantOK: true,
			want:   123,
		},
		{
			name:   "decimal",
			input:  "123.45",
			wantOK: true,
			want:   123.45,
		},
		{
			name:   "thousands separators",
			input:  "1,234,567.89",
			wantOK: true,
			want:   1234567.89,
		},
		{
			name:   "currency symbol",
			input:  "$1,234.56",
			wantOK: true,
			want:   1234.56,
		},
		{
			name:   "accounting negative",
			input:  "(123.45)",
			wantOK: true,
			want:   -123.45,
		},
		{
			name:   "leading decimal point",
			input:  ".99",
			wantOK: true,
			want:   0.99,
		},
		{
			name:   "scientific notation",
			input:  "1.5e3",
			wantOK: true,
			want:   1500,
		},
		{
			name:   "empty is absent not error",
			input:  "",
			wantOK: false,
		},
		{
			name:    "letters",
			input:   "abc",
			wantErr: true,
		},
		{
			name:    "double decimal point",
			input:   "1.2.3",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok, err := parseNumber(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("parseNumber(%q) expected error, got %v", tt.input, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("parseNumber(%q) error = %v", tt.input, err)
			}
			if ok != tt.wantOK {
				t.Fatalf("parseNumber(%q) ok = %v, want %v", tt.input, ok, tt.wantOK)
			}
			if ok && got != tt.want {
				t.Errorf("parseNumber(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

// ----------------------------------------------------------------------------
// round2 / cleanCell Tests
// ----------------------------------------------------------------------------

func TestRound2(t *testing.T) {
	tests := []struct {
		name  string
		input float64
		want  float64
	}{
		{name: "conversion of 100 sqmt", input: 100 * SqftPerSqmt, want: 1076.39},
		{name: "round up", input: 1.005 * 10, want: 10.05},
		{name: "already two decimals", input: 42.25, want: 42.25},
		{name: "integer", input: 7, want: 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := round2(tt.input); got != tt.want {
				t.Errorf("round2(%v) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestCleanCell(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "whitespace", input: "  OCEAN HEIGHTS  ", want: "OCEAN HEIGHTS"},
		{name: "excel formula quoted", input: `="12345"`, want: "12345"},
		{name: "excel formula bare", input: "=12345", want: "12345"},
		{name: "surrounding quotes", input: `"A-3-0601"`, want: "A-3-0601"},
		{name: "untouched", input: "971-50-1112233", want: "971-50-1112233"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := cleanCell(tt.input); got != tt.want {
				t.Errorf("cleanCell(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
