package core

import "testing"

func TestNewID_UniqueWithinBatch(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		id := newID()
		if id == "" {
			t.Fatal("newID() returned empty id")
		}
		if seen[id] {
			t.Fatalf("newID() returned duplicate id %q", id)
		}
		seen[id] = true
	}
}

func TestFormatTracking(t *testing.T) {
	if got := formatTracking(8001); got != "ATS8001" {
		t.Errorf("formatTracking(8001) = %q, want %q", got, "ATS8001")
	}
}

func TestParseTracking(t *testing.T) {
	tests := []struct {
		in     string
		want   int
		wantOK bool
	}{
		{"ATS8001", 8001, true},
		{"ATS8000", 8000, true},
		{"ATS0", 0, true},
		{"ats8001", 0, false},
		{"ATS", 0, false},
		{"ATS-5", 0, false},
		{"ATS8001x", 0, false},
		{"8001", 0, false},
		{"", 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := parseTracking(tt.in)
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("parseTracking(%q) = %d, %v; want %d, %v", tt.in, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}
