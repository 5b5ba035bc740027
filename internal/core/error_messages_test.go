package core

import (
	"errors"
	"fmt"
	"testing"
)

func TestMapError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode string
	}{
		{"nil error", nil, "OK"},
		{"duplicate email", fmt.Errorf("%w: a@x.com", ErrDuplicateEmail), "APP001"},
		{"invalid draft", ErrInvalidDraft, "VAL001"},
		{"invalid csv", errors.New("invalid csv: parse error on line 3"), "FILE002"},
		{"body too large", errors.New("http: request body too large"), "FILE001"},
		{"no file", errors.New("no file provided"), "FILE004"},
		{"no usable rows", errors.New("no valid applicant data found in file"), "FILE003"},
		{"unknown", errors.New("something surprising"), "ERR000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MapError(tt.err)
			if got.Code != tt.wantCode {
				t.Errorf("MapError(%v).Code = %q, want %q", tt.err, got.Code, tt.wantCode)
			}
			if got.Message == "" {
				t.Error("MapError() returned empty message")
			}
		})
	}
}

func TestMapError_CaseInsensitive(t *testing.T) {
	got := MapError(errors.New("DUPLICATE EMAIL: A@X.COM"))
	if got.Code != "APP001" {
		t.Errorf("Code = %q, want APP001", got.Code)
	}
}
