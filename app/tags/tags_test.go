package tags

import (
	"errors"
	"strings"
	"testing"
)

func TestCheckDuplicate(t *testing.T) {
	list := []Tag{{Name: "go"}, {Name: "news"}, {Name: "go"}, {Name: "Go"}}

	tests := []struct {
		value string
		want  int
	}{
		{"go", 2},
		{"news", 1},
		{"Go", 1},
		{"missing", 0},
		{"", 0},
	}

	for _, tt := range tests {
		if got := CheckDuplicate(list, tt.value); got != tt.want {
			t.Errorf("CheckDuplicate(%q) = %d, want %d", tt.value, got, tt.want)
		}
	}

	if got := CheckDuplicate(nil, "go"); got != 0 {
		t.Errorf("Expected 0 for nil list, got %d", got)
	}
}

func TestValidate(t *testing.T) {
	got, err := Validate("  reading list ")
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if got != "reading list" {
		t.Errorf("Expected trimmed tag 'reading list', got %q", got)
	}

	if _, err := Validate("   "); !errors.Is(err, ErrEmpty) {
		t.Errorf("Expected ErrEmpty, got %v", err)
	}

	if _, err := Validate(strings.Repeat("a", MaxLength)); err != nil {
		t.Errorf("Expected tag of max length to pass, got %v", err)
	}
	if _, err := Validate(strings.Repeat("a", MaxLength+1)); !errors.Is(err, ErrTooLong) {
		t.Errorf("Expected ErrTooLong, got %v", err)
	}
	if _, err := Validate(strings.Repeat("ü", MaxLength)); err != nil {
		t.Errorf("Expected length to count characters, got %v", err)
	}
}
