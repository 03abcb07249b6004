package tags

import (
	"errors"
	"strings"
	"unicode/utf8"

	"github.com/samber/lo"
)

// MaxLength is the longest tag name the save service accepts, in characters.
const MaxLength = 25

var (
	ErrEmpty   = errors.New("tag is empty")
	ErrTooLong = errors.New("tag is longer than 25 characters")
)

type Tag struct {
	Name string `json:"name"`
}

// CheckDuplicate returns how many tags in list are named value. Comparison is
// exact.
func CheckDuplicate(list []Tag, value string) int {
	return lo.CountBy(list, func(tag Tag) bool {
		return tag.Name == value
	})
}

// Validate trims value and checks it against the save service limits.
func Validate(value string) (string, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return "", ErrEmpty
	}
	if utf8.RuneCountInString(value) > MaxLength {
		return "", ErrTooLong
	}
	return value, nil
}
