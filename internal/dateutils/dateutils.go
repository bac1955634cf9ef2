// Package dateutils validates the posting date shape and derives the
// reference-number prefix from it. Dates inside transaction records are
// opaque strings and pass through untouched.
package dateutils

import (
	"fmt"
	"strings"
	"time"
)

// PostingDateLayout is the only accepted posting-date shape.
const PostingDateLayout = "01/02/2006"

// ValidatePostingDate checks that s is a real calendar date in MM/DD/YYYY
// form.
func ValidatePostingDate(s string) error {
	if len(s) != len(PostingDateLayout) {
		return fmt.Errorf("posting date %q must be MM/DD/YYYY", s)
	}
	if _, err := time.Parse(PostingDateLayout, s); err != nil {
		return fmt.Errorf("posting date %q must be MM/DD/YYYY: %w", s, err)
	}
	return nil
}

// ReferencePrefix derives the reference-number prefix from the posting
// date: the date digits with the separators removed ("08/24/2026" ->
// "08242026").
func ReferencePrefix(postingDate string) string {
	return strings.ReplaceAll(postingDate, "/", "")
}
