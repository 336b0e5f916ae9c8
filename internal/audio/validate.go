package audio

import (
	"fmt"
	"strings"
	"unicode"
)

// ValidateYiddishText validates that the input contains Hebrew-script text.
// Used on raw input before transliteration.
func ValidateYiddishText(text string) error {
	if strings.TrimSpace(text) == "" {
		return fmt.Errorf("text cannot be empty")
	}

	hasHebrew := false
	for _, r := range text {
		if unicode.In(r, unicode.Hebrew) {
			hasHebrew = true
			break
		}
	}

	if !hasHebrew {
		return fmt.Errorf("text must contain Hebrew-script characters")
	}

	return nil
}

// ValidatePhoneticText validates transliterated text before synthesis. The
// transliterator can legally produce an empty string (e.g. input that was
// all silent diacritics); there is nothing to speak in that case.
func ValidatePhoneticText(text string) error {
	if strings.TrimSpace(text) == "" {
		return fmt.Errorf("phonetic text cannot be empty")
	}
	return nil
}
