package model

import "strings"

// MaxTitleLength is the longest title accepted after trimming.
const MaxTitleLength = 100

// FieldError reports a validation failure for a single request field.
type FieldError struct {
	Field   string
	Message string
}

func (e *FieldError) Error() string {
	return e.Field + ": " + e.Message
}

// ValidateTitle trims the title and checks the only constraints the entity
// enforces: non-empty and at most MaxTitleLength characters after trimming.
// It returns the trimmed title to be stored.
func ValidateTitle(title string) (string, *FieldError) {
	trimmed := strings.TrimSpace(title)
	if trimmed == "" {
		return "", &FieldError{Field: "title", Message: "Title is required."}
	}
	if len([]rune(trimmed)) > MaxTitleLength {
		return "", &FieldError{Field: "title", Message: "Title must be at most 100 characters."}
	}
	return trimmed, nil
}
