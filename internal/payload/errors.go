package payload

import (
	"errors"
	"fmt"
	"strings"
)

// ErrMalformed marks input that is not a JSON document at all.
var ErrMalformed = errors.New("malformed payload")

// ValidationError lists schema violations with their field paths.
type ValidationError struct {
	Errors []FieldError
}

type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (ve *ValidationError) Error() string {
	if ve == nil {
		return ""
	}
	var sb strings.Builder
	sb.WriteString("validation failed:")
	for i, err := range ve.Errors {
		sb.WriteString(fmt.Sprintf(" %d. %s: %s;", i+1, err.Field, err.Message))
	}
	return strings.TrimSuffix(sb.String(), ";")
}
