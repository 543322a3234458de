package validators

import (
	"fmt"
	"strings"
)

// FormatErrors flattens a validator error into a single client-safe
// message like "name (required), phone (min=10)". Non-validator errors
// fall back to their plain message.
func FormatErrors(err error) string {
	ve, ok := err.(ValidationErrors)
	if !ok {
		return err.Error()
	}

	parts := make([]string, 0, len(ve))
	for _, e := range ve {
		field := strings.ToLower(e.Field())
		if e.Param() != "" {
			parts = append(parts, fmt.Sprintf("%s (%s=%s)", field, e.Tag(), e.Param()))
		} else {
			parts = append(parts, fmt.Sprintf("%s (%s)", field, e.Tag()))
		}
	}
	return strings.Join(parts, ", ")
}
