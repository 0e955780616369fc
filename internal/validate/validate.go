package validate

import (
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ObjectID parses an identifier in the store's native 24-hex-char form.
// Anything else is a validation failure, never a lookup.
func ObjectID(s string) (primitive.ObjectID, bool) {
	id, err := primitive.ObjectIDFromHex(strings.TrimSpace(s))
	return id, err == nil
}

// Query checks a search term is present and clamps runaway input.
func Query(s string) (string, bool) {
	if s == "" {
		return "", false
	}
	if len(s) > 100 {
		s = s[:100]
	}
	return s, true
}
