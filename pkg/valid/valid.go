package valid

import (
	"github.com/google/uuid"
)

func String(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func StringPointer(s string) *string {
	return &s
}

// ParseUUID returns uuid.Nil for blank or malformed input.
func ParseUUID(s string) uuid.UUID {
	id, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil
	}
	return id
}
