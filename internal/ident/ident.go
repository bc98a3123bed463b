package ident

import (
	"fmt"

	"github.com/google/uuid"
)

// NewRecordID returns an id like "MAT-1A2B3C4D": the given prefix plus the
// first eight uppercase hex digits of a fresh uuid. Unique within process
// lifetime, which is the only property the records require.
func NewRecordID(prefix string) string {
	u := uuid.New()
	return fmt.Sprintf("%s-%X", prefix, u[:4])
}

// NewFileKey returns the uuid string used to key a stored upload on disk.
func NewFileKey() string {
	return uuid.New().String()
}
