package util

import (
	"fmt"

	"github.com/google/uuid"
)

// NewID mints a prefixed record id, e.g. "ord_5f3c...".
func NewID(prefix string) string {
	return fmt.Sprintf("%s_%s", prefix, uuid.NewString())
}
