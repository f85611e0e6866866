package util

import (
	"encoding/base64"

	"github.com/google/uuid"
)

// RequestID generates a short identifier for tagging the log lines of one
// compute request.
func RequestID() string {
	u := uuid.New()
	return base64.RawURLEncoding.EncodeToString(u[:])[:8]
}
