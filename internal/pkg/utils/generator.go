package utils

import (
	"fmt"
	"senehorario-service/internal/pkg/constvars"

	"github.com/google/uuid"
)

// GenerateRequestID returns a service-prefixed unique identifier for one
// request, used when the client did not supply its own.
func GenerateRequestID() string {
	return fmt.Sprintf("%s%s", constvars.REQUEST_ID_PREFIX, uuid.NewString())
}
