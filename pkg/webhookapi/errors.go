package webhookapi

import (
	"errors"
	"net/http"

	"github.com/zapgate/zapgate/pkg/services"
)

// mapServiceError translates service sentinels into HTTP statuses. Retryable
// conditions answer 503 so the queue redelivers; unclassified failures 502.
func mapServiceError(err error) (int, string) {
	switch {
	case errors.Is(err, services.ErrUnauthorized):
		return http.StatusUnauthorized, "unauthorized"
	case errors.Is(err, services.ErrInvalidInput) || services.IsValidationError(err):
		return http.StatusBadRequest, "invalid input"
	case errors.Is(err, services.ErrProviderPermanent):
		return http.StatusBadRequest, "provider rejected the message"
	case errors.Is(err, services.ErrProviderRetryable),
		errors.Is(err, services.ErrBackendUnavailable):
		return http.StatusServiceUnavailable, "temporarily unavailable"
	default:
		return http.StatusBadGateway, "processing failed"
	}
}
