package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/zapgate/zapgate/pkg/dispatch"
	"github.com/zapgate/zapgate/pkg/masking"
	"github.com/zapgate/zapgate/pkg/wire"
)

// OutboundResult is the send outcome returned by the internal handler.
type OutboundResult struct {
	Success   bool   `json:"success"`
	MessageID string `json:"message_id,omitempty"`
	ErrorCode string `json:"error_code,omitempty"`
	ErrorMsg  string `json:"error_message,omitempty"`
}

// OutboundService wraps the dispatcher for queue-delivered send tasks.
type OutboundService struct {
	dispatcher *dispatch.Dispatcher
	logger     *slog.Logger
}

// NewOutboundService builds the service.
func NewOutboundService(dispatcher *dispatch.Dispatcher, logger *slog.Logger) *OutboundService {
	return &OutboundService{dispatcher: dispatcher, logger: logger}
}

// ProcessOutbound sends req. Error mapping for the handler: ErrInvalidInput
// and ErrProviderPermanent mean 400, ErrProviderRetryable means 503 so the
// queue redelivers, ErrBackendUnavailable means 503, anything else 502.
func (s *OutboundService) ProcessOutbound(ctx context.Context, req wire.Request) (OutboundResult, error) {
	resp, err := s.dispatcher.Send(ctx, req)
	if err != nil {
		return OutboundResult{}, fmt.Errorf("%w: %v", ErrBackendUnavailable, err)
	}

	result := OutboundResult{
		Success:   resp.Success,
		MessageID: resp.MessageID,
		ErrorCode: string(resp.ErrorCode),
		ErrorMsg:  masking.SanitizeForLog(resp.ErrorMsg),
	}
	if resp.Success {
		return result, nil
	}

	s.logger.Warn("outbound task failed",
		slog.String("idempotency_key", req.IdempotencyKey),
		slog.String("error_code", result.ErrorCode),
		slog.String("error", result.ErrorMsg))

	switch resp.ErrorCode {
	case dispatch.CodeValidationError, dispatch.CodePayloadBuildError:
		return result, fmt.Errorf("%w: %s", ErrInvalidInput, result.ErrorCode)
	case dispatch.CodePermanentError, dispatch.CodeAPIError:
		return result, fmt.Errorf("%w: %s", ErrProviderPermanent, result.ErrorCode)
	case dispatch.CodeRetryableError:
		return result, fmt.Errorf("%w: %s", ErrProviderRetryable, result.ErrorCode)
	default:
		return result, fmt.Errorf("unclassified send failure: %s", result.ErrorCode)
	}
}
