// Package dispatch sends validated messages to the Graph API with end-to-end
// idempotency: an outbound dedupe entry brackets every send, retryable
// provider failures back off exponentially, and a circuit breaker sheds load
// when the provider degrades.
package dispatch

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/sony/gobreaker"

	"github.com/zapgate/zapgate/pkg/config"
	"github.com/zapgate/zapgate/pkg/dedupe"
	"github.com/zapgate/zapgate/pkg/wire"
)

const (
	defaultMaxAttempts = 3
	defaultBaseBackoff = 500 * time.Millisecond
	defaultMaxBackoff  = 8 * time.Second
	defaultGraphOrigin = "https://graph.facebook.com"
)

// Dispatcher owns the outbound send flow.
type Dispatcher struct {
	httpClient *http.Client
	cfg        config.WhatsAppConfig
	store      dedupe.OutboundStore
	keyspace   dedupe.Keyspace
	ttl        time.Duration
	breaker    *gobreaker.CircuitBreaker
	logger     *slog.Logger

	maxAttempts int
	baseBackoff time.Duration
	maxBackoff  time.Duration
}

// NewDispatcher builds a Dispatcher. breakerCfg.Enabled false disables the
// breaker entirely.
func NewDispatcher(
	httpClient *http.Client,
	waCfg config.WhatsAppConfig,
	breakerCfg config.BreakerConfig,
	store dedupe.OutboundStore,
	keyspace dedupe.Keyspace,
	ttl time.Duration,
	logger *slog.Logger,
) *Dispatcher {
	d := &Dispatcher{
		httpClient:  httpClient,
		cfg:         waCfg,
		store:       store,
		keyspace:    keyspace,
		ttl:         ttl,
		logger:      logger,
		maxAttempts: defaultMaxAttempts,
		baseBackoff: defaultBaseBackoff,
		maxBackoff:  defaultMaxBackoff,
	}
	if breakerCfg.Enabled {
		d.breaker = gobreaker.NewCircuitBreaker(gobreaker.Settings{
			Name:        "whatsapp-send",
			MaxRequests: uint32(breakerCfg.HalfOpenMax),
			Timeout:     breakerCfg.ResetTimeout,
			ReadyToTrip: func(counts gobreaker.Counts) bool {
				return counts.ConsecutiveFailures >= uint32(breakerCfg.FailMax)
			},
			OnStateChange: func(name string, from, to gobreaker.State) {
				logger.Warn("circuit breaker state change",
					slog.String("breaker", name),
					slog.String("from", from.String()),
					slog.String("to", to.String()))
			},
		})
	}
	return d
}

// retryableError marks a provider failure worth redelivering.
type retryableError struct {
	status int
	body   string
}

func (e *retryableError) Error() string {
	return fmt.Sprintf("provider returned %d: %s", e.status, e.body)
}

// Send runs the full outbound flow for req. The returned error is non-nil
// only for infrastructure failures (dedupe backend down); provider failures
// are reported through the Response taxonomy.
func (d *Dispatcher) Send(ctx context.Context, req wire.Request) (Response, error) {
	if ok, msg := wire.Validate(req); !ok {
		return Response{ErrorCode: CodeValidationError, ErrorMsg: msg}, nil
	}

	key := d.keyspace.Key("out:" + req.IdempotencyKey)
	prior, err := d.store.CheckAndMark(ctx, key, req.IdempotencyKey, d.ttl)
	if err != nil {
		return Response{}, fmt.Errorf("outbound dedupe: %w", err)
	}
	if prior.IsDuplicate && prior.Status == dedupe.StatusSent {
		d.logger.Info("outbound send already completed",
			slog.String("idempotency_key", req.IdempotencyKey),
			slog.String("message_id", prior.OriginalMessageID))
		return Response{Success: true, MessageID: prior.OriginalMessageID}, nil
	}

	payload, err := wire.Build(req)
	if err != nil {
		resp := Response{ErrorCode: CodePayloadBuildError, ErrorMsg: err.Error()}
		d.markFailed(ctx, key, resp.ErrorMsg)
		return resp, nil
	}

	resp := d.post(ctx, payload)
	if resp.Success {
		if err := d.store.MarkSent(ctx, key, resp.MessageID); err != nil {
			d.logger.Warn("marking outbound entry sent failed",
				slog.String("idempotency_key", req.IdempotencyKey),
				slog.String("error", err.Error()))
		}
	} else if !resp.Retryable {
		// Retryable failures keep the entry pending so the redelivery can
		// claim it; permanent ones are recorded.
		d.markFailed(ctx, key, resp.ErrorMsg)
	}
	return resp, nil
}

func (d *Dispatcher) markFailed(ctx context.Context, key, msg string) {
	if err := d.store.MarkFailed(ctx, key, msg); err != nil {
		d.logger.Warn("marking outbound entry failed errored", slog.String("error", err.Error()))
	}
}

// post performs the HTTP call with retry and breaker wrapping.
func (d *Dispatcher) post(ctx context.Context, payload *wire.Payload) Response {
	body, err := json.Marshal(payload)
	if err != nil {
		return Response{ErrorCode: CodePayloadBuildError, ErrorMsg: err.Error()}
	}

	origin := d.cfg.BaseURL
	if origin == "" {
		origin = defaultGraphOrigin
	}
	url := fmt.Sprintf("%s/%s/%s/messages", origin, d.cfg.APIVersion, d.cfg.PhoneNumberID)

	var lastErr error
	for attempt := 0; attempt < d.maxAttempts; attempt++ {
		if attempt > 0 {
			backoff := d.baseBackoff << (attempt - 1)
			if backoff > d.maxBackoff {
				backoff = d.maxBackoff
			}
			select {
			case <-time.After(backoff):
			case <-ctx.Done():
				return Response{ErrorCode: CodeRetryableError, ErrorMsg: ctx.Err().Error(), Retryable: true}
			}
		}

		resp, err := d.attempt(ctx, url, body)
		if err == nil {
			return resp
		}
		lastErr = err

		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			// Breaker open: fail fast, not retryable here.
			return Response{ErrorCode: CodeRetryableError, ErrorMsg: err.Error(), Retryable: false}
		}
		var re *retryableError
		if !errors.As(err, &re) {
			break
		}
	}

	var re *retryableError
	if errors.As(lastErr, &re) {
		return Response{ErrorCode: CodeRetryableError, ErrorMsg: lastErr.Error(), Retryable: true}
	}
	return Response{ErrorCode: CodePermanentError, ErrorMsg: lastErr.Error()}
}

// graphResponse is the subset of the Graph API send response we consume.
type graphResponse struct {
	Messages []struct {
		ID string `json:"id"`
	} `json:"messages"`
	Error *struct {
		Message string `json:"message"`
		Type    string `json:"type"`
		Code    int    `json:"code"`
	} `json:"error"`
}

// attempt performs one HTTP call through the breaker. A nil error carries a
// final Response (success or permanent provider error); retryable statuses
// surface as *retryableError so the loop backs off.
func (d *Dispatcher) attempt(ctx context.Context, url string, body []byte) (Response, error) {
	call := func() (interface{}, error) {
		httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
		if err != nil {
			return nil, err
		}
		httpReq.Header.Set("Content-Type", "application/json")
		httpReq.Header.Set("Authorization", "Bearer "+d.cfg.AccessToken)

		httpResp, err := d.httpClient.Do(httpReq)
		if err != nil {
			return nil, &retryableError{status: 0, body: err.Error()}
		}
		defer httpResp.Body.Close()

		respBody, err := io.ReadAll(io.LimitReader(httpResp.Body, 1<<20))
		if err != nil {
			return nil, &retryableError{status: httpResp.StatusCode, body: err.Error()}
		}

		if httpResp.StatusCode == http.StatusTooManyRequests || httpResp.StatusCode >= 500 {
			return nil, &retryableError{status: httpResp.StatusCode, body: string(respBody)}
		}

		var parsed graphResponse
		if err := json.Unmarshal(respBody, &parsed); err != nil {
			return Response{
				ErrorCode: CodeAPIError,
				ErrorMsg:  fmt.Sprintf("unparseable provider response (%d)", httpResp.StatusCode),
			}, nil
		}

		if httpResp.StatusCode >= 400 {
			resp := Response{ErrorCode: CodePermanentError, ErrorMsg: string(respBody)}
			if parsed.Error != nil {
				resp.ErrorCode = CodeAPIError
				resp.ErrorMsg = parsed.Error.Message
				resp.ProviderErrorType = parsed.Error.Type
				resp.ProviderErrorCode = parsed.Error.Code
			}
			return resp, nil
		}

		if len(parsed.Messages) == 0 {
			return Response{ErrorCode: CodeAPIError, ErrorMsg: "provider response carries no message id"}, nil
		}
		return Response{Success: true, MessageID: parsed.Messages[0].ID}, nil
	}

	var (
		result interface{}
		err    error
	)
	if d.breaker != nil {
		result, err = d.breaker.Execute(call)
	} else {
		result, err = call()
	}
	if err != nil {
		return Response{}, err
	}
	return result.(Response), nil
}
