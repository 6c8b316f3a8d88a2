package stream

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"time"

	"github.com/dendrolab/ringview/internal/app"
	"github.com/dendrolab/ringview/internal/app/models"
	"github.com/dendrolab/ringview/internal/utils/logger"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

// EventProcessFinished is the single push-channel event this front-end
// subscribes to.
const EventProcessFinished = "process_finished"

type envelope struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data"`
}

// Listener consumes the backend's push channel for one processing run,
// appending each terminal job result to the session store as it arrives.
// Arrival order need not match upload order; consumers correlate by job
// and session identifiers, not by position.
type Listener struct {
	baseURL string
	repo    app.SessionRepository
	dialer  *websocket.Dialer
}

func NewListener(baseURL string, repo app.SessionRepository) *Listener {
	return &Listener{
		baseURL: baseURL,
		repo:    repo,
		dialer:  websocket.DefaultDialer,
	}
}

// endpoint builds the channel URL, translating an http(s) base to its
// websocket scheme and attaching the session identifier.
func (l *Listener) endpoint(clientID string) (string, error) {
	u, err := url.Parse(l.baseURL)
	if err != nil {
		return "", fmt.Errorf("parse push channel url: %w", err)
	}

	switch u.Scheme {
	case "http":
		u.Scheme = "ws"
	case "https":
		u.Scheme = "wss"
	}

	u.Path, err = url.JoinPath(u.Path, "ws")
	if err != nil {
		return "", fmt.Errorf("join push channel path: %w", err)
	}

	q := u.Query()
	q.Set("clientId", clientID)
	u.RawQuery = q.Encode()

	return u.String(), nil
}

// Listen connects and consumes results until the run completes, the
// channel closes, or ctx is cancelled. On completion (results >= total
// images) it marks the run completed and proactively tears the channel
// down.
func (l *Listener) Listen(ctx context.Context, clientID string) error {
	const funcName = "stream.Listener.Listen"

	endpoint, err := l.endpoint(clientID)
	if err != nil {
		return err
	}

	conn, resp, err := l.dialer.DialContext(ctx, endpoint, nil)
	if err != nil {
		logger.Error("failed to open push channel",
			zap.String("function", funcName),
			zap.String("endpoint", endpoint),
			zap.Error(err),
		)
		return fmt.Errorf("open push channel: %w", err)
	}
	if resp != nil && resp.Body != nil {
		resp.Body.Close()
	}
	defer conn.Close()

	logger.Info("push channel connected",
		zap.String("function", funcName),
		zap.String("client_id", clientID),
	)

	// Unblock the read loop when the caller tears us down.
	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			conn.Close()
		case <-done:
		}
	}()

	for {
		var env envelope
		if err := conn.ReadJSON(&env); err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			return fmt.Errorf("read push channel: %w", err)
		}

		if env.Event != EventProcessFinished {
			continue
		}

		var result models.ProcessResult
		if err := json.Unmarshal(env.Data, &result); err != nil {
			logger.Warn("dropping undecodable push payload",
				zap.String("function", funcName),
				zap.Error(err),
			)
			continue
		}

		// Payloads without a job id or status are dropped silently.
		if result.JobID == "" || result.Status == "" {
			logger.Warn("dropping malformed push payload",
				zap.String("function", funcName),
				zap.String("job_id", result.JobID),
				zap.String("status", string(result.Status)),
			)
			continue
		}

		result.ReceivedAt = time.Now()
		l.repo.AddResult(&result)

		images, err := l.repo.GetImages(ctx)
		if err != nil {
			continue
		}

		if total := len(images); total > 0 && len(l.repo.Results()) >= total {
			l.repo.SetProcessStatus(models.ProcessStatusCompleted)
			logger.Info("all results received, closing push channel",
				zap.String("function", funcName),
				zap.String("client_id", clientID),
				zap.Int("results", total),
			)
			return nil
		}
	}
}
