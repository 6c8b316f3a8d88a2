package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/dendrolab/ringview/internal/app/models"
	"github.com/dendrolab/ringview/internal/utils/logger"
	"go.uber.org/zap"
)

const (
	requestUploadPath = "/analysis/request-upload"
	startProcessPath  = "/analysis/start-process"
)

// Client calls the external analysis backend. The ring-detection work
// itself is entirely server-side; this client only requests upload slots
// and enqueues jobs.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

type apiError struct {
	Message string `json:"message"`
}

// errorMessage extracts the server-supplied message from a non-2xx
// response body, or falls back to the given generic message.
func errorMessage(resp *http.Response, fallback string) string {
	var apiErr apiError
	if err := json.NewDecoder(resp.Body).Decode(&apiErr); err == nil && apiErr.Message != "" {
		return apiErr.Message
	}
	return fallback
}

func (c *Client) postJSON(ctx context.Context, path string, body any) (*http.Response, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("marshal request body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("send request: %w", err)
	}

	return resp, nil
}

// RequestUpload asks the backend for one upload slot per image, batched
// in a single call. The response is positionally aligned with the input.
func (c *Client) RequestUpload(ctx context.Context, images []models.UploadRequestImage) ([]models.SlotDescriptor, error) {
	const funcName = "backend.Client.RequestUpload"
	logger.Debug("requesting upload slots",
		zap.String("function", funcName),
		zap.Int("images", len(images)),
	)

	resp, err := c.postJSON(ctx, requestUploadPath, models.RequestUploadBody{Images: images})
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("%s", errorMessage(resp, "failed to request upload urls"))
	}

	var slots []models.SlotDescriptor
	if err := json.NewDecoder(resp.Body).Decode(&slots); err != nil {
		return nil, fmt.Errorf("decode response body: %w", err)
	}

	logger.Info("upload slots received",
		zap.String("function", funcName),
		zap.Int("slots", len(slots)),
	)
	return slots, nil
}

// StartProcess enqueues processing for a single uploaded image.
func (c *Client) StartProcess(ctx context.Context, image models.StartProcessImage, clientID string) (*models.StartProcessResponse, error) {
	const funcName = "backend.Client.StartProcess"
	logger.Debug("enqueueing processing",
		zap.String("function", funcName),
		zap.String("key", image.Key),
		zap.String("client_id", clientID),
	)

	body := models.StartProcessBody{
		Images:   []models.StartProcessImage{image},
		ClientID: clientID,
	}

	resp, err := c.postJSON(ctx, startProcessPath, body)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("%s", errorMessage(resp, "failed to start processing"))
	}

	var started models.StartProcessResponse
	if err := json.NewDecoder(resp.Body).Decode(&started); err != nil {
		return nil, fmt.Errorf("decode response body: %w", err)
	}

	logger.Info("processing enqueued",
		zap.String("function", funcName),
		zap.String("job_id", started.JobID),
		zap.String("status", string(started.Status)),
	)
	return &started, nil
}
