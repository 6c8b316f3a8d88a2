package storage

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/dendrolab/ringview/internal/app/models"
	"github.com/dendrolab/ringview/internal/utils/logger"
	"go.uber.org/zap"
)

// Uploader PUTs raw image bytes straight to object storage using the
// signed URL and required headers from a slot descriptor. The slot is an
// opaque credential; nothing here knows or cares which store backs it.
type Uploader struct {
	httpClient *http.Client
}

func NewUploader() *Uploader {
	return &Uploader{
		httpClient: &http.Client{
			Timeout: 2 * time.Minute,
		},
	}
}

func (u *Uploader) Upload(ctx context.Context, slot models.SlotDescriptor, data []byte, filename string) error {
	const funcName = "storage.Uploader.Upload"
	logger.Debug("uploading image bytes",
		zap.String("function", funcName),
		zap.String("filename", filename),
		zap.String("key", slot.Key),
		zap.Int("size", len(data)),
	)

	req, err := http.NewRequestWithContext(ctx, http.MethodPut, slot.PutURL, bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("create upload request: %w", err)
	}
	req.Header.Set("Content-Type", slot.ContentType())
	req.ContentLength = int64(len(data))

	resp, err := u.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("upload %s: %w", filename, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("upload %s: status %d: %s", filename, resp.StatusCode, string(body))
	}

	logger.Info("image uploaded",
		zap.String("function", funcName),
		zap.String("filename", filename),
		zap.String("key", slot.Key),
	)
	return nil
}
