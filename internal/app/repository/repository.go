package repository

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/dendrolab/ringview/internal/app/models"
	"github.com/dendrolab/ringview/internal/utils/errs"
	"github.com/dendrolab/ringview/internal/utils/logger"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// SessionRepository holds the whole front-end session in memory. Every
// mutation is one named operation under the mutex, so readers never see
// a half-applied change. Preview files are acquired on AddImages and
// released exactly once, on removal, clear or reset.
type SessionRepository struct {
	mu sync.Mutex

	previewDir string

	images            []*models.AnalysisImage
	currentImageIndex int
	processStatus     models.ProcessStatus
	clientID          string
	uploadProgress    int
	uploadedCount     int
	queuedCount       int
	results           []*models.ProcessResult
	intakeErrors      []models.IntakeError
	errorMessage      string

	previewsCreated  int
	previewsReleased int
}

func CreateSessionRepository(previewDir string) *SessionRepository {
	return &SessionRepository{
		previewDir:    previewDir,
		processStatus: models.ProcessStatusIdle,
	}
}

func extensionFor(file models.FileUpload) string {
	if ext := strings.ToLower(filepath.Ext(file.Name)); ext != "" {
		return ext
	}

	switch strings.ToLower(file.ContentType) {
	case "image/png":
		return ".png"
	case "image/webp":
		return ".webp"
	default:
		return ".jpg"
	}
}

func (r *SessionRepository) AddImages(ctx context.Context, files []models.FileUpload) ([]*models.AnalysisImage, error) {
	const funcName = "SessionRepository.AddImages"
	logger.Debug("adding images to session",
		zap.String("function", funcName),
		zap.Int("count", len(files)),
	)

	r.mu.Lock()
	defer r.mu.Unlock()

	added := make([]*models.AnalysisImage, 0, len(files))
	for _, file := range files {
		id := uuid.New().String()
		previewName := id + extensionFor(file)
		previewPath := filepath.Join(r.previewDir, previewName)

		if err := os.WriteFile(previewPath, file.Data, 0o644); err != nil {
			for _, img := range added {
				r.releasePreviewLocked(img)
			}
			logger.Error("failed to write preview file",
				zap.String("function", funcName),
				zap.String("path", previewPath),
				zap.Error(err),
			)
			return nil, fmt.Errorf("create preview for %s: %w", file.Name, err)
		}
		r.previewsCreated++

		added = append(added, &models.AnalysisImage{
			ID:          id,
			Name:        file.Name,
			ContentType: file.ContentType,
			Size:        file.Size,
			Data:        file.Data,
			Preview:     "/previews/" + previewName,
			PreviewPath: previewPath,
			Status:      models.ImageStatusPending,
		})
	}

	r.images = append(r.images, added...)

	logger.Info("images added to session",
		zap.String("function", funcName),
		zap.Int("added", len(added)),
		zap.Int("total", len(r.images)),
	)

	return added, nil
}

// releasePreviewLocked frees an entry's preview file. Safe to call twice;
// the second call is a no-op so release accounting stays paired.
func (r *SessionRepository) releasePreviewLocked(img *models.AnalysisImage) {
	if img.PreviewPath == "" {
		return
	}

	if err := os.Remove(img.PreviewPath); err != nil && !os.IsNotExist(err) {
		logger.Warn("failed to remove preview file",
			zap.String("path", img.PreviewPath),
			zap.Error(err),
		)
	}

	img.PreviewPath = ""
	img.Data = nil
	r.previewsReleased++
}

func (r *SessionRepository) findImageLocked(id string) *models.AnalysisImage {
	for _, img := range r.images {
		if img.ID == id {
			return img
		}
	}
	return nil
}

func (r *SessionRepository) RemoveImage(ctx context.Context, id string) error {
	const funcName = "SessionRepository.RemoveImage"

	r.mu.Lock()
	defer r.mu.Unlock()

	for i, img := range r.images {
		if img.ID != id {
			continue
		}

		r.releasePreviewLocked(img)
		r.images = append(r.images[:i], r.images[i+1:]...)

		newIndex := r.currentImageIndex
		if maxIndex := len(r.images) - 1; newIndex > maxIndex {
			newIndex = maxIndex
		}
		if newIndex < 0 {
			newIndex = 0
		}
		r.currentImageIndex = newIndex

		logger.Info("image removed from session",
			zap.String("function", funcName),
			zap.String("image_id", id),
			zap.Int("remaining", len(r.images)),
			zap.Int("current_index", r.currentImageIndex),
		)
		return nil
	}

	logger.Warn("image not found when removing",
		zap.String("function", funcName),
		zap.String("image_id", id),
	)
	return errs.ErrImageNotFound
}

func (r *SessionRepository) ClearImages(ctx context.Context) error {
	const funcName = "SessionRepository.ClearImages"

	r.mu.Lock()
	defer r.mu.Unlock()

	for _, img := range r.images {
		r.releasePreviewLocked(img)
	}
	r.images = nil
	r.currentImageIndex = 0

	logger.Info("session images cleared",
		zap.String("function", funcName),
	)
	return nil
}

func (r *SessionRepository) GetImage(ctx context.Context, id string) (*models.AnalysisImage, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	img := r.findImageLocked(id)
	if img == nil {
		return nil, errs.ErrImageNotFound
	}

	return img, nil
}

func (r *SessionRepository) GetImages(ctx context.Context) ([]*models.AnalysisImage, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	images := make([]*models.AnalysisImage, len(r.images))
	copy(images, r.images)

	return images, nil
}

func (r *SessionRepository) UpdateImageCoordinates(ctx context.Context, id string, position models.PixelPosition) error {
	const funcName = "SessionRepository.UpdateImageCoordinates"

	r.mu.Lock()
	defer r.mu.Unlock()

	img := r.findImageLocked(id)
	if img == nil {
		logger.Warn("image not found when setting coordinates",
			zap.String("function", funcName),
			zap.String("image_id", id),
		)
		return errs.ErrImageNotFound
	}

	img.Coordinates = &models.PixelPosition{X: position.X, Y: position.Y}
	img.Status = models.ImageStatusCoordinatesSet

	logger.Debug("image coordinates updated",
		zap.String("function", funcName),
		zap.String("image_id", id),
		zap.Int("x", position.X),
		zap.Int("y", position.Y),
	)
	return nil
}

func (r *SessionRepository) UpdateImageUploadKey(ctx context.Context, id string, key string) error {
	const funcName = "SessionRepository.UpdateImageUploadKey"

	r.mu.Lock()
	defer r.mu.Unlock()

	img := r.findImageLocked(id)
	if img == nil {
		logger.Warn("image not found when setting upload key",
			zap.String("function", funcName),
			zap.String("image_id", id),
		)
		return errs.ErrImageNotFound
	}

	img.UploadKey = key
	img.Status = models.ImageStatusUploaded

	logger.Debug("image upload key set",
		zap.String("function", funcName),
		zap.String("image_id", id),
		zap.String("key", key),
	)
	return nil
}

func (r *SessionRepository) SetCurrentImageIndex(ctx context.Context, index int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if index != 0 && (index < 0 || index >= len(r.images)) {
		return errs.ErrIndexOutOfRange
	}

	r.currentImageIndex = index
	return nil
}

func (r *SessionRepository) CurrentImageIndex() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.currentImageIndex
}

func (r *SessionRepository) SetProcessStatus(status models.ProcessStatus) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.processStatus = status
}

func (r *SessionRepository) ProcessStatus() models.ProcessStatus {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.processStatus
}

func (r *SessionRepository) SetClientID(clientID string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.clientID = clientID
}

func (r *SessionRepository) ClientID() string {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.clientID
}

func (r *SessionRepository) SetUploadProgress(progress int) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.uploadProgress = progress
}

func (r *SessionRepository) IncrementUploadedCount() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.uploadedCount++
}

func (r *SessionRepository) ResetUploadedCount() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.uploadedCount = 0
}

func (r *SessionRepository) UploadedCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.uploadedCount
}

func (r *SessionRepository) IncrementQueuedCount() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.queuedCount++
}

func (r *SessionRepository) ResetQueuedCount() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.queuedCount = 0
}

func (r *SessionRepository) QueuedCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.queuedCount
}

// AddResult appends a result in arrival order. Results are never
// replaced or reordered.
func (r *SessionRepository) AddResult(result *models.ProcessResult) {
	const funcName = "SessionRepository.AddResult"

	r.mu.Lock()
	defer r.mu.Unlock()

	r.results = append(r.results, result)

	logger.Info("result appended",
		zap.String("function", funcName),
		zap.String("job_id", result.JobID),
		zap.String("status", string(result.Status)),
		zap.Int("total_results", len(r.results)),
	)
}

func (r *SessionRepository) Results() []*models.ProcessResult {
	r.mu.Lock()
	defer r.mu.Unlock()

	results := make([]*models.ProcessResult, len(r.results))
	copy(results, r.results)

	return results
}

func (r *SessionRepository) AddIntakeErrors(intakeErrors []models.IntakeError) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.intakeErrors = append(r.intakeErrors, intakeErrors...)
}

func (r *SessionRepository) ClearIntakeErrors() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.intakeErrors = nil
}

// SetError records the session error and forces the process status to
// error. The two writes are one operation, never independent.
func (r *SessionRepository) SetError(message string) {
	const funcName = "SessionRepository.SetError"

	r.mu.Lock()
	defer r.mu.Unlock()

	r.errorMessage = message
	r.processStatus = models.ProcessStatusError

	logger.Warn("session error set",
		zap.String("function", funcName),
		zap.String("message", message),
	)
}

// ClearError drops the session error and returns the process status to
// idle, mirroring SetError's coupling.
func (r *SessionRepository) ClearError() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.errorMessage = ""
	r.processStatus = models.ProcessStatusIdle
}

func (r *SessionRepository) ErrorMessage() string {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.errorMessage
}

func (r *SessionRepository) Snapshot(ctx context.Context) (*models.SessionSnapshot, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	images := make([]*models.AnalysisImage, 0, len(r.images))
	for _, img := range r.images {
		copied := *img
		copied.Data = nil
		if img.Coordinates != nil {
			coords := *img.Coordinates
			copied.Coordinates = &coords
		}
		images = append(images, &copied)
	}

	results := make([]*models.ProcessResult, len(r.results))
	copy(results, r.results)

	intakeErrors := make([]models.IntakeError, len(r.intakeErrors))
	copy(intakeErrors, r.intakeErrors)

	return &models.SessionSnapshot{
		Images:            images,
		CurrentImageIndex: r.currentImageIndex,
		ProcessStatus:     r.processStatus,
		ClientID:          r.clientID,
		UploadProgress:    r.uploadProgress,
		UploadedCount:     r.uploadedCount,
		QueuedCount:       r.queuedCount,
		Results:           results,
		IntakeErrors:      intakeErrors,
		Error:             r.errorMessage,
	}, nil
}

// Reset releases every preview resource and restores the initial state.
func (r *SessionRepository) Reset(ctx context.Context) error {
	const funcName = "SessionRepository.Reset"

	r.mu.Lock()
	defer r.mu.Unlock()

	for _, img := range r.images {
		r.releasePreviewLocked(img)
	}

	r.images = nil
	r.currentImageIndex = 0
	r.processStatus = models.ProcessStatusIdle
	r.clientID = ""
	r.uploadProgress = 0
	r.uploadedCount = 0
	r.queuedCount = 0
	r.results = nil
	r.intakeErrors = nil
	r.errorMessage = ""

	logger.Info("session reset",
		zap.String("function", funcName),
	)
	return nil
}

// PreviewStats reports cumulative preview acquisitions and releases, for
// leak accounting in tests.
func (r *SessionRepository) PreviewStats() (created, released int) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.previewsCreated, r.previewsReleased
}
