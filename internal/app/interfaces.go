package app

import (
	"context"

	"github.com/dendrolab/ringview/internal/app/models"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/mock.go

// SessionRepository is the single source of truth for session state.
// All mutation goes through named operations; there are no external
// writes to the underlying state.
type SessionRepository interface {
	AddImages(ctx context.Context, files []models.FileUpload) ([]*models.AnalysisImage, error)
	RemoveImage(ctx context.Context, id string) error
	ClearImages(ctx context.Context) error
	GetImages(ctx context.Context) ([]*models.AnalysisImage, error)
	UpdateImageCoordinates(ctx context.Context, id string, position models.PixelPosition) error
	UpdateImageUploadKey(ctx context.Context, id string, key string) error
	SetCurrentImageIndex(ctx context.Context, index int) error
	CurrentImageIndex() int
	SetProcessStatus(status models.ProcessStatus)
	ProcessStatus() models.ProcessStatus
	SetClientID(clientID string)
	ClientID() string
	SetUploadProgress(progress int)
	IncrementUploadedCount()
	ResetUploadedCount()
	UploadedCount() int
	IncrementQueuedCount()
	ResetQueuedCount()
	QueuedCount() int
	AddResult(result *models.ProcessResult)
	Results() []*models.ProcessResult
	AddIntakeErrors(intakeErrors []models.IntakeError)
	ClearIntakeErrors()
	SetError(message string)
	ClearError()
	ErrorMessage() string
	Snapshot(ctx context.Context) (*models.SessionSnapshot, error)
	Reset(ctx context.Context) error
}

// AnalysisUsecase drives the workflow: intake, navigation, marker
// persistence and the upload/process orchestration.
type AnalysisUsecase interface {
	AddFiles(ctx context.Context, files []models.FileUpload) (*models.IntakeResult, error)
	RemoveImage(ctx context.Context, id string) error
	ClearImages(ctx context.Context) error
	SelectImage(ctx context.Context, index int) (*models.AnalysisImage, error)
	CurrentImage(ctx context.Context) (*models.AnalysisImage, error)
	SetImageCoordinates(ctx context.Context, id string, position models.PixelPosition) error
	DismissIntakeErrors(ctx context.Context) error
	StartProcessing(ctx context.Context) error
	Snapshot(ctx context.Context) (*models.SessionSnapshot, error)
	Reset(ctx context.Context) error
}

// BackendClient talks to the external analysis backend over HTTP.
type BackendClient interface {
	RequestUpload(ctx context.Context, images []models.UploadRequestImage) ([]models.SlotDescriptor, error)
	StartProcess(ctx context.Context, image models.StartProcessImage, clientID string) (*models.StartProcessResponse, error)
}

// ObjectUploader performs the direct PUT to object storage authorized by
// a slot descriptor.
type ObjectUploader interface {
	Upload(ctx context.Context, slot models.SlotDescriptor, data []byte, filename string) error
}

// ResultListener consumes the push channel for one processing run. Listen
// blocks until the run completes or ctx is cancelled.
type ResultListener interface {
	Listen(ctx context.Context, clientID string) error
}
