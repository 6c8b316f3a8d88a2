package usecase

import (
	"context"
	"sync/atomic"

	"github.com/dendrolab/ringview/internal/app"
	"github.com/dendrolab/ringview/internal/app/models"
	"github.com/dendrolab/ringview/internal/utils/errs"
	"github.com/dendrolab/ringview/internal/utils/logger"
	"github.com/dendrolab/ringview/internal/utils/validate"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// AnalysisUsecase drives intake, navigation and the three-phase
// upload/process workflow. Per-image failures after the slot request are
// deliberately not surfaced to the user: one bad image must not abort
// its siblings, so failures only show up as counters that never reach
// the total (and in the logs and the settled outcome list).
type AnalysisUsecase struct {
	sessionRepository app.SessionRepository
	backendClient     app.BackendClient
	uploader          app.ObjectUploader
	listener          app.ResultListener

	started atomic.Bool
}

func CreateAnalysisUsecase(
	sessionRepository app.SessionRepository,
	backendClient app.BackendClient,
	uploader app.ObjectUploader,
	listener app.ResultListener,
) *AnalysisUsecase {
	return &AnalysisUsecase{
		sessionRepository: sessionRepository,
		backendClient:     backendClient,
		uploader:          uploader,
		listener:          listener,
	}
}

// AddFiles validates incoming files against the intake limits and adds
// the accepted ones. Rejections are collected per file and never block
// already-accepted files.
func (u *AnalysisUsecase) AddFiles(ctx context.Context, files []models.FileUpload) (*models.IntakeResult, error) {
	const funcName = "AnalysisUsecase.AddFiles"
	logger.Debug("running intake",
		zap.String("function", funcName),
		zap.Int("files", len(files)),
	)

	images, err := u.sessionRepository.GetImages(ctx)
	if err != nil {
		return nil, err
	}
	currentCount := len(images)

	result := &models.IntakeResult{}
	accepted := make([]models.FileUpload, 0, len(files))

	for _, file := range files {
		if err := validate.ValidateImageType(file.ContentType, file.Name); err != nil {
			result.Rejected = append(result.Rejected, models.IntakeError{
				Filename: file.Name,
				Reason:   err.Error(),
			})
			continue
		}

		if err := validate.ValidateFileSize(file.Size); err != nil {
			result.Rejected = append(result.Rejected, models.IntakeError{
				Filename: file.Name,
				Reason:   err.Error(),
			})
			continue
		}

		if err := validate.ValidateSlotCapacity(currentCount + len(accepted)); err != nil {
			result.Rejected = append(result.Rejected, models.IntakeError{
				Filename: file.Name,
				Reason:   err.Error(),
			})
			continue
		}

		accepted = append(accepted, file)
	}

	if len(accepted) > 0 {
		added, err := u.sessionRepository.AddImages(ctx, accepted)
		if err != nil {
			logger.Error("failed to add images",
				zap.String("function", funcName),
				zap.Error(err),
			)
			return nil, err
		}
		result.Added = added
	}

	if len(result.Rejected) > 0 {
		u.sessionRepository.AddIntakeErrors(result.Rejected)
	}

	logger.Info("intake finished",
		zap.String("function", funcName),
		zap.Int("accepted", len(result.Added)),
		zap.Int("rejected", len(result.Rejected)),
	)
	return result, nil
}

func (u *AnalysisUsecase) RemoveImage(ctx context.Context, id string) error {
	const funcName = "AnalysisUsecase.RemoveImage"
	logger.Debug("removing image",
		zap.String("function", funcName),
		zap.String("image_id", id),
	)

	if err := u.sessionRepository.RemoveImage(ctx, id); err != nil {
		logger.Error("failed to remove image",
			zap.String("function", funcName),
			zap.String("image_id", id),
			zap.Error(err),
		)
		return err
	}

	return nil
}

func (u *AnalysisUsecase) ClearImages(ctx context.Context) error {
	const funcName = "AnalysisUsecase.ClearImages"
	logger.Debug("clearing images",
		zap.String("function", funcName),
	)

	return u.sessionRepository.ClearImages(ctx)
}

// SelectImage moves the current-image pointer and returns the selected
// entry, so the caller can seed the canvas from its persisted
// coordinates.
func (u *AnalysisUsecase) SelectImage(ctx context.Context, index int) (*models.AnalysisImage, error) {
	const funcName = "AnalysisUsecase.SelectImage"

	images, err := u.sessionRepository.GetImages(ctx)
	if err != nil {
		return nil, err
	}

	if index < 0 || index >= len(images) {
		logger.Warn("image index out of range",
			zap.String("function", funcName),
			zap.Int("index", index),
			zap.Int("count", len(images)),
		)
		return nil, errs.ErrIndexOutOfRange
	}

	if err := u.sessionRepository.SetCurrentImageIndex(ctx, index); err != nil {
		return nil, err
	}

	return images[index], nil
}

func (u *AnalysisUsecase) CurrentImage(ctx context.Context) (*models.AnalysisImage, error) {
	images, err := u.sessionRepository.GetImages(ctx)
	if err != nil {
		return nil, err
	}
	if len(images) == 0 {
		return nil, errs.ErrNoImages
	}

	index := u.sessionRepository.CurrentImageIndex()
	if index >= len(images) {
		index = len(images) - 1
	}

	return images[index], nil
}

func (u *AnalysisUsecase) SetImageCoordinates(ctx context.Context, id string, position models.PixelPosition) error {
	const funcName = "AnalysisUsecase.SetImageCoordinates"
	logger.Debug("setting image coordinates",
		zap.String("function", funcName),
		zap.String("image_id", id),
		zap.Int("x", position.X),
		zap.Int("y", position.Y),
	)

	if err := u.sessionRepository.UpdateImageCoordinates(ctx, id, position); err != nil {
		logger.Error("failed to set coordinates",
			zap.String("function", funcName),
			zap.String("image_id", id),
			zap.Error(err),
		)
		return err
	}

	return nil
}

func (u *AnalysisUsecase) DismissIntakeErrors(ctx context.Context) error {
	u.sessionRepository.ClearIntakeErrors()
	return nil
}

// StartProcessing checks the preconditions synchronously, then launches
// the push-channel listener and the upload/enqueue fan-out in the
// background. A guard flag keeps the run from being triggered twice;
// Reset re-arms it.
func (u *AnalysisUsecase) StartProcessing(ctx context.Context) error {
	const funcName = "AnalysisUsecase.StartProcessing"

	if !u.started.CompareAndSwap(false, true) {
		logger.Warn("processing already started",
			zap.String("function", funcName),
		)
		return errs.ErrProcessingStarted
	}

	images, err := u.sessionRepository.GetImages(ctx)
	if err != nil {
		return err
	}

	if len(images) == 0 {
		u.sessionRepository.SetError("no images to process")
		return errs.ErrNoImages
	}

	for _, img := range images {
		if img.Coordinates == nil {
			u.sessionRepository.SetError("all images must have coordinates set")
			return errs.ErrMissingCoordinates
		}
	}

	u.sessionRepository.ClearError()
	u.sessionRepository.ResetUploadedCount()
	u.sessionRepository.ResetQueuedCount()
	u.sessionRepository.SetProcessStatus(models.ProcessStatusRequestingURLs)

	clientID := uuid.New().String()
	u.sessionRepository.SetClientID(clientID)

	logger.Info("processing run starting",
		zap.String("function", funcName),
		zap.String("client_id", clientID),
		zap.Int("images", len(images)),
	)

	// The run outlives the triggering request.
	runCtx := context.WithoutCancel(ctx)

	go func() {
		if err := u.listener.Listen(runCtx, clientID); err != nil {
			logger.Warn("push channel listener stopped",
				zap.String("client_id", clientID),
				zap.Error(err),
			)
		}
	}()

	go u.run(runCtx, images, clientID)

	return nil
}

// run executes the slot request and the per-image fan-out. Only a
// slot-request failure is surfaced as session error state; per-image
// failures settle into the outcome list.
func (u *AnalysisUsecase) run(ctx context.Context, images []*models.AnalysisImage, clientID string) {
	const funcName = "AnalysisUsecase.run"

	request := make([]models.UploadRequestImage, 0, len(images))
	for _, img := range images {
		request = append(request, models.UploadRequestImage{
			Filename:     img.Name,
			ContentType:  img.ContentType,
			CoordinatesX: img.Coordinates.X,
			CoordinatesY: img.Coordinates.Y,
		})
	}

	slots, err := u.backendClient.RequestUpload(ctx, request)
	if err != nil {
		logger.Error("slot request failed",
			zap.String("function", funcName),
			zap.String("client_id", clientID),
			zap.Error(err),
		)
		u.sessionRepository.SetError(err.Error())
		return
	}

	if len(slots) != len(images) {
		logger.Error("slot count mismatch",
			zap.String("function", funcName),
			zap.Int("slots", len(slots)),
			zap.Int("images", len(images)),
		)
		u.sessionRepository.SetError(errs.ErrSlotCountMismatch.Error())
		return
	}

	u.sessionRepository.SetProcessStatus(models.ProcessStatusUploading)
	u.sessionRepository.SetUploadProgress(0)

	// Queuing interleaves with upload completion per image, so the run
	// is "processing" as soon as the fan-out launches, not once every
	// upload has finished.
	u.sessionRepository.SetProcessStatus(models.ProcessStatusProcessing)

	outcomes := make([]models.ImageOutcome, len(images))

	var g errgroup.Group
	for i := range images {
		i := i
		g.Go(func() error {
			outcomes[i] = u.processImage(ctx, images[i], slots[i], clientID)
			return nil
		})
	}

	// All-settled join: workers never return errors, so no image's
	// failure cancels its siblings.
	_ = g.Wait()

	uploaded, queued := 0, 0
	for _, outcome := range outcomes {
		if outcome.Uploaded {
			uploaded++
		}
		if outcome.Queued {
			queued++
		}
	}

	logger.Info("processing run settled",
		zap.String("function", funcName),
		zap.String("client_id", clientID),
		zap.Int("images", len(images)),
		zap.Int("uploaded", uploaded),
		zap.Int("queued", queued),
	)
}

func (u *AnalysisUsecase) processImage(ctx context.Context, image *models.AnalysisImage, slot models.SlotDescriptor, clientID string) models.ImageOutcome {
	const funcName = "AnalysisUsecase.processImage"

	outcome := models.ImageOutcome{ImageID: image.ID, Key: slot.Key}

	if err := u.uploader.Upload(ctx, slot, image.Data, image.Name); err != nil {
		logger.Warn("image upload failed",
			zap.String("function", funcName),
			zap.String("image_id", image.ID),
			zap.String("key", slot.Key),
			zap.Error(err),
		)
		outcome.Err = err
		return outcome
	}
	outcome.Uploaded = true

	if err := u.sessionRepository.UpdateImageUploadKey(ctx, image.ID, slot.Key); err != nil {
		logger.Warn("failed to record upload key",
			zap.String("function", funcName),
			zap.String("image_id", image.ID),
			zap.Error(err),
		)
	}
	u.sessionRepository.IncrementUploadedCount()

	started, err := u.backendClient.StartProcess(ctx, models.StartProcessImage{
		Key:          slot.Key,
		CoordinatesX: image.Coordinates.X,
		CoordinatesY: image.Coordinates.Y,
	}, clientID)
	if err != nil {
		logger.Warn("enqueue failed",
			zap.String("function", funcName),
			zap.String("image_id", image.ID),
			zap.String("key", slot.Key),
			zap.Error(err),
		)
		outcome.Err = err
		return outcome
	}

	outcome.Queued = true
	outcome.JobID = started.JobID
	u.sessionRepository.IncrementQueuedCount()

	return outcome
}

func (u *AnalysisUsecase) Snapshot(ctx context.Context) (*models.SessionSnapshot, error) {
	return u.sessionRepository.Snapshot(ctx)
}

// Reset restores the initial session state and re-arms the start guard,
// so a fresh run can be triggered after a start-over.
func (u *AnalysisUsecase) Reset(ctx context.Context) error {
	const funcName = "AnalysisUsecase.Reset"
	logger.Info("resetting session",
		zap.String("function", funcName),
	)

	if err := u.sessionRepository.Reset(ctx); err != nil {
		return err
	}

	u.started.Store(false)
	return nil
}
