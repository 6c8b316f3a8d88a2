package usecase

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	mock_app "github.com/dendrolab/ringview/internal/app/mocks"
	"github.com/dendrolab/ringview/internal/app/models"
	"github.com/dendrolab/ringview/internal/utils/errs"
	"github.com/dendrolab/ringview/internal/utils/logger"
	"github.com/dendrolab/ringview/internal/utils/validate"
)

func TestMain(m *testing.M) {
	logger.InitTestLogger()
	m.Run()
}

type usecaseMocks struct {
	repo     *mock_app.MockSessionRepository
	backend  *mock_app.MockBackendClient
	uploader *mock_app.MockObjectUploader
	listener *mock_app.MockResultListener
}

func newUsecase(ctrl *gomock.Controller) (*AnalysisUsecase, usecaseMocks) {
	mocks := usecaseMocks{
		repo:     mock_app.NewMockSessionRepository(ctrl),
		backend:  mock_app.NewMockBackendClient(ctrl),
		uploader: mock_app.NewMockObjectUploader(ctrl),
		listener: mock_app.NewMockResultListener(ctrl),
	}
	return CreateAnalysisUsecase(mocks.repo, mocks.backend, mocks.uploader, mocks.listener), mocks
}

func imageWithCoordinates(id, name string) *models.AnalysisImage {
	return &models.AnalysisImage{
		ID:          id,
		Name:        name,
		ContentType: "image/jpeg",
		Size:        3,
		Data:        []byte{0xFF, 0xD8, 0xFF},
		Status:      models.ImageStatusCoordinatesSet,
		Coordinates: &models.PixelPosition{X: 100, Y: 200},
	}
}

func TestAnalysisUsecase_AddFiles(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name             string
		files            []models.FileUpload
		mockSetup        func(m usecaseMocks)
		expectedAccepted int
		expectedRejected int
	}{
		{
			name: "AllAccepted",
			files: []models.FileUpload{
				{Name: "a.jpg", ContentType: "image/jpeg", Size: 100},
				{Name: "b.png", ContentType: "image/png", Size: 200},
			},
			mockSetup: func(m usecaseMocks) {
				m.repo.EXPECT().GetImages(gomock.Any()).Return(nil, nil)
				m.repo.EXPECT().
					AddImages(gomock.Any(), gomock.Len(2)).
					Return([]*models.AnalysisImage{{ID: "1"}, {ID: "2"}}, nil)
			},
			expectedAccepted: 2,
		},
		{
			name: "InvalidTypeRejected",
			files: []models.FileUpload{
				{Name: "a.jpg", ContentType: "image/jpeg", Size: 100},
				{Name: "doc.pdf", ContentType: "application/pdf", Size: 100},
			},
			mockSetup: func(m usecaseMocks) {
				m.repo.EXPECT().GetImages(gomock.Any()).Return(nil, nil)
				m.repo.EXPECT().
					AddImages(gomock.Any(), gomock.Len(1)).
					Return([]*models.AnalysisImage{{ID: "1"}}, nil)
				m.repo.EXPECT().AddIntakeErrors(gomock.Len(1))
			},
			expectedAccepted: 1,
			expectedRejected: 1,
		},
		{
			name: "OversizedRejected",
			files: []models.FileUpload{
				{Name: "huge.jpg", ContentType: "image/jpeg", Size: validate.MaxFileSize + 1},
			},
			mockSetup: func(m usecaseMocks) {
				m.repo.EXPECT().GetImages(gomock.Any()).Return(nil, nil)
				m.repo.EXPECT().AddIntakeErrors(gomock.Len(1))
			},
			expectedRejected: 1,
		},
		{
			name: "SessionFullRejected",
			files: []models.FileUpload{
				{Name: "a.jpg", ContentType: "image/jpeg", Size: 100},
			},
			mockSetup: func(m usecaseMocks) {
				full := make([]*models.AnalysisImage, validate.MaxFiles)
				m.repo.EXPECT().GetImages(gomock.Any()).Return(full, nil)
				m.repo.EXPECT().AddIntakeErrors(gomock.Len(1))
			},
			expectedRejected: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc, mocks := newUsecase(ctrl)
			tt.mockSetup(mocks)

			result, err := uc.AddFiles(context.Background(), tt.files)

			require.NoError(t, err)
			assert.Len(t, result.Added, tt.expectedAccepted)
			assert.Len(t, result.Rejected, tt.expectedRejected)
		})
	}
}

func TestAnalysisUsecase_SelectImage(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	images := []*models.AnalysisImage{{ID: "1"}, {ID: "2"}}

	tests := []struct {
		name          string
		index         int
		mockSetup     func(m usecaseMocks)
		expectedID    string
		expectedError error
	}{
		{
			name:  "Success",
			index: 1,
			mockSetup: func(m usecaseMocks) {
				m.repo.EXPECT().GetImages(gomock.Any()).Return(images, nil)
				m.repo.EXPECT().SetCurrentImageIndex(gomock.Any(), 1).Return(nil)
			},
			expectedID: "2",
		},
		{
			name:  "IndexOutOfRange",
			index: 5,
			mockSetup: func(m usecaseMocks) {
				m.repo.EXPECT().GetImages(gomock.Any()).Return(images, nil)
			},
			expectedError: errs.ErrIndexOutOfRange,
		},
		{
			name:  "NegativeIndex",
			index: -1,
			mockSetup: func(m usecaseMocks) {
				m.repo.EXPECT().GetImages(gomock.Any()).Return(images, nil)
			},
			expectedError: errs.ErrIndexOutOfRange,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc, mocks := newUsecase(ctrl)
			tt.mockSetup(mocks)

			img, err := uc.SelectImage(context.Background(), tt.index)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, img)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.expectedID, img.ID)
			}
		})
	}
}

func TestAnalysisUsecase_CurrentImage(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("Empty", func(t *testing.T) {
		uc, mocks := newUsecase(ctrl)
		mocks.repo.EXPECT().GetImages(gomock.Any()).Return(nil, nil)

		img, err := uc.CurrentImage(context.Background())
		assert.ErrorIs(t, err, errs.ErrNoImages)
		assert.Nil(t, img)
	})

	t.Run("ClampsStaleIndex", func(t *testing.T) {
		uc, mocks := newUsecase(ctrl)
		mocks.repo.EXPECT().GetImages(gomock.Any()).Return([]*models.AnalysisImage{{ID: "1"}, {ID: "2"}}, nil)
		mocks.repo.EXPECT().CurrentImageIndex().Return(7)

		img, err := uc.CurrentImage(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "2", img.ID)
	})
}

func TestAnalysisUsecase_StartProcessing_Preconditions(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name          string
		mockSetup     func(m usecaseMocks)
		expectedError error
	}{
		{
			name: "NoImages",
			mockSetup: func(m usecaseMocks) {
				m.repo.EXPECT().GetImages(gomock.Any()).Return(nil, nil)
				m.repo.EXPECT().SetError("no images to process")
			},
			expectedError: errs.ErrNoImages,
		},
		{
			name: "MissingCoordinates",
			mockSetup: func(m usecaseMocks) {
				m.repo.EXPECT().GetImages(gomock.Any()).Return([]*models.AnalysisImage{
					imageWithCoordinates("1", "a.jpg"),
					{ID: "2", Name: "b.jpg"},
				}, nil)
				m.repo.EXPECT().SetError("all images must have coordinates set")
			},
			expectedError: errs.ErrMissingCoordinates,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc, mocks := newUsecase(ctrl)
			tt.mockSetup(mocks)

			err := uc.StartProcessing(context.Background())
			assert.ErrorIs(t, err, tt.expectedError)
		})
	}
}

func slotsFor(keys ...string) []models.SlotDescriptor {
	slots := make([]models.SlotDescriptor, 0, len(keys))
	for _, key := range keys {
		slots = append(slots, models.SlotDescriptor{
			Key:             key,
			PutURL:          "http://storage.local/" + key,
			RequiredHeaders: map[string]string{"Content-Type": "image/jpeg"},
		})
	}
	return slots
}

// expectRunPreamble covers the synchronous part of a started run up to
// the slot request.
func expectRunPreamble(m usecaseMocks, images []*models.AnalysisImage) {
	m.repo.EXPECT().GetImages(gomock.Any()).Return(images, nil)
	m.repo.EXPECT().ClearError()
	m.repo.EXPECT().ResetUploadedCount()
	m.repo.EXPECT().ResetQueuedCount()
	m.repo.EXPECT().SetProcessStatus(models.ProcessStatusRequestingURLs)
	m.repo.EXPECT().SetClientID(gomock.Any())
	m.listener.EXPECT().Listen(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
}

func TestAnalysisUsecase_StartProcessing_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, mocks := newUsecase(ctrl)

	images := []*models.AnalysisImage{
		imageWithCoordinates("1", "a.jpg"),
		imageWithCoordinates("2", "b.jpg"),
		imageWithCoordinates("3", "c.jpg"),
	}

	var settled sync.WaitGroup
	settled.Add(3)

	expectRunPreamble(mocks, images)

	mocks.backend.EXPECT().
		RequestUpload(gomock.Any(), gomock.Len(3)).
		Return(slotsFor("k1", "k2", "k3"), nil)

	mocks.repo.EXPECT().SetProcessStatus(models.ProcessStatusUploading)
	mocks.repo.EXPECT().SetUploadProgress(0)
	mocks.repo.EXPECT().SetProcessStatus(models.ProcessStatusProcessing)

	mocks.uploader.EXPECT().
		Upload(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil).
		Times(3)
	mocks.repo.EXPECT().UpdateImageUploadKey(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).Times(3)
	mocks.repo.EXPECT().IncrementUploadedCount().Times(3)
	mocks.backend.EXPECT().
		StartProcess(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(&models.StartProcessResponse{JobID: "job", Status: models.ResultStatusQueued}, nil).
		Times(3)
	mocks.repo.EXPECT().IncrementQueuedCount().Do(func() { settled.Done() }).Times(3)

	err := uc.StartProcessing(context.Background())
	require.NoError(t, err)

	settled.Wait()
}

func TestAnalysisUsecase_StartProcessing_SlotRequestFails(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, mocks := newUsecase(ctrl)

	images := []*models.AnalysisImage{imageWithCoordinates("1", "a.jpg")}

	failed := make(chan struct{})

	expectRunPreamble(mocks, images)
	mocks.backend.EXPECT().
		RequestUpload(gomock.Any(), gomock.Any()).
		Return(nil, errors.New("backend unavailable"))
	mocks.repo.EXPECT().
		SetError("backend unavailable").
		Do(func(string) { close(failed) })

	err := uc.StartProcessing(context.Background())
	require.NoError(t, err)

	<-failed
}

func TestAnalysisUsecase_StartProcessing_SlotCountMismatch(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, mocks := newUsecase(ctrl)

	images := []*models.AnalysisImage{
		imageWithCoordinates("1", "a.jpg"),
		imageWithCoordinates("2", "b.jpg"),
	}

	failed := make(chan struct{})

	expectRunPreamble(mocks, images)
	mocks.backend.EXPECT().
		RequestUpload(gomock.Any(), gomock.Len(2)).
		Return(slotsFor("k1"), nil)
	mocks.repo.EXPECT().
		SetError(errs.ErrSlotCountMismatch.Error()).
		Do(func(string) { close(failed) })

	err := uc.StartProcessing(context.Background())
	require.NoError(t, err)

	<-failed
}

func TestAnalysisUsecase_StartProcessing_PerImageFailureDoesNotAbortSiblings(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, mocks := newUsecase(ctrl)

	images := []*models.AnalysisImage{
		imageWithCoordinates("1", "a.jpg"),
		imageWithCoordinates("2", "b.jpg"),
	}

	var settled sync.WaitGroup
	settled.Add(2)

	expectRunPreamble(mocks, images)

	mocks.backend.EXPECT().
		RequestUpload(gomock.Any(), gomock.Len(2)).
		Return(slotsFor("k1", "k2"), nil)

	mocks.repo.EXPECT().SetProcessStatus(models.ProcessStatusUploading)
	mocks.repo.EXPECT().SetUploadProgress(0)
	mocks.repo.EXPECT().SetProcessStatus(models.ProcessStatusProcessing)

	// The first image fails to upload; the run swallows the failure and
	// the sibling still gets uploaded and enqueued.
	mocks.uploader.EXPECT().
		Upload(gomock.Any(), gomock.Any(), gomock.Any(), "a.jpg").
		DoAndReturn(func(context.Context, models.SlotDescriptor, []byte, string) error {
			settled.Done()
			return errors.New("storage rejected upload")
		})
	mocks.uploader.EXPECT().
		Upload(gomock.Any(), gomock.Any(), gomock.Any(), "b.jpg").
		Return(nil)
	mocks.repo.EXPECT().UpdateImageUploadKey(gomock.Any(), "2", "k2").Return(nil)
	mocks.repo.EXPECT().IncrementUploadedCount()
	mocks.backend.EXPECT().
		StartProcess(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(&models.StartProcessResponse{JobID: "job-2", Status: models.ResultStatusQueued}, nil)
	mocks.repo.EXPECT().IncrementQueuedCount().Do(func() { settled.Done() })

	err := uc.StartProcessing(context.Background())
	require.NoError(t, err)

	settled.Wait()
}

func TestAnalysisUsecase_StartProcessing_Guard(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, mocks := newUsecase(ctrl)

	// First trigger consumes the guard even though the preconditions fail.
	mocks.repo.EXPECT().GetImages(gomock.Any()).Return(nil, nil)
	mocks.repo.EXPECT().SetError("no images to process")

	err := uc.StartProcessing(context.Background())
	assert.ErrorIs(t, err, errs.ErrNoImages)

	err = uc.StartProcessing(context.Background())
	assert.ErrorIs(t, err, errs.ErrProcessingStarted)

	// Reset re-arms the guard for a fresh run.
	mocks.repo.EXPECT().Reset(gomock.Any()).Return(nil)
	require.NoError(t, uc.Reset(context.Background()))

	mocks.repo.EXPECT().GetImages(gomock.Any()).Return(nil, nil)
	mocks.repo.EXPECT().SetError("no images to process")

	err = uc.StartProcessing(context.Background())
	assert.ErrorIs(t, err, errs.ErrNoImages)
}

func TestAnalysisUsecase_RemoveImage(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("Success", func(t *testing.T) {
		uc, mocks := newUsecase(ctrl)
		mocks.repo.EXPECT().RemoveImage(gomock.Any(), "1").Return(nil)

		assert.NoError(t, uc.RemoveImage(context.Background(), "1"))
	})

	t.Run("NotFound", func(t *testing.T) {
		uc, mocks := newUsecase(ctrl)
		mocks.repo.EXPECT().RemoveImage(gomock.Any(), "missing").Return(errs.ErrImageNotFound)

		assert.ErrorIs(t, uc.RemoveImage(context.Background(), "missing"), errs.ErrImageNotFound)
	})
}

func TestAnalysisUsecase_SetImageCoordinates(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, mocks := newUsecase(ctrl)
	mocks.repo.EXPECT().
		UpdateImageCoordinates(gomock.Any(), "1", models.PixelPosition{X: 10, Y: 20}).
		Return(nil)

	assert.NoError(t, uc.SetImageCoordinates(context.Background(), "1", models.PixelPosition{X: 10, Y: 20}))
}

func TestAnalysisUsecase_DismissIntakeErrors(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, mocks := newUsecase(ctrl)
	mocks.repo.EXPECT().ClearIntakeErrors()

	assert.NoError(t, uc.DismissIntakeErrors(context.Background()))
}
