package models

import "time"

type ImageStatus string

const (
	ImageStatusPending        ImageStatus = "pending"
	ImageStatusCoordinatesSet ImageStatus = "coordinates-set"
	// ImageStatusUploading is part of the status vocabulary shown to the
	// client but never entered here: an entry jumps straight to uploaded
	// once its PUT settles.
	ImageStatusUploading ImageStatus = "uploading"
	ImageStatusUploaded  ImageStatus = "uploaded"
	ImageStatusError     ImageStatus = "error"
)

type ProcessStatus string

const (
	ProcessStatusIdle            ProcessStatus = "idle"
	ProcessStatusRequestingURLs  ProcessStatus = "requesting-urls"
	ProcessStatusUploading       ProcessStatus = "uploading"
	ProcessStatusStartingProcess ProcessStatus = "starting-process"
	ProcessStatusProcessing      ProcessStatus = "processing"
	ProcessStatusCompleted       ProcessStatus = "completed"
	ProcessStatusError           ProcessStatus = "error"
)

type ResultStatus string

const (
	ResultStatusQueued ResultStatus = "QUEUED"
	// ResultStatusProcessing belongs to the backend's job vocabulary but
	// never reaches this front-end: the push channel only carries
	// terminal results.
	ResultStatusProcessing ResultStatus = "PROCESSING"
	ResultStatusCompleted  ResultStatus = "COMPLETED"
	ResultStatusError      ResultStatus = "ERROR"
)

// PixelPosition is a point in natural image pixel space.
type PixelPosition struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// AnalysisImage is one user-selected image tracked through the workflow.
// Coordinates are either fully set or nil, never half-set.
type AnalysisImage struct {
	ID          string         `json:"id"`
	Name        string         `json:"name"`
	ContentType string         `json:"type"`
	Size        int64          `json:"size"`
	Data        []byte         `json:"-"`
	Preview     string         `json:"preview"`
	PreviewPath string         `json:"-"`
	Status      ImageStatus    `json:"status"`
	Coordinates *PixelPosition `json:"coordinates,omitempty"`
	UploadKey   string         `json:"uploadKey,omitempty"`
}

// FileUpload carries one incoming file through intake validation.
type FileUpload struct {
	Name        string
	ContentType string
	Size        int64
	Data        []byte
}

// IntakeError is a per-file rejection reason shown to the user.
type IntakeError struct {
	Filename string `json:"filename,omitempty"`
	Reason   string `json:"error"`
}

// IntakeResult reports what an intake call accepted and rejected.
type IntakeResult struct {
	Added    []*AnalysisImage `json:"added"`
	Rejected []IntakeError    `json:"rejected"`
}

type UploadRequestImage struct {
	Filename     string `json:"filename"`
	ContentType  string `json:"contentType"`
	CoordinatesX int    `json:"coordinatesX"`
	CoordinatesY int    `json:"coordinatesY"`
}

type RequestUploadBody struct {
	Images []UploadRequestImage `json:"images"`
}

// SlotDescriptor authorizes a single direct upload to object storage.
type SlotDescriptor struct {
	Key             string            `json:"key"`
	PutURL          string            `json:"putUrl"`
	ExpiresAt       time.Time         `json:"expiresAt"`
	RequiredHeaders map[string]string `json:"requiredHeaders"`
}

// ContentType returns the Content-Type header the storage endpoint requires.
func (s SlotDescriptor) ContentType() string {
	return s.RequiredHeaders["Content-Type"]
}

type StartProcessImage struct {
	Key          string `json:"key"`
	CoordinatesX int    `json:"coordinatesX"`
	CoordinatesY int    `json:"coordinatesY"`
}

type StartProcessBody struct {
	Images   []StartProcessImage `json:"images"`
	ClientID string              `json:"clientId"`
}

type StartProcessResponse struct {
	JobID   string       `json:"jobId"`
	Status  ResultStatus `json:"status"`
	Message string       `json:"message"`
}

type RingDetectionResult struct {
	Count   int `json:"count"`
	Details struct {
		Confidence       float64 `json:"confidence"`
		Method           string  `json:"method"`
		ProcessingTimeMS float64 `json:"processing_time_ms"`
	} `json:"details"`
	ImageURL string `json:"imageUrl"`
}

type UnsharpMaskingResult struct {
	Status     string `json:"status"`
	Parameters struct {
		KernelSize [2]int  `json:"kernel_size"`
		Sigma      float64 `json:"sigma"`
		Amount     float64 `json:"amount"`
	} `json:"parameters"`
	ImageURL string `json:"imageUrl"`
}

type PolarRingDetectionResult struct {
	RingCount int       `json:"ring_count"`
	Radii     []float64 `json:"radii"`
	Metrics   struct {
		TotalSectorDetections int     `json:"total_sector_detections"`
		ConfirmedRings        int     `json:"confirmed_rings"`
		AverageVotesPerRing   float64 `json:"average_votes_per_ring"`
	} `json:"metrics"`
	ImageURL string `json:"imageUrl"`
}

type SobelRingDetectionResult struct {
	RingCount int       `json:"ring_count"`
	Radii     []float64 `json:"radii"`
	Method    string    `json:"method"`
	Metrics   struct {
		MaxRadius float64 `json:"max_radius"`
	} `json:"metrics"`
	ImageURL string `json:"imageUrl"`
}

type AutocorrelationPeriodicityResult struct {
	RingCount int       `json:"ring_count"`
	Radii     []float64 `json:"radii"`
	Metrics   struct {
		EstimatedRings   int        `json:"estimated_rings"`
		EstimatedSpacing float64    `json:"estimated_spacing"`
		MethodUsed       string     `json:"method_used"`
		MinRadius        float64    `json:"min_radius"`
		RadiusMax        float64    `json:"radius_max"`
		ProfileLength    int        `json:"profile_length"`
		EffectiveRange   float64    `json:"effective_range"`
		RawRings         int        `json:"raw_rings"`
		ScaledRings      int        `json:"scaled_rings"`
		RingScale        float64    `json:"ring_scale"`
		AutocorrUsed     bool       `json:"autocorr_used"`
		FFTUsed          bool       `json:"fft_used"`
		LagWindow        [2]float64 `json:"lag_window"`
		AutocorrLength   int        `json:"autocorr_length"`
		FFTBestK         int        `json:"fft_best_k"`
		FFTSpacingRaw    float64    `json:"fft_spacing_raw"`
	} `json:"metrics"`
	ImageURL string `json:"imageUrl"`
}

type SecondDerivativeRingDetectionResult struct {
	RingCount int       `json:"ring_count"`
	Radii     []float64 `json:"radii"`
	Method    string    `json:"method"`
	Metrics   struct {
		MaxRadius     float64 `json:"max_radius"`
		ProfileLength int     `json:"profile_length"`
	} `json:"metrics"`
	ImageURL string `json:"imageUrl"`
}

// AnalysisResults bundles the per-algorithm outputs of one completed job.
type AnalysisResults struct {
	RingDetection              RingDetectionResult                 `json:"ring_detection"`
	UnsharpMasking             UnsharpMaskingResult                `json:"unsharp_masking"`
	PolarRingDetection         PolarRingDetectionResult            `json:"polar_ring_detection"`
	SobelRingDetection         SobelRingDetectionResult            `json:"sobel_ring_detection"`
	AutocorrelationPeriodicity AutocorrelationPeriodicityResult    `json:"autocorrelation_periodicity"`
	SecondDerivative           SecondDerivativeRingDetectionResult `json:"second_derivative_ring_detection"`
}

type ProcessResultData struct {
	OriginalURL string          `json:"originalUrl"`
	Metadata    [2]int          `json:"metadata"`
	Results     AnalysisResults `json:"results"`
}

// ProcessResult is one terminal push-channel payload. Immutable once appended.
type ProcessResult struct {
	JobID      string             `json:"jobId"`
	ClientID   string             `json:"clientId"`
	Status     ResultStatus       `json:"status"`
	Timestamp  string             `json:"timestamp"`
	Data       *ProcessResultData `json:"data,omitempty"`
	Error      string             `json:"error,omitempty"`
	ReceivedAt time.Time          `json:"receivedAt"`
}

// ImageOutcome records how one per-image upload+enqueue sequence settled.
// Failures stay here (and in the logs) instead of aborting sibling images.
type ImageOutcome struct {
	ImageID  string
	Key      string
	JobID    string
	Uploaded bool
	Queued   bool
	Err      error
}

// SessionSnapshot is a read-only copy of the whole session state.
type SessionSnapshot struct {
	Images            []*AnalysisImage `json:"images"`
	CurrentImageIndex int              `json:"currentImageIndex"`
	ProcessStatus     ProcessStatus    `json:"processStatus"`
	ClientID          string           `json:"clientId,omitempty"`
	UploadProgress    int              `json:"uploadProgress"`
	UploadedCount     int              `json:"uploadedCount"`
	QueuedCount       int              `json:"queuedCount"`
	Results           []*ProcessResult `json:"results"`
	IntakeErrors      []IntakeError    `json:"intakeErrors,omitempty"`
	Error             string           `json:"error,omitempty"`
}
