package delivery

import (
	"context"
	"encoding/json"
	"io"
	"net/http"

	"github.com/dendrolab/ringview/internal/app"
	"github.com/dendrolab/ringview/internal/app/models"
	"github.com/dendrolab/ringview/internal/canvas"
	"github.com/dendrolab/ringview/internal/geometry"
	"github.com/dendrolab/ringview/internal/utils/logger"
	"github.com/dendrolab/ringview/internal/utils/responses"
	"github.com/dendrolab/ringview/internal/utils/validate"
	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

// maxMultipartMemory bounds how much of an intake request stays in
// memory before spilling to temp files.
const maxMultipartMemory = 32 << 20

// AnalysisDelivery is the HTTP surface of the front-end. Besides the
// session and process endpoints it owns the canvas controller for the
// currently shown image, translating pointer and wheel events into
// viewport and marker state.
type AnalysisDelivery struct {
	analysisUsecase app.AnalysisUsecase
	canvas          *canvas.Controller
}

func CreateAnalysisDelivery(analysisUsecase app.AnalysisUsecase) *AnalysisDelivery {
	d := &AnalysisDelivery{
		analysisUsecase: analysisUsecase,
	}
	d.canvas = canvas.NewController(d.commitMarker)
	return d
}

// commitMarker persists a committed marker position into the current
// image entry.
func (d *AnalysisDelivery) commitMarker(p geometry.Pixel) {
	const funcName = "AnalysisDelivery.commitMarker"

	ctx := context.Background()
	img, err := d.analysisUsecase.CurrentImage(ctx)
	if err != nil {
		logger.Warn("no current image for marker commit",
			zap.String("function", funcName),
			zap.Error(err),
		)
		return
	}

	err = d.analysisUsecase.SetImageCoordinates(ctx, img.ID, models.PixelPosition{X: p.X, Y: p.Y})
	if err != nil {
		logger.Error("failed to persist marker position",
			zap.String("function", funcName),
			zap.String("image_id", img.ID),
			zap.Error(err),
		)
	}
}

// AddImages runs intake on a multipart upload. Rejected files come back
// alongside the accepted ones; a rejection never blocks its siblings.
func (d *AnalysisDelivery) AddImages(w http.ResponseWriter, r *http.Request) {
	const funcName = "AnalysisDelivery.AddImages"
	logger.Debug("intake request",
		zap.String("function", funcName),
	)

	if err := r.ParseMultipartForm(maxMultipartMemory); err != nil {
		responses.DoBadResponseAndLog(w, http.StatusBadRequest, "invalid multipart request")
		return
	}

	headers := r.MultipartForm.File["images"]
	if len(headers) == 0 {
		responses.DoBadResponseAndLog(w, http.StatusBadRequest, "no files provided")
		return
	}

	files := make([]models.FileUpload, 0, len(headers))
	for _, header := range headers {
		file := models.FileUpload{
			Name:        header.Filename,
			ContentType: header.Header.Get("Content-Type"),
			Size:        header.Size,
		}

		// Oversized files are rejected on size alone; don't buffer them.
		if header.Size <= validate.MaxFileSize {
			f, err := header.Open()
			if err != nil {
				responses.DoBadResponseAndLog(w, http.StatusBadRequest, "failed to read uploaded file")
				return
			}
			data, err := io.ReadAll(f)
			f.Close()
			if err != nil {
				responses.DoBadResponseAndLog(w, http.StatusBadRequest, "failed to read uploaded file")
				return
			}
			file.Data = data
		}

		files = append(files, file)
	}

	result, err := d.analysisUsecase.AddFiles(r.Context(), files)
	if err != nil {
		responses.ResponseErrorAndLog(w, err, funcName)
		return
	}

	responses.DoJSONResponse(w, result, http.StatusOK)
}

func (d *AnalysisDelivery) RemoveImage(w http.ResponseWriter, r *http.Request) {
	const funcName = "AnalysisDelivery.RemoveImage"

	id := mux.Vars(r)["id"]
	if err := d.analysisUsecase.RemoveImage(r.Context(), id); err != nil {
		responses.ResponseErrorAndLog(w, err, funcName)
		return
	}

	snapshot, err := d.analysisUsecase.Snapshot(r.Context())
	if err != nil {
		responses.ResponseErrorAndLog(w, err, funcName)
		return
	}

	responses.DoJSONResponse(w, snapshot, http.StatusOK)
}

func (d *AnalysisDelivery) ClearImages(w http.ResponseWriter, r *http.Request) {
	const funcName = "AnalysisDelivery.ClearImages"

	if err := d.analysisUsecase.ClearImages(r.Context()); err != nil {
		responses.ResponseErrorAndLog(w, err, funcName)
		return
	}

	d.canvas.SwitchImage(nil, nil)

	responses.DoJSONResponse(w, map[string]any{"cleared": true}, http.StatusOK)
}

func (d *AnalysisDelivery) GetSession(w http.ResponseWriter, r *http.Request) {
	const funcName = "AnalysisDelivery.GetSession"

	snapshot, err := d.analysisUsecase.Snapshot(r.Context())
	if err != nil {
		responses.ResponseErrorAndLog(w, err, funcName)
		return
	}

	responses.DoJSONResponse(w, snapshot, http.StatusOK)
}

type selectImageRequest struct {
	Index int `json:"index"`
}

// SelectImage moves the current-image pointer, resets the viewport and
// seeds the marker from the entry's persisted coordinates.
func (d *AnalysisDelivery) SelectImage(w http.ResponseWriter, r *http.Request) {
	const funcName = "AnalysisDelivery.SelectImage"

	var req selectImageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		responses.DoBadResponseAndLog(w, http.StatusBadRequest, "invalid request body")
		return
	}

	img, err := d.analysisUsecase.SelectImage(r.Context(), req.Index)
	if err != nil {
		responses.ResponseErrorAndLog(w, err, funcName)
		return
	}

	var seed *geometry.Pixel
	if img.Coordinates != nil {
		seed = &geometry.Pixel{X: img.Coordinates.X, Y: img.Coordinates.Y}
	}
	d.canvas.SwitchImage(nil, seed)

	responses.DoJSONResponse(w, img, http.StatusOK)
}

type setCoordinatesRequest struct {
	X int `json:"x"`
	Y int `json:"y"`
}

func (d *AnalysisDelivery) SetCoordinates(w http.ResponseWriter, r *http.Request) {
	const funcName = "AnalysisDelivery.SetCoordinates"

	id := mux.Vars(r)["id"]

	var req setCoordinatesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		responses.DoBadResponseAndLog(w, http.StatusBadRequest, "invalid request body")
		return
	}

	err := d.analysisUsecase.SetImageCoordinates(r.Context(), id, models.PixelPosition{X: req.X, Y: req.Y})
	if err != nil {
		responses.ResponseErrorAndLog(w, err, funcName)
		return
	}

	responses.DoJSONResponse(w, map[string]any{"id": id, "x": req.X, "y": req.Y}, http.StatusOK)
}

func (d *AnalysisDelivery) DismissIntakeErrors(w http.ResponseWriter, r *http.Request) {
	const funcName = "AnalysisDelivery.DismissIntakeErrors"

	if err := d.analysisUsecase.DismissIntakeErrors(r.Context()); err != nil {
		responses.ResponseErrorAndLog(w, err, funcName)
		return
	}

	responses.DoJSONResponse(w, map[string]any{"dismissed": true}, http.StatusOK)
}

// StartProcess triggers the upload/process run. Precondition failures
// are returned here; everything later is observed via ProcessStatus.
func (d *AnalysisDelivery) StartProcess(w http.ResponseWriter, r *http.Request) {
	const funcName = "AnalysisDelivery.StartProcess"
	logger.Debug("start processing request",
		zap.String("function", funcName),
	)

	if err := d.analysisUsecase.StartProcessing(r.Context()); err != nil {
		responses.ResponseErrorAndLog(w, err, funcName)
		return
	}

	responses.DoJSONResponse(w, map[string]any{
		"status": models.ProcessStatusRequestingURLs,
	}, http.StatusAccepted)
}

func (d *AnalysisDelivery) ProcessStatus(w http.ResponseWriter, r *http.Request) {
	const funcName = "AnalysisDelivery.ProcessStatus"

	snapshot, err := d.analysisUsecase.Snapshot(r.Context())
	if err != nil {
		responses.ResponseErrorAndLog(w, err, funcName)
		return
	}

	response := struct {
		ProcessStatus   models.ProcessStatus    `json:"processStatus"`
		UploadedCount   int                     `json:"uploadedCount"`
		QueuedCount     int                     `json:"queuedCount"`
		TotalImages     int                     `json:"totalImages"`
		ReceivedResults int                     `json:"receivedResults"`
		Results         []*models.ProcessResult `json:"results"`
		Error           string                  `json:"error,omitempty"`
	}{
		ProcessStatus:   snapshot.ProcessStatus,
		UploadedCount:   snapshot.UploadedCount,
		QueuedCount:     snapshot.QueuedCount,
		TotalImages:     len(snapshot.Images),
		ReceivedResults: len(snapshot.Results),
		Results:         snapshot.Results,
		Error:           snapshot.Error,
	}

	responses.DoJSONResponse(w, response, http.StatusOK)
}

func (d *AnalysisDelivery) ResetSession(w http.ResponseWriter, r *http.Request) {
	const funcName = "AnalysisDelivery.ResetSession"

	if err := d.analysisUsecase.Reset(r.Context()); err != nil {
		responses.ResponseErrorAndLog(w, err, funcName)
		return
	}

	d.canvas.SwitchImage(nil, nil)

	responses.DoJSONResponse(w, map[string]any{"reset": true}, http.StatusOK)
}

type canvasViewRequest struct {
	Container geometry.Size  `json:"container"`
	Image     *geometry.Size `json:"image"`
}

// SetCanvasView records the measured container rectangle and the natural
// image size; until both arrive, pointer events can't resolve to pixels.
func (d *AnalysisDelivery) SetCanvasView(w http.ResponseWriter, r *http.Request) {
	var req canvasViewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		responses.DoBadResponseAndLog(w, http.StatusBadRequest, "invalid request body")
		return
	}

	d.canvas.SetView(req.Container, req.Image)

	responses.DoJSONResponse(w, d.canvas.State(), http.StatusOK)
}

type canvasPointerRequest struct {
	Type   string  `json:"type"`
	Button string  `json:"button"`
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
}

// CanvasPointer routes one pointer event: the secondary button pans the
// viewport, the primary button drives marker placement. The front-end
// suppresses the context menu over the canvas for this reason.
func (d *AnalysisDelivery) CanvasPointer(w http.ResponseWriter, r *http.Request) {
	var req canvasPointerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		responses.DoBadResponseAndLog(w, http.StatusBadRequest, "invalid request body")
		return
	}

	button := canvas.ButtonPrimary
	if req.Button == "secondary" {
		button = canvas.ButtonSecondary
	}
	point := geometry.Vec{X: req.X, Y: req.Y}

	switch req.Type {
	case "down":
		d.canvas.PointerDown(button, point)
	case "move":
		d.canvas.PointerMove(point)
	case "up":
		d.canvas.PointerUp()
	case "leave":
		d.canvas.PointerLeave()
	default:
		responses.DoBadResponseAndLog(w, http.StatusBadRequest, "invalid pointer event type")
		return
	}

	responses.DoJSONResponse(w, d.canvas.State(), http.StatusOK)
}

type canvasWheelRequest struct {
	DeltaY float64 `json:"deltaY"`
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
}

func (d *AnalysisDelivery) CanvasWheel(w http.ResponseWriter, r *http.Request) {
	var req canvasWheelRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		responses.DoBadResponseAndLog(w, http.StatusBadRequest, "invalid request body")
		return
	}

	d.canvas.Wheel(req.DeltaY, geometry.Vec{X: req.X, Y: req.Y})

	responses.DoJSONResponse(w, d.canvas.State(), http.StatusOK)
}

type canvasZoomRequest struct {
	Action string  `json:"action"`
	Value  float64 `json:"value"`
}

func (d *AnalysisDelivery) CanvasZoom(w http.ResponseWriter, r *http.Request) {
	var req canvasZoomRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		responses.DoBadResponseAndLog(w, http.StatusBadRequest, "invalid request body")
		return
	}

	switch req.Action {
	case "in":
		d.canvas.ZoomIn()
	case "out":
		d.canvas.ZoomOut()
	case "set":
		d.canvas.SetZoom(req.Value)
	case "reset":
		d.canvas.ResetZoom()
	default:
		responses.DoBadResponseAndLog(w, http.StatusBadRequest, "invalid zoom action")
		return
	}

	responses.DoJSONResponse(w, d.canvas.State(), http.StatusOK)
}

func (d *AnalysisDelivery) GetCanvas(w http.ResponseWriter, r *http.Request) {
	responses.DoJSONResponse(w, d.canvas.State(), http.StatusOK)
}
