package validate

import (
	"fmt"
	"math"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/dendrolab/ringview/internal/utils/errs"
)

const (
	// MaxFileSize is the intake limit for a single image (20 MiB).
	MaxFileSize = 20 * 1024 * 1024

	// MaxFiles is the intake limit for a whole session.
	MaxFiles = 64
)

var allowedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/jpg":  true,
	"image/png":  true,
	"image/webp": true,
}

var allowedExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".webp": true,
}

// ValidateImageType accepts a file by MIME type, falling back to the
// filename extension when the client did not send a type.
func ValidateImageType(contentType, filename string) error {
	if contentType != "" {
		if allowedImageTypes[strings.ToLower(contentType)] {
			return nil
		}
		return errs.ErrInvalidFileType
	}

	ext := strings.ToLower(filepath.Ext(filename))
	if !allowedExtensions[ext] {
		return errs.ErrInvalidFileType
	}

	return nil
}

func ValidateFileSize(size int64) error {
	if size > MaxFileSize {
		return fmt.Errorf("%w: max %s", errs.ErrFileTooLarge, FormatFileSize(MaxFileSize))
	}

	return nil
}

// ValidateSlotCapacity checks whether one more file fits into the session.
func ValidateSlotCapacity(currentCount int) error {
	if currentCount >= MaxFiles {
		return fmt.Errorf("%w: max %d", errs.ErrTooManyFiles, MaxFiles)
	}

	return nil
}

// FormatFileSize renders a byte count for user-facing messages.
func FormatFileSize(bytes int64) string {
	if bytes == 0 {
		return "0 Bytes"
	}

	const k = 1024
	sizes := []string{"Bytes", "KB", "MB", "GB"}

	i := int(math.Floor(math.Log(float64(bytes)) / math.Log(k)))
	if i >= len(sizes) {
		i = len(sizes) - 1
	}

	value := math.Round(float64(bytes)/math.Pow(k, float64(i))*100) / 100
	return fmt.Sprintf("%s %s", strconv.FormatFloat(value, 'f', -1, 64), sizes[i])
}
