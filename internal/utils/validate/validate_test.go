package validate

import (
	"errors"
	"testing"

	"github.com/dendrolab/ringview/internal/utils/errs"
	"github.com/stretchr/testify/assert"
)

func TestValidateImageType(t *testing.T) {
	tests := []struct {
		name          string
		contentType   string
		filename      string
		expectedError error
	}{
		{
			name:        "JPEG",
			contentType: "image/jpeg",
			filename:    "sample.jpg",
		},
		{
			name:        "PNG",
			contentType: "image/png",
			filename:    "sample.png",
		},
		{
			name:        "WebP",
			contentType: "image/webp",
			filename:    "sample.webp",
		},
		{
			name:        "UppercaseMIME",
			contentType: "IMAGE/JPEG",
			filename:    "sample.jpg",
		},
		{
			name:          "PDFRejected",
			contentType:   "application/pdf",
			filename:      "document.pdf",
			expectedError: errs.ErrInvalidFileType,
		},
		{
			name:          "GIFRejected",
			contentType:   "image/gif",
			filename:      "animation.gif",
			expectedError: errs.ErrInvalidFileType,
		},
		{
			name:        "MissingMIMEFallsBackToExtension",
			contentType: "",
			filename:    "sample.jpeg",
		},
		{
			name:          "MissingMIMEBadExtension",
			contentType:   "",
			filename:      "archive.zip",
			expectedError: errs.ErrInvalidFileType,
		},
		{
			name:          "MIMETakesPrecedenceOverExtension",
			contentType:   "text/plain",
			filename:      "sample.jpg",
			expectedError: errs.ErrInvalidFileType,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateImageType(tt.contentType, tt.filename)

			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.True(t, errors.Is(err, tt.expectedError))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateFileSize(t *testing.T) {
	tests := []struct {
		name          string
		size          int64
		expectedError error
	}{
		{
			name: "SmallFile",
			size: 1024,
		},
		{
			name: "ExactlyAtLimit",
			size: MaxFileSize,
		},
		{
			name:          "OneByteOverLimit",
			size:          MaxFileSize + 1,
			expectedError: errs.ErrFileTooLarge,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateFileSize(tt.size)

			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.True(t, errors.Is(err, tt.expectedError))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateSlotCapacity(t *testing.T) {
	tests := []struct {
		name          string
		currentCount  int
		expectedError error
	}{
		{
			name:         "Empty",
			currentCount: 0,
		},
		{
			name:         "OneBelowLimit",
			currentCount: MaxFiles - 1,
		},
		{
			name:          "AtLimit",
			currentCount:  MaxFiles,
			expectedError: errs.ErrTooManyFiles,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateSlotCapacity(tt.currentCount)

			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.True(t, errors.Is(err, tt.expectedError))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestFormatFileSize(t *testing.T) {
	tests := []struct {
		name     string
		bytes    int64
		expected string
	}{
		{
			name:     "Zero",
			bytes:    0,
			expected: "0 Bytes",
		},
		{
			name:     "Bytes",
			bytes:    512,
			expected: "512 Bytes",
		},
		{
			name:     "Kilobytes",
			bytes:    2048,
			expected: "2 KB",
		},
		{
			name:     "FractionalMegabytes",
			bytes:    1572864,
			expected: "1.5 MB",
		},
		{
			name:     "IntakeLimit",
			bytes:    MaxFileSize,
			expected: "20 MB",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatFileSize(tt.bytes))
		})
	}
}
