package errs

import "errors"

var (
	ErrImageNotFound      = errors.New("image not found")
	ErrNoImages           = errors.New("no images to process")
	ErrMissingCoordinates = errors.New("all images must have coordinates set")
	ErrProcessingStarted  = errors.New("processing already started")
	ErrIndexOutOfRange    = errors.New("image index out of range")
	ErrInvalidFileType    = errors.New("invalid file type (allowed: jpeg, jpg, png, webp)")
	ErrFileTooLarge       = errors.New("file exceeds the maximum allowed size")
	ErrTooManyFiles       = errors.New("maximum number of files reached")
	ErrSlotCountMismatch  = errors.New("upload slot count does not match image count")
)
