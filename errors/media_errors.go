// api/errors/media_errors.go
package errors

import "errors"

var (
	ErrMediaNotFound    = errors.New("media not found")
	ErrInvalidMediaData = errors.New("invalid media data")
	ErrNoFilesUploaded  = errors.New("no files uploaded")
	ErrTooManyFiles     = errors.New("too many files")
	ErrInvalidFileType  = errors.New("invalid file type")
	ErrFileTooLarge     = errors.New("file too large")
)
