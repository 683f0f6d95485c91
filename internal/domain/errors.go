package domain

import (
	"errors"
	"fmt"
)

// Error codes for different failure scenarios
const (
	ErrInvalidInput   = "INVALID_INPUT"
	ErrInvalidFile    = "INVALID_FILE"
	ErrDatabaseError  = "DATABASE_ERROR"
	ErrUploadFailed   = "UPLOAD_FAILED"
	ErrPartialUpload  = "PARTIAL_UPLOAD"
	ErrInternalServer = "INTERNAL_SERVER_ERROR"
)

// ErrNotFound is returned when a requested entity does not exist.
var ErrNotFound = errors.New("not found")

// ValidationError represents input validation errors
type ValidationError struct {
	Field   string      `json:"field"`
	Message string      `json:"message"`
	Value   interface{} `json:"value"`
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error for field '%s': %s", e.Field, e.Message)
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string, value interface{}) *ValidationError {
	return &ValidationError{
		Field:   field,
		Message: message,
		Value:   value,
	}
}

// FileError represents a structural file-level failure detected before
// parsing. These are fail-fast and never retried.
type FileError struct {
	Reason string `json:"reason"`
}

// Error implements the error interface
func (e *FileError) Error() string {
	return fmt.Sprintf("invalid file: %s", e.Reason)
}

// NewFileError creates a new FileError
func NewFileError(reason string) *FileError {
	return &FileError{Reason: reason}
}

// UploadError identifies the exact batch that exhausted its retries, out of
// the chunk/batch totals for the upload.
type UploadError struct {
	ChunkIndex   int
	TotalChunks  int
	BatchIndex   int
	TotalBatches int
	CleanedUp    bool
	Err          error
}

// Error implements the error interface
func (e *UploadError) Error() string {
	msg := fmt.Sprintf("upload failed at chunk %d/%d batch %d/%d: %v",
		e.ChunkIndex, e.TotalChunks, e.BatchIndex, e.TotalBatches, e.Err)
	if e.CleanedUp {
		return msg + " (partial data was removed)"
	}
	return msg
}

// Unwrap returns the underlying submission error
func (e *UploadError) Unwrap() error {
	return e.Err
}

// PartialUploadError reports a failure in chunk 2+ after earlier chunks were
// committed. Stored data is incomplete and a full re-upload may be required;
// this must never be masked as a generic failure.
type PartialUploadError struct {
	*UploadError
	VariantsSaved int64
}

// Error implements the error interface
func (e *PartialUploadError) Error() string {
	return fmt.Sprintf("%v; %d variants from earlier chunks remain stored, a full re-upload may be required",
		e.UploadError, e.VariantsSaved)
}
