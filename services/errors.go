package services

import (
	"errors"
	"net/http"
)

// ValidationError means the draft itself is not submittable. No network
// call has been made when this is returned.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

// UploadError means one or more image uploads failed. The whole submit is
// aborted and no document was created or updated.
type UploadError struct {
	Err error
}

func (e *UploadError) Error() string {
	return "image upload failed: " + e.Err.Error()
}

func (e *UploadError) Unwrap() error {
	return e.Err
}

// PersistenceError means a store create/update/delete failed. Images
// uploaded before the failure are not rolled back.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return "report " + e.Op + " failed: " + e.Err.Error()
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}

// FetchError means the report list or a single report could not be loaded.
type FetchError struct {
	Err error
}

func (e *FetchError) Error() string {
	return "failed to load reports: " + e.Err.Error()
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// ErrorStatus maps a workflow error to the HTTP status the handlers answer.
func ErrorStatus(err error) int {
	var (
		validation  *ValidationError
		upload      *UploadError
		persistence *PersistenceError
		fetch       *FetchError
	)
	switch {
	case errors.As(err, &validation):
		return http.StatusUnprocessableEntity
	case errors.As(err, &upload), errors.As(err, &persistence), errors.As(err, &fetch):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// ErrorKind names the taxonomy bucket for response bodies.
func ErrorKind(err error) string {
	var (
		validation  *ValidationError
		upload      *UploadError
		persistence *PersistenceError
		fetch       *FetchError
	)
	switch {
	case errors.As(err, &validation):
		return "validation"
	case errors.As(err, &upload):
		return "upload"
	case errors.As(err, &persistence):
		return "persistence"
	case errors.As(err, &fetch):
		return "fetch"
	default:
		return "internal"
	}
}
