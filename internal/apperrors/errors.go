package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrFormClosed indicates an operation on a form session that is no longer open.
var ErrFormClosed = errors.New("form is closed")

// ErrIntakeBusy indicates that a document upload is already in flight.
var ErrIntakeBusy = errors.New("document intake is busy")

// ErrExtractionFailed indicates that the extraction endpoint rejected the upload
// or returned a payload without documents.
var ErrExtractionFailed = errors.New("extraction failed")
