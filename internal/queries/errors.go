package queries

import (
	"fmt"

	"hn-stat/internal/shared/svcerrors"
)

// QueryService errors
const (
	codeValidationFailed = "QRY_1000"
	codeInvalidSource    = "QRY_1001"
	codeSourceNotFound   = "QRY_1002"

	codeInternalSourceUnavailable = "QRY_9000"
	codeInternalSourceReadFailed  = "QRY_9001"
)

// errValidationFailed returns an error for validation failures.
func errValidationFailed(msg string, cause error) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeValidationFailed, msg, cause)
}

// errInvalidSource returns an error when a source key is rejected by the file storage.
func errInvalidSource(source string, cause error) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeInvalidSource, fmt.Sprintf("invalid source: %q", source), cause)
}

// errSourceNotFound returns an error when no log exists under the source key.
func errSourceNotFound(source string, cause error) *svcerrors.ServiceError {
	return svcerrors.NewNotFoundError(codeSourceNotFound, fmt.Sprintf("source not found: %q", source), cause)
}

// errInternalSourceUnavailable returns an error when a source exists but cannot be opened.
func errInternalSourceUnavailable(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalSourceUnavailable, fmt.Errorf("sourceUnavailable: %w", cause))
}

// errInternalSourceReadFailed returns an error when a source fails while it is being read.
func errInternalSourceReadFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalSourceReadFailed, fmt.Errorf("sourceReadFailed: %w", cause))
}
