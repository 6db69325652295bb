package http

import (
	"hn-stat/internal/shared/svcerrors"
)

// HTTP API errors
const (
	codeInvalidParameter = "API_1000"
)

// errInvalidParameter returns an error for malformed query parameters.
func errInvalidParameter(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeInvalidParameter, cause.Error(), cause)
}
