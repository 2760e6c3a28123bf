package models

import (
	"github.com/cockroachdb/errors"
)

// Base errors, related to default API status codes
var (
	// BadParameterError is rendered with the http status code 400
	BadParameterError = errors.New("bad parameter")

	// UnAuthorizedError is rendered with the http status code 401
	UnAuthorizedError = errors.New("unauthorized")

	// ForbiddenError is rendered with the http status code 403
	ForbiddenError = errors.New("forbidden")

	// NotFoundError is rendered with the http status code 404
	NotFoundError = errors.New("not found")

	// ConflictError is rendered with the http status code 409
	ConflictError = errors.New("duplicate value")
)

// Agent related errors
var ErrUnknownAgent = errors.Wrap(NotFoundError, "unknown agent")

// Scorecard related errors
var (
	ErrInvalidReportingPeriod = errors.Wrap(BadParameterError, "reporting period month must be between 1 and 12")
	ErrLegacyScaleRecord      = errors.Wrap(ConflictError,
		"score record uses the legacy 1-5 scale and cannot receive raw activity imports")
)

// DB related errors
var ErrIgnoreRollBackError = errors.New("ignore rollback error")
