package domain

import "errors"

var (
	ErrReportNotFound = errors.New("hazard report not found")
	ErrInvalidStatus  = errors.New("invalid report status")
)
