package moderation

import "errors"

var (
	ErrReportNotFound     = errors.New("report not found")
	ErrSuspensionNotFound = errors.New("suspension not found")

	// ErrReporterBanned rejects reports from users whose reputation level
	// is banned.
	ErrReporterBanned = errors.New("reporter is banned")

	// ErrAlreadyResolved rejects re-resolution of a resolved report.
	ErrAlreadyResolved = errors.New("report already resolved")

	ErrInvalidCategory = errors.New("invalid report category")
	ErrInvalidAction   = errors.New("action not valid for this report type")

	// Suspension validation
	ErrDurationRequired  = errors.New("temporary suspension requires a positive duration")
	ErrDurationForbidden = errors.New("duration not allowed for this suspension type")
	ErrInvalidType       = errors.New("invalid suspension type")

	// Suspension review
	ErrSuspensionInactive    = errors.New("cannot modify an inactive suspension")
	ErrCannotModifyPermanent = errors.New("cannot extend or reduce a permanent suspension")
	ErrInvalidReviewAction   = errors.New("invalid suspension review action")
)
