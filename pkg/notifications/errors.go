package notifications

import "errors"

var (
	// ErrUnknownKind is returned when a kind has no template in the catalog.
	// For validated input this should never happen; the catalog is checked for
	// completeness at package init.
	ErrUnknownKind = errors.New("unknown notification kind")

	// ErrNotFound is returned when a notification record or preference does
	// not exist in the store.
	ErrNotFound = errors.New("notification not found")

	// ErrSuppressed reports that a notification was intentionally not created
	// because the recipient opted out of its category. It is a sentinel, not a
	// failure: no record was written and none should be.
	ErrSuppressed = errors.New("notification suppressed by recipient preferences")

	// ErrStoreUnavailable wraps failures of the persistence collaborator.
	ErrStoreUnavailable = errors.New("notification store unavailable")

	// ErrMissingRecipient is returned when a record is created without a
	// recipient.
	ErrMissingRecipient = errors.New("recipient id is required")
)
