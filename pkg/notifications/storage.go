package notifications

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// DefaultListLimit caps List results when the caller does not specify a limit.
const DefaultListLimit = 50

// RecordStore handles notification record persistence. Implementations return
// ErrNotFound for missing ids and wrap infrastructure failures with
// ErrStoreUnavailable. FindMany always orders by creation time descending;
// that ordering is load-bearing for the UI and must be exact.
type RecordStore interface {
	Create(ctx context.Context, n Notification) error
	GetByID(ctx context.Context, id uuid.UUID) (*Notification, error)
	FindMany(ctx context.Context, f Filter) ([]Notification, error)
	Count(ctx context.Context, f Filter) (int, error)
	UpdateByID(ctx context.Context, id uuid.UUID, patch RecordPatch) (*Notification, error)

	// UpdateMany applies patch to every record matching f as a single
	// store-level bulk update and returns the number of records changed.
	// Implementations must not loop individual writes: a record created while
	// the sweep runs must either be fully included or fully excluded.
	UpdateMany(ctx context.Context, f Filter, patch RecordPatch) (int64, error)

	DeleteByID(ctx context.Context, id uuid.UUID) error
}

// PreferenceStore handles recipient preference persistence. GetByRecipient
// returns ErrNotFound when the recipient never saved preferences; Upsert
// creates the row lazily from the permissive defaults before applying the
// patch (at most one row per recipient).
type PreferenceStore interface {
	GetByRecipient(ctx context.Context, recipientID int64) (*Preference, error)
	Upsert(ctx context.Context, recipientID int64, patch PreferencePatch) (*Preference, error)
}

// Filter selects notification records. Nil fields do not constrain the
// result. Read filters on read-timestamp presence rather than Status so
// records whose status was never advanced are still reported as unread.
type Filter struct {
	RecipientID *int64
	Kind        *Kind
	Priority    *Priority
	Status      *Status
	StatusNot   *Status
	Read        *bool

	// Leftover selects records whose stored title or message still contains
	// an unsubstituted placeholder token. Used by the repair sweep.
	Leftover bool

	Limit  int // 0 means no limit
	Offset int
}

// RecordPatch is a partial record update. Nil fields are left untouched.
type RecordPatch struct {
	Title   *string
	Message *string
	Status  *Status
	ReadAt  *time.Time
	SentAt  *time.Time
}

// ListOptions is the caller-facing filter for Engine.List; the recipient is
// passed separately and is always required.
type ListOptions struct {
	Kind     *Kind
	Priority *Priority
	Status   *Status
	Read     *bool
	Limit    int // defaults to DefaultListLimit
	Offset   int
}
