// Package notifications implements the notification core of the Edofi event
// platform: a catalog of notification kinds bound to message templates, a
// placeholder renderer, a per-recipient preference gate, and an engine that
// ties them to a pluggable persistence layer.
//
// The package is transport-agnostic. It decides whether a notification should
// exist and what it says; delivering it over email, push or anything else is
// the calling application's concern, as is HTTP exposure.
//
// # Architecture
//
//   - Catalog: static Kind → Template mapping, validated for completeness at
//     package init
//   - Render: placeholder substitution with graceful degrade
//   - Gate: category-level opt-in/opt-out decisions
//   - RecordStore / PreferenceStore: persistence collaborators
//   - Engine: the public operations
//
// # Basic Usage
//
//	storage := notifications.NewMemoryStorage()
//	engine := notifications.NewEngine(storage, storage)
//
//	notif, err := engine.CreateFromTemplate(ctx, recipientID,
//	    notifications.KindEventReminder,
//	    map[string]any{"event_title": "Jazz Night", "time_remaining": "2h"},
//	    nil,
//	)
//
// # Preference-checked creation
//
// CreateWithPreferenceCheck consults the recipient's category toggles before
// writing anything. A suppressed notification is reported with the
// ErrSuppressed sentinel:
//
//	notif, err := engine.CreateWithPreferenceCheck(ctx, recipientID,
//	    notifications.KindNewComment,
//	    map[string]any{"user_name": "Ana", "event_title": "Jazz Night"},
//	    nil,
//	)
//	if errors.Is(err, notifications.ErrSuppressed) {
//	    // recipient opted out of the social category; nothing was written
//	}
//
// A failing preference lookup is deliberately fail-open: the notification is
// created anyway. Over-notifying is preferred to silently losing messages.
//
// # Storage Implementations
//
// Three implementations of the store interfaces ship with the package:
// MemoryStorage for development and tests, PGStorage on PostgreSQL via pgx,
// and MongoStorage on MongoDB. All three implement both RecordStore and
// PreferenceStore.
//
// # Legacy repair
//
// Records written before variables were supplied correctly may still carry
// literal {placeholder} tokens. Engine.RepairLegacyRecords finds them,
// re-derives variables from the stored payload (accepting snake_case and
// camelCase key spellings) and rewrites title and message in place. The sweep
// is idempotent and best effort.
package notifications
