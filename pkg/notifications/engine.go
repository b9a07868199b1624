package notifications

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/Bernadoadk/Edofi-sub001/pkg/logger"
)

// Engine orchestrates the template catalog, placeholder renderer, preference
// gate and record store. It is safe for concurrent use: all state lives in
// the stores.
type Engine struct {
	records RecordStore
	gate    *Gate
	logger  *slog.Logger
}

// EngineOption configures an Engine.
type EngineOption func(*Engine)

// WithEngineLogger sets the logger for the Engine.
func WithEngineLogger(log *slog.Logger) EngineOption {
	return func(e *Engine) {
		if log != nil {
			e.logger = log
		}
	}
}

// NewEngine creates a notification engine over the given stores.
func NewEngine(records RecordStore, prefs PreferenceStore, opts ...EngineOption) *Engine {
	e := &Engine{
		records: records,
		gate:    NewGate(prefs),
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Gate returns the engine's preference gate.
func (e *Engine) Gate() *Gate {
	return e.gate
}

// CreateParams carries the inputs of the low-level Create primitive.
type CreateParams struct {
	RecipientID int64
	Kind        Kind
	Title       string
	Message     string
	Priority    Priority // defaults to PriorityMedium when empty
	Payload     map[string]any
}

// Create persists a new pending record. This is the low-level primitive: no
// template lookup, no rendering, no preference check.
func (e *Engine) Create(ctx context.Context, p CreateParams) (*Notification, error) {
	if p.RecipientID == 0 {
		return nil, fmt.Errorf("create notification: %w", ErrMissingRecipient)
	}

	priority := p.Priority
	if priority == "" {
		priority = PriorityMedium
	}

	now := time.Now()
	n := Notification{
		ID:          uuid.New(),
		RecipientID: p.RecipientID,
		Kind:        p.Kind,
		Title:       p.Title,
		Message:     p.Message,
		Priority:    priority,
		Status:      StatusPending,
		Payload:     p.Payload,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := e.records.Create(ctx, n); err != nil {
		return nil, fmt.Errorf("create notification for recipient %d: %w", p.RecipientID, err)
	}

	e.logger.LogAttrs(ctx, slog.LevelDebug, "notification created",
		logger.NotificationID(n.ID),
		logger.RecipientID(n.RecipientID),
		logger.Kind(string(n.Kind)),
	)

	return &n, nil
}

// CreateFromTemplate renders the kind's catalog template with vars and
// persists the result with the template's default priority. When payload is
// nil the substitution variables are stored as the payload so the repair
// sweep can re-render the record later.
func (e *Engine) CreateFromTemplate(ctx context.Context, recipientID int64, kind Kind, vars map[string]any, payload map[string]any) (*Notification, error) {
	tpl, err := TemplateFor(kind)
	if err != nil {
		return nil, err
	}

	if payload == nil {
		payload = vars
	}

	return e.Create(ctx, CreateParams{
		RecipientID: recipientID,
		Kind:        kind,
		Title:       Render(tpl.TitlePattern, vars),
		Message:     Render(tpl.MessagePattern, vars),
		Priority:    tpl.Priority,
		Payload:     payload,
	})
}

// CreateWithPreferenceCheck consults the preference gate before creating. A
// recipient who opted out of the kind's category gets ErrSuppressed and no
// write happens; that sentinel is an intentional outcome, not a failure.
//
// A gate failure is deliberately fail-open: over-notifying beats silently
// losing a message. Do not "fix" this into fail-closed; it would change
// delivery semantics for every caller.
func (e *Engine) CreateWithPreferenceCheck(ctx context.Context, recipientID int64, kind Kind, vars map[string]any, payload map[string]any) (*Notification, error) {
	allowed, err := e.gate.ShouldSend(ctx, recipientID, kind)
	if err != nil {
		e.logger.LogAttrs(ctx, slog.LevelWarn, "preference check failed, defaulting to allow",
			logger.RecipientID(recipientID),
			logger.Kind(string(kind)),
			logger.Error(err),
		)
		allowed = true
	}

	if !allowed {
		return nil, fmt.Errorf("notification %q for recipient %d: %w", kind, recipientID, ErrSuppressed)
	}

	return e.CreateFromTemplate(ctx, recipientID, kind, vars, payload)
}

// List returns the recipient's records, newest first, filtered by opts. The
// limit defaults to DefaultListLimit.
func (e *Engine) List(ctx context.Context, recipientID int64, opts ListOptions) ([]Notification, error) {
	limit := opts.Limit
	if limit <= 0 {
		limit = DefaultListLimit
	}

	records, err := e.records.FindMany(ctx, Filter{
		RecipientID: &recipientID,
		Kind:        opts.Kind,
		Priority:    opts.Priority,
		Status:      opts.Status,
		Read:        opts.Read,
		Limit:       limit,
		Offset:      opts.Offset,
	})
	if err != nil {
		return nil, fmt.Errorf("list notifications for recipient %d: %w", recipientID, err)
	}
	return records, nil
}

// MarkRead sets the record's status to read and stamps the read time.
// Re-marking an already-read record is a no-op success.
func (e *Engine) MarkRead(ctx context.Context, id uuid.UUID) (*Notification, error) {
	n, err := e.records.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("mark notification %s read: %w", id, err)
	}
	if n.IsRead() {
		return n, nil
	}

	now := time.Now()
	status := StatusRead
	updated, err := e.records.UpdateByID(ctx, id, RecordPatch{
		Status: &status,
		ReadAt: &now,
	})
	if err != nil {
		return nil, fmt.Errorf("mark notification %s read: %w", id, err)
	}
	return updated, nil
}

// MarkAllRead marks every not-yet-read record of the recipient as read in one
// store-level bulk update and returns the number of records changed. The bulk
// form avoids partial completion under concurrent creates.
func (e *Engine) MarkAllRead(ctx context.Context, recipientID int64) (int64, error) {
	now := time.Now()
	read := StatusRead
	count, err := e.records.UpdateMany(ctx, Filter{
		RecipientID: &recipientID,
		StatusNot:   &read,
	}, RecordPatch{
		Status: &read,
		ReadAt: &now,
	})
	if err != nil {
		return 0, fmt.Errorf("mark all notifications read for recipient %d: %w", recipientID, err)
	}

	e.logger.LogAttrs(ctx, slog.LevelDebug, "notifications marked read",
		logger.RecipientID(recipientID),
		slog.Int64("count", count),
	)
	return count, nil
}

// UnreadCount returns the number of records without a read timestamp. The
// definition matches List's read filter exactly; the two must not drift.
func (e *Engine) UnreadCount(ctx context.Context, recipientID int64) (int, error) {
	unread := false
	count, err := e.records.Count(ctx, Filter{
		RecipientID: &recipientID,
		Read:        &unread,
	})
	if err != nil {
		return 0, fmt.Errorf("unread count for recipient %d: %w", recipientID, err)
	}
	return count, nil
}

// Delete removes the record permanently. There is no soft delete.
func (e *Engine) Delete(ctx context.Context, id uuid.UUID) error {
	if err := e.records.DeleteByID(ctx, id); err != nil {
		return fmt.Errorf("delete notification %s: %w", id, err)
	}
	return nil
}
