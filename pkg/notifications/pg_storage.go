package notifications

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Bernadoadk/Edofi-sub001/pkg/pg"
)

// PGStorage implements RecordStore and PreferenceStore on PostgreSQL via
// pgx. Schema lives in the migrations directory and is applied with goose
// (see pkg/pg.Migrate).
type PGStorage struct {
	pool *pgxpool.Pool
}

// NewPGStorage creates a Postgres-backed storage over an existing pool.
func NewPGStorage(pool *pgxpool.Pool) *PGStorage {
	return &PGStorage{pool: pool}
}

const notificationColumns = `id, recipient_id, kind, title, message, priority, status, payload, read_at, sent_at, created_at, updated_at`

// leftoverCondition matches titles or messages that still contain a braced
// placeholder token. Must stay in sync with placeholderPattern in render.go.
const leftoverCondition = `(title ~ '\{[A-Za-z][A-Za-z0-9_]*\}' OR message ~ '\{[A-Za-z][A-Za-z0-9_]*\}')`

func (s *PGStorage) Create(ctx context.Context, n Notification) error {
	if n.RecipientID == 0 {
		return ErrMissingRecipient
	}
	_, err := s.pool.Exec(ctx, `
		INSERT INTO notifications (`+notificationColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`,
		n.ID, n.RecipientID, n.Kind, n.Title, n.Message, n.Priority, n.Status,
		n.Payload, n.ReadAt, n.SentAt, n.CreatedAt, n.UpdatedAt,
	)
	if err != nil {
		return errors.Join(ErrStoreUnavailable, err)
	}
	return nil
}

func (s *PGStorage) GetByID(ctx context.Context, id uuid.UUID) (*Notification, error) {
	row := s.pool.QueryRow(ctx, `
		SELECT `+notificationColumns+`
		FROM notifications
		WHERE id = $1`, id)

	n, err := scanNotification(row)
	if err != nil {
		if pg.IsNotFoundError(err) {
			return nil, ErrNotFound
		}
		return nil, errors.Join(ErrStoreUnavailable, err)
	}
	return n, nil
}

func (s *PGStorage) FindMany(ctx context.Context, f Filter) ([]Notification, error) {
	where, args := buildRecordWhere(f)

	query := `SELECT ` + notificationColumns + ` FROM notifications` + where +
		` ORDER BY created_at DESC, id DESC`
	if f.Limit > 0 {
		args = append(args, f.Limit)
		query += fmt.Sprintf(" LIMIT $%d", len(args))
	}
	if f.Offset > 0 {
		args = append(args, f.Offset)
		query += fmt.Sprintf(" OFFSET $%d", len(args))
	}

	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, errors.Join(ErrStoreUnavailable, err)
	}
	defer rows.Close()

	records := make([]Notification, 0)
	for rows.Next() {
		n, err := scanNotification(rows)
		if err != nil {
			return nil, errors.Join(ErrStoreUnavailable, err)
		}
		records = append(records, *n)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Join(ErrStoreUnavailable, err)
	}
	return records, nil
}

func (s *PGStorage) Count(ctx context.Context, f Filter) (int, error) {
	where, args := buildRecordWhere(f)

	var count int
	err := s.pool.QueryRow(ctx, `SELECT COUNT(*) FROM notifications`+where, args...).Scan(&count)
	if err != nil {
		return 0, errors.Join(ErrStoreUnavailable, err)
	}
	return count, nil
}

func (s *PGStorage) UpdateByID(ctx context.Context, id uuid.UUID, patch RecordPatch) (*Notification, error) {
	set, args := buildRecordSet(patch)
	args = append(args, id)

	row := s.pool.QueryRow(ctx, `
		UPDATE notifications
		SET `+set+fmt.Sprintf(`
		WHERE id = $%d
		RETURNING `, len(args))+notificationColumns, args...)

	n, err := scanNotification(row)
	if err != nil {
		if pg.IsNotFoundError(err) {
			return nil, ErrNotFound
		}
		return nil, errors.Join(ErrStoreUnavailable, err)
	}
	return n, nil
}

func (s *PGStorage) UpdateMany(ctx context.Context, f Filter, patch RecordPatch) (int64, error) {
	set, args := buildRecordSet(patch)
	where, whereArgs := buildRecordWhereFrom(f, len(args))
	args = append(args, whereArgs...)

	tag, err := s.pool.Exec(ctx, `UPDATE notifications SET `+set+where, args...)
	if err != nil {
		return 0, errors.Join(ErrStoreUnavailable, err)
	}
	return tag.RowsAffected(), nil
}

func (s *PGStorage) DeleteByID(ctx context.Context, id uuid.UUID) error {
	tag, err := s.pool.Exec(ctx, `DELETE FROM notifications WHERE id = $1`, id)
	if err != nil {
		return errors.Join(ErrStoreUnavailable, err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

const preferenceColumns = `recipient_id,
	email_enabled, push_enabled, sms_enabled, in_app_enabled,
	planning_enabled, booking_enabled, social_enabled, performance_enabled,
	system_enabled, commercial_enabled, personalized_enabled, urgent_enabled,
	created_at, updated_at`

func (s *PGStorage) GetByRecipient(ctx context.Context, recipientID int64) (*Preference, error) {
	row := s.pool.QueryRow(ctx, `
		SELECT `+preferenceColumns+`
		FROM notification_preferences
		WHERE recipient_id = $1`, recipientID)

	p, err := scanPreference(row)
	if err != nil {
		if pg.IsNotFoundError(err) {
			return nil, ErrNotFound
		}
		return nil, errors.Join(ErrStoreUnavailable, err)
	}
	return p, nil
}

func (s *PGStorage) Upsert(ctx context.Context, recipientID int64, patch PreferencePatch) (*Preference, error) {
	// The row is created lazily with the permissive column defaults, then the
	// patch is applied on top. At most one row per recipient is guaranteed by
	// the primary key.
	if _, err := s.pool.Exec(ctx, `
		INSERT INTO notification_preferences (recipient_id)
		VALUES ($1)
		ON CONFLICT (recipient_id) DO NOTHING`, recipientID); err != nil {
		return nil, errors.Join(ErrStoreUnavailable, err)
	}

	set, args := buildPreferenceSet(patch)
	args = append(args, recipientID)

	row := s.pool.QueryRow(ctx, `
		UPDATE notification_preferences
		SET `+set+fmt.Sprintf(`
		WHERE recipient_id = $%d
		RETURNING `, len(args))+preferenceColumns, args...)

	p, err := scanPreference(row)
	if err != nil {
		return nil, errors.Join(ErrStoreUnavailable, err)
	}
	return p, nil
}

type pgScanner interface {
	Scan(dest ...any) error
}

func scanNotification(row pgScanner) (*Notification, error) {
	var n Notification
	if err := row.Scan(
		&n.ID, &n.RecipientID, &n.Kind, &n.Title, &n.Message, &n.Priority,
		&n.Status, &n.Payload, &n.ReadAt, &n.SentAt, &n.CreatedAt, &n.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &n, nil
}

func scanPreference(row pgScanner) (*Preference, error) {
	var p Preference
	if err := row.Scan(
		&p.RecipientID,
		&p.EmailEnabled, &p.PushEnabled, &p.SMSEnabled, &p.InAppEnabled,
		&p.PlanningEnabled, &p.BookingEnabled, &p.SocialEnabled, &p.PerformanceEnabled,
		&p.SystemEnabled, &p.CommercialEnabled, &p.PersonalizedEnabled, &p.UrgentEnabled,
		&p.CreatedAt, &p.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &p, nil
}

func buildRecordWhere(f Filter) (string, []any) {
	return buildRecordWhereFrom(f, 0)
}

// buildRecordWhereFrom renders the filter as a WHERE clause with placeholders
// starting after argOffset existing arguments.
func buildRecordWhereFrom(f Filter, argOffset int) (string, []any) {
	conditions := make([]string, 0, 6)
	args := make([]any, 0, 6)

	add := func(column string, op string, value any) {
		args = append(args, value)
		conditions = append(conditions, fmt.Sprintf("%s %s $%d", column, op, argOffset+len(args)))
	}

	if f.RecipientID != nil {
		add("recipient_id", "=", *f.RecipientID)
	}
	if f.Kind != nil {
		add("kind", "=", *f.Kind)
	}
	if f.Priority != nil {
		add("priority", "=", *f.Priority)
	}
	if f.Status != nil {
		add("status", "=", *f.Status)
	}
	if f.StatusNot != nil {
		add("status", "<>", *f.StatusNot)
	}
	if f.Read != nil {
		if *f.Read {
			conditions = append(conditions, "read_at IS NOT NULL")
		} else {
			conditions = append(conditions, "read_at IS NULL")
		}
	}
	if f.Leftover {
		conditions = append(conditions, leftoverCondition)
	}

	if len(conditions) == 0 {
		return "", args
	}
	return " WHERE " + strings.Join(conditions, " AND "), args
}

func buildRecordSet(patch RecordPatch) (string, []any) {
	clauses := make([]string, 0, 5)
	args := make([]any, 0, 5)

	add := func(column string, value any) {
		args = append(args, value)
		clauses = append(clauses, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if patch.Title != nil {
		add("title", *patch.Title)
	}
	if patch.Message != nil {
		add("message", *patch.Message)
	}
	if patch.Status != nil {
		add("status", *patch.Status)
	}
	if patch.ReadAt != nil {
		add("read_at", *patch.ReadAt)
	}
	if patch.SentAt != nil {
		add("sent_at", *patch.SentAt)
	}

	args = append(args, time.Now())
	clauses = append(clauses, fmt.Sprintf("updated_at = $%d", len(args)))

	return strings.Join(clauses, ", "), args
}

func buildPreferenceSet(patch PreferencePatch) (string, []any) {
	clauses := make([]string, 0, 13)
	args := make([]any, 0, 13)

	add := func(column string, value *bool) {
		if value == nil {
			return
		}
		args = append(args, *value)
		clauses = append(clauses, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	add("email_enabled", patch.EmailEnabled)
	add("push_enabled", patch.PushEnabled)
	add("sms_enabled", patch.SMSEnabled)
	add("in_app_enabled", patch.InAppEnabled)
	add("planning_enabled", patch.PlanningEnabled)
	add("booking_enabled", patch.BookingEnabled)
	add("social_enabled", patch.SocialEnabled)
	add("performance_enabled", patch.PerformanceEnabled)
	add("system_enabled", patch.SystemEnabled)
	add("commercial_enabled", patch.CommercialEnabled)
	add("personalized_enabled", patch.PersonalizedEnabled)
	add("urgent_enabled", patch.UrgentEnabled)

	args = append(args, time.Now())
	clauses = append(clauses, fmt.Sprintf("updated_at = $%d", len(args)))

	return strings.Join(clauses, ", "), args
}

// Interface guards.
var (
	_ RecordStore     = (*PGStorage)(nil)
	_ PreferenceStore = (*PGStorage)(nil)
)
