package notifications

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestEngine(records RecordStore, prefs PreferenceStore) *Engine {
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewEngine(records, prefs, WithEngineLogger(log))
}

func TestEngine_Create(t *testing.T) {
	t.Parallel()

	t.Run("persists a pending record", func(t *testing.T) {
		t.Parallel()

		records := new(MockRecordStore)
		var stored Notification
		records.On("Create", mock.Anything, mock.MatchedBy(func(n Notification) bool {
			stored = n
			return true
		})).Return(nil)

		engine := newTestEngine(records, new(MockPreferenceStore))
		n, err := engine.Create(context.Background(), CreateParams{
			RecipientID: 7,
			Kind:        KindEventReminder,
			Title:       "t",
			Message:     "m",
			Priority:    PriorityHigh,
		})
		require.NoError(t, err)

		assert.NotEqual(t, uuid.Nil, n.ID)
		assert.Equal(t, int64(7), n.RecipientID)
		assert.Equal(t, StatusPending, n.Status)
		assert.Equal(t, PriorityHigh, n.Priority)
		assert.Nil(t, n.ReadAt)
		assert.False(t, n.CreatedAt.IsZero())
		assert.Equal(t, *n, stored)
	})

	t.Run("priority defaults to medium", func(t *testing.T) {
		t.Parallel()

		records := new(MockRecordStore)
		records.On("Create", mock.Anything, mock.Anything).Return(nil)

		engine := newTestEngine(records, new(MockPreferenceStore))
		n, err := engine.Create(context.Background(), CreateParams{
			RecipientID: 7,
			Kind:        KindNewComment,
			Title:       "t",
			Message:     "m",
		})
		require.NoError(t, err)
		assert.Equal(t, PriorityMedium, n.Priority)
	})

	t.Run("recipient required", func(t *testing.T) {
		t.Parallel()

		engine := newTestEngine(new(MockRecordStore), new(MockPreferenceStore))
		_, err := engine.Create(context.Background(), CreateParams{Kind: KindNewComment})
		assert.ErrorIs(t, err, ErrMissingRecipient)
	})

	t.Run("store failure propagates", func(t *testing.T) {
		t.Parallel()

		records := new(MockRecordStore)
		records.On("Create", mock.Anything, mock.Anything).Return(ErrStoreUnavailable)

		engine := newTestEngine(records, new(MockPreferenceStore))
		_, err := engine.Create(context.Background(), CreateParams{
			RecipientID: 7,
			Kind:        KindNewComment,
		})
		assert.ErrorIs(t, err, ErrStoreUnavailable)
	})
}

func TestEngine_CreateFromTemplate(t *testing.T) {
	t.Parallel()

	t.Run("renders the event reminder template", func(t *testing.T) {
		t.Parallel()

		records := new(MockRecordStore)
		var stored Notification
		records.On("Create", mock.Anything, mock.MatchedBy(func(n Notification) bool {
			stored = n
			return true
		})).Return(nil)

		engine := newTestEngine(records, new(MockPreferenceStore))
		vars := map[string]any{"event_title": "Jazz Night", "time_remaining": "2h"}
		n, err := engine.CreateFromTemplate(context.Background(), 7, KindEventReminder, vars, nil)
		require.NoError(t, err)

		assert.Equal(t, "Rappel d'événement", n.Title)
		assert.Equal(t, "Votre événement Jazz Night commence dans 2h", n.Message)
		assert.Equal(t, PriorityHigh, n.Priority)
		assert.Equal(t, StatusPending, n.Status)
		assert.Equal(t, KindEventReminder, stored.Kind)
	})

	t.Run("variables become the payload when none is given", func(t *testing.T) {
		t.Parallel()

		records := new(MockRecordStore)
		records.On("Create", mock.Anything, mock.Anything).Return(nil)

		engine := newTestEngine(records, new(MockPreferenceStore))
		vars := map[string]any{"event_title": "Jazz Night", "time_remaining": "2h"}
		n, err := engine.CreateFromTemplate(context.Background(), 7, KindEventReminder, vars, nil)
		require.NoError(t, err)
		assert.Equal(t, vars, n.Payload)
	})

	t.Run("explicit payload wins", func(t *testing.T) {
		t.Parallel()

		records := new(MockRecordStore)
		records.On("Create", mock.Anything, mock.Anything).Return(nil)

		engine := newTestEngine(records, new(MockPreferenceStore))
		payload := map[string]any{"event_id": 12}
		n, err := engine.CreateFromTemplate(context.Background(), 7, KindEventCreated,
			map[string]any{"event_title": "Jazz Night"}, payload)
		require.NoError(t, err)
		assert.Equal(t, payload, n.Payload)
	})

	t.Run("unknown kind", func(t *testing.T) {
		t.Parallel()

		engine := newTestEngine(new(MockRecordStore), new(MockPreferenceStore))
		_, err := engine.CreateFromTemplate(context.Background(), 7, Kind("nope"), nil, nil)
		assert.ErrorIs(t, err, ErrUnknownKind)
	})
}

func TestEngine_CreateWithPreferenceCheck(t *testing.T) {
	t.Parallel()

	t.Run("suppressed category writes nothing", func(t *testing.T) {
		t.Parallel()

		pref := DefaultPreference(7)
		pref.PlanningEnabled = false

		prefs := new(MockPreferenceStore)
		prefs.On("GetByRecipient", mock.Anything, int64(7)).Return(&pref, nil)

		records := new(MockRecordStore)

		engine := newTestEngine(records, prefs)
		n, err := engine.CreateWithPreferenceCheck(context.Background(), 7, KindEventReminder,
			map[string]any{"event_title": "Jazz Night"}, nil)

		assert.ErrorIs(t, err, ErrSuppressed)
		assert.Nil(t, n)
		records.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("allowed category creates", func(t *testing.T) {
		t.Parallel()

		pref := DefaultPreference(7)
		prefs := new(MockPreferenceStore)
		prefs.On("GetByRecipient", mock.Anything, int64(7)).Return(&pref, nil)

		records := new(MockRecordStore)
		records.On("Create", mock.Anything, mock.Anything).Return(nil)

		engine := newTestEngine(records, prefs)
		n, err := engine.CreateWithPreferenceCheck(context.Background(), 7, KindNewComment,
			map[string]any{"user_name": "Ana", "event_title": "Jazz Night"}, nil)
		require.NoError(t, err)
		assert.Equal(t, "Ana a commenté votre événement Jazz Night", n.Message)
	})

	t.Run("gate failure is fail-open", func(t *testing.T) {
		t.Parallel()

		// A broken preference store must not silently drop notifications:
		// the engine defaults to allow. Changing this to fail-closed changes
		// delivery semantics for every caller.
		prefs := new(MockPreferenceStore)
		prefs.On("GetByRecipient", mock.Anything, int64(7)).Return(nil, errors.New("connection refused"))

		records := new(MockRecordStore)
		records.On("Create", mock.Anything, mock.Anything).Return(nil)

		engine := newTestEngine(records, prefs)
		n, err := engine.CreateWithPreferenceCheck(context.Background(), 7, KindEventReminder,
			map[string]any{"event_title": "Jazz Night", "time_remaining": "2h"}, nil)
		require.NoError(t, err)
		require.NotNil(t, n)
		records.AssertCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestEngine_List(t *testing.T) {
	t.Parallel()

	t.Run("applies the default limit", func(t *testing.T) {
		t.Parallel()

		records := new(MockRecordStore)
		records.On("FindMany", mock.Anything, mock.MatchedBy(func(f Filter) bool {
			return f.Limit == DefaultListLimit && f.Offset == 0 &&
				f.RecipientID != nil && *f.RecipientID == 7
		})).Return([]Notification{}, nil)

		engine := newTestEngine(records, new(MockPreferenceStore))
		_, err := engine.List(context.Background(), 7, ListOptions{})
		require.NoError(t, err)
		records.AssertExpectations(t)
	})

	t.Run("passes filters through", func(t *testing.T) {
		t.Parallel()

		kind := KindNewComment
		unread := false
		records := new(MockRecordStore)
		records.On("FindMany", mock.Anything, mock.MatchedBy(func(f Filter) bool {
			return f.Kind != nil && *f.Kind == kind &&
				f.Read != nil && !*f.Read &&
				f.Limit == 10 && f.Offset == 20
		})).Return([]Notification{}, nil)

		engine := newTestEngine(records, new(MockPreferenceStore))
		_, err := engine.List(context.Background(), 7, ListOptions{
			Kind:   &kind,
			Read:   &unread,
			Limit:  10,
			Offset: 20,
		})
		require.NoError(t, err)
		records.AssertExpectations(t)
	})
}

func TestEngine_MarkRead(t *testing.T) {
	t.Parallel()

	t.Run("marks an unread record", func(t *testing.T) {
		t.Parallel()

		id := uuid.New()
		records := new(MockRecordStore)
		records.On("GetByID", mock.Anything, id).Return(&Notification{ID: id, RecipientID: 7, Status: StatusPending}, nil)
		records.On("UpdateByID", mock.Anything, id, mock.MatchedBy(func(p RecordPatch) bool {
			return p.Status != nil && *p.Status == StatusRead && p.ReadAt != nil
		})).Return(&Notification{ID: id, RecipientID: 7, Status: StatusRead}, nil)

		engine := newTestEngine(records, new(MockPreferenceStore))
		n, err := engine.MarkRead(context.Background(), id)
		require.NoError(t, err)
		assert.Equal(t, StatusRead, n.Status)
		records.AssertExpectations(t)
	})

	t.Run("already read is a no-op success", func(t *testing.T) {
		t.Parallel()

		id := uuid.New()
		readAt := time.Now().Add(-time.Hour)
		records := new(MockRecordStore)
		records.On("GetByID", mock.Anything, id).Return(&Notification{
			ID: id, RecipientID: 7, Status: StatusRead, ReadAt: &readAt,
		}, nil)

		engine := newTestEngine(records, new(MockPreferenceStore))
		n, err := engine.MarkRead(context.Background(), id)
		require.NoError(t, err)
		assert.Equal(t, &readAt, n.ReadAt)
		records.AssertNotCalled(t, "UpdateByID", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("missing record", func(t *testing.T) {
		t.Parallel()

		id := uuid.New()
		records := new(MockRecordStore)
		records.On("GetByID", mock.Anything, id).Return(nil, ErrNotFound)

		engine := newTestEngine(records, new(MockPreferenceStore))
		_, err := engine.MarkRead(context.Background(), id)
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestEngine_MarkAllRead(t *testing.T) {
	t.Parallel()

	// markAllRead must be one bulk store update, never a read-then-write loop.
	records := new(MockRecordStore)
	records.On("UpdateMany", mock.Anything, mock.MatchedBy(func(f Filter) bool {
		return f.RecipientID != nil && *f.RecipientID == 7 &&
			f.StatusNot != nil && *f.StatusNot == StatusRead
	}), mock.MatchedBy(func(p RecordPatch) bool {
		return p.Status != nil && *p.Status == StatusRead && p.ReadAt != nil
	})).Return(int64(3), nil)

	engine := newTestEngine(records, new(MockPreferenceStore))
	count, err := engine.MarkAllRead(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, int64(3), count)
	records.AssertNumberOfCalls(t, "UpdateMany", 1)
	records.AssertNotCalled(t, "FindMany", mock.Anything, mock.Anything)
	records.AssertNotCalled(t, "UpdateByID", mock.Anything, mock.Anything, mock.Anything)
}

func TestEngine_UnreadCount(t *testing.T) {
	t.Parallel()

	records := new(MockRecordStore)
	records.On("Count", mock.Anything, mock.MatchedBy(func(f Filter) bool {
		// Unread is defined by read-timestamp absence, same as List's filter.
		return f.RecipientID != nil && *f.RecipientID == 7 &&
			f.Read != nil && !*f.Read && f.Status == nil
	})).Return(5, nil)

	engine := newTestEngine(records, new(MockPreferenceStore))
	count, err := engine.UnreadCount(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, 5, count)
	records.AssertExpectations(t)
}

func TestEngine_Delete(t *testing.T) {
	t.Parallel()

	t.Run("deletes", func(t *testing.T) {
		t.Parallel()

		id := uuid.New()
		records := new(MockRecordStore)
		records.On("DeleteByID", mock.Anything, id).Return(nil)

		engine := newTestEngine(records, new(MockPreferenceStore))
		require.NoError(t, engine.Delete(context.Background(), id))
	})

	t.Run("missing record", func(t *testing.T) {
		t.Parallel()

		id := uuid.New()
		records := new(MockRecordStore)
		records.On("DeleteByID", mock.Anything, id).Return(ErrNotFound)

		engine := newTestEngine(records, new(MockPreferenceStore))
		assert.ErrorIs(t, engine.Delete(context.Background(), id), ErrNotFound)
	})
}
