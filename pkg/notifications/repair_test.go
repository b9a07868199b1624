package notifications

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedLegacy(t *testing.T, s *MemoryStorage, kind Kind, title, message string, payload map[string]any) uuid.UUID {
	t.Helper()

	n := Notification{
		ID:          uuid.New(),
		RecipientID: 7,
		Kind:        kind,
		Title:       title,
		Message:     message,
		Priority:    PriorityMedium,
		Status:      StatusPending,
		Payload:     payload,
		CreatedAt:   time.Now(),
	}
	require.NoError(t, s.Create(context.Background(), n))
	return n.ID
}

func TestEngine_RepairLegacyRecords(t *testing.T) {
	t.Parallel()

	t.Run("snake_case payload keys", func(t *testing.T) {
		t.Parallel()

		ctx := context.Background()
		s := NewMemoryStorage()
		id := seedLegacy(t, s, KindEventReminder,
			"Rappel d'événement",
			"Votre événement {event_title} commence dans {time_remaining}",
			map[string]any{"event_title": "Jazz Night", "time_remaining": "2h"})

		engine := newTestEngine(s, s)
		repaired, err := engine.RepairLegacyRecords(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, repaired)

		got, err := s.GetByID(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, "Votre événement Jazz Night commence dans 2h", got.Message)
	})

	t.Run("camelCase payload keys resolve via aliases", func(t *testing.T) {
		t.Parallel()

		ctx := context.Background()
		s := NewMemoryStorage()
		id := seedLegacy(t, s, KindEventCreated,
			"Événement créé",
			"Votre événement {event_title} a été créé avec succès",
			map[string]any{"eventTitle": "X"})

		engine := newTestEngine(s, s)
		repaired, err := engine.RepairLegacyRecords(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, repaired)

		got, err := s.GetByID(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, "Votre événement X a été créé avec succès", got.Message)
	})

	t.Run("snake_case wins over camelCase", func(t *testing.T) {
		t.Parallel()

		ctx := context.Background()
		s := NewMemoryStorage()
		id := seedLegacy(t, s, KindEventCreated,
			"Événement créé",
			"Votre événement {event_title} a été créé avec succès",
			map[string]any{"event_title": "snake", "eventTitle": "camel"})

		engine := newTestEngine(s, s)
		_, err := engine.RepairLegacyRecords(ctx)
		require.NoError(t, err)

		got, err := s.GetByID(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, "Votre événement snake a été créé avec succès", got.Message)
	})

	t.Run("second run is a no-op", func(t *testing.T) {
		t.Parallel()

		ctx := context.Background()
		s := NewMemoryStorage()
		// Payload only covers one of the two variables, so a placeholder
		// survives the first pass and the record keeps matching the sweep.
		id := seedLegacy(t, s, KindEventReminder,
			"Rappel d'événement",
			"Votre événement {event_title} commence dans {time_remaining}",
			map[string]any{"eventTitle": "Jazz Night"})

		engine := newTestEngine(s, s)
		repaired, err := engine.RepairLegacyRecords(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, repaired)

		first, err := s.GetByID(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, "Votre événement Jazz Night commence dans {time_remaining}", first.Message)

		repaired, err = engine.RepairLegacyRecords(ctx)
		require.NoError(t, err)
		assert.Equal(t, 0, repaired)

		second, err := s.GetByID(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, first.Title, second.Title)
		assert.Equal(t, first.Message, second.Message)
	})

	t.Run("unknown kind left unchanged", func(t *testing.T) {
		t.Parallel()

		ctx := context.Background()
		s := NewMemoryStorage()
		id := seedLegacy(t, s, Kind("retired_kind"),
			"Titre {event_title}",
			"Message {event_title}",
			map[string]any{"event_title": "X"})

		engine := newTestEngine(s, s)
		repaired, err := engine.RepairLegacyRecords(ctx)
		require.NoError(t, err)
		assert.Equal(t, 0, repaired)

		got, err := s.GetByID(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, "Titre {event_title}", got.Title)
	})

	t.Run("payload without matching keys left unchanged", func(t *testing.T) {
		t.Parallel()

		ctx := context.Background()
		s := NewMemoryStorage()
		id := seedLegacy(t, s, KindEventReminder,
			"Rappel d'événement",
			"Votre événement {event_title} commence dans {time_remaining}",
			map[string]any{"unrelated": "value"})

		engine := newTestEngine(s, s)
		repaired, err := engine.RepairLegacyRecords(ctx)
		require.NoError(t, err)
		assert.Equal(t, 0, repaired)

		got, err := s.GetByID(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, "Votre événement {event_title} commence dans {time_remaining}", got.Message)
	})

	t.Run("healthy records not scanned into updates", func(t *testing.T) {
		t.Parallel()

		ctx := context.Background()
		s := NewMemoryStorage()
		seedLegacy(t, s, KindEventReminder,
			"Rappel d'événement",
			"Votre événement Jazz Night commence dans 2h",
			map[string]any{"event_title": "Jazz Night", "time_remaining": "2h"})

		engine := newTestEngine(s, s)
		repaired, err := engine.RepairLegacyRecords(ctx)
		require.NoError(t, err)
		assert.Equal(t, 0, repaired)
	})
}

func TestAliasesFor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want []string
	}{
		{
			name: "multi-word variable has both spellings",
			in:   "event_title",
			want: []string{"event_title", "eventTitle"},
		},
		{
			name: "single-word variable has one spelling",
			in:   "amount",
			want: []string{"amount"},
		},
		{
			name: "unknown variable falls back to itself",
			in:   "mystery_key",
			want: []string{"mystery_key"},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, aliasesFor(tt.in))
		})
	}
}

func TestResolvePayloadVars(t *testing.T) {
	t.Parallel()

	t.Run("first matching alias wins", func(t *testing.T) {
		t.Parallel()

		vars := resolvePayloadVars([]string{"event_title"}, map[string]any{
			"event_title": "snake",
			"eventTitle":  "camel",
		})
		assert.Equal(t, map[string]any{"event_title": "snake"}, vars)
	})

	t.Run("nil when nothing matches", func(t *testing.T) {
		t.Parallel()

		assert.Nil(t, resolvePayloadVars([]string{"event_title"}, map[string]any{"x": 1}))
		assert.Nil(t, resolvePayloadVars(nil, map[string]any{"x": 1}))
		assert.Nil(t, resolvePayloadVars([]string{"event_title"}, nil))
	})
}
