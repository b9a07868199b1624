package notifications

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestGate_ShouldSend(t *testing.T) {
	t.Parallel()

	planningOff := DefaultPreference(7)
	planningOff.PlanningEnabled = false

	tests := []struct {
		name        string
		recipientID int64
		kind        Kind
		setupMock   func(*MockPreferenceStore)
		want        bool
		wantErr     bool
	}{
		{
			name:        "no preference record defaults to allow",
			recipientID: 7,
			kind:        KindEventReminder,
			setupMock: func(ms *MockPreferenceStore) {
				ms.On("GetByRecipient", mock.Anything, int64(7)).Return(nil, ErrNotFound)
			},
			want: true,
		},
		{
			name:        "disabled category suppresses",
			recipientID: 7,
			kind:        KindEventReminder,
			setupMock: func(ms *MockPreferenceStore) {
				pref := planningOff
				ms.On("GetByRecipient", mock.Anything, int64(7)).Return(&pref, nil)
			},
			want: false,
		},
		{
			name:        "other categories unaffected",
			recipientID: 7,
			kind:        KindNewComment,
			setupMock: func(ms *MockPreferenceStore) {
				pref := planningOff
				ms.On("GetByRecipient", mock.Anything, int64(7)).Return(&pref, nil)
			},
			want: true,
		},
		{
			name:        "enabled category allows",
			recipientID: 7,
			kind:        KindBookingConfirmed,
			setupMock: func(ms *MockPreferenceStore) {
				pref := DefaultPreference(7)
				ms.On("GetByRecipient", mock.Anything, int64(7)).Return(&pref, nil)
			},
			want: true,
		},
		{
			name:        "unknown kind cannot be authorized",
			recipientID: 7,
			kind:        Kind("not_a_kind"),
			setupMock: func(ms *MockPreferenceStore) {
				pref := DefaultPreference(7)
				ms.On("GetByRecipient", mock.Anything, int64(7)).Return(&pref, nil)
			},
			want: false,
		},
		{
			name:        "store failure propagates",
			recipientID: 7,
			kind:        KindEventReminder,
			setupMock: func(ms *MockPreferenceStore) {
				ms.On("GetByRecipient", mock.Anything, int64(7)).Return(nil, errors.New("connection refused"))
			},
			want:    false,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			prefs := new(MockPreferenceStore)
			tt.setupMock(prefs)

			gate := NewGate(prefs)
			got, err := gate.ShouldSend(context.Background(), tt.recipientID, tt.kind)

			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, tt.want, got)
			prefs.AssertExpectations(t)
		})
	}
}

func TestGate_ShouldSendDefaultAllowForEveryKind(t *testing.T) {
	t.Parallel()

	// A recipient with no preference record is allowed for any kind.
	prefs := new(MockPreferenceStore)
	prefs.On("GetByRecipient", mock.Anything, int64(42)).Return(nil, ErrNotFound)

	gate := NewGate(prefs)
	for _, kind := range AllKinds {
		ok, err := gate.ShouldSend(context.Background(), 42, kind)
		require.NoError(t, err)
		assert.True(t, ok, "kind %q should default to allow", kind)
	}
}
