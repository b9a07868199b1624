package notifications

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockRecordStore for testing the Engine against the RecordStore contract.
type MockRecordStore struct {
	mock.Mock
}

func (m *MockRecordStore) Create(ctx context.Context, n Notification) error {
	args := m.Called(ctx, n)
	return args.Error(0)
}

func (m *MockRecordStore) GetByID(ctx context.Context, id uuid.UUID) (*Notification, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Notification), args.Error(1)
}

func (m *MockRecordStore) FindMany(ctx context.Context, f Filter) ([]Notification, error) {
	args := m.Called(ctx, f)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Notification), args.Error(1)
}

func (m *MockRecordStore) Count(ctx context.Context, f Filter) (int, error) {
	args := m.Called(ctx, f)
	return args.Int(0), args.Error(1)
}

func (m *MockRecordStore) UpdateByID(ctx context.Context, id uuid.UUID, patch RecordPatch) (*Notification, error) {
	args := m.Called(ctx, id, patch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Notification), args.Error(1)
}

func (m *MockRecordStore) UpdateMany(ctx context.Context, f Filter, patch RecordPatch) (int64, error) {
	args := m.Called(ctx, f, patch)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockRecordStore) DeleteByID(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockPreferenceStore for testing the Gate and Engine against the
// PreferenceStore contract.
type MockPreferenceStore struct {
	mock.Mock
}

func (m *MockPreferenceStore) GetByRecipient(ctx context.Context, recipientID int64) (*Preference, error) {
	args := m.Called(ctx, recipientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Preference), args.Error(1)
}

func (m *MockPreferenceStore) Upsert(ctx context.Context, recipientID int64, patch PreferencePatch) (*Preference, error) {
	args := m.Called(ctx, recipientID, patch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Preference), args.Error(1)
}

// Interface guards.
var (
	_ RecordStore     = (*MockRecordStore)(nil)
	_ PreferenceStore = (*MockPreferenceStore)(nil)
)
