package notifications

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// MongoStorage implements RecordStore and PreferenceStore on MongoDB for
// deployments that keep the listing data there instead of Postgres. Records
// live in the "notifications" collection, preferences in
// "notification_preferences" keyed by recipient id.
type MongoStorage struct {
	records *mongo.Collection
	prefs   *mongo.Collection
}

// NewMongoStorage creates a Mongo-backed storage over an existing database
// handle.
func NewMongoStorage(db *mongo.Database) *MongoStorage {
	return &MongoStorage{
		records: db.Collection("notifications"),
		prefs:   db.Collection("notification_preferences"),
	}
}

// notificationDoc is the BSON shape of a notification record. The uuid is
// stored as its string form in _id.
type notificationDoc struct {
	ID          string         `bson:"_id"`
	RecipientID int64          `bson:"recipient_id"`
	Kind        Kind           `bson:"kind"`
	Title       string         `bson:"title"`
	Message     string         `bson:"message"`
	Priority    Priority       `bson:"priority"`
	Status      Status         `bson:"status"`
	Payload     map[string]any `bson:"payload,omitempty"`
	ReadAt      *time.Time     `bson:"read_at,omitempty"`
	SentAt      *time.Time     `bson:"sent_at,omitempty"`
	CreatedAt   time.Time      `bson:"created_at"`
	UpdatedAt   time.Time      `bson:"updated_at"`
}

func toNotificationDoc(n Notification) notificationDoc {
	return notificationDoc{
		ID:          n.ID.String(),
		RecipientID: n.RecipientID,
		Kind:        n.Kind,
		Title:       n.Title,
		Message:     n.Message,
		Priority:    n.Priority,
		Status:      n.Status,
		Payload:     n.Payload,
		ReadAt:      n.ReadAt,
		SentAt:      n.SentAt,
		CreatedAt:   n.CreatedAt,
		UpdatedAt:   n.UpdatedAt,
	}
}

func (d notificationDoc) toNotification() (Notification, error) {
	id, err := uuid.Parse(d.ID)
	if err != nil {
		return Notification{}, err
	}
	return Notification{
		ID:          id,
		RecipientID: d.RecipientID,
		Kind:        d.Kind,
		Title:       d.Title,
		Message:     d.Message,
		Priority:    d.Priority,
		Status:      d.Status,
		Payload:     d.Payload,
		ReadAt:      d.ReadAt,
		SentAt:      d.SentAt,
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}, nil
}

func (s *MongoStorage) Create(ctx context.Context, n Notification) error {
	if n.RecipientID == 0 {
		return ErrMissingRecipient
	}
	if _, err := s.records.InsertOne(ctx, toNotificationDoc(n)); err != nil {
		return errors.Join(ErrStoreUnavailable, err)
	}
	return nil
}

func (s *MongoStorage) GetByID(ctx context.Context, id uuid.UUID) (*Notification, error) {
	var doc notificationDoc
	err := s.records.FindOne(ctx, bson.M{"_id": id.String()}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, errors.Join(ErrStoreUnavailable, err)
	}
	n, err := doc.toNotification()
	if err != nil {
		return nil, errors.Join(ErrStoreUnavailable, err)
	}
	return &n, nil
}

func (s *MongoStorage) FindMany(ctx context.Context, f Filter) ([]Notification, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}, {Key: "_id", Value: -1}})
	if f.Limit > 0 {
		opts.SetLimit(int64(f.Limit))
	}
	if f.Offset > 0 {
		opts.SetSkip(int64(f.Offset))
	}

	cursor, err := s.records.Find(ctx, mongoRecordFilter(f), opts)
	if err != nil {
		return nil, errors.Join(ErrStoreUnavailable, err)
	}
	defer cursor.Close(ctx)

	records := make([]Notification, 0)
	for cursor.Next(ctx) {
		var doc notificationDoc
		if err := cursor.Decode(&doc); err != nil {
			return nil, errors.Join(ErrStoreUnavailable, err)
		}
		n, err := doc.toNotification()
		if err != nil {
			return nil, errors.Join(ErrStoreUnavailable, err)
		}
		records = append(records, n)
	}
	if err := cursor.Err(); err != nil {
		return nil, errors.Join(ErrStoreUnavailable, err)
	}
	return records, nil
}

func (s *MongoStorage) Count(ctx context.Context, f Filter) (int, error) {
	count, err := s.records.CountDocuments(ctx, mongoRecordFilter(f))
	if err != nil {
		return 0, errors.Join(ErrStoreUnavailable, err)
	}
	return int(count), nil
}

func (s *MongoStorage) UpdateByID(ctx context.Context, id uuid.UUID, patch RecordPatch) (*Notification, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var doc notificationDoc
	err := s.records.FindOneAndUpdate(ctx,
		bson.M{"_id": id.String()},
		bson.M{"$set": mongoRecordSet(patch)},
		opts,
	).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, errors.Join(ErrStoreUnavailable, err)
	}

	n, err := doc.toNotification()
	if err != nil {
		return nil, errors.Join(ErrStoreUnavailable, err)
	}
	return &n, nil
}

func (s *MongoStorage) UpdateMany(ctx context.Context, f Filter, patch RecordPatch) (int64, error) {
	res, err := s.records.UpdateMany(ctx, mongoRecordFilter(f), bson.M{"$set": mongoRecordSet(patch)})
	if err != nil {
		return 0, errors.Join(ErrStoreUnavailable, err)
	}
	return res.ModifiedCount, nil
}

func (s *MongoStorage) DeleteByID(ctx context.Context, id uuid.UUID) error {
	res, err := s.records.DeleteOne(ctx, bson.M{"_id": id.String()})
	if err != nil {
		return errors.Join(ErrStoreUnavailable, err)
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// preferenceDoc is the BSON shape of a recipient preference row.
type preferenceDoc struct {
	RecipientID int64 `bson:"_id"`

	EmailEnabled bool `bson:"email_enabled"`
	PushEnabled  bool `bson:"push_enabled"`
	SMSEnabled   bool `bson:"sms_enabled"`
	InAppEnabled bool `bson:"in_app_enabled"`

	PlanningEnabled     bool `bson:"planning_enabled"`
	BookingEnabled      bool `bson:"booking_enabled"`
	SocialEnabled       bool `bson:"social_enabled"`
	PerformanceEnabled  bool `bson:"performance_enabled"`
	SystemEnabled       bool `bson:"system_enabled"`
	CommercialEnabled   bool `bson:"commercial_enabled"`
	PersonalizedEnabled bool `bson:"personalized_enabled"`
	UrgentEnabled       bool `bson:"urgent_enabled"`

	CreatedAt time.Time `bson:"created_at"`
	UpdatedAt time.Time `bson:"updated_at"`
}

func (d preferenceDoc) toPreference() Preference {
	return Preference{
		RecipientID:         d.RecipientID,
		EmailEnabled:        d.EmailEnabled,
		PushEnabled:         d.PushEnabled,
		SMSEnabled:          d.SMSEnabled,
		InAppEnabled:        d.InAppEnabled,
		PlanningEnabled:     d.PlanningEnabled,
		BookingEnabled:      d.BookingEnabled,
		SocialEnabled:       d.SocialEnabled,
		PerformanceEnabled:  d.PerformanceEnabled,
		SystemEnabled:       d.SystemEnabled,
		CommercialEnabled:   d.CommercialEnabled,
		PersonalizedEnabled: d.PersonalizedEnabled,
		UrgentEnabled:       d.UrgentEnabled,
		CreatedAt:           d.CreatedAt,
		UpdatedAt:           d.UpdatedAt,
	}
}

func (s *MongoStorage) GetByRecipient(ctx context.Context, recipientID int64) (*Preference, error) {
	var doc preferenceDoc
	err := s.prefs.FindOne(ctx, bson.M{"_id": recipientID}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, errors.Join(ErrStoreUnavailable, err)
	}
	p := doc.toPreference()
	return &p, nil
}

func (s *MongoStorage) Upsert(ctx context.Context, recipientID int64, patch PreferencePatch) (*Preference, error) {
	now := time.Now()

	set := mongoPreferenceSet(patch)
	set["updated_at"] = now

	// Defaults only apply on insert; $set wins over $setOnInsert for keys
	// present in both, so they are kept disjoint here.
	defaults := DefaultPreference(recipientID)
	onInsert := bson.M{
		"created_at": now,
	}
	addDefault := func(key string, value bool) {
		if _, patched := set[key]; !patched {
			onInsert[key] = value
		}
	}
	addDefault("email_enabled", defaults.EmailEnabled)
	addDefault("push_enabled", defaults.PushEnabled)
	addDefault("sms_enabled", defaults.SMSEnabled)
	addDefault("in_app_enabled", defaults.InAppEnabled)
	addDefault("planning_enabled", defaults.PlanningEnabled)
	addDefault("booking_enabled", defaults.BookingEnabled)
	addDefault("social_enabled", defaults.SocialEnabled)
	addDefault("performance_enabled", defaults.PerformanceEnabled)
	addDefault("system_enabled", defaults.SystemEnabled)
	addDefault("commercial_enabled", defaults.CommercialEnabled)
	addDefault("personalized_enabled", defaults.PersonalizedEnabled)
	addDefault("urgent_enabled", defaults.UrgentEnabled)

	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var doc preferenceDoc
	err := s.prefs.FindOneAndUpdate(ctx,
		bson.M{"_id": recipientID},
		bson.M{"$set": set, "$setOnInsert": onInsert},
		opts,
	).Decode(&doc)
	if err != nil {
		return nil, errors.Join(ErrStoreUnavailable, err)
	}

	p := doc.toPreference()
	return &p, nil
}

func mongoRecordFilter(f Filter) bson.M {
	filter := bson.M{}
	if f.RecipientID != nil {
		filter["recipient_id"] = *f.RecipientID
	}
	if f.Kind != nil {
		filter["kind"] = *f.Kind
	}
	if f.Priority != nil {
		filter["priority"] = *f.Priority
	}
	if f.Status != nil {
		filter["status"] = *f.Status
	}
	if f.StatusNot != nil {
		filter["status"] = bson.M{"$ne": *f.StatusNot}
	}
	if f.Read != nil {
		if *f.Read {
			filter["read_at"] = bson.M{"$ne": nil}
		} else {
			filter["read_at"] = nil
		}
	}
	if f.Leftover {
		pattern := placeholderPattern.String()
		filter["$or"] = bson.A{
			bson.M{"title": bson.M{"$regex": pattern}},
			bson.M{"message": bson.M{"$regex": pattern}},
		}
	}
	return filter
}

func mongoRecordSet(patch RecordPatch) bson.M {
	set := bson.M{"updated_at": time.Now()}
	if patch.Title != nil {
		set["title"] = *patch.Title
	}
	if patch.Message != nil {
		set["message"] = *patch.Message
	}
	if patch.Status != nil {
		set["status"] = *patch.Status
	}
	if patch.ReadAt != nil {
		set["read_at"] = *patch.ReadAt
	}
	if patch.SentAt != nil {
		set["sent_at"] = *patch.SentAt
	}
	return set
}

func mongoPreferenceSet(patch PreferencePatch) bson.M {
	set := bson.M{}
	add := func(key string, value *bool) {
		if value != nil {
			set[key] = *value
		}
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
	return set
}

// Interface guards.
var (
	_ RecordStore     = (*MongoStorage)(nil)
	_ PreferenceStore = (*MongoStorage)(nil)
)
