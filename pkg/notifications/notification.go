package notifications

import (
	"time"

	"github.com/google/uuid"
)

// Notification is the persisted record of a single notification addressed to
// one recipient. Title and message are stored fully rendered; Payload keeps
// the substitution context so the repair sweep can re-render later.
type Notification struct {
	ID          uuid.UUID      `json:"id"`
	RecipientID int64          `json:"recipient_id"`
	Kind        Kind           `json:"kind"`
	Title       string         `json:"title"`
	Message     string         `json:"message"`
	Priority    Priority       `json:"priority"`
	Status      Status         `json:"status"`
	Payload     map[string]any `json:"payload,omitempty"`
	ReadAt      *time.Time     `json:"read_at,omitempty"`
	SentAt      *time.Time     `json:"sent_at,omitempty"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
}

// IsRead reports whether the record was read. Read state is derived from the
// read timestamp, not from Status, so records whose status was never advanced
// still count correctly.
func (n *Notification) IsRead() bool {
	return n.ReadAt != nil
}

// Preference holds one recipient's delivery opt-ins: one toggle per channel
// and one per category. Everything defaults to enabled; a record is only
// created once the recipient changes something.
type Preference struct {
	RecipientID int64 `json:"recipient_id"`

	EmailEnabled bool `json:"email_enabled"`
	PushEnabled  bool `json:"push_enabled"`
	SMSEnabled   bool `json:"sms_enabled"`
	InAppEnabled bool `json:"in_app_enabled"`

	PlanningEnabled     bool `json:"planning_enabled"`
	BookingEnabled      bool `json:"booking_enabled"`
	SocialEnabled       bool `json:"social_enabled"`
	PerformanceEnabled  bool `json:"performance_enabled"`
	SystemEnabled       bool `json:"system_enabled"`
	CommercialEnabled   bool `json:"commercial_enabled"`
	PersonalizedEnabled bool `json:"personalized_enabled"`
	UrgentEnabled       bool `json:"urgent_enabled"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// DefaultPreference returns the permissive preference set used for recipients
// who never touched their settings. Absence of preferences must never
// suppress a notification.
func DefaultPreference(recipientID int64) Preference {
	return Preference{
		RecipientID:         recipientID,
		EmailEnabled:        true,
		PushEnabled:         true,
		SMSEnabled:          true,
		InAppEnabled:        true,
		PlanningEnabled:     true,
		BookingEnabled:      true,
		SocialEnabled:       true,
		PerformanceEnabled:  true,
		SystemEnabled:       true,
		CommercialEnabled:   true,
		PersonalizedEnabled: true,
		UrgentEnabled:       true,
	}
}

// CategoryEnabled returns the toggle value for the given category. Unknown
// categories are allowed through so a catalog extension cannot silently mute
// notifications for recipients with existing preference rows.
func (p *Preference) CategoryEnabled(c Category) bool {
	switch c {
	case CategoryPlanning:
		return p.PlanningEnabled
	case CategoryBooking:
		return p.BookingEnabled
	case CategorySocial:
		return p.SocialEnabled
	case CategoryPerformance:
		return p.PerformanceEnabled
	case CategorySystem:
		return p.SystemEnabled
	case CategoryCommercial:
		return p.CommercialEnabled
	case CategoryPersonalized:
		return p.PersonalizedEnabled
	case CategoryUrgent:
		return p.UrgentEnabled
	default:
		return true
	}
}

// PreferencePatch is a partial preference update. Nil fields are left
// untouched by Upsert.
type PreferencePatch struct {
	EmailEnabled *bool `json:"email_enabled,omitempty"`
	PushEnabled  *bool `json:"push_enabled,omitempty"`
	SMSEnabled   *bool `json:"sms_enabled,omitempty"`
	InAppEnabled *bool `json:"in_app_enabled,omitempty"`

	PlanningEnabled     *bool `json:"planning_enabled,omitempty"`
	BookingEnabled      *bool `json:"booking_enabled,omitempty"`
	SocialEnabled       *bool `json:"social_enabled,omitempty"`
	PerformanceEnabled  *bool `json:"performance_enabled,omitempty"`
	SystemEnabled       *bool `json:"system_enabled,omitempty"`
	CommercialEnabled   *bool `json:"commercial_enabled,omitempty"`
	PersonalizedEnabled *bool `json:"personalized_enabled,omitempty"`
	UrgentEnabled       *bool `json:"urgent_enabled,omitempty"`
}

// Apply writes the non-nil fields of the patch onto p.
func (patch PreferencePatch) Apply(p *Preference) {
	set := func(dst *bool, src *bool) {
		if src != nil {
			*dst = *src
		}
	}
	set(&p.EmailEnabled, patch.EmailEnabled)
	set(&p.PushEnabled, patch.PushEnabled)
	set(&p.SMSEnabled, patch.SMSEnabled)
	set(&p.InAppEnabled, patch.InAppEnabled)
	set(&p.PlanningEnabled, patch.PlanningEnabled)
	set(&p.BookingEnabled, patch.BookingEnabled)
	set(&p.SocialEnabled, patch.SocialEnabled)
	set(&p.PerformanceEnabled, patch.PerformanceEnabled)
	set(&p.SystemEnabled, patch.SystemEnabled)
	set(&p.CommercialEnabled, patch.CommercialEnabled)
	set(&p.PersonalizedEnabled, patch.PersonalizedEnabled)
	set(&p.UrgentEnabled, patch.UrgentEnabled)
}
