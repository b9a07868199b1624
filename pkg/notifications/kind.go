package notifications

// Kind identifies what a notification is about. The set is closed: every kind
// declared here has exactly one entry in the template catalog, enforced at
// package init.
type Kind string

// Category groups kinds for preference gating. Each recipient carries one
// boolean toggle per category.
type Category string

const (
	CategoryPlanning     Category = "planning"
	CategoryBooking      Category = "booking"
	CategorySocial       Category = "social"
	CategoryPerformance  Category = "performance"
	CategorySystem       Category = "system"
	CategoryCommercial   Category = "commercial"
	CategoryPersonalized Category = "personalized"
	CategoryUrgent       Category = "urgent"
)

// Priority represents the notification priority level.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
	PriorityUrgent Priority = "urgent"
)

// Status represents the delivery lifecycle state of a notification record.
// The core only ever moves records from pending straight to read; sent and
// failed belong to the delivery layer and are preserved for its use.
type Status string

const (
	StatusPending Status = "pending"
	StatusSent    Status = "sent"
	StatusRead    Status = "read"
	StatusFailed  Status = "failed"
)

const (
	// Planning
	KindEventReminder     Kind = "event_reminder"
	KindEventCreated      Kind = "event_created"
	KindEventUpdated      Kind = "event_updated"
	KindEventPublished    Kind = "event_published"
	KindEventStartingSoon Kind = "event_starting_soon"
	KindEventEnded        Kind = "event_ended"
	KindDraftReminder     Kind = "draft_reminder"
	KindScheduleConflict  Kind = "schedule_conflict"

	// Booking
	KindBookingConfirmed  Kind = "booking_confirmed"
	KindBookingPending    Kind = "booking_pending"
	KindBookingCancelled  Kind = "booking_cancelled"
	KindNewAttendee       Kind = "new_attendee"
	KindAttendeeCancelled Kind = "attendee_cancelled"
	KindWaitlistJoined    Kind = "waitlist_joined"
	KindWaitlistPromoted  Kind = "waitlist_promoted"
	KindEventFull         Kind = "event_full"

	// Social
	KindNewComment     Kind = "new_comment"
	KindCommentReply   Kind = "comment_reply"
	KindNewFollower    Kind = "new_follower"
	KindFriendAttending Kind = "friend_attending"
	KindEventShared    Kind = "event_shared"
	KindMention        Kind = "mention"
	KindNewReview      Kind = "new_review"
	KindReviewReply    Kind = "review_reply"

	// Performance
	KindAttendanceMilestone Kind = "attendance_milestone"
	KindViewsMilestone      Kind = "views_milestone"
	KindTrendingEvent       Kind = "trending_event"
	KindWeeklyStats         Kind = "weekly_stats"
	KindMonthlyReport       Kind = "monthly_report"
	KindSelloutAlert        Kind = "sellout_alert"
	KindFirstBooking        Kind = "first_booking"

	// System
	KindWelcome           Kind = "welcome"
	KindAccountVerified   Kind = "account_verified"
	KindPasswordChanged   Kind = "password_changed"
	KindEmailChanged      Kind = "email_changed"
	KindProfileIncomplete Kind = "profile_incomplete"
	KindMaintenanceNotice Kind = "maintenance_notice"
	KindTermsUpdated      Kind = "terms_updated"
	KindNewLogin          Kind = "new_login"

	// Commercial
	KindPaymentReceived  Kind = "payment_received"
	KindPaymentFailed    Kind = "payment_failed"
	KindRefundIssued     Kind = "refund_issued"
	KindInvoiceAvailable Kind = "invoice_available"
	KindPromoCode        Kind = "promo_code"
	KindEarlyBirdEnding  Kind = "early_bird_ending"
	KindPriceDrop        Kind = "price_drop"
	KindPayoutSent       Kind = "payout_sent"

	// Personalized
	KindRecommendedEvent  Kind = "recommended_event"
	KindSimilarEvent      Kind = "similar_event"
	KindNearbyEvent       Kind = "nearby_event"
	KindFavoriteOrganizer Kind = "favorite_organizer"
	KindCategoryDigest    Kind = "category_digest"
	KindWeekendPicks      Kind = "weekend_picks"
	KindBackInTown        Kind = "back_in_town"

	// Urgent
	KindEventCancelled   Kind = "event_cancelled"
	KindEventPostponed   Kind = "event_postponed"
	KindVenueChanged     Kind = "venue_changed"
	KindLastMinuteChange Kind = "last_minute_change"
	KindSecurityAlert    Kind = "security_alert"
	KindTicketIssue      Kind = "ticket_issue"
)

// AllKinds lists every declared kind. The catalog completeness check at
// package init iterates this slice, so a kind added here without a template
// fails at process start instead of at call time.
var AllKinds = []Kind{
	KindEventReminder, KindEventCreated, KindEventUpdated, KindEventPublished,
	KindEventStartingSoon, KindEventEnded, KindDraftReminder, KindScheduleConflict,

	KindBookingConfirmed, KindBookingPending, KindBookingCancelled, KindNewAttendee,
	KindAttendeeCancelled, KindWaitlistJoined, KindWaitlistPromoted, KindEventFull,

	KindNewComment, KindCommentReply, KindNewFollower, KindFriendAttending,
	KindEventShared, KindMention, KindNewReview, KindReviewReply,

	KindAttendanceMilestone, KindViewsMilestone, KindTrendingEvent, KindWeeklyStats,
	KindMonthlyReport, KindSelloutAlert, KindFirstBooking,

	KindWelcome, KindAccountVerified, KindPasswordChanged, KindEmailChanged,
	KindProfileIncomplete, KindMaintenanceNotice, KindTermsUpdated, KindNewLogin,

	KindPaymentReceived, KindPaymentFailed, KindRefundIssued, KindInvoiceAvailable,
	KindPromoCode, KindEarlyBirdEnding, KindPriceDrop, KindPayoutSent,

	KindRecommendedEvent, KindSimilarEvent, KindNearbyEvent, KindFavoriteOrganizer,
	KindCategoryDigest, KindWeekendPicks, KindBackInTown,

	KindEventCancelled, KindEventPostponed, KindVenueChanged, KindLastMinuteChange,
	KindSecurityAlert, KindTicketIssue,
}

// AllCategories lists every preference category.
var AllCategories = []Category{
	CategoryPlanning, CategoryBooking, CategorySocial, CategoryPerformance,
	CategorySystem, CategoryCommercial, CategoryPersonalized, CategoryUrgent,
}
