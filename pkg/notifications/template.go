package notifications

import "fmt"

// Template binds a kind to its message patterns, default priority and
// preference category. Patterns use {name} placeholders resolved by Render.
type Template struct {
	Kind           Kind
	TitlePattern   string
	MessagePattern string
	Priority       Priority
	Category       Category
}

// templates is the static catalog. It is populated once at package init and
// never written afterwards; readers need no synchronization.
var templates = map[Kind]Template{
	// Planning
	KindEventReminder: {
		TitlePattern:   "Rappel d'événement",
		MessagePattern: "Votre événement {event_title} commence dans {time_remaining}",
		Priority:       PriorityHigh,
		Category:       CategoryPlanning,
	},
	KindEventCreated: {
		TitlePattern:   "Événement créé",
		MessagePattern: "Votre événement {event_title} a été créé avec succès",
		Priority:       PriorityMedium,
		Category:       CategoryPlanning,
	},
	KindEventUpdated: {
		TitlePattern:   "Événement modifié",
		MessagePattern: "L'événement {event_title} a été mis à jour",
		Priority:       PriorityMedium,
		Category:       CategoryPlanning,
	},
	KindEventPublished: {
		TitlePattern:   "Événement publié",
		MessagePattern: "Votre événement {event_title} est maintenant visible par tous",
		Priority:       PriorityMedium,
		Category:       CategoryPlanning,
	},
	KindEventStartingSoon: {
		TitlePattern:   "Ça commence bientôt",
		MessagePattern: "{event_title} commence à {start_time}",
		Priority:       PriorityHigh,
		Category:       CategoryPlanning,
	},
	KindEventEnded: {
		TitlePattern:   "Événement terminé",
		MessagePattern: "L'événement {event_title} est terminé. Merci de votre participation !",
		Priority:       PriorityLow,
		Category:       CategoryPlanning,
	},
	KindDraftReminder: {
		TitlePattern:   "Brouillon en attente",
		MessagePattern: "Votre brouillon {event_title} attend d'être publié",
		Priority:       PriorityLow,
		Category:       CategoryPlanning,
	},
	KindScheduleConflict: {
		TitlePattern:   "Conflit d'horaire",
		MessagePattern: "{event_title} chevauche un autre événement de votre agenda",
		Priority:       PriorityMedium,
		Category:       CategoryPlanning,
	},

	// Booking
	KindBookingConfirmed: {
		TitlePattern:   "Réservation confirmée",
		MessagePattern: "Votre place pour {event_title} est confirmée",
		Priority:       PriorityHigh,
		Category:       CategoryBooking,
	},
	KindBookingPending: {
		TitlePattern:   "Réservation en attente",
		MessagePattern: "Votre demande pour {event_title} est en cours de traitement",
		Priority:       PriorityMedium,
		Category:       CategoryBooking,
	},
	KindBookingCancelled: {
		TitlePattern:   "Réservation annulée",
		MessagePattern: "Votre réservation pour {event_title} a été annulée",
		Priority:       PriorityMedium,
		Category:       CategoryBooking,
	},
	KindNewAttendee: {
		TitlePattern:   "Nouveau participant",
		MessagePattern: "{user_name} participera à {event_title}",
		Priority:       PriorityMedium,
		Category:       CategoryBooking,
	},
	KindAttendeeCancelled: {
		TitlePattern:   "Participant désisté",
		MessagePattern: "{user_name} ne participera plus à {event_title}",
		Priority:       PriorityLow,
		Category:       CategoryBooking,
	},
	KindWaitlistJoined: {
		TitlePattern:   "Liste d'attente",
		MessagePattern: "Vous êtes en position {position} sur la liste d'attente de {event_title}",
		Priority:       PriorityMedium,
		Category:       CategoryBooking,
	},
	KindWaitlistPromoted: {
		TitlePattern:   "Place disponible",
		MessagePattern: "Une place s'est libérée pour {event_title}. Confirmez vite !",
		Priority:       PriorityHigh,
		Category:       CategoryBooking,
	},
	KindEventFull: {
		TitlePattern:   "Événement complet",
		MessagePattern: "{event_title} affiche complet ({capacity} places)",
		Priority:       PriorityMedium,
		Category:       CategoryBooking,
	},

	// Social
	KindNewComment: {
		TitlePattern:   "Nouveau commentaire",
		MessagePattern: "{user_name} a commenté votre événement {event_title}",
		Priority:       PriorityMedium,
		Category:       CategorySocial,
	},
	KindCommentReply: {
		TitlePattern:   "Réponse à votre commentaire",
		MessagePattern: "{user_name} a répondu à votre commentaire sur {event_title}",
		Priority:       PriorityMedium,
		Category:       CategorySocial,
	},
	KindNewFollower: {
		TitlePattern:   "Nouvel abonné",
		MessagePattern: "{user_name} suit désormais vos événements",
		Priority:       PriorityLow,
		Category:       CategorySocial,
	},
	KindFriendAttending: {
		TitlePattern:   "Un ami participe",
		MessagePattern: "{user_name} participe à {event_title}",
		Priority:       PriorityLow,
		Category:       CategorySocial,
	},
	KindEventShared: {
		TitlePattern:   "Événement partagé",
		MessagePattern: "{user_name} a partagé votre événement {event_title}",
		Priority:       PriorityLow,
		Category:       CategorySocial,
	},
	KindMention: {
		TitlePattern:   "Vous avez été mentionné",
		MessagePattern: "{user_name} vous a mentionné dans un commentaire sur {event_title}",
		Priority:       PriorityMedium,
		Category:       CategorySocial,
	},
	KindNewReview: {
		TitlePattern:   "Nouvel avis",
		MessagePattern: "{user_name} a laissé un avis {rating}/5 sur {event_title}",
		Priority:       PriorityMedium,
		Category:       CategorySocial,
	},
	KindReviewReply: {
		TitlePattern:   "Réponse à votre avis",
		MessagePattern: "L'organisateur de {event_title} a répondu à votre avis",
		Priority:       PriorityLow,
		Category:       CategorySocial,
	},

	// Performance
	KindAttendanceMilestone: {
		TitlePattern:   "Palier de participation",
		MessagePattern: "{event_title} vient de dépasser {attendee_count} participants",
		Priority:       PriorityMedium,
		Category:       CategoryPerformance,
	},
	KindViewsMilestone: {
		TitlePattern:   "Palier de vues",
		MessagePattern: "{event_title} a été consulté {view_count} fois",
		Priority:       PriorityLow,
		Category:       CategoryPerformance,
	},
	KindTrendingEvent: {
		TitlePattern:   "Événement en tendance",
		MessagePattern: "{event_title} fait partie des événements les plus populaires cette semaine",
		Priority:       PriorityMedium,
		Category:       CategoryPerformance,
	},
	KindWeeklyStats: {
		TitlePattern:   "Bilan hebdomadaire",
		MessagePattern: "Cette semaine : {view_count} vues et {booking_count} réservations sur vos événements",
		Priority:       PriorityLow,
		Category:       CategoryPerformance,
	},
	KindMonthlyReport: {
		TitlePattern:   "Rapport mensuel",
		MessagePattern: "Votre rapport d'activité de {month} est disponible",
		Priority:       PriorityLow,
		Category:       CategoryPerformance,
	},
	KindSelloutAlert: {
		TitlePattern:   "Presque complet",
		MessagePattern: "Plus que {spots_remaining} places pour {event_title}",
		Priority:       PriorityMedium,
		Category:       CategoryPerformance,
	},
	KindFirstBooking: {
		TitlePattern:   "Première réservation",
		MessagePattern: "Félicitations, {event_title} a reçu sa première réservation !",
		Priority:       PriorityMedium,
		Category:       CategoryPerformance,
	},

	// System
	KindWelcome: {
		TitlePattern:   "Bienvenue sur Edofi",
		MessagePattern: "Bonjour {user_name}, bienvenue ! Découvrez les événements près de chez vous",
		Priority:       PriorityMedium,
		Category:       CategorySystem,
	},
	KindAccountVerified: {
		TitlePattern:   "Compte vérifié",
		MessagePattern: "Votre adresse e-mail a été vérifiée avec succès",
		Priority:       PriorityLow,
		Category:       CategorySystem,
	},
	KindPasswordChanged: {
		TitlePattern:   "Mot de passe modifié",
		MessagePattern: "Votre mot de passe a été modifié le {changed_at}",
		Priority:       PriorityHigh,
		Category:       CategorySystem,
	},
	KindEmailChanged: {
		TitlePattern:   "Adresse e-mail modifiée",
		MessagePattern: "Votre adresse de contact est désormais {email}",
		Priority:       PriorityMedium,
		Category:       CategorySystem,
	},
	KindProfileIncomplete: {
		TitlePattern:   "Profil incomplet",
		MessagePattern: "Complétez votre profil pour profiter pleinement d'Edofi",
		Priority:       PriorityLow,
		Category:       CategorySystem,
	},
	KindMaintenanceNotice: {
		TitlePattern:   "Maintenance prévue",
		MessagePattern: "Edofi sera indisponible le {maintenance_date} de {start_time} à {end_time}",
		Priority:       PriorityMedium,
		Category:       CategorySystem,
	},
	KindTermsUpdated: {
		TitlePattern:   "Conditions mises à jour",
		MessagePattern: "Nos conditions d'utilisation évoluent à compter du {effective_date}",
		Priority:       PriorityLow,
		Category:       CategorySystem,
	},
	KindNewLogin: {
		TitlePattern:   "Nouvelle connexion",
		MessagePattern: "Connexion détectée depuis {device} à {login_time}",
		Priority:       PriorityMedium,
		Category:       CategorySystem,
	},

	// Commercial
	KindPaymentReceived: {
		TitlePattern:   "Paiement reçu",
		MessagePattern: "Votre paiement de {amount} pour {event_title} a bien été reçu",
		Priority:       PriorityHigh,
		Category:       CategoryCommercial,
	},
	KindPaymentFailed: {
		TitlePattern:   "Échec du paiement",
		MessagePattern: "Le paiement de {amount} pour {event_title} a échoué. Veuillez réessayer",
		Priority:       PriorityHigh,
		Category:       CategoryCommercial,
	},
	KindRefundIssued: {
		TitlePattern:   "Remboursement effectué",
		MessagePattern: "Un remboursement de {amount} pour {event_title} a été émis",
		Priority:       PriorityMedium,
		Category:       CategoryCommercial,
	},
	KindInvoiceAvailable: {
		TitlePattern:   "Facture disponible",
		MessagePattern: "Votre facture {invoice_number} est disponible au téléchargement",
		Priority:       PriorityLow,
		Category:       CategoryCommercial,
	},
	KindPromoCode: {
		TitlePattern:   "Code promo",
		MessagePattern: "Profitez de {discount} de réduction avec le code {promo_code}",
		Priority:       PriorityLow,
		Category:       CategoryCommercial,
	},
	KindEarlyBirdEnding: {
		TitlePattern:   "Tarif réduit bientôt terminé",
		MessagePattern: "Le tarif réduit pour {event_title} expire le {deadline}",
		Priority:       PriorityMedium,
		Category:       CategoryCommercial,
	},
	KindPriceDrop: {
		TitlePattern:   "Baisse de prix",
		MessagePattern: "Le tarif de {event_title} est passé à {amount}",
		Priority:       PriorityMedium,
		Category:       CategoryCommercial,
	},
	KindPayoutSent: {
		TitlePattern:   "Versement envoyé",
		MessagePattern: "Un versement de {amount} a été envoyé vers votre compte",
		Priority:       PriorityMedium,
		Category:       CategoryCommercial,
	},

	// Personalized
	KindRecommendedEvent: {
		TitlePattern:   "Suggestion pour vous",
		MessagePattern: "{event_title} pourrait vous plaire",
		Priority:       PriorityLow,
		Category:       CategoryPersonalized,
	},
	KindSimilarEvent: {
		TitlePattern:   "Événement similaire",
		MessagePattern: "Dans le même esprit que {reference_title} : découvrez {event_title}",
		Priority:       PriorityLow,
		Category:       CategoryPersonalized,
	},
	KindNearbyEvent: {
		TitlePattern:   "Près de chez vous",
		MessagePattern: "{event_title} a lieu à {distance} de chez vous",
		Priority:       PriorityLow,
		Category:       CategoryPersonalized,
	},
	KindFavoriteOrganizer: {
		TitlePattern:   "Nouvel événement d'un organisateur suivi",
		MessagePattern: "{organizer_name} vient de publier {event_title}",
		Priority:       PriorityMedium,
		Category:       CategoryPersonalized,
	},
	KindCategoryDigest: {
		TitlePattern:   "Sélection {category_name}",
		MessagePattern: "{event_count} nouveaux événements {category_name} cette semaine",
		Priority:       PriorityLow,
		Category:       CategoryPersonalized,
	},
	KindWeekendPicks: {
		TitlePattern:   "Idées pour le week-end",
		MessagePattern: "Notre sélection de {event_count} événements pour ce week-end",
		Priority:       PriorityLow,
		Category:       CategoryPersonalized,
	},
	KindBackInTown: {
		TitlePattern:   "Ça revient",
		MessagePattern: "{event_title} est de retour le {start_date}",
		Priority:       PriorityLow,
		Category:       CategoryPersonalized,
	},

	// Urgent
	KindEventCancelled: {
		TitlePattern:   "Événement annulé",
		MessagePattern: "L'événement {event_title} a été annulé",
		Priority:       PriorityUrgent,
		Category:       CategoryUrgent,
	},
	KindEventPostponed: {
		TitlePattern:   "Événement reporté",
		MessagePattern: "{event_title} est reporté au {new_date}",
		Priority:       PriorityUrgent,
		Category:       CategoryUrgent,
	},
	KindVenueChanged: {
		TitlePattern:   "Changement de lieu",
		MessagePattern: "{event_title} se tiendra désormais à {venue_name}",
		Priority:       PriorityUrgent,
		Category:       CategoryUrgent,
	},
	KindLastMinuteChange: {
		TitlePattern:   "Changement de dernière minute",
		MessagePattern: "Information importante concernant {event_title} : {change_summary}",
		Priority:       PriorityUrgent,
		Category:       CategoryUrgent,
	},
	KindSecurityAlert: {
		TitlePattern:   "Alerte de sécurité",
		MessagePattern: "Activité inhabituelle détectée sur votre compte. Vérifiez vos accès",
		Priority:       PriorityUrgent,
		Category:       CategoryUrgent,
	},
	KindTicketIssue: {
		TitlePattern:   "Problème de billet",
		MessagePattern: "Un problème a été détecté sur votre billet pour {event_title}. Contactez le support",
		Priority:       PriorityUrgent,
		Category:       CategoryUrgent,
	},
}

// init verifies catalog completeness so a kind added without a template fails
// at process start rather than surfacing as ErrUnknownKind at call time.
func init() {
	for _, kind := range AllKinds {
		tpl, ok := templates[kind]
		if !ok {
			panic(fmt.Sprintf("notifications: kind %q has no template", kind))
		}
		tpl.Kind = kind
		templates[kind] = tpl
	}
	if len(templates) != len(AllKinds) {
		panic(fmt.Sprintf("notifications: catalog has %d templates for %d kinds", len(templates), len(AllKinds)))
	}
}

// TemplateFor returns the template bound to kind. A miss means the kind is not
// part of the closed set and is reported as ErrUnknownKind.
func TemplateFor(kind Kind) (Template, error) {
	tpl, ok := templates[kind]
	if !ok {
		return Template{}, fmt.Errorf("template for kind %q: %w", kind, ErrUnknownKind)
	}
	return tpl, nil
}
