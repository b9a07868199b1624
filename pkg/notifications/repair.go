package notifications

import (
	"context"
	"fmt"
	"log/slog"
)

// payloadKeyAliases maps a logical template variable to the payload keys that
// may carry its value, checked in order with first match winning. Historical
// records were written by callers that used either snake_case or camelCase
// payload keys, so both spellings of every multi-word variable are accepted.
var payloadKeyAliases = map[string][]string{
	"event_title":      {"event_title", "eventTitle"},
	"time_remaining":   {"time_remaining", "timeRemaining"},
	"start_time":       {"start_time", "startTime"},
	"end_time":         {"end_time", "endTime"},
	"start_date":       {"start_date", "startDate"},
	"new_date":         {"new_date", "newDate"},
	"user_name":        {"user_name", "userName"},
	"organizer_name":   {"organizer_name", "organizerName"},
	"venue_name":       {"venue_name", "venueName"},
	"category_name":    {"category_name", "categoryName"},
	"reference_title":  {"reference_title", "referenceTitle"},
	"attendee_count":   {"attendee_count", "attendeeCount"},
	"view_count":       {"view_count", "viewCount"},
	"booking_count":    {"booking_count", "bookingCount"},
	"event_count":      {"event_count", "eventCount"},
	"spots_remaining":  {"spots_remaining", "spotsRemaining"},
	"invoice_number":   {"invoice_number", "invoiceNumber"},
	"promo_code":       {"promo_code", "promoCode"},
	"changed_at":       {"changed_at", "changedAt"},
	"login_time":       {"login_time", "loginTime"},
	"maintenance_date": {"maintenance_date", "maintenanceDate"},
	"effective_date":   {"effective_date", "effectiveDate"},
	"change_summary":   {"change_summary", "changeSummary"},
}

// aliasesFor returns the acceptable payload keys for a logical variable.
// Single-word variables have no spelling variants and fall through to the
// name itself.
func aliasesFor(name string) []string {
	if aliases, ok := payloadKeyAliases[name]; ok {
		return aliases
	}
	return []string{name}
}

// resolvePayloadVars extracts the subset of names that the payload can
// satisfy, resolving key aliases. Variables absent from the payload are
// simply omitted so Render leaves their placeholders verbatim.
func resolvePayloadVars(names []string, payload map[string]any) map[string]any {
	if len(names) == 0 || len(payload) == 0 {
		return nil
	}
	vars := make(map[string]any)
	for _, name := range names {
		for _, key := range aliasesFor(name) {
			if v, ok := payload[key]; ok {
				vars[name] = v
				break
			}
		}
	}
	if len(vars) == 0 {
		return nil
	}
	return vars
}

// RepairLegacyRecords re-renders records whose stored title or message still
// contains an unsubstituted placeholder, deriving variables from the stored
// payload via the alias table and the kind's catalog template. Records whose
// kind has no template or whose payload yields no variables are left alone:
// the sweep is best effort. It is idempotent; a second run changes nothing.
// It returns the number of records rewritten.
func (e *Engine) RepairLegacyRecords(ctx context.Context) (int, error) {
	records, err := e.records.FindMany(ctx, Filter{Leftover: true})
	if err != nil {
		return 0, fmt.Errorf("repair legacy records: %w", err)
	}

	repaired := 0
	for _, n := range records {
		tpl, err := TemplateFor(n.Kind)
		if err != nil {
			continue
		}

		names := placeholderNames(tpl.TitlePattern)
		names = append(names, placeholderNames(tpl.MessagePattern)...)
		vars := resolvePayloadVars(names, n.Payload)
		if vars == nil {
			continue
		}

		title := Render(tpl.TitlePattern, vars)
		message := Render(tpl.MessagePattern, vars)
		if title == n.Title && message == n.Message {
			continue
		}

		if _, err := e.records.UpdateByID(ctx, n.ID, RecordPatch{
			Title:   &title,
			Message: &message,
		}); err != nil {
			return repaired, fmt.Errorf("repair notification %s: %w", n.ID, err)
		}
		repaired++
	}

	e.logger.LogAttrs(ctx, slog.LevelInfo, "legacy notification repair finished",
		slog.Int("scanned", len(records)),
		slog.Int("repaired", repaired),
	)
	return repaired, nil
}
