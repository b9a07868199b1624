package notifications

import (
	"context"
	"errors"
	"fmt"
)

// Gate decides whether a notification of a given kind may be created for a
// recipient, based on the category toggle in the recipient's stored
// preferences. Channel toggles are not consulted here: they belong to the
// delivery layer.
type Gate struct {
	prefs PreferenceStore
}

// NewGate creates a preference gate backed by the given store.
func NewGate(prefs PreferenceStore) *Gate {
	return &Gate{prefs: prefs}
}

// ShouldSend reports whether a notification of the given kind may be created
// for the recipient.
//
// A recipient without a preference record is always allowed: absence of
// preferences must never silently suppress notifications. A kind outside the
// catalog cannot be classified into a category and is therefore denied.
// Store failures propagate to the caller; the engine's preference-checked
// create treats them as fail-open.
func (g *Gate) ShouldSend(ctx context.Context, recipientID int64, kind Kind) (bool, error) {
	pref, err := g.prefs.GetByRecipient(ctx, recipientID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return true, nil
		}
		return false, fmt.Errorf("preference lookup for recipient %d: %w", recipientID, err)
	}

	tpl, err := TemplateFor(kind)
	if err != nil {
		return false, nil
	}

	return pref.CategoryEnabled(tpl.Category), nil
}
