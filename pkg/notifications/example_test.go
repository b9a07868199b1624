package notifications_test

import (
	"context"
	"errors"
	"fmt"

	"github.com/Bernadoadk/Edofi-sub001/pkg/notifications"
)

func ExampleEngine_CreateFromTemplate() {
	ctx := context.Background()

	storage := notifications.NewMemoryStorage()
	engine := notifications.NewEngine(storage, storage)

	notif, err := engine.CreateFromTemplate(ctx, 7, notifications.KindEventReminder,
		map[string]any{"event_title": "Jazz Night", "time_remaining": "2h"}, nil)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println(notif.Title)
	fmt.Println(notif.Message)
	// Output:
	// Rappel d'événement
	// Votre événement Jazz Night commence dans 2h
}

func ExampleEngine_CreateWithPreferenceCheck() {
	ctx := context.Background()

	storage := notifications.NewMemoryStorage()
	engine := notifications.NewEngine(storage, storage)

	// The recipient opts out of the social category.
	off := false
	if _, err := storage.Upsert(ctx, 7, notifications.PreferencePatch{SocialEnabled: &off}); err != nil {
		fmt.Println("error:", err)
		return
	}

	_, err := engine.CreateWithPreferenceCheck(ctx, 7, notifications.KindNewComment,
		map[string]any{"user_name": "Ana", "event_title": "Jazz Night"}, nil)
	if errors.Is(err, notifications.ErrSuppressed) {
		fmt.Println("suppressed")
	}

	// Urgent notifications are a different category and still go through.
	notif, err := engine.CreateWithPreferenceCheck(ctx, 7, notifications.KindEventCancelled,
		map[string]any{"event_title": "Jazz Night"}, nil)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(notif.Message)
	// Output:
	// suppressed
	// L'événement Jazz Night a été annulé
}

func ExampleEngine_UnreadCount() {
	ctx := context.Background()

	storage := notifications.NewMemoryStorage()
	engine := notifications.NewEngine(storage, storage)

	for _, title := range []string{"a", "b", "c"} {
		if _, err := engine.Create(ctx, notifications.CreateParams{
			RecipientID: 7,
			Kind:        notifications.KindNewComment,
			Title:       title,
			Message:     "m",
		}); err != nil {
			fmt.Println("error:", err)
			return
		}
	}

	count, _ := engine.UnreadCount(ctx, 7)
	fmt.Println(count)

	if _, err := engine.MarkAllRead(ctx, 7); err != nil {
		fmt.Println("error:", err)
		return
	}

	count, _ = engine.UnreadCount(ctx, 7)
	fmt.Println(count)
	// Output:
	// 3
	// 0
}
