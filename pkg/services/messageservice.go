package services

import (
	"context"
	"strings"
	"time"

	"webmart-io/store/pkg/kv"
	"webmart-io/store/pkg/models"
	"webmart-io/store/pkg/util"
)

// MessageServiceImpl implements the MessageService interface.
type MessageServiceImpl struct {
	store kv.Store
	now   func() time.Time
}

// NewMessageService creates a new instance of MessageService.
func NewMessageService(store kv.Store) MessageService {
	return &MessageServiceImpl{store: store, now: time.Now}
}

// Threads returns unarchived conversations, most recent first.
func (ms *MessageServiceImpl) Threads(ctx context.Context) []models.Thread {
	var out []models.Thread
	for _, t := range ms.all(ctx) {
		if !t.Archived {
			out = append(out, t)
		}
	}
	return out
}

// NewThread opens a conversation with an initial message.
func (ms *MessageServiceImpl) NewThread(ctx context.Context, title, productID, opener string) *models.Thread {
	thread := models.Thread{
		ID:        util.NewID("c"),
		Title:     title,
		ProductID: productID,
		Messages:  []models.Message{{From: "You", Text: opener, At: ms.now()}},
	}
	ms.save(ctx, append([]models.Thread{thread}, ms.all(ctx)...))
	return &thread
}

// Send appends a message to a thread; blank text is a no-op.
func (ms *MessageServiceImpl) Send(ctx context.Context, threadID, from, text string) error {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}
	all := ms.all(ctx)
	for i := range all {
		if all[i].ID == threadID {
			all[i].Messages = append(all[i].Messages, models.Message{From: from, Text: text, At: ms.now()})
			ms.save(ctx, all)
			return nil
		}
	}
	return ErrNotFound
}

// Archive hides a thread from the conversation list.
func (ms *MessageServiceImpl) Archive(ctx context.Context, threadID string) error {
	all := ms.all(ctx)
	for i := range all {
		if all[i].ID == threadID {
			all[i].Archived = true
			ms.save(ctx, all)
			return nil
		}
	}
	return ErrNotFound
}

// SeedIfEmpty plants the demo conversations on first run.
func (ms *MessageServiceImpl) SeedIfEmpty(ctx context.Context) {
	if len(ms.all(ctx)) > 0 {
		return
	}
	now := ms.now()
	ms.save(ctx, []models.Thread{
		{
			ID: util.NewID("c"), Title: "Buyer • iPhone 14 Pro", ProductID: "p001",
			Messages: []models.Message{
				{From: "Buyer", Text: "Hi! Is the Deep Purple still available?", At: now.Add(-60 * time.Minute)},
				{From: "You", Text: "Yes, still available. Ships today.", At: now.Add(-58 * time.Minute)},
				{From: "Buyer", Text: "Great. Can you do $760?", At: now.Add(-56 * time.Minute)},
			},
		},
		{
			ID: util.NewID("c"), Title: "Jordan • Headphones", ProductID: "p002",
			Messages: []models.Message{
				{From: "Buyer", Text: "Are the pads original?", At: now.Add(-137 * time.Minute)},
				{From: "You", Text: "They're original and clean.", At: now.Add(-135 * time.Minute)},
			},
		},
	})
}

func (ms *MessageServiceImpl) all(ctx context.Context) []models.Thread {
	var threads []models.Thread
	if !ms.store.Get(ctx, MSG_KEY, &threads) {
		return []models.Thread{}
	}
	return threads
}

func (ms *MessageServiceImpl) save(ctx context.Context, threads []models.Thread) {
	if err := ms.store.Set(ctx, MSG_KEY, threads); err != nil {
		util.LogError("failed to persist threads", err)
	}
}
