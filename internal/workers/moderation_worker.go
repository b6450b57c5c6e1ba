package workers

import (
	"context"
	"time"

	"tourist-route-service/internal/domain"
	"tourist-route-service/internal/ports"
	"tourist-route-service/internal/services"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ChannelPublisher hands moderation events to the worker over a buffered
// channel. Publish never blocks: when the buffer is full the event is
// dropped and logged, honoring the never-block-creation contract.
type ChannelPublisher struct {
	ch     chan ports.ModerationEvent
	logger *zap.Logger
}

func NewChannelPublisher(buffer int, logger *zap.Logger) *ChannelPublisher {
	return &ChannelPublisher{
		ch:     make(chan ports.ModerationEvent, buffer),
		logger: logger,
	}
}

func (p *ChannelPublisher) Publish(ev ports.ModerationEvent) {
	select {
	case p.ch <- ev:
	default:
		p.logger.Warn("moderation event dropped, buffer full",
			zap.String("contentId", ev.ContentID))
	}
}

func (p *ChannelPublisher) Events() <-chan ports.ModerationEvent { return p.ch }

// ModerationWorker consumes submission-created events and applies the
// keyword/repetition scan. It runs independently per submission with no
// ordering guarantee; every failure is logged and swallowed.
type ModerationWorker struct {
	events    <-chan ports.ModerationEvent
	subs      ports.SubmissionStore
	queue     ports.ModerationQueue
	moderator *services.Moderator
	logger    *zap.Logger
	now       func() time.Time
}

func NewModerationWorker(
	events <-chan ports.ModerationEvent,
	subs ports.SubmissionStore,
	queue ports.ModerationQueue,
	moderator *services.Moderator,
	logger *zap.Logger,
) *ModerationWorker {
	return &ModerationWorker{
		events:    events,
		subs:      subs,
		queue:     queue,
		moderator: moderator,
		logger:    logger,
		now:       time.Now,
	}
}

// Run consumes events until ctx is canceled.
func (w *ModerationWorker) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-w.events:
			if !ok {
				return
			}
			w.handle(ctx, ev)
		}
	}
}

func (w *ModerationWorker) handle(ctx context.Context, ev ports.ModerationEvent) {
	result := w.moderator.Moderate(ev.Text)
	if !result.IsFlagged() {
		return
	}

	if err := w.subs.ApplyModeration(ctx, ev.ContentID, result); err != nil {
		w.logger.Error("apply moderation failed",
			zap.String("contentId", ev.ContentID),
			zap.Error(err))
		return
	}

	w.logger.Info("submission flagged",
		zap.String("contentId", ev.ContentID),
		zap.Strings("flags", result.Flags),
		zap.Bool("hidden", result.ShouldHide))

	if !result.ShouldHide {
		return
	}

	entry := domain.ModerationQueueEntry{
		ID:          uuid.NewString(),
		ContentType: ev.ContentType,
		ContentID:   ev.ContentID,
		POIID:       ev.POIID,
		UserID:      ev.UserID,
		Text:        ev.Text,
		Flags:       result.Flags,
		Status:      domain.ModerationStatusPending,
		CreatedAt:   w.now(),
	}
	if err := w.queue.Enqueue(ctx, entry); err != nil {
		w.logger.Error("enqueue moderation entry failed",
			zap.String("contentId", ev.ContentID),
			zap.Error(err))
	}
}
