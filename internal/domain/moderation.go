package domain

import "time"

// Moderation flags attached to scanned content.
const (
	FlagSpam          = "spam"
	FlagInappropriate = "inappropriate"
	FlagRepetitive    = "repetitive"
)

// Outcome of a moderation scan over a single piece of text.
type ModerationResult struct {
	Flags      []string
	ShouldHide bool
}

func (r ModerationResult) IsFlagged() bool { return len(r.Flags) > 0 }

// Status of a moderation queue entry. Transitions to resolved via an
// external moderator action only.
const (
	ModerationStatusPending  = "pending"
	ModerationStatusResolved = "resolved"
)

// A backlog entry awaiting human review. Created only when moderation
// decides to hide content.
type ModerationQueueEntry struct {
	ID          string      `json:"id" bson:"_id"`
	ContentType ContentType `json:"contentType" bson:"contentType"`
	ContentID   string      `json:"contentId" bson:"contentId"`
	POIID       string      `json:"poiId" bson:"poiId"`
	UserID      string      `json:"userId" bson:"userId"`
	Text        string      `json:"text" bson:"text"`
	Flags       []string    `json:"flags" bson:"flags"`
	Status      string      `json:"status" bson:"status"`
	CreatedAt   time.Time   `json:"createdAt" bson:"createdAt"`
}
