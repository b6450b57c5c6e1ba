package domain

import "time"

// Kind of user-generated content subject to the trust pipeline.
type ContentType string

const (
	ContentTypeReview   ContentType = "review"
	ContentTypeQuestion ContentType = "question"
)

func (ct ContentType) Valid() bool {
	return ct == ContentTypeReview || ct == ContentTypeQuestion
}

// A user-submitted review or question attached to a POI.
// Moderation annotations (Reported, ModerationFlags, IsHidden) are written
// by the moderation worker after creation.
type ContentSubmission struct {
	ID              string      `json:"id" bson:"_id"`
	Type            ContentType `json:"type" bson:"type"`
	UserID          string      `json:"userId" bson:"userId"`
	POIID           string      `json:"poiId" bson:"poiId"`
	Text            string      `json:"text" bson:"text"`
	CreatedAt       time.Time   `json:"createdAt" bson:"createdAt"`
	Reported        bool        `json:"reported" bson:"reported"`
	ModerationFlags []string    `json:"moderationFlags,omitempty" bson:"moderationFlags,omitempty"`
	IsHidden        bool        `json:"isHidden" bson:"isHidden"`
}
