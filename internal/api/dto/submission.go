package dto

import "time"

type SubmissionCheckRequest struct {
	ContentType string `json:"content_type"`
	POIID       string `json:"poi_id"`
}

type SubmissionCheckResponse struct {
	RemainingQuota int `json:"remaining_quota"`
}

type CreateSubmissionRequest struct {
	ContentType string `json:"content_type"`
	POIID       string `json:"poi_id"`
	Text        string `json:"text"`
}

type SubmissionResponse struct {
	ID          string    `json:"id"`
	ContentType string    `json:"content_type"`
	POIID       string    `json:"poi_id"`
	Text        string    `json:"text"`
	CreatedAt   time.Time `json:"created_at"`
}

type ListSubmissionsResponse struct {
	Submissions []SubmissionResponse `json:"submissions"`
}
