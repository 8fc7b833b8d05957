package models

import (
	"time"

	"linkly-be/internal/entities"
)

// CreateLinkResponse is returned after creating a short link. ExpiresAt is
// null for links that never expire.
type CreateLinkResponse struct {
	Message   string     `json:"message"`
	ShortURL  string     `json:"shortUrl"`
	ExpiresAt *time.Time `json:"expiresAt"`
}

// UpdateLinkResponse is returned after updating a short link.
type UpdateLinkResponse struct {
	Message     string     `json:"message"`
	ShortURL    string     `json:"shortUrl"`
	OriginalURL string     `json:"originalUrl"`
	ExpiresAt   *time.Time `json:"expiresAt"`
	Remarks     string     `json:"remarks,omitempty"`
}

// LinksResponse wraps a user's short links.
type LinksResponse struct {
	ShortLinks []*entities.ShortLink `json:"shortLinks"`
}

// ResponsesResponse wraps the click-event log of one short link.
type ResponsesResponse struct {
	Message   string                   `json:"message"`
	Responses []entities.ClickResponse `json:"responses"`
}

// AnalyticsResponse is the per-user analytics aggregate, returned verbatim
// from the stored user document.
type AnalyticsResponse struct {
	TotalClicks int                   `json:"totalClicks"`
	DailyClicks []entities.DailyClick `json:"dailyClicks"`
	Devices     []entities.DeviceStat `json:"devices"`
}
