package entities

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Link status values derived from the expiry timestamp.
const (
	StatusActive  = "Active"
	StatusExpired = "Expired"
)

// ShortLink maps a short code to its original URL plus ownership, expiry and
// the per-link click log. ShortCode and ShortURL are immutable after creation.
type ShortLink struct {
	ID          bson.ObjectID   `bson:"_id,omitempty" json:"id"`
	UserID      string          `bson:"userId" json:"userId"`
	OriginalURL string          `bson:"originalUrl" json:"originalUrl"`
	ShortCode   string          `bson:"shortCode" json:"shortCode"`
	ShortURL    string          `bson:"shortUrl" json:"shortUrl"`
	CreatedAt   time.Time       `bson:"createdAt" json:"createdAt"`
	ExpiresAt   *time.Time      `bson:"expiresAt,omitempty" json:"expiresAt,omitempty"` // nil means the link never expires
	Remarks     string          `bson:"remarks,omitempty" json:"remarks,omitempty"`
	Clicks      int             `bson:"clicks" json:"clicks"`
	Responses   []ClickResponse `bson:"responses" json:"responses"`
	Status      string          `bson:"-" json:"status,omitempty"` // derived, never stored
}

// ClickResponse is one recorded redirect: requester metadata plus an immutable
// snapshot of the link fields at click time.
type ClickResponse struct {
	CreatedAt   time.Time `bson:"createdAt" json:"createdAt"`
	ShortCode   string    `bson:"shortCode" json:"shortCode"`
	ShortURL    string    `bson:"shortUrl" json:"shortUrl"`
	OriginalURL string    `bson:"originalUrl" json:"originalUrl"`
	Remarks     string    `bson:"remarks,omitempty" json:"remarks,omitempty"`
	Clicks      int       `bson:"clicks" json:"clicks"`
	IPAddress   string    `bson:"ipAddress" json:"ipAddress"`
	UserDevice  string    `bson:"userDevice" json:"userDevice"` // raw User-Agent header
	Device      string    `bson:"device" json:"device"`         // classified device type
}

// IsExpired reports whether the link has an expiry in the past relative to now.
func (l *ShortLink) IsExpired(now time.Time) bool {
	return l.ExpiresAt != nil && l.ExpiresAt.Before(now)
}

// ComputeStatus returns StatusExpired when the expiry is in the past,
// StatusActive otherwise.
func (l *ShortLink) ComputeStatus(now time.Time) string {
	if l.IsExpired(now) {
		return StatusExpired
	}
	return StatusActive
}
