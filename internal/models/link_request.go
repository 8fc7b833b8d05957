package models

import "time"

// CreateLinkRequest represents the request body for creating a short link.
// ExpiresAt takes precedence over ExpiresIn (a relative offset in minutes);
// with neither set the link never expires.
type CreateLinkRequest struct {
	UserID      string     `json:"userId" binding:"required"`
	OriginalURL string     `json:"originalUrl" binding:"required,url"`
	ExpiresIn   *int       `json:"expiresIn,omitempty"`
	ExpiresAt   *time.Time `json:"expiresAt,omitempty"`
	Remarks     string     `json:"remarks,omitempty"`
}

// UpdateLinkRequest represents the request body for updating a short link.
// All fields are optional but at least one must be provided. ShortCode and
// ShortURL are immutable and cannot appear here.
type UpdateLinkRequest struct {
	OriginalURL *string    `json:"originalUrl,omitempty"`
	ExpiresIn   *int       `json:"expiresIn,omitempty"`
	ExpiresAt   *time.Time `json:"expiresAt,omitempty"`
	Remarks     *string    `json:"remarks,omitempty"`
}

// IsEmpty reports whether the update carries no fields at all.
func (r *UpdateLinkRequest) IsEmpty() bool {
	return r.OriginalURL == nil && r.ExpiresIn == nil && r.ExpiresAt == nil && r.Remarks == nil
}
