package service

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"linkly-be/internal/apperrors"
	"linkly-be/internal/device"
	"linkly-be/internal/entities"
	"linkly-be/internal/models"
	"linkly-be/internal/repository"
)

const defaultSearchLimit = 10

// LinkService defines the interface for short-link business logic, including
// the redirect path that feeds the click analytics.
type LinkService interface {
	Create(ctx context.Context, req *models.CreateLinkRequest) (*models.CreateLinkResponse, error)
	Get(ctx context.Context, shortCode string) (*entities.ShortLink, error)
	ListByUser(ctx context.Context, userID string) ([]*entities.ShortLink, error)
	Update(ctx context.Context, shortCode string, req *models.UpdateLinkRequest) (*models.UpdateLinkResponse, error)
	Delete(ctx context.Context, shortCode string) error
	Search(ctx context.Context, remarks string, offset, limit int) ([]*entities.ShortLink, error)
	Responses(ctx context.Context, shortCode string) ([]entities.ClickResponse, error)
	Redirect(ctx context.Context, shortCode, ipAddress, userAgent string) (string, error)
	Analytics(ctx context.Context, userID string) (*models.AnalyticsResponse, error)
}

type linkService struct {
	linkRepo repository.LinkRepository
	userRepo repository.UserRepository
	baseURL  string
}

// NewLinkService creates a new link service. baseURL is the public prefix
// embedded in generated short URLs.
func NewLinkService(linkRepo repository.LinkRepository, userRepo repository.UserRepository, baseURL string) LinkService {
	return &linkService{
		linkRepo: linkRepo,
		userRepo: userRepo,
		baseURL:  baseURL,
	}
}

// generateShortCode generates a random 8-character short code.
func generateShortCode() (string, error) {
	bytes := make([]byte, 6)
	if _, err := rand.Read(bytes); err != nil {
		return "", fmt.Errorf("failed to generate random bytes: %w", err)
	}
	return base64.URLEncoding.EncodeToString(bytes)[:8], nil
}

// resolveExpiry computes the expiry timestamp: an absolute expiresAt wins over
// a relative expiresIn minute offset; with neither the link never expires.
func resolveExpiry(expiresAt *time.Time, expiresIn *int, now time.Time) *time.Time {
	if expiresAt != nil {
		t := expiresAt.UTC()
		return &t
	}
	if expiresIn != nil {
		t := now.Add(time.Duration(*expiresIn) * time.Minute).UTC()
		return &t
	}
	return nil
}

// Create generates a globally-unique short code, derives the short URL from it
// and persists the new link.
func (s *linkService) Create(ctx context.Context, req *models.CreateLinkRequest) (*models.CreateLinkResponse, error) {
	now := time.Now().UTC()
	expiry := resolveExpiry(req.ExpiresAt, req.ExpiresIn, now)

	// Retry on the unlikely collision; the unique index is the arbiter.
	maxAttempts := 10
	var link *entities.ShortLink
	for i := 0; i < maxAttempts; i++ {
		shortCode, err := generateShortCode()
		if err != nil {
			return nil, err
		}

		link, err = s.linkRepo.Create(ctx, &entities.ShortLink{
			UserID:      req.UserID,
			OriginalURL: req.OriginalURL,
			ShortCode:   shortCode,
			ShortURL:    fmt.Sprintf("%s/api/link/%s", s.baseURL, shortCode),
			CreatedAt:   now,
			ExpiresAt:   expiry,
			Remarks:     req.Remarks,
			Responses:   []entities.ClickResponse{},
		})
		if err == nil {
			break
		}
		if i == maxAttempts-1 {
			return nil, fmt.Errorf("failed to generate unique short code after %d attempts: %w", maxAttempts, err)
		}
	}

	return &models.CreateLinkResponse{
		Message:   "Short link created successfully",
		ShortURL:  link.ShortURL,
		ExpiresAt: link.ExpiresAt,
	}, nil
}

// Get returns a single link by short code with its derived status set.
func (s *linkService) Get(ctx context.Context, shortCode string) (*entities.ShortLink, error) {
	link, err := s.linkRepo.FindByShortCode(ctx, shortCode)
	if err != nil {
		return nil, err
	}
	link.Status = link.ComputeStatus(time.Now().UTC())
	return link, nil
}

// ListByUser returns all links owned by the user, with derived status set.
func (s *linkService) ListByUser(ctx context.Context, userID string) ([]*entities.ShortLink, error) {
	links, err := s.linkRepo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	for _, link := range links {
		link.Status = link.ComputeStatus(now)
	}
	return links, nil
}

// Update patches the mutable fields of a link. At least one field must be
// provided; that is checked before the link is even looked up. ShortCode and
// ShortURL never change.
func (s *linkService) Update(ctx context.Context, shortCode string, req *models.UpdateLinkRequest) (*models.UpdateLinkResponse, error) {
	if req.IsEmpty() {
		return nil, apperrors.ErrNothingToUpdate
	}

	link, err := s.linkRepo.FindByShortCode(ctx, shortCode)
	if err != nil {
		return nil, err
	}

	if req.OriginalURL != nil {
		link.OriginalURL = *req.OriginalURL
	}
	if req.ExpiresAt != nil || req.ExpiresIn != nil {
		link.ExpiresAt = resolveExpiry(req.ExpiresAt, req.ExpiresIn, time.Now().UTC())
	}
	if req.Remarks != nil {
		link.Remarks = *req.Remarks
	}

	if err := s.linkRepo.Replace(ctx, link); err != nil {
		return nil, err
	}

	return &models.UpdateLinkResponse{
		Message:     "Short link updated successfully",
		ShortURL:    link.ShortURL,
		OriginalURL: link.OriginalURL,
		ExpiresAt:   link.ExpiresAt,
		Remarks:     link.Remarks,
	}, nil
}

// Delete removes a link by short code.
func (s *linkService) Delete(ctx context.Context, shortCode string) error {
	return s.linkRepo.DeleteByShortCode(ctx, shortCode)
}

// Search returns links whose remarks contain the query, case-insensitively,
// newest first. Offset defaults to 0 and limit to 10.
func (s *linkService) Search(ctx context.Context, remarks string, offset, limit int) ([]*entities.ShortLink, error) {
	if offset < 0 {
		offset = 0
	}
	if limit <= 0 {
		limit = defaultSearchLimit
	}

	links, err := s.linkRepo.SearchByRemarks(ctx, remarks, offset, limit)
	if err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	for _, link := range links {
		link.Status = link.ComputeStatus(now)
	}
	return links, nil
}

// Responses returns the full click-event log of a link.
func (s *linkService) Responses(ctx context.Context, shortCode string) ([]entities.ClickResponse, error) {
	link, err := s.linkRepo.FindByShortCode(ctx, shortCode)
	if err != nil {
		return nil, err
	}
	return link.Responses, nil
}

// Redirect resolves a short code, records the click on the link and on the
// owning user's aggregates, and returns the original URL to redirect to.
//
// The user-side update is best effort: the two documents are written without
// a transaction, so a failure after the link write leaves the link counters
// and the user aggregates diverged. That gap is accepted; the redirect itself
// must never be blocked by it.
func (s *linkService) Redirect(ctx context.Context, shortCode, ipAddress, userAgent string) (string, error) {
	link, err := s.linkRepo.FindByShortCode(ctx, shortCode)
	if err != nil {
		return "", err
	}

	now := time.Now().UTC()
	if link.IsExpired(now) {
		// Expired redirects are refused without recording a click.
		return "", apperrors.ErrLinkExpired
	}

	link.Clicks++
	deviceType := device.Classify(userAgent)

	link.Responses = append(link.Responses, entities.ClickResponse{
		CreatedAt:   now,
		ShortCode:   link.ShortCode,
		ShortURL:    link.ShortURL,
		OriginalURL: link.OriginalURL,
		Remarks:     link.Remarks,
		Clicks:      link.Clicks,
		IPAddress:   ipAddress,
		UserDevice:  userAgent,
		Device:      deviceType,
	})

	if err := s.linkRepo.Replace(ctx, link); err != nil {
		return "", err
	}

	s.recordUserClick(ctx, link.UserID, deviceType, now)

	return link.OriginalURL, nil
}

// recordUserClick updates the owning user's rolling analytics. Failures are
// logged and swallowed so the redirect always goes through.
func (s *linkService) recordUserClick(ctx context.Context, userID, deviceType string, now time.Time) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		log.Warn().Err(err).Str("user_id", userID).Msg("click not attributed: owner lookup failed")
		return
	}

	applyClick(user, deviceType, now.Format("2006-01-02"))

	if err := s.userRepo.Replace(ctx, user); err != nil {
		log.Warn().Err(err).Str("user_id", userID).Msg("click not attributed: user update failed")
	}
}

// applyClick folds one click into the user's aggregates.
//
// The dailyClicks series stores a running total per day: the last entry for
// today is incremented in place, and a new day starts from the previous
// entry's count plus one. Consumers of the analytics endpoint depend on this
// running-total shape, so it must not be turned into per-day deltas.
func applyClick(user *entities.User, deviceType, today string) {
	user.TotalClicks++

	if n := len(user.DailyClicks); n > 0 && user.DailyClicks[n-1].Date == today {
		user.DailyClicks[n-1].Count++
	} else {
		previous := 0
		if n > 0 {
			previous = user.DailyClicks[n-1].Count
		}
		user.DailyClicks = append(user.DailyClicks, entities.DailyClick{Date: today, Count: previous + 1})
	}

	for i := range user.Devices {
		if user.Devices[i].DeviceType == deviceType {
			user.Devices[i].Count++
			return
		}
	}
	user.Devices = append(user.Devices, entities.DeviceStat{DeviceType: deviceType, Count: 1})
}

// Analytics returns the user's stored aggregates verbatim.
func (s *linkService) Analytics(ctx context.Context, userID string) (*models.AnalyticsResponse, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &models.AnalyticsResponse{
		TotalClicks: user.TotalClicks,
		DailyClicks: user.DailyClicks,
		Devices:     user.Devices,
	}, nil
}
