package service

import (
	"context"

	"linkly-be/internal/apperrors"
	"linkly-be/internal/entities"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// In-memory repository fakes. Lookups return copies so tests observe only
// what was explicitly persisted, mirroring driver decode behavior.

type fakeUserRepo struct {
	users      map[string]*entities.User // keyed by email
	replaceErr error
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*entities.User)}
}

func copyUser(u *entities.User) *entities.User {
	cp := *u
	cp.DailyClicks = append([]entities.DailyClick(nil), u.DailyClicks...)
	cp.Devices = append([]entities.DeviceStat(nil), u.Devices...)
	return &cp
}

func (f *fakeUserRepo) Create(_ context.Context, user *entities.User) (*entities.User, error) {
	if _, ok := f.users[user.Email]; ok {
		return nil, apperrors.ErrEmailTaken
	}
	if user.ID.IsZero() {
		user.ID = bson.NewObjectID()
	}
	f.users[user.Email] = copyUser(user)
	return copyUser(user), nil
}

func (f *fakeUserRepo) FindByEmail(_ context.Context, email string) (*entities.User, error) {
	u, ok := f.users[email]
	if !ok {
		return nil, apperrors.ErrUserNotFound
	}
	return copyUser(u), nil
}

func (f *fakeUserRepo) FindByID(_ context.Context, id string) (*entities.User, error) {
	for _, u := range f.users {
		if u.ID.Hex() == id {
			return copyUser(u), nil
		}
	}
	return nil, apperrors.ErrUserNotFound
}

func (f *fakeUserRepo) Replace(_ context.Context, user *entities.User) error {
	if f.replaceErr != nil {
		return f.replaceErr
	}
	for email, u := range f.users {
		if u.ID == user.ID {
			delete(f.users, email)
			f.users[user.Email] = copyUser(user)
			return nil
		}
	}
	return apperrors.ErrUserNotFound
}

func (f *fakeUserRepo) DeleteByEmail(_ context.Context, email string) error {
	if _, ok := f.users[email]; !ok {
		return apperrors.ErrUserNotFound
	}
	delete(f.users, email)
	return nil
}

type searchCall struct {
	query         string
	offset, limit int
}

type fakeLinkRepo struct {
	links      map[string]*entities.ShortLink // keyed by shortCode
	replaceErr error
	lastSearch searchCall
}

func newFakeLinkRepo() *fakeLinkRepo {
	return &fakeLinkRepo{links: make(map[string]*entities.ShortLink)}
}

func copyLink(l *entities.ShortLink) *entities.ShortLink {
	cp := *l
	cp.Responses = append([]entities.ClickResponse(nil), l.Responses...)
	return &cp
}

func (f *fakeLinkRepo) Create(_ context.Context, link *entities.ShortLink) (*entities.ShortLink, error) {
	if _, ok := f.links[link.ShortCode]; ok {
		return nil, apperrors.ErrLinkNotFound // any error triggers the caller's retry
	}
	if link.ID.IsZero() {
		link.ID = bson.NewObjectID()
	}
	f.links[link.ShortCode] = copyLink(link)
	return copyLink(link), nil
}

func (f *fakeLinkRepo) FindByShortCode(_ context.Context, shortCode string) (*entities.ShortLink, error) {
	l, ok := f.links[shortCode]
	if !ok {
		return nil, apperrors.ErrLinkNotFound
	}
	return copyLink(l), nil
}

func (f *fakeLinkRepo) FindByUserID(_ context.Context, userID string) ([]*entities.ShortLink, error) {
	out := []*entities.ShortLink{}
	for _, l := range f.links {
		if l.UserID == userID {
			out = append(out, copyLink(l))
		}
	}
	return out, nil
}

func (f *fakeLinkRepo) Replace(_ context.Context, link *entities.ShortLink) error {
	if f.replaceErr != nil {
		return f.replaceErr
	}
	for code, l := range f.links {
		if l.ID == link.ID {
			delete(f.links, code)
			f.links[link.ShortCode] = copyLink(link)
			return nil
		}
	}
	return apperrors.ErrLinkNotFound
}

func (f *fakeLinkRepo) DeleteByShortCode(_ context.Context, shortCode string) error {
	if _, ok := f.links[shortCode]; !ok {
		return apperrors.ErrLinkNotFound
	}
	delete(f.links, shortCode)
	return nil
}

func (f *fakeLinkRepo) SearchByRemarks(_ context.Context, query string, offset, limit int) ([]*entities.ShortLink, error) {
	f.lastSearch = searchCall{query: query, offset: offset, limit: limit}
	return []*entities.ShortLink{}, nil
}
