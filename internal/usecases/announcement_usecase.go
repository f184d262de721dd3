package usecases

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"invest-portal.backend/internal/domain/entities"
	"invest-portal.backend/internal/domain/repositories"
	"invest-portal.backend/pkg/utils"
)

// AnnouncementUsecase handles platform announcements
type AnnouncementUsecase struct {
	announcementRepo repositories.AnnouncementRepository
}

// NewAnnouncementUsecase creates a new announcement usecase
func NewAnnouncementUsecase(announcementRepo repositories.AnnouncementRepository) *AnnouncementUsecase {
	return &AnnouncementUsecase{announcementRepo: announcementRepo}
}

// Create creates an announcement; published ones get a publish timestamp
func (u *AnnouncementUsecase) Create(ctx context.Context, title, body string, publish bool, createdByAdminID string) (*entities.Announcement, error) {
	now := time.Now()
	a := &entities.Announcement{
		ID:          utils.GenerateUUIDv7(),
		Title:       title,
		Body:        body,
		IsPublished: publish,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if publish {
		a.PublishedAt = null.TimeFrom(now)
	}
	if createdByAdminID != "" {
		a.CreatedByAdminID = null.StringFrom(createdByAdminID)
	}
	if err := u.announcementRepo.Create(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

// Get returns one announcement
func (u *AnnouncementUsecase) Get(ctx context.Context, id uuid.UUID) (*entities.Announcement, error) {
	return u.announcementRepo.GetByID(ctx, id)
}

// ListPublished lists what investors see
func (u *AnnouncementUsecase) ListPublished(ctx context.Context) ([]*entities.Announcement, error) {
	return u.announcementRepo.ListPublished(ctx)
}

// ListAll lists drafts and published for the admin dashboard
func (u *AnnouncementUsecase) ListAll(ctx context.Context) ([]*entities.Announcement, error) {
	return u.announcementRepo.ListAll(ctx)
}

// Update edits an announcement. Flipping the publish flag on stamps
// PublishedAt once; unpublishing keeps the original timestamp.
func (u *AnnouncementUsecase) Update(ctx context.Context, id uuid.UUID, title, body string, publish bool) (*entities.Announcement, error) {
	a, err := u.announcementRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	a.Title = title
	a.Body = body
	if publish && !a.IsPublished {
		a.PublishedAt = null.TimeFrom(time.Now())
	}
	a.IsPublished = publish
	if err := u.announcementRepo.Update(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

// Delete removes an announcement
func (u *AnnouncementUsecase) Delete(ctx context.Context, id uuid.UUID) error {
	return u.announcementRepo.SoftDelete(ctx, id)
}
