package services

import (
	"context"
	"strings"

	"github.com/ampta/resumecraft-backend/internal/models"
	"github.com/ampta/resumecraft-backend/internal/repository"
)

// ResumeService enforces per-account ownership on resume CRUD. Ownership and
// existence failures are collapsed: a resume owned by someone else looks
// exactly like a missing one.
type ResumeService struct {
	resumes repository.ResumeRepository
	users   repository.UserRepository
	blobs   BlobStore
}

func NewResumeService(resumes repository.ResumeRepository, users repository.UserRepository, blobs BlobStore) *ResumeService {
	return &ResumeService{
		resumes: resumes,
		users:   users,
		blobs:   blobs,
	}
}

// Create starts a new resume with every section initialized empty.
func (s *ResumeService) Create(ctx context.Context, p Principal, title string) (*models.Resume, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, models.E(models.KindInvalidArgument, "title is required")
	}

	user, err := resolveAccount(ctx, s.users, p)
	if err != nil {
		return nil, err
	}

	resume := models.NewDefaultResume(user.ID.Hex(), title)
	if err := s.resumes.Create(ctx, resume); err != nil {
		return nil, models.Wrap(models.KindUnexpected, "failed to create resume", err)
	}
	return resume, nil
}

// List returns the caller's resumes, most recently updated first.
func (s *ResumeService) List(ctx context.Context, p Principal) ([]models.Resume, error) {
	user, err := resolveAccount(ctx, s.users, p)
	if err != nil {
		return nil, err
	}

	resumes, err := s.resumes.FindByUserID(ctx, user.ID.Hex())
	if err != nil {
		return nil, models.Wrap(models.KindUnexpected, "failed to list resumes", err)
	}
	return resumes, nil
}

func (s *ResumeService) Get(ctx context.Context, p Principal, id string) (*models.Resume, error) {
	user, err := resolveAccount(ctx, s.users, p)
	if err != nil {
		return nil, err
	}
	return s.findOwned(ctx, user.ID.Hex(), id)
}

// Update replaces every mutable field with the caller-supplied state. The
// owner is never taken from input.
func (s *ResumeService) Update(ctx context.Context, p Principal, id string, update *models.Resume) (*models.Resume, error) {
	user, err := resolveAccount(ctx, s.users, p)
	if err != nil {
		return nil, err
	}

	existing, err := s.findOwned(ctx, user.ID.Hex(), id)
	if err != nil {
		return nil, err
	}

	existing.Title = update.Title
	existing.ThumbnailLink = update.ThumbnailLink
	existing.Template = update.Template
	existing.ProfileInfo = update.ProfileInfo
	existing.ContactInfo = update.ContactInfo
	existing.WorkExperiences = orEmpty(update.WorkExperiences)
	existing.Educations = orEmpty(update.Educations)
	existing.Skills = orEmpty(update.Skills)
	existing.Projects = orEmpty(update.Projects)
	existing.Certifications = orEmpty(update.Certifications)
	existing.Languages = orEmpty(update.Languages)
	existing.Interests = orEmpty(update.Interests)

	if err := s.resumes.Update(ctx, existing); err != nil {
		return nil, models.Wrap(models.KindUnexpected, "failed to update resume", err)
	}
	return existing, nil
}

func (s *ResumeService) Delete(ctx context.Context, p Principal, id string) error {
	user, err := resolveAccount(ctx, s.users, p)
	if err != nil {
		return err
	}

	if _, err := s.findOwned(ctx, user.ID.Hex(), id); err != nil {
		return err
	}

	if err := s.resumes.Delete(ctx, user.ID.Hex(), id); err != nil {
		return models.Wrap(models.KindUnexpected, "failed to delete resume", err)
	}
	return nil
}

// UploadImages pushes the provided images to the blob store and records the
// returned URLs on the resume. At least one image must be provided.
func (s *ResumeService) UploadImages(ctx context.Context, p Principal, id string, thumbnail, profileImage []byte) (map[string]string, error) {
	if len(thumbnail) == 0 && len(profileImage) == 0 {
		return nil, models.E(models.KindInvalidArgument, "at least one of thumbnail or profileImage is required")
	}

	user, err := resolveAccount(ctx, s.users, p)
	if err != nil {
		return nil, err
	}

	resume, err := s.findOwned(ctx, user.ID.Hex(), id)
	if err != nil {
		return nil, err
	}

	links := map[string]string{}

	if len(thumbnail) > 0 {
		url, err := s.blobs.Upload(ctx, thumbnail)
		if err != nil {
			return nil, models.Wrap(models.KindDependencyFailure, "thumbnail upload failed", err)
		}
		resume.ThumbnailLink = url
		links["thumbnailLink"] = url
	}

	if len(profileImage) > 0 {
		url, err := s.blobs.Upload(ctx, profileImage)
		if err != nil {
			return nil, models.Wrap(models.KindDependencyFailure, "profile image upload failed", err)
		}
		resume.ProfileInfo.ProfilePreviewURL = url
		links["profilePreviewUrl"] = url
	}

	if err := s.resumes.Update(ctx, resume); err != nil {
		return nil, models.Wrap(models.KindUnexpected, "failed to save image links", err)
	}
	return links, nil
}

// UploadImage pushes a standalone image (e.g. a profile picture chosen at
// registration) to the blob store and returns its URL.
func (s *ResumeService) UploadImage(ctx context.Context, data []byte) (string, error) {
	if len(data) == 0 {
		return "", models.E(models.KindInvalidArgument, "image is required")
	}
	url, err := s.blobs.Upload(ctx, data)
	if err != nil {
		return "", models.Wrap(models.KindDependencyFailure, "image upload failed", err)
	}
	return url, nil
}

func (s *ResumeService) findOwned(ctx context.Context, userID, id string) (*models.Resume, error) {
	resume, err := s.resumes.FindByUserAndID(ctx, userID, id)
	if err != nil {
		return nil, models.Wrap(models.KindUnexpected, "failed to look up resume", err)
	}
	if resume == nil {
		return nil, models.E(models.KindNotFound, "resume not found")
	}
	return resume, nil
}

func orEmpty[T any](in []T) []T {
	if in == nil {
		return []T{}
	}
	return in
}
