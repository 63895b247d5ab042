package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"partyinvite/internal/domain"
)

type commentService struct {
	commentRepo domain.CommentRepository
	guestRepo   domain.GuestRepository
	timeout     time.Duration
}

// NewCommentService returns a CommentService.
func NewCommentService(commentRepo domain.CommentRepository, guestRepo domain.GuestRepository, timeout time.Duration) domain.CommentService {
	return &commentService{commentRepo: commentRepo, guestRepo: guestRepo, timeout: timeout}
}

func (s *commentService) Add(ctx context.Context, guestID int64, text string) (*domain.Comment, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, fmt.Errorf("%w: comment is required", domain.ErrInvalidArgument)
	}

	ctx, cancel := withTimeout(ctx, s.timeout)
	defer cancel()

	guest, err := requireGuest(ctx, s.guestRepo, guestID)
	if err != nil {
		return nil, err
	}
	c := &domain.Comment{
		GuestID:     guestID,
		Comment:     text,
		CreatedAt:   time.Now().UTC(),
		Name:        guest.Name,
		AvatarColor: guest.AvatarColor,
	}
	if err := s.commentRepo.Create(ctx, c); err != nil {
		return nil, storeErr("create comment", err)
	}
	return c, nil
}

func (s *commentService) List(ctx context.Context) ([]*domain.Comment, error) {
	ctx, cancel := withTimeout(ctx, s.timeout)
	defer cancel()

	comments, err := s.commentRepo.List(ctx)
	if err != nil {
		return nil, storeErr("list comments", err)
	}
	return comments, nil
}

type photoService struct {
	photoRepo domain.PhotoRepository
	guestRepo domain.GuestRepository
	timeout   time.Duration
}

// NewPhotoService returns a PhotoService.
func NewPhotoService(photoRepo domain.PhotoRepository, guestRepo domain.GuestRepository, timeout time.Duration) domain.PhotoService {
	return &photoService{photoRepo: photoRepo, guestRepo: guestRepo, timeout: timeout}
}

func (s *photoService) Add(ctx context.Context, guestID int64, photoURL, driveID string) (*domain.Photo, error) {
	photoURL = strings.TrimSpace(photoURL)
	if photoURL == "" {
		return nil, fmt.Errorf("%w: photo_url is required", domain.ErrInvalidArgument)
	}

	ctx, cancel := withTimeout(ctx, s.timeout)
	defer cancel()

	guest, err := requireGuest(ctx, s.guestRepo, guestID)
	if err != nil {
		return nil, err
	}
	p := &domain.Photo{
		GuestID:     guestID,
		PhotoURL:    photoURL,
		DriveID:     strings.TrimSpace(driveID),
		CreatedAt:   time.Now().UTC(),
		Name:        guest.Name,
		AvatarColor: guest.AvatarColor,
	}
	if err := s.photoRepo.Create(ctx, p); err != nil {
		return nil, storeErr("create photo", err)
	}
	return p, nil
}

func (s *photoService) List(ctx context.Context) ([]*domain.Photo, error) {
	ctx, cancel := withTimeout(ctx, s.timeout)
	defer cancel()

	photos, err := s.photoRepo.List(ctx)
	if err != nil {
		return nil, storeErr("list photos", err)
	}
	return photos, nil
}
