package domain

import (
	"context"
	"time"
)

// Comment is a guestbook entry. Name and AvatarColor come from the author's guest row on reads.
// swagger:model Comment
type Comment struct {
	ID          int64     `json:"id"`
	GuestID     int64     `json:"guest_id"`
	Comment     string    `json:"comment"`
	CreatedAt   time.Time `json:"created_at"`
	Name        string    `json:"name"`
	AvatarColor string    `json:"avatar_color"`
}

// Photo is a shared photo link. Uploads are not handled; only the URL is stored.
// swagger:model Photo
type Photo struct {
	ID          int64     `json:"id"`
	GuestID     int64     `json:"guest_id"`
	PhotoURL    string    `json:"photo_url"`
	DriveID     string    `json:"drive_id"`
	CreatedAt   time.Time `json:"created_at"`
	Name        string    `json:"name"`
	AvatarColor string    `json:"avatar_color"`
}

// CommentRepository defines storage for comments.
type CommentRepository interface {
	Create(ctx context.Context, c *Comment) error
	// List returns comments with author name and avatar colour, newest first.
	List(ctx context.Context) ([]*Comment, error)
}

// PhotoRepository defines storage for photo links.
type PhotoRepository interface {
	Create(ctx context.Context, p *Photo) error
	// List returns photos with author name and avatar colour, newest first.
	List(ctx context.Context) ([]*Photo, error)
}

// CommentService posts and lists comments.
type CommentService interface {
	Add(ctx context.Context, guestID int64, text string) (*Comment, error)
	List(ctx context.Context) ([]*Comment, error)
}

// PhotoService shares and lists photo links.
type PhotoService interface {
	Add(ctx context.Context, guestID int64, photoURL, driveID string) (*Photo, error)
	List(ctx context.Context) ([]*Photo, error)
}
