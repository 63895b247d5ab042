package domain

import (
	"context"
	"time"
)

// Guest is a person who RSVPed. Name is unique case-insensitively.
// swagger:model Guest
type Guest struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Attending   bool      `json:"attending"`
	AvatarColor string    `json:"avatar_color"`
	CreatedAt   time.Time `json:"created_at"`
}

// NewGuest returns a new Guest. ID and CreatedAt are set by the repository on create.
func NewGuest(name string, attending bool, avatarColor string) *Guest {
	return &Guest{
		Name:        name,
		Attending:   attending,
		AvatarColor: avatarColor,
	}
}

// GuestRepository defines storage for guests.
type GuestRepository interface {
	// Create inserts the guest and sets ID and CreatedAt. A case-insensitive name clash returns ErrAlreadyExists.
	Create(ctx context.Context, g *Guest) error
	GetByID(ctx context.Context, id int64) (*Guest, error)
	// GetByName matches name case-insensitively.
	GetByName(ctx context.Context, name string) (*Guest, error)
	UpdateAttending(ctx context.Context, id int64, attending bool) error
	List(ctx context.Context) ([]*Guest, error)
}

// GuestService defines the RSVP flow and guest lookups.
type GuestService interface {
	// RSVP creates the guest or updates the attending flag of the existing one with the same name.
	// created reports whether a new guest row was inserted.
	RSVP(ctx context.Context, name string, attending bool) (guest *Guest, created bool, err error)
	GetByName(ctx context.Context, name string) (*Guest, error)
	List(ctx context.Context) ([]*Guest, error)
}
