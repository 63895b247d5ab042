package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"partyinvite/internal/domain"
)

// storeErr passes domain errors through and marks everything else, including deadline expiry, as ErrStoreUnavailable.
func storeErr(op string, err error) error {
	if errors.Is(err, domain.ErrInvalidArgument) ||
		errors.Is(err, domain.ErrAlreadyExists) ||
		errors.Is(err, domain.ErrNotFound) {
		return err
	}
	return fmt.Errorf("%w: %s: %w", domain.ErrStoreUnavailable, op, err)
}

func withTimeout(ctx context.Context, d time.Duration) (context.Context, context.CancelFunc) {
	if d <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, d)
}

// requireGuest turns a missing guest into ErrInvalidArgument: mutations reference guests by id.
func requireGuest(ctx context.Context, guests domain.GuestRepository, guestID int64) (*domain.Guest, error) {
	if guestID <= 0 {
		return nil, fmt.Errorf("%w: guest_id is required", domain.ErrInvalidArgument)
	}
	g, err := guests.GetByID(ctx, guestID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("%w: guest %d does not exist", domain.ErrInvalidArgument, guestID)
		}
		return nil, storeErr("get guest", err)
	}
	return g, nil
}
