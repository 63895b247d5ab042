package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"strings"
	"time"

	"partyinvite/internal/domain"
)

// AvatarColors is the palette new guests draw their avatar colour from.
var AvatarColors = []string{
	"#FF6B6B", "#4ECDC4", "#45B7D1", "#FFA07A",
	"#98D8C8", "#F7DC6F", "#BB8FCE", "#85C1E2",
}

type guestService struct {
	guestRepo    domain.GuestRepository
	emailService domain.EmailService
	hostEmail    string
	timeout      time.Duration
	logger       *slog.Logger
}

// NewGuestService returns a GuestService. When hostEmail is empty no RSVP notification is sent.
func NewGuestService(
	guestRepo domain.GuestRepository,
	emailService domain.EmailService,
	hostEmail string,
	timeout time.Duration,
	logger *slog.Logger,
) domain.GuestService {
	return &guestService{
		guestRepo:    guestRepo,
		emailService: emailService,
		hostEmail:    hostEmail,
		timeout:      timeout,
		logger:       logger,
	}
}

func (s *guestService) RSVP(ctx context.Context, name string, attending bool) (*domain.Guest, bool, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, false, fmt.Errorf("%w: name is required", domain.ErrInvalidArgument)
	}

	guest, created, err := s.upsert(ctx, name, attending)
	if err != nil {
		return nil, false, err
	}
	s.notifyHost(ctx, guest, !created)
	return guest, created, nil
}

func (s *guestService) upsert(ctx context.Context, name string, attending bool) (*domain.Guest, bool, error) {
	ctx, cancel := withTimeout(ctx, s.timeout)
	defer cancel()

	existing, err := s.guestRepo.GetByName(ctx, name)
	if err == nil {
		return s.updateAttending(ctx, existing, attending)
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return nil, false, storeErr("get guest", err)
	}

	guest := domain.NewGuest(name, attending, randomAvatarColor())
	guest.CreatedAt = time.Now().UTC()
	if err := s.guestRepo.Create(ctx, guest); err != nil {
		if !errors.Is(err, domain.ErrAlreadyExists) {
			return nil, false, storeErr("create guest", err)
		}
		// A concurrent RSVP with the same name won; update that row instead.
		existing, err := s.guestRepo.GetByName(ctx, name)
		if err != nil {
			return nil, false, storeErr("get guest", err)
		}
		return s.updateAttending(ctx, existing, attending)
	}
	return guest, true, nil
}

func (s *guestService) updateAttending(ctx context.Context, g *domain.Guest, attending bool) (*domain.Guest, bool, error) {
	if err := s.guestRepo.UpdateAttending(ctx, g.ID, attending); err != nil {
		return nil, false, storeErr("update guest", err)
	}
	g.Attending = attending
	return g, false, nil
}

func (s *guestService) notifyHost(ctx context.Context, g *domain.Guest, updated bool) {
	if s.hostEmail == "" || s.emailService == nil {
		return
	}
	ctx, cancel := withTimeout(ctx, s.timeout)
	defer cancel()

	err := s.emailService.SendRSVPNotification(ctx, &domain.RSVPNotificationEmailData{
		HostEmail: s.hostEmail,
		GuestName: g.Name,
		Attending: g.Attending,
		Updated:   updated,
	})
	if err != nil {
		s.logger.WarnContext(ctx, "rsvp notification failed", "guest_id", g.ID, "err", err)
	}
}

func (s *guestService) GetByName(ctx context.Context, name string) (*domain.Guest, error) {
	ctx, cancel := withTimeout(ctx, s.timeout)
	defer cancel()

	g, err := s.guestRepo.GetByName(ctx, strings.TrimSpace(name))
	if err != nil {
		return nil, storeErr("get guest", err)
	}
	return g, nil
}

func (s *guestService) List(ctx context.Context) ([]*domain.Guest, error) {
	ctx, cancel := withTimeout(ctx, s.timeout)
	defer cancel()

	guests, err := s.guestRepo.List(ctx)
	if err != nil {
		return nil, storeErr("list guests", err)
	}
	return guests, nil
}

func randomAvatarColor() string {
	return AvatarColors[rand.IntN(len(AvatarColors))]
}
