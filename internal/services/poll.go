package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"partyinvite/internal/domain"
)

type pollService struct {
	pollRepo  domain.PollRepository
	guestRepo domain.GuestRepository
	timeout   time.Duration
	logger    *slog.Logger
}

// NewPollService returns the poll core. Every call is bounded by timeout.
func NewPollService(pollRepo domain.PollRepository, guestRepo domain.GuestRepository, timeout time.Duration, logger *slog.Logger) domain.PollService {
	return &pollService{
		pollRepo:  pollRepo,
		guestRepo: guestRepo,
		timeout:   timeout,
		logger:    logger,
	}
}

func (s *pollService) GetTally(ctx context.Context) ([]*domain.OptionTally, error) {
	ctx, cancel := withTimeout(ctx, s.timeout)
	defer cancel()

	rows, err := s.pollRepo.ListTallyRows(ctx)
	if err != nil {
		return nil, storeErr("list tally rows", err)
	}
	return buildTally(rows), nil
}

// ToggleVote removes the guest's vote for the option if present, otherwise casts it.
// The (guest_id, option_id) unique constraint decides races: when a concurrent call
// inserted the pair between our delete and insert, that vote is removed again.
func (s *pollService) ToggleVote(ctx context.Context, guestID, optionID int64) (domain.VoteAction, error) {
	if guestID <= 0 || optionID <= 0 {
		return "", fmt.Errorf("%w: guest_id and option_id are required", domain.ErrInvalidArgument)
	}

	ctx, cancel := withTimeout(ctx, s.timeout)
	defer cancel()

	if _, err := requireGuest(ctx, s.guestRepo, guestID); err != nil {
		return "", err
	}
	if _, err := s.pollRepo.GetOptionByID(ctx, optionID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return "", fmt.Errorf("%w: poll option %d does not exist", domain.ErrInvalidArgument, optionID)
		}
		return "", storeErr("get poll option", err)
	}

	deleted, err := s.pollRepo.DeleteVote(ctx, guestID, optionID)
	if err != nil {
		return "", storeErr("delete vote", err)
	}
	if deleted {
		return domain.VoteRemoved, nil
	}

	inserted, err := s.pollRepo.InsertVote(ctx, guestID, optionID)
	if err != nil {
		return "", storeErr("insert vote", err)
	}
	if inserted {
		return domain.VoteAdded, nil
	}

	s.logger.DebugContext(ctx, "vote toggle lost a race, removing concurrent vote", "guest_id", guestID, "option_id", optionID)
	if _, err := s.pollRepo.DeleteVote(ctx, guestID, optionID); err != nil {
		return "", storeErr("delete vote", err)
	}
	return domain.VoteRemoved, nil
}

// AddOption registers a guest-submitted option and casts the submitter's vote for it.
// The vote is best-effort: if it fails the option still exists, with zero votes.
func (s *pollService) AddOption(ctx context.Context, name, emoji string, guestID int64) (*domain.PollOption, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", domain.ErrInvalidArgument)
	}

	ctx, cancel := withTimeout(ctx, s.timeout)
	defer cancel()

	if _, err := requireGuest(ctx, s.guestRepo, guestID); err != nil {
		return nil, err
	}

	if _, err := s.pollRepo.GetOptionByName(ctx, name); err == nil {
		return nil, fmt.Errorf("%w: option %q already exists", domain.ErrAlreadyExists, name)
	} else if !errors.Is(err, domain.ErrNotFound) {
		return nil, storeErr("get poll option", err)
	}

	opt := &domain.PollOption{
		Name:      name,
		Emoji:     strings.TrimSpace(emoji),
		CreatedAt: time.Now().UTC(),
	}
	if err := s.pollRepo.CreateOption(ctx, opt); err != nil {
		if errors.Is(err, domain.ErrAlreadyExists) {
			return nil, fmt.Errorf("%w: option %q already exists", domain.ErrAlreadyExists, name)
		}
		return nil, storeErr("create poll option", err)
	}

	if inserted, err := s.pollRepo.InsertVote(ctx, guestID, opt.ID); err != nil || !inserted {
		s.logger.WarnContext(ctx, "auto-vote for new option failed", "option_id", opt.ID, "guest_id", guestID, "err", err)
	}
	return opt, nil
}

func (s *pollService) EnsureDefaultOptions(ctx context.Context) (int, error) {
	ctx, cancel := withTimeout(ctx, s.timeout)
	defer cancel()

	n, err := s.pollRepo.CountOptions(ctx)
	if err != nil {
		return 0, storeErr("count poll options", err)
	}
	if n > 0 {
		return 0, nil
	}

	created := 0
	for _, opt := range domain.DefaultPollOptions() {
		opt.CreatedAt = time.Now().UTC()
		if err := s.pollRepo.CreateOption(ctx, opt); err != nil {
			// Another instance seeded concurrently.
			if errors.Is(err, domain.ErrAlreadyExists) {
				continue
			}
			return created, storeErr("create default poll option", err)
		}
		created++
	}
	return created, nil
}
