package services

import (
	"context"
	"io"
	"log/slog"
	"sort"
	"strings"
	"sync"
	"time"

	"partyinvite/internal/domain"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// memGuestRepo implements domain.GuestRepository in memory with a case-insensitive unique name.
type memGuestRepo struct {
	mu     sync.Mutex
	byID   map[int64]*domain.Guest
	nextID int64
	err    error
}

func newMemGuestRepo() *memGuestRepo {
	return &memGuestRepo{byID: make(map[int64]*domain.Guest)}
}

func (m *memGuestRepo) add(name string) *domain.Guest {
	g := domain.NewGuest(name, true, "#4ECDC4")
	if err := m.Create(context.Background(), g); err != nil {
		panic(err)
	}
	return g
}

func (m *memGuestRepo) Create(ctx context.Context, g *domain.Guest) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	for _, existing := range m.byID {
		if strings.EqualFold(existing.Name, g.Name) {
			return domain.ErrAlreadyExists
		}
	}
	m.nextID++
	g.ID = m.nextID
	cp := *g
	m.byID[g.ID] = &cp
	return nil
}

func (m *memGuestRepo) GetByID(ctx context.Context, id int64) (*domain.Guest, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	g, ok := m.byID[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := *g
	return &cp, nil
}

func (m *memGuestRepo) GetByName(ctx context.Context, name string) (*domain.Guest, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	for _, g := range m.byID {
		if strings.EqualFold(g.Name, name) {
			cp := *g
			return &cp, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (m *memGuestRepo) UpdateAttending(ctx context.Context, id int64, attending bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	g, ok := m.byID[id]
	if !ok {
		return domain.ErrNotFound
	}
	g.Attending = attending
	return nil
}

func (m *memGuestRepo) List(ctx context.Context) ([]*domain.Guest, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	out := make([]*domain.Guest, 0, len(m.byID))
	for _, g := range m.byID {
		cp := *g
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, nil
}

type memVote struct {
	id       int64
	guestID  int64
	optionID int64
}

// memPollRepo implements domain.PollRepository in memory. Votes keep the (guest, option) uniqueness rule.
type memPollRepo struct {
	mu      sync.Mutex
	guests  *memGuestRepo
	options []*domain.PollOption
	votes   []memVote
	nextID  int64

	listErr       error
	insertVoteErr error
	createErr     error
	// blockList makes ListTallyRows wait for ctx to end.
	blockList bool
	// beforeInsert runs before InsertVote takes the lock, to simulate a concurrent caller.
	beforeInsert func()
	deleteCalls  int
}

func newMemPollRepo(guests *memGuestRepo) *memPollRepo {
	return &memPollRepo{guests: guests}
}

func (m *memPollRepo) addOption(name, emoji string) *domain.PollOption {
	opt := &domain.PollOption{Name: name, Emoji: emoji}
	if err := m.CreateOption(context.Background(), opt); err != nil {
		panic(err)
	}
	return opt
}

func (m *memPollRepo) vote(guestID, optionID int64) {
	if _, err := m.InsertVote(context.Background(), guestID, optionID); err != nil {
		panic(err)
	}
}

func (m *memPollRepo) voteCount(guestID, optionID int64) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for _, v := range m.votes {
		if v.guestID == guestID && v.optionID == optionID {
			n++
		}
	}
	return n
}

func (m *memPollRepo) CreateOption(ctx context.Context, opt *domain.PollOption) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.createErr != nil {
		return m.createErr
	}
	for _, o := range m.options {
		if strings.EqualFold(o.Name, opt.Name) {
			return domain.ErrAlreadyExists
		}
	}
	m.nextID++
	opt.ID = m.nextID
	cp := *opt
	m.options = append(m.options, &cp)
	return nil
}

func (m *memPollRepo) GetOptionByID(ctx context.Context, id int64) (*domain.PollOption, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, o := range m.options {
		if o.ID == id {
			cp := *o
			return &cp, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (m *memPollRepo) GetOptionByName(ctx context.Context, name string) (*domain.PollOption, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, o := range m.options {
		if strings.EqualFold(o.Name, name) {
			cp := *o
			return &cp, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (m *memPollRepo) CountOptions(ctx context.Context) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.options), nil
}

func (m *memPollRepo) ListTallyRows(ctx context.Context) ([]domain.TallyRow, error) {
	if m.blockList {
		<-ctx.Done()
		return nil, ctx.Err()
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.listErr != nil {
		return nil, m.listErr
	}
	var rows []domain.TallyRow
	for _, o := range m.options {
		matched := false
		for _, v := range m.votes {
			if v.optionID != o.ID {
				continue
			}
			matched = true
			voteID := v.id
			row := domain.TallyRow{OptionID: o.ID, OptionName: o.Name, Emoji: o.Emoji, VoteID: &voteID}
			if g, err := m.guests.GetByID(ctx, v.guestID); err == nil {
				name := g.Name
				row.VoterName = &name
			}
			rows = append(rows, row)
		}
		if !matched {
			rows = append(rows, domain.TallyRow{OptionID: o.ID, OptionName: o.Name, Emoji: o.Emoji})
		}
	}
	return rows, nil
}

func (m *memPollRepo) InsertVote(ctx context.Context, guestID, optionID int64) (bool, error) {
	if m.beforeInsert != nil {
		m.beforeInsert()
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.insertVoteErr != nil {
		return false, m.insertVoteErr
	}
	for _, v := range m.votes {
		if v.guestID == guestID && v.optionID == optionID {
			return false, nil
		}
	}
	m.nextID++
	m.votes = append(m.votes, memVote{id: m.nextID, guestID: guestID, optionID: optionID})
	return true, nil
}

func (m *memPollRepo) DeleteVote(ctx context.Context, guestID, optionID int64) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.deleteCalls++
	for i, v := range m.votes {
		if v.guestID == guestID && v.optionID == optionID {
			m.votes = append(m.votes[:i], m.votes[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

// fakeEmailService records RSVP notifications. With stall set it blocks until ctx is done.
type fakeEmailService struct {
	mu    sync.Mutex
	sent  []*domain.RSVPNotificationEmailData
	err   error
	stall bool
}

func (f *fakeEmailService) SendRSVPNotification(ctx context.Context, data *domain.RSVPNotificationEmailData) error {
	if f.stall {
		<-ctx.Done()
		return ctx.Err()
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, data)
	return nil
}

const testTimeout = time.Second
