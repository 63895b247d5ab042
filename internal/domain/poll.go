package domain

import (
	"context"
	"time"
)

// PollOption is one choice in the food poll. Name is unique case-insensitively.
// swagger:model PollOption
type PollOption struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Emoji     string    `json:"emoji"`
	CreatedAt time.Time `json:"-"`
}

// PollVote links a guest to an option. At most one row exists per (GuestID, OptionID).
type PollVote struct {
	ID        int64
	GuestID   int64
	OptionID  int64
	CreatedAt time.Time
}

// VoteAction is the outcome of a toggle.
type VoteAction string

const (
	VoteAdded   VoteAction = "added"
	VoteRemoved VoteAction = "removed"
)

// OptionTally is the derived per-option result. It is recomputed on every read.
// swagger:model OptionTally
type OptionTally struct {
	ID        int64    `json:"id"`
	Name      string   `json:"name"`
	Emoji     string   `json:"emoji"`
	VoteCount int      `json:"vote_count"`
	Voters    []string `json:"voters"`
	Pct       float64  `json:"pct"`
}

// TallyRow is one row of the option × vote × guest outer join.
// VoteID is nil for an option without votes; VoterName is nil when the vote's guest cannot be resolved.
type TallyRow struct {
	OptionID   int64
	OptionName string
	Emoji      string
	VoteID     *int64
	VoterName  *string
}

// DefaultPollOptions are seeded when the poll has no options at all.
func DefaultPollOptions() []*PollOption {
	return []*PollOption{
		{Name: "Pizza", Emoji: "🍕"},
		{Name: "Sushi", Emoji: "🍣"},
		{Name: "Burger", Emoji: "🍔"},
		{Name: "Guláš", Emoji: "🍲"},
	}
}

// PollRepository defines storage for poll options and votes.
type PollRepository interface {
	// CreateOption inserts the option and sets ID. A case-insensitive name clash returns ErrAlreadyExists.
	CreateOption(ctx context.Context, opt *PollOption) error
	GetOptionByID(ctx context.Context, id int64) (*PollOption, error)
	// GetOptionByName matches name case-insensitively.
	GetOptionByName(ctx context.Context, name string) (*PollOption, error)
	CountOptions(ctx context.Context) (int, error)
	// ListTallyRows returns every option joined with its votes and voter names,
	// ordered by option id and then by vote insertion.
	ListTallyRows(ctx context.Context) ([]TallyRow, error)
	// InsertVote inserts the (guest, option) vote. inserted is false when the pair already had a vote.
	InsertVote(ctx context.Context, guestID, optionID int64) (inserted bool, err error)
	// DeleteVote removes the (guest, option) vote. deleted is false when there was none.
	DeleteVote(ctx context.Context, guestID, optionID int64) (deleted bool, err error)
}

// PollService is the poll core: tally, toggle voting and option registration.
type PollService interface {
	GetTally(ctx context.Context) ([]*OptionTally, error)
	ToggleVote(ctx context.Context, guestID, optionID int64) (VoteAction, error)
	AddOption(ctx context.Context, name, emoji string, guestID int64) (*PollOption, error)
	// EnsureDefaultOptions seeds DefaultPollOptions when no option exists. It returns how many were created.
	EnsureDefaultOptions(ctx context.Context) (int, error)
}
