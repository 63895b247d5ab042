package domain

import (
	"context"
	"time"
)

// Backup is the whole-dataset export document. Row fields also accept the SQLite encodings
// (0/1 booleans, "2006-01-02 15:04:05" timestamps) found in exports taken from party.db.
type Backup struct {
	Timestamp   time.Time          `json:"timestamp"`
	Guests      []BackupGuest      `json:"guests"`
	Comments    []BackupComment    `json:"comments"`
	Photos      []BackupPhoto      `json:"photos"`
	PollOptions []BackupPollOption `json:"poll_options"`
	PollVotes   []BackupPollVote   `json:"poll_votes"`
}

type BackupGuest struct {
	ID          int64      `json:"id"`
	Name        string     `json:"name"`
	Attending   BackupBool `json:"attending"`
	AvatarColor *string    `json:"avatar_color"`
	CreatedAt   BackupTime `json:"created_at"`
}

type BackupComment struct {
	ID        int64      `json:"id"`
	GuestID   int64      `json:"guest_id"`
	Comment   string     `json:"comment"`
	CreatedAt BackupTime `json:"created_at"`
}

type BackupPhoto struct {
	ID        int64      `json:"id"`
	GuestID   int64      `json:"guest_id"`
	PhotoURL  string     `json:"photo_url"`
	DriveID   *string    `json:"drive_id"`
	CreatedAt BackupTime `json:"created_at"`
}

type BackupPollOption struct {
	ID        int64      `json:"id"`
	Name      string     `json:"name"`
	Emoji     *string    `json:"emoji"`
	CreatedAt BackupTime `json:"created_at"`
}

type BackupPollVote struct {
	ID        int64      `json:"id"`
	GuestID   int64      `json:"guest_id"`
	OptionID  int64      `json:"option_id"`
	CreatedAt BackupTime `json:"created_at"`
}

// BackupRepository dumps and replaces every table.
type BackupRepository interface {
	Dump(ctx context.Context) (*Backup, error)
	// Restore wipes all tables and inserts the backup rows with their original ids, atomically.
	Restore(ctx context.Context, b *Backup) error
}

// BackupService exports and restores the dataset.
type BackupService interface {
	Export(ctx context.Context) (*Backup, error)
	// Restore requires b.Guests to be present (it may be empty) and returns ErrInvalidArgument otherwise.
	Restore(ctx context.Context, b *Backup) error
}
