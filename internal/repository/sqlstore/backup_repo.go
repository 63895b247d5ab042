package sqlstore

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"partyinvite/internal/domain"
)

type backupRepository struct {
	DB      *sql.DB
	Dialect Dialect
}

// NewBackupRepository returns a domain.BackupRepository backed by db.
func NewBackupRepository(db *sql.DB, dialect Dialect) domain.BackupRepository {
	return &backupRepository{DB: db, Dialect: dialect}
}

// Tables in foreign key order: parents first. Deletes run in reverse.
var backupTables = []string{"guests", "comments", "photos", "poll_options", "poll_votes"}

func (r *backupRepository) Dump(ctx context.Context) (*domain.Backup, error) {
	b := &domain.Backup{
		Timestamp:   time.Now().UTC(),
		Guests:      []domain.BackupGuest{},
		Comments:    []domain.BackupComment{},
		Photos:      []domain.BackupPhoto{},
		PollOptions: []domain.BackupPollOption{},
		PollVotes:   []domain.BackupPollVote{},
	}

	err := r.each(ctx, `SELECT id, name, attending, avatar_color, created_at FROM guests ORDER BY id`, func(rows *sql.Rows) error {
		var (
			g         domain.BackupGuest
			attending bool
			color     sql.NullString
			created   sql.NullTime
		)
		if err := rows.Scan(&g.ID, &g.Name, &attending, &color, &created); err != nil {
			return err
		}
		g.Attending = domain.BackupBool(attending)
		g.AvatarColor = stringPtr(color)
		g.CreatedAt = domain.BackupTime{Time: created.Time}
		b.Guests = append(b.Guests, g)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("dump guests: %w", err)
	}

	err = r.each(ctx, `SELECT id, guest_id, comment, created_at FROM comments ORDER BY id`, func(rows *sql.Rows) error {
		var (
			c       domain.BackupComment
			created sql.NullTime
		)
		if err := rows.Scan(&c.ID, &c.GuestID, &c.Comment, &created); err != nil {
			return err
		}
		c.CreatedAt = domain.BackupTime{Time: created.Time}
		b.Comments = append(b.Comments, c)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("dump comments: %w", err)
	}

	err = r.each(ctx, `SELECT id, guest_id, photo_url, drive_id, created_at FROM photos ORDER BY id`, func(rows *sql.Rows) error {
		var (
			p       domain.BackupPhoto
			driveID sql.NullString
			created sql.NullTime
		)
		if err := rows.Scan(&p.ID, &p.GuestID, &p.PhotoURL, &driveID, &created); err != nil {
			return err
		}
		p.DriveID = stringPtr(driveID)
		p.CreatedAt = domain.BackupTime{Time: created.Time}
		b.Photos = append(b.Photos, p)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("dump photos: %w", err)
	}

	err = r.each(ctx, `SELECT id, name, emoji, created_at FROM poll_options ORDER BY id`, func(rows *sql.Rows) error {
		var (
			o       domain.BackupPollOption
			emoji   sql.NullString
			created sql.NullTime
		)
		if err := rows.Scan(&o.ID, &o.Name, &emoji, &created); err != nil {
			return err
		}
		o.Emoji = stringPtr(emoji)
		o.CreatedAt = domain.BackupTime{Time: created.Time}
		b.PollOptions = append(b.PollOptions, o)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("dump poll options: %w", err)
	}

	err = r.each(ctx, `SELECT id, guest_id, option_id, created_at FROM poll_votes ORDER BY id`, func(rows *sql.Rows) error {
		var (
			v       domain.BackupPollVote
			created sql.NullTime
		)
		if err := rows.Scan(&v.ID, &v.GuestID, &v.OptionID, &created); err != nil {
			return err
		}
		v.CreatedAt = domain.BackupTime{Time: created.Time}
		b.PollVotes = append(b.PollVotes, v)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("dump poll votes: %w", err)
	}

	return b, nil
}

func (r *backupRepository) each(ctx context.Context, query string, scan func(*sql.Rows) error) error {
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return err
	}
	defer rows.Close()
	for rows.Next() {
		if err := scan(rows); err != nil {
			return err
		}
	}
	return rows.Err()
}

func (r *backupRepository) Restore(ctx context.Context, b *domain.Backup) error {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin restore: %w", err)
	}
	defer tx.Rollback()

	for i := len(backupTables) - 1; i >= 0; i-- {
		if _, err := tx.ExecContext(ctx, "DELETE FROM "+backupTables[i]); err != nil {
			return fmt.Errorf("clear %s: %w", backupTables[i], err)
		}
	}

	for _, g := range b.Guests {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO guests (id, name, attending, avatar_color, created_at) VALUES ($1, $2, $3, $4, $5)`,
			g.ID, g.Name, bool(g.Attending), derefString(g.AvatarColor), createdAt(g.CreatedAt.Time))
		if err != nil {
			return fmt.Errorf("restore guest %d: %w", g.ID, classify(err))
		}
	}
	for _, c := range b.Comments {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO comments (id, guest_id, comment, created_at) VALUES ($1, $2, $3, $4)`,
			c.ID, c.GuestID, c.Comment, createdAt(c.CreatedAt.Time))
		if err != nil {
			return fmt.Errorf("restore comment %d: %w", c.ID, classify(err))
		}
	}
	for _, p := range b.Photos {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO photos (id, guest_id, photo_url, drive_id, created_at) VALUES ($1, $2, $3, $4, $5)`,
			p.ID, p.GuestID, p.PhotoURL, derefString(p.DriveID), createdAt(p.CreatedAt.Time))
		if err != nil {
			return fmt.Errorf("restore photo %d: %w", p.ID, classify(err))
		}
	}
	for _, o := range b.PollOptions {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO poll_options (id, name, emoji, created_at) VALUES ($1, $2, $3, $4)`,
			o.ID, o.Name, derefString(o.Emoji), createdAt(o.CreatedAt.Time))
		if err != nil {
			return fmt.Errorf("restore poll option %d: %w", o.ID, classify(err))
		}
	}
	for _, v := range b.PollVotes {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO poll_votes (id, guest_id, option_id, created_at) VALUES ($1, $2, $3, $4)`,
			v.ID, v.GuestID, v.OptionID, createdAt(v.CreatedAt.Time))
		if err != nil {
			return fmt.Errorf("restore poll vote %d: %w", v.ID, classify(err))
		}
	}

	// Postgres sequences do not follow explicit ids; SQLite AUTOINCREMENT does.
	if r.Dialect == DialectPostgres {
		for _, table := range backupTables {
			query := fmt.Sprintf(
				`SELECT setval(pg_get_serial_sequence('%s', 'id'), COALESCE(MAX(id), 0) + 1, false) FROM %s`,
				table, table)
			if _, err := tx.ExecContext(ctx, query); err != nil {
				return fmt.Errorf("reset %s sequence: %w", table, err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit restore: %w", err)
	}
	return nil
}

func stringPtr(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	s := ns.String
	return &s
}

func derefString(s *string) any {
	if s == nil {
		return nil
	}
	return *s
}

// createdAt substitutes the current time for rows exported without a timestamp.
func createdAt(t time.Time) time.Time {
	if t.IsZero() {
		return time.Now().UTC()
	}
	return t
}
