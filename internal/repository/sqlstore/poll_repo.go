package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"partyinvite/internal/domain"
)

type pollRepository struct {
	DB *sql.DB
}

// NewPollRepository returns a domain.PollRepository backed by db.
func NewPollRepository(db *sql.DB) domain.PollRepository {
	return &pollRepository{DB: db}
}

func (r *pollRepository) CreateOption(ctx context.Context, opt *domain.PollOption) error {
	if opt.CreatedAt.IsZero() {
		opt.CreatedAt = time.Now().UTC()
	}
	query := `
		INSERT INTO poll_options (name, emoji, created_at)
		VALUES ($1, $2, $3)
		RETURNING id
	`
	err := r.DB.QueryRowContext(ctx, query, opt.Name, nullString(opt.Emoji), opt.CreatedAt).Scan(&opt.ID)
	return classify(err)
}

func (r *pollRepository) GetOptionByID(ctx context.Context, id int64) (*domain.PollOption, error) {
	return r.getOption(ctx, `SELECT id, name, COALESCE(emoji, '') FROM poll_options WHERE id = $1`, id)
}

func (r *pollRepository) GetOptionByName(ctx context.Context, name string) (*domain.PollOption, error) {
	return r.getOption(ctx, `SELECT id, name, COALESCE(emoji, '') FROM poll_options WHERE LOWER(name) = LOWER($1)`, name)
}

func (r *pollRepository) getOption(ctx context.Context, query string, arg any) (*domain.PollOption, error) {
	opt := &domain.PollOption{}
	if err := r.DB.QueryRowContext(ctx, query, arg).Scan(&opt.ID, &opt.Name, &opt.Emoji); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return opt, nil
}

func (r *pollRepository) CountOptions(ctx context.Context) (int, error) {
	var n int
	err := r.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM poll_options`).Scan(&n)
	return n, err
}

func (r *pollRepository) ListTallyRows(ctx context.Context) ([]domain.TallyRow, error) {
	query := `
		SELECT po.id, po.name, COALESCE(po.emoji, ''), pv.id, g.name
		FROM poll_options po
		LEFT JOIN poll_votes pv ON pv.option_id = po.id
		LEFT JOIN guests g ON g.id = pv.guest_id
		ORDER BY po.id, pv.created_at, pv.id
	`
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.TallyRow
	for rows.Next() {
		var (
			row       domain.TallyRow
			voteID    sql.NullInt64
			voterName sql.NullString
		)
		if err := rows.Scan(&row.OptionID, &row.OptionName, &row.Emoji, &voteID, &voterName); err != nil {
			return nil, err
		}
		if voteID.Valid {
			row.VoteID = &voteID.Int64
		}
		if voterName.Valid {
			row.VoterName = &voterName.String
		}
		out = append(out, row)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// InsertVote relies on UNIQUE (guest_id, option_id): a pair that already has a vote inserts nothing.
func (r *pollRepository) InsertVote(ctx context.Context, guestID, optionID int64) (bool, error) {
	query := `
		INSERT INTO poll_votes (guest_id, option_id, created_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (guest_id, option_id) DO NOTHING
	`
	result, err := r.DB.ExecContext(ctx, query, guestID, optionID, time.Now().UTC())
	if err != nil {
		err = classify(err)
		if errors.Is(err, domain.ErrAlreadyExists) {
			return false, nil
		}
		return false, err
	}
	n, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *pollRepository) DeleteVote(ctx context.Context, guestID, optionID int64) (bool, error) {
	result, err := r.DB.ExecContext(ctx, `DELETE FROM poll_votes WHERE guest_id = $1 AND option_id = $2`, guestID, optionID)
	if err != nil {
		return false, err
	}
	n, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
