package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"partyinvite/internal/domain"
)

type guestRepository struct {
	DB *sql.DB
}

// NewGuestRepository returns a domain.GuestRepository backed by db.
func NewGuestRepository(db *sql.DB) domain.GuestRepository {
	return &guestRepository{DB: db}
}

func (r *guestRepository) Create(ctx context.Context, g *domain.Guest) error {
	if g.CreatedAt.IsZero() {
		g.CreatedAt = time.Now().UTC()
	}
	query := `
		INSERT INTO guests (name, attending, avatar_color, created_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`
	err := r.DB.QueryRowContext(ctx, query, g.Name, g.Attending, nullString(g.AvatarColor), g.CreatedAt).Scan(&g.ID)
	return classify(err)
}

func (r *guestRepository) GetByID(ctx context.Context, id int64) (*domain.Guest, error) {
	query := `
		SELECT id, name, attending, COALESCE(avatar_color, ''), created_at
		FROM guests
		WHERE id = $1
	`
	return r.getOne(ctx, query, id)
}

func (r *guestRepository) GetByName(ctx context.Context, name string) (*domain.Guest, error) {
	query := `
		SELECT id, name, attending, COALESCE(avatar_color, ''), created_at
		FROM guests
		WHERE LOWER(name) = LOWER($1)
	`
	return r.getOne(ctx, query, name)
}

func (r *guestRepository) getOne(ctx context.Context, query string, arg any) (*domain.Guest, error) {
	g := &domain.Guest{}
	err := r.DB.QueryRowContext(ctx, query, arg).Scan(&g.ID, &g.Name, &g.Attending, &g.AvatarColor, &g.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return g, nil
}

func (r *guestRepository) UpdateAttending(ctx context.Context, id int64, attending bool) error {
	result, err := r.DB.ExecContext(ctx, `UPDATE guests SET attending = $1 WHERE id = $2`, attending, id)
	if err != nil {
		return err
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *guestRepository) List(ctx context.Context) ([]*domain.Guest, error) {
	query := `
		SELECT id, name, attending, COALESCE(avatar_color, ''), created_at
		FROM guests
		ORDER BY created_at DESC, id DESC
	`
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	guests := []*domain.Guest{}
	for rows.Next() {
		g := &domain.Guest{}
		if err := rows.Scan(&g.ID, &g.Name, &g.Attending, &g.AvatarColor, &g.CreatedAt); err != nil {
			return nil, err
		}
		guests = append(guests, g)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return guests, nil
}
