package sqlstore

import (
	"context"
	"database/sql"
	"time"

	"partyinvite/internal/domain"
)

type commentRepository struct {
	DB *sql.DB
}

// NewCommentRepository returns a domain.CommentRepository backed by db.
func NewCommentRepository(db *sql.DB) domain.CommentRepository {
	return &commentRepository{DB: db}
}

func (r *commentRepository) Create(ctx context.Context, c *domain.Comment) error {
	if c.CreatedAt.IsZero() {
		c.CreatedAt = time.Now().UTC()
	}
	query := `
		INSERT INTO comments (guest_id, comment, created_at)
		VALUES ($1, $2, $3)
		RETURNING id
	`
	return classify(r.DB.QueryRowContext(ctx, query, c.GuestID, c.Comment, c.CreatedAt).Scan(&c.ID))
}

func (r *commentRepository) List(ctx context.Context) ([]*domain.Comment, error) {
	query := `
		SELECT c.id, c.guest_id, c.comment, c.created_at, g.name, COALESCE(g.avatar_color, '')
		FROM comments c
		JOIN guests g ON c.guest_id = g.id
		ORDER BY c.created_at DESC, c.id DESC
	`
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	comments := []*domain.Comment{}
	for rows.Next() {
		c := &domain.Comment{}
		if err := rows.Scan(&c.ID, &c.GuestID, &c.Comment, &c.CreatedAt, &c.Name, &c.AvatarColor); err != nil {
			return nil, err
		}
		comments = append(comments, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return comments, nil
}

type photoRepository struct {
	DB *sql.DB
}

// NewPhotoRepository returns a domain.PhotoRepository backed by db.
func NewPhotoRepository(db *sql.DB) domain.PhotoRepository {
	return &photoRepository{DB: db}
}

func (r *photoRepository) Create(ctx context.Context, p *domain.Photo) error {
	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now().UTC()
	}
	query := `
		INSERT INTO photos (guest_id, photo_url, drive_id, created_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`
	return classify(r.DB.QueryRowContext(ctx, query, p.GuestID, p.PhotoURL, nullString(p.DriveID), p.CreatedAt).Scan(&p.ID))
}

func (r *photoRepository) List(ctx context.Context) ([]*domain.Photo, error) {
	query := `
		SELECT p.id, p.guest_id, p.photo_url, COALESCE(p.drive_id, ''), p.created_at, g.name, COALESCE(g.avatar_color, '')
		FROM photos p
		JOIN guests g ON p.guest_id = g.id
		ORDER BY p.created_at DESC, p.id DESC
	`
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	photos := []*domain.Photo{}
	for rows.Next() {
		p := &domain.Photo{}
		if err := rows.Scan(&p.ID, &p.GuestID, &p.PhotoURL, &p.DriveID, &p.CreatedAt, &p.Name, &p.AvatarColor); err != nil {
			return nil, err
		}
		photos = append(photos, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return photos, nil
}
