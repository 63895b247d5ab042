package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"partyinvite/internal/domain"
)

type memCommentRepo struct {
	comments []*domain.Comment
	err      error
}

func (m *memCommentRepo) Create(ctx context.Context, c *domain.Comment) error {
	if m.err != nil {
		return m.err
	}
	c.ID = int64(len(m.comments) + 1)
	m.comments = append(m.comments, c)
	return nil
}

func (m *memCommentRepo) List(ctx context.Context) ([]*domain.Comment, error) {
	return m.comments, m.err
}

type memPhotoRepo struct {
	photos []*domain.Photo
	err    error
}

func (m *memPhotoRepo) Create(ctx context.Context, p *domain.Photo) error {
	if m.err != nil {
		return m.err
	}
	p.ID = int64(len(m.photos) + 1)
	m.photos = append(m.photos, p)
	return nil
}

func (m *memPhotoRepo) List(ctx context.Context) ([]*domain.Photo, error) {
	return m.photos, m.err
}

func TestCommentService_Add(t *testing.T) {
	ctx := context.Background()
	guests := newMemGuestRepo()
	alice := guests.add("Alice")

	tests := []struct {
		name    string
		guestID int64
		text    string
		wantErr error
	}{
		{name: "posted", guestID: alice.ID, text: " Skvelá párty! "},
		{name: "empty comment", guestID: alice.ID, text: "  ", wantErr: domain.ErrInvalidArgument},
		{name: "missing guest id", guestID: 0, text: "hi", wantErr: domain.ErrInvalidArgument},
		{name: "unknown guest", guestID: 404, text: "hi", wantErr: domain.ErrInvalidArgument},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &memCommentRepo{}
			svc := NewCommentService(repo, guests, testTimeout)

			c, err := svc.Add(ctx, tt.guestID, tt.text)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, repo.comments)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, int64(1), c.ID)
			assert.Equal(t, "Skvelá párty!", c.Comment)
			assert.Equal(t, "Alice", c.Name)
			assert.Equal(t, alice.AvatarColor, c.AvatarColor)
		})
	}
}

func TestPhotoService_Add(t *testing.T) {
	ctx := context.Background()
	guests := newMemGuestRepo()
	alice := guests.add("Alice")

	t.Run("shared", func(t *testing.T) {
		repo := &memPhotoRepo{}
		svc := NewPhotoService(repo, guests, testTimeout)

		p, err := svc.Add(ctx, alice.ID, "https://drive.example.com/p/1", "abc123")
		require.NoError(t, err)
		assert.Equal(t, int64(1), p.ID)
		assert.Equal(t, "abc123", p.DriveID)
		assert.Equal(t, "Alice", p.Name)
	})

	t.Run("missing url", func(t *testing.T) {
		svc := NewPhotoService(&memPhotoRepo{}, guests, testTimeout)
		_, err := svc.Add(ctx, alice.ID, "", "")
		require.ErrorIs(t, err, domain.ErrInvalidArgument)
	})

	t.Run("store failure", func(t *testing.T) {
		svc := NewPhotoService(&memPhotoRepo{err: context.DeadlineExceeded}, guests, testTimeout)
		_, err := svc.List(ctx)
		require.ErrorIs(t, err, domain.ErrStoreUnavailable)
	})
}
