package sqlstore

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/require"

	"partyinvite/internal/domain"
)

func TestGuestRepository_Create(t *testing.T) {
	ctx := context.Background()
	created := time.Date(2025, 6, 1, 18, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		guest   *domain.Guest
		mock    func(mock sqlmock.Sqlmock)
		wantID  int64
		wantErr error
	}{
		{
			name:  "inserts and sets id",
			guest: &domain.Guest{Name: "Alice", Attending: true, AvatarColor: "#FF6B6B", CreatedAt: created},
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`INSERT INTO guests`).
					WithArgs("Alice", true, "#FF6B6B", created).
					WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(5)))
			},
			wantID: 5,
		},
		{
			name:  "empty avatar colour stored as NULL",
			guest: &domain.Guest{Name: "Bob", CreatedAt: created},
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`INSERT INTO guests`).
					WithArgs("Bob", false, nil, created).
					WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(6)))
			},
			wantID: 6,
		},
		{
			name:  "name clash",
			guest: &domain.Guest{Name: "alice", CreatedAt: created},
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`INSERT INTO guests`).
					WillReturnError(&pq.Error{Code: pgUniqueViolation})
			},
			wantErr: domain.ErrAlreadyExists,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()
			tt.mock(mock)
			err = NewGuestRepository(db).Create(ctx, tt.guest)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.wantID, tt.guest.ID)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestGuestRepository_GetByName(t *testing.T) {
	ctx := context.Background()
	created := time.Date(2025, 6, 1, 18, 0, 0, 0, time.UTC)

	t.Run("found", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()
		mock.ExpectQuery(`FROM guests\s+WHERE LOWER\(name\) = LOWER\(\$1\)`).
			WithArgs("ALICE").
			WillReturnRows(sqlmock.NewRows([]string{"id", "name", "attending", "avatar_color", "created_at"}).
				AddRow(int64(1), "Alice", true, "#4ECDC4", created))

		g, err := NewGuestRepository(db).GetByName(ctx, "ALICE")
		require.NoError(t, err)
		require.Equal(t, int64(1), g.ID)
		require.Equal(t, "Alice", g.Name)
		require.True(t, g.Attending)
		require.Equal(t, created, g.CreatedAt)
	})

	t.Run("not found", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()
		mock.ExpectQuery(`FROM guests`).WithArgs("Nobody").WillReturnError(sql.ErrNoRows)

		_, err = NewGuestRepository(db).GetByName(ctx, "Nobody")
		require.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestGuestRepository_UpdateAttending(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		mock    func(mock sqlmock.Sqlmock)
		wantErr error
	}{
		{
			name: "updated",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`UPDATE guests SET attending = \$1 WHERE id = \$2`).
					WithArgs(false, int64(2)).
					WillReturnResult(sqlmock.NewResult(0, 1))
			},
		},
		{
			name: "missing guest",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`UPDATE guests`).
					WithArgs(false, int64(2)).
					WillReturnResult(sqlmock.NewResult(0, 0))
			},
			wantErr: domain.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()
			tt.mock(mock)
			err = NewGuestRepository(db).UpdateAttending(ctx, 2, false)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
