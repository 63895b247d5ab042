package controllers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"partyinvite/internal/domain"
)

type mockGuestService struct {
	guest        *domain.Guest
	guests       []*domain.Guest
	err          error
	gotName      string
	gotAttending bool
}

func (m *mockGuestService) RSVP(ctx context.Context, name string, attending bool) (*domain.Guest, bool, error) {
	m.gotName, m.gotAttending = name, attending
	return m.guest, true, m.err
}

func (m *mockGuestService) GetByName(ctx context.Context, name string) (*domain.Guest, error) {
	m.gotName = name
	return m.guest, m.err
}

func (m *mockGuestService) List(ctx context.Context) ([]*domain.Guest, error) {
	return m.guests, m.err
}

func TestGuestController_RSVP(t *testing.T) {
	tests := []struct {
		name          string
		body          string
		wantStatus    int
		wantAttending bool
	}{
		{"attending", `{"name": "Alice", "attending": true}`, http.StatusOK, true},
		{"declining is a valid answer", `{"name": "Alice", "attending": false}`, http.StatusOK, false},
		{"missing attending", `{"name": "Alice"}`, http.StatusBadRequest, false},
		{"missing name", `{"attending": true}`, http.StatusBadRequest, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &mockGuestService{guest: &domain.Guest{ID: 1, Name: "Alice", AvatarColor: "#FF6B6B"}}
			ctrl := NewGuestController(testLogger(), svc)
			w := httptest.NewRecorder()

			ctrl.RSVP(w, httptest.NewRequest(http.MethodPost, "/api/rsvp", strings.NewReader(tt.body)))

			require.Equal(t, tt.wantStatus, w.Code)
			if tt.wantStatus == http.StatusOK {
				require.Equal(t, "Alice", svc.gotName)
				require.Equal(t, tt.wantAttending, svc.gotAttending)
				require.Contains(t, w.Body.String(), `"avatar_color":"#FF6B6B"`)
			}
		})
	}
}

func TestGuestController_GetGuest(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		svc := &mockGuestService{guest: &domain.Guest{ID: 1, Name: "Alice"}}
		mux := http.NewServeMux()
		mux.HandleFunc("GET /api/guest/{name}", NewGuestController(testLogger(), svc).GetGuest)
		w := httptest.NewRecorder()

		mux.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/guest/alice", nil))

		require.Equal(t, http.StatusOK, w.Code)
		require.Equal(t, "alice", svc.gotName)
	})

	t.Run("not found", func(t *testing.T) {
		svc := &mockGuestService{err: domain.ErrNotFound}
		mux := http.NewServeMux()
		mux.HandleFunc("GET /api/guest/{name}", NewGuestController(testLogger(), svc).GetGuest)
		w := httptest.NewRecorder()

		mux.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/guest/nobody", nil))

		require.Equal(t, http.StatusNotFound, w.Code)
		require.Equal(t, "Guest not found", decodeError(t, w))
	})
}

func TestGuestController_ListGuests(t *testing.T) {
	svc := &mockGuestService{guests: []*domain.Guest{{ID: 2, Name: "Bob"}, {ID: 1, Name: "Alice"}}}
	w := httptest.NewRecorder()

	NewGuestController(testLogger(), svc).ListGuests(w, httptest.NewRequest(http.MethodGet, "/api/guests", nil))

	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), `"name":"Bob"`)
}
