package http

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"partyinvite/internal/delivery/http/controllers"
	"partyinvite/internal/domain"
)

type stubPollService struct {
	domain.PollService
}

func (stubPollService) GetTally(ctx context.Context) ([]*domain.OptionTally, error) {
	return []*domain.OptionTally{}, nil
}

func (stubPollService) ToggleVote(ctx context.Context, guestID, optionID int64) (domain.VoteAction, error) {
	return domain.VoteAdded, nil
}

func newTestRouter(t *testing.T) *http.ServeMux {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "index.html"), []byte("spa"), 0o644))

	return NewRouter(Handlers{
		Poll:      controllers.NewPollController(logger, stubPollService{}),
		Guests:    controllers.NewGuestController(logger, nil),
		Guestbook: controllers.NewGuestbookController(logger, nil, nil),
		Backup:    controllers.NewBackupController(logger, nil),
		Static:    controllers.NewStaticHandler(dir),
	})
}

func TestNewRouter(t *testing.T) {
	mux := newTestRouter(t)

	tests := []struct {
		name       string
		method     string
		path       string
		body       string
		wantStatus int
		wantBody   string
	}{
		{"health", http.MethodGet, "/health", "", http.StatusOK, "OK"},
		{"poll", http.MethodGet, "/api/poll", "", http.StatusOK, "[]\n"},
		{"vote", http.MethodPost, "/api/poll/vote", `{"guest_id":1,"option_id":2}`, http.StatusOK, "{\"action\":\"added\"}\n"},
		{"spa fallback", http.MethodGet, "/guestbook", "", http.StatusOK, "spa"},
		{"wrong method on api route", http.MethodDelete, "/api/poll", "", http.StatusMethodNotAllowed, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			mux.ServeHTTP(w, httptest.NewRequest(tt.method, tt.path, strings.NewReader(tt.body)))
			require.Equal(t, tt.wantStatus, w.Code)
			if tt.wantBody != "" {
				require.Equal(t, tt.wantBody, w.Body.String())
			}
		})
	}
}
