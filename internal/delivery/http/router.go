package http

import (
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	"partyinvite/internal/delivery/http/controllers"
)

// Handlers groups everything NewRouter mounts.
type Handlers struct {
	Poll      *controllers.PollController
	Guests    *controllers.GuestController
	Guestbook *controllers.GuestbookController
	Backup    *controllers.BackupController
	GraphQL   http.Handler
	Static    http.Handler
}

// NewRouter initializes the HTTP router with all application routes
func NewRouter(h Handlers) *http.ServeMux {
	mux := http.NewServeMux()

	// Poll
	mux.HandleFunc("GET /api/poll", h.Poll.GetPoll)
	mux.HandleFunc("POST /api/poll/vote", h.Poll.Vote)
	mux.HandleFunc("POST /api/poll/add-option", h.Poll.AddOption)

	// Guests
	mux.HandleFunc("GET /api/guests", h.Guests.ListGuests)
	mux.HandleFunc("POST /api/rsvp", h.Guests.RSVP)
	mux.HandleFunc("GET /api/guest/{name}", h.Guests.GetGuest)

	// Guestbook
	mux.HandleFunc("GET /api/comments", h.Guestbook.ListComments)
	mux.HandleFunc("POST /api/comments", h.Guestbook.PostComment)
	mux.HandleFunc("GET /api/photos", h.Guestbook.ListPhotos)
	mux.HandleFunc("POST /api/photos", h.Guestbook.PostPhoto)

	// Backup
	mux.HandleFunc("GET /api/backup", h.Backup.Backup)
	mux.HandleFunc("POST /api/restore", h.Backup.Restore)

	if h.GraphQL != nil {
		mux.Handle("GET /graphql", h.GraphQL)
		mux.Handle("POST /graphql", h.GraphQL)
	}

	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte("OK"))
	})

	// Swagger
	mux.Handle("GET /swagger/", httpSwagger.WrapHandler)

	// Static files and client-side routes
	if h.Static != nil {
		mux.Handle("GET /", h.Static)
	}

	return mux
}
