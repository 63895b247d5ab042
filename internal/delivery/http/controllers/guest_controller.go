package controllers

import (
	"errors"
	"log/slog"
	"net/http"

	"partyinvite/internal/delivery/http/helpers"
	"partyinvite/internal/domain"
)

type GuestController struct {
	Logger  *slog.Logger
	Service domain.GuestService
}

func NewGuestController(logger *slog.Logger, svc domain.GuestService) *GuestController {
	return &GuestController{
		Logger:  logger,
		Service: svc,
	}
}

// ListGuests godoc
// @Summary List guests
// @Tags guests
// @Produce json
// @Success 200 {array} domain.Guest
// @Failure 500 {object} helpers.ErrorResponse
// @Router /api/guests [get]
func (c *GuestController) ListGuests(w http.ResponseWriter, r *http.Request) {
	guests, err := c.Service.List(r.Context())
	if err != nil {
		writeServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSON(w, http.StatusOK, guests)
}

// RSVPRequest is the request body for POST /api/rsvp.
type RSVPRequest struct {
	Name      string `json:"name" validate:"required"`
	Attending *bool  `json:"attending" validate:"required"`
}

// RSVP godoc
// @Summary RSVP
// @Description Creates the guest, or updates the attending flag of the guest with the same name (ignoring case).
// @Tags guests
// @Accept json
// @Produce json
// @Param body body controllers.RSVPRequest true "RSVP"
// @Success 200 {object} domain.Guest
// @Failure 400 {object} helpers.ErrorResponse
// @Failure 500 {object} helpers.ErrorResponse
// @Router /api/rsvp [post]
func (c *GuestController) RSVP(w http.ResponseWriter, r *http.Request) {
	var req RSVPRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	guest, _, err := c.Service.RSVP(r.Context(), req.Name, *req.Attending)
	if err != nil {
		writeServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSON(w, http.StatusOK, guest)
}

// GetGuest godoc
// @Summary Find a guest by name
// @Tags guests
// @Produce json
// @Param name path string true "Guest name, case-insensitive"
// @Success 200 {object} domain.Guest
// @Failure 404 {object} helpers.ErrorResponse
// @Failure 500 {object} helpers.ErrorResponse
// @Router /api/guest/{name} [get]
func (c *GuestController) GetGuest(w http.ResponseWriter, r *http.Request) {
	guest, err := c.Service.GetByName(r.Context(), r.PathValue("name"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			helpers.WriteJSONError(w, http.StatusNotFound, "Guest not found")
			return
		}
		writeServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSON(w, http.StatusOK, guest)
}
