package controllers

import (
	"log/slog"
	"net/http"

	"partyinvite/internal/delivery/http/helpers"
	"partyinvite/internal/domain"
)

type PollController struct {
	Logger  *slog.Logger
	Service domain.PollService
}

func NewPollController(logger *slog.Logger, svc domain.PollService) *PollController {
	return &PollController{
		Logger:  logger,
		Service: svc,
	}
}

// GetPoll godoc
// @Summary Poll results
// @Description Every option with its vote count, voter names and share of all votes, most votes first; ties ordered by name.
// @Tags poll
// @Produce json
// @Success 200 {array} domain.OptionTally
// @Failure 500 {object} helpers.ErrorResponse
// @Router /api/poll [get]
func (c *PollController) GetPoll(w http.ResponseWriter, r *http.Request) {
	tally, err := c.Service.GetTally(r.Context())
	if err != nil {
		writeServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSON(w, http.StatusOK, tally)
}

// VoteRequest is the request body for POST /api/poll/vote.
type VoteRequest struct {
	GuestID  int64 `json:"guest_id" validate:"required,gt=0"`
	OptionID int64 `json:"option_id" validate:"required,gt=0"`
}

// VoteResponse reports whether the vote was cast or withdrawn.
type VoteResponse struct {
	Action domain.VoteAction `json:"action" enums:"added,removed"`
}

// Vote godoc
// @Summary Toggle a vote
// @Description Casts the guest's vote for the option, or withdraws it if already cast.
// @Tags poll
// @Accept json
// @Produce json
// @Param body body controllers.VoteRequest true "Guest and option"
// @Success 200 {object} controllers.VoteResponse
// @Failure 400 {object} helpers.ErrorResponse
// @Failure 500 {object} helpers.ErrorResponse
// @Router /api/poll/vote [post]
func (c *PollController) Vote(w http.ResponseWriter, r *http.Request) {
	var req VoteRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	action, err := c.Service.ToggleVote(r.Context(), req.GuestID, req.OptionID)
	if err != nil {
		writeServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSON(w, http.StatusOK, VoteResponse{Action: action})
}

// AddOptionRequest is the request body for POST /api/poll/add-option.
type AddOptionRequest struct {
	Name    string `json:"name" validate:"required"`
	Emoji   string `json:"emoji"`
	GuestID int64  `json:"guest_id" validate:"required,gt=0"`
}

// AddOption godoc
// @Summary Add a poll option
// @Description Registers a new option and casts the submitting guest's vote for it. Names are unique ignoring case.
// @Tags poll
// @Accept json
// @Produce json
// @Param body body controllers.AddOptionRequest true "Option"
// @Success 200 {object} domain.PollOption
// @Failure 400 {object} helpers.ErrorResponse "missing field or duplicate name"
// @Failure 500 {object} helpers.ErrorResponse
// @Router /api/poll/add-option [post]
func (c *PollController) AddOption(w http.ResponseWriter, r *http.Request) {
	var req AddOptionRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	opt, err := c.Service.AddOption(r.Context(), req.Name, req.Emoji, req.GuestID)
	if err != nil {
		writeServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSON(w, http.StatusOK, opt)
}
