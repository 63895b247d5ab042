package controllers

import (
	"log/slog"
	"net/http"

	"partyinvite/internal/delivery/http/helpers"
	"partyinvite/internal/domain"
)

// GuestbookController serves comments and shared photo links.
type GuestbookController struct {
	Logger   *slog.Logger
	Comments domain.CommentService
	Photos   domain.PhotoService
}

func NewGuestbookController(logger *slog.Logger, comments domain.CommentService, photos domain.PhotoService) *GuestbookController {
	return &GuestbookController{
		Logger:   logger,
		Comments: comments,
		Photos:   photos,
	}
}

// ListComments godoc
// @Summary List comments
// @Description Comments with author name and avatar colour, newest first.
// @Tags guestbook
// @Produce json
// @Success 200 {array} domain.Comment
// @Failure 500 {object} helpers.ErrorResponse
// @Router /api/comments [get]
func (c *GuestbookController) ListComments(w http.ResponseWriter, r *http.Request) {
	comments, err := c.Comments.List(r.Context())
	if err != nil {
		writeServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSON(w, http.StatusOK, comments)
}

// CommentRequest is the request body for POST /api/comments.
type CommentRequest struct {
	GuestID int64  `json:"guest_id" validate:"required,gt=0"`
	Comment string `json:"comment" validate:"required"`
}

// PostComment godoc
// @Summary Post a comment
// @Tags guestbook
// @Accept json
// @Produce json
// @Param body body controllers.CommentRequest true "Comment"
// @Success 200 {object} controllers.IDResponse
// @Failure 400 {object} helpers.ErrorResponse
// @Failure 500 {object} helpers.ErrorResponse
// @Router /api/comments [post]
func (c *GuestbookController) PostComment(w http.ResponseWriter, r *http.Request) {
	var req CommentRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	comment, err := c.Comments.Add(r.Context(), req.GuestID, req.Comment)
	if err != nil {
		writeServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSON(w, http.StatusOK, IDResponse{ID: comment.ID})
}

// ListPhotos godoc
// @Summary List shared photos
// @Description Photo links with author name and avatar colour, newest first.
// @Tags guestbook
// @Produce json
// @Success 200 {array} domain.Photo
// @Failure 500 {object} helpers.ErrorResponse
// @Router /api/photos [get]
func (c *GuestbookController) ListPhotos(w http.ResponseWriter, r *http.Request) {
	photos, err := c.Photos.List(r.Context())
	if err != nil {
		writeServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSON(w, http.StatusOK, photos)
}

// PhotoRequest is the request body for POST /api/photos.
type PhotoRequest struct {
	GuestID  int64  `json:"guest_id" validate:"required,gt=0"`
	PhotoURL string `json:"photo_url" validate:"required"`
	DriveID  string `json:"drive_id"`
}

// PostPhoto godoc
// @Summary Share a photo link
// @Tags guestbook
// @Accept json
// @Produce json
// @Param body body controllers.PhotoRequest true "Photo link"
// @Success 200 {object} controllers.IDResponse
// @Failure 400 {object} helpers.ErrorResponse
// @Failure 500 {object} helpers.ErrorResponse
// @Router /api/photos [post]
func (c *GuestbookController) PostPhoto(w http.ResponseWriter, r *http.Request) {
	var req PhotoRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	photo, err := c.Photos.Add(r.Context(), req.GuestID, req.PhotoURL, req.DriveID)
	if err != nil {
		writeServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSON(w, http.StatusOK, IDResponse{ID: photo.ID})
}
