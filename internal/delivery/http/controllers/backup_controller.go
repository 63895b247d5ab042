package controllers

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"partyinvite/internal/delivery/http/helpers"
	"partyinvite/internal/domain"
)

// maxRestoreBytes caps the size of an uploaded backup document.
const maxRestoreBytes = 32 << 20

type BackupController struct {
	Logger  *slog.Logger
	Service domain.BackupService
}

func NewBackupController(logger *slog.Logger, svc domain.BackupService) *BackupController {
	return &BackupController{
		Logger:  logger,
		Service: svc,
	}
}

// Backup godoc
// @Summary Download a backup
// @Description The whole dataset as a JSON attachment.
// @Tags backup
// @Produce json
// @Success 200 {object} domain.Backup
// @Failure 500 {object} helpers.ErrorResponse
// @Router /api/backup [get]
func (c *BackupController) Backup(w http.ResponseWriter, r *http.Request) {
	b, err := c.Service.Export(r.Context())
	if err != nil {
		writeServiceError(w, r, c.Logger, err)
		return
	}
	filename := fmt.Sprintf("dekolaudacka-backup-%d.json", time.Now().UnixMilli())
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	helpers.WriteJSON(w, http.StatusOK, b)
}

// RestoreResponse confirms a completed restore.
type RestoreResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// Restore godoc
// @Summary Restore a backup
// @Description Replaces every table with the contents of the uploaded backup, keeping the original ids.
// @Tags backup
// @Accept json
// @Produce json
// @Param body body domain.Backup true "Backup document"
// @Success 200 {object} controllers.RestoreResponse
// @Failure 400 {object} helpers.ErrorResponse
// @Failure 500 {object} helpers.ErrorResponse
// @Router /api/restore [post]
func (c *BackupController) Restore(w http.ResponseWriter, r *http.Request) {
	var b domain.Backup
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxRestoreBytes)).Decode(&b); err != nil {
		helpers.WriteJSONError(w, http.StatusBadRequest, "Invalid backup")
		return
	}
	if err := c.Service.Restore(r.Context(), &b); err != nil {
		if errors.Is(err, domain.ErrInvalidArgument) && b.Guests == nil {
			helpers.WriteJSONError(w, http.StatusBadRequest, "Invalid backup")
			return
		}
		writeServiceError(w, r, c.Logger, err)
		return
	}
	c.Logger.InfoContext(r.Context(), "database restored", "guests", len(b.Guests), "poll_votes", len(b.PollVotes))
	helpers.WriteJSON(w, http.StatusOK, RestoreResponse{Success: true, Message: "Database restored"})
}
