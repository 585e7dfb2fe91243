package v1

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shenikar/field_ops_dashboard/internal/availability"
)

// @Summary Get assignment popup state
// @Description Get the popup state machine, the latest assignment and the new-assignment badge.
// @Tags Assignments
// @Produce json
// @Success 200 {object} AssignmentStateResponse
// @Router /assignments/state [get]
func (h *Handler) assignmentState(c *gin.Context) {
	c.JSON(http.StatusOK, SnapshotToResponse(h.watcher.Snapshot(), h.availability.Get()))
}

// @Summary Dispatch an assignment
// @Description Put an existing case into the assignment feed. The watcher picks it up on its next poll.
// @Tags Assignments
// @Accept json
// @Produce json
// @Param assignment body DispatchAssignmentRequest true "Case to assign"
// @Success 202 {object} models.Assignment
// @Failure 400 {object} map[string]string "Invalid request body"
// @Failure 404 {object} map[string]string "Case not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /assignments [post]
func (h *Handler) dispatchAssignment(c *gin.Context) {
	log := h.logger.WithField("method", "dispatchAssignment")

	var input DispatchAssignmentRequest
	if !h.bindAndValidate(c, log, &input) {
		return
	}

	if _, err := h.cases.GetCase(c.Request.Context(), input.CaseID); err != nil {
		h.caseError(c, log.WithField("case_id", input.CaseID), err)
		return
	}

	assigned, err := h.dispatcher.Push(c.Request.Context(), input.CaseID)
	if err != nil {
		log.WithError(err).Error("Failed to push assignment")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusAccepted, assigned)
}

// @Summary Dismiss assignment popup
// @Description Close the popup and keep the user offline. The assignment stays visible in the badge.
// @Tags Assignments
// @Produce json
// @Success 200 {object} AssignmentStateResponse
// @Router /assignments/dismiss [post]
func (h *Handler) dismissAssignment(c *gin.Context) {
	c.JSON(http.StatusOK, SnapshotToResponse(h.watcher.DismissPopup(), h.availability.Get()))
}

// @Summary Clear new assignment
// @Description Clear the latest assignment and the badge counter.
// @Tags Assignments
// @Produce json
// @Success 200 {object} AssignmentStateResponse
// @Router /assignments/clear [post]
func (h *Handler) clearAssignment(c *gin.Context) {
	c.JSON(http.StatusOK, SnapshotToResponse(h.watcher.ClearNewAssignment(), h.availability.Get()))
}

// @Summary Go online from assignment popup
// @Description Switch the user online and close the popup.
// @Tags Assignments
// @Produce json
// @Success 200 {object} AssignmentStateResponse
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /assignments/go-online [post]
func (h *Handler) assignmentGoOnline(c *gin.Context) {
	log := h.logger.WithField("method", "assignmentGoOnline")

	snap, err := h.watcher.GoOnline(c.Request.Context())
	resp := SnapshotToResponse(snap, h.availability.Get())
	switch {
	case errors.Is(err, availability.ErrPersistFailed):
		log.WithError(err).Warn("Availability not persisted")
		resp.Warning = persistWarning
	case err != nil:
		log.WithError(err).Error("Failed to go online")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, resp)
}
