package v1

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shenikar/field_ops_dashboard/internal/availability"
	"github.com/sirupsen/logrus"
)

const persistWarning = "availability changed but could not be saved"

// setAvailability меняет флаг. Ошибка сохранения не отменяет изменение и отдается как предупреждение
func (h *Handler) setAvailability(c *gin.Context, log *logrus.Entry, available bool) {
	resp := AvailabilityResponse{Available: available}

	err := h.availability.SetAvailable(c.Request.Context(), available)
	switch {
	case errors.Is(err, availability.ErrPersistFailed):
		log.WithError(err).Warn("Availability not persisted")
		resp.Warning = persistWarning
	case err != nil:
		log.WithError(err).Error("Failed to change availability")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary Get availability
// @Description Get whether the user accepts new assignments.
// @Tags Availability
// @Produce json
// @Success 200 {object} AvailabilityResponse
// @Router /availability [get]
func (h *Handler) getAvailability(c *gin.Context) {
	c.JSON(http.StatusOK, AvailabilityResponse{Available: h.availability.Get()})
}

// @Summary Set availability
// @Description Set the availability flag. It is saved immediately and broadcast to connected dashboards.
// @Tags Availability
// @Accept json
// @Produce json
// @Param availability body AvailabilityRequest true "Availability"
// @Success 200 {object} AvailabilityResponse
// @Failure 400 {object} map[string]string "Invalid request body"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /availability [put]
func (h *Handler) putAvailability(c *gin.Context) {
	log := h.logger.WithField("method", "putAvailability")

	var input AvailabilityRequest
	if !h.bindAndValidate(c, log, &input) {
		return
	}
	h.setAvailability(c, log, *input.Available)
}

// @Summary Go online
// @Tags Availability
// @Produce json
// @Success 200 {object} AvailabilityResponse
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /availability/online [post]
func (h *Handler) goOnline(c *gin.Context) {
	h.setAvailability(c, h.logger.WithField("method", "goOnline"), true)
}

// @Summary Go offline
// @Tags Availability
// @Produce json
// @Success 200 {object} AvailabilityResponse
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /availability/offline [post]
func (h *Handler) goOffline(c *gin.Context) {
	h.setAvailability(c, h.logger.WithField("method", "goOffline"), false)
}
