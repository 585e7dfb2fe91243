package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shenikar/field_ops_dashboard/internal/settings"
)

// @Summary Get settings
// @Description Get the in-memory settings record. Unsaved edits are included.
// @Tags Settings
// @Produce json
// @Success 200 {object} models.UserSettings
// @Router /settings [get]
func (h *Handler) getSettings(c *gin.Context) {
	c.JSON(http.StatusOK, h.settings.Current())
}

// @Summary Update profile
// @Description Change profile fields in memory. Call /settings/save to persist them.
// @Tags Settings
// @Accept json
// @Produce json
// @Param profile body ProfileUpdateRequest true "Profile fields"
// @Success 200 {object} models.UserSettings
// @Failure 400 {object} map[string]string "Invalid request body"
// @Router /settings/profile [patch]
func (h *Handler) updateProfile(c *gin.Context) {
	log := h.logger.WithField("method", "updateProfile")

	var input ProfileUpdateRequest
	if !h.bindAndValidate(c, log, &input) {
		return
	}
	c.JSON(http.StatusOK, h.settings.UpdateProfile(settings.ProfileUpdate{
		Name:  input.Name,
		Phone: input.Phone,
		Email: input.Email,
	}))
}

// @Summary Update notification preferences
// @Description Change notification toggles in memory. Call /settings/save to persist them.
// @Tags Settings
// @Accept json
// @Produce json
// @Param notifications body NotificationsUpdateRequest true "Notification toggles"
// @Success 200 {object} models.UserSettings
// @Failure 400 {object} map[string]string "Invalid request body"
// @Router /settings/notifications [patch]
func (h *Handler) updateNotifications(c *gin.Context) {
	log := h.logger.WithField("method", "updateNotifications")

	var input NotificationsUpdateRequest
	if !h.bindAndValidate(c, log, &input) {
		return
	}
	c.JSON(http.StatusOK, h.settings.UpdateNotifications(settings.NotificationsUpdate{
		Push:         input.Push,
		SMS:          input.SMS,
		Email:        input.Email,
		CriticalOnly: input.CriticalOnly,
	}))
}

// @Summary Update availability in settings
// @Description Change the availability field of the settings record in memory only.
// @Tags Settings
// @Accept json
// @Produce json
// @Param availability body AvailabilityRequest true "Availability"
// @Success 200 {object} models.UserSettings
// @Failure 400 {object} map[string]string "Invalid request body"
// @Router /settings/availability [put]
func (h *Handler) updateSettingsAvailability(c *gin.Context) {
	log := h.logger.WithField("method", "updateSettingsAvailability")

	var input AvailabilityRequest
	if !h.bindAndValidate(c, log, &input) {
		return
	}
	c.JSON(http.StatusOK, h.settings.UpdateAvailability(*input.Available))
}

// @Summary Save settings
// @Description Persist the settings record and the denormalized profile. A changed availability is applied to the live flag.
// @Tags Settings
// @Produce json
// @Success 200 {object} SaveSettingsResponse
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /settings/save [post]
func (h *Handler) saveSettings(c *gin.Context) {
	log := h.logger.WithField("method", "saveSettings")

	saved, err := h.settings.Save(c.Request.Context())
	if err != nil {
		log.WithError(err).Error("Failed to save settings")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	resp := SaveSettingsResponse{Saved: saved, Settings: h.settings.Current()}
	// Сохраненная доступность становится текущей для всего процесса
	if available := resp.Settings.Availability; available != h.availability.Get() {
		if err := h.availability.SetAvailable(c.Request.Context(), available); err != nil {
			log.WithError(err).Warn("Availability not persisted")
			resp.Warning = persistWarning
		}
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary Get profile
// @Description Get the saved profile record, or one built from current settings.
// @Tags Settings
// @Produce json
// @Success 200 {object} models.ProfileRecord
// @Router /profile [get]
func (h *Handler) getProfile(c *gin.Context) {
	c.JSON(http.StatusOK, h.settings.Profile(c.Request.Context()))
}

// @Summary Get map key
// @Description Get the map provider key saved by the user, or the server default.
// @Tags Settings
// @Produce json
// @Success 200 {object} MapKeyResponse
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /settings/map-key [get]
func (h *Handler) getMapKey(c *gin.Context) {
	log := h.logger.WithField("method", "getMapKey")

	key, err := h.settings.MapAPIKey(c.Request.Context())
	if err != nil {
		log.WithError(err).Error("Failed to read map key")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, MapKeyResponse{APIKey: key, Configured: key != ""})
}

// @Summary Save map key
// @Tags Settings
// @Accept json
// @Produce json
// @Param key body MapKeyRequest true "Map provider key"
// @Success 200 {object} MapKeyResponse
// @Failure 400 {object} map[string]string "Invalid request body"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /settings/map-key [put]
func (h *Handler) putMapKey(c *gin.Context) {
	log := h.logger.WithField("method", "putMapKey")

	var input MapKeyRequest
	if !h.bindAndValidate(c, log, &input) {
		return
	}
	if err := h.settings.SetMapAPIKey(c.Request.Context(), input.APIKey); err != nil {
		log.WithError(err).Error("Failed to save map key")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, MapKeyResponse{APIKey: input.APIKey, Configured: true})
}

// @Summary Record login
// @Description Store the login flag and email. Credentials are not checked.
// @Tags Session
// @Accept json
// @Produce json
// @Param session body SessionRequest true "Login email"
// @Success 200 {object} settings.Session
// @Failure 400 {object} map[string]string "Invalid request body"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /session [post]
func (h *Handler) login(c *gin.Context) {
	log := h.logger.WithField("method", "login")

	var input SessionRequest
	if !h.bindAndValidate(c, log, &input) {
		return
	}
	if err := h.settings.RecordLogin(c.Request.Context(), input.Email); err != nil {
		log.WithError(err).Error("Failed to record login")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, settings.Session{LoggedIn: true, Email: input.Email})
}

// @Summary Clear login record
// @Tags Session
// @Success 204 "No Content"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /session [delete]
func (h *Handler) logout(c *gin.Context) {
	log := h.logger.WithField("method", "logout")

	if err := h.settings.Logout(c.Request.Context()); err != nil {
		log.WithError(err).Error("Failed to clear session")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Get login record
// @Tags Session
// @Produce json
// @Success 200 {object} settings.Session
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /session [get]
func (h *Handler) getSession(c *gin.Context) {
	log := h.logger.WithField("method", "getSession")

	session, err := h.settings.Session(c.Request.Context())
	if err != nil {
		log.WithError(err).Error("Failed to read session")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, session)
}
