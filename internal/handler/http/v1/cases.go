package v1

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/shenikar/field_ops_dashboard/internal/filter"
	"github.com/shenikar/field_ops_dashboard/internal/models"
)

const defaultMapRadiusMeters = 5000

// splitList разбирает значения через запятую, пустые элементы пропускаются
func splitList(raw string) []string {
	parts := strings.Split(raw, ",")
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			result = append(result, p)
		}
	}
	return result
}

func parseCriteria(c *gin.Context) (filter.Criteria, error) {
	criteria := filter.Criteria{Query: c.Query("q")}
	for _, raw := range splitList(c.Query("severity")) {
		s := models.Severity(raw)
		if !s.Valid() {
			return criteria, fmt.Errorf("%w: %s", models.ErrInvalidSeverity, raw)
		}
		criteria.Severities = append(criteria.Severities, s)
	}
	for _, raw := range splitList(c.Query("status")) {
		s := models.CaseStatus(raw)
		if !s.Valid() {
			return criteria, fmt.Errorf("%w: %s", models.ErrInvalidStatus, raw)
		}
		criteria.Statuses = append(criteria.Statuses, s)
	}
	return criteria, nil
}

// @Summary Get a list of cases
// @Description Get cases matching a text query and severity/status sets. Empty criteria return every case, newest first.
// @Tags Cases
// @Accept json
// @Produce json
// @Param q query string false "Case-insensitive substring of case ID or location"
// @Param severity query string false "Comma-separated severities" example(critical,high)
// @Param status query string false "Comma-separated statuses" example(pending,on_route)
// @Success 200 {array} CaseResponse
// @Failure 400 {object} map[string]string "Invalid severity or status"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /cases [get]
func (h *Handler) listCases(c *gin.Context) {
	log := h.logger.WithField("method", "listCases")

	criteria, err := parseCriteria(c)
	if err != nil {
		log.WithError(err).Warn("Invalid filter")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	cases, err := h.cases.ListCases(c.Request.Context(), criteria)
	if err != nil {
		h.caseError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelsToCaseResponses(cases, h.now()))
}

// @Summary Register a new case
// @Description Register a case from dispatch. The case starts as pending with a "Case Created" audit entry. Missing location text is resolved from coordinates.
// @Tags Cases
// @Accept json
// @Produce json
// @Param case body CreateCaseRequest true "Case registration request"
// @Success 201 {object} CaseResponse
// @Failure 400 {object} map[string]string "Invalid request body"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /cases [post]
func (h *Handler) createCase(c *gin.Context) {
	var input CreateCaseRequest
	log := h.logger.WithField("method", "createCase")

	if !h.bindAndValidate(c, log, &input) {
		return
	}

	model := DTOToCaseModel(input)
	if err := h.cases.CreateCase(c.Request.Context(), model, h.actorName(input.Actor)); err != nil {
		h.caseError(c, log, err)
		return
	}
	c.JSON(http.StatusCreated, ModelToCaseResponse(model, h.now()))
}

// @Summary Get case by ID
// @Description Get a single case with its computed SLA and effective notes.
// @Tags Cases
// @Produce json
// @Param id path string true "Case ID" example(C-1234)
// @Success 200 {object} CaseResponse
// @Failure 404 {object} map[string]string "Case not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /cases/{id} [get]
func (h *Handler) getCase(c *gin.Context) {
	id := c.Param("id")
	log := h.logger.WithField("method", "getCase").WithField("id", id)

	model, err := h.cases.GetCase(c.Request.Context(), id)
	if err != nil {
		h.caseError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelToCaseResponse(model, h.now()))
}

// @Summary Update case status
// @Description Set any status on a case and append a "Status Updated to ..." audit entry.
// @Tags Cases
// @Accept json
// @Produce json
// @Param id path string true "Case ID"
// @Param status body UpdateStatusRequest true "New status"
// @Success 200 {object} CaseResponse
// @Failure 400 {object} map[string]string "Invalid status"
// @Failure 404 {object} map[string]string "Case not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /cases/{id}/status [put]
func (h *Handler) updateCaseStatus(c *gin.Context) {
	id := c.Param("id")
	log := h.logger.WithField("method", "updateCaseStatus").WithField("id", id)

	var input UpdateStatusRequest
	if !h.bindAndValidate(c, log, &input) {
		return
	}

	model, err := h.cases.UpdateStatus(c.Request.Context(), id, models.CaseStatus(input.Status), h.actorName(input.Actor))
	if err != nil {
		h.caseError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelToCaseResponse(model, h.now()))
}

// @Summary Get case SLA
// @Description Get remaining minutes, percentage, status and display text of the case SLA.
// @Tags Cases
// @Produce json
// @Param id path string true "Case ID"
// @Success 200 {object} CaseSLAResponse
// @Failure 404 {object} map[string]string "Case not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /cases/{id}/sla [get]
func (h *Handler) getCaseSLA(c *gin.Context) {
	id := c.Param("id")
	log := h.logger.WithField("method", "getCaseSLA").WithField("id", id)

	model, err := h.cases.GetCase(c.Request.Context(), id)
	if err != nil {
		h.caseError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, CaseSLAResponse{CaseID: model.ID, SLAResponse: ModelToSLAResponse(model, h.now())})
}

// @Summary Get case notes
// @Tags Cases
// @Produce json
// @Param id path string true "Case ID"
// @Success 200 {object} NotesResponse
// @Failure 404 {object} map[string]string "Case not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /cases/{id}/notes [get]
func (h *Handler) getCaseNotes(c *gin.Context) {
	id := c.Param("id")
	log := h.logger.WithField("method", "getCaseNotes").WithField("id", id)

	notes, err := h.cases.GetNotes(c.Request.Context(), id)
	if err != nil {
		h.caseError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, NotesResponse{CaseID: id, Notes: notes})
}

// @Summary Save case notes
// @Description Overwrite the free-text notes of a case.
// @Tags Cases
// @Accept json
// @Produce json
// @Param id path string true "Case ID"
// @Param notes body NotesRequest true "Notes"
// @Success 200 {object} NotesResponse
// @Failure 400 {object} map[string]string "Invalid request body"
// @Failure 404 {object} map[string]string "Case not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /cases/{id}/notes [put]
func (h *Handler) saveCaseNotes(c *gin.Context) {
	id := c.Param("id")
	log := h.logger.WithField("method", "saveCaseNotes").WithField("id", id)

	var input NotesRequest
	if !h.bindAndValidate(c, log, &input) {
		return
	}

	if err := h.cases.SaveNotes(c.Request.Context(), id, input.Notes); err != nil {
		h.caseError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, NotesResponse{CaseID: id, Notes: input.Notes})
}

// @Summary Get cases near a point
// @Description Get cases within radius meters of the point, nearest first.
// @Tags Map
// @Produce json
// @Param lat query number true "Latitude"
// @Param lng query number true "Longitude"
// @Param radius query number false "Radius in meters" default(5000)
// @Success 200 {array} CaseResponse
// @Failure 400 {object} map[string]string "Invalid coordinates or radius"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /map/cases [get]
func (h *Handler) mapCases(c *gin.Context) {
	log := h.logger.WithField("method", "mapCases")

	lat, errLat := strconv.ParseFloat(c.Query("lat"), 64)
	lng, errLng := strconv.ParseFloat(c.Query("lng"), 64)
	if errLat != nil || errLng != nil || lat < -90 || lat > 90 || lng < -180 || lng > 180 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid coordinates"})
		return
	}
	radius, err := strconv.ParseFloat(c.DefaultQuery("radius", strconv.Itoa(defaultMapRadiusMeters)), 64)
	if err != nil || radius <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid radius"})
		return
	}

	cases, err := h.cases.CasesNear(c.Request.Context(), lat, lng, radius)
	if err != nil {
		h.caseError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelsToCaseResponses(cases, h.now()))
}

// @Summary Get SLA alerts
// @Description Get unresolved cases whose SLA is about to expire or already overdue, most urgent first.
// @Tags Dashboard
// @Produce json
// @Success 200 {array} CaseResponse
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /alerts/sla [get]
func (h *Handler) slaAlerts(c *gin.Context) {
	log := h.logger.WithField("method", "slaAlerts")

	cases, err := h.cases.SLAAlerts(c.Request.Context())
	if err != nil {
		h.caseError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelsToCaseResponses(cases, h.now()))
}

// @Summary Get dashboard statistics
// @Description Get case totals and SLA breakdown for the dashboard.
// @Tags Dashboard
// @Produce json
// @Success 200 {object} filter.DashboardStats
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /dashboard/stats [get]
func (h *Handler) dashboardStats(c *gin.Context) {
	log := h.logger.WithField("method", "dashboardStats")

	stats, err := h.cases.Stats(c.Request.Context())
	if err != nil {
		h.caseError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

// @Summary Get activity log
// @Description Get audit events of all cases grouped by day, newest first.
// @Tags Dashboard
// @Produce json
// @Param q query string false "Case ID substring"
// @Param date query string false "Day filter" Enums(all, today, yesterday)
// @Success 200 {array} filter.DayGroup
// @Failure 400 {object} map[string]string "Invalid date filter"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /activity [get]
func (h *Handler) activity(c *gin.Context) {
	log := h.logger.WithField("method", "activity")

	criteria := filter.ActivityCriteria{
		Query: c.Query("q"),
		Date:  filter.DateFilter(c.Query("date")),
	}
	if !criteria.Date.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date filter"})
		return
	}

	groups, err := h.cases.Activity(c.Request.Context(), criteria)
	if err != nil {
		h.caseError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, groups)
}
