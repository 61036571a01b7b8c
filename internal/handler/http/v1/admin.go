package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

func parseUserID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user id"})
		return uuid.Nil, false
	}
	return id, true
}

// @Summary Delete user
// @Description Delete a user and all their data in one transaction.
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "User ID"
// @Success 200 {object} models.UserDeletion
// @Failure 400 {object} map[string]string "Invalid user id"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Admin access required"
// @Failure 404 {object} map[string]string "User not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /admin/users/{id} [delete]
func (h *Handler) deleteUser(c *gin.Context) {
	log := h.logger.WithFields(logrus.Fields{"method": "deleteUser", "admin_id": currentUserID(c)})

	id, ok := parseUserID(c)
	if !ok {
		return
	}

	deletion, err := h.adminService.DeleteUserCascade(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, log.WithField("user_id", id), err)
		return
	}
	c.JSON(http.StatusOK, deletion)
}

// @Summary Bulk delete users
// @Description Delete several users; each one succeeds or fails on its own.
// @Tags Admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body BulkDeleteRequest true "User IDs"
// @Success 200 {object} models.BulkDeleteResult
// @Failure 400 {object} map[string]string "Invalid request body"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Admin access required"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /admin/users/bulk-delete [post]
func (h *Handler) bulkDeleteUsers(c *gin.Context) {
	log := h.logger.WithFields(logrus.Fields{"method": "bulkDeleteUsers", "admin_id": currentUserID(c)})

	var input BulkDeleteRequest
	if !h.bindAndValidate(c, log, &input) {
		return
	}

	result, err := h.adminService.BulkDelete(c.Request.Context(), input.UserIDs)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// @Summary Override user consent
// @Description Change consent flags of another user. The reason is written to the audit log.
// @Tags Admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "User ID"
// @Param request body ConsentOverrideRequest true "Consent flags and reason"
// @Success 200 {object} models.ConsentRecord
// @Failure 400 {object} map[string]string "Invalid request body"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Admin access required"
// @Failure 404 {object} map[string]string "User not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /admin/users/{id}/consent [put]
func (h *Handler) overrideConsent(c *gin.Context) {
	log := h.logger.WithFields(logrus.Fields{"method": "overrideConsent", "admin_id": currentUserID(c)})

	id, ok := parseUserID(c)
	if !ok {
		return
	}

	var input ConsentOverrideRequest
	if !h.bindAndValidate(c, log, &input) {
		return
	}

	record, err := h.consentService.OverrideConsent(c.Request.Context(), currentUserID(c), id, DTOToConsentUpdate(input.ConsentRequest), input.Reason)
	if err != nil {
		h.respondError(c, log.WithField("user_id", id), err)
		return
	}
	c.JSON(http.StatusOK, record)
}

// @Summary Database statistics
// @Description Counts of users, trips, samples and consents with geocoding quality.
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.DatabaseStatistics
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Admin access required"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /admin/statistics [get]
func (h *Handler) getDatabaseStatistics(c *gin.Context) {
	log := h.logger.WithFields(logrus.Fields{"method": "getDatabaseStatistics", "admin_id": currentUserID(c)})

	stats, err := h.adminService.GetDatabaseStatistics(c.Request.Context())
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

// @Summary Schedule geocoding retry
// @Description Queue a background retry of failed reverse geocoding.
// @Tags Admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body RetryGeocodingRequest false "Optional user and limit"
// @Success 202 {object} JobResponse
// @Failure 400 {object} map[string]string "Invalid request body"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Admin access required"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /admin/geocoding/retry [post]
func (h *Handler) scheduleGeocodingRetry(c *gin.Context) {
	log := h.logger.WithFields(logrus.Fields{"method": "scheduleGeocodingRetry", "admin_id": currentUserID(c)})

	var input RetryGeocodingRequest
	if c.Request.ContentLength != 0 && !h.bindAndValidate(c, log, &input) {
		return
	}

	job, err := h.adminService.ScheduleGeocodingRetry(c.Request.Context(), input.UserID, input.Limit)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusAccepted, JobResponse{Message: "Geocoding retry scheduled", Job: job})
}

// @Summary Schedule cleanup
// @Description Queue deletion of samples older than the given number of days.
// @Tags Admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CleanupRequest false "Retention in days"
// @Success 202 {object} JobResponse
// @Failure 400 {object} map[string]string "Invalid request body"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Admin access required"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /admin/cleanup [post]
func (h *Handler) scheduleCleanup(c *gin.Context) {
	log := h.logger.WithFields(logrus.Fields{"method": "scheduleCleanup", "admin_id": currentUserID(c)})

	var input CleanupRequest
	if c.Request.ContentLength != 0 && !h.bindAndValidate(c, log, &input) {
		return
	}
	if input.Days == 0 {
		input.Days = h.cfg.RetentionDays
	}

	job, err := h.adminService.ScheduleCleanup(c.Request.Context(), input.Days)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusAccepted, JobResponse{Message: "Cleanup scheduled", Job: job})
}
