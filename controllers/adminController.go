package controllers

import (
	"errors"
	"net/http"

	"github.com/Meakshayar/spacedrevisionapp/helpers"
	"github.com/Meakshayar/spacedrevisionapp/models"
	"github.com/Meakshayar/spacedrevisionapp/services"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

var adminPasswordHash string

// SetAdminPasswordHash installs the bcrypt hash admin logins are checked
// against. An empty hash leaves the admin surface disabled.
func SetAdminPasswordHash(hash string) {
	adminPasswordHash = hash
}

// ===================== ADMIN LOGIN =====================
func AdminLogin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if adminPasswordHash == "" {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Admin access is not configured"})
			return
		}

		var body struct {
			Password string `json:"password" validate:"required"`
		}
		if err := c.BindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
			return
		}
		if validationErr := validate.Struct(body); validationErr != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": validationErr.Error()})
			return
		}

		if !helpers.VerifyPassword(adminPasswordHash, body.Password) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid password"})
			return
		}

		token, err := helpers.GenerateAdminToken()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to issue token"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"token": token})
	}
}

// GetSummary returns moderation-oriented counts over the stored document.
func GetSummary() gin.HandlerFunc {
	return func(c *gin.Context) {
		snap, err := services.LoadSnapshot()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load data"})
			return
		}
		if snap == nil {
			snap = models.EmptySnapshot()
		}

		c.JSON(http.StatusOK, gin.H{
			"playerCount":  len(snap.PlayerProfiles),
			"setCount":     len(snap.QuestionSets),
			"attemptCount": len(snap.PracticeHistory),
			"reportCount":  len(snap.ReportedQuestions),
			"lastUpdated":  snap.LastUpdated,
		})
	}
}

// DeleteReport removes a resolved question report by its reportId.
func DeleteReport() gin.HandlerFunc {
	return func(c *gin.Context) {
		reportID := c.Param("reportId")
		if reportID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "reportId is required"})
			return
		}

		err := services.DeleteReport(reportID)
		if errors.Is(err, services.ErrReportNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "report not found"})
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete report"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true})
	}
}
