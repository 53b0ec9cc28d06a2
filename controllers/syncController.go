package controllers

import (
	"net/http"

	"github.com/Meakshayar/spacedrevisionapp/models"
	"github.com/Meakshayar/spacedrevisionapp/services"

	"github.com/gin-gonic/gin"
)

// GetData returns the current shared state document. When nothing has been
// synced yet the empty-default document is returned, not an error.
func GetData() gin.HandlerFunc {
	return func(c *gin.Context) {
		snap, err := services.LoadSnapshot()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load data"})
			return
		}
		if snap == nil {
			snap = models.EmptySnapshot()
		}
		c.JSON(http.StatusOK, snap)
	}
}

// SyncData merges a client-submitted partial snapshot into the stored
// document and reports the post-merge counts.
func SyncData() gin.HandlerFunc {
	return func(c *gin.Context) {
		var incoming models.Snapshot
		if err := c.BindJSON(&incoming); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid sync payload"})
			return
		}

		_, stats, err := services.SyncSnapshot(&incoming)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "sync failed"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"success":     true,
			"playerCount": stats.PlayerCount,
			"setCount":    stats.SetCount,
		})
	}
}
