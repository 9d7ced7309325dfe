package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kbenzel/schichtplaner/pkg/database"
)

// GetStats returns the recent per-day import statistics
func (h *Handler) GetStats(c *gin.Context) {
	var stats []database.ImportStat
	if err := h.DB.Order("date desc").Limit(30).Find(&stats).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not fetch import stats"})
		return
	}

	// Calculate totals
	var totalBatches, totalItems, totalSucceeded, totalFailed int64
	for _, s := range stats {
		totalBatches += int64(s.Batches)
		totalItems += int64(s.Items)
		totalSucceeded += int64(s.Succeeded)
		totalFailed += int64(s.Failed)
	}

	c.JSON(http.StatusOK, gin.H{
		"history": stats,
		"totals": gin.H{
			"batches":   totalBatches,
			"items":     totalItems,
			"succeeded": totalSucceeded,
			"failed":    totalFailed,
		},
	})
}
