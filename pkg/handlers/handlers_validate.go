package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/kbenzel/schichtplaner/pkg/models"
)

// ValidateShifts checks a batch without contacting the hub, so clients can
// pre-flight a submission
func (h *Handler) ValidateShifts(c *gin.Context) {
	var shifts []models.PlannedShift
	if err := c.ShouldBindJSON(&shifts); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"valid": false,
			"error": err.Error(),
		})
		return
	}

	if len(shifts) == 0 {
		c.JSON(http.StatusOK, gin.H{
			"valid": false,
			"error": "At least one planned shift is required",
		})
		return
	}

	// Check for duplicate triples
	seen := make(map[models.PlannedShift]bool)
	for _, s := range shifts {
		key := models.PlannedShift{
			Name:      strings.ToLower(s.Name),
			Date:      s.Date,
			ShiftType: strings.ToLower(s.ShiftType),
		}
		if seen[key] {
			c.JSON(http.StatusOK, gin.H{"valid": false, "error": "Duplicate planned shift: " + s.Name + " " + s.Date + " " + s.ShiftType})
			return
		}
		seen[key] = true
	}

	var unknown []string
	for _, s := range shifts {
		_, okEntity := h.Config.EntityID(s.Name)
		_, okDef := h.Catalog.Lookup(s.Name, s.ShiftType)
		if !okEntity || !okDef {
			unknown = append(unknown, s.Name+", "+s.ShiftType)
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"valid": len(unknown) == 0,
		"stats": gin.H{
			"item_count":    len(shifts),
			"unknown_items": unknown,
		},
	})
}
