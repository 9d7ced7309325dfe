package handlers

import (
	"embed"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/kbenzel/schichtplaner/pkg/catalog"
	"github.com/kbenzel/schichtplaner/pkg/config"
	"github.com/kbenzel/schichtplaner/pkg/database"
	"github.com/kbenzel/schichtplaner/pkg/hub"
	"github.com/kbenzel/schichtplaner/pkg/models"
)

//go:embed static/*
var staticEmbed embed.FS

// Handler contains dependencies for the route handlers
type Handler struct {
	Catalog *catalog.Catalog
	Config  *config.Config
	Hub     hub.EventCreator
	DB      *gorm.DB
}

// Index serves the landing page from the embedded files
func (h *Handler) Index(c *gin.Context) {
	data, err := staticEmbed.ReadFile("static/index.html")
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "static/index.html not found in embedded FS"})
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", data)
}

// Options returns the person roster and a representative shift-type sample.
// The roster comes from the calendar-entity registry with display casing
// applied; the sample reflects the first person's catalog entry only, since
// clients re-fetch per person anyway.
func (h *Handler) Options(c *gin.Context) {
	names := make([]string, 0, len(h.Config.Entities))
	for _, name := range h.Config.Names() {
		names = append(names, catalog.FormatName(name))
	}

	var shiftTypes []string
	if first := h.Catalog.Names(); len(first) > 0 {
		if types, ok := h.Catalog.ShiftTypes(first[0]); ok {
			for _, t := range types {
				shiftTypes = append(shiftTypes, catalog.FormatShiftType(t))
			}
		}
	}
	if shiftTypes == nil {
		shiftTypes = []string{}
	}

	c.JSON(http.StatusOK, models.OptionsResponse{Names: names, ShiftTypes: shiftTypes})
}

// ShiftTypes returns the shift types for one person, 404 with an empty list
// for unknown persons.
func (h *Handler) ShiftTypes(c *gin.Context) {
	name := strings.ToLower(c.Param("name"))

	types, ok := h.Catalog.ShiftTypes(name)
	if !ok {
		c.JSON(http.StatusNotFound, models.ShiftTypesResponse{ShiftTypes: []string{}})
		return
	}

	formatted := make([]string, 0, len(types))
	for _, t := range types {
		formatted = append(formatted, catalog.FormatShiftType(t))
	}
	c.JSON(http.StatusOK, models.ShiftTypesResponse{ShiftTypes: formatted})
}

// ShiftDetails returns the start/end/category metadata for one person's
// shift types. Clients treat any error here as "no metadata".
func (h *Handler) ShiftDetails(c *gin.Context) {
	name := strings.ToLower(c.Param("name"))

	defs, ok := h.Catalog.Definitions(name)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{})
		return
	}
	c.JSON(http.StatusOK, defs)
}

// AddShifts processes a batch of planned shifts and returns one
// human-readable result string per item, in input order. Unknown
// person/shift-type combinations and upstream failures produce marker
// strings; they never abort the remaining items.
func (h *Handler) AddShifts(c *gin.Context) {
	var shifts []models.PlannedShift
	if err := c.ShouldBindJSON(&shifts); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	results := make([]string, 0, len(shifts))
	succeeded := 0

	for _, shift := range shifts {
		rawName := strings.ToLower(shift.Name)
		rawType := strings.ToLower(shift.ShiftType)
		formattedName := catalog.FormatName(rawName)
		formattedType := catalog.FormatShiftType(rawType)

		entityID, okEntity := h.Config.EntityID(rawName)
		def, okDef := h.Catalog.Lookup(rawName, rawType)
		if !okEntity || !okDef {
			results = append(results, fmt.Sprintf(
				"Unbekannter Name oder Schichttyp: %s, %s", formattedName, formattedType))
			continue
		}

		summary := fmt.Sprintf("%s: %s", formattedName, formattedType)
		ev := hub.Event{
			EntityID:      entityID,
			Summary:       summary,
			Description:   fmt.Sprintf("Schicht von %s bis %s", def.Start, def.End),
			StartDateTime: fmt.Sprintf("%s %s", shift.Date, def.Start),
			EndDateTime:   fmt.Sprintf("%s %s", shift.Date, def.End),
		}

		if err := h.Hub.CreateEvent(c.Request.Context(), ev); err != nil {
			results = append(results, fmt.Sprintf(
				"Fehler beim Hinzufügen von %s am %s: %v", summary, shift.Date, err))
			continue
		}

		succeeded++
		results = append(results, fmt.Sprintf("Ereignis hinzugefügt: %s am %s", summary, shift.Date))
	}

	database.RecordImport(h.DB, len(shifts), succeeded, len(shifts)-succeeded)

	c.JSON(http.StatusOK, results)
}
