package planner

import (
	"context"
	"errors"
	"time"

	"github.com/kbenzel/schichtplaner/pkg/models"
)

// ErrSelectionRequired rejects a day click while person or shift type is
// missing. Callers surface it as a warning and leave the store alone.
var ErrSelectionRequired = errors.New("bitte zuerst Name und Schichttyp auswählen")

// ViewState is the transient UI focus. It is never submitted to the server.
type ViewState struct {
	Year  int
	Month time.Month
}

// Controller owns all mutable planning state for one session: the store, the
// current selections, the visible month, the per-person metadata cache and
// the import latch. There are no ambient globals; every renderer and
// submitter works off this one object.
type Controller struct {
	api   *Client
	sub   *Submitter
	store *PlanningStore

	view      ViewState
	person    string
	shiftType string

	// details caches shift metadata per lowercase person for the session.
	// It is never invalidated; a server-side catalog change mid-session is
	// an accepted limitation.
	details map[string]map[string]models.ShiftDefinition
}

// NewController creates a controller for one planning session, with the
// visible month taken from now.
func NewController(api *Client, sub *Submitter, now time.Time) *Controller {
	return &Controller{
		api:     api,
		sub:     sub,
		store:   NewPlanningStore(),
		view:    ViewState{Year: now.Year(), Month: now.Month()},
		details: make(map[string]map[string]models.ShiftDefinition),
	}
}

// Store exposes the planning store for rendering.
func (c *Controller) Store() *PlanningStore {
	return c.store
}

// Person returns the currently selected person.
func (c *Controller) Person() string {
	return c.person
}

// ShiftType returns the currently selected shift type.
func (c *Controller) ShiftType() string {
	return c.shiftType
}

// View returns the visible month.
func (c *Controller) View() ViewState {
	return c.view
}

// SelectPerson switches the active person, fetches their shift types and
// resets the shift-type selection. Shift metadata is warmed best-effort; a
// failing details fetch just means badges render without glyphs.
func (c *Controller) SelectPerson(ctx context.Context, name string) ([]string, error) {
	types, err := c.api.ShiftTypes(ctx, name)
	if err != nil {
		return nil, err
	}
	c.person = name
	c.shiftType = ""

	key := normalizeKey(name)
	if _, ok := c.details[key]; !ok {
		if defs, err := c.api.ShiftDetails(ctx, name); err == nil {
			c.details[key] = defs
		}
	}
	return types, nil
}

// SelectShiftType switches the active shift type.
func (c *Controller) SelectShiftType(shiftType string) {
	c.shiftType = shiftType
}

// Details returns the session's shift-metadata cache.
func (c *Controller) Details() map[string]map[string]models.ShiftDefinition {
	return c.details
}

// ClickDay applies the day-click contract: inert cells change nothing,
// a missing selection is rejected with ErrSelectionRequired, and otherwise
// the triple is toggled. The returned flag tells the caller to re-render.
func (c *Controller) ClickDay(cell DayCell) (bool, error) {
	if !cell.Clickable() {
		return false, nil
	}
	if c.person == "" || c.shiftType == "" {
		return false, ErrSelectionRequired
	}
	return c.store.Toggle(c.person, cell.Date, c.shiftType), nil
}

// RemoveAt removes one staged selection by its store index.
func (c *Controller) RemoveAt(i int) (models.PlannedShift, bool) {
	return c.store.RemoveAt(i)
}

// ClearAll empties the store. Confirmation is the caller's business.
func (c *Controller) ClearAll() {
	c.store.Clear()
}

// Grid builds the render model for the visible month.
func (c *Controller) Grid(today time.Time) MonthGrid {
	return BuildMonthGrid(c.view.Year, c.view.Month, today, c.store)
}

// NextMonth moves the visible month forward.
func (c *Controller) NextMonth() {
	c.shiftMonth(1)
}

// PrevMonth moves the visible month back.
func (c *Controller) PrevMonth() {
	c.shiftMonth(-1)
}

// GoToToday jumps the view back to the current month.
func (c *Controller) GoToToday(now time.Time) {
	c.view = ViewState{Year: now.Year(), Month: now.Month()}
}

func (c *Controller) shiftMonth(delta int) {
	t := time.Date(c.view.Year, c.view.Month, 1, 0, 0, 0, 0, time.UTC).AddDate(0, delta, 0)
	c.view = ViewState{Year: t.Year(), Month: t.Month()}
}

// ImportOutcome summarizes one finished batch import.
type ImportOutcome struct {
	Results   []string
	Succeeded int
	Failed    int
	Cleared   bool
}

// Import flushes the store to the batch endpoint. On any success the store is
// cleared entirely, failed items included; on a transport error the store is
// preserved for retry and the error is returned.
func (c *Controller) Import(ctx context.Context) (ImportOutcome, error) {
	results, err := c.sub.Submit(ctx, c.store.Shifts())
	if err != nil {
		return ImportOutcome{}, err
	}

	outcome := ImportOutcome{
		Results:   results,
		Succeeded: SuccessCount(results),
	}
	outcome.Failed = len(results) - outcome.Succeeded

	if outcome.Succeeded > 0 {
		c.store.Clear()
		outcome.Cleared = true
	}
	return outcome, nil
}
