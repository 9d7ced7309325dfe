package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/lipgloss"

	"github.com/kbenzel/schichtplaner/pkg/planner"
)

var CLI struct {
	Version kong.VersionFlag
	Server  string `help:"Base URL of the schichtplaner server." default:"http://127.0.0.1:3000"`
}

var (
	titleStyle   = lipgloss.NewStyle().Bold(true)
	headerStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	todayStyle   = lipgloss.NewStyle().Bold(true).Underline(true)
	pastStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	otherStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("237"))
	warnStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	errStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
)

func main() {
	kong.Parse(&CLI,
		kong.Name("planctl"),
		kong.Description("Interactive shift planning against a schichtplaner server"),
		kong.UsageOnError(),
		kong.Vars{"version": "v1.0.0"},
	)

	api := planner.NewClient(CLI.Server, nil)
	sub := planner.NewSubmitter(CLI.Server, nil)
	ctrl := planner.NewController(api, sub, time.Now())

	ctx := context.Background()

	opts, err := api.Options(ctx)
	if err != nil {
		fmt.Println(errStyle.Render("Server nicht erreichbar: " + err.Error()))
		os.Exit(1)
	}
	fmt.Println(titleStyle.Render("Schichtplaner"))
	fmt.Println("Personen: " + strings.Join(opts.Names, ", "))
	fmt.Println(`"help" zeigt alle Befehle.`)

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Printf("%s> ", prompt(ctrl))
		if !scanner.Scan() {
			return
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		cmd, args := fields[0], fields[1:]

		switch cmd {
		case "quit", "exit":
			return
		case "help":
			printHelp()
		case "person":
			if len(args) == 0 {
				warn("Name fehlt: person <name>")
				continue
			}
			types, err := ctrl.SelectPerson(ctx, args[0])
			if err != nil {
				warn("Unbekannte Person: " + args[0])
				continue
			}
			fmt.Println("Schichttypen: " + strings.Join(types, ", "))
		case "type":
			if len(args) == 0 {
				warn("Schichttyp fehlt: type <schichttyp>")
				continue
			}
			ctrl.SelectShiftType(args[0])
		case "grid":
			renderGrid(ctrl)
		case "click":
			if len(args) == 0 {
				warn("Tag fehlt: click <tag>")
				continue
			}
			clickDay(ctrl, args[0])
		case "list":
			renderSummary(ctrl)
		case "legend":
			renderLegend(ctrl)
		case "remove":
			if len(args) == 0 {
				warn("Index fehlt: remove <nr>")
				continue
			}
			i, err := strconv.Atoi(args[0])
			if err != nil {
				warn("Keine Zahl: " + args[0])
				continue
			}
			if removed, ok := ctrl.RemoveAt(i); ok {
				fmt.Printf("Schicht entfernt: %s - %s\n", removed.Name, planner.FormatDisplayDate(removed.Date))
			} else {
				warn("Kein Eintrag mit Index " + args[0])
			}
		case "clear":
			if ctrl.Store().Len() == 0 {
				continue
			}
			fmt.Printf("Wirklich alle %d geplanten Schichten löschen? (j/n) ", ctrl.Store().Len())
			if scanner.Scan() && strings.TrimSpace(scanner.Text()) == "j" {
				ctrl.ClearAll()
				fmt.Println(successStyle.Render("Alle Schichten gelöscht"))
			}
		case "next":
			ctrl.NextMonth()
			renderGrid(ctrl)
		case "prev":
			ctrl.PrevMonth()
			renderGrid(ctrl)
		case "today":
			ctrl.GoToToday(time.Now())
			renderGrid(ctrl)
		case "submit":
			submit(ctx, ctrl)
		default:
			warn("Unbekannter Befehl: " + cmd)
		}
	}
}

func prompt(ctrl *planner.Controller) string {
	parts := []string{}
	if ctrl.Person() != "" {
		parts = append(parts, ctrl.Person())
	}
	if ctrl.ShiftType() != "" {
		parts = append(parts, ctrl.ShiftType())
	}
	if len(parts) == 0 {
		return "planctl"
	}
	return strings.Join(parts, "/")
}

func warn(msg string) {
	fmt.Println(warnStyle.Render("⚠ " + msg))
}

func printHelp() {
	fmt.Print(`Befehle:
  person <name>      Person wählen (lädt Schichttypen)
  type <schichttyp>  Schichttyp wählen
  grid               Kalender anzeigen
  click <tag>        Tag im sichtbaren Monat an-/abwählen
  list               Geplante Schichten anzeigen
  legend             Farblegende anzeigen
  remove <nr>        Eintrag entfernen (Index aus "list")
  clear              Alle geplanten Schichten löschen
  next / prev        Monat wechseln
  today              Zum aktuellen Monat springen
  submit             Alle geplanten Schichten importieren
  quit               Beenden
`)
}

func clickDay(ctrl *planner.Controller, arg string) {
	day, err := strconv.Atoi(arg)
	if err != nil {
		warn("Kein Tag: " + arg)
		return
	}

	grid := ctrl.Grid(time.Now())
	for _, cell := range grid.Cells {
		if !cell.InMonth || cell.Day != day {
			continue
		}
		changed, err := ctrl.ClickDay(cell)
		if err != nil {
			warn(err.Error())
			return
		}
		if changed {
			renderGrid(ctrl)
			renderSummary(ctrl)
		}
		return
	}
	warn(fmt.Sprintf("Tag %d liegt nicht im sichtbaren Monat", day))
}

func renderGrid(ctrl *planner.Controller) {
	grid := ctrl.Grid(time.Now())
	fmt.Println(titleStyle.Render(grid.Title()))

	var header []string
	for _, d := range planner.DayHeaders {
		header = append(header, headerStyle.Render(fmt.Sprintf("%-7s", d)))
	}
	fmt.Println(strings.Join(header, ""))

	for row := 0; row < planner.GridCells/7; row++ {
		var line []string
		for col := 0; col < 7; col++ {
			cell := grid.Cells[row*7+col]
			line = append(line, renderCell(ctrl, cell))
		}
		fmt.Println(strings.Join(line, ""))
	}
}

func renderCell(ctrl *planner.Controller, cell planner.DayCell) string {
	num := fmt.Sprintf("%2d", cell.Day)
	switch {
	case !cell.InMonth:
		num = otherStyle.Render(num)
	case cell.Today:
		num = todayStyle.Render(num)
	case cell.Past:
		num = pastStyle.Render(num)
	}

	badges := ""
	width := 2
	for _, b := range cell.Badges(ctrl.Details()) {
		badges += lipgloss.NewStyle().Foreground(lipgloss.Color(b.Color)).Render(b.Initial)
		width++
	}
	pad := 7 - width
	if pad < 1 {
		pad = 1
	}
	return num + badges + strings.Repeat(" ", pad)
}

func renderSummary(ctrl *planner.Controller) {
	groups := planner.BuildSummary(ctrl.Store(), ctrl.Details())
	if len(groups) == 0 {
		fmt.Println("Keine Schichten geplant")
		return
	}
	for _, pg := range groups {
		fmt.Printf("%s (%d Schicht(en))\n", titleStyle.Render(pg.Name), pg.Count)
		for _, tg := range pg.Types {
			label := lipgloss.NewStyle().Foreground(lipgloss.Color(tg.Color)).Render(tg.ShiftType)
			fmt.Printf("  %s (%dx)\n", label, len(tg.Entries))
			for _, e := range tg.Entries {
				fmt.Printf("    [%d] %s\n", e.Index, e.Display)
			}
		}
	}
}

func renderLegend(ctrl *planner.Controller) {
	items := planner.BuildLegend(ctrl.Store(), ctrl.Details())
	if len(items) == 0 {
		return
	}
	fmt.Println("Legende:")
	for _, it := range items {
		swatch := lipgloss.NewStyle().Foreground(lipgloss.Color(it.Color)).Render("■")
		fmt.Printf("  %s %s (%s %s)\n", swatch, it.ShiftType, it.Glyph, it.GroupName)
	}
}

func submit(ctx context.Context, ctrl *planner.Controller) {
	total := ctrl.Store().Len()
	outcome, err := ctrl.Import(ctx)
	if err != nil {
		switch err {
		case planner.ErrNothingToImport, planner.ErrImportInFlight:
			warn(err.Error())
		default:
			fmt.Println(errStyle.Render("Fehler beim Import: " + err.Error()))
		}
		return
	}

	for _, r := range outcome.Results {
		if planner.IsFailure(r) {
			fmt.Println(errStyle.Render("✕ " + r))
		} else {
			fmt.Println(successStyle.Render("✓ " + r))
		}
	}
	fmt.Printf("%d von %d Schichten importiert\n", outcome.Succeeded, total)
}
