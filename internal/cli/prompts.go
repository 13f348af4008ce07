package cli

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"cluedo-board/internal/board"
	"cluedo-board/internal/config"
	"cluedo-board/internal/game"
	"cluedo-board/internal/notebook"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// C holds pre-configured color objects for printing to the console.
var C = struct {
	Yes, No, Maybe, Info, Warn, Header, Prompt, Debug *color.Color
}{
	Yes:    color.New(color.FgGreen),
	No:     color.New(color.FgRed),
	Maybe:  color.New(color.FgYellow),
	Info:   color.New(color.FgCyan),
	Warn:   color.New(color.FgHiYellow),
	Header: color.New(color.FgWhite, color.Bold),
	Prompt: color.New(color.FgHiWhite),
	Debug:  color.New(color.FgMagenta),
}

// CharacterColors maps character names to specific colors for display.
var CharacterColors = map[string]*color.Color{
	"Miss Scarlet":    color.New(color.FgRed),
	"Colonel Mustard": color.New(color.FgYellow),
	"Mrs. White":      color.New(color.FgWhite),
	"Mr. Green":       color.New(color.FgGreen),
	"Mrs. Peacock":    color.New(color.FgBlue),
	"Professor Plum":  color.New(color.FgMagenta),
}

// seatColors is the palette handed out to players in seating order.
var seatColors = []*color.Color{
	color.New(color.FgHiRed, color.Bold),
	color.New(color.FgHiBlue, color.Bold),
	color.New(color.FgHiGreen, color.Bold),
	color.New(color.FgHiMagenta, color.Bold),
	color.New(color.FgHiYellow, color.Bold),
	color.New(color.FgHiCyan, color.Bold),
}

var playerColors = map[string]*color.Color{}

func assignPlayerColors(names []string) {
	playerColors = make(map[string]*color.Color, len(names))
	for i, name := range names {
		playerColors[name] = seatColors[i%len(seatColors)]
	}
}

// ColorizeCard returns a card name as a colored string if it's a character.
func ColorizeCard(name string) string {
	if c, ok := CharacterColors[name]; ok {
		return c.Sprint(name)
	}
	return name
}

// ColorizePlayer returns a player name in the player's seat color.
func ColorizePlayer(name string) string {
	if c, ok := playerColors[name]; ok {
		return c.Sprint(name)
	}
	return name
}

// passageMarks tags each end of a secret passage with a shared symbol.
var passageMarks = map[string]string{
	"Study":        "★",
	"Kitchen":      "★",
	"Conservatory": "✦",
	"Lounge":       "✦",
}

// RenderSnapshot draws the board occupancy as a grid.
func RenderSnapshot(snap board.Snapshot) {
	if len(snap) == 0 {
		return
	}
	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	header := table.Row{""}
	for col := range snap[0] {
		header = append(header, col)
	}
	t.AppendHeader(header)

	for r, row := range snap {
		out := table.Row{r}
		for _, cell := range row {
			out = append(out, cellText(cell))
		}
		t.AppendRow(out)
		t.AppendSeparator()
	}
	t.SetStyle(table.StyleLight)
	t.Style().Format.Header = text.FormatDefault
	configs := []table.ColumnConfig{{Number: 1, Align: text.AlignRight}}
	for col := range snap[0] {
		configs = append(configs, table.ColumnConfig{Number: col + 2, Align: text.AlignCenter, WidthMax: 10})
	}
	t.SetColumnConfigs(configs)
	t.Render()
}

func cellText(cell board.Cell) string {
	var lines []string
	switch {
	case cell.Kind == board.KindRoom && cell.Name == board.StartRoom:
		lines = append(lines, C.Header.Sprint("Start"))
	case cell.Kind == board.KindRoom:
		name := cell.Name
		if mark, ok := passageMarks[cell.Name]; ok && cell.SecretPassage != "" {
			name += " " + mark
		}
		lines = append(lines, C.Header.Sprint(name))
	case len(cell.Occupants) == 0:
		lines = append(lines, "·")
	}
	for _, name := range cell.Occupants {
		lines = append(lines, ColorizePlayer(name))
	}
	return strings.Join(lines, "\n")
}

// RenderLayout lists every room with its position and passage.
func RenderLayout(b *board.Board) {
	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.SetTitle("Mansion Layout")
	t.AppendHeader(table.Row{"Room", "Row", "Col", "Secret Passage"})
	rooms := append(b.Rooms(), b.Start())
	for _, room := range rooms {
		coord, err := b.CoordinatesOf(room)
		if err != nil {
			continue
		}
		passage := ""
		if target := room.SecretPassage(); target != nil {
			passage = target.Name()
		}
		t.AppendRow(table.Row{room.Name(), coord.Row, coord.Col, passage})
	}
	t.SetStyle(table.StyleRounded)
	t.Style().Title.Align = text.AlignCenter
	t.Render()
}

// RenderNotes displays a player's knowledge grid in a formatted table.
func RenderNotes(nb *notebook.Notebook) {
	cfg := nb.Config()
	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.SetTitle(fmt.Sprintf("%s's Detective Notes", nb.Owner()))
	header := table.Row{"ID", "Card", "Type"}
	for _, pName := range nb.Players() {
		header = append(header, ColorizePlayer(pName))
	}
	header = append(header, "Solution")
	t.AppendHeader(header)

	for cardID, card := range cfg.AllCards {
		if cardID > 0 && cfg.CardToType[card] != cfg.CardToType[cfg.AllCards[cardID-1]] {
			t.AppendSeparator()
		}
		cat := cfg.CardToType[card]
		row := table.Row{cardID + 1, ColorizeCard(card), cat.String()}
		for _, pName := range nb.Players() {
			row = append(row, statusToSymbol(nb.Status(card, pName)))
		}
		row = append(row, statusToSymbol(nb.Status(card, notebook.Solution)))
		t.AppendRow(row)
	}
	t.SetStyle(table.StyleRounded)
	t.Style().Options.SeparateRows = false
	t.Style().Title.Align = text.AlignCenter
	t.SetColumnConfigs([]table.ColumnConfig{{Number: 1, Align: text.AlignRight}})
	t.Render()

	if room, character, weapon, ok := nb.Accusation(); ok {
		C.Yes.Printf("Your notes point to %s with the %s in the %s.\n", ColorizeCard(character), weapon, room)
	}
}

func statusToSymbol(status notebook.CardStatus) string {
	switch status {
	case notebook.StatusYes:
		return C.Yes.Sprint("✔")
	case notebook.StatusNo:
		return C.No.Sprint("✖")
	default:
		return C.Maybe.Sprint("?")
	}
}

// --- Prompting and Usage ---

func (c *CLI) printUsage() {
	C.Header.Println("\n--- Cluedo Board ---")
	fmt.Println("Usage:")
	fmt.Println("  go run ./cmd/cluedo play <name> <name> [<name>...]")
	fmt.Println("    Start a hot-seat game for 2 to 6 players.")
	fmt.Println("  go run ./cmd/cluedo board")
	fmt.Println("    Show the mansion layout.")
	fmt.Println("\nFlags:")
	fmt.Println("  -loglevel debug    Enable detailed rules tracing.")
	fmt.Println("  -seed N            Replay a game with a fixed random seed.")
	fmt.Println("  -config FILE       Use card names from a JSON file.")
}

func (c *CLI) printGameHelp() {
	C.Header.Println("\n--- Game Help ---")
	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.AppendHeader(table.Row{"Command", "Alias", "Description"})
	t.AppendSeparator()
	t.AppendRows([]table.Row{
		{"move", "m", "Roll the dice and walk up to that many steps."},
		{"suggest", "s", "Name a character and weapon for the room you are in."},
		{"accuse", "a", "Name the room, character and weapon. A wrong guess puts you out."},
		{"secret", "p", "Try the room's secret passage. Needs an even roll."},
		{"hand", "ha", "Show the cards in your hand."},
		{"notes", "n", "Show your detective notes."},
		{"board", "b", "Show the board."},
		{"help", "h", "Show this help message."},
		{"quit", "q", "End the game for everyone."},
	})
	t.SetStyle(table.StyleLight)
	t.Render()
}

func (c *CLI) promptForString(prompt string) (string, error) {
	for {
		C.Prompt.Print(prompt)
		input, err := c.line.Prompt("")
		if err != nil {
			return "", err
		}
		trimmed := strings.TrimSpace(input)
		if trimmed != "" {
			c.line.AppendHistory(trimmed)
			return trimmed, nil
		}
	}
}

// promptForCard asks for a card of the given category by name or list number.
func (c *CLI) promptForCard(cfg *config.GameConfig, cat config.CardCategory, label string) (string, error) {
	options := cfg.CardListForCategory(cat)
	for i, opt := range options {
		fmt.Printf(" %2d: %s\n", i+1, ColorizeCard(opt))
	}
	input, err := c.promptForString(label + ": ")
	if err != nil {
		return "", err
	}
	if num, err := strconv.Atoi(input); err == nil && num >= 1 && num <= len(options) {
		return options[num-1], nil
	}
	return input, nil
}

// parseCoordinates reads "row, col" or "row col".
func parseCoordinates(input string) (int, int, error) {
	fields := strings.FieldsFunc(input, func(r rune) bool {
		return r == ',' || r == ' ' || r == '(' || r == ')'
	})
	if len(fields) != 2 {
		return 0, 0, fmt.Errorf("%w: expected 'row, column', got %q", game.ErrMalformedAction, input)
	}
	row, err := strconv.Atoi(fields[0])
	if err != nil {
		return 0, 0, fmt.Errorf("%w: bad row %q", game.ErrMalformedAction, fields[0])
	}
	col, err := strconv.Atoi(fields[1])
	if err != nil {
		return 0, 0, fmt.Errorf("%w: bad column %q", game.ErrMalformedAction, fields[1])
	}
	return row, col, nil
}
