package cli

import (
	"errors"
	"fmt"
	"io"
	"math/rand"
	"strings"

	"cluedo-board/internal/board"
	"cluedo-board/internal/config"
	"cluedo-board/internal/game"
	"cluedo-board/internal/notebook"
	"cluedo-board/internal/player"

	"github.com/peterh/liner"
	"github.com/sirupsen/logrus"
)

// CLI manages all command-line interactions.
type CLI struct {
	log  *logrus.Logger
	line *liner.State
}

// NewCLI creates a new command-line interface manager.
func NewCLI(log *logrus.Logger) *CLI {
	line := liner.NewLiner()
	line.SetCtrlCAborts(true)
	return &CLI{
		log:  log,
		line: line,
	}
}

// Run is the main entry point for the CLI application.
func (c *CLI) Run(args []string, cfg *config.GameConfig, rand *rand.Rand) error {
	defer c.line.Close()
	if len(args) < 1 {
		c.printUsage()
		return errors.New("no command provided")
	}

	switch args[0] {
	case "play":
		return c.runGame(cfg, args[1:], rand)
	case "board":
		RenderLayout(board.New())
		return nil
	default:
		c.printUsage()
		return fmt.Errorf("unknown command '%s'", args[0])
	}
}

func (c *CLI) runGame(cfg *config.GameConfig, names []string, rand *rand.Rand) error {
	builder := game.NewBuilder(cfg, c.log, rand)
	builder.EventManager().Subscribe(&GameRenderer{})

	notes := make(map[string]*notebook.Notebook, len(names))
	for _, name := range names {
		nb := notebook.New(cfg.DeepCopy(), names, name, c.log)
		notes[name] = nb
		builder.EventManager().Subscribe(nb)
	}

	g, err := builder.WithPlayers(names...).Build()
	if err != nil {
		c.printUsage()
		return fmt.Errorf("failed to build game: %w", err)
	}
	c.printGameHelp()

	for g.Phase() == game.PhaseInProgress {
		current := g.CurrentPlayer()
		input, err := c.line.Prompt(fmt.Sprintf("(%s) ", current.Name()))
		if err != nil {
			return c.abort(g, current, err)
		}
		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}
		c.line.AppendHistory(input)
		cmd := strings.ToLower(strings.Fields(input)[0])

		switch cmd {
		case "hand", "ha":
			c.handleHandCommand(current)
		case "notes", "n":
			RenderNotes(notes[current.Name()])
		case "board", "b":
			RenderSnapshot(g.Snapshot())
		case "help", "h":
			c.printGameHelp()
		default:
			verb, err := game.ParseVerb(cmd)
			if err != nil {
				C.Warn.Printf("Unknown command '%s'. Type 'help' for a list of commands.\n", cmd)
				continue
			}
			if err := c.takeAction(g, current, verb); err != nil {
				return c.abort(g, current, err)
			}
		}
	}
	return nil
}

// abort ends the session when input is no longer available.
func (c *CLI) abort(g *game.Game, current *player.Player, err error) error {
	if errors.Is(err, liner.ErrPromptAborted) || errors.Is(err, io.EOF) {
		if g.Phase() == game.PhaseInProgress {
			_, _ = g.Apply(current.Name(), game.Quit{})
		}
		C.Info.Println("\nGoodbye!")
		return nil
	}
	return fmt.Errorf("error reading line: %w", err)
}

// takeAction collects the payload for a verb and applies it. Only input
// failures are returned; rule rejections are reported to the player.
func (c *CLI) takeAction(g *game.Game, p *player.Player, verb game.Verb) error {
	switch verb {
	case game.VerbMove:
		return c.handleMove(g, p)
	case game.VerbSuggest:
		C.Info.Printf("You are in the %s.\n", p.Position().Name())
		character, err := c.promptForCard(g.Config, config.CategoryCharacter, "Character")
		if err != nil {
			return err
		}
		weapon, err := c.promptForCard(g.Config, config.CategoryWeapon, "Weapon")
		if err != nil {
			return err
		}
		res, err := g.Apply(p.Name(), game.Suggest{Character: character, Weapon: weapon})
		c.report(res, err)
		if res.Disproval != nil {
			return c.revealPrivately(p, res.Disproval)
		}
	case game.VerbAccuse:
		room, err := c.promptForCard(g.Config, config.CategoryRoom, "Room")
		if err != nil {
			return err
		}
		character, err := c.promptForCard(g.Config, config.CategoryCharacter, "Character")
		if err != nil {
			return err
		}
		weapon, err := c.promptForCard(g.Config, config.CategoryWeapon, "Weapon")
		if err != nil {
			return err
		}
		c.report(g.Apply(p.Name(), game.Accuse{Room: room, Character: character, Weapon: weapon}))
	case game.VerbSecretPassage:
		c.report(g.Apply(p.Name(), game.UseSecretPassage{}))
	case game.VerbQuit:
		c.report(g.Apply(p.Name(), game.Quit{}))
	}
	return nil
}

func (c *CLI) handleMove(g *game.Game, p *player.Player) error {
	budget, err := g.RollForMove()
	if err != nil {
		c.report(game.Result{}, err)
		return nil
	}
	C.Info.Printf("You are at %s with %d steps to spend.\n", p.Coord(), budget)
	for {
		input, err := c.promptForString("Destination as 'row, column' (or 'cancel'): ")
		if err != nil {
			return err
		}
		if strings.EqualFold(input, "cancel") {
			return nil
		}
		row, col, err := parseCoordinates(input)
		if err != nil {
			C.Warn.Printf("%v. Try again.\n", err)
			continue
		}
		if _, err := g.Apply(p.Name(), game.Move{Row: row, Col: col}); err != nil {
			C.Warn.Printf("%v. Try again.\n", err)
			continue
		}
		return nil
	}
}

// revealPrivately shows the disproving card only once the suggester confirms
// they are alone at the keyboard.
func (c *CLI) revealPrivately(p *player.Player, d *game.Disproval) error {
	if _, err := c.line.Prompt(fmt.Sprintf("%s, press Enter when only you can see the screen. ", p.Name())); err != nil {
		return err
	}
	C.Yes.Printf("%s showed you: %s\n", ColorizePlayer(d.Disprover.Name()), ColorizeCard(d.Card.Name))
	if _, err := c.line.Prompt("Press Enter to hide it. "); err != nil {
		return err
	}
	fmt.Print(strings.Repeat("\n", 40))
	return nil
}

func (c *CLI) report(_ game.Result, err error) {
	switch {
	case err == nil:
	case errors.Is(err, game.ErrNotInRoom), errors.Is(err, game.ErrNoSecretPassage):
		C.Warn.Printf("%v. Your turn is over.\n", err)
	default:
		C.Warn.Printf("%v. Try again.\n", err)
	}
}

func (c *CLI) handleHandCommand(p *player.Player) {
	C.Header.Println("\n--- Your Hand ---")
	for _, card := range p.Hand() {
		C.Info.Println(" - " + ColorizeCard(card.Name))
	}
	if known := p.Known(); len(known) > 0 {
		C.Header.Println("--- Cards You Have Been Shown ---")
		for _, card := range known {
			from, _ := p.Knows(card)
			C.Info.Printf(" - %s (from %s)\n", ColorizeCard(card.Name), ColorizePlayer(from))
		}
	}
}
