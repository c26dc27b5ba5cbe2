package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/ericogr/saber-duel/internal/engine"
	"github.com/ericogr/saber-duel/internal/game"
	"github.com/google/uuid"
)

const helpText = `commands:
  list           show characters and the current fight
  pick <name>    choose your character
  fight <name>   choose an opponent
  attack         attack the current opponent
  reset          start over
  quit           leave`

type shell struct {
	s   *game.Session
	out io.Writer
}

func run(in io.Reader, out io.Writer, roster []game.Character) error {
	sh := &shell{s: game.NewSession(uuid.NewString(), roster), out: out}
	fmt.Fprintln(out, helpText)
	sh.list()

	sc := bufio.NewScanner(in)
	for {
		fmt.Fprint(out, "> ")
		if !sc.Scan() {
			fmt.Fprintln(out)
			return sc.Err()
		}
		cmd, arg, _ := strings.Cut(strings.TrimSpace(sc.Text()), " ")
		arg = strings.TrimSpace(arg)
		switch strings.ToLower(cmd) {
		case "":
		case "list", "ls":
			sh.list()
		case "pick":
			sh.pick(arg)
		case "fight":
			sh.fight(arg)
		case "attack", "a":
			sh.attack()
		case "reset":
			sh.s.Reset()
			fmt.Fprintln(out, "Game reset.")
			sh.list()
		case "quit", "exit", "q":
			return nil
		case "help", "?":
			fmt.Fprintln(out, helpText)
		default:
			fmt.Fprintf(out, "unknown command %q, type help\n", cmd)
		}
	}
}

func (sh *shell) list() {
	s := sh.s
	if chars := s.Selectable(); len(chars) > 0 {
		fmt.Fprintln(sh.out, "Choose your character:")
		for _, c := range chars {
			fmt.Fprintf(sh.out, "  %-20s HP %4d  ATK %3d\n", c.Name, c.HealthPoints, c.AttackPower)
		}
		return
	}
	fmt.Fprintf(sh.out, "You: %s  HP %d  ATK %d\n", s.Player.Name, s.Player.HealthPoints, s.Player.AttackPower)
	if s.Enemy != nil {
		fmt.Fprintf(sh.out, "Defender: %s  HP %d\n", s.Enemy.Name, s.Enemy.HealthPoints)
	}
	if enemies := s.AvailableEnemies(); len(enemies) > 0 {
		fmt.Fprintln(sh.out, "Enemies available to attack:")
		for _, c := range enemies {
			fmt.Fprintf(sh.out, "  %-20s HP %4d  ATK %3d\n", c.Name, c.HealthPoints, c.AttackPower)
		}
	}
	if s.Message != "" {
		fmt.Fprintln(sh.out, s.Message)
	}
}

func (sh *shell) pick(name string) {
	changed, err := sh.s.SelectPlayer(name)
	if err != nil {
		sh.fail(err)
		return
	}
	if !changed {
		fmt.Fprintln(sh.out, "You already chose a character.")
		return
	}
	sh.list()
}

func (sh *shell) fight(name string) {
	if sh.s.Player == nil {
		fmt.Fprintln(sh.out, "Pick your character first.")
		return
	}
	changed, err := sh.s.SelectEnemy(name)
	if err != nil {
		sh.fail(err)
		return
	}
	if !changed {
		fmt.Fprintln(sh.out, "Finish the current fight first.")
		return
	}
	sh.list()
}

func (sh *shell) attack() {
	res, err := engine.ResolveRound(sh.s)
	if err != nil {
		sh.fail(err)
		return
	}
	for _, line := range res.Log {
		fmt.Fprintln(sh.out, line)
	}
	switch {
	case res.GameWon, res.GameLost:
		fmt.Fprintf(sh.out, "*** %s ***\n", res.Message)
		sh.list()
	case res.Outcome == game.OutcomeEnemyDefeated:
		sh.list()
	default:
		fmt.Fprintln(sh.out, res.Message)
	}
}

func (sh *shell) fail(err error) {
	switch {
	case errors.Is(err, game.ErrNoTarget):
		fmt.Fprintln(sh.out, game.MsgSelectEnemy)
	case errors.Is(err, game.ErrUnknownCharacter):
		fmt.Fprintln(sh.out, "No such character.")
	case errors.Is(err, game.ErrCharacterUnavailable):
		fmt.Fprintln(sh.out, "That character is not an available opponent.")
	default:
		fmt.Fprintln(sh.out, err)
	}
}
