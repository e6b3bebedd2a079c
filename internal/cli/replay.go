package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"killspree/internal/app"
	"killspree/internal/config"
	"killspree/internal/ports/nakama"

	"github.com/spf13/cobra"
)

// absentPlayer marks a missing attacker or victim in a kill line.
const absentPlayer = "-"

var replayCmd = &cobra.Command{
	Use:   "replay <settings.yaml> <events|->",
	Short: "Replay kill events and print the announcements",
	Long: `Replays a session script through the spree tracker. One event per line:

  join <id> <name>          add a player
  leave <id>                remove a player and their spree
  mute <id>                 hide a player's announcements
  kill <attacker> <victim>  report a kill, "-" for an absent player
  end                       end the session (resets sprees when reset_spree is on)
  spree <caller> [target]   ask for a spree report, "-" as caller for the server

Blank lines and lines starting with "#" are ignored. Use "-" to read events from stdin.`,
	Args: cobra.ExactArgs(2),
	RunE: runReplay,
}

func init() {
	rootCmd.AddCommand(replayCmd)
}

func runReplay(cmd *cobra.Command, args []string) error {
	settings, catalog, err := loadCatalog(args[0])
	if err != nil {
		return err
	}

	in := cmd.InOrStdin()
	if args[1] != "-" {
		f, err := os.Open(args[1])
		if err != nil {
			return fmt.Errorf("failed to open events: %w", err)
		}
		defer f.Close()
		in = f
	}

	return replay(in, cmd.OutOrStdout(), catalog, config.NewStore(settings))
}

// lineSink prints announcements and private notices.
type lineSink struct {
	out io.Writer
}

func (s lineSink) Say(text string) {
	fmt.Fprintln(s.out, text)
}

func (s lineSink) notify(userID, text string) {
	fmt.Fprintf(s.out, "[to %s] %s\n", userID, text)
}

func replay(in io.Reader, out io.Writer, catalog *app.MessageCatalog, settings *config.Store) error {
	sink := lineSink{out: out}
	roster := nakama.NewRoster(sink.notify)
	session := app.NewSession(roster, roster, catalog, sink, settings.ResetSpree)

	scanner := bufio.NewScanner(in)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 || strings.HasPrefix(fields[0], "#") {
			continue
		}
		if err := replayLine(session, roster, sink, fields); err != nil {
			return fmt.Errorf("line %d: %w", lineNo, err)
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read events: %w", err)
	}
	return nil
}

func replayLine(session *app.Session, roster *nakama.Roster, sink lineSink, fields []string) error {
	args := fields[1:]
	switch fields[0] {
	case "join":
		if len(args) < 2 {
			return fmt.Errorf("usage: join <id> <name>")
		}
		roster.Add(args[0], strings.Join(args[1:], " "), false)
	case "leave":
		if len(args) != 1 {
			return fmt.Errorf("usage: leave <id>")
		}
		roster.Leave(args[0])
	case "mute":
		if len(args) != 1 {
			return fmt.Errorf("usage: mute <id>")
		}
		p, ok := roster.Player(args[0])
		if !ok {
			return fmt.Errorf("unknown player %q", args[0])
		}
		p.Hidden = true
	case "kill":
		if len(args) != 2 {
			return fmt.Errorf("usage: kill <attacker> <victim>")
		}
		session.Tracker.OnKill(playerID(args[0]), playerID(args[1]))
	case "end":
		session.Reset.OnSessionEnd()
	case "spree":
		if len(args) < 1 {
			return fmt.Errorf("usage: spree <caller> [target]")
		}
		caller, _ := roster.Player(playerID(args[0]))
		report, ok := session.Query.ReportSpree(caller, strings.Join(args[1:], " "))
		if ok {
			sink.Say(report.Text)
		}
	default:
		return fmt.Errorf("unknown event %q", fields[0])
	}
	return nil
}

func playerID(arg string) string {
	if arg == absentPlayer {
		return ""
	}
	return arg
}
