// Package sim parses sim command flags and runs an interactive console
// against a local game runtime.
package sim

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/industry-digital/flux-game-sub010/internal/errors/i18n"
	"github.com/industry-digital/flux-game-sub010/internal/game/app"
	"github.com/industry-digital/flux-game-sub010/internal/game/engine"
	"github.com/industry-digital/flux-game-sub010/internal/game/event"
	"github.com/industry-digital/flux-game-sub010/internal/game/schema"
	"github.com/industry-digital/flux-game-sub010/internal/game/world"
	"github.com/industry-digital/flux-game-sub010/internal/id"
	entrypoint "github.com/industry-digital/flux-game-sub010/internal/platform/cmd"
	"github.com/industry-digital/flux-game-sub010/internal/storage"
	sqlitestore "github.com/industry-digital/flux-game-sub010/internal/storage/sqlite"
	"github.com/industry-digital/flux-game-sub010/internal/tuning"
)

const journalFile = "journal.sqlite"

// disconnectTimeout bounds the session close dispatched on exit; the loop
// context may already be cancelled by then.
const disconnectTimeout = 5 * time.Second

// Config holds sim command configuration.
type Config struct {
	DataDir string `env:"FLUX_SIM_DATA_DIR" envDefault:"data"`
	Tuning  string `env:"FLUX_SIM_TUNING"`
	Memory  bool   `env:"FLUX_SIM_MEMORY"`
	Locale  string `env:"FLUX_SIM_LOCALE" envDefault:"en-US"`
}

// ParseConfig parses environment and flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}
	fs.StringVar(&cfg.DataDir, "data", cfg.DataDir, "directory holding the journal database")
	fs.StringVar(&cfg.Tuning, "tuning", cfg.Tuning, "path to a tuning overrides file")
	fs.BoolVar(&cfg.Memory, "memory", cfg.Memory, "run without persisting the journal")
	fs.StringVar(&cfg.Locale, "locale", cfg.Locale, "locale for rejection messages")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run executes the sim command: one pilot on the demo battlefield, reading
// command lines from in until input ends, "quit", or cancellation.
func Run(ctx context.Context, cfg Config, in io.Reader, out, errOut io.Writer) error {
	if in == nil {
		in = strings.NewReader("")
	}
	if out == nil {
		out = io.Discard
	}
	if errOut == nil {
		errOut = io.Discard
	}
	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceSim, func(ctx context.Context) error {
		return run(ctx, cfg, in, out, errOut)
	})
}

func run(ctx context.Context, cfg Config, in io.Reader, out, errOut io.Writer) error {
	tun := tuning.Default()
	if cfg.Tuning != "" {
		var err error
		tun, err = tuning.Load(cfg.Tuning)
		if err != nil {
			return fmt.Errorf("load tuning: %w", err)
		}
	}
	sch := schema.Default()
	state, pilot := app.NewDemoWorld(tun, sch)

	var journal storage.Journal
	if !cfg.Memory {
		store, err := sqlitestore.Open(filepath.Join(cfg.DataDir, journalFile))
		if err != nil {
			return fmt.Errorf("open journal: %w", err)
		}
		defer func() {
			if cerr := store.Close(); cerr != nil {
				fmt.Fprintf(errOut, "close journal: %v\n", cerr)
			}
		}()
		journal = store
	}

	rt, err := app.New(app.Config{
		World:   state,
		Tuning:  tun,
		Schema:  sch,
		Journal: journal,
	})
	if err != nil {
		return err
	}

	c := &console{
		runtime: rt,
		actor:   pilot,
		catalog: i18n.GetCatalog(cfg.Locale),
		out:     out,
		errOut:  errOut,
	}
	return c.loop(ctx, in)
}

// console owns one pilot's interactive loop and its workbench session state.
type console struct {
	runtime *app.Runtime
	actor   world.ActorID
	catalog *i18n.Catalog
	out     io.Writer
	errOut  io.Writer

	// session is the open workbench session id, empty when none.
	session string
}

func (c *console) loop(ctx context.Context, in io.Reader) error {
	c.banner()

	sc := bufio.NewScanner(in)
	for {
		fmt.Fprint(c.out, "> ")
		if !sc.Scan() {
			break
		}
		// Scanner reads are not interruptible; cancellation lands between lines.
		if ctx.Err() != nil {
			break
		}
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		if line == "quit" || line == "exit" {
			break
		}
		c.submit(ctx, line)
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("read input: %w", err)
	}
	return c.disconnect()
}

func (c *console) banner() {
	name := string(c.actor)
	place := ""
	if a, ok := c.runtime.World().Actor(c.actor); ok {
		name = a.Name
		if p, ok := c.runtime.World().Place(a.Location); ok {
			place = p.Name
		}
	}
	if place != "" {
		fmt.Fprintf(c.out, "Linked to %s in %s.\n", name, place)
	} else {
		fmt.Fprintf(c.out, "Linked to %s.\n", name)
	}
	fmt.Fprintln(c.out, `Commands: advance, shell swap, workbench. "quit" disconnects.`)
}

// submit runs one input line. A candidate session id is minted whenever no
// session is open; it only sticks if the invocation declares session_started.
func (c *console) submit(ctx context.Context, line string) {
	session := c.session
	if session == "" {
		session = id.MustNewID()
	}

	out, err := c.runtime.Submit(ctx, c.actor, session, line)
	if err != nil {
		fmt.Fprintf(c.errOut, "journal: %v\n", err)
	}
	c.report(out)
}

func (c *console) report(out engine.Outcome) {
	if !out.OK() {
		fmt.Fprintf(c.out, "! %s\n", c.catalog.Format(string(out.Failure.Code), out.Failure.Meta))
		return
	}
	for _, evt := range out.Events {
		if len(evt.PayloadJSON) > 0 {
			fmt.Fprintf(c.out, "* %s %s\n", evt.Type, evt.PayloadJSON)
		} else {
			fmt.Fprintf(c.out, "* %s\n", evt.Type)
		}
	}
	c.observe(out.Events)
}

// observe tracks workbench session lifetime from declared events.
func (c *console) observe(events []event.Event) {
	for _, evt := range events {
		switch evt.Type {
		case event.TypeSessionStarted:
			c.session = evt.Session
		case event.TypeSessionEnded:
			c.session = ""
		}
	}
}

// disconnect closes any session left open so staged mutations do not
// outlive the console.
func (c *console) disconnect() error {
	if c.session == "" {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), disconnectTimeout)
	defer cancel()

	out, err := c.runtime.CloseSession(ctx, c.actor, c.session)
	if err != nil {
		return fmt.Errorf("close session: %w", err)
	}
	c.observe(out.Events)
	fmt.Fprintln(c.out, "Disconnected.")
	return nil
}
