package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"

	"github.com/charmbracelet/glamour"
	"github.com/joho/godotenv"
	"github.com/pkg/errors"

	"github.com/DaanHessen/octodial/internal/engine"
	"github.com/DaanHessen/octodial/internal/text"
	"github.com/DaanHessen/octodial/internal/ui"
	"github.com/DaanHessen/octodial/internal/util"
)

var version = "0.1.0"

const usage = "octodial [--theme name] [--notation unicode|ascii] [--log-file path] [--log-json-file path] [--log-level level] [--settle dur] [--no-mouse] | table | rules | version\n"

var errUsage = errors.New("usage")

// runUI is swapped out in tests.
var runUI = ui.Run

func main() {
	// Load .env file if it exists (ignore error if file doesn't exist)
	_ = godotenv.Load()

	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, errUsage) {
			os.Exit(2)
		}
		log.Fatal(err)
	}
}

// run returns instead of exiting so deferred log closing always happens.
func run(args []string, stdout, stderr io.Writer) error {
	cfg, err := util.LoadConfig()
	if err != nil {
		return err
	}
	fs := flag.NewFlagSet("octodial", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&cfg.Theme, "theme", cfg.Theme, "Colour theme: catppuccin|dracula|gruvbox|solarized_dark")
	fs.StringVar(&cfg.Notation, "notation", cfg.Notation, "Unit notation: unicode|ascii")
	fs.StringVar(&cfg.LogFile, "log-file", cfg.LogFile, "Write text logs to this file")
	fs.StringVar(&cfg.LogJSONFile, "log-json-file", cfg.LogJSONFile, "Write JSON logs to this file")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level: debug|info|warn|error")
	fs.DurationVar(&cfg.SettleDelay, "settle", cfg.SettleDelay, "Delay before lit units refresh after a drag")
	noMouse := fs.Bool("no-mouse", !cfg.Mouse, "Disable mouse input")
	fs.Usage = func() {
		fmt.Fprint(stderr, usage)
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return errUsage
	}
	cfg.Mouse = !*noMouse

	if err := cfg.Validate(); err != nil {
		return err
	}

	// Building the table asserts the triple set once at startup.
	table := engine.DefaultTable()

	if rest := fs.Args(); len(rest) > 0 {
		switch rest[0] {
		case "version":
			fmt.Fprintln(stdout, "octodial", version)
			return nil
		case "table", "rules":
			n, err := text.ByName(cfg.Notation)
			if err != nil {
				return err
			}
			md := text.TableMarkdown(table, n)
			if rest[0] == "rules" {
				md = text.RulesMarkdown(engine.NewDial(table), n)
			}
			renderer, err := glamour.NewTermRenderer(glamour.WithAutoStyle())
			if err != nil {
				return errors.Wrap(err, "markdown renderer")
			}
			out, err := renderer.Render(md)
			if err != nil {
				return errors.Wrap(err, "render markdown")
			}
			fmt.Fprint(stdout, out)
			return nil
		default:
			fs.Usage()
			return errUsage
		}
	}

	logger, closeLogs, err := util.NewLogger(cfg)
	if err != nil {
		return errors.Wrap(err, "logging setup failed")
	}
	defer closeLogs()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	return runUI(ctx, cfg, logger)
}
