// Package main provides the notekeep CLI entry point.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/matsen/notekeep/internal/config"
	"github.com/matsen/notekeep/internal/license"
	"github.com/matsen/notekeep/internal/storage"
	"github.com/spf13/cobra"
)

// Version is set at build time via ldflags
var Version = "dev"

// Commands accepted by --command.
const (
	cmdAdd    = "add"
	cmdList   = "list"
	cmdSearch = "search"
	cmdExport = "export"
	cmdDelete = "delete"
	cmdUpdate = "update"
)

var validCommands = []string{cmdAdd, cmdList, cmdSearch, cmdExport, cmdDelete, cmdUpdate}

// options holds every flag value for one invocation.
type options struct {
	email    string
	license  string
	command  string
	title    string
	body     string
	query    string
	format   string
	output   string
	newTitle string
	id       int64
	dbPath   string
	logLevel string
	json     bool
	verbose  bool
}

// app is the state shared by the root command and the per-command runners.
type app struct {
	opts     options
	settings *config.Settings
	logger   *slog.Logger
	stdout   io.Writer
	stderr   io.Writer
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the CLI with args and returns the process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	a := &app{stdout: stdout, stderr: stderr}
	root := a.newRootCmd()
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	if err := root.Execute(); err != nil {
		a.reportError(err)
		return exitCodeFor(err)
	}
	return ExitSuccess
}

func (a *app) newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "notekeep",
		Short: "Personal notes stored in a local SQLite file",
		Long: `notekeep stores notes (title, body, timestamp) in a local SQLite file
and can add, list, search, update, delete, and export them.

Every invocation needs a registration email and license key. Both can be
given as flags, as NOTEKEEP_EMAIL / NOTEKEEP_LICENSE (a .env file in the
working directory is honored), or in ~/.config/notekeep/config.yml.

Examples:
  notekeep --email me@example.com --license abc --command add --title "First" --body "Hello"
  notekeep --email me@example.com --license abc --command list
  notekeep --email me@example.com --license abc --command search --query hello
  notekeep --email me@example.com --license abc --command export --format csv --output notes.csv
  notekeep --email me@example.com --license abc --command delete --title "First"`,
		Args:              cobra.NoArgs,
		SilenceUsage:      true,
		SilenceErrors:     true,
		Version:           Version,
		PersistentPreRunE: a.setup,
		RunE:              a.dispatch,
	}

	f := cmd.Flags()
	f.StringVar(&a.opts.email, "email", "", "Registration email address")
	f.StringVar(&a.opts.license, "license", "", "License key")
	f.StringVar(&a.opts.command, "command", "", "Action to perform: "+strings.Join(validCommands, ", "))
	f.StringVar(&a.opts.title, "title", "", "Note title (add, update, delete)")
	f.StringVar(&a.opts.body, "body", "", "Note body (add, update)")
	f.StringVar(&a.opts.query, "query", "", "Keyword to search for (search, optional filter for export)")
	f.StringVar(&a.opts.format, "format", "", "Export format: json or csv")
	f.StringVar(&a.opts.output, "output", "", "Path to export file")
	f.StringVar(&a.opts.newTitle, "new-title", "", "Replacement title (update)")
	f.Int64Var(&a.opts.id, "id", 0, "Note id; scopes update and delete to a single note")
	f.StringVar(&a.opts.dbPath, "db", "", "Path to the notes database (default notes.db)")
	f.StringVar(&a.opts.logLevel, "log-level", "", "Log level: debug, info, warn, error")
	f.BoolVar(&a.opts.json, "json", false, "Emit machine-readable JSON instead of text")
	f.BoolVarP(&a.opts.verbose, "verbose", "v", false, "Enable debug logging")

	return cmd
}

// setup resolves configuration and installs the logger.
func (a *app) setup(cmd *cobra.Command, args []string) error {
	config.LoadDotEnv()

	settings, err := config.Resolve(config.Overrides{
		DBPath:   a.opts.dbPath,
		Email:    a.opts.email,
		License:  a.opts.license,
		LogLevel: a.opts.logLevel,
	})
	if err != nil {
		return &configError{err: err}
	}
	if a.opts.verbose {
		settings.LogLevel = slog.LevelDebug
	}

	a.settings = settings
	a.logger = newLogger(a.stderr, settings.LogLevel)
	return nil
}

// dispatch checks the gate and flags, then opens the store and runs the
// selected command. Nothing touches the store until every check passes.
func (a *app) dispatch(cmd *cobra.Command, args []string) error {
	if a.settings.Email == "" {
		return usagef(`required flag "email" not set`)
	}
	if a.settings.License == "" {
		return usagef(`required flag "license" not set`)
	}
	if err := license.Check(a.settings.Email, a.settings.License); err != nil {
		return err
	}

	runner, err := a.runnerFor(cmd)
	if err != nil {
		return err
	}

	db, err := storage.OpenDB(a.settings.DBPath, storage.WithLogger(a.logger.With("component", "storage")))
	if err != nil {
		return err
	}
	defer db.Close()

	a.logger.Debug("running command", "command", a.opts.command, "db", a.settings.DBPath)
	return runner(db)
}

// runnerFor validates the flags of the selected command and returns the
// function that executes it.
func (a *app) runnerFor(cmd *cobra.Command) (func(*storage.DB) error, error) {
	switch a.opts.command {
	case cmdAdd:
		return a.runAdd, a.checkAdd()
	case cmdList:
		return a.runList, nil
	case cmdSearch:
		return a.runSearch, a.checkSearch(cmd)
	case cmdExport:
		return a.runExport, a.checkExport()
	case cmdDelete:
		return a.runDelete, a.checkDelete(cmd)
	case cmdUpdate:
		return a.runUpdate, a.checkUpdate(cmd)
	case "":
		return nil, usagef(`required flag "command" not set`)
	default:
		return nil, usagef("invalid --command %q (choose from %s)", a.opts.command, strings.Join(validCommands, ", "))
	}
}

// reportError prints err in the selected output mode.
func (a *app) reportError(err error) {
	if a.opts.json {
		outputJSON(a.stdout, ErrorResponse{Error: err.Error()})
		return
	}
	fmt.Fprintf(a.stderr, "error: %s\n", err)
}
