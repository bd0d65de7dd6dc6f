// Command admin is the operator tool for the device-park administration
// backend: it migrates the schema, seeds fixtures, and prints directory
// listings. It talks straight to the database; there is no server to run.
package main

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"text/tabwriter"

	"golang.org/x/term"

	"github.com/azarovs/parkd/internal/config"
	"github.com/azarovs/parkd/internal/fixtures"
	"github.com/azarovs/parkd/internal/hashing"
	"github.com/azarovs/parkd/internal/logging"
	"github.com/azarovs/parkd/internal/repositories/repomanager"
	"github.com/azarovs/parkd/internal/services"
)

const usage = `usage: admin <command> [flags]

commands:
  migrate     apply schema migrations
  seed        create the super-admin account (prompts for a password)
  users       list users
  devices     list devices
  programs    list programs
  types       list recognized device types

flags (all commands):
  -d <dsn>    database DSN
  -l <level>  log level
  -c <path>   JSON config file
`

func main() {
	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}
	command := os.Args[1]

	cfg := config.LoadConfig()
	log := logging.NewJSONLogger(os.Stderr, logging.ParseLevel(cfg.LogLevel))
	ctx := context.Background()

	db, err := sql.Open("pgx", cfg.DatabaseDSN)
	if err != nil {
		log.Error(ctx, "opening database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	repos := repomanager.NewPostgresRepositoryManager()

	if err := run(ctx, command, db, repos, log); err != nil {
		log.Error(ctx, "command failed", "command", command, "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, command string, db *sql.DB, repos repomanager.RepositoryManager, log logging.Logger) error {
	directory := services.NewDirectoryService(db, repos)

	switch command {
	case "migrate":
		return repos.RunMigrations(ctx, db)

	case "seed":
		password, err := promptPassword(os.Stdout)
		if err != nil {
			return err
		}
		usersSvc := services.NewUserService(db, repos, hashing.NewArgon2Hasher(), log)
		return fixtures.Load(ctx, usersSvc, log, password)

	case "users":
		users, err := directory.ListUsers(ctx)
		if err != nil {
			return err
		}
		w := newTable()
		fmt.Fprintln(w, "ID\tUSERNAME\tEMAIL\tNAME")
		for _, u := range users {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s %s\n", u.ID, u.Username, u.Email, u.FirstName, u.LastName)
		}
		return w.Flush()

	case "devices":
		devices, err := directory.ListDevices(ctx)
		if err != nil {
			return err
		}
		w := newTable()
		fmt.Fprintln(w, "ID\tNAME\tTYPE\tOWNER")
		for _, d := range devices {
			owner := "-"
			if d.OwnerID != nil {
				owner = *d.OwnerID
			}
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", d.ID, d.Name, d.Type.DisplayName(), owner)
		}
		return w.Flush()

	case "programs":
		programs, err := directory.ListPrograms(ctx)
		if err != nil {
			return err
		}
		w := newTable()
		fmt.Fprintln(w, "ID\tNAME\tDEVICE")
		for _, p := range programs {
			device := "-"
			if p.DeviceID != nil {
				device = *p.DeviceID
			}
			fmt.Fprintf(w, "%s\t%s\t%s\n", p.ID, p.Name, device)
		}
		return w.Flush()

	case "types":
		w := newTable()
		fmt.Fprintln(w, "CODE\tNAME")
		names := directory.DeviceTypeDisplayNames()
		for _, t := range directory.AvailableDeviceTypes() {
			fmt.Fprintf(w, "%s\t%s\n", t, names[t])
		}
		return w.Flush()

	default:
		fmt.Fprint(os.Stderr, usage)
		return fmt.Errorf("unknown command %q", command)
	}
}

// readPassword is a seam for term.ReadPassword so tests can avoid the
// terminal.
var readPassword = term.ReadPassword

func promptPassword(w *os.File) (string, error) {
	fmt.Fprint(w, "Super-admin password: ")
	pw, err := readPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(w)
	if err != nil {
		return "", err
	}
	return string(pw), nil
}

func newTable() *tabwriter.Writer {
	return tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
}
