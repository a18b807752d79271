package main

import (
	"bufio"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/amirasaad/user-management/infra"
	"github.com/amirasaad/user-management/internal/migrations"
	"github.com/amirasaad/user-management/pkg/config"
	"github.com/amirasaad/user-management/pkg/utils"
	"github.com/fatih/color"
	"golang.org/x/term"
)

const usage = `Usage: cli <command> [arguments]
Commands:
  migrate up      apply all pending migrations
  migrate down    roll back every migration
  hash-password   read a password and print its bcrypt hash for AUTH_PASSWORD_HASH`

var errUsage = errors.New("invalid usage")

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout); err != nil {
		if errors.Is(err, errUsage) {
			fmt.Fprintln(os.Stderr, usage)
		}
		color.New(color.FgRed, color.Bold).Fprintln(os.Stderr, "Error:", err) //nolint:errcheck
		os.Exit(1)
	}
}

func run(args []string, stdin *os.File, stdout io.Writer) error {
	if len(args) < 1 {
		return errUsage
	}
	switch args[0] {
	case "migrate":
		if len(args) < 2 {
			return errUsage
		}
		return migrate(args[1], stdout)
	case "hash-password":
		password, err := readPassword(stdin, stdout)
		if err != nil {
			return err
		}
		return hashPassword(password, stdout)
	default:
		return fmt.Errorf("%w: unknown command %q", errUsage, args[0])
	}
}

func migrate(direction string, stdout io.Writer) error {
	apply, ok := map[string]func(*sql.DB) error{
		"up":   migrations.Up,
		"down": migrations.Down,
	}[direction]
	if !ok {
		return fmt.Errorf("%w: unknown migrate direction %q", errUsage, direction)
	}

	cfg, err := config.Load(".env")
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	db, err := infra.NewDBConnection(cfg.DB, cfg.Env)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	defer sqlDB.Close() //nolint:errcheck

	if err := apply(sqlDB); err != nil {
		return fmt.Errorf("migrate %s: %w", direction, err)
	}
	color.New(color.FgGreen).Fprintf(stdout, "Migrations applied (%s)\n", direction) //nolint:errcheck
	return nil
}

// readPassword reads without echo from a terminal and a single line otherwise.
func readPassword(stdin *os.File, stdout io.Writer) (string, error) {
	fd := int(stdin.Fd())
	if term.IsTerminal(fd) {
		fmt.Fprint(stdout, "Password: ") //nolint:errcheck
		b, err := term.ReadPassword(fd)
		fmt.Fprintln(stdout) //nolint:errcheck
		if err != nil {
			return "", fmt.Errorf("failed to read password: %w", err)
		}
		return string(b), nil
	}
	line, err := bufio.NewReader(stdin).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("failed to read password: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func hashPassword(password string, stdout io.Writer) error {
	if password == "" {
		return errors.New("password must not be empty")
	}
	hash, err := utils.HashPassword(password)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	color.New(color.FgCyan).Fprintln(stdout, hash) //nolint:errcheck
	return nil
}
