package config

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/alexflint/go-arg"
	"github.com/nsqlite/litedb"
	"github.com/nsqlite/litedb/internal/version"
)

// Config represents the configuration for the litedb shell.
type Config struct {
	Database    string        `arg:"positional" help:"Path of the SQLite database file, or :memory: for an ephemeral database" default:":memory:"`
	Driver      string        `arg:"--driver,env:LITEDB_DRIVER" help:"SQLite driver to use (sqlite3, sqlite)" default:"sqlite3"`
	BusyTimeout time.Duration `arg:"--busy-timeout,env:LITEDB_BUSY_TIMEOUT" help:"How long to wait on a locked database. Valid time units are ms, s, m" default:"5s"`
	Debug       bool          `arg:"--debug,env:LITEDB_DEBUG" help:"Log every statement to stderr" default:"false"`
}

func (Config) Version() string {
	return fmt.Sprintf("%s\n", version.ShellVersion())
}

// MustParse parses and validates the configuration from the command
// line arguments. It returns a Config struct or exits the program
// with an error.
func MustParse(args []string) Config {
	cfg := Config{}

	parser, err := arg.NewParser(
		arg.Config{},
		&cfg,
	)
	if err != nil {
		log.Fatal(err)
	}
	parser.MustParse(args[1:])

	if err := validateDriver(cfg.Driver); err != nil {
		log.Fatal(err)
	}

	if err := validateBusyTimeout(cfg.BusyTimeout); err != nil {
		log.Fatal(err)
	}

	return cfg
}

// DriverValue returns the parsed driver. It must only be called on a
// validated Config.
func (c Config) DriverValue() litedb.Driver {
	driver, _ := litedb.ParseDriver(c.Driver)
	return driver
}

// validateDriver validates if driver is one of the supported drivers.
func validateDriver(driver string) error {
	if _, err := litedb.ParseDriver(driver); err == nil {
		return nil
	}

	valid := []string{}
	for _, d := range litedb.Drivers.Members() {
		valid = append(valid, d.Value)
	}

	return fmt.Errorf(
		"invalid driver, valid values are: %s",
		strings.Join(valid, ", "),
	)
}

// validateBusyTimeout validates if timeout is greater than zero.
func validateBusyTimeout(timeout time.Duration) error {
	if timeout <= 0 {
		return errors.New("invalid busy timeout, must be greater than zero")
	}
	return nil
}
