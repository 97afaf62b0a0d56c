package litedb

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/orsinium-labs/enum"
)

// Driver selects the database/sql driver backing a Database.
type Driver enum.Member[string]

var (
	// DriverMattn is github.com/mattn/go-sqlite3, the cgo binding.
	DriverMattn = Driver{Value: "sqlite3"}
	// DriverModernc is modernc.org/sqlite, the pure Go translation.
	DriverModernc = Driver{Value: "sqlite"}

	// Drivers lists every supported driver.
	Drivers = enum.New(DriverMattn, DriverModernc)
)

// ParseDriver returns the driver registered under the given name.
func ParseDriver(name string) (Driver, error) {
	d := Drivers.Parse(name)
	if d == nil {
		return Driver{}, fmt.Errorf("unknown driver %q", name)
	}
	return *d, nil
}

// uriPathEscaper escapes the bytes that would end or decode the path part of
// a SQLite file URI. Both drivers open "file:" names in URI mode.
var uriPathEscaper = strings.NewReplacer("%", "%25", "?", "%3F", "#", "%23")

// createDSN builds the data source name for the given location. Memory keeps
// its sentinel form so every driver opens a private in-memory instance. Any
// other name is a filesystem path and is escaped so it opens literally.
func createDSN(driver Driver, name string, busyTimeout time.Duration) string {
	if name == Memory {
		return Memory
	}

	qp := url.Values{}
	switch driver {
	case DriverModernc:
		qp.Add("_pragma", fmt.Sprintf("busy_timeout(%d)", busyTimeout.Milliseconds()))
	default:
		qp.Add("_busy_timeout", fmt.Sprintf("%d", busyTimeout.Milliseconds()))
	}

	return fmt.Sprintf("file:%s?%s", uriPathEscaper.Replace(name), qp.Encode())
}
