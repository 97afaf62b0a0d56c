package litedb

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDriver(t *testing.T) {
	d, err := ParseDriver("sqlite3")
	require.NoError(t, err)
	assert.Equal(t, DriverMattn, d)

	d, err = ParseDriver("sqlite")
	require.NoError(t, err)
	assert.Equal(t, DriverModernc, d)

	_, err = ParseDriver("postgres")
	assert.ErrorContains(t, err, "unknown driver")
}

func TestCreateDSN(t *testing.T) {
	t.Run("MemoryUnchanged", func(t *testing.T) {
		assert.Equal(t, Memory, createDSN(DriverMattn, Memory, time.Second))
		assert.Equal(t, Memory, createDSN(DriverModernc, Memory, time.Second))
	})

	t.Run("Mattn", func(t *testing.T) {
		dsn := createDSN(DriverMattn, "/tmp/app.db", 2*time.Second)
		assert.Equal(t, "file:/tmp/app.db?_busy_timeout=2000", dsn)
	})

	t.Run("Modernc", func(t *testing.T) {
		dsn := createDSN(DriverModernc, "/tmp/app.db", 2*time.Second)
		assert.Equal(t, "file:/tmp/app.db?_pragma=busy_timeout%282000%29", dsn)
	})

	t.Run("EscapesPath", func(t *testing.T) {
		name := "/tmp/a?b#c%41d.db"
		assert.Equal(t,
			"file:/tmp/a%3Fb%23c%2541d.db?_busy_timeout=1000",
			createDSN(DriverMattn, name, time.Second),
		)
		assert.Equal(t,
			"file:/tmp/a%3Fb%23c%2541d.db?_pragma=busy_timeout%281000%29",
			createDSN(DriverModernc, name, time.Second),
		)
	})
}
