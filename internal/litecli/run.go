package litecli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/nsqlite/litedb"
	"github.com/nsqlite/litedb/internal/litecli/config"
	"github.com/nsqlite/litedb/internal/litecli/repl"
	"github.com/nsqlite/litedb/internal/log"
	"github.com/nsqlite/litedb/internal/version"
)

// Run runs the litedb shell.
func Run(ctx context.Context) error {
	conf := config.MustParse(os.Args)

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	fmt.Println(version.ShellVersion())

	logger := log.Discard()
	if conf.Debug {
		logger = log.NewLogger(os.Stderr, true)
	}

	db, err := litedb.Open(ctx, litedb.Config{
		Name:        conf.Database,
		Driver:      conf.DriverValue(),
		BusyTimeout: conf.BusyTimeout,
		Logger:      logger,
	})
	if err != nil {
		return err
	}
	defer db.Close()

	rp := repl.NewRepl(ctx, stop, conf, db, logger)
	defer rp.Shutdown()
	go func() {
		if err := rp.Start(); err != nil {
			fmt.Println(err)
			stop()
		}
	}()

	<-ctx.Done()
	rp.Wait()
	fmt.Printf("\nGoodbye!\n\n")
	return nil
}
