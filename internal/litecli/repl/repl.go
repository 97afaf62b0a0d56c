package repl

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/nsqlite/litedb"
	"github.com/nsqlite/litedb/internal/litecli/config"
	"github.com/nsqlite/litedb/internal/log"
	"github.com/nsqlite/litedb/internal/util/sysutil"
	"github.com/peterh/liner"
)

type Repl struct {
	conf        config.Config
	db          *litedb.Database
	logger      log.Logger
	ctx         context.Context
	stop        context.CancelFunc
	out         io.Writer
	historyPath string

	// mu is held while a command runs. Once stopped is set no command runs.
	mu      sync.Mutex
	stopped bool
}

func NewRepl(
	ctx context.Context,
	stop context.CancelFunc,
	conf config.Config,
	db *litedb.Database,
	logger log.Logger,
) *Repl {
	return &Repl{
		conf:        conf,
		db:          db,
		logger:      logger,
		ctx:         ctx,
		stop:        stop,
		out:         os.Stdout,
		historyPath: filepath.Join(os.TempDir(), ".litedb_history"),
	}
}

func (r *Repl) Start() error {
	fmt.Fprintln(r.out)
	fmt.Fprintf(r.out, "Using %s with the %s driver\n", r.db.Name(), r.db.Driver().Value)
	fmt.Fprintln(r.out, `Enter ".help" for usage hints and ".quit" or "CTRL+C" to quit`)
	fmt.Fprintln(r.out)

	for {
		select {
		case <-r.ctx.Done():
			return nil
		default:
			if !r.execute(r.prompt()) {
				r.Shutdown()
				return nil
			}
		}
	}
}

// Shutdown stops the REPL.
func (r *Repl) Shutdown() {
	r.stop()
}

// Wait blocks until the command in flight, if any, has finished and keeps
// every later command from running. The database can be closed after it
// returns.
func (r *Repl) Wait() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.stopped = true
}

// execute runs a single line of input. It returns false when the shell
// should exit.
func (r *Repl) execute(input string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.stopped {
		return false
	}

	input = strings.TrimSpace(input)
	if input == "" {
		return true
	}

	name, args := cutWord(input)
	name = strings.ToLower(name)
	r.logger.DebugNs(log.NsShell, "executing command", log.KV{"command": name})

	switch name {
	case ".quit", ".exit", "exit":
		return false
	case ".clear", "clear":
		sysutil.ClearTerminal(r.out)
	case ".help", "help":
		cmdHelp(r.out)
	case ".create":
		cmdCreate(r, args)
	case ".append":
		cmdAppend(r, args)
	case ".update":
		cmdUpdate(r, args)
	case ".delete":
		cmdDelete(r, args)
	case ".get":
		cmdGet(r, args)
	case ".count":
		cmdCount(r, args)
	case ".tables":
		cmdTables(r)
	case ".columns":
		cmdColumns(r, args)
	case ".stats":
		cmdStats(r)
	default:
		fmt.Fprintln(r.out, "Unknown command, type .help for usage hints")
	}

	return true
}

// prompt shows the prompt and reads the input from the user.
func (r *Repl) prompt() string {
	line := liner.NewLiner()
	defer line.Close()
	line.SetCtrlCAborts(true)
	line.SetCompleter(r.completer)

	if file, err := os.Open(r.historyPath); err == nil {
		_, _ = line.ReadHistory(file)
		file.Close()
	}

	input, err := line.Prompt("litedb> ")
	if err != nil {
		if errors.Is(err, liner.ErrPromptAborted) || errors.Is(err, io.EOF) {
			fmt.Fprintln(r.out, "Exiting...")
			return ".quit"
		}
		return ""
	}

	line.AppendHistory(input)
	if file, err := os.Create(r.historyPath); err == nil {
		_, _ = line.WriteHistory(file)
		file.Close()
	}

	return strings.TrimSpace(input)
}
