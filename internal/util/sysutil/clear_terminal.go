package sysutil

import (
	"io"
	"os/exec"
	"runtime"
)

// ClearTerminal clears the terminal screen by running the platform command
// with its output sent to w. Unsupported platforms get the ANSI clear
// sequence instead.
func ClearTerminal(w io.Writer) {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "windows":
		cmd = exec.Command("cmd", "/c", "cls")
	case "linux", "darwin", "freebsd", "openbsd", "netbsd":
		cmd = exec.Command("clear")
	}

	if cmd == nil {
		_, _ = io.WriteString(w, "\033[H\033[2J")
		return
	}

	cmd.Stdout = w
	if err := cmd.Run(); err != nil {
		_, _ = io.WriteString(w, "\033[H\033[2J")
	}
}
