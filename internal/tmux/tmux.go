// Package tmux queries and manipulates tmux sessions via exec.
// The app expects to run inside tmux (TMUX env set); listing commands use
// -F format strings so output parsing stays stable across tmux versions.
package tmux

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"
	"strconv"
	"strings"
)

// Session describes one tmux session as reported by list-sessions.
type Session struct {
	Name     string
	Windows  int
	Attached bool
	Path     string // session working directory (#{session_path})
}

// Window describes one window within a session.
type Window struct {
	Index  int
	Name   string
	Panes  int
	Active bool
}

// InsideTmux reports whether the process is running inside a tmux client.
func InsideTmux() bool {
	return os.Getenv("TMUX") != ""
}

// run executes a tmux command and returns its trimmed stdout.
// Stderr is folded into the error for context.
func run(args ...string) (string, error) {
	cmd := exec.Command("tmux", args...)
	var out, errOut bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &errOut
	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("tmux %s: %w: %s", args[0], err, strings.TrimSpace(errOut.String()))
	}
	return strings.TrimSpace(out.String()), nil
}

const sessionFormat = "#{session_name}\t#{session_windows}\t#{session_attached}\t#{session_path}"

// ListSessions returns all tmux sessions on the server.
func ListSessions() ([]Session, error) {
	out, err := run("list-sessions", "-F", sessionFormat)
	if err != nil {
		return nil, err
	}
	return parseSessions(out)
}

// parseSessions parses list-sessions -F output, one session per line.
func parseSessions(out string) ([]Session, error) {
	var sessions []Session
	for _, line := range strings.Split(out, "\n") {
		line = strings.TrimRight(line, "\r")
		if line == "" {
			continue
		}
		fields := strings.Split(line, "\t")
		if len(fields) < 4 {
			return nil, fmt.Errorf("parse session line %q: want 4 fields, got %d", line, len(fields))
		}
		windows, err := strconv.Atoi(fields[1])
		if err != nil {
			return nil, fmt.Errorf("parse window count %q: %w", fields[1], err)
		}
		attached, err := strconv.Atoi(fields[2])
		if err != nil {
			return nil, fmt.Errorf("parse attached count %q: %w", fields[2], err)
		}
		sessions = append(sessions, Session{
			Name:     fields[0],
			Windows:  windows,
			Attached: attached > 0,
			Path:     fields[3],
		})
	}
	return sessions, nil
}

const windowFormat = "#{window_index}\t#{window_name}\t#{window_panes}\t#{window_active}"

// ListWindows returns the windows of the named session.
func ListWindows(session string) ([]Window, error) {
	out, err := run("list-windows", "-t", session, "-F", windowFormat)
	if err != nil {
		return nil, err
	}
	return parseWindows(out)
}

// parseWindows parses list-windows -F output, one window per line.
func parseWindows(out string) ([]Window, error) {
	var windows []Window
	for _, line := range strings.Split(out, "\n") {
		line = strings.TrimRight(line, "\r")
		if line == "" {
			continue
		}
		fields := strings.Split(line, "\t")
		if len(fields) < 4 {
			return nil, fmt.Errorf("parse window line %q: want 4 fields, got %d", line, len(fields))
		}
		index, err := strconv.Atoi(fields[0])
		if err != nil {
			return nil, fmt.Errorf("parse window index %q: %w", fields[0], err)
		}
		panes, err := strconv.Atoi(fields[2])
		if err != nil {
			return nil, fmt.Errorf("parse pane count %q: %w", fields[2], err)
		}
		windows = append(windows, Window{
			Index:  index,
			Name:   fields[1],
			Panes:  panes,
			Active: fields[3] == "1",
		})
	}
	return windows, nil
}

// CurrentSession returns the name of the session the client is attached to.
func CurrentSession() (string, error) {
	return run("display-message", "-p", "#{session_name}")
}

// NewSession creates a detached session with the given name and working
// directory. An empty dir leaves tmux's default.
func NewSession(name, dir string) error {
	args := []string{"new-session", "-d", "-s", name}
	if dir != "" {
		args = append(args, "-c", dir)
	}
	_, err := run(args...)
	return err
}

// KillSession kills the named session. Killing the session the client is
// attached to detaches the client; callers should guard against that.
func KillSession(name string) error {
	_, err := run("kill-session", "-t", name)
	return err
}

// RenameSession renames a session.
func RenameSession(oldName, newName string) error {
	_, err := run("rename-session", "-t", oldName, newName)
	return err
}

// SwitchClient switches the attached client to the named session.
func SwitchClient(session string) error {
	_, err := run("switch-client", "-t", session)
	return err
}

// SelectWindow makes the given window current within its session.
func SelectWindow(session string, index int) error {
	_, err := run("select-window", "-t", fmt.Sprintf("%s:%d", session, index))
	return err
}
