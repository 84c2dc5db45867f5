package main

import (
	"context"
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"sessnav/internal/navtrace"
	"sessnav/internal/tmux"
	"sessnav/internal/ui"
)

func main() {
	if !tmux.InsideTmux() {
		fmt.Fprintln(os.Stderr, "Run sessnav inside tmux (e.g. `tmux new -s dev` then `sessnav`)")
		os.Exit(1)
	}

	recorder, err := navtrace.NewRecorder(context.Background())
	if err != nil {
		fmt.Fprintf(os.Stderr, "telemetry disabled: %v\n", err)
	}

	model := ui.NewAppModel(recorder)
	p := tea.NewProgram(model.AsTeaModel(), tea.WithAltScreen())
	_, runErr := p.Run()

	model.Shutdown()
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := recorder.Shutdown(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "telemetry shutdown: %v\n", err)
	}

	if runErr != nil {
		fmt.Printf("Error: %v\n", runErr)
		os.Exit(1)
	}
}
