package main

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/linernotes/credits/db"
	"github.com/linernotes/credits/search"
	"github.com/linernotes/credits/subcmd"
	"github.com/linernotes/credits/tui"
)

func browse(ctx context.Context, db *db.DB, args []string) error {
	subcmd := subcmd.New("browse", "browse the catalog interactively")
	if err := subcmd.Parse(args); err != nil {
		return fmt.Errorf("flag parsing err: %w", err)
	}

	path, err := search.DefaultRecentsPath()
	if err != nil {
		return err
	}

	p := tea.NewProgram(tui.New(db, search.NewRecents(path)),
		tea.WithAltScreen(),
		tea.WithContext(ctx))
	_, err = p.Run()
	return err
}
