package ui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vitrinedev/vitrine/internal/store"
)

// snapshotMsg delivers a fresh state snapshot to the model.
type snapshotMsg store.State

// actionDoneMsg reports a completed store action. The store has already
// recorded any failure in State.Error; the message only triggers a
// re-snapshot.
type actionDoneMsg struct{}

// loginDoneMsg reports a completed login attempt.
type loginDoneMsg struct{ err error }

func snapshotCmd(s *store.Store) tea.Cmd {
	return func() tea.Msg {
		return snapshotMsg(s.Snapshot())
	}
}

func loadCatalogCmd(ctx context.Context, s *store.Store) tea.Cmd {
	return func() tea.Msg {
		_ = s.LoadProducts(ctx)
		_ = s.LoadCategories(ctx)
		return actionDoneMsg{}
	}
}

func loginCmd(ctx context.Context, s *store.Store, username, password string) tea.Cmd {
	return func() tea.Msg {
		return loginDoneMsg{err: s.Login(ctx, username, password)}
	}
}
