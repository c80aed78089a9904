// Package commands provides TUI command constructors and message types.
package commands

import (
	"context"
	"fmt"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/reelview/internal/movie"
)

// CatalogLoadedMsg is sent when the catalog has been read from the repository.
type CatalogLoadedMsg struct {
	Movies []movie.Movie
}

// ErrMsg is sent when an error occurs.
type ErrMsg struct {
	Err error
}

// StatusMsgCmd is sent for temporary status messages.
type StatusMsgCmd struct {
	Msg string
}

// ClearStatusMsg is sent to clear the status message.
type ClearStatusMsg struct{}

// writeClipboard is swapped in tests.
var writeClipboard = clipboard.WriteAll

// LoadCatalog reads every movie from the repository.
func LoadCatalog(repo movie.Repository) tea.Cmd {
	return func() tea.Msg {
		if repo == nil {
			return ErrMsg{Err: fmt.Errorf("loading catalog: no repository")}
		}
		movies, err := repo.ListMovies(context.Background())
		if err != nil {
			return ErrMsg{Err: fmt.Errorf("loading catalog: %w", err)}
		}
		if err := movie.ValidateCatalog(movies); err != nil {
			return ErrMsg{Err: fmt.Errorf("loading catalog: %w", err)}
		}
		return CatalogLoadedMsg{Movies: movies}
	}
}

// CopyPoster copies the poster URI of m to the system clipboard.
func CopyPoster(m movie.Movie) tea.Cmd {
	return func() tea.Msg {
		if m.Poster == "" {
			return StatusMsgCmd{Msg: "No poster for " + m.Title}
		}
		if err := writeClipboard(m.Poster); err != nil {
			return ErrMsg{Err: fmt.Errorf("copying poster: %w", err)}
		}
		return StatusMsgCmd{Msg: "Copied poster URI for " + m.Title}
	}
}

// ShowStatus emits a status message.
func ShowStatus(msg string) tea.Cmd {
	return func() tea.Msg {
		return StatusMsgCmd{Msg: msg}
	}
}
