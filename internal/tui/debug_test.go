package tui

import (
	"bufio"
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/reelview/internal/movie"
)

type bufferCloser struct {
	bytes.Buffer
	closed bool
}

func (b *bufferCloser) Close() error {
	b.closed = true
	return nil
}

func captureDebugLog(t *testing.T) *bufferCloser {
	t.Helper()
	prev := debugLog
	buf := &bufferCloser{}
	debugLog = newDebugLogger(buf)
	t.Cleanup(func() { debugLog = prev })
	return buf
}

func decodeEntries(t *testing.T, buf *bufferCloser) []map[string]any {
	t.Helper()
	var entries []map[string]any
	sc := bufio.NewScanner(bytes.NewReader(buf.Bytes()))
	for sc.Scan() {
		var entry map[string]any
		if err := json.Unmarshal(sc.Bytes(), &entry); err != nil {
			t.Fatalf("invalid JSON line %q: %v", sc.Text(), err)
		}
		entries = append(entries, entry)
	}
	return entries
}

func TestDebugLogger_Events(t *testing.T) {
	buf := captureDebugLog(t)

	LogKeyPress(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("f")}, FocusGrid)
	LogModeChange(movie.ModeCatalog, movie.ModeWatchlist, "toggle")
	LogFavoriteToggle(7, true, 1)
	LogError("load", errors.New("boom"))

	entries := decodeEntries(t, buf)
	if len(entries) != 4 {
		t.Fatalf("entries = %d, want 4", len(entries))
	}

	wantEvents := []string{"KEY_PRESS", "MODE_CHANGE", "FAVORITE_TOGGLE", "ERROR"}
	for i, want := range wantEvents {
		if got := entries[i]["event"]; got != want {
			t.Errorf("entry %d event = %v, want %s", i, got, want)
		}
		if seq := entries[i]["seq"]; seq != float64(i+1) {
			t.Errorf("entry %d seq = %v, want %d", i, seq, i+1)
		}
	}
	if entries[0]["key"] != "f" || entries[0]["focus"] != "Grid" {
		t.Errorf("key entry = %v", entries[0])
	}
	if entries[1]["to"] != "watchlist" {
		t.Errorf("mode entry = %v", entries[1])
	}
	if entries[2]["id"] != float64(7) || entries[2]["favorite"] != true {
		t.Errorf("favorite entry = %v", entries[2])
	}
	if entries[3]["error"] != "boom" {
		t.Errorf("error entry = %v", entries[3])
	}
}

func TestDebugLogger_QueryChange(t *testing.T) {
	buf := captureDebugLog(t)

	m := newLoadedModel(t)
	press(t, m, runes("n"))

	var found bool
	for _, entry := range decodeEntries(t, buf) {
		if entry["event"] == "QUERY_CHANGE" && entry["reason"] == "next page" {
			found = true
			if entry["current_page"] != float64(2) || entry["items"] != float64(9) {
				t.Errorf("next page entry = %v", entry)
			}
		}
	}
	if !found {
		t.Fatal("expected a QUERY_CHANGE entry for the page change")
	}
}

func TestDebugLogger_Disabled(t *testing.T) {
	prev := debugLog
	t.Cleanup(func() { debugLog = prev })

	if err := InitDebugLogger(false); err != nil {
		t.Fatalf("InitDebugLogger(false): %v", err)
	}
	if debugEnabled() {
		t.Fatal("logger should be disabled")
	}
	// Must not panic without a writer.
	LogFavoriteToggle(1, true, 1)
	LogError("noop", errors.New("ignored"))
}

func TestCloseDebugLogger(t *testing.T) {
	buf := captureDebugLog(t)
	CloseDebugLogger()

	if !buf.closed {
		t.Fatal("writer should be closed")
	}
	if debugLog != nil {
		t.Fatal("global logger should be reset")
	}
	entries := decodeEntries(t, buf)
	if len(entries) != 1 || entries[0]["event"] != "DEBUG_END" {
		t.Fatalf("entries = %v, want a single DEBUG_END", entries)
	}
}
