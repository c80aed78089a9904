package tui

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/reelview/internal/movie"
)

// DebugLogger logs TUI state, keystrokes, and events to a file as JSON lines.
type DebugLogger struct {
	mu      sync.Mutex
	w       io.WriteCloser
	enabled bool
	seq     int
}

// Global debug logger instance
var debugLog *DebugLogger

// DebugLogPath is the fixed path for debug logs
const DebugLogPath = "reelview-debug.log"

// InitDebugLogger initializes the debug logger if debug mode is enabled.
func InitDebugLogger(enabled bool) error {
	if !enabled {
		debugLog = &DebugLogger{enabled: false}
		return nil
	}

	f, err := os.Create(DebugLogPath)
	if err != nil {
		return fmt.Errorf("creating debug log: %w", err)
	}

	debugLog = newDebugLogger(f)
	debugLog.log("DEBUG_START", map[string]any{
		"log_file": DebugLogPath,
		"time":     time.Now().Format(time.RFC3339),
	})

	return nil
}

func newDebugLogger(w io.WriteCloser) *DebugLogger {
	return &DebugLogger{w: w, enabled: true}
}

// CloseDebugLogger closes the debug log file.
func CloseDebugLogger() {
	if debugLog != nil && debugLog.w != nil {
		debugLog.log("DEBUG_END", map[string]any{
			"time": time.Now().Format(time.RFC3339),
		})
		_ = debugLog.w.Close()
	}
	debugLog = nil
}

// log writes a structured log entry.
func (d *DebugLogger) log(event string, data map[string]any) {
	if d == nil || !d.enabled || d.w == nil {
		return
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	d.seq++
	entry := map[string]any{
		"seq":   d.seq,
		"ts":    time.Now().Format("15:04:05.000"),
		"event": event,
	}
	for k, v := range data {
		entry[k] = v
	}

	b, _ := json.Marshal(entry)
	_, _ = fmt.Fprintf(d.w, "%s\n", b)
}

func debugEnabled() bool {
	return debugLog != nil && debugLog.enabled
}

// LogKeyPress logs a key press event.
func LogKeyPress(msg tea.KeyMsg, focus Focus) {
	if !debugEnabled() {
		return
	}
	debugLog.log("KEY_PRESS", map[string]any{
		"key":   msg.String(),
		"focus": focus.String(),
	})
}

// LogModeChange logs a switch between catalog and watchlist mode.
func LogModeChange(from, to movie.Mode, reason string) {
	if !debugEnabled() {
		return
	}
	debugLog.log("MODE_CHANGE", map[string]any{
		"from":   from.String(),
		"to":     to.String(),
		"reason": reason,
	})
}

// LogFocusChange logs a focus change between grid, search, and detail.
func LogFocusChange(from, to Focus, reason string) {
	if !debugEnabled() {
		return
	}
	debugLog.log("FOCUS_CHANGE", map[string]any{
		"from":   from.String(),
		"to":     to.String(),
		"reason": reason,
	})
}

// LogQueryChange logs the query and the derived view after a mutation.
func LogQueryChange(q movie.Query, v movie.View, reason string) {
	if !debugEnabled() {
		return
	}
	debugLog.log("QUERY_CHANGE", map[string]any{
		"reason":       reason,
		"search":       q.Search,
		"genre":        q.Genre.String(),
		"mode":         q.Mode.String(),
		"page":         q.Page,
		"items":        len(v.Items),
		"total_pages":  v.TotalPages,
		"current_page": v.CurrentPage,
	})
}

// LogFavoriteToggle logs a favorite toggle.
func LogFavoriteToggle(id int64, favorite bool, count int) {
	if !debugEnabled() {
		return
	}
	debugLog.log("FAVORITE_TOGGLE", map[string]any{
		"id":       id,
		"favorite": favorite,
		"count":    count,
	})
}

// LogError logs an error.
func LogError(context string, err error) {
	if !debugEnabled() {
		return
	}
	debugLog.log("ERROR", map[string]any{
		"context": context,
		"error":   err.Error(),
	})
}
