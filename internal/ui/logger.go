package ui

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"
)

// Level orders log categories for filtering
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarning
	LevelError
)

// ParseLevel maps LOG_LEVEL values onto a Level, defaulting to info
func ParseLevel(s string) Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return LevelDebug
	case "warn", "warning":
		return LevelWarning
	case "error":
		return LevelError
	default:
		return LevelInfo
	}
}

var (
	outMu    sync.Mutex
	out      io.Writer = os.Stdout
	minLevel           = LevelInfo
)

// SetOutput redirects all log output
func SetOutput(w io.Writer) {
	outMu.Lock()
	defer outMu.Unlock()
	out = w
}

// SetLevel drops status lines below l
func SetLevel(l Level) {
	outMu.Lock()
	defer outMu.Unlock()
	minLevel = l
}

func emit(l Level, format string, a ...interface{}) {
	outMu.Lock()
	defer outMu.Unlock()
	if l < minLevel {
		return
	}
	fmt.Fprintf(out, format, a...)
}

// Box-drawing characters
const (
	boxTopLeft     = "╭"
	boxTopRight    = "╮"
	boxBottomLeft  = "╰"
	boxBottomRight = "╯"
	boxHorizontal  = "─"
	boxVertical    = "│"
)

func timestamp() string {
	return Muted("%s", time.Now().Format("15:04:05"))
}

// LogStatus displays a status message with appropriate styling
func LogStatus(category, message string) {
	var icon, styledMsg string
	level := LevelInfo

	switch category {
	case "success":
		icon = Success("✔")
		styledMsg = Success("%s", message)
	case "error":
		level = LevelError
		icon = Error("✖")
		styledMsg = Error("%s", message)
	case "warning", "warn":
		level = LevelWarning
		icon = Warn("⚠")
		styledMsg = Warn("%s", message)
	case "info":
		icon = Info("ℹ")
		styledMsg = Subtle("%s", message)
	case "debug":
		level = LevelDebug
		icon = Muted("·")
		styledMsg = Muted("%s", message)
	default:
		icon = Muted("●")
		styledMsg = Subtle("%s", message)
	}

	emit(level, "%s  %s  %s\n", timestamp(), icon, styledMsg)
}

// LogGroup starts a grouped block of messages
func LogGroup(title string) {
	emit(LevelInfo, "\n%s %s %s\n",
		Muted("%s", boxTopLeft+strings.Repeat(boxHorizontal, 2)),
		Heading("%s", title),
		Muted("%s", strings.Repeat(boxHorizontal, max(50-len(title), 2))+boxTopRight))
}

// LogGroupItem logs an item within a group
func LogGroupItem(label, value string) {
	emit(LevelInfo, "%s  %s %s\n",
		Muted(boxVertical),
		Muted("%s", label+":"),
		Accent("%s", value))
}

// LogGroupEnd closes a grouped block
func LogGroupEnd() {
	emit(LevelInfo, "%s\n\n", Muted("%s", boxBottomLeft+strings.Repeat(boxHorizontal, 56)+boxBottomRight))
}

// LogRequest displays one served HTTP request
func LogRequest(method, path, client string, status int, d time.Duration) {
	var code string
	switch {
	case status >= 500:
		code = Error("%d", status)
	case status >= 400:
		code = Warn("%d", status)
	default:
		code = Success("%d", status)
	}
	emit(LevelDebug, "%s  %s  %s  %s  %s  %s\n",
		timestamp(),
		code,
		Subtle("%-6s", method),
		Accent("%-28s", path),
		Muted("%-16s", client),
		Muted("%s", d.Round(time.Microsecond)))
}

// LogGracefulShutdown announces that shutdown has begun
func LogGracefulShutdown() {
	LogStatus("warning", "Shutting down gracefully...")
}
