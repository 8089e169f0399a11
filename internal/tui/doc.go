// Package tui implements the interactive chat interface for chatterd.
//
// The interface is built with bubbletea: a viewport holds the transcript,
// a textinput takes user messages, and lipgloss renders both panes. Each
// chat window is bound to a single dialog session; control commands
// (/context, /reset) operate on that session. A plain line-based REPL is
// available for terminals where the full-screen interface is unwanted.
package tui
