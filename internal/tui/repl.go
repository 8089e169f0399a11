package tui

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/fyrsmithlabs/chatterd/internal/dialog"
	"github.com/fyrsmithlabs/chatterd/internal/intent"
)

// RunPlain runs a line-based chat loop without the full-screen interface.
// It reads from in and writes to out until a farewell, /quit, or EOF.
func RunPlain(engine *dialog.Engine, sessionID string, in io.Reader, out io.Writer) error {
	fmt.Fprintln(out, "Hello! I can help with appointments, weather, and food orders.")
	fmt.Fprintln(out, "Commands: /context  /reset  (bye, exit or quit to leave)")

	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(out, "> ")
		if !scanner.Scan() {
			break
		}
		input := strings.TrimSpace(scanner.Text())
		if input == "" {
			continue
		}

		switch input {
		case "/context":
			printContext(engine, sessionID, out)
			continue
		case "/reset", "/clear":
			engine.ResetContext(sessionID)
			fmt.Fprintln(out, "Context cleared. What would you like to talk about?")
			continue
		}

		reply, err := engine.ProcessMessage(sessionID, input)
		if err != nil {
			return fmt.Errorf("failed to process message: %w", err)
		}
		fmt.Fprintln(out, reply.Response)

		if farewells[strings.ToLower(input)] || reply.Intent == intent.IntentFarewell {
			return nil
		}
	}
	return scanner.Err()
}

func printContext(engine *dialog.Engine, sessionID string, out io.Writer) {
	snap, ok := engine.GetSession(sessionID)
	if !ok {
		fmt.Fprintln(out, "(no session yet, say something first)")
		return
	}
	fmt.Fprintf(out, "session:     %s\n", snap.SessionID)
	fmt.Fprintf(out, "last intent: %s\n", snap.LastIntent)
	fmt.Fprintf(out, "turns:       %d\n", len(snap.Turns))
	if len(snap.ContextData) == 0 {
		fmt.Fprintln(out, "context:     (empty)")
		return
	}
	fmt.Fprintln(out, "context:")
	for k, v := range snap.ContextData {
		fmt.Fprintf(out, "  %s = %s\n", k, v)
	}
}
