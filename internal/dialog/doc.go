// Package dialog implements the conversation engine: per-session state,
// intent-driven response synthesis, and bounded conversation history.
//
// The engine owns the session store and is the only component holding
// mutable state. Each incoming message is classified (package intent) and
// mined for entities (package entity); extracted entities are merged into
// the session's context data under "last_<kind>" keys, a response template
// is selected deterministically by input length, and the exchange is
// recorded as an immutable turn in a fixed-capacity FIFO history.
//
// # Concurrency
//
// Store membership is guarded by a read-write mutex; each session carries
// its own mutex so concurrent messages for the same session serialize while
// distinct sessions proceed independently. Snapshots returned to callers
// are defensive copies and never alias live session state.
//
// # Usage
//
//	eng, err := dialog.NewEngine(logger, dialog.Config{})
//	if err != nil {
//	    return err
//	}
//	reply, err := eng.ProcessMessage("session-1", "Book an appointment for tomorrow at 3pm")
//	fmt.Println(reply.Response)
package dialog
