package dialog

import (
	"time"

	"github.com/fyrsmithlabs/chatterd/internal/entity"
	"github.com/fyrsmithlabs/chatterd/internal/intent"
)

// Turn is one user-message/bot-response exchange. Turns are immutable once
// recorded; Entities holds the extracted values in order of appearance.
type Turn struct {
	UserInput   string        `json:"user_input"`
	BotResponse string        `json:"bot_response"`
	Intent      intent.Intent `json:"intent"`
	Entities    []string      `json:"entities,omitempty"`
	Timestamp   time.Time     `json:"timestamp"`
}

// Reply is the engine's answer to one processed message.
type Reply struct {
	Response string          `json:"response"`
	Intent   intent.Intent   `json:"intent"`
	Entities []entity.Entity `json:"entities,omitempty"`
}

// Snapshot is a read-only copy of a session's state. It shares no memory
// with the live session.
type Snapshot struct {
	SessionID   string            `json:"session_id"`
	UserName    string            `json:"user_name,omitempty"`
	StartedAt   time.Time         `json:"started_at"`
	LastIntent  intent.Intent     `json:"last_intent,omitempty"`
	ContextData map[string]string `json:"context_data"`
	Turns       []Turn            `json:"turns"`
}
