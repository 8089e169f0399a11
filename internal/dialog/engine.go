package dialog

import (
	"errors"
	"fmt"
	"maps"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/fyrsmithlabs/chatterd/internal/entity"
	"github.com/fyrsmithlabs/chatterd/internal/intent"
)

// ErrEmptySessionID is returned when an operation is called without a
// session identifier.
var ErrEmptySessionID = errors.New("session ID cannot be empty")

const defaultHistorySize = 10

// Config holds engine configuration.
type Config struct {
	// HistorySize is the number of turns retained per session.
	// Defaults to 10.
	HistorySize int
}

// session is the live, mutable state of one conversation. All fields after
// mu are guarded by it; sessions are never shared across session IDs.
type session struct {
	mu          sync.Mutex
	id          string
	userName    string
	hist        *history
	contextData map[string]string
	startedAt   time.Time
	lastIntent  intent.Intent
}

// Engine coordinates intent recognition, entity extraction and session
// state for incoming messages. It owns the session store and is safe for
// concurrent use; messages for the same session serialize, messages for
// distinct sessions do not contend.
type Engine struct {
	recognizer  *intent.Recognizer
	extractor   *entity.Extractor
	templates   map[intent.Intent][]string
	logger      *zap.Logger
	metrics     *Metrics
	historySize int

	mu       sync.RWMutex
	sessions map[string]*session
}

// NewEngine creates a conversation engine. The pattern and template
// catalogs are built once here and shared read-only afterwards.
func NewEngine(logger *zap.Logger, cfg Config) (*Engine, error) {
	if logger == nil {
		return nil, fmt.Errorf("logger is required for session tracking and debugging")
	}

	historySize := cfg.HistorySize
	if historySize == 0 {
		historySize = defaultHistorySize
	}
	if historySize < 0 {
		return nil, fmt.Errorf("history size must be positive, got %d", cfg.HistorySize)
	}

	return &Engine{
		recognizer:  intent.NewRecognizer(),
		extractor:   entity.NewExtractor(),
		templates:   defaultTemplates(),
		logger:      logger,
		metrics:     NewMetrics(),
		historySize: historySize,
		sessions:    make(map[string]*session),
	}, nil
}

// ProcessMessage runs one message through the pipeline: classify, extract,
// merge entities into context data, synthesize a response, and record the
// turn. It never fails for well-formed input; the only error is an empty
// session ID, which hosts are expected to reject before calling.
func (e *Engine) ProcessMessage(sessionID, text string) (Reply, error) {
	if sessionID == "" {
		return Reply{}, ErrEmptySessionID
	}

	start := time.Now()
	s := e.getOrCreate(sessionID)

	tag := e.recognizer.Classify(text)
	ents := e.extractor.Extract(text)

	s.mu.Lock()
	tag = resolveIntent(tag, s.lastIntent, ents)
	for _, en := range ents {
		s.contextData[contextKey(en.Kind)] = en.Value
	}

	response := synthesize(e.templates, tag, ents, s.contextData, text)

	values := make([]string, len(ents))
	for i, en := range ents {
		values[i] = en.Value
	}
	s.hist.Append(Turn{
		UserInput:   text,
		BotResponse: response,
		Intent:      tag,
		Entities:    values,
		Timestamp:   time.Now(),
	})
	s.lastIntent = tag
	s.mu.Unlock()

	e.metrics.RecordMessage(string(tag), time.Since(start).Seconds())
	for _, en := range ents {
		e.metrics.RecordEntity(string(en.Kind))
	}

	e.logger.Debug("message processed",
		zap.String("session_id", sessionID),
		zap.String("intent", string(tag)),
		zap.Int("entities", len(ents)),
	)

	return Reply{Response: response, Intent: tag, Entities: ents}, nil
}

// GetOrCreateSession resolves a session, creating it when absent, and
// returns a snapshot of its state.
func (e *Engine) GetOrCreateSession(sessionID string) (Snapshot, error) {
	if sessionID == "" {
		return Snapshot{}, ErrEmptySessionID
	}
	s := e.getOrCreate(sessionID)

	s.mu.Lock()
	defer s.mu.Unlock()
	return snapshotLocked(s), nil
}

// GetSession is a read-only lookup. Absence is reported via the boolean,
// not an error; no session is created.
func (e *Engine) GetSession(sessionID string) (Snapshot, bool) {
	e.mu.RLock()
	s, ok := e.sessions[sessionID]
	e.mu.RUnlock()
	if !ok {
		return Snapshot{}, false
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return snapshotLocked(s), true
}

// EndSession removes the session from the store. Subsequent messages for
// the same ID start a fresh context. Reports whether a session existed.
func (e *Engine) EndSession(sessionID string) bool {
	e.mu.Lock()
	_, ok := e.sessions[sessionID]
	delete(e.sessions, sessionID)
	n := len(e.sessions)
	e.mu.Unlock()

	if ok {
		e.metrics.SetActiveSessions(n)
		e.logger.Info("session ended", zap.String("session_id", sessionID))
	}
	return ok
}

// ResetContext clears the session's context data and history while
// preserving its identity and start time. Reports whether the session
// existed.
func (e *Engine) ResetContext(sessionID string) bool {
	e.mu.RLock()
	s, ok := e.sessions[sessionID]
	e.mu.RUnlock()
	if !ok {
		return false
	}

	s.mu.Lock()
	s.contextData = make(map[string]string)
	s.hist.Reset()
	s.lastIntent = ""
	s.mu.Unlock()

	e.logger.Info("session context reset", zap.String("session_id", sessionID))
	return true
}

// SetUserName records the user's name on an existing session. Reports
// whether the session existed.
func (e *Engine) SetUserName(sessionID, name string) bool {
	e.mu.RLock()
	s, ok := e.sessions[sessionID]
	e.mu.RUnlock()
	if !ok {
		return false
	}

	s.mu.Lock()
	s.userName = name
	s.mu.Unlock()
	return true
}

// ActiveSessions returns the number of sessions currently in the store.
func (e *Engine) ActiveSessions() int {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return len(e.sessions)
}

// getOrCreate returns the live session for sessionID, inserting a fresh one
// when absent.
func (e *Engine) getOrCreate(sessionID string) *session {
	e.mu.RLock()
	s, ok := e.sessions[sessionID]
	e.mu.RUnlock()
	if ok {
		return s
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	if s, ok := e.sessions[sessionID]; ok {
		return s
	}

	s = &session{
		id:          sessionID,
		hist:        newHistory(e.historySize),
		contextData: make(map[string]string),
		startedAt:   time.Now(),
	}
	e.sessions[sessionID] = s

	e.metrics.SetActiveSessions(len(e.sessions))
	e.logger.Info("session created", zap.String("session_id", sessionID))
	return s
}

// resolveIntent keeps a slot-filling conversation going: a message that
// classifies as Unknown but carries entities relevant to the previous
// intent is treated as a continuation of that intent ("Book appointment
// for 2024-02-15" followed by "At 2pm please"). Anything else keeps its
// classified tag.
func resolveIntent(tag, last intent.Intent, ents []entity.Entity) intent.Intent {
	if tag != intent.IntentUnknown {
		return tag
	}
	switch last {
	case intent.IntentBookAppointment:
		if hasKind(ents, entity.KindDate) || hasKind(ents, entity.KindTime) {
			return intent.IntentBookAppointment
		}
	case intent.IntentCheckWeather:
		if hasKind(ents, entity.KindLocation) {
			return intent.IntentCheckWeather
		}
	}
	return tag
}

func hasKind(ents []entity.Entity, kind entity.Kind) bool {
	for _, en := range ents {
		if en.Kind == kind {
			return true
		}
	}
	return false
}

// snapshotLocked copies a session's state. Caller must hold s.mu.
func snapshotLocked(s *session) Snapshot {
	return Snapshot{
		SessionID:   s.id,
		UserName:    s.userName,
		StartedAt:   s.startedAt,
		LastIntent:  s.lastIntent,
		ContextData: maps.Clone(s.contextData),
		Turns:       s.hist.Turns(),
	}
}
