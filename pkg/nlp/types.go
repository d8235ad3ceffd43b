package nlp

import "golang.org/x/net/context"

const (
	// IntentUnknown is the sentinel label used when no intent clears the
	// confidence threshold.
	IntentUnknown = "unknown"

	// IntentUnknownModel is the sentinel label the statistical resolver
	// yields when its artifacts are not loaded.
	IntentUnknownModel = "unknown_intent"

	// IntentError is the sentinel label attached to results produced by
	// the engine's failure path.
	IntentError = "error"
)

type EntityBag struct {
	Dates     []string `json:"dates"`
	Amounts   []string `json:"montants"`
	Durations []string `json:"durees"`
	Persons   []string `json:"personnes"`
}

type Result struct {
	Intent         string    `json:"intent"`
	Answer         string    `json:"answer"`
	Confidence     float64   `json:"confidence"`
	Entities       EntityBag `json:"entities"`
	Suggestions    []string  `json:"suggestions"`
	SessionID      string    `json:"session_id"`
	ConversationID string    `json:"conversation_id,omitempty"`
}

type ConversationRecord struct {
	ID         string
	EmployeeID string
	SessionID  string
	Message    string
	Intent     string
	Response   string
	Confidence float64
	Entities   EntityBag
}

// CallerContext carries the caller-specific state the composer may embed
// into a response. Everything in it is optional.
type CallerContext struct {
	EmployeeID   string
	LeaveBalance *float64
}

// Resolver maps a normalized message to an intent label. Implementations
// report scored=false when they cannot produce a calibrated confidence.
type Resolver interface {
	Resolve(ctx context.Context, normalized string) (label string, confidence float64, scored bool)
}

// CatalogSource is the external store of truth for intents.
type CatalogSource interface {
	FetchActive(ctx context.Context) ([]Intent, error)
}

// ConversationSink accepts append-only conversation records.
type ConversationSink interface {
	Append(ctx context.Context, record ConversationRecord) error
}

// BalanceProvider looks up an employee's leave balance for response
// personalization.
type BalanceProvider interface {
	LeaveBalance(ctx context.Context, employeeID string) (float64, bool)
}

const (
	SpanDate   = "date"
	SpanMoney  = "money"
	SpanPerson = "person"
)

// Span is a labeled fragment located by the linguistic annotator.
type Span struct {
	Label string
	Text  string
	Start int
}
