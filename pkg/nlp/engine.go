package nlp

import (
	"crypto/rand"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

const defaultLogTimeout = 3 * time.Second

// Engine is the intent resolution pipeline: normalize, resolve through
// the configured strategy, extract entities, compose the response and
// append the conversation record. One engine instance is constructed at
// startup and shared by all requests; the only shared mutable state it
// touches is the catalog handle.
type Engine struct {
	log        *logrus.Logger
	catalog    *Handle
	resolver   Resolver
	extractor  *Extractor
	sink       ConversationSink
	balances   BalanceProvider
	logTimeout time.Duration
}

func NewEngine(
	log *logrus.Logger,
	catalog *Handle,
	resolver Resolver,
	extractor *Extractor,
	sink ConversationSink,
	balances BalanceProvider,
) *Engine {
	return &Engine{
		log:        log,
		catalog:    catalog,
		resolver:   resolver,
		extractor:  extractor,
		sink:       sink,
		balances:   balances,
		logTimeout: defaultLogTimeout,
	}
}

// Resolve handles one user message end to end. It never panics out: an
// unexpected internal failure yields a normally shaped result carrying
// the "error" sentinel and an apologetic answer.
func (e *Engine) Resolve(ctx context.Context, message, employeeID, sessionID string) (result Result) {
	defer func() {
		if r := recover(); r != nil {
			e.log.WithFields(logrus.Fields{
				"panic":      r,
				"session_id": sessionID,
			}).Error("Intent resolution failed unexpectedly")
			result = Result{
				Intent:      IntentError,
				Answer:      errorAnswer,
				Entities:    EntityBag{},
				Suggestions: Suggestions(IntentError),
				SessionID:   sessionID,
			}
		}
	}()

	normalized := Normalize(message)
	label, confidence, _ := e.resolver.Resolve(ctx, normalized)
	entities := e.extractor.Extract(message)

	snapshot := e.catalog.Snapshot()
	caller := CallerContext{EmployeeID: employeeID}
	if employeeID != "" && balanceIntents[label] && e.balances != nil {
		if balance, ok := e.balances.LeaveBalance(ctx, employeeID); ok {
			caller.LeaveBalance = &balance
		}
	}

	answer, suggestions := Respond(snapshot, label, caller)

	record := ConversationRecord{
		ID:         ulid.MustNew(ulid.Timestamp(time.Now()), rand.Reader).String(),
		EmployeeID: employeeID,
		SessionID:  sessionID,
		Message:    message,
		Intent:     recordLabel(snapshot, label),
		Response:   answer,
		Confidence: confidence,
		Entities:   entities,
	}
	e.appendRecord(record)

	return Result{
		Intent:         label,
		Answer:         answer,
		Confidence:     confidence,
		Entities:       entities,
		Suggestions:    suggestions,
		SessionID:      sessionID,
		ConversationID: record.ID,
	}
}

// recordLabel enforces the log invariant: a stored intent is either a key
// of the catalog snapshot or the "unknown" sentinel. Strategy-specific
// sentinels and labels from a retired snapshot both collapse to unknown.
func recordLabel(snapshot *Catalog, label string) string {
	if _, ok := snapshot.Lookup(label); ok {
		return label
	}
	return IntentUnknown
}

// appendRecord writes the conversation record with a bounded wait and
// swallows failures: the answer is already finalized and is returned to
// the caller regardless of the sink's health.
func (e *Engine) appendRecord(record ConversationRecord) {
	if e.sink == nil {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), e.logTimeout)
	defer cancel()

	if err := e.sink.Append(ctx, record); err != nil {
		e.log.WithFields(logrus.Fields{
			"conversation_id": record.ID,
			"session_id":      record.SessionID,
			"error":           err.Error(),
		}).Error("Failed to append conversation record")
	}
}
