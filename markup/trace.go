package markup

import "time"

// Event types recorded during a parse call.
const (
	EventTokenizationStart = "tokenization_start"
	EventTagEmitted        = "tag_emitted"
	EventAttrParsed        = "attr_parsed"
	EventParsingStart      = "parsing_start"
	EventImplicitClose     = "implicit_p_closed"
	EventStartTagProcessed = "start_tag_processed"
	EventEndTagProcessed   = "end_tag_processed"
	EventCharProcessed     = "character_processed"
	EventParsingComplete   = "parsing_complete"
	EventParseError        = "parse_error"
)

type Details map[string]any

type Event struct {
	Timestamp time.Duration `json:"timestamp"`
	Type      string        `json:"type"`
	Details   Details       `json:"details,omitempty"`
}

// Trace is the append-only event log for one parse call. It is shared
// by reference between the tokenizer and the builder of that call and
// must not be shared across concurrent parses. Timestamps are relative
// to the trace's start on the monotonic clock.
type Trace struct {
	Events []Event
	Errors []string

	start     time.Time
	end       time.Time
	finalized bool
}

func NewTrace() *Trace {
	return &Trace{start: time.Now()}
}

func (tr *Trace) AddEvent(eventType string, details Details) {
	tr.Events = append(tr.Events, Event{
		Timestamp: time.Since(tr.start),
		Type:      eventType,
		Details:   details,
	})
}

// AddError records a parse error in the error log and mirrors it as an
// event.
func (tr *Trace) AddError(msg string) {
	tr.Errors = append(tr.Errors, msg)
	tr.AddEvent(EventParseError, Details{"message": msg})
}

// Finalize stamps the end time. Calling it more than once keeps the
// first stamp.
func (tr *Trace) Finalize() {
	if !tr.finalized {
		tr.end = time.Now()
		tr.finalized = true
	}
}

// Duration is valid whether or not the trace was finalized; before
// finalization it reports elapsed time so far.
func (tr *Trace) Duration() time.Duration {
	if tr.finalized {
		return tr.end.Sub(tr.start)
	}
	return time.Since(tr.start)
}
