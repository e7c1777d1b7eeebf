package markup

import (
	"testing"
	"time"
)

func TestTraceAddEventOrdering(t *testing.T) {
	trace := NewTrace()
	trace.AddEvent("first", nil)
	trace.AddEvent("second", Details{"k": 1})
	trace.AddEvent("third", nil)

	if len(trace.Events) != 3 {
		t.Fatalf("event count = %d, want 3", len(trace.Events))
	}
	if trace.Events[0].Type != "first" || trace.Events[2].Type != "third" {
		t.Errorf("events out of order: %v", trace.Events)
	}
	for i := 1; i < len(trace.Events); i++ {
		if trace.Events[i].Timestamp < trace.Events[i-1].Timestamp {
			t.Errorf("timestamps not monotonic: %v then %v",
				trace.Events[i-1].Timestamp, trace.Events[i].Timestamp)
		}
	}
}

func TestTraceAddErrorMirrorsEvent(t *testing.T) {
	trace := NewTrace()
	trace.AddError("boom")

	if len(trace.Errors) != 1 || trace.Errors[0] != "boom" {
		t.Fatalf("Errors = %v, want [boom]", trace.Errors)
	}
	if len(trace.Events) != 1 || trace.Events[0].Type != EventParseError {
		t.Fatalf("Events = %v, want one %s event", trace.Events, EventParseError)
	}
	if trace.Events[0].Details["message"] != "boom" {
		t.Errorf("message = %v, want boom", trace.Events[0].Details["message"])
	}
}

func TestTraceDurationBeforeFinalize(t *testing.T) {
	trace := NewTrace()
	if trace.Duration() < 0 {
		t.Errorf("Duration = %v, want >= 0", trace.Duration())
	}
}

func TestTraceFinalizeFreezesDuration(t *testing.T) {
	trace := NewTrace()
	trace.Finalize()
	first := trace.Duration()

	time.Sleep(5 * time.Millisecond)
	second := trace.Duration()

	if first != second {
		t.Errorf("duration changed after finalize: %v then %v", first, second)
	}
}

func TestTraceFinalizeIdempotent(t *testing.T) {
	trace := NewTrace()
	trace.Finalize()
	first := trace.Duration()

	time.Sleep(5 * time.Millisecond)
	trace.Finalize()

	if trace.Duration() != first {
		t.Error("second Finalize moved the end stamp")
	}
}
