package prof

import (
	"testing"
	"time"
)

func TestDisabledRecordsNothing(t *testing.T) {
	Enable(false)
	SnapshotAndReset()
	Track(time.Now(), "x")
	RecordAttempts("x", 3)
	if got := SnapshotAndReset(); len(got) != 0 {
		t.Fatalf("expected no entries while disabled, got %d", len(got))
	}
}

func TestSummarize(t *testing.T) {
	Enable(true)
	defer Enable(false)
	SnapshotAndReset()
	Track(time.Now().Add(-time.Millisecond), "sample")
	Track(time.Now().Add(-time.Millisecond), "sample")
	RecordAttempts("sample", 2)
	RecordAttempts("sample", 1)

	entries := SnapshotAndReset()
	if len(entries) != 4 {
		t.Fatalf("want 4 entries, got %d", len(entries))
	}
	s := Summarize(entries)["sample"]
	if s.Calls != 2 || s.Attempts != 3 {
		t.Fatalf("unexpected summary %+v", s)
	}
	if s.Total < 2*time.Millisecond {
		t.Fatalf("total %v shorter than tracked durations", s.Total)
	}
	if again := SnapshotAndReset(); len(again) != 0 {
		t.Fatalf("snapshot did not reset, %d entries left", len(again))
	}
}
