package store

import (
	"strings"
	"testing"
	"time"
)

func testRecord(challenge string, ts time.Time) RunRecord {
	return RunRecord{
		Challenge: challenge,
		Timestamp: ts,
		Elapsed:   0.012,
		Passed:    true,
		Cases: []CaseRecord{
			{Case: 0, Verdict: "Correct!", Got: "[1.0]", Want: "[1.0]"},
		},
	}
}

func TestSaveLoadRoundtrip(t *testing.T) {
	s := New(t.TempDir())
	if err := s.Init(); err != nil {
		t.Fatal(err)
	}

	id, err := s.Save(testRecord("zne-vqe", time.Now()))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(id, "zne-vqe_") {
		t.Errorf("id should carry the challenge name, got %q", id)
	}

	rec, err := s.Load(id)
	if err != nil {
		t.Fatal(err)
	}
	if rec.Challenge != "zne-vqe" || !rec.Passed {
		t.Errorf("record did not roundtrip: %+v", rec)
	}
	if len(rec.Cases) != 1 || rec.Cases[0].Verdict != "Correct!" {
		t.Errorf("cases did not roundtrip: %+v", rec.Cases)
	}
}

func TestListNewestFirst(t *testing.T) {
	s := New(t.TempDir())
	if err := s.Init(); err != nil {
		t.Fatal(err)
	}

	base := time.Now()
	for i, name := range []string{"old", "mid", "new"} {
		if _, err := s.Save(testRecord(name, base.Add(time.Duration(i)*time.Hour))); err != nil {
			t.Fatal(err)
		}
	}

	recs, err := s.List()
	if err != nil {
		t.Fatal(err)
	}
	if len(recs) != 3 {
		t.Fatalf("expected 3 records, got %d", len(recs))
	}
	if recs[0].Challenge != "new" || recs[2].Challenge != "old" {
		t.Errorf("expected newest first, got %v, %v, %v",
			recs[0].Challenge, recs[1].Challenge, recs[2].Challenge)
	}
}

func TestListMissingDir(t *testing.T) {
	s := New(t.TempDir() + "/never-created")
	recs, err := s.List()
	if err != nil {
		t.Fatal(err)
	}
	if recs != nil {
		t.Errorf("expected no records, got %v", recs)
	}
}

func TestLoadMissing(t *testing.T) {
	s := New(t.TempDir())
	if _, err := s.Load("nope"); err == nil {
		t.Error("expected error for missing record")
	}
}

func TestSaveGeneratesUniqueIDs(t *testing.T) {
	s := New(t.TempDir())
	if err := s.Init(); err != nil {
		t.Fatal(err)
	}

	seen := map[string]bool{}
	for i := 0; i < 5; i++ {
		id, err := s.Save(testRecord("noisy-fidelity", time.Now()))
		if err != nil {
			t.Fatal(err)
		}
		if seen[id] {
			t.Fatalf("duplicate id %q", id)
		}
		seen[id] = true
	}
}
