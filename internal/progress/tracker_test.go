package progress

import (
	"encoding/json"
	"testing"

	"github.com/example/vocabu/internal/storage"
	"github.com/example/vocabu/pkg/models"
)

type fakeKV struct {
	data map[string][]byte
}

func newFakeKV() *fakeKV {
	return &fakeKV{data: make(map[string][]byte)}
}

func (f *fakeKV) GetJSON(key string, v interface{}) bool {
	raw, ok := f.data[key]
	if !ok {
		return false
	}
	return json.Unmarshal(raw, v) == nil
}

func (f *fakeKV) SetJSON(key string, v interface{}) {
	raw, err := json.Marshal(v)
	if err != nil {
		return
	}
	f.data[key] = raw
}

func newTestTracker(kv *fakeKV, today models.Date) *Tracker {
	tr := NewTracker(kv)
	tr.today = func() models.Date { return today }
	return tr
}

func TestReadTodayFreshStore(t *testing.T) {
	tr := newTestTracker(newFakeKV(), "2026-08-30")
	rec := tr.ReadToday()
	if rec.Date != "2026-08-30" || rec.Done != 0 || rec.Target != 0 {
		t.Errorf("rec = %+v, want zeroed record for today", rec)
	}
	if rec.CountedIDs == nil {
		t.Error("CountedIDs should be non-nil")
	}
}

func TestRolloverDropsTarget(t *testing.T) {
	kv := newFakeKV()
	yesterday := newTestTracker(kv, "2026-08-29")
	yesterday.SetTarget(12)
	yesterday.Increment("w1")

	today := newTestTracker(kv, "2026-08-30")
	rec := today.ReadToday()
	if rec.Date != "2026-08-30" {
		t.Errorf("date = %s, want today", rec.Date)
	}
	if rec.Done != 0 || rec.Target != 0 || len(rec.CountedIDs) != 0 {
		t.Errorf("rec = %+v, want fully zeroed after rollover", rec)
	}
}

func TestRolloverPersistsFreshRecord(t *testing.T) {
	kv := newFakeKV()
	newTestTracker(kv, "2026-08-29").Increment("w1")

	newTestTracker(kv, "2026-08-30").ReadToday()

	var stored models.DailyProgress
	if !kv.GetJSON(storage.KeyProgress, &stored) || stored.Date != "2026-08-30" {
		t.Errorf("stored = %+v, want today's record persisted", stored)
	}
}

func TestIncrementOncePerItem(t *testing.T) {
	tr := newTestTracker(newFakeKV(), "2026-08-30")

	tr.Increment("w1")
	tr.Increment("w2")
	rec := tr.Increment("w1") // repeat

	if rec.Done != 2 {
		t.Errorf("done = %d, want 2", rec.Done)
	}
	if rec.Done != len(rec.CountedIDs) {
		t.Errorf("done %d != counted %d", rec.Done, len(rec.CountedIDs))
	}
}

func TestIncrementEmptyID(t *testing.T) {
	tr := newTestTracker(newFakeKV(), "2026-08-30")
	rec := tr.Increment("")
	if rec.Done != 0 {
		t.Errorf("done = %d, want 0 for empty id", rec.Done)
	}
}

func TestSetTargetClamps(t *testing.T) {
	tr := newTestTracker(newFakeKV(), "2026-08-30")
	if rec := tr.SetTarget(-3); rec.Target != 0 {
		t.Errorf("target = %d, want 0", rec.Target)
	}
	if rec := tr.SetTarget(8); rec.Target != 8 {
		t.Errorf("target = %d, want 8", rec.Target)
	}
}

func TestSetTargetKeepsDone(t *testing.T) {
	tr := newTestTracker(newFakeKV(), "2026-08-30")
	tr.Increment("w1")
	rec := tr.SetTarget(5)
	if rec.Done != 1 {
		t.Errorf("done = %d, want 1 preserved across SetTarget", rec.Done)
	}
}

func TestCorruptRecordReadsAsFresh(t *testing.T) {
	kv := newFakeKV()
	kv.data[storage.KeyProgress] = []byte("][")

	rec := newTestTracker(kv, "2026-08-30").ReadToday()
	if rec.Date != "2026-08-30" || rec.Done != 0 {
		t.Errorf("rec = %+v, want fresh record on corrupt store", rec)
	}
}
