package bot

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/example/vocabu/internal/export"
	"github.com/example/vocabu/internal/plan"
	"github.com/example/vocabu/internal/progress"
	"github.com/example/vocabu/internal/session"
	"github.com/example/vocabu/internal/srs"
	"github.com/example/vocabu/internal/storage"
	"github.com/example/vocabu/pkg/models"
)

func newTestBot(t *testing.T) *Bot {
	t.Helper()
	store, err := storage.Open(storage.Config{Driver: "sqlite3", DSN: filepath.Join(t.TempDir(), "test.db")})
	if err != nil {
		t.Fatalf("failed to open test store: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	log := storage.NewReviewLog(store)
	sched := srs.NewScheduler(store, log)
	tracker := progress.NewTracker(store)
	syncer := plan.NewSynchronizer(store, sched, tracker)
	svc := session.New(store, sched, tracker, syncer, log)
	return &Bot{svc: svc, exporter: export.New(store, log), chats: make(map[int64]*chatState)}
}

func TestImportPackageRestoresState(t *testing.T) {
	src := newTestBot(t)
	src.svc.ApplyPlan(models.Plan{
		CreatedAt:      time.Now().UnixMilli(),
		Context:        models.ContextTravel,
		Horizon:        60,
		Recommendation: models.Recommendation{PerDay: 8},
		Pool:           []models.VocabItem{{ID: "visa", Term: "visa", Translation: "виза"}},
		TodaySet:       []models.VocabItem{{ID: "visa", Term: "visa", Translation: "виза"}},
	})

	var buf bytes.Buffer
	if err := src.exporter.WriteJSON(&buf); err != nil {
		t.Fatalf("export: %v", err)
	}

	dst := newTestBot(t)
	reply := dst.importPackage(buf.String())
	if !strings.Contains(reply, "Restored") {
		t.Fatalf("reply = %q, want restore confirmation", reply)
	}

	p, ok := dst.svc.Plan()
	if !ok || p.Context != models.ContextTravel {
		t.Errorf("plan after import = %+v, %v", p, ok)
	}
	// Resync after import must have seeded the restored pool, so a
	// session starts right away.
	review, err := dst.svc.StartReview()
	if err != nil {
		t.Fatalf("review after import: %v", err)
	}
	if review.Len() == 0 {
		t.Error("imported plan yields an empty session")
	}
}

func TestImportPackageBadJSON(t *testing.T) {
	b := newTestBot(t)
	reply := b.importPackage("{nope")
	if !strings.Contains(reply, "Couldn't read") {
		t.Errorf("reply = %q, want a decode failure notice", reply)
	}
	if _, ok := b.svc.Plan(); ok {
		t.Error("bad import must not create a plan")
	}
}

func TestImportPackageEmptySections(t *testing.T) {
	b := newTestBot(t)
	reply := b.importPackage(`{"version":"vocabu-export-1"}`)
	if !strings.Contains(reply, "no data") {
		t.Errorf("reply = %q, want an empty-package notice", reply)
	}
}
