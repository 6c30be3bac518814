package main

import (
	"errors"
	"iter"
	"strings"
	"testing"

	"github.com/cybrota/roster/registry"
)

func TestRosterSeedsFilterFromIndex(t *testing.T) {
	tree := registry.NewTree()
	for _, roll := range []int{5, 1, 9} {
		if err := tree.Insert(registry.NewRecord(roll, registry.Fields{Name: "S"})); err != nil {
			t.Fatalf("Insert(%d) failed: %v", roll, err)
		}
	}

	cfg := defaultConfig
	r := NewRoster(tree, &cfg)
	for _, roll := range []int{5, 1, 9} {
		if _, err := r.Find(roll); err != nil {
			t.Errorf("Find(%d) on preloaded index returned %v", roll, err)
		}
	}
	if r.Len() != 3 {
		t.Errorf("Len() = %d; want 3", r.Len())
	}
}

func TestRosterFindUnknownRoll(t *testing.T) {
	r := newTestRoster()
	_, err := r.Find(404)
	if !errors.Is(err, registry.ErrNotFound) {
		t.Fatalf("Find(404) error = %v; want ErrNotFound", err)
	}
	var keyErr *registry.KeyError
	if !errors.As(err, &keyErr) || keyErr.Key != 404 {
		t.Errorf("Find(404) error = %#v; want KeyError for 404", err)
	}
}

func TestRosterPreviouslyRegistered(t *testing.T) {
	r := newTestRoster()
	if err := r.Add(sampleRecord()); err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if r.PreviouslyRegistered(12) {
		t.Error("PreviouslyRegistered(12) = true while the record still exists")
	}
	if err := r.Delete(12); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if !r.PreviouslyRegistered(12) {
		t.Error("PreviouslyRegistered(12) = false after delete")
	}
	if r.Exists(12) {
		t.Error("Exists(12) = true after delete")
	}
}

func TestRosterDetailsCacheInvalidation(t *testing.T) {
	r := newTestRoster()
	if err := r.Add(sampleRecord()); err != nil {
		t.Fatalf("Add failed: %v", err)
	}

	calls := 0
	render := func(md string) (string, error) {
		calls++
		return strings.ToUpper(md), nil
	}

	rec, _ := r.Find(12)
	first := r.Details(rec, render)
	second := r.Details(rec, render)
	if first != second || calls != 1 {
		t.Errorf("expected one render for repeated Details, got %d", calls)
	}
	if !strings.Contains(first, "ALAN TURING") {
		t.Errorf("render output not used:\n%s", first)
	}

	fields := rec.Fields
	fields.Name = "Alonzo Church"
	if err := r.Modify(12, fields); err != nil {
		t.Fatalf("Modify failed: %v", err)
	}
	rec, _ = r.Find(12)
	if got := r.Details(rec, render); !strings.Contains(got, "ALONZO CHURCH") || calls != 2 {
		t.Errorf("Details after Modify served a stale rendering (%d renders):\n%s", calls, got)
	}
}

func TestRosterDetailsRenderFailureFallsBack(t *testing.T) {
	r := newTestRoster()
	rec := sampleRecord()
	got := r.Details(rec, func(string) (string, error) {
		return "", errors.New("no terminal")
	})
	if got != FormatMarkdown(rec) {
		t.Errorf("Details on render failure = %q; want raw markdown", got)
	}
}

// brokenIndex reports a failed self-check after every change.
type brokenIndex struct {
	*registry.Tree
}

func (brokenIndex) Check() error {
	return errors.New("height mismatch")
}

func TestRosterVerify(t *testing.T) {
	cfg := defaultConfig
	cfg.Shell.Verify = true
	r := NewRoster(brokenIndex{registry.NewTree()}, &cfg)

	err := r.Add(sampleRecord())
	if err == nil || !strings.Contains(err.Error(), "index check failed after add") {
		t.Errorf("Add with failing check = %v; want index check error", err)
	}

	cfg.Shell.Verify = false
	quiet := NewRoster(brokenIndex{registry.NewTree()}, &cfg)
	if err := quiet.Add(sampleRecord()); err != nil {
		t.Errorf("Add without verify = %v; want nil", err)
	}
}

func TestRosterAllIsOrdered(t *testing.T) {
	r := newTestRoster()
	for _, roll := range []int{8, 3, 5, 1, 9, 2} {
		if err := r.Add(registry.NewRecord(roll, registry.Fields{})); err != nil {
			t.Fatalf("Add(%d) failed: %v", roll, err)
		}
	}
	var all iter.Seq[registry.Record] = r.All()
	prev := -1
	for rec := range all {
		if rec.Key <= prev {
			t.Fatalf("All() out of order: %d after %d", rec.Key, prev)
		}
		prev = rec.Key
	}
}
