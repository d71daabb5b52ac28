package store

import (
	"testing"
)

type tempConfig struct {
	path string
}

func (c *tempConfig) BasePath() string { return c.path }

func TestLoadAndSaveDocument(t *testing.T) {
	p, err := Load(&tempConfig{path: t.TempDir()})
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	type doc struct {
		Name  string `json:"name"`
		Count int    `json:"count"`
	}

	if err := p.Save(KeyTasks, doc{Name: "tasks", Count: 3}); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	var got doc
	found, err := p.Load(KeyTasks, &got)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if !found {
		t.Fatal("written key should be found")
	}
	if got.Name != "tasks" || got.Count != 3 {
		t.Fatalf("round trip lost data: %+v", got)
	}
}

func TestLoadMissingKeyNotFound(t *testing.T) {
	p, err := Load(&tempConfig{path: t.TempDir()})
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	var out []string
	found, err := p.Load(KeyArchivedTasks, &out)
	if err != nil {
		t.Fatalf("expected no error for missing key, got %v", err)
	}
	if found {
		t.Fatal("missing key should report found=false")
	}
}

func TestSaveOverwritesDocument(t *testing.T) {
	p, err := Load(&tempConfig{path: t.TempDir()})
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if err := p.Save(KeyProjects, []string{"a", "b"}); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if err := p.Save(KeyProjects, []string{"c"}); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	var got []string
	if _, err := p.Load(KeyProjects, &got); err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(got) != 1 || got[0] != "c" {
		t.Fatalf("expected overwritten document, got %v", got)
	}
}
