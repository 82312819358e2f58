package main

import (
	"os"
	"testing"

	"github.com/google/uuid"

	"github.com/funvibe/typecore/internal/config"
	"github.com/funvibe/typecore/internal/realizecache"
	"github.com/funvibe/typecore/internal/typesystem"
)

func TestLoadScenario(t *testing.T) {
	s, err := LoadScenario("testdata/basic.yaml")
	if err != nil {
		t.Fatalf("LoadScenario: %v", err)
	}
	if s.Name != "basic-scenario" {
		t.Errorf("Name = %q, want %q", s.Name, "basic-scenario")
	}
	if len(s.Steps) != 3 {
		t.Fatalf("len(Steps) = %d, want 3", len(s.Steps))
	}
	if s.Steps[0].Fixture != "list-var-vs-list-int" || !s.Steps[0].ExpectSuccess {
		t.Errorf("Steps[0] = %+v", s.Steps[0])
	}
	if s.Steps[1].ExpectSuccess {
		t.Errorf("Steps[1] should expect failure: %+v", s.Steps[1])
	}
}

func TestLoadScenario_MissingNameIsAnError(t *testing.T) {
	dir := t.TempDir()
	path := dir + "/bad.yaml"
	if err := writeFile(path, "steps: []\n"); err != nil {
		t.Fatalf("writeFile: %v", err)
	}
	if _, err := LoadScenario(path); err == nil {
		t.Errorf("expected an error for a scenario with no name")
	}
}

// TestScenario_YAMLRoundTripsThroughRealizeCache exercises the scenario
// documented in the engine's testable properties: constructing
// List[Unbound], unifying against List[Int], and reading back the
// identical realizeString from the cache after a process-local write.
func TestScenario_YAMLRoundTripsThroughRealizeCache(t *testing.T) {
	scenario, err := LoadScenario("testdata/basic.yaml")
	if err != nil {
		t.Fatalf("LoadScenario: %v", err)
	}

	engine := typesystem.NewEngine(config.DefaultEngineConfig())
	cache, err := realizecache.Open(scenario.Cache)
	if err != nil {
		t.Fatalf("Open cache: %v", err)
	}
	defer func() { _ = cache.Close() }()

	session := uuid.New()
	for _, step := range scenario.Steps {
		if err := runStep(engine, cache, session, step, false); err != nil {
			t.Fatalf("step %q: %v", step.Fixture, err)
		}
	}

	meta, ok, err := cache.Get("List[Int]")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if !ok {
		t.Fatalf("expected List[Int] to have been recorded in the cache")
	}
	if meta.SessionID != session {
		t.Errorf("SessionID = %v, want %v", meta.SessionID, session)
	}
}

func writeFile(path, contents string) error {
	return os.WriteFile(path, []byte(contents), 0o644)
}
