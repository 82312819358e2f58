// Command typecore runs YAML-described unification scenarios against
// the type inference engine and persists realize-string keys to a
// session-tagged cache, so the engine's observable behavior can be
// exercised and inspected without a full front end attached.
package main

import (
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/mattn/go-isatty"

	"github.com/funvibe/typecore/internal/config"
	"github.com/funvibe/typecore/internal/realizecache"
	"github.com/funvibe/typecore/internal/typesystem"
)

func main() {
	defer func() {
		if r := recover(); r != nil {
			if iv, ok := r.(*typesystem.InvariantViolation); ok {
				fmt.Fprintf(os.Stderr, "typecore: internal error: %v\n", iv)
				os.Exit(1)
			}
			panic(r)
		}
	}()

	// Handle version flag, same shape as the teacher's own
	// "-v"/"-version"/"--version" handling in cmd/funxy/main.go.
	if len(os.Args) == 2 {
		switch os.Args[1] {
		case "-v", "-version", "--version":
			fmt.Println("typecore " + config.Version)
			return
		}
	}

	if len(os.Args) < 2 {
		fmt.Fprintf(os.Stderr, "Usage: %s <scenario.yaml> [engine-config.yaml]\n", os.Args[0])
		os.Exit(2)
	}

	// Test mode is latched once at startup exactly like the teacher's
	// config.IsTestMode: either the environment (go test runs) or an
	// explicit "--test-mode" flag, never toggled mid-run.
	if os.Getenv("TYPECORE_TEST_MODE") == "1" {
		config.IsTestMode = true
	}
	for _, arg := range os.Args[2:] {
		if arg == "-test-mode" || arg == "--test-mode" {
			config.IsTestMode = true
		}
	}

	scenario, err := LoadScenario(os.Args[1])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	var engineConfigPath string
	if len(os.Args) >= 3 && len(os.Args[2]) > 0 && os.Args[2][0] != '-' {
		engineConfigPath = os.Args[2]
	}

	engineConfig := EngineConfigFromEnv(engineConfigPath)
	if config.IsTestMode {
		engineConfig.DebugNames = true
	}

	session := uuid.New()
	engine := typesystem.NewEngine(engineConfig)
	engine.Logger = typesystem.StdLogger{L: newRunLogger(session)}

	cache, err := realizecache.Open(scenario.Cache)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer func() { _ = cache.Close() }()

	color := isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
	fmt.Printf("scenario %q, session %s\n", scenario.Name, session)

	failures := 0
	for _, step := range scenario.Steps {
		if err := runStep(engine, cache, session, step, color); err != nil {
			failures++
		}
	}

	if failures > 0 {
		fmt.Printf("%d/%d steps failed\n", failures, len(scenario.Steps))
		os.Exit(1)
	}
	fmt.Printf("all %d steps passed\n", len(scenario.Steps))
}

func runStep(e *typesystem.Engine, cache *realizecache.Cache, session uuid.UUID, step StepConfig, color bool) error {
	f, err := lookupFixture(step.Fixture)
	if err != nil {
		printResult(step.Fixture, false, err, color)
		return err
	}

	left, right, realizeTarget := f(e)
	j := e.NewJournal()
	_, unifyErr := e.Unify(left, right, j)
	succeeded := unifyErr == nil

	if succeeded != step.ExpectSuccess {
		err := fmt.Errorf("expected success=%v, got success=%v (%v)", step.ExpectSuccess, succeeded, unifyErr)
		printResult(step.Fixture, false, err, color)
		e.Undo(j)
		return err
	}

	if succeeded && realizeTarget != nil && typesystem.CanRealize(realizeTarget) {
		key := typesystem.RealizeString(realizeTarget)
		if step.ExpectRealize != "" && key != step.ExpectRealize {
			err := fmt.Errorf("expected realizeString %q, got %q", step.ExpectRealize, key)
			printResult(step.Fixture, false, err, color)
			e.Undo(j)
			return err
		}
		if err := cache.Put(key, session); err != nil {
			printResult(step.Fixture, false, err, color)
			e.Undo(j)
			return err
		}
		fmt.Printf("  realizeString(%s) = %s  (%s)\n", step.Fixture, key, e.DebugString(left))
	}

	printResult(step.Fixture, true, nil, color)
	return nil
}

func printResult(name string, ok bool, err error, color bool) {
	status := "FAIL"
	if ok {
		status = "PASS"
	}
	if color {
		code := "31" // red
		if ok {
			code = "32" // green
		}
		fmt.Printf("\033[%sm%s\033[0m %s", code, status, name)
	} else {
		fmt.Printf("%s %s", status, name)
	}
	if err != nil {
		fmt.Printf(": %v", err)
	}
	fmt.Println()
}
