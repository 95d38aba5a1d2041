package main

import (
	"errors"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// inLogSandbox runs the test from an empty directory and restores the standard logger
func inLogSandbox(t *testing.T) {
	t.Helper()
	dir := t.TempDir()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { os.Chdir(wd) })
	out, flags := log.Writer(), log.Flags()
	t.Cleanup(func() {
		log.SetOutput(out)
		log.SetFlags(flags)
	})
}

func TestLoggingDiscardedWithoutDebug(t *testing.T) {
	inLogSandbox(t)

	if f := setupLogging(false); f != nil {
		f.Close()
		t.Fatal("Expected no log file without -debug")
	}
	if log.Writer() != io.Discard {
		t.Errorf("Expected io.Discard, got %v", log.Writer())
	}
	if _, err := os.Stat(logDir); !os.IsNotExist(err) {
		t.Errorf("Expected no %s directory, stat err %v", logDir, err)
	}
}

func TestLoggingWritesToFile(t *testing.T) {
	inLogSandbox(t)

	f := setupLogging(true)
	if f == nil {
		t.Fatal("Expected a log file with -debug")
	}
	defer f.Close()

	if w := log.Writer(); w == os.Stdout || w == os.Stderr {
		t.Fatal("Log output must not share the screen")
	}

	log.Printf("[engine] kill: projectile abc hit enemy def")

	data, err := os.ReadFile(filepath.Join(logDir, logFileName))
	if err != nil {
		t.Fatalf("Read log: %v", err)
	}
	text := string(data)
	for _, want := range []string{"[main] logging started", "[engine] kill"} {
		if !strings.Contains(text, want) {
			t.Errorf("Log missing %q:\n%s", want, text)
		}
	}
}

func TestLoggingAppendsAcrossRuns(t *testing.T) {
	inLogSandbox(t)

	for i := 0; i < 2; i++ {
		f := setupLogging(true)
		if f == nil {
			t.Fatalf("Run %d: expected a log file", i)
		}
		f.Close()
	}

	data, err := os.ReadFile(filepath.Join(logDir, logFileName))
	if err != nil {
		t.Fatalf("Read log: %v", err)
	}
	if n := strings.Count(string(data), "logging started"); n != 2 {
		t.Errorf("Expected 2 start lines, got %d", n)
	}
}

func TestLoggingRotatesOversizedFile(t *testing.T) {
	inLogSandbox(t)

	if err := os.MkdirAll(logDir, 0755); err != nil {
		t.Fatal(err)
	}
	logPath := filepath.Join(logDir, logFileName)
	if err := os.WriteFile(logPath, make([]byte, maxLogSize+1), 0644); err != nil {
		t.Fatal(err)
	}

	f := setupLogging(true)
	if f == nil {
		t.Fatal("Expected a log file after rotation")
	}
	defer f.Close()

	rotated, err := filepath.Glob(filepath.Join(logDir, "arena3d-*.log"))
	if err != nil {
		t.Fatal(err)
	}
	if len(rotated) != 1 {
		t.Fatalf("Expected one rotated file, got %v", rotated)
	}
	if info, err := os.Stat(rotated[0]); err != nil || info.Size() != maxLogSize+1 {
		t.Errorf("Rotated file should keep the old content, stat %v err %v", info, err)
	}

	info, err := os.Stat(logPath)
	if err != nil {
		t.Fatal(err)
	}
	if info.Size() > maxLogSize {
		t.Errorf("Fresh log should be small, got %d bytes", info.Size())
	}
}

func TestFatalClosesLogBeforeExit(t *testing.T) {
	inLogSandbox(t)

	var code int
	exited := false
	osExit = func(c int) {
		code, exited = c, true
	}
	t.Cleanup(func() { osExit = os.Exit })

	logFile = setupLogging(true)
	if logFile == nil {
		t.Fatal("Expected a log file with -debug")
	}
	f := logFile

	fatal(errors.New("enemy mesh: missing"), nil)

	if !exited || code != 1 {
		t.Fatalf("exit called = %v, code %d, want 1", exited, code)
	}
	if logFile != nil {
		t.Error("log file still referenced after exit")
	}
	if _, err := f.WriteString("late"); !errors.Is(err, os.ErrClosed) {
		t.Errorf("log file not closed, write err = %v", err)
	}

	data, err := os.ReadFile(filepath.Join(logDir, logFileName))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "[main] fatal: enemy mesh: missing") {
		t.Errorf("fatal line missing from log:\n%s", data)
	}
}
