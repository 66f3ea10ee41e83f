package solver

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/baudrin-research/asconcube/internal/fileio"
)

func TestFakeSolverWritesRecoveredBits(t *testing.T) {
	dir := t.TempDir()
	s := FakeSolver{RecoveredBits: map[int]bool{0: true, 5: false}}

	if err := s.Solve(context.Background(), dir); err != nil {
		t.Fatalf("Solve: %v", err)
	}

	got, err := fileio.ReadRecoveredBitsFile(filepath.Join(dir, "recovered_a.txt"))
	if err != nil {
		t.Fatalf("ReadRecoveredBitsFile: %v", err)
	}
	if got[0] != true || got[5] != false {
		t.Errorf("recovered bits = %v, want {0:true, 5:false}", got)
	}
}

func TestFakeSolverReturnsConfiguredError(t *testing.T) {
	wantErr := errors.New("solver unavailable")
	s := FakeSolver{Err: wantErr}
	if err := s.Solve(context.Background(), t.TempDir()); !errors.Is(err, wantErr) {
		t.Errorf("Solve error = %v, want %v", err, wantErr)
	}
}

func TestFakeWordSolverWritesRecoveredWords(t *testing.T) {
	dir := t.TempDir()
	s := FakeWordSolver{RecoveredB: map[int]bool{0: true}, RecoveredC: map[int]bool{1: false}}

	if err := s.Solve(context.Background(), dir); err != nil {
		t.Fatalf("Solve: %v", err)
	}

	gotB, gotC, err := fileio.ReadRecoveredWordsFile(filepath.Join(dir, "recovered_b_c.txt"))
	if err != nil {
		t.Fatalf("ReadRecoveredWordsFile: %v", err)
	}
	if gotB[0] != true {
		t.Errorf("recovered b = %v, want {0:true}", gotB)
	}
	if gotC[1] != false {
		t.Errorf("recovered c = %v, want {1:false}", gotC)
	}
}

func TestFakeWordSolverReturnsConfiguredError(t *testing.T) {
	wantErr := errors.New("solver unavailable")
	s := FakeWordSolver{Err: wantErr}
	if err := s.Solve(context.Background(), t.TempDir()); !errors.Is(err, wantErr) {
		t.Errorf("Solve error = %v, want %v", err, wantErr)
	}
}

func TestShellSolverRunsCommandInDir(t *testing.T) {
	dir := t.TempDir()
	// A trivial command that touches a marker file in its working
	// directory, standing in for a real solver script.
	s := ShellSolver{Command: []string{"sh", "-c", "echo done > marker.txt"}}

	if err := s.Solve(context.Background(), dir); err != nil {
		t.Fatalf("Solve: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "marker.txt")); err != nil {
		t.Errorf("expected marker.txt to be created in %s: %v", dir, err)
	}
}

func TestShellSolverFailurePropagatesStderr(t *testing.T) {
	s := ShellSolver{Command: []string{"sh", "-c", "echo boom 1>&2; exit 1"}}
	err := s.Solve(context.Background(), t.TempDir())
	if err == nil {
		t.Fatal("expected an error for a failing command")
	}
	if !strings.Contains(err.Error(), "boom") {
		t.Errorf("error %q does not carry the command's stderr", err)
	}
}
