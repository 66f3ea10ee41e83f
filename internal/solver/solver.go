// Package solver abstracts over the external linear-algebra solver the
// recovery drivers hand their polynomial/cube-sum system to. The
// original tool called out to a fixed shell script
// (`system("zsh script.run")`); Solver turns that into an interface so
// the driver can be tested against a fake and run against any solver
// binary in production.
package solver

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/baudrin-research/asconcube/internal/fileio"
)

// Solver takes a driver's recovered-bit output directory - containing
// polynomials.txt (or polynomials_cube_k.txt) and cube_sum_vectors.txt -
// and is expected to write its answer into the same directory: for
// phase 2, recovered_a.txt in the "aI = V" format
// internal/fileio.ReadRecoveredBits parses; for phase 3,
// recovered_b_c.txt in the format internal/fileio.ReadRecoveredWords
// parses.
type Solver interface {
	Solve(ctx context.Context, dir string) error
}

// ShellSolver runs an external command in dir, the way the original
// driver invoked `zsh script.run` from the results directory. Command
// defaults to {"zsh", "script.run"} if left empty.
type ShellSolver struct {
	Command []string
}

// DefaultShellCommand mirrors the original driver's hard-coded
// "zsh script.run" invocation.
var DefaultShellCommand = []string{"zsh", "script.run"}

func (s ShellSolver) Solve(ctx context.Context, dir string) error {
	command := s.Command
	if len(command) == 0 {
		command = DefaultShellCommand
	}

	cmd := exec.CommandContext(ctx, command[0], command[1:]...)
	cmd.Dir = dir

	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("solver: %v failed in %s: %w (stderr: %s)", command, dir, err, stderr.String())
	}
	return nil
}

// FakeSolver is a test double that writes a fixed recovered_a.txt
// instead of invoking any subprocess.
type FakeSolver struct {
	// RecoveredBits maps variable index to its recovered value.
	RecoveredBits map[int]bool
	// Err, if set, is returned instead of writing anything.
	Err error
}

func (f FakeSolver) Solve(ctx context.Context, dir string) error {
	if f.Err != nil {
		return f.Err
	}
	path := filepath.Join(dir, "recovered_a.txt")
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("solver: fake solver create %s: %w", path, err)
	}
	defer file.Close()
	return fileio.WriteRecoveredBits(file, f.RecoveredBits)
}

// FakeWordSolver is phase 3's analogue of FakeSolver: it writes a fixed
// recovered_b_c.txt in the "bI = V"/"cI = V" format
// internal/fileio.ReadRecoveredWords parses.
type FakeWordSolver struct {
	RecoveredB, RecoveredC map[int]bool
	Err                    error
}

func (f FakeWordSolver) Solve(ctx context.Context, dir string) error {
	if f.Err != nil {
		return f.Err
	}
	path := filepath.Join(dir, "recovered_b_c.txt")
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("solver: fake word solver create %s: %w", path, err)
	}
	defer file.Close()
	return fileio.WriteRecoveredWords(file, f.RecoveredB, f.RecoveredC)
}
