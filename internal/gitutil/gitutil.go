// Package gitutil discovers MATLAB files staged in the git index.
package gitutil

import (
	"context"
	"fmt"
	"os/exec"
	"strings"
)

// CommandRunner is an interface for running external commands.
type CommandRunner interface {
	CombinedOutput(ctx context.Context, name string, arg ...string) ([]byte, error)
}

// DefaultRunner implements CommandRunner using os/exec.
type DefaultRunner struct{}

func (r DefaultRunner) CombinedOutput(ctx context.Context, name string, arg ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, name, arg...)
	return cmd.CombinedOutput()
}

var runner CommandRunner = DefaultRunner{}

// SetRunner swaps the command runner, for tests.
func SetRunner(r CommandRunner) {
	runner = r
}

// StagedMatlabFiles returns the .m files currently staged for commit
// (added, copied or modified).
func StagedMatlabFiles(ctx context.Context) ([]string, error) {
	outputBytes, err := runner.CombinedOutput(ctx, "git", "diff", "--cached", "--name-only", "--diff-filter=ACM")
	output := string(outputBytes)
	if err != nil {
		if strings.Contains(strings.ToLower(output), "not a git repository") {
			return nil, fmt.Errorf("not a git repository: %s", strings.TrimSpace(output))
		}
		return nil, fmt.Errorf("error running git diff: %w, output: %s", err, output)
	}

	var files []string
	for _, line := range strings.Split(strings.TrimSpace(output), "\n") {
		line = strings.TrimSpace(line)
		if line != "" && strings.HasSuffix(line, ".m") {
			files = append(files, line)
		}
	}
	return files, nil
}
