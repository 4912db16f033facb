package gitutil_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"mreflow/internal/gitutil"
)

// MockRunner for testing command execution.
type MockRunner struct {
	output string
	err    error
}

func (m MockRunner) CombinedOutput(ctx context.Context, name string, arg ...string) ([]byte, error) {
	return []byte(m.output), m.err
}

type mockExecError struct {
	output string
}

func (e *mockExecError) Error() string {
	return "mock exec error: " + e.output
}

func TestStagedMatlabFiles(t *testing.T) {
	tests := []struct {
		name       string
		mockOutput string
		mockError  error
		wantFiles  []string
		wantErr    bool
	}{
		{
			name:       "staged matlab files only",
			mockOutput: "scripts/solve.m\nREADME.md\nlib/filter.m\n",
			wantFiles:  []string{"scripts/solve.m", "lib/filter.m"},
		},
		{
			name:       "nothing staged",
			mockOutput: "",
			wantFiles:  nil,
		},
		{
			name:       "not a git repository",
			mockOutput: "fatal: not a git repository (or any of the parent directories): .git",
			mockError:  &mockExecError{output: "fatal"},
			wantErr:    true,
		},
		{
			name:       "other git error",
			mockOutput: "error: something went wrong",
			mockError:  &mockExecError{output: "error: something went wrong"},
			wantErr:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gitutil.SetRunner(MockRunner{output: tt.mockOutput, err: tt.mockError})
			defer gitutil.SetRunner(gitutil.DefaultRunner{})

			got, err := gitutil.StagedMatlabFiles(context.Background())
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.wantFiles, got)
		})
	}
}
