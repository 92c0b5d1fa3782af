package git

import (
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

// CommandRunner abstracts command execution so git operations can be
// tested without a real repository.
type CommandRunner interface {
	// Run executes the command in dir and returns trimmed combined output.
	Run(dir, name string, args ...string) (string, error)
}

// ExecRunner runs commands with os/exec.
type ExecRunner struct{}

// NewExecRunner creates a runner backed by os/exec.
func NewExecRunner() *ExecRunner {
	return &ExecRunner{}
}

// Run executes the command and returns its combined output. On failure the
// returned error carries the command output so callers can match on it.
func (r *ExecRunner) Run(dir, name string, args ...string) (string, error) {
	cmd := exec.Command(name, args...)
	cmd.Dir = dir

	out, err := cmd.CombinedOutput()
	output := strings.TrimSpace(string(out))
	if err != nil {
		if output != "" {
			return output, fmt.Errorf("%s: %s", err, output)
		}
		return output, err
	}
	return output, nil
}

// MockCall records a command executed against a mock runner.
type MockCall struct {
	Dir  string
	Name string
	Args []string
}

// SequentialMockRunner replays queued outputs in order. Tests queue one
// output per expected command and inspect Calls afterwards.
type SequentialMockRunner struct {
	Calls   []MockCall
	queue   []mockResult
	nextIdx int
}

type mockResult struct {
	output string
	err    error
}

// NewSequentialMockRunner creates an empty mock runner.
func NewSequentialMockRunner() *SequentialMockRunner {
	return &SequentialMockRunner{}
}

// AddOutput queues the output and error for the next command.
func (r *SequentialMockRunner) AddOutput(output string, err error) {
	r.queue = append(r.queue, mockResult{output: output, err: err})
}

// AddOutputError queues a failing command. If err is nil a generic error
// with the given text is used.
func (r *SequentialMockRunner) AddOutputError(output, errText string, err error) {
	if err == nil {
		err = errors.New(errText)
	}
	r.queue = append(r.queue, mockResult{output: output, err: err})
}

// Run pops the next queued result and records the call.
func (r *SequentialMockRunner) Run(dir, name string, args ...string) (string, error) {
	r.Calls = append(r.Calls, MockCall{Dir: dir, Name: name, Args: args})

	if r.nextIdx >= len(r.queue) {
		return "", fmt.Errorf("unexpected command: %s %s", name, strings.Join(args, " "))
	}
	result := r.queue[r.nextIdx]
	r.nextIdx++
	return result.output, result.err
}
