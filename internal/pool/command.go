package pool

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
)

// Command runs an external program per task. "{input}" and "{output}" in Args
// are replaced with the task's paths.
type Command struct {
	Name   string
	Args   []string
	Dir    string
	Stdout io.Writer
	Stderr io.Writer
}

// Run starts the program and waits for it. A non-zero exit is an error.
func (c *Command) Run(ctx context.Context, task Task) error {
	cmd := exec.CommandContext(ctx, c.Name, c.Expand(task)...)
	cmd.Dir = c.Dir
	cmd.Stdout = writerOr(c.Stdout, os.Stdout)
	cmd.Stderr = writerOr(c.Stderr, os.Stderr)
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("%s: %w", c.Name, err)
	}
	return nil
}

// Expand returns the arguments for task.
func (c *Command) Expand(task Task) []string {
	replacer := strings.NewReplacer("{input}", task.Input, "{output}", task.Output)
	args := make([]string, len(c.Args))
	for i, arg := range c.Args {
		args[i] = replacer.Replace(arg)
	}
	return args
}

func writerOr(w, fallback io.Writer) io.Writer {
	if w != nil {
		return w
	}
	return fallback
}
