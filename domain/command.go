package domain

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
)

type CommandArgs []string

type Command struct {
	Name string
	Args []string
	Env  []string // extra environment entries, e.g. DEBIAN_FRONTEND
}

func NewCommand(list []string) Command {
	var name string
	var args []string

	if len(list) > 1 {
		name = list[0]
		args = list[1:]
	} else {
		name = list[0]
		args = []string{}
	}

	return Command{Name: name, Args: args}
}

// NewComposeCommand builds a 'docker compose' invocation targeting the
// project directory holding the generated compose file and .env.
func NewComposeCommand(list []string, projectDir string) Command {
	name := "docker"
	args := []string{"compose", "--project-directory", projectDir}

	args = append(args, list...)

	return Command{Name: name, Args: args}
}

func (c Command) String() string {
	return fmt.Sprintf("%s %s", c.Name, strings.Join(c.Args, " "))
}

func (c Command) build() *exec.Cmd {
	cmd := exec.Command(c.Name, c.Args...)
	if len(c.Env) > 0 {
		cmd.Env = append(os.Environ(), c.Env...)
	}
	return cmd
}

// Execute runs the command wired to the terminal and returns a
// ToolInvocationError on a non-zero exit.
func (c Command) Execute() error {
	cmd := c.build()
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	cmd.Stdin = os.Stdin

	fmt.Printf("Executing: %s\n", c)

	if err := cmd.Run(); err != nil {
		return &ToolInvocationError{Command: c.String(), Err: err}
	}
	return nil
}

// GetResult runs the command and returns its trimmed standard output.
func (c Command) GetResult() (string, error) {
	out, err := c.build().Output()
	if err != nil {
		return "", &ToolInvocationError{Command: c.String(), Err: err}
	}
	return strings.TrimSpace(string(out)), nil
}

// CombinedResult runs the command and returns stdout and stderr
// together, trimmed. The output is returned even when the command
// fails, since tools like 'nginx -t' report problems on stderr.
func (c Command) CombinedResult() (string, error) {
	out, err := c.build().CombinedOutput()
	result := strings.TrimSpace(string(out))
	if err != nil {
		return result, &ToolInvocationError{Command: c.String(), Err: err}
	}
	return result, nil
}

// WriteResultToFile streams the command's standard output to w.
// Used for database dumps.
func (c Command) WriteResultToFile(w io.Writer) error {
	cmd := c.build()
	cmd.Stdout = w
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		return &ToolInvocationError{Command: c.String(), Err: err}
	}
	return nil
}

// ExecuteWithStdin runs the command fed from r. Used for database
// restores.
func (c Command) ExecuteWithStdin(r io.Reader) error {
	cmd := c.build()
	cmd.Stdin = r
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		return &ToolInvocationError{Command: c.String(), Err: err}
	}
	return nil
}

// Runner is the execution seam between the provisioning steps and the
// host. Tests substitute a recording implementation.
type Runner interface {
	Run(c Command) error
	Output(c Command) (string, error)
}

// ExecRunner runs commands against the real host tools.
type ExecRunner struct{}

func (ExecRunner) Run(c Command) error { return c.Execute() }

func (ExecRunner) Output(c Command) (string, error) { return c.CombinedResult() }
