package keygen

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/keymint/keymint/internal/errors"
	"github.com/keymint/keymint/internal/logger"
	"github.com/keymint/keymint/internal/util"
)

// DefaultBinary is the external tool resolved from PATH when no override
// is configured.
const DefaultBinary = "ssh-keygen"

// stderrTailSize bounds how much tool output failure messages can quote.
const stderrTailSize = 4096

// Tool shells out to ssh-keygen. The child process inherits the operator's
// terminal so its own passphrase prompt works; stderr is additionally teed
// into a small tail buffer for failure messages.
type Tool struct {
	// Path overrides the binary name. Empty means DefaultBinary from PATH.
	Path string

	// Stdin, Stdout, and Stderr wire the child to the operator's terminal.
	// nil fields default to the process standard streams.
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer

	// Log receives debug traces of each invocation. nil uses the package
	// default logger.
	Log logger.Logger
}

var _ Generator = (*Tool)(nil)

// NewTool creates a Tool wired to the process standard streams.
func NewTool() *Tool {
	return &Tool{}
}

// Generate runs one ssh-keygen invocation and reports the produced pair.
func (t *Tool) Generate(req Request) (Pair, error) {
	binary := t.Path
	if binary == "" {
		binary = DefaultBinary
	}

	resolved, err := exec.LookPath(binary)
	if err != nil {
		return Pair{}, errors.WrapWithCode(err, errors.ErrEnvironment,
			fmt.Sprintf("'%s' not found in PATH", binary),
			"Install the OpenSSH client tools and try again")
	}

	args := buildArgs(req)
	t.log().Debug("running %s %s", resolved, util.ShellJoin(redactArgs(args)))

	tail := &tailBuffer{cap: stderrTailSize}

	cmd := exec.Command(resolved, args...)
	cmd.Stdin = t.stdin()
	cmd.Stdout = t.stdout()
	cmd.Stderr = io.MultiWriter(t.stderr(), tail)

	if runErr := cmd.Run(); runErr != nil {
		if exitErr, ok := runErr.(*exec.ExitError); ok {
			code := exitErr.ExitCode()
			message := fmt.Sprintf("ssh-keygen failed for '%s'", filepath.Base(req.OutputPath))
			if diag := strings.TrimSpace(tail.String()); diag != "" {
				message = fmt.Sprintf("%s: %s", message, diag)
			}
			return Pair{}, errors.WrapWithCode(errors.NewExitError(code), errors.ErrKeyGen,
				message,
				"Check the ssh-keygen output above for details")
		}
		return Pair{}, errors.WrapWithCode(runErr, errors.ErrEnvironment,
			"Couldn't run ssh-keygen",
			"Check that the binary is executable")
	}

	return Pair{
		PrivatePath: req.OutputPath,
		PublicPath:  req.OutputPath + ".pub",
	}, nil
}

// buildArgs composes the ssh-keygen argv for a request.
func buildArgs(req Request) []string {
	algorithm := req.Algorithm
	if algorithm == "" {
		algorithm = "rsa"
	}

	args := []string{"-t", algorithm}
	if req.Bits > 0 {
		args = append(args, "-b", strconv.Itoa(req.Bits))
	}
	args = append(args, "-C", req.Comment, "-f", req.OutputPath)
	if req.Passphrase != nil {
		args = append(args, "-N", *req.Passphrase)
	}
	args = append(args, req.ExtraArgs...)

	return args
}

// redactArgs masks the passphrase value so debug traces never leak it.
func redactArgs(args []string) []string {
	redacted := make([]string, len(args))
	copy(redacted, args)
	for i := 0; i < len(redacted)-1; i++ {
		if redacted[i] == "-N" && redacted[i+1] != "" {
			redacted[i+1] = "***"
		}
	}
	return redacted
}

func (t *Tool) stdin() io.Reader {
	if t.Stdin != nil {
		return t.Stdin
	}
	return os.Stdin
}

func (t *Tool) stdout() io.Writer {
	if t.Stdout != nil {
		return t.Stdout
	}
	return os.Stdout
}

func (t *Tool) stderr() io.Writer {
	if t.Stderr != nil {
		return t.Stderr
	}
	return os.Stderr
}

func (t *Tool) log() logger.Logger {
	if t.Log != nil {
		return t.Log
	}
	return logger.Default()
}

// tailBuffer keeps the last cap bytes written to it.
type tailBuffer struct {
	cap int
	buf []byte
}

func (b *tailBuffer) Write(p []byte) (int, error) {
	b.buf = append(b.buf, p...)
	if len(b.buf) > b.cap {
		b.buf = b.buf[len(b.buf)-b.cap:]
	}
	return len(p), nil
}

func (b *tailBuffer) String() string {
	return string(b.buf)
}
