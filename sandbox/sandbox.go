// Package sandbox runs a parse inside a separate OS process with an
// enforced timeout, so runaway or crashing parse attempts cannot take
// down the caller. The worker owns a private copy of the input; the
// result crosses back as one serialized JSON document, so no mutable
// state is ever shared across the process boundary.
package sandbox

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
	"syscall"
	"time"

	"github.com/tliron/commonlog"

	"github.com/dhamidi/veridom/markup"
)

var log = commonlog.GetLogger("veridom.sandbox")

// WorkerCommandName is the hidden CLI subcommand that runs the worker
// side of the protocol.
const WorkerCommandName = "parse-worker"

// Result is the one-shot outcome of a sandboxed parse. The caller
// observes either a complete result or a failure, never a partial
// tree.
type Result struct {
	Success bool               `json:"success"`
	Tree    *markup.Serialized `json:"tree,omitempty"`
	Err     string             `json:"error,omitempty"`
}

// Executor spawns one independent worker process per SafeParse call.
type Executor struct {
	// WorkerCommand is the argv of the worker process. When empty,
	// the current executable is re-run with WorkerCommandName.
	WorkerCommand []string
}

func NewExecutor() *Executor {
	return &Executor{}
}

// SafeParse parses input in an isolated worker, blocking up to timeout
// for the result. On timeout the worker is killed and a
// timeout-specific error is returned; a worker that exits without
// producing a decodable result yields a generic failure. SafeParse
// itself never fails hard: every outcome is a structured Result.
func (e *Executor) SafeParse(input string, timeout time.Duration) Result {
	argv := e.WorkerCommand
	if len(argv) == 0 {
		self, err := os.Executable()
		if err != nil {
			return Result{Err: fmt.Sprintf("locate worker executable: %v", err)}
		}
		argv = []string{self, WorkerCommandName}
	}

	cmd := exec.Command(argv[0], argv[1:]...)
	cmd.Stdin = strings.NewReader(input)
	var stdout bytes.Buffer
	cmd.Stdout = &stdout

	// The worker gets its own process group so a timeout kill reaches
	// every descendant, and WaitDelay stops Wait from blocking on the
	// stdout pipe if anything survives holding its write end.
	cmd.SysProcAttr = &syscall.SysProcAttr{Setpgid: true}
	cmd.WaitDelay = time.Second

	if err := cmd.Start(); err != nil {
		return Result{Err: fmt.Sprintf("start worker: %v", err)}
	}
	log.Debugf("worker started: pid=%d input=%d bytes", cmd.Process.Pid, len(input))

	done := make(chan error, 1)
	go func() {
		done <- cmd.Wait()
	}()

	select {
	case <-time.After(timeout):
		log.Warningf("worker pid=%d exceeded %s, killing", cmd.Process.Pid, timeout)
		if err := syscall.Kill(-cmd.Process.Pid, syscall.SIGKILL); err != nil {
			_ = cmd.Process.Kill()
		}
		<-done
		return Result{Err: fmt.Sprintf("parsing timed out after %s", timeout)}
	case waitErr := <-done:
		var result Result
		if err := json.Unmarshal(stdout.Bytes(), &result); err != nil {
			if waitErr != nil {
				log.Errorf("worker pid=%d failed: %v", cmd.Process.Pid, waitErr)
			}
			return Result{Err: "worker failed to return a result"}
		}
		return result
	}
}

// RunWorker is the worker side of the protocol: it reads the whole
// input from r, parses it, and writes one Result document to w.
func RunWorker(r io.Reader, w io.Writer) error {
	input, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("read input: %w", err)
	}

	tree := markup.Parse(string(input))

	if err := json.NewEncoder(w).Encode(Result{Success: true, Tree: tree.Serialize()}); err != nil {
		return fmt.Errorf("encode result: %w", err)
	}
	return nil
}
