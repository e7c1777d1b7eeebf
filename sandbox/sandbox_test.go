package sandbox

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dhamidi/veridom/markup"
)

func TestRunWorkerRoundTrip(t *testing.T) {
	var out bytes.Buffer

	err := RunWorker(strings.NewReader("<div><p>Testing</p></div>"), &out)
	require.NoError(t, err)

	var result Result
	require.NoError(t, json.Unmarshal(out.Bytes(), &result))

	assert.True(t, result.Success)
	require.NotNil(t, result.Tree)
	assert.Equal(t, markup.RootName, result.Tree.Name)

	tree := markup.FromSerialized(result.Tree)
	require.Len(t, tree.Children, 1)
	assert.Equal(t, "div", tree.Children[0].Name)
	assert.Equal(t, "Testing", tree.Children[0].Children[0].TextContent)
}

func TestSafeParseSuccessThroughWorkerProcess(t *testing.T) {
	// Stand-in worker speaking the real protocol: drain stdin, emit
	// one result document.
	executor := &Executor{WorkerCommand: []string{
		"sh", "-c",
		`cat >/dev/null; printf '{"success":true,"tree":{"name":"html","attributes":{},"text_content":"","children":[]}}'`,
	}}

	result := executor.SafeParse("<div>x</div>", 5*time.Second)

	assert.True(t, result.Success)
	require.NotNil(t, result.Tree)
	assert.Equal(t, markup.RootName, result.Tree.Name)
	assert.Empty(t, result.Err)
}

func TestSafeParseTimeoutKillsWorker(t *testing.T) {
	executor := &Executor{WorkerCommand: []string{"sh", "-c", "sleep 60"}}

	start := time.Now()
	result := executor.SafeParse("<div>x</div>", 100*time.Millisecond)
	elapsed := time.Since(start)

	assert.False(t, result.Success)
	assert.Contains(t, result.Err, "timed out")
	assert.Nil(t, result.Tree)

	// SafeParse returns only after the killed worker was reaped, so a
	// prompt return means no orphan is left behind.
	assert.Less(t, elapsed, 5*time.Second)
}

func TestSafeParseTimeoutKillsWorkerDescendants(t *testing.T) {
	// The shell forks a grandchild that inherits the stdout pipe.
	// Killing the shell alone would leave the grandchild holding the
	// write end, and reaping would block on pipe EOF until it exits;
	// the group kill must take it down too.
	executor := &Executor{WorkerCommand: []string{"sh", "-c", "sleep 60 & wait"}}

	start := time.Now()
	result := executor.SafeParse("<div>x</div>", 100*time.Millisecond)
	elapsed := time.Since(start)

	assert.False(t, result.Success)
	assert.Contains(t, result.Err, "timed out")
	assert.Less(t, elapsed, 5*time.Second)
}

func TestSafeParseWorkerDiesWithoutResult(t *testing.T) {
	executor := &Executor{WorkerCommand: []string{"sh", "-c", "cat >/dev/null; exit 3"}}

	result := executor.SafeParse("<div>x</div>", 5*time.Second)

	assert.False(t, result.Success)
	assert.Equal(t, "worker failed to return a result", result.Err)
}

func TestSafeParseGarbageOutput(t *testing.T) {
	executor := &Executor{WorkerCommand: []string{"sh", "-c", "cat >/dev/null; echo not-json"}}

	result := executor.SafeParse("<div>x</div>", 5*time.Second)

	assert.False(t, result.Success)
	assert.Equal(t, "worker failed to return a result", result.Err)
}

func TestWorkerNeverFailsOnMalformedInput(t *testing.T) {
	inputs := []string{"", "<", "<<<>>>", "</nope>", strings.Repeat("<div>", 200)}

	for _, input := range inputs {
		var out bytes.Buffer
		err := RunWorker(strings.NewReader(input), &out)
		require.NoError(t, err, "input %q", input)

		var result Result
		require.NoError(t, json.Unmarshal(out.Bytes(), &result))
		assert.True(t, result.Success, "input %q", input)
	}
}
