package verify

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dhamidi/veridom/markup"
)

func TestVerifyDepthLimit(t *testing.T) {
	tree := markup.Parse("<div><div><div>deep</div></div></div>")

	report := Limits{MaxDepth: 2, MaxNodes: 100}.Verify(tree)

	assert.False(t, report.Valid)
	assert.Equal(t, 4, report.MaxDepth)
	assert.Equal(t, 4, report.NodeCount)
	require.Len(t, report.Issues, 1)
	assert.Contains(t, report.Issues[0], "depth")
}

func TestVerifyNodeLimit(t *testing.T) {
	tree := markup.Parse(strings.Repeat("<p>x</p>", 20))

	report := Limits{MaxDepth: 100, MaxNodes: 10}.Verify(tree)

	assert.False(t, report.Valid)
	assert.Equal(t, 21, report.NodeCount)
	require.Len(t, report.Issues, 1)
	assert.Contains(t, report.Issues[0], "Node count")
}

func TestVerifyBothLimitsViolated(t *testing.T) {
	tree := markup.Parse(strings.Repeat("<div>", 10))

	report := Limits{MaxDepth: 3, MaxNodes: 5}.Verify(tree)

	assert.False(t, report.Valid)
	assert.Len(t, report.Issues, 2)
}

func TestVerifyWithinLimits(t *testing.T) {
	tree := markup.Parse("<div><p>fine</p></div>")

	report := Limits{MaxDepth: 10, MaxNodes: 10}.Verify(tree)

	assert.True(t, report.Valid)
	assert.Empty(t, report.Issues)
	assert.Equal(t, 3, report.NodeCount)
	assert.Equal(t, 3, report.MaxDepth)
}
