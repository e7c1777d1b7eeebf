package verify

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dhamidi/veridom/markup"
)

func TestCompareWellFormedInput(t *testing.T) {
	input := "<div><p>hi</p><span>there</span></div>"

	report := Compare(input, markup.Parse(input))

	assert.True(t, report.Matches)
	assert.Equal(t, 3, report.RefTagCount)
	assert.Equal(t, 3, report.OurTagCount)
	assert.Equal(t, "Structure matches reference", report.Details)
}

func TestCompareImplicitClosureAgreesWithReference(t *testing.T) {
	// The reference parser also closes the open p before the div.
	input := "<p>Text<div>Block</div>"

	report := Compare(input, markup.Parse(input))

	assert.True(t, report.Matches)
	assert.Equal(t, 2, report.RefTagCount)
	assert.Equal(t, 2, report.OurTagCount)
}

func TestCompareDetectsDiscrepancy(t *testing.T) {
	input := "<div><p>hi</p></div>"

	// A hand-built tree with an extra element cannot match.
	root := markup.NewTreeNode(markup.RootName)
	div := markup.NewTreeNode("div")
	root.AddChild(div)
	div.AddChild(markup.NewTreeNode("p"))
	div.AddChild(markup.NewTreeNode("span"))

	report := Compare(input, root)

	assert.False(t, report.Matches)
	assert.Equal(t, 2, report.RefTagCount)
	assert.Equal(t, 3, report.OurTagCount)
	assert.Equal(t, "Structural discrepancy detected", report.Details)
}

func TestCompareIgnoresAttributesAndText(t *testing.T) {
	input := `<div id="a">text</div>`

	root := markup.NewTreeNode(markup.RootName)
	div := markup.NewTreeNode("div")
	div.TextContent = "completely different"
	root.AddChild(div)

	report := Compare(input, root)

	assert.True(t, report.Matches)
}

func TestCompareEmptyInput(t *testing.T) {
	report := Compare("", markup.Parse(""))

	assert.True(t, report.Matches)
	assert.Zero(t, report.RefTagCount)
	assert.Zero(t, report.OurTagCount)
}
