package markdown

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOutline(t *testing.T) {
	page := "# Stardust Crystal\n\n" +
		"Some **bold** lore.\n\n" +
		"## Implementation\n\n" +
		"#### 1. Create the prefab\n\n" +
		"```\nvar crystal = new Crystal();\n```\n\n" +
		"#### 2. Add a *collider*\n\n" +
		"    indented code is not fenced\n"

	out := Outline([]byte(page))

	require.Len(t, out.Headings, 4)
	assert.Equal(t, Heading{Level: 1, Text: "Stardust Crystal"}, out.Headings[0])
	assert.Equal(t, []string{"1. Create the prefab", "2. Add a collider"}, out.HeadingsAt(4))
	assert.Equal(t, 1, out.CodeBlocks)
}

func TestOutlineEmpty(t *testing.T) {
	out := Outline(nil)
	assert.Empty(t, out.Headings)
	assert.Zero(t, out.CodeBlocks)
}
