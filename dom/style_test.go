package dom

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStyle(t *testing.T) {
	tag := NewTag("p")
	decls, err := tag.Style()
	require.NoError(t, err)
	assert.Empty(t, decls)
	tag.SetAttr("style", "color: red; margin: 0 !important")
	decls, err = tag.Style()
	require.NoError(t, err)
	require.Len(t, decls, 2)
	assert.Equal(t, "color", decls[0].Property)
	assert.Equal(t, "red", decls[0].Value)
	assert.Equal(t, "margin", decls[1].Property)
	assert.True(t, decls[1].Important)
}

func TestStyleProperty(t *testing.T) {
	tag := NewTag("p")
	tag.SetAttr("style", "color: red !important; color: blue; width: 10px; width: 20px")
	color, ok := tag.StyleProperty("color")
	assert.True(t, ok)
	assert.Equal(t, "red", color)
	width, _ := tag.StyleProperty("width")
	assert.Equal(t, "20px", width)
	_, ok = tag.StyleProperty("height")
	assert.False(t, ok)
}

func TestStyleSheets(t *testing.T) {
	head := NewElement("head").
		AppendChild(NewElement("style").AppendChild(NewText("ul > li { color: red }"))).
		AppendChild(NewElement("style").AppendChild(NewText("p { margin: 0; }")))
	root := NewElement(RootName).AppendChild(head)
	sheets, err := StyleSheets(root)
	require.NoError(t, err)
	require.Len(t, sheets, 2)
	require.Len(t, sheets[0].Rules, 1)
	assert.Equal(t, []string{"ul > li"}, sheets[0].Rules[0].Selectors)
	assert.Equal(t, "color", sheets[0].Rules[0].Declarations[0].Property)
	assert.Equal(t, "margin", sheets[1].Rules[0].Declarations[0].Property)
	none, err := StyleSheets(NewElement("body"))
	assert.NoError(t, err)
	assert.Empty(t, none)
}
