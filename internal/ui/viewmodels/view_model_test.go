package viewmodels

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"scrollpage/internal/domain"
	"scrollpage/internal/ui/input"
	"scrollpage/internal/ui/viewport"
)

func numbered(n int) *domain.Content {
	lines := make([]string, n)
	for i := range lines {
		lines[i] = fmt.Sprintf("line %d", i)
	}
	return domain.NewContent(lines)
}

func newVM(n int) *ViewModel {
	return NewViewModel(numbered(n), "", "", input.DefaultKeyBindings())
}

func TestScrollerFrameAtTop(t *testing.T) {
	vm := newVM(100)
	f := vm.ScrollerFrame(viewport.Compute(21, 1, 0, 100))

	require.Len(t, f.Lines, 20)
	assert.Equal(t, "line 0", f.Lines[0].Text)
	assert.Equal(t, LineContent, f.Lines[0].Kind)
	assert.Equal(t, DefaultMarker, f.Lines[19].Text)
	assert.Equal(t, LineMarker, f.Lines[19].Kind)
	assert.Equal(t, -1, f.Lines[19].Index)
}

func TestScrollerFrameInMiddleHasBothMarkers(t *testing.T) {
	vm := newVM(100)
	f := vm.ScrollerFrame(viewport.Compute(21, 1, 40, 100))

	assert.Equal(t, LineMarker, f.Lines[0].Kind)
	assert.Equal(t, "line 41", f.Lines[1].Text)
	assert.Equal(t, 41, f.Lines[1].Index)
	assert.Equal(t, LineMarker, f.Lines[19].Kind)
}

func TestScrollerFrameAtBottom(t *testing.T) {
	vm := newVM(100)
	f := vm.ScrollerFrame(viewport.Compute(21, 1, 80, 100))

	assert.Equal(t, LineMarker, f.Lines[0].Kind)
	assert.Equal(t, "line 99", f.Lines[19].Text)
}

func TestScrollerFrameShortContentHasNoMarkers(t *testing.T) {
	vm := newVM(5)
	f := vm.ScrollerFrame(viewport.Compute(21, 1, 0, 5))

	require.Len(t, f.Lines, 5)
	for i, l := range f.Lines {
		assert.Equal(t, LineContent, l.Kind)
		assert.Equal(t, fmt.Sprintf("line %d", i), l.Text)
	}
	for _, k := range f.Legend[:3] {
		for _, key := range k.Keys {
			assert.False(t, key.Enabled, key.Label)
		}
	}
}

func TestScrollerFrameKeepsSingleVisibleLine(t *testing.T) {
	vm := newVM(10)
	// One-row terminal with one reserved row still shows one line
	f := vm.ScrollerFrame(viewport.Compute(1, 1, 4, 10))

	require.Len(t, f.Lines, 1)
	assert.Equal(t, "line 4", f.Lines[0].Text)
	assert.Equal(t, LineContent, f.Lines[0].Kind)
}

func TestScrollbarCells(t *testing.T) {
	g := viewport.Compute(21, 1, 0, 100)
	cells := ScrollbarCells(g)
	require.Len(t, cells, 20)

	filled := 0
	for _, c := range cells {
		if c {
			filled++
		}
	}
	size, _ := viewport.Scrollbar(0, 20, 100)
	assert.Equal(t, size, filled)
	assert.True(t, cells[0], "thumb starts at the top")

	bottom := ScrollbarCells(viewport.Compute(21, 1, 80, 100))
	assert.True(t, bottom[19], "thumb ends at the bottom")
}

func TestLegendHighlighting(t *testing.T) {
	vm := newVM(100)

	top := vm.ScrollerFrame(viewport.Compute(21, 1, 0, 100)).Legend
	assert.Equal(t, "↑/↓: Scroll | PgUp/PgDn: Scroll Page | Home/End: Top/Bottom | Q/Esc: Quit", top.Plain())
	for _, g := range top[:3] {
		assert.False(t, g.Keys[0].Enabled, "%s disabled at top", g.Keys[0].Label)
		assert.True(t, g.Keys[1].Enabled, "%s enabled at top", g.Keys[1].Label)
	}

	bottom := vm.ScrollerFrame(viewport.Compute(21, 1, 80, 100)).Legend
	for _, g := range bottom[:3] {
		assert.True(t, g.Keys[0].Enabled)
		assert.False(t, g.Keys[1].Enabled)
	}
	for _, k := range bottom[3].Keys {
		assert.True(t, k.Enabled, "quit is always available")
	}
}

func TestPagerPage(t *testing.T) {
	vm := newVM(100)

	first := vm.PagerPage(0, 22)
	require.Len(t, first.Lines, 22)
	assert.Equal(t, "line 0", first.Lines[0].Text)
	assert.Equal(t, 22, first.Percent)
	assert.Equal(t, "More... [22%]", first.Prompt)
	assert.False(t, first.Exhausted)

	step := vm.PagerPage(22, 23)
	assert.Equal(t, []string{"line 22"}, step.Texts())
	assert.Equal(t, 22, step.Lines[0].Index)

	last := vm.PagerPage(90, 130)
	assert.Len(t, last.Lines, 10)
	assert.True(t, last.Exhausted)
	assert.Empty(t, last.Prompt)
	assert.Equal(t, 100, last.Percent)
	assert.Nil(t, last.Scrollbar)
	assert.Nil(t, last.Legend)
}

func TestPagerPageCustomPrompt(t *testing.T) {
	vm := NewViewModel(numbered(3), "~~", "--More--", input.DefaultKeyBindings())
	assert.Equal(t, "--More-- [33%]", vm.PagerPage(0, 1).Prompt)
}
