package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"globesync/carto"
	"globesync/geo"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		m.sync.Close()
		return m, tea.Quit

	case "?":
		m.helpVisible = !m.helpVisible

	case "j", "down":
		if m.cursor < len(m.rows())-1 {
			m.cursor++
		}

	case "k", "up":
		if m.cursor > 0 {
			m.cursor--
		}

	case " ", "space":
		m.toggleVisible()

	case "+", "=":
		m.nudgeOpacity(0.1)

	case "-":
		m.nudgeOpacity(-0.1)

	case "b":
		m.nudgeBrightness(0.05)

	case "B":
		m.nudgeBrightness(-0.05)

	case "e":
		m.nudgeExtent()

	case "a":
		m.added++
		name := fmt.Sprintf("added-%d", m.added)
		m.source.Append(carto.NewTileLayer(name,
			carto.NewXYZSource(fmt.Sprintf("https://%s.example.com/{z}/{x}/{y}.png", name))))
		m.status = "appended " + name

	case "d":
		m.removeSelected()

	case "r":
		layers := m.source.Layers()
		for i, j := 0, len(layers)-1; i < j; i, j = i+1, j-1 {
			layers[i], layers[j] = layers[j], layers[i]
		}
		m.source.Reset(layers)
		m.status = "reversed layer order"
	}

	return m, nil
}

func (m *Model) toggleVisible() {
	r, ok := m.selected()
	if !ok {
		return
	}

	tile, ok := r.layer.(*carto.TileLayer)
	if !ok {
		m.status = "groups have no own visibility here"
		return
	}

	visible, defined := tile.Visible()
	if !defined {
		visible = true
	}

	tile.SetVisible(!visible)
	m.status = fmt.Sprintf("%s visible=%v", tile.Name(), !visible)
}

func (m *Model) nudgeOpacity(delta float64) {
	r, ok := m.selected()
	if !ok {
		return
	}

	tile, ok := r.layer.(*carto.TileLayer)
	if !ok {
		m.status = "select a tile layer to edit opacity"
		return
	}

	opacity, defined := tile.Opacity()
	if !defined {
		opacity = 1
	}

	opacity += delta
	if opacity < 0 {
		opacity = 0
	}
	if opacity > 1 {
		opacity = 1
	}

	tile.SetOpacity(opacity)
	m.status = fmt.Sprintf("%s opacity=%.1f", tile.Name(), opacity)
}

func (m *Model) nudgeBrightness(delta float64) {
	r, ok := m.selected()
	if !ok {
		return
	}

	tile, ok := r.layer.(*carto.TileLayer)
	if !ok {
		m.status = "select a tile layer to edit brightness"
		return
	}

	brightness, _ := tile.Brightness()
	brightness += delta
	tile.SetBrightness(brightness)
	m.status = fmt.Sprintf("%s brightness=%.2f", tile.Name(), brightness)
}

// nudgeExtent grows the selected layer's extent (or seeds one), which
// forces the synchronizer to recreate the imagery layer.
func (m *Model) nudgeExtent() {
	r, ok := m.selected()
	if !ok {
		return
	}

	tile, ok := r.layer.(*carto.TileLayer)
	if !ok {
		m.status = "select a tile layer to edit extent"
		return
	}

	extent, defined := tile.Extent()
	if !defined {
		extent = geo.NewExtent(-1000000, -1000000, 1000000, 1000000, m.view.Projection())
	} else {
		extent.Bound.Min[0] -= 100000
		extent.Bound.Min[1] -= 100000
		extent.Bound.Max[0] += 100000
		extent.Bound.Max[1] += 100000
	}

	tile.SetExtent(extent)
	m.status = fmt.Sprintf("%s extent grown (imagery recreated)", tile.Name())
}

func (m *Model) removeSelected() {
	r, ok := m.selected()
	if !ok {
		return
	}

	if r.depth > 0 {
		m.status = "only top-level layers can be removed"
		return
	}

	removed := m.source.RemoveAt(r.topIndex)
	if m.cursor >= len(m.rows()) && m.cursor > 0 {
		m.cursor = len(m.rows()) - 1
	}

	m.status = "removed " + removed.Name()
}
