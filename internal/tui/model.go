package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"globesync/carto"
	"globesync/geo"
	"globesync/globe"
	"globesync/internal/stack"
	"globesync/rastersync"
)

// row is one display line of the source pane: a layer plus its
// traversal depth and the index of its top-level ancestor.
type row struct {
	layer    carto.Layer
	depth    int
	topIndex int
}

type Model struct {
	width  int
	height int

	view   *geo.View
	source *carto.Collection
	target *globe.LayerCollection
	sync   *rastersync.Synchronizer

	cursor      int
	added       int
	helpVisible bool
	status      string
}

// New builds the demo around a built-in stack.
func New() Model {
	f, _ := stack.Parse([]byte(defaultStack))
	return fromFile(f, "globesync demo ready")
}

// NewWithPath loads a stack file at launch.
func NewWithPath(path string) Model {
	f, err := stack.LoadFile(path)
	if err != nil {
		m := New()
		m.status = err.Error()
		return m
	}

	return fromFile(f, fmt.Sprintf("loaded %s", path))
}

func fromFile(f *stack.File, status string) Model {
	source, err := stack.Build(f)
	if err != nil {
		source = carto.NewCollection()
		status = err.Error()
	}

	view := geo.NewView(geo.NewProjection(f.Projection))
	target := globe.NewLayerCollection()
	sync := rastersync.New(view, source, target)
	sync.Synchronize()

	return Model{
		view:        view,
		source:      source,
		target:      target,
		sync:        sync,
		helpVisible: true,
		status:      status,
	}
}

const defaultStack = `
version: "1"
projection: EPSG:3857
layers:
  - name: base
    type: xyz
    url: https://tile.example.com/{z}/{x}/{y}.png
    opacity: 0.8
  - name: overlays
    type: group
    layers:
      - name: labels
        type: xyz
        url: https://labels.example.com/{z}/{x}/{y}.png
        extent: [-2000000, -2000000, 2000000, 2000000]
      - name: features
        type: vector
  - name: foreign
    type: wmts
    url: https://wmts.example.com/tiles
`

// rows flattens the source collection for display: groups appear as
// their own line followed by their children, matching the traversal
// order the synchronizer attaches in.
func (m Model) rows() []row {
	var out []row
	for i, l := range m.source.Layers() {
		out = appendRows(out, l, 0, i)
	}

	return out
}

func appendRows(out []row, l carto.Layer, depth, topIndex int) []row {
	out = append(out, row{layer: l, depth: depth, topIndex: topIndex})

	if group, ok := l.(*carto.GroupLayer); ok {
		for _, child := range group.Layers() {
			out = appendRows(out, child, depth+1, topIndex)
		}
	}

	return out
}

func (m Model) selected() (row, bool) {
	rows := m.rows()
	if m.cursor < 0 || m.cursor >= len(rows) {
		return row{}, false
	}

	return rows[m.cursor], true
}

func (m Model) Init() tea.Cmd { return nil }
