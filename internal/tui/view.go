package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/paulmach/orb/maptile"

	"globesync/carto"
)

func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	header := titleStyle.Render(" globesync ─ 2D map stack mirrored onto the globe ") +
		dimStyle.Render(" view "+m.view.Projection().Code())

	paneWidth := (m.width - 6) / 2
	if paneWidth < 24 {
		paneWidth = 24
	}

	left := boxStyle.Width(paneWidth).Render(m.sourcePane())
	right := boxStyle.Width(paneWidth).Render(m.targetPane())
	panes := lipgloss.JoinHorizontal(lipgloss.Top, left, right)

	footer := m.status
	if m.helpVisible {
		footer += "\n" + dimStyle.Render(
			"j/k move · space visible · +/- opacity · b/B brightness · e extent · a add · d remove · r reverse · ? help · q quit")
	}

	return appStyle.Render(header + "\n" + panes + "\n" + footer)
}

func (m Model) sourcePane() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("map layers") + "\n")

	rows := m.rows()
	if len(rows) == 0 {
		b.WriteString(dimStyle.Render("(empty)"))
		return b.String()
	}

	for i, r := range rows {
		marker := "  "
		if i == m.cursor {
			marker = cursorStyle.Render("> ")
		}

		indent := strings.Repeat("  ", r.depth)
		b.WriteString(marker + indent + describeSource(r.layer) + "\n")
	}

	return b.String()
}

func describeSource(l carto.Layer) string {
	if group, ok := l.(*carto.GroupLayer); ok {
		return fmt.Sprintf("%s/ (group, %d children)", group.Name(), len(group.Layers()))
	}

	tile := l.(*carto.TileLayer)
	kind := "?"
	if tile.Source() != nil {
		kind = tile.Source().Kind().String()
	}

	attrs := []string{kind}
	if v, ok := tile.Opacity(); ok {
		attrs = append(attrs, fmt.Sprintf("op %.1f", v))
	}
	if v, ok := tile.Visible(); ok {
		attrs = append(attrs, fmt.Sprintf("vis %v", v))
	}
	if v, ok := tile.Brightness(); ok {
		attrs = append(attrs, fmt.Sprintf("br %.2f", v))
	}
	if _, ok := tile.Extent(); ok {
		attrs = append(attrs, "extent")
	}

	return fmt.Sprintf("%s (%s)", tile.Name(), strings.Join(attrs, ", "))
}

func (m Model) targetPane() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("globe imagery") + "\n")

	if m.target.Len() == 0 {
		b.WriteString(dimStyle.Render("(nothing mirrored)"))
		return b.String()
	}

	root := maptile.New(0, 0, 0)
	for i := 0; i < m.target.Len(); i++ {
		imagery := m.target.Get(i)

		line := fmt.Sprintf("%d. %s alpha %.1f show %v br %.2f",
			i, imagery.Provider().TileURL(root), imagery.Alpha, imagery.Show, imagery.Brightness)
		if rect, ok := imagery.Rectangle(); ok {
			line += fmt.Sprintf(" rect [%.1f %.1f %.1f %.1f]",
				rect.Min[0], rect.Min[1], rect.Max[0], rect.Max[1])
		}

		b.WriteString(line + "\n")
	}

	return b.String()
}
