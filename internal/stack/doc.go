// Package stack loads, validates, and builds layer stacks from YAML
// definitions. Stack files feed tests and the demo; nothing in the core
// depends on them.
//
// # Schema Overview
//
// A stack file has the following structure:
//
//	version: "1"
//	projection: EPSG:3857
//	layers:
//	  - name: base
//	    type: xyz
//	    url: https://tile.example.com/{z}/{x}/{y}.png
//	    opacity: 0.8
//	  - name: overlays
//	    type: group
//	    layers:
//	      - name: labels
//	        type: xyz
//	        url: https://labels.example.com/{z}/{x}/{y}.png
//	        extent: [-20, -20, 20, 20]
//
// Layer types: xyz (tile imagery), wmts, vector, group. Style
// attributes (opacity, visible, contrast, saturation, brightness, hue)
// are optional; omitted attributes stay undefined on the built layer.
// Extents are [minX, minY, maxX, maxY] in the stack's projection.
//
// Validation reports structured findings (see internal/diagnostic);
// Build refuses a stack with error findings but tolerates warnings.
// Note that a stack may validly declare layers the renderer cannot
// mirror (wmts, vector, foreign projections) — deciding that is the
// synchronizer's job, not the loader's.
package stack
