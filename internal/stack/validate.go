package stack

import (
	"fmt"
	"strings"

	"globesync/internal/diagnostic"
	"globesync/utils"
)

// Validate checks a parsed stack definition. It reports structure
// problems only; whether a layer can be mirrored onto the renderer is
// the synchronizer's decision.
func Validate(f *File) *diagnostic.Diagnostics {
	res := &diagnostic.Diagnostics{}
	if f == nil {
		res.AddError("stack_is_nil", "stack file is nil", "")
		return res
	}

	if !validProjectionCode(f.Projection) {
		res.AddError("bad_projection", fmt.Sprintf("projection %q is not an EPSG code", f.Projection), "")
	}

	seen := map[string]struct{}{}
	validateLayers(res, f.Layers, seen)

	return res
}

func validateLayers(res *diagnostic.Diagnostics, defs []LayerDef, seen map[string]struct{}) {
	for i := range defs {
		d := &defs[i]

		if d.Name == "" {
			res.AddError("missing_name", "layer needs a name", "")
		} else if _, ok := seen[d.Name]; ok {
			res.AddWarning("duplicate_name", "layer name appears more than once", d.Name)
		} else {
			seen[d.Name] = struct{}{}
		}

		if !KnownType(d.Type) {
			res.AddError("unknown_type", fmt.Sprintf("unknown layer type %q", d.Type), d.Name)
			continue
		}

		validateLeafFields(res, d)
		validateStyle(res, d)
		validateExtent(res, d)

		if d.Type == TypeGroup {
			if len(d.Layers) == 0 {
				res.AddWarning("empty_group", "group has no children", d.Name)
			}

			validateLayers(res, d.Layers, seen)
		} else if len(d.Layers) > 0 {
			res.AddError("unexpected_children", fmt.Sprintf("%s layer cannot nest layers", d.Type), d.Name)
		}
	}
}

func validateLeafFields(res *diagnostic.Diagnostics, d *LayerDef) {
	switch d.Type {
	case TypeXYZ:
		if d.URL == "" {
			res.AddError("missing_url", "xyz layer needs a url template", d.Name)
		}

		if d.Projection != "" && !validProjectionCode(d.Projection) {
			res.AddError("bad_projection", fmt.Sprintf("projection %q is not an EPSG code", d.Projection), d.Name)
		}
	case TypeWMTS:
		if d.URL == "" {
			res.AddError("missing_url", "wmts layer needs an endpoint url", d.Name)
		}
	}
}

func validateStyle(res *diagnostic.Diagnostics, d *LayerDef) {
	if d.Opacity != nil && !utils.IsInRange(0, *d.Opacity, 1) {
		res.AddError("opacity_out_of_range", fmt.Sprintf("opacity %v is outside [0, 1]", *d.Opacity), d.Name)
	}

	for _, attr := range []struct {
		name  string
		value *float64
	}{
		{"contrast", d.Contrast},
		{"saturation", d.Saturation},
	} {
		if attr.value != nil && *attr.value < 0 {
			res.AddError(attr.name+"_negative", fmt.Sprintf("%s %v is negative", attr.name, *attr.value), d.Name)
		}
	}
}

func validateExtent(res *diagnostic.Diagnostics, d *LayerDef) {
	if len(d.Extent) == 0 {
		return
	}

	if len(d.Extent) != 4 {
		res.AddError("bad_extent", fmt.Sprintf("extent needs 4 values, got %d", len(d.Extent)), d.Name)
		return
	}

	if d.Extent[0] > d.Extent[2] || d.Extent[1] > d.Extent[3] {
		res.AddError("bad_extent", "extent min exceeds max", d.Name)
	}
}

func validProjectionCode(code string) bool {
	return strings.HasPrefix(code, "EPSG:") && len(code) > len("EPSG:")
}
