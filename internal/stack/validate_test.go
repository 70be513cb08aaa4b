package stack

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func codes(t *testing.T, yaml string) (errs, warns []string) {
	t.Helper()

	f, err := Parse([]byte(yaml))
	require.NoError(t, err)

	res := Validate(f)
	for _, d := range res.Errors {
		errs = append(errs, d.Code)
	}
	for _, d := range res.Warnings {
		warns = append(warns, d.Code)
	}

	return errs, warns
}

func TestValidate_ValidStack(t *testing.T) {
	errs, warns := codes(t, `
layers:
  - name: base
    type: xyz
    url: https://t/{z}/{x}/{y}.png
  - name: overlays
    type: group
    layers:
      - name: labels
        type: xyz
        url: https://l/{z}/{x}/{y}.png
`)

	assert.Empty(t, errs)
	assert.Empty(t, warns)
}

func TestValidate_MissingURL(t *testing.T) {
	errs, _ := codes(t, `
layers:
  - name: base
    type: xyz
`)

	assert.Equal(t, []string{"missing_url"}, errs)
}

func TestValidate_UnknownType(t *testing.T) {
	errs, _ := codes(t, `
layers:
  - name: base
    type: raster3d
`)

	assert.Equal(t, []string{"unknown_type"}, errs)
}

func TestValidate_BadExtent(t *testing.T) {
	errs, _ := codes(t, `
layers:
  - name: a
    type: xyz
    url: u
    extent: [0, 0, 1]
  - name: b
    type: xyz
    url: u
    extent: [2, 0, 1, 1]
`)

	assert.Equal(t, []string{"bad_extent", "bad_extent"}, errs)
}

func TestValidate_StyleRanges(t *testing.T) {
	errs, _ := codes(t, `
layers:
  - name: a
    type: xyz
    url: u
    opacity: 1.5
    contrast: -0.1
`)

	assert.ElementsMatch(t, []string{"opacity_out_of_range", "contrast_negative"}, errs)
}

func TestValidate_DuplicateNameWarns(t *testing.T) {
	errs, warns := codes(t, `
layers:
  - name: base
    type: xyz
    url: u
  - name: base
    type: xyz
    url: u
`)

	assert.Empty(t, errs)
	assert.Equal(t, []string{"duplicate_name"}, warns)
}

func TestValidate_EmptyGroupWarns(t *testing.T) {
	_, warns := codes(t, `
layers:
  - name: g
    type: group
`)

	assert.Equal(t, []string{"empty_group"}, warns)
}

func TestValidate_LeafWithChildren(t *testing.T) {
	errs, _ := codes(t, `
layers:
  - name: a
    type: xyz
    url: u
    layers:
      - name: b
        type: xyz
        url: u
`)

	assert.Equal(t, []string{"unexpected_children"}, errs)
}

func TestValidate_BadProjection(t *testing.T) {
	errs, _ := codes(t, `
projection: web-mercator
layers: []
`)

	assert.Equal(t, []string{"bad_projection"}, errs)
}

func TestValidate_Nil(t *testing.T) {
	res := Validate(nil)
	assert.True(t, res.HasErrors())
	assert.Error(t, res.Err())
}
