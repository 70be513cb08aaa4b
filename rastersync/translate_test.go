package rastersync

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"globesync/carto"
	"globesync/geo"
	"globesync/utils"
)

func TestCreateCorrespondingLayer_Policy(t *testing.T) {
	view := geo.NewView(geo.WebMercator)

	tests := []struct {
		name  string
		layer carto.Layer
		want  Outcome
	}{
		{
			name:  "xyz source without declared projection inherits the view",
			layer: carto.NewTileLayer("plain", carto.NewXYZSource("https://t/{z}/{x}/{y}.png")),
			want:  OutcomeResolved,
		},
		{
			name: "xyz source declaring the view projection",
			layer: carto.NewTileLayer("declared", &carto.XYZSource{
				URLTemplate: "https://t/{z}/{x}/{y}.png",
				TileSize:    256,
				Proj:        utils.Some(geo.WebMercator),
			}),
			want: OutcomeResolved,
		},
		{
			name: "xyz source declaring a different projection is not reprojected",
			layer: carto.NewTileLayer("mismatch", &carto.XYZSource{
				URLTemplate: "https://t/{z}/{x}/{y}.png",
				TileSize:    256,
				Proj:        utils.Some(geo.WGS84),
			}),
			want: OutcomeUnsupported,
		},
		{
			name:  "wmts addressing is not expressible",
			layer: carto.NewTileLayer("wmts", &carto.WMTSSource{Endpoint: "https://w", MatrixSet: "custom"}),
			want:  OutcomeUnsupported,
		},
		{
			name:  "vector source produces no imagery",
			layer: carto.NewTileLayer("vec", &carto.VectorSource{Name: "features"}),
			want:  OutcomeUnsupported,
		},
		{
			name:  "group layers are flattened by the walk, not translated",
			layer: carto.NewGroupLayer("group"),
			want:  OutcomeUnsupported,
		},
		{
			name:  "nil source",
			layer: carto.NewTileLayer("nil", nil),
			want:  OutcomeUnsupported,
		},
		{
			name:  "empty url template",
			layer: carto.NewTileLayer("empty", carto.NewXYZSource("")),
			want:  OutcomeUnsupported,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			imagery, outcome := createCorrespondingLayer(view, tt.layer)
			assert.Equal(t, tt.want, outcome)

			if tt.want == OutcomeResolved {
				assert.NotNil(t, imagery)
			} else {
				assert.Nil(t, imagery)
			}
		})
	}
}

func TestCreateCorrespondingLayer_UnsupportedViewProjection(t *testing.T) {
	view := geo.NewView(geo.NewProjection("EPSG:2154"))
	layer := carto.NewTileLayer("plain", carto.NewXYZSource("https://t/{z}/{x}/{y}.png"))

	_, outcome := createCorrespondingLayer(view, layer)
	assert.Equal(t, OutcomeUnsupported, outcome)
}

func TestCreateCorrespondingLayer_ExtentBecomesRectangle(t *testing.T) {
	view := geo.NewView(geo.WGS84)

	layer := carto.NewTileLayer("bounded", carto.NewXYZSource("https://t/{z}/{x}/{y}.png"))
	layer.SetExtent(geo.NewExtent(-20, -10, 20, 10, geo.WGS84))

	imagery, outcome := createCorrespondingLayer(view, layer)
	require.Equal(t, OutcomeResolved, outcome)

	rect, ok := imagery.Rectangle()
	require.True(t, ok)
	assert.Equal(t, -20.0, rect.Min[0])
	assert.Equal(t, -10.0, rect.Min[1])
	assert.Equal(t, 20.0, rect.Max[0])
	assert.Equal(t, 10.0, rect.Max[1])
}

func TestCreateCorrespondingLayer_BadExtentProjection(t *testing.T) {
	view := geo.NewView(geo.WebMercator)

	layer := carto.NewTileLayer("bounded", carto.NewXYZSource("https://t/{z}/{x}/{y}.png"))
	layer.SetExtent(geo.NewExtent(0, 0, 1, 1, geo.NewProjection("EPSG:2154")))

	_, outcome := createCorrespondingLayer(view, layer)
	assert.Equal(t, OutcomeUnsupported, outcome)
}

func TestOutcome_String(t *testing.T) {
	assert.Equal(t, "resolved", OutcomeResolved.String())
	assert.Equal(t, "unsupported", OutcomeUnsupported.String())
	assert.Equal(t, "unknown", outcomeUnknown.String())
}
