package globe

import (
	"testing"

	"github.com/paulmach/orb/maptile"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"globesync/geo"
)

func TestNewProvider_RejectsBadInput(t *testing.T) {
	_, err := NewProvider("", geo.WebMercator, 256)
	assert.Error(t, err)

	_, err = NewProvider("https://t/{z}/{x}/{y}.png", geo.NewProjection("EPSG:2154"), 256)
	assert.Error(t, err)
}

func TestProvider_TileURL(t *testing.T) {
	p, err := NewProvider("https://tile.example.com/{z}/{x}/{y}.png", geo.WebMercator, 256)
	require.NoError(t, err)

	url := p.TileURL(maptile.New(3, 5, 4))
	assert.Equal(t, "https://tile.example.com/4/3/5.png", url)
}

func TestProvider_TilingSchemeFollowsProjection(t *testing.T) {
	mercator, err := NewProvider("u/{z}/{x}/{y}", geo.WebMercator, 0)
	require.NoError(t, err)
	assert.Equal(t, SchemeWebMercator, mercator.TilingScheme())
	assert.Equal(t, 256, mercator.TileSize())

	geographic, err := NewProvider("u/{z}/{x}/{y}", geo.WGS84, 512)
	require.NoError(t, err)
	assert.Equal(t, SchemeGeographic, geographic.TilingScheme())
	assert.Equal(t, 512, geographic.TileSize())
}
