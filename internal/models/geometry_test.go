package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// squareBoundary builds a closed square of the given edge length in degrees,
// anchored at the equator where the lon/lat scale factors are exact.
func squareBoundary(edgeDegrees float64) *GeoJSONPolygon {
	return &GeoJSONPolygon{
		Type: "Polygon",
		Coordinates: [][][]float64{{
			{0, 0},
			{edgeDegrees, 0},
			{edgeDegrees, edgeDegrees},
			{0, edgeDegrees},
			{0, 0},
		}},
	}
}

func TestGeoJSONPolygon_ValidSquare(t *testing.T) {
	assert.NoError(t, squareBoundary(0.001).Validate())
}

func TestGeoJSONPolygon_RejectsNonPolygonType(t *testing.T) {
	boundary := squareBoundary(0.001)
	boundary.Type = "Point"
	assert.Error(t, boundary.Validate())
}

func TestGeoJSONPolygon_RejectsEmpty(t *testing.T) {
	var boundary *GeoJSONPolygon
	assert.Error(t, boundary.Validate())
	assert.Error(t, (&GeoJSONPolygon{}).Validate())
}

func TestGeoJSONPolygon_RejectsUnclosedRing(t *testing.T) {
	boundary := &GeoJSONPolygon{
		Type: "Polygon",
		Coordinates: [][][]float64{{
			{0, 0},
			{0.001, 0},
			{0.001, 0.001},
			{0, 0.002},
		}},
	}
	assert.Error(t, boundary.Validate())
}

func TestGeoJSONPolygon_RejectsTooFewCoordinates(t *testing.T) {
	boundary := &GeoJSONPolygon{
		Type: "Polygon",
		Coordinates: [][][]float64{{
			{0, 0},
			{0.001, 0},
			{0, 0},
		}},
	}
	assert.Error(t, boundary.Validate())
}

func TestGeoJSONPolygon_AreaHectares(t *testing.T) {
	// 0.001 degrees at the equator is roughly 110.6m x 111.3m, about 1.23 ha.
	area, err := squareBoundary(0.001).AreaHectares()
	require.NoError(t, err)

	expected := 0.001 * 0.001 * 110574.0 * 111320.0 / 10000
	assert.InDelta(t, expected, area, expected*0.01)
}

func TestGeoJSONPolygon_AreaScalesQuadratically(t *testing.T) {
	small, err := squareBoundary(0.001).AreaHectares()
	require.NoError(t, err)
	large, err := squareBoundary(0.002).AreaHectares()
	require.NoError(t, err)

	assert.InDelta(t, 4*small, large, small*0.05)
}
