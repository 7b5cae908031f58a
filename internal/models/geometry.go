package models

import (
	"encoding/json"
	"fmt"
	"math"

	"github.com/twpayne/go-geom"
	"github.com/twpayne/go-geom/encoding/geojson"
)

// GeoJSONPolygon represents a GeoJSON Polygon for land parcel boundaries,
// WGS84 lon/lat coordinates.
type GeoJSONPolygon struct {
	Type        string        `json:"type"`
	Coordinates [][][]float64 `json:"coordinates"`
}

// Meters per degree at the equator (WGS84 approximation).
const (
	metersPerDegreeLat = 110574.0
	metersPerDegreeLon = 111320.0
)

// decode parses the GeoJSON into a go-geom polygon, validating shape on the way.
func (g *GeoJSONPolygon) decode() (*geom.Polygon, error) {
	if g == nil || g.Type == "" {
		return nil, fmt.Errorf("boundary is empty")
	}
	if g.Type != "Polygon" {
		return nil, fmt.Errorf("boundary type must be Polygon, got %q", g.Type)
	}

	raw, err := json.Marshal(g)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal boundary: %w", err)
	}

	var geometry geom.T
	if err := geojson.Unmarshal(raw, &geometry); err != nil {
		return nil, fmt.Errorf("failed to parse boundary GeoJSON: %w", err)
	}

	polygon, ok := geometry.(*geom.Polygon)
	if !ok {
		return nil, fmt.Errorf("geometry is not a Polygon")
	}

	if polygon.NumLinearRings() == 0 || polygon.LinearRing(0).NumCoords() < 4 {
		return nil, fmt.Errorf("boundary ring needs at least 4 coordinates")
	}

	return polygon, nil
}

// Validate checks that the boundary is a well-formed closed polygon.
func (g *GeoJSONPolygon) Validate() error {
	polygon, err := g.decode()
	if err != nil {
		return err
	}

	ring := polygon.LinearRing(0)
	first := ring.Coord(0)
	last := ring.Coord(ring.NumCoords() - 1)
	if first[0] != last[0] || first[1] != last[1] {
		return fmt.Errorf("boundary ring is not closed")
	}

	return nil
}

// AreaHectares computes the approximate parcel area from the boundary.
// Planar area in square degrees is scaled with a cosine-latitude correction,
// accurate enough at field-parcel scale.
func (g *GeoJSONPolygon) AreaHectares() (float64, error) {
	polygon, err := g.decode()
	if err != nil {
		return 0, err
	}

	bounds := polygon.Bounds()
	meanLat := (bounds.Min(1) + bounds.Max(1)) / 2

	areaDeg := math.Abs(polygon.Area())
	areaM2 := areaDeg * metersPerDegreeLat * metersPerDegreeLon * math.Cos(meanLat*math.Pi/180)

	return areaM2 / 10000, nil
}
