package geo

import (
	"github.com/twpayne/go-polyline"
)

// PolylineFromCoords google encoded polyline of the coordinate sequence.
func PolylineFromCoords(coords []Coordinate) string {
	flat := make([][]float64, 0, len(coords))
	for _, c := range coords {
		flat = append(flat, []float64{c.Lat, c.Lon})
	}
	return string(polyline.EncodeCoords(flat))
}

// CoordsFromPolyline decodes an encoded polyline back into coordinates.
func CoordsFromPolyline(encoded string) ([]Coordinate, error) {
	flat, _, err := polyline.DecodeCoords([]byte(encoded))
	if err != nil {
		return nil, err
	}
	coords := make([]Coordinate, 0, len(flat))
	for _, c := range flat {
		coords = append(coords, NewCoordinate(c[0], c[1]))
	}
	return coords, nil
}
