package geo

import (
	"github.com/golang/geo/s1"
	"github.com/golang/geo/s2"
)

// BoundingBox region extent in degrees, backed by an s2.Rect so containment
// queries handle the antimeridian correctly.
type BoundingBox struct {
	rect s2.Rect
}

func NewBoundingBox(minLat, minLon, maxLat, maxLon float64) BoundingBox {
	rect := s2.RectFromLatLng(s2.LatLngFromDegrees(minLat, minLon))
	rect = rect.AddPoint(s2.LatLngFromDegrees(maxLat, maxLon))
	return BoundingBox{rect: rect}
}

func (b BoundingBox) GetMinLat() float64 {
	return s1.Angle(b.rect.Lat.Lo).Degrees()
}

func (b BoundingBox) GetMinLon() float64 {
	return s1.Angle(b.rect.Lng.Lo).Degrees()
}

func (b BoundingBox) GetMaxLat() float64 {
	return s1.Angle(b.rect.Lat.Hi).Degrees()
}

func (b BoundingBox) GetMaxLon() float64 {
	return s1.Angle(b.rect.Lng.Hi).Degrees()
}

// Contains reports whether the point lies inside the box.
func (b BoundingBox) Contains(lat, lon float64) bool {
	return b.rect.ContainsLatLng(s2.LatLngFromDegrees(lat, lon))
}

// Extend grows the box to cover the point.
func (b BoundingBox) Extend(lat, lon float64) BoundingBox {
	return BoundingBox{rect: b.rect.AddPoint(s2.LatLngFromDegrees(lat, lon))}
}

func (b BoundingBox) Center() (float64, float64) {
	c := b.rect.Center()
	return c.Lat.Degrees(), c.Lng.Degrees()
}
