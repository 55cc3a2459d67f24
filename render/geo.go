package render

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

// DefaultCenter is the map center used when there is nothing to frame
// (central Europe, lon 10 / lat 50).
var DefaultCenter = orb.Point{10, 50}

// Feature kinds written to the "kind" property of GeoJSON features.
const (
	KindEdge = "edge"
	KindCity = "city"
)

// Bounds returns the bounding box of the node positions. An empty payload
// yields the zero-area bound at DefaultCenter.
func (p Payload) Bounds() orb.Bound {
	if len(p.NodeLons) == 0 {
		return DefaultCenter.Bound()
	}
	mp := make(orb.MultiPoint, 0, len(p.NodeLons))
	for i := range p.NodeLons {
		mp = append(mp, orb.Point{p.NodeLons[i], p.NodeLats[i]})
	}

	return mp.Bound()
}

// Center returns the center of Bounds, or DefaultCenter for an empty payload.
func (p Payload) Center() orb.Point {
	if len(p.NodeLons) == 0 {
		return DefaultCenter
	}

	return p.Bounds().Center()
}

// GeoJSON converts the payload into a FeatureCollection: one LineString per
// edge segment followed by one Point per node with its label in "name".
func (p Payload) GeoJSON() *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()

	var seg orb.LineString
	for i := range p.EdgeLons {
		lon, okLon := p.EdgeLons[i].Float()
		lat, okLat := p.EdgeLats[i].Float()
		if !okLon || !okLat {
			if len(seg) >= 2 {
				f := geojson.NewFeature(seg)
				f.Properties["kind"] = KindEdge
				fc.Append(f)
			}
			seg = nil
			continue
		}
		seg = append(seg, orb.Point{lon, lat})
	}

	for i := range p.NodeLons {
		f := geojson.NewFeature(orb.Point{p.NodeLons[i], p.NodeLats[i]})
		f.Properties["kind"] = KindCity
		f.Properties["name"] = p.Labels[i]
		fc.Append(f)
	}

	return fc
}
