package domain

import "math"

// EPSG:5186 false origin and per-degree scale for the linear approximation.
const (
	tmFalseEasting  = 200000.0
	tmFalseNorthing = 600000.0
	tmOriginLng     = 127.0
	tmOriginLat     = 38.0
	metersPerDegLng = 89000.0
	metersPerDegLat = 111000.0
)

// ProjectTM converts an EPSG:5186 planar centroid to WGS-84 degrees using a
// fixed-origin linear approximation (see the package doc for the formula and
// its error bounds). A (0, 0) centroid is the upstream placeholder for
// "no geometry" and is rejected, as is any point projecting outside the
// service bounds. Both coordinates are rounded to six decimal places for
// deterministic output.
func ProjectTM(x, y float64) (Geo, bool) {
	if x == 0 && y == 0 {
		return Geo{}, false
	}

	lng := tmOriginLng + (x-tmFalseEasting)/metersPerDegLng
	lat := tmOriginLat + (y-tmFalseNorthing)/metersPerDegLat

	g := Geo{Lat: lat, Lng: lng}
	if !g.Valid() {
		return Geo{}, false
	}

	g.Lat = round6(g.Lat)
	g.Lng = round6(g.Lng)
	return g, true
}

func round6(v float64) float64 {
	return math.Round(v*1e6) / 1e6
}
