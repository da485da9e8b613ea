package source

import "github.com/greenmaru/spot-catalog-etl/internal/domain"

type cityCenter struct {
	name string
	lat  float64
	lng  float64
}

// Gyeonggi city/county administrative centers, used to backfill the district
// of candidates whose source carries none. Nearest-center assignment in
// degree space is crude but the centers are far enough apart for it.
var gyeonggiCities = []cityCenter{
	{"수원시", 37.2636, 127.0286},
	{"성남시", 37.4200, 127.1267},
	{"용인시", 37.2411, 127.1776},
	{"화성시", 37.1995, 126.8313},
	{"고양시", 37.6584, 126.8320},
	{"안산시", 37.3219, 126.8309},
	{"남양주시", 37.6360, 127.2165},
	{"안양시", 37.3943, 126.9568},
	{"평택시", 36.9921, 127.1129},
	{"시흥시", 37.3800, 126.8030},
	{"파주시", 37.7126, 126.7618},
	{"김포시", 37.6153, 126.7156},
	{"광주시", 37.4294, 127.2551},
	{"광명시", 37.4786, 126.8646},
	{"군포시", 37.3614, 126.9352},
	{"하남시", 37.5393, 127.2148},
	{"오산시", 37.1499, 127.0773},
	{"이천시", 37.2723, 127.4348},
	{"안성시", 37.0080, 127.2798},
	{"의왕시", 37.3449, 126.9683},
	{"양평군", 37.4917, 127.4873},
	{"여주시", 37.2984, 127.6373},
	{"과천시", 37.4292, 126.9876},
	{"포천시", 37.8949, 127.2003},
	{"의정부시", 37.7381, 127.0337},
	{"양주시", 37.7853, 127.0458},
	{"구리시", 37.5944, 127.1295},
	{"가평군", 37.8315, 127.5095},
	{"연천군", 38.0966, 127.0750},
	{"동두천시", 37.9035, 127.0605},
}

// DetectDistrict returns the administrative name of the nearest city center,
// or "" for an invalid location.
func DetectDistrict(g domain.Geo) string {
	if !g.Valid() {
		return ""
	}

	best := ""
	bestD := -1.0
	for _, c := range gyeonggiCities {
		dLat := g.Lat - c.lat
		dLng := g.Lng - c.lng
		d := dLat*dLat + dLng*dLng
		if bestD < 0 || d < bestD {
			bestD = d
			best = c.name
		}
	}
	return best
}
