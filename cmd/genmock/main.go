// Command genmock generates synthetic source snapshots for local runs and
// demos. Centroids are drawn inside the planar bounds the projection maps
// into Gyeonggi, so every generated feature normalizes cleanly.
//
// Usage:
//
//	go run ./cmd/genmock -out data -seed 42
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/greenmaru/spot-catalog-etl/internal/source"
)

// Planar bounds that project inside the service area.
const (
	minX, maxX = 185000.0, 230000.0
	minY, maxY = 520000.0, 590000.0
)

var districts = []string{
	"수원시", "성남시", "용인시", "고양시", "남양주시",
	"안산시", "평택시", "파주시", "김포시", "가평군",
}

var parkTypes = []string{"근린공원", "체육공원", "수변공원", "역사공원", "문화공원"}

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	out := flag.String("out", "data", "output directory for generated snapshots")
	seed := flag.Int64("seed", 42, "random seed")
	parks := flag.Int("parks", 300, "municipal park feature count")
	flag.Parse()

	if err := os.MkdirAll(*out, 0o755); err != nil {
		return err
	}

	rng := rand.New(rand.NewSource(*seed))

	files := map[string]source.Snapshot{
		"park.json":                    municipalParks(rng, *parks),
		"provincial_park.json":         majorParks(rng, "provincial", 5),
		"county_park.json":             majorParks(rng, "county", 8),
		"national_park.json":           majorParks(rng, "national", 2),
		"ntn_rvr.json":                 rivers(rng, 20),
		"ricefld_wetln.json":           wetlands(rng, 60),
		"culture_sports_facility.json": facilities(rng, 40),
		"eco1_mgmt_area.json":          ecoAreas(rng, 30),
		"landscape.json":               reserves(rng, "landscape", 6),
		"forest_genetic_resource.json": reserves(rng, "forest", 10),
		"green_area.json":              greenAreas(rng, 50),
	}

	for name, snap := range files {
		if err := writeJSON(filepath.Join(*out, name), snap); err != nil {
			return fmt.Errorf("writing %s: %w", name, err)
		}
		log.Printf("%s: %d features", name, len(snap.Features))
	}

	if err := writeJSON(filepath.Join(*out, "ecosys_srvc_scr.json"), ecoScores(rng)); err != nil {
		return fmt.Errorf("writing eco scores: %w", err)
	}

	if err := writeFamous(filepath.Join(*out, "famous_spots.yaml")); err != nil {
		return fmt.Errorf("writing famous spots: %w", err)
	}

	log.Printf("snapshots written to %s", *out)
	return nil
}

func center(rng *rand.Rand) source.Center {
	return source.Center{
		X: minX + rng.Float64()*(maxX-minX),
		Y: minY + rng.Float64()*(maxY-minY),
	}
}

func municipalParks(rng *rand.Rand, n int) source.Snapshot {
	var snap source.Snapshot
	for i := 0; i < n; i++ {
		snap.Features = append(snap.Features, source.Feature{
			ID:       fmt.Sprintf("park_%d", i+1),
			Name:     parkTypes[rng.Intn(len(parkTypes))],
			AreaSqm:  float64(rng.Intn(200000)) + 500,
			District: districts[rng.Intn(len(districts))],
			Center:   center(rng),
		})
	}
	return snap
}

func majorParks(rng *rand.Rand, kind string, n int) source.Snapshot {
	var snap source.Snapshot
	for i := 0; i < n; i++ {
		snap.Features = append(snap.Features, source.Feature{
			ID:       fmt.Sprintf("%s_park_%d", kind, i+1),
			NameKr:   fmt.Sprintf("%s %s공원 %d", districts[rng.Intn(len(districts))], kind, i+1),
			AreaSqkm: rng.Float64()*20 + 1,
			Center:   center(rng),
		})
	}
	return snap
}

func rivers(rng *rand.Rand, n int) source.Snapshot {
	var snap source.Snapshot
	for i := 0; i < n; i++ {
		snap.Features = append(snap.Features, source.Feature{
			ID:     fmt.Sprintf("river_%d", i+1),
			Center: center(rng),
		})
	}
	return snap
}

func wetlands(rng *rand.Rand, n int) source.Snapshot {
	kinds := []string{"하천형 습지", "호수형 습지", "논 습지"}
	var snap source.Snapshot
	for i := 0; i < n; i++ {
		snap.Features = append(snap.Features, source.Feature{
			ID:        fmt.Sprintf("wetland_%d", i+1),
			TypeSmall: kinds[rng.Intn(len(kinds))],
			AreaSqm:   float64(rng.Intn(50000)) + 500,
			Center:    center(rng),
		})
	}
	return snap
}

func facilities(rng *rand.Rand, n int) source.Snapshot {
	codes := []string{"UQV7", "UQV2", "UQV8"}
	var snap source.Snapshot
	for i := 0; i < n; i++ {
		snap.Features = append(snap.Features, source.Feature{
			ID:       fmt.Sprintf("facility_%d", i+1),
			Alias:    fmt.Sprintf("시설 %d", i+1),
			Remark:   codes[rng.Intn(len(codes))],
			District: districts[rng.Intn(len(districts))],
			Center:   center(rng),
		})
	}
	return snap
}

func ecoAreas(rng *rand.Rand, n int) source.Snapshot {
	var snap source.Snapshot
	for i := 0; i < n; i++ {
		snap.Features = append(snap.Features, source.Feature{
			ID:      fmt.Sprintf("eco_%d", i+1),
			Grade:   "1",
			AreaSqm: float64(rng.Intn(100000)),
			Center:  center(rng),
		})
	}
	return snap
}

func reserves(rng *rand.Rand, kind string, n int) source.Snapshot {
	var snap source.Snapshot
	for i := 0; i < n; i++ {
		snap.Features = append(snap.Features, source.Feature{
			ID:       fmt.Sprintf("%s_%d", kind, i+1),
			NameKr:   fmt.Sprintf("%s 보호구역 %d", kind, i+1),
			AreaSqkm: rng.Float64() * 5,
			Center:   center(rng),
		})
	}
	return snap
}

func greenAreas(rng *rand.Rand, n int) source.Snapshot {
	codes := []string{"UQA41", "UQA42", "UQA43"}
	var snap source.Snapshot
	for i := 0; i < n; i++ {
		snap.Features = append(snap.Features, source.Feature{
			ID:      fmt.Sprintf("green_%d", i+1),
			Remark:  codes[rng.Intn(len(codes))],
			AreaSqm: float64(rng.Intn(20000)),
			Center:  center(rng),
		})
	}
	return snap
}

type ecoRecord struct {
	City     string             `json:"city"`
	District string             `json:"district"`
	Scores   map[string]float64 `json:"scores"`
}

func ecoScores(rng *rand.Rand) []ecoRecord {
	records := make([]ecoRecord, 0, len(districts))
	for _, d := range districts {
		records = append(records, ecoRecord{
			City: d,
			Scores: map[string]float64{
				"temp_reduction":  40 + rng.Float64()*50,
				"carbon_storage":  40 + rng.Float64()*50,
				"carbon_absorb":   40 + rng.Float64()*50,
				"air_quality":     40 + rng.Float64()*50,
				"water_quality":   rng.Float64() * 90,
				"biodiversity":    40 + rng.Float64()*50,
				"habitat_quality": 40 + rng.Float64()*50,
				"total_score":     40 + rng.Float64()*50,
			},
		})
	}
	return records
}

func writeFamous(path string) error {
	famous := struct {
		Spots []source.FamousEntry `yaml:"spots"`
	}{
		Spots: []source.FamousEntry{
			{Name: "두물머리", Lat: 37.5316, Lng: 127.3094, District: "남양주시", Type: "자연명소", Desc: "북한강과 남한강이 만나는 두 물줄기의 합수머리"},
			{Name: "수원화성", Lat: 37.2871, Lng: 127.0119, District: "수원시", Type: "문화유산", Desc: "조선 정조 시대의 성곽 도시"},
			{Name: "광릉수목원", Lat: 37.7525, Lng: 127.1610, District: "포천시", Type: "자연명소", Desc: "국립수목원과 광릉숲"},
		},
	}

	data, err := yaml.Marshal(famous)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o600)
}

func writeJSON(path string, v any) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	data = append(data, '\n')
	return os.WriteFile(path, data, 0o600)
}
