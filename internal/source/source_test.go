package source

import (
	"fmt"
	"testing"

	"github.com/greenmaru/spot-catalog-etl/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// validCenter projects to roughly (37.55, 127.11), well inside bounds.
var validCenter = Center{X: 210000, Y: 550000}

func TestMajorParkNormalizer(t *testing.T) {
	n := NewProvincialParks()

	t.Run("name falls back through name_kr, name, type", func(t *testing.T) {
		cands, drops := n.Normalize([]Feature{
			{ID: "p1", NameKr: "수리산도립공원", Name: "Surisan", AreaSqkm: 6.8, Center: validCenter},
			{ID: "p2", Name: "Yeonginsan", Center: validCenter},
			{ID: "p3", Center: validCenter},
		})
		require.Len(t, cands, 3)
		assert.Zero(t, drops.Total())
		assert.Equal(t, "수리산도립공원", cands[0].Name)
		assert.Equal(t, "Yeonginsan", cands[1].Name)
		assert.Equal(t, "도립공원", cands[2].Name)
	})

	t.Run("area converts from square kilometers", func(t *testing.T) {
		cands, _ := n.Normalize([]Feature{{ID: "p1", AreaSqkm: 6.8, Center: validCenter}})
		require.Len(t, cands, 1)
		assert.InDelta(t, 6800000.0, cands[0].AreaSqm, 0.1)
	})

	t.Run("always priority", func(t *testing.T) {
		cands, _ := n.Normalize([]Feature{{ID: "p1", Center: validCenter}})
		require.Len(t, cands, 1)
		assert.True(t, cands[0].Priority)
	})

	t.Run("missing centroid drops the record", func(t *testing.T) {
		cands, drops := n.Normalize([]Feature{{ID: "p1"}, {ID: "p2", Center: validCenter}})
		assert.Len(t, cands, 1)
		assert.Equal(t, 1, drops.Location)
	})
}

func TestMunicipalParkNormalizer(t *testing.T) {
	n := NewMunicipalParks(10000, 100000)

	t.Run("filters by type and area", func(t *testing.T) {
		cands, drops := n.Normalize([]Feature{
			{ID: "p1", Name: "어린이공원", AreaSqm: 50000, District: "수원시", Center: validCenter},
			{ID: "p2", Name: "근린공원", AreaSqm: 500, District: "수원시", Center: validCenter},
			{ID: "p3", Name: "근린공원", AreaSqm: 50000, District: "수원시", Center: validCenter},
		})
		assert.Len(t, cands, 1)
		assert.Equal(t, 1, drops.Type)
		assert.Equal(t, 1, drops.Area)
	})

	t.Run("synthesizes numbered names largest first", func(t *testing.T) {
		cands, _ := n.Normalize([]Feature{
			{ID: "p1", Name: "근린공원", AreaSqm: 20000, District: "수원시", Center: validCenter},
			{ID: "p2", Name: "근린공원", AreaSqm: 80000, District: "수원시", Center: validCenter},
			{ID: "p3", Name: "체육공원", AreaSqm: 30000, District: "수원시", Center: validCenter},
		})
		require.Len(t, cands, 3)
		assert.Equal(t, "수원시 근린공원 1", cands[0].Name)
		assert.Equal(t, "p2", cands[0].SourceID) // larger park numbered first
		assert.Equal(t, "수원시 근린공원 2", cands[1].Name)
		assert.Equal(t, "수원시 체육공원", cands[2].Name) // singleton gets no number
	})

	t.Run("priority at the large-park threshold", func(t *testing.T) {
		cands, _ := n.Normalize([]Feature{
			{ID: "p1", Name: "근린공원", AreaSqm: 100000, District: "수원시", Center: validCenter},
			{ID: "p2", Name: "체육공원", AreaSqm: 99999, District: "수원시", Center: validCenter},
		})
		require.Len(t, cands, 2)
		assert.True(t, cands[0].Priority)
		assert.False(t, cands[1].Priority)
	})
}

func TestRiverNormalizer(t *testing.T) {
	n := NewRivers()

	t.Run("names follow raw feature order", func(t *testing.T) {
		cands, drops := n.Normalize([]Feature{
			{ID: "r0", Center: validCenter},
			{ID: "r1"}, // invalid centroid, dropped
			{ID: "r2", Center: validCenter},
		})
		require.Len(t, cands, 2)
		assert.Equal(t, 1, drops.Location)
		assert.Equal(t, "한강", cands[0].Name)
		// index 1 (임진강) belongs to the dropped feature and is skipped
		assert.Equal(t, "북한강", cands[1].Name)
	})

	t.Run("overflow names are numbered", func(t *testing.T) {
		features := make([]Feature, 22)
		for i := range features {
			features[i] = Feature{ID: fmt.Sprintf("r%d", i), Center: validCenter}
		}
		cands, _ := n.Normalize(features)
		require.Len(t, cands, 22)
		assert.Equal(t, "하천 21", cands[20].Name)
		assert.Equal(t, "하천 22", cands[21].Name)
	})

	t.Run("rivers are priority water sources", func(t *testing.T) {
		cands, _ := n.Normalize([]Feature{{ID: "r0", Center: validCenter}})
		require.Len(t, cands, 1)
		assert.True(t, cands[0].Priority)
		assert.Equal(t, domain.SourceNationalRiver, cands[0].Source)
	})
}

func TestWetlandNormalizer(t *testing.T) {
	n := NewWetlands(1000, 200)

	t.Run("name falls back through classification fields", func(t *testing.T) {
		cands, _ := n.Normalize([]Feature{
			{ID: "w1", TypeSmall: "버드나무 우점 습지", AreaSqm: 5000, Center: validCenter},
			{ID: "w2", TypeMedium: "하천형 습지", AreaSqm: 5000, Center: validCenter},
			{ID: "w3", AreaSqm: 5000, Center: validCenter},
		})
		require.Len(t, cands, 3)
		assert.Equal(t, "버드나무 우점 습지", cands[0].Name)
		assert.Equal(t, "하천형 습지", cands[1].Name)
		assert.Equal(t, "습지", cands[2].Name)
	})

	t.Run("small wetlands are area-dropped", func(t *testing.T) {
		cands, drops := n.Normalize([]Feature{
			{ID: "w1", AreaSqm: 999, Center: validCenter},
			{ID: "w2", AreaSqm: 1000, Center: validCenter},
		})
		assert.Len(t, cands, 1)
		assert.Equal(t, 1, drops.Area)
	})

	t.Run("output is capped", func(t *testing.T) {
		small := NewWetlands(0, 2)
		features := make([]Feature, 5)
		for i := range features {
			features[i] = Feature{ID: fmt.Sprintf("w%d", i), AreaSqm: 5000, Center: validCenter}
		}
		cands, _ := small.Normalize(features)
		assert.Len(t, cands, 2)
	})
}

func TestFacilityNormalizer(t *testing.T) {
	n := NewFacilities()

	tests := []struct {
		name         string
		remark       string
		expectedType string
	}{
		{"sports code", "지정: UQV700", "체육시설"},
		{"culture code", "UQV210", "문화시설"},
		{"public code", "UQV800", "공공시설"},
		{"unknown code", "UQX999", "문화체육시설"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cands, _ := n.Normalize([]Feature{{ID: "f1", Remark: tt.remark, Center: validCenter}})
			require.Len(t, cands, 1)
			assert.Equal(t, tt.expectedType, cands[0].RawType)
			// no alias: the facility type doubles as the name
			assert.Equal(t, tt.expectedType, cands[0].Name)
		})
	}

	t.Run("alias becomes the name", func(t *testing.T) {
		cands, _ := n.Normalize([]Feature{{ID: "f1", Alias: "수원실내체육관", Remark: "UQV7", Center: validCenter}})
		require.Len(t, cands, 1)
		assert.Equal(t, "수원실내체육관", cands[0].Name)
	})
}

func TestEcoGrade1Normalizer(t *testing.T) {
	n := NewEcoGrade1(500, 100)

	features := make([]Feature, 150)
	for i := range features {
		features[i] = Feature{ID: fmt.Sprintf("e%d", i), Center: validCenter}
	}

	cands, _ := n.Normalize(features)
	assert.Len(t, cands, 100)
	assert.Equal(t, "생태자연도 1등급 구역 1", cands[0].Name)
	assert.Equal(t, domain.SourceEcoGrade1, cands[0].Source)
}

func TestGreenAreaNormalizer(t *testing.T) {
	n := NewGreenAreas(200)

	cands, _ := n.Normalize([]Feature{
		{ID: "g1", Remark: "UQA42", Center: validCenter},
		{ID: "g2", Remark: "UQA41", Alias: "서호천변녹지", Center: validCenter},
		{ID: "g3", Center: validCenter},
	})
	require.Len(t, cands, 3)
	assert.Equal(t, "완충녹지", cands[0].RawType)
	assert.Equal(t, "완충녹지 1", cands[0].Name)
	assert.Equal(t, "서호천변녹지", cands[1].Name)
	assert.Equal(t, "녹지 3", cands[2].Name)
}

func TestNormalizeFamous(t *testing.T) {
	cands, drops := NormalizeFamous([]FamousEntry{
		{Name: "두물머리", Lat: 37.5316, Lng: 127.3094, District: "남양주시", Type: "자연명소", Desc: "북한강과 남한강이 만나는 곳"},
		{Name: "제주올레", Lat: 33.4, Lng: 126.5, District: "제주시", Type: "자연명소"},
	})

	require.Len(t, cands, 1)
	assert.Equal(t, 1, drops.Location)

	c := cands[0]
	assert.Equal(t, "famous_두물머리", c.SourceID)
	assert.True(t, c.Priority)
	assert.True(t, c.Famous)
	assert.Equal(t, "북한강과 남한강이 만나는 곳", c.Description)
}

func TestNormalizeTour(t *testing.T) {
	cands, drops := NormalizeTour([]TourSpot{
		{ID: "t1", Name: "수원화성", Type: "관광지", Location: domain.Geo{Lat: 37.28, Lng: 127.01}, Thumbnail: "http://img/1.jpg", Address: "수원시 장안구"},
		{ID: "t2", Name: "맛집", Type: "음식점", Location: domain.Geo{Lat: 37.28, Lng: 127.01}},
		{ID: "t3", Name: "리조트", Type: "레포츠", Location: domain.Geo{Lat: 0, Lng: 0}},
	})

	require.Len(t, cands, 1)
	assert.Equal(t, 1, drops.Type)
	assert.Equal(t, 1, drops.Location)
	assert.Equal(t, "http://img/1.jpg", cands[0].Thumbnail)
	assert.Equal(t, domain.SourceTourAPI, cands[0].Source)
}

func TestDetectDistrict(t *testing.T) {
	t.Run("nearest city center wins", func(t *testing.T) {
		assert.Equal(t, "수원시", DetectDistrict(domain.Geo{Lat: 37.26, Lng: 127.03}))
		assert.Equal(t, "가평군", DetectDistrict(domain.Geo{Lat: 37.83, Lng: 127.51}))
	})

	t.Run("invalid location yields empty", func(t *testing.T) {
		assert.Empty(t, DetectDistrict(domain.Geo{}))
	})
}
