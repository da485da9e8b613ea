package domain

// Source tags a record's provenance. The tag is stable across runs and is
// what the uniqueness tiers and category source-rules key on.
type Source string

const (
	SourcePark           Source = "park"
	SourceProvincialPark Source = "provincial_park"
	SourceCountyPark     Source = "county_park"
	SourceNationalPark   Source = "national_park"
	SourceNationalRiver  Source = "national_river"
	SourceWetland        Source = "wetland"
	SourceEcoGrade1      Source = "eco1_mgmt_area"
	SourceLandscape      Source = "landscape"
	SourceForestReserve  Source = "forest_reserve"
	SourceGreenArea      Source = "green_area"
	SourceFacility       Source = "culture_sports_facility"
	SourceFamous         Source = "famous"
	SourceTourAPI        Source = "tour_api"
)

// Category is the semantic class shown on the map.
type Category string

const (
	CategoryNature  Category = "nature"
	CategoryWater   Category = "water"
	CategorySports  Category = "sports"
	CategoryCulture Category = "culture"
	CategoryEcology Category = "ecology"
)

// Categories lists all categories in classification precedence order.
var Categories = []Category{
	CategoryNature,
	CategoryWater,
	CategorySports,
	CategoryCulture,
	CategoryEcology,
}

// Geo is a WGS-84 coordinate pair.
type Geo struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Valid reports whether the point lies inside the catalog's service bounds
// (roughly Gyeonggi province plus margin).
func (g Geo) Valid() bool {
	return g.Lat >= 36.0 && g.Lat <= 39.0 && g.Lng >= 125.0 && g.Lng <= 129.0
}

// Candidate is one source's view of a physical place, produced by a source
// normalizer before merging. Candidates are never mutated after creation;
// the merger consumes them and produces canonical Spots.
type Candidate struct {
	SourceID       string  `json:"id"`
	Name           string  `json:"name"`
	NameEn         string  `json:"name_en,omitempty"`
	RawType        string  `json:"type"`
	Location       Geo     `json:"location"`
	AreaSqm        float64 `json:"area_sqm,omitempty"`
	District       string  `json:"district,omitempty"`
	City           string  `json:"city,omitempty"`
	Source         Source  `json:"source"`
	Priority       bool    `json:"priority,omitempty"`
	Famous         bool    `json:"famous,omitempty"`
	Thumbnail      string  `json:"thumbnail,omitempty"`
	Address        string  `json:"address,omitempty"`
	Description    string  `json:"description,omitempty"`
	DesignatedYear string  `json:"designated_year,omitempty"`
}

// Scores holds the travel-worthiness score components, each 0–100.
type Scores struct {
	Area          int `json:"area"`
	EcoValue      int `json:"eco_value"`
	Accessibility int `json:"accessibility"`
	Uniqueness    int `json:"uniqueness"`
	Total         int `json:"total"`
}

// Spot is the canonical, deduplicated record of a place. Exactly one Spot
// survives per spatial cluster. The classifier, scorer, and enricher mutate
// it in place after the merge; it is treated as immutable once handed to the
// output partitioner.
type Spot struct {
	Candidate

	Category    Category   `json:"category"`
	Scores      Scores     `json:"scores"`
	EcoScores   *EcoScores `json:"eco_scores,omitempty"`
	TourMatched bool       `json:"tour_api_matched,omitempty"`
}

// NewSpot promotes a candidate to a canonical spot.
func NewSpot(c Candidate) *Spot {
	return &Spot{Candidate: c}
}
