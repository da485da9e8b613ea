package merge

import (
	"fmt"
	"testing"

	"github.com/greenmaru/spot-catalog-etl/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func candidate(id string, lat, lng float64, source domain.Source) domain.Candidate {
	return domain.Candidate{
		SourceID: id,
		Name:     id,
		Location: domain.Geo{Lat: lat, Lng: lng},
		Source:   source,
	}
}

func TestMergerBucketPass(t *testing.T) {
	t.Run("identical rounded coordinates collapse", func(t *testing.T) {
		m := New(DefaultConfig())
		assert.True(t, m.Add(candidate("a", 37.531600, 127.309400, domain.SourcePark)))
		assert.False(t, m.Add(candidate("b", 37.531649, 127.309351, domain.SourceWetland)))

		spots := m.Spots()
		require.Len(t, spots, 1)
		assert.Equal(t, "a", spots[0].SourceID)
	})

	t.Run("famous newcomer replaces incumbent in place", func(t *testing.T) {
		m := New(DefaultConfig())
		m.Add(candidate("first", 37.0, 127.0, domain.SourcePark))
		m.Add(candidate("plain", 37.5316, 127.3094, domain.SourcePark))

		famous := candidate("famous_두물머리", 37.5316, 127.3094, domain.SourceFamous)
		famous.Famous = true
		assert.False(t, m.Add(famous))

		spots := m.Spots()
		require.Len(t, spots, 2)
		assert.Equal(t, "first", spots[0].SourceID)
		assert.Equal(t, "famous_두물머리", spots[1].SourceID)
	})

	t.Run("famous incumbent survives famous newcomer position", func(t *testing.T) {
		m := New(DefaultConfig())
		famous := candidate("famous_a", 37.5, 127.3, domain.SourceFamous)
		famous.Famous = true
		m.Add(famous)

		later := candidate("famous_b", 37.5, 127.3, domain.SourceFamous)
		later.Famous = true
		assert.False(t, m.Add(later))
		assert.Equal(t, "famous_a", m.Spots()[0].SourceID)
	})
}

func TestMergerDistancePass(t *testing.T) {
	// 0.001 degrees of latitude is ~111m.
	t.Run("same source beyond 100m stays distinct", func(t *testing.T) {
		m := New(DefaultConfig())
		m.Add(candidate("a", 37.5000, 127.3, domain.SourcePark))
		assert.True(t, m.Add(candidate("b", 37.5011, 127.3, domain.SourcePark)))
	})

	t.Run("cross source within 300m merges", func(t *testing.T) {
		m := New(DefaultConfig())
		m.Add(candidate("a", 37.5000, 127.3, domain.SourcePark))
		assert.False(t, m.Add(candidate("b", 37.5011, 127.3, domain.SourceWetland)))
		assert.Len(t, m.Spots(), 1)
	})

	t.Run("cross source beyond 300m stays distinct", func(t *testing.T) {
		m := New(DefaultConfig())
		m.Add(candidate("a", 37.5000, 127.3, domain.SourcePark))
		assert.True(t, m.Add(candidate("b", 37.5040, 127.3, domain.SourceWetland)))
	})

	t.Run("famous spot absorbs nearby record across bucket cells", func(t *testing.T) {
		m := New(DefaultConfig())
		famous := candidate("famous_두물머리", 37.5316, 127.3094, domain.SourceFamous)
		famous.Famous = true
		m.Add(famous)

		// ~25m north, different rounded bucket, still within radius
		assert.False(t, m.Add(candidate("wetland_7", 37.53182, 127.3094, domain.SourceWetland)))

		spots := m.Spots()
		require.Len(t, spots, 1)
		assert.Equal(t, "famous_두물머리", spots[0].SourceID)
	})

	t.Run("nearby records merge across grid cell boundaries", func(t *testing.T) {
		m := New(DefaultConfig())
		// straddle a 0.005-degree cell edge
		m.Add(candidate("a", 37.50490, 127.3, domain.SourcePark))
		assert.False(t, m.Add(candidate("b", 37.50510, 127.3, domain.SourceWetland)))
	})
}

func TestMergerMergeAll(t *testing.T) {
	m := New(DefaultConfig())
	merged := m.MergeAll([]domain.Candidate{
		candidate("a", 37.50, 127.30, domain.SourcePark),
		candidate("b", 37.50, 127.30, domain.SourceWetland),
		candidate("c", 37.60, 127.40, domain.SourcePark),
	})

	assert.Equal(t, 1, merged)
	assert.Len(t, m.Spots(), 2)
}

func TestMergerIdempotence(t *testing.T) {
	m := New(DefaultConfig())
	cands := []domain.Candidate{
		candidate("a", 37.50, 127.30, domain.SourcePark),
		candidate("b", 37.60, 127.40, domain.SourceWetland),
	}

	m.MergeAll(cands)
	merged := m.MergeAll(cands)

	assert.Equal(t, 2, merged)
	assert.Len(t, m.Spots(), 2)
}

func TestMergerSeed(t *testing.T) {
	m := New(DefaultConfig())
	m.Seed([]*domain.Spot{
		domain.NewSpot(candidate("existing", 37.50, 127.30, domain.SourcePark)),
	})

	assert.False(t, m.Add(candidate("incoming", 37.50, 127.30, domain.SourceWetland)))
	require.Len(t, m.Spots(), 1)
	assert.Equal(t, "existing", m.Spots()[0].SourceID)
}

func TestMergeTour(t *testing.T) {
	t.Run("nearby tour record enriches without adding", func(t *testing.T) {
		m := New(DefaultConfig())
		m.Add(candidate("park_1", 37.5000, 127.3, domain.SourcePark))

		tour := candidate("t1", 37.5005, 127.3, domain.SourceTourAPI)
		tour.Thumbnail = "http://img/1.jpg"
		tour.Address = "남양주시 조안면"

		matched, added := m.MergeTour([]domain.Candidate{tour})
		assert.Equal(t, 1, matched)
		assert.Equal(t, 0, added)

		sp := m.Spots()[0]
		assert.True(t, sp.TourMatched)
		assert.Equal(t, "t1", sp.Name) // non-famous spot takes the tour name
		assert.Equal(t, "http://img/1.jpg", sp.Thumbnail)
		assert.Equal(t, "남양주시 조안면", sp.Address)
	})

	t.Run("famous spot keeps its name", func(t *testing.T) {
		m := New(DefaultConfig())
		famous := candidate("famous_두물머리", 37.5316, 127.3094, domain.SourceFamous)
		famous.Famous = true
		m.Add(famous)

		tour := candidate("두물머리 관광지", 37.5317, 127.3094, domain.SourceTourAPI)
		tour.Thumbnail = "http://img/2.jpg"
		m.MergeTour([]domain.Candidate{tour})

		sp := m.Spots()[0]
		assert.Equal(t, "famous_두물머리", sp.Name)
		assert.Equal(t, "http://img/2.jpg", sp.Thumbnail)
	})

	t.Run("distant tour record becomes a new spot", func(t *testing.T) {
		m := New(DefaultConfig())
		m.Add(candidate("park_1", 37.50, 127.30, domain.SourcePark))

		matched, added := m.MergeTour([]domain.Candidate{
			candidate("t1", 37.60, 127.40, domain.SourceTourAPI),
		})
		assert.Equal(t, 0, matched)
		assert.Equal(t, 1, added)
		assert.Len(t, m.Spots(), 2)
	})

	t.Run("each tour record matches at most one spot", func(t *testing.T) {
		m := New(DefaultConfig())
		m.Add(candidate("a", 37.5000, 127.30, domain.SourcePark))
		m.Add(candidate("b", 37.5100, 127.30, domain.SourcePark))

		tour := candidate("t1", 37.5001, 127.30, domain.SourceTourAPI)
		matched, added := m.MergeTour([]domain.Candidate{tour})
		assert.Equal(t, 1, matched)
		assert.Equal(t, 0, added)
		assert.True(t, m.Spots()[0].TourMatched)
		assert.False(t, m.Spots()[1].TourMatched)
	})
}

func TestMergerScale(t *testing.T) {
	m := New(DefaultConfig())
	for i := 0; i < 500; i++ {
		m.Add(candidate(fmt.Sprintf("s%d", i), 37.0+float64(i)*0.01, 127.0, domain.SourcePark))
	}
	assert.Len(t, m.Spots(), 500)
}
