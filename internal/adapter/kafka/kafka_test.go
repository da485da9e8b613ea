package kafka

import (
	"testing"

	"github.com/greenmaru/spot-catalog-etl/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSerializeToMessage(t *testing.T) {
	sp := domain.NewSpot(domain.Candidate{
		SourceID: "famous_두물머리",
		Name:     "두물머리",
		Location: domain.Geo{Lat: 37.5316, Lng: 127.3094},
		Source:   domain.SourceFamous,
	})
	sp.Category = domain.CategoryNature
	sp.Scores.Total = 87

	msg, err := serializeToMessage(sp)
	require.NoError(t, err)

	assert.Equal(t, []byte("famous_두물머리"), msg.Key)
	assert.Contains(t, string(msg.Value), `"name":"두물머리"`)
	require.Len(t, msg.Headers, 3)
	assert.Equal(t, "category", msg.Headers[0].Key)
	assert.Equal(t, []byte("nature"), msg.Headers[0].Value)
	assert.Equal(t, "source", msg.Headers[1].Key)
	assert.Equal(t, []byte("famous"), msg.Headers[1].Value)
	assert.Equal(t, "score", msg.Headers[2].Key)
	assert.Equal(t, []byte("87"), msg.Headers[2].Value)
}
