package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDescribe(t *testing.T) {
	t.Run("district and hectare area", func(t *testing.T) {
		sp := NewSpot(Candidate{RawType: "근린공원", District: "수원시", AreaSqm: 45000})
		sp.Category = CategoryNature
		assert.Equal(t, "수원시 소재 약 4.5ha 규모의 자연과 숲을 체험할 수 있는 근린공원입니다.", Describe(sp))
	})

	t.Run("square kilometer area", func(t *testing.T) {
		sp := NewSpot(Candidate{RawType: "도립공원", District: "포천시", AreaSqm: 2500000})
		sp.Category = CategoryNature
		assert.Contains(t, Describe(sp), "약 2.5km² 규모의")
	})

	t.Run("no district and no area", func(t *testing.T) {
		sp := NewSpot(Candidate{RawType: "국가하천"})
		sp.Category = CategoryWater
		assert.Equal(t, " 수변 생태를 관찰할 수 있는 국가하천입니다.", Describe(sp))
	})
}
