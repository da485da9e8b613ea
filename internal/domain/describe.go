package domain

import "fmt"

var categoryDescriptions = map[Category]string{
	CategoryNature:  "자연과 숲을 체험할 수 있는",
	CategoryWater:   "수변 생태를 관찰할 수 있는",
	CategorySports:  "다양한 스포츠를 즐길 수 있는",
	CategoryCulture: "문화와 역사를 체험할 수 있는",
	CategoryEcology: "생태계 보전의 가치를 배울 수 있는",
}

// Describe generates the display summary for a spot from its district, area,
// category, and raw type.
func Describe(sp *Spot) string {
	var areaStr string
	switch {
	case sp.AreaSqm >= 1000000:
		areaStr = fmt.Sprintf(" 약 %.1fkm² 규모의", sp.AreaSqm/1000000)
	case sp.AreaSqm >= 10000:
		areaStr = fmt.Sprintf(" 약 %.1fha 규모의", sp.AreaSqm/10000)
	}

	var location string
	if sp.District != "" {
		location = sp.District + " 소재"
	}

	return fmt.Sprintf("%s%s %s %s입니다.", location, areaStr, categoryDescriptions[sp.Category], sp.RawType)
}
