package domain

import "strings"

// categoryKeywords maps each category to its match keywords. Order matters:
// the first category whose keyword appears in the name+type string wins, so
// the table is a slice, not a map.
var categoryKeywords = []struct {
	category Category
	keywords []string
}{
	{CategoryNature, []string{"자연", "숲", "산림", "산악", "등산", "forest", "자연림"}},
	{CategoryWater, []string{"수변", "습지", "하천", "호수", "저수지", "wetland"}},
	{CategorySports, []string{"체육", "스포츠", "운동", "레저", "sports"}},
	{CategoryCulture, []string{"문화", "역사", "유적", "문화재", "culture", "history"}},
	{CategoryEcology, []string{"생태", "환경", "보호", "ecology", "비오톱"}},
}

// Classify assigns exactly one category to a candidate. Source-based rules
// take precedence over keyword matches: a wetland is "water" no matter what
// its name says. Pure and deterministic.
func Classify(c Candidate) Category {
	name := strings.ToLower(c.Name + " " + c.RawType)

	switch c.Source {
	case SourceWetland, SourceNationalRiver:
		return CategoryWater
	case SourceEcoGrade1, SourceLandscape, SourceForestReserve:
		return CategoryEcology
	case SourceGreenArea:
		return CategoryNature
	case SourceFacility:
		if strings.Contains(name, "체육") || strings.Contains(name, "스포츠") {
			return CategorySports
		}
		return CategoryCulture
	}

	for _, entry := range categoryKeywords {
		for _, kw := range entry.keywords {
			if strings.Contains(name, kw) {
				return entry.category
			}
		}
	}

	return CategoryNature
}
