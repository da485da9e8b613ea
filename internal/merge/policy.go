package merge

import "github.com/greenmaru/spot-catalog-etl/internal/domain"

// FieldPolicy controls which fields an overlapping tour record may write
// onto an existing spot. Scores, category, and eco data are never
// overwritten by tour data.
type FieldPolicy struct {
	Name      bool
	Thumbnail bool
	Address   bool
}

// TourFieldPolicy is the default policy for tour-API overlaps: thumbnails
// and addresses are always taken, names only when the spot is not famous.
func TourFieldPolicy() FieldPolicy {
	return FieldPolicy{Name: true, Thumbnail: true, Address: true}
}

// Apply copies the permitted fields of src onto dst. Empty source fields
// never clear existing values, and famous spots keep their curated names.
func (p FieldPolicy) Apply(dst *domain.Spot, src domain.Candidate) {
	if p.Name && src.Name != "" && !dst.Famous {
		dst.Name = src.Name
	}
	if p.Thumbnail && src.Thumbnail != "" {
		dst.Thumbnail = src.Thumbnail
	}
	if p.Address && src.Address != "" {
		dst.Address = src.Address
	}
}
