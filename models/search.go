package models

// Search fields per entity, matched case-insensitively by the filters
// package. Kept here so every view filters over the same columns.

func (a Attraction) SearchFields() []string {
	fields := []string{a.Name, a.Description, a.Location}
	return append(fields, a.Tags...)
}

func (a Attraction) SearchCategory() string { return a.Category }

func (s Show) SearchFields() []string {
	return []string{s.Name, s.Description, s.Location}
}

func (s Show) SearchCategory() string { return s.Category }

func (p MapPoint) SearchFields() []string {
	return []string{p.Name, p.Description, p.Subcategory}
}

func (p MapPoint) SearchCategory() string { return p.Category }
