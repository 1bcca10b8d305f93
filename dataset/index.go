package dataset

import (
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Index holds actor→titles and title→actors posting lists in input order.
type Index struct {
	nameToTitles *orderedmap.OrderedMap[string, []string]
	titleToNames *orderedmap.OrderedMap[string, []string]
}

// NewIndex builds an Index from records.
// Complexity: O(R) for R records.
func NewIndex(records []Record) *Index {
	idx := &Index{
		nameToTitles: orderedmap.New[string, []string](),
		titleToNames: orderedmap.New[string, []string](),
	}
	for _, r := range records {
		idx.Add(r)
	}

	return idx
}

// Add appends one record to both posting lists. Duplicate records are kept.
func (idx *Index) Add(r Record) {
	appendPosting(idx.nameToTitles, r.Name, r.Title)
	appendPosting(idx.titleToNames, r.Title, r.Name)
}

func appendPosting(m *orderedmap.OrderedMap[string, []string], key, val string) {
	list, _ := m.Get(key)
	m.Set(key, append(list, val))
}

// Names returns distinct actor names in first-seen order.
func (idx *Index) Names() []string { return keys(idx.nameToTitles) }

// Titles returns distinct titles in first-seen order.
func (idx *Index) Titles() []string { return keys(idx.titleToNames) }

// TitlesOf returns a copy of the titles name appears in, or nil.
func (idx *Index) TitlesOf(name string) []string { return posting(idx.nameToTitles, name) }

// NamesIn returns a copy of the actor names appearing in title, or nil.
func (idx *Index) NamesIn(title string) []string { return posting(idx.titleToNames, title) }

// NameCount returns the number of distinct actors.
func (idx *Index) NameCount() int { return idx.nameToTitles.Len() }

// TitleCount returns the number of distinct titles.
func (idx *Index) TitleCount() int { return idx.titleToNames.Len() }

func keys(m *orderedmap.OrderedMap[string, []string]) []string {
	out := make([]string, 0, m.Len())
	for pair := m.Oldest(); pair != nil; pair = pair.Next() {
		out = append(out, pair.Key)
	}

	return out
}

func posting(m *orderedmap.OrderedMap[string, []string], key string) []string {
	list, ok := m.Get(key)
	if !ok {
		return nil
	}
	out := make([]string, len(list))
	copy(out, list)

	return out
}
