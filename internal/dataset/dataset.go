package dataset

import (
	"fmt"
	"sort"
	"strings"
)

type DamageLevel int

const (
	DamageUnknown DamageLevel = iota
	DamageMinor
	DamageModerate
	DamageSevere
	DamageCatastrophic
)

var damageNames = map[DamageLevel]string{
	DamageUnknown:      "Unknown",
	DamageMinor:        "Minor",
	DamageModerate:     "Moderate",
	DamageSevere:       "Severe",
	DamageCatastrophic: "Catastrophic",
}

func (d DamageLevel) String() string {
	if name, ok := damageNames[d]; ok {
		return name
	}
	return damageNames[DamageUnknown]
}

// ParseDamageLevel maps a level name (case-insensitive) back to its value.
func ParseDamageLevel(s string) (DamageLevel, error) {
	for level, name := range damageNames {
		if strings.EqualFold(name, s) {
			return level, nil
		}
	}
	return DamageUnknown, fmt.Errorf("unknown damage level: %s", s)
}

// Detail is the optional per-year storm summary.
type Detail struct {
	Names   []string
	MaxWind int // km/h
	Damage  DamageLevel
}

// UnknownDetail is reported for years without a detail entry.
var UnknownDetail = Detail{Names: []string{"Unknown"}, MaxWind: 0, Damage: DamageUnknown}

type YearlyRecord struct {
	Year   int
	Count  int
	Detail *Detail
}

type Dataset struct {
	records []YearlyRecord
}

// New validates records and returns them as a dataset ordered by year.
func New(records []YearlyRecord) (*Dataset, error) {
	if len(records) == 0 {
		return nil, ErrEmptyDataset
	}

	seen := make(map[int]bool, len(records))
	sorted := make([]YearlyRecord, len(records))
	for i, r := range records {
		if seen[r.Year] {
			return nil, fmt.Errorf("%w: %d", ErrDuplicateYear, r.Year)
		}
		if r.Count < 0 {
			return nil, fmt.Errorf("%w: %d has %d", ErrNegativeCount, r.Year, r.Count)
		}
		seen[r.Year] = true
		sorted[i] = cloneRecord(r)
	}

	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Year < sorted[j].Year })

	return &Dataset{records: sorted}, nil
}

// FromCounts builds a dataset without detail entries.
func FromCounts(counts map[int]int) (*Dataset, error) {
	records := make([]YearlyRecord, 0, len(counts))
	for year, count := range counts {
		records = append(records, YearlyRecord{Year: year, Count: count})
	}
	return New(records)
}

func cloneRecord(r YearlyRecord) YearlyRecord {
	if r.Detail == nil {
		return r
	}
	d := *r.Detail
	d.Names = append([]string(nil), r.Detail.Names...)
	r.Detail = &d
	return r
}

func (d *Dataset) Len() int { return len(d.records) }

func (d *Dataset) Records() []YearlyRecord {
	out := make([]YearlyRecord, len(d.records))
	for i, r := range d.records {
		out[i] = cloneRecord(r)
	}
	return out
}

func (d *Dataset) Record(i int) YearlyRecord {
	return cloneRecord(d.records[i])
}

func (d *Dataset) Years() []int {
	years := make([]int, len(d.records))
	for i, r := range d.records {
		years[i] = r.Year
	}
	return years
}

func (d *Dataset) Counts() []int {
	counts := make([]int, len(d.records))
	for i, r := range d.records {
		counts[i] = r.Count
	}
	return counts
}

func (d *Dataset) MaxCount() int {
	max := d.records[0].Count
	for _, r := range d.records[1:] {
		if r.Count > max {
			max = r.Count
		}
	}
	return max
}

func (d *Dataset) MinCount() int {
	min := d.records[0].Count
	for _, r := range d.records[1:] {
		if r.Count < min {
			min = r.Count
		}
	}
	return min
}

// Span returns the first and last year.
func (d *Dataset) Span() (int, int) {
	return d.records[0].Year, d.records[len(d.records)-1].Year
}

// DetailFor returns the detail entry for year, or UnknownDetail.
func (d *Dataset) DetailFor(year int) Detail {
	for _, r := range d.records {
		if r.Year == year && r.Detail != nil {
			return cloneRecord(r).Detail.withNames()
		}
	}
	return UnknownDetail
}

func (d *Detail) withNames() Detail {
	if len(d.Names) == 0 {
		d.Names = []string{"Unknown"}
	}
	return *d
}

// Between returns the records whose year falls in [from, to].
func (d *Dataset) Between(from, to int) []YearlyRecord {
	out := make([]YearlyRecord, 0)
	for _, r := range d.records {
		if r.Year >= from && r.Year <= to {
			out = append(out, cloneRecord(r))
		}
	}
	return out
}
