package domain

type MatchStatus string

const (
	StatusIdentical MatchStatus = "IDENTICAL"
	StatusDiffers   MatchStatus = "DIFFERS"
	StatusOnlyInA   MatchStatus = "ONLY_IN_A"
	StatusOnlyInB   MatchStatus = "ONLY_IN_B"
)

// Symbol is the single-character marker used in rendered reports.
func (s MatchStatus) Symbol() string {
	switch s {
	case StatusIdentical:
		return "="
	case StatusDiffers:
		return "|"
	case StatusOnlyInA:
		return "<"
	case StatusOnlyInB:
		return ">"
	default:
		return "?"
	}
}

// BOnly reports whether rows of this status belong to the B-only partition.
func (s MatchStatus) BOnly() bool {
	return s == StatusOnlyInB
}

// MatchResult is one report row. PackageA or PackageB is empty for the
// one-sided statuses. Build it with the constructors below.
type MatchResult struct {
	Status   MatchStatus
	PackageA string
	PackageB string
	SortKey  string
}

func Identical(a, b PackageIdentifier) MatchResult {
	return MatchResult{Status: StatusIdentical, PackageA: a.RawLine, PackageB: b.RawLine, SortKey: a.Name}
}

func Differs(a, b PackageIdentifier) MatchResult {
	return MatchResult{Status: StatusDiffers, PackageA: a.RawLine, PackageB: b.RawLine, SortKey: a.Name}
}

func OnlyInA(a PackageIdentifier) MatchResult {
	return MatchResult{Status: StatusOnlyInA, PackageA: a.RawLine, SortKey: a.Name}
}

func OnlyInB(b PackageIdentifier) MatchResult {
	return MatchResult{Status: StatusOnlyInB, PackageB: b.RawLine, SortKey: b.Name}
}

type ListSummary struct {
	Path   string
	Loaded int
}

// Report is the ordered, render-ready output of one comparison run.
type Report struct {
	SourceA ListSummary
	SourceB ListSummary
	ASide   []MatchResult
	BOnly   []MatchResult
}

// Rows returns the A-side rows followed by the B-only rows.
func (r Report) Rows() []MatchResult {
	rows := make([]MatchResult, 0, len(r.ASide)+len(r.BOnly))
	rows = append(rows, r.ASide...)
	return append(rows, r.BOnly...)
}

type Counts struct {
	Identical int
	Differs   int
	OnlyInA   int
	OnlyInB   int
}

func (r Report) Counts() Counts {
	var c Counts
	for _, row := range r.Rows() {
		switch row.Status {
		case StatusIdentical:
			c.Identical++
		case StatusDiffers:
			c.Differs++
		case StatusOnlyInA:
			c.OnlyInA++
		case StatusOnlyInB:
			c.OnlyInB++
		}
	}
	return c
}
