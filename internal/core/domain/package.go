package domain

// PackageIdentifier is one parsed line of a package list. Version holds
// version and release joined by a hyphen.
type PackageIdentifier struct {
	Name    string
	Version string
	Arch    string
	RawLine string
}

// SameAs reports an exact match: name, version and arch all equal.
func (p PackageIdentifier) SameAs(other PackageIdentifier) bool {
	return p.Name == other.Name && p.Version == other.Version && p.Arch == other.Arch
}

// PackageList is the ordered content of one input file.
type PackageList struct {
	Source    string
	Packages  []PackageIdentifier
	Blank     int
	Malformed int
}

func (l PackageList) Loaded() int {
	return len(l.Packages)
}

func (l PackageList) Summary() ListSummary {
	return ListSummary{Path: l.Source, Loaded: l.Loaded()}
}
