package pairing

// Recommendation is one cigar-and-pour combination. Cigar and Pour are
// both always set so the same shape serves either direction: recommending
// a cigar for a bottle, or a bottle for a cigar.
type Recommendation struct {
	Cigar      string
	Strength   string
	Why        []string
	Pour       string
	QualityTag string
}

// profile groups bottles that drink alike and take the same cigars.
type profile struct {
	Bottles     []string
	ProofRange  string
	FlavorNotes string
	BestFor     string
	QualityTag  string
}

// classic is a time-tested cigar/bourbon combination.
type classic struct {
	CigarType string
	Examples  []string
	Bourbon   string
	Why       string
	Strength  string
	Profile   string
}
