package entities

// Scoring holds the points table.
type Scoring struct {
	Small     int
	Big       int
	GhostBase int
	GhostMax  int
}

func (s Scoring) PelletPoints(k PelletKind) int {
	if k == PelletBig {
		return s.Big
	}
	return s.Small
}

// GhostPoints doubles the base award for every ghost already eaten in the current power
// period: 200, 400, 800, 1600 with the default table.
func (s Scoring) GhostPoints(combo int) int {
	base := s.GhostBase
	if combo > 0 {
		base = base << combo
	}
	if s.GhostMax > 0 && (base > s.GhostMax || base <= 0) {
		base = s.GhostMax
	}
	return base
}
