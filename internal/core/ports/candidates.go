package ports

// CandidateResolver produces the host directories to scan for driver
// libraries, typically from LD_LIBRARY_PATH and the loader configuration.
//
//go:generate mockgen -source=candidates.go -destination=mocks/mock_candidates.go -package=mocks
type CandidateResolver interface {
	// Candidates returns existing directories in loader search order.
	Candidates() ([]string, error)
}
