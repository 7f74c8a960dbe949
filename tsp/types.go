package tsp

import "errors"

// Sentinel errors. Callers match with errors.Is; Solve may wrap them with context.
var (
	// ErrGraphTooSmall is returned for graphs with fewer than three vertices.
	ErrGraphTooSmall = errors.New("tsp: graph smaller than 3x3")

	// ErrIncompleteGraph is returned when an off-diagonal distance is zero (missing edge).
	ErrIncompleteGraph = errors.New("tsp: incomplete distance matrix")

	// ErrNonSquare is returned when the distance matrix is not n×n.
	ErrNonSquare = errors.New("tsp: distance matrix is not square")

	// ErrNegativeWeight is returned for a negative off-diagonal distance.
	ErrNegativeWeight = errors.New("tsp: negative edge weight")

	// ErrInvalidWeight is returned for NaN or ±Inf distances.
	ErrInvalidWeight = errors.New("tsp: non-finite edge weight")

	// ErrBadOptions is returned when Options fail validation.
	ErrBadOptions = errors.New("tsp: invalid options")

	// ErrInvalidTour is returned by TourCost for tours that are too short or leave [0,n).
	ErrInvalidTour = errors.New("tsp: invalid tour")
)

// GraphStatus classifies a distance matrix before any tour is constructed.
type GraphStatus int

const (
	// GraphNormal is a complete symmetric graph.
	GraphNormal GraphStatus = iota
	// GraphDirected is a complete graph with at least one pair d(u,v) != d(v,u). It still runs.
	GraphDirected
	// GraphSmall has fewer than three vertices.
	GraphSmall
	// GraphIncomplete misses at least one off-diagonal edge.
	GraphIncomplete
	// GraphInvalid is nil, non-square, or holds a negative / non-finite weight.
	GraphInvalid
)

// String returns a lower-case label for logs and reports.
func (s GraphStatus) String() string {
	switch s {
	case GraphNormal:
		return "normal"
	case GraphDirected:
		return "directed"
	case GraphSmall:
		return "small"
	case GraphIncomplete:
		return "incomplete"
	case GraphInvalid:
		return "invalid"
	default:
		return "unknown"
	}
}

// Runnable reports whether the solver accepts a graph with this status.
func (s GraphStatus) Runnable() bool { return s == GraphNormal || s == GraphDirected }

// TSResult holds the outcome of Solve.
type TSResult struct {
	// Tour lists 1-based vertex numbers and repeats the start vertex at the end.
	// For n vertices, len(Tour) == n+1 and Tour[0] == Tour[n].
	Tour []int

	// Cost is the total distance of the closed tour, rounded to 1e-9.
	Cost float64

	// Status is the classification of the input graph.
	Status GraphStatus
}

// ZeroBased returns Tour converted to 0-based indices (closure kept).
func (r TSResult) ZeroBased() []int {
	out := make([]int, len(r.Tour))
	for i, v := range r.Tour {
		out[i] = v - 1
	}

	return out
}
