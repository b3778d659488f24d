package core

// Flowpipe is a Taylor Model whose domain is (the initial state box) x
// [0, delta_i] for the i-th time sub-interval, per spec §3: a pair
// (polynomial vector, interval-vector remainder).
type Flowpipe struct {
	Poly      PolynomialVector
	Remainder IntervalVector
}

// Box is an axis-aligned interval-vector enclosure of a Flowpipe's
// image over the initial state box, per spec §3.
type Box IntervalVector

// Rectangle2D projects an n-dimensional box onto dimensions i and j,
// returning the 2D axis-aligned rectangle's lower-left and upper-right
// corners, per spec §6's plotting data description (SPEC_FULL §4.9).
// It does not render anything -- rasterization remains an external
// collaborator's concern.
func (b Box) Rectangle2D(i, j int) (xlo, ylo, xhi, yhi float64, err error) {
	if i < 0 || i >= len(b) || j < 0 || j >= len(b) {
		return 0, 0, 0, 0, errInvalidInput("Rectangle2D: dimension indices (%d, %d) out of range for a %d-dimensional box", i, j, len(b))
	}
	return b[i].Lo, b[j].Lo, b[i].Hi, b[j].Hi, nil
}
