package poincare

// buildTrivalent grows a tiling with q == 3.
//
// With three polygons per vertex a polygon's neighbours are shared by two of
// its vertices, so ownership is split three ways. Polygon buckets alpha,
// beta and epsilon own their child vertices up to index p-2, p-3 and p-4.
// Vertex bucket zeta is the bare edge, eta carries one beta and theta one
// epsilon.
func (b *builder) buildTrivalent(p, niter int) []complex64 {
	sz := newTrivalentSizes(b.npi)
	beta, epsilon := b.piB, b.piB
	var alpha []complex64

	// S(-d, piB) is piA; reuse the exact edge instead of mapping it back.
	zeta := b.piA

	for i := 0; i < niter; i++ {
		sz = sz.next(p, b.npi)

		eta := bucket(sz.eta, b.piB)
		eta = appendRotated(eta, beta, b.powD[1])
		b.toCentre(eta, 0)

		theta := bucket(sz.theta, b.piB)
		theta = appendRotated(theta, epsilon, b.powD[1])
		b.toCentre(theta, 0)

		alpha = b.trivalentPolygon(sz.alpha, p-2, zeta, eta, theta)
		beta = b.trivalentPolygon(sz.beta, p-3, zeta, eta, theta)
		epsilon = b.trivalentPolygon(sz.epsilon, p-4, zeta, eta, theta)
	}

	return b.ring(alpha, 3, mulSat(3, sz.alpha))
}

// trivalentPolygon assembles a polygon bucket owning child vertices 1..last:
// zeta at 1, eta at 2..last-1 and theta at last.
func (b *builder) trivalentPolygon(size, last int, zeta, eta, theta []complex64) []complex64 {
	poly := bucket(size, b.piA)
	poly = appendRotated(poly, zeta, b.powA[1])
	for k := 2; k < last; k++ {
		poly = appendRotated(poly, eta, b.powA[k])
	}
	poly = appendRotated(poly, theta, b.powA[last])
	b.toVertex(poly, 0)
	return poly
}
