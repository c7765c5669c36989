package poincare

// buildTriangular grows a tiling with p == 3.
//
// A triangle has a single far vertex, so polygon buckets alpha and beta are
// the edge plus one vertex bucket (eta or epsilon). Around a vertex, the
// triangle right after the parent is shared with the parent's neighbour and
// is drawn bare; then come alpha copies and one closing beta. eta places
// its beta at index q-3, epsilon at q-4.
func (b *builder) buildTriangular(q, niter int) []complex64 {
	sz := newTriangularSizes(b.npi)
	alpha, beta := b.piB, b.piB

	for i := 0; i < niter; i++ {
		sz = sz.next(q, b.npi)

		eta := b.triangularVertex(sz.eta, q-3, alpha, beta)
		epsilon := b.triangularVertex(sz.epsilon, q-4, alpha, beta)

		nalpha := bucket(sz.alpha, b.piA)
		nalpha = appendRotated(nalpha, eta, b.powA[1])
		b.toVertex(nalpha, 0)

		nbeta := bucket(sz.beta, b.piA)
		nbeta = appendRotated(nbeta, epsilon, b.powA[1])
		b.toVertex(nbeta, 0)

		alpha, beta = nalpha, nbeta
	}

	return b.ring(alpha, q, mulSat(q, sz.alpha))
}

// triangularVertex assembles a vertex bucket owning triangles 1..last: the
// bare edge triangle at 1, alpha at 2..last-1 and beta at last.
func (b *builder) triangularVertex(size, last int, alpha, beta []complex64) []complex64 {
	v := bucket(size, b.piB)
	v = appendRotated(v, b.piB, b.powD[1])
	for k := 2; k < last; k++ {
		v = appendRotated(v, alpha, b.powD[k])
	}
	v = appendRotated(v, beta, b.powD[last])
	b.toCentre(v, 0)
	return v
}
