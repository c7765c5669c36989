package poincare

// buildGeneral grows a tiling with p >= 4 and q >= 4.
//
// Polygon buckets alpha and beta live in the vertex frame and vertex buckets
// gamma and delta in the centre frame. Each bucket owns the subtree hanging
// off its root: beta leaves its last sibling to alpha, gamma leaves its last
// sibling to delta. Every round reads the previous alpha and beta only.
func (b *builder) buildGeneral(p, q, niter int) []complex64 {
	sz := newGeneralSizes(b.npi)
	alpha, beta := b.piB, b.piB

	for i := 0; i < niter; i++ {
		sz = sz.next(p, q, b.npi)

		gamma := bucket(sz.gamma, b.piB)
		gamma = appendRotated(gamma, beta, b.powD[1])
		for k := 2; k <= q-3; k++ {
			gamma = appendRotated(gamma, alpha, b.powD[k])
		}
		b.toCentre(gamma, 0)

		delta := bucket(sz.delta, gamma)
		delta = appendRotated(delta, alpha, b.powD[q-2])
		b.toCentre(delta, len(gamma))

		nbeta := bucket(sz.beta, b.piA)
		nbeta = appendRotated(nbeta, gamma, b.powA[1])
		for k := 2; k <= p-3; k++ {
			nbeta = appendRotated(nbeta, delta, b.powA[k])
		}
		b.toVertex(nbeta, 0)

		nalpha := bucket(sz.alpha, nbeta)
		nalpha = appendRotated(nalpha, delta, b.powA[p-2])
		b.toVertex(nalpha, len(nbeta))

		alpha, beta = nalpha, nbeta
	}

	return b.ring(alpha, q, mulSat(q, sz.alpha))
}
