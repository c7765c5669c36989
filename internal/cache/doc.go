// Package cache provides a generic LRU cache bounded by value weight.
//
// The board keeps built tilings in a Cache keyed by their parameters and
// weighed by point count, so switching back and forth between a few
// Schläfli symbols does not rebuild them while a large tiling still pushes
// the older ones out.
//
//	c := cache.New[poincare.Params, poincare.Segments](1<<22, poincare.Segments.Len)
//	segs, err := c.GetOrCreate(params, func() (poincare.Segments, error) {
//	    return poincare.Build(params)
//	})
//
// Cache is safe for concurrent use and must not be copied after creation.
package cache
