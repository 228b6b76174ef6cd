// Package ring is a specialized adaption of `container/ring`
// for tracking resident page frames in admission order.
package ring

import "iter"

type (
	// A Ring is an element of a circular list, or ring.
	// Rings do not have a beginning or end; a pointer to any ring element
	// serves as reference to the entire ring. Empty rings are represented
	// as nil Ring pointers. The zero value for a Ring is a one-element
	// ring holding the zero Frame.
	Ring[Page comparable] struct {
		next, prev *Ring[Page]
		Frame[Page]
	}
	// Frame stores the bookkeeping of a resident page.
	Frame[Page comparable] struct {
		// Page is the identifier of the page occupying this frame.
		Page Page
		// Admitted is the step index at which the page was loaded.
		Admitted int
		// Referenced is the step index at which the page
		// was last referenced. Only meaningful if Stamped.
		Referenced int
		// Stamped is true if the page carries a recency stamp.
		// Only recency based policies stamp their frames.
		Stamped bool
	}
)

func (r *Ring[Page]) init() *Ring[Page] {
	r.next = r
	r.prev = r
	return r
}

// Next returns the next ring element. r must not be empty.
func (r *Ring[Page]) Next() *Ring[Page] {
	if r.next == nil {
		return r.init()
	}
	return r.next
}

// Prev returns the previous ring element. r must not be empty.
func (r *Ring[Page]) Prev() *Ring[Page] {
	if r.next == nil {
		return r.init()
	}
	return r.prev
}

// Move moves n % r.Len() elements backward (n < 0) or forward (n >= 0)
// in the ring and returns that ring element. r must not be empty.
func (r *Ring[Page]) Move(n int) *Ring[Page] {
	if r.next == nil {
		return r.init()
	}
	switch {
	case n < 0:
		for ; n < 0; n++ {
			r = r.prev
		}
	case n > 0:
		for ; n > 0; n-- {
			r = r.next
		}
	}
	return r
}

// Link connects ring r with ring s such that r.Next()
// becomes s and returns the original value for r.Next().
// r must not be empty.
//
// If r and s point to the same ring, linking
// them removes the elements between r and s from the ring.
// The removed elements form a subring and the result is a
// reference to that subring.
//
// If r and s point to different rings, linking
// them creates a single ring with the elements of s inserted
// after r. The result points to the element following the
// last element of s after insertion.
func (r *Ring[Page]) Link(s *Ring[Page]) *Ring[Page] {
	n := r.Next()
	if s != nil {
		p := s.Prev()
		// Note: Cannot use multiple assignment because
		// evaluation order of LHS is not specified.
		r.next = s
		s.prev = r
		n.prev = p
		p.next = n
	}
	return n
}

// Unlink removes n % r.Len() elements from the ring r, starting
// at r.Next(). If n % r.Len() == 0, r remains unchanged.
// The result is the removed subring. r must not be empty.
func (r *Ring[Page]) Unlink(n int) *Ring[Page] {
	if n <= 0 {
		return nil
	}
	return r.Link(r.Move(n + 1))
}

// Len computes the number of elements in ring r.
// It executes in time proportional to the number of elements.
func (r *Ring[Page]) Len() int {
	n := 0
	if r != nil {
		n = 1
		for p := r.Next(); p != r; p = p.next {
			n++
		}
	}
	return n
}

// Iter returns an iterator over the elements of the ring,
// in forward order, starting at r.
// The behavior is undefined if the ring is modified during iteration.
func (r *Ring[Page]) Iter() iter.Seq[*Ring[Page]] {
	return func(yield func(*Ring[Page]) bool) {
		if r == nil ||
			!yield(r) {
			return
		}
		for p := r.Next(); p != r; p = p.next {
			if !yield(p) {
				return
			}
		}
	}
}
