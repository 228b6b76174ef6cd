package pagesim

import (
	"iter"
	"math"

	"github.com/dolthub/swiss"
	"github.com/gammazero/deque"

	"github.com/djdv/go-pagesim/internal/ring"
)

type (
	frame[Page comparable] = ring.Ring[Page]
	// frames is the resident set and all of the
	// per-policy bookkeeping that must agree with it.
	// Pages enter only through admit and leave only through evict.
	frames[Page comparable] struct {
		index *swiss.Map[Page, *frame[Page]]
		// oldest is the head of the admission ordered ring.
		oldest *frame[Page]
		// queue holds arrival order, populated only under FIFO.
		queue    *deque.Deque[Page]
		capacity int
		queued,
		stamped bool
	}
)

func newFrames[Page comparable](capacity int, policy Policy) *frames[Page] {
	return &frames[Page]{
		index:    swiss.NewMap[Page, *frame[Page]](sizeHint(capacity)),
		queue:    deque.New[Page](capacity),
		capacity: capacity,
		queued:   policy.queues(),
		stamped:  policy.stamps(),
	}
}

// sizeHint clamps capacity to the index's hint range.
func sizeHint(capacity int) uint32 {
	if uint64(capacity) > math.MaxUint32 {
		return math.MaxUint32
	}
	return uint32(capacity)
}

func (f *frames[Page]) len() int { return f.index.Count() }

func (f *frames[Page]) full() bool { return f.len() == f.capacity }

func (f *frames[Page]) contains(page Page) bool { return f.index.Has(page) }

// admit loads a page that is not resident into a free frame.
func (f *frames[Page]) admit(page Page, step int) {
	if debugging {
		assert(!f.contains(page), "admitted a resident page")
		assert(!f.full(), "admitted a page without a free frame")
	}
	element := &frame[Page]{
		Frame: ring.Frame[Page]{
			Page:     page,
			Admitted: step,
		},
	}
	if f.oldest == nil {
		f.oldest = element
	} else {
		f.oldest.Prev().Link(element)
	}
	f.index.Put(page, element)
	if f.queued {
		f.queue.PushBack(page)
	}
	f.check()
}

// touch stamps a resident page as referenced at step.
func (f *frames[Page]) touch(page Page, step int) {
	if !f.stamped {
		return
	}
	element, ok := f.index.Get(page)
	if debugging {
		assert(ok, "stamped a page that is not resident")
	}
	if ok {
		element.Referenced = step
		element.Stamped = true
	}
}

// evict removes a resident page from the index,
// the admission ring, and the arrival queue.
func (f *frames[Page]) evict(page Page) {
	element, ok := f.index.Get(page)
	if debugging {
		assert(ok, "evicted a page that is not resident")
	}
	if !ok {
		return
	}
	f.index.Delete(page)
	switch {
	case f.index.Count() == 0:
		f.oldest = nil
	case element == f.oldest:
		f.oldest = element.Next()
		fallthrough
	default:
		element.Prev().Unlink(1)
	}
	if f.queued {
		f.dequeue(page)
	}
	f.check()
}

// dequeue removes page from the arrival queue,
// preserving the order of the remaining pages.
func (f *frames[Page]) dequeue(page Page) {
	if f.queue.Len() == 0 {
		return
	}
	if f.queue.Front() == page {
		f.queue.PopFront()
		return
	}
	for range f.queue.Len() {
		if queued := f.queue.PopFront(); queued != page {
			f.queue.PushBack(queued)
		}
	}
}

func (f *frames[Page]) reset() {
	f.index.Clear()
	f.oldest = nil
	f.queue.Clear()
}

// elements iterates resident frames in admission order.
func (f *frames[Page]) elements() iter.Seq[*frame[Page]] {
	return f.oldest.Iter()
}

// pages iterates resident pages in admission order.
func (f *frames[Page]) pages() iter.Seq[Page] {
	return func(yield func(Page) bool) {
		for element := range f.elements() {
			if !yield(element.Page) {
				return
			}
		}
	}
}

func (f *frames[Page]) snapshot() []Page {
	residents := make([]Page, 0, f.len())
	for page := range f.pages() {
		residents = append(residents, page)
	}
	return residents
}

func (f *frames[Page]) check() {
	if !debugging {
		return
	}
	resident := f.len()
	assert(resident <= f.capacity, "resident set exceeds capacity")
	assert(f.oldest.Len() == resident, "admission ring out of sync with index")
	if f.queued {
		assert(f.queue.Len() == resident, "arrival queue out of sync with index")
	}
}
