package pagesim

import (
	"math"
	"slices"
	"strconv"
	"strings"
)

// Policy selects the page replacement algorithm of a [Simulation].
type Policy uint8

const (
	// FIFO evicts the page that was admitted earliest.
	FIFO Policy = iota + 1
	// LRU evicts the page whose last reference is the oldest.
	LRU
	// MRU evicts the page whose last reference is the newest.
	MRU
	// Optimal evicts the page whose next reference is the furthest
	// in the future (Bélády's algorithm).
	// Each fault scans the remaining sequence once per resident page,
	// so it is only suited to short reference strings.
	Optimal
)

// Policies lists every supported [Policy].
func Policies() []Policy { return []Policy{FIFO, LRU, MRU, Optimal} }

// ParsePolicy returns the policy with the given name.
// Names are matched case-insensitively.
func ParsePolicy(name string) (Policy, error) {
	trimmed := strings.TrimSpace(name)
	for _, policy := range Policies() {
		if strings.EqualFold(trimmed, policy.String()) {
			return policy, nil
		}
	}
	return 0, unknownPolicyError(trimmed)
}

func (p Policy) String() string {
	switch p {
	case FIFO:
		return "FIFO"
	case LRU:
		return "LRU"
	case MRU:
		return "MRU"
	case Optimal:
		return "Optimal"
	default:
		return "Policy(" + strconv.Itoa(int(p)) + ")"
	}
}

// Description explains, in one sentence, which page the policy replaces.
func (p Policy) Description() string {
	switch p {
	case FIFO:
		return "FIFO (First-In-First-Out): Replaces the oldest page in memory, the one that came in first."
	case LRU:
		return "LRU (Least Recently Used): Replaces the page that has not been used for the longest time."
	case MRU:
		return "MRU (Most Recently Used): Replaces the page that was most recently used."
	case Optimal:
		return "Optimal: Replaces the page that will not be used for the longest period in the future."
	default:
		return ""
	}
}

func (p Policy) valid() bool { return p >= FIFO && p <= Optimal }

// queues reports if the policy tracks arrival order.
func (p Policy) queues() bool { return p == FIFO }

// stamps reports if the policy tracks reference recency.
func (p Policy) stamps() bool { return p == LRU || p == MRU }

type (
	// victimSelector picks the resident page to evict.
	// It is only consulted on a fault while every frame is occupied,
	// and must not modify the frames.
	victimSelector[Page comparable] interface {
		selectVictim(residents *frames[Page], future []Page) Page
	}
	fifoSelector[Page comparable]    struct{}
	lruSelector[Page comparable]     struct{}
	mruSelector[Page comparable]     struct{}
	optimalSelector[Page comparable] struct{}
)

func newSelector[Page comparable](policy Policy) victimSelector[Page] {
	switch policy {
	case FIFO:
		return fifoSelector[Page]{}
	case LRU:
		return lruSelector[Page]{}
	case MRU:
		return mruSelector[Page]{}
	case Optimal:
		return optimalSelector[Page]{}
	default:
		return nil
	}
}

func (fifoSelector[Page]) selectVictim(residents *frames[Page], _ []Page) Page {
	return residents.queue.Front()
}

// Recency stamps are the step indices of distinct references,
// so two resident pages never share one.

func (lruSelector[Page]) selectVictim(residents *frames[Page], _ []Page) Page {
	var victim *frame[Page]
	for element := range residents.elements() {
		if victim == nil || element.Referenced < victim.Referenced {
			victim = element
		}
	}
	return victim.Page
}

func (mruSelector[Page]) selectVictim(residents *frames[Page], _ []Page) Page {
	var victim *frame[Page]
	for element := range residents.elements() {
		if victim == nil || element.Referenced > victim.Referenced {
			victim = element
		}
	}
	return victim.Page
}

// Ties can only occur between pages that are never referenced again;
// the earliest admitted of those is chosen.
func (optimalSelector[Page]) selectVictim(residents *frames[Page], future []Page) Page {
	var (
		victim   Page
		farthest = -1
	)
	for page := range residents.pages() {
		next := nextUse(future, page)
		if next > farthest {
			farthest = next
			victim = page
		}
		if next == math.MaxInt {
			break
		}
	}
	return victim
}

// nextUse returns the distance to the next reference of page,
// or [math.MaxInt] if it is never referenced again.
func nextUse[Page comparable](future []Page, page Page) int {
	if next := slices.Index(future, page); next != -1 {
		return next
	}
	return math.MaxInt
}
