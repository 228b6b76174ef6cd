// Package pagesim simulates demand paging under a fixed number of page frames,
// one reference at a time.
//
// A [Simulation] is given a frame capacity, a replacement [Policy]
// and a reference sequence up front. Each call to [Simulation.Advance]
// processes the next reference and reports it as a [Step]: whether the
// page was already resident (a hit) or not (a fault), which page was
// evicted to make room (if any), and the resident pages afterwards.
// Once the sequence is exhausted, [Simulation.Summary] reports the
// fault count and hit ratio of the run.
//
// The caller owns pacing: the engine never blocks or sleeps,
// so a renderer may step it on a timer or run it all at once.
//
// Glossary and invariants:
//
//   - Page is any comparable identifier, typically an int.
//
//   - Frame holds one resident page; capacity is the number of frames.
//
//     Fixed for the lifetime of a simulation, at least [MinimumCapacity].
//
//   - Fault (miss) is a reference to a page that is not resident.
//
//     The very first reference of a run is always a fault.
//
//   - Victim is the resident page evicted on a fault while every frame is occupied.
//
//   - Recency stamp is the step index of a page's last reference.
//
//     Only LRU and MRU stamp pages; stamps are updated on hits and faults alike.
//
//   - Hit ratio is 1 - faults/steps.
//
//     Undefined (and reported as an error) for an empty sequence.
//
// Resident set:
//
//   - 0 < residents ≤ capacity after the first step.
//
//   - Residents are reported in admission order.
//
//   - Under FIFO every resident page is in the arrival queue;
//     under LRU and MRU every resident page carries a stamp.
//     Evicting a page removes it from all of these.
//
// Policies:
//
//   - FIFO evicts the front of the arrival queue.
//
//   - LRU evicts the smallest recency stamp, MRU the largest.
//
//     Stamps are unique step indices, so neither can tie.
//
//   - Optimal evicts the resident page whose next reference is furthest away,
//     treating "never again" as infinitely far.
//
//     Ties between pages that are never referenced again are broken
//     in favour of the earliest admitted page.
//     Victim selection costs O(capacity × remaining references).
package pagesim
