package pagesim_test

import (
	"fmt"
	"math/bits"
	"math/rand"
	"testing"

	"github.com/hashicorp/golang-lru/arc/v2"

	pagesim "github.com/djdv/go-pagesim"
)

type (
	// replayer runs a whole sequence and returns its fault count.
	replayer     = func(b *testing.B, capacity int, sequence []int) func() int
	replayerCtor struct {
		name string
		new  replayer
	}
	patternGen    = func(capacity int) []int
	accessPattern struct {
		name string
		gen  patternGen
	}
)

// Fixed RNG seed for reproducibility.
// Change to test variance between runs.
const rngSeed = 1

func BenchmarkSimulation(b *testing.B) {
	b.Run("Advance overhead", advanceOverhead)
	var (
		replayers  = replayerConstructors()
		capacities = []int{8, 32, 128}
		patterns   = accessPatterns()
	)
	runPatterns(b, replayers, capacities, patterns)
}

func replayerConstructors() []replayerCtor {
	ctors := make([]replayerCtor, 0, len(pagesim.Policies())+1)
	for _, policy := range pagesim.Policies() {
		ctors = append(ctors, replayerCtor{
			policy.String(),
			func(b *testing.B, capacity int, sequence []int) func() int {
				sim, err := pagesim.New(capacity, policy, sequence)
				if err != nil {
					b.Fatal(err)
				}
				return func() int {
					sim.Reset()
					for range sim.Steps() {
					}
					return sim.Faults()
				}
			},
		})
	}
	return append(ctors, replayerCtor{
		"ARC",
		func(b *testing.B, capacity int, sequence []int) func() int {
			return func() int {
				cache, err := arc.NewARC[int, struct{}](capacity)
				if err != nil {
					b.Fatal(err)
				}
				var faults int
				for _, page := range sequence {
					if _, ok := cache.Get(page); !ok {
						faults++
						cache.Add(page, struct{}{})
					}
				}
				return faults
			}
		},
	})
}

func accessPatterns() []accessPattern {
	const seqLen = 1 << 11
	return []accessPattern{
		{
			"Sequential scan",
			func(capacity int) []int {
				// Loop just past the frame count.
				return makeSequential(capacity+capacity/2, seqLen)
			},
		},
		{
			"Loop working set",
			func(capacity int) []int {
				const hotRatio = 0.9 // 90% of accesses hit hot set.
				return makeLooping(capacity, capacity*8, seqLen, hotRatio)
			},
		},
		{
			"Zipf",
			func(capacity int) []int {
				const (
					skew = 1.2
					bias = 1.0
				)
				return makeZipf(capacity*16, seqLen, skew, bias)
			},
		},
		{
			"Uniform random",
			func(capacity int) []int {
				var (
					rng        = newReproducibleRNG()
					upperBound = capacity * 4 // Universe bigger than capacity.
				)
				return makeRandomSequence(rng, upperBound, nextPow2(seqLen))
			},
		},
	}
}

func runPatterns(b *testing.B, replayers []replayerCtor, capacities []int, patterns []accessPattern) {
	for _, pattern := range patterns {
		b.Run(pattern.name, newBenchPattern(
			pattern.gen, capacities, replayers,
		))
	}
}

func newBenchPattern(
	genPattern patternGen, capacities []int,
	replayers []replayerCtor,
) func(b *testing.B) {
	return func(b *testing.B) {
		for _, capacity := range capacities {
			var (
				name     = fmt.Sprintf("Frames%d", capacity)
				sequence = genPattern(capacity)
			)
			b.Run(name, newBenchCapacity(
				replayers, capacity, sequence,
			))
		}
	}
}

func newBenchCapacity(
	replayers []replayerCtor, capacity int,
	sequence []int,
) func(b *testing.B) {
	return func(b *testing.B) {
		for _, replayer := range replayers {
			b.Run(replayer.name, newBenchReplay(
				replayer.new, capacity, sequence,
			))
		}
	}
}

func newBenchReplay(
	ctor replayer, capacity int,
	sequence []int,
) func(b *testing.B) {
	return func(b *testing.B) {
		var (
			replay = ctor(b, capacity, sequence)
			faults int
		)
		b.ReportAllocs()
		b.ResetTimer()
		for b.Loop() {
			faults = replay()
		}
		b.StopTimer()
		var (
			total     = float64(len(sequence))
			faultRate = float64(faults) / total * 100.0
		)
		b.ReportMetric(faultRate, "fault_rate_pct")
		b.ReportMetric(100.0-faultRate, "hit_rate_pct")
	}
}

func advanceOverhead(b *testing.B) {
	const (
		capacity   = 64
		upperBound = capacity * 2
		keyCount   = 1 << 16 // Much larger than capacity to mix hits/misses.
	)
	for _, policy := range []pagesim.Policy{pagesim.FIFO, pagesim.LRU, pagesim.MRU} {
		b.Run(policy.String(), func(b *testing.B) {
			var (
				rng      = newReproducibleRNG()
				sequence = makeRandomSequence(rng, upperBound, keyCount)
				sim, err = pagesim.New(capacity, policy, sequence)
			)
			if err != nil {
				b.Fatal(err)
			}
			b.ReportAllocs()
			for b.Loop() {
				if sim.Done() {
					sim.Reset()
				}
				if _, err := sim.Advance(); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func makeSequential(universe, seqLen int) []int {
	seq := make([]int, nextPow2(seqLen))
	for i := range seq {
		seq[i] = i % universe
	}
	return seq
}

func makeLooping(capacity, universe, seqLen int, hotRatio float64) []int {
	var (
		seq      = make([]int, nextPow2(seqLen))
		rng      = newReproducibleRNG()
		hotSize  = max(1, capacity)
		coldSize = max(1, universe-hotSize)
	)
	for i := range seq {
		if rng.Float64() < hotRatio {
			seq[i] = rng.Intn(hotSize)
		} else {
			seq[i] = hotSize + rng.Intn(coldSize)
		}
	}
	return seq
}

func makeZipf(universe, seqLen int, skew, bias float64) []int {
	var (
		seq  = make([]int, nextPow2(seqLen))
		rng  = newReproducibleRNG()
		imax = uint64(max(universe, 2) - 1)
		zipf = rand.NewZipf(rng, skew, bias, imax)
	)
	for i := range seq {
		seq[i] = int(zipf.Uint64())
	}
	return seq
}

func makeRandomSequence(rng *rand.Rand, upperBound, length int) []int {
	pages := make([]int, length)
	for i := range pages {
		pages[i] = rng.Intn(upperBound)
	}
	return pages
}

func nextPow2(x int) int {
	if x <= 1 {
		return 1
	}
	return 1 << bits.Len(uint(x)-1)
}

func newReproducibleRNG() *rand.Rand {
	return rand.New(rand.NewSource(rngSeed))
}
