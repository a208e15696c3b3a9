// Package shuffle - Source factories shared by every randomized stage.
//
// Goals:
//   - Determinism on request: same seed ⇒ identical permutations.
//   - Encapsulation: seeded sources come from one factory; nothing reads the
//     clock behind the caller's back.
//   - No panics or logging.
//
// Concurrency:
//   - *rand.Rand is NOT goroutine-safe. Do not share a seeded Source across goroutines.
//   - System() is safe to share.
package shuffle

import "math/rand"

// defaultSeed replaces seed==0 so that the zero value is still reproducible.
const defaultSeed int64 = 1

// NewSource returns a deterministic Source.
// Policy: seed==0 ⇒ defaultSeed; otherwise the seed is used verbatim.
//
// Complexity: O(1).
func NewSource(seed int64) *rand.Rand {
	s := seed
	if s == 0 {
		s = defaultSeed
	}
	return rand.New(rand.NewSource(s))
}

// DeriveSource creates an independent deterministic stream from a parent Source
// and a stream identifier, e.g. one per worker or per corpus shard.
// parent==nil uses defaultSeed as the parent.
//
// Complexity: O(1).
func DeriveSource(parent Source, stream uint64) *rand.Rand {
	var p int64
	if parent == nil {
		p = defaultSeed
	} else {
		// Two 30-bit draws keep the bound valid where int is 32 bits wide.
		p = int64(parent.Intn(1<<30))<<30 | int64(parent.Intn(1<<30))
	}
	return rand.New(rand.NewSource(deriveSeed(p, stream)))
}

// deriveSeed mixes a parent seed and a stream identifier with the
// SplitMix64 finalizer.
func deriveSeed(parent int64, stream uint64) int64 {
	var x uint64
	x = uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31
	return int64(x)
}

// systemSource delegates to the process-wide math/rand generator, which is
// seeded randomly at start-up and guarded by its own lock.
type systemSource struct{}

func (systemSource) Intn(n int) int { return rand.Intn(n) }

func (systemSource) Shuffle(n int, swap func(i, j int)) { rand.Shuffle(n, swap) }

// System returns the non-deterministic, goroutine-safe Source.
func System() Source {
	return systemSource{}
}

// shuffleWindow shuffles xs in place using src.
func shuffleWindow(xs []int, src Source) {
	if len(xs) <= 1 {
		return
	}
	src.Shuffle(len(xs), func(i, j int) {
		xs[i], xs[j] = xs[j], xs[i]
	})
}
