package fsrs

import (
	"encoding/binary"
	"hash/fnv"
	"math"
	"math/rand"
	"time"
)

// fuzzTier widens the fuzz window by factor for the part of an interval in [start, end).
type fuzzTier struct {
	start, end, factor float64
}

var fuzzTiers = []fuzzTier{
	{start: 2.5, end: 7.0, factor: 0.15},
	{start: 7.0, end: 20.0, factor: 0.10},
	{start: 20.0, end: math.MaxFloat64, factor: 0.05},
}

// fuzzBounds returns the inclusive range an interval may be fuzzed into.
func fuzzBounds(interval, elapsedDays, maxInterval float64) (lo, hi int) {
	if interval < 2.5 {
		n := int(math.Round(interval))
		return n, n
	}

	delta := 1.0
	for _, t := range fuzzTiers {
		delta += t.factor * math.Max(math.Min(interval, t.end)-t.start, 0)
	}

	lo = max(2, int(math.Round(interval-delta)))
	hi = int(math.Round(interval + delta))

	if interval > elapsedDays && lo <= int(elapsedDays) {
		lo = int(elapsedDays) + 1
	}
	hi = min(hi, int(maxInterval))
	lo = min(lo, hi)
	return lo, hi
}

// applyFuzz picks a value inside fuzzBounds using seed. The same seed always
// picks the same value.
func applyFuzz(interval, elapsedDays, maxInterval float64, seed int64) float64 {
	if interval < 2.5 {
		return interval
	}
	lo, hi := fuzzBounds(interval, elapsedDays, maxInterval)
	if lo == hi {
		return float64(lo)
	}
	//nolint:gosec // schedule jitter, not security sensitive
	rng := rand.New(rand.NewSource(seed))
	return float64(lo + rng.Intn(hi-lo+1))
}

// FuzzSeed derives a seed from the review inputs with FNV-1a.
func FuzzSeed(now time.Time, reps int, difficulty, stability float64) int64 {
	h := fnv.New64a()
	var b [8]byte
	for _, v := range []uint64{
		uint64(now.Unix()),
		uint64(reps),
		math.Float64bits(difficulty),
		math.Float64bits(stability),
	} {
		binary.LittleEndian.PutUint64(b[:], v)
		h.Write(b[:])
	}
	return int64(h.Sum64())
}
