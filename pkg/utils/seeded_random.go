package utils

import "math"

// SeededRandom is a small linear-congruential generator. Two instances
// built from the same seed produce identical sequences, which is what
// makes plan generation reproducible per user. An instance is not safe
// for concurrent use; create one per generation call and do not share it.
type SeededRandom struct {
	state int64
}

func NewSeededRandom(seed int64) *SeededRandom {
	return &SeededRandom{state: seed}
}

// Next returns the next value in [0, 1).
func (r *SeededRandom) Next() float64 {
	r.state = (r.state*9301 + 49297) % 233280
	return float64(r.state) / 233280
}

// Random returns a value in [min, max).
func (r *SeededRandom) Random(min, max float64) float64 {
	return min + (max-min)*r.Next()
}

// RandomInt returns an integer in [min, max] inclusive.
func (r *SeededRandom) RandomInt(min, max int) int {
	return int(math.Floor(r.Random(float64(min), float64(max+1))))
}

// Shuffle returns a permuted copy; the input slice is left untouched.
func Shuffle[T any](r *SeededRandom, items []T) []T {
	shuffled := make([]T, len(items))
	copy(shuffled, items)
	for i := len(shuffled) - 1; i > 0; i-- {
		j := int(math.Floor(r.Next() * float64(i+1)))
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	}
	return shuffled
}

// Choice picks one element. The slice must be non-empty.
func Choice[T any](r *SeededRandom, items []T) T {
	return items[int(math.Floor(r.Next()*float64(len(items))))]
}

// UserSeed folds a user identifier into a stable non-negative seed.
// The fold is 32-bit (hash*31 + byte with two's-complement wraparound)
// so the same identifier yields the same seed on every platform.
func UserSeed(userID string) int64 {
	var hash int32
	for i := 0; i < len(userID); i++ {
		hash = hash*31 + int32(userID[i])
	}
	seed := int64(hash)
	if seed < 0 {
		seed = -seed
	}
	return seed
}
