package supplier

import "math/rand"

// RandomPicker picks uniformly using the process-wide random source
type RandomPicker struct{}

// NewRandomPicker creates a new uniform picker
func NewRandomPicker() *RandomPicker {
	return &RandomPicker{}
}

// Pick returns an index in [0, n)
func (RandomPicker) Pick(n int) int {
	return rand.Intn(n)
}
