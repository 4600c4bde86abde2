package robot

import "math/rand/v2"

// FailureInjector simulates unreliable hardware.
type FailureInjector struct {
	rng *rand.Rand
}

// OneIn reports a failure one time in n: it draws a uniform integer in
// [0, n) and fails on 0. n <= 1 always fails.
func (f FailureInjector) OneIn(n int) bool {
	if n <= 1 {
		return true
	}
	return f.rng.IntN(n) == 0
}
