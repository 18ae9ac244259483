package utils

import (
	"math/rand"
)

// Trace and span ids are the only randomized bytes in the minimal fixtures.
// They are always drawn from the generator's own seeded stream.

func RandomTraceId(rng *rand.Rand) []byte {
	id := make([]byte, 16)
	rng.Read(id)
	return id
}

func RandomSpanId(rng *rand.Rand) []byte {
	id := make([]byte, 8)
	rng.Read(id)
	return id
}
