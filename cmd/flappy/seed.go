package main

import (
	"strconv"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
)

// parseSeed turns the --seed flag into an RNG seed. Integers, 0 included,
// are used as is; any other text is hashed so that phrases are
// reproducible too. ok is false when no seed was given.
func parseSeed(s string) (seed int64, ok bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return n, true
	}
	return int64(xxhash.Sum64String(s)), true
}

// resolveSeed is parseSeed with the current time standing in for a missing seed.
func resolveSeed(s string) int64 {
	if seed, ok := parseSeed(s); ok {
		return seed
	}
	return time.Now().UnixNano()
}
