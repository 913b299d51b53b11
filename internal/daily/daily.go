// Package daily picks a deterministic answer for a calendar date.
package daily

import (
	"encoding/binary"
	"time"

	"golang.org/x/crypto/blake2b"
)

// DateKey returns YYYY-MM-DD in UTC.
func DateKey(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

// WordIndex returns a deterministic index for a date using a BLAKE2b-256 MAC
// of YYYY-MM-DD keyed by salt, reduced modulo answersLen.
func WordIndex(date time.Time, salt string, answersLen int) int {
	if answersLen <= 0 {
		return 0
	}
	key := []byte(salt)
	if len(key) > blake2b.Size {
		sum := blake2b.Sum256(key)
		key = sum[:]
	}
	h, err := blake2b.New256(key)
	if err != nil {
		// Only possible for keys over 64 bytes, handled above.
		panic(err)
	}
	h.Write([]byte(DateKey(date)))
	sum := h.Sum(nil)
	// take first 8 bytes to uint64 for modulus distribution
	n := binary.BigEndian.Uint64(sum[:8])
	return int(n % uint64(answersLen))
}

// Pick returns the answer for date from answers, or "" when the list is empty.
func Pick(date time.Time, salt string, answers []string) string {
	if len(answers) == 0 {
		return ""
	}
	return answers[WordIndex(date, salt, len(answers))]
}
