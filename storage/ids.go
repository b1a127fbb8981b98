package storage

import (
	"math/rand"
	"strconv"
	"time"
)

const idSuffixAlphabet = "0123456789abcdefghijklmnopqrstuvwxyz"

// GenerateID returns a millisecond timestamp with a random base36 suffix.
// Uniqueness is probabilistic; with a single active writer and low volume the
// collision risk is negligible.
func GenerateID() string {
	suffix := make([]byte, 9)
	for i := range suffix {
		suffix[i] = idSuffixAlphabet[rand.Intn(len(idSuffixAlphabet))]
	}
	return strconv.FormatInt(time.Now().UnixMilli(), 10) + string(suffix)
}

const isoMillis = "2006-01-02T15:04:05.000Z07:00"

// nowISO returns the current UTC time in the ISO-8601 millisecond form
// existing records already use.
func nowISO() string {
	return time.Now().UTC().Format(isoMillis)
}
