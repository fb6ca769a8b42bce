package utils

import (
	"crypto/rand"
	"math/big"
)

const codeChars = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// CodeLength is the length of a meetup share code.
const CodeLength = 6

// GenerateMeetupCode produces a 6-character uppercase alphanumeric share
// code. Uniqueness is not guaranteed here; the unique index on meetups.code
// catches collisions and the caller retries.
func GenerateMeetupCode() (string, error) {
	buf := make([]byte, CodeLength)
	max := big.NewInt(int64(len(codeChars)))
	for i := range buf {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", err
		}
		buf[i] = codeChars[n.Int64()]
	}
	return string(buf), nil
}
