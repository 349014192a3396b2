package model

import (
	"crypto/rand"
	"fmt"
	"time"
)

// codeAlphabet excludes ambiguous characters (0/O, 1/I/L)
const codeAlphabet = "ABCDEFGHJKMNPQRSTUVWXYZ23456789"

const codeRandomLen = 4

// NewCode generates a unique project code of the form PRJ-YYYYMM-XXXX.
// It is generated once per draft and stays stable for the session.
func NewCode(now time.Time) string {
	buf := make([]byte, codeRandomLen)
	rand.Read(buf)

	suffix := make([]byte, codeRandomLen)
	for i, b := range buf {
		suffix[i] = codeAlphabet[int(b)%len(codeAlphabet)]
	}

	return fmt.Sprintf("PRJ-%04d%02d-%s", now.Year(), int(now.Month()), suffix)
}
