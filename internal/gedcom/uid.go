package gedcom

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// NewUID generates a value for a new _UID field. Rather than an RFC 4122
// string it produces the form used by PAF, Legacy and RootsMagic: the
// upper-cased UUID without dashes, followed by a two-byte checksum.
func NewUID() string {
	id := uuid.New()
	return uidFromBytes(id[:])
}

func uidFromBytes(b []byte) string {
	s := strings.ToUpper(hex.EncodeToString(b))
	return s + uidChecksum(b)
}

// uidChecksum returns the last two hex digits of a, the sum of the bytes,
// and of b, the running sum of a's low byte.
func uidChecksum(b []byte) string {
	var sumA, sumB int
	for _, c := range b {
		sumA += int(c)
		sumB += sumA & 0xff
	}
	return fmt.Sprintf("%02X%02X", sumA&0xff, sumB&0xff)
}

// ValidUID reports whether uid is 36 hex digits whose last four are the
// checksum of the first 32.
func ValidUID(uid string) bool {
	if len(uid) != 36 {
		return false
	}
	b, err := hex.DecodeString(uid[:32])
	if err != nil {
		return false
	}
	if _, err := hex.DecodeString(uid[32:]); err != nil {
		return false
	}
	return strings.EqualFold(uid[32:], uidChecksum(b))
}
