package guest

import (
	"crypto/rand"
	"encoding/base64"
	"errors"
)

var ErrInvalidToken = errors.New("invalid checkin token")

const tokenByteLength = 32

// CheckinToken is the opaque bearer credential encoded into a guest's QR
// code. Possession of the token grants the capability to confirm or check
// in the bound guest or group, and nothing else.
type CheckinToken struct {
	value string
}

// NewCheckinToken draws 32 bytes from crypto/rand and encodes them as
// unpadded base64url, the form embedded in QR payloads and public links.
func NewCheckinToken() (CheckinToken, error) {
	buf := make([]byte, tokenByteLength)
	if _, err := rand.Read(buf); err != nil {
		return CheckinToken{}, err
	}
	return CheckinToken{value: base64.RawURLEncoding.EncodeToString(buf)}, nil
}

// ParseCheckinToken validates the shape of an inbound token without
// resolving it. Length and alphabet only; existence is a storage lookup.
func ParseCheckinToken(value string) (CheckinToken, error) {
	raw, err := base64.RawURLEncoding.DecodeString(value)
	if err != nil || len(raw) != tokenByteLength {
		return CheckinToken{}, ErrInvalidToken
	}
	return CheckinToken{value: value}, nil
}

func (t CheckinToken) String() string { return t.value }
func (t CheckinToken) IsZero() bool   { return t.value == "" }
