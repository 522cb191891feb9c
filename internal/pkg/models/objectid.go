package models

import (
	"crypto/rand"
	"encoding/binary"
	"encoding/hex"
	"errors"
	"fmt"
	"sync/atomic"
	"time"
)

// ObjectID is a 12-byte opaque identifier rendered as 24 lowercase hex characters
type ObjectID [12]byte

// NilObjectID is the zero identifier
var NilObjectID ObjectID

// ErrInvalidObjectID is returned when a string cannot be decoded into an ObjectID
var ErrInvalidObjectID = errors.New("invalid object id")

var (
	objectIDCounter = randomUint32()
	processUnique   = randomProcessBytes()
)

// NewObjectID generates an ObjectID from the current time, a per-process random value and a counter
func NewObjectID() ObjectID {
	var id ObjectID
	binary.BigEndian.PutUint32(id[0:4], uint32(time.Now().Unix()))
	copy(id[4:9], processUnique[:])

	c := atomic.AddUint32(&objectIDCounter, 1)
	id[9] = byte(c >> 16)
	id[10] = byte(c >> 8)
	id[11] = byte(c)
	return id
}

// ParseObjectID decodes a 24-character hex string
func ParseObjectID(s string) (ObjectID, error) {
	var id ObjectID
	if len(s) != 24 {
		return NilObjectID, fmt.Errorf("%w: %q must be 24 hex characters", ErrInvalidObjectID, s)
	}
	if _, err := hex.Decode(id[:], []byte(s)); err != nil {
		return NilObjectID, fmt.Errorf("%w: %q", ErrInvalidObjectID, s)
	}
	return id, nil
}

// MustParseObjectID is ParseObjectID for constants and tests
func MustParseObjectID(s string) ObjectID {
	id, err := ParseObjectID(s)
	if err != nil {
		panic(err)
	}
	return id
}

// Hex returns the hex encoding of the identifier
func (id ObjectID) Hex() string {
	return hex.EncodeToString(id[:])
}

// String implements fmt.Stringer
func (id ObjectID) String() string {
	return id.Hex()
}

// IsZero reports whether the identifier is unset
func (id ObjectID) IsZero() bool {
	return id == NilObjectID
}

// MarshalText implements encoding.TextMarshaler
func (id ObjectID) MarshalText() ([]byte, error) {
	return []byte(id.Hex()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (id *ObjectID) UnmarshalText(b []byte) error {
	parsed, err := ParseObjectID(string(b))
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}

func randomUint32() uint32 {
	var b [4]byte
	if _, err := rand.Read(b[:]); err != nil {
		panic(fmt.Errorf("cannot initialize object id counter: %w", err))
	}
	return binary.BigEndian.Uint32(b[:])
}

func randomProcessBytes() [5]byte {
	var b [5]byte
	if _, err := rand.Read(b[:]); err != nil {
		panic(fmt.Errorf("cannot initialize object id process bytes: %w", err))
	}
	return b
}
