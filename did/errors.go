// Package did implements the typed ISO 14229 data-identifier codecs
// DiveCAN devices expose over RDBI/WDBI: fixed-layout device DIDs,
// the bit-packed SoloConfig word, and the user-setting addressing/payload
// scheme.
package did

import "fmt"

// DecodeError is the did package's own TooShort/BadLength/InvalidFormat
// taxonomy, kept distinct from uds.DecodeError since a DID payload's
// length requirements are unrelated to the UDS PDU header that carried
// it.
type DecodeError struct {
	Kind   DecodeErrorKind
	Needed int
}

type DecodeErrorKind uint8

const (
	TooShort DecodeErrorKind = iota
	BadLength
	InvalidFormat
)

func (e DecodeError) Error() string {
	switch e.Kind {
	case TooShort:
		return fmt.Sprintf("did: payload too short, needed %d bytes", e.Needed)
	case BadLength:
		return fmt.Sprintf("did: payload has unexpected length, expected %d bytes", e.Needed)
	default:
		return "did: payload has invalid format"
	}
}

// AccessClass describes whether a DID may be read, written, or both.
type AccessClass uint8

const (
	ReadOnly AccessClass = iota
	WriteOnly
	ReadWrite
)

func (a AccessClass) String() string {
	switch a {
	case ReadOnly:
		return "ReadOnly"
	case WriteOnly:
		return "WriteOnly"
	case ReadWrite:
		return "ReadWrite"
	default:
		return "Unknown"
	}
}

// User-setting error taxonomy.
type ErrUnknownDid struct{ Did uint16 }

func (e ErrUnknownDid) Error() string { return fmt.Sprintf("did: unknown user-setting did 0x%04X", e.Did) }

type ErrBadSettingType struct{ Kind byte }

func (e ErrBadSettingType) Error() string { return fmt.Sprintf("did: bad user-setting type 0x%02X", e.Kind) }

type ErrBadEnumIndex struct{ Index byte }

func (e ErrBadEnumIndex) Error() string { return fmt.Sprintf("did: enum index %d out of range", e.Index) }

type ErrTooLong struct{ Max int }

func (e ErrTooLong) Error() string { return fmt.Sprintf("did: value exceeds max length %d", e.Max) }
