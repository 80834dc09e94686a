// Package uds implements the ISO 14229 protocol data unit layer carried
// over DiveCAN's ISO-TP transport: a read-only PDU view, a write-only PDU
// builder over a caller buffer, and per-service request/response codecs.
// Every codec here is allocation-free given a sufficient buffer.
package uds

import (
	"errors"
	"fmt"
)

// Address is the fixed DiveCAN UDS address byte carried at PDU offset 0.
const Address byte = 0x00

// NegativeResponseSid is the SID a negative response is tagged with.
const NegativeResponseSid byte = 0x7F

// DecodeError is the taxonomy of decode-time PDU errors.
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
		return fmt.Sprintf("uds: pdu too short, needed %d bytes", e.Needed)
	case BadLength:
		return fmt.Sprintf("uds: pdu has unexpected length, expected %d bytes", e.Needed)
	default:
		return "uds: pdu has invalid format"
	}
}

// ErrBufferTooSmall is the encode-side counterpart, returned by
// PduWriter.Push and service encoders when the destination buffer cannot
// hold the PDU.
type ErrBufferTooSmall struct {
	Needed   int
	Capacity int
}

func (e ErrBufferTooSmall) Error() string {
	return fmt.Sprintf("uds: buffer too small, needed %d, have %d", e.Needed, e.Capacity)
}

// NegativeResponse is the decoded {rejected_service, error_code} carried
// by a SID 0x7F response.
type NegativeResponse struct {
	Service byte
	Code    ErrorCode
}

// PduView borrows a byte slice and offers read-only accessors into it
// without copying.
type PduView struct {
	raw []byte
}

// NewPduView wraps raw for reading. raw is not copied.
func NewPduView(raw []byte) PduView {
	return PduView{raw: raw}
}

var errNoSid = DecodeError{Kind: TooShort, Needed: 2}

// Sid returns the PDU's service id (byte 1), failing if the PDU is
// shorter than 2 bytes.
func (v PduView) Sid() (byte, error) {
	if len(v.raw) < 2 {
		return 0, errNoSid
	}
	return v.raw[1], nil
}

// CheckPositive returns the decoded NegativeResponse when the PDU is a
// negative response (SID 0x7F and at least 4 bytes long); isNegative is
// false when the PDU should be treated as a positive response.
func (v PduView) CheckPositive() (resp NegativeResponse, isNegative bool) {
	if len(v.raw) < 4 {
		return NegativeResponse{}, false
	}
	if v.raw[1] != NegativeResponseSid {
		return NegativeResponse{}, false
	}
	return NegativeResponse{Service: v.raw[2], Code: ErrorCode(v.raw[3])}, true
}

// ExpectSid validates the PDU's SID and minimum length, returning the PDU
// body (everything after the 2-byte address+SID header) on success. Used
// by every codec's decode function.
func (v PduView) ExpectSid(sid byte, minLen int) ([]byte, error) {
	if len(v.raw) < 2 {
		return nil, DecodeError{Kind: TooShort, Needed: 2}
	}
	if v.raw[1] != sid {
		return nil, DecodeError{Kind: InvalidFormat}
	}
	if len(v.raw) < minLen {
		return nil, DecodeError{Kind: TooShort, Needed: minLen}
	}
	return v.raw[2:], nil
}

// Raw returns the full underlying PDU bytes.
func (v PduView) Raw() []byte { return v.raw }

// PduWriter borrows a mutable byte slice and builds a PDU into it without
// allocating.
type PduWriter struct {
	buf []byte
	n   int
}

// NewPduWriter wraps buf for writing. buf is not copied; its capacity
// bounds how large a PDU can be built.
func NewPduWriter(buf []byte) *PduWriter {
	return &PduWriter{buf: buf}
}

// SetHeader writes the DiveCAN UDS address byte and the service id at
// offsets 0 and 1, resetting the writer's length to 2.
func (w *PduWriter) SetHeader(sid byte) error {
	if len(w.buf) < 2 {
		return ErrBufferTooSmall{Needed: 2, Capacity: len(w.buf)}
	}
	w.buf[0] = Address
	w.buf[1] = sid
	w.n = 2
	return nil
}

// Push appends bytes to the PDU, failing with ErrBufferTooSmall if they
// don't fit.
func (w *PduWriter) Push(bytes []byte) error {
	if w.n+len(bytes) > len(w.buf) {
		return ErrBufferTooSmall{Needed: w.n + len(bytes), Capacity: len(w.buf)}
	}
	copy(w.buf[w.n:], bytes)
	w.n += len(bytes)
	return nil
}

// AsBytes returns the PDU built so far.
func (w *PduWriter) AsBytes() []byte { return w.buf[:w.n] }

// Len returns the number of bytes written so far.
func (w *PduWriter) Len() int { return w.n }

// ErrNegativeResponseTooShort is returned by MakeNegativeResponse when
// asked to build into a buffer shorter than 4 bytes.
var ErrNegativeResponseTooShort = errors.New("uds: buffer too small for negative response")

// MakeNegativeResponse writes a {0x00, 0x7F, service, code} PDU directly
// into buf and returns the written slice.
func MakeNegativeResponse(buf []byte, service byte, code ErrorCode) ([]byte, error) {
	if len(buf) < 4 {
		return nil, ErrNegativeResponseTooShort
	}
	buf[0] = Address
	buf[1] = NegativeResponseSid
	buf[2] = service
	buf[3] = byte(code)
	return buf[:4], nil
}
