package divecan

import "errors"

// Frame errors. Decoding errors are returned from TryFromFrame and friends
// rather than this sentinel, which is specific to frame construction.
var (
	// ErrInvalidDlc is returned by NewFrame when dlc exceeds 8.
	ErrInvalidDlc = errors.New("divecan: dlc exceeds 8")
)

// Frame is a raw DiveCAN CAN frame: the message kind (carried in the CAN
// identifier, not the payload), a data length code, and up to 8 payload
// bytes. Bytes past Dlc are always zero once constructed through NewFrame
// or emitted by Msg.ToFrame.
type Frame struct {
	Kind uint8
	Dlc  uint8
	Data [8]byte
}

// NewFrame builds a Frame, zeroing any payload bytes past dlc. It fails
// with ErrInvalidDlc if dlc is greater than 8.
func NewFrame(kind uint8, dlc uint8, data [8]byte) (Frame, error) {
	if dlc > 8 {
		return Frame{}, ErrInvalidDlc
	}
	for i := int(dlc); i < 8; i++ {
		data[i] = 0
	}
	return Frame{Kind: kind, Dlc: dlc, Data: data}, nil
}

// Payload returns the frame's dlc-sized payload slice.
func (f Frame) Payload() []byte {
	return f.Data[:f.Dlc]
}
