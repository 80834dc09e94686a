// Package isotp implements ISO 15765-2 segmentation and reassembly over
// the single 8-byte-payload Uds DiveCAN message kind. It implements the
// classical addressing/frame types only: single frame (SF), first frame
// (FF), consecutive frame (CF), and flow control (FC) with
// continue-to-send and no throttle: no extended addressing, no CAN-FD,
// no block-size/STmin negotiation.
package isotp

import "errors"

// PCI (protocol control information) frame types, the high nibble of
// byte 0.
const (
	pciSingleFrame      uint8 = 0x0
	pciFirstFrame       uint8 = 0x1
	pciConsecutiveFrame uint8 = 0x2
	pciFlowControl      uint8 = 0x3
)

// ErrUnknownPciType is returned when byte 0's high nibble isn't one of
// the four classical PCI types.
var ErrUnknownPciType = errors.New("isotp: unknown PCI type")

// Frame is a single ISO-TP link-layer frame: up to 8 bytes, Len of which
// are meaningful. This mirrors the DiveCAN Uds message's fixed 8-byte
// payload.
type Frame struct {
	Len  int
	Data [8]byte
}

func (f Frame) pciType() (uint8, error) {
	if f.Len == 0 {
		return 0, ErrUnknownPciType
	}
	t := f.Data[0] >> 4
	if t > pciFlowControl {
		return 0, ErrUnknownPciType
	}
	return t, nil
}

// MakeFlowControlCTS builds a 3-byte ClearToSend flow control frame. The
// reassembler never sends flow control itself; callers that drive a send
// loop use this to unblock a peer's multi-frame send.
func MakeFlowControlCTS(blockSize uint8, stMin uint8) Frame {
	return Frame{Len: 3, Data: [8]byte{0x30, blockSize, stMin}}
}
