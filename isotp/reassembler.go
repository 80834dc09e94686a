package isotp

import (
	"fmt"

	log "github.com/sirupsen/logrus"
)

// State is the reassembler's explicit two-state machine.
type State uint8

const (
	Idle State = iota
	Receiving
)

func (s State) String() string {
	if s == Receiving {
		return "receiving"
	}
	return "idle"
}

// FrameType names a PCI type for error reporting.
type FrameType uint8

const (
	FrameTypeSingle FrameType = iota
	FrameTypeFirst
	FrameTypeConsecutive
	FrameTypeFlowControl
)

func (t FrameType) String() string {
	switch t {
	case FrameTypeSingle:
		return "single"
	case FrameTypeFirst:
		return "first"
	case FrameTypeConsecutive:
		return "consecutive"
	case FrameTypeFlowControl:
		return "flow-control"
	default:
		return "unknown"
	}
}

// LengthMismatch is returned when a Single Frame's declared length
// disagrees with the containing link-layer frame's length.
type LengthMismatch struct {
	Declared int
	FrameLen int
}

func (e LengthMismatch) Error() string {
	return fmt.Sprintf("isotp: single frame declares %d bytes but frame carries %d", e.Declared, e.FrameLen)
}

// SequenceError is returned when a Consecutive Frame's sequence nibble
// does not match the reassembler's expected next_sn.
type SequenceError struct {
	Expected uint8
	Got      uint8
}

func (e SequenceError) Error() string {
	return fmt.Sprintf("isotp: expected sequence %d, got %d", e.Expected, e.Got)
}

// UnexpectedFrameType is returned when a frame type cannot occur in the
// reassembler's current state: a Consecutive Frame while Idle, or a Flow
// Control frame at any time (the reassembler never sends flow control
// itself, so it never expects to receive any either).
type UnexpectedFrameType struct {
	Expected FrameType
	Got      FrameType
}

func (e UnexpectedFrameType) Error() string {
	return fmt.Sprintf("isotp: expected %s frame, got %s", e.Expected, e.Got)
}

// ErrOverflow is returned when a First Frame declares more data than the
// reassembly buffer can hold, or a Consecutive Frame would push used data
// past the declared length or buffer capacity.
type errOverflow struct{}

func (errOverflow) Error() string { return "isotp: reassembly buffer overflow" }

var ErrOverflow error = errOverflow{}

// ResultKind discriminates the outcome of feeding a frame to the
// reassembler.
type ResultKind uint8

const (
	ResultNone ResultKind = iota
	ResultFlowControlRequired
	ResultCompleted
)

// Result is returned by OnFrame.
type Result struct {
	Kind ResultKind
	Len  int // meaningful only when Kind == ResultCompleted
}

// Reassembler is a frame-driven ISO-TP reassembly state machine. It owns
// a fixed-size buffer (at least 1024 bytes) supplied by the caller and
// never allocates.
type Reassembler struct {
	buf    []byte
	state  State
	used   int
	nextSn uint8
	// expected holds the First Frame's declared total length while
	// Receiving; -1 means "not set" (i.e. Idle).
	expected int
}

// NewReassembler creates a Reassembler over buf, which must be at least
// 1024 bytes and is owned by the Reassembler for the duration of its
// use.
func NewReassembler(buf []byte) *Reassembler {
	return &Reassembler{buf: buf, expected: -1}
}

// Reset returns the machine to Idle, discarding any partial reassembly.
// Callable at any time.
func (r *Reassembler) Reset() {
	r.state = Idle
	r.used = 0
	r.nextSn = 0
	r.expected = -1
}

// State reports the current reassembly state.
func (r *Reassembler) State() State { return r.state }

// Payload returns the bytes reassembled so far (or, after Completed, the
// full message).
func (r *Reassembler) Payload() []byte {
	return r.buf[:r.used]
}

// OnFrame feeds one ISO-TP link-layer frame to the state machine.
func (r *Reassembler) OnFrame(f Frame) (Result, error) {
	pciType, err := f.pciType()
	if err != nil {
		return Result{}, err
	}

	switch pciType {
	case pciSingleFrame:
		return r.onSingleFrame(f)
	case pciFirstFrame:
		return r.onFirstFrame(f)
	case pciConsecutiveFrame:
		return r.onConsecutiveFrame(f)
	default: // pciFlowControl
		expected := FrameTypeFirst
		if r.state == Receiving {
			expected = FrameTypeConsecutive
		}
		log.WithField("state", r.state).Warn("isotp: unexpected flow control frame")
		return Result{}, UnexpectedFrameType{Expected: expected, Got: FrameTypeFlowControl}
	}
}

// finishIdle returns the machine to Idle without discarding the bytes
// already written to buf, so Payload() still reflects the just-completed
// message until the next OnFrame or explicit Reset call.
func (r *Reassembler) finishIdle() {
	r.state = Idle
	r.nextSn = 0
	r.expected = -1
}

func (r *Reassembler) onSingleFrame(f Frame) (Result, error) {
	sfLen := int(f.Data[0] & 0x0F)
	if sfLen < 1 || sfLen > 7 || f.Len != 1+sfLen {
		return Result{}, LengthMismatch{Declared: sfLen, FrameLen: f.Len}
	}
	r.Reset()
	copy(r.buf[:sfLen], f.Data[1:1+sfLen])
	r.used = sfLen
	r.finishIdle() // single frame is complete on arrival; machine returns to Idle
	return Result{Kind: ResultCompleted, Len: sfLen}, nil
}

func (r *Reassembler) onFirstFrame(f Frame) (Result, error) {
	r.Reset()
	total := int(f.Data[0]&0x0F)<<8 | int(f.Data[1])
	if total > len(r.buf) {
		log.WithFields(log.Fields{"total": total, "capacity": len(r.buf)}).Warn("isotp: first frame exceeds buffer capacity")
		return Result{}, ErrOverflow
	}
	n := 6
	if n > total {
		n = total
	}
	copy(r.buf[:n], f.Data[2:2+n])
	r.used = n
	r.expected = total
	r.nextSn = 1
	r.state = Receiving
	log.WithField("total", total).Debug("isotp: first frame received, flow control required")
	return Result{Kind: ResultFlowControlRequired}, nil
}

func (r *Reassembler) onConsecutiveFrame(f Frame) (Result, error) {
	if r.state != Receiving {
		return Result{}, UnexpectedFrameType{Expected: FrameTypeFirst, Got: FrameTypeConsecutive}
	}
	seq := f.Data[0] & 0x0F
	if seq != r.nextSn {
		log.WithFields(log.Fields{"expected": r.nextSn, "got": seq}).Warn("isotp: sequence error")
		return Result{}, SequenceError{Expected: r.nextSn, Got: seq}
	}
	count := f.Len - 1
	if count < 0 {
		count = 0
	}
	if r.used+count > r.expected || r.used+count > len(r.buf) {
		return Result{}, ErrOverflow
	}
	copy(r.buf[r.used:r.used+count], f.Data[1:1+count])
	r.used += count
	r.nextSn = (r.nextSn + 1) % 16

	if r.used == r.expected {
		log.WithField("len", r.used).Debug("isotp: reassembly completed")
		completedLen := r.used
		r.finishIdle()
		return Result{Kind: ResultCompleted, Len: completedLen}, nil
	}
	return Result{Kind: ResultNone}, nil
}
