package isotp

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func segmentAll(payload []byte) []Frame {
	seg := NewSegmenter(payload)
	var frames []Frame
	for {
		f, ok := seg.Next()
		if !ok {
			break
		}
		frames = append(frames, f)
	}
	return frames
}

func TestSegmenterSingleFrame(t *testing.T) {
	frames := segmentAll([]byte{1, 2, 3})
	assert.Len(t, frames, 1)
	assert.Equal(t, 4, frames[0].Len)
	assert.Equal(t, uint8(0x03), frames[0].Data[0])
}

func TestSegmenterMultiFrameGoldenVector(t *testing.T) {
	payload := []byte{0x00, 0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08, 0x09, 0x0A}
	frames := segmentAll(payload)
	assert.Len(t, frames, 2)

	assert.Equal(t, 8, frames[0].Len)
	assert.Equal(t, [8]byte{0x10, 0x0B, 0x00, 0x01, 0x02, 0x03, 0x04, 0x05}, frames[0].Data)

	assert.Equal(t, 6, frames[1].Len)
	assert.Equal(t, byte(0x21), frames[1].Data[0])
	assert.Equal(t, []byte{0x06, 0x07, 0x08, 0x09, 0x0A}, frames[1].Data[1:6])
}

func feedAll(t *testing.T, r *Reassembler, frames []Frame) (Result, error) {
	t.Helper()
	var last Result
	for i, f := range frames {
		res, err := r.OnFrame(f)
		if err != nil {
			return res, err
		}
		if res.Kind == ResultFlowControlRequired && i != len(frames)-1 {
			// Caller would send FC here; the reassembler doesn't need to
			// see it, so just continue feeding consecutive frames.
			continue
		}
		last = res
	}
	return last, nil
}

func TestMultiFrameLengths(t *testing.T) {
	for _, l := range []int{1, 7, 8, 100, 1024} {
		payload := make([]byte, l)
		for i := range payload {
			payload[i] = byte(i)
		}
		frames := segmentAll(payload)

		buf := make([]byte, 1024)
		r := NewReassembler(buf)
		result, err := feedAll(t, r, frames)
		assert.NoError(t, err, "len=%d", l)
		assert.Equal(t, ResultCompleted, result.Kind, "len=%d", l)
		assert.Equal(t, l, result.Len, "len=%d", l)
		assert.Equal(t, payload, r.Payload(), "len=%d", l)
		assert.Equal(t, Idle, r.State(), "len=%d", l)
	}
}

func TestOutOfOrderConsecutiveFrame(t *testing.T) {
	payload := make([]byte, 100)
	frames := segmentAll(payload)
	assert.GreaterOrEqual(t, len(frames), 3)

	buf := make([]byte, 1024)
	r := NewReassembler(buf)

	_, err := r.OnFrame(frames[0]) // FF
	assert.NoError(t, err)

	// Skip a sequence number.
	bad := frames[2]
	bad.Data[0] = (bad.Data[0] & 0xF0) | ((bad.Data[0] + 1) & 0x0F)
	_, err = r.OnFrame(bad)
	assert.Error(t, err)
	var seqErr SequenceError
	assert.ErrorAs(t, err, &seqErr)
}

func TestConsecutiveFrameWhileIdleIsUnexpected(t *testing.T) {
	buf := make([]byte, 1024)
	r := NewReassembler(buf)
	_, err := r.OnFrame(Frame{Len: 8, Data: [8]byte{0x21, 1, 2, 3, 4, 5, 6, 7}})
	var unexpected UnexpectedFrameType
	assert.ErrorAs(t, err, &unexpected)
}

func TestFlowControlFrameAlwaysUnexpected(t *testing.T) {
	buf := make([]byte, 1024)
	r := NewReassembler(buf)
	_, err := r.OnFrame(Frame{Len: 3, Data: [8]byte{0x30, 0, 0}})
	var unexpected UnexpectedFrameType
	assert.ErrorAs(t, err, &unexpected)
}

func TestFirstFrameExceedingBufferOverflows(t *testing.T) {
	buf := make([]byte, 8)
	r := NewReassembler(buf)
	f := Frame{Len: 8, Data: [8]byte{0x10, 0x64, 0, 0, 0, 0, 0, 0}} // declares 100 bytes
	_, err := r.OnFrame(f)
	assert.ErrorIs(t, err, ErrOverflow)
}

func TestSingleFrameLengthMismatch(t *testing.T) {
	buf := make([]byte, 1024)
	r := NewReassembler(buf)
	// Declares 3 bytes (1+3=4 expected frame length) but the containing
	// frame reports length 5: mismatch.
	f := Frame{Len: 5, Data: [8]byte{0x03, 1, 2, 3}}
	_, err := r.OnFrame(f)
	assert.Error(t, err)
	var mismatch LengthMismatch
	assert.ErrorAs(t, err, &mismatch)
}

func TestMakeFlowControlCTS(t *testing.T) {
	f := MakeFlowControlCTS(0, 0)
	assert.Equal(t, 3, f.Len)
	assert.Equal(t, [8]byte{0x30, 0, 0, 0, 0, 0, 0, 0}, f.Data)
}
