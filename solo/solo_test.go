package solo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStm32Crc32EmptyInput(t *testing.T) {
	assert.EqualValues(t, 0xFFFFFFFF, ComputeStm32Crc32(nil))
}

func TestStm32Crc32ZeroWord(t *testing.T) {
	c := NewStm32Crc32()
	c.Write([]byte{0x00, 0x00, 0x00, 0x00})
	// One full fold of a zero word starting from the init register: the
	// result is deterministic and differs from the untouched init value.
	assert.NotEqual(t, uint32(0xFFFFFFFF), c.Value())
}

func TestStm32Crc32PadsTrailingBytes(t *testing.T) {
	full := ComputeStm32Crc32([]byte{0x01, 0x00, 0x00, 0x00})
	partial := ComputeStm32Crc32([]byte{0x01})
	assert.Equal(t, full, partial)
}

func TestUploadRegionValidateBounds(t *testing.T) {
	assert.NoError(t, MmcStart.Validate(0xC2000080, 8))
	assert.Error(t, MmcStart.Validate(0xC2000080, 7)) // below size_min
	assert.Error(t, MmcStart.Validate(0xC2000081, 8)) // address misaligned

	assert.NoError(t, McuDevinfo.Validate(0xC5000000, 1))
	assert.Error(t, McuDevinfo.Validate(0xC5000080, 1)) // address past range
}

func TestDecryptIsInvolution(t *testing.T) {
	key := [8]byte{1, 2, 3, 4, 5, 6, 7, 8}
	deviceID := [12]byte{0x50, 0xFF, 0x68, 0x06, 0x48, 0x84, 0x53, 0x49, 0x17, 0x54, 0x08, 0x87}
	const timestamp = 0x0002C1C9

	plaintext := []byte("hello, solo log stream!!")
	ciphertext, err := Encrypt(key, deviceID, timestamp, plaintext)
	assert.NoError(t, err)
	assert.NotEqual(t, plaintext, ciphertext)

	recovered, err := Decrypt(key, deviceID, timestamp, ciphertext)
	assert.NoError(t, err)
	assert.Equal(t, plaintext, recovered)
}

// With timestamp 0 the LCG seed stays 0, so its byte contributes nothing
// and the output shows only the 24-byte DES key-block cycle.
func TestKeystreamPeriodIs24Bytes(t *testing.T) {
	key := [8]byte{1, 2, 3, 4, 5, 6, 7, 8}
	deviceID := [12]byte{}
	ks, err := NewLogKeystream(key, deviceID, 0)
	assert.NoError(t, err)

	zeros := make([]byte, 48)
	out := make([]byte, 48)
	ks.Apply(out, zeros)
	assert.Equal(t, out[0:24], out[24:48])
}

func TestDecodeUdsSecuritySeedGoldenVector(t *testing.T) {
	raw := []byte{
		0x87, 0xF7, 0xCA, 0x4F, 0x10, 0xC9, 0xC1, 0x02, 0x00,
		0x50, 0xFF, 0x68, 0x06, 0x48, 0x84, 0x53, 0x49, 0x17, 0x54, 0x08, 0x87,
	}
	seed, err := DecodeUdsSecuritySeed(raw)
	assert.NoError(t, err)
	assert.EqualValues(t, 0x4FCAF787, seed.Crc32Result)
	assert.EqualValues(t, 0x10, seed.Length)
	assert.EqualValues(t, 0x0002C1C9, seed.RtcTimestamp)
	assert.Equal(t, [12]byte{0x50, 0xFF, 0x68, 0x06, 0x48, 0x84, 0x53, 0x49, 0x17, 0x54, 0x08, 0x87}, seed.DeviceID)
}

func TestDecodeUdsSecuritySeedRejectsBadLength(t *testing.T) {
	_, err := DecodeUdsSecuritySeed([]byte{1, 2, 3})
	assert.Error(t, err)
}

func TestLogEntryIteratorLatchesKindAcrossSeparators(t *testing.T) {
	// A separator is all 0xFF, so the kind it latches (byte 10) is 0xFF.
	sep := func() []byte {
		e := make([]byte, 12)
		for i := range e {
			e[i] = 0xFF
		}
		return e
	}
	entry := func(payload byte, nextKind byte) []byte {
		e := make([]byte, 12)
		for i := 0; i < 8; i++ {
			e[i] = payload
		}
		e[10] = nextKind
		return e
	}

	var buf []byte
	buf = append(buf, sep()...)
	buf = append(buf, entry(0xAA, 0x02)...)
	buf = append(buf, entry(0xBB, 0x02)...)

	it := NewLogEntryIterator(buf)

	first, ok := it.Next()
	assert.True(t, ok)
	assert.Equal(t, byte(0xFF), first.Kind)
	assert.Equal(t, [8]byte{0xAA, 0xAA, 0xAA, 0xAA, 0xAA, 0xAA, 0xAA, 0xAA}, first.Payload)

	second, ok := it.Next()
	assert.True(t, ok)
	assert.Equal(t, byte(0x02), second.Kind)

	_, ok = it.Next()
	assert.False(t, ok)
}

func TestLogAssemblerHandlesChunksNotAlignedToEntrySize(t *testing.T) {
	entry := make([]byte, 12)
	entry[0] = 0x7A
	entry[10] = 0x03

	asm := NewLogAssembler(64)
	assert.True(t, asm.Feed(entry[0:5]))
	_, ok := asm.Next()
	assert.False(t, ok, "should not emit before a full 12-byte record is buffered")

	assert.True(t, asm.Feed(entry[5:12]))
	e, ok := asm.Next()
	assert.True(t, ok)
	assert.Equal(t, byte(0x7A), e.Payload[0])
}

func TestLogEntryIteratorDefaultsKindToZero(t *testing.T) {
	entry := make([]byte, 12)
	entry[0] = 0x42
	it := NewLogEntryIterator(entry)
	e, ok := it.Next()
	assert.True(t, ok)
	assert.Equal(t, byte(0x00), e.Kind)
}
