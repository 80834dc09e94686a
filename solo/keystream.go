package solo

import (
	"crypto/des"
	"encoding/binary"
)

// keystreamBlockLen is the cycle length of the DES key bytes: three DES
// blocks of 8 bytes each. The LCG byte mixed into each output byte does
// not repeat with this period.
const keystreamBlockLen = 24

var keystreamConstBlock = [8]byte{0xDA, 0x65, 0x20, 0x33, 0xC8, 0x57, 0x40, 0xD3}

// LogKeystream generates the DES+LCG byte stream that XORs with a
// device's persisted log to decrypt it (or, applied to plaintext, to
// encrypt it). It is seekable only from the start: every byte depends on the LCG
// state produced by every byte before it.
type LogKeystream struct {
	blocks [3][8]byte
	seed   uint64
	pos    int
}

// NewLogKeystream builds the three key blocks from deviceID and
// timestamp and encrypts them in place with key under DES-ECB.
func NewLogKeystream(key [8]byte, deviceID [12]byte, timestamp uint32) (*LogKeystream, error) {
	cipher, err := des.NewCipher(key[:])
	if err != nil {
		return nil, err
	}

	var ks LogKeystream
	copy(ks.blocks[0][:], deviceID[0:8])
	copy(ks.blocks[1][0:4], deviceID[8:12])
	binary.LittleEndian.PutUint32(ks.blocks[1][4:8], timestamp)
	ks.blocks[2] = keystreamConstBlock

	for i := range ks.blocks {
		cipher.Encrypt(ks.blocks[i][:], ks.blocks[i][:])
	}

	ks.seed = uint64(timestamp)
	return &ks, nil
}

// Apply XORs src into dst (which may alias src) using the keystream,
// advancing the stream's position by len(src). Calling Apply twice in a
// row on the same plaintext/ciphertext pair with a fresh LogKeystream of
// the same parameters recovers the original bytes.
func (ks *LogKeystream) Apply(dst, src []byte) {
	for i, b := range src {
		blockIndex := ks.pos / 8
		byteIndex := ks.pos % 8
		keyByte := ks.blocks[blockIndex][byteIndex]

		ks.seed = (ks.seed * 0x10A860C1) % 0xFFFFFFFB
		keystreamByte := byte(ks.seed & 0xFF)

		dst[i] = b ^ keyByte ^ keystreamByte
		ks.pos = (ks.pos + 1) % keystreamBlockLen
	}
}

// Decrypt produces a fresh keystream from the given parameters and
// applies it to ciphertext, returning the plaintext. Encrypt is the same
// operation under a different name, since XOR keystreams are symmetric.
func Decrypt(key [8]byte, deviceID [12]byte, timestamp uint32, ciphertext []byte) ([]byte, error) {
	ks, err := NewLogKeystream(key, deviceID, timestamp)
	if err != nil {
		return nil, err
	}
	out := make([]byte, len(ciphertext))
	ks.Apply(out, ciphertext)
	return out, nil
}

// Encrypt is Decrypt under a different name: the keystream is symmetric.
func Encrypt(key [8]byte, deviceID [12]byte, timestamp uint32, plaintext []byte) ([]byte, error) {
	return Decrypt(key, deviceID, timestamp, plaintext)
}
