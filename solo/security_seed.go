package solo

import "encoding/binary"

// UdsSecuritySeed is the 21-byte seed blob a device returns ahead of log
// upload: the CRC-32 the device computed over its encrypted log, the
// length of the trailing device-id field, the RTC timestamp the log
// keystream was seeded with, and the device id itself. The numeric
// fields are little-endian; the device id is carried byte-for-byte.
type UdsSecuritySeed struct {
	Crc32Result  uint32
	Length       uint8
	RtcTimestamp uint32
	DeviceID     [12]byte
}

const udsSecuritySeedLen = 4 + 1 + 4 + 12

// DecodeUdsSecuritySeed parses the fixed 21-byte seed blob.
func DecodeUdsSecuritySeed(raw []byte) (UdsSecuritySeed, error) {
	if len(raw) != udsSecuritySeedLen {
		return UdsSecuritySeed{}, ErrSeedLength{Got: len(raw), Want: udsSecuritySeedLen}
	}
	var seed UdsSecuritySeed
	seed.Crc32Result = binary.LittleEndian.Uint32(raw[0:4])
	seed.Length = raw[4]
	seed.RtcTimestamp = binary.LittleEndian.Uint32(raw[5:9])
	copy(seed.DeviceID[:], raw[9:21])
	return seed, nil
}

// ErrSeedLength reports a security-seed blob of the wrong size.
type ErrSeedLength struct{ Got, Want int }

func (e ErrSeedLength) Error() string {
	return "solo: security seed has wrong length"
}
