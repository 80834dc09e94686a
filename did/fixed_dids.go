package did

// Fixed-size byte-array DIDs: no internal structure is imposed, the
// device treats them as opaque blobs.

const (
	SerialStringDidID             uint16 = 0x8010
	VersionStringDidID            uint16 = 0x8011
	SerialDidID                   uint16 = 0x8200
	DeviceIdDidID                 uint16 = 0x8201
	SoloEncryptedConfigAndIdDidID uint16 = 0x8202
)

// SerialStringDid is the 8-byte human-readable serial string.
type SerialStringDid [8]byte

func (SerialStringDid) DID() uint16         { return SerialStringDidID }
func (SerialStringDid) Access() AccessClass { return ReadOnly }
func (d SerialStringDid) ToBytes() []byte   { return d[:] }

func SerialStringDidFrom(raw []byte) (SerialStringDid, error) {
	var d SerialStringDid
	if len(raw) != len(d) {
		return d, DecodeError{Kind: BadLength, Needed: len(d)}
	}
	copy(d[:], raw)
	return d, nil
}

// VersionStringDid is the 3-byte firmware version string.
type VersionStringDid [3]byte

func (VersionStringDid) DID() uint16         { return VersionStringDidID }
func (VersionStringDid) Access() AccessClass { return ReadOnly }
func (d VersionStringDid) ToBytes() []byte   { return d[:] }

func VersionStringDidFrom(raw []byte) (VersionStringDid, error) {
	var d VersionStringDid
	if len(raw) != len(d) {
		return d, DecodeError{Kind: BadLength, Needed: len(d)}
	}
	copy(d[:], raw)
	return d, nil
}

// SerialDid is the 4-byte read-write numeric serial slot.
type SerialDid [4]byte

func (SerialDid) DID() uint16         { return SerialDidID }
func (SerialDid) Access() AccessClass { return ReadWrite }
func (d SerialDid) ToBytes() []byte   { return d[:] }

func SerialDidFrom(raw []byte) (SerialDid, error) {
	var d SerialDid
	if len(raw) != len(d) {
		return d, DecodeError{Kind: BadLength, Needed: len(d)}
	}
	copy(d[:], raw)
	return d, nil
}

// DeviceIdDid is the 12-byte device identifier used to seed the log
// keystream.
type DeviceIdDid [12]byte

func (DeviceIdDid) DID() uint16         { return DeviceIdDidID }
func (DeviceIdDid) Access() AccessClass { return ReadOnly }
func (d DeviceIdDid) ToBytes() []byte   { return d[:] }

func DeviceIdDidFrom(raw []byte) (DeviceIdDid, error) {
	var d DeviceIdDid
	if len(raw) != len(d) {
		return d, DecodeError{Kind: BadLength, Needed: len(d)}
	}
	copy(d[:], raw)
	return d, nil
}

// SoloEncryptedConfigAndIdDid is the 16-byte read-write slot holding the
// DES-ECB-encrypted concatenation of the encoded SoloConfig word and the
// device-id prefix.
type SoloEncryptedConfigAndIdDid [16]byte

func (SoloEncryptedConfigAndIdDid) DID() uint16         { return SoloEncryptedConfigAndIdDidID }
func (SoloEncryptedConfigAndIdDid) Access() AccessClass { return ReadWrite }
func (d SoloEncryptedConfigAndIdDid) ToBytes() []byte   { return d[:] }

func SoloEncryptedConfigAndIdDidFrom(raw []byte) (SoloEncryptedConfigAndIdDid, error) {
	var d SoloEncryptedConfigAndIdDid
	if len(raw) != len(d) {
		return d, DecodeError{Kind: BadLength, Needed: len(d)}
	}
	copy(d[:], raw)
	return d, nil
}
