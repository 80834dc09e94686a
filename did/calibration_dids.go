package did

import (
	"encoding/binary"
	"fmt"
)

const (
	FirmwareDownloadInfoDidID        uint16 = 0x8020
	LogUploadInfoDidID               uint16 = 0x8021
	SoloO2CellCalibrationDidID       uint16 = 0x8203
	SoloAdcVrefCalibrationDidID      uint16 = 0x820A
	SoloO2CellFactoryCalibrationDidID uint16 = 0x8205
	FirmwareCrcDidID                 uint16 = 0x8209
)

// FirmwareDownloadInfoDid reports whether firmware download is supported
// and, if so, the address and maximum size of the download region.
type FirmwareDownloadInfoDid struct {
	Supported bool
	Address   uint32
	MaxSize   uint32
}

func (FirmwareDownloadInfoDid) DID() uint16         { return FirmwareDownloadInfoDidID }
func (FirmwareDownloadInfoDid) Access() AccessClass { return ReadOnly }

func (d FirmwareDownloadInfoDid) ToBytes() []byte {
	buf := make([]byte, 9)
	if d.Supported {
		buf[0] = 1
	}
	binary.BigEndian.PutUint32(buf[1:5], d.Address)
	binary.BigEndian.PutUint32(buf[5:9], d.MaxSize)
	return buf
}

func FirmwareDownloadInfoDidFrom(raw []byte) (FirmwareDownloadInfoDid, error) {
	if len(raw) != 9 {
		return FirmwareDownloadInfoDid{}, DecodeError{Kind: BadLength, Needed: 9}
	}
	return FirmwareDownloadInfoDid{
		Supported: raw[0] != 0,
		Address:   binary.BigEndian.Uint32(raw[1:5]),
		MaxSize:   binary.BigEndian.Uint32(raw[5:9]),
	}, nil
}

// LogUploadInfoDid mirrors FirmwareDownloadInfoDid's shape for the log
// upload region.
type LogUploadInfoDid struct {
	Supported bool
	Address   uint32
	Size      uint32
}

func (LogUploadInfoDid) DID() uint16         { return LogUploadInfoDidID }
func (LogUploadInfoDid) Access() AccessClass { return ReadOnly }

func (d LogUploadInfoDid) ToBytes() []byte {
	buf := make([]byte, 9)
	if d.Supported {
		buf[0] = 1
	}
	binary.BigEndian.PutUint32(buf[1:5], d.Address)
	binary.BigEndian.PutUint32(buf[5:9], d.Size)
	return buf
}

func LogUploadInfoDidFrom(raw []byte) (LogUploadInfoDid, error) {
	if len(raw) != 9 {
		return LogUploadInfoDid{}, DecodeError{Kind: BadLength, Needed: 9}
	}
	return LogUploadInfoDid{
		Supported: raw[0] != 0,
		Address:   binary.BigEndian.Uint32(raw[1:5]),
		Size:      binary.BigEndian.Uint32(raw[5:9]),
	}, nil
}

// SoloO2CellCalibrationDid carries the three cells' millivolt-at-known-PpO2
// calibration values and a per-cell validity flag.
type SoloO2CellCalibrationDid struct {
	Calibrations [3]uint32
	Valid        [3]bool
}

func (SoloO2CellCalibrationDid) DID() uint16         { return SoloO2CellCalibrationDidID }
func (SoloO2CellCalibrationDid) Access() AccessClass { return ReadOnly }

func (d SoloO2CellCalibrationDid) ToBytes() []byte {
	buf := make([]byte, 15)
	for i, v := range d.Calibrations {
		binary.BigEndian.PutUint32(buf[i*4:i*4+4], v)
	}
	for i, v := range d.Valid {
		if v {
			buf[12+i] = 1
		}
	}
	return buf
}

func SoloO2CellCalibrationDidFrom(raw []byte) (SoloO2CellCalibrationDid, error) {
	if len(raw) != 15 {
		return SoloO2CellCalibrationDid{}, DecodeError{Kind: BadLength, Needed: 15}
	}
	var d SoloO2CellCalibrationDid
	for i := range d.Calibrations {
		d.Calibrations[i] = binary.BigEndian.Uint32(raw[i*4 : i*4+4])
	}
	for i := range d.Valid {
		flag := raw[12+i]
		if flag != 0 && flag != 1 {
			return SoloO2CellCalibrationDid{}, DecodeError{Kind: InvalidFormat}
		}
		d.Valid[i] = flag == 1
	}
	return d, nil
}

// SoloAdcVrefCalibrationDid is the read-write ADC reference-voltage
// calibration word, constrained to a fixed valid range.
type SoloAdcVrefCalibrationDid uint32

const (
	adcVrefMin uint32 = 0x0A64
	adcVrefMax uint32 = 0x0B7C
)

func (SoloAdcVrefCalibrationDid) DID() uint16         { return SoloAdcVrefCalibrationDidID }
func (SoloAdcVrefCalibrationDid) Access() AccessClass { return ReadWrite }

func (d SoloAdcVrefCalibrationDid) ToBytes() []byte {
	buf := make([]byte, 4)
	binary.BigEndian.PutUint32(buf, uint32(d))
	return buf
}

func SoloAdcVrefCalibrationDidFrom(raw []byte) (SoloAdcVrefCalibrationDid, error) {
	if len(raw) != 4 {
		return 0, DecodeError{Kind: BadLength, Needed: 4}
	}
	v := binary.BigEndian.Uint32(raw)
	if v < adcVrefMin || v > adcVrefMax {
		return 0, DecodeError{Kind: InvalidFormat}
	}
	return SoloAdcVrefCalibrationDid(v), nil
}

// ErrAdcVrefOutOfRange reports a value outside [0x0A64, 0x0B7C] passed to
// NewSoloAdcVrefCalibrationDid, for callers building a value to write
// rather than decoding one off the wire.
type ErrAdcVrefOutOfRange struct{ Value uint32 }

func (e ErrAdcVrefOutOfRange) Error() string {
	return fmt.Sprintf("did: adc vref %d out of range [%d, %d]", e.Value, adcVrefMin, adcVrefMax)
}

func NewSoloAdcVrefCalibrationDid(v uint32) (SoloAdcVrefCalibrationDid, error) {
	if v < adcVrefMin || v > adcVrefMax {
		return 0, ErrAdcVrefOutOfRange{Value: v}
	}
	return SoloAdcVrefCalibrationDid(v), nil
}

// SoloO2CellFactoryCalibrationDid is a 12-byte opaque factory calibration
// blob with no internal field layout imposed.
type SoloO2CellFactoryCalibrationDid [12]byte

func (SoloO2CellFactoryCalibrationDid) DID() uint16         { return SoloO2CellFactoryCalibrationDidID }
func (SoloO2CellFactoryCalibrationDid) Access() AccessClass { return ReadOnly }
func (d SoloO2CellFactoryCalibrationDid) ToBytes() []byte   { return d[:] }

func SoloO2CellFactoryCalibrationDidFrom(raw []byte) (SoloO2CellFactoryCalibrationDid, error) {
	var d SoloO2CellFactoryCalibrationDid
	if len(raw) != len(d) {
		return d, DecodeError{Kind: BadLength, Needed: len(d)}
	}
	copy(d[:], raw)
	return d, nil
}

// FirmwareCrcDid is the 4-byte big-endian CRC-32 of installed firmware.
type FirmwareCrcDid uint32

func (FirmwareCrcDid) DID() uint16         { return FirmwareCrcDidID }
func (FirmwareCrcDid) Access() AccessClass { return ReadOnly }

func (d FirmwareCrcDid) ToBytes() []byte {
	buf := make([]byte, 4)
	binary.BigEndian.PutUint32(buf, uint32(d))
	return buf
}

func FirmwareCrcDidFrom(raw []byte) (FirmwareCrcDid, error) {
	if len(raw) != 4 {
		return 0, DecodeError{Kind: BadLength, Needed: 4}
	}
	return FirmwareCrcDid(binary.BigEndian.Uint32(raw)), nil
}
