package did

import "encoding/binary"

// SoloConfigDidID is the data identifier addressing the bit-packed
// configuration word.
const SoloConfigDidID uint16 = 0x820B

// MeasurementMode is the 2-bit field at bits 0..1 of the configuration
// word.
type MeasurementMode uint8

const (
	Direct MeasurementMode = iota
	Monitored
)

// CellCountMode is the 2-bit field at bits 4..5.
type CellCountMode uint8

const (
	TwoCell CellCountMode = iota
	ThreeCell
)

// SoloConfig is the decoded form of the 4-byte, big-endian bit-packed
// configuration word. Packing and unpacking are centralized in ToBytes
// and SoloConfigFrom as a matched pair.
type SoloConfig struct {
	MeasurementMode        MeasurementMode
	Ppo2ControlMode        uint8 // 2 bits, 0..3, bits 2..3
	CellCount              CellCountMode
	DepthCompensation      bool
	SolenoidCurrentMinMa   uint32 // bits 8..11: (ma-50)/10
	SolenoidCurrentMaxMa   uint32 // bits 12..15 + bit 23: (ma-50)/10, 5 bits
	BatteryVoltageMin      uint32 // bits 16..19, halved first if doubling
	BatteryVoltageDoubling bool   // bit 22
	Reserved2021           uint8  // bits 20..21, passthrough
	Reserved2431           uint8  // bits 24..31, passthrough
}

func (SoloConfig) DID() uint16         { return SoloConfigDidID }
func (SoloConfig) Access() AccessClass { return ReadWrite }

func (c SoloConfig) ToBytes() []byte {
	var word uint32

	if c.MeasurementMode == Monitored {
		word |= 1 << 0
	} else {
		word |= 2 << 0
	}

	word |= uint32(c.Ppo2ControlMode&0x3) << 2

	if c.CellCount == ThreeCell {
		word |= 1 << 4
	} else {
		word |= 2 << 4
	}

	if c.DepthCompensation {
		word |= 1 << 6
	} else {
		word |= 2 << 6
	}

	minStored := (c.SolenoidCurrentMinMa - 50) / 10
	word |= (minStored & 0xF) << 8

	maxStored := (c.SolenoidCurrentMaxMa - 50) / 10
	word |= (maxStored & 0xF) << 12
	word |= ((maxStored >> 4) & 0x1) << 23

	batteryIntermediate := c.BatteryVoltageMin
	if c.BatteryVoltageDoubling {
		batteryIntermediate /= 2
	}
	batteryStored := (batteryIntermediate - 50) / 2
	word |= (batteryStored & 0xF) << 16

	word |= uint32(c.Reserved2021&0x3) << 20
	if c.BatteryVoltageDoubling {
		word |= 1 << 22
	}
	word |= uint32(c.Reserved2431) << 24

	buf := make([]byte, 4)
	binary.BigEndian.PutUint32(buf, word)
	return buf
}

// SoloConfigFrom decodes the 4-byte configuration word.
func SoloConfigFrom(raw []byte) (SoloConfig, error) {
	if len(raw) != 4 {
		return SoloConfig{}, DecodeError{Kind: BadLength, Needed: 4}
	}
	word := binary.BigEndian.Uint32(raw)

	var c SoloConfig
	if (word>>0)&0x3 == 1 {
		c.MeasurementMode = Monitored
	} else {
		c.MeasurementMode = Direct
	}
	c.Ppo2ControlMode = uint8((word >> 2) & 0x3)
	if (word>>4)&0x3 == 1 {
		c.CellCount = ThreeCell
	} else {
		c.CellCount = TwoCell
	}
	c.DepthCompensation = (word>>6)&0x3 == 1

	minStored := (word >> 8) & 0xF
	c.SolenoidCurrentMinMa = minStored*10 + 50

	maxLow := (word >> 12) & 0xF
	maxHigh := (word >> 23) & 0x1
	maxStored := (maxHigh << 4) | maxLow
	c.SolenoidCurrentMaxMa = maxStored*10 + 50

	c.BatteryVoltageDoubling = (word>>22)&0x1 == 1
	batteryStored := (word >> 16) & 0xF
	batteryIntermediate := batteryStored*2 + 50
	if c.BatteryVoltageDoubling {
		c.BatteryVoltageMin = batteryIntermediate * 2
	} else {
		c.BatteryVoltageMin = batteryIntermediate
	}

	c.Reserved2021 = uint8((word >> 20) & 0x3)
	c.Reserved2431 = uint8((word >> 24) & 0xFF)

	return c, nil
}
