package did

import "encoding/binary"

// User-setting DIDs pack (index, enum_index) into the low nibbles of a
// fixed base address. Index is a device-assigned setting slot number;
// Count and the sub-ranges below bound what is addressable.

const (
	userSettingCountDid     uint16 = 0x9100
	userSettingInfoBase     uint16 = 0x9110
	userSettingReadStateBase uint16 = 0x9130
	userSettingEnumBase     uint16 = 0x9150
	userSettingWriteInputBase uint16 = 0x9350

	userSettingEnumIndexMax uint16 = 10
)

// CountDid returns the DID addressing the user-setting count.
func CountDid() uint16 { return userSettingCountDid }

// InfoDid returns the DID addressing setting index's descriptor.
func InfoDid(index uint16) uint16 { return userSettingInfoBase + index }

// ReadStateDid returns the DID addressing setting index's current value.
func ReadStateDid(index uint16) uint16 { return userSettingReadStateBase + index }

// EnumDid returns the DID addressing enum label enumIndex of setting
// index, rejecting enumIndex outside 0..=10.
func EnumDid(index, enumIndex uint16) (uint16, error) {
	if enumIndex > userSettingEnumIndexMax {
		return 0, ErrBadEnumIndex{Index: byte(enumIndex)}
	}
	return userSettingEnumBase + enumIndex + (index << 4), nil
}

// WriteInputDid returns the DID addressing setting index's write slot.
func WriteInputDid(index uint16) uint16 { return userSettingWriteInputBase + index }

// UserSettingType is the discriminant carried in a ReadState response.
type UserSettingType uint8

const (
	Integer UserSettingType = iota
	Selection
	Scaled
)

// Count is the 1-byte response to CountDid.
type Count uint8

func CountFrom(raw []byte) (Count, error) {
	if len(raw) != 1 {
		return 0, DecodeError{Kind: BadLength, Needed: 1}
	}
	return Count(raw[0]), nil
}

// Info is the 12-byte response to InfoDid.
type Info struct {
	Name     [10]byte
	Kind     UserSettingType
	Editable bool
}

func InfoFrom(raw []byte) (Info, error) {
	if len(raw) != 12 {
		return Info{}, DecodeError{Kind: BadLength, Needed: 12}
	}
	var info Info
	copy(info.Name[:], raw[0:10])
	info.Kind = UserSettingType(raw[10])
	info.Editable = raw[11] != 0
	return info, nil
}

// SettingValue is the closed sum type ReadState's 16-byte payload
// resolves to, keyed by the setting's UserSettingType.
type SettingValue struct {
	Selection    *SelectionValue
	IntegerHex   *IntegerValue
	IntegerScaled *ScaledValue
}

type SelectionValue struct {
	MaxIndex     byte
	CurrentIndex byte
}

type IntegerValue struct {
	Min, Max, Value uint32
}

type ScaledValue struct {
	Min, Max, Divisor, Value uint32
}

// ReadStateFrom decodes a 16-byte ReadState payload according to kind.
func ReadStateFrom(raw []byte, kind UserSettingType) (SettingValue, error) {
	if len(raw) != 16 {
		return SettingValue{}, DecodeError{Kind: BadLength, Needed: 16}
	}
	switch kind {
	case Selection:
		return SettingValue{Selection: &SelectionValue{MaxIndex: raw[7], CurrentIndex: raw[15]}}, nil
	case Integer, Scaled:
		min := binary.BigEndian.Uint32(raw[0:4])
		max := binary.BigEndian.Uint32(raw[4:8])
		divisor := binary.BigEndian.Uint32(raw[8:12])
		value := binary.BigEndian.Uint32(raw[12:16])
		if divisor == 0 {
			return SettingValue{IntegerHex: &IntegerValue{Min: min, Max: max, Value: value}}, nil
		}
		return SettingValue{IntegerScaled: &ScaledValue{Min: min, Max: max, Divisor: divisor, Value: value}}, nil
	default:
		return SettingValue{}, ErrBadSettingType{Kind: byte(kind)}
	}
}

// Enum is the fixed 8-byte label response to EnumDid.
type Enum [8]byte

func EnumFrom(raw []byte) (Enum, error) {
	var e Enum
	if len(raw) != len(e) {
		return e, DecodeError{Kind: BadLength, Needed: len(e)}
	}
	copy(e[:], raw)
	return e, nil
}

// UserSettingPayload is the closed sum type covering every shape a
// user-setting transaction can carry. Exactly one field is populated per
// value.
type UserSettingPayload struct {
	Count *Count
	Info  *Info
	State *SettingValue
	Input *Input
	Enum  *Enum
}

// Input is the WriteInput WDBI payload: a declared length and up to 8
// bytes. For Integer/Scaled settings the value is placed in the high
// half (bytes 4..8); the low half's device meaning is left unspecified
// and zeroed.
type Input struct {
	Len   uint8
	Bytes [8]byte
}

// EncodeIntegerInput builds an Input carrying value in the high half.
func EncodeIntegerInput(value uint32) Input {
	var in Input
	in.Len = 8
	binary.BigEndian.PutUint32(in.Bytes[4:8], value)
	return in
}

func (in Input) ToBytes() []byte {
	if in.Len > 8 {
		return in.Bytes[:8]
	}
	return in.Bytes[:in.Len]
}

// InputFrom validates that raw's declared length matches its byte count.
func InputFrom(length uint8, raw []byte) (Input, error) {
	if int(length) != len(raw) {
		return Input{}, DecodeError{Kind: InvalidFormat}
	}
	if length > 8 {
		return Input{}, ErrTooLong{Max: 8}
	}
	var in Input
	in.Len = length
	copy(in.Bytes[:], raw)
	return in, nil
}
