package divecan

import (
	"errors"
	"fmt"
)

// Message kind codes. Keep this registry verbatim: it is the wire contract
// with every Solo controller this stack talks to.
const (
	KindId                       uint8 = 0x00
	KindDeviceName               uint8 = 0x01
	KindAlert                    uint8 = 0x02
	KindShutdownInit             uint8 = 0x03
	KindCellPpo2                 uint8 = 0x04
	KindOboeStatus               uint8 = 0x07
	KindAmbientPressure          uint8 = 0x08
	KindUds                      uint8 = 0x0A
	KindTankPressure             uint8 = 0x0B
	KindNop                      uint8 = 0x10
	KindCellVoltages             uint8 = 0x11
	KindPpo2CalibrationResponse  uint8 = 0x12
	KindPpo2CalibrationRequest   uint8 = 0x13
	KindCo2Enabled               uint8 = 0x20
	KindCo2                      uint8 = 0x21
	KindCo2CalibrationResponse   uint8 = 0x22
	KindCo2CalibrationRequest    uint8 = 0x23
	KindUndocumented30           uint8 = 0x30
	KindBusInit                  uint8 = 0x37
	KindTempProbe                uint8 = 0xC1
	KindUndocumentedC3           uint8 = 0xC3
	KindTempProbeEnabled         uint8 = 0xC4
	KindSetpoint                 uint8 = 0xC9
	KindCellStatus               uint8 = 0xCA
	KindSoloStatus               uint8 = 0xCB
	KindDiving                   uint8 = 0xCC
	KindSerial                   uint8 = 0xD2
)

// ErrUnknownKind is returned by TryFromFrame when the frame's Kind is not
// in the registry above.
var ErrUnknownKind = errors.New("divecan: unknown message kind")

// ErrDlcMismatch is returned by TryFromFrame when dlc is outside
// [MinDLC(kind), 8].
type ErrDlcMismatch struct {
	Kind   uint8
	Dlc    uint8
	MinDlc uint8
}

func (e ErrDlcMismatch) Error() string {
	return fmt.Sprintf("divecan: kind 0x%02X dlc %d outside [%d,8]", e.Kind, e.Dlc, e.MinDlc)
}

// Msg is the closed sum type of every DiveCAN message variant. Each
// variant implements Kind (its fixed wire discriminant) and ToFrame
// (bit-exact serialization, tail zeroed).
type Msg interface {
	Kind() uint8
	ToFrame() (Frame, error)
}

type decodeFunc func(Frame) (Msg, error)

var registry = map[uint8]struct {
	minDLC uint8
	decode decodeFunc
}{
	KindId:                      {3, decodeId},
	KindDeviceName:              {8, decodeDeviceName},
	KindAlert:                   {3, decodeAlert},
	KindShutdownInit:            {1, decodeShutdownInit},
	KindCellPpo2:                {4, decodeCellPpo2},
	KindOboeStatus:              {5, decodeOboeStatus},
	KindAmbientPressure:         {5, decodeAmbientPressure},
	KindUds:                     {8, decodeUds},
	KindTankPressure:            {3, decodeTankPressure},
	KindNop:                     {8, decodeNop},
	KindCellVoltages:            {7, decodeCellVoltages},
	KindPpo2CalibrationResponse: {8, decodePpo2CalibrationResponse},
	KindPpo2CalibrationRequest:  {3, decodePpo2CalibrationRequest},
	KindCo2Enabled:              {1, decodeCo2Enabled},
	KindCo2:                     {3, decodeCo2},
	KindCo2CalibrationResponse:  {3, decodeCo2CalibrationResponse},
	KindCo2CalibrationRequest:   {2, decodeCo2CalibrationRequest},
	KindUndocumented30:          {3, decodeUndocumented30},
	KindBusInit:                 {3, decodeBusInit},
	KindTempProbe:               {3, decodeTempProbe},
	KindUndocumentedC3:          {6, decodeUndocumentedC3},
	KindTempProbeEnabled:        {1, decodeTempProbeEnabled},
	KindSetpoint:                {1, decodeSetpoint},
	KindCellStatus:              {2, decodeCellStatus},
	KindSoloStatus:              {8, decodeSoloStatus},
	KindDiving:                  {7, decodeDiving},
	KindSerial:                  {8, decodeSerial},
}

// MinDLC returns the minimum data length code a decoder accepts for kind,
// and whether kind is known at all.
func MinDLC(kind uint8) (min uint8, known bool) {
	entry, ok := registry[kind]
	if !ok {
		return 0, false
	}
	return entry.minDLC, true
}

// TryFromFrame decodes a raw Frame into its typed Msg variant. It fails
// with ErrUnknownKind for an unregistered kind, and ErrDlcMismatch when
// dlc falls outside [MinDLC(kind), 8].
func TryFromFrame(f Frame) (Msg, error) {
	entry, ok := registry[f.Kind]
	if !ok {
		return nil, ErrUnknownKind
	}
	if f.Dlc < entry.minDLC || f.Dlc > 8 {
		return nil, ErrDlcMismatch{Kind: f.Kind, Dlc: f.Dlc, MinDlc: entry.minDLC}
	}
	return entry.decode(f)
}

// CellMask is the 3-bit "which O2 cells are active" mask DiveCAN packs
// into a single byte, bit0 == cell0.
type CellMask uint8

// Active reports whether cell i (0, 1, or 2) is marked active.
func (m CellMask) Active(i int) bool {
	return m&(1<<uint(i)) != 0
}

// Consensus is the cell-voting consensus ppO2 reading, or one of the two
// sentinel non-numeric states the controller reports in its place.
type Consensus uint8

const (
	ConsensusNotCalibrated Consensus = 0xFF
	ConsensusNoActiveCells Consensus = 0xFE
)

// IsSentinel reports whether the value is NotCalibrated or NoActiveCells
// rather than a ppO2 x10 reading.
func (c Consensus) IsSentinel() bool {
	return c == ConsensusNotCalibrated || c == ConsensusNoActiveCells
}

func (c Consensus) String() string {
	switch c {
	case ConsensusNotCalibrated:
		return "not calibrated"
	case ConsensusNoActiveCells:
		return "no active cells"
	default:
		return fmt.Sprintf("%.1f", float64(c)/10)
	}
}

// VoltageAlert and CurrentAlert share the same four-state encoding packed
// into SoloStatus.Flags.
type VoltageAlert uint8
type CurrentAlert uint8

const (
	AlertNone  = 0b00
	AlertUnder = 0b01
	AlertClear = 0b10
	AlertOver  = 0b11
)

func alertString(v uint8) string {
	switch v {
	case AlertNone:
		return "none"
	case AlertUnder:
		return "under"
	case AlertClear:
		return "clear"
	case AlertOver:
		return "over"
	default:
		return "unknown"
	}
}

func (v VoltageAlert) String() string { return alertString(uint8(v)) }
func (c CurrentAlert) String() string { return alertString(uint8(c)) }

// ShutdownReason is the payload of ShutdownInit.
type ShutdownReason uint8

const (
	ShutdownUserInitiated ShutdownReason = 0x00
	ShutdownTimeout       ShutdownReason = 0x01
)

func (r ShutdownReason) String() string {
	switch r {
	case ShutdownUserInitiated:
		return "user initiated"
	case ShutdownTimeout:
		return "timeout"
	default:
		return fmt.Sprintf("unknown(0x%02X)", uint8(r))
	}
}

// frameOf is a small helper shared by every variant's ToFrame: it builds a
// Frame from a kind, a dlc, and payload bytes already written into a
// full 8-byte array.
func frameOf(kind uint8, dlc uint8, data [8]byte) (Frame, error) {
	return NewFrame(kind, dlc, data)
}
