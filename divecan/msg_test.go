package divecan

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/soloprotocol/divecan/units"
)

func TestIdAddressingPacksAndReplies(t *testing.T) {
	id := Id{Src: 0x01, Dst: 0x02, Kind: 0xCB}
	assert.Equal(t, uint32(0x0D00_0000|0xCB<<16|0x02<<8|0x01), id.CanID())

	back, ok := IdFromCanID(id.CanID())
	assert.True(t, ok)
	assert.Equal(t, id, back)

	_, ok = IdFromCanID(0x123) // standard 11-bit id, no DiveCAN prefix
	assert.False(t, ok)

	reply := id.Reply(0xCC)
	assert.Equal(t, Id{Src: 0x02, Dst: 0x01, Kind: 0xCC}, reply)
}

func TestNewFrameZeroesTail(t *testing.T) {
	f, err := NewFrame(KindSetpoint, 1, [8]byte{0xAA, 0xBB, 0xCC, 0xDD, 0, 0, 0, 0})
	assert.NoError(t, err)
	assert.Equal(t, [8]byte{0xAA, 0, 0, 0, 0, 0, 0, 0}, f.Data)

	_, err = NewFrame(KindSetpoint, 9, [8]byte{})
	assert.ErrorIs(t, err, ErrInvalidDlc)
}

// roundTripCases lists one representative Msg per variant, exercising the
// ToFrame/decode identity: every message decodes back to the value that
// produced its frame.
func roundTripCases() []Msg {
	return []Msg{
		IdMsg{Manufacturer: 1, Unused: 0, Version: 7},
		DeviceNameMsg{Name: [8]byte{'S', 'o', 'l', 'o', 0, 0, 0, 0}},
		AlertMsg{Unknown: 0, Code: 0x21, Details: []byte{1, 2, 3}},
		ShutdownInitMsg{Reason: ShutdownTimeout},
		CellPpo2Msg{Unused: 0, Cells: [3]units.PpO2Tenths{10, 11, 12}},
		OboeStatusMsg{BatteryOK: true, BatteryVoltage: 74, U1: 1, U2: 2, U3: 3},
		AmbientPressureMsg{Surface: 1013, Current: 1500, DepthComp: true},
		UdsMsg{Raw: [8]byte{1, 2, 3, 4, 5, 6, 7, 8}},
		TankPressureMsg{CylinderIndex: 1, Pressure: 2000},
		NopMsg{},
		CellVoltagesMsg{Cells: [3]units.CentiMillivolt{8000, 8100, 0}, Unused: 0},
		Ppo2CalibrationResponseMsg{
			Status: 0, Millivolts: [3]uint8{50, 51, 52}, FO2: 21, Pressure: 1013, CellsActive: 0b011,
		},
		Ppo2CalibrationRequestMsg{FO2: 21, Pressure: 1013},
		Co2EnabledMsg{Enabled: true},
		Co2Msg{Unknown: 0, Pco2: 500},
		Co2CalibrationResponseMsg{Code: 0, Pco2: 500},
		Co2CalibrationRequestMsg{Pco2: 500},
		Undocumented30Msg{Raw: [3]byte{1, 2, 3}},
		BusInitMsg{Unused: [3]byte{0, 0, 0}},
		TempProbeMsg{SensorId: 1, Temp: 300},
		UndocumentedC3Msg{A: 1, B: 2, C: 3, D: 4},
		TempProbeEnabledMsg{Enabled: true},
		SetpointMsg{Setpoint: 11},
		CellStatusMsg{CellsActive: 0b111, Consensus: ConsensusNotCalibrated},
		SoloStatusMsg{
			Voltage: 120, Current: 300, InjectionDuration: 50, Setpoint: 11,
			Consensus: 11, VoltageAlert: AlertClear, CurrentAlert: AlertUnder,
		},
		DivingMsg{Status: 1, DiveNumber: 42, Timestamp: 0x01020304},
		SerialMsg{Raw: [8]byte{1, 2, 3, 4, 5, 6, 7, 8}},
	}
}

func TestRoundTripEveryVariant(t *testing.T) {
	for _, m := range roundTripCases() {
		f, err := m.ToFrame()
		assert.NoError(t, err, "%T", m)

		minDlc, known := MinDLC(m.Kind())
		assert.True(t, known, "%T", m)
		assert.GreaterOrEqual(t, f.Dlc, minDlc, "%T", m)

		// Tail past dlc must be zero.
		for i := int(f.Dlc); i < 8; i++ {
			assert.Zero(t, f.Data[i], "%T tail byte %d", m, i)
		}

		decoded, err := TryFromFrame(f)
		assert.NoError(t, err, "%T", m)
		assert.Equal(t, m, decoded, "%T", m)
	}
}

func TestDlcBoundsPerKind(t *testing.T) {
	minDlc, ok := MinDLC(KindSetpoint)
	assert.True(t, ok)
	assert.EqualValues(t, 1, minDlc)

	for dlc := minDlc; dlc <= 8; dlc++ {
		f := Frame{Kind: KindSetpoint, Dlc: dlc}
		_, err := TryFromFrame(f)
		assert.NoError(t, err, "dlc=%d", dlc)
	}

	if minDlc > 0 {
		f := Frame{Kind: KindSetpoint, Dlc: minDlc - 1}
		_, err := TryFromFrame(f)
		assert.Error(t, err)
		var mismatch ErrDlcMismatch
		assert.ErrorAs(t, err, &mismatch)
	}

	f := Frame{Kind: KindSetpoint, Dlc: 9}
	_, err := TryFromFrame(f)
	var mismatch ErrDlcMismatch
	assert.ErrorAs(t, err, &mismatch)
}

func TestUnknownKind(t *testing.T) {
	_, err := TryFromFrame(Frame{Kind: 0x99, Dlc: 8})
	assert.ErrorIs(t, err, ErrUnknownKind)
}

func TestAlertVariableDetailsLength(t *testing.T) {
	m := AlertMsg{Unknown: 1, Code: 0x27, Details: []byte{9, 9}}
	f, err := m.ToFrame()
	assert.NoError(t, err)
	assert.EqualValues(t, 5, f.Dlc)

	m.Details = make([]byte, 6)
	_, err = m.ToFrame()
	assert.Error(t, err)
}
