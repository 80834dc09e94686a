package divecan

import "github.com/soloprotocol/divecan/units"

// OboeStatusMsg (kind 0x07) is the Oboe handset's status broadcast.
type OboeStatusMsg struct {
	BatteryOK      bool
	BatteryVoltage units.Decivolt
	U1, U2, U3     uint8
}

func (m OboeStatusMsg) Kind() uint8 { return KindOboeStatus }

func (m OboeStatusMsg) ToFrame() (Frame, error) {
	var data [8]byte
	if m.BatteryOK {
		data[0] = 1
	}
	data[1] = m.BatteryVoltage.Raw()
	data[2] = m.U1
	data[3] = m.U2
	data[4] = m.U3
	return frameOf(KindOboeStatus, 5, data)
}

func decodeOboeStatus(f Frame) (Msg, error) {
	return OboeStatusMsg{
		BatteryOK:      f.Data[0] != 0,
		BatteryVoltage: units.Decivolt(f.Data[1]),
		U1:             f.Data[2],
		U2:             f.Data[3],
		U3:             f.Data[4],
	}, nil
}

// AmbientPressureMsg (kind 0x08) reports surface and current ambient
// pressure, and whether depth compensation is applied.
type AmbientPressureMsg struct {
	Surface    units.Millibar
	Current    units.Millibar
	DepthComp  bool
}

func (m AmbientPressureMsg) Kind() uint8 { return KindAmbientPressure }

func (m AmbientPressureMsg) ToFrame() (Frame, error) {
	var data [8]byte
	data[0] = byte(m.Surface.Raw() >> 8)
	data[1] = byte(m.Surface.Raw())
	data[2] = byte(m.Current.Raw() >> 8)
	data[3] = byte(m.Current.Raw())
	if m.DepthComp {
		data[4] = 1
	}
	return frameOf(KindAmbientPressure, 5, data)
}

func decodeAmbientPressure(f Frame) (Msg, error) {
	return AmbientPressureMsg{
		Surface:   units.Millibar(uint16(f.Data[0])<<8 | uint16(f.Data[1])),
		Current:   units.Millibar(uint16(f.Data[2])<<8 | uint16(f.Data[3])),
		DepthComp: f.Data[4] != 0,
	}, nil
}

// TankPressureMsg (kind 0x0B) reports a single cylinder's pressure.
type TankPressureMsg struct {
	CylinderIndex uint8
	Pressure      units.Decibar
}

func (m TankPressureMsg) Kind() uint8 { return KindTankPressure }

func (m TankPressureMsg) ToFrame() (Frame, error) {
	var data [8]byte
	data[0] = m.CylinderIndex
	data[1] = byte(m.Pressure.Raw() >> 8)
	data[2] = byte(m.Pressure.Raw())
	return frameOf(KindTankPressure, 3, data)
}

func decodeTankPressure(f Frame) (Msg, error) {
	return TankPressureMsg{
		CylinderIndex: f.Data[0],
		Pressure:      units.Decibar(uint16(f.Data[1])<<8 | uint16(f.Data[2])),
	}, nil
}

// TempProbeMsg (kind 0xC1) reports a single temperature sensor's reading.
type TempProbeMsg struct {
	SensorId uint8
	Temp     uint16
}

func (m TempProbeMsg) Kind() uint8 { return KindTempProbe }

func (m TempProbeMsg) ToFrame() (Frame, error) {
	var data [8]byte
	data[0] = m.SensorId
	data[1] = byte(m.Temp >> 8)
	data[2] = byte(m.Temp)
	return frameOf(KindTempProbe, 3, data)
}

func decodeTempProbe(f Frame) (Msg, error) {
	return TempProbeMsg{SensorId: f.Data[0], Temp: uint16(f.Data[1])<<8 | uint16(f.Data[2])}, nil
}

// TempProbeEnabledMsg (kind 0xC4) toggles whether temperature probes are
// polled.
type TempProbeEnabledMsg struct {
	Enabled bool
}

func (m TempProbeEnabledMsg) Kind() uint8 { return KindTempProbeEnabled }

func (m TempProbeEnabledMsg) ToFrame() (Frame, error) {
	var data [8]byte
	if m.Enabled {
		data[0] = 1
	}
	return frameOf(KindTempProbeEnabled, 1, data)
}

func decodeTempProbeEnabled(f Frame) (Msg, error) {
	return TempProbeEnabledMsg{Enabled: f.Data[0] != 0}, nil
}

// UndocumentedC3Msg (kind 0xC3) has no known semantics beyond its field
// widths; byte positions are preserved exactly.
type UndocumentedC3Msg struct {
	A, B uint16
	C, D uint8
}

func (m UndocumentedC3Msg) Kind() uint8 { return KindUndocumentedC3 }

func (m UndocumentedC3Msg) ToFrame() (Frame, error) {
	var data [8]byte
	data[0] = byte(m.A >> 8)
	data[1] = byte(m.A)
	data[2] = byte(m.B >> 8)
	data[3] = byte(m.B)
	data[4] = m.C
	data[5] = m.D
	return frameOf(KindUndocumentedC3, 6, data)
}

func decodeUndocumentedC3(f Frame) (Msg, error) {
	return UndocumentedC3Msg{
		A: uint16(f.Data[0])<<8 | uint16(f.Data[1]),
		B: uint16(f.Data[2])<<8 | uint16(f.Data[3]),
		C: f.Data[4],
		D: f.Data[5],
	}, nil
}

// DivingMsg (kind 0xCC) reports dive session status, number and timestamp.
type DivingMsg struct {
	Status     uint8
	DiveNumber uint16
	Timestamp  uint32
}

func (m DivingMsg) Kind() uint8 { return KindDiving }

func (m DivingMsg) ToFrame() (Frame, error) {
	var data [8]byte
	data[0] = m.Status
	data[1] = byte(m.DiveNumber >> 8)
	data[2] = byte(m.DiveNumber)
	data[3] = byte(m.Timestamp >> 24)
	data[4] = byte(m.Timestamp >> 16)
	data[5] = byte(m.Timestamp >> 8)
	data[6] = byte(m.Timestamp)
	return frameOf(KindDiving, 7, data)
}

func decodeDiving(f Frame) (Msg, error) {
	return DivingMsg{
		Status:     f.Data[0],
		DiveNumber: uint16(f.Data[1])<<8 | uint16(f.Data[2]),
		Timestamp: uint32(f.Data[3])<<24 | uint32(f.Data[4])<<16 |
			uint32(f.Data[5])<<8 | uint32(f.Data[6]),
	}, nil
}
