package divecan

import "github.com/soloprotocol/divecan/units"

// CellPpo2Msg (kind 0x04) carries the three raw O2 cell ppO2 readings,
// offset by one unused leading byte.
type CellPpo2Msg struct {
	Unused uint8
	Cells  [3]units.PpO2Tenths
}

func (m CellPpo2Msg) Kind() uint8 { return KindCellPpo2 }

func (m CellPpo2Msg) ToFrame() (Frame, error) {
	var data [8]byte
	data[0] = m.Unused
	data[1] = m.Cells[0].Raw()
	data[2] = m.Cells[1].Raw()
	data[3] = m.Cells[2].Raw()
	return frameOf(KindCellPpo2, 4, data)
}

func decodeCellPpo2(f Frame) (Msg, error) {
	return CellPpo2Msg{
		Unused: f.Data[0],
		Cells: [3]units.PpO2Tenths{
			units.PpO2Tenths(f.Data[1]),
			units.PpO2Tenths(f.Data[2]),
			units.PpO2Tenths(f.Data[3]),
		},
	}, nil
}

// CellVoltagesMsg (kind 0x11) carries the three O2 cell voltages.
type CellVoltagesMsg struct {
	Cells  [3]units.CentiMillivolt
	Unused uint8
}

func (m CellVoltagesMsg) Kind() uint8 { return KindCellVoltages }

func (m CellVoltagesMsg) ToFrame() (Frame, error) {
	var data [8]byte
	data[0] = byte(m.Cells[0].Raw() >> 8)
	data[1] = byte(m.Cells[0].Raw())
	data[2] = byte(m.Cells[1].Raw() >> 8)
	data[3] = byte(m.Cells[1].Raw())
	data[4] = byte(m.Cells[2].Raw() >> 8)
	data[5] = byte(m.Cells[2].Raw())
	data[6] = m.Unused
	return frameOf(KindCellVoltages, 7, data)
}

func decodeCellVoltages(f Frame) (Msg, error) {
	return CellVoltagesMsg{
		Cells: [3]units.CentiMillivolt{
			units.CentiMillivolt(uint16(f.Data[0])<<8 | uint16(f.Data[1])),
			units.CentiMillivolt(uint16(f.Data[2])<<8 | uint16(f.Data[3])),
			units.CentiMillivolt(uint16(f.Data[4])<<8 | uint16(f.Data[5])),
		},
		Unused: f.Data[6],
	}, nil
}

// Ppo2CalibrationRequestMsg (kind 0x13) asks a device to calibrate its O2
// cells against a known fO2 at a given ambient pressure.
type Ppo2CalibrationRequestMsg struct {
	FO2      units.FO2Percent
	Pressure units.Millibar
}

func (m Ppo2CalibrationRequestMsg) Kind() uint8 { return KindPpo2CalibrationRequest }

func (m Ppo2CalibrationRequestMsg) ToFrame() (Frame, error) {
	var data [8]byte
	data[0] = m.FO2.Raw()
	data[1] = byte(m.Pressure.Raw() >> 8)
	data[2] = byte(m.Pressure.Raw())
	return frameOf(KindPpo2CalibrationRequest, 3, data)
}

func decodePpo2CalibrationRequest(f Frame) (Msg, error) {
	return Ppo2CalibrationRequestMsg{
		FO2:      units.FO2Percent(f.Data[0]),
		Pressure: units.Millibar(uint16(f.Data[1])<<8 | uint16(f.Data[2])),
	}, nil
}

// Ppo2CalibrationResponseMsg (kind 0x12) reports calibration results per cell.
type Ppo2CalibrationResponseMsg struct {
	Status      uint8
	Millivolts  [3]uint8
	FO2         units.FO2Percent
	Pressure    units.Millibar
	CellsActive CellMask
}

func (m Ppo2CalibrationResponseMsg) Kind() uint8 { return KindPpo2CalibrationResponse }

func (m Ppo2CalibrationResponseMsg) ToFrame() (Frame, error) {
	var data [8]byte
	data[0] = m.Status
	data[1], data[2], data[3] = m.Millivolts[0], m.Millivolts[1], m.Millivolts[2]
	data[4] = m.FO2.Raw()
	data[5] = byte(m.Pressure.Raw() >> 8)
	data[6] = byte(m.Pressure.Raw())
	data[7] = uint8(m.CellsActive) & 0b111
	return frameOf(KindPpo2CalibrationResponse, 8, data)
}

func decodePpo2CalibrationResponse(f Frame) (Msg, error) {
	return Ppo2CalibrationResponseMsg{
		Status:      f.Data[0],
		Millivolts:  [3]uint8{f.Data[1], f.Data[2], f.Data[3]},
		FO2:         units.FO2Percent(f.Data[4]),
		Pressure:    units.Millibar(uint16(f.Data[5])<<8 | uint16(f.Data[6])),
		CellsActive: CellMask(f.Data[7] & 0b111),
	}, nil
}

// SetpointMsg (kind 0xC9) sets the controller's target ppO2.
type SetpointMsg struct {
	Setpoint units.PpO2Tenths
}

func (m SetpointMsg) Kind() uint8 { return KindSetpoint }

func (m SetpointMsg) ToFrame() (Frame, error) {
	var data [8]byte
	data[0] = m.Setpoint.Raw()
	return frameOf(KindSetpoint, 1, data)
}

func decodeSetpoint(f Frame) (Msg, error) {
	return SetpointMsg{Setpoint: units.PpO2Tenths(f.Data[0])}, nil
}

// CellStatusMsg (kind 0xCA) reports which cells are active and the
// consensus ppO2 those cells agree on.
type CellStatusMsg struct {
	CellsActive CellMask
	Consensus   Consensus
}

func (m CellStatusMsg) Kind() uint8 { return KindCellStatus }

func (m CellStatusMsg) ToFrame() (Frame, error) {
	var data [8]byte
	data[0] = uint8(m.CellsActive) & 0b111
	data[1] = uint8(m.Consensus)
	return frameOf(KindCellStatus, 2, data)
}

func decodeCellStatus(f Frame) (Msg, error) {
	return CellStatusMsg{
		CellsActive: CellMask(f.Data[0] & 0b111),
		Consensus:   Consensus(f.Data[1]),
	}, nil
}

// SoloStatus flag bit layout within byte 7 (Flags): bits 0..1 voltage
// alert, bits 2..3 current alert.
const (
	soloStatusVoltageAlertShift = 0
	soloStatusCurrentAlertShift = 2
)

// SoloStatusMsg (kind 0xCB) is the Solo controller's periodic full status
// broadcast: battery, solenoid drive current, setpoint, consensus, and
// voltage/current alert state.
type SoloStatusMsg struct {
	Voltage            units.Decivolt
	Current            units.Milliamp
	InjectionDuration  units.Millisecond
	Setpoint           units.PpO2Tenths
	Consensus          Consensus
	VoltageAlert       VoltageAlert
	CurrentAlert       CurrentAlert
}

func (m SoloStatusMsg) Kind() uint8 { return KindSoloStatus }

func (m SoloStatusMsg) ToFrame() (Frame, error) {
	var data [8]byte
	data[0] = m.Voltage.Raw()
	data[1] = byte(m.Current.Raw() >> 8)
	data[2] = byte(m.Current.Raw())
	data[3] = byte(m.InjectionDuration.Raw() >> 8)
	data[4] = byte(m.InjectionDuration.Raw())
	data[5] = m.Setpoint.Raw()
	data[6] = uint8(m.Consensus)
	data[7] = (uint8(m.VoltageAlert)&0b11)<<soloStatusVoltageAlertShift |
		(uint8(m.CurrentAlert)&0b11)<<soloStatusCurrentAlertShift
	return frameOf(KindSoloStatus, 8, data)
}

func decodeSoloStatus(f Frame) (Msg, error) {
	return SoloStatusMsg{
		Voltage:           units.Decivolt(f.Data[0]),
		Current:           units.Milliamp(uint16(f.Data[1])<<8 | uint16(f.Data[2])),
		InjectionDuration: units.Millisecond(uint16(f.Data[3])<<8 | uint16(f.Data[4])),
		Setpoint:          units.PpO2Tenths(f.Data[5]),
		Consensus:         Consensus(f.Data[6]),
		VoltageAlert:      VoltageAlert((f.Data[7] >> soloStatusVoltageAlertShift) & 0b11),
		CurrentAlert:      CurrentAlert((f.Data[7] >> soloStatusCurrentAlertShift) & 0b11),
	}, nil
}
