package divecan

// Co2EnabledMsg (kind 0x20) toggles whether the CO2 sensor subsystem is
// active.
type Co2EnabledMsg struct {
	Enabled bool
}

func (m Co2EnabledMsg) Kind() uint8 { return KindCo2Enabled }

func (m Co2EnabledMsg) ToFrame() (Frame, error) {
	var data [8]byte
	if m.Enabled {
		data[0] = 1
	}
	return frameOf(KindCo2Enabled, 1, data)
}

func decodeCo2Enabled(f Frame) (Msg, error) {
	return Co2EnabledMsg{Enabled: f.Data[0] != 0}, nil
}

// Co2Msg (kind 0x21) reports a raw CO2 partial-pressure reading.
type Co2Msg struct {
	Unknown uint8
	Pco2    uint16
}

func (m Co2Msg) Kind() uint8 { return KindCo2 }

func (m Co2Msg) ToFrame() (Frame, error) {
	var data [8]byte
	data[0] = m.Unknown
	data[1] = byte(m.Pco2 >> 8)
	data[2] = byte(m.Pco2)
	return frameOf(KindCo2, 3, data)
}

func decodeCo2(f Frame) (Msg, error) {
	return Co2Msg{Unknown: f.Data[0], Pco2: uint16(f.Data[1])<<8 | uint16(f.Data[2])}, nil
}

// Co2CalibrationRequestMsg (kind 0x23) asks the CO2 sensor to calibrate
// against a known reference partial pressure.
type Co2CalibrationRequestMsg struct {
	Pco2 uint16
}

func (m Co2CalibrationRequestMsg) Kind() uint8 { return KindCo2CalibrationRequest }

func (m Co2CalibrationRequestMsg) ToFrame() (Frame, error) {
	var data [8]byte
	data[0] = byte(m.Pco2 >> 8)
	data[1] = byte(m.Pco2)
	return frameOf(KindCo2CalibrationRequest, 2, data)
}

func decodeCo2CalibrationRequest(f Frame) (Msg, error) {
	return Co2CalibrationRequestMsg{Pco2: uint16(f.Data[0])<<8 | uint16(f.Data[1])}, nil
}

// Co2CalibrationResponseMsg (kind 0x22) reports the result of a CO2
// calibration request.
type Co2CalibrationResponseMsg struct {
	Code uint8
	Pco2 uint16
}

func (m Co2CalibrationResponseMsg) Kind() uint8 { return KindCo2CalibrationResponse }

func (m Co2CalibrationResponseMsg) ToFrame() (Frame, error) {
	var data [8]byte
	data[0] = m.Code
	data[1] = byte(m.Pco2 >> 8)
	data[2] = byte(m.Pco2)
	return frameOf(KindCo2CalibrationResponse, 3, data)
}

func decodeCo2CalibrationResponse(f Frame) (Msg, error) {
	return Co2CalibrationResponseMsg{Code: f.Data[0], Pco2: uint16(f.Data[1])<<8 | uint16(f.Data[2])}, nil
}
