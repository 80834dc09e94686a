package divecan

// AlertMsg (kind 0x02) reports a handset/temperature/Solo alert code, with
// up to 5 bytes of variant-specific detail. DLC varies 3..8 depending on
// how many detail bytes are present.
type AlertMsg struct {
	Unknown uint8
	Code    uint16
	Details []byte // 0..5 bytes
}

func (m AlertMsg) Kind() uint8 { return KindAlert }

func (m AlertMsg) ToFrame() (Frame, error) {
	if len(m.Details) > 5 {
		return Frame{}, ErrInvalidDlc
	}
	var data [8]byte
	data[0] = m.Unknown
	data[1] = byte(m.Code >> 8)
	data[2] = byte(m.Code)
	copy(data[3:], m.Details)
	dlc := uint8(3 + len(m.Details))
	return frameOf(KindAlert, dlc, data)
}

func decodeAlert(f Frame) (Msg, error) {
	details := make([]byte, f.Dlc-3)
	copy(details, f.Data[3:f.Dlc])
	return AlertMsg{
		Unknown: f.Data[0],
		Code:    uint16(f.Data[1])<<8 | uint16(f.Data[2]),
		Details: details,
	}, nil
}

// ShutdownInitMsg (kind 0x03) signals that a device is shutting down and why.
type ShutdownInitMsg struct {
	Reason ShutdownReason
}

func (m ShutdownInitMsg) Kind() uint8 { return KindShutdownInit }

func (m ShutdownInitMsg) ToFrame() (Frame, error) {
	var data [8]byte
	data[0] = uint8(m.Reason)
	return frameOf(KindShutdownInit, 1, data)
}

func decodeShutdownInit(f Frame) (Msg, error) {
	// Any reason outside the two named codes is preserved numerically;
	// ShutdownReason.String() reports it as unknown rather than rejecting it.
	return ShutdownInitMsg{Reason: ShutdownReason(f.Data[0])}, nil
}
