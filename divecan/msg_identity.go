package divecan

// IdMsg (kind 0x00) announces a device's manufacturer and protocol version.
type IdMsg struct {
	Manufacturer uint8
	Unused       uint8
	Version      uint8
}

func (m IdMsg) Kind() uint8 { return KindId }

func (m IdMsg) ToFrame() (Frame, error) {
	var data [8]byte
	data[0] = m.Manufacturer
	data[1] = m.Unused
	data[2] = m.Version
	return frameOf(KindId, 3, data)
}

func decodeId(f Frame) (Msg, error) {
	return IdMsg{Manufacturer: f.Data[0], Unused: f.Data[1], Version: f.Data[2]}, nil
}

// DeviceNameMsg (kind 0x01) carries an 8-byte ASCII device name.
type DeviceNameMsg struct {
	Name [8]byte
}

func (m DeviceNameMsg) Kind() uint8 { return KindDeviceName }

func (m DeviceNameMsg) ToFrame() (Frame, error) {
	return frameOf(KindDeviceName, 8, m.Name)
}

func decodeDeviceName(f Frame) (Msg, error) {
	return DeviceNameMsg{Name: f.Data}, nil
}

// SerialMsg (kind 0xD2) carries an 8-byte serial/identity blob.
type SerialMsg struct {
	Raw [8]byte
}

func (m SerialMsg) Kind() uint8 { return KindSerial }

func (m SerialMsg) ToFrame() (Frame, error) {
	return frameOf(KindSerial, 8, m.Raw)
}

func decodeSerial(f Frame) (Msg, error) {
	return SerialMsg{Raw: f.Data}, nil
}

// BusInitMsg (kind 0x37) is emitted during bus/network initialization; all
// three payload bytes are undocumented and preserved verbatim.
type BusInitMsg struct {
	Unused [3]byte
}

func (m BusInitMsg) Kind() uint8 { return KindBusInit }

func (m BusInitMsg) ToFrame() (Frame, error) {
	var data [8]byte
	copy(data[0:3], m.Unused[:])
	return frameOf(KindBusInit, 3, data)
}

func decodeBusInit(f Frame) (Msg, error) {
	var m BusInitMsg
	copy(m.Unused[:], f.Data[0:3])
	return m, nil
}

// NopMsg (kind 0x10) is an idle/keepalive frame; all 8 bytes are zero.
type NopMsg struct{}

func (m NopMsg) Kind() uint8 { return KindNop }

func (m NopMsg) ToFrame() (Frame, error) {
	var data [8]byte
	return frameOf(KindNop, 8, data)
}

func decodeNop(f Frame) (Msg, error) {
	return NopMsg{}, nil
}

// Undocumented30Msg (kind 0x30) has no known semantics; its three payload
// bytes are preserved byte-exact.
type Undocumented30Msg struct {
	Raw [3]byte
}

func (m Undocumented30Msg) Kind() uint8 { return KindUndocumented30 }

func (m Undocumented30Msg) ToFrame() (Frame, error) {
	var data [8]byte
	copy(data[0:3], m.Raw[:])
	return frameOf(KindUndocumented30, 3, data)
}

func decodeUndocumented30(f Frame) (Msg, error) {
	var m Undocumented30Msg
	copy(m.Raw[:], f.Data[0:3])
	return m, nil
}

// UdsMsg (kind 0x0A) carries a full 8-byte ISO-TP frame as opaque payload;
// the isotp/uds layers interpret its contents.
type UdsMsg struct {
	Raw [8]byte
}

func (m UdsMsg) Kind() uint8 { return KindUds }

func (m UdsMsg) ToFrame() (Frame, error) {
	return frameOf(KindUds, 8, m.Raw)
}

func decodeUds(f Frame) (Msg, error) {
	return UdsMsg{Raw: f.Data}, nil
}
