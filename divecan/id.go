package divecan

// idPrefix identifies the DiveCAN family inside a 29-bit extended CAN
// identifier. Standard (11-bit) identifiers never carry this prefix and
// are ignored by receivers.
const idPrefix uint32 = 0x0D00_0000

// Id is the DiveCAN addressing triplet that packs into a 29-bit extended
// CAN identifier as idPrefix | kind<<16 | dst<<8 | src.
type Id struct {
	Src  uint8
	Dst  uint8
	Kind uint8
}

// CanID packs the triplet into the 29-bit extended identifier DiveCAN
// devices transmit on the wire.
func (id Id) CanID() uint32 {
	return idPrefix | uint32(id.Kind)<<16 | uint32(id.Dst)<<8 | uint32(id.Src)
}

// IdFromCanID unpacks a 29-bit extended CAN identifier into a DiveCAN
// addressing triplet. ok is false when the identifier does not carry the
// DiveCAN prefix (standard 11-bit identifiers always fail this check).
func IdFromCanID(canID uint32) (id Id, ok bool) {
	if canID&0xFF00_0000 != idPrefix {
		return Id{}, false
	}
	return Id{
		Src:  uint8(canID),
		Dst:  uint8(canID >> 8),
		Kind: uint8(canID >> 16),
	}, true
}

// Reply swaps source and destination and sets a new message kind, the
// addressing a device uses when responding to a request it received.
func (id Id) Reply(kind uint8) Id {
	return Id{Src: id.Dst, Dst: id.Src, Kind: kind}
}
