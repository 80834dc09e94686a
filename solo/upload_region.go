// Package solo implements the device-specific helpers layered on top of
// uds/udsclient that are particular to the Solo rebreather controller:
// the upload region catalog, the persisted log format's entry iterator
// and decryption keystream, and the STM32 hardware CRC-32 variant used to
// authenticate both firmware and log data.
package solo

import "fmt"

// UploadRegion describes one addressable memory region a device exposes
// via RequestUpload/RequestDownload, along with the alignment and size
// constraints a caller must respect.
type UploadRegion struct {
	Name      string
	AddrMin   uint32
	AddrMax   uint32
	AddrAlign uint32
	SizeMin   uint32
	SizeMax   uint32
	SizeAlign uint32
}

var (
	MmcStart = UploadRegion{
		Name: "MMC_START", AddrMin: 0xC2000080, AddrMax: 0xC2000FFF,
		AddrAlign: 8, SizeMin: 8, SizeMax: 0xFFFFFFFF, SizeAlign: 8,
	}
	MmcLog = UploadRegion{
		Name: "MMC_LOG", AddrMin: 0xC3001000, AddrMax: 0xC3FFFFFF,
		AddrAlign: 0, SizeMin: 12, SizeMax: 0x00FFF000, SizeAlign: 12,
	}
	McuDevinfo = UploadRegion{
		Name: "MCU_DEVINFO", AddrMin: 0xC5000000, AddrMax: 0xC500007F,
		AddrAlign: 0, SizeMin: 1, SizeMax: 0x80, SizeAlign: 0,
	}
)

// Regions lists every catalogued upload region, in table order.
var Regions = []UploadRegion{MmcStart, MmcLog, McuDevinfo}

// ErrOutOfRange reports an address or size that falls outside a region's
// bounds or violates its alignment.
type ErrOutOfRange struct {
	Region string
	Reason string
}

func (e ErrOutOfRange) Error() string {
	return fmt.Sprintf("solo: %s violates %s constraints: %s", e.Region, e.Region, e.Reason)
}

// Validate checks that address lies within r's address range and that
// address and size satisfy r's alignment and size bounds. The end of the
// span, address+size, is not checked against AddrMax.
func (r UploadRegion) Validate(address, size uint32) error {
	if address < r.AddrMin || address > r.AddrMax {
		return ErrOutOfRange{Region: r.Name, Reason: fmt.Sprintf("address 0x%08X outside [0x%08X, 0x%08X]", address, r.AddrMin, r.AddrMax)}
	}
	if r.AddrAlign != 0 && address%r.AddrAlign != 0 {
		return ErrOutOfRange{Region: r.Name, Reason: fmt.Sprintf("address 0x%08X not aligned to %d", address, r.AddrAlign)}
	}
	if size < r.SizeMin || size > r.SizeMax {
		return ErrOutOfRange{Region: r.Name, Reason: fmt.Sprintf("size %d outside [%d, %d]", size, r.SizeMin, r.SizeMax)}
	}
	if r.SizeAlign != 0 && size%r.SizeAlign != 0 {
		return ErrOutOfRange{Region: r.Name, Reason: fmt.Sprintf("size %d not aligned to %d", size, r.SizeAlign)}
	}
	return nil
}
