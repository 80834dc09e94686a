// Package alert maps the three disjoint DiveCAN alert code spaces
// (handset, temperature, Solo/ISO-TP/UDS) to human labels. Each numeric
// code has exactly one label; an unmatched code is preserved numerically.
package alert

import "fmt"

// Space identifies which of the three disjoint alert numeric spaces a
// code belongs to.
type Space uint8

const (
	SpaceHandset Space = iota
	SpaceTemperature
	SpaceSolo
)

func (s Space) String() string {
	switch s {
	case SpaceHandset:
		return "handset"
	case SpaceTemperature:
		return "temperature"
	case SpaceSolo:
		return "solo"
	default:
		return "unknown"
	}
}

// Handset alert codes: conditions a handset reports about its own shutdown.
const (
	HandsetShutdownWhileBluetooth uint16 = 0x21
	HandsetShutdownWhileDiving    uint16 = 0x23
	HandsetShutdownWhileFwUpgrade uint16 = 0x27
	HandsetShutdownWhileUnknown   uint16 = 0x28
)

// Temperature alert codes.
const (
	TemperatureProbeFailure uint16 = 0x201
)

// Solo / ISO-TP / UDS alert codes.
const (
	SoloCellStatusMaskZero             uint16 = 0x101
	SoloSetpointTimeout                uint16 = 0x103
	SoloSetpointUpdateTimeout          uint16 = 0x104
	SoloPpo2Below004Ppo2               uint16 = 0x108
	SoloSetpointOutOfRange             uint16 = 0x109
	SoloFwCrcFailed                    uint16 = 0x400
	SoloFwCrcReset                     uint16 = 0x401
	SoloReadSettingsFailed             uint16 = 0x402
	SoloSpiFlashBusy                   uint16 = 0x403
	SoloIsotpSingleFrameSendFailed     uint16 = 0x1502
	SoloIsotpFlowControlTimeout        uint16 = 0x1503
	SoloIsotpBusySingleFrame           uint16 = 0x1504
	SoloIsotpBusyFirstFrame            uint16 = 0x1505
	SoloUdsTransferDownloadOutOfRange  uint16 = 0x1581
	SoloUdsTransferDownloadProgFailed  uint16 = 0x1582
	SoloUdsTransferIncorrectMsgLength  uint16 = 0x1583
	SoloUdsTransferDownloadWrongSeq    uint16 = 0x1584
	SoloUdsTransferWrongBlockSeq       uint16 = 0x1586
	SoloUdsTransferRequestSeqError     uint16 = 0x1587
	SoloUdsTransferExitFailed          uint16 = 0x1588
	SoloUdsTransferNoBlocksTransferred uint16 = 0x1589
	SoloUdsTransferCrcVerifyFailed     uint16 = 0x158A
	SoloUdsTransferCrcMismatch         uint16 = 0x158B
	SoloUdsTransferVerifyProgFailed    uint16 = 0x158C
	SoloUdsTransferUploadFailed        uint16 = 0x158D
	SoloUdsTransferTimeout             uint16 = 0x158E
)

var handsetLabels = map[uint16]string{
	HandsetShutdownWhileBluetooth: "shutdown while Bluetooth active",
	HandsetShutdownWhileDiving:    "shutdown while diving",
	HandsetShutdownWhileFwUpgrade: "shutdown during firmware upgrade",
	HandsetShutdownWhileUnknown:   "shutdown for unknown reason",
}

var temperatureLabels = map[uint16]string{
	TemperatureProbeFailure: "temperature probe failure",
}

var soloLabels = map[uint16]string{
	SoloCellStatusMaskZero:             "no active oxygen cells",
	SoloSetpointTimeout:                "setpoint timeout",
	SoloSetpointUpdateTimeout:          "setpoint update timeout",
	SoloPpo2Below004Ppo2:               "ppO2 below 0.04",
	SoloSetpointOutOfRange:             "setpoint out of range",
	SoloFwCrcFailed:                    "firmware CRC check failed",
	SoloFwCrcReset:                     "reset due to firmware CRC error",
	SoloReadSettingsFailed:             "failed to read settings",
	SoloSpiFlashBusy:                   "SPI flash busy",
	SoloIsotpSingleFrameSendFailed:     "ISO-TP single-frame send failed",
	SoloIsotpFlowControlTimeout:        "ISO-TP flow-control timeout",
	SoloIsotpBusySingleFrame:           "ISO-TP busy (single frame)",
	SoloIsotpBusyFirstFrame:            "ISO-TP busy (first frame)",
	SoloUdsTransferDownloadOutOfRange:  "UDS download out of range",
	SoloUdsTransferDownloadProgFailed:  "UDS download programming failed",
	SoloUdsTransferIncorrectMsgLength:  "UDS incorrect message length",
	SoloUdsTransferDownloadWrongSeq:    "UDS wrong download sequence",
	SoloUdsTransferWrongBlockSeq:       "UDS wrong block sequence",
	SoloUdsTransferRequestSeqError:     "UDS request sequence error",
	SoloUdsTransferExitFailed:          "UDS transfer exit failed",
	SoloUdsTransferNoBlocksTransferred: "UDS no blocks transferred",
	SoloUdsTransferCrcVerifyFailed:     "UDS CRC verify failed",
	SoloUdsTransferCrcMismatch:         "UDS CRC mismatch",
	SoloUdsTransferVerifyProgFailed:    "UDS verify programming failed",
	SoloUdsTransferUploadFailed:        "UDS upload failed",
	SoloUdsTransferTimeout:             "UDS transfer timeout",
}

func tableFor(space Space) map[uint16]string {
	switch space {
	case SpaceHandset:
		return handsetLabels
	case SpaceTemperature:
		return temperatureLabels
	case SpaceSolo:
		return soloLabels
	default:
		return nil
	}
}

// Describe returns the human label for code within space, or a numeric
// fallback ("unknown(0x1234)") when the code is not registered.
func Describe(space Space, code uint16) string {
	if label, ok := tableFor(space)[code]; ok {
		return label
	}
	return fmt.Sprintf("unknown(0x%04X)", code)
}
