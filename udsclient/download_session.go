package udsclient

import (
	log "github.com/sirupsen/logrus"

	"github.com/soloprotocol/divecan/transport"
	"github.com/soloprotocol/divecan/uds"
)

// DownloadSession drives a RequestDownload / TransferData* / TransferExit
// sequence against a device, tracking the block sequence counter: it
// starts at 1 and wraps modulo 256, and every response is checked against
// the block the session itself just sent (never trusted blind).
type DownloadSession struct {
	tr        transport.Transport
	nextBlock byte
	maxBlock  byte
	haveLen   bool
}

// Start issues RequestDownload for [address, address+size) and records the
// device's reported max block length for the caller's own chunking
// decisions; it fails with ErrEmptyPayload when the response carries no
// bytes. requestBuffer/responseBuffer are reused for every call the
// session makes.
func (s *DownloadSession) Start(tr transport.Transport, requestBuffer, responseBuffer []byte, address, size uint32) (byte, error) {
	s.tr = tr
	s.nextBlock = 1

	req, err := uds.EncodeRequestDownloadReq(requestBuffer, uds.TransferSetupReq{Address: address, Size: size})
	if err != nil {
		return 0, err
	}
	pdu, err := Transact(tr, req, responseBuffer)
	if err != nil {
		return 0, err
	}
	resp, err := uds.DecodeRequestDownloadResp(pdu)
	if err != nil {
		return 0, wrapUnexpected(err)
	}
	mbl, ok := resp.MaxBlockLen()
	if !ok {
		return 0, ErrEmptyPayload
	}
	s.maxBlock = mbl
	s.haveLen = true
	log.WithFields(log.Fields{"address": address, "size": size, "max_block_len": mbl}).
		Debug("udsclient: download session started")
	return mbl, nil
}

// MaxBlockLen returns the block length the device advertised in Start.
func (s *DownloadSession) MaxBlockLen() (byte, bool) { return s.maxBlock, s.haveLen }

// SendBlock transfers one chunk of payload, tagged with the session's
// current block counter, and verifies the device echoes that same
// counter back before advancing it.
func (s *DownloadSession) SendBlock(requestBuffer, responseBuffer []byte, payload []byte) error {
	req, err := uds.EncodeTransferDataReq(requestBuffer, uds.TransferDataPdu{BlockSeq: s.nextBlock, Payload: payload})
	if err != nil {
		return err
	}
	pdu, err := Transact(s.tr, req, responseBuffer)
	if err != nil {
		return err
	}
	resp, err := uds.DecodeTransferDataResp(pdu)
	if err != nil {
		return wrapUnexpected(err)
	}
	if resp.BlockSeq != s.nextBlock {
		log.WithFields(log.Fields{"expected": s.nextBlock, "got": resp.BlockSeq}).
			Warn("udsclient: wrong block counter in download response")
		return WrongBlockCounterError{Expected: s.nextBlock, Got: resp.BlockSeq}
	}
	s.nextBlock++
	return nil
}

// Finish sends TransferExit, ending the session.
func (s *DownloadSession) Finish(requestBuffer, responseBuffer []byte) error {
	req, err := uds.EncodeTransferExitReq(requestBuffer)
	if err != nil {
		return err
	}
	pdu, err := Transact(s.tr, req, responseBuffer)
	if err != nil {
		return err
	}
	if err := uds.DecodeTransferExitResp(pdu); err != nil {
		return wrapUnexpected(err)
	}
	return nil
}
