package udsclient

import (
	log "github.com/sirupsen/logrus"

	"github.com/soloprotocol/divecan/transport"
	"github.com/soloprotocol/divecan/uds"
)

// UploadSession drives a RequestUpload / TransferData* / TransferExit
// sequence, mirroring DownloadSession but for the read direction: the
// client requests each block and the device supplies the payload.
type UploadSession struct {
	tr          transport.Transport
	nextBlock   byte
	maxBlock    byte
	haveLen     bool
	totalSize   uint32
	transferred uint32
}

// Start issues RequestUpload for [address, address+size). dlf is the
// data-format-length field whose wire encoding is not yet understood: it
// is accepted here and threaded through so callers that later learn its
// meaning have somewhere to put it, but it is not encoded into the
// request today.
func (s *UploadSession) Start(tr transport.Transport, requestBuffer, responseBuffer []byte, address, size uint32, dlf byte) (byte, error) {
	_ = dlf
	s.tr = tr
	s.nextBlock = 1
	s.totalSize = size
	s.transferred = 0

	req, err := uds.EncodeRequestUploadReq(requestBuffer, uds.TransferSetupReq{Address: address, Size: size})
	if err != nil {
		return 0, err
	}
	pdu, err := Transact(tr, req, responseBuffer)
	if err != nil {
		return 0, err
	}
	resp, err := uds.DecodeRequestUploadResp(pdu)
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
		Debug("udsclient: upload session started")
	return mbl, nil
}

// MaxBlockLen returns the block length the device advertised in Start.
func (s *UploadSession) MaxBlockLen() (byte, bool) { return s.maxBlock, s.haveLen }

// ReadBlock requests the next block and returns its payload. Once the
// session has transferred the size declared in Start, or the device
// replies with an empty payload, it reports done without making a
// further request; the session's block counter is not advanced past
// end-of-stream so a repeated ReadBlock call after done=true is a
// protocol error the caller should not make, not one this layer
// re-validates.
func (s *UploadSession) ReadBlock(requestBuffer, responseBuffer []byte) (payload []byte, done bool, err error) {
	if s.transferred >= s.totalSize {
		return nil, true, nil
	}

	req, err := uds.EncodeTransferDataReq(requestBuffer, uds.TransferDataPdu{BlockSeq: s.nextBlock})
	if err != nil {
		return nil, false, err
	}
	pdu, err := Transact(s.tr, req, responseBuffer)
	if err != nil {
		return nil, false, err
	}
	resp, err := uds.DecodeTransferDataResp(pdu)
	if err != nil {
		return nil, false, wrapUnexpected(err)
	}
	if resp.BlockSeq != s.nextBlock {
		log.WithFields(log.Fields{"expected": s.nextBlock, "got": resp.BlockSeq}).
			Warn("udsclient: wrong block counter in upload response")
		return nil, false, WrongBlockCounterError{Expected: s.nextBlock, Got: resp.BlockSeq}
	}
	if len(resp.Payload) == 0 {
		return nil, true, nil
	}
	s.nextBlock++
	s.transferred += uint32(len(resp.Payload))
	return resp.Payload, false, nil
}

// Finish sends TransferExit, ending the session.
func (s *UploadSession) Finish(requestBuffer, responseBuffer []byte) error {
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
