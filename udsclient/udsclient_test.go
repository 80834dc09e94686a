package udsclient

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/soloprotocol/divecan/transport"
	"github.com/soloprotocol/divecan/uds"
)

func TestRdbiHappyPath(t *testing.T) {
	lb := &transport.Loopback{Handle: func(reqBytes, respBuf []byte) (int, error) {
		req, err := uds.DecodeReadByIdentifierReq(reqBytes)
		assert.NoError(t, err)
		pdu, err := uds.EncodeReadByIdentifierResp(respBuf, uds.ReadByIdentifierResp{Did: req.Did, Data: []byte("V72")})
		assert.NoError(t, err)
		return len(pdu), nil
	}}

	reqBuf := make([]byte, 16)
	respBuf := make([]byte, 16)
	resp, err := Rdbi(lb, reqBuf, respBuf, 0x8011)
	assert.NoError(t, err)
	assert.Equal(t, "V72", string(resp.Data))
}

func TestRdbiWrongDidIsProtocolError(t *testing.T) {
	lb := &transport.Loopback{Handle: func(reqBytes, respBuf []byte) (int, error) {
		pdu, err := uds.EncodeReadByIdentifierResp(respBuf, uds.ReadByIdentifierResp{Did: 0x9999, Data: []byte{1}})
		assert.NoError(t, err)
		return len(pdu), nil
	}}

	reqBuf := make([]byte, 16)
	respBuf := make([]byte, 16)
	_, err := Rdbi(lb, reqBuf, respBuf, 0x8011)
	var wrongDid WrongDidError
	assert.ErrorAs(t, err, &wrongDid)
	assert.Equal(t, uint16(0x8011), wrongDid.Expected)
	assert.Equal(t, uint16(0x9999), wrongDid.Got)
}

func TestWdbiHappyPath(t *testing.T) {
	lb := &transport.Loopback{Handle: func(reqBytes, respBuf []byte) (int, error) {
		req, err := uds.DecodeWriteByIdentifierReq(reqBytes)
		assert.NoError(t, err)
		pdu, err := uds.EncodeWriteByIdentifierResp(respBuf, uds.WriteByIdentifierResp{Did: req.Did})
		assert.NoError(t, err)
		return len(pdu), nil
	}}

	reqBuf := make([]byte, 16)
	respBuf := make([]byte, 16)
	assert.NoError(t, Wdbi(lb, reqBuf, respBuf, 0x8200, []byte{1, 2, 3, 4}))
}

func TestTransactSurfacesNegativeResponse(t *testing.T) {
	lb := &transport.Loopback{Handle: func(reqBytes, respBuf []byte) (int, error) {
		pdu, err := uds.MakeNegativeResponse(respBuf, uds.RdbiReqSid, uds.ErrRequestOutOfRange)
		assert.NoError(t, err)
		return len(pdu), nil
	}}

	reqBuf := make([]byte, 16)
	respBuf := make([]byte, 16)
	_, err := Rdbi(lb, reqBuf, respBuf, 0x8011)
	var negative NegativeResponseError
	assert.ErrorAs(t, err, &negative)
	assert.Equal(t, uds.ErrRequestOutOfRange, negative.Code)
}

// TestDownloadSessionHappyPath exercises RequestDownload, two TransferData
// blocks, and TransferExit end to end, verifying the block counter
// advances 1, 2 across the two sends.
func TestDownloadSessionHappyPath(t *testing.T) {
	var received []byte
	var seenBlocks []byte

	lb := &transport.Loopback{Handle: func(reqBytes, respBuf []byte) (int, error) {
		view := uds.NewPduView(reqBytes)
		sid, err := view.Sid()
		assert.NoError(t, err)
		switch sid {
		case uds.RequestDownloadReqSid:
			pdu, err := uds.EncodeRequestDownloadResp(respBuf, uds.TransferSetupResp{Payload: []byte{0x04}})
			assert.NoError(t, err)
			return len(pdu), nil
		case uds.TransferDataReqSid:
			req, err := uds.DecodeTransferDataReq(reqBytes)
			assert.NoError(t, err)
			seenBlocks = append(seenBlocks, req.BlockSeq)
			received = append(received, req.Payload...)
			pdu, err := uds.EncodeTransferDataResp(respBuf, uds.TransferDataPdu{BlockSeq: req.BlockSeq})
			assert.NoError(t, err)
			return len(pdu), nil
		case uds.TransferExitReqSid:
			pdu, err := uds.EncodeTransferExitResp(respBuf)
			assert.NoError(t, err)
			return len(pdu), nil
		default:
			t.Fatalf("unexpected sid 0x%02X", sid)
			return 0, nil
		}
	}}

	var session DownloadSession
	reqBuf := make([]byte, 32)
	respBuf := make([]byte, 32)

	mbl, err := session.Start(lb, reqBuf, respBuf, 0x08000000, 8)
	assert.NoError(t, err)
	assert.EqualValues(t, 0x04, mbl)

	assert.NoError(t, session.SendBlock(reqBuf, respBuf, []byte{0xAA, 0xBB, 0xCC, 0xDD}))
	assert.NoError(t, session.SendBlock(reqBuf, respBuf, []byte{0xEE, 0xFF}))
	assert.NoError(t, session.Finish(reqBuf, respBuf))

	assert.Equal(t, []byte{1, 2}, seenBlocks)
	assert.Equal(t, []byte{0xAA, 0xBB, 0xCC, 0xDD, 0xEE, 0xFF}, received)
}

// TestDownloadSessionRejectsWrongBlockCounter verifies a response echoing
// the wrong block counter is a protocol error, not silently accepted.
func TestDownloadSessionRejectsWrongBlockCounter(t *testing.T) {
	lb := &transport.Loopback{Handle: func(reqBytes, respBuf []byte) (int, error) {
		view := uds.NewPduView(reqBytes)
		sid, _ := view.Sid()
		if sid == uds.RequestDownloadReqSid {
			pdu, err := uds.EncodeRequestDownloadResp(respBuf, uds.TransferSetupResp{Payload: []byte{0x04}})
			assert.NoError(t, err)
			return len(pdu), nil
		}
		// Always echo block 5, regardless of what was requested.
		pdu, err := uds.EncodeTransferDataResp(respBuf, uds.TransferDataPdu{BlockSeq: 5})
		assert.NoError(t, err)
		return len(pdu), nil
	}}

	var session DownloadSession
	reqBuf := make([]byte, 32)
	respBuf := make([]byte, 32)

	_, err := session.Start(lb, reqBuf, respBuf, 0, 8)
	assert.NoError(t, err)

	err = session.SendBlock(reqBuf, respBuf, []byte{0x01})
	var wrongBlock WrongBlockCounterError
	assert.ErrorAs(t, err, &wrongBlock)
	assert.Equal(t, byte(1), wrongBlock.Expected)
	assert.Equal(t, byte(5), wrongBlock.Got)
}

// TestUploadSessionStopsOnEmptyPayload verifies an empty TransferData
// response payload ends the upload, and the accumulated bytes match what
// the device handed back.
func TestUploadSessionStopsOnEmptyPayload(t *testing.T) {
	blocks := [][]byte{{0x01, 0x02, 0x03}, {0x04, 0x05}, {}}
	call := 0

	lb := &transport.Loopback{Handle: func(reqBytes, respBuf []byte) (int, error) {
		view := uds.NewPduView(reqBytes)
		sid, _ := view.Sid()
		if sid == uds.RequestUploadReqSid {
			pdu, err := uds.EncodeRequestUploadResp(respBuf, uds.TransferSetupResp{Payload: []byte{0x08}})
			assert.NoError(t, err)
			return len(pdu), nil
		}
		if sid == uds.TransferExitReqSid {
			pdu, err := uds.EncodeTransferExitResp(respBuf)
			assert.NoError(t, err)
			return len(pdu), nil
		}
		req, err := uds.DecodeTransferDataReq(reqBytes)
		assert.NoError(t, err)
		pdu, err := uds.EncodeTransferDataResp(respBuf, uds.TransferDataPdu{BlockSeq: req.BlockSeq, Payload: blocks[call]})
		assert.NoError(t, err)
		call++
		return len(pdu), nil
	}}

	var session UploadSession
	reqBuf := make([]byte, 32)
	respBuf := make([]byte, 32)

	// Declared size exceeds the bytes the device hands back, so only the
	// empty payload can end the upload.
	_, err := session.Start(lb, reqBuf, respBuf, 0, 16, 0)
	assert.NoError(t, err)

	var collected []byte
	for {
		payload, done, err := session.ReadBlock(reqBuf, respBuf)
		assert.NoError(t, err)
		if done {
			break
		}
		collected = append(collected, payload...)
	}
	assert.Equal(t, []byte{0x01, 0x02, 0x03, 0x04, 0x05}, collected)
	assert.NoError(t, session.Finish(reqBuf, respBuf))
}
