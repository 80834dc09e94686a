package uds

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRdbiRoundTripGoldenVector(t *testing.T) {
	buf := make([]byte, 16)
	pdu, err := EncodeReadByIdentifierReq(buf, ReadByIdentifierReq{Did: 0x8011})
	assert.NoError(t, err)
	assert.Equal(t, []byte{0x00, 0x22, 0x80, 0x11}, pdu)

	decoded, err := DecodeReadByIdentifierReq(pdu)
	assert.NoError(t, err)
	assert.Equal(t, ReadByIdentifierReq{Did: 0x8011}, decoded)

	resp := []byte{0x00, 0x62, 0x80, 0x11, 0x56, 0x37, 0x32}
	decodedResp, err := DecodeReadByIdentifierResp(resp)
	assert.NoError(t, err)
	assert.Equal(t, uint16(0x8011), decodedResp.Did)
	assert.Equal(t, "V72", string(decodedResp.Data))
}

func TestWdbiRoundTrip(t *testing.T) {
	buf := make([]byte, 16)
	pdu, err := EncodeWriteByIdentifierReq(buf, WriteByIdentifierReq{Did: 0x8200, Data: []byte{1, 2, 3, 4}})
	assert.NoError(t, err)

	decoded, err := DecodeWriteByIdentifierReq(pdu)
	assert.NoError(t, err)
	assert.Equal(t, uint16(0x8200), decoded.Did)
	assert.Equal(t, []byte{1, 2, 3, 4}, decoded.Data)

	respBuf := make([]byte, 8)
	respPdu, err := EncodeWriteByIdentifierResp(respBuf, WriteByIdentifierResp{Did: 0x8200})
	assert.NoError(t, err)
	decodedResp, err := DecodeWriteByIdentifierResp(respPdu)
	assert.NoError(t, err)
	assert.Equal(t, uint16(0x8200), decodedResp.Did)
}

func TestRequestDownloadRoundTrip(t *testing.T) {
	buf := make([]byte, 16)
	pdu, err := EncodeRequestDownloadReq(buf, TransferSetupReq{Address: 0x08000000, Size: 0x1000})
	assert.NoError(t, err)
	assert.Equal(t, []byte{0x00, 0x34, 0x00, 0x44, 0x08, 0x00, 0x00, 0x00, 0x00, 0x00, 0x10, 0x00}, pdu)

	decoded, err := DecodeRequestDownloadReq(pdu)
	assert.NoError(t, err)
	assert.Equal(t, TransferSetupReq{Address: 0x08000000, Size: 0x1000}, decoded)
}

func TestTransferSetupRespExposesMaxBlockLen(t *testing.T) {
	buf := make([]byte, 16)
	pdu, err := EncodeRequestDownloadResp(buf, TransferSetupResp{Payload: []byte{0x80}})
	assert.NoError(t, err)

	decoded, err := DecodeRequestDownloadResp(pdu)
	assert.NoError(t, err)
	mbl, ok := decoded.MaxBlockLen()
	assert.True(t, ok)
	assert.EqualValues(t, 0x80, mbl)

	empty := TransferSetupResp{}
	_, ok = empty.MaxBlockLen()
	assert.False(t, ok)
}

func TestTransferDataRoundTrip(t *testing.T) {
	buf := make([]byte, 32)
	pdu, err := EncodeTransferDataReq(buf, TransferDataPdu{BlockSeq: 1, Payload: []byte{1, 2, 3}})
	assert.NoError(t, err)

	decoded, err := DecodeTransferDataReq(pdu)
	assert.NoError(t, err)
	assert.Equal(t, byte(1), decoded.BlockSeq)
	assert.Equal(t, []byte{1, 2, 3}, decoded.Payload)
}

func TestTransferExitRoundTrip(t *testing.T) {
	buf := make([]byte, 4)
	pdu, err := EncodeTransferExitReq(buf)
	assert.NoError(t, err)
	assert.Equal(t, []byte{0x00, 0x37}, pdu)
	assert.NoError(t, DecodeTransferExitReq(pdu))
}

func TestEncodeFailsWhenBufferTooSmall(t *testing.T) {
	buf := make([]byte, 3)
	_, err := EncodeReadByIdentifierReq(buf, ReadByIdentifierReq{Did: 0x1234})
	assert.Error(t, err)
	var tooSmall ErrBufferTooSmall
	assert.ErrorAs(t, err, &tooSmall)
}

func TestCheckPositiveOnNegativeResponse(t *testing.T) {
	pdu := []byte{0x00, 0x7F, 0x22, 0x31}
	resp, isNegative := NewPduView(pdu).CheckPositive()
	assert.True(t, isNegative)
	assert.Equal(t, NegativeResponse{Service: 0x22, Code: ErrRequestOutOfRange}, resp)
}

func TestCheckPositiveRequiresFourBytes(t *testing.T) {
	pdu := []byte{0x00, 0x7F, 0x22}
	_, isNegative := NewPduView(pdu).CheckPositive()
	assert.False(t, isNegative)
}

func TestMakeNegativeResponse(t *testing.T) {
	buf := make([]byte, 4)
	pdu, err := MakeNegativeResponse(buf, 0x22, ErrRequestOutOfRange)
	assert.NoError(t, err)
	assert.Equal(t, []byte{0x00, 0x7F, 0x22, 0x31}, pdu)
}

func TestErrorCodeUnrecognizedIsNumeric(t *testing.T) {
	assert.Equal(t, "0x99", ErrorCode(0x99).String())
}
