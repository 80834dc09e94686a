package uds

import "encoding/binary"

const (
	RequestDownloadReqSid  byte = 0x34
	RequestDownloadRespSid byte = 0x74
	RequestUploadReqSid    byte = 0x35
	RequestUploadRespSid   byte = 0x75

	dataFormatIdentifier          byte = 0x00
	addressAndLengthFormatID      byte = 0x44
	transferSetupReqBodyLen            = 10 // dfi + alfi + 4-byte address + 4-byte size
)

// TransferSetupReq is the common request shape of RequestDownload and
// RequestUpload: a fixed 4-byte address and a fixed 4-byte size, framed
// with a constant data-format and address-and-length-format byte pair.
type TransferSetupReq struct {
	Address uint32
	Size    uint32
}

func encodeTransferSetupReq(buf []byte, sid byte, req TransferSetupReq) ([]byte, error) {
	w := NewPduWriter(buf)
	if err := w.SetHeader(sid); err != nil {
		return nil, err
	}
	var body [transferSetupReqBodyLen]byte
	body[0] = dataFormatIdentifier
	body[1] = addressAndLengthFormatID
	binary.BigEndian.PutUint32(body[2:6], req.Address)
	binary.BigEndian.PutUint32(body[6:10], req.Size)
	if err := w.Push(body[:]); err != nil {
		return nil, err
	}
	return w.AsBytes(), nil
}

func decodeTransferSetupReq(pdu []byte, sid byte) (TransferSetupReq, error) {
	body, err := NewPduView(pdu).ExpectSid(sid, 2+transferSetupReqBodyLen)
	if err != nil {
		return TransferSetupReq{}, err
	}
	return TransferSetupReq{
		Address: binary.BigEndian.Uint32(body[2:6]),
		Size:    binary.BigEndian.Uint32(body[6:10]),
	}, nil
}

// TransferSetupResp is the opaque response to RequestDownload/Upload. Its
// first byte, when present, is the max block length for subsequent
// TransferData requests.
type TransferSetupResp struct {
	Payload []byte
}

// MaxBlockLen returns the response's first byte and true, or 0 and false
// if the response carried no bytes.
func (r TransferSetupResp) MaxBlockLen() (byte, bool) {
	if len(r.Payload) == 0 {
		return 0, false
	}
	return r.Payload[0], true
}

func encodeTransferSetupResp(buf []byte, sid byte, resp TransferSetupResp) ([]byte, error) {
	w := NewPduWriter(buf)
	if err := w.SetHeader(sid); err != nil {
		return nil, err
	}
	if err := w.Push(resp.Payload); err != nil {
		return nil, err
	}
	return w.AsBytes(), nil
}

func decodeTransferSetupResp(pdu []byte, sid byte) (TransferSetupResp, error) {
	body, err := NewPduView(pdu).ExpectSid(sid, 2)
	if err != nil {
		return TransferSetupResp{}, err
	}
	return TransferSetupResp{Payload: body}, nil
}

func EncodeRequestDownloadReq(buf []byte, req TransferSetupReq) ([]byte, error) {
	return encodeTransferSetupReq(buf, RequestDownloadReqSid, req)
}

func DecodeRequestDownloadReq(pdu []byte) (TransferSetupReq, error) {
	return decodeTransferSetupReq(pdu, RequestDownloadReqSid)
}

func EncodeRequestDownloadResp(buf []byte, resp TransferSetupResp) ([]byte, error) {
	return encodeTransferSetupResp(buf, RequestDownloadRespSid, resp)
}

func DecodeRequestDownloadResp(pdu []byte) (TransferSetupResp, error) {
	return decodeTransferSetupResp(pdu, RequestDownloadRespSid)
}

func EncodeRequestUploadReq(buf []byte, req TransferSetupReq) ([]byte, error) {
	return encodeTransferSetupReq(buf, RequestUploadReqSid, req)
}

func DecodeRequestUploadReq(pdu []byte) (TransferSetupReq, error) {
	return decodeTransferSetupReq(pdu, RequestUploadReqSid)
}

func EncodeRequestUploadResp(buf []byte, resp TransferSetupResp) ([]byte, error) {
	return encodeTransferSetupResp(buf, RequestUploadRespSid, resp)
}

func DecodeRequestUploadResp(pdu []byte) (TransferSetupResp, error) {
	return decodeTransferSetupResp(pdu, RequestUploadRespSid)
}
