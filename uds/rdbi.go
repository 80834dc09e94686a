package uds

import "encoding/binary"

const (
	RdbiReqSid  byte = 0x22
	RdbiRespSid byte = 0x62
)

// ReadByIdentifierReq is the RDBI request: a single DID.
type ReadByIdentifierReq struct {
	Did uint16
}

// EncodeReadByIdentifierReq writes the request PDU into buf.
func EncodeReadByIdentifierReq(buf []byte, req ReadByIdentifierReq) ([]byte, error) {
	w := NewPduWriter(buf)
	if err := w.SetHeader(RdbiReqSid); err != nil {
		return nil, err
	}
	var did [2]byte
	binary.BigEndian.PutUint16(did[:], req.Did)
	if err := w.Push(did[:]); err != nil {
		return nil, err
	}
	return w.AsBytes(), nil
}

// DecodeReadByIdentifierReq parses an RDBI request PDU.
func DecodeReadByIdentifierReq(pdu []byte) (ReadByIdentifierReq, error) {
	body, err := NewPduView(pdu).ExpectSid(RdbiReqSid, 4)
	if err != nil {
		return ReadByIdentifierReq{}, err
	}
	return ReadByIdentifierReq{Did: binary.BigEndian.Uint16(body)}, nil
}

// ReadByIdentifierResp is the RDBI response: the echoed DID and the data
// value. Data borrows the decoding buffer.
type ReadByIdentifierResp struct {
	Did  uint16
	Data []byte
}

// EncodeReadByIdentifierResp writes the response PDU into buf.
func EncodeReadByIdentifierResp(buf []byte, resp ReadByIdentifierResp) ([]byte, error) {
	w := NewPduWriter(buf)
	if err := w.SetHeader(RdbiRespSid); err != nil {
		return nil, err
	}
	var did [2]byte
	binary.BigEndian.PutUint16(did[:], resp.Did)
	if err := w.Push(did[:]); err != nil {
		return nil, err
	}
	if err := w.Push(resp.Data); err != nil {
		return nil, err
	}
	return w.AsBytes(), nil
}

// DecodeReadByIdentifierResp parses an RDBI response PDU. Minimum total
// length is 4 (header + DID).
func DecodeReadByIdentifierResp(pdu []byte) (ReadByIdentifierResp, error) {
	body, err := NewPduView(pdu).ExpectSid(RdbiRespSid, 4)
	if err != nil {
		return ReadByIdentifierResp{}, err
	}
	return ReadByIdentifierResp{Did: binary.BigEndian.Uint16(body[:2]), Data: body[2:]}, nil
}
