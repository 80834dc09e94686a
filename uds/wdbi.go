package uds

import "encoding/binary"

const (
	WdbiReqSid  byte = 0x2E
	WdbiRespSid byte = 0x6E
)

// WriteByIdentifierReq is the WDBI request: a DID plus the data to write.
type WriteByIdentifierReq struct {
	Did  uint16
	Data []byte
}

func EncodeWriteByIdentifierReq(buf []byte, req WriteByIdentifierReq) ([]byte, error) {
	w := NewPduWriter(buf)
	if err := w.SetHeader(WdbiReqSid); err != nil {
		return nil, err
	}
	var did [2]byte
	binary.BigEndian.PutUint16(did[:], req.Did)
	if err := w.Push(did[:]); err != nil {
		return nil, err
	}
	if err := w.Push(req.Data); err != nil {
		return nil, err
	}
	return w.AsBytes(), nil
}

func DecodeWriteByIdentifierReq(pdu []byte) (WriteByIdentifierReq, error) {
	body, err := NewPduView(pdu).ExpectSid(WdbiReqSid, 4)
	if err != nil {
		return WriteByIdentifierReq{}, err
	}
	return WriteByIdentifierReq{Did: binary.BigEndian.Uint16(body[:2]), Data: body[2:]}, nil
}

// WriteByIdentifierResp is the WDBI response: the echoed DID, no data.
type WriteByIdentifierResp struct {
	Did uint16
}

func EncodeWriteByIdentifierResp(buf []byte, resp WriteByIdentifierResp) ([]byte, error) {
	w := NewPduWriter(buf)
	if err := w.SetHeader(WdbiRespSid); err != nil {
		return nil, err
	}
	var did [2]byte
	binary.BigEndian.PutUint16(did[:], resp.Did)
	if err := w.Push(did[:]); err != nil {
		return nil, err
	}
	return w.AsBytes(), nil
}

func DecodeWriteByIdentifierResp(pdu []byte) (WriteByIdentifierResp, error) {
	body, err := NewPduView(pdu).ExpectSid(WdbiRespSid, 4)
	if err != nil {
		return WriteByIdentifierResp{}, err
	}
	if len(body) != 2 {
		return WriteByIdentifierResp{}, DecodeError{Kind: BadLength, Needed: 4}
	}
	return WriteByIdentifierResp{Did: binary.BigEndian.Uint16(body)}, nil
}
