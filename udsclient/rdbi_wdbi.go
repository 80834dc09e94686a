package udsclient

import (
	"github.com/soloprotocol/divecan/transport"
	"github.com/soloprotocol/divecan/uds"
)

// Rdbi performs a single ReadByIdentifier transaction and verifies the
// response echoes the requested DID. requestBuffer and
// responseBuffer are caller-owned scratch space; the returned Data slice
// borrows responseBuffer.
func Rdbi(tr transport.Transport, requestBuffer, responseBuffer []byte, did uint16) (uds.ReadByIdentifierResp, error) {
	req, err := uds.EncodeReadByIdentifierReq(requestBuffer, uds.ReadByIdentifierReq{Did: did})
	if err != nil {
		return uds.ReadByIdentifierResp{}, err
	}
	pdu, err := Transact(tr, req, responseBuffer)
	if err != nil {
		return uds.ReadByIdentifierResp{}, err
	}
	resp, err := uds.DecodeReadByIdentifierResp(pdu)
	if err != nil {
		return uds.ReadByIdentifierResp{}, wrapUnexpected(err)
	}
	if resp.Did != did {
		return uds.ReadByIdentifierResp{}, WrongDidError{Expected: did, Got: resp.Did}
	}
	return resp, nil
}

// Wdbi performs a single WriteByIdentifier transaction and verifies the
// response echoes the written DID.
func Wdbi(tr transport.Transport, requestBuffer, responseBuffer []byte, did uint16, data []byte) error {
	req, err := uds.EncodeWriteByIdentifierReq(requestBuffer, uds.WriteByIdentifierReq{Did: did, Data: data})
	if err != nil {
		return err
	}
	pdu, err := Transact(tr, req, responseBuffer)
	if err != nil {
		return err
	}
	resp, err := uds.DecodeWriteByIdentifierResp(pdu)
	if err != nil {
		return wrapUnexpected(err)
	}
	if resp.Did != did {
		return WrongDidError{Expected: did, Got: resp.Did}
	}
	return nil
}
