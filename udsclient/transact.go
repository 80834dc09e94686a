package udsclient

import (
	log "github.com/sirupsen/logrus"

	"github.com/soloprotocol/divecan/transport"
	"github.com/soloprotocol/divecan/uds"
)

// Transact performs one request/response exchange over tr: it sends
// requestBytes, reads the reply into responseBuffer, checks the reported
// length and whether the reply is a negative response, and hands the
// whole response PDU back to the caller for decoding. It is the
// single suspension point every higher-level helper in this package
// funnels through.
//
// On a negative response it returns a NegativeResponseError; the caller
// never sees a positive-shaped zero value in that case.
func Transact(tr transport.Transport, requestBytes []byte, responseBuffer []byte) ([]byte, error) {
	n, err := tr.Request(requestBytes, responseBuffer)
	if err != nil {
		return nil, transport.TransportError{Err: err}
	}
	if n > len(responseBuffer) {
		return nil, ErrResponseTooLarge{Got: n, Capacity: len(responseBuffer)}
	}
	pdu := responseBuffer[:n]

	view := uds.NewPduView(pdu)
	if neg, isNegative := view.CheckPositive(); isNegative {
		log.WithFields(log.Fields{"service": neg.Service, "code": neg.Code}).
			Warn("udsclient: negative response")
		return nil, NegativeResponseError{Service: neg.Service, Code: neg.Code}
	}
	return pdu, nil
}
