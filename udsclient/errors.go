// Package udsclient implements the client-side UDS session layer:
// request/response transactions, single-shot RDBI/WDBI, and the
// block-sequenced DownloadSession/UploadSession state machines.
package udsclient

import (
	"fmt"

	"github.com/soloprotocol/divecan/uds"
)

// NegativeResponseError reports a UDS negative response: the rejected
// service id and the error code. Callers use errors.As to recover it.
type NegativeResponseError struct {
	Service byte
	Code    uds.ErrorCode
}

func (e NegativeResponseError) Error() string {
	return fmt.Sprintf("udsclient: negative response from service 0x%02X: %s", e.Service, e.Code)
}

// ErrResponseTooLarge is returned by Transact when the transport reports
// more bytes written than the caller's receive buffer can hold.
type ErrResponseTooLarge struct {
	Got      int
	Capacity int
}

func (e ErrResponseTooLarge) Error() string {
	return fmt.Sprintf("udsclient: response too large: got %d bytes, buffer holds %d", e.Got, e.Capacity)
}

// Protocol errors: violations of client-side invariants detected after a
// positive response was already decoded.
type WrongDidError struct {
	Expected, Got uint16
}

func (e WrongDidError) Error() string {
	return fmt.Sprintf("udsclient: wrong did in response: expected 0x%04X, got 0x%04X", e.Expected, e.Got)
}

type WrongBlockCounterError struct {
	Expected, Got byte
}

func (e WrongBlockCounterError) Error() string {
	return fmt.Sprintf("udsclient: wrong block counter in response: expected %d, got %d", e.Expected, e.Got)
}

// ErrEmptyPayload is returned by DownloadSession.Start when
// RequestDownload's response carries no bytes (so no max block length is
// available).
type errEmptyPayload struct{}

func (errEmptyPayload) Error() string { return "udsclient: response carried no payload" }

var ErrEmptyPayload error = errEmptyPayload{}

// errUnexpectedResponse (built by wrapUnexpected) is returned when a
// response fails to decode as the expected service's response shape; it
// unwraps to the underlying decode error.
type errUnexpectedResponse struct{ inner error }

func (e errUnexpectedResponse) Error() string { return fmt.Sprintf("udsclient: unexpected response: %v", e.inner) }
func (e errUnexpectedResponse) Unwrap() error  { return e.inner }

func wrapUnexpected(err error) error { return errUnexpectedResponse{inner: err} }
