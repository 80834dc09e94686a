// Package transport defines the single-method boundary the uds client
// layer consumes. Concrete transports (SocketCAN over ISO-TP, SLIP over
// RFCOMM, BLE GATT) are external collaborators and are deliberately not
// implemented here; only the contract and a loopback test double live in
// this module.
package transport

import "fmt"

// TransportError wraps a transport-layer failure so udsclient can
// distinguish it from protocol-level errors without inspecting the
// underlying transport's error type.
type TransportError struct {
	Err error
}

func (e TransportError) Error() string { return fmt.Sprintf("transport: %v", e.Err) }
func (e TransportError) Unwrap() error { return e.Err }

// Transport performs one request/response exchange, returning the number
// of bytes written into responseBuffer. It owns framing (ISO-TP over CAN,
// SLIP over RFCOMM, or GATT-notification framing over BLE) and any
// inter-frame flow control below the UDS layer. The core treats this as
// an opaque, blocking, single-threaded call: it is the only suspension
// point in the stack.
type Transport interface {
	Request(requestBytes []byte, responseBuffer []byte) (int, error)
}
