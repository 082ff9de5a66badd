package client

import (
	"errors"
	"net"
	"net/http"
	"syscall"

	"github.com/kbukum/restkit"
	"github.com/kbukum/restkit/codec"
)

// Classify maps a raw transport outcome (payload bytes, status metadata,
// send error) onto the error taxonomy. It returns the success payload, or
// the classified error. A 204 yields an empty payload regardless of any
// bytes the transport handed back.
func Classify(payload []byte, status *restkit.Status, sendErr error, errDecoder restkit.ErrorDecoder) ([]byte, error) {
	if sendErr != nil {
		if isOffline(sendErr) {
			return nil, restkit.NewOfflineError(sendErr)
		}
		return nil, restkit.NewTransportError(sendErr)
	}
	if status == nil {
		return nil, restkit.NewProtocolViolationError()
	}
	if status.Code == http.StatusNoContent {
		return []byte{}, nil
	}
	if status.IsSuccess() {
		if payload == nil {
			return []byte{}, nil
		}
		return payload, nil
	}
	if len(payload) > 0 {
		if errDecoder == nil {
			errDecoder = codec.DefaultErrorDecoder
		}
		decoded, derr := errDecoder.DecodeError(payload)
		if derr != nil {
			return nil, restkit.NewErrorParseError(status.Code, payload, derr)
		}
		return nil, restkit.NewAPIError(status.Code, decoded, payload)
	}
	return nil, restkit.NewUnexpectedStatusError(status.Code)
}

// isOffline reports whether a send error is a connectivity-class failure
// (no route to the network rather than a misbehaving peer).
func isOffline(err error) bool {
	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return true
	}
	for _, errno := range []syscall.Errno{
		syscall.ECONNREFUSED,
		syscall.ENETDOWN,
		syscall.ENETUNREACH,
		syscall.EHOSTUNREACH,
	} {
		if errors.Is(err, errno) {
			return true
		}
	}
	return false
}
