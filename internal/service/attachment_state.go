// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "github.com/MKhiriev/go-attach-keeper/internal/logger"

// transferState models the lifecycle of one attachment operation:
//
//	Idle → Encoding/Decoding → Verifying → {Success | IntegrityFailure |
//	CryptoFailure | TransportFailure | ValidationFailure}
//
// Terminal states are exclusive: once an operation reaches one, no further
// transition is recorded.
type transferState int

const (
	stateIdle transferState = iota
	stateEncoding
	stateDecoding
	stateVerifying
	stateSuccess
	stateValidationFailure
	stateCryptoFailure
	stateIntegrityFailure
	stateTransportFailure
)

// String implements fmt.Stringer.
func (s transferState) String() string {
	switch s {
	case stateIdle:
		return "idle"
	case stateEncoding:
		return "encoding"
	case stateDecoding:
		return "decoding"
	case stateVerifying:
		return "verifying"
	case stateSuccess:
		return "success"
	case stateValidationFailure:
		return "validation_failure"
	case stateCryptoFailure:
		return "crypto_failure"
	case stateIntegrityFailure:
		return "integrity_failure"
	case stateTransportFailure:
		return "transport_failure"
	default:
		return "unknown"
	}
}

// terminal reports whether s ends the operation.
func (s transferState) terminal() bool {
	return s >= stateSuccess
}

// transfer tracks one attachment operation and logs every state transition.
// The file name is the only identifying field logged — never key material,
// never plaintext.
type transfer struct {
	op       string
	fileName string
	state    transferState
	log      *logger.Logger
}

func newTransfer(op, fileName string, log *logger.Logger) *transfer {
	return &transfer{op: op, fileName: fileName, state: stateIdle, log: log}
}

// to moves the operation into next. Transitions out of a terminal state are
// ignored, which is what makes terminal states exclusive.
func (t *transfer) to(next transferState) {
	if t.state.terminal() {
		return
	}
	t.log.Debug().
		Str("op", t.op).
		Str("filename", t.fileName).
		Str("from", t.state.String()).
		Str("to", next.String()).
		Msg("attachment transfer state change")
	t.state = next
}
