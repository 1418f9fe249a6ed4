package service

import (
	"errors"
	"fmt"
)

// Error taxonomy shared by every service. Handlers map these onto HTTP
// statuses; raw store errors never cross the handler boundary.
var (
	// ErrUnauthenticated — a write was attempted without an active session.
	ErrUnauthenticated = errors.New("não autenticado")
	// ErrNotFound — the referenced row does not exist for this account.
	ErrNotFound = errors.New("registro não encontrado")
	// ErrValidation — a local pre-check failed before any store call.
	ErrValidation = errors.New("erro de validação")
	// ErrUpstreamUnavailable — an external call (AI) failed or is uncredentialed.
	ErrUpstreamUnavailable = errors.New("serviço externo indisponível")
)

// WriteFailedError wraps a store-level mutation failure with its reason.
type WriteFailedError struct {
	Reason string
	Err    error
}

func (e *WriteFailedError) Error() string {
	return fmt.Sprintf("falha ao gravar: %s", e.Reason)
}

func (e *WriteFailedError) Unwrap() error { return e.Err }

// WriteFailed builds a WriteFailedError around a store error.
func WriteFailed(reason string, err error) error {
	return &WriteFailedError{Reason: reason, Err: err}
}

// IsWriteFailed reports whether err is (or wraps) a WriteFailedError.
func IsWriteFailed(err error) bool {
	var wf *WriteFailedError
	return errors.As(err, &wf)
}

// validationf wraps ErrValidation with a human-readable reason.
func validationf(format string, args ...interface{}) error {
	return fmt.Errorf("%w: "+format, append([]interface{}{ErrValidation}, args...)...)
}
