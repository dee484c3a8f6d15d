package logic

import (
	"fmt"

	"github.com/tarrantro/chatbot/ratelimit"
)

// NotFoundError reports a request for a name no user registered under.
type NotFoundError struct {
	Name string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("invalid user %s", e.Name)
}

// DenialError reports a request rejected by the rate limiter.
type DenialError struct {
	Reason ratelimit.Reason
}

func (e *DenialError) Error() string {
	switch e.Reason {
	case ratelimit.ReasonBurstLimit:
		return "each user can send 3 messages per 30 seconds"
	case ratelimit.ReasonDailyLimit:
		return "each user can send 20 messages per day"
	}
	return "rate limit exceeded"
}

// ProviderErrorKind distinguishes why a completion call failed.
type ProviderErrorKind int

const (
	ProviderTimeout ProviderErrorKind = iota
	ProviderTransport
	ProviderMalformed
)

// ProviderError reports a failed or unusable completion call. The attempt
// consumes no quota and persists nothing.
type ProviderError struct {
	Kind ProviderErrorKind
	Err  error
}

func (e *ProviderError) Error() string {
	switch e.Kind {
	case ProviderTimeout:
		return fmt.Sprintf("completion provider timed out: %v", e.Err)
	case ProviderMalformed:
		return "completion provider returned no candidates"
	}
	return fmt.Sprintf("completion provider call failed: %v", e.Err)
}

func (e *ProviderError) Unwrap() error { return e.Err }

// PersistError reports a storage write failure after a successful reply.
// The record set may be left inconsistent; pending Message rows mark which
// turns need reconciliation.
type PersistError struct {
	Op  string
	Err error
}

func (e *PersistError) Error() string {
	return fmt.Sprintf("failed to persist %s: %v", e.Op, e.Err)
}

func (e *PersistError) Unwrap() error { return e.Err }
