package core

import (
	"errors"
	"fmt"

	"github.com/trivaneio/trivane-contracts/utils/msg"
)

var (
	// Authorization errors.
	ErrCallerNotOwner           = errors.New("caller is not the owner")
	ErrCallerNotMessenger       = errors.New("caller is not the messenger")
	ErrInvalidCrossDomainSender = errors.New("invalid cross-domain sender")

	// State errors.
	ErrChainAlreadySupported = errors.New("chain already supported")
	ErrChainNotSupported     = errors.New("chain not supported")

	// Validation errors.
	ErrZeroAddressOwner = errors.New("owner is the zero address")

	// Operational errors.
	ErrDeploymentFailed     = errors.New("deployment failed")
	ErrMessageSendingFailed = errors.New("message sending failed")
)

// SyncError reports a fan-out that stopped mid-loop. Failed is the domain
// whose send was rejected; Unsent are the domains the loop never reached.
// Messages accepted before the failure stay in flight. An operator replays
// Failed and Unsent by hand; the core never retries.
type SyncError struct {
	Failed msg.ChainId
	Unsent []msg.ChainId
	Cause  error
}

func (e *SyncError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("message sending failed for domain %d (%d unsent): %v", e.Failed, len(e.Unsent), e.Cause)
	}
	return fmt.Sprintf("message sending failed for domain %d (%d unsent)", e.Failed, len(e.Unsent))
}

func (e *SyncError) Unwrap() error {
	return ErrMessageSendingFailed
}
