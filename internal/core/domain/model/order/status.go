package order

import (
	"fmt"

	"dispatch/internal/pkg/errs"
)

// Status represents the lifecycle state of a concrete-delivery order.
//
// The usual progression is:
//
//	PendingApproval ──> Approved ──> InProduction ──> Dispatched ──> Delivered
//	       │
//	       └──> Rejected
//
// Transitions are deliberately not enforced: each scheduling operation sets the
// status it stands for, and an admin may approve or reject at any point. What
// each operation does gate is the set of fields it requires (see the Order
// methods). Introducing a transition table would be a hardening, not a fix.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	Unknown Status = iota

	// PendingApproval is the initial status of a newly placed order.
	PendingApproval

	// Approved indicates the order has been accepted by an admin.
	Approved

	// InProduction indicates a production slot has been scheduled.
	InProduction

	// Dispatched indicates a dispatch window has been scheduled.
	Dispatched

	// Delivered is the terminal success status.
	Delivered

	// Rejected is the terminal failure status.
	Rejected
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:         "UNKNOWN",
		PendingApproval: "PENDING_APPROVAL",
		Approved:        "APPROVED",
		InProduction:    "IN_PRODUCTION",
		Dispatched:      "DISPATCHED",
		Delivered:       "DELIVERED",
		Rejected:        "REJECTED",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		PendingApproval: "PENDING_APPROVAL",
		Approved:        "APPROVED",
		InProduction:    "IN_PRODUCTION",
		Dispatched:      "DISPATCHED",
		Delivered:       "DELIVERED",
		Rejected:        "REJECTED",
	}
}

// StatusFromString parses the wire representation of a status.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status",
		fmt.Errorf("%q is not a valid status", s))
}

// Validate checks that the Status is one of the defined lifecycle states.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the wire representation of the status, "UNKNOWN" when invalid.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}
