package order

import (
	"fmt"
	"strings"

	"purchasing/internal/pkg/errs"
)

// Status represents the review state of a purchase order.
//
// State transitions:
//
//	         approve
//	Pending ─────────> Approved (terminal)
//	  │  ^
//	  │  │ edit+resubmit
//	  v  │
//	Rejected
//	   reject
//
// Pending orders may also be edited in place (Pending -> Pending).
// Pending and Rejected orders may be deleted by their owner.
type Status int

const (
	// Unknown catches uninitialized values.
	Unknown Status = iota

	// Pending orders wait for a reviewer decision.
	Pending

	// Approved orders are final and immutable.
	Approved

	// Rejected orders carry reviewer notes and may be edited and resubmitted.
	Rejected
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:  "unknown",
		Pending:  "pending",
		Approved: "approved",
		Rejected: "rejected",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:  "pending",
		Approved: "approved",
		Rejected: "rejected",
	}
}

// AllStatuses lists every valid status in lifecycle order.
func AllStatuses() []Status {
	return []Status{Pending, Approved, Rejected}
}

// ParseStatus converts the persisted or requested name of a status.
func ParseStatus(s string) (Status, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for status, str := range getValidStatusStrings() {
		if str == name {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid status", s))
}

// Validate fails for Unknown and out-of-range values.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the lowercase name used in storage, events and exports.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsTerminal reports whether no further transition is possible.
func (s Status) IsTerminal() bool {
	return s == Approved
}

// Approve moves a pending order to Approved.
func (s Status) Approve() (Status, error) {
	if s != Pending {
		return s, errs.NewInvalidStateError("approve order", s.String())
	}
	return Approved, nil
}

// Reject moves a pending order to Rejected.
func (s Status) Reject() (Status, error) {
	if s != Pending {
		return s, errs.NewInvalidStateError("reject order", s.String())
	}
	return Rejected, nil
}

// Resubmit moves a pending or rejected order (back) to Pending after an edit.
func (s Status) Resubmit() (Status, error) {
	if s != Pending && s != Rejected {
		return s, errs.NewInvalidStateError("edit order", s.String())
	}
	return Pending, nil
}

// ValidateDelete checks that the order may still be withdrawn by its owner.
func (s Status) ValidateDelete() error {
	if s != Pending && s != Rejected {
		return errs.NewInvalidStateError("delete order", s.String())
	}
	return nil
}

// ValidateReviewerNotes checks that notes are present exactly when the order is rejected.
func (s Status) ValidateReviewerNotes(hasNotes bool) error {
	if hasNotes && s != Rejected {
		return errs.NewValueIsInvalidErrorWithCause(
			"reviewer_notes",
			fmt.Errorf("%s orders cannot carry reviewer notes", s.String()),
		)
	}
	if !hasNotes && s == Rejected {
		return errs.NewValueIsRequiredErrorWithCause(
			"reviewer_notes",
			fmt.Errorf("%s orders must carry reviewer notes", s.String()),
		)
	}
	return nil
}
