package order

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"purchasing/internal/core/domain/model/kernel"
	"purchasing/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order was not created through
	// NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
)

// Order is the purchase order aggregate root. It owns its line items and enforces
// the review lifecycle.
//
// Order follows these invariants:
//   - Must have a valid identifier and owner
//   - Must have a non-blank justification and at least one valid line item
//   - totalAmount always equals the rounded sum of the line totals
//   - reviewerNotes are present exactly when the status is Rejected
//   - Only the owner changes items or justification, and only before approval
//   - Can only be created through NewOrder or RestoreOrder
//
// Every state change records an Event, collected by the unit of work on commit.
type Order struct {
	id            kernel.UUID
	requestNumber int64
	ownerID       kernel.UUID
	title         string
	justification string
	items         []LineItem
	totalAmount   kernel.Money
	status        Status
	reviewerNotes string
	reviewedBy    *kernel.UUID
	reviewedAt    *time.Time
	createdAt     time.Time
	updatedAt     time.Time

	// version is the persisted revision the aggregate was loaded at. Updates are
	// applied only if the stored row still has this version.
	version int64

	// itemsChanged tells the repository to rewrite the item rows.
	itemsChanged bool

	events        []Event
	isConstructed bool
}

// Snapshot carries the persisted state of an order for RestoreOrder.
type Snapshot struct {
	ID            kernel.UUID
	RequestNumber int64
	OwnerID       kernel.UUID
	Title         string
	Justification string
	Items         []LineItem
	Status        Status
	ReviewerNotes string
	ReviewedBy    *kernel.UUID
	ReviewedAt    *time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
	Version       int64
}

// NewOrder submits a new purchase order in Pending status.
//
// Parameters:
//   - id: identifier chosen by the caller
//   - ownerID: the requesting employee, the only one allowed to edit or delete it later
//   - title: optional short description, at most MaxTextLength characters
//   - justification: mandatory business reason
//   - items: at least one line item; the rounded total must not exceed kernel.MaxTotal
//   - now: submission time
//
// Returns all validation failures joined. The request number stays 0 until the
// repository assigns one.
//
// Example:
//
//	screws, _ := order.NewLineItem("Screws", "Acme", 3, decimal.RequireFromString("10.00"))
//	o, err := order.NewOrder(kernel.NewUUID(), employeeID, "", "Workshop restock",
//	    []order.LineItem{screws}, time.Now())
//	// o.TotalAmount().String() == "30.00"
func NewOrder(
	id, ownerID kernel.UUID,
	title, justification string,
	items []LineItem,
	now time.Time,
) (*Order, error) {
	order := &Order{
		status:        Pending,
		version:       1,
		createdAt:     now.UTC(),
		updatedAt:     now.UTC(),
		itemsChanged:  true,
		isConstructed: true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setOwnerID(ownerID),
		order.setContent(title, justification, items),
	); err != nil {
		return nil, err
	}

	order.record(EventSubmitted, ownerID, "", now)
	return order, nil
}

// RestoreOrder rebuilds an order from storage. The total is recomputed from the
// items instead of being read back.
func RestoreOrder(s Snapshot) (*Order, error) {
	order := &Order{
		requestNumber: s.RequestNumber,
		reviewerNotes: s.ReviewerNotes,
		reviewedBy:    s.ReviewedBy,
		reviewedAt:    s.ReviewedAt,
		createdAt:     s.CreatedAt.UTC(),
		updatedAt:     s.UpdatedAt.UTC(),
		version:       s.Version,
		isConstructed: true,
	}

	if err := errors.Join(
		order.setID(s.ID),
		order.setOwnerID(s.OwnerID),
		order.setContent(s.Title, s.Justification, s.Items),
		order.setStatus(s.Status),
		order.setVersion(s.Version),
	); err != nil {
		return nil, err
	}

	order.itemsChanged = false
	return order, nil
}

// ValidateSubmission checks the fields an owner provides on create and edit.
// Commands call it before touching storage.
func ValidateSubmission(justification string, items []LineItem) error {
	var itemsErr error
	if len(items) == 0 {
		itemsErr = errs.NewValueIsRequiredErrorWithCause("items", errors.New("an order needs at least one line item"))
	}

	itemErrs := make([]error, 0, len(items))
	for idx, item := range items {
		if err := item.Validate(); err != nil {
			itemErrs = append(itemErrs, fmt.Errorf("items[%d]: %w", idx, err))
		}
	}

	var justificationErr error
	if strings.TrimSpace(justification) == "" {
		justificationErr = errs.NewValueIsRequiredError("justification")
	}

	return errors.Join(justificationErr, itemsErr, errors.Join(itemErrs...))
}

// Validate ensures the order was built by a constructor.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by identifier.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

func (o *Order) ID() kernel.UUID {
	return o.id
}

// RequestNumber is the sequential, human-facing number. 0 until persisted.
func (o *Order) RequestNumber() int64 {
	return o.requestNumber
}

func (o *Order) OwnerID() kernel.UUID {
	return o.ownerID
}

func (o *Order) Title() string {
	return o.title
}

func (o *Order) Justification() string {
	return o.justification
}

// Items returns a copy of the line items in their submitted order.
func (o *Order) Items() []LineItem {
	return slices.Clone(o.items)
}

func (o *Order) TotalAmount() kernel.Money {
	return o.totalAmount
}

func (o *Order) Status() Status {
	return o.status
}

func (o *Order) ReviewerNotes() string {
	return o.reviewerNotes
}

func (o *Order) ReviewedBy() *kernel.UUID {
	return o.reviewedBy
}

func (o *Order) ReviewedAt() *time.Time {
	return o.reviewedAt
}

func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

func (o *Order) UpdatedAt() time.Time {
	return o.updatedAt
}

// Version is the stored revision this aggregate was loaded at.
func (o *Order) Version() int64 {
	return o.version
}

// ItemsChanged reports whether the line items differ from the stored ones.
func (o *Order) ItemsChanged() bool {
	return o.itemsChanged
}

// IsOwnedBy reports whether userID submitted the order.
func (o *Order) IsOwnedBy(userID kernel.UUID) bool {
	return o.ownerID.IsEqual(userID)
}

// AssignRequestNumber stores the sequence number generated on insert. It can only be set once.
func (o *Order) AssignRequestNumber(number int64) error {
	if number <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("request_number", fmt.Errorf("%d is not greater than 0", number))
	}
	if o.requestNumber != 0 && o.requestNumber != number {
		return errs.NewValueIsInvalidErrorWithCause(
			"request_number",
			fmt.Errorf("already assigned %d", o.requestNumber),
		)
	}

	o.requestNumber = number
	return nil
}

// Approve records a reviewer's approval of a pending order.
//
// Business rules:
//   - The order must be Pending; otherwise an InvalidStateError is returned
//   - Approved is terminal: no edit, delete or further review afterwards
//
// Checking that reviewerID holds the reviewer role is the caller's job
// (see services.OrderAccessPolicy).
func (o *Order) Approve(reviewerID kernel.UUID, now time.Time) error {
	if err := reviewerID.Validate(); err != nil {
		return err
	}

	newStatus, err := o.status.Approve()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.reviewerNotes = ""
	o.markReviewed(reviewerID, now)
	o.record(EventApproved, reviewerID, "", now)
	return nil
}

// Reject records a reviewer's rejection of a pending order with a mandatory reason.
// The reason becomes the reviewer notes shown to the owner.
func (o *Order) Reject(reviewerID kernel.UUID, reason string, now time.Time) error {
	if err := reviewerID.Validate(); err != nil {
		return err
	}

	reason = strings.TrimSpace(reason)
	if reason == "" {
		return errs.NewValueIsRequiredError("reason")
	}

	newStatus, err := o.status.Reject()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.reviewerNotes = reason
	o.markReviewed(reviewerID, now)
	o.record(EventRejected, reviewerID, reason, now)
	return nil
}

// Edit replaces the title, justification and all line items, then resubmits the order.
//
// Business rules:
//   - Only the owner may edit (AuthorizationError otherwise)
//   - Approved orders cannot be edited (InvalidStateError)
//   - The new content passes the same validation as NewOrder
//   - The status returns to Pending, reviewer notes and review stamps are cleared
//     and the total is recomputed
func (o *Order) Edit(editorID kernel.UUID, title, justification string, items []LineItem, now time.Time) error {
	if !o.IsOwnedBy(editorID) {
		return errs.NewAuthorizationError("edit order", "only the owner may change it")
	}

	newStatus, err := o.status.Resubmit()
	if err != nil {
		return err
	}

	if err = o.setContent(title, justification, items); err != nil {
		return err
	}

	o.status = newStatus
	o.reviewerNotes = ""
	o.reviewedBy = nil
	o.reviewedAt = nil
	o.itemsChanged = true
	o.updatedAt = now.UTC()
	o.record(EventResubmitted, editorID, "", now)
	return nil
}

// Delete withdraws the order. Only the owner may delete it, and only while it is
// Pending or Rejected. The repository removes the rows; the aggregate records the event.
func (o *Order) Delete(actorID kernel.UUID, now time.Time) error {
	if !o.IsOwnedBy(actorID) {
		return errs.NewAuthorizationError("delete order", "only the owner may delete it")
	}

	if err := o.status.ValidateDelete(); err != nil {
		return err
	}

	o.record(EventDeleted, actorID, "", now)
	return nil
}

// PullEvents returns the recorded events and clears them.
func (o *Order) PullEvents() []Event {
	events := o.events
	o.events = nil
	return events
}

func (o *Order) markReviewed(reviewerID kernel.UUID, now time.Time) {
	at := now.UTC()
	o.reviewedBy = &reviewerID
	o.reviewedAt = &at
	o.updatedAt = at
}

func (o *Order) record(eventType EventType, actorID kernel.UUID, reason string, now time.Time) {
	o.events = append(o.events, Event{
		Type:        eventType,
		OrderID:     o.id,
		OwnerID:     o.ownerID,
		ActorID:     actorID,
		Status:      o.status,
		TotalAmount: o.totalAmount,
		Reason:      reason,
		OccurredAt:  now.UTC(),
	})
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setOwnerID(ownerID kernel.UUID) error {
	if err := ownerID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("owner_id", err)
	}
	o.ownerID = ownerID
	return nil
}

// setContent applies the owner-provided fields and recomputes the total.
func (o *Order) setContent(title, justification string, items []LineItem) error {
	if err := ValidateSubmission(justification, items); err != nil {
		return err
	}

	title = strings.TrimSpace(title)
	if err := validateTextLength("title", title); err != nil {
		return err
	}

	total := TotalOf(items)
	if total.Exceeds(kernel.MaxTotal) {
		return errs.NewValueIsInvalidErrorWithCause(
			"total_amount",
			fmt.Errorf("%s exceeds %s", total.String(), kernel.MaxTotal.StringFixed(kernel.CurrencyPlaces)),
		)
	}

	o.title = title
	o.justification = strings.TrimSpace(justification)
	o.items = slices.Clone(items)
	o.totalAmount = total
	return nil
}

func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	if err := status.ValidateReviewerNotes(strings.TrimSpace(o.reviewerNotes) != ""); err != nil {
		return err
	}
	o.status = status
	return nil
}

func (o *Order) setVersion(version int64) error {
	if version <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("version", fmt.Errorf("%d is not greater than 0", version))
	}
	o.version = version
	return nil
}
