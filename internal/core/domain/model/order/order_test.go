package order_test

import (
	"strings"
	"testing"
	"time"

	"purchasing/internal/core/domain/model/kernel"
	"purchasing/internal/core/domain/model/order"
	"purchasing/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var submittedAt = time.Date(2026, 3, 2, 9, 30, 0, 0, time.UTC)

func newPendingOrder(t *testing.T, ownerID kernel.UUID) *order.Order {
	t.Helper()

	o, err := order.NewOrder(
		kernel.NewUUID(),
		ownerID,
		"Workshop restock",
		"Stock is running low",
		[]order.LineItem{mustItem(t, "Screws", 3, "10.00"), mustItem(t, "Glue", 2, "5.50")},
		submittedAt,
	)
	require.NoError(t, err)
	return o
}

func TestNewOrder(t *testing.T) {
	ownerID := kernel.NewUUID()

	t.Run("should create pending order with computed total", func(t *testing.T) {
		id := kernel.NewUUID()
		items := []order.LineItem{mustItem(t, "Screws", 3, "10.00"), mustItem(t, "Glue", 2, "5.50")}

		o, err := order.NewOrder(id, ownerID, " Restock ", " Stock is low ", items, submittedAt)

		require.NoError(t, err)
		require.NoError(t, o.Validate())
		assert.True(t, o.ID().IsEqual(id))
		assert.True(t, o.IsOwnedBy(ownerID))
		assert.Equal(t, "Restock", o.Title())
		assert.Equal(t, "Stock is low", o.Justification())
		assert.Equal(t, order.Pending, o.Status())
		assert.Equal(t, "41.00", o.TotalAmount().String())
		assert.Empty(t, o.ReviewerNotes())
		assert.Nil(t, o.ReviewedBy())
		assert.Equal(t, submittedAt, o.CreatedAt())
		assert.Equal(t, int64(0), o.RequestNumber())
		assert.Equal(t, int64(1), o.Version())
		assert.True(t, o.ItemsChanged())
		assert.Len(t, o.Items(), 2)
	})

	t.Run("should allow an empty title", func(t *testing.T) {
		o, err := order.NewOrder(kernel.NewUUID(), ownerID, "", "Needed",
			[]order.LineItem{mustItem(t, "Pen", 1, "1")}, submittedAt)

		require.NoError(t, err)
		assert.Empty(t, o.Title())
	})

	t.Run("should record a submitted event", func(t *testing.T) {
		o := newPendingOrder(t, ownerID)

		events := o.PullEvents()

		require.Len(t, events, 1)
		assert.Equal(t, order.EventSubmitted, events[0].Type)
		assert.True(t, events[0].ActorID.IsEqual(ownerID))
		assert.Equal(t, "41.00", events[0].TotalAmount.String())
		assert.Empty(t, o.PullEvents())
	})

	t.Run("should fail with zero items", func(t *testing.T) {
		o, err := order.NewOrder(kernel.NewUUID(), ownerID, "", "Needed", nil, submittedAt)

		require.ErrorIs(t, err, errs.ErrValidation)
		assert.Nil(t, o)
		assert.Contains(t, err.Error(), "items")
	})

	t.Run("should fail with blank justification", func(t *testing.T) {
		o, err := order.NewOrder(kernel.NewUUID(), ownerID, "", "  ",
			[]order.LineItem{mustItem(t, "Pen", 1, "1")}, submittedAt)

		require.ErrorIs(t, err, errs.ErrValidation)
		assert.Nil(t, o)
		assert.Contains(t, err.Error(), "justification")
	})

	t.Run("should fail with an unconstructed line item", func(t *testing.T) {
		o, err := order.NewOrder(kernel.NewUUID(), ownerID, "", "Needed",
			[]order.LineItem{mustItem(t, "Pen", 1, "1"), {}}, submittedAt)

		require.ErrorIs(t, err, order.ErrLineItemIsNotConstructed)
		assert.Nil(t, o)
		assert.Contains(t, err.Error(), "items[1]")
	})

	t.Run("should fail when the total exceeds the storable maximum", func(t *testing.T) {
		o, err := order.NewOrder(
			kernel.NewUUID(),
			kernel.NewUUID(),
			"Data center",
			"Capacity",
			[]order.LineItem{mustItem(t, "Server", 1000, "9999999999.9999")},
			submittedAt,
		)

		require.ErrorIs(t, err, errs.ErrValidation)
		assert.Nil(t, o)
		assert.Contains(t, err.Error(), "total_amount")
	})

	t.Run("should fail with a title that is too long", func(t *testing.T) {
		o, err := order.NewOrder(
			kernel.NewUUID(),
			kernel.NewUUID(),
			strings.Repeat("t", order.MaxTextLength+1),
			"Stock is running low",
			[]order.LineItem{mustItem(t, "Screws", 1, "1.00")},
			submittedAt,
		)

		require.ErrorIs(t, err, errs.ErrValidation)
		assert.Nil(t, o)
		assert.Contains(t, err.Error(), "title")
	})

	t.Run("should handle multiple validation errors", func(t *testing.T) {
		o, err := order.NewOrder(kernel.UUID{}, kernel.UUID{}, "", "", nil, submittedAt)

		require.Error(t, err)
		assert.Nil(t, o)
		assert.Contains(t, err.Error(), "UUID must be created")
		assert.Contains(t, err.Error(), "owner_id")
		assert.Contains(t, err.Error(), "justification")
		assert.Contains(t, err.Error(), "items")
	})
}

func TestOrder_Approve(t *testing.T) {
	reviewerID := kernel.NewUUID()
	reviewedAt := submittedAt.Add(time.Hour)

	t.Run("should approve a pending order", func(t *testing.T) {
		o := newPendingOrder(t, kernel.NewUUID())
		o.PullEvents()

		err := o.Approve(reviewerID, reviewedAt)

		require.NoError(t, err)
		assert.Equal(t, order.Approved, o.Status())
		require.NotNil(t, o.ReviewedBy())
		assert.True(t, o.ReviewedBy().IsEqual(reviewerID))
		assert.Equal(t, reviewedAt, *o.ReviewedAt())
		events := o.PullEvents()
		require.Len(t, events, 1)
		assert.Equal(t, order.EventApproved, events[0].Type)
		assert.Equal(t, order.Approved, events[0].Status)
	})

	t.Run("should fail to approve an approved order", func(t *testing.T) {
		o := newPendingOrder(t, kernel.NewUUID())
		require.NoError(t, o.Approve(reviewerID, reviewedAt))

		err := o.Approve(reviewerID, reviewedAt)

		require.ErrorIs(t, err, errs.ErrInvalidState)
		assert.Equal(t, order.Approved, o.Status())
	})

	t.Run("should fail to approve a rejected order", func(t *testing.T) {
		o := newPendingOrder(t, kernel.NewUUID())
		require.NoError(t, o.Reject(reviewerID, "no budget", reviewedAt))

		require.ErrorIs(t, o.Approve(reviewerID, reviewedAt), errs.ErrInvalidState)
	})

	t.Run("should fail without a reviewer id", func(t *testing.T) {
		o := newPendingOrder(t, kernel.NewUUID())

		require.ErrorIs(t, o.Approve(kernel.UUID{}, reviewedAt), kernel.ErrUUIDIsNotConstructed)
		assert.Equal(t, order.Pending, o.Status())
	})
}

func TestOrder_Reject(t *testing.T) {
	reviewerID := kernel.NewUUID()

	t.Run("should reject a pending order with reason", func(t *testing.T) {
		o := newPendingOrder(t, kernel.NewUUID())

		err := o.Reject(reviewerID, "  too expensive ", submittedAt)

		require.NoError(t, err)
		assert.Equal(t, order.Rejected, o.Status())
		assert.Equal(t, "too expensive", o.ReviewerNotes())
	})

	t.Run("should fail without a reason", func(t *testing.T) {
		o := newPendingOrder(t, kernel.NewUUID())

		err := o.Reject(reviewerID, " ", submittedAt)

		require.ErrorIs(t, err, errs.ErrValidation)
		assert.Contains(t, err.Error(), "reason")
		assert.Equal(t, order.Pending, o.Status())
	})

	t.Run("should fail to reject an approved order", func(t *testing.T) {
		o := newPendingOrder(t, kernel.NewUUID())
		require.NoError(t, o.Approve(reviewerID, submittedAt))

		require.ErrorIs(t, o.Reject(reviewerID, "late", submittedAt), errs.ErrInvalidState)
		assert.Empty(t, o.ReviewerNotes())
	})
}

func TestOrder_Edit(t *testing.T) {
	ownerID := kernel.NewUUID()
	reviewerID := kernel.NewUUID()
	editedAt := submittedAt.Add(2 * time.Hour)
	newItems := func(t *testing.T) []order.LineItem {
		return []order.LineItem{mustItem(t, "Monitor", 1, "40.00")}
	}

	t.Run("should resubmit a rejected order and clear notes", func(t *testing.T) {
		o := newPendingOrder(t, ownerID)
		require.NoError(t, o.Reject(reviewerID, "too expensive", submittedAt))
		o.PullEvents()

		err := o.Edit(ownerID, "Cheaper", "Only one needed", newItems(t), editedAt)

		require.NoError(t, err)
		assert.Equal(t, order.Pending, o.Status())
		assert.Empty(t, o.ReviewerNotes())
		assert.Nil(t, o.ReviewedBy())
		assert.Nil(t, o.ReviewedAt())
		assert.Equal(t, "40.00", o.TotalAmount().String())
		assert.Equal(t, "Only one needed", o.Justification())
		assert.Equal(t, editedAt, o.UpdatedAt())
		assert.True(t, o.ItemsChanged())
		events := o.PullEvents()
		require.Len(t, events, 1)
		assert.Equal(t, order.EventResubmitted, events[0].Type)
	})

	t.Run("should edit a pending order in place", func(t *testing.T) {
		o := newPendingOrder(t, ownerID)

		require.NoError(t, o.Edit(ownerID, "", "Still needed", newItems(t), editedAt))
		assert.Equal(t, order.Pending, o.Status())
		assert.Equal(t, "40.00", o.TotalAmount().String())
	})

	t.Run("should keep the order unchanged when the edited total is too large", func(t *testing.T) {
		o := newPendingOrder(t, ownerID)
		huge := []order.LineItem{mustItem(t, "Server", 1000, "9999999999.9999")}

		err := o.Edit(ownerID, "", "Capacity", huge, editedAt)

		require.ErrorIs(t, err, errs.ErrValidation)
		assert.Equal(t, "41.00", o.TotalAmount().String())
		assert.Len(t, o.Items(), 2)
	})

	t.Run("should fail to edit an approved order", func(t *testing.T) {
		o := newPendingOrder(t, ownerID)
		require.NoError(t, o.Approve(reviewerID, submittedAt))

		err := o.Edit(ownerID, "", "Changed", newItems(t), editedAt)

		require.ErrorIs(t, err, errs.ErrInvalidState)
		assert.Equal(t, "41.00", o.TotalAmount().String())
	})

	t.Run("should fail when someone else edits", func(t *testing.T) {
		o := newPendingOrder(t, ownerID)

		err := o.Edit(reviewerID, "", "Changed", newItems(t), editedAt)

		require.ErrorIs(t, err, errs.ErrAuthorization)
	})

	t.Run("should keep state when new content is invalid", func(t *testing.T) {
		o := newPendingOrder(t, ownerID)
		require.NoError(t, o.Reject(reviewerID, "too expensive", submittedAt))

		err := o.Edit(ownerID, "", "Changed", nil, editedAt)

		require.ErrorIs(t, err, errs.ErrValidation)
		assert.Equal(t, order.Rejected, o.Status())
		assert.Equal(t, "too expensive", o.ReviewerNotes())
		assert.Equal(t, "41.00", o.TotalAmount().String())
	})
}

func TestOrder_Delete(t *testing.T) {
	ownerID := kernel.NewUUID()

	t.Run("should allow the owner to delete pending and rejected orders", func(t *testing.T) {
		pending := newPendingOrder(t, ownerID)
		require.NoError(t, pending.Delete(ownerID, submittedAt))

		rejected := newPendingOrder(t, ownerID)
		require.NoError(t, rejected.Reject(kernel.NewUUID(), "no", submittedAt))
		rejected.PullEvents()
		require.NoError(t, rejected.Delete(ownerID, submittedAt))
		events := rejected.PullEvents()
		require.Len(t, events, 1)
		assert.Equal(t, order.EventDeleted, events[0].Type)
	})

	t.Run("should fail for approved orders", func(t *testing.T) {
		o := newPendingOrder(t, ownerID)
		require.NoError(t, o.Approve(kernel.NewUUID(), submittedAt))

		require.ErrorIs(t, o.Delete(ownerID, submittedAt), errs.ErrInvalidState)
	})

	t.Run("should fail for someone else", func(t *testing.T) {
		o := newPendingOrder(t, ownerID)

		require.ErrorIs(t, o.Delete(kernel.NewUUID(), submittedAt), errs.ErrAuthorization)
	})
}

func TestOrder_Lifecycle(t *testing.T) {
	ownerID := kernel.NewUUID()
	reviewerID := kernel.NewUUID()

	o := newPendingOrder(t, ownerID)
	assert.Equal(t, "41.00", o.TotalAmount().String())

	require.NoError(t, o.Reject(reviewerID, "too expensive", submittedAt))
	assert.Equal(t, order.Rejected, o.Status())
	assert.Equal(t, "too expensive", o.ReviewerNotes())

	require.NoError(t, o.Edit(ownerID, "", "Only one", []order.LineItem{mustItem(t, "Monitor", 1, "40.00")}, submittedAt))
	assert.Equal(t, order.Pending, o.Status())
	assert.Equal(t, "40.00", o.TotalAmount().String())
	assert.Empty(t, o.ReviewerNotes())

	require.NoError(t, o.Approve(reviewerID, submittedAt))
	assert.Equal(t, order.Approved, o.Status())

	require.ErrorIs(t, o.Delete(ownerID, submittedAt), errs.ErrInvalidState)
}

func TestOrder_AssignRequestNumber(t *testing.T) {
	o := newPendingOrder(t, kernel.NewUUID())

	require.ErrorIs(t, o.AssignRequestNumber(0), errs.ErrValidation)
	require.NoError(t, o.AssignRequestNumber(17))
	require.NoError(t, o.AssignRequestNumber(17))
	require.ErrorIs(t, o.AssignRequestNumber(18), errs.ErrValidation)
	assert.Equal(t, int64(17), o.RequestNumber())
}

func TestRestoreOrder(t *testing.T) {
	ownerID := kernel.NewUUID()
	reviewerID := kernel.NewUUID()
	validSnapshot := func(t *testing.T) order.Snapshot {
		return order.Snapshot{
			ID:            kernel.NewUUID(),
			RequestNumber: 7,
			OwnerID:       ownerID,
			Justification: "Needed",
			Items:         []order.LineItem{mustItem(t, "Desk", 2, "99.995")},
			Status:        order.Rejected,
			ReviewerNotes: "over budget",
			ReviewedBy:    &reviewerID,
			CreatedAt:     submittedAt,
			UpdatedAt:     submittedAt,
			Version:       3,
		}
	}

	t.Run("should restore and recompute the total", func(t *testing.T) {
		o, err := order.RestoreOrder(validSnapshot(t))

		require.NoError(t, err)
		require.NoError(t, o.Validate())
		assert.Equal(t, int64(7), o.RequestNumber())
		assert.Equal(t, order.Rejected, o.Status())
		assert.True(t, o.TotalAmount().Rounded().Equal(decimal.RequireFromString("199.99")))
		assert.Equal(t, int64(3), o.Version())
		assert.False(t, o.ItemsChanged())
		assert.Empty(t, o.PullEvents())
	})

	t.Run("should fail when notes do not match the status", func(t *testing.T) {
		s := validSnapshot(t)
		s.Status = order.Pending

		_, err := order.RestoreOrder(s)

		require.ErrorIs(t, err, errs.ErrValidation)
		assert.Contains(t, err.Error(), "reviewer_notes")
	})

	t.Run("should fail with an unknown status", func(t *testing.T) {
		s := validSnapshot(t)
		s.Status = order.Unknown
		s.ReviewerNotes = ""

		_, err := order.RestoreOrder(s)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should fail with a non positive version", func(t *testing.T) {
		s := validSnapshot(t)
		s.Version = 0

		_, err := order.RestoreOrder(s)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "version")
	})

	t.Run("zero value order is not constructed", func(t *testing.T) {
		var o *order.Order

		require.ErrorIs(t, o.Validate(), order.ErrOrderIsNotConstructed)
		require.ErrorIs(t, (&order.Order{}).Validate(), order.ErrOrderIsNotConstructed)
	})
}
