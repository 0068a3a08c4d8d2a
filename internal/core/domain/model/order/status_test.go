package order_test

import (
	"testing"

	"purchasing/internal/core/domain/model/order"
	"purchasing/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_String(t *testing.T) {
	assert.Equal(t, "pending", order.Pending.String())
	assert.Equal(t, "approved", order.Approved.String())
	assert.Equal(t, "rejected", order.Rejected.String())
	assert.Equal(t, "unknown", order.Unknown.String())
	assert.Equal(t, "unknown", order.Status(42).String())
}

func TestParseStatus(t *testing.T) {
	t.Run("should parse every valid status", func(t *testing.T) {
		for _, s := range order.AllStatuses() {
			parsed, err := order.ParseStatus(s.String())

			require.NoError(t, err)
			assert.Equal(t, s, parsed)
		}
	})

	t.Run("should ignore case and surrounding spaces", func(t *testing.T) {
		parsed, err := order.ParseStatus(" Approved ")

		require.NoError(t, err)
		assert.Equal(t, order.Approved, parsed)
	})

	t.Run("should reject unknown names", func(t *testing.T) {
		_, err := order.ParseStatus("completed")

		require.ErrorIs(t, err, errs.ErrValidation)
	})
}

func TestStatus_Validate(t *testing.T) {
	for _, s := range order.AllStatuses() {
		require.NoError(t, s.Validate())
	}
	require.ErrorIs(t, order.Unknown.Validate(), errs.ErrValueIsInvalid)
	require.ErrorIs(t, order.Status(-1).Validate(), errs.ErrValueIsInvalid)
}

func TestStatus_Transitions(t *testing.T) {
	tests := []struct {
		name       string
		from       order.Status
		transition func(order.Status) (order.Status, error)
		want       order.Status
		wantErr    bool
	}{
		{"pending can be approved", order.Pending, order.Status.Approve, order.Approved, false},
		{"approved cannot be approved again", order.Approved, order.Status.Approve, order.Approved, true},
		{"rejected cannot be approved", order.Rejected, order.Status.Approve, order.Rejected, true},
		{"pending can be rejected", order.Pending, order.Status.Reject, order.Rejected, false},
		{"rejected cannot be rejected again", order.Rejected, order.Status.Reject, order.Rejected, true},
		{"approved cannot be rejected", order.Approved, order.Status.Reject, order.Approved, true},
		{"pending can be resubmitted", order.Pending, order.Status.Resubmit, order.Pending, false},
		{"rejected can be resubmitted", order.Rejected, order.Status.Resubmit, order.Pending, false},
		{"approved cannot be resubmitted", order.Approved, order.Status.Resubmit, order.Approved, true},
		{"unknown cannot be resubmitted", order.Unknown, order.Status.Resubmit, order.Unknown, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.transition(tt.from)

			assert.Equal(t, tt.want, got)
			if tt.wantErr {
				require.ErrorIs(t, err, errs.ErrInvalidState)
				assert.Contains(t, err.Error(), tt.from.String())
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestStatus_ValidateDelete(t *testing.T) {
	require.NoError(t, order.Pending.ValidateDelete())
	require.NoError(t, order.Rejected.ValidateDelete())

	err := order.Approved.ValidateDelete()
	require.ErrorIs(t, err, errs.ErrInvalidState)
	assert.Equal(t, "invalid state: cannot delete order in approved status", err.Error())
}

func TestStatus_ValidateReviewerNotes(t *testing.T) {
	require.NoError(t, order.Rejected.ValidateReviewerNotes(true))
	require.NoError(t, order.Pending.ValidateReviewerNotes(false))
	require.NoError(t, order.Approved.ValidateReviewerNotes(false))

	require.ErrorIs(t, order.Rejected.ValidateReviewerNotes(false), errs.ErrValueIsRequired)
	require.ErrorIs(t, order.Pending.ValidateReviewerNotes(true), errs.ErrValueIsInvalid)
	require.ErrorIs(t, order.Approved.ValidateReviewerNotes(true), errs.ErrValueIsInvalid)
}

func TestStatus_IsTerminal(t *testing.T) {
	assert.True(t, order.Approved.IsTerminal())
	assert.False(t, order.Pending.IsTerminal())
	assert.False(t, order.Rejected.IsTerminal())
}
