package loans

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func datePtr(d Date) *Date { return &d }

func TestCreateRequestValidate(t *testing.T) {
	today := Today()

	tests := []struct {
		name    string
		req     CreateRequest
		wantErr string
	}{
		{
			name: "valid",
			req:  CreateRequest{StartDate: datePtr(today), DueDate: datePtr(today.AddDays(7))},
		},
		{
			name:    "missing start date",
			req:     CreateRequest{DueDate: datePtr(today.AddDays(7))},
			wantErr: "start date is required",
		},
		{
			name:    "start date in the past",
			req:     CreateRequest{StartDate: datePtr(today.AddDays(-1)), DueDate: datePtr(today.AddDays(7))},
			wantErr: "start date must be today or later",
		},
		{
			name:    "missing due date",
			req:     CreateRequest{StartDate: datePtr(today)},
			wantErr: "due date is required",
		},
		{
			name:    "due date today",
			req:     CreateRequest{StartDate: datePtr(today), DueDate: datePtr(today)},
			wantErr: "due date must be in the future",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate(today)
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				assert.EqualError(t, err, tt.wantErr)
			}
		})
	}
}

// The due date is validated against the current date only. A due date
// before the start date therefore passes, as long as it is after
// today. Kept on purpose; change Validate if the rule ever becomes
// "due after start".
func TestCreateRequestValidateDueBeforeStartPasses(t *testing.T) {
	today := Today()
	req := CreateRequest{
		StartDate: datePtr(today.AddDays(10)),
		DueDate:   datePtr(today.AddDays(1)),
	}
	assert.NoError(t, req.Validate(today))
}

func TestPatchApply(t *testing.T) {
	start := NewDate(2026, 3, 1)
	due := NewDate(2026, 3, 15)
	loan := Loan{ID: 1, StartDate: start, DueDate: due}

	t.Run("only due date", func(t *testing.T) {
		l := loan
		newDue := NewDate(2026, 4, 1)
		Patch{DueDate: &newDue}.Apply(&l)
		assert.True(t, l.StartDate.Equal(start))
		assert.True(t, l.DueDate.Equal(newDue))
	})

	t.Run("only start date", func(t *testing.T) {
		l := loan
		newStart := NewDate(2026, 3, 5)
		Patch{StartDate: &newStart}.Apply(&l)
		assert.True(t, l.StartDate.Equal(newStart))
		assert.True(t, l.DueDate.Equal(due))
	})

	t.Run("neither", func(t *testing.T) {
		l := loan
		Patch{}.Apply(&l)
		assert.True(t, l.StartDate.Equal(start))
		assert.True(t, l.DueDate.Equal(due))
	})
}
