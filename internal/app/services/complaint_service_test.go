package services

import (
	"context"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tanish/hostelhub/internal/app/models"
	"github.com/tanish/hostelhub/internal/app/models/dto"
	"github.com/tanish/hostelhub/internal/pkg/apperrors"
)

type complaintFixture struct {
	service *ComplaintService
	store   *fakeComplaintStore
}

func newComplaintFixture() *complaintFixture {
	hostels := newFakeHostelStore()
	students := newFakeStudentStore(hostels)
	students.students["2110110123"] = &models.Student{
		RollNo:    "2110110123",
		Name:      "A. Verma",
		ContactNo: "9876501234",
		RoomNo:    "A-112",
	}
	store := newFakeComplaintStore(students)
	return &complaintFixture{
		service: NewComplaintService(store, zerolog.Nop()),
		store:   store,
	}
}

func validComplaint() dto.FileComplaintRequest {
	return dto.FileComplaintRequest{
		Description: "Broken window latch in A-112",
		DName:       "Maintenance",
	}
}

func TestFileComplaint(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		f := newComplaintFixture()
		complaint, err := f.service.File(ctx, "2110110123", validComplaint())
		require.NoError(t, err)

		assert.True(t, strings.HasPrefix(complaint.ComplaintID, "C"))
		assert.Equal(t, models.ComplaintPending, complaint.Status)
		require.NotNil(t, complaint.RollNo)
		assert.Equal(t, "2110110123", *complaint.RollNo)
		assert.Len(t, f.store.complaints, 1)
	})

	t.Run("UniqueIDs", func(t *testing.T) {
		f := newComplaintFixture()
		first, err := f.service.File(ctx, "2110110123", validComplaint())
		require.NoError(t, err)
		second, err := f.service.File(ctx, "2110110123", validComplaint())
		require.NoError(t, err)
		assert.NotEqual(t, first.ComplaintID, second.ComplaintID)
	})

	t.Run("EmptyDescription", func(t *testing.T) {
		f := newComplaintFixture()
		req := validComplaint()
		req.Description = "   "
		_, err := f.service.File(ctx, "2110110123", req)
		assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
	})

	t.Run("OverlongDescription", func(t *testing.T) {
		f := newComplaintFixture()
		req := validComplaint()
		req.Description = strings.Repeat("x", 301)
		_, err := f.service.File(ctx, "2110110123", req)
		assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
	})

	t.Run("UnknownDepartment", func(t *testing.T) {
		f := newComplaintFixture()
		req := validComplaint()
		req.DName = "Security"
		_, err := f.service.File(ctx, "2110110123", req)
		assert.ErrorIs(t, err, apperrors.ErrInvalidDepartment)
	})
}

func TestListComplaints(t *testing.T) {
	ctx := context.Background()
	f := newComplaintFixture()

	// empty history yields an empty slice, not an error
	complaints, err := f.service.ListMine(ctx, "2110110123")
	require.NoError(t, err)
	assert.NotNil(t, complaints)
	assert.Empty(t, complaints)

	_, err = f.service.File(ctx, "2110110123", validComplaint())
	require.NoError(t, err)

	complaints, err = f.service.ListMine(ctx, "2110110123")
	require.NoError(t, err)
	assert.Len(t, complaints, 1)

	byDept, err := f.service.ListForDepartment(ctx, "Maintenance")
	require.NoError(t, err)
	require.Len(t, byDept, 1)
	assert.Equal(t, "A. Verma", byDept[0].StudentName)
	assert.Equal(t, "A-112", byDept[0].RoomNo)

	other, err := f.service.ListForDepartment(ctx, "IT")
	require.NoError(t, err)
	assert.Empty(t, other)
}

func TestUpdateComplaintStatus(t *testing.T) {
	ctx := context.Background()

	file := func(t *testing.T, f *complaintFixture) string {
		complaint, err := f.service.File(ctx, "2110110123", validComplaint())
		require.NoError(t, err)
		return complaint.ComplaintID
	}

	t.Run("PendingToInProgressToResolved", func(t *testing.T) {
		f := newComplaintFixture()
		id := file(t, f)

		updated, err := f.service.UpdateStatus(ctx, "Maintenance", id, "In Progress")
		require.NoError(t, err)
		assert.Equal(t, models.ComplaintInProgress, updated.Status)

		updated, err = f.service.UpdateStatus(ctx, "Maintenance", id, "Resolved")
		require.NoError(t, err)
		assert.Equal(t, models.ComplaintResolved, updated.Status)
		assert.Equal(t, 2, f.store.updates)
	})

	t.Run("SkippingInProgress", func(t *testing.T) {
		f := newComplaintFixture()
		id := file(t, f)

		_, err := f.service.UpdateStatus(ctx, "Maintenance", id, "Resolved")
		assert.ErrorIs(t, err, apperrors.ErrIllegalTransition)
	})

	t.Run("RepeatIsNoOp", func(t *testing.T) {
		f := newComplaintFixture()
		id := file(t, f)

		updated, err := f.service.UpdateStatus(ctx, "Maintenance", id, "Pending")
		require.NoError(t, err)
		assert.Equal(t, models.ComplaintPending, updated.Status)
		assert.Zero(t, f.store.updates)
	})

	t.Run("TerminalStateLocked", func(t *testing.T) {
		f := newComplaintFixture()
		id := file(t, f)

		_, err := f.service.UpdateStatus(ctx, "Maintenance", id, "Rejected")
		require.NoError(t, err)

		_, err = f.service.UpdateStatus(ctx, "Maintenance", id, "In Progress")
		assert.ErrorIs(t, err, apperrors.ErrIllegalTransition)

		// re-asserting the terminal status still succeeds
		updated, err := f.service.UpdateStatus(ctx, "Maintenance", id, "Rejected")
		require.NoError(t, err)
		assert.Equal(t, models.ComplaintRejected, updated.Status)
	})

	t.Run("OtherDepartment", func(t *testing.T) {
		f := newComplaintFixture()
		id := file(t, f)

		_, err := f.service.UpdateStatus(ctx, "IT", id, "In Progress")
		assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)
	})

	t.Run("UnknownStatus", func(t *testing.T) {
		f := newComplaintFixture()
		id := file(t, f)

		_, err := f.service.UpdateStatus(ctx, "Maintenance", id, "Done")
		assert.ErrorIs(t, err, apperrors.ErrInvalidStatus)
	})

	t.Run("UnknownComplaint", func(t *testing.T) {
		f := newComplaintFixture()
		_, err := f.service.UpdateStatus(ctx, "Maintenance", "C0-missing", "In Progress")
		assert.ErrorIs(t, err, apperrors.ErrComplaintNotFound)
	})
}
