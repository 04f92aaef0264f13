package services

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tanish/hostelhub/internal/app/models"
	"github.com/tanish/hostelhub/internal/app/models/dto"
	"github.com/tanish/hostelhub/internal/pkg/apperrors"
	"github.com/tanish/hostelhub/internal/pkg/auth"
)

type authFixture struct {
	service  *AuthService
	wardens  *fakeWardenStore
	students *fakeStudentStore
	supports *fakeSupportDeptStore
	hostels  *fakeHostelStore
	jwt      *auth.JWTService
}

func newAuthFixture() *authFixture {
	hostels := newFakeHostelStore()
	wardens := newFakeWardenStore()
	students := newFakeStudentStore(hostels)
	supports := newFakeSupportDeptStore()
	jwtService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:      "test-secret",
		AccessTokenExp: time.Hour,
	})

	return &authFixture{
		service:  NewAuthService(wardens, students, supports, jwtService, zerolog.Nop()),
		wardens:  wardens,
		students: students,
		supports: supports,
		hostels:  hostels,
		jwt:      jwtService,
	}
}

func validWardenRequest() dto.RegisterWardenRequest {
	return dto.RegisterWardenRequest{
		WardenID:  "W101",
		Name:      "R. Sharma",
		Email:     "sharma@snu.edu.in",
		Password:  "secret123",
		ContactNo: "9876543210",
	}
}

func validStudentRequest() dto.RegisterStudentRequest {
	return dto.RegisterStudentRequest{
		RollNo:        "2110110123",
		Name:          "A. Verma",
		Dept:          "CSE",
		Batch:         2025,
		ContactNo:     "9876501234",
		Email:         "av123@snu.edu.in",
		Password:      "secret123",
		RoomNo:        "A-112",
		HostelID:      "H1",
		ParentContact: "9123456780",
	}
}

func (f *authFixture) addHostel(id string, capacity int) {
	f.hostels.hostels[id] = &models.Hostel{HostelID: id, Name: id, Capacity: capacity}
}

func TestRegisterWardenAndLogin(t *testing.T) {
	f := newAuthFixture()
	ctx := context.Background()

	require.NoError(t, f.service.RegisterWarden(ctx, validWardenRequest()))

	// password is stored hashed
	stored := f.wardens.wardens["W101"]
	require.NotNil(t, stored)
	assert.NotEqual(t, "secret123", stored.Password)

	resp, err := f.service.LoginWarden(ctx, dto.LoginWardenRequest{
		Email:    "sharma@snu.edu.in",
		Password: "secret123",
	})
	require.NoError(t, err)
	assert.True(t, resp.Success)
	assert.Nil(t, resp.User)

	claims, err := f.jwt.VerifyWarden(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, "W101", claims.WardenID)
}

func TestRegisterWardenValidation(t *testing.T) {
	f := newAuthFixture()
	ctx := context.Background()

	t.Run("BadEmail", func(t *testing.T) {
		req := validWardenRequest()
		req.Email = "not-an-email"
		assert.ErrorIs(t, f.service.RegisterWarden(ctx, req), apperrors.ErrInvalidEmail)
	})

	t.Run("ShortPassword", func(t *testing.T) {
		req := validWardenRequest()
		req.Password = "abc"
		assert.ErrorIs(t, f.service.RegisterWarden(ctx, req), apperrors.ErrInvalidPassword)
	})

	t.Run("DuplicateID", func(t *testing.T) {
		require.NoError(t, f.service.RegisterWarden(ctx, validWardenRequest()))
		req := validWardenRequest()
		req.Email = "other@snu.edu.in"
		req.ContactNo = "9876543211"
		assert.ErrorIs(t, f.service.RegisterWarden(ctx, req), apperrors.ErrWardenExists)
	})
}

func TestRegisterStudent(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		f := newAuthFixture()
		f.addHostel("H1", 2)

		require.NoError(t, f.service.RegisterStudent(ctx, validStudentRequest()))
		stored := f.students.students["2110110123"]
		require.NotNil(t, stored)
		require.NotNil(t, stored.HostelID)
		assert.Equal(t, "H1", *stored.HostelID)
	})

	t.Run("UnknownHostel", func(t *testing.T) {
		f := newAuthFixture()
		assert.ErrorIs(t, f.service.RegisterStudent(ctx, validStudentRequest()), apperrors.ErrHostelNotFound)
	})

	t.Run("CapacityExceeded", func(t *testing.T) {
		f := newAuthFixture()
		f.addHostel("H1", 1)

		require.NoError(t, f.service.RegisterStudent(ctx, validStudentRequest()))

		second := validStudentRequest()
		second.RollNo = "2110110124"
		second.Email = "bv124@snu.edu.in"
		second.ContactNo = "9876501235"
		assert.ErrorIs(t, f.service.RegisterStudent(ctx, second), apperrors.ErrCapacityExceeded)
	})

	t.Run("NonUniversityEmail", func(t *testing.T) {
		f := newAuthFixture()
		f.addHostel("H1", 2)
		req := validStudentRequest()
		req.Email = "av123@gmail.com"
		assert.ErrorIs(t, f.service.RegisterStudent(ctx, req), apperrors.ErrInvalidEmail)
	})

	t.Run("BadContact", func(t *testing.T) {
		f := newAuthFixture()
		f.addHostel("H1", 2)
		req := validStudentRequest()
		req.ContactNo = "12345"
		assert.ErrorIs(t, f.service.RegisterStudent(ctx, req), apperrors.ErrValidationFailed)
	})

	t.Run("DuplicateRollNo", func(t *testing.T) {
		f := newAuthFixture()
		f.addHostel("H1", 5)
		require.NoError(t, f.service.RegisterStudent(ctx, validStudentRequest()))

		dup := validStudentRequest()
		dup.Email = "other@snu.edu.in"
		dup.ContactNo = "9876501236"
		assert.ErrorIs(t, f.service.RegisterStudent(ctx, dup), apperrors.ErrRollNoExists)
	})
}

func TestRegisterStudentConcurrentAdmission(t *testing.T) {
	f := newAuthFixture()
	f.addHostel("H1", 1)
	ctx := context.Background()

	// Race many students for the last bed; exactly one admission may land.
	const attempts = 16
	errs := make(chan error, attempts)

	var wg sync.WaitGroup
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			req := validStudentRequest()
			req.RollNo = fmt.Sprintf("2110110%03d", 200+i)
			req.Email = fmt.Sprintf("cc%03d@snu.edu.in", 200+i)
			req.ContactNo = fmt.Sprintf("98765%05d", 10000+i)
			errs <- f.service.RegisterStudent(ctx, req)
		}(i)
	}
	wg.Wait()
	close(errs)

	admitted := 0
	for err := range errs {
		if err == nil {
			admitted++
			continue
		}
		assert.ErrorIs(t, err, apperrors.ErrCapacityExceeded)
	}
	assert.Equal(t, 1, admitted)
	assert.Len(t, f.students.students, 1)
}

func TestLoginStudent(t *testing.T) {
	f := newAuthFixture()
	ctx := context.Background()
	f.addHostel("H1", 2)
	require.NoError(t, f.service.RegisterStudent(ctx, validStudentRequest()))

	t.Run("Success", func(t *testing.T) {
		resp, err := f.service.LoginStudent(ctx, dto.LoginStudentRequest{
			Email:    "av123@snu.edu.in",
			Password: "secret123",
		})
		require.NoError(t, err)
		assert.True(t, resp.Success)
		require.NotNil(t, resp.User)
		assert.Equal(t, "2110110123", resp.User.RollNo)
		assert.Equal(t, "A. Verma", resp.User.Name)

		claims, err := f.jwt.VerifyStudent(resp.Token)
		require.NoError(t, err)
		assert.Equal(t, "2110110123", claims.RollNo)
	})

	t.Run("WrongPassword", func(t *testing.T) {
		_, err := f.service.LoginStudent(ctx, dto.LoginStudentRequest{
			Email:    "av123@snu.edu.in",
			Password: "wrong",
		})
		assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
	})

	t.Run("UnknownEmail", func(t *testing.T) {
		_, err := f.service.LoginStudent(ctx, dto.LoginStudentRequest{
			Email:    "nobody@snu.edu.in",
			Password: "secret123",
		})
		assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
	})
}

func TestRegisterSupportAdmin(t *testing.T) {
	f := newAuthFixture()
	ctx := context.Background()

	t.Run("InvalidDepartment", func(t *testing.T) {
		err := f.service.RegisterSupportAdmin(ctx, dto.RegisterSupportAdminRequest{
			DName:         "Security",
			Email:         "sec@snu.edu.in",
			Password:      "secret123",
			StaffCapacity: 4,
		})
		assert.ErrorIs(t, err, apperrors.ErrInvalidDepartment)
	})

	t.Run("SuccessAndLogin", func(t *testing.T) {
		emptyWarden := ""
		err := f.service.RegisterSupportAdmin(ctx, dto.RegisterSupportAdminRequest{
			DName:         "Maintenance",
			WardenID:      &emptyWarden,
			Email:         "maint@snu.edu.in",
			Password:      "secret123",
			StaffCapacity: 4,
		})
		require.NoError(t, err)

		// empty warden reference is normalized to null
		stored := f.supports.depts["Maintenance"]
		require.NotNil(t, stored)
		assert.Nil(t, stored.WardenID)

		resp, err := f.service.LoginSupportAdmin(ctx, dto.LoginSupportAdminRequest{
			Email:    "maint@snu.edu.in",
			Password: "secret123",
		})
		require.NoError(t, err)

		claims, err := f.jwt.VerifySupport(resp.Token)
		require.NoError(t, err)
		assert.Equal(t, "Maintenance", claims.DName)
	})

	t.Run("DuplicateDepartment", func(t *testing.T) {
		err := f.service.RegisterSupportAdmin(ctx, dto.RegisterSupportAdminRequest{
			DName:         "Maintenance",
			Email:         "maint2@snu.edu.in",
			Password:      "secret123",
			StaffCapacity: 4,
		})
		assert.ErrorIs(t, err, apperrors.ErrDepartmentExists)
	})
}
