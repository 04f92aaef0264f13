package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"github.com/tanish/hostelhub/internal/app/models"
	"github.com/tanish/hostelhub/internal/app/models/dto"
	"github.com/tanish/hostelhub/internal/pkg/apperrors"
	"github.com/tanish/hostelhub/internal/pkg/auth"
	"github.com/tanish/hostelhub/internal/pkg/validation"
)

// AuthService handles registration and login for all three actor roles
type AuthService struct {
	wardens  WardenStore
	students StudentStore
	supports SupportDeptStore
	jwt      *auth.JWTService
	logger   zerolog.Logger
}

// NewAuthService creates a new AuthService
func NewAuthService(
	wardens WardenStore,
	students StudentStore,
	supports SupportDeptStore,
	jwt *auth.JWTService,
	logger zerolog.Logger,
) *AuthService {
	return &AuthService{
		wardens:  wardens,
		students: students,
		supports: supports,
		jwt:      jwt,
		logger:   logger,
	}
}

func validateEmail(email string) error {
	if !validation.NewStringValidation(email).WithPattern(validation.CompiledPatterns.Email).Validate() {
		return fmt.Errorf("%w: %s", apperrors.ErrInvalidEmail, "invalid email format")
	}
	return nil
}

func validatePassword(password string) error {
	if len(password) < validation.PasswordMinLength {
		return fmt.Errorf("%w: password must be at least %d characters long",
			apperrors.ErrInvalidPassword, validation.PasswordMinLength)
	}
	return nil
}

func validateContact(field, value string) error {
	if !validation.NewStringValidation(value).WithPattern(validation.CompiledPatterns.Contact).Validate() {
		return apperrors.NewValidationError(field + " must be exactly 10 digits")
	}
	return nil
}

// RegisterWarden validates and persists a new warden account
func (s *AuthService) RegisterWarden(ctx context.Context, req dto.RegisterWardenRequest) error {
	if strings.TrimSpace(req.WardenID) == "" || strings.TrimSpace(req.Name) == "" {
		return apperrors.NewValidationError("warden id and name are required")
	}
	if err := validateEmail(req.Email); err != nil {
		return err
	}
	if err := validatePassword(req.Password); err != nil {
		return err
	}
	if strings.TrimSpace(req.ContactNo) == "" {
		return apperrors.NewValidationError("contact number is required")
	}

	hashed, err := auth.HashPassword(req.Password)
	if err != nil {
		return fmt.Errorf("error hashing password: %w", err)
	}

	warden := &models.Warden{
		WardenID:  req.WardenID,
		Name:      req.Name,
		Email:     req.Email,
		Password:  hashed,
		ContactNo: req.ContactNo,
	}

	if err := s.wardens.Create(ctx, warden); err != nil {
		return err
	}

	s.logger.Info().Str("warden_id", warden.WardenID).Msg("Warden registered")
	return nil
}

// RegisterStudent validates a new student account and admits it into the
// requested hostel. The capacity and uniqueness checks run atomically in the
// store.
func (s *AuthService) RegisterStudent(ctx context.Context, req dto.RegisterStudentRequest) error {
	if strings.TrimSpace(req.RollNo) == "" || strings.TrimSpace(req.Name) == "" ||
		strings.TrimSpace(req.Dept) == "" || strings.TrimSpace(req.RoomNo) == "" ||
		strings.TrimSpace(req.HostelID) == "" {
		return apperrors.NewValidationError("missing required fields")
	}
	if req.Batch <= 0 {
		return apperrors.NewValidationError("batch must be a valid number")
	}
	if err := validateContact("contact number", req.ContactNo); err != nil {
		return err
	}
	if err := validateContact("parent contact", req.ParentContact); err != nil {
		return err
	}
	if !validation.NewStringValidation(req.Email).
		WithPattern(validation.CompiledPatterns.UniversityEmail).Validate() {
		return fmt.Errorf("%w: a university email address is required", apperrors.ErrInvalidEmail)
	}
	if err := validatePassword(req.Password); err != nil {
		return err
	}

	hashed, err := auth.HashPassword(req.Password)
	if err != nil {
		return fmt.Errorf("error hashing password: %w", err)
	}

	hostelID := req.HostelID
	student := &models.Student{
		RollNo:        req.RollNo,
		Name:          req.Name,
		Dept:          req.Dept,
		Batch:         req.Batch,
		ContactNo:     req.ContactNo,
		Email:         req.Email,
		Password:      hashed,
		RoomNo:        req.RoomNo,
		HostelID:      &hostelID,
		ParentContact: req.ParentContact,
	}

	if err := s.students.CreateInHostel(ctx, student); err != nil {
		return err
	}

	s.logger.Info().Str("roll_no", student.RollNo).Str("hostel_id", hostelID).Msg("Student registered")
	return nil
}

// RegisterSupportAdmin validates and persists a support department admin
func (s *AuthService) RegisterSupportAdmin(ctx context.Context, req dto.RegisterSupportAdminRequest) error {
	if !models.IsValidDepartment(req.DName) {
		return fmt.Errorf("%w: must be one of Maintenance, Pest-control, Housekeeping, IT",
			apperrors.ErrInvalidDepartment)
	}
	if err := validateEmail(req.Email); err != nil {
		return err
	}
	if err := validatePassword(req.Password); err != nil {
		return err
	}
	if req.StaffCapacity < 1 {
		return apperrors.NewValidationError("staff capacity must be a positive number")
	}

	hashed, err := auth.HashPassword(req.Password)
	if err != nil {
		return fmt.Errorf("error hashing password: %w", err)
	}

	// Normalize an empty warden reference to null
	wardenID := req.WardenID
	if wardenID != nil && strings.TrimSpace(*wardenID) == "" {
		wardenID = nil
	}

	dept := &models.SupportDepartment{
		DName:         models.DepartmentName(req.DName),
		WardenID:      wardenID,
		Email:         req.Email,
		Password:      hashed,
		StaffCapacity: req.StaffCapacity,
	}

	if err := s.supports.Create(ctx, dept); err != nil {
		return err
	}

	s.logger.Info().Str("d_name", req.DName).Msg("Support admin registered")
	return nil
}

// LoginWarden verifies warden credentials and issues a warden token
func (s *AuthService) LoginWarden(ctx context.Context, req dto.LoginWardenRequest) (*dto.LoginResponse, error) {
	warden, err := s.wardens.GetByEmail(ctx, req.Email)
	if err != nil {
		return nil, apperrors.ErrInvalidCredentials
	}

	if !auth.CheckPassword(warden.Password, req.Password) {
		return nil, apperrors.ErrInvalidCredentials
	}

	token, err := s.jwt.IssueWardenToken(warden.WardenID)
	if err != nil {
		return nil, fmt.Errorf("error issuing token: %w", err)
	}

	return &dto.LoginResponse{Success: true, Token: token}, nil
}

// LoginStudent verifies student credentials and issues a student token
func (s *AuthService) LoginStudent(ctx context.Context, req dto.LoginStudentRequest) (*dto.LoginResponse, error) {
	student, err := s.students.GetByEmail(ctx, req.Email)
	if err != nil {
		return nil, apperrors.ErrInvalidCredentials
	}

	if !auth.CheckPassword(student.Password, req.Password) {
		return nil, apperrors.ErrInvalidCredentials
	}

	token, err := s.jwt.IssueStudentToken(student.RollNo)
	if err != nil {
		return nil, fmt.Errorf("error issuing token: %w", err)
	}

	return &dto.LoginResponse{
		Success: true,
		Token:   token,
		User: &dto.LoginUserData{
			RollNo: student.RollNo,
			Name:   student.Name,
		},
	}, nil
}

// LoginSupportAdmin verifies support admin credentials and issues a support
// token carrying the department name
func (s *AuthService) LoginSupportAdmin(ctx context.Context, req dto.LoginSupportAdminRequest) (*dto.LoginResponse, error) {
	dept, err := s.supports.GetByEmail(ctx, req.Email)
	if err != nil {
		return nil, apperrors.ErrInvalidCredentials
	}

	if !auth.CheckPassword(dept.Password, req.Password) {
		return nil, apperrors.ErrInvalidCredentials
	}

	token, err := s.jwt.IssueSupportToken(string(dept.DName))
	if err != nil {
		return nil, fmt.Errorf("error issuing token: %w", err)
	}

	return &dto.LoginResponse{Success: true, Token: token}, nil
}
