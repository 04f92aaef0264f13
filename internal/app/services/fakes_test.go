package services

import (
	"context"
	"sort"
	"sync"

	"github.com/tanish/hostelhub/internal/app/models"
	"github.com/tanish/hostelhub/internal/app/models/dto"
	"github.com/tanish/hostelhub/internal/pkg/apperrors"
)

// In-memory stores mirroring the behavior of the pgx repositories, including
// the duplicate and capacity errors the real ones map from constraint names.

type fakeWardenStore struct {
	wardens map[string]*models.Warden
}

func newFakeWardenStore() *fakeWardenStore {
	return &fakeWardenStore{wardens: make(map[string]*models.Warden)}
}

func (s *fakeWardenStore) Create(_ context.Context, warden *models.Warden) error {
	if _, ok := s.wardens[warden.WardenID]; ok {
		return apperrors.ErrWardenExists
	}
	for _, w := range s.wardens {
		if w.Email == warden.Email {
			return apperrors.ErrEmailExists
		}
		if w.ContactNo == warden.ContactNo {
			return apperrors.ErrContactExists
		}
	}
	s.wardens[warden.WardenID] = warden
	return nil
}

func (s *fakeWardenStore) GetByEmail(_ context.Context, email string) (*models.Warden, error) {
	for _, w := range s.wardens {
		if w.Email == email {
			return w, nil
		}
	}
	return nil, apperrors.ErrWardenNotFound
}

func (s *fakeWardenStore) Exists(_ context.Context, wardenID string) (bool, error) {
	_, ok := s.wardens[wardenID]
	return ok, nil
}

type fakeHostelStore struct {
	hostels map[string]*models.Hostel
}

func newFakeHostelStore() *fakeHostelStore {
	return &fakeHostelStore{hostels: make(map[string]*models.Hostel)}
}

func (s *fakeHostelStore) Create(_ context.Context, hostel *models.Hostel) error {
	if _, ok := s.hostels[hostel.HostelID]; ok {
		return apperrors.ErrHostelExists
	}
	s.hostels[hostel.HostelID] = hostel
	return nil
}

func (s *fakeHostelStore) GetByID(_ context.Context, hostelID string) (*models.Hostel, error) {
	h, ok := s.hostels[hostelID]
	if !ok {
		return nil, apperrors.ErrHostelNotFound
	}
	return h, nil
}

// fakeStudentStore serializes admissions with a mutex the way the real
// repository serializes them with a row lock on the hostel.
type fakeStudentStore struct {
	mu       sync.Mutex
	students map[string]*models.Student
	hostels  *fakeHostelStore
}

func newFakeStudentStore(hostels *fakeHostelStore) *fakeStudentStore {
	return &fakeStudentStore{
		students: make(map[string]*models.Student),
		hostels:  hostels,
	}
}

func (s *fakeStudentStore) occupancy(hostelID string) int {
	count := 0
	for _, st := range s.students {
		if st.HostelID != nil && *st.HostelID == hostelID {
			count++
		}
	}
	return count
}

func (s *fakeStudentStore) CreateInHostel(_ context.Context, student *models.Student) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	hostel, ok := s.hostels.hostels[*student.HostelID]
	if !ok {
		return apperrors.ErrHostelNotFound
	}
	if s.occupancy(hostel.HostelID) >= hostel.Capacity {
		return apperrors.ErrCapacityExceeded
	}
	if _, ok := s.students[student.RollNo]; ok {
		return apperrors.ErrRollNoExists
	}
	for _, st := range s.students {
		if st.Email == student.Email {
			return apperrors.ErrEmailExists
		}
		if st.ContactNo == student.ContactNo {
			return apperrors.ErrContactExists
		}
	}
	s.students[student.RollNo] = student
	return nil
}

func (s *fakeStudentStore) GetByEmail(_ context.Context, email string) (*models.Student, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, st := range s.students {
		if st.Email == email {
			return st, nil
		}
	}
	return nil, apperrors.ErrStudentNotFound
}

func (s *fakeStudentStore) GetByRollNo(_ context.Context, rollNo string) (*models.Student, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	st, ok := s.students[rollNo]
	if !ok {
		return nil, apperrors.ErrStudentNotFound
	}
	return st, nil
}

type fakeSupportDeptStore struct {
	depts map[string]*models.SupportDepartment
}

func newFakeSupportDeptStore() *fakeSupportDeptStore {
	return &fakeSupportDeptStore{depts: make(map[string]*models.SupportDepartment)}
}

func (s *fakeSupportDeptStore) Create(_ context.Context, dept *models.SupportDepartment) error {
	if _, ok := s.depts[string(dept.DName)]; ok {
		return apperrors.ErrDepartmentExists
	}
	for _, d := range s.depts {
		if d.Email == dept.Email {
			return apperrors.ErrEmailExists
		}
	}
	s.depts[string(dept.DName)] = dept
	return nil
}

func (s *fakeSupportDeptStore) GetByEmail(_ context.Context, email string) (*models.SupportDepartment, error) {
	for _, d := range s.depts {
		if d.Email == email {
			return d, nil
		}
	}
	return nil, apperrors.ErrDepartmentNotFound
}

type fakeComplaintStore struct {
	complaints map[string]*models.Complaint
	students   *fakeStudentStore
	updates    int
}

func newFakeComplaintStore(students *fakeStudentStore) *fakeComplaintStore {
	return &fakeComplaintStore{
		complaints: make(map[string]*models.Complaint),
		students:   students,
	}
}

func (s *fakeComplaintStore) Create(_ context.Context, complaint *models.Complaint) error {
	if _, ok := s.complaints[complaint.ComplaintID]; ok {
		return apperrors.ErrConflict
	}
	s.complaints[complaint.ComplaintID] = complaint
	return nil
}

func (s *fakeComplaintStore) GetByID(_ context.Context, complaintID string) (*models.Complaint, error) {
	c, ok := s.complaints[complaintID]
	if !ok {
		return nil, apperrors.ErrComplaintNotFound
	}
	copied := *c
	return &copied, nil
}

func (s *fakeComplaintStore) ListByRollNo(_ context.Context, rollNo string) ([]models.Complaint, error) {
	result := make([]models.Complaint, 0)
	for _, c := range s.complaints {
		if c.RollNo != nil && *c.RollNo == rollNo {
			result = append(result, *c)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].ComplaintDate.After(result[j].ComplaintDate)
	})
	return result, nil
}

func (s *fakeComplaintStore) ListByDepartment(_ context.Context, dName string) ([]dto.DepartmentComplaint, error) {
	result := make([]dto.DepartmentComplaint, 0)
	for _, c := range s.complaints {
		if c.DName != dName || c.RollNo == nil {
			continue
		}
		student, ok := s.students.students[*c.RollNo]
		if !ok {
			continue
		}
		result = append(result, dto.DepartmentComplaint{
			ComplaintID:   c.ComplaintID,
			RollNo:        *c.RollNo,
			HostelID:      c.HostelID,
			DName:         c.DName,
			Status:        c.Status,
			ComplaintDate: c.ComplaintDate,
			Description:   c.Description,
			StudentName:   student.Name,
			ContactNo:     student.ContactNo,
			RoomNo:        student.RoomNo,
		})
	}
	return result, nil
}

func (s *fakeComplaintStore) UpdateStatus(_ context.Context, complaintID string, from, to models.ComplaintStatus) error {
	c, ok := s.complaints[complaintID]
	if !ok {
		return apperrors.ErrComplaintNotFound
	}
	if c.Status != from {
		return apperrors.ErrConflict
	}
	c.Status = to
	s.updates++
	return nil
}

type fakeFoodRequestStore struct {
	requests map[string]*models.FoodRequest
	hostels  *fakeHostelStore
	students *fakeStudentStore
	updates  int
}

func newFakeFoodRequestStore(hostels *fakeHostelStore, students *fakeStudentStore) *fakeFoodRequestStore {
	return &fakeFoodRequestStore{
		requests: make(map[string]*models.FoodRequest),
		hostels:  hostels,
		students: students,
	}
}

func (s *fakeFoodRequestStore) Create(_ context.Context, request *models.FoodRequest) error {
	if _, ok := s.requests[request.FoodID]; ok {
		return apperrors.ErrFoodRequestExists
	}
	s.requests[request.FoodID] = request
	return nil
}

func (s *fakeFoodRequestStore) GetByID(_ context.Context, foodID string) (*models.FoodRequest, *string, error) {
	r, ok := s.requests[foodID]
	if !ok {
		return nil, nil, apperrors.ErrFoodRequestNotFound
	}
	copied := *r
	var ownerWardenID *string
	if r.HostelID != nil {
		if hostel, ok := s.hostels.hostels[*r.HostelID]; ok {
			ownerWardenID = hostel.WardenID
		}
	}
	return &copied, ownerWardenID, nil
}

func (s *fakeFoodRequestStore) ListByRollNo(_ context.Context, rollNo string) ([]dto.StudentFoodRequest, error) {
	result := make([]dto.StudentFoodRequest, 0)
	for _, r := range s.requests {
		if r.RollNo == nil || *r.RollNo != rollNo {
			continue
		}
		result = append(result, dto.StudentFoodRequest{
			FoodID:   r.FoodID,
			RollNo:   *r.RollNo,
			HostelID: r.HostelID,
			Type:     r.Type,
			Date:     r.Date,
			Status:   r.Status,
			Remarks:  r.Remarks,
		})
	}
	return result, nil
}

func (s *fakeFoodRequestStore) ListByWarden(_ context.Context, wardenID string) ([]dto.WardenFoodRequest, error) {
	result := make([]dto.WardenFoodRequest, 0)
	for _, r := range s.requests {
		if r.HostelID == nil {
			continue
		}
		hostel, ok := s.hostels.hostels[*r.HostelID]
		if !ok || hostel.WardenID == nil || *hostel.WardenID != wardenID {
			continue
		}
		item := dto.WardenFoodRequest{
			FoodID:   r.FoodID,
			HostelID: r.HostelID,
			Type:     r.Type,
			Date:     r.Date,
			Status:   r.Status,
			Remarks:  r.Remarks,
		}
		if r.RollNo != nil {
			item.RollNo = *r.RollNo
		}
		result = append(result, item)
	}
	return result, nil
}

func (s *fakeFoodRequestStore) UpdateStatus(_ context.Context, foodID string, from, to models.FoodRequestStatus, remarks *string) error {
	r, ok := s.requests[foodID]
	if !ok {
		return apperrors.ErrFoodRequestNotFound
	}
	if r.Status != from {
		return apperrors.ErrConflict
	}
	r.Status = to
	if remarks != nil {
		r.Remarks = remarks
	}
	s.updates++
	return nil
}

type fakeLostItemStore struct {
	items   map[string]*models.LostItem
	updates int
}

func newFakeLostItemStore() *fakeLostItemStore {
	return &fakeLostItemStore{items: make(map[string]*models.LostItem)}
}

func (s *fakeLostItemStore) Create(_ context.Context, item *models.LostItem) error {
	if _, ok := s.items[item.ItemID]; ok {
		return apperrors.ErrItemExists
	}
	s.items[item.ItemID] = item
	return nil
}

func (s *fakeLostItemStore) GetByID(_ context.Context, itemID string) (*models.LostItem, error) {
	item, ok := s.items[itemID]
	if !ok {
		return nil, apperrors.ErrItemNotFound
	}
	copied := *item
	return &copied, nil
}

func (s *fakeLostItemStore) List(_ context.Context) ([]models.LostItem, error) {
	result := make([]models.LostItem, 0)
	for _, item := range s.items {
		result = append(result, *item)
	}
	return result, nil
}

func (s *fakeLostItemStore) UpdateStatus(_ context.Context, itemID string, from, to models.LostItemStatus) error {
	item, ok := s.items[itemID]
	if !ok {
		return apperrors.ErrItemNotFound
	}
	if item.Status != from {
		return apperrors.ErrConflict
	}
	item.Status = to
	s.updates++
	return nil
}
