package reservation

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"pricna/internal/domain"
	"pricna/internal/repository"
)

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) Create(ctx context.Context, r *domain.Reservation) error {
	args := m.Called(ctx, r)
	if args.Error(0) == nil && r != nil {
		r.ID = 101 // simulate DB insert
	}
	return args.Error(0)
}

func (m *MockRepository) GetAll(ctx context.Context) ([]domain.Reservation, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Reservation), args.Error(1)
}

func (m *MockRepository) GetByDate(ctx context.Context, date string, activeOnly bool) ([]domain.Reservation, error) {
	args := m.Called(ctx, date, activeOnly)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Reservation), args.Error(1)
}

func (m *MockRepository) GetByRange(ctx context.Context, start, end string) ([]domain.Reservation, error) {
	args := m.Called(ctx, start, end)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Reservation), args.Error(1)
}

func (m *MockRepository) GetByID(ctx context.Context, id int64) (*domain.Reservation, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Reservation), args.Error(1)
}

func (m *MockRepository) Update(ctx context.Context, r *domain.Reservation) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *MockRepository) Cancel(ctx context.Context, id int64, at time.Time) (bool, error) {
	args := m.Called(ctx, id, at)
	return args.Bool(0), args.Error(1)
}

func (m *MockRepository) Delete(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

type MockNotificationSender struct {
	mock.Mock
}

func (m *MockNotificationSender) NotifyReservationCreated(ctx context.Context, r *domain.Reservation) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *MockNotificationSender) NotifyReservationCancelled(ctx context.Context, r *domain.Reservation) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

// fakePublisher records published events without failing anything.
type fakePublisher struct {
	mu        sync.Mutex
	created   int
	updated   int
	cancelled int
	deleted   int
}

func (f *fakePublisher) PublishReservationCreated(*domain.Reservation) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.created++
}

func (f *fakePublisher) PublishReservationUpdated(*domain.Reservation) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.updated++
}

func (f *fakePublisher) PublishReservationCancelled(*domain.Reservation) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.cancelled++
}

func (f *fakePublisher) PublishReservationDeleted(int64) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.deleted++
}

// 2025-11-10 is a Monday with no holiday.
const openDay = "2025-11-10"

func validRequest() CreateReservationRequest {
	return CreateReservationRequest{
		Date:      openDay,
		TimeSlots: []string{"07:00", "08:00", "09:00"},
		Name:      "Jana Nováková",
		Email:     "jana@example.com",
		Phone:     "+420 777 123 456",
	}
}

func TestService_Create_Success(t *testing.T) {
	mockRepo := new(MockRepository)
	mockNotifs := new(MockNotificationSender)
	pub := &fakePublisher{}

	mockRepo.On("GetByDate", mock.Anything, openDay, true).Return([]domain.Reservation{}, nil)
	mockRepo.On("Create", mock.Anything, mock.Anything).Return(nil)
	mockNotifs.On("NotifyReservationCreated", mock.Anything, mock.Anything).Return(nil)

	service := NewService(mockRepo, mockNotifs, pub)

	req := validRequest()
	req.TotalPrice = 1 // client-supplied price must be ignored

	r, err := service.Create(context.Background(), req)

	assert.NoError(t, err)
	assert.NotNil(t, r)
	assert.Equal(t, int64(101), r.ID)
	assert.Equal(t, 3, r.DurationHours)
	assert.Equal(t, 297, r.TotalPrice)
	assert.Equal(t, domain.ReservationConfirmed, r.Status)
	assert.Equal(t, 1, pub.created)
	mockNotifs.AssertExpectations(t)
}

func TestService_Create_FullDayPrice(t *testing.T) {
	mockRepo := new(MockRepository)
	mockNotifs := new(MockNotificationSender)

	mockRepo.On("GetByDate", mock.Anything, openDay, true).Return([]domain.Reservation{}, nil)
	mockRepo.On("Create", mock.Anything, mock.Anything).Return(nil)
	mockNotifs.On("NotifyReservationCreated", mock.Anything, mock.Anything).Return(nil)

	service := NewService(mockRepo, mockNotifs, nil)

	req := validRequest()
	req.TimeSlots = []string{"07:00", "08:00", "09:00", "10:00", "11:00"}

	r, err := service.Create(context.Background(), req)

	assert.NoError(t, err)
	assert.Equal(t, 5, r.DurationHours)
	assert.Equal(t, 399, r.TotalPrice)
}

func TestService_Create_Conflict(t *testing.T) {
	mockRepo := new(MockRepository)

	existing := []domain.Reservation{
		{ID: 7, TimeSlots: []string{"09:00", "10:00"}, Status: domain.ReservationConfirmed},
	}
	mockRepo.On("GetByDate", mock.Anything, openDay, true).Return(existing, nil)

	service := NewService(mockRepo, nil, nil)

	req := validRequest()
	req.TimeSlots = []string{"10:00", "11:00"}

	_, err := service.Create(context.Background(), req)

	assert.ErrorIs(t, err, ErrSlotConflict)
	var conflict *ConflictError
	assert.ErrorAs(t, err, &conflict)
	assert.Equal(t, []string{"10:00"}, conflict.Conflicting)
	assert.Equal(t, []string{"09:00", "10:00"}, conflict.Booked)
	mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestService_Create_ClosedSaturday(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo, nil, nil)

	req := validRequest()
	req.Date = "2025-11-15" // Saturday

	_, err := service.Create(context.Background(), req)

	assert.ErrorIs(t, err, ErrClosedDay)
	mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestService_Create_ClosedHoliday(t *testing.T) {
	service := NewService(new(MockRepository), nil, nil)

	req := validRequest()
	req.Date = "2025-12-25" // Thursday, but 1. svátek vánoční

	_, err := service.Create(context.Background(), req)

	assert.ErrorIs(t, err, ErrClosedDay)
}

func TestService_Create_ValidationErrors(t *testing.T) {
	service := NewService(new(MockRepository), nil, nil)

	noSlots := validRequest()
	noSlots.TimeSlots = nil
	_, err := service.Create(context.Background(), noSlots)
	assert.ErrorIs(t, err, ErrValidation)

	unknownSlot := validRequest()
	unknownSlot.TimeSlots = []string{"06:00"}
	_, err = service.Create(context.Background(), unknownSlot)
	assert.ErrorIs(t, err, ErrValidation)

	noPhone := validRequest()
	noPhone.Phone = ""
	_, err = service.Create(context.Background(), noPhone)
	assert.ErrorIs(t, err, ErrValidation)

	badDate := validRequest()
	badDate.Date = "10.11.2025"
	_, err = service.Create(context.Background(), badDate)
	assert.ErrorIs(t, err, ErrValidation)
}

// The availability pre-check can pass for two concurrent submissions; the
// storage constraint then rejects the loser, which must surface as a
// conflict, not an internal error.
func TestService_Create_LostRace(t *testing.T) {
	mockRepo := new(MockRepository)
	mockNotifs := new(MockNotificationSender)

	winner := []domain.Reservation{
		{ID: 8, TimeSlots: []string{"09:00"}, Status: domain.ReservationConfirmed},
	}
	mockRepo.On("GetByDate", mock.Anything, openDay, true).Return([]domain.Reservation{}, nil).Once()
	mockRepo.On("Create", mock.Anything, mock.Anything).Return(repository.ErrDuplicateSlot)
	mockRepo.On("GetByDate", mock.Anything, openDay, true).Return(winner, nil).Once()

	service := NewService(mockRepo, mockNotifs, nil)

	req := validRequest()
	req.TimeSlots = []string{"09:00", "10:00"}

	_, err := service.Create(context.Background(), req)

	assert.ErrorIs(t, err, ErrSlotConflict)
	var conflict *ConflictError
	assert.ErrorAs(t, err, &conflict)
	assert.Equal(t, []string{"09:00"}, conflict.Conflicting)
	mockNotifs.AssertNotCalled(t, "NotifyReservationCreated", mock.Anything, mock.Anything)
}

func TestService_Create_NotificationFailureDoesNotBlock(t *testing.T) {
	mockRepo := new(MockRepository)
	mockNotifs := new(MockNotificationSender)

	mockRepo.On("GetByDate", mock.Anything, openDay, true).Return([]domain.Reservation{}, nil)
	mockRepo.On("Create", mock.Anything, mock.Anything).Return(nil)
	mockNotifs.On("NotifyReservationCreated", mock.Anything, mock.Anything).Return(errors.New("smtp down"))

	service := NewService(mockRepo, mockNotifs, nil)

	r, err := service.Create(context.Background(), validRequest())

	assert.NoError(t, err)
	assert.NotNil(t, r)
}

func TestService_Cancel_Success(t *testing.T) {
	mockRepo := new(MockRepository)
	mockNotifs := new(MockNotificationSender)
	pub := &fakePublisher{}

	mockRepo.On("GetByID", mock.Anything, int64(5)).Return(&domain.Reservation{
		ID:        5,
		Date:      openDay,
		TimeSlots: []string{"09:00", "10:00"},
		Status:    domain.ReservationConfirmed,
	}, nil)
	mockRepo.On("Cancel", mock.Anything, int64(5), mock.Anything).Return(true, nil)
	mockNotifs.On("NotifyReservationCancelled", mock.Anything, mock.Anything).Return(nil)

	service := NewService(mockRepo, mockNotifs, pub)

	r, err := service.Cancel(context.Background(), 5)

	assert.NoError(t, err)
	assert.Equal(t, domain.ReservationCancelled, r.Status)
	assert.NotNil(t, r.CancelledAt)
	assert.Equal(t, 1, pub.cancelled)
	mockNotifs.AssertExpectations(t)
}

func TestService_Cancel_Idempotent(t *testing.T) {
	mockRepo := new(MockRepository)
	mockNotifs := new(MockNotificationSender)

	mockRepo.On("GetByID", mock.Anything, int64(5)).Return(&domain.Reservation{
		ID:     5,
		Status: domain.ReservationCancelled,
	}, nil)

	service := NewService(mockRepo, mockNotifs, nil)

	r, err := service.Cancel(context.Background(), 5)

	assert.NoError(t, err)
	assert.Equal(t, domain.ReservationCancelled, r.Status)
	// repeat cancel must not re-send the cancellation mail
	mockNotifs.AssertNotCalled(t, "NotifyReservationCancelled", mock.Anything, mock.Anything)
	mockRepo.AssertNotCalled(t, "Cancel", mock.Anything, mock.Anything, mock.Anything)
}

func TestService_Cancel_NotFound(t *testing.T) {
	mockRepo := new(MockRepository)
	mockRepo.On("GetByID", mock.Anything, int64(99)).Return(nil, nil)

	service := NewService(mockRepo, nil, nil)

	_, err := service.Cancel(context.Background(), 99)

	assert.ErrorIs(t, err, ErrNotFound)
}

// Property 5: after cancellation the freed slots show up as available again.
func TestService_Availability_AfterCancellation(t *testing.T) {
	mockRepo := new(MockRepository)

	// the cancelled reservation is filtered out by the active-only query
	mockRepo.On("GetByDate", mock.Anything, openDay, true).Return([]domain.Reservation{}, nil)

	service := NewService(mockRepo, nil, nil)

	res, err := service.Availability(context.Background(), openDay)

	assert.NoError(t, err)
	assert.True(t, res.Open)
	assert.Contains(t, res.FreeSlots, "09:00")
	assert.Contains(t, res.FreeSlots, "10:00")
	assert.Empty(t, res.BookedSlots)
}

func TestService_Availability_ClosedDay(t *testing.T) {
	mockRepo := new(MockRepository)
	mockRepo.On("GetByDate", mock.Anything, "2025-11-15", true).Return([]domain.Reservation{
		{TimeSlots: []string{"09:00"}, Status: domain.ReservationConfirmed},
	}, nil)

	service := NewService(mockRepo, nil, nil)

	res, err := service.Availability(context.Background(), "2025-11-15")

	assert.NoError(t, err)
	assert.False(t, res.Open)
	assert.Empty(t, res.FreeSlots)
}

func TestService_CheckAvailability(t *testing.T) {
	mockRepo := new(MockRepository)
	mockRepo.On("GetByDate", mock.Anything, openDay, true).Return([]domain.Reservation{
		{TimeSlots: []string{"09:00"}, Status: domain.ReservationConfirmed},
	}, nil)

	service := NewService(mockRepo, nil, nil)

	res, err := service.CheckAvailability(context.Background(), openDay, []string{"09:00", "10:00"})
	assert.NoError(t, err)
	assert.False(t, res.Available)
	assert.Equal(t, []string{"09:00"}, res.BookedSlots)

	res, err = service.CheckAvailability(context.Background(), openDay, []string{"10:00"})
	assert.NoError(t, err)
	assert.True(t, res.Available)
}

func TestService_ListByRange(t *testing.T) {
	mockRepo := new(MockRepository)
	mockRepo.On("GetByRange", mock.Anything, "2025-11-10", "2025-11-14").Return([]domain.Reservation{
		{ID: 1, Date: "2025-11-10"},
		{ID: 2, Date: "2025-11-12"},
	}, nil)

	service := NewService(mockRepo, nil, nil)

	list, err := service.ListByRange(context.Background(), "2025-11-10", "2025-11-14")
	assert.NoError(t, err)
	assert.Len(t, list, 2)

	_, err = service.ListByRange(context.Background(), "10.11.2025", "2025-11-14")
	assert.ErrorIs(t, err, ErrValidation)

	_, err = service.ListByRange(context.Background(), "2025-11-10", "next week")
	assert.ErrorIs(t, err, ErrValidation)
	mockRepo.AssertNumberOfCalls(t, "GetByRange", 1)
}

func TestService_Update_RevalidatesExcludingSelf(t *testing.T) {
	mockRepo := new(MockRepository)
	pub := &fakePublisher{}

	mockRepo.On("GetByID", mock.Anything, int64(7)).Return(&domain.Reservation{
		ID:            7,
		Date:          openDay,
		TimeSlots:     []string{"09:00"},
		DurationHours: 1,
		TotalPrice:    99,
		Name:          "Jana Nováková",
		Email:         "jana@example.com",
		Phone:         "+420 777 123 456",
		Status:        domain.ReservationConfirmed,
	}, nil)
	// the reservation's own slots must not count as conflicts
	mockRepo.On("GetByDate", mock.Anything, openDay, true).Return([]domain.Reservation{
		{ID: 7, TimeSlots: []string{"09:00"}, Status: domain.ReservationConfirmed},
		{ID: 8, TimeSlots: []string{"11:00"}, Status: domain.ReservationConfirmed},
	}, nil)
	mockRepo.On("Update", mock.Anything, mock.Anything).Return(nil)

	service := NewService(mockRepo, nil, pub)

	r, err := service.Update(context.Background(), 7, UpdateReservationRequest{
		TimeSlots: []string{"09:00", "10:00"},
	})

	assert.NoError(t, err)
	assert.Equal(t, 2, r.DurationHours)
	assert.Equal(t, 198, r.TotalPrice)
	assert.Equal(t, 1, pub.updated)
}

func TestService_Update_ConflictWithOther(t *testing.T) {
	mockRepo := new(MockRepository)

	mockRepo.On("GetByID", mock.Anything, int64(7)).Return(&domain.Reservation{
		ID:            7,
		Date:          openDay,
		TimeSlots:     []string{"09:00"},
		DurationHours: 1,
		TotalPrice:    99,
		Name:          "Jana Nováková",
		Email:         "jana@example.com",
		Phone:         "+420 777 123 456",
		Status:        domain.ReservationConfirmed,
	}, nil)
	mockRepo.On("GetByDate", mock.Anything, openDay, true).Return([]domain.Reservation{
		{ID: 8, TimeSlots: []string{"10:00"}, Status: domain.ReservationConfirmed},
	}, nil)

	service := NewService(mockRepo, nil, nil)

	_, err := service.Update(context.Background(), 7, UpdateReservationRequest{
		TimeSlots: []string{"09:00", "10:00"},
	})

	assert.ErrorIs(t, err, ErrSlotConflict)
	mockRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestService_Update_DateToClosedDay(t *testing.T) {
	mockRepo := new(MockRepository)
	mockRepo.On("GetByID", mock.Anything, int64(7)).Return(&domain.Reservation{
		ID:        7,
		Date:      openDay,
		TimeSlots: []string{"09:00"},
		Name:      "Jana Nováková",
		Email:     "jana@example.com",
		Phone:     "+420 777 123 456",
		Status:    domain.ReservationConfirmed,
	}, nil)

	service := NewService(mockRepo, nil, nil)

	saturday := "2025-11-15"
	_, err := service.Update(context.Background(), 7, UpdateReservationRequest{Date: &saturday})

	assert.ErrorIs(t, err, ErrClosedDay)
}

func TestService_Delete(t *testing.T) {
	mockRepo := new(MockRepository)
	pub := &fakePublisher{}
	mockRepo.On("Delete", mock.Anything, int64(5)).Return(true, nil)
	mockRepo.On("Delete", mock.Anything, int64(99)).Return(false, nil)

	service := NewService(mockRepo, nil, pub)

	assert.NoError(t, service.Delete(context.Background(), 5))
	assert.Equal(t, 1, pub.deleted)
	assert.ErrorIs(t, service.Delete(context.Background(), 99), ErrNotFound)
}
