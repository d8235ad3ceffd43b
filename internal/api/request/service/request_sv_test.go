package requestService

import (
	"database/sql"
	"io"
	"testing"
	"time"

	"github.com/Abdouldav-cyber/chat/internal/api/request"
	requestRepository "github.com/Abdouldav-cyber/chat/internal/api/request/repository"
	"github.com/Abdouldav-cyber/chat/internal/entity"
	"github.com/Abdouldav-cyber/chat/pkg/utils"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

func testLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

type stubRequests struct {
	requests map[string]entity.HRRequest
	created  []entity.HRRequest
}

func (s *stubRequests) CreateRequest(_ context.Context, hrRequest entity.HRRequest) error {
	s.created = append(s.created, hrRequest)
	return nil
}

func (s *stubRequests) GetRequestByID(_ context.Context, id string) (entity.HRRequest, error) {
	hrRequest, ok := s.requests[id]
	if !ok {
		return entity.HRRequest{}, request.ErrRequestNotFound
	}
	return hrRequest, nil
}

func (s *stubRequests) GetRequestsByEmployee(context.Context, string, int, int) ([]entity.HRRequest, int, error) {
	return nil, 0, nil
}

func (s *stubRequests) GetRequestsByStatus(context.Context, string, int, int) ([]entity.HRRequest, int, error) {
	return nil, 0, nil
}

func (s *stubRequests) UpdateRequestStatus(_ context.Context, id string, status string, processedBy string, comment string) error {
	hrRequest, ok := s.requests[id]
	if !ok {
		return request.ErrRequestNotFound
	}
	hrRequest.Status = status
	hrRequest.ProcessedBy = sql.NullString{String: processedBy, Valid: true}
	s.requests[id] = hrRequest
	return nil
}

type stubEmployees struct {
	decrements []float64
	err        error
}

func (s *stubEmployees) DecrementLeaveBalance(_ context.Context, _ string, days float64) error {
	if s.err != nil {
		return s.err
	}
	s.decrements = append(s.decrements, days)
	return nil
}

type stubRequestRepository struct {
	requests  *stubRequests
	employees *stubEmployees
}

func (r *stubRequestRepository) NewClient(bool) (requestRepository.Client, error) {
	return requestRepository.Client{
		Requests:  r.requests,
		Employees: r.employees,
		Commit:    func() error { return nil },
		Rollback:  func() error { return nil },
	}, nil
}

func newTestService(repo *stubRequestRepository) IRequestService {
	return NewRequestService(testLogger(), repo, nil, nil, nil, utils.New())
}

func pendingLeave(id, employeeID string, start, end time.Time) entity.HRRequest {
	return entity.HRRequest{
		ID:         id,
		EmployeeID: employeeID,
		Type:       entity.RequestTypeLeave,
		Status:     entity.RequestStatusPending,
		StartDate:  sql.NullTime{Time: start, Valid: true},
		EndDate:    sql.NullTime{Time: end, Valid: true},
	}
}

func TestCreateLeaveRequestRequiresDates(t *testing.T) {
	repo := &stubRequestRepository{requests: &stubRequests{}, employees: &stubEmployees{}}
	service := newTestService(repo)

	_, err := service.CreateRequest(context.Background(), "emp-1", request.CreateRequestRequest{
		Type:        entity.RequestTypeLeave,
		Description: "Vacances d'été",
	})
	if err != request.ErrMissingDates {
		t.Errorf("CreateRequest error = %v, want ErrMissingDates", err)
	}
	if len(repo.requests.created) != 0 {
		t.Errorf("created %d requests, want 0", len(repo.requests.created))
	}
}

func TestCreateRequestRejectsInvertedRange(t *testing.T) {
	repo := &stubRequestRepository{requests: &stubRequests{}, employees: &stubEmployees{}}
	service := newTestService(repo)

	_, err := service.CreateRequest(context.Background(), "emp-1", request.CreateRequestRequest{
		Type:        entity.RequestTypeLeave,
		Description: "Vacances d'été",
		StartDate:   "2026-03-10",
		EndDate:     "2026-03-08",
	})
	if err != request.ErrInvalidDateRange {
		t.Errorf("CreateRequest error = %v, want ErrInvalidDateRange", err)
	}
}

func TestCreateRequestStartsPending(t *testing.T) {
	repo := &stubRequestRepository{requests: &stubRequests{}, employees: &stubEmployees{}}
	service := newTestService(repo)

	result, err := service.CreateRequest(context.Background(), "emp-1", request.CreateRequestRequest{
		Type:        entity.RequestTypeAttestation,
		Description: "Attestation de travail pour la banque",
	})
	if err != nil {
		t.Fatalf("CreateRequest: %v", err)
	}

	if result.Status != entity.RequestStatusPending {
		t.Errorf("Status = %q, want %q", result.Status, entity.RequestStatusPending)
	}
	if len(repo.requests.created) != 1 {
		t.Fatalf("created %d requests, want 1", len(repo.requests.created))
	}
	if repo.requests.created[0].ID == "" {
		t.Error("stored request has no ID")
	}
}

func TestProcessApprovedLeaveBurnsBalance(t *testing.T) {
	start := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 3, 4, 0, 0, 0, 0, time.UTC)
	repo := &stubRequestRepository{
		requests: &stubRequests{requests: map[string]entity.HRRequest{
			"req-1": pendingLeave("req-1", "emp-1", start, end),
		}},
		employees: &stubEmployees{},
	}
	service := newTestService(repo)

	err := service.ProcessRequest(context.Background(), "mgr-1", "req-1", request.ProcessRequestRequest{
		Status: entity.RequestStatusApproved,
	})
	if err != nil {
		t.Fatalf("ProcessRequest: %v", err)
	}

	if len(repo.employees.decrements) != 1 || repo.employees.decrements[0] != 3 {
		t.Errorf("decrements = %v, want [3]", repo.employees.decrements)
	}
	if got := repo.requests.requests["req-1"].Status; got != entity.RequestStatusApproved {
		t.Errorf("Status = %q, want %q", got, entity.RequestStatusApproved)
	}
}

func TestProcessRejectionKeepsBalance(t *testing.T) {
	start := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 3, 4, 0, 0, 0, 0, time.UTC)
	repo := &stubRequestRepository{
		requests: &stubRequests{requests: map[string]entity.HRRequest{
			"req-1": pendingLeave("req-1", "emp-1", start, end),
		}},
		employees: &stubEmployees{},
	}
	service := newTestService(repo)

	err := service.ProcessRequest(context.Background(), "mgr-1", "req-1", request.ProcessRequestRequest{
		Status: entity.RequestStatusRejected,
	})
	if err != nil {
		t.Fatalf("ProcessRequest: %v", err)
	}

	if len(repo.employees.decrements) != 0 {
		t.Errorf("decrements = %v, want none for a rejection", repo.employees.decrements)
	}
}

func TestProcessRequestAlreadyProcessed(t *testing.T) {
	processed := pendingLeave("req-1", "emp-1", time.Now(), time.Now())
	processed.Status = entity.RequestStatusApproved
	repo := &stubRequestRepository{
		requests:  &stubRequests{requests: map[string]entity.HRRequest{"req-1": processed}},
		employees: &stubEmployees{},
	}
	service := newTestService(repo)

	err := service.ProcessRequest(context.Background(), "mgr-1", "req-1", request.ProcessRequestRequest{
		Status: entity.RequestStatusRejected,
	})
	if err != request.ErrRequestAlreadyProcessed {
		t.Errorf("ProcessRequest error = %v, want ErrRequestAlreadyProcessed", err)
	}
}

func TestProcessApprovalInsufficientBalance(t *testing.T) {
	start := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 3, 30, 0, 0, 0, 0, time.UTC)
	repo := &stubRequestRepository{
		requests: &stubRequests{requests: map[string]entity.HRRequest{
			"req-1": pendingLeave("req-1", "emp-1", start, end),
		}},
		employees: &stubEmployees{err: request.ErrInsufficientBalance},
	}
	service := newTestService(repo)

	err := service.ProcessRequest(context.Background(), "mgr-1", "req-1", request.ProcessRequestRequest{
		Status: entity.RequestStatusApproved,
	})
	if err != request.ErrInsufficientBalance {
		t.Errorf("ProcessRequest error = %v, want ErrInsufficientBalance", err)
	}
}

func TestCancelRequestOwnerOnly(t *testing.T) {
	repo := &stubRequestRepository{
		requests: &stubRequests{requests: map[string]entity.HRRequest{
			"req-1": pendingLeave("req-1", "emp-1", time.Now(), time.Now()),
		}},
		employees: &stubEmployees{},
	}
	service := newTestService(repo)

	if err := service.CancelRequest(context.Background(), "emp-2", "req-1"); err != request.ErrRequestNotOwned {
		t.Errorf("CancelRequest error = %v, want ErrRequestNotOwned", err)
	}

	if err := service.CancelRequest(context.Background(), "emp-1", "req-1"); err != nil {
		t.Fatalf("CancelRequest: %v", err)
	}
	if got := repo.requests.requests["req-1"].Status; got != entity.RequestStatusCancelled {
		t.Errorf("Status = %q, want %q", got, entity.RequestStatusCancelled)
	}
}

func TestCancelProcessedRequest(t *testing.T) {
	processed := pendingLeave("req-1", "emp-1", time.Now(), time.Now())
	processed.Status = entity.RequestStatusRejected
	repo := &stubRequestRepository{
		requests:  &stubRequests{requests: map[string]entity.HRRequest{"req-1": processed}},
		employees: &stubEmployees{},
	}
	service := newTestService(repo)

	if err := service.CancelRequest(context.Background(), "emp-1", "req-1"); err != request.ErrRequestAlreadyProcessed {
		t.Errorf("CancelRequest error = %v, want ErrRequestAlreadyProcessed", err)
	}
}
