package requestService

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Abdouldav-cyber/chat/internal/api/request"
	"github.com/Abdouldav-cyber/chat/internal/entity"
	contextPkg "github.com/Abdouldav-cyber/chat/pkg/context"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

const dateLayout = "2006-01-02"

func (s *requestService) CreateRequest(ctx context.Context, employeeID string, req request.CreateRequestRequest) (*request.RequestResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.requestRepo.NewClient(true)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return nil, err
	}
	defer repo.Rollback()

	var startDate, endDate sql.NullTime
	if req.Type == entity.RequestTypeLeave {
		if req.StartDate == "" || req.EndDate == "" {
			return nil, request.ErrMissingDates
		}
	}

	if req.StartDate != "" {
		start, err := time.Parse(dateLayout, req.StartDate)
		if err != nil {
			return nil, request.ErrInvalidDateRange
		}
		startDate = sql.NullTime{Time: start, Valid: true}
	}
	if req.EndDate != "" {
		end, err := time.Parse(dateLayout, req.EndDate)
		if err != nil {
			return nil, request.ErrInvalidDateRange
		}
		endDate = sql.NullTime{Time: end, Valid: true}
	}

	if startDate.Valid && endDate.Valid && endDate.Time.Before(startDate.Time) {
		return nil, request.ErrInvalidDateRange
	}

	id, err := s.utils.NewULIDFromTimestamp(time.Now())
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to generate ULID")
		return nil, err
	}

	now := time.Now()

	hrRequest := entity.HRRequest{
		ID:          id,
		EmployeeID:  employeeID,
		Type:        req.Type,
		Description: req.Description,
		StartDate:   startDate,
		EndDate:     endDate,
		Status:      entity.RequestStatusPending,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := repo.Requests.CreateRequest(ctx, hrRequest); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create HR request")
		return nil, request.ErrCreateRequest
	}

	if err := repo.Commit(); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to commit transaction")
		return nil, request.ErrCreateRequest
	}

	return makeRequestResponse(hrRequest), nil
}

func (s *requestService) GetMyRequests(ctx context.Context, employeeID string, page, limit int) (*request.RequestListResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.requestRepo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return nil, err
	}

	page, limit = normalizePage(page, limit)
	offset := (page - 1) * limit

	requests, total, err := repo.Requests.GetRequestsByEmployee(ctx, employeeID, limit, offset)
	if err != nil {
		return nil, err
	}

	return makeRequestList(requests, total), nil
}

func (s *requestService) GetPendingRequests(ctx context.Context, page, limit int) (*request.RequestListResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.requestRepo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return nil, err
	}

	page, limit = normalizePage(page, limit)
	offset := (page - 1) * limit

	requests, total, err := repo.Requests.GetRequestsByStatus(ctx, entity.RequestStatusPending, limit, offset)
	if err != nil {
		return nil, err
	}

	return makeRequestList(requests, total), nil
}

func (s *requestService) ProcessRequest(ctx context.Context, managerID string, requestID string, req request.ProcessRequestRequest) error {
	reqID := contextPkg.GetRequestID(ctx)

	repo, err := s.requestRepo.NewClient(true)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": reqID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return err
	}
	defer repo.Rollback()

	hrRequest, err := repo.Requests.GetRequestByID(ctx, requestID)
	if err != nil {
		return err
	}

	if hrRequest.Status != entity.RequestStatusPending {
		s.log.WithFields(logrus.Fields{
			"request_id": reqID,
			"id":         requestID,
			"status":     hrRequest.Status,
		}).Warn("Request already processed")
		return request.ErrRequestAlreadyProcessed
	}

	if err := repo.Requests.UpdateRequestStatus(ctx, requestID, req.Status, managerID, req.Comment); err != nil {
		if errors.Is(err, request.ErrRequestNotFound) {
			return err
		}
		return request.ErrProcessRequest
	}

	// An approved leave burns the requested days inside the same
	// transaction so balance and status can never diverge.
	if req.Status == entity.RequestStatusApproved && hrRequest.Type == entity.RequestTypeLeave {
		days := leaveDays(hrRequest)
		if err := repo.Employees.DecrementLeaveBalance(ctx, hrRequest.EmployeeID, days); err != nil {
			return err
		}
	}

	if err := repo.Commit(); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": reqID,
			"error":      err.Error(),
		}).Error("Failed to commit transaction")
		return request.ErrProcessRequest
	}

	s.invalidateBalanceCache(ctx, hrRequest.EmployeeID)
	s.notifyDecision(ctx, hrRequest, req.Status, req.Comment)

	return nil
}

func (s *requestService) CancelRequest(ctx context.Context, employeeID string, requestID string) error {
	reqID := contextPkg.GetRequestID(ctx)

	repo, err := s.requestRepo.NewClient(true)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": reqID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return err
	}
	defer repo.Rollback()

	hrRequest, err := repo.Requests.GetRequestByID(ctx, requestID)
	if err != nil {
		return err
	}

	if hrRequest.EmployeeID != employeeID {
		s.log.WithFields(logrus.Fields{
			"request_id":  reqID,
			"id":          requestID,
			"employee_id": employeeID,
		}).Warn("Employee does not own the request")
		return request.ErrRequestNotOwned
	}

	if hrRequest.Status != entity.RequestStatusPending {
		return request.ErrRequestAlreadyProcessed
	}

	if err := repo.Requests.UpdateRequestStatus(ctx, requestID, entity.RequestStatusCancelled, employeeID, ""); err != nil {
		return request.ErrProcessRequest
	}

	if err := repo.Commit(); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": reqID,
			"error":      err.Error(),
		}).Error("Failed to commit transaction")
		return request.ErrProcessRequest
	}

	return nil
}

// leaveDays counts calendar days, bounds included. Requests without dates
// never reach here since leave requests require both.
func leaveDays(hrRequest entity.HRRequest) float64 {
	if !hrRequest.StartDate.Valid || !hrRequest.EndDate.Valid {
		return 0
	}
	return hrRequest.EndDate.Time.Sub(hrRequest.StartDate.Time).Hours()/24 + 1
}

func (s *requestService) invalidateBalanceCache(ctx context.Context, employeeID string) {
	if s.redisServer == nil {
		return
	}
	if err := s.redisServer.Delete(ctx, "leave_balance:"+employeeID); err != nil {
		s.log.WithFields(logrus.Fields{
			"employee_id": employeeID,
			"error":       err.Error(),
		}).Warn("Failed to invalidate leave balance cache")
	}
}

func (s *requestService) notifyDecision(ctx context.Context, hrRequest entity.HRRequest, status string, comment string) {
	if s.notifications == nil {
		return
	}

	var email string
	if authRepo, err := s.authRepo.NewClient(false); err == nil {
		if employee, err := authRepo.Employees.GetEmployeeByID(ctx, hrRequest.EmployeeID); err == nil {
			email = employee.Email
		}
	}

	title := fmt.Sprintf("Votre demande %s a été %s", hrRequest.Type, status)
	body := title
	if comment != "" {
		body = fmt.Sprintf("%s\n\nCommentaire : %s", title, comment)
	}

	if err := s.notifications.Notify(ctx, hrRequest.EmployeeID, email, title, body); err != nil {
		s.log.WithFields(logrus.Fields{
			"employee_id": hrRequest.EmployeeID,
			"error":       err.Error(),
		}).Warn("Failed to notify employee of request decision")
	}
}

func normalizePage(page, limit int) (int, int) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}
	return page, limit
}

func makeRequestResponse(hrRequest entity.HRRequest) *request.RequestResponse {
	resp := &request.RequestResponse{
		ID:          hrRequest.ID,
		EmployeeID:  hrRequest.EmployeeID,
		Type:        hrRequest.Type,
		Description: hrRequest.Description,
		Status:      hrRequest.Status,
		CreatedAt:   hrRequest.CreatedAt,
		UpdatedAt:   hrRequest.UpdatedAt,
	}
	if hrRequest.StartDate.Valid {
		start := hrRequest.StartDate.Time
		resp.StartDate = &start
	}
	if hrRequest.EndDate.Valid {
		end := hrRequest.EndDate.Time
		resp.EndDate = &end
	}
	if hrRequest.ProcessedBy.Valid {
		resp.ProcessedBy = hrRequest.ProcessedBy.String
	}
	if hrRequest.Comment.Valid {
		resp.Comment = hrRequest.Comment.String
	}
	return resp
}

func makeRequestList(requests []entity.HRRequest, total int) *request.RequestListResponse {
	response := &request.RequestListResponse{
		Requests: make([]request.RequestResponse, 0, len(requests)),
		Total:    total,
	}
	for _, hrRequest := range requests {
		response.Requests = append(response.Requests, *makeRequestResponse(hrRequest))
	}
	return response
}
