package leave

import (
	"context"

	"github.com/caresuite/labops-backend-go/internal/domain/leave"
	"github.com/caresuite/labops-backend-go/internal/domain/staff"
)

type LeaveServiceImpl struct {
	leave.Repository
	staffRepo staff.Repository
}

func NewLeaveService(repo leave.Repository, staffRepo staff.Repository) leave.Service {
	return &LeaveServiceImpl{
		Repository: repo,
		staffRepo:  staffRepo,
	}
}

// Add implements leave.Service.
func (l *LeaveServiceImpl) Add(ctx context.Context, req leave.AddRequest) (leave.Response, error) {
	if err := req.Validate(); err != nil {
		return leave.Response{}, err
	}

	if _, err := l.staffRepo.GetByID(ctx, req.StaffID); err != nil {
		return leave.Response{}, err
	}

	created, err := l.Repository.Create(ctx, leave.Record{
		StaffID: req.StaffID,
		Date:    req.Date,
		Days:    req.Days,
		Type:    req.Type,
		Reason:  req.Reason,
	})
	if err != nil {
		return leave.Response{}, err
	}

	return leave.NewResponse(created), nil
}

// List implements leave.Service.
func (l *LeaveServiceImpl) List(ctx context.Context, staffID string) ([]leave.Response, error) {
	if _, err := l.staffRepo.GetByID(ctx, staffID); err != nil {
		return nil, err
	}

	rows, err := l.Repository.ListByStaff(ctx, staffID)
	if err != nil {
		return nil, err
	}

	responses := make([]leave.Response, 0, len(rows))
	for _, row := range rows {
		responses = append(responses, leave.NewResponse(row))
	}

	return responses, nil
}
