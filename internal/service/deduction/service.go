package deduction

import (
	"context"

	"github.com/caresuite/labops-backend-go/internal/domain/deduction"
	"github.com/caresuite/labops-backend-go/internal/domain/staff"
	"github.com/caresuite/labops-backend-go/internal/pkg/calendar"
)

type DeductionServiceImpl struct {
	deduction.Repository
	staffRepo staff.Repository
}

func NewDeductionService(repo deduction.Repository, staffRepo staff.Repository) deduction.Service {
	return &DeductionServiceImpl{
		Repository: repo,
		staffRepo:  staffRepo,
	}
}

// Add implements deduction.Service. The two machine-managed reasons are
// reserved; manual entries must use any other reason so the recorder never
// rewrites them.
func (d *DeductionServiceImpl) Add(ctx context.Context, req deduction.AddRequest) (deduction.Response, error) {
	if err := req.Validate(); err != nil {
		return deduction.Response{}, err
	}

	if deduction.IsMachineReason(req.Reason) {
		return deduction.Response{}, deduction.ErrReservedReason
	}

	if _, err := d.staffRepo.GetByID(ctx, req.StaffID); err != nil {
		return deduction.Response{}, err
	}

	saved, err := d.Repository.Upsert(ctx, deduction.Record{
		StaffID: req.StaffID,
		Date:    req.Date,
		Amount:  req.Amount,
		Reason:  req.Reason,
	})
	if err != nil {
		return deduction.Response{}, err
	}

	return deduction.NewResponse(saved), nil
}

// List implements deduction.Service. An empty month returns the full history.
func (d *DeductionServiceImpl) List(ctx context.Context, staffID, month string) ([]deduction.Response, error) {
	if _, err := d.staffRepo.GetByID(ctx, staffID); err != nil {
		return nil, err
	}

	var (
		rows []deduction.Record
		err  error
	)
	if month != "" {
		if _, _, err := calendar.ParseMonthKey(month); err != nil {
			return nil, err
		}
		rows, err = d.Repository.ListByStaffMonth(ctx, staffID, month)
	} else {
		rows, err = d.Repository.ListByStaff(ctx, staffID)
	}
	if err != nil {
		return nil, err
	}

	responses := make([]deduction.Response, 0, len(rows))
	for _, row := range rows {
		responses = append(responses, deduction.NewResponse(row))
	}

	return responses, nil
}
