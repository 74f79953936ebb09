package service

import (
	"context"

	"carmarket/paging"
	"carmarket/structs"
)

// CarReportRepo is the report repository surface the report service needs.
type CarReportRepo interface {
	Create(ctx context.Context, c *structs.CarReport) (*structs.CarReport, error)
	GetByID(ctx context.Context, id int) (*structs.CarReport, error)
	List(ctx context.Context, f *structs.CarReportListFilter, limit, offset int) ([]*structs.CarReport, int, error)
	Update(ctx context.Context, id int, c *structs.CarReportUpdate) (*structs.CarReport, error)
	Delete(ctx context.Context, id int) error
}

// CarReport implements report management.
type CarReport struct {
	reports CarReportRepo
	cars    ReviewCarRepo
}

func NewCarReport(reports CarReportRepo, cars ReviewCarRepo) *CarReport {
	return &CarReport{reports: reports, cars: cars}
}

func (s *CarReport) Create(ctx context.Context, req *structs.CarReportCreate) (*structs.CarReport, error) {
	if _, err := s.cars.GetByID(ctx, req.CarID); err != nil {
		return nil, mapNotFound(err)
	}
	return s.reports.Create(ctx, &structs.CarReport{
		CarID:      req.CarID,
		ReportType: req.ReportType,
		Data:       req.Data,
	})
}

func (s *CarReport) Get(ctx context.Context, id int) (*structs.CarReport, error) {
	report, err := s.reports.GetByID(ctx, id)
	if err != nil {
		return nil, mapNotFound(err)
	}
	return report, nil
}

func (s *CarReport) List(ctx context.Context, f *structs.CarReportListFilter, params paging.Params) (*paging.Result[*structs.CarReport], error) {
	return paging.Paginate(params, func(limit, offset int) ([]*structs.CarReport, int, error) {
		return s.reports.List(ctx, f, limit, offset)
	})
}

func (s *CarReport) Update(ctx context.Context, id int, u *structs.CarReportUpdate) (*structs.CarReport, error) {
	report, err := s.reports.Update(ctx, id, u)
	if err != nil {
		return nil, mapNotFound(err)
	}
	return report, nil
}

func (s *CarReport) Delete(ctx context.Context, id int) error {
	return mapNotFound(s.reports.Delete(ctx, id))
}
