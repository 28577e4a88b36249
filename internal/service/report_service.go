package service

import "context"

// ReportService renders a project estimate as a downloadable document.
type ReportService interface {
	ProjectPDF(ctx context.Context, req ProjectEstimateRequest) ([]byte, error)
	ProjectXLSX(ctx context.Context, req ProjectEstimateRequest) ([]byte, error)
}
