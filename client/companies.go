package client

import (
	"context"
	"net/http"

	"github.com/emerald-motors/vehicle-trade-api/models"
)

// CompaniesService covers the /api/companies endpoint. Companies are
// reference data; the dashboard only ever lists them.
type CompaniesService struct {
	client *Client
}

// List returns every trading company, sorted by name
func (s *CompaniesService) List(ctx context.Context) ([]models.Company, error) {
	var companies []models.Company
	if err := s.client.do(ctx, http.MethodGet, "/api/companies", nil, nil, &companies); err != nil {
		return nil, err
	}
	return companies, nil
}
