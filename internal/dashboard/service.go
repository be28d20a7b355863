package dashboard

import "context"

type api interface {
	Get(ctx context.Context) (*DashboardDTO, error)
}

// Service exposes the dashboard view.
type Service struct {
	api api
}

func NewService(a *API) *Service {
	return &Service{api: a}
}

// GetDashboard fetches and normalizes the dashboard.
func (s *Service) GetDashboard(ctx context.Context) (*Dashboard, error) {
	raw, err := s.api.Get(ctx)
	if err != nil {
		return nil, err
	}
	return FromAPI(raw), nil
}
