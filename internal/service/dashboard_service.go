package service

import (
	"time"

	"go-warehouse-api/internal/repository"
)

type DashboardService interface {
	GetOverview() (*repository.Overview, error)
	GetRequestVolume(startDate, endDate time.Time) ([]repository.RequestVolumeData, error)
}

type dashboardService struct {
	statsRepo repository.StatsRepository
}

func NewDashboardService(statsRepo repository.StatsRepository) DashboardService {
	return &dashboardService{statsRepo: statsRepo}
}

func (s *dashboardService) GetOverview() (*repository.Overview, error) {
	return s.statsRepo.GetOverview()
}

func (s *dashboardService) GetRequestVolume(startDate, endDate time.Time) ([]repository.RequestVolumeData, error) {
	return s.statsRepo.GetRequestVolume(startDate, endDate)
}
