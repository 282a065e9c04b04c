package repository

import (
	"time"

	"go-warehouse-api/internal/model"

	"gorm.io/gorm"
)

type StatsRepository interface {
	GetOverview() (*Overview, error)
	GetRequestVolume(startDate, endDate time.Time) ([]RequestVolumeData, error)
}

// Overview holds the dashboard headline counts
type Overview struct {
	ActiveProducts  int64 `json:"active_products"`
	PendingInbound  int64 `json:"pending_inbound"`
	PendingOutbound int64 `json:"pending_outbound"`
	TotalUsers      int64 `json:"total_users"`
}

// RequestVolumeData is one day's created-request counts for chart data
type RequestVolumeData struct {
	Date     string `json:"date"`
	Inbound  int    `json:"inbound"`
	Outbound int    `json:"outbound"`
}

type statsRepo struct {
	db *gorm.DB
}

func NewStatsRepo(db *gorm.DB) StatsRepository {
	return &statsRepo{db}
}

func (r *statsRepo) GetOverview() (*Overview, error) {
	var stats Overview

	r.db.Model(&model.Product{}).Where("status = ?", model.ProductActive).Count(&stats.ActiveProducts)
	r.db.Model(&model.InboundRequest{}).Where("status = ?", model.RequestPending).Count(&stats.PendingInbound)
	r.db.Model(&model.OutboundRequest{}).Where("status = ?", model.RequestPending).Count(&stats.PendingOutbound)
	r.db.Model(&model.User{}).Count(&stats.TotalUsers)

	return &stats, nil
}

func (r *statsRepo) GetRequestVolume(startDate, endDate time.Time) ([]RequestVolumeData, error) {
	inbound, err := r.countPerDay(&model.InboundRequest{}, startDate, endDate)
	if err != nil {
		return nil, err
	}
	outbound, err := r.countPerDay(&model.OutboundRequest{}, startDate, endDate)
	if err != nil {
		return nil, err
	}

	merged := make(map[string]*RequestVolumeData)
	dates := []string{}
	for date, n := range inbound {
		merged[date] = &RequestVolumeData{Date: date, Inbound: n}
		dates = append(dates, date)
	}
	for date, n := range outbound {
		if entry, ok := merged[date]; ok {
			entry.Outbound = n
		} else {
			merged[date] = &RequestVolumeData{Date: date, Outbound: n}
			dates = append(dates, date)
		}
	}

	// Keep chart data chronological
	for i := 0; i < len(dates); i++ {
		for j := i + 1; j < len(dates); j++ {
			if dates[j] < dates[i] {
				dates[i], dates[j] = dates[j], dates[i]
			}
		}
	}

	results := make([]RequestVolumeData, 0, len(dates))
	for _, date := range dates {
		results = append(results, *merged[date])
	}
	return results, nil
}

func (r *statsRepo) countPerDay(entity interface{}, startDate, endDate time.Time) (map[string]int, error) {
	rows, err := r.db.Model(entity).
		Select("DATE(created_at) as date, COUNT(*) as total").
		Where("created_at BETWEEN ? AND ?", startDate, endDate).
		Group("DATE(created_at)").
		Order("date ASC").
		Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var date string
		var total int
		if err := rows.Scan(&date, &total); err != nil {
			return nil, err
		}
		counts[date] = total
	}
	return counts, nil
}
