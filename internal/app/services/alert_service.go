package services

import (
	"time"

	"github.com/eduface/eduface/internal/app/models/dto"
	"github.com/eduface/eduface/internal/pkg/alertfeed"
)

// AlertService surfaces unauthorized-capture images deposited by the external
// detection process. Read-only; the feed directory is never written here.
type AlertService struct {
	feed alertfeed.Feed
}

// NewAlertService creates a new alert service instance
func NewAlertService(feed alertfeed.Feed) *AlertService {
	return &AlertService{
		feed: feed,
	}
}

// List returns all alerts, newest capture first. A missing feed directory
// yields an empty list.
func (s *AlertService) List() ([]dto.AlertResponse, error) {
	entries, err := s.feed.List()
	if err != nil {
		return nil, err
	}

	out := make([]dto.AlertResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, dto.AlertResponse{
			File: e.Filename,
			Time: e.CapturedAt.Format(time.RFC3339),
			Path: e.Path,
		})
	}
	return out, nil
}
