package reservation

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"tablebook/metrics"
	"tablebook/models"
	"tablebook/utils"
)

const availabilityCacheTTL = 30 * time.Second

// AvailableTimes computes the bookable hour slots for a date by
// subtracting the occupied slots from the business-hours grid.
func (s *DefaultService) AvailableTimes(ctx context.Context, date string) (*models.AvailabilityResponse, error) {
	logger := utils.GetLogger()

	if err := validateDate(date); err != nil {
		return nil, err
	}
	metrics.IncAvailabilityRequested()

	if cached := s.cachedAvailability(ctx, date); cached != nil {
		return cached, nil
	}

	dayStart, dayEnd := dayBounds(date)
	booked, err := s.Repo.BookedTimes(ctx, dayStart, dayEnd)
	if err != nil {
		logger.Error("failed to fetch booked times", zap.String("date", date), zap.Error(err))
		return nil, NewUpstreamError()
	}
	if booked == nil {
		booked = []string{}
	}

	grid := s.slotGrid()
	occupied := make(map[string]struct{}, len(booked))
	for _, t := range booked {
		occupied[t] = struct{}{}
	}

	available := make([]string, 0, len(grid))
	for _, slot := range grid {
		if _, taken := occupied[slot]; !taken {
			available = append(available, slot)
		}
	}

	resp := &models.AvailabilityResponse{
		Date:           date,
		BookedTimes:    booked,
		AvailableTimes: available,
		BusinessHours: models.BusinessHoursInfo{
			Start: fmt.Sprintf("%02d:00", s.Hours.OpenHour),
			End:   fmt.Sprintf("%02d:00", s.Hours.CloseHour),
		},
	}
	s.cacheAvailability(ctx, date, resp)
	return resp, nil
}

// slotGrid generates every bookable slot between open and close.
func (s *DefaultService) slotGrid() []string {
	interval := s.Hours.IntervalMinutes
	if interval <= 0 {
		interval = 60
	}
	var grid []string
	for m := s.Hours.OpenHour * 60; m < s.Hours.CloseHour*60; m += interval {
		grid = append(grid, fmt.Sprintf("%02d:%02d", m/60, m%60))
	}
	return grid
}

// dayBounds returns the inclusive [00:00:00, 23:59:59] bounds of a
// YYYY-MM-DD date at UTC+9. The shape is validated by the caller; the
// calendar is not, matching the store's own lenient date handling.
func dayBounds(date string) (time.Time, time.Time) {
	parts := strings.SplitN(date, "-", 3)
	year, _ := strconv.Atoi(parts[0])
	month, _ := strconv.Atoi(parts[1])
	day, _ := strconv.Atoi(parts[2])

	start := time.Date(year, time.Month(month), day, 0, 0, 0, 0, models.Seoul)
	return start, start.Add(24*time.Hour - time.Second)
}

func (s *DefaultService) cachedAvailability(ctx context.Context, date string) *models.AvailabilityResponse {
	if s.Cache == nil {
		return nil
	}
	data, err := s.Cache.Get(ctx, availabilityCacheKey(date)).Result()
	if err != nil {
		if err != redis.Nil {
			utils.GetLogger().Warn("availability cache read failed", zap.Error(err))
		}
		return nil
	}
	var resp models.AvailabilityResponse
	if err := json.Unmarshal([]byte(data), &resp); err != nil {
		return nil
	}
	return &resp
}

func (s *DefaultService) cacheAvailability(ctx context.Context, date string, resp *models.AvailabilityResponse) {
	if s.Cache == nil {
		return
	}
	data, err := json.Marshal(resp)
	if err != nil {
		return
	}
	if err := s.Cache.Set(ctx, availabilityCacheKey(date), data, availabilityCacheTTL).Err(); err != nil {
		utils.GetLogger().Warn("availability cache write failed", zap.Error(err))
	}
}

func (s *DefaultService) invalidateAvailability(ctx context.Context, date string) {
	if s.Cache == nil {
		return
	}
	if err := s.Cache.Del(ctx, availabilityCacheKey(date)).Err(); err != nil {
		utils.GetLogger().Warn("availability cache invalidation failed", zap.Error(err))
	}
}

func availabilityCacheKey(date string) string {
	return "availability:" + date
}
