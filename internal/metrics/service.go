package metrics

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/vitacoach/server/internal/simulate"
	"github.com/vitacoach/server/internal/storage"
)

var (
	ErrInvalidRequest = errors.New("invalid request")
	ErrNotFound       = errors.New("device not found")

	// ErrDeviceOffline marks a sync attempt against a device that is not
	// currently connected. Maps to the upstream-unavailable error class.
	ErrDeviceOffline = errors.New("device offline")
)

const defaultMetricsDays = 7

// Service owns daily health snapshots and wearable syncing.
type Service struct {
	storage storage.MetricsStorage
	users   storage.UserStorage
	delay   simulate.Delayer
	now     func() time.Time
}

func NewService(st storage.MetricsStorage, users storage.UserStorage, delay simulate.Delayer) *Service {
	return &Service{
		storage: st,
		users:   users,
		delay:   delay,
		now:     time.Now,
	}
}

// GetHealthMetrics returns up to days snapshots, most recent first
// (default 7 when days is not positive). Days with no recorded snapshot
// are absent, never fabricated.
func (s *Service) GetHealthMetrics(ctx context.Context, days int) ([]storage.HealthMetrics, error) {
	if err := s.delay.Wait(ctx, simulate.LatencyGetMetrics); err != nil {
		return nil, err
	}

	if days <= 0 {
		days = defaultMetricsDays
	}

	return s.storage.ListMetrics(ctx, days)
}

// AddHealthMetric validates and persists a snapshot.
func (s *Service) AddHealthMetric(ctx context.Context, req AddMetricRequest) (storage.HealthMetrics, error) {
	if err := s.delay.Wait(ctx, simulate.LatencyAddMetric); err != nil {
		return storage.HealthMetrics{}, err
	}

	if req.WeightKg < 0 {
		return storage.HealthMetrics{}, fmt.Errorf("%w: weight cannot be negative", ErrInvalidRequest)
	}
	if req.Steps < 0 {
		return storage.HealthMetrics{}, fmt.Errorf("%w: steps cannot be negative", ErrInvalidRequest)
	}
	if req.WaterIntakeMl < 0 {
		return storage.HealthMetrics{}, fmt.Errorf("%w: water intake cannot be negative", ErrInvalidRequest)
	}
	if req.Mood < 0 || req.Mood > 5 {
		return storage.HealthMetrics{}, fmt.Errorf("%w: mood must be within 0..5", ErrInvalidRequest)
	}

	date := req.Date
	if date.IsZero() {
		date = s.now().UTC()
	}

	user, err := s.users.GetUser(ctx)
	if err != nil {
		return storage.HealthMetrics{}, err
	}

	metric := storage.HealthMetrics{
		ID:            uuid.New(),
		UserID:        user.ID,
		Date:          date,
		WeightKg:      req.WeightKg,
		Steps:         req.Steps,
		HeartRate:     req.HeartRate,
		Sleep:         req.Sleep,
		WaterIntakeMl: req.WaterIntakeMl,
		Mood:          req.Mood,
	}

	return s.storage.InsertMetric(ctx, metric)
}

// GetDevices returns the paired wearable devices.
func (s *Service) GetDevices(ctx context.Context) ([]storage.WearableDevice, error) {
	if err := s.delay.Wait(ctx, simulate.LatencyGetMetrics); err != nil {
		return nil, err
	}

	return s.storage.ListDevices(ctx)
}

// SyncWearableData polls one paired device. Unknown ids fail with
// ErrNotFound, disconnected devices with ErrDeviceOffline; a successful
// sync returns the current metric window.
func (s *Service) SyncWearableData(ctx context.Context, deviceID uuid.UUID) (SyncResponse, error) {
	if err := s.delay.Wait(ctx, simulate.LatencyWearableSync); err != nil {
		return SyncResponse{}, err
	}

	device, err := s.storage.GetDevice(ctx, deviceID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return SyncResponse{}, fmt.Errorf("%w: %s", ErrNotFound, deviceID)
		}
		return SyncResponse{}, err
	}

	if !device.IsConnected {
		return SyncResponse{}, fmt.Errorf("%w: %s", ErrDeviceOffline, device.Name)
	}

	snapshots, err := s.storage.ListMetrics(ctx, defaultMetricsDays)
	if err != nil {
		return SyncResponse{}, err
	}

	return SyncResponse{Device: device, Metrics: snapshots}, nil
}
