package metrics

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/vitacoach/server/internal/simulate"
	"github.com/vitacoach/server/internal/storage/memory"
)

func newTestService() (*Service, *simulate.Manual) {
	store := memory.New()
	delay := &simulate.Manual{}
	svc := NewService(store, store, delay)
	svc.now = func() time.Time {
		return time.Date(2024, 3, 16, 9, 0, 0, 0, time.UTC)
	}
	return svc, delay
}

func TestGetHealthMetricsNeverPadsMissingDays(t *testing.T) {
	svc, delay := newTestService()

	snapshots, err := svc.GetHealthMetrics(context.Background(), 30)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// The fixture set has exactly one recorded day.
	if len(snapshots) != 1 {
		t.Fatalf("expected 1 snapshot, got %d", len(snapshots))
	}
	if delay.LastWait() != simulate.LatencyGetMetrics {
		t.Fatalf("unexpected wait: %v", delay.LastWait())
	}
}

func TestGetHealthMetricsSlicesToWindow(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	for i := 1; i <= 5; i++ {
		_, err := svc.AddHealthMetric(ctx, AddMetricRequest{
			Date:  time.Date(2024, 3, 15+i, 8, 0, 0, 0, time.UTC),
			Steps: 5000 + i,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	snapshots, err := svc.GetHealthMetrics(ctx, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(snapshots) != 3 {
		t.Fatalf("expected 3 snapshots, got %d", len(snapshots))
	}
	if !snapshots[0].Date.After(snapshots[1].Date) || !snapshots[1].Date.After(snapshots[2].Date) {
		t.Fatalf("snapshots not most-recent-first: %v, %v, %v",
			snapshots[0].Date, snapshots[1].Date, snapshots[2].Date)
	}
}

func TestAddHealthMetricDefaultsDateToNow(t *testing.T) {
	svc, delay := newTestService()

	metric, err := svc.AddHealthMetric(context.Background(), AddMetricRequest{Steps: 8000, Mood: 4})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if metric.ID == uuid.Nil {
		t.Fatal("expected a generated metric id")
	}
	if !metric.Date.Equal(time.Date(2024, 3, 16, 9, 0, 0, 0, time.UTC)) {
		t.Fatalf("unexpected date: %v", metric.Date)
	}
	if delay.LastWait() != simulate.LatencyAddMetric {
		t.Fatalf("unexpected wait: %v", delay.LastWait())
	}
}

func TestAddHealthMetricValidation(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	cases := []struct {
		name string
		req  AddMetricRequest
	}{
		{"negative weight", AddMetricRequest{WeightKg: -1}},
		{"negative steps", AddMetricRequest{Steps: -100}},
		{"negative water", AddMetricRequest{WaterIntakeMl: -5}},
		{"mood too high", AddMetricRequest{Mood: 6}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := svc.AddHealthMetric(ctx, tc.req); !errors.Is(err, ErrInvalidRequest) {
				t.Fatalf("expected ErrInvalidRequest, got %v", err)
			}
		})
	}
}

func TestGetDevicesReturnsSeededPair(t *testing.T) {
	svc, _ := newTestService()

	devices, err := svc.GetDevices(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(devices) != 2 {
		t.Fatalf("expected 2 devices, got %d", len(devices))
	}
}

func TestSyncWearableDataConnectedDevice(t *testing.T) {
	svc, delay := newTestService()

	resp, err := svc.SyncWearableData(context.Background(), memory.FixtureDeviceWatchID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Device.ID != memory.FixtureDeviceWatchID {
		t.Fatalf("unexpected device: %+v", resp.Device)
	}
	if len(resp.Metrics) == 0 {
		t.Fatal("expected metric snapshots in sync response")
	}
	if delay.LastWait() != simulate.LatencyWearableSync {
		t.Fatalf("unexpected wait: %v", delay.LastWait())
	}
}

func TestSyncWearableDataDisconnectedDevice(t *testing.T) {
	svc, _ := newTestService()

	if _, err := svc.SyncWearableData(context.Background(), memory.FixtureDeviceTrackerID); !errors.Is(err, ErrDeviceOffline) {
		t.Fatalf("expected ErrDeviceOffline, got %v", err)
	}
}

func TestSyncWearableDataUnknownDevice(t *testing.T) {
	svc, _ := newTestService()

	if _, err := svc.SyncWearableData(context.Background(), uuid.New()); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
