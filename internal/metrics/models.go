package metrics

import (
	"time"

	"github.com/vitacoach/server/internal/storage"
)

// AddMetricRequest is the payload for recording a daily snapshot. A zero
// Date means "today".
type AddMetricRequest struct {
	Date          time.Time              `json:"date"`
	WeightKg      float64                `json:"weight_kg,omitempty"`
	Steps         int                    `json:"steps,omitempty"`
	HeartRate     *storage.HeartRateData `json:"heart_rate,omitempty"`
	Sleep         *storage.SleepData     `json:"sleep,omitempty"`
	WaterIntakeMl int                    `json:"water_intake_ml,omitempty"`
	Mood          int                    `json:"mood,omitempty"`
}

type MetricsResponse struct {
	Metrics []storage.HealthMetrics `json:"metrics"`
}

type DevicesResponse struct {
	Devices []storage.WearableDevice `json:"devices"`
}

// SyncResponse is the result of a wearable sync: the device that was
// polled and the refreshed metric snapshots.
type SyncResponse struct {
	Device  storage.WearableDevice  `json:"device"`
	Metrics []storage.HealthMetrics `json:"metrics"`
}

type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
