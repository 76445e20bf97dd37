package reports

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"

	"github.com/jung-kurt/gofpdf"
	"github.com/vitacoach/server/internal/storage"
)

// Generator renders progress reports from metric snapshots, meals and
// workouts.
type Generator struct{}

func NewGenerator() *Generator {
	return &Generator{}
}

type summary struct {
	AvgSteps       int
	WeightDelta    string
	AvgSleepHours  string
	AvgWaterMl     int
	MealsLogged    int
	TotalCalories  float64
	WorkoutsLogged int
	CaloriesBurned int
}

func (g *Generator) summarize(metrics []storage.HealthMetrics, meals []storage.Meal, workouts []storage.Workout) summary {
	s := summary{
		MealsLogged:    len(meals),
		WorkoutsLogged: len(workouts),
		WeightDelta:    "-",
		AvgSleepHours:  "-",
	}

	var steps, water int
	var sleepHours float64
	var sleepDays int
	for _, m := range metrics {
		steps += m.Steps
		water += m.WaterIntakeMl
		if m.Sleep != nil {
			sleepHours += m.Sleep.TotalHours
			sleepDays++
		}
	}
	if n := len(metrics); n > 0 {
		s.AvgSteps = steps / n
		s.AvgWaterMl = water / n

		// Snapshots are most-recent-first.
		first := metrics[n-1].WeightKg
		last := metrics[0].WeightKg
		if first > 0 && last > 0 {
			s.WeightDelta = fmt.Sprintf("%+.1f kg", last-first)
		}
	}
	if sleepDays > 0 {
		s.AvgSleepHours = fmt.Sprintf("%.1f h", sleepHours/float64(sleepDays))
	}

	for _, m := range meals {
		s.TotalCalories += m.TotalCalories
	}
	for _, w := range workouts {
		s.CaloriesBurned += w.CaloriesBurned
	}

	return s
}

// CSV renders one row per metric snapshot.
func (g *Generator) CSV(metrics []storage.HealthMetrics, meals []storage.Meal, workouts []storage.Workout) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	header := []string{"date", "steps", "weight_kg", "water_intake_ml", "mood", "sleep_hours", "resting_hr_bpm"}
	if err := w.Write(header); err != nil {
		return nil, err
	}

	for _, m := range metrics {
		row := []string{
			m.Date.UTC().Format("2006-01-02"),
			strconv.Itoa(m.Steps),
			fmt.Sprintf("%.1f", m.WeightKg),
			strconv.Itoa(m.WaterIntakeMl),
			strconv.Itoa(m.Mood),
		}
		if m.Sleep != nil {
			row = append(row, fmt.Sprintf("%.1f", m.Sleep.TotalHours))
		} else {
			row = append(row, "")
		}
		if m.HeartRate != nil {
			row = append(row, strconv.Itoa(m.HeartRate.Resting))
		} else {
			row = append(row, "")
		}

		if err := w.Write(row); err != nil {
			return nil, err
		}
	}

	sum := g.summarize(metrics, meals, workouts)
	footer := []string{
		"summary",
		strconv.Itoa(sum.AvgSteps),
		sum.WeightDelta,
		strconv.Itoa(sum.AvgWaterMl),
		"",
		sum.AvgSleepHours,
		"",
	}
	if err := w.Write(footer); err != nil {
		return nil, err
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// PDF renders the summary page with a recent-days table.
func (g *Generator) PDF(metrics []storage.HealthMetrics, meals []storage.Meal, workouts []storage.Workout, days int) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, "VitaCoach Progress Report")
	pdf.Ln(8)

	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Window: last %d days", days))
	pdf.Ln(12)

	sum := g.summarize(metrics, meals, workouts)

	pdf.SetFont("Helvetica", "B", 14)
	pdf.Cell(0, 8, "Summary")
	pdf.Ln(8)

	pdf.SetFont("Helvetica", "", 10)
	lines := []string{
		fmt.Sprintf("Average steps: %d", sum.AvgSteps),
		fmt.Sprintf("Weight change: %s", sum.WeightDelta),
		fmt.Sprintf("Average sleep: %s", sum.AvgSleepHours),
		fmt.Sprintf("Average water intake: %d ml", sum.AvgWaterMl),
		fmt.Sprintf("Meals logged: %d (%.0f kcal)", sum.MealsLogged, sum.TotalCalories),
		fmt.Sprintf("Workouts logged: %d (%d kcal burned)", sum.WorkoutsLogged, sum.CaloriesBurned),
	}
	for _, line := range lines {
		pdf.Cell(0, 6, line)
		pdf.Ln(5)
	}
	pdf.Ln(7)

	pdf.SetFont("Helvetica", "B", 14)
	pdf.Cell(0, 8, "Recent days")
	pdf.Ln(8)

	pdf.SetFont("Helvetica", "B", 9)
	colWidths := []float64{28, 22, 24, 28, 16}
	headers := []string{"Date", "Steps", "Weight", "Water (ml)", "Mood"}
	for i, h := range headers {
		pdf.CellFormat(colWidths[i], 6, h, "1", 0, "", false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 9)
	limit := len(metrics)
	if limit > 14 {
		limit = 14
	}
	for _, m := range metrics[:limit] {
		cells := []string{
			m.Date.UTC().Format("2006-01-02"),
			strconv.Itoa(m.Steps),
			fmt.Sprintf("%.1f", m.WeightKg),
			strconv.Itoa(m.WaterIntakeMl),
			strconv.Itoa(m.Mood),
		}
		for i, c := range cells {
			pdf.CellFormat(colWidths[i], 6, c, "1", 0, "", false, 0, "")
		}
		pdf.Ln(-1)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to generate PDF: %w", err)
	}

	return buf.Bytes(), nil
}
