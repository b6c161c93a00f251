// Package report renders workout summaries for terminal output.
package report

import (
	"fmt"
	"io"

	"github.com/verte-zerg/fittrack/internal/model"
)

const messageFormat = "Workout type: %s; Duration: %.2f h.; Distance: %.2f km; " +
	"Mean speed: %.2f km/h; Calories burned: %.2f."

// Message formats a single workout summary line.
func Message(res model.Result) string {
	return fmt.Sprintf(messageFormat,
		res.Type, res.DurationH, res.DistanceKM, res.SpeedKMH, res.Calories)
}

// RenderMessages prints one summary line per result.
func RenderMessages(w io.Writer, results []model.Result) error {
	for _, res := range results {
		if _, err := fmt.Fprintln(w, Message(res)); err != nil {
			return err
		}
	}
	return nil
}

// RenderTable prints an aligned summary table for the results.
func RenderTable(w io.Writer, results []model.Result) error {
	if len(results) == 0 {
		_, err := fmt.Fprintln(w, "No workouts found.")
		return err
	}
	headers := []string{"Type", "Duration (h)", "Distance (km)", "Speed (km/h)", "Calories"}
	rows := make([][]string, 0, len(results))
	for _, res := range results {
		rows = append(rows, []string{
			res.Type.String(),
			fmt.Sprintf("%.2f", res.DurationH),
			fmt.Sprintf("%.2f", res.DistanceKM),
			fmt.Sprintf("%.2f", res.SpeedKMH),
			fmt.Sprintf("%.2f", res.Calories),
		})
	}
	rightAlign := map[int]bool{1: true, 2: true, 3: true, 4: true}
	for _, line := range formatTable(headers, rows, rightAlign) {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}
