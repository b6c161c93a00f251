// Package packet decodes raw sensor packets into typed workout readings.
package packet

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/verte-zerg/fittrack/internal/model"
	"github.com/verte-zerg/fittrack/internal/workout"
)

// Field layout per wire code. Values arrive as a flat tuple in this order;
// trailing fields marked optional may be filled from the athlete profile.
//
//	RUN: action, duration_h, weight_kg
//	WLK: action, duration_h, weight_kg, height_cm
//	SWM: action, duration_h, weight_kg, pool_length_m, laps
type layout struct {
	typ      model.WorkoutType
	fields   []string
	optional int // count of trailing fields the profile may supply
}

var layouts = map[string]layout{
	"RUN": {typ: model.Running, fields: []string{"action", "duration_h", "weight_kg"}, optional: 1},
	"WLK": {typ: model.Walking, fields: []string{"action", "duration_h", "weight_kg", "height_cm"}, optional: 2},
	"SWM": {typ: model.Swimming, fields: []string{"action", "duration_h", "weight_kg", "pool_length_m", "laps"}},
}

// Codes returns the known wire codes in display order.
func Codes() []string {
	return []string{"RUN", "WLK", "SWM"}
}

// Fields returns the ordered field names for a wire code.
func Fields(code string) []string {
	l, ok := layouts[normalize(code)]
	if !ok {
		return nil
	}
	return append([]string(nil), l.fields...)
}

// Decode maps a wire code and flat value tuple to a typed sensor reading.
// Omitted trailing fields (weight, and height for WLK) are taken from the
// profile when it carries them. Unknown codes map to
// workout.ErrUnsupportedType, arity mismatches to workout.ErrInvalidInput.
func Decode(code string, values []float64, profile model.Profile) (model.WorkoutType, model.SensorReading, error) {
	l, ok := layouts[normalize(code)]
	if !ok {
		return 0, model.SensorReading{}, fmt.Errorf("%w: %q (known codes: %s)",
			workout.ErrUnsupportedType, code, strings.Join(Codes(), ", "))
	}

	required := len(l.fields) - l.optional
	if len(values) < required || len(values) > len(l.fields) {
		return 0, model.SensorReading{}, arityError(code, l, required)
	}

	filled := make([]float64, len(l.fields))
	copy(filled, values)
	for i := len(values); i < len(l.fields); i++ {
		v, ok := profileValue(profile, l.fields[i])
		if !ok {
			return 0, model.SensorReading{}, fmt.Errorf("%w: %s packet omits %s and no profile default is configured",
				workout.ErrInvalidInput, normalize(code), l.fields[i])
		}
		filled[i] = v
	}

	reading := model.SensorReading{
		Action:    filled[0],
		DurationH: filled[1],
		WeightKG:  filled[2],
	}
	switch l.typ {
	case model.Walking:
		reading.HeightCM = filled[3]
	case model.Swimming:
		reading.PoolLengthM = filled[3]
		reading.Laps = filled[4]
	}
	return l.typ, reading, nil
}

// ParseLine splits a whitespace-separated packet line into a wire code and
// numeric values. The caller is expected to skip blank and comment lines.
func ParseLine(line string) (string, []float64, error) {
	parts := strings.Fields(line)
	if len(parts) == 0 {
		return "", nil, fmt.Errorf("%w: empty packet line", workout.ErrInvalidInput)
	}
	code := parts[0]
	values := make([]float64, 0, len(parts)-1)
	for _, part := range parts[1:] {
		v, err := strconv.ParseFloat(part, 64)
		if err != nil {
			return "", nil, fmt.Errorf("%w: %q is not a number", workout.ErrInvalidInput, part)
		}
		values = append(values, v)
	}
	return code, values, nil
}

func arityError(code string, l layout, required int) error {
	if l.optional == 0 {
		return fmt.Errorf("%w: %s packet needs %d values (%s)",
			workout.ErrInvalidInput, normalize(code), len(l.fields), strings.Join(l.fields, ", "))
	}
	return fmt.Errorf("%w: %s packet needs %d to %d values (%s)",
		workout.ErrInvalidInput, normalize(code), required, len(l.fields), strings.Join(l.fields, ", "))
}

func profileValue(profile model.Profile, field string) (float64, bool) {
	switch field {
	case "weight_kg":
		return profile.WeightKG, profile.WeightKG > 0
	case "height_cm":
		return profile.HeightCM, profile.HeightCM > 0
	default:
		return 0, false
	}
}

func normalize(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}
