// Package workout computes workout summaries from raw sensor readings.
package workout

import (
	"errors"
	"fmt"
	"math"

	"github.com/verte-zerg/fittrack/internal/model"
)

var (
	// ErrUnsupportedType indicates an unknown workout type tag.
	ErrUnsupportedType = errors.New("unsupported workout type")
	// ErrInvalidInput indicates a malformed, missing, or non-positive sensor value.
	ErrInvalidInput = errors.New("invalid sensor input")
)

// Calibration constants from the tracker firmware documentation.
const (
	metersPerKM = 1000.0
	minPerHour  = 60.0

	stepLengthM   = 0.65
	strokeLengthM = 1.38

	runSpeedFactor = 18.0
	runSpeedShift  = 20.0
	walkWeightCoef = 0.035
	walkSpeedCoef  = 0.029
	swimSpeedShift = 1.1
	swimWeightCoef = 2.0
)

// Compute derives a workout summary from a sensor reading. It is a pure
// function: identical inputs always produce identical results, and no
// NaN or Inf ever reaches an accepted Result.
func Compute(typ model.WorkoutType, r model.SensorReading) (model.Result, error) {
	if err := validate(typ, r); err != nil {
		return model.Result{}, err
	}

	var distance, speed, calories float64
	switch typ {
	case model.Running:
		distance = stepDistance(r.Action)
		speed = distance / r.DurationH
		calories = (runSpeedFactor*speed - runSpeedShift) * r.WeightKG / metersPerKM * r.DurationH * minPerHour
	case model.Walking:
		distance = stepDistance(r.Action)
		speed = distance / r.DurationH
		calories = (walkWeightCoef*r.WeightKG +
			math.Floor(speed*speed/r.HeightCM)*walkSpeedCoef*r.WeightKG) * r.DurationH * minPerHour
	case model.Swimming:
		distance = r.Action * strokeLengthM / metersPerKM
		speed = r.PoolLengthM * r.Laps / metersPerKM / r.DurationH
		calories = (speed + swimSpeedShift) * swimWeightCoef * r.WeightKG
	default:
		return model.Result{}, fmt.Errorf("%w: %v", ErrUnsupportedType, typ)
	}

	return model.Result{
		Type:       typ,
		DurationH:  r.DurationH,
		DistanceKM: distance,
		SpeedKMH:   speed,
		Calories:   calories,
	}, nil
}

func stepDistance(action float64) float64 {
	return action * stepLengthM / metersPerKM
}

func validate(typ model.WorkoutType, r model.SensorReading) error {
	switch typ {
	case model.Running, model.Walking, model.Swimming:
	default:
		return fmt.Errorf("%w: %v", ErrUnsupportedType, typ)
	}
	if r.DurationH <= 0 {
		return fmt.Errorf("%w: duration must be > 0 hours, got %v", ErrInvalidInput, r.DurationH)
	}
	if r.Action < 0 {
		return fmt.Errorf("%w: action count must be >= 0, got %v", ErrInvalidInput, r.Action)
	}
	if r.WeightKG <= 0 {
		return fmt.Errorf("%w: weight must be > 0 kg, got %v", ErrInvalidInput, r.WeightKG)
	}
	if typ == model.Walking && r.HeightCM <= 0 {
		return fmt.Errorf("%w: height must be > 0 cm, got %v", ErrInvalidInput, r.HeightCM)
	}
	if typ == model.Swimming {
		if r.PoolLengthM <= 0 {
			return fmt.Errorf("%w: pool length must be > 0 m, got %v", ErrInvalidInput, r.PoolLengthM)
		}
		if r.Laps <= 0 {
			return fmt.Errorf("%w: lap count must be > 0, got %v", ErrInvalidInput, r.Laps)
		}
	}
	return nil
}
