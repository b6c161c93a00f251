package workout

import (
	"errors"
	"math"
	"testing"

	"github.com/verte-zerg/fittrack/internal/model"
)

const tolerance = 1e-9

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < tolerance
}

func TestComputeFirmwareSamples(t *testing.T) {
	cases := []struct {
		name     string
		typ      model.WorkoutType
		reading  model.SensorReading
		distance float64
		speed    float64
		calories float64
	}{
		{
			name:     "swimming",
			typ:      model.Swimming,
			reading:  model.SensorReading{Action: 720, DurationH: 1, WeightKG: 80, PoolLengthM: 25, Laps: 40},
			distance: 0.9936,
			speed:    1.0,
			calories: 336.0,
		},
		{
			name:     "running",
			typ:      model.Running,
			reading:  model.SensorReading{Action: 15000, DurationH: 1, WeightKG: 75},
			distance: 9.75,
			speed:    9.75,
			calories: 699.75,
		},
		{
			name:     "walking",
			typ:      model.Walking,
			reading:  model.SensorReading{Action: 9000, DurationH: 1, WeightKG: 75, HeightCM: 180},
			distance: 5.85,
			speed:    5.85,
			calories: 157.5,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			res, err := Compute(tc.typ, tc.reading)
			if err != nil {
				t.Fatalf("compute: %v", err)
			}
			if res.Type != tc.typ {
				t.Fatalf("expected type %v, got %v", tc.typ, res.Type)
			}
			if !almostEqual(res.DurationH, tc.reading.DurationH) {
				t.Fatalf("expected duration %v, got %v", tc.reading.DurationH, res.DurationH)
			}
			if !almostEqual(res.DistanceKM, tc.distance) {
				t.Fatalf("expected distance %v, got %v", tc.distance, res.DistanceKM)
			}
			if !almostEqual(res.SpeedKMH, tc.speed) {
				t.Fatalf("expected speed %v, got %v", tc.speed, res.SpeedKMH)
			}
			if !almostEqual(res.Calories, tc.calories) {
				t.Fatalf("expected calories %v, got %v", tc.calories, res.Calories)
			}
		})
	}
}

func TestComputeSpeedMatchesDistanceOverDuration(t *testing.T) {
	cases := []struct {
		typ     model.WorkoutType
		reading model.SensorReading
	}{
		{model.Running, model.SensorReading{Action: 4200, DurationH: 0.5, WeightKG: 68}},
		{model.Walking, model.SensorReading{Action: 11000, DurationH: 1.75, WeightKG: 82, HeightCM: 175}},
	}
	for _, tc := range cases {
		res, err := Compute(tc.typ, tc.reading)
		if err != nil {
			t.Fatalf("compute %v: %v", tc.typ, err)
		}
		if !almostEqual(res.SpeedKMH, res.DistanceKM/res.DurationH) {
			t.Fatalf("%v: speed %v != distance/duration %v", tc.typ, res.SpeedKMH, res.DistanceKM/res.DurationH)
		}
		if res.DistanceKM < 0 || res.SpeedKMH < 0 {
			t.Fatalf("%v: negative distance or speed: %+v", tc.typ, res)
		}
	}
}

func TestComputeDeterministic(t *testing.T) {
	reading := model.SensorReading{Action: 720, DurationH: 1.5, WeightKG: 80, PoolLengthM: 25, Laps: 60}
	first, err := Compute(model.Swimming, reading)
	if err != nil {
		t.Fatalf("compute: %v", err)
	}
	second, err := Compute(model.Swimming, reading)
	if err != nil {
		t.Fatalf("compute: %v", err)
	}
	if first != second {
		t.Fatalf("expected identical results, got %+v and %+v", first, second)
	}
}

func TestComputeRejectsZeroDuration(t *testing.T) {
	for _, typ := range []model.WorkoutType{model.Running, model.Walking, model.Swimming} {
		_, err := Compute(typ, model.SensorReading{Action: 1000, WeightKG: 70, HeightCM: 180, PoolLengthM: 25, Laps: 10})
		if !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("%v: expected ErrInvalidInput for zero duration, got %v", typ, err)
		}
	}
}

func TestComputeRejectsUnknownType(t *testing.T) {
	_, err := Compute(model.WorkoutType(42), model.SensorReading{Action: 1000, DurationH: 1, WeightKG: 70})
	if !errors.Is(err, ErrUnsupportedType) {
		t.Fatalf("expected ErrUnsupportedType, got %v", err)
	}
}

func TestComputeRejectsMissingFields(t *testing.T) {
	cases := []struct {
		name    string
		typ     model.WorkoutType
		reading model.SensorReading
	}{
		{"running without weight", model.Running, model.SensorReading{Action: 1000, DurationH: 1}},
		{"walking without height", model.Walking, model.SensorReading{Action: 1000, DurationH: 1, WeightKG: 70}},
		{"swimming without pool length", model.Swimming, model.SensorReading{Action: 720, DurationH: 1, WeightKG: 80, Laps: 40}},
		{"swimming without laps", model.Swimming, model.SensorReading{Action: 720, DurationH: 1, WeightKG: 80, PoolLengthM: 25}},
		{"negative action count", model.Running, model.SensorReading{Action: -1, DurationH: 1, WeightKG: 70}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Compute(tc.typ, tc.reading)
			if !errors.Is(err, ErrInvalidInput) {
				t.Fatalf("expected ErrInvalidInput, got %v", err)
			}
		})
	}
}

func TestComputeProducesFiniteValues(t *testing.T) {
	readings := []struct {
		typ     model.WorkoutType
		reading model.SensorReading
	}{
		{model.Running, model.SensorReading{Action: 1000, DurationH: 1, WeightKG: 70}},
		{model.Walking, model.SensorReading{Action: 1, DurationH: 0.01, WeightKG: 50, HeightCM: 150}},
		{model.Swimming, model.SensorReading{Action: 1, DurationH: 24, WeightKG: 120, PoolLengthM: 50, Laps: 1}},
	}
	for _, tc := range readings {
		res, err := Compute(tc.typ, tc.reading)
		if err != nil {
			t.Fatalf("compute %v: %v", tc.typ, err)
		}
		for name, v := range map[string]float64{
			"distance": res.DistanceKM,
			"speed":    res.SpeedKMH,
			"calories": res.Calories,
		} {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				t.Fatalf("%v: %s is not finite: %v", tc.typ, name, v)
			}
		}
	}
}
