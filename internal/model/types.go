// Package model defines shared data structures.
package model

// WorkoutType identifies a supported workout category.
type WorkoutType int

const (
	Running WorkoutType = iota
	Walking
	Swimming
)

// String returns the display name of the workout type.
func (t WorkoutType) String() string {
	switch t {
	case Running:
		return "Running"
	case Walking:
		return "Walking"
	case Swimming:
		return "Swimming"
	default:
		return "Unknown"
	}
}

// Code returns the sensor wire code for the workout type.
func (t WorkoutType) Code() string {
	switch t {
	case Running:
		return "RUN"
	case Walking:
		return "WLK"
	case Swimming:
		return "SWM"
	default:
		return ""
	}
}

// SensorReading carries the raw counters of a single workout session.
// Action is the motion counter (steps for running/walking, strokes for
// swimming), DurationH the elapsed time in hours, WeightKG the athlete
// weight. HeightCM is used by walking only; PoolLengthM and Laps by
// swimming only.
type SensorReading struct {
	Action      float64
	DurationH   float64
	WeightKG    float64
	HeightCM    float64
	PoolLengthM float64
	Laps        float64
}

// Result is a computed workout summary.
type Result struct {
	Type       WorkoutType
	DurationH  float64
	DistanceKM float64
	SpeedKMH   float64
	Calories   float64
}

// Profile holds athlete defaults used to fill in omitted packet fields.
// Zero values mean "not configured".
type Profile struct {
	WeightKG float64
	HeightCM float64
}
