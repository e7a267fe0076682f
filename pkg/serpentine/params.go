// Package serpentine generates meander copper trace geometry from a small
// parameter set. The geometry is plain lines and three-point arcs grouped
// into named layers; rendering and board export are other packages' jobs.
package serpentine

import (
	"strconv"
	"strings"
)

// Parameters describes one serpentine pattern. All lengths are millimeters,
// the angle is degrees. A zero value is not usable; start from
// DefaultParameters.
type Parameters struct {
	Radius     float64 // Corner radius between runs and leads
	Amplitude  float64 // Height of each meander run
	Angle      float64 // Rotation of the whole pattern
	Length     float64 // Straight lead-in/lead-out length
	Pitch      float64 // Clearance between adjacent runs
	FrontCount int     // Meander runs on the front copper layer
	FrontWidth float64 // Front copper trace width
	BackCount  int     // Meander runs on the back copper layer
	BackWidth  float64 // Back copper trace width
	NoEdge     bool    // Suppress the edge-cuts outline
}

// Field keys accepted by ParametersFromStrings and used in preset files.
const (
	KeyRadius     = "radius"
	KeyAmplitude  = "amplitude"
	KeyAngle      = "angle"
	KeyLength     = "length"
	KeyPitch      = "pitch"
	KeyFrontCount = "front_count"
	KeyFrontWidth = "front_width"
	KeyBackCount  = "back_count"
	KeyBackWidth  = "back_width"
	KeyNoEdge     = "noedge"
)

// DefaultParameters returns the documented defaults used whenever a field is
// missing or fails to parse.
func DefaultParameters() Parameters {
	return Parameters{
		Radius:     2,
		Amplitude:  5,
		Angle:      10,
		Length:     20,
		Pitch:      0.3,
		FrontCount: 2,
		FrontWidth: 0.4,
		BackCount:  3,
		BackWidth:  0.2,
	}
}

// ParametersFromStrings builds a Parameters from raw field values, typically
// read straight out of UI text fields. Each field that is missing or fails
// to parse silently falls back to its default; a bad value never affects the
// other fields and never blocks the update.
func ParametersFromStrings(fields map[string]string) Parameters {
	p := DefaultParameters()
	parseFloatField(fields, KeyRadius, &p.Radius)
	parseFloatField(fields, KeyAmplitude, &p.Amplitude)
	parseFloatField(fields, KeyAngle, &p.Angle)
	parseFloatField(fields, KeyLength, &p.Length)
	parseFloatField(fields, KeyPitch, &p.Pitch)
	parseIntField(fields, KeyFrontCount, &p.FrontCount)
	parseFloatField(fields, KeyFrontWidth, &p.FrontWidth)
	parseIntField(fields, KeyBackCount, &p.BackCount)
	parseFloatField(fields, KeyBackWidth, &p.BackWidth)
	parseBoolField(fields, KeyNoEdge, &p.NoEdge)
	return p
}

func parseFloatField(fields map[string]string, key string, dst *float64) {
	raw, ok := fields[key]
	if !ok {
		return
	}
	if v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64); err == nil {
		*dst = v
	}
}

func parseIntField(fields map[string]string, key string, dst *int) {
	raw, ok := fields[key]
	if !ok {
		return
	}
	if v, err := strconv.Atoi(strings.TrimSpace(raw)); err == nil {
		*dst = v
	}
}

func parseBoolField(fields map[string]string, key string, dst *bool) {
	raw, ok := fields[key]
	if !ok {
		return
	}
	if v, err := strconv.ParseBool(strings.TrimSpace(raw)); err == nil {
		*dst = v
	}
}
