package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/OpenTraceLab/MeanderTrace/pkg/serpentine"
	"github.com/OpenTraceLab/MeanderTrace/pkg/serpentine/preset"
)

// addParameterFlags registers the shared pattern flags on a subcommand.
// Defaults mirror serpentine.DefaultParameters so --help shows the real
// values.
func addParameterFlags(cmd *cobra.Command) {
	d := serpentine.DefaultParameters()
	f := cmd.Flags()
	f.Float64(serpentine.KeyRadius, d.Radius, "turn radius in mm")
	f.Float64(serpentine.KeyAmplitude, d.Amplitude, "meander amplitude in mm")
	f.Float64(serpentine.KeyAngle, d.Angle, "pattern rotation in degrees")
	f.Float64(serpentine.KeyLength, d.Length, "lead-in/lead-out length in mm")
	f.Float64(serpentine.KeyPitch, d.Pitch, "gap between runs in mm")
	f.Int("front-count", d.FrontCount, "number of front copper runs")
	f.Float64("front-width", d.FrontWidth, "front copper trace width in mm")
	f.Int("back-count", d.BackCount, "number of back copper runs")
	f.Float64("back-width", d.BackWidth, "back copper trace width in mm")
	f.Bool(serpentine.KeyNoEdge, d.NoEdge, "omit the board outline layer")
	f.String("preset", "", "load parameters from a preset file first")
}

// resolveParameters builds the effective parameters: defaults, then the
// --preset file if given, then any explicitly set flags on top.
func resolveParameters(cmd *cobra.Command) (serpentine.Parameters, error) {
	p := serpentine.DefaultParameters()
	f := cmd.Flags()

	if path, _ := f.GetString("preset"); path != "" {
		loaded, err := preset.Load(path)
		if err != nil {
			return p, fmt.Errorf("loading preset %s: %w", path, err)
		}
		p = loaded
	}

	if f.Changed(serpentine.KeyRadius) {
		p.Radius, _ = f.GetFloat64(serpentine.KeyRadius)
	}
	if f.Changed(serpentine.KeyAmplitude) {
		p.Amplitude, _ = f.GetFloat64(serpentine.KeyAmplitude)
	}
	if f.Changed(serpentine.KeyAngle) {
		p.Angle, _ = f.GetFloat64(serpentine.KeyAngle)
	}
	if f.Changed(serpentine.KeyLength) {
		p.Length, _ = f.GetFloat64(serpentine.KeyLength)
	}
	if f.Changed(serpentine.KeyPitch) {
		p.Pitch, _ = f.GetFloat64(serpentine.KeyPitch)
	}
	if f.Changed("front-count") {
		p.FrontCount, _ = f.GetInt("front-count")
	}
	if f.Changed("front-width") {
		p.FrontWidth, _ = f.GetFloat64("front-width")
	}
	if f.Changed("back-count") {
		p.BackCount, _ = f.GetInt("back-count")
	}
	if f.Changed("back-width") {
		p.BackWidth, _ = f.GetFloat64("back-width")
	}
	if f.Changed(serpentine.KeyNoEdge) {
		p.NoEdge, _ = f.GetBool(serpentine.KeyNoEdge)
	}

	return p, nil
}
