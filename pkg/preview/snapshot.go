package preview

import "github.com/OpenTraceLab/MeanderTrace/pkg/geom"

// Snapshot is one immutable state of the preview pipeline: the geometry
// produced by the last parameter update together with the transform fitted
// for the current surface size. Passing snapshots through update -> fit ->
// render keeps a redraw from ever observing a transform computed for
// different geometry.
type Snapshot struct {
	Layers      geom.LayerSet
	Transform   Transform
	HasGeometry bool
}

// NewSnapshot builds the snapshot for one parameter update. A generation
// error or empty geometry yields a placeholder snapshot; errors never
// propagate past this boundary.
func NewSnapshot(layers geom.LayerSet, err error, width, height int) Snapshot {
	if err != nil {
		return Snapshot{Transform: NewTransform()}
	}
	tr, ok := Fit(layers, width, height)
	if !ok {
		return Snapshot{Transform: tr}
	}
	return Snapshot{Layers: layers, Transform: tr, HasGeometry: true}
}

// Refit recomputes the transform for a new surface size, keeping the
// geometry. Called on resize.
func (s Snapshot) Refit(width, height int) Snapshot {
	if !s.HasGeometry {
		return s
	}
	s.Transform, _ = Fit(s.Layers, width, height)
	return s
}

// Render draws the snapshot onto c.
func (s Snapshot) Render(c Canvas) {
	if !s.HasGeometry {
		Render(c, nil, s.Transform)
		return
	}
	Render(c, s.Layers, s.Transform)
}
