package ui

import (
	"testing"

	"github.com/OpenTraceLab/MeanderTrace/pkg/serpentine"
)

// Picker goroutines must not touch widget or snapshot state directly; they
// post results that the frame handler drains. These tests exercise the
// post/drain handoff without a window.

func TestDrainPendingAppliesPostedParameters(t *testing.T) {
	a := &App{}

	p := serpentine.DefaultParameters()
	p.Amplitude = 8
	p.FrontCount = 4
	a.postParameters(p)

	if a.params == p {
		t.Fatal("posted parameters applied before drain")
	}

	a.drainPending()

	if a.params != p {
		t.Errorf("params = %+v, want posted %+v", a.params, p)
	}
	if !a.snapshot.HasGeometry {
		t.Error("drain did not regenerate the snapshot")
	}
	if a.noEdge.Value != p.NoEdge {
		t.Errorf("noEdge.Value = %v, want %v", a.noEdge.Value, p.NoEdge)
	}
}

func TestDrainPendingAppliesPostedStatus(t *testing.T) {
	a := &App{}

	a.postStatus("Preset saved")
	if a.status != "" {
		t.Fatal("posted status applied before drain")
	}

	a.drainPending()
	if a.status != "Preset saved" {
		t.Errorf("status = %q, want %q", a.status, "Preset saved")
	}

	// A second drain with nothing posted changes nothing.
	a.drainPending()
	if a.status != "Preset saved" {
		t.Errorf("status after empty drain = %q, want unchanged", a.status)
	}
}
