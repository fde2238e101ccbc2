// Package debugui provides a Dear ImGui inspector for a registry: an entity
// browser over the slot table, a component inspector for the selected entity,
// and a capacity/timing window. The host owns the ImGui frame; call Draw
// between its backend's BeginFrame and EndFrame.
package debugui

import (
	"github.com/AllenDang/cimgui-go/imgui"

	"github.com/amyinorbit/pd-ecs/ecs"
)

// Inspector aggregates the debug windows for one registry.
type Inspector struct {
	registry *ecs.Registry

	Browser    EntityBrowserWindow
	Components ComponentInspectorWindow
	Capacity   CapacityWindow
}

// NewInspector creates an inspector for the given registry. historyFrames
// sets the length of the frame-time graph in the capacity window.
func NewInspector(registry *ecs.Registry, historyFrames int) *Inspector {
	return &Inspector{
		registry: registry,
		Capacity: CapacityWindow{
			historyFrames: historyFrames,
			frameHistory:  make([]float32, historyFrames),
		},
	}
}

// Draw renders all inspector windows. deltaTime is the host's frame delta in
// seconds, used for the frame-time graph.
func (in *Inspector) Draw(deltaTime float32) {
	in.Browser.Render(in.registry)
	selected, ok := in.Browser.Selected()
	in.Components.Render(in.registry, selected, ok)
	in.Capacity.Render(in.registry, deltaTime)
}

// WantCapture reports whether ImGui is currently consuming mouse or keyboard
// input, so the host can suppress its own input handling.
func WantCapture() (mouse, keyboard bool) {
	io := imgui.CurrentIO()
	return io.WantCaptureMouse(), io.WantCaptureKeyboard()
}
