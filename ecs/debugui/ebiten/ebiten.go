// Package ebiten provides Dear ImGui backend integration for hosts that run
// a registry inside an Ebiten game loop.
package ebiten

import (
	ebitenbackend "github.com/AllenDang/cimgui-go/backend/ebiten-backend"
)

// ImguiBackend wraps the Ebiten-specific Dear ImGui backend implementation.
// Call BeginFrame before Inspector.Draw and EndFrame after it; Draw renders
// the overlay on top of the game image.
type ImguiBackend struct {
	*ebitenbackend.EbitenBackend
}

// New creates a backend with a window of the given size.
func New(title string, width, height int) *ImguiBackend {
	backend := ebitenbackend.NewEbitenBackend()
	backend.CreateWindow(title, width, height)
	return &ImguiBackend{EbitenBackend: backend}
}
