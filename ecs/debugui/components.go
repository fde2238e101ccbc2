package debugui

import (
	"github.com/amyinorbit/pd-ecs/ecs"
)

type EntityBrowserWindow struct {
	selected     ecs.Entity
	hasSelection bool
	filterText   string
}

type ComponentInspectorWindow struct {
	showRawBytes bool
}

type CapacityWindow struct {
	historyFrames int
	frameHistory  []float32
	frameIndex    int
}
