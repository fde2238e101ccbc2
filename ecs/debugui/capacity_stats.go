package debugui

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/imgui"

	"github.com/amyinorbit/pd-ecs/ecs"
)

func (cw *CapacityWindow) Render(registry *ecs.Registry, deltaTime float32) {
	if !imgui.BeginV("Registry Capacity", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	cw.frameHistory[cw.frameIndex] = deltaTime * 1000.0
	cw.frameIndex = (cw.frameIndex + 1) % cw.historyFrames

	stats := registry.CollectStats()

	imgui.Text(fmt.Sprintf("Entities: %d / %d (%d free)", stats.LiveEntities, stats.EntityCapacity, stats.FreeSlots))
	usage := float32(stats.LiveEntities) / float32(stats.EntityCapacity)
	imgui.ProgressBarV(usage, imgui.NewVec2(0, 0), fmt.Sprintf("%.0f%%", usage*100))

	var avgFrameTime float32
	for _, ft := range cw.frameHistory {
		avgFrameTime += ft
	}
	avgFrameTime /= float32(cw.historyFrames)
	imgui.Text(fmt.Sprintf("Avg Frame Time: %.2f ms", avgFrameTime))
	imgui.PlotLinesFloatPtr("##frametime", &cw.frameHistory[0], int32(len(cw.frameHistory)))

	imgui.Separator()

	if imgui.TreeNodeStr("Component Types") {
		const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg
		if imgui.BeginTableV("CompTypeTable", 4, tableFlags, imgui.NewVec2(0, 0), 0) {
			imgui.TableSetupColumn("Name")
			imgui.TableSetupColumn("Record Size")
			imgui.TableSetupColumn("Buffer")
			imgui.TableSetupColumn("Attached")
			imgui.TableHeadersRow()

			for _, comp := range stats.ComponentTypes {
				imgui.TableNextRow()
				imgui.TableNextColumn()
				imgui.Text(comp.Name)
				imgui.TableNextColumn()
				imgui.Text(fmt.Sprintf("%d B", comp.RecordSize))
				imgui.TableNextColumn()
				imgui.Text(fmt.Sprintf("%d B", comp.BufferBytes))
				imgui.TableNextColumn()
				imgui.Text(fmt.Sprintf("%d", comp.Attached))
			}
			imgui.EndTable()
		}
		imgui.TreePop()
	}

	if imgui.TreeNodeStr("Systems") {
		const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg
		if imgui.BeginTableV("SystemTable", 5, tableFlags, imgui.NewVec2(0, 0), 0) {
			imgui.TableSetupColumn("ID")
			imgui.TableSetupColumn("Mask")
			imgui.TableSetupColumn("Runs")
			imgui.TableSetupColumn("Avg")
			imgui.TableSetupColumn("Last")
			imgui.TableHeadersRow()

			for _, sys := range stats.Systems {
				imgui.TableNextRow()
				imgui.TableNextColumn()
				imgui.Text(fmt.Sprintf("%d", sys.ID))
				imgui.TableNextColumn()
				imgui.Text(fmt.Sprintf("0b%b", sys.Mask))
				imgui.TableNextColumn()
				imgui.Text(fmt.Sprintf("%d", sys.ExecutionCount))
				imgui.TableNextColumn()
				imgui.Text(sys.AvgDuration.String())
				imgui.TableNextColumn()
				imgui.Text(sys.LastDuration.String())
			}
			imgui.EndTable()
		}
		imgui.TreePop()
	}

	imgui.End()
}
