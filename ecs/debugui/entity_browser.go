package debugui

import (
	"fmt"
	"strings"

	"github.com/AllenDang/cimgui-go/imgui"

	"github.com/amyinorbit/pd-ecs/ecs"
)

// Selected returns the entity picked in the browser, if any. The selection
// is dropped automatically once the handle goes stale.
func (eb *EntityBrowserWindow) Selected() (ecs.Entity, bool) {
	return eb.selected, eb.hasSelection
}

func (eb *EntityBrowserWindow) Render(registry *ecs.Registry) {
	if !imgui.BeginV("Entity Browser", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	if eb.hasSelection && !registry.IsValid(eb.selected) {
		eb.hasSelection = false
	}

	imgui.InputTextWithHint("##search", "Filter by component...", &eb.filterText, imgui.InputTextFlagsNone, nil)
	imgui.SameLine()
	if imgui.Button("Clear Filter") {
		eb.filterText = ""
	}

	const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg | imgui.TableFlagsScrollY
	if imgui.BeginTableV("EntityTable", 4, tableFlags, imgui.NewVec2(0, 0), 0) {
		imgui.TableSetupColumn("Handle")
		imgui.TableSetupColumn("Slot")
		imgui.TableSetupColumn("Generation")
		imgui.TableSetupColumn("Components")
		imgui.TableHeadersRow()

		filter := strings.ToLower(eb.filterText)
		count := 0

		registry.Match(0, func(r *ecs.Registry, e ecs.Entity, _ any) {
			names := componentNames(r, e)
			joined := strings.Join(names, ", ")
			if filter != "" && !strings.Contains(strings.ToLower(joined), filter) {
				return
			}
			count++

			imgui.TableNextRow()

			imgui.TableNextColumn()
			isSelected := eb.hasSelection && eb.selected == e
			if imgui.SelectableBoolV(fmt.Sprintf("0x%08X", uint32(e)), isSelected, imgui.SelectableFlagsSpanAllColumns, imgui.NewVec2(0, 0)) {
				eb.selected = e
				eb.hasSelection = true
			}

			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("%d", e.Index()))

			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("%d", e.Generation()))

			imgui.TableNextColumn()
			imgui.Text(joined)
		}, nil)

		imgui.EndTable()
		imgui.Text(fmt.Sprintf("%d / %d entities live", count, registry.Capacity()))
	}

	imgui.End()
}

func componentNames(r *ecs.Registry, e ecs.Entity) []string {
	mask := r.MaskOf(e)
	names := make([]string, 0, r.ComponentCount())
	for id := 0; id < r.ComponentCount(); id++ {
		if mask.Has(ecs.ComponentID(id)) {
			names = append(names, r.ComponentName(ecs.ComponentID(id)))
		}
	}
	return names
}
