package debugui

import (
	"fmt"
	"strings"

	"github.com/AllenDang/cimgui-go/imgui"

	"github.com/amyinorbit/pd-ecs/ecs"
)

func (ci *ComponentInspectorWindow) Render(registry *ecs.Registry, selected ecs.Entity, hasSelection bool) {
	if !imgui.BeginV("Component Inspector", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	if !hasSelection {
		imgui.Text("Select an entity in the browser.")
		imgui.End()
		return
	}

	imgui.Text(fmt.Sprintf("Entity 0x%08X (slot %d, gen %d)", uint32(selected), selected.Index(), selected.Generation()))
	imgui.Checkbox("Show raw bytes", &ci.showRawBytes)
	imgui.Separator()

	for id := 0; id < registry.ComponentCount(); id++ {
		compID := ecs.ComponentID(id)
		record, attached := registry.Get(selected, compID)
		if !attached {
			continue
		}

		if imgui.TreeNodeStr(registry.ComponentName(compID)) {
			imgui.Text(fmt.Sprintf("ID: %d, record size: %d bytes", id, len(record)))
			if ci.showRawBytes {
				imgui.Text(hexDump(record))
			}
			imgui.TreePop()
		}
	}

	imgui.End()
}

// hexDump formats record bytes in 16-byte rows.
func hexDump(data []byte) string {
	var sb strings.Builder
	for i, b := range data {
		if i > 0 {
			if i%16 == 0 {
				sb.WriteByte('\n')
			} else {
				sb.WriteByte(' ')
			}
		}
		fmt.Fprintf(&sb, "%02X", b)
	}
	return sb.String()
}
