package onebit

import (
	"encoding/json"
	"fmt"
)

// scriptStep represents a single action in a gesture script.
type scriptStep struct {
	Action string `json:"action"`
	X      int    `json:"x,omitempty"`
	Y      int    `json:"y,omitempty"`
	Tool   string `json:"tool,omitempty"`
	Style  string `json:"style,omitempty"`
	Size   int    `json:"size,omitempty"`
}

// gestureScript is the top-level JSON structure for a gesture script.
type gestureScript struct {
	Steps []scriptStep `json:"steps"`
}

// GestureScript replays a recorded sequence of editor inputs: pointer
// events, tool and brush changes, undo and redo. Scripts reproduce
// drawing bugs from the field deterministically and drive the editing
// core in tests without a window.
//
// Supported actions: down, move, up, cancel, undo, redo, ink (toggle),
// tool (with "tool" name), brush (with "style" and "size").
type GestureScript struct {
	steps []scriptStep
}

// LoadGestureScript parses a JSON gesture script.
func LoadGestureScript(jsonData []byte) (*GestureScript, error) {
	var script gestureScript
	if err := json.Unmarshal(jsonData, &script); err != nil {
		return nil, fmt.Errorf("parse gesture script: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, fmt.Errorf("parse gesture script: no steps")
	}
	return &GestureScript{steps: script.Steps}, nil
}

// toolByName maps script tool names (Tool.String values) back to tools.
var toolByName = map[string]Tool{
	"pencil":      ToolPencil,
	"eraser":      ToolEraser,
	"fill":        ToolFill,
	"line":        ToolLine,
	"rect":        ToolRect,
	"rect-fill":   ToolRectFill,
	"circle":      ToolCircle,
	"circle-fill": ToolCircleFill,
	"invert":      ToolInvert,
}

// Apply replays the script against an editor. It stops at the first
// unknown action or tool name and reports it; steps before the failure
// have already been applied.
func (s *GestureScript) Apply(ed *Editor) error {
	for i, st := range s.steps {
		switch st.Action {
		case "down":
			ed.PointerDown(Pt(st.X, st.Y))
		case "move":
			ed.PointerMove(Pt(st.X, st.Y))
		case "up":
			ed.PointerUp()
		case "cancel":
			ed.PointerCancel()
		case "undo":
			ed.Undo()
		case "redo":
			ed.Redo()
		case "ink":
			ed.ToggleInk()
		case "tool":
			tool, ok := toolByName[st.Tool]
			if !ok {
				return fmt.Errorf("script step %d: unknown tool %q", i, st.Tool)
			}
			ed.SetTool(tool)
		case "brush":
			style := BrushSquare
			if st.Style == "round" {
				style = BrushRound
			}
			ed.SetBrush(Brush{Style: style, Size: st.Size})
		default:
			return fmt.Errorf("script step %d: unknown action %q", i, st.Action)
		}
	}
	return nil
}
