// Package replay drives an engine from a recorded script of input events,
// one JSON object per line.
package replay

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/edgedraw/edgedraw/internal/engine"
	"github.com/edgedraw/edgedraw/internal/typeid"
)

// ErrUnknownEvent is returned for a script line whose type is not recognized.
var ErrUnknownEvent = errors.New("unknown event")

// Event is one scripted input. Only the fields relevant to Type are read.
type Event struct {
	Type  string  `json:"type"`
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	Btn   int     `json:"button"`
	Shift bool    `json:"shift"`
	Alt   bool    `json:"alt"`
	Key   string  `json:"key"`
	Up    bool    `json:"up"`
	Tool  string  `json:"tool"`
	Text  string  `json:"text"`
	Align string  `json:"align"`
	ID    string  `json:"id"`
	Zoom  float64 `json:"zoom"`

	Props json.RawMessage `json:"props"`
}

func (ev Event) pointer() engine.PointerEvent {
	return engine.PointerEvent{X: ev.X, Y: ev.Y, Button: engine.Button(ev.Btn), Shift: ev.Shift, Alt: ev.Alt}
}

// Apply feeds one event to eng.
func Apply(eng *engine.Engine, ev Event) error {
	switch ev.Type {
	case "down":
		eng.PointerDown(ev.pointer())
	case "move":
		eng.PointerMove(ev.pointer())
	case "up":
		eng.PointerUp()
	case "leave":
		eng.PointerLeave()
	case "dblclick":
		eng.DoubleClick(ev.pointer())
	case "key":
		if ev.Up {
			eng.KeyUp(engine.Key(ev.Key))
		} else {
			eng.KeyDown(engine.Key(ev.Key))
		}
	case "tool":
		return eng.SetTool(ev.Tool)
	case "text":
		eng.SetText(ev.Text)
	case "endText":
		eng.EndWriting()
	case "undo":
		eng.Undo()
	case "redo":
		eng.Redo()
	case "delete":
		eng.DeleteSelected()
	case "duplicate":
		eng.DuplicateSelected()
	case "align":
		eng.AlignSelected(ev.Align)
	case "forward", "backward":
		if err := typeid.Validate(ev.ID, typeid.PrefixElement); err != nil {
			return err
		}
		if ev.Type == "forward" {
			eng.BringForward(ev.ID)
		} else {
			eng.SendBackward(ev.ID)
		}
	case "props":
		if err := eng.UpdateSelectedProperties(string(ev.Props)); err != nil {
			return err
		}
		eng.CommitProperties()
	case "zoom":
		eng.SetZoom(ev.Zoom)
	case "sample":
		eng.LoadSampleDocument()
	default:
		return fmt.Errorf("%w: %q", ErrUnknownEvent, ev.Type)
	}
	return nil
}

// Run reads a script from r and applies every event in order. Blank lines
// and lines starting with '#' are skipped. It stops at the first bad line.
func Run(eng *engine.Engine, r io.Reader, log *slog.Logger) (int, error) {
	if log == nil {
		log = slog.Default()
	}
	sc := bufio.NewScanner(r)
	n := 0
	for line := 1; sc.Scan(); line++ {
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		var ev Event
		if err := json.Unmarshal([]byte(text), &ev); err != nil {
			return n, fmt.Errorf("line %d: %w", line, err)
		}
		if err := Apply(eng, ev); err != nil {
			return n, fmt.Errorf("line %d: %w", line, err)
		}
		log.Debug("applied event", "line", line, "type", ev.Type, "mode", eng.GetMode())
		n++
	}
	if err := sc.Err(); err != nil {
		return n, fmt.Errorf("read script: %w", err)
	}
	return n, nil
}
