//go:build js && wasm

package main

import (
	"log/slog"
	"os"
	"syscall/js"

	"github.com/edgedraw/edgedraw/internal/config"
	"github.com/edgedraw/edgedraw/internal/engine"
)

var eng *engine.Engine

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.SlogLevel()}))

	eng, err = engine.New(cfg, logger)
	if err != nil {
		logger.Error("failed to create engine", "error", err)
		os.Exit(1)
	}

	// Create the engine API object
	edgedrawEngine := js.Global().Get("Object").New()

	// --- Commands (frontend → engine) ---
	edgedrawEngine.Set("loadSampleDocument", js.FuncOf(loadSampleDocument))
	edgedrawEngine.Set("pointerDown", js.FuncOf(pointerDown))
	edgedrawEngine.Set("pointerMove", js.FuncOf(pointerMove))
	edgedrawEngine.Set("pointerUp", js.FuncOf(pointerUp))
	edgedrawEngine.Set("pointerLeave", js.FuncOf(pointerLeave))
	edgedrawEngine.Set("doubleClick", js.FuncOf(doubleClick))
	edgedrawEngine.Set("keyDown", js.FuncOf(keyDown))
	edgedrawEngine.Set("keyUp", js.FuncOf(keyUp))
	edgedrawEngine.Set("setTool", js.FuncOf(setTool))
	edgedrawEngine.Set("setText", js.FuncOf(setText))
	edgedrawEngine.Set("endWriting", js.FuncOf(endWriting))
	edgedrawEngine.Set("setZoom", js.FuncOf(setZoom))
	edgedrawEngine.Set("zoomIn", js.FuncOf(zoomIn))
	edgedrawEngine.Set("zoomOut", js.FuncOf(zoomOut))
	edgedrawEngine.Set("resetZoom", js.FuncOf(resetZoom))
	edgedrawEngine.Set("undo", js.FuncOf(undo))
	edgedrawEngine.Set("redo", js.FuncOf(redo))
	edgedrawEngine.Set("deleteSelected", js.FuncOf(deleteSelected))
	edgedrawEngine.Set("duplicateSelected", js.FuncOf(duplicateSelected))
	edgedrawEngine.Set("alignSelected", js.FuncOf(alignSelected))
	edgedrawEngine.Set("bringForward", js.FuncOf(bringForward))
	edgedrawEngine.Set("sendBackward", js.FuncOf(sendBackward))
	edgedrawEngine.Set("updateSelectedProperties", js.FuncOf(updateSelectedProperties))
	edgedrawEngine.Set("commitProperties", js.FuncOf(commitProperties))

	// --- Queries (frontend ← engine) ---
	edgedrawEngine.Set("render", js.FuncOf(render))
	edgedrawEngine.Set("hitTest", js.FuncOf(hitTest))
	edgedrawEngine.Set("getSelectionBounds", js.FuncOf(getSelectionBounds))
	edgedrawEngine.Set("getDocument", js.FuncOf(getDocument))
	edgedrawEngine.Set("getSelection", js.FuncOf(getSelection))
	edgedrawEngine.Set("getMode", js.FuncOf(getMode))
	edgedrawEngine.Set("getTool", js.FuncOf(getTool))
	edgedrawEngine.Set("getZoom", js.FuncOf(getZoom))

	// Register on global scope
	js.Global().Set("edgedrawEngine", edgedrawEngine)

	// Signal that WASM is ready
	js.Global().Set("edgedrawWasmReady", js.ValueOf(true))

	// Keep Go runtime alive
	select {}
}

func ok() interface{} {
	return js.ValueOf(map[string]interface{}{"ok": true})
}

func fail(err error) interface{} {
	return js.ValueOf(map[string]interface{}{"error": err.Error()})
}

// pointerEvent reads (x, y, button, shift, alt); trailing arguments are
// optional.
func pointerEvent(args []js.Value) engine.PointerEvent {
	var ev engine.PointerEvent
	if len(args) > 0 {
		ev.X = args[0].Float()
	}
	if len(args) > 1 {
		ev.Y = args[1].Float()
	}
	if len(args) > 2 && args[2].Type() == js.TypeNumber {
		ev.Button = engine.Button(args[2].Int())
	}
	if len(args) > 3 {
		ev.Shift = args[3].Truthy()
	}
	if len(args) > 4 {
		ev.Alt = args[4].Truthy()
	}
	return ev
}

// --- Command Handlers ---

func loadSampleDocument(this js.Value, args []js.Value) interface{} {
	eng.LoadSampleDocument()
	return ok()
}

func pointerDown(this js.Value, args []js.Value) interface{} {
	eng.PointerDown(pointerEvent(args))
	return nil
}

func pointerMove(this js.Value, args []js.Value) interface{} {
	eng.PointerMove(pointerEvent(args))
	return nil
}

func pointerUp(this js.Value, args []js.Value) interface{} {
	eng.PointerUp()
	return nil
}

func pointerLeave(this js.Value, args []js.Value) interface{} {
	eng.PointerLeave()
	return nil
}

func doubleClick(this js.Value, args []js.Value) interface{} {
	eng.DoubleClick(pointerEvent(args))
	return nil
}

func keyDown(this js.Value, args []js.Value) interface{} {
	if len(args) < 1 {
		return nil
	}
	eng.KeyDown(engine.Key(args[0].String()))
	return nil
}

func keyUp(this js.Value, args []js.Value) interface{} {
	if len(args) < 1 {
		return nil
	}
	eng.KeyUp(engine.Key(args[0].String()))
	return nil
}

func setTool(this js.Value, args []js.Value) interface{} {
	if len(args) < 1 {
		return js.ValueOf(map[string]interface{}{"error": "missing tool"})
	}
	if err := eng.SetTool(args[0].String()); err != nil {
		return fail(err)
	}
	return ok()
}

func setText(this js.Value, args []js.Value) interface{} {
	if len(args) < 1 {
		return nil
	}
	eng.SetText(args[0].String())
	return nil
}

func endWriting(this js.Value, args []js.Value) interface{} {
	eng.EndWriting()
	return nil
}

func setZoom(this js.Value, args []js.Value) interface{} {
	if len(args) < 1 {
		return nil
	}
	eng.SetZoom(args[0].Float())
	return nil
}

func zoomIn(this js.Value, args []js.Value) interface{} {
	eng.ZoomIn()
	return nil
}

func zoomOut(this js.Value, args []js.Value) interface{} {
	eng.ZoomOut()
	return nil
}

func resetZoom(this js.Value, args []js.Value) interface{} {
	eng.ResetZoom()
	return nil
}

func undo(this js.Value, args []js.Value) interface{} {
	eng.Undo()
	return nil
}

func redo(this js.Value, args []js.Value) interface{} {
	eng.Redo()
	return nil
}

func deleteSelected(this js.Value, args []js.Value) interface{} {
	eng.DeleteSelected()
	return nil
}

func duplicateSelected(this js.Value, args []js.Value) interface{} {
	eng.DuplicateSelected()
	return nil
}

func alignSelected(this js.Value, args []js.Value) interface{} {
	if len(args) < 1 {
		return nil
	}
	eng.AlignSelected(args[0].String())
	return nil
}

func bringForward(this js.Value, args []js.Value) interface{} {
	if len(args) < 1 {
		return nil
	}
	eng.BringForward(args[0].String())
	return nil
}

func sendBackward(this js.Value, args []js.Value) interface{} {
	if len(args) < 1 {
		return nil
	}
	eng.SendBackward(args[0].String())
	return nil
}

func updateSelectedProperties(this js.Value, args []js.Value) interface{} {
	if len(args) < 1 {
		return js.ValueOf(map[string]interface{}{"error": "missing properties JSON"})
	}
	if err := eng.UpdateSelectedProperties(args[0].String()); err != nil {
		return fail(err)
	}
	return ok()
}

func commitProperties(this js.Value, args []js.Value) interface{} {
	eng.CommitProperties()
	return nil
}

// --- Query Handlers ---

func render(this js.Value, args []js.Value) interface{} {
	return js.ValueOf(eng.Render())
}

func hitTest(this js.Value, args []js.Value) interface{} {
	if len(args) < 2 {
		return js.ValueOf("")
	}
	x := args[0].Float()
	y := args[1].Float()
	return js.ValueOf(eng.HitTest(x, y))
}

func getSelectionBounds(this js.Value, args []js.Value) interface{} {
	return js.ValueOf(eng.GetSelectionBounds())
}

func getDocument(this js.Value, args []js.Value) interface{} {
	return js.ValueOf(eng.GetDocument())
}

func getSelection(this js.Value, args []js.Value) interface{} {
	return js.ValueOf(eng.GetSelection())
}

func getMode(this js.Value, args []js.Value) interface{} {
	return js.ValueOf(eng.GetMode())
}

func getTool(this js.Value, args []js.Value) interface{} {
	return js.ValueOf(eng.GetTool())
}

func getZoom(this js.Value, args []js.Value) interface{} {
	return js.ValueOf(eng.GetZoom())
}
