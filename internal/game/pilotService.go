package game

import (
	"errors"
	"fmt"

	lua "github.com/yuin/gopher-lua"
)

// Pilot picks a heading for the snake each tick. The built-in
// pathfinding autopilot lives inside Snake.Advance; a Pilot is the
// pluggable alternative for user-supplied steering logic.
type Pilot interface {
	// NextHeading returns the heading to apply this tick. The second
	// return is false when the pilot has no opinion and the current
	// heading should be kept.
	NextHeading(snap Snapshot) (Heading, bool)
}

// LuaPilot steers the snake with a user-supplied Lua script. The script
// must define
//
//	function nextHeading(state)
//	    return {dx=1, dy=0}
//	end
//
// where state carries head, food and grid tables. The returned
// displacement is mapped onto a cardinal heading; diagonal or zero
// answers are ignored, as is an answer that would reverse the snake.
type LuaPilot struct {
	script string
}

func NewLuaPilot(script string) (*LuaPilot, error) {
	luaState := lua.NewState()
	defer luaState.Close()

	if err := luaState.DoString(script); err != nil {
		return nil, fmt.Errorf("could not parse lua pilot script: %w", err)
	}
	if luaState.GetGlobal("nextHeading").Type() != lua.LTFunction {
		return nil, errors.New("lua pilot script must define a nextHeading function")
	}
	return &LuaPilot{script: script}, nil
}

func (p *LuaPilot) NextHeading(snap Snapshot) (Heading, bool) {
	luaState := lua.NewState()
	defer luaState.Close()

	if err := luaState.DoString(p.script); err != nil {
		return 0, false
	}

	luaState.Push(luaState.GetGlobal("nextHeading"))
	luaState.Push(snapshotToLuaTable(luaState, snap))
	if err := luaState.PCall(1, 1, nil); err != nil {
		return 0, false
	}

	luaTable, ok := luaState.Get(-1).(*lua.LTable)
	if !ok {
		return 0, false
	}
	dx, dy := luaTableToDelta(luaTable)
	luaState.Pop(1)

	return HeadingFor(dx, dy)
}

func snapshotToLuaTable(luaState *lua.LState, snap Snapshot) *lua.LTable {
	cellToTable := func(c Cell) *lua.LTable {
		tbl := luaState.NewTable()
		tbl.RawSetString("x", lua.LNumber(c.X))
		tbl.RawSetString("y", lua.LNumber(c.Y))
		return tbl
	}

	gridTable := luaState.NewTable()
	gridTable.RawSetString("width", lua.LNumber(snap.Grid.Width))
	gridTable.RawSetString("height", lua.LNumber(snap.Grid.Height))
	gridTable.RawSetString("cellSize", lua.LNumber(snap.Grid.CellSize))

	bodyTable := luaState.NewTable()
	for _, segment := range snap.Body {
		bodyTable.Append(cellToTable(segment))
	}

	stateTable := luaState.NewTable()
	stateTable.RawSetString("head", cellToTable(snap.Head))
	stateTable.RawSetString("food", cellToTable(snap.Food))
	stateTable.RawSetString("grid", gridTable)
	stateTable.RawSetString("body", bodyTable)
	stateTable.RawSetString("heading", lua.LString(snap.Heading.String()))
	return stateTable
}

func luaTableToDelta(luaTbl *lua.LTable) (dx, dy int) {
	luaTbl.ForEach(func(key, value lua.LValue) {
		if key.Type() != lua.LTString {
			return
		}
		switch lua.LVAsString(key) {
		case "dx":
			dx = int(lua.LVAsNumber(value))
		case "dy":
			dy = int(lua.LVAsNumber(value))
		}
	})
	return dx, dy
}
