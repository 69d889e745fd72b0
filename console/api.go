package console

import (
	lua "github.com/yuin/gopher-lua"
	luar "layeh.com/gopher-luar"

	"github.com/countzer0/gameplayutils"
)

// Conversions between Lua tables and the library's math types. Vectors travel as
// {x=, y=, z=} tables and Rotators as {pitch=, yaw=, roll=} tables; missing fields
// read as 0 so scripts can write gameplay.vec(100) style shorthand through the
// constructors.

func pushVector(ls *lua.LState, vec gameplayutils.Vector) *lua.LTable {
	t := ls.CreateTable(0, 3)
	t.RawSetString("x", lua.LNumber(vec.X))
	t.RawSetString("y", lua.LNumber(vec.Y))
	t.RawSetString("z", lua.LNumber(vec.Z))
	return t
}

func pushRotator(ls *lua.LState, rot gameplayutils.Rotator) *lua.LTable {
	t := ls.CreateTable(0, 3)
	t.RawSetString("pitch", lua.LNumber(rot.Pitch))
	t.RawSetString("yaw", lua.LNumber(rot.Yaw))
	t.RawSetString("roll", lua.LNumber(rot.Roll))
	return t
}

func tableNumber(ls *lua.LState, t *lua.LTable, fieldName string) float64 {
	lv := t.RawGetString(fieldName)
	if lv == lua.LNil {
		return 0
	}
	n, ok := lv.(lua.LNumber)
	if !ok {
		ls.RaiseError("invalid type for field %q (%s expected, got %s)", fieldName, lua.LTNumber.String(), lv.Type().String())
		return 0
	}
	return float64(n)
}

func vectorFromTable(ls *lua.LState, t *lua.LTable) gameplayutils.Vector {
	return gameplayutils.NewVector(
		tableNumber(ls, t, "x"),
		tableNumber(ls, t, "y"),
		tableNumber(ls, t, "z"),
	)
}

func checkVector(ls *lua.LState, n int) gameplayutils.Vector {
	return vectorFromTable(ls, ls.CheckTable(n))
}

func checkRotator(ls *lua.LState, n int) gameplayutils.Rotator {
	t := ls.CheckTable(n)
	return gameplayutils.NewRotator(
		tableNumber(ls, t, "pitch"),
		tableNumber(ls, t, "yaw"),
		tableNumber(ls, t, "roll"),
	)
}

// gameplay.vec(x, y, z) -> vector table
func (console *Console) luaAPIVec(ls *lua.LState) int {
	vec := gameplayutils.NewVector(
		float64(ls.OptNumber(1, 0)),
		float64(ls.OptNumber(2, 0)),
		float64(ls.OptNumber(3, 0)),
	)
	ls.Push(pushVector(ls, vec))
	return 1
}

// gameplay.rot(pitch, yaw, roll) -> rotator table
func (console *Console) luaAPIRot(ls *lua.LState) int {
	rot := gameplayutils.NewRotator(
		float64(ls.OptNumber(1, 0)),
		float64(ls.OptNumber(2, 0)),
		float64(ls.OptNumber(3, 0)),
	)
	ls.Push(pushRotator(ls, rot))
	return 1
}

// gameplay.slerp(current, target, deltaTime, interpSpeed) -> rotator table
func (console *Console) luaAPISlerp(ls *lua.LState) int {
	current := checkRotator(ls, 1)
	target := checkRotator(ls, 2)
	deltaTime := float64(ls.CheckNumber(3))
	interpSpeed := float64(ls.CheckNumber(4))

	ls.Push(pushRotator(ls, gameplayutils.SmoothRotatorInterp(current, target, deltaTime, interpSpeed)))
	return 1
}

// gameplay.jumpvelocity(start, target, gravityZ, jumpTime) -> vector table
func (console *Console) luaAPIJumpVelocity(ls *lua.LState) int {
	start := checkVector(ls, 1)
	target := checkVector(ls, 2)
	gravityZ := float64(ls.CheckNumber(3))
	jumpTime := float64(ls.CheckNumber(4))

	// The Go API leaves a zero jumpTime as an unchecked precondition; the script
	// boundary validates instead of handing NaNs back to the console user.
	if jumpTime <= 0 {
		ls.RaiseError("jumpTime must be greater than zero (got %v)", jumpTime)
		return 0
	}

	ls.Push(pushVector(ls, gameplayutils.CalculateJumpVelocity(start, target, gravityZ, jumpTime)))
	return 1
}

// gameplay.jumppos(start, velocity, gravityZ, t) -> vector table
func (console *Console) luaAPIJumpPos(ls *lua.LState) int {
	start := checkVector(ls, 1)
	velocity := checkVector(ls, 2)
	gravityZ := float64(ls.CheckNumber(3))
	t := float64(ls.CheckNumber(4))

	ls.Push(pushVector(ls, gameplayutils.JumpPositionAt(start, velocity, gravityZ, t)))
	return 1
}

// gameplay.distance(a, b) -> number
func (console *Console) luaAPIDistance(ls *lua.LState) int {
	a := checkVector(ls, 1)
	b := checkVector(ls, 2)
	ls.Push(lua.LNumber(a.Distance(b)))
	return 1
}

// gameplay.closest(source [, candidates]) -> winner, distance (or nil when nothing
// was found). With a candidates array of vector tables, the winning table itself is
// returned; without one, the search runs over the entities registered through
// SetEntities and the winner comes back as an entity object.
func (console *Console) luaAPIClosest(ls *lua.LState) int {

	source := checkVector(ls, 1)

	if ls.GetTop() >= 2 {

		candidates := ls.CheckTable(2)

		tables := []*lua.LTable{}
		entities := []gameplayutils.Entity{}

		candidates.ForEach(func(_, value lua.LValue) {
			if t, ok := value.(*lua.LTable); ok {
				tables = append(tables, t)
				entities = append(entities, luaEntity{position: vectorFromTable(ls, t)})
			} else {
				// Mirrors the nil-entry rule of the Go API.
				tables = append(tables, nil)
				entities = append(entities, nil)
			}
		})

		closest, distance, ok := gameplayutils.FindClosestEntity(source, entities)
		if !ok {
			ls.Push(lua.LNil)
			return 1
		}

		for i, entity := range entities {
			if entity == closest {
				ls.Push(tables[i])
				ls.Push(lua.LNumber(distance))
				return 2
			}
		}

		ls.Push(lua.LNil)
		return 1

	}

	closest, distance, ok := gameplayutils.FindClosestEntity(source, console.entities)
	if !ok {
		ls.Push(lua.LNil)
		return 1
	}

	ls.Push(luar.New(ls, closest))
	ls.Push(lua.LNumber(distance))
	return 2

}

// luaEntity adapts a vector parsed out of a Lua table to the Entity interface.
type luaEntity struct {
	position gameplayutils.Vector
}

func (entity luaEntity) WorldPosition() gameplayutils.Vector { return entity.position }
