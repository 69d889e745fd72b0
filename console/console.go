// Package console embeds a Lua interpreter and exposes the gameplayutils math
// operations to it, giving tools and tests a scriptable front end over the library:
// commands arrive as strings, get compiled, and run against the registered
// `gameplay` API. The package is the moral equivalent of an editor scripting
// console - a host pushes command strings in and reads logs back out.
package console

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/PeerDB-io/gluajson"
	lua "github.com/yuin/gopher-lua"
	luar "layeh.com/gopher-luar"

	"github.com/countzer0/gameplayutils"
)

// Options configures a Console.
type Options struct {
	// ScriptPaths are directories searched for startup scripts and RunFile targets.
	ScriptPaths []string
	// Logger receives the output of Lua's print/warn and the console's own
	// diagnostics. Defaults to slog.Default().
	Logger *slog.Logger
}

// A Console owns an embedded Lua interpreter with the gameplay API registered on
// it. A Console is not safe for concurrent use; every call is synchronous and runs
// to completion on the calling goroutine.
type Console struct {
	ls          *lua.LState
	logger      *slog.Logger
	scriptPaths []string
	entities    []gameplayutils.Entity
}

// New creates a Console and initializes its interpreter: the `gameplay` global
// table, print/warn redirected into the logger, and the json module preloaded.
func New(opts Options) *Console {

	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	console := &Console{
		logger:      logger,
		scriptPaths: append([]string{}, opts.ScriptPaths...),
	}

	ls := lua.NewState(lua.Options{
		IncludeGoStackTrace: true,
		MinimizeStackMemory: true,
	})
	console.ls = ls

	ls.SetGlobal("gameplay", ls.SetFuncs(ls.NewTable(), map[string]lua.LGFunction{
		"vec":          console.luaAPIVec,
		"rot":          console.luaAPIRot,
		"slerp":        console.luaAPISlerp,
		"jumpvelocity": console.luaAPIJumpVelocity,
		"jumppos":      console.luaAPIJumpPos,
		"closest":      console.luaAPIClosest,
		"distance":     console.luaAPIDistance,
	}))

	ls.SetGlobal("print", ls.NewFunction(console.luaAPIGlobalPrint))
	ls.SetGlobal("warn", ls.NewFunction(console.luaAPIGlobalWarn))

	ls.PreloadModule("json", gluajson.Loader)

	return console

}

// Close releases the interpreter. The Console must not be used afterwards.
func (console *Console) Close() {
	console.ls.Close()
}

// SetEntities registers the entities the console's search commands operate on when a
// script doesn't pass its own candidate list. The slice is also published to Lua as
// the `entities` global.
func (console *Console) SetEntities(entities []gameplayutils.Entity) {
	console.entities = entities
	console.ls.SetGlobal("entities", luar.New(console.ls, entities))
}

// ExecuteCommand compiles and runs a command string against the interpreter. This is
// the console's core capability - a host forwards a string, the interpreter executes
// it, and the returned error reports compile or runtime failure.
func (console *Console) ExecuteCommand(src string) error {

	fn, err := console.ls.Load(strings.NewReader(src), "command")
	if err != nil {
		return fmt.Errorf("compiling command: %w", err)
	}

	console.ls.Push(fn)
	if err := console.ls.PCall(0, lua.MultRet, nil); err != nil {
		return fmt.Errorf("running command: %w", err)
	}

	return nil

}

// RunFile executes the Lua script at the path given. A bare (non-absolute) path is
// also tried against each configured script path, first hit wins.
func (console *Console) RunFile(path string) error {

	resolved, err := console.resolveScript(path)
	if err != nil {
		return err
	}

	if err := console.ls.DoFile(resolved); err != nil {
		return fmt.Errorf("running script %s: %w", resolved, err)
	}

	return nil

}

// AddScriptPath appends a directory to the console's script search paths.
func (console *Console) AddScriptPath(dir string) {
	console.scriptPaths = append(console.scriptPaths, dir)
}

// RunStartupScripts runs every *.lua file found directly inside the configured
// script paths, per directory in lexical filename order. Missing directories are
// skipped silently so a default path can be configured without existing. The first
// script error stops the run and is returned.
func (console *Console) RunStartupScripts() error {

	for _, dir := range console.scriptPaths {

		entries, err := os.ReadDir(dir)
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return fmt.Errorf("reading script path %s: %w", dir, err)
		}

		names := []string{}
		for _, entry := range entries {
			if !entry.IsDir() && strings.HasSuffix(entry.Name(), ".lua") {
				names = append(names, entry.Name())
			}
		}
		sort.Strings(names)

		for _, name := range names {
			scriptPath := filepath.Join(dir, name)
			console.logger.Debug("running startup script", "path", scriptPath)
			if err := console.ls.DoFile(scriptPath); err != nil {
				return fmt.Errorf("startup script %s: %w", scriptPath, err)
			}
		}

	}

	return nil

}

func (console *Console) resolveScript(path string) (string, error) {

	if _, err := os.Stat(path); err == nil {
		return path, nil
	}

	if !filepath.IsAbs(path) {
		for _, dir := range console.scriptPaths {
			candidate := filepath.Join(dir, path)
			if _, err := os.Stat(candidate); err == nil {
				return candidate, nil
			}
		}
	}

	return "", fmt.Errorf("script %s not found in any script path", path)

}

func (console *Console) luaAPIGlobalPrint(ls *lua.LState) int {
	strs := []string{}
	for i := 1; i <= ls.GetTop(); i++ {
		strs = append(strs, ls.ToString(i))
	}

	console.logger.Info(fmt.Sprintf("[Lua] %s", strings.Join(strs, "\t")))
	return 0
}

func (console *Console) luaAPIGlobalWarn(ls *lua.LState) int {
	strs := []string{}
	for i := 1; i <= ls.GetTop(); i++ {
		strs = append(strs, ls.ToString(i))
	}

	console.logger.Warn(fmt.Sprintf("[Lua] %s", strings.Join(strs, "\t")))
	return 0
}
