package loader

import (
	"bytes"
	"fmt"
	"io/fs"
	"os"
	"path"
	"strings"

	lua "github.com/yuin/gopher-lua"
	"go.uber.org/zap"

	"github.com/nathoo/legend/content"
	"github.com/nathoo/legend/engine/state"
)

// collector accumulates Lua definitions during file execution.
type collector struct {
	game    *lua.LTable
	enemies []rawEnemy
	pickups []*lua.LTable
	regions []rawRegion
	lore    []*lua.LTable
}

// Load reads all .lua files from dir, compiles them into scenario
// definitions, validates them, and returns the immutable Defs. The Lua VM
// is discarded after loading.
func Load(dir string) (*state.Defs, error) {
	return LoadFS(os.DirFS(dir), ".")
}

// LoadFS is Load over any file system. Validation warnings are logged.
func LoadFS(fsys fs.FS, dir string) (*state.Defs, error) {
	defs, warnings, err := Check(fsys, dir)
	for _, w := range warnings {
		zap.L().Warn("scenario warning", zap.String("dir", dir), zap.String("warning", w))
	}
	return defs, err
}

// Default loads the built-in Hyrule scenario.
func Default() (*state.Defs, error) {
	return LoadFS(content.Hyrule, content.HyruleDir)
}

// Check loads a scenario and returns its validation warnings alongside the
// definitions.
func Check(fsys fs.FS, dir string) (*state.Defs, []string, error) {
	// Discover .lua files.
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil, nil, fmt.Errorf("reading scenario directory %s: %w", dir, err)
	}

	var luaFiles []string
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), ".lua") {
			luaFiles = append(luaFiles, e.Name())
		}
	}
	if len(luaFiles) == 0 {
		return nil, nil, fmt.Errorf("no .lua files found in %s", dir)
	}

	// Sort: game.lua first, rest alphabetical.
	luaFiles = sortedLuaFiles(luaFiles)

	// Create sandboxed VM.
	L := lua.NewState(lua.Options{SkipOpenLibs: true})
	defer L.Close()

	openSafeLibs(L)
	sandbox(L)

	coll := &collector{}
	registerAPI(L, coll)

	// Execute each file.
	for _, f := range luaFiles {
		src, err := fs.ReadFile(fsys, path.Join(dir, f))
		if err != nil {
			return nil, nil, fmt.Errorf("reading %s: %w", f, err)
		}
		fn, err := L.Load(bytes.NewReader(src), f)
		if err != nil {
			return nil, nil, fmt.Errorf("executing %s: %w", f, err)
		}
		L.Push(fn)
		if err := L.PCall(0, lua.MultRet, nil); err != nil {
			return nil, nil, fmt.Errorf("executing %s: %w", f, err)
		}
	}

	// Compile.
	defs, problems, err := compile(coll)
	if err != nil {
		return nil, nil, fmt.Errorf("compiling scenario: %w", err)
	}

	// Validate.
	warnings, err := validate(defs, problems)
	if err != nil {
		return nil, warnings, err
	}
	return defs, warnings, nil
}

// openSafeLibs opens only the safe subset of Lua standard libraries.
func openSafeLibs(L *lua.LState) {
	lua.OpenBase(L)
	lua.OpenTable(L)
	lua.OpenString(L)
	lua.OpenMath(L)
}

// sandbox removes dangerous globals and functions.
func sandbox(L *lua.LState) {
	dangerous := []string{
		"dofile", "loadfile", "load", "loadstring",
		"rawset", "rawget", "rawequal",
		"collectgarbage",
	}
	for _, name := range dangerous {
		L.SetGlobal(name, lua.LNil)
	}

	// Remove math.randomseed to preserve determinism.
	if mathTbl := L.GetGlobal("math"); mathTbl != lua.LNil {
		if tbl, ok := mathTbl.(*lua.LTable); ok {
			tbl.RawSetString("randomseed", lua.LNil)
		}
	}
}
