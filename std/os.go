/*
File    : suji/std/os.go
Author  : The Suji Authors
*/
package std

import (
	"os"
	"runtime"
	"time"

	"github.com/suji-lang/suji/values"
)

// processStart anchors os:uptime_ms.
var processStart = time.Now()

func init() {
	registerModule("os", func() *values.Module {
		module := values.NewModule("os")
		module.Set("name", builtin("os:name", 0, 0, osName))
		module.Set("hostname", builtin("os:hostname", 0, 0, osHostname))
		module.Set("uptime_ms", builtin("os:uptime_ms", 0, 0, osUptime))
		module.Set("tmp_dir", builtin("os:tmp_dir", 0, 0, osTmpDir))
		module.Set("home_dir", builtin("os:home_dir", 0, 0, osHomeDir))
		module.Set("work_dir", builtin("os:work_dir", 0, 0, osWorkDir))
		module.Set("exit", builtin("os:exit", 0, 1, osExit))
		module.Set("pid", builtin("os:pid", 0, 0, osPid))
		module.Set("ppid", builtin("os:ppid", 0, 0, osPpid))
		module.Set("uid", builtin("os:uid", 0, 0, osUid))
		module.Set("gid", builtin("os:gid", 0, 0, osGid))
		module.Set("stat", builtin("os:stat", 1, 1, osStat))
		module.Set("rm", builtin("os:rm", 1, 1, osRm))
		module.Set("mkdir", builtin("os:mkdir", 1, 1, osMkdir))
		module.Set("rmdir", builtin("os:rmdir", 1, 1, osRmdir))
		return module
	})
}

func osName(rt values.Runtime, args []values.SujiValue) values.SujiValue {
	return values.NewString(runtime.GOOS)
}

func osHostname(rt values.Runtime, args []values.SujiValue) values.SujiValue {
	name, err := os.Hostname()
	if err != nil {
		return invalidOp("os:hostname: %v", err)
	}
	return values.NewString(name)
}

func osUptime(rt values.Runtime, args []values.SujiValue) values.SujiValue {
	return values.NumberFromInt(time.Since(processStart).Milliseconds())
}

func osTmpDir(rt values.Runtime, args []values.SujiValue) values.SujiValue {
	return values.NewString(os.TempDir())
}

func osHomeDir(rt values.Runtime, args []values.SujiValue) values.SujiValue {
	home, err := os.UserHomeDir()
	if err != nil {
		return invalidOp("os:home_dir: %v", err)
	}
	return values.NewString(home)
}

func osWorkDir(rt values.Runtime, args []values.SujiValue) values.SujiValue {
	wd, err := os.Getwd()
	if err != nil {
		return invalidOp("os:work_dir: %v", err)
	}
	return values.NewString(wd)
}

// osExit terminates the process with the given status (default 0).
func osExit(rt values.Runtime, args []values.SujiValue) values.SujiValue {
	code := 0
	if len(args) == 1 {
		n, errV := argNumber(args, 0, "os:exit")
		if errV != nil {
			return errV
		}
		code = int(n.Int())
	}
	os.Exit(code)
	return values.NIL
}

func osPid(rt values.Runtime, args []values.SujiValue) values.SujiValue {
	return values.NumberFromInt(int64(os.Getpid()))
}

func osPpid(rt values.Runtime, args []values.SujiValue) values.SujiValue {
	return values.NumberFromInt(int64(os.Getppid()))
}

func osUid(rt values.Runtime, args []values.SujiValue) values.SujiValue {
	return values.NumberFromInt(int64(os.Getuid()))
}

func osGid(rt values.Runtime, args []values.SujiValue) values.SujiValue {
	return values.NumberFromInt(int64(os.Getgid()))
}

// osStat returns a map with size, mode, is_dir and modified_ms, or nil
// when the path does not exist.
func osStat(rt values.Runtime, args []values.SujiValue) values.SujiValue {
	path, errV := argString(args, 0, "os:stat")
	if errV != nil {
		return errV
	}
	info, err := os.Stat(path)
	if err != nil {
		return values.NIL
	}
	m := values.NewMap()
	m.Set(values.NewString("size"), values.NumberFromInt(info.Size()))
	m.Set(values.NewString("mode"), values.NewString(info.Mode().String()))
	m.Set(values.NewString("is_dir"), values.BoolOf(info.IsDir()))
	m.Set(values.NewString("modified_ms"), values.NumberFromInt(info.ModTime().UnixMilli()))
	return m
}

func osRm(rt values.Runtime, args []values.SujiValue) values.SujiValue {
	path, errV := argString(args, 0, "os:rm")
	if errV != nil {
		return errV
	}
	if err := os.Remove(path); err != nil {
		return invalidOp("os:rm %s: %v", path, err)
	}
	return values.NIL
}

func osMkdir(rt values.Runtime, args []values.SujiValue) values.SujiValue {
	path, errV := argString(args, 0, "os:mkdir")
	if errV != nil {
		return errV
	}
	if err := os.MkdirAll(path, 0o755); err != nil {
		return invalidOp("os:mkdir %s: %v", path, err)
	}
	return values.NIL
}

func osRmdir(rt values.Runtime, args []values.SujiValue) values.SujiValue {
	path, errV := argString(args, 0, "os:rmdir")
	if errV != nil {
		return errV
	}
	if err := os.Remove(path); err != nil {
		return invalidOp("os:rmdir %s: %v", path, err)
	}
	return values.NIL
}
