// Command zfxc compiles a ZFX source file to bytecode. It wires the
// driver together with the cache, artifact, and disasm packages so a
// single binary exercises the whole ambient stack, the way the
// teacher's cmd/convert-syntax wires a single conversion concern
// behind a small flag-parsed main.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/sonicyouth98/poczfx/artifact"
	"github.com/sonicyouth98/poczfx/cache"
	"github.com/sonicyouth98/poczfx/compiler"
	"github.com/sonicyouth98/poczfx/config"
	"github.com/sonicyouth98/poczfx/disasm"
)

func main() {
	srcPath := flag.String("src", "", "path to a .zfx source file (reads stdin if empty)")
	disassemble := flag.Bool("disasm", false, "print a human-readable instruction listing instead of encoded bytecode")
	cacheFlag := flag.Bool("cache", true, "consult and populate the content-addressed compile cache")
	configDir := flag.String("config-dir", ".", "directory to search for poczfx.toml")
	flag.Parse()

	src, err := readSource(*srcPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "zfxc: %v\n", err)
		os.Exit(1)
	}

	cfg, err := config.FindAndLoad(*configDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "zfxc: loading config: %v\n", err)
		os.Exit(1)
	}
	if cfg == nil {
		defaultCfg := config.Default()
		cfg = &defaultCfg
	}

	res, err := compileWithCache(src, cfg, *cacheFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "zfxc: %v\n", err)
		os.Exit(1)
	}

	if *disassemble {
		fmt.Print(disasm.Disassemble(res.Codes, res.Syms))
		return
	}

	if err := json.NewEncoder(os.Stdout).Encode(artifact.FromResult(res)); err != nil {
		fmt.Fprintf(os.Stderr, "zfxc: encoding result: %v\n", err)
		os.Exit(1)
	}
}

func readSource(path string) (string, error) {
	if path == "" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("reading stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", path, err)
	}
	return string(data), nil
}

func compileWithCache(src string, cfg *config.Config, useCache bool) (*compiler.Result, error) {
	if !useCache || !cfg.Cache.Enabled {
		return compiler.Compile(src)
	}

	c, err := cache.Open(cfg.Cache.Path)
	if err != nil {
		return nil, fmt.Errorf("opening cache: %w", err)
	}
	defer c.Close()

	return c.CompileCached(src)
}
