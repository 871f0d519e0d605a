// Command proctex renders procedural texture definitions to PNG files.
//
// Usage:
//
//	proctex render [flags] id...
//	proctex info [flags] id...
//	proctex sample [flags] file
//
// Definitions are read from <dir>/<id>.ptx. Defaults come from PROCTEX_*
// environment variables and can be overridden with flags.
package main

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"

	"golang.org/x/sync/errgroup"

	"github.com/gogpu/proctex"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "proctex:", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	if len(args) == 0 {
		usage()
		return errors.New("missing command")
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	fs := flag.NewFlagSet(args[0], flag.ContinueOnError)
	cfg.bind(fs)
	if err := fs.Parse(args[1:]); err != nil {
		return err
	}
	if err := cfg.validate(); err != nil {
		return err
	}

	proctex.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.LogLevel})))

	switch args[0] {
	case "render":
		return renderCmd(cfg, fs.Args())
	case "info":
		return infoCmd(cfg, fs.Args())
	case "sample":
		return sampleCmd(fs.Args())
	default:
		usage()
		return fmt.Errorf("unknown command %q", args[0])
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: proctex render|info|sample [flags] args...")
}

// dirSource loads <dir>/<id>.ptx.
type dirSource string

func (d dirSource) Definition(id int) ([]byte, error) {
	return os.ReadFile(filepath.Join(string(d), strconv.Itoa(id)+".ptx"))
}

func parseIDs(args []string) ([]int, error) {
	if len(args) == 0 {
		return nil, errors.New("no texture ids given")
	}
	ids := make([]int, len(args))
	for i, a := range args {
		id, err := strconv.Atoi(a)
		if err != nil || id < 0 {
			return nil, fmt.Errorf("invalid texture id %q", a)
		}
		ids[i] = id
	}
	return ids, nil
}

func renderCmd(cfg config, args []string) error {
	ids, err := parseIDs(args)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(cfg.Out, 0o755); err != nil {
		return err
	}

	opts := []proctex.LibraryOption{proctex.WithWorkers(cfg.Workers)}
	if cfg.Small {
		opts = append(opts, proctex.WithSmallTextures())
	}
	lib := proctex.NewLibrary(dirSource(cfg.Dir), opts...)
	defer lib.Close()

	req := proctex.Request{
		Width:      cfg.Width,
		Height:     cfg.Height,
		Brightness: cfg.Brightness,
		Format:     proctex.FormatRGB,
	}
	if cfg.Alpha {
		req.Format = proctex.FormatARGB
	}

	defer func() {
		st := lib.Stats()
		proctex.Logger().Debug("library caches",
			"definitions", st.Definitions.Len,
			"definition_misses", st.Definitions.Misses,
			"textures", st.Textures.Len,
			"texture_hits", st.Textures.Hits)
	}()

	results := lib.RenderAll(ids, req)
	for _, r := range results {
		if r.Err != nil {
			return fmt.Errorf("texture %d: %w", r.ID, r.Err)
		}
	}

	var g errgroup.Group
	g.SetLimit(cfg.Workers)
	for _, r := range results {
		g.Go(func() error {
			path := filepath.Join(cfg.Out, strconv.Itoa(r.ID)+".png")
			if err := r.Image.SavePNG(path); err != nil {
				return fmt.Errorf("texture %d: %w", r.ID, err)
			}
			proctex.Logger().Info("wrote texture", "id", r.ID, "path", path, "transparent", r.Image.Transparent)
			return nil
		})
	}
	return g.Wait()
}

func infoCmd(cfg config, args []string) error {
	ids, err := parseIDs(args)
	if err != nil {
		return err
	}
	lib := proctex.NewLibrary(dirSource(cfg.Dir), proctex.WithWorkers(1))
	defer lib.Close()

	for _, id := range ids {
		def, err := lib.Definition(id)
		if err != nil {
			return err
		}
		fmt.Printf("%d: %d operations\n", id, def.Len())
		for i, k := range def.Kinds() {
			fmt.Printf("  %3d %s\n", i, k)
		}
		if ids := def.SpriteIDs(); len(ids) > 0 {
			fmt.Printf("  sprites %v\n", ids)
		}
		if ids := def.TextureIDs(); len(ids) > 0 {
			fmt.Printf("  textures %v\n", ids)
		}
	}
	return nil
}

func sampleCmd(args []string) error {
	if len(args) != 1 {
		return errors.New("sample takes exactly one output file")
	}
	data, err := sampleGraph()
	if err != nil {
		return err
	}
	return os.WriteFile(args[0], data, 0o644) //nolint:gosec // definitions are not secret
}
