package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"whitted-tracer/internal/imageout"
	"whitted-tracer/internal/texture"
)

type texFile struct {
	srcPath string
	dstPath string
}

func dumpTexture(f texFile, format imageout.Format) error {
	img, err := texture.Load(f.srcPath)
	if err != nil {
		return err
	}
	if err := imageout.Write(f.dstPath, img, format); err != nil {
		return err
	}
	b := img.Bounds()
	fmt.Printf("OK  %s -> %s  (%dx%d)\n", f.srcPath, f.dstPath, b.Dx(), b.Dy())
	return nil
}

func main() {
	dir := flag.String("dir", ".", "Texture directory to index")
	out := flag.String("out", "texdump", "Output directory")
	formatName := flag.String("format", "png", "Output format: png, webp, bmp, ppm")
	flag.Parse()

	format, err := imageout.ParseFormat(*formatName)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Named textures resolve through the index; no names dumps the whole index.
	idx := texture.BuildIndex(*dir)
	fmt.Printf("Textures: %d indexed under %s\n", idx.Len(), *dir)

	names := flag.Args()
	var files []texFile
	if len(names) == 0 {
		filepath.WalkDir(*dir, func(path string, d os.DirEntry, err error) error {
			if err == nil && !d.IsDir() && texture.Supported(path) {
				names = append(names, path)
			}
			return nil
		})
	}
	for _, name := range names {
		src, ok := idx.ResolvePath(name)
		if !ok {
			src = name
		}
		stem := strings.TrimSuffix(filepath.Base(src), filepath.Ext(src))
		files = append(files, texFile{srcPath: src, dstPath: filepath.Join(*out, stem+"_dump"+format.Ext())})
	}

	errors := 0
	for _, f := range files {
		if err := dumpTexture(f, format); err != nil {
			fmt.Fprintf(os.Stderr, "ERR %v\n", err)
			errors++
		}
	}
	if errors > 0 {
		fmt.Printf("\nDone with %d error(s).\n", errors)
		os.Exit(1)
	}
	fmt.Printf("\nDone. %d texture(s) written.\n", len(files))
}
