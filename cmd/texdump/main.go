package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"uvbake/internal/texture"
)

// texdump converts source textures (TGA/PNG/JPEG or raw .tex GPU
// payloads) to PNG for inspection.
func main() {
	outDir := flag.String("output", ".", "Directory for converted PNGs")
	flag.Parse()

	if flag.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "usage: texdump [-output dir] texture...")
		os.Exit(1)
	}

	errors := 0
	for _, src := range flag.Args() {
		img, err := texture.Load(src)
		if err != nil {
			fmt.Fprintf(os.Stderr, "ERR %v\n", err)
			errors++
			continue
		}

		base := filepath.Base(src)
		stem := strings.TrimSuffix(base, filepath.Ext(base))
		dst := filepath.Join(*outDir, stem+"_dump.png")
		if err := texture.Save(dst, img); err != nil {
			fmt.Fprintf(os.Stderr, "ERR %v\n", err)
			errors++
			continue
		}
		fmt.Printf("OK  %s -> %s  (%dx%d)\n", src, dst, img.W, img.H)
	}

	if errors > 0 {
		fmt.Printf("\nDone with %d error(s).\n", errors)
		os.Exit(1)
	}
	fmt.Println("\nDone. All textures converted.")
}
