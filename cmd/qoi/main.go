// Command qoi converts between QOI and PNG images by filename suffix.
//
// Usage:
//
//	qoi <infile> <outfile>
//
// Each path must end in ".png" or ".qoi"; the tool dispatches on that
// suffix in both directions.
package main

import (
	"fmt"
	"image"
	"os"
	"strings"

	"github.com/go-qoi/qoi"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "qoi: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("usage: qoi <infile> <outfile>")
	}
	return convert(args[0], args[1])
}

func convert(infile, outfile string) error {
	in, err := decodeAny(infile)
	if err != nil {
		return fmt.Errorf("reading %s: %w", infile, err)
	}
	return encodeAny(outfile, in)
}

func decodeAny(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	switch suffix(path) {
	case "png":
		return qoi.DecodePNG(f)
	case "qoi":
		return qoi.Decode(f)
	default:
		return nil, fmt.Errorf("unsupported input suffix %q", path)
	}
}

func encodeAny(path string, m image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	switch suffix(path) {
	case "png":
		return qoi.EncodePNG(f, m)
	case "qoi":
		return qoi.Encode(f, m)
	default:
		return fmt.Errorf("unsupported output suffix %q", path)
	}
}

func suffix(path string) string {
	i := strings.LastIndexByte(path, '.')
	if i < 0 {
		return ""
	}
	return strings.ToLower(path[i+1:])
}
