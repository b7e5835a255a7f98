// Command arcpix decodes legacy archive image formats into PNG or BMP.
package main

import (
	"flag"
	"fmt"
	"image/png"
	"os"
	"strings"

	"golang.org/x/image/bmp"

	arcpix "github.com/arcunpack/go-arcpix"
)

var (
	inputFile  = flag.String("i", "", "input file path (required)")
	outputFile = flag.String("o", "", "output file path (default: input with new extension)")
	forceTag   = flag.String("t", "", "decoder tag (skip auto-detection)")
	outFormat  = flag.String("f", "png", "output image format: png or bmp")
	listTags   = flag.Bool("list", false, "list decoder tags and exit")
	version    = flag.Bool("version", false, "print version and exit")
)

const appVersion = "0.1.0"

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s -i <file> [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Decodes legacy archive image formats into PNG or BMP.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s -i event01.pgd\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -i title.tga -t truevision/tga -f bmp\n", os.Args[0])
	}
	flag.Parse()

	if *version {
		fmt.Printf("arcpix version %s\n", appVersion)
		os.Exit(0)
	}

	if *listTags {
		fmt.Println("Decoder tags:")
		for _, tag := range arcpix.Tags() {
			fmt.Printf("  %s\n", tag)
		}
		os.Exit(0)
	}

	if *inputFile == "" {
		fmt.Fprintf(os.Stderr, "Error: input file required (-i)\n")
		flag.Usage()
		os.Exit(1)
	}

	var tag string
	var result *arcpix.Result
	var err error

	if *forceTag != "" {
		data, readErr := os.ReadFile(*inputFile)
		if readErr != nil {
			fmt.Fprintf(os.Stderr, "Error reading input: %v\n", readErr)
			os.Exit(1)
		}
		tag = *forceTag
		result, err = arcpix.DecodeTagged(tag, data)
	} else {
		tag, result, err = arcpix.DecodeFile(*inputFile)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error decoding: %v\n", err)
		os.Exit(1)
	}

	if result.Image == nil {
		out := outputPath(*inputFile, "bin")
		if err := os.WriteFile(out, result.Raw, 0o644); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing output: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Decoded %s (%s) -> %s (%d raw bytes)\n", *inputFile, tag, out, len(result.Raw))
		return
	}

	out := outputPath(*inputFile, *outFormat)
	f, err := os.Create(out)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating output: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = f.Close() }()

	img := arcpix.ToImage(result.Image)
	switch *outFormat {
	case "png":
		err = png.Encode(f, img)
	case "bmp":
		err = bmp.Encode(f, img)
	default:
		fmt.Fprintf(os.Stderr, "Error: unknown output format %q\n", *outFormat)
		os.Exit(1)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error encoding %s: %v\n", *outFormat, err)
		os.Exit(1)
	}
	fmt.Printf("Decoded %s (%s) -> %s (%dx%d)\n",
		*inputFile, tag, out, result.Image.Width(), result.Image.Height())
}

// outputPath derives the output file name from the -o flag or the input
// path with its extension replaced.
func outputPath(input, ext string) string {
	if *outputFile != "" {
		return *outputFile
	}
	base := strings.TrimSuffix(input, fileExt(input))
	return base + "." + ext
}

func fileExt(path string) string {
	if i := strings.LastIndex(path, "."); i >= 0 && !strings.ContainsAny(path[i:], "/\\") {
		return path[i:]
	}
	return ""
}
