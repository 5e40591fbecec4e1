package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/bezfit/bezfit/pointjson"
	"github.com/bezfit/bezfit/svgpath"
	"github.com/spf13/cobra"
)

var convertCmd = &cobra.Command{
	Use:   "convert [file]",
	Short: "Convert between JSON control points and SVG path data",
	Long: `Translate a curve between its two encodings. Input starting with '['
is treated as a JSON control point array and converted to SVG path
data; input starting with an M command goes the other way. Reads
standard input when no file is given.`,
	Args: cobra.MaximumNArgs(1),
	Run:  runConvert,
}

func init() {
	rootCmd.AddCommand(convertCmd)
}

func runConvert(cmd *cobra.Command, args []string) {
	path := ""
	if len(args) == 1 {
		path = args[0]
	}
	data, err := readInput(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading input: %v\n", err)
		os.Exit(1)
	}

	in := strings.TrimSpace(string(data))
	var out string
	switch {
	case strings.HasPrefix(in, "["):
		curve, err := pointjson.DecodeCurve(data)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing points: %v\n", err)
			os.Exit(1)
		}
		out = svgpath.Encode(curve)
	case strings.HasPrefix(in, "M"):
		curve, err := svgpath.Parse(in)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing path: %v\n", err)
			os.Exit(1)
		}
		encoded, err := pointjson.EncodeCurve(curve)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error encoding points: %v\n", err)
			os.Exit(1)
		}
		out = string(encoded)
	default:
		fmt.Fprintln(os.Stderr, "Error: input is neither a JSON point array nor SVG path data")
		os.Exit(1)
	}
	fmt.Println(out)
}
