package main

import (
	"fmt"
	"os"

	"github.com/bezfit/bezfit"
	"github.com/bezfit/bezfit/pointjson"
	"github.com/bezfit/bezfit/svgpath"
	"github.com/spf13/cobra"
)

var fitCmd = &cobra.Command{
	Use:   "fit [file]",
	Short: "Fit a Bézier curve to JSON sample points",
	Long: `Read a JSON array of points ({"x": …, "y": …}), fit a Bézier segment
with the selected algorithm, and print the result as SVG path data.
Reads standard input when no file is given.`,
	Args: cobra.MaximumNArgs(1),
	Run:  runFit,
}

var (
	fitAlgo      string
	fitDegree    int
	fitTolerance float64
	fitMaxIter   int
	fitParams    bool
)

func init() {
	fitCmd.Flags().StringVar(&fitAlgo, "algo", "alternating", "fitting algorithm: linear, alternating, or newton")
	fitCmd.Flags().IntVar(&fitDegree, "degree", 3, "segment degree: 2 (quadratic) or 3 (cubic)")
	fitCmd.Flags().Float64Var(&fitTolerance, "tolerance", 1e-6, "relative residual improvement at which to stop")
	fitCmd.Flags().IntVar(&fitMaxIter, "max-iter", 50, "iteration budget for iterative algorithms")
	fitCmd.Flags().BoolVar(&fitParams, "fit-params", true, "let the newton algorithm optimize sample parameters")
	rootCmd.AddCommand(fitCmd)
}

func runFit(cmd *cobra.Command, args []string) {
	path := ""
	if len(args) == 1 {
		path = args[0]
	}
	data, err := readInput(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading input: %v\n", err)
		os.Exit(1)
	}
	cps, err := pointjson.Unmarshal(data)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing points: %v\n", err)
		os.Exit(1)
	}
	points := make([]bezfit.Point, len(cps))
	for i, cp := range cps {
		points[i] = cp.Pos
	}
	samples := bezfit.Samples(points)

	opts := bezfit.DefaultOptions()
	opts.Tolerance = fitTolerance
	opts.MaxIterations = fitMaxIter
	opts.FitParameters = fitParams
	switch fitDegree {
	case 2:
		opts.Degree = bezfit.QuadKind
	case 3:
		opts.Degree = bezfit.CubicKind
	default:
		fmt.Fprintf(os.Stderr, "Error: unsupported degree %d\n", fitDegree)
		os.Exit(1)
	}

	var (
		curve  bezfit.Curve
		report bezfit.FitReport
	)
	switch fitAlgo {
	case "linear":
		var seg bezfit.Segment
		seg, report, err = bezfit.FitLinear(samples, opts)
		if err == nil {
			curve = bezfit.Curve{Segments: []bezfit.Segment{seg}}
		}
	case "alternating":
		curve, report, err = bezfit.FitAlternating(samples, opts)
	case "newton":
		curve, report, err = bezfit.FitGaussNewton(samples, opts)
	default:
		fmt.Fprintf(os.Stderr, "Error: unknown algorithm %q\n", fitAlgo)
		os.Exit(1)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error fitting curve: %v\n", err)
		os.Exit(1)
	}

	fmt.Println(svgpath.Encode(curve))
	fmt.Fprintf(os.Stderr, "rss=%g iterations=%d converged=%t\n",
		report.RSS, report.Iterations, report.Converged)
}
