// Command mttri builds or decimates a Multi-Triangulation from a point set
// or an existing triangulation, per the option table and exit-code contract
// of the external-interfaces spec.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/UMDGeoVis/mttri/trig"
	"github.com/UMDGeoVis/mttri/validation"
)

func main() {
	var (
		input  = flag.String("input", "", "Input .pts, .seg, .tri or .cdt file")
		output = flag.String("output", "", "Output .tri or .cdt file")
		mode   = flag.String("mode", "refine", "refine or decimate")

		constrained  = flag.Bool("constrained", false, "honor the input's constraint segments")
		random       = flag.Bool("random", false, "select candidates in random order instead of error-driven")
		simultaneous = flag.Bool("simultaneous", false, "decimate in de Berg independent-set batches")

		termination = flag.String("termination", "NUPD", "NUPD or ERR")
		numUpd      = flag.Int("numUpd", 0, "number of updates to apply when termination=NUPD")
		errorLevel  = flag.Float64("errorLevel", 0, "target error when termination=ERR")

		norm = flag.String("norm", "MAX", "MAX, MED or SQM")

		maxDegree = flag.Int("maxDegree", 0, "cap vertex degree during decimation (0 = unbounded)")

		extendOptimization = flag.Bool("extendOptimization", false, "allow removing constrained vertices")
		allowFeaturesDel   = flag.Bool("allowFeaturesDel", false, "allow dropping a 1-constraint vertex's feature")
		allowChainBrk      = flag.Bool("allowChainBrk", false, "allow breaking a 2-constraint vertex's chain")

		pngOut   = flag.String("png", "", "also render the final triangulation to this PNG path")
		validate = flag.Bool("validate", false, "run triangle-soundness checks on the final triangulation and report faults to stderr")
	)
	flag.Parse()

	if *input == "" || *output == "" {
		fmt.Fprintln(os.Stderr, "Error: --input and --output are required")
		flag.PrintDefaults()
		os.Exit(1)
	}

	opts := trig.RunOptions{
		Constrained:        *constrained,
		Random:             *random,
		Simultaneous:       *simultaneous,
		NumUpd:             *numUpd,
		ErrorLevel:         *errorLevel,
		MaxDegree:          *maxDegree,
		MaxDegreeSet:       *maxDegree > 0,
		ExtendOptimization: *extendOptimization,
		AllowFeaturesDel:   *allowFeaturesDel,
		AllowChainBrk:      *allowChainBrk,
	}

	var err error
	opts.Termination, err = trig.ParseTermination(*termination)
	if err != nil {
		fail(err)
	}
	opts.Norm, err = trig.ParseNorm(*norm)
	if err != nil {
		fail(err)
	}

	switch *mode {
	case "refine":
		err = runRefine(*input, *output, *pngOut, *validate, opts)
	case "decimate":
		err = runDecimate(*input, *output, *pngOut, *validate, opts)
	default:
		err = fmt.Errorf("mttri: unknown mode %q (want refine or decimate)", *mode)
	}
	if err != nil {
		fail(err)
	}
}

func fail(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}

func runRefine(input, output, pngOut string, validate bool, opts trig.RunOptions) error {
	in, err := os.Open(input)
	if err != nil {
		return fmt.Errorf("opening input: %w", err)
	}
	defer in.Close()

	engine := trig.NewEngine(opts.RefineEngineOptions()...)

	var segFile *trig.SegFile
	if opts.Constrained {
		segFile, err = trig.ReadSeg(in)
		if err != nil {
			return fmt.Errorf("reading constrained input: %w", err)
		}
	} else {
		ptsFile, err := trig.ReadPTS(in)
		if err != nil {
			return fmt.Errorf("reading input: %w", err)
		}
		segFile = &trig.SegFile{PTSFile: *ptsFile}
	}

	if _, err := engine.BuildInitial(segFile.Points); err != nil {
		return fmt.Errorf("building initial triangulation: %w", err)
	}

	for {
		progressed, err := engine.RefineStep()
		if err != nil {
			return fmt.Errorf("refinement step: %w", err)
		}
		if !progressed {
			break
		}
	}

	if err := writePNGIfRequested(engine, pngOut); err != nil {
		return err
	}
	if err := validateIfRequested(engine, validate); err != nil {
		return err
	}

	out, err := os.Create(output)
	if err != nil {
		return fmt.Errorf("creating output: %w", err)
	}
	defer out.Close()

	if opts.Constrained {
		return engine.WriteCdt(out)
	}
	return engine.WriteTri(out)
}

func runDecimate(input, output, pngOut string, validate bool, opts trig.RunOptions) error {
	in, err := os.Open(input)
	if err != nil {
		return fmt.Errorf("opening input: %w", err)
	}
	defer in.Close()

	engine := trig.NewEngine(opts.DecimateEngineOptions()...)

	if opts.Constrained {
		cdt, err := trig.ReadCdt(in)
		if err != nil {
			return fmt.Errorf("reading constrained input: %w", err)
		}
		if err := engine.LoadTriangulation(cdt.Points, cdt.Triangles, cdt.Segments); err != nil {
			return fmt.Errorf("loading triangulation: %w", err)
		}
	} else {
		tf, err := trig.ReadTri(in)
		if err != nil {
			return fmt.Errorf("reading input: %w", err)
		}
		if err := engine.LoadTriangulation(tf.Points, tf.Triangles, nil); err != nil {
			return fmt.Errorf("loading triangulation: %w", err)
		}
	}

	for {
		var n int
		var err error
		if opts.Simultaneous {
			n, err = engine.DecimateIndependentSet()
		} else {
			var ok bool
			ok, err = engine.DecimateStep()
			if ok {
				n = 1
			}
		}
		if err != nil {
			return fmt.Errorf("decimation step: %w", err)
		}
		if n == 0 {
			break
		}
	}

	if err := writePNGIfRequested(engine, pngOut); err != nil {
		return err
	}
	if err := validateIfRequested(engine, validate); err != nil {
		return err
	}

	out, err := os.Create(output)
	if err != nil {
		return fmt.Errorf("creating output: %w", err)
	}
	defer out.Close()

	if opts.Constrained {
		return engine.WriteCdt(out)
	}
	return engine.WriteTri(out)
}

func validateIfRequested(engine *trig.Engine, requested bool) error {
	if !requested {
		return nil
	}
	faults, err := engine.Validate(validation.Config{
		Epsilon:                  1e-9,
		ErrorOnDuplicateTriangle: true,
		ValidateEdgeIntersection: true,
	})
	if err != nil {
		return fmt.Errorf("validating output: %w", err)
	}
	if len(faults) == 0 {
		return nil
	}
	fmt.Fprintf(os.Stderr, "Warning: %d triangle(s) failed validation:\n", len(faults))
	return trig.WriteValidationReport(os.Stderr, faults)
}

func writePNGIfRequested(engine *trig.Engine, pngOut string) error {
	if pngOut == "" {
		return nil
	}
	f, err := os.Create(pngOut)
	if err != nil {
		return fmt.Errorf("creating PNG output: %w", err)
	}
	defer f.Close()
	if err := engine.RenderPNG(f, 1024, 1024); err != nil {
		return fmt.Errorf("rendering PNG: %w", err)
	}
	return nil
}
