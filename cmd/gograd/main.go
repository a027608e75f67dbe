// gograd evaluates one of the built-in expressions with reverse-mode autodiff,
// prints a step-by-step walkthrough and can emit the computation graph in
// Graphviz DOT format or a plot of the expression and its derivative.
//
//	gograd -expr "x ** 2 + x" -x 3 -dot - | dot -Tpng > graph.png
//	gograd -expr "sin(x) + x" -plot sin.png -from -6 -to 6
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/born-ml/gograd/internal/autodiff"
	"github.com/born-ml/gograd/internal/dot"
	"github.com/born-ml/gograd/internal/expr"
	"github.com/born-ml/gograd/internal/plot"
	"github.com/pkg/errors"
	"k8s.io/klog/v2"
)

const version = "v0.1.0"

var (
	flagExpr = flag.String("expr", "x ** 2 + x", "Expression to evaluate, see -list.")
	flagX    = flag.Float64("x", 2, "Value of x.")
	flagList = flag.Bool("list", false, "List the available expressions and exit.")
	flagDot  = flag.String("dot", "", "Write the computation graph in DOT format to this file. Use \"-\" for stdout.")

	flagGradLabels = flag.Bool("grad-labels", false, "Include gradients in the DOT labels.")
	flagPlot       = flag.String("plot", "", "Plot the expression and its derivative to this file (.png, .svg, .pdf).")
	flagFrom       = flag.Float64("from", -3, "Start of the -plot interval.")
	flagTo         = flag.Float64("to", 3, "End of the -plot interval.")
	flagSamples    = flag.Int("samples", plot.DefaultSamples, "Number of -plot sample points.")
	flagTrace      = flag.Bool("trace", false, "Log each Function as the backward pass runs it.")
)

func main() {
	klog.InitFlags(nil)
	flag.Parse()

	if len(flag.Args()) > 0 && flag.Arg(0) == "version" {
		fmt.Printf("gograd %s\n", version)
		return
	}
	if len(flag.Args()) > 0 {
		klog.Errorf("Unexpected arguments %q. See 'gograd -help'.", flag.Args())
		os.Exit(1)
	}

	cfg := config{
		expr:       *flagExpr,
		x:          *flagX,
		list:       *flagList,
		dotPath:    *flagDot,
		gradLabels: *flagGradLabels,
		plotPath:   *flagPlot,
		from:       *flagFrom,
		to:         *flagTo,
		samples:    *flagSamples,
		trace:      *flagTrace,
	}
	if err := run(cfg, os.Stdout); err != nil {
		klog.Errorf("%+v", err)
		os.Exit(1)
	}
}

// config mirrors the command line flags.
type config struct {
	expr       string
	x          float64
	list       bool
	dotPath    string
	gradLabels bool
	plotPath   string
	from, to   float64
	samples    int
	trace      bool
}

func run(cfg config, w io.Writer) error {
	if cfg.list {
		return printCatalog(w)
	}

	// With DOT going to stdout, keep stdout clean for piping.
	report := w
	if cfg.dotPath == "-" {
		report = io.Discard
	}

	var order []autodiff.Function
	observer := autodiff.WithObserver(func(fn autodiff.Function) {
		order = append(order, fn)
		if cfg.trace {
			klog.Infof("backward: %s (generation %d)", fn.Name(), fn.Generation())
		}
	})
	res, err := expr.Evaluate(cfg.expr, cfg.x, observer)
	if err != nil {
		return err
	}
	if err := printResult(report, res, order); err != nil {
		return err
	}

	if cfg.dotPath != "" {
		var opts []dot.Option
		if cfg.gradLabels {
			opts = append(opts, dot.WithGrad())
		}
		if err := writeDot(cfg.dotPath, w, dot.Build(res.Output, opts...)); err != nil {
			return err
		}
	}

	if cfg.plotPath != "" {
		curve, err := plot.Sample(res.Expression, cfg.from, cfg.to, cfg.samples)
		if err != nil {
			return err
		}
		if err := curve.Save(cfg.plotPath); err != nil {
			return err
		}
		_, _ = fmt.Fprintf(report, "plot written to %s\n", cfg.plotPath)
	}
	return nil
}

func writeDot(path string, stdout io.Writer, g *dot.Graph) error {
	if path == "-" {
		_, err := g.WriteTo(stdout)
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "creating %q", path)
	}
	if _, err := g.WriteTo(f); err != nil {
		_ = f.Close()
		return errors.Wrapf(err, "writing %q", path)
	}
	if err := f.Close(); err != nil {
		return errors.Wrapf(err, "closing %q", path)
	}
	klog.V(1).Infof("wrote graph with %d functions to %s", g.NumFunctions(), path)
	return nil
}
