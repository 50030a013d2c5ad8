// Command tonnetz builds tone networks over Z/NZ and prints them as tables,
// Graphviz DOT, Fourier spectra or unit orbits.
//
// Usage:
//
//	tonnetz [flags]
//
// Examples:
//
//	tonnetz -n 12 -m 5,7
//	tonnetz -n 12 -m 5,7 -format dot | dot -Tpng > net.png
//	tonnetz -samples 1,0,0,0 -m 3 -zero
//	tonnetz -samples 0,1,0,-1 -format spectrum
//	tonnetz -n 12 -format orbits
//	tonnetz -config job.yaml -v
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/cwbudde/algo-tonnetz/dsp/fourier"
	"github.com/cwbudde/algo-tonnetz/dsp/signal"
	"github.com/cwbudde/algo-tonnetz/render"
	"github.com/cwbudde/algo-tonnetz/ring"
	"github.com/cwbudde/algo-tonnetz/tonnetz"
)

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("tonnetz", flag.ContinueOnError)
	fs.SetOutput(stderr)

	configPath := fs.String("config", "", "YAML job file; flags given explicitly override it")
	modulus := fs.Int("n", 0, "modulus N (defaults to the sample count when -samples is set)")
	mults := fs.String("m", "2", "comma-separated multipliers")
	loops := fs.Bool("loops", false, "keep self-loops")
	zero := fs.Bool("zero", false, "use residue 0 as a source")
	samples := fs.String("samples", "", "comma-separated real samples for a Fourier-weighted network")
	format := fs.String("format", FormatText, "output format: "+strings.Join(formats, ", "))
	clusters := fs.Bool("clusters", true, "group unit orbits in DOT output")
	clock := fs.Bool("clock", false, "pin DOT nodes to a clock face")
	verbose := fs.Bool("v", false, "debug logging")
	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: tonnetz [flags]\n\n")
		fmt.Fprintf(stderr, "Builds the tone network of Z/NZ for a list of multipliers.\n\n")
		fmt.Fprintf(stderr, "Flags:\n")
		fs.PrintDefaults()
		fmt.Fprintf(stderr, "\nExamples:\n")
		fmt.Fprintf(stderr, "  tonnetz -n 12 -m 5,7\n")
		fmt.Fprintf(stderr, "  tonnetz -n 12 -m 5,7 -format dot\n")
		fmt.Fprintf(stderr, "  tonnetz -samples 1,0,0,0 -m 3 -zero\n")
	}
	if err := fs.Parse(args); err != nil {
		return err
	}

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	job := defaultJob()
	if *configPath != "" {
		var err error
		if job, err = LoadJob(*configPath); err != nil {
			logger.Error("loading job failed", "err", err)
			return err
		}
		logger.Debug("job loaded", "path", *configPath)
	}

	var parseErr error
	fs.Visit(func(f *flag.Flag) {
		var err error
		switch f.Name {
		case "n":
			job.Modulus = *modulus
		case "m":
			job.Multipliers, err = parseInts(*mults)
		case "loops":
			job.Loops = *loops
		case "zero":
			job.Zero = *zero
		case "samples":
			job.Samples, err = parseFloats(*samples)
		case "format":
			job.Format = *format
		case "clusters":
			job.Clusters = clusters
		case "clock":
			job.Clock = *clock
		}
		if err != nil && parseErr == nil {
			parseErr = fmt.Errorf("-%s: %w", f.Name, err)
		}
	})
	if parseErr != nil {
		logger.Error("invalid flag", "err", parseErr)
		return parseErr
	}

	if err := job.Validate(); err != nil {
		logger.Error("invalid job", "err", err)
		return err
	}
	logger.Debug("running job",
		"modulus", job.Modulus,
		"multipliers", job.Multipliers,
		"loops", job.Loops,
		"zero", job.Zero,
		"samples", len(job.Samples),
		"format", job.Format,
	)

	if err := execute(job, stdout, logger); err != nil {
		logger.Error("tonnetz failed", "err", err)
		return err
	}
	return nil
}

func execute(job Job, w io.Writer, logger *slog.Logger) error {
	switch job.Format {
	case FormatOrbits:
		orbits, err := ring.UnitOrbits(job.Modulus)
		if err != nil {
			return err
		}
		return writeOrbits(w, orbits)
	case FormatSpectrum:
		s, err := signal.FromReal(job.Samples)
		if err != nil {
			return err
		}
		x, err := fourier.Transform(s)
		if err != nil {
			return err
		}
		return writeSpectrum(w, x)
	}

	opts := []tonnetz.Option{tonnetz.WithLoops(job.Loops), tonnetz.WithZero(job.Zero)}

	var (
		net      *tonnetz.Network
		weighted *tonnetz.SignalNetwork
	)
	if len(job.Samples) > 0 {
		s, err := signal.FromReal(job.Samples)
		if err != nil {
			return err
		}
		if weighted, err = fourier.WeightedNetwork(s, job.Multipliers, opts...); err != nil {
			return err
		}
		net = weighted.Network
	} else {
		var err error
		if net, err = tonnetz.New(job.Modulus, job.Multipliers, opts...); err != nil {
			return err
		}
	}
	logger.Info("network built", "modulus", net.Modulus(), "nodes", net.Order(), "edges", net.Size())

	if job.Format == FormatDOT {
		out, err := render.Marshal(net,
			render.WithClusters(job.ClustersEnabled()),
			render.WithClockLayout(job.Clock),
		)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintf(w, "%s\n", out)
		return err
	}
	return writeText(w, net, weighted)
}

func writeText(w io.Writer, net *tonnetz.Network, weighted *tonnetz.SignalNetwork) error {
	if _, err := fmt.Fprintf(w, "modulus: %d\nmultipliers: %v\nnodes: %v\ncomponents: %v\n\n",
		net.Modulus(), net.Multipliers(), net.Nodes(), net.Components()); err != nil {
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "From\tTo\tWeight\n")
	fmt.Fprintf(tw, "----\t--\t------\n")
	for _, e := range net.Edges() {
		fmt.Fprintf(tw, "%d\t%d\t%d\n", e.From, e.To, e.Weight)
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	if weighted == nil {
		return nil
	}

	fmt.Fprintln(w)
	tw = tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Node\tPayload (real)\n")
	fmt.Fprintf(tw, "----\t--------------\n")
	for _, v := range weighted.Nodes() {
		p, ok := weighted.Payload(v)
		if !ok {
			continue
		}
		fmt.Fprintf(tw, "%d\t%s\n", v, formatFloats(p.Real(false)))
	}
	return tw.Flush()
}

func writeSpectrum(w io.Writer, x fourier.Spectrum) error {
	mag := x.Magnitude()
	db := x.PowerDB()

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "k\tRe\tIm\t|X|\tPower [dB]\n")
	fmt.Fprintf(tw, "-\t--\t--\t---\t----------\n")
	for k, c := range x {
		fmt.Fprintf(tw, "%d\t%.6f\t%.6f\t%.6f\t%.2f\n", k, real(c), imag(c), mag[k], db[k])
	}
	return tw.Flush()
}

func writeOrbits(w io.Writer, orbits ring.Orbits) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Divisor\tOrbit\n")
	fmt.Fprintf(tw, "-------\t-----\n")
	for _, d := range orbits.Divisors() {
		fmt.Fprintf(tw, "%d\t%v\n", d, orbits[d])
	}
	return tw.Flush()
}

func formatFloats(v []float64) string {
	parts := make([]string, len(v))
	for i, f := range v {
		if math.Abs(f) < 5e-4 {
			f = 0 // no -0.000
		}
		parts[i] = fmt.Sprintf("%.3f", f)
	}
	return "[" + strings.Join(parts, " ") + "]"
}
