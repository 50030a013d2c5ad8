package main

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Output formats.
const (
	FormatText     = "text"
	FormatDOT      = "dot"
	FormatSpectrum = "spectrum"
	FormatOrbits   = "orbits"
)

var formats = []string{FormatText, FormatDOT, FormatSpectrum, FormatOrbits}

var (
	errNoModulus       = errors.New("job: modulus must be >= 1 or samples must be given")
	errModulusMismatch = errors.New("job: modulus disagrees with sample count")
	errUnknownFormat   = errors.New("job: unknown format")
	errNeedSamples     = errors.New("job: spectrum output needs samples")
)

// Job describes one invocation. It can be read from a YAML file and is then
// overridden by flags given on the command line.
type Job struct {
	Modulus     int       `yaml:"modulus"`
	Multipliers []int     `yaml:"multipliers"`
	Loops       bool      `yaml:"loops"`
	Zero        bool      `yaml:"zero"`
	Samples     []float64 `yaml:"samples"`
	Format      string    `yaml:"format"`
	Clusters    *bool     `yaml:"clusters"`
	Clock       bool      `yaml:"clock"`
}

func defaultJob() Job {
	return Job{
		Multipliers: []int{2},
		Format:      FormatText,
	}
}

// LoadJob reads a YAML job file on top of the defaults.
func LoadJob(path string) (Job, error) {
	job := defaultJob()

	data, err := os.ReadFile(path)
	if err != nil {
		return job, fmt.Errorf("read job %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &job); err != nil {
		return job, fmt.Errorf("parse job %s: %w", path, err)
	}
	if job.Format == "" {
		job.Format = FormatText
	}
	return job, nil
}

// Validate checks the job before any work is done. A job with samples and
// no modulus takes the modulus from the sample count.
func (j *Job) Validate() error {
	if len(j.Samples) > 0 {
		if j.Modulus == 0 {
			j.Modulus = len(j.Samples)
		}
		if j.Modulus != len(j.Samples) {
			return fmt.Errorf("%w: modulus %d, %d samples", errModulusMismatch, j.Modulus, len(j.Samples))
		}
	}
	if j.Modulus < 1 {
		return errNoModulus
	}

	known := false
	for _, f := range formats {
		if j.Format == f {
			known = true
			break
		}
	}
	if !known {
		return fmt.Errorf("%w: %q (want one of %s)", errUnknownFormat, j.Format, strings.Join(formats, ", "))
	}
	if j.Format == FormatSpectrum && len(j.Samples) == 0 {
		return errNeedSamples
	}
	return nil
}

// ClustersEnabled reports whether DOT output groups unit orbits.
func (j Job) ClustersEnabled() bool {
	return j.Clusters == nil || *j.Clusters
}

func parseInts(s string) ([]int, error) {
	fields := splitList(s)
	out := make([]int, 0, len(fields))
	for _, f := range fields {
		v, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("invalid integer %q: %w", f, err)
		}
		out = append(out, v)
	}
	return out, nil
}

func parseFloats(s string) ([]float64, error) {
	fields := splitList(s)
	out := make([]float64, 0, len(fields))
	for _, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid sample %q: %w", f, err)
		}
		out = append(out, v)
	}
	return out, nil
}

func splitList(s string) []string {
	var out []string
	for _, f := range strings.Split(s, ",") {
		if f = strings.TrimSpace(f); f != "" {
			out = append(out, f)
		}
	}
	return out
}
