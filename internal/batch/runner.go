// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package batch

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"fullname-parser/internal/formatters"
	"fullname-parser/internal/observability"
	"fullname-parser/internal/personname"

	"golang.org/x/sync/errgroup"
)

// DefaultWorkers is used when no positive worker count is configured
const DefaultWorkers = 4

// maxLineBytes bounds a single input line
const maxLineBytes = 1 << 20

// Runner parses files of newline-delimited names and writes one output table per file
type Runner struct {
	parser   *personname.Parser
	format   formatters.Formatter
	options  formatters.FormatterOptions
	workers  int
	observer *observability.StandardObserver
}

// Option configures a Runner
type Option func(*Runner) error

// WithFormat selects the output formatter by registry name
func WithFormat(name string) Option {
	return func(r *Runner) error {
		f, ok := formatters.Get(name)
		if !ok {
			return fmt.Errorf("unsupported format '%s'. Available formats: %s", name, strings.Join(formatters.List(), ", "))
		}
		r.format = f
		return nil
	}
}

// WithFormatterOptions sets the options passed to the formatter
func WithFormatterOptions(options formatters.FormatterOptions) Option {
	return func(r *Runner) error {
		r.options = options
		return nil
	}
}

// WithWorkers bounds the number of files processed at once
func WithWorkers(n int) Option {
	return func(r *Runner) error {
		if n > 0 {
			r.workers = n
		}
		return nil
	}
}

// WithObserver enables per-file timing logs
func WithObserver(observer *observability.StandardObserver) Option {
	return func(r *Runner) error {
		r.observer = observer
		return nil
	}
}

// Result describes the outcome for one input file
type Result struct {
	InputPath  string
	OutputPath string
	Records    int
	Fallbacks  int // records that were split blindly or left empty
	Duration   time.Duration
	Error      error
}

// NewRunner creates a runner; the output format defaults to csv
func NewRunner(parser *personname.Parser, opts ...Option) (*Runner, error) {
	if parser == nil {
		parser = personname.Default()
	}
	r := &Runner{parser: parser, workers: DefaultWorkers}
	for _, opt := range opts {
		if err := opt(r); err != nil {
			return nil, err
		}
	}
	if r.format == nil {
		if err := WithFormat("csv")(r); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// ParseLines parses each non-blank line of r as one full name
func (r *Runner) ParseLines(in io.Reader) ([]personname.Record, error) {
	records, _, err := r.parseLines(in)
	return records, err
}

func (r *Runner) parseLines(in io.Reader) ([]personname.Record, int, error) {
	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	var records []personname.Record
	fallbacks := 0
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		analysis := r.parser.Analyze(line)
		if analysis.Method != personname.MethodParsed {
			fallbacks++
		}
		records = append(records, analysis.Record)
	}
	if err := scanner.Err(); err != nil {
		return nil, 0, fmt.Errorf("error reading names: %w", err)
	}
	return records, fallbacks, nil
}

// OutputPath returns where the table for inPath is written: the input's file
// name with the format extension appended, so names.csv becomes names.csv.csv
func (r *Runner) OutputPath(inPath, outDir string) string {
	return filepath.Join(outDir, filepath.Base(inPath)+r.format.FileExtension())
}

// samePath reports whether a and b name the same file location
func samePath(a, b string) bool {
	absA, errA := filepath.Abs(a)
	absB, errB := filepath.Abs(b)
	if errA != nil || errB != nil {
		return filepath.Clean(a) == filepath.Clean(b)
	}
	return absA == absB
}

// ProcessFile parses one input file and writes its table into outDir
func (r *Runner) ProcessFile(ctx context.Context, inPath, outDir string) Result {
	start := time.Now()
	result := Result{InputPath: inPath}

	var finishTiming func(bool, int, map[string]interface{})
	if r.observer.Level() != observability.ObservabilityOff {
		finishTiming = r.observer.StartSummary("batch", "process_file", inPath)
	}

	result.Error = r.processFile(ctx, inPath, outDir, &result)
	result.Duration = time.Since(start)

	if finishTiming != nil {
		metadata := map[string]interface{}{
			"fallbacks": result.Fallbacks,
			"format":    r.format.Name(),
		}
		if result.Error != nil {
			metadata["error"] = result.Error.Error()
		}
		finishTiming(result.Error == nil, result.Records, metadata)
	}
	return result
}

func (r *Runner) processFile(ctx context.Context, inPath, outDir string, result *Result) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	file, err := os.Open(filepath.Clean(inPath))
	if err != nil {
		return fmt.Errorf("error opening input: %w", err)
	}
	defer file.Close()

	records, fallbacks, err := r.parseLines(file)
	if err != nil {
		return err
	}
	result.Records = len(records)
	result.Fallbacks = fallbacks

	content, err := r.format.Format(records, r.options)
	if err != nil {
		return fmt.Errorf("error formatting %s: %w", inPath, err)
	}

	if err := os.MkdirAll(outDir, 0750); err != nil {
		return fmt.Errorf("error creating output directory: %w", err)
	}
	outPath := r.OutputPath(inPath, outDir)
	if samePath(outPath, inPath) {
		return fmt.Errorf("output %s would overwrite its input", outPath)
	}
	if err := os.WriteFile(outPath, []byte(content), 0600); err != nil {
		return fmt.Errorf("error writing output: %w", err)
	}
	result.OutputPath = outPath
	return nil
}

// Run processes every input with a bounded pool of workers. Directories are
// expanded to the regular files they contain (not recursively). Results keep
// input order; a failed file does not stop the others. The returned error
// joins the per-file errors.
func (r *Runner) Run(ctx context.Context, inputs []string, outDir string) ([]Result, error) {
	files, err := ExpandInputs(inputs)
	if err != nil {
		return nil, err
	}

	results := make([]Result, len(files))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.workers)

	// Inputs are never overwritten, and each output file belongs to the
	// first input that maps to it
	claimed := make(map[string]string, 2*len(files))
	for _, path := range files {
		abs, _ := filepath.Abs(path)
		claimed[abs] = path
	}
	for i, path := range files {
		outPath, _ := filepath.Abs(r.OutputPath(path, outDir))
		if owner, taken := claimed[outPath]; taken {
			results[i] = Result{
				InputPath: path,
				Error:     fmt.Errorf("output %s conflicts with %s", r.OutputPath(path, outDir), owner),
			}
			continue
		}
		claimed[outPath] = path

		i, path := i, path
		g.Go(func() error {
			results[i] = r.ProcessFile(gctx, path, outDir)
			return nil
		})
	}
	_ = g.Wait()

	var errs []error
	for _, res := range results {
		if res.Error != nil {
			errs = append(errs, fmt.Errorf("%s: %w", res.InputPath, res.Error))
		}
	}
	return results, errors.Join(errs...)
}

// ExpandInputs replaces each directory with its regular files in sorted order
func ExpandInputs(inputs []string) ([]string, error) {
	var files []string
	for _, input := range inputs {
		info, err := os.Stat(input)
		if err != nil {
			return nil, fmt.Errorf("error accessing %s: %w", input, err)
		}
		if !info.IsDir() {
			files = append(files, input)
			continue
		}

		entries, err := os.ReadDir(input)
		if err != nil {
			return nil, fmt.Errorf("error reading directory %s: %w", input, err)
		}
		var dirFiles []string
		for _, entry := range entries {
			if entry.Type().IsRegular() {
				dirFiles = append(dirFiles, filepath.Join(input, entry.Name()))
			}
		}
		sort.Strings(dirFiles)
		files = append(files, dirFiles...)
	}
	return files, nil
}
