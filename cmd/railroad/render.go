package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/martinemde/railroad-dsl/dsl"
	"github.com/martinemde/railroad-dsl/railroad"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

const stdinName = "<stdin>"

// appFs is the filesystem inputs are read from and outputs written to.
var appFs = afero.NewOsFs()

// renderConfig holds the settings shared by every input of one invocation.
type renderConfig struct {
	Format    string // "svg" or "png"
	CSS       string // stylesheet contents
	MaxWidth  int
	MaxHeight int
	Options   []dsl.Option
}

// loadConfig resolves flags and environment into a renderConfig. A --css file
// takes precedence over --theme.
func loadConfig(v *viper.Viper, fs afero.Fs) (*renderConfig, error) {
	cfg := &renderConfig{
		Format:    strings.ToLower(v.GetString("format")),
		MaxWidth:  v.GetInt("max_width"),
		MaxHeight: v.GetInt("max_height"),
	}
	if cfg.Format == "" {
		cfg.Format = "svg"
	}
	if cfg.Format != "svg" && cfg.Format != "png" {
		return nil, fmt.Errorf("unknown format %q (want svg or png)", cfg.Format)
	}
	if cfg.MaxWidth < 0 || cfg.MaxHeight < 0 {
		return nil, fmt.Errorf("max width and height must not be negative")
	}

	if path := v.GetString("css"); path != "" {
		css, err := afero.ReadFile(fs, path)
		if err != nil {
			return nil, fmt.Errorf("reading stylesheet: %w", err)
		}
		cfg.CSS = string(css)
	} else {
		theme, err := railroad.ParseTheme(v.GetString("theme"))
		if err != nil {
			return nil, err
		}
		cfg.CSS = theme.CSS()
	}

	cfg.Options = parseOptions(v)
	return cfg, nil
}

// parseOptions maps the persistent parsing flags onto dsl options.
func parseOptions(v *viper.Viper) []dsl.Option {
	var opts []dsl.Option
	if v.GetBool("single") {
		opts = append(opts, dsl.WithSingleDiagram())
	}
	if depth := v.GetInt("max_depth"); depth > 0 {
		opts = append(opts, dsl.WithMaxDepth(depth))
	}
	return opts
}

// renderer compiles inputs and writes the results. Problems with individual
// inputs are reported on stderr and do not stop the remaining inputs.
type renderer struct {
	fs     afero.Fs
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
	log    *zap.Logger
	cfg    *renderConfig
}

func runRender(cmd *cobra.Command, args []string) error {
	log := newLogger(cmd.ErrOrStderr(), viper.GetBool("verbose"), viper.GetBool("debug"))
	defer func() { _ = log.Sync() }()

	cfg, err := loadConfig(viper.GetViper(), appFs)
	if err != nil {
		return err
	}

	r := &renderer{
		fs:     appFs,
		stdin:  cmd.InOrStdin(),
		stdout: cmd.OutOrStdout(),
		stderr: cmd.ErrOrStderr(),
		log:    log,
		cfg:    cfg,
	}
	return r.run(args)
}

// failedError reports how many inputs could not be processed.
type failedError struct {
	failed, total int
}

func (e *failedError) Error() string {
	return fmt.Sprintf("%d of %d input(s) failed", e.failed, e.total)
}

func (r *renderer) run(inputs []string) error {
	if len(inputs) == 0 {
		if err := r.renderStdin(); err != nil {
			r.report(stdinName, err)
			return &failedError{failed: 1, total: 1}
		}
		return nil
	}

	failed := 0
	for _, input := range inputs {
		if err := r.renderFile(input); err != nil {
			r.report(input, err)
			failed++
		}
	}
	if failed > 0 {
		return &failedError{failed: failed, total: len(inputs)}
	}
	return nil
}

// report prints a problem with one input the way users expect to read it:
// syntax errors are labelled with the input name.
func (r *renderer) report(name string, err error) {
	var syn *dsl.SyntaxError
	if errors.As(err, &syn) {
		fmt.Fprintf(r.stderr, "syntax error:\n%s\n", syn.WithPath(name))
	} else {
		fmt.Fprintf(r.stderr, "%v\n", err)
	}
	r.log.Debug("input failed", zap.String("input", name), zap.Error(err))
}

func (r *renderer) renderStdin() error {
	src, err := io.ReadAll(r.stdin)
	if err != nil {
		return fmt.Errorf("error reading stdin: %w", err)
	}
	d, err := dsl.Compile(string(src), r.cfg.CSS, r.cfg.Options...)
	if err != nil {
		return err
	}
	if err := r.encode(r.stdout, d); err != nil {
		return fmt.Errorf("error writing stdout: %w", err)
	}
	r.log.Info("rendered", zap.String("input", stdinName), zap.Int("width", d.Width), zap.Int("height", d.Height))
	return nil
}

func (r *renderer) renderFile(input string) error {
	src, err := afero.ReadFile(r.fs, input)
	if err != nil {
		return fmt.Errorf("error reading file %s: %w", input, err)
	}
	d, err := dsl.Compile(string(src), r.cfg.CSS, r.cfg.Options...)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := r.encode(&buf, d); err != nil {
		return fmt.Errorf("error encoding %s: %w", input, err)
	}
	output := outputPath(input, r.cfg.Format)
	if err := afero.WriteFile(r.fs, output, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("error writing file %s: %w", output, err)
	}
	r.log.Info("rendered",
		zap.String("input", input),
		zap.String("output", output),
		zap.Int("width", d.Width),
		zap.Int("height", d.Height))
	return nil
}

func (r *renderer) encode(w io.Writer, d *dsl.CompiledDiagram) error {
	if r.cfg.Format == "png" {
		return rasterize(w, d.Diagram, r.cfg.MaxWidth, r.cfg.MaxHeight)
	}
	_, err := io.WriteString(w, d.Diagram.String())
	return err
}

// outputPath replaces the extension of input with format.
func outputPath(input, format string) string {
	return strings.TrimSuffix(input, filepath.Ext(input)) + "." + format
}
