package main

import (
	"fmt"
	"io"

	"github.com/martinemde/railroad-dsl/dsl"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var fmtCmd = &cobra.Command{
	Use:   "fmt [files...]",
	Short: "Print diagrams in canonical notation",
	Long:  "Parse each input (stdin when none is given) and print its diagrams in canonical notation, one per line.",
	RunE:  runFormat,
}

func init() {
	rootCmd.AddCommand(fmtCmd)
}

func runFormat(cmd *cobra.Command, args []string) error {
	log := newLogger(cmd.ErrOrStderr(), viper.GetBool("verbose"), viper.GetBool("debug"))
	defer func() { _ = log.Sync() }()

	r := &renderer{
		fs:     appFs,
		stdin:  cmd.InOrStdin(),
		stdout: cmd.OutOrStdout(),
		stderr: cmd.ErrOrStderr(),
		log:    log,
		cfg:    &renderConfig{Options: parseOptions(viper.GetViper())},
	}
	return r.format(args)
}

// format prints the canonical notation of every input to stdout.
func (r *renderer) format(inputs []string) error {
	if len(inputs) == 0 {
		src, err := io.ReadAll(r.stdin)
		if err == nil {
			err = r.formatSource(src)
		} else {
			err = fmt.Errorf("error reading stdin: %w", err)
		}
		if err != nil {
			r.report(stdinName, err)
			return &failedError{failed: 1, total: 1}
		}
		return nil
	}

	failed := 0
	for _, input := range inputs {
		src, err := afero.ReadFile(r.fs, input)
		if err == nil {
			err = r.formatSource(src)
		} else {
			err = fmt.Errorf("error reading file %s: %w", input, err)
		}
		if err != nil {
			r.report(input, err)
			failed++
		}
	}
	if failed > 0 {
		return &failedError{failed: failed, total: len(inputs)}
	}
	return nil
}

func (r *renderer) formatSource(src []byte) error {
	exprs, err := dsl.Parse(src, r.cfg.Options...)
	if err != nil {
		return err
	}
	_, err = io.WriteString(r.stdout, dsl.Format(exprs))
	return err
}
