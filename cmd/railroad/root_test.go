package main

import (
	"bytes"
	"image/png"
	"strings"
	"testing"

	"github.com/martinemde/railroad-dsl/railroad"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// resetFlags restores flag defaults; cobra keeps parsed values between
// Execute calls on the same command.
func resetFlags(cmd *cobra.Command) {
	for _, set := range []*pflag.FlagSet{cmd.Flags(), cmd.PersistentFlags()} {
		set.VisitAll(func(f *pflag.Flag) {
			_ = f.Value.Set(f.DefValue)
			f.Changed = false
		})
	}
}

func executeCommand(t *testing.T, fs afero.Fs, stdin string, args ...string) (string, string, error) {
	t.Helper()
	prev := appFs
	appFs = fs
	t.Cleanup(func() { appFs = prev })

	resetFlags(rootCmd)
	var stdout, stderr bytes.Buffer
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	rootCmd.SetArgs(append([]string{}, args...))

	err := rootCmd.Execute()
	return stdout.String(), stderr.String(), err
}

func readFile(t *testing.T, fs afero.Fs, name string) string {
	t.Helper()
	b, err := afero.ReadFile(fs, name)
	require.NoError(t, err)
	return string(b)
}

func TestCommandStdinToStdout(t *testing.T) {
	stdout, stderr, err := executeCommand(t, afero.NewMemMapFs(), `["a", 'b']`)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(stdout, "<svg "))
	assert.Contains(t, stdout, railroad.DefaultCSS)
	assert.Empty(t, stderr)
}

func TestCommandFilesWriteSiblingOutputs(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeFile(t, fs, "grammar/select.rr", `["SELECT", 'column'*","]`)
	writeFile(t, fs, "grammar/where.txt", `"WHERE" 'expr'`)

	_, _, err := executeCommand(t, fs, "", "grammar/select.rr", "grammar/where.txt")
	require.NoError(t, err)

	assert.Contains(t, readFile(t, fs, "grammar/select.svg"), ">SELECT</text>")
	assert.Contains(t, readFile(t, fs, "grammar/where.svg"), ">WHERE</text>")
}

func TestCommandFailureDoesNotStopOtherInputs(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeFile(t, fs, "bad.rr", `"a" ]`)
	writeFile(t, fs, "good.rr", `"b"`)

	_, stderr, err := executeCommand(t, fs, "", "bad.rr", "good.rr")
	var failed *failedError
	require.ErrorAs(t, err, &failed)
	assert.Equal(t, 1, failed.failed)

	assert.Contains(t, readFile(t, fs, "good.svg"), ">b</text>")
	assert.Contains(t, stderr, "syntax error:\nbad.rr:1:5: expected expression or EOF, got ']'")
}

func TestCommandFileNamedLikeSubcommand(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeFile(t, fs, "fmt", `"a"`)

	_, _, err := executeCommand(t, fs, "", "./fmt")
	require.NoError(t, err)
	assert.Contains(t, readFile(t, fs, "fmt.svg"), "<svg ")
}

func TestCommandFormatPNG(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeFile(t, fs, "a.rr", `"a"`)

	_, _, err := executeCommand(t, fs, "", "--format", "png", "a.rr")
	require.NoError(t, err)
	img, err := png.DecodeConfig(strings.NewReader(readFile(t, fs, "a.png")))
	require.NoError(t, err)
	assert.Equal(t, 108, img.Width)
	assert.Equal(t, 42, img.Height)

	stdout, _, err := executeCommand(t, fs, `"a"`, "--format", "png", "--max-width", "54")
	require.NoError(t, err)
	img, err = png.DecodeConfig(strings.NewReader(stdout))
	require.NoError(t, err)
	assert.Equal(t, 54, img.Width)
	assert.Equal(t, 21, img.Height)
}

func TestCommandCSSFile(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeFile(t, fs, "style.css", "svg.railroad path { stroke: teal; }")

	stdout, _, err := executeCommand(t, fs, `"a"`, "--css", "style.css", "--theme", "dark")
	require.NoError(t, err)
	assert.Contains(t, stdout, "svg.railroad path { stroke: teal; }")
	assert.NotContains(t, stdout, railroad.DarkCSS)
}

func TestCommandThemeDark(t *testing.T) {
	stdout, _, err := executeCommand(t, afero.NewMemMapFs(), `"a"`, "--theme", "dark")
	require.NoError(t, err)
	assert.Contains(t, stdout, railroad.DarkCSS)
}

func TestCommandSingleDiagram(t *testing.T) {
	_, stderr, err := executeCommand(t, afero.NewMemMapFs(), `"a" "b"`, "--single")
	require.Error(t, err)
	assert.Contains(t, stderr, "syntax error:\n<stdin>:1:5: only one diagram is allowed")
}

func TestCommandRejectsUnknownFormat(t *testing.T) {
	_, _, err := executeCommand(t, afero.NewMemMapFs(), `"a"`, "--format", "gif")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown format")
}

func TestCommandFmt(t *testing.T) {
	stdout, _, err := executeCommand(t, afero.NewMemMapFs(), `"a"  ["b" ,'c']*!`, "fmt")
	require.NoError(t, err)
	assert.Equal(t, "\"a\"\n[\"b\", 'c']*!\n", stdout)

	fs := afero.NewMemMapFs()
	writeFile(t, fs, "x.rr", `<"x",'y'>?`)
	writeFile(t, fs, "y.rr", `{`)
	stdout, stderr, err := executeCommand(t, fs, "", "fmt", "x.rr", "y.rr")
	require.Error(t, err)
	assert.Equal(t, "<\"x\", 'y'>?\n", stdout)
	assert.Contains(t, stderr, "syntax error:\ny.rr:1:2:")
}
