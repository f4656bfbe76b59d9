package main

import (
	"bytes"
	"image/png"
	"strings"
	"testing"

	"github.com/martinemde/railroad-dsl/railroad"
	"github.com/spf13/afero"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type testRenderer struct {
	*renderer
	stdout *bytes.Buffer
	stderr *bytes.Buffer
}

func newTestRenderer(stdin string, cfg *renderConfig) *testRenderer {
	stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
	return &testRenderer{
		renderer: &renderer{
			fs:     afero.NewMemMapFs(),
			stdin:  strings.NewReader(stdin),
			stdout: stdout,
			stderr: stderr,
			log:    zap.NewNop(),
			cfg:    cfg,
		},
		stdout: stdout,
		stderr: stderr,
	}
}

func svgConfig() *renderConfig {
	return &renderConfig{Format: "svg", CSS: railroad.DefaultCSS}
}

func writeFile(t *testing.T, fs afero.Fs, name, content string) {
	t.Helper()
	require.NoError(t, afero.WriteFile(fs, name, []byte(content), 0o644))
}

func TestRenderStdinToStdout(t *testing.T) {
	r := newTestRenderer(`["a", 'b']`, svgConfig())
	require.NoError(t, r.run(nil))

	assert.True(t, strings.HasPrefix(r.stdout.String(), "<svg "))
	assert.Contains(t, r.stdout.String(), railroad.DefaultCSS)
	assert.Empty(t, r.stderr.String())
}

func TestRenderStdinSyntaxError(t *testing.T) {
	r := newTestRenderer(`"a`, svgConfig())
	err := r.run(nil)

	var failed *failedError
	require.ErrorAs(t, err, &failed)
	assert.Equal(t, 1, failed.failed)
	assert.Empty(t, r.stdout.String())
	assert.Equal(t, "syntax error:\n<stdin>:1:1: unterminated terminal: expected closing \", got EOF\n", r.stderr.String())
}

func TestRenderFilesContinuesAfterFailure(t *testing.T) {
	r := newTestRenderer("", svgConfig())
	writeFile(t, r.fs, "diagrams/bad.txt", `"a" ]`)
	writeFile(t, r.fs, "diagrams/good.rr", `["a", "b"]`)

	err := r.run([]string{"diagrams/bad.txt", "diagrams/missing.rr", "diagrams/good.rr"})
	var failed *failedError
	require.ErrorAs(t, err, &failed)
	assert.Equal(t, 2, failed.failed)
	assert.Equal(t, 3, failed.total)
	assert.Equal(t, "2 of 3 input(s) failed", err.Error())

	out, err := afero.ReadFile(r.fs, "diagrams/good.svg")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(out), "<svg "))

	exists, err := afero.Exists(r.fs, "diagrams/bad.svg")
	require.NoError(t, err)
	assert.False(t, exists)

	assert.Contains(t, r.stderr.String(), "syntax error:\ndiagrams/bad.txt:1:5: expected expression or EOF, got ']'\n")
	assert.Contains(t, r.stderr.String(), "error reading file diagrams/missing.rr")
	assert.Empty(t, r.stdout.String())
}

func TestRenderPNG(t *testing.T) {
	cfg := svgConfig()
	cfg.Format = "png"
	r := newTestRenderer("", cfg)
	writeFile(t, r.fs, "a.rr", `"a"`)
	require.NoError(t, r.run([]string{"a.rr"}))

	out, err := afero.ReadFile(r.fs, "a.png")
	require.NoError(t, err)
	img, err := png.DecodeConfig(bytes.NewReader(out))
	require.NoError(t, err)
	assert.Equal(t, 108, img.Width)
	assert.Equal(t, 42, img.Height)
}

func TestRenderPNGRespectsMaxSize(t *testing.T) {
	cfg := svgConfig()
	cfg.Format = "png"
	cfg.MaxWidth = 54
	r := newTestRenderer(`"a"`, cfg)
	require.NoError(t, r.run(nil))

	img, err := png.DecodeConfig(bytes.NewReader(r.stdout.Bytes()))
	require.NoError(t, err)
	assert.Equal(t, 54, img.Width)
	assert.Equal(t, 21, img.Height)
}

func TestRenderLogsAtInfoWhenVerbose(t *testing.T) {
	var logs bytes.Buffer
	r := newTestRenderer(`"a"`, svgConfig())
	r.log = newLogger(&logs, true, false)
	require.NoError(t, r.run(nil))
	assert.Contains(t, logs.String(), "rendered")

	logs.Reset()
	r = newTestRenderer(`"a"`, svgConfig())
	r.log = newLogger(&logs, false, false)
	require.NoError(t, r.run(nil))
	assert.Empty(t, logs.String())
}

func TestOutputPath(t *testing.T) {
	tests := []struct {
		input, format, want string
	}{
		{"a.rr", "svg", "a.svg"},
		{"dir/x.y.txt", "svg", "dir/x.y.svg"},
		{"noext", "svg", "noext.svg"},
		{"grammar.txt", "png", "grammar.png"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, outputPath(tt.input, tt.format), tt.input)
	}
}

func TestFit(t *testing.T) {
	tests := []struct {
		w, h, maxW, maxH int
		wantW, wantH     int
	}{
		{100, 50, 0, 0, 100, 50},
		{100, 50, 200, 200, 100, 50},
		{100, 50, 50, 0, 50, 25},
		{100, 50, 0, 10, 20, 10},
		{100, 50, 50, 10, 20, 10},
		{1000, 1, 10, 0, 10, 1},
	}
	for _, tt := range tests {
		w, h := fit(tt.w, tt.h, tt.maxW, tt.maxH)
		assert.Equal(t, tt.wantW, w)
		assert.Equal(t, tt.wantH, h)
	}
}

func TestLoadConfig(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeFile(t, fs, "style.css", "svg { fill: red; }")

	v := viper.New()
	cfg, err := loadConfig(v, fs)
	require.NoError(t, err)
	assert.Equal(t, "svg", cfg.Format)
	assert.Equal(t, railroad.DefaultCSS, cfg.CSS)
	assert.Empty(t, cfg.Options)

	v.Set("format", "PNG")
	v.Set("theme", "dark")
	v.Set("single", true)
	v.Set("max_depth", 8)
	cfg, err = loadConfig(v, fs)
	require.NoError(t, err)
	assert.Equal(t, "png", cfg.Format)
	assert.Equal(t, railroad.DarkCSS, cfg.CSS)
	assert.Len(t, cfg.Options, 2)

	v.Set("css", "style.css")
	cfg, err = loadConfig(v, fs)
	require.NoError(t, err)
	assert.Equal(t, "svg { fill: red; }", cfg.CSS)
}

func TestLoadConfigErrors(t *testing.T) {
	fs := afero.NewMemMapFs()
	tests := []struct {
		key   string
		value interface{}
		msg   string
	}{
		{"format", "gif", "unknown format"},
		{"theme", "neon", "unknown theme"},
		{"css", "missing.css", "reading stylesheet"},
		{"max_width", -1, "must not be negative"},
	}
	for _, tt := range tests {
		v := viper.New()
		v.Set(tt.key, tt.value)
		_, err := loadConfig(v, fs)
		require.Error(t, err, tt.key)
		assert.Contains(t, err.Error(), tt.msg, tt.key)
	}
}

func TestFormatStdin(t *testing.T) {
	r := newTestRenderer(`"a"  ["b" ,'c']*!`, &renderConfig{})
	require.NoError(t, r.format(nil))
	assert.Equal(t, "\"a\"\n[\"b\", 'c']*!\n", r.stdout.String())
}

func TestFormatFiles(t *testing.T) {
	r := newTestRenderer("", &renderConfig{})
	writeFile(t, r.fs, "one.rr", `<"x",'y'>?`)
	writeFile(t, r.fs, "two.rr", `{`)

	err := r.format([]string{"one.rr", "two.rr"})
	require.Error(t, err)
	assert.Equal(t, "<\"x\", 'y'>?\n", r.stdout.String())
	assert.Contains(t, r.stderr.String(), "syntax error:\ntwo.rr:1:2: expected expression, got EOF")
}
