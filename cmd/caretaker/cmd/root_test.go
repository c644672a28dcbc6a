package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cterror "github.com/msto63/caretaker/foundation/core/error"
	"github.com/msto63/caretaker/pkg/core/config"
)

// execute runs the command tree with colours off and no config file
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv(config.EnvConfigPath, "")
	t.Setenv("HOME", t.TempDir())

	root := NewRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(append([]string{"--color", "never"}, args...))

	err := root.Execute()
	return out.String(), err
}

func TestNewRootCmd(t *testing.T) {
	root := NewRootCmd()
	require.NotNil(t, root)
	assert.Equal(t, "caretaker", root.Use)

	for _, name := range []string{"split", "replace", "match", "convert", "now", "enum", "log", "clear", "coin", "pick", "version"} {
		sub, _, err := root.Find([]string{name})
		require.NoError(t, err, name)
		assert.Equal(t, name, sub.Name())
	}
}

func TestSplitCmd(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		expected string
	}{
		{"string index", []string{"split", "index", "Split This", "5"}, "\"Split\"\n\"This\"\n"},
		{"string index at end", []string{"split", "index", "Split", "5"}, "\"Split\"\n\"\"\n"},
		{"string first", []string{"split", "first", "key=value=x", "="}, "\"key\"\n\"value=x\"\n"},
		{"string last", []string{"split", "last", "key=value=x", "="}, "\"key=value\"\n\"x\"\n"},
		{"string indexes", []string{"split", "indexes", "Split This", "5", "7"}, "\"Split\"\n\" T\"\n\"his\"\n"},
		{"list index", []string{"split", "--list", "index", "a,b,c", "1"}, "\"a\"\n\"c\"\n"},
		{"list index last element", []string{"split", "--list", "index", "a,b,c", "2"}, "\"a,b\"\n\"\"\n"},
		{"list index missing", []string{"split", "--list", "index", "a,b,c", "3"}, "\"a,b,c\"\n<none>\n"},
		{"list first", []string{"split", "--list", "first", "a,x,b,x,c", "x"}, "\"a\"\n\"b,x,c\"\n"},
		{"list last", []string{"split", "--list", "last", "a,x,b,x,c", "x"}, "\"a,x,b\"\n\"c\"\n"},
		{"list indexes custom sep", []string{"split", "--list", "--sep", ";", "indexes", "a;b;c;d", "1", "3"}, "\"a\"\n\"b;c\"\n\"d\"\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := execute(t, tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, out)
		})
	}
}

func TestSplitCmd_InvalidInput(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"position not a number", []string{"split", "index", "abc", "x"}},
		{"multi-rune separator", []string{"split", "first", "a==b", "=="}},
		{"bad position in list", []string{"split", "indexes", "abc", "1", "two"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := execute(t, tt.args...)
			require.Error(t, err)
			assert.True(t, cterror.HasCode(err, cterror.CodeInvalidInput))
		})
	}
}

func TestReplaceCmd(t *testing.T) {
	out, err := execute(t, "replace", "a.b.c", ".", "..")
	require.NoError(t, err)
	assert.Equal(t, "a..b..c\n", out)

	out, err = execute(t, "replace", "--rune", "a-b-c", "-", "+")
	require.NoError(t, err)
	assert.Equal(t, "a+b+c\n", out)

	_, err = execute(t, "replace", "--rune", "a-b", "-", "::")
	assert.True(t, cterror.HasCode(err, cterror.CodeInvalidInput))
}

func TestMatchCmd(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		expected string
	}{
		{"case-insensitive", []string{"match", "--locale", "en_US", "Yes", "no", "YES"}, "true\n"},
		{"no match", []string{"match", "--locale", "en_US", "maybe", "yes", "no"}, "false\n"},
		{"no candidates", []string{"match", "yes"}, "false\n"},
		{"turkish dotless i", []string{"match", "--locale", "tr_TR.UTF-8", "TITLE", "tıtle"}, "true\n"},
		{"english keeps dotted i", []string{"match", "--locale", "en_US", "TITLE", "tıtle"}, "false\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := execute(t, tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, out)
		})
	}
}

func TestConvertCmd(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		expected string
	}{
		{"to finer unit", []string{"convert", "2", "hour", "sec"}, "7200\n"},
		{"to coarser unit", []string{"convert", "7200", "sec", "hour"}, "2\n"},
		{"same unit", []string{"convert", "3.5", "day", "days"}, "3.5\n"},
		{"as duration", []string{"convert", "90", "min", "hour", "--duration"}, "1h30m0s\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := execute(t, tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, out)
		})
	}

	_, err := execute(t, "convert", "1", "fortnight", "sec")
	assert.True(t, cterror.HasCode(err, cterror.CodeInvalidInput))

	_, err = execute(t, "convert", "one", "day", "sec")
	assert.True(t, cterror.HasCode(err, cterror.CodeInvalidInput))
}

func TestNowCmd(t *testing.T) {
	out, err := execute(t, "now")
	require.NoError(t, err)
	assert.Regexp(t, `^\d{2}:\d{2}:\d{2}\.\d{3}\n$`, out)

	out, err = execute(t, "now", "--millis")
	require.NoError(t, err)
	assert.Regexp(t, `^\d+\n$`, out)
}

func TestEnumCmd(t *testing.T) {
	out, err := execute(t, "enum", "1", "red", "green", "blue")
	require.NoError(t, err)
	assert.Equal(t, "green\n", out)

	out, err = execute(t, "enum", "9")
	require.NoError(t, err)
	assert.Equal(t, "enum index 9 out of range; defaulted to 5\ndebug\n", out)

	out, err = execute(t, "enum", "--", "-3", "red", "green")
	require.NoError(t, err)
	assert.Equal(t, "enum index -3 out of range; defaulted to 0\nred\n", out)
}

func TestLogCmd(t *testing.T) {
	out, err := execute(t, "log", "warning", "disk", "almost", "full")
	require.NoError(t, err)
	assert.Equal(t, "disk almost full\n", out)

	out, err = execute(t, "log", "info", "--null")
	require.NoError(t, err)
	assert.Equal(t, "null\n", out)

	out, err = execute(t, "--timestamp", "log", "debug", "tick")
	require.NoError(t, err)
	assert.Regexp(t, `^\[\d{2}:\d{2}:\d{2}\.\d{3}\] tick\n$`, out)

	out, err = execute(t, "log", "warning")
	require.NoError(t, err)
	assert.Equal(t, "Warning!\n", out)

	out, err = execute(t, "log", "err")
	require.NoError(t, err)
	assert.Equal(t, "Error!\n", out)

	out, err = execute(t, "--timestamp", "log", "warn")
	require.NoError(t, err)
	assert.Regexp(t, `^\[\d{2}:\d{2}:\d{2}\.\d{3}\] Warning!\n$`, out)

	out, err = execute(t, "log", "info")
	require.NoError(t, err)
	assert.Equal(t, "\n", out)

	_, err = execute(t, "log", "loud", "x")
	assert.True(t, cterror.HasCode(err, cterror.CodeInvalidInput))
}

func TestLogCmd_Tee(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tee.log")

	_, err := execute(t, "log", "error", "first", "--tee", path)
	require.NoError(t, err)
	_, err = execute(t, "log", "info", "second", "--tee", path)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "first\nsecond\n", string(data))
}

func TestClearCmd(t *testing.T) {
	out, err := execute(t, "clear")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "\r"+strings.Repeat(" ", 80)))
	assert.True(t, strings.HasSuffix(out, "\x1b[1F"))
}

func TestCoinCmd(t *testing.T) {
	first, err := execute(t, "--seed", "42", "coin", "--count", "8")
	require.NoError(t, err)
	second, err := execute(t, "--seed", "42", "coin", "--count", "8")
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Len(t, strings.Fields(first), 8)

	out, err := execute(t, "coin", "--chance", "1", "--count", "3")
	require.NoError(t, err)
	assert.Equal(t, "heads\nheads\nheads\n", out)

	out, err = execute(t, "coin", "--chance", "0", "--count", "3")
	require.NoError(t, err)
	assert.Equal(t, "tails\ntails\ntails\n", out)

	_, err = execute(t, "coin", "--chance", "1.5")
	assert.True(t, cterror.HasCode(err, cterror.CodeValueOutOfRange))
}

func TestPickCmd(t *testing.T) {
	out, err := execute(t, "--seed", "7", "pick", "--count", "4", "a", "b", "c")
	require.NoError(t, err)
	for _, item := range strings.Fields(out) {
		assert.Contains(t, []string{"a", "b", "c"}, item)
	}

	out, err = execute(t, "pick")
	require.NoError(t, err)
	assert.Equal(t, "nothing to pick from\n", out)
}

func TestVersionCmd(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "caretaker v")
	assert.Contains(t, out, "Go Version:")
}

func TestRootCmd_Config(t *testing.T) {
	_, err := execute(t, "--color", "sometimes", "version")
	assert.True(t, cterror.HasCode(err, cterror.CodeInvalidConfig))

	_, err = execute(t, "--config", filepath.Join(t.TempDir(), "missing.toml"), "version")
	assert.True(t, cterror.HasCode(err, cterror.CodeNotFound))

	path := filepath.Join(t.TempDir(), "caretaker.toml")
	require.NoError(t, os.WriteFile(path, []byte("[log]\ntimestamp = true\ncolor = \"never\"\n"), 0644))

	out, err := execute(t, "--config", path, "log", "info", "from file")
	require.NoError(t, err)
	assert.Regexp(t, `^\[\d{2}:\d{2}:\d{2}\.\d{3}\] from file\n$`, out)
}
