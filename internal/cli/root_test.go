package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCommand()
	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestRootCommand(t *testing.T) {
	cmd := NewRootCommand()
	require.NotNil(t, cmd)
	assert.Equal(t, "life", cmd.Use)
	assert.Contains(t, cmd.Long, "pan")
}

func TestCommandPresence(t *testing.T) {
	cmd := NewRootCommand()
	for _, name := range []string{"run", "headless", "patterns"} {
		t.Run(name, func(t *testing.T) {
			sub, _, err := cmd.Find([]string{name})
			require.NoError(t, err)
			assert.Equal(t, name, sub.Name())
		})
	}
}

func TestGlobalFlags(t *testing.T) {
	cmd := NewRootCommand()

	verbose := cmd.PersistentFlags().Lookup("verbose")
	require.NotNil(t, verbose)
	assert.Equal(t, "v", verbose.Shorthand)
	assert.Equal(t, "false", verbose.DefValue)

	for _, name := range []string{"config", "rows", "cols", "interval", "pattern", "cell-length", "generations", "output"} {
		assert.NotNil(t, cmd.PersistentFlags().Lookup(name), name)
	}
	assert.Equal(t, "50ms", cmd.PersistentFlags().Lookup("interval").DefValue)
}

func headlessArgs(t *testing.T, extra ...string) ([]string, string) {
	output := filepath.Join(t.TempDir(), "board.png")
	args := []string{
		"headless",
		"--rows=10", "--cols=10", "--width=100", "--height=100",
		"--generations=2", "--interval=1ms", "--tps=240",
		"--output=" + output,
	}
	return append(args, extra...), output
}

func TestHeadlessCommand(t *testing.T) {
	args, output := headlessArgs(t, "--pattern=block")
	out, err := execute(t, args...)
	require.NoError(t, err)

	assert.Contains(t, out, "board 10x10, generation 2, population 4")
	assert.FileExists(t, output)
}

func TestHeadlessFlagsOverrideConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "life.yaml")
	require.NoError(t, os.WriteFile(path, []byte("rows: 12\npattern: glider\n"), 0o600))

	args, _ := headlessArgs(t, "--config="+path, "--pattern=block")
	// --rows is given on the command line too; drop it so the file wins.
	args = append(args[:1], args[2:]...)

	out, err := execute(t, args...)
	require.NoError(t, err)
	assert.Contains(t, out, "board 12x10")
	assert.Contains(t, out, "population 4", "the block from the flag replaces the glider")
}

func TestHeadlessRejectsBadConfig(t *testing.T) {
	args, _ := headlessArgs(t, "--pattern=nope")
	_, err := execute(t, args...)
	assert.Error(t, err)

	_, err = execute(t, "headless", "--config="+filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestPatternsCommand(t *testing.T) {
	out, err := execute(t, "patterns")
	require.NoError(t, err)
	assert.Contains(t, out, "glider")
	assert.Contains(t, out, "3x3")
	assert.Contains(t, out, "glider-gun")
}
