package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"os/exec"
	"testing"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/util"
	"github.com/stretchr/testify/require"

	"github.com/jmgilman/go/errmodel/reporter"
)

func execute(t *testing.T, fs billy.Filesystem, args ...string) (string, error) {
	t.Helper()

	rootCmd := createRootCmd(fs)
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)

	err := rootCmd.Execute()
	return buf.String(), err
}

func TestCreateRootCmd(t *testing.T) {
	rootCmd := createRootCmd(memfs.New())
	require.Equal(t, "errdemo", rootCmd.Use)

	var names []string
	for _, c := range rootCmd.Commands() {
		names = append(names, c.Name())
	}
	require.Contains(t, names, "run")
	require.Contains(t, names, "list")
	require.Contains(t, names, "version")
	require.NotContains(t, names, "help")
}

func TestRun_Outcomes(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantOut string
		wantErr bool
	}{
		{
			name:    "valid id",
			args:    []string{"run", "access-map-3", "--key", "42"},
			wantOut: "Success!\n",
		},
		{
			name:    "invalid id",
			args:    []string{"run", "access-map-3", "--key", "41"},
			wantOut: "Error: invalid id number (76)\n",
			wantErr: true,
		},
		{
			name:    "default key",
			args:    []string{"run", "access-map-1"},
			wantOut: "Error: not divisible by 7\n",
			wantErr: true,
		},
		{
			name:    "missing id with marker",
			args:    []string{"run", "access-map-2", "-k", "99"},
			wantOut: "Error: key lookup failure\n",
			wantErr: true,
		},
		{
			name:    "open with context",
			args:    []string{"run", "open-file-2"},
			wantOut: "Error: failed to open \"nonexistent_logfile\"\n\nCaused by:\n    file does not exist\n",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := execute(t, memfs.New(), tt.args...)
			require.Equal(t, tt.wantOut, out)
			if tt.wantErr {
				require.ErrorIs(t, err, errReported)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestRun_JSON(t *testing.T) {
	out, err := execute(t, memfs.New(), "run", "access-map-3", "--json")
	require.ErrorIs(t, err, errReported)

	var res reporter.Result
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	require.False(t, res.Success)
	require.Equal(t, "INVALID_NUMBER", res.Error.Kind)
}

func TestRun_TableFile(t *testing.T) {
	fs := memfs.New()
	require.NoError(t, util.WriteFile(fs, "ids.toml", []byte("[entries]\n41 = 77\n"), 0o644))

	out, err := execute(t, fs, "run", "access-map-3", "--table", "ids.toml")
	require.NoError(t, err)
	require.Equal(t, "Success!\n", out)
}

func TestRun_SetupErrorsAreReturned(t *testing.T) {
	_, err := execute(t, memfs.New(), "run", "access-map-3", "--table", "missing.yaml")
	require.Error(t, err)
	require.False(t, errors.Is(err, errReported))
	require.Contains(t, err.Error(), `failed to read "missing.yaml"`)

	_, err = execute(t, memfs.New(), "run", "no-such-demo")
	require.EqualError(t, err, `unknown demo "no-such-demo"`)
}

func TestList(t *testing.T) {
	out, err := execute(t, memfs.New(), "list")
	require.NoError(t, err)
	for _, name := range []string{"open-file-1", "open-file-2", "access-map-1", "access-map-2", "access-map-3"} {
		require.Contains(t, out, name)
	}
	require.Contains(t, out, "marker")
}

func TestVersionCmd_PrintsInfo(t *testing.T) {
	out, err := execute(t, memfs.New(), "version")
	require.NoError(t, err)
	require.Contains(t, out, "errdemo version:")
	require.Contains(t, out, "Go version:")
	require.Contains(t, out, "Platform:")
}

// TestExecuteFailure runs Execute in a subprocess and checks that a failing
// demo ends the process with exit status 1.
func TestExecuteFailure(t *testing.T) {
	if os.Getenv("TEST_EXECUTE_FAILURE") == "1" {
		os.Args = []string{"errdemo", "run", "access-map-3", "--key", "41"}
		Execute()
		return
	}

	cmd := exec.Command(os.Args[0], "-test.run=TestExecuteFailure")
	cmd.Env = append(os.Environ(), "TEST_EXECUTE_FAILURE=1")
	err := cmd.Run()

	var exitErr *exec.ExitError
	require.True(t, errors.As(err, &exitErr), "expected an exit error, got %v", err)
	require.Equal(t, reporter.ExitFailure, exitErr.ExitCode())
}
