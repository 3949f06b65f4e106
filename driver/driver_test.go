/*
File    : royc/driver/driver_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package driver

import (
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeSource(t *testing.T, src string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "prog.royc")
	require.NoError(t, os.WriteFile(path, []byte(src), 0o644))
	return path
}

func TestCompile_EmitAssemblyOnlySkipsToolchain(t *testing.T) {
	path := writeSource(t, "exit(0);")
	result, err := Compile(path, Options{EmitAssemblyOnly: true})
	require.NoError(t, err)
	assert.FileExists(t, result.AssemblyPath)
	assert.Empty(t, result.ObjectPath)
	assert.Empty(t, result.OutputPath)
	assert.Contains(t, result.Assembly, "global _start")
}

func TestCompile_ParseErrorPropagates(t *testing.T) {
	path := writeSource(t, "exit(1")
	_, err := Compile(path, Options{EmitAssemblyOnly: true})
	assert.Error(t, err)
}

func TestCompile_CodegenErrorPropagates(t *testing.T) {
	path := writeSource(t, "exit(x);")
	_, err := Compile(path, Options{EmitAssemblyOnly: true})
	assert.Error(t, err)
}

func TestCompile_MissingSourceFileIsIoError(t *testing.T) {
	_, err := Compile(filepath.Join(t.TempDir(), "missing.royc"), Options{EmitAssemblyOnly: true})
	require.Error(t, err)
	var ioErr *IoError
	assert.ErrorAs(t, err, &ioErr)
}

// TestCompile_EndToEndExitCodes exercises spec.md's concrete end-to-end
// scenarios against a real nasm/ld toolchain. It is skipped wherever
// that toolchain isn't on PATH, which is the common case in CI sandboxes.
func TestCompile_EndToEndExitCodes(t *testing.T) {
	if _, err := exec.LookPath("nasm"); err != nil {
		t.Skip("nasm not on PATH")
	}
	if _, err := exec.LookPath("ld"); err != nil {
		t.Skip("ld not on PATH")
	}

	cases := []struct {
		name   string
		src    string
		status int
	}{
		{"literal", "exit(0);", 0},
		{"precedence", "exit(2 + 3 * 4);", 14},
		{"parens", "exit((2 + 3) * 4);", 20},
		{"subtraction", "let x = 10; let y = 5; exit(x - y);", 5},
		{"shadowing", "let x = 1; { let x = 7; } exit(x);", 1},
		{"if-else", "let a = 0; if (1) { a = 9; } else { a = 3; } exit(a);", 9},
		{"if-elif-else", "let a = 0; if (0) { a = 1; } elif (0) { a = 2; } else { a = 3; } exit(a);", 3},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			path := writeSource(t, tc.src)
			result, err := Compile(path, Options{KeepIntermediates: true})
			require.NoError(t, err)

			cmd := exec.Command(result.OutputPath)
			runErr := cmd.Run()
			if tc.status == 0 {
				assert.NoError(t, runErr)
				return
			}
			exitErr, ok := runErr.(*exec.ExitError)
			require.True(t, ok, "expected an ExitError, got %v", runErr)
			assert.Equal(t, tc.status, exitErr.ExitCode())
		})
	}
}
