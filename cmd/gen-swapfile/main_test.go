// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package main

import (
	"bytes"
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/sudomateo/go-swapfile/swap"
)

func TestParseFlags(t *testing.T) {
	var buf bytes.Buffer

	oldStderr := stderr
	stderr = &buf

	t.Cleanup(func() { stderr = oldStderr })

	for _, test := range []struct {
		name string
		args []string

		expected    config
		expectedErr bool
	}{
		{
			name:     "path only",
			args:     []string{"out.bin"},
			expected: config{path: "out.bin"},
		},
		{
			name:     "all flags",
			args:     []string{"-fill-sequential", "-little-endian", "-debug", "out.bin"},
			expected: config{path: "out.bin", fillSequential: true, littleEndian: true, debug: true},
		},
		{
			name:        "missing path",
			args:        nil,
			expectedErr: true,
		},
		{
			name:        "extra argument",
			args:        []string{"a.bin", "b.bin"},
			expectedErr: true,
		},
		{
			name:        "unknown flag",
			args:        []string{"-page-size", "512", "out.bin"},
			expectedErr: true,
		},
	} {
		t.Run(test.name, func(t *testing.T) {
			cfg, err := parseFlags(test.args)

			if test.expectedErr {
				assert.Error(t, err)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, test.expected, cfg)
		})
	}

	assert.Contains(t, buf.String(), "usage: gen-swapfile")
}

func TestRun(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.bin")

	require.NoError(t, run(config{path: path, littleEndian: true, fillSequential: true}, zaptest.NewLogger(t)))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	require.Len(t, data, swap.HeaderSize)

	assert.EqualValues(t, 256, binary.LittleEndian.Uint64(data[0:8]))
	assert.EqualValues(t, 256, binary.LittleEndian.Uint64(data[8:16]))
	assert.EqualValues(t, 1, binary.LittleEndian.Uint64(data[16:24]))
	assert.EqualValues(t, 256, binary.LittleEndian.Uint64(data[swap.HeaderSize-8:]))
}

func stubMain(t *testing.T, args []string) (exitCode int, output string) {
	t.Helper()

	origExit := exitFunc
	origStderr := stderr
	origArgs := os.Args

	t.Cleanup(func() {
		exitFunc = origExit
		stderr = origStderr
		os.Args = origArgs
	})

	exitCode = 0
	exitFunc = func(code int) { exitCode = code }

	var buf bytes.Buffer
	stderr = &buf

	os.Args = args

	main()

	return exitCode, buf.String()
}

func TestMainExitCode(t *testing.T) {
	tmpDir := t.TempDir()

	for _, test := range []struct {
		name string
		args []string

		expectedCode   int
		expectedOutput string
	}{
		{
			name:           "no arguments",
			args:           []string{"gen-swapfile"},
			expectedCode:   2,
			expectedOutput: "usage: gen-swapfile",
		},
		{
			name:           "two arguments",
			args:           []string{"gen-swapfile", "a.bin", "b.bin"},
			expectedCode:   2,
			expectedOutput: "usage: gen-swapfile",
		},
		{
			name:           "help",
			args:           []string{"gen-swapfile", "-h"},
			expectedCode:   0,
			expectedOutput: "usage: gen-swapfile",
		},
		{
			name:           "unwritable path",
			args:           []string{"gen-swapfile", tmpDir},
			expectedCode:   1,
			expectedOutput: "failed to generate swap file",
		},
		{
			name:           "valid path",
			args:           []string{"gen-swapfile", filepath.Join(tmpDir, "out.bin")},
			expectedCode:   0,
			expectedOutput: "swap file header written",
		},
	} {
		t.Run(test.name, func(t *testing.T) {
			code, out := stubMain(t, test.args)

			assert.Equal(t, test.expectedCode, code)
			assert.Contains(t, out, test.expectedOutput)
		})
	}

	st, err := os.Stat(filepath.Join(tmpDir, "out.bin"))
	require.NoError(t, err)

	assert.EqualValues(t, swap.HeaderSize, st.Size())
}

func TestRunFailure(t *testing.T) {
	err := run(config{path: t.TempDir()}, zaptest.NewLogger(t))

	assert.ErrorContains(t, err, "failed to open swap file")
}
