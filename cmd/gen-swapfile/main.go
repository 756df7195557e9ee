// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

// Command gen-swapfile writes a swap file header fixture to the given path.
package main

import (
	"encoding/binary"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/sudomateo/go-swapfile/swap"
)

var (
	exitFunc           = os.Exit
	stderr   io.Writer = os.Stderr
)

var errUsage = errors.New("usage")

type config struct {
	path string

	fillSequential bool
	littleEndian   bool
	debug          bool
}

func main() {
	cfg, err := parseFlags(os.Args[1:])

	switch {
	case errors.Is(err, flag.ErrHelp):
		return
	case err != nil:
		exitFunc(2)

		return
	}

	logger := newLogger(cfg.debug, stderr)

	if err = run(cfg, logger); err != nil {
		logger.Error("failed to generate swap file", zap.String("path", cfg.path), zap.Error(err))
		logger.Sync() //nolint:errcheck
		exitFunc(1)

		return
	}

	logger.Sync() //nolint:errcheck
}

func parseFlags(args []string) (config, error) {
	var cfg config

	fs := flag.NewFlagSet("gen-swapfile", flag.ContinueOnError)
	fs.SetOutput(stderr)

	fs.BoolVar(&cfg.fillSequential, "fill-sequential", false, "fill the page index table with 1..N instead of zeroes")
	fs.BoolVar(&cfg.littleEndian, "little-endian", false, "encode in little-endian instead of host byte order")
	fs.BoolVar(&cfg.debug, "debug", false, "enable debug logging")

	fs.Usage = func() {
		fmt.Fprintln(fs.Output(), "usage: gen-swapfile [flags] <path>")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return cfg, err
	}

	if fs.NArg() != 1 {
		fs.Usage()

		return cfg, errUsage
	}

	cfg.path = fs.Arg(0)

	return cfg, nil
}

// newLogger builds a JSON logger at info level, or a console logger at debug level.
func newLogger(debug bool, w io.Writer) *zap.Logger {
	encoder := zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
	level := zapcore.InfoLevel

	if debug {
		encoder = zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig())
		level = zapcore.DebugLevel
	}

	return zap.New(zapcore.NewCore(encoder, zapcore.AddSync(w), level))
}

func run(cfg config, logger *zap.Logger) error {
	opts := []swap.Option{swap.WithLogger(logger)}

	if cfg.fillSequential {
		opts = append(opts, swap.WithFillSequential())
	}

	if cfg.littleEndian {
		opts = append(opts, swap.WithByteOrder(binary.LittleEndian))
	}

	if err := swap.Write(cfg.path, opts...); err != nil {
		return err
	}

	logger.Info("swap file header written", zap.String("path", cfg.path), zap.Int("size", swap.HeaderSize))

	return nil
}
