// Command wmul multiplies the secp256k1 generator by a scalar using a
// fixed-window table and prints the compressed result.
package main

import (
	"errors"
	"fmt"
	"io"
	"math/big"
	"os"
	"runtime"
	"time"

	flags "github.com/jessevdk/go-flags"
	"github.com/klauspost/cpuid/v2"

	"window.mleku.dev"
	"window.mleku.dev/secp256k1"
)

const appName = "wmul"

var version = "1.0.0"

func versionString() string {
	return fmt.Sprintf("%s version %s (Go version %s %s/%s)", appName,
		version, runtime.Version(), runtime.GOOS, runtime.GOARCH)
}

// parseScalar returns the scalar selected by cfg: the tagged hash of --seed
// when set, otherwise the signed integer in --scalar.
func parseScalar(cfg *config) (*big.Int, error) {
	if cfg.Seed != "" {
		s := secp256k1.ScalarFromHash([]byte(cfg.Tag), []byte(cfg.Seed))
		b := s.Bytes()
		return new(big.Int).SetBytes(b[:]), nil
	}
	k, ok := new(big.Int).SetString(cfg.Scalar, 0)
	if !ok {
		return nil, fmt.Errorf("invalid scalar %q", cfg.Scalar)
	}
	return k, nil
}

// run builds the generator table described by cfg, multiplies it by the
// configured scalar and writes the compressed point to w.
func run(cfg *config, w io.Writer) error {
	log.Debugf("CPU %q, L2 cache %d bytes, window %d", cpuid.CPU.BrandName,
		cpuid.CPU.Cache.L2, cfg.Window)

	k, err := parseScalar(cfg)
	if err != nil {
		return err
	}

	var tbl secp256k1.GeneratorTable
	start := time.Now()
	if err := tbl.Init(&secp256k1.Generator, cfg.Bits, cfg.Window); err != nil {
		return err
	}
	log.Infof("Built %d-entry table (%d bytes) in %v", tbl.Len(),
		tbl.TableSize(), time.Since(start))

	var r secp256k1.Point
	if err := tbl.MulBig(&r, k); err != nil {
		return err
	}
	if cfg.Verify {
		var want secp256k1.Point
		window.MulBinary(&want, &secp256k1.Generator, k.Bits(), k.Sign() < 0)
		if !r.Equal(&want) {
			return fmt.Errorf("table result %x disagrees with double-and-add "+
				"result %x", r.SerializeCompressed(), want.SerializeCompressed())
		}
		log.Infof("Result verified against double-and-add")
	}

	_, err = fmt.Fprintf(w, "%x\n", r.SerializeCompressed())
	return err
}

// realMain runs the command with the given arguments and returns the process
// exit code. Fatal errors go to stderr whatever the log level.
func realMain(args []string, stdout, stderr io.Writer) int {
	cfg, err := loadConfig(args)
	if err != nil {
		var e *flags.Error
		switch {
		case errors.As(err, &e) && e.Type == flags.ErrHelp:
			fmt.Fprintln(stdout, err)
			return 0
		case errors.Is(err, errVersion):
			fmt.Fprintln(stdout, versionString())
			return 0
		}
		fmt.Fprintln(stderr, err)
		return 1
	}

	if err := run(cfg, stdout); err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	return 0
}

func main() {
	os.Exit(realMain(os.Args[1:], os.Stdout, os.Stderr))
}
