package main

import (
	"errors"
	"fmt"
	"unsafe"

	flags "github.com/jessevdk/go-flags"
	"github.com/klauspost/cpuid/v2"

	"window.mleku.dev"
	"window.mleku.dev/secp256k1"
)

const (
	defaultBits       = secp256k1.ScalarBits
	defaultLogLevel   = "info"
	defaultScalarText = "1"

	// maxAutoWindow caps the window picked from the cache size.
	maxAutoWindow = 12
)

// errVersion is returned by loadConfig when --version was given.
var errVersion = errors.New("version requested")

type config struct {
	Window      int    `short:"w" long:"window" description:"Window width in bits (default: widest table that fits in the L2 cache)"`
	Bits        int    `short:"b" long:"bits" description:"Largest scalar bit length the table must accept"`
	Scalar      string `short:"k" long:"scalar" description:"Scalar to multiply G by; decimal or 0x-prefixed hex, optionally negative"`
	Seed        string `long:"seed" description:"Derive the scalar from the tagged hash of this string instead of --scalar"`
	Tag         string `long:"tag" description:"Domain separation tag for --seed"`
	Verify      bool   `long:"verify" description:"Check the result against plain double-and-add"`
	DebugLevel  string `short:"d" long:"debuglevel" description:"Logging level {trace, debug, info, warn, error, critical, off}"`
	ShowVersion bool   `short:"V" long:"version" description:"Display version information and exit"`
}

// tableBytes returns the size of a generator table for bitSize-bit scalars
// with winSize-bit windows.
func tableBytes(bitSize, winSize int) uint64 {
	blocks := uint64((bitSize + winSize - 1) / winSize)
	return blocks << winSize * uint64(unsafe.Sizeof(secp256k1.Point{}))
}

// windowForCache returns the widest window, up to maxAutoWindow, whose table
// for bitSize-bit scalars fits in cacheBytes. When the cache size is unknown
// or nothing fits, it returns secp256k1.DefaultWindowSize and 1 respectively.
func windowForCache(bitSize, cacheBytes int) int {
	if cacheBytes <= 0 {
		return secp256k1.DefaultWindowSize
	}
	best := 1
	for w := 2; w <= maxAutoWindow; w++ {
		if tableBytes(bitSize, w) <= uint64(cacheBytes) {
			best = w
		}
	}
	return best
}

// loadConfig parses args over the defaults and validates the result. A help
// request is returned as a *flags.Error of type flags.ErrHelp.
func loadConfig(args []string) (*config, error) {
	cfg := config{
		Bits:       defaultBits,
		Scalar:     defaultScalarText,
		Tag:        secp256k1.ScalarTag,
		DebugLevel: defaultLogLevel,
	}
	parser := flags.NewParser(&cfg, flags.HelpFlag|flags.PassDoubleDash)
	remaining, err := parser.ParseArgs(args)
	if err != nil {
		return nil, err
	}
	if cfg.ShowVersion {
		return &cfg, errVersion
	}
	if len(remaining) != 0 {
		return nil, fmt.Errorf("unexpected arguments: %v", remaining)
	}

	if cfg.Bits < 1 {
		return nil, fmt.Errorf("bit size %d must be positive", cfg.Bits)
	}
	if parser.FindOptionByLongName("window").IsSet() {
		if cfg.Window < 1 || cfg.Window > window.MaxWindowSize {
			return nil, fmt.Errorf("window size %d is outside [1, %d]",
				cfg.Window, window.MaxWindowSize)
		}
	} else {
		cfg.Window = windowForCache(cfg.Bits, cpuid.CPU.Cache.L2)
	}
	if err := setLogLevels(cfg.DebugLevel); err != nil {
		return nil, err
	}
	return &cfg, nil
}
