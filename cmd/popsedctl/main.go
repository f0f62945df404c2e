// Command popsedctl evaluates the popsed forward model from the shell.
//
//	popsedctl sed   -basis DIR -emulator NMF.json [-burst-emulator BURST.json] -params IN.csv [-out OUT.csv]
//	popsedctl props -basis DIR -params IN.csv [-dt 0.1]
//	popsedctl runs  [-store sqlite -db-path popsed.db]
//
// Parameter CSV files carry a header with the model parameter names followed
// by a redshift column.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/lmittmann/tint"
)

const (
	defaultDBPath = "popsed.db"
	timeFormat    = "15:04:05"
)

func main() {
	if err := run(context.Background(), os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stdout io.Writer) error {
	if len(args) == 0 {
		return usageError("missing command")
	}

	switch args[0] {
	case "sed":
		return runSED(ctx, args[1:], stdout)
	case "props":
		return runProps(ctx, args[1:], stdout)
	case "runs":
		return runRuns(ctx, args[1:], stdout)
	default:
		return usageError(fmt.Sprintf("unknown command: %s", args[0]))
	}
}

func usageError(msg string) error {
	return fmt.Errorf("%s\nusage: popsedctl <sed|props|runs> [flags]", msg)
}

// commonFlags are shared by every subcommand.
type commonFlags struct {
	logLevel  *string
	storeKind *string
	dbPath    *string
}

func addCommonFlags(fs *flag.FlagSet) commonFlags {
	return commonFlags{
		logLevel:  fs.String("log-level", "info", "log level: debug|info|warn|error"),
		storeKind: fs.String("store", "memory", "store backend: memory|sqlite"),
		dbPath:    fs.String("db-path", defaultDBPath, "sqlite database path"),
	}
}

// newLogger builds the colourised stderr logger used by every subcommand.
func newLogger(level string) (*slog.Logger, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("log-level: %w", err)
	}

	return slog.New(tint.NewHandler(os.Stderr, &tint.Options{
		Level:      lvl,
		TimeFormat: timeFormat,
	})), nil
}
