package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"

	"github.com/dusk-indust/stockroom/internal/config"
	"github.com/dusk-indust/stockroom/internal/inventory"
	"github.com/dusk-indust/stockroom/internal/shell"
)

// CLI flags parsed from command line.
type cliFlags struct {
	ConfigPath   string
	ProductsFile string
	UsersFile    string
	Verbose      bool
	ServeMCP     bool
	Version      bool
}

// version is set by goreleaser at build time.
var version = "dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdin, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout io.Writer) error {
	var flags cliFlags

	fs := flag.NewFlagSet("stockroom", flag.ContinueOnError)
	fs.StringVar(&flags.ConfigPath, "config", "", "path to a stockroom.yml config file")
	fs.StringVar(&flags.ProductsFile, "products", "", "path to the products storage file")
	fs.StringVar(&flags.UsersFile, "users", "", "path to the users storage file")
	fs.BoolVar(&flags.Verbose, "verbose", false, "enable verbose output")
	fs.BoolVar(&flags.ServeMCP, "serve-mcp", false, "run as MCP server on stdio instead of the interactive menu")
	fs.BoolVar(&flags.Version, "version", false, "print version and exit")

	if err := fs.Parse(args); err != nil {
		return err
	}

	if flags.Version {
		fmt.Fprintln(stdout, version)
		return nil
	}

	cfg, err := resolveConfig(flags, os.LookupEnv)
	if err != nil {
		return err
	}
	if cfg.Verbose {
		log.SetOutput(os.Stderr)
	} else {
		log.SetOutput(io.Discard)
	}
	log.Printf("stockroom: products=%s users=%s", cfg.ProductsFile, cfg.UsersFile)

	inv, err := inventory.Open(ctx, inventory.Paths{
		Products: cfg.ProductsFile,
		Users:    cfg.UsersFile,
	})
	if err != nil {
		return err
	}

	rest := fs.Args()
	if len(rest) > 0 {
		switch rest[0] {
		case "export":
			return runExport(inv, stdout)
		default:
			return fmt.Errorf("unknown command %q", rest[0])
		}
	}

	if flags.ServeMCP {
		return runServeMCP(ctx, inv)
	}
	return shell.New(inv, stdin, stdout).Run(ctx)
}

// resolveConfig layers settings: defaults < config file < environment < flags.
func resolveConfig(flags cliFlags, lookup func(string) (string, bool)) (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)
	if flags.ConfigPath != "" {
		cfg, err = config.LoadFile(flags.ConfigPath)
	} else {
		cfg, err = config.Load(".")
	}
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	cfg.ApplyEnv(lookup)
	if flags.ProductsFile != "" {
		cfg.ProductsFile = flags.ProductsFile
	}
	if flags.UsersFile != "" {
		cfg.UsersFile = flags.UsersFile
	}
	if flags.Verbose {
		cfg.Verbose = true
	}
	cfg.ApplyDefaults(".")
	return cfg, nil
}
