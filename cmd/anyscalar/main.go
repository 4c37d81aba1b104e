// anyscalar CLI - lists the scalar kinds and checks the scalar contract
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/tliron/commonlog"
	_ "github.com/tliron/commonlog/simple"

	"github.com/chazu/anyscalar/internal/config"
	"github.com/chazu/anyscalar/internal/selfcheck"
	"github.com/chazu/anyscalar/scalar"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("anyscalar", flag.ContinueOnError)
	fs.SetOutput(stderr)
	verbose := fs.Bool("v", false, "Verbose output")
	configPath := fs.String("config", "", "Path to anyscalar.toml (default: search upward from the working directory)")

	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: anyscalar [options] <command>\n\n")
		fmt.Fprintf(stderr, "Commands:\n")
		fmt.Fprintf(stderr, "  kinds   List the supported kinds and their Go types\n")
		fmt.Fprintf(stderr, "  check   Run the scalar self-check\n\n")
		fmt.Fprintf(stderr, "Options:\n")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() != 1 {
		fs.Usage()
		return 2
	}

	cfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(stderr, "Error loading config: %v\n", err)
		return 1
	}

	verbosity := cfg.Log.Verbosity
	if *verbose {
		verbosity++
	}
	commonlog.Configure(verbosity, cfg.LogPath())
	log := commonlog.GetLogger("anyscalar")
	if cfg.Path != "" {
		log.Debugf("using config %s", cfg.Path)
	}

	switch cmd := fs.Arg(0); cmd {
	case "kinds":
		printKinds(stdout, cfg.ShownKinds())
		return 0
	case "check":
		report := selfcheck.Run(log)
		for _, res := range report.Results {
			status := "ok"
			if res.Err != nil {
				status = "FAIL: " + res.Err.Error()
			}
			fmt.Fprintf(stdout, "%-20s %s\n", res.Name, status)
		}
		if report.Failed() > 0 {
			return 1
		}
		return 0
	default:
		fmt.Fprintf(stderr, "Unknown command %q\n", cmd)
		fs.Usage()
		return 2
	}
}

func loadConfig(path string) (*config.Config, error) {
	if path != "" {
		return config.LoadFile(path)
	}
	wd, err := os.Getwd()
	if err != nil {
		return nil, err
	}
	cfg, err := config.FindAndLoad(wd)
	if err != nil {
		return nil, err
	}
	if cfg == nil {
		return config.Default(), nil
	}
	return cfg, nil
}

func printKinds(w io.Writer, kinds []scalar.Kind) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "KIND\tGO TYPE\tBITS")
	for _, k := range kinds {
		fmt.Fprintf(tw, "%s\t%s\t%d\n", k, k.GoType(), k.Bits())
	}
	tw.Flush()
}
