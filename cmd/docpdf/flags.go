package main

import (
	"fmt"
	"io"

	flag "github.com/spf13/pflag"
)

// convertFlags holds flags for the convert command.
type convertFlags struct {
	config  string
	output  string
	brand   string
	backend string
	verbose bool
}

// parseConvertFlags parses convert-command flags and returns the positional args.
func parseConvertFlags(args []string) (*convertFlags, []string, error) {
	fs := flag.NewFlagSet("convert", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	f := &convertFlags{}
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.StringVarP(&f.output, "output", "o", "", "output PDF path (default: <document-id>.pdf)")
	fs.StringVarP(&f.brand, "brand", "b", "", "branding string for the cover page")
	fs.StringVar(&f.backend, "backend", "", "rendering backend: flowable, canvas")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "verbose output")

	if err := fs.Parse(args); err != nil {
		return nil, nil, fmt.Errorf("parsing flags: %w", err)
	}
	return f, fs.Args(), nil
}

// serveFlags holds flags for the serve command.
type serveFlags struct {
	config  string
	port    int
	workers int
	backend string
	verbose bool
}

// parseServeFlags parses serve-command flags.
func parseServeFlags(args []string) (*serveFlags, error) {
	fs := flag.NewFlagSet("serve", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	f := &serveFlags{}
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.IntVarP(&f.port, "port", "p", 0, "listen port (overrides config)")
	fs.IntVarP(&f.workers, "workers", "w", 0, "converter pool size (0 = auto)")
	fs.StringVar(&f.backend, "backend", "", "rendering backend: flowable, canvas")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "verbose output")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("parsing flags: %w", err)
	}
	return f, nil
}

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: docpdf <command> [flags] [args]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  convert    Convert a Google Doc to a PDF report")
	fmt.Fprintln(w, "  serve      Run the HTTP conversion service")
	fmt.Fprintln(w, "  doctor     Check environment readiness")
	fmt.Fprintln(w, "  version    Show version information")
	fmt.Fprintln(w, "  help       Show this message")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Convert:")
	fmt.Fprintln(w, "  docpdf convert <doc-url-or-id> [flags]")
	fmt.Fprintln(w, "  -o, --output <path>     Output PDF path")
	fmt.Fprintln(w, "  -b, --brand <s>         Branding string for the cover page")
	fmt.Fprintln(w, "      --backend <s>       Rendering backend: flowable, canvas")
	fmt.Fprintln(w, "  -c, --config <name>     Config file name or path")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Serve:")
	fmt.Fprintln(w, "  docpdf serve [flags]")
	fmt.Fprintln(w, "  -p, --port <n>          Listen port")
	fmt.Fprintln(w, "  -w, --workers <n>       Converter pool size (0 = auto)")
	fmt.Fprintln(w, "      --backend <s>       Rendering backend: flowable, canvas")
	fmt.Fprintln(w, "  -c, --config <name>     Config file name or path")
}
