package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	docpdf "github.com/KeithKrenek/google-doc-pdf-converter"
	"github.com/KeithKrenek/google-doc-pdf-converter/internal/config"
	"github.com/KeithKrenek/google-doc-pdf-converter/internal/gdocs"
	"github.com/KeithKrenek/google-doc-pdf-converter/internal/store"
)

// ErrWritePDF indicates the output file could not be written.
var ErrWritePDF = errors.New("failed to write PDF")

// runConvertCmd converts a single document and writes the PDF locally.
func runConvertCmd(args []string, env *Environment) int {
	flags, positional, err := parseConvertFlags(args)
	if err != nil {
		fmt.Fprintln(env.Stderr, err)
		return ExitUsage
	}
	if len(positional) != 1 {
		fmt.Fprintln(env.Stderr, "usage: docpdf convert <doc-url-or-id> [flags]")
		return ExitUsage
	}

	cfg, err := loadConfiguration(flags.config, env)
	if err != nil {
		fmt.Fprintln(env.Stderr, err)
		return exitCodeFor(err)
	}
	if flags.backend != "" {
		cfg.Renderer.Backend = flags.backend
	}

	conv, err := buildConverter(cfg, false)
	if err != nil {
		fmt.Fprintln(env.Stderr, err)
		return exitCodeFor(err)
	}
	defer func() { _ = conv.Close() }()

	result, err := conv.Convert(context.Background(), docpdf.Input{
		DocURL: positional[0],
		Brand:  flags.brand,
	})
	if err != nil {
		fmt.Fprintln(env.Stderr, err)
		return exitCodeFor(err)
	}

	output := flags.output
	if output == "" {
		output = result.Filename
	}
	if err := os.WriteFile(output, result.PDF, 0o640); err != nil {
		fmt.Fprintf(env.Stderr, "%v: %v\n", ErrWritePDF, err)
		return ExitIO
	}

	if flags.verbose {
		fmt.Fprintf(env.Stderr, "Backend: %s\n", conv.Backend())
		fmt.Fprintf(env.Stderr, "Document: %s\n", result.DocumentTitle)
	}
	fmt.Fprintf(env.Stdout, "Created %s\n", output)
	return ExitSuccess
}

// loadConfiguration resolves config with precedence: flags > env > file > defaults.
func loadConfiguration(configFlag string, env *Environment) (*config.Config, error) {
	envCfg := loadEnvConfig()
	warnUnknownEnvVars(env.Stderr)

	path := configFlag
	if path == "" {
		path = envCfg.ConfigPath
	}

	cfg := env.Config
	if path != "" {
		loaded, err := config.LoadConfig(path)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	applyEnvToConfig(cfg, envCfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// converterOptions assembles Converter options from configuration.
// withStore controls whether the object store is attached; the one-shot
// convert command writes its output directly instead.
func converterOptions(cfg *config.Config, withStore bool) ([]docpdf.Option, error) {
	backend, err := docpdf.ParseBackend(cfg.Renderer.Backend)
	if err != nil {
		return nil, err
	}
	timeout, err := cfg.RenderTimeout()
	if err != nil {
		return nil, err
	}

	opts := []docpdf.Option{
		docpdf.WithBackend(backend),
		docpdf.WithTimeout(timeout),
		docpdf.WithFetcher(gdocs.NewClient(cfg.Docs.BaseURL, cfg.Docs.Token)),
	}
	if withStore {
		opts = append(opts, docpdf.WithStore(store.NewFSStore(cfg.Storage.Dir, cfg.Storage.BaseURL)))
	}
	return opts, nil
}

// buildConverter assembles a single Converter from configuration.
func buildConverter(cfg *config.Config, withStore bool) (*docpdf.Converter, error) {
	opts, err := converterOptions(cfg, withStore)
	if err != nil {
		return nil, err
	}
	return docpdf.New(opts...)
}
