/*
 * micronix - host reconnaissance to privilege-escalation planning problems
 * License: MIT
 */
package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"time"

	"go.uber.org/zap"

	"github.com/nixrecon/micronix/catalog"
	"github.com/nixrecon/micronix/config"
	"github.com/nixrecon/micronix/encoder"
	"github.com/nixrecon/micronix/extractor"
	"github.com/nixrecon/micronix/model"
	"github.com/nixrecon/micronix/pddlwriter"
	"github.com/nixrecon/micronix/persist"
	"github.com/nixrecon/micronix/transport"
	"github.com/nixrecon/micronix/version"
)

// exitFailure is returned for validation, transport, and missing-file
// errors alike: -1 is not a portable process exit status, so this build
// maps "fatal" onto the POSIX convention of any nonzero code instead.
const exitFailure = 1

var domainDefRe = regexp.MustCompile(`\(define\s+\(domain\s+([^\s()]+)\s*\)`)

// Run executes the `extract` subcommand end to end: load-or-extract,
// encode, emit one .pddl file per problem. Returns the process exit code.
func Run(ctx context.Context, opts *Options, logger *zap.Logger) int {
	if opts.Help {
		printUsage()
		return 0
	}
	if opts.Version {
		fmt.Println(version.GetCurrentVersion().String())
		return 0
	}

	blobPath := opts.BlobPath(config.DefaultExtractorBlob)
	outDir := opts.OutDir(config.DefaultOutDir)

	fc, err := loadOrExtract(ctx, opts, blobPath, logger)
	if err != nil {
		logger.Error("extraction failed", zap.Error(err))
		return exitFailure
	}

	cat, err := catalog.Load(config.DefaultCapabilitiesPath, config.DefaultCVEPath)
	if err != nil {
		logger.Error("catalog load failed", zap.Error(err))
		return exitFailure
	}

	enc := encoder.New(cat)
	_, problems := enc.Encode(fc)

	if err := os.MkdirAll(outDir, 0o755); err != nil {
		logger.Error("failed to create output directory", zap.String("dir", outDir), zap.Error(err))
		return exitFailure
	}

	domainName := domainNameFromPath(config.DefaultDomainPath)
	for name, problem := range problems {
		text := pddlwriter.Render(domainName, problem)
		outPath := filepath.Join(outDir, name+".pddl")
		if err := os.WriteFile(outPath, []byte(text), 0o644); err != nil {
			logger.Error("failed to write problem file", zap.String("path", outPath), zap.Error(err))
			return exitFailure
		}
	}

	logger.Info("extraction complete", zap.Int("problems", len(problems)), zap.String("out_dir", outDir))
	return 0
}

// loadOrExtract loads a persisted FactsContainer if one exists at blobPath;
// otherwise it dials the requested transport, runs the extractor, and
// persists the result for next time.
func loadOrExtract(ctx context.Context, opts *Options, blobPath string, logger *zap.Logger) (*model.FactsContainer, error) {
	if persist.Exists(blobPath) {
		logger.Info("loading persisted facts", zap.String("path", blobPath))
		return persist.Load(blobPath)
	}

	tp, err := dialTransport(opts, logger)
	if err != nil {
		return nil, fmt.Errorf("dial transport: %w", err)
	}
	defer tp.Close()

	extractOpts := extractor.DefaultOptions()
	extractOpts.UnpatchedCVEs = opts.UnpatchedCVEs

	var cat *catalog.Catalog
	if opts.UnpatchedCVEs {
		cat, err = catalog.Load(config.DefaultCapabilitiesPath, config.DefaultCVEPath)
		if err != nil {
			return nil, err
		}
	}

	ex := extractor.New(tp, logger, extractOpts)
	fc, err := ex.Run(ctx, cat)
	if err != nil {
		return nil, fmt.Errorf("extraction: %w", err)
	}

	if err := persist.Save(blobPath, fc); err != nil {
		logger.Warn("failed to persist facts blob, continuing", zap.Error(err))
	}

	return fc, nil
}

func dialTransport(opts *Options, logger *zap.Logger) (transport.Transport, error) {
	switch {
	case opts.SSH:
		return transport.DialSSH(transport.SSHConfig{
			Host:           opts.Target,
			Port:           opts.Port,
			User:           opts.User,
			KeyPath:        opts.Key,
			ConnectTimeout: 10 * time.Second,
		}, logger)
	case opts.Listen:
		return transport.Listen(opts.Port, logger)
	case opts.Reverse:
		return transport.Reverse(opts.Target, opts.Port, logger)
	default:
		return nil, fmt.Errorf("no transport selected")
	}
}

// domainNameFromPath returns the name declared by the domain file's
// `(define (domain NAME)` header, or the file's base name without extension
// when the file cannot be read or has no such header.
func domainNameFromPath(path string) string {
	if data, err := os.ReadFile(path); err == nil {
		if m := domainDefRe.FindSubmatch(data); m != nil {
			return string(m[1])
		}
	}
	base := filepath.Base(path)
	return base[:len(base)-len(filepath.Ext(base))]
}

func printUsage() {
	fmt.Println(`micronix extract --port P (--ssh --target T --user U --key K | --listen | --reverse --target T)
        [--name N] [--unpatched-cves]`)
}
