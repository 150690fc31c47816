/*
 * micronix - host reconnaissance to privilege-escalation planning problems
 * License: MIT
 */

// Package extractor drives the fixed sequence of remote commands that turn
// a live shell session into a model.FactsContainer.
package extractor

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/nixrecon/micronix/catalog"
	"github.com/nixrecon/micronix/config"
	"github.com/nixrecon/micronix/model"
	"github.com/nixrecon/micronix/transport"
	"github.com/nixrecon/micronix/utils"
)

// Options configures a single extraction run.
type Options struct {
	PoIDirs          []string
	StatBatchSize    int
	FileBatchSize    int
	LddBatchSize     int
	MaxRetries       int
	InitialBackoff   time.Duration
	UnpatchedCVEs    bool // if false, CVE matching is skipped entirely
}

// DefaultOptions returns the Options matching the command-surface table.
func DefaultOptions() Options {
	return Options{
		PoIDirs:        config.PoIDirs,
		StatBatchSize:  config.DefaultStatBatchSize,
		FileBatchSize:  config.DefaultFileBatchSize,
		LddBatchSize:   config.DefaultLddBatchSize,
		MaxRetries:     config.DefaultMaxRetries,
		InitialBackoff: config.DefaultInitialBackoff,
	}
}

// Extractor orchestrates the command sequence against a Transport.
type Extractor struct {
	tp     transport.Transport
	logger *zap.Logger
	opts   Options
}

// New builds an Extractor bound to tp.
func New(tp transport.Transport, logger *zap.Logger, opts Options) *Extractor {
	return &Extractor{tp: tp, logger: logger, opts: opts}
}

// send wraps Transport.Send with bounded retries; a failure after retries
// are exhausted is ErrTransportUnreachable.
func (e *Extractor) send(ctx context.Context, cmd string) (transport.CommandResult, error) {
	res, err := utils.Retry(ctx, e.logger, e.opts.MaxRetries, e.opts.InitialBackoff, func(ctx context.Context) (transport.CommandResult, error) {
		return e.tp.Send(ctx, cmd)
	})
	if err != nil {
		return transport.CommandResult{}, fmt.Errorf("%w: %s: %v", ErrTransportUnreachable, cmd, err)
	}
	return res, nil
}

// Run drives the full command sequence and returns a populated
// FactsContainer, or the first error from a required step (identity, users,
// groups, executables). Errors from the later steps, transport failures
// included, are logged and do not abort the run. cat may be nil when
// opts.UnpatchedCVEs is false; CVE matching is skipped in that case.
func (e *Extractor) Run(ctx context.Context, cat *catalog.Catalog) (*model.FactsContainer, error) {
	fc := model.NewFactsContainer()

	if err := e.extractIdentity(ctx, fc); err != nil {
		return nil, err
	}
	if err := e.extractUsers(ctx, fc); err != nil {
		return nil, err
	}
	if err := e.extractGroups(ctx, fc); err != nil {
		return nil, err
	}
	if err := e.extractExecutables(ctx, fc); err != nil {
		return nil, err
	}
	if err := e.resolveSharedObjects(ctx, fc); err != nil {
		e.logger.Warn("shared-object resolution failed, continuing", zap.Error(err))
	}

	// Optional steps: any error here, a transport failure included, is logged
	// and leaves the field empty instead of aborting the run.
	if err := e.extractWritable(ctx, fc); err != nil {
		e.logger.Warn("writable enumeration failed, continuing", zap.Error(err))
	}
	if err := e.extractSetugid(ctx, fc); err != nil {
		e.logger.Warn("setugid enumeration failed, continuing", zap.Error(err))
	}
	if err := e.extractCron(ctx, fc); err != nil {
		e.logger.Warn("cron extraction failed, continuing", zap.Error(err))
	}
	if err := e.extractSystemd(ctx, fc); err != nil {
		e.logger.Warn("systemd extraction failed, continuing", zap.Error(err))
	}
	if err := e.extractRCFiles(ctx, fc); err != nil {
		e.logger.Warn("rcfile extraction failed, continuing", zap.Error(err))
	}

	if e.opts.UnpatchedCVEs && cat != nil {
		e.matchCVEs(ctx, fc, cat)
	}

	return fc, nil
}
