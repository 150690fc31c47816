/*
 * micronix - host reconnaissance to privilege-escalation planning problems
 * License: MIT
 */

// Package cli parses the `extract` command line and orchestrates the
// extraction → encoding → PDDL-emission pipeline end to end.
package cli

import (
	"flag"
	"fmt"
)

// Options mirrors the `extract` command's flags.
type Options struct {
	Port int

	SSH     bool
	Target  string
	User    string
	Key     string
	Listen  bool
	Reverse bool

	Name           string
	UnpatchedCVEs  bool

	Version bool
	Help    bool
}

// NewFlagSet builds an isolated FlagSet bound to a fresh Options.
func NewFlagSet() (*flag.FlagSet, *Options) {
	fs := flag.NewFlagSet("micronix", flag.ContinueOnError)
	opts := &Options{}

	fs.BoolVar(&opts.Version, "version", false, "print version and exit")
	fs.BoolVar(&opts.Help, "help", false, "print usage and exit")

	fs.IntVar(&opts.Port, "port", 0, "transport port (SSH, bound listener, or connect-back)")

	fs.BoolVar(&opts.SSH, "ssh", false, "use SSH transport")
	fs.StringVar(&opts.Target, "target", "", "target host (--ssh, --reverse)")
	fs.StringVar(&opts.User, "user", "", "SSH username (--ssh)")
	fs.StringVar(&opts.Key, "key", "", "SSH private key path (--ssh)")
	fs.BoolVar(&opts.Listen, "listen", false, "bind --port and wait for a connect-back shell")
	fs.BoolVar(&opts.Reverse, "reverse", false, "dial --target:--port, where a listener shell waits")

	fs.StringVar(&opts.Name, "name", "", "run name, suffixes persisted blob and output directory")
	fs.BoolVar(&opts.UnpatchedCVEs, "unpatched-cves", false, "match installed binaries against the CVE catalog")

	return fs, opts
}

// Parse parses args and validates the transport selection is unambiguous.
func Parse(args []string) (*Options, error) {
	fs, opts := NewFlagSet()
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if opts.Version || opts.Help {
		return opts, nil
	}

	selected := 0
	if opts.SSH {
		selected++
	}
	if opts.Listen {
		selected++
	}
	if opts.Reverse {
		selected++
	}
	if selected != 1 {
		return nil, fmt.Errorf("exactly one of --ssh, --listen, --reverse must be given")
	}
	if opts.Port == 0 {
		return nil, fmt.Errorf("--port is required")
	}
	if opts.SSH && (opts.Target == "" || opts.User == "") {
		return nil, fmt.Errorf("--ssh requires --target and --user")
	}
	if opts.Reverse && opts.Target == "" {
		return nil, fmt.Errorf("--reverse requires --target")
	}

	return opts, nil
}

// BlobPath returns the persisted-FactsContainer path for this run, honoring
// the optional --name suffix (e.g. extractor_data_prod.pkl).
func (o *Options) BlobPath(base string) string {
	return suffixed(base, o.Name)
}

// OutDir returns the problem-output directory for this run, honoring the
// optional --name suffix (e.g. generated_problems_prod/).
func (o *Options) OutDir(base string) string {
	return suffixed(base, o.Name)
}

func suffixed(base, name string) string {
	if name == "" {
		return base
	}
	return withSuffix(base, name)
}
