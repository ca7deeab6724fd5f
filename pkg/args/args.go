// Package args resolves the --NAME value arguments a job is started with.
package args

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/spf13/pflag"
)

const (
	JobName        = "JOB_NAME"
	JobID          = "JOB_ID"
	JobRunID       = "JOB_RUN_ID"
	BookmarkOption = "job-bookmark-option"
	TempDir        = "TempDir"

	BookmarkEnable  = "job-bookmark-enable"
	BookmarkDisable = "job-bookmark-disable"
	BookmarkPause   = "job-bookmark-pause"
)

var (
	// ErrMissingArgument is returned when a required option is not given
	ErrMissingArgument = errors.New("missing required argument")
	// ErrInvalidArgument is returned when an option has an unusable value
	ErrInvalidArgument = errors.New("invalid argument")
)

// reserved options are always resolved when present
var reserved = []string{JobID, JobRunID, BookmarkOption, TempDir}

// Options are the resolved job options by name
type Options map[string]string

// Resolve parses argv, the job arguments without the program name, and
// returns the required and reserved options. Arguments that were not
// asked for are ignored.
func Resolve(argv []string, required []string) (Options, error) {
	fs := pflag.NewFlagSet("job", pflag.ContinueOnError)
	fs.ParseErrorsWhitelist.UnknownFlags = true
	fs.SetOutput(io.Discard)
	fs.Usage = func() {}

	names := make([]string, 0, len(required)+len(reserved))
	values := make(map[string]*string)
	for _, name := range append(append([]string{}, required...), reserved...) {
		if _, ok := values[name]; ok {
			continue
		}
		names = append(names, name)
		values[name] = fs.String(name, "", "")
	}

	if err := fs.Parse(argv); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidArgument, err)
	}

	var missing []string
	for _, name := range required {
		if !fs.Changed(name) {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrMissingArgument, strings.Join(dedupe(missing), ", "))
	}

	explicit := explicitValues(argv, values)
	options := make(Options)
	for _, name := range names {
		if !fs.Changed(name) {
			continue
		}
		value := *values[name]
		if strings.HasPrefix(value, "--") && !explicit[name] {
			return nil, fmt.Errorf("%w: --%s needs a value", ErrInvalidArgument, name)
		}
		options[name] = value
	}

	if option, ok := options[BookmarkOption]; ok {
		switch option {
		case BookmarkEnable, BookmarkDisable, BookmarkPause:
		default:
			return nil, fmt.Errorf("%w: %s %q", ErrInvalidArgument, BookmarkOption, option)
		}
	}

	return options, nil
}

// explicitValues reports, per option, whether its last occurrence in argv
// was given in the --NAME=value form. Values are skipped the way the flag
// set consumes them.
func explicitValues(argv []string, values map[string]*string) map[string]bool {
	explicit := make(map[string]bool)
	for i := 0; i < len(argv); i++ {
		arg := argv[i]
		if arg == "--" {
			break
		}
		if !strings.HasPrefix(arg, "-") || arg == "-" {
			continue
		}

		name, _, hasValue := strings.Cut(strings.TrimLeft(arg, "-"), "=")
		if hasValue {
			if _, ok := values[name]; ok && strings.HasPrefix(arg, "--") {
				explicit[name] = true
			}
			continue
		}

		if _, ok := values[name]; ok && strings.HasPrefix(arg, "--") {
			explicit[name] = false
			i++
			continue
		}
		// unknown flags take the next argument unless it is a flag
		if i+1 < len(argv) && !strings.HasPrefix(argv[i+1], "-") {
			i++
		}
	}
	return explicit
}

// Get returns the option value and whether it was given
func (o Options) Get(name string) (string, bool) {
	value, ok := o[name]
	return value, ok
}

// JobName returns the JOB_NAME option
func (o Options) JobName() string {
	return o[JobName]
}

// RunID returns the JOB_RUN_ID option
func (o Options) RunID() string {
	return o[JobRunID]
}

// BookmarkOption returns the bookmark option, job-bookmark-disable when
// it was not given
func (o Options) BookmarkOption() string {
	if option, ok := o[BookmarkOption]; ok {
		return option
	}
	return BookmarkDisable
}

// FromMap renders options as an argv in name order
func FromMap(options map[string]string) []string {
	names := make([]string, 0, len(options))
	for name := range options {
		names = append(names, name)
	}
	sort.Strings(names)

	argv := make([]string, 0, 2*len(names))
	for _, name := range names {
		argv = append(argv, "--"+strings.TrimPrefix(name, "--"), options[name])
	}
	return argv
}

// ServiceArguments returns options keyed the way the managed service
// expects them, with a -- prefix
func ServiceArguments(options map[string]string) map[string]string {
	if len(options) == 0 {
		return nil
	}

	arguments := make(map[string]string, len(options))
	for name, value := range options {
		arguments["--"+strings.TrimPrefix(name, "--")] = value
	}
	return arguments
}

// ParsePairs parses NAME=value pairs given on a command line
func ParsePairs(pairs []string) (map[string]string, error) {
	options := make(map[string]string, len(pairs))
	for _, pair := range pairs {
		name, value, ok := strings.Cut(pair, "=")
		name = strings.TrimPrefix(name, "--")
		if !ok || name == "" {
			return nil, fmt.Errorf("%w: %q is not NAME=value", ErrInvalidArgument, pair)
		}
		options[name] = value
	}
	return options, nil
}

func dedupe(names []string) []string {
	seen := make(map[string]bool, len(names))
	out := names[:0]
	for _, name := range names {
		if !seen[name] {
			seen[name] = true
			out = append(out, name)
		}
	}
	return out
}
