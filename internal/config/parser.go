package config

import (
	"fmt"
	"io"
	"strings"

	"github.com/alecthomas/kingpin/v2"
)

// Version is injected at build-time with
// -ldflags="-X github.com/eugenenazirov/minigrep/internal/config.Version=$(git describe --tags --always --dirty)"
var Version = "dev"

// argValue records whether a positional argument was supplied, so that an
// explicit empty query is told apart from a missing one.
type argValue struct {
	value string
	set   bool
}

func (a *argValue) Set(value string) error {
	a.value = value
	a.set = true
	return nil
}

func (a *argValue) String() string {
	return a.value
}

func (a *argValue) ptr() *string {
	if !a.set {
		return nil
	}
	v := a.value
	return &v
}

// ExitError is returned when a flag such as --help or --version has been
// handled and the process should stop with Code.
type ExitError struct {
	Code int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("exit requested with status %d", e.Code)
}

// valueFlags take a separate value; boolFlags do not. Anything else that is
// not after "--" is a positional argument.
var (
	valueFlags = map[string]bool{"--config": true, "--log-level": true}
	boolFlags  = map[string]bool{
		"-i": true, "--ignore-case": true, "--no-ignore-case": true,
		"-h": true, "--help": true, "--help-long": true, "--help-man": true,
		"--version": true,
	}
)

// Parser turns process arguments into a Config.
type Parser struct {
	app        *kingpin.Application
	configFile *string
	ignoreCase *bool
	logLevel   *string
	query      argValue
	filename   argValue
	lookupEnv  LookupEnvFunc
	exit       *ExitError
}

// NewParser declares the command line. Usage and parse errors are written to w.
func NewParser(w io.Writer, lookupEnv LookupEnvFunc) *Parser {
	p := &Parser{
		app:       kingpin.New("minigrep", "Prints every line of a file that contains a query string."),
		lookupEnv: lookupEnv,
	}
	p.app.UsageWriter(w).ErrorWriter(w)
	p.app.Terminate(func(code int) {
		if p.exit == nil {
			p.exit = &ExitError{Code: code}
		}
	})
	p.app.Version(Version)
	p.app.HelpFlag.Short('h')

	p.configFile = p.app.Flag("config", "Path to YAML configuration file").String()
	p.ignoreCase = p.app.Flag("ignore-case", "Match without regard to case (also enabled by "+CaseInsensitiveEnv+")").Short('i').Bool()
	p.logLevel = p.app.Flag("log-level", "Diagnostic log level (debug, info, warn, error)").String()
	p.app.Arg("query", "String to search for, taken literally. Use -- before a query that equals one of the flags").SetValue(&p.query)
	p.app.Arg("filename", "File to search").SetValue(&p.filename)

	return p
}

// Parse resolves a Config from args. The first element is the program name
// and is discarded.
func (p *Parser) Parse(args []string) (Config, error) {
	if len(args) > 0 {
		args = args[1:]
	}

	_, err := p.app.Parse(splitArgs(args))
	if p.exit != nil {
		return Config{}, p.exit
	}
	if err != nil {
		return Config{}, fmt.Errorf("parse arguments: %w", err)
	}

	overrides := &CLIOverrides{
		ConfigFile: *p.configFile,
		Query:      p.query.ptr(),
		Filename:   p.filename.ptr(),
	}

	if *p.ignoreCase {
		overrides.IgnoreCase = p.ignoreCase
	}

	if *p.logLevel != "" {
		overrides.LogLevel = p.logLevel
	}

	return Load(overrides, p.lookupEnv)
}

// splitArgs moves known flags ahead of a "--" separator and everything else
// after it, so positional values reach the parser literally. Without this,
// kingpin would expand "@file" tokens and reject queries such as "-v".
func splitArgs(args []string) []string {
	flags := make([]string, 0, len(args)+1)
	var positionals []string

	for i := 0; i < len(args); i++ {
		arg := args[i]
		name, _, hasValue := strings.Cut(arg, "=")
		switch {
		case arg == "--":
			positionals = append(positionals, args[i+1:]...)
			i = len(args)
		case boolFlags[arg]:
			flags = append(flags, arg)
		case valueFlags[name] && hasValue:
			flags = append(flags, arg)
		case valueFlags[arg] && i+1 < len(args):
			// Joined so that a value starting with "@" is not expanded.
			flags = append(flags, arg+"="+args[i+1])
			i++
		case valueFlags[arg]:
			// Missing value; let kingpin report it.
			flags = append(flags, arg)
		default:
			positionals = append(positionals, arg)
		}
	}

	return append(append(flags, "--"), positionals...)
}
