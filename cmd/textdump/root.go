package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/grafana/textview/internal/errext"
	"github.com/grafana/textview/internal/errext/exitcodes"
	"github.com/grafana/textview/internal/textlog"
	"github.com/grafana/textview/textiter"
)

// flags holds the values of textdump's command-line flags, grouped the
// way this module's teacher groups its own CLI flags into a single
// struct rather than scattering package-level vars.
type flags struct {
	encoding  string
	reverse   bool
	assumeBOM bool
	logFormat string
	verbose   bool
}

// run executes textdump against fs, the way the teacher's globalState
// groups the real os.Stdout/os.Stderr/afero.Fs behind a single set of
// parameters so cmd/textdump's entry point (main.go, using
// afero.NewOsFs()) and its tests (using afero.NewMemMapFs()) share the
// same code path.
func run(args []string, fs afero.Fs, stdout, stderr io.Writer) exitcodes.ExitCode {
	f := &flags{}
	var code exitcodes.ExitCode

	cmd := &cobra.Command{
		Use:           "textdump [flags] file",
		Short:         "Print the characters of an encoded text file, one per line",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			level := logrus.InfoLevel
			if f.verbose {
				level = logrus.DebugLevel
			}
			logger := textlog.New(stderr, textlog.Format(f.logFormat), level)
			err := dump(fs, args[0], f, stdout, logger)
			if err != nil {
				errext.Fprint(logger, err)
			}
			return err
		},
	}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.SetArgs(args)
	cmd.PersistentFlags().AddFlagSet(flagSet(f))

	if err := cmd.Execute(); err != nil {
		var hasCode errext.HasExitCode
		if errors.As(err, &hasCode) {
			code = hasCode.ExitCode()
		} else {
			code = exitcodes.GenericError
		}
		return code
	}
	return 0
}

// flagSet builds the pflag.FlagSet backing f, the way the teacher's
// rootCmdPersistentFlagSet builds its own global flag set: one function
// returning one *pflag.FlagSet, rather than scattering flag
// registration calls across the command's construction.
func flagSet(f *flags) *pflag.FlagSet {
	fs := pflag.NewFlagSet("textdump", pflag.ContinueOnError)
	fs.StringVar(&f.encoding, "encoding", string(encodingUTF8),
		fmt.Sprintf("text encoding: one of %v", encodingNames()))
	fs.BoolVar(&f.reverse, "reverse", false, "iterate from the end of the file backward")
	fs.BoolVar(&f.assumeBOM, "assume-bom", false,
		"for utf-8-bom/utf-16-bom, assume a byte-order mark has already been consumed rather than expecting one at the start of the file")
	fs.StringVar(&f.logFormat, "log-format", "text", "log output format: text or json")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "enable debug logging")
	return fs
}

func dump(fs afero.Fs, path string, f *flags, stdout io.Writer, logger logrus.FieldLogger) error {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return errext.WithExitCodeIfNone(
			errext.WithHint(err, "check that the path exists and is readable"),
			exitcodes.IOFailure,
		)
	}

	driver, err := newDriver(encoding(f.encoding), data, f.reverse, f.assumeBOM)
	if err != nil {
		return err
	}

	var count int
	for driver.Next() {
		ch := driver.Character()
		fmt.Fprintf(stdout, "U+%04X\n", ch.CodePoint())
		count++
	}
	logger.WithField("characters", count).Debug("finished iterating")

	if derr, ok := driver.Err().(*textiter.DecodeError); ok {
		return errext.WithExitCodeIfNone(
			errext.WithHint(derr, fmt.Sprintf("decoding stopped after %d character(s)", count)),
			exitcodes.DecodeFailure,
		)
	}
	return nil
}
