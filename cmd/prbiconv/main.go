// Command prbiconv converts binary data to and from pricklybird
// words. It reads all of standard in and writes the result to
// standard out.
//
// Conversion from words to bytes is the default, and can be selected
// explicitly with -b:
//
//	$ echo flea-flux-full | prbiconv -b | xxd -p
//	4243
//
// Use -p to convert bytes to words:
//
//	$ echo 4243 | xxd -r -p | prbiconv -p
//	flea-flux-full
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/term"
	"pricklybird.dev/pricklybird"
)

func main() {
	if err := run(os.Stdout, os.Stderr, os.Stdin, os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "prbiconv: %v\n", err)
		var cerr *ConfigError
		if errors.As(err, &cerr) {
			os.Exit(2)
		}
		os.Exit(1)
	}
}

// ConfigError reports invalid command line arguments.
type ConfigError struct {
	Msg string
}

func (e *ConfigError) Error() string {
	return "invalid arguments: " + e.Msg
}

type options struct {
	decode  bool
	encode  bool
	qr      bool
	newline bool
	verbose bool
}

func run(stdout, stderr io.Writer, stdin io.Reader, args []string) error {
	cmd := newCommand(stdout, stderr, stdin)
	cmd.SetArgs(args)
	return cmd.Execute()
}

func newCommand(stdout, stderr io.Writer, stdin io.Reader) *cobra.Command {
	var opts options
	cmd := &cobra.Command{
		Use:           "prbiconv",
		Short:         "Convert binary data to and from pricklybird words",
		Version:       pricklybird.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				return &ConfigError{Msg: fmt.Sprintf("unexpected argument %q", args[0])}
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("newline") {
				opts.newline = isTerminal(stdout)
			}
			log := newLogger(opts.verbose, stderr)
			defer log.Sync()
			return convert(log, opts, stdout, stderr, stdin)
		},
	}
	cmd.SetIn(stdin)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return &ConfigError{Msg: err.Error()}
	})

	flags := cmd.Flags()
	flags.BoolVarP(&opts.decode, "convert-from-pricklybird", "b", false, "convert pricklybird words to bytes (default)")
	flags.BoolVarP(&opts.encode, "convert-to-pricklybird", "p", false, "convert bytes to pricklybird words")
	flags.BoolVar(&opts.qr, "qr", false, "with -p, also print the words as a QR code to standard error")
	flags.BoolVarP(&opts.newline, "newline", "n", false, "end encoded output with a newline (default when writing to a terminal)")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "log conversion details to standard error")
	return cmd
}

func convert(log *zap.Logger, opts options, stdout, stderr io.Writer, stdin io.Reader) error {
	if opts.encode && opts.decode {
		return &ConfigError{Msg: "can not convert from and to pricklybird at the same time"}
	}
	if opts.qr && !opts.encode {
		return &ConfigError{Msg: "--qr requires -p"}
	}
	in, err := io.ReadAll(stdin)
	if err != nil {
		return fmt.Errorf("reading input: %w", err)
	}
	if opts.encode {
		words := pricklybird.Encode(in)
		log.Debug("encoded", zap.Int("bytes", len(in)), zap.Int("chars", len(words)))
		out := words
		if opts.newline {
			out += "\n"
		}
		if _, err := io.WriteString(stdout, out); err != nil {
			return fmt.Errorf("writing output: %w", err)
		}
		if opts.qr && words != "" {
			return writeQR(stderr, words)
		}
		return nil
	}
	data, err := pricklybird.Decode(string(in))
	if err != nil {
		log.Debug("decoding failed", zap.Int("chars", len(in)), zap.Error(err))
		return err
	}
	log.Debug("decoded", zap.Int("chars", len(in)), zap.Int("bytes", len(data)))
	if _, err := stdout.Write(data); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}
	return nil
}

func newLogger(verbose bool, w io.Writer) *zap.Logger {
	if !verbose {
		return zap.NewNop()
	}
	enc := zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig())
	return zap.New(zapcore.NewCore(enc, zapcore.AddSync(w), zapcore.DebugLevel))
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
