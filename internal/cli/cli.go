// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package cli implements the kfut command, a tool for inspecting API
// payloads with the same decoding path the client uses.
package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/joeycumines/logiface"
	"github.com/joeycumines/stumpy"
	"github.com/spf13/cobra"

	"code.hybscloud.com/kfut"
	"code.hybscloud.com/kfut/meta"
)

// EnvDebug enables debug logging when set to a non-empty value.
const EnvDebug = "KFUT_DEBUG"

// Exit codes.
const (
	ExitOK      = 0
	ExitGeneral = 1
	ExitUsage   = 2
	ExitDecode  = 4
	ExitIO      = 5
)

// Env holds the dependencies of the commands.
type Env struct {
	Stdout   io.Writer
	Stderr   io.Writer
	Getenv   func(string) string
	ReadFile func(string) ([]byte, error)
	Open     func(string) (io.ReadCloser, error)
}

// DefaultEnv returns an Env backed by the process.
func DefaultEnv() *Env {
	return &Env{
		Stdout:   os.Stdout,
		Stderr:   os.Stderr,
		Getenv:   os.Getenv,
		ReadFile: os.ReadFile,
		Open: func(name string) (io.ReadCloser, error) {
			return os.Open(name) // #nosec G304 -- path is a user argument
		},
	}
}

// NewRootCmd builds the kfut command tree.
func NewRootCmd(env *Env) *cobra.Command {
	var debug bool
	root := &cobra.Command{
		Use:           "kfut",
		Short:         "Decode kube API payloads the way the client does",
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if debug || env.Getenv(EnvDebug) != "" {
				kfut.SetLogger(newLogger(env.Stderr))
			}
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			kfut.SetLogger(nil)
		},
	}
	root.PersistentFlags().BoolVar(&debug, "debug", false, "log raw payloads before decoding")

	root.AddCommand(decodeCmd(env), statusCmd(env), linesCmd(env))
	return root
}

func newLogger(w io.Writer) *logiface.Logger[logiface.Event] {
	return stumpy.L.New(
		stumpy.L.WithStumpy(stumpy.WithWriter(w)),
		stumpy.L.WithLevel(logiface.LevelDebug),
	).Logger()
}

// readPayload returns a future of the file contents. Read failures are
// I/O errors.
func readPayload(env *Env, name string) *kfut.Future[[]byte] {
	b, err := env.ReadFile(name)
	return kfut.Resolve(b, err)
}

func decodeCmd(env *Env) *cobra.Command {
	return &cobra.Command{
		Use:   "decode FILE",
		Short: "Decode a JSON payload and print it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := kfut.Wait[any](kfut.AndThen(readPayload(env, args[0]), kfut.ParseJSON[any]))
			if err != nil {
				return err
			}
			out, err := json.MarshalIndent(v, "", "  ")
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(env.Stdout, string(out))
			return err
		},
	}
}

func statusCmd(env *Env) *cobra.Command {
	return &cobra.Command{
		Use:   "status FILE",
		Short: "Decode a Status payload and print the error it converts to",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := kfut.Wait[any](kfut.AndThen(readPayload(env, args[0]), kfut.ParseJSONAsErr[meta.Status, any]))
			s, ok := meta.As(err)
			if !ok {
				return err
			}
			_, werr := fmt.Fprintf(env.Stdout, "%s\ncode=%d reason=%s\n", err, s.Code, s.Reason)
			return werr
		},
	}
}

func linesCmd(env *Env) *cobra.Command {
	return &cobra.Command{
		Use:   "lines FILE",
		Short: "Decode newline-delimited JSON frames, one per line",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := env.Open(args[0])
			if err != nil {
				return kfut.IOError(err)
			}
			defer f.Close()
			frames := kfut.DecodeJSON[any](kfut.Lines(f))
			for {
				v, err := kfut.WaitNext[any](frames)
				if err == io.EOF {
					return nil
				}
				if err != nil {
					return err
				}
				out, err := json.Marshal(v)
				if err != nil {
					return err
				}
				if _, err := fmt.Fprintln(env.Stdout, string(out)); err != nil {
					return err
				}
			}
		},
	}
}

// ExitCode maps an error returned by the command tree to an exit code.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case kfut.IsDecode(err):
		return ExitDecode
	case kfut.IsIO(err):
		return ExitIO
	case isUsageError(err):
		return ExitUsage
	}
	return ExitGeneral
}

// usageErrorPatterns are substrings of cobra's argument and flag errors.
// Cobra does not export typed errors for these.
var usageErrorPatterns = []string{
	"unknown command",
	"unknown flag",
	"unknown shorthand",
	"flag needs an argument",
	"invalid argument",
	"accepts ",
	"requires at least",
	"requires at most",
}

func isUsageError(err error) bool {
	msg := err.Error()
	for _, p := range usageErrorPatterns {
		if strings.Contains(msg, p) {
			return true
		}
	}
	return false
}
