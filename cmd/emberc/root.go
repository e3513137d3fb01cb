package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/emberlang/emberc/bytecode"
	"github.com/emberlang/emberc/compiler"
	"github.com/emberlang/emberc/errz"
	"github.com/emberlang/emberc/vm"
	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/mitchellh/go-homedir"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile string
	red     = color.New(color.FgRed).SprintfFunc()
	log     zerolog.Logger
)

func init() {
	cobra.OnInitialize(initConfig)
	viper.SetEnvPrefix("emberc")

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Config file (default is $HOME/.emberc.yaml)")
	rootCmd.PersistentFlags().StringP("code", "c", "", "Source code to compile")
	rootCmd.PersistentFlags().Bool("stdin", false, "Read source from stdin")
	rootCmd.PersistentFlags().Bool("no-color", false, "Disable colored diagnostics")
	rootCmd.PersistentFlags().Bool("verbose", false, "Log compilation steps to stderr")
	rootCmd.PersistentFlags().BoolP("disassemble", "d", false, "Print the compiled bytecode instead of just reporting success")

	viper.BindPFlag("code", rootCmd.PersistentFlags().Lookup("code"))
	viper.BindPFlag("stdin", rootCmd.PersistentFlags().Lookup("stdin"))
	viper.BindPFlag("no-color", rootCmd.PersistentFlags().Lookup("no-color"))
	viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	viper.BindPFlag("disassemble", rootCmd.PersistentFlags().Lookup("disassemble"))
	viper.AutomaticEnv()
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := homedir.Dir()
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		viper.AddConfigPath(home)
		viper.SetConfigName(".emberc")
	}
	viper.ReadInConfig()
}

func isTerminalIO() bool {
	stdout := os.Stdout.Fd()
	return isatty.IsTerminal(stdout) || isatty.IsCygwinTerminal(stdout)
}

func fatal(msg string) {
	fmt.Fprintln(os.Stderr, msg)
	os.Exit(1)
}

var rootCmd = &cobra.Command{
	Use:   "emberc [path]",
	Short: "Compile Ember source to bytecode",
	Args:  cobra.MaximumNArgs(1),

	Run: func(cmd *cobra.Command, args []string) {
		if viper.GetBool("no-color") || !isTerminalIO() {
			color.NoColor = true
		}
		level := zerolog.WarnLevel
		if viper.GetBool("verbose") {
			level = zerolog.DebugLevel
		}
		log = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}).
			Level(level).With().Timestamp().Logger()

		source, err := getSource(cmd, args)
		if err != nil {
			fatal(red(err.Error()))
		}

		log.Debug().Int("bytes", len(source)).Msg("source loaded")
		start := time.Now()

		machine := vm.NewMachine()
		var diagnostics bytes.Buffer
		sink := errz.NewSink().WithWriter(&diagnostics)
		fn, err := compiler.CompileWithSink(machine, source, sink)

		log.Debug().Dur("elapsed", time.Since(start)).Msg("compilation finished")

		if diagnostics.Len() > 0 {
			fmt.Fprint(os.Stderr, red("%s", diagnostics.String()))
		}
		if err != nil {
			os.Exit(1)
		}

		if viper.GetBool("disassemble") {
			printTree(fn, os.Stdout)
		}
	},
}

// Execute runs the root command, exiting the process on error.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fatal(red(err.Error()))
	}
}

// getSource resolves the compiler's input from exactly one of: --code,
// --stdin, or a positional file path.
func getSource(cmd *cobra.Command, args []string) (string, error) {
	codeSet := cmd.Flags().Lookup("code").Changed
	stdinSet := viper.GetBool("stdin")
	pathSupplied := len(args) > 0

	count := 0
	for _, set := range []bool{codeSet, stdinSet, pathSupplied} {
		if set {
			count++
		}
	}
	if count > 1 {
		return "", errors.New("multiple input sources specified: use only one of --code, --stdin, or a file path")
	}
	if count == 0 {
		return "", errors.New("no input provided: use --code, --stdin, or a file path")
	}

	if stdinSet {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", err
		}
		return string(data), nil
	}
	if pathSupplied {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return "", err
		}
		return string(data), nil
	}
	return viper.GetString("code"), nil
}

// printTree disassembles fn and, recursively, every nested function found in
// its constant pool, each under a small header naming its index in the
// enclosing function's constant pool so method and function-literal bodies
// are distinguishable in the output.
func printTree(fn *bytecode.Function, w io.Writer) {
	fmt.Fprintf(w, "== %s ==\n", fn.String())
	bytecode.Print(fn, bytecode.Disassemble(fn), w)
	for i, c := range fn.Constants {
		if nested, ok := c.(*bytecode.Function); ok {
			fmt.Fprintf(w, "\n-- constant %d --\n", i)
			printTree(nested, w)
		}
	}
}
