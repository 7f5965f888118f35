package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"codeberg.org/snonux/readablepassword/internal/audio"
	"codeberg.org/snonux/readablepassword/internal/batch"
	"codeberg.org/snonux/readablepassword/internal/cli"
	"codeberg.org/snonux/readablepassword/internal/logging"
	"codeberg.org/snonux/readablepassword/internal/models"
	"codeberg.org/snonux/readablepassword/internal/processor"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// run executes the command line and returns the process exit code. Errors
// are printed by cobra as "Error: <message>".
func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	// Create flags instance
	flags := cli.NewFlags()

	// Create root command
	rootCmd := cli.CreateRootCommand(flags)
	rootCmd.SetArgs(args)
	rootCmd.SetIn(stdin)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	// Read the config file once flags are parsed
	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		return cli.InitConfig(flags.CfgFile)
	}

	// Set the run function
	rootCmd.RunE = func(cmd *cobra.Command, args []string) error {
		return runCommand(cmd, args, flags)
	}

	// Execute command
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		return 1
	}
	return 0
}

func runCommand(cmd *cobra.Command, args []string, flags *cli.Flags) error {
	cli.ApplyConfig(flags)

	logger, err := logging.New(flags.LogLevel, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	logging.SetLogger(logger)
	defer logger.Sync()

	if used := viper.ConfigFileUsed(); used != "" {
		logger.Debug("Using config file", zap.String("path", used))
	}

	// Flags are valid from here on, errors are no longer usage errors
	cmd.SilenceUsage = true
	ctx := cmd.Context()

	// Handle --table flag
	if flags.Table {
		return processor.WriteTable(cmd.OutOrStdout(), flags.OutputFormat)
	}

	// Handle --list-models flag
	if flags.ListModels {
		lister := models.NewLister(cli.GetOpenAIKey())
		return lister.ListAvailableModels(ctx, cmd.OutOrStdout())
	}

	proc, err := processor.NewProcessor(flags, cmd.OutOrStdout(), cmd.InOrStdin())
	if err != nil {
		return err
	}

	if flags.Speak {
		speaker, err := audio.NewSpeaker(ctx, cli.AudioConfig(flags), flags.AudioFallback)
		if err != nil {
			return fmt.Errorf("failed to set up speech: %w", err)
		}
		logger.Info("Speech enabled", zap.String("provider", speaker.Name()))
		proc.SetSpeaker(speaker)
	}

	// Handle --prompt flag
	if flags.Prompt {
		if len(args) > 0 {
			return fmt.Errorf("--prompt reads from the terminal and takes no file arguments")
		}
		secret, err := batch.ReadSecret(int(os.Stdin.Fd()), cmd.ErrOrStderr(), "Secret: ")
		if err != nil {
			return err
		}
		return proc.ProcessSecret(ctx, secret)
	}

	return proc.ProcessSources(ctx, args)
}
