package cmd

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/log"
	"github.com/mark3labs/gemini-cli/internal/config"
	"github.com/mark3labs/gemini-cli/internal/gemini"
	"github.com/mark3labs/gemini-cli/internal/invocation"
	"github.com/mark3labs/gemini-cli/internal/ui"
	"github.com/spf13/cobra"
)

// newRootCmd builds the gemini-cli command. Flag parsing is disabled so that
// every argument, including ones that look like flags, reaches
// invocation.Parse as prompt text.
func newRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "gemini-cli <prompt words...> [--api-key <key>]",
		Short: "Send a prompt to Google's Gemini API and print the response",
		Long: `gemini-cli sends its arguments, joined with spaces, as a single prompt to
the Gemini API and prints the response.

The API key is taken from --api-key, which may appear anywhere among the
prompt words, or from the GEMINI_API_KEY environment variable.

Optional settings (model, fallback-model, base-url, debug, markdown, spinner)
are read from .gemini-cli.yml in the current or home directory, the file named
by GEMINI_CLI_CONFIG, or GEMINI_CLI_* environment variables.`,
		Args:               cobra.ArbitraryArgs,
		DisableFlagParsing: true,
		SilenceErrors:      true,
		SilenceUsage:       true,
		CompletionOptions:  cobra.CompletionOptions{DisableDefaultCmd: true},
		RunE:               runGemini,
	}
}

// GetRootCommand returns the root command with the version set.
func GetRootCommand(v string) *cobra.Command {
	root := newRootCmd()
	root.Version = v
	return root
}

// Execute runs gemini-cli with the process arguments. Any error has already
// been reported on stdout when it returns; the caller only sets the exit code.
func Execute(ctx context.Context, version string) error {
	root := GetRootCommand(version)
	return fang.Execute(ctx, root,
		fang.WithVersion(version),
		fang.WithoutManpage(),
		fang.WithoutCompletions(),
		fang.WithErrorHandler(func(_ io.Writer, _ fang.Styles, err error) {
			RenderError(root.OutOrStdout(), err)
		}),
	)
}

func runGemini(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	out := cmd.OutOrStdout()

	inv, err := invocation.Parse(args)
	if err != nil {
		return err
	}

	configPath, err := config.Init("")
	if err != nil {
		return err
	}
	settings := config.Load()
	logger := newLogger(cmd.ErrOrStderr(), settings.Debug)
	if configPath != "" {
		logger.Debug("loaded config", "path", configPath)
	}

	apiKey, err := config.ResolveAPIKey(inv.APIKey, os.Getenv)
	if err != nil {
		return err
	}
	if inv.HasAPIKey && inv.APIKey != "" {
		logger.Debug("using API key from " + invocation.APIKeyFlag)
	} else {
		logger.Debug("using API key from " + config.APIKeyEnv)
	}

	client, err := gemini.NewClient(ctx, gemini.Config{
		APIKey:  apiKey,
		BaseURL: settings.BaseURL,
		Logger:  logger,
	})
	if err != nil {
		return err
	}

	model, err := client.SelectModel(ctx, settings.Model, settings.FallbackModel)
	if err != nil {
		return err
	}
	logger.Debug("generating", "model", model.Name(), "prompt_chars", len(inv.Prompt))

	fmt.Fprintln(out, ui.ThinkingMessage)

	var spinner *ui.Spinner
	if f, ok := cmd.ErrOrStderr().(*os.File); ok && settings.Spinner && ui.IsTerminal(f) {
		spinner = ui.NewSpinner(f, "waiting for "+model.Name())
		spinner.Start()
	}
	text, err := model.Generate(ctx, inv.Prompt)
	if spinner != nil {
		spinner.Stop()
	}
	if err != nil {
		return err
	}

	if f, ok := out.(*os.File); ok && settings.Markdown && ui.IsTerminal(f) {
		rendered, rerr := ui.RenderMarkdown(text, ui.TerminalWidth(f))
		if rerr != nil {
			logger.Warn("markdown rendering failed, printing raw text", "err", rerr)
		}
		text = rendered
	}

	return ui.Banner(out, text)
}

// newLogger returns a stderr logger; debug lowers the level from warn.
func newLogger(w io.Writer, debug bool) *log.Logger {
	level := log.WarnLevel
	if debug {
		level = log.DebugLevel
	}
	return log.NewWithOptions(w, log.Options{
		Prefix: "gemini-cli",
		Level:  level,
	})
}
