package cmd

import (
	"context"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/promptloom/promptloom/internal/config"
	"github.com/promptloom/promptloom/internal/container"
	"github.com/promptloom/promptloom/internal/shared/cmdutils"
	"github.com/promptloom/promptloom/internal/shared/stringutils"
)

var (
	querySystem    string
	queryProvider  string
	queryModel     string
	queryPreset    string
	queryNoEnhance bool
	queryUnified   bool
)

var queryCmd = &cobra.Command{
	Use:   "query [text]",
	Short: "Generate text from a prompt",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runQuery,
}

func init() {
	queryCmd.Flags().StringVarP(&querySystem, "system", "s", "", "System prompt; may contain {question}")
	queryCmd.Flags().StringVarP(&queryProvider, "provider", "p", "", "Provider to use (default from config)")
	queryCmd.Flags().StringVarP(&queryModel, "model", "m", "", "Override the provider's model")
	queryCmd.Flags().StringVar(&queryPreset, "preset", config.DefaultPreset, "Enhancement preset name")
	queryCmd.Flags().BoolVar(&queryNoEnhance, "no-enhance", false, "Skip the prompt enhancement pass")
	queryCmd.Flags().BoolVar(&queryUnified, "unified", false, "Merge system prompt and input into a single user message")
}

func runQuery(_ *cobra.Command, args []string) error {
	c, err := buildContainer(func(cfg *config.Config) {
		applyModelOverride(cfg, queryProvider, queryModel, cfg.Defaults.TextProvider)
	})
	if err != nil {
		return err
	}

	llm, err := c.Selector().Text(queryProvider)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	res := llm.Query(ctx, querySystem, strings.Join(args, " "), resolveEnhancement(c, queryPreset, queryNoEnhance), queryUnified)
	cmdutils.PrintResult(res)
	return nil
}

// applyModelOverride rewrites the configured model for the provider the
// command will resolve, so the override flows through the normal wiring.
func applyModelOverride(cfg *config.Config, provider, model, fallback string) {
	if model == "" {
		return
	}
	name := stringutils.StringOrDefault(provider, fallback)
	if pc := cfg.Providers.ByName(name); pc != nil {
		pc.Model = model
	}
}

// resolveEnhancement picks the enhancement instructions for a command run.
// Empty means the adapters skip the rewrite pass entirely.
func resolveEnhancement(c *container.Container, preset string, disabled bool) string {
	if disabled {
		return ""
	}
	return stringutils.StringOrDefault(c.Presets()[preset], c.Presets()[config.DefaultPreset])
}
