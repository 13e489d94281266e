package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/promptloom/promptloom/internal/config"
	"github.com/promptloom/promptloom/internal/providers"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show promptloom status",
	RunE:  runStatus,
}

func runStatus(_ *cobra.Command, _ []string) error {
	cfgPath := config.ConfigPath()

	fmt.Printf("%s promptloom Status\n\n", logo)

	_, statErr := os.Stat(cfgPath)
	cfgMark := "✗"
	if statErr == nil {
		cfgMark = "✓"
	}
	fmt.Printf("Config:   %s %s\n", cfgPath, cfgMark)

	_, presetErr := os.Stat(config.PresetsPath())
	presetMark := "✗ (built-in default)"
	if presetErr == nil {
		presetMark = "✓"
	}
	fmt.Printf("Presets:  %s %s\n", config.PresetsPath(), presetMark)

	cfg, err := config.Load(cfgPath)
	if err != nil {
		fmt.Printf("  (could not load config: %v)\n", err)
		return nil
	}

	fmt.Printf("Defaults: text=%s image=%s video=%s\n\n",
		cfg.Defaults.TextProvider, cfg.Defaults.ImageProvider, cfg.Defaults.VideoProvider)

	fmt.Println("Providers:")
	for _, spec := range providers.PROVIDERS {
		p := cfg.Providers.ByName(spec.Name)
		if p == nil {
			continue
		}
		caps := make([]string, 0, len(spec.Capabilities))
		for _, c := range spec.Capabilities {
			caps = append(caps, string(c))
		}
		label := fmt.Sprintf("%s [%s]", spec.Label(), strings.Join(caps, ","))
		switch {
		case spec.IsLocal:
			if p.APIBase != "" {
				fmt.Printf("  %-28s ✓ %s\n", label, p.APIBase)
			} else {
				fmt.Printf("  %-28s ✓ %s (default)\n", label, spec.DefaultAPIBase)
			}
		case p.APIKey != "" || os.Getenv(spec.EnvKey) != "":
			fmt.Printf("  %-28s ✓\n", label)
		default:
			fmt.Printf("  %-28s (not set)\n", label)
		}
	}
	return nil
}
