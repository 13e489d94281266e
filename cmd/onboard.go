package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/promptloom/promptloom/internal/config"
)

var onboardCmd = &cobra.Command{
	Use:   "onboard",
	Short: "Initialize configuration and presets",
	RunE:  runOnboard,
}

func runOnboard(_ *cobra.Command, _ []string) error {
	cfgPath := config.ConfigPath()

	if _, err := os.Stat(cfgPath); err == nil {
		fmt.Printf("Config already exists at %s\n", cfgPath)
		fmt.Printf("Press Enter to refresh (keep existing values) or Ctrl+C to cancel: ")
		fmt.Scanln()
		existing, loadErr := config.Load(cfgPath)
		if loadErr != nil {
			def := config.DefaultConfig()
			existing = &def
		}
		if err := config.Save(existing, cfgPath); err != nil {
			return err
		}
		fmt.Printf("✓ Config refreshed at %s\n", cfgPath)
	} else {
		cfg := config.DefaultConfig()
		if err := config.Save(&cfg, cfgPath); err != nil {
			return err
		}
		fmt.Printf("✓ Created config at %s\n", cfgPath)
	}

	presetsPath := config.PresetsPath()
	if _, err := os.Stat(presetsPath); os.IsNotExist(err) {
		presets, loadErr := config.LoadPresets(presetsPath)
		if loadErr != nil {
			return loadErr
		}
		if err := config.SavePresets(presets, presetsPath); err != nil {
			return err
		}
		fmt.Printf("✓ Created presets at %s\n", presetsPath)
	} else {
		fmt.Printf("Presets already exist at %s\n", presetsPath)
	}

	fmt.Printf("\n%s promptloom is ready!\n\n", logo)
	fmt.Println("Next steps:")
	fmt.Printf("  1. Add your API keys to %s\n", cfgPath)
	fmt.Println("     (or export OPENAI_API_KEY, GROQ_API_KEY, ...)")
	fmt.Printf("  2. Generate: promptloom query \"Hello!\"\n")
	return nil
}
