package cmd

import (
	"context"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/promptloom/promptloom/internal/config"
	"github.com/promptloom/promptloom/internal/schema"
	"github.com/promptloom/promptloom/internal/shared/cmdutils"
)

var (
	imageProvider  string
	imageModel     string
	imagePreset    string
	imageNoEnhance bool
)

var imageCmd = &cobra.Command{
	Use:   "image [prompt]...",
	Short: "Generate images from one or more prompts",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runImage,
}

func init() {
	imageCmd.Flags().StringVarP(&imageProvider, "provider", "p", "", "Provider to use (default from config)")
	imageCmd.Flags().StringVarP(&imageModel, "model", "m", "", "Override the provider's model")
	imageCmd.Flags().StringVar(&imagePreset, "preset", config.DefaultPreset, "Enhancement preset name")
	imageCmd.Flags().BoolVar(&imageNoEnhance, "no-enhance", false, "Skip the prompt enhancement pass")
}

func runImage(_ *cobra.Command, args []string) error {
	c, err := buildContainer(func(cfg *config.Config) {
		applyModelOverride(cfg, imageProvider, imageModel, cfg.Defaults.ImageProvider)
	})
	if err != nil {
		return err
	}

	enhancement := resolveEnhancement(c, imagePreset, imageNoEnhance)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	// Each prompt gets its own adapter so the batch members stay independent.
	results := make([]schema.ResultSet, len(args))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(4)
	for i, prompt := range args {
		i, prompt := i, prompt
		g.Go(func() error {
			gen, err := c.Selector().Image(imageProvider)
			if err != nil {
				return err
			}
			results[i] = gen.GenerateImage(gctx, prompt, enhancement)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	for _, res := range results {
		cmdutils.PrintResult(res)
	}
	return nil
}
