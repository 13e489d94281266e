package cmd

import (
	"context"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/promptloom/promptloom/internal/config"
	"github.com/promptloom/promptloom/internal/shared/cmdutils"
)

var (
	videoProvider  string
	videoModel     string
	videoPreset    string
	videoNoEnhance bool
	videoFollow    bool
	videoAttempts  int
	videoWait      int
)

var videoCmd = &cobra.Command{
	Use:   "video [prompt]",
	Short: "Generate a video from a prompt",
	Long: "Submits a video generation request and, unless --follow=false, polls " +
		"the provider until the video is ready or the attempt budget runs out.",
	Args: cobra.MinimumNArgs(1),
	RunE: runVideo,
}

func init() {
	videoCmd.Flags().StringVarP(&videoProvider, "provider", "p", "", "Provider to use (default from config)")
	videoCmd.Flags().StringVarP(&videoModel, "model", "m", "", "Override the provider's model")
	videoCmd.Flags().StringVar(&videoPreset, "preset", config.DefaultPreset, "Enhancement preset name")
	videoCmd.Flags().BoolVar(&videoNoEnhance, "no-enhance", false, "Skip the prompt enhancement pass")
	videoCmd.Flags().BoolVar(&videoFollow, "follow", true, "Poll until the video is ready")
	videoCmd.Flags().IntVar(&videoAttempts, "attempts", 0, "Override the polling attempt budget")
	videoCmd.Flags().IntVar(&videoWait, "wait", 0, "Override the seconds to wait between polls")
}

func runVideo(cmd *cobra.Command, args []string) error {
	c, err := buildContainer(func(cfg *config.Config) {
		applyModelOverride(cfg, videoProvider, videoModel, cfg.Defaults.VideoProvider)
		if videoAttempts > 0 {
			cfg.Polling.MaxAttempts = videoAttempts
		}
		if videoWait > 0 {
			cfg.Polling.WaitSeconds = videoWait
		}
	})
	if err != nil {
		return err
	}

	gen, err := c.Selector().Video(videoProvider)
	if err != nil {
		return err
	}

	// The poll loop can run for many minutes; Ctrl+C must abort it cleanly.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	prompt := strings.Join(args, " ")
	submission := gen.GenerateVideo(ctx, prompt, resolveEnhancement(c, videoPreset, videoNoEnhance))
	if submission.Error || !videoFollow {
		cmdutils.PrintResult(submission)
		return nil
	}

	cmd.Printf("  ↳ submitted, waiting for the video...\n")
	cmdutils.PrintResult(gen.FollowUp(ctx, submission))
	return nil
}
