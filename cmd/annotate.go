package cmd

import (
	"fmt"
	"os"

	"github.com/mj1618/a11ycheck/internal/model"
	"github.com/mj1618/a11ycheck/internal/output"
	"github.com/mj1618/a11ycheck/internal/overlay"
	"github.com/mj1618/a11ycheck/internal/platform"
	"github.com/mj1618/a11ycheck/internal/rules"
	"github.com/spf13/cobra"
)

var annotateCmd = &cobra.Command{
	Use:   "annotate <dump>",
	Short: "Draw violating element frames onto a screenshot",
	Long: `Check a dump and draw the frame of every implicated element onto a screenshot.
Failures are outlined in red, warnings in amber, each labelled with its violation number.

--window gives the screen rect the screenshot covers (x,y,w,h in points). Frames are
translated into it and scaled to the image size. Without it the image is assumed to
start at the screen origin at 1:1.

Examples:
  a11ycheck annotate screen.json --image screen.png --out annotated.png
  a11ycheck annotate screen.json --image shot.png --out out.png --window 0,25,1440,875`,
	Args: cobra.ExactArgs(1),
	RunE: runAnnotate,
}

func init() {
	rootCmd.AddCommand(annotateCmd)
	annotateCmd.Flags().String("image", "", "Screenshot to annotate (PNG or JPEG)")
	annotateCmd.Flags().String("out", "", "Output image path (.png or .jpg)")
	annotateCmd.Flags().String("window", "", "Screen rect covered by the image: x,y,w,h")
	_ = annotateCmd.MarkFlagRequired("image")
	_ = annotateCmd.MarkFlagRequired("out")
}

func runAnnotate(cmd *cobra.Command, args []string) error {
	imagePath, _ := cmd.Flags().GetString("image")
	outPath, _ := cmd.Flags().GetString("out")
	windowStr, _ := cmd.Flags().GetString("window")

	var window model.Rect
	if windowStr != "" {
		w, err := platform.ParseBBox(windowStr)
		if err != nil {
			return err
		}
		window = w
	}

	cfg, err := rulesConfigFromViper()
	if err != nil {
		return err
	}
	set, err := ruleSetFromViper()
	if err != nil {
		return err
	}
	runner, err := rules.NewRunner(set, cfg)
	if err != nil {
		return err
	}

	reader := &platform.FileReader{Stdin: cmd.InOrStdin()}
	raws, err := reader.ReadElements(platform.ReadOptions{Path: args[0], IgnoreIdentifiers: ignoreIdentifiersFromViper()})
	if err != nil {
		return err
	}
	elements := model.Normalize(raws)
	vs := runner.Run(elements)

	in, err := os.Open(imagePath)
	if err != nil {
		return fmt.Errorf("open screenshot: %w", err)
	}
	defer in.Close()
	img, _, err := overlay.Decode(in)
	if err != nil {
		return err
	}

	boxes := overlay.Boxes(vs)
	annotated, skipped := overlay.Annotate(img, boxes, window)
	if skipped > 0 {
		cmdLogger().Warn("frames skipped", "count", skipped, "image", imagePath)
	}

	out, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("create output image: %w", err)
	}
	if err := overlay.Encode(out, annotated, overlay.FormatForPath(outPath)); err != nil {
		out.Close()
		return fmt.Errorf("encode %s: %w", outPath, err)
	}
	if err := out.Close(); err != nil {
		return fmt.Errorf("write %s: %w", outPath, err)
	}

	return printResult(cmd, output.AnnotateResult{
		Check:   output.NewCheckResult(args[0], len(elements), set.Strings(), vs),
		Image:   imagePath,
		Out:     outPath,
		Boxes:   len(boxes) - skipped,
		Skipped: skipped,
	})
}
