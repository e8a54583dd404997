package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/AtRiskMedia/sitegen-go/internal/application/container"
	"github.com/AtRiskMedia/sitegen-go/internal/application/startup"
	"github.com/AtRiskMedia/sitegen-go/internal/infrastructure/output"
	"github.com/AtRiskMedia/sitegen-go/internal/infrastructure/projectfile"
	"github.com/AtRiskMedia/sitegen-go/pkg/config"
)

type buildOptions struct {
	input         string
	outDir        string
	zipPath       string
	publicDir     string
	maxImageWidth int
}

// NewBuildCmd creates the build command.
func NewBuildCmd() *cobra.Command {
	opts := &buildOptions{}

	cmd := &cobra.Command{
		Use:   "build",
		Short: "Generate a static site from a project file",
		Long: `Generate a static site from a project file.

Writes one index.html per page, styles/components.css, every readable local
asset and styles/globals.css under the output directory. With --zip the same
file set is also packaged as a zip archive.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runBuild(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.input, "input", "i", "", "Project file (.json, .yaml, .yml)")
	cmd.Flags().StringVarP(&opts.outDir, "output", "o", config.OutputDir, "Output directory (env: OUTPUT_DIR)")
	cmd.Flags().StringVar(&opts.zipPath, "zip", "", "Also write the site as a zip archive to this path")
	cmd.Flags().StringVar(&opts.publicDir, "public", config.PublicDir, "Directory local asset paths resolve against (env: PUBLIC_DIR)")
	cmd.Flags().IntVar(&opts.maxImageWidth, "max-image-width", config.AssetMaxImageWidth, "Downscale wider images, 0 copies verbatim (env: ASSET_MAX_IMAGE_WIDTH)")
	_ = cmd.MarkFlagRequired("input")

	return cmd
}

func runBuild(cmd *cobra.Command, opts *buildOptions) error {
	project, err := projectfile.LoadFile(opts.input, config.MaxProjectBytes)
	if err != nil {
		return err
	}

	logger, err := startup.NewLogger()
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer logger.Close()

	c := container.NewContainer(logger, nil, container.Options{
		PublicDir:     opts.publicDir,
		MaxImageWidth: opts.maxImageWidth,
		UnitlessProps: config.UnitlessProps,
	})

	result, err := c.SiteGenerator.Generate(cmd.Context(), project)
	if err != nil {
		return err
	}

	if err := output.WriteFiles(opts.outDir, result.Files); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for _, f := range result.Files {
		fmt.Fprintf(out, "  %s (%d bytes)\n", f.Path, len(f.Content))
	}

	if opts.zipPath != "" {
		data, err := output.Archive(result.Files)
		if err != nil {
			return err
		}
		if err := os.WriteFile(opts.zipPath, data, 0o644); err != nil {
			return fmt.Errorf("writing archive: %w", err)
		}
		fmt.Fprintf(out, "Archive written to %s\n", opts.zipPath)
	}

	fmt.Fprintf(out, "Generated %d files into %s (digest %s)\n",
		len(result.Files), opts.outDir, output.Digest(result.Files))
	if result.Skipped > 0 {
		fmt.Fprintf(out, "Warning: %d local assets could not be read from %s\n", result.Skipped, opts.publicDir)
	}
	return nil
}
