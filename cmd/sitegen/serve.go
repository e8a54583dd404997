package main

import (
	"github.com/spf13/cobra"

	"github.com/AtRiskMedia/sitegen-go/internal/application/container"
	"github.com/AtRiskMedia/sitegen-go/internal/application/startup"
	"github.com/AtRiskMedia/sitegen-go/pkg/config"
)

// NewServeCmd creates the serve command.
func NewServeCmd() *cobra.Command {
	var port string
	opts := container.DefaultOptions()

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the generation HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return startup.Initialize(port, opts)
		},
	}

	cmd.Flags().StringVarP(&port, "port", "p", config.Port, "Listen port (env: PORT)")
	cmd.Flags().StringVar(&opts.PublicDir, "public", opts.PublicDir, "Directory local asset paths resolve against (env: PUBLIC_DIR)")
	cmd.Flags().IntVar(&opts.MaxImageWidth, "max-image-width", opts.MaxImageWidth, "Downscale wider images, 0 copies verbatim (env: ASSET_MAX_IMAGE_WIDTH)")
	return cmd
}
