package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v3"

	"form-palette/internal/config"
	"form-palette/internal/palette"
	"form-palette/internal/render"
	"form-palette/internal/server"
	"form-palette/internal/ui"
)

// Version is set during build using ldflags
var Version = "dev"

const tagline = "Named colors for form styling"

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := newApp(os.Stdout).Run(ctx, os.Args); err != nil {
		ui.LogStatus("error", err.Error())
		os.Exit(1)
	}
}

func newApp(out io.Writer) *cli.Command {
	return &cli.Command{
		Name:    "palette",
		Version: Version,
		Usage:   "Inspect, export and serve the application color palette",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "no-color",
				Usage: "Disable colored output",
			},
		},
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			if cmd.Bool("no-color") {
				ui.SetRich(false)
			}
			return ctx, nil
		},
		Commands: []*cli.Command{
			{
				Name:    "list",
				Aliases: []string{"ls"},
				Usage:   "Print the palette as a table",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return render.Write(out, render.FormatText, palette.All())
				},
			},
			{
				Name:      "show",
				Usage:     "Print every encoding of one color",
				ArgsUsage: "<name>",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					if cmd.Args().Len() < 1 {
						return fmt.Errorf("color name required (one of %v)", palette.Names())
					}
					name, err := palette.ParseName(cmd.Args().First())
					if err != nil {
						return err
					}
					return showColor(out, name)
				},
			},
			{
				Name:  "export",
				Usage: "Write the palette in a machine-readable format",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "format",
						Aliases: []string{"f"},
						Value:   string(render.FormatJSON),
						Usage:   fmt.Sprintf("output format %v", render.Formats()),
						Sources: cli.EnvVars("PALETTE_FORMAT"),
					},
					&cli.StringFlag{
						Name:    "output",
						Aliases: []string{"o"},
						Usage:   "write to file instead of stdout",
					},
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					f, err := render.ParseFormat(cmd.String("format"))
					if err != nil {
						return err
					}
					return export(out, cmd.String("output"), f)
				},
			},
			{
				Name:  "serve",
				Usage: "Serve the palette over HTTP",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "config",
						Aliases: []string{"c"},
						Usage:   "path to a JSON config file (default " + config.DefaultFile + " if present)",
					},
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return serve(ctx, cmd.String("config"))
				},
			},
			{
				Name:  "version",
				Usage: "Print the version information",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					fmt.Fprintf(out, "palette version %s\n", cmd.Root().Version)
					return nil
				},
			},
		},
	}
}

func showColor(out io.Writer, name palette.Name) error {
	c := palette.MustLookup(name)
	r, g, b, a := c.Components()
	h, s, l := c.HSL()

	fmt.Fprintf(out, "%s  %s\n\n", ui.Swatch(c, 12), ui.Paint(c, "%s", name))
	fmt.Fprintf(out, "  accessor    %s\n", name.Accessor())
	fmt.Fprintf(out, "  hex         %s\n", c.HexA())
	fmt.Fprintf(out, "  css         %s\n", c.CSS())
	fmt.Fprintf(out, "  rgba        %d %d %d %d\n", c.R, c.G, c.B, c.A)
	fmt.Fprintf(out, "  normalized  %.3f %.3f %.3f %.3f\n", r, g, b, a)
	_, err := fmt.Fprintf(out, "  hsl         %.1f° %.1f%% %.1f%%\n", h, s*100, l*100)
	return err
}

func export(out io.Writer, path string, f render.Format) error {
	if path == "" {
		return render.Write(out, f, palette.All())
	}
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := render.WritePlain(file, f, palette.All()); err != nil {
		file.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err := file.Close(); err != nil {
		return err
	}
	ui.LogStatus("success", fmt.Sprintf("Wrote %d colors to %s", len(palette.Names()), path))
	return nil
}

func serve(ctx context.Context, path string) error {
	cfg, err := config.Load(path)
	if err != nil {
		return err
	}
	ui.SetLevel(ui.ParseLevel(cfg.Env.LogLevel))
	ui.EmitBanner(Version, tagline)

	if cfg.Env.IsDevelopment() {
		ui.LogStatus("info", "Environment: "+ui.Warn("DEVELOPMENT"))
	} else {
		ui.LogStatus("info", "Environment: "+ui.Success("PRODUCTION"))
	}

	if err := cfg.Validate(); err != nil {
		return err
	}

	ui.LogGroup("Configuration")
	ui.LogGroupItem("listen", cfg.Listen)
	ui.LogGroupItem("metrics", cfg.MetricsListen)
	ui.LogGroupItem("format", string(cfg.DefaultFormat()))
	ui.LogGroupItem("rate limit", fmt.Sprintf("%d rpm", cfg.RateLimitRPM))
	ui.LogGroupEnd()

	return server.NewServer(cfg).Start(ctx)
}
