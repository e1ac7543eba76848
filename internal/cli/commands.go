package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/gogpu/uistyle/gpu"
	"github.com/gogpu/uistyle/graph"
)

func newInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info [file]",
		Short: "Print geometry, color type and upload layout of an image",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := graph.DecodeFile(args[0])
			if err != nil {
				return err
			}
			up, err := gpu.Upload(g)
			if err != nil {
				return err
			}
			desc := gpu.Describe(g, filepath.Base(args[0]))

			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "file:          %s\n", args[0])
			fmt.Fprintf(w, "size:          %dx%d\n", g.Width(), g.Height())
			fmt.Fprintf(w, "color type:    %v\n", g.ColorType())
			fmt.Fprintf(w, "bytes/pixel:   %d\n", g.BytesPerPixel())
			fmt.Fprintf(w, "bytes/row:     %d\n", g.BytesPerRow())
			fmt.Fprintf(w, "memory:        %d bytes\n", g.MemSize())
			if g.ColorType().IsIndexed() {
				fmt.Fprintf(w, "palette:       %d colors\n", g.Palette().Len())
			}
			fmt.Fprintf(w, "texture:       %v, %d bytes/row\n", desc.Format, up.Layout.BytesPerRow)
			return nil
		},
	}
}

type convertOpts struct {
	colorType string
	palette   string
}

func newConvertCmd() *cobra.Command {
	opts := convertOpts{colorType: "argb8888"}

	cmd := &cobra.Command{
		Use:   "convert [in] [out]",
		Short: "Re-encode an image in another color type",
		Long: `Convert decodes IN, re-encodes every pixel in the requested color type
and saves the result to OUT. The output format follows OUT's extension
(.png, .bmp, .tif, .jpg). Narrow types truncate channels, so saving the
result shows exactly what the type can represent.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConvert(cmd, args[0], args[1], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.colorType, "type", "t", opts.colorType, "target color type")
	cmd.Flags().StringVar(&opts.palette, "palette", "", `palette for index8: "gray" or hex colors "#000,#fff"`)
	return cmd
}

func runConvert(cmd *cobra.Command, in, out string, opts convertOpts) error {
	logger := loggerFromContext(cmd.Context())
	prog := newProgress(logger)

	t, err := parseColorType(opts.colorType)
	if err != nil {
		return err
	}
	var gopts []graph.Option
	if opts.palette != "" {
		pal, err := parsePalette(opts.palette)
		if err != nil {
			return err
		}
		gopts = append(gopts, graph.WithPalette(pal))
	}

	src, err := graph.DecodeFile(in)
	if err != nil {
		return err
	}
	logger.Debug("decoded", "file", in, "type", src.ColorType())

	dst, err := src.Convert(t, gopts...)
	if err != nil {
		return fmt.Errorf("convert to %v: %w", t, err)
	}
	if err := dst.Save(out); err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Wrote %s as %v", out, t))
	return nil
}

type cropOpts struct {
	rect   string
	zoom   string
	smooth bool
}

func newCropCmd() *cobra.Command {
	opts := cropOpts{smooth: true}

	cmd := &cobra.Command{
		Use:   "crop [in] [out]",
		Short: "Cut a region out of an image, optionally scaling it",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCrop(cmd, args[0], args[1], opts)
		},
	}

	cmd.Flags().StringVar(&opts.rect, "rect", "", "region to keep as x,y,w,h")
	cmd.Flags().StringVar(&opts.zoom, "zoom", "", "scale the region to WxH")
	cmd.Flags().BoolVar(&opts.smooth, "smooth", opts.smooth, "use bilinear filtering when zooming")
	_ = cmd.MarkFlagRequired("rect")
	return cmd
}

func runCrop(cmd *cobra.Command, in, out string, opts cropOpts) error {
	logger := loggerFromContext(cmd.Context())
	prog := newProgress(logger)

	region, err := parseRect(opts.rect)
	if err != nil {
		return err
	}
	src, err := graph.DecodeFile(in)
	if err != nil {
		return err
	}

	view, err := src.Quote(region, false)
	if err != nil {
		return fmt.Errorf("crop %dx%d image: %w", src.Width(), src.Height(), err)
	}
	defer view.Release()

	result := view
	if opts.zoom != "" {
		size, err := parseSize(opts.zoom)
		if err != nil {
			return err
		}
		result, err = view.Zoom(size.Width, size.Height, opts.smooth)
		if err != nil {
			return err
		}
		logger.Debug("zoomed", "from", region.Size(), "to", size)
	}

	if err := result.Save(out); err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Wrote %s (%dx%d)", out, result.Width(), result.Height()))
	return nil
}
