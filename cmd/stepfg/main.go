package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"stepfg/internal/brep"
	"stepfg/internal/config"
	"stepfg/internal/console"
	"stepfg/internal/export"
	"stepfg/internal/geom"
	"stepfg/internal/logging"
	"stepfg/internal/tui"
)

var version = "dev"

type options struct {
	configPath string
	z1, z2     float64
	scale      float64
	normalize  bool
	check      bool
	preview    bool
	verbose    bool
}

func newRootCmd() *cobra.Command {
	o := &options{}
	cmd := &cobra.Command{
		Use:   "stepfg [input [output]]",
		Short: "Extrude 2D polygons into a STEP solid model",
		Long: `stepfg reads planar polygons, extrudes each one between two z planes,
scales the result and writes the solids as a STEP AP203 file (unit mm).

The native input is a text file holding one literal
  [[[x,y],...], ...], [z1, z2], scale
Other formats are chosen by extension: ` + strings.Join(geom.Formats, ", ") + `.
They carry only polygons; give the extrusion and scale with --z1/--z2/--scale
or in the config file.

Defaults: input ` + config.DefaultInput + `, output ` + config.DefaultOutput + `.`,
		Args:          cobra.MaximumNArgs(2),
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, args, o)
		},
	}
	f := cmd.Flags()
	f.StringVar(&o.configPath, "config", "", "TOML config file")
	f.Float64Var(&o.z1, "z1", 0, "lower end of the extrusion interval")
	f.Float64Var(&o.z2, "z2", 0, "upper end of the extrusion interval")
	f.Float64Var(&o.scale, "scale", 0, "proportionality coefficient applied to all coordinates")
	f.BoolVar(&o.normalize, "normalize-winding", false, "orient outer rings counter-clockwise and holes clockwise")
	f.BoolVar(&o.check, "check", false, "verify that every shell is closed before writing")
	f.BoolVar(&o.preview, "preview", false, "show an interactive preview; Enter writes, q or Esc aborts")
	f.BoolVarP(&o.verbose, "verbose", "v", false, "debug logging to stderr")
	return cmd
}

// settings merges defaults, the config file, positional arguments and flags,
// in increasing precedence.
func settings(cmd *cobra.Command, args []string, o *options) (*config.Config, error) {
	cfg := config.Default()
	if o.configPath != "" {
		var err error
		if cfg, err = config.Load(o.configPath); err != nil {
			return nil, err
		}
	}
	if len(args) > 0 {
		cfg.Input = args[0]
	}
	if len(args) > 1 {
		cfg.Output = args[1]
	}

	f := cmd.Flags()
	if f.Changed("z1") != f.Changed("z2") {
		return nil, errors.New("--z1 and --z2 must be given together")
	}
	if f.Changed("z1") {
		cfg.Z1, cfg.Z2 = &o.z1, &o.z2
	}
	if f.Changed("scale") {
		cfg.Scale = &o.scale
	}
	if f.Changed("normalize-winding") {
		cfg.NormalizeWinding = o.normalize
	}
	return cfg, cfg.Validate()
}

func run(cmd *cobra.Command, args []string, o *options) error {
	if o.verbose {
		logging.SetLogger(logging.NewText(cmd.ErrOrStderr(), true))
	}
	cfg, err := settings(cmd, args, o)
	if err != nil {
		return err
	}
	logging.Logger().Debug("settings", "input", cfg.Input, "output", cfg.Output, "normalize_winding", cfg.NormalizeWinding)

	out := cmd.OutOrStdout()
	con := console.New(out)
	con.Banner(version)

	var in geom.Input
	err = con.Stage("Reading 2D geometry file "+cfg.Input, func() error {
		loaded, err := geom.Load(cfg.Input, geom.LoadOptions{DXFEncoding: cfg.DXFEncoding})
		if err != nil {
			return err
		}
		in, err = geom.Resolve(loaded, cfg.Extrusion(), cfg.Scale)
		return err
	})
	if err != nil {
		return err
	}

	var (
		model *geom.Model
		body  *brep.Body
	)
	err = con.Stage("Generating assembly", func() error {
		var err error
		polys := in.Polygons
		if cfg.NormalizeWinding {
			if polys, err = geom.NormalizeWinding(polys); err != nil {
				return err
			}
		}
		if model, err = geom.New(polys, *in.Extrusion, *in.Scale); err != nil {
			return err
		}
		body, err = export.Assemble(model, export.Options{Check: o.check})
		return err
	})
	if err != nil {
		return err
	}
	b := model.Bounds()
	con.Notef("%s, footprint %gx%g, z [%g, %g] mm", body.Stats(),
		(b.Max.X()-b.Min.X())*model.Scale(), (b.Max.Y()-b.Min.Y())*model.Scale(), model.ZMin(), model.ZMax())

	if o.preview {
		ok, err := preview(cmd.InOrStdin(), out, tui.New(model, body, cfg.Input+" → "+cfg.Output))
		if err != nil {
			return err
		}
		if !ok {
			con.Notef("Preview closed without writing %s.", cfg.Output)
			return nil
		}
	}

	hdr := cfg.StepHeader(filepath.Base(cfg.Output), time.Now())
	return con.Stage("Writing STEP file "+cfg.Output, func() error {
		data, err := export.Render(body, hdr)
		if err != nil {
			return err
		}
		return export.WriteFile(cfg.Output, data)
	})
}

func preview(in io.Reader, out io.Writer, m tui.Model) (bool, error) {
	final, err := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseAllMotion(),
		tea.WithInput(in), tea.WithOutput(out)).Run()
	if err != nil {
		return false, fmt.Errorf("preview: %w", err)
	}
	return final.(tui.Model).Confirmed(), nil
}

// normalizeHelp accepts the DOS-style /h as a help flag.
func normalizeHelp(args []string) []string {
	out := make([]string, len(args))
	for i, a := range args {
		if a == "/h" {
			a = "--help"
		}
		out[i] = a
	}
	return out
}

func execute(args []string, stdout, stderr io.Writer) error {
	cmd := newRootCmd()
	cmd.SetArgs(normalizeHelp(args))
	cmd.SetIn(os.Stdin)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	return cmd.Execute()
}

func main() {
	if err := execute(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
