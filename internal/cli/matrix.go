package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/dustin/go-humanize"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/cosmors/interaction"
	"github.com/katalvlaran/cosmors/logging"
	"github.com/katalvlaran/cosmors/matrix"
	"github.com/katalvlaran/cosmors/metrics"
	"github.com/katalvlaran/cosmors/parallel"
)

// matrixOptions holds the flags of the matrix subcommand.
type matrixOptions struct {
	Temperatures []float64
	Print        bool
}

// NewMatrixCmd builds interaction matrices for every requested temperature.
func NewMatrixCmd() *cobra.Command {
	opts := &matrixOptions{}

	cmd := &cobra.Command{
		Use:   "matrix",
		Short: "Build the interaction matrix for each temperature",
		Example: `  cosmors matrix -c system.yaml
  cosmors matrix -c system.yaml --temperature 298.15 --temperature 350 --print`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cliCtx, err := GetCLIContext(cmd)
			if err != nil {
				return err
			}
			return runMatrix(cliCtx, opts, cmd.OutOrStdout())
		},
	}
	cmd.Flags().Float64SliceVarP(&opts.Temperatures, "temperature", "t", nil, "temperature in K (repeatable; default: config temperatures)")
	cmd.Flags().BoolVar(&opts.Print, "print", false, "print the full symmetric matrix")

	return cmd
}

func runMatrix(cliCtx *CLIContext, opts *matrixOptions, out io.Writer) error {
	cfg, log := cliCtx.Config, cliCtx.Logger

	rec, err := metrics.NewPrometheus(prometheus.NewRegistry(), "cosmors")
	if err != nil {
		return err
	}
	pool := parallel.NewPool(cfg.Runtime.Workers)
	builder, err := interaction.NewBuilder(cfg.Parameters(),
		interaction.WithRunner(pool),
		interaction.WithLogger(log),
		interaction.WithMetrics(rec),
	)
	if err != nil {
		return err
	}
	col, err := cfg.BuildCollection()
	if err != nil {
		return err
	}
	cache, err := interaction.NewCache(builder, col, cfg.Runtime.CacheSize)
	if err != nil {
		return err
	}

	span := col.NeutralSpan()
	log.Info("segment collection ready",
		logging.Int("segment_types", col.Len()),
		logging.Int("neutral_types", span.Len()),
		logging.Int("molecules", col.Molecules()),
		logging.Int("workers", pool.Workers()),
	)

	temps := opts.Temperatures
	if len(temps) == 0 {
		temps = cfg.Temperatures
	}
	for _, t := range temps {
		res, hit, err := cache.Get(t)
		if err != nil {
			return fmt.Errorf("temperature %g K: %w", t, err)
		}
		size := res.Matrix.Bytes()
		for _, p := range res.Partials {
			size += p.Bytes()
		}
		source := "built"
		if hit {
			source = "cached"
		}
		fmt.Fprintf(out, "T=%g K  types=%d  neutral=[%d,%d)  partials=%d  memory=%s  (%s)\n",
			t, res.Matrix.Size(), span.Lower, span.Upper, len(res.Partials), humanize.IBytes(size), source)

		if opts.Print {
			if err = printMatrix(out, res.Matrix); err != nil {
				return err
			}
		}
	}

	_ = log.Sync() // stderr sync fails on some platforms
	return nil
}

// printMatrix writes the mirrored matrix with gonum's formatter.
func printMatrix(out io.Writer, m *matrix.Lower[float32]) error {
	sym, err := m.ToSymDense()
	if errors.Is(err, matrix.ErrEmpty) {
		return nil
	}
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(out, "%.6g\n", mat.Formatted(sym, mat.Squeeze()))

	return err
}
