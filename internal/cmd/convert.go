package cmd

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/b64webp/b64webp/internal/config"
	"github.com/b64webp/b64webp/internal/convert"
	"github.com/b64webp/b64webp/internal/observability"
)

// runConvert runs the fixed encode -> decode -> save sequence. Only config
// problems are returned as errors; conversion failures are printed.
func runConvert(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(viper.GetViper())
	if err != nil {
		return err
	}
	observability.ApplyLogLevel(cfg.Logging.Level)

	// Paths always stay at convert.DefaultInput / convert.DefaultOutput.
	p := convert.NewPipeline()
	p.Options = cfg.ConvertOptions()
	p.Out = cmd.OutOrStdout()
	if observability.CLILogger != nil {
		p.Logger = observability.CLILogger
	}

	res := p.Run(cmd.Context())
	if observability.CLILogger != nil {
		observability.CLILogger.Debug("Conversion finished",
			zap.String("run_id", res.RunID),
			zap.Bool("encoded", res.Encoded),
			zap.Bool("saved", res.Saved),
			zap.String("result", resultLabel(res)),
		)
	}
	return nil
}

func resultLabel(res convert.Result) string {
	switch {
	case res.Saved:
		return "saved"
	case errors.Is(res.Err, context.Canceled), errors.Is(res.Err, context.DeadlineExceeded):
		return "canceled"
	case res.Encoded:
		return "save_failed"
	case res.Err != nil:
		return fmt.Sprintf("encode_failed: %v", res.Err)
	default:
		return "skipped"
	}
}
