package convert

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	DefaultInput  = "image.jpg"
	DefaultOutput = "output_image.webp"
)

// Logger is the subset of the CLI logger the pipeline needs.
// *zap.Logger satisfies it.
type Logger interface {
	Debug(msg string, fields ...zap.Field)
	Info(msg string, fields ...zap.Field)
}

// Pipeline encodes Input to Base64 and saves the decoded image to Output as WebP.
type Pipeline struct {
	Input   string
	Output  string
	Options Options

	// Out receives the human-readable status lines. Defaults to os.Stdout.
	Out    io.Writer
	Logger Logger
}

// Result describes how far a run got.
type Result struct {
	RunID   string
	Encoded bool
	Saved   bool
	Err     error
}

func NewPipeline() *Pipeline {
	return &Pipeline{
		Input:   DefaultInput,
		Output:  DefaultOutput,
		Options: DefaultOptions(),
	}
}

// Run executes encode then save. Every failure ends up as exactly one printed
// line on Out and in Result.Err; the logger only sees it at debug level. Run
// never panics on bad input.
func (p *Pipeline) Run(ctx context.Context) Result {
	res := Result{RunID: uuid.NewString()}
	out := p.out()
	log := p.logger()
	runID := zap.String("run_id", res.RunID)

	if err := ctx.Err(); err != nil {
		res.Err = err
		fmt.Fprintf(out, "%s: %v\n", ReadErrorPrefix, err) // nolint:errcheck
		return res
	}

	log.Debug("Encoding input", runID, zap.String("input", p.Input))
	text, err := EncodeFile(p.Input)
	if err != nil {
		log.Debug("Encode failed", runID, zap.String("input", p.Input), zap.Error(err))
		fmt.Fprintln(out, err.Error()) // nolint:errcheck
		res.Err = err
		return res
	}
	res.Encoded = true
	log.Debug("Encoded input", runID, zap.Int("base64_len", len(text)))

	if err := ctx.Err(); err != nil {
		res.Err = err
		fmt.Fprintf(out, "%s: %v\n", ReadErrorPrefix, err) // nolint:errcheck
		return res
	}

	err = SaveWebP(text, p.Output, p.Options)
	reportSave(out, p.Output, err)
	if err != nil {
		log.Debug("Save failed", runID, zap.String("output", p.Output), zap.Error(err))
		res.Err = err
		return res
	}
	res.Saved = true
	log.Info("Saved WebP image",
		runID,
		zap.String("output", p.Output),
		zap.Int("quality", p.Options.Quality),
		zap.Bool("lossless", p.Options.Lossless),
	)
	return res
}

func (p *Pipeline) out() io.Writer {
	if p.Out == nil {
		return os.Stdout
	}
	return p.Out
}

func (p *Pipeline) logger() Logger {
	if p.Logger == nil {
		return zap.NewNop()
	}
	return p.Logger
}
