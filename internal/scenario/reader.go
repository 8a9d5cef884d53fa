package scenario

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/povarna/linked-lists/internal/config"
	"github.com/povarna/linked-lists/internal/models"
	"github.com/rs/zerolog"
	"go.yaml.in/yaml/v3"
)

// Reader streams scenarios from a YAML stream. The stream may hold several
// documents, each shaped like the scenarios config file.
type Reader struct {
	reader  io.Reader
	variant string
	logger  *zerolog.Logger
}

// NewReader returns a Reader. A non-empty variant overrides the variant of
// every scenario read.
func NewReader(r io.Reader, variant string, logger *zerolog.Logger) *Reader {
	return &Reader{
		reader:  r,
		variant: variant,
		logger:  logger,
	}
}

func (r *Reader) ReadAll(ctx context.Context) <-chan models.Record {
	ch := make(chan models.Record)

	go func() {
		defer close(ch)

		dec := yaml.NewDecoder(r.reader)
		for doc := 1; ; doc++ {
			var file config.File
			err := dec.Decode(&file)
			if errors.Is(err, io.EOF) {
				return
			}
			if err != nil {
				err = fmt.Errorf("failed to parse YAML: %w", err)
			} else {
				err = config.Prepare(&file)
			}
			if err != nil {
				r.logger.Error().Err(err).Int("document", doc).Msg("failed to read scenarios")
				select {
				case ch <- models.Record{Error: fmt.Errorf("document %d: %w", doc, err)}:
				case <-ctx.Done():
				}
				// decoder state is undefined after an error
				return
			}

			for _, sc := range file.Scenarios {
				if r.variant != "" {
					sc.Variant = r.variant
				}
				select {
				case ch <- models.Record{Scenario: sc}:
				case <-ctx.Done():
					r.logger.Warn().Msg("scenario reading cancelled")
					return
				}
			}
		}
	}()

	return ch
}
