package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/gnames/gn"
	"github.com/gnames/gnfmt"
	"github.com/gnames/gnpokedex/internal/iocorpus"
	"github.com/gnames/gnpokedex/pkg/dex"
	"github.com/gnames/gnpokedex/pkg/errcode"
	"github.com/gnames/gnpokedex/pkg/index"
	"gopkg.in/yaml.v3"
)

// loadDex reads the configured corpus, indexes it and returns the
// resolution engine.
func loadDex(ctx context.Context) (dex.Pokedex, error) {
	start := time.Now()
	loader, err := iocorpus.New(cfg)
	if err != nil {
		return nil, err
	}

	tables, err := loader.Load(ctx)
	if err != nil {
		return nil, err
	}

	idx, err := index.New(tables)
	if err != nil {
		return nil, err
	}

	st := idx.Stats()
	slog.Info("Pokédex is ready",
		"species", humanize.Comma(int64(st.Species)),
		"forms", humanize.Comma(int64(st.Forms)),
		"languages", st.Languages,
		"duration", gnfmt.TimeString(time.Since(start).Seconds()),
	)
	return dex.New(idx, cfg), nil
}

// parseLanguage converts the --lang flag to a language id. An empty
// flag selects the configured default language.
func parseLanguage(d dex.Pokedex, lang string) (int, error) {
	if lang == "" {
		return cfg.Language.DefaultID, nil
	}
	return d.ParseLanguage(lang)
}

// output writes v to w as JSON or YAML.
func output(w io.Writer, v any, format string) error {
	var res []byte
	var err error

	switch format {
	case "json":
		enc := gnfmt.GNjson{Pretty: true}
		res, err = enc.Encode(v)
		res = append(res, '\n')
	case "yaml":
		res, err = yaml.Marshal(v)
	default:
		return &gn.Error{
			Code: errcode.BadRequestError,
			Msg:  "Unknown output format <em>%s</em>, use json or yaml",
			Vars: []any{format},
			Err:  errors.New("unknown output format"),
		}
	}
	if err != nil {
		return fmt.Errorf("cannot encode output: %w", err)
	}

	_, err = w.Write(res)
	return err
}
