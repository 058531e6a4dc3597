package main

import (
	"context"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/Fchery87/top-tier-financial-solutions-sub004/internal/ocr"
	"github.com/Fchery87/top-tier-financial-solutions-sub004/internal/report"
	"github.com/Fchery87/top-tier-financial-solutions-sub004/internal/store"
)

// environment bundles the subsystems most commands need.
type environment struct {
	Registry *report.Registry
	OCR      ocr.Extractor
	Store    store.Store
}

func initEnv(ctx context.Context) (*environment, error) {
	registry, err := report.LoadVendorOverrides(cfg.Parser.VendorOverrides)
	if err != nil {
		return nil, eris.Wrap(err, "load vendor overrides")
	}

	extractor, err := ocr.NewExtractor(cfg.OCR)
	if err != nil {
		return nil, eris.Wrap(err, "init ocr")
	}

	st, err := store.Open(ctx, cfg.Store)
	if err != nil {
		return nil, eris.Wrap(err, "open store")
	}
	if err := st.Migrate(ctx); err != nil {
		st.Close()
		return nil, eris.Wrap(err, "migrate store")
	}

	return &environment{Registry: registry, OCR: extractor, Store: st}, nil
}

func (e *environment) Close() {
	if err := e.Store.Close(); err != nil {
		zap.L().Warn("close store", zap.Error(err))
	}
}
