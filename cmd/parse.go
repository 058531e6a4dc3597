package main

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Fchery87/top-tier-financial-solutions-sub004/internal/model"
)

var (
	parseVendor string
	parseNoSave bool
	parseOut    string
)

var parseCmd = &cobra.Command{
	Use:   "parse <file>",
	Short: "Parse a credit report file into structured data",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		env, err := initEnv(ctx)
		if err != nil {
			return err
		}
		defer env.Close()

		rec, err := parseFile(ctx, env, args[0])
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if parseOut != "" {
			f, err := os.Create(parseOut)
			if err != nil {
				return eris.Wrapf(err, "create %s", parseOut)
			}
			defer f.Close()
			out = f
		}

		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return eris.Wrap(enc.Encode(rec), "encode result")
	},
}

func init() {
	parseCmd.Flags().StringVar(&parseVendor, "vendor", "", "force a vendor parser instead of auto-detecting")
	parseCmd.Flags().BoolVar(&parseNoSave, "no-save", false, "skip persisting the result")
	parseCmd.Flags().StringVar(&parseOut, "out", "", "write JSON result to a file instead of stdout")
	rootCmd.AddCommand(parseCmd)
}

// parseFile loads, parses, and (unless disabled) persists one report file.
func parseFile(ctx context.Context, env *environment, path string) (*model.ReportRecord, error) {
	document, err := loadDocument(ctx, env, path)
	if err != nil {
		return nil, err
	}

	var vendor model.Vendor
	var data *model.ParsedCreditData
	if parseVendor != "" {
		parser, err := env.Registry.Get(model.Vendor(parseVendor))
		if err != nil {
			return nil, err
		}
		vendor = parser.Vendor()
		data = parser.Parse(document)
	} else {
		vendor, data, err = env.Registry.ParseAuto(document)
		if err != nil {
			return nil, err
		}
	}

	zap.L().Info("parsed report",
		zap.String("file", path),
		zap.String("vendor", string(vendor)),
		zap.Int("accounts", data.Summary.TotalAccounts),
		zap.Int("negative_items", len(data.NegativeItems)),
	)

	if parseNoSave {
		return &model.ReportRecord{Vendor: vendor, Source: filepath.Base(path), Data: data}, nil
	}

	rec, err := env.Store.SaveReport(ctx, vendor, filepath.Base(path), data)
	if err != nil {
		return nil, eris.Wrap(err, "save report")
	}
	return rec, nil
}

// loadDocument reads a report file, running PDFs through text extraction.
// Input is capped at parser.max_document_bytes.
func loadDocument(ctx context.Context, env *environment, path string) (string, error) {
	var document string
	if strings.EqualFold(filepath.Ext(path), ".pdf") {
		text, err := env.OCR.ExtractText(ctx, path)
		if err != nil {
			return "", eris.Wrapf(err, "extract text from %s", path)
		}
		document = text
	} else {
		raw, err := os.ReadFile(path)
		if err != nil {
			return "", eris.Wrapf(err, "read %s", path)
		}
		document = string(raw)
	}

	if max := cfg.Parser.MaxDocumentBytes; max > 0 && len(document) > max {
		zap.L().Warn("truncating oversized document",
			zap.String("file", path),
			zap.Int("bytes", len(document)),
			zap.Int("max", max),
		)
		document = document[:max]
	}
	return document, nil
}
