package main

import (
	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Fchery87/top-tier-financial-solutions-sub004/internal/export"
)

var exportOut string

var exportCmd = &cobra.Command{
	Use:   "export <report-id>",
	Short: "Export a persisted report to an XLSX workbook",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		env, err := initEnv(ctx)
		if err != nil {
			return err
		}
		defer env.Close()

		rec, err := env.Store.GetReport(ctx, args[0])
		if err != nil {
			return err
		}

		out := exportOut
		if out == "" {
			out = rec.ID + ".xlsx"
		}
		if err := export.WriteXLSX(rec.Data, out); err != nil {
			return eris.Wrapf(err, "export report %s", rec.ID)
		}

		zap.L().Info("exported report",
			zap.String("report", rec.ID),
			zap.String("file", out),
		)
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVar(&exportOut, "out", "", "output file path (default <report-id>.xlsx)")
	rootCmd.AddCommand(exportCmd)
}
