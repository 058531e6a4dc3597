package main

import (
	"encoding/json"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"github.com/Fchery87/top-tier-financial-solutions-sub004/internal/model"
	"github.com/Fchery87/top-tier-financial-solutions-sub004/internal/store"
)

var (
	reportsVendor string
	reportsLimit  int
	reportsOffset int
)

var reportsCmd = &cobra.Command{
	Use:   "reports",
	Short: "List persisted reports",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		env, err := initEnv(ctx)
		if err != nil {
			return err
		}
		defer env.Close()

		records, err := env.Store.ListReports(ctx, store.ReportFilter{
			Vendor: model.Vendor(reportsVendor),
			Limit:  reportsLimit,
			Offset: reportsOffset,
		})
		if err != nil {
			return err
		}

		// Summaries only; full data is available via export.
		type line struct {
			ID       string       `json:"id"`
			Vendor   model.Vendor `json:"vendor"`
			Source   string       `json:"source,omitempty"`
			Accounts int          `json:"accounts"`
			Negative int          `json:"negative_items"`
			Created  string       `json:"created_at"`
		}
		out := make([]line, 0, len(records))
		for _, r := range records {
			l := line{ID: r.ID, Vendor: r.Vendor, Source: r.Source, Created: r.CreatedAt.Format("2006-01-02 15:04:05")}
			if r.Data != nil {
				l.Accounts = r.Data.Summary.TotalAccounts
				l.Negative = len(r.Data.NegativeItems)
			}
			out = append(out, l)
		}

		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return eris.Wrap(enc.Encode(out), "encode result")
	},
}

func init() {
	reportsCmd.Flags().StringVar(&reportsVendor, "vendor", "", "filter by vendor")
	reportsCmd.Flags().IntVar(&reportsLimit, "limit", 50, "max reports to list")
	reportsCmd.Flags().IntVar(&reportsOffset, "offset", 0, "offset into the result set")
	rootCmd.AddCommand(reportsCmd)
}
