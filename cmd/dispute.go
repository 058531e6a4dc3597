package main

import (
	"encoding/json"
	"strings"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Fchery87/top-tier-financial-solutions-sub004/internal/dispute"
	"github.com/Fchery87/top-tier-financial-solutions-sub004/internal/model"
)

var (
	disputeReportID string
	disputeCreditor string
	disputeCodes    []string
	disputeEvidence []string
	disputeOverride bool
)

var disputeCmd = &cobra.Command{
	Use:   "dispute",
	Short: "Manage dispute requests",
}

var disputeCheckCmd = &cobra.Command{
	Use:   "check",
	Short: "Check evidence requirements for dispute reason codes",
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(disputeCodes) == 0 {
			return eris.New("at least one --code is required")
		}
		result := dispute.ValidateEvidence(disputeCodes, disputeEvidence)

		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return eris.Wrap(enc.Encode(struct {
			dispute.ValidationResult
			RiskLevel    dispute.RiskTier             `json:"risk_level"`
			Requirements dispute.EvidenceRequirements `json:"requirements"`
		}{
			ValidationResult: result,
			RiskLevel:        dispute.RiskLevelForCodes(disputeCodes),
			Requirements:     dispute.RequiredEvidence(disputeCodes),
		}), "encode result")
	},
}

var disputeCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Validate and persist a dispute request",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		if disputeCreditor == "" {
			return eris.New("--creditor is required")
		}
		if len(disputeCodes) == 0 {
			return eris.New("at least one --code is required")
		}

		result := dispute.ValidateEvidence(disputeCodes, disputeEvidence)
		if !result.IsValid && !disputeOverride {
			for _, reason := range result.BlockingReasons {
				zap.L().Warn("blocking requirement", zap.String("reason", reason))
			}
			return eris.Errorf("dispute blocked: %s (use --override to proceed anyway)", strings.Join(result.Errors, "; "))
		}
		for _, w := range result.Warnings {
			zap.L().Warn("dispute warning", zap.String("warning", w))
		}

		env, err := initEnv(ctx)
		if err != nil {
			return err
		}
		defer env.Close()

		rec, err := env.Store.CreateDispute(ctx, model.DisputeRecord{
			ReportID:    disputeReportID,
			Creditor:    disputeCreditor,
			ReasonCodes: disputeCodes,
			EvidenceIDs: disputeEvidence,
			RiskLevel:   string(dispute.RiskLevelForCodes(disputeCodes)),
			Overridden:  !result.IsValid,
		})
		if err != nil {
			return eris.Wrap(err, "create dispute")
		}

		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return eris.Wrap(enc.Encode(rec), "encode result")
	},
}

var disputeListCmd = &cobra.Command{
	Use:   "list",
	Short: "List persisted disputes",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		env, err := initEnv(ctx)
		if err != nil {
			return err
		}
		defer env.Close()

		disputes, err := env.Store.ListDisputes(ctx, disputeReportID)
		if err != nil {
			return err
		}

		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return eris.Wrap(enc.Encode(disputes), "encode result")
	},
}

func init() {
	for _, c := range []*cobra.Command{disputeCheckCmd, disputeCreateCmd} {
		c.Flags().StringSliceVar(&disputeCodes, "code", nil, "dispute reason code (repeatable)")
		c.Flags().StringSliceVar(&disputeEvidence, "evidence", nil, "attached evidence document ID (repeatable)")
	}
	disputeCreateCmd.Flags().StringVar(&disputeReportID, "report", "", "report ID the dispute belongs to")
	disputeCreateCmd.Flags().StringVar(&disputeCreditor, "creditor", "", "creditor the dispute targets")
	disputeCreateCmd.Flags().BoolVar(&disputeOverride, "override", false, "create the dispute even when blocking evidence is missing")
	disputeListCmd.Flags().StringVar(&disputeReportID, "report", "", "filter by report ID")

	disputeCmd.AddCommand(disputeCheckCmd, disputeCreateCmd, disputeListCmd)
	rootCmd.AddCommand(disputeCmd)
}
