package main

import (
	"encoding/json"
	"os"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"github.com/Fchery87/top-tier-financial-solutions-sub004/internal/letter"
	"github.com/Fchery87/top-tier-financial-solutions-sub004/internal/model"
)

var (
	letterAnalysesPath string
	letterEvidence     int
	letterRound        int
	letterMethodology  string
	letterDisputeID    string
	letterNoSave       bool
)

var letterCmd = &cobra.Command{
	Use:   "letter",
	Short: "Score dispute letter strength",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		var analyses []letter.Analysis
		if letterAnalysesPath != "" {
			raw, err := os.ReadFile(letterAnalysesPath)
			if err != nil {
				return eris.Wrapf(err, "read %s", letterAnalysesPath)
			}
			if err := json.Unmarshal(raw, &analyses); err != nil {
				return eris.Wrapf(err, "decode %s", letterAnalysesPath)
			}
		}

		score := letter.CalculateStrength(analyses, letterEvidence > 0, letterEvidence, letterRound, letterMethodology)

		if !letterNoSave {
			env, err := initEnv(ctx)
			if err != nil {
				return err
			}
			defer env.Close()

			if _, err := env.Store.SaveLetterScore(ctx, model.LetterScoreRecord{
				DisputeID:   letterDisputeID,
				Round:       letterRound,
				Methodology: letterMethodology,
				Overall:     score.OverallScore,
				Suggestions: score.Suggestions,
			}); err != nil {
				return eris.Wrap(err, "save letter score")
			}
		}

		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return eris.Wrap(enc.Encode(score), "encode result")
	},
}

func init() {
	letterCmd.Flags().StringVar(&letterAnalysesPath, "analyses", "", "JSON file with account analyses (violations, citations, confidence)")
	letterCmd.Flags().IntVar(&letterEvidence, "evidence", 0, "number of attached evidence documents")
	letterCmd.Flags().IntVar(&letterRound, "round", 1, "dispute round number")
	letterCmd.Flags().StringVar(&letterMethodology, "methodology", letter.MethodologyFactual, "dispute methodology (consumer_law, metro2_compliance, hybrid, factual)")
	letterCmd.Flags().StringVar(&letterDisputeID, "dispute", "", "dispute ID the letter belongs to")
	letterCmd.Flags().BoolVar(&letterNoSave, "no-save", false, "skip persisting the score")
	rootCmd.AddCommand(letterCmd)
}
