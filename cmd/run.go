package main

import (
	"encoding/json"
	"os"
	"strings"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sells-group/screening-cli/internal/ingest"
	"github.com/sells-group/screening-cli/internal/model"
	"github.com/sells-group/screening-cli/internal/pipeline"
	"github.com/sells-group/screening-cli/internal/report"
	"github.com/sells-group/screening-cli/internal/taxonomy"
)

var (
	runLimit      int
	runFormat     string
	runOut        string
	runIndustries []string

	runWeightRevenue       float64
	runWeightGrowth        float64
	runWeightProfitability float64
	runWeightIndustry      float64
	runWeightSize          float64
)

var runCmd = &cobra.Command{
	Use:   "run <file.pdf>",
	Short: "Screen a single PDF deck",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		path := args[0]

		extractor, err := ingest.NewExtractor(cfg.Ingest)
		if err != nil {
			return err
		}

		text, err := extractor.ExtractText(ctx, path)
		if err != nil {
			return err
		}

		weights, err := weightsFromFlags()
		if err != nil {
			return err
		}

		pipe := pipeline.New(cfg)
		result := pipe.Run(text, weights, runLimit)

		zap.L().Info("run: screening complete",
			zap.String("file", path),
			zap.String("run_id", result.RunID),
			zap.Int("ranked", len(result.Records)),
		)

		return writeOutput(result, weights)
	},
}

func init() {
	f := runCmd.Flags()
	f.IntVar(&runLimit, "limit", 0, "max companies in the report (default from config)")
	f.StringVar(&runFormat, "format", "markdown", "output format: markdown, json, or xlsx")
	f.StringVar(&runOut, "out", "", "output file (default stdout; required for xlsx)")
	f.StringSliceVar(&runIndustries, "industries", nil, "taxonomy labels the investor cares about")
	f.Float64Var(&runWeightRevenue, "revenue-weight", 1, "revenue fit weight")
	f.Float64Var(&runWeightGrowth, "growth-weight", 1, "growth fit weight")
	f.Float64Var(&runWeightProfitability, "profitability-weight", 1, "profitability fit weight")
	f.Float64Var(&runWeightIndustry, "industry-weight", 1, "industry fit weight")
	f.Float64Var(&runWeightSize, "size-weight", 1, "size fit weight")
	rootCmd.AddCommand(runCmd)
}

// weightsFromFlags builds the weight configuration shared by run and batch.
func weightsFromFlags() (model.Weights, error) {
	w := model.Weights{
		Revenue:            runWeightRevenue,
		Growth:             runWeightGrowth,
		Profitability:      runWeightProfitability,
		Industry:           runWeightIndustry,
		Size:               runWeightSize,
		SelectedIndustries: runIndustries,
	}

	for _, label := range w.SelectedIndustries {
		if !taxonomy.Valid(label) {
			return model.Weights{}, eris.Errorf("unknown industry %q (see the industries command)", label)
		}
	}

	return w.Normalize(), nil
}

func writeOutput(result *pipeline.Result, weights model.Weights) error {
	switch strings.ToLower(runFormat) {
	case "markdown", "md", "":
		return writeText(report.Markdown(result.Records, weights))
	case "json":
		data, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return eris.Wrap(err, "marshal result")
		}
		return writeText(string(data) + "\n")
	case "xlsx":
		if runOut == "" {
			return eris.New("xlsx output requires --out")
		}
		return report.SaveWorkbook(result.Records, runOut)
	default:
		return eris.Errorf("unknown format %q", runFormat)
	}
}

func writeText(s string) error {
	if runOut == "" {
		_, err := os.Stdout.WriteString(s)
		return err
	}
	if err := os.WriteFile(runOut, []byte(s), 0o644); err != nil {
		return eris.Wrapf(err, "write %s", runOut)
	}
	return nil
}
