package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"

	"github.com/lifetrace-app/lifetrace/pkg/cli/config"
	"github.com/lifetrace-app/lifetrace/pkg/domain/types"
	"github.com/lifetrace-app/lifetrace/pkg/service/labeler"
	"github.com/lifetrace-app/lifetrace/pkg/usecase"
	"github.com/lifetrace-app/lifetrace/pkg/utils/errutil"
	"github.com/lifetrace-app/lifetrace/pkg/utils/safe"
)

func cmdExtract() *cli.Command {
	var userID string
	var periodType string
	var date string
	var repoCfg config.Repository
	var geminiCfg config.Gemini
	var periodsCfg config.Periods

	flags := []cli.Flag{
		&cli.StringFlag{
			Name:        "user",
			Usage:       "User ID to extract keywords for",
			Required:    true,
			Sources:     cli.EnvVars("LIFETRACE_USER"),
			Destination: &userID,
		},
		&cli.StringFlag{
			Name:        "period",
			Usage:       "Period type (weekly, monthly, quarterly, yearly)",
			Value:       "weekly",
			Sources:     cli.EnvVars("LIFETRACE_PERIOD"),
			Destination: &periodType,
		},
		&cli.StringFlag{
			Name:        "date",
			Usage:       "Reference date inside the target period (YYYY-MM-DD, default today)",
			Destination: &date,
		},
	}
	flags = append(flags, repoCfg.Flags()...)
	flags = append(flags, geminiCfg.Flags()...)
	flags = append(flags, periodsCfg.Flags()...)

	return &cli.Command{
		Name:    "extract",
		Aliases: []string{"x"},
		Usage:   "Run keyword extraction once for a user and period",
		Flags:   flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			pt := types.PeriodType(periodType)
			if err := pt.Validate(); err != nil {
				return err
			}

			ref := time.Now().UTC()
			if date != "" {
				parsed, err := time.Parse("2006-01-02", date)
				if err != nil {
					return goerr.Wrap(err, "invalid date", goerr.V("date", date))
				}
				ref = parsed
			}

			extractionCfg, err := periodsCfg.Configure()
			if err != nil {
				return err
			}

			repo, err := repoCfg.Configure(ctx)
			if err != nil {
				return err
			}
			defer safe.Close(ctx, repo)

			llmClient, err := geminiCfg.Configure(ctx)
			if err != nil {
				return err
			}
			if llmClient == nil {
				return goerr.New("gemini-project is required for extraction")
			}

			labelerSvc, err := labeler.New(llmClient)
			if err != nil {
				return goerr.Wrap(err, "failed to create labeler service")
			}

			uc := usecase.New(repo, labelerSvc, usecase.WithExtractionConfig(extractionCfg))

			result, err := uc.Extract.Extract(ctx, userID, pt, ref)
			if err != nil {
				return errutil.Handle(ctx, err, "extraction failed")
			}

			printResult(result)
			return nil
		},
	}
}

func printResult(result *usecase.ExtractResult) {
	header := color.New(color.Bold)
	header.Printf("%s %s: %d vectors, %d clusters\n",
		result.UserID, result.Window.Label, result.TotalVectors, result.ClusterCount)

	if len(result.Keywords) == 0 {
		color.Yellow("no significant themes this period")
		return
	}

	for i, kw := range result.Keywords {
		fmt.Printf("%d. %s %s  ", i+1, kw.Emoji, color.GreenString(kw.Keyword))
		fmt.Printf("[%s] confidence=%.2f dominance=%.2f n=%d\n",
			kw.Category, kw.Confidence, kw.DominanceScore, kw.DataPointCount)
		if kw.Description != "" {
			fmt.Printf("   %s\n", kw.Description)
		}
	}

	if result.Skipped > 0 {
		color.Yellow("skipped %d cluster(s) on labeling failure", result.Skipped)
	}
}
