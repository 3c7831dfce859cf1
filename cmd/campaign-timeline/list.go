package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"campaigntimeline/internal/campaign"
)

// listCmd prints campaigns with their resource coverage
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List campaigns with their resource status",
	Long: `Prints one line per campaign in file order: dates, status, and each
resource quota with its level (full, warning, critical).

Example:
  campaign-timeline list --input campaigns.yaml`,
	Args: cobra.NoArgs,
	RunE: runList,
}

func quotaCell(q campaign.Quota) string {
	return fmt.Sprintf("%s %s", q, q.Status().Level)
}

func runList(cmd *cobra.Command, args []string) error {
	records, err := campaign.LoadFile(inputFile)
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tSTART\tEND\tSTATUS\tTEAM\tACCOMMODATION\tVEHICLES\tEQUIPMENT\tRESOURCES")
	for _, r := range records {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			r.ID, r.Name, r.StartDate, r.EndDate, r.Status,
			quotaCell(r.Team), quotaCell(r.Accommodation), quotaCell(r.Vehicles), quotaCell(r.Equipment),
			r.Worst())
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	logger.Debug("Campaigns listed", zap.Int("count", len(records)), zap.String("file", inputFile))
	return nil
}
