package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/phonics-backend/internal/service/phonics"
)

func newBrowseCmd() *cobra.Command {
	var (
		stage  int
		limit  int
		offset int
		asJSON bool
	)

	cmd := &cobra.Command{
		Use:   "browse",
		Short: "List phonemes in frequency order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			svc, err := newOfflineService(cmd, cfg)
			if err != nil {
				return err
			}

			input := phonics.BrowseInput{Limit: limit, Offset: offset}
			if cmd.Flags().Changed("stage") {
				input.Stage = &stage
			}

			res, err := svc.Browse(cmd.Context(), input)
			if err != nil {
				return err
			}

			if asJSON {
				return writeOutput(cmd.OutOrStdout(), res, true)
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tSYMBOL\tNAME\tSTAGE\tRANK")
			for _, p := range res.Phonemes {
				rank := "-"
				if p.FrequencyRank != nil {
					rank = fmt.Sprint(*p.FrequencyRank)
				}
				fmt.Fprintf(tw, "%s\t%s\t%s\t%d\t%s\n", p.ID, p.IPASymbol, p.CommonName, p.StageID, rank)
			}
			if err := tw.Flush(); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "\n%d of %d\n", len(res.Phonemes), res.Total)
			return nil
		},
	}

	cmd.Flags().IntVar(&stage, "stage", 0, "Only list phonemes of this stage")
	cmd.Flags().IntVar(&limit, "limit", phonics.DefaultBrowseLimit, "Page size")
	cmd.Flags().IntVar(&offset, "offset", 0, "Records to skip")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print JSON instead of a table")
	return cmd
}
