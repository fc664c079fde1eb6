package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newSampleCmd(a *app) *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "sample",
		Short: "Emit one record for every barangay/disease pair of the built-in dataset",
		Args:  cobra.NoArgs,
		RunE: a.run(func(cmd *cobra.Command) error {
			if out == "" {
				out = a.cfg.Output.SamplePath
			}

			doc := a.svc.Sample()
			if err := a.svc.Write(out, doc); err != nil {
				a.log.Error(err, "Failed to write sample SQL", "path", out)
				return err
			}

			w := cmd.OutOrStdout()
			fmt.Fprintln(w, "Generated sample health indicators SQL")
			fmt.Fprintf(w, "Output: %s\n", out)
			fmt.Fprintf(w, "Total records: %d\n", doc.Statements)

			return a.finish(cmd, doc)
		}),
	}

	cmd.Flags().StringVarP(&out, "out", "o", "", "output file (default from output.sample_path)")
	return cmd
}

func newCSVCmd(a *app) *cobra.Command {
	var in, out string

	cmd := &cobra.Command{
		Use:   "csv",
		Short: "Emit records for every barangay listed in a CSV or XLSX file",
		Args:  cobra.NoArgs,
		RunE: a.run(func(cmd *cobra.Command) error {
			w := cmd.OutOrStdout()

			doc, err := a.svc.FromCSV(cmd.Context(), in)
			if err != nil {
				a.log.Error(err, "Failed to generate statements", "path", in)
				return err
			}
			if doc == nil {
				fmt.Fprintf(w, "No SQL generated from %s\n", in)
				return nil
			}

			if out != "" {
				if err := a.svc.Write(out, doc); err != nil {
					a.log.Error(err, "Failed to write SQL", "path", out)
					return err
				}
				fmt.Fprintf(w, "SQL statements written to: %s\n", out)
			}
			fmt.Fprintf(w, "Total records: %d\n", doc.Statements)

			return a.finish(cmd, doc)
		}),
	}

	cmd.Flags().StringVarP(&in, "in", "i", "", "barangay file with a Barangay column (.csv or .xlsx)")
	cmd.Flags().StringVarP(&out, "out", "o", "", "output file; when empty the document is only counted")
	_ = cmd.MarkFlagRequired("in")
	return cmd
}
