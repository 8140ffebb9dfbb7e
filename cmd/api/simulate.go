package main

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	appscenarios "github.com/bryanwahyu/roi-simulator/internal/application/scenarios"
	"github.com/bryanwahyu/roi-simulator/internal/domain/roi"
)

func newSimulateCmd() *cobra.Command {
	var (
		in     roi.Inputs
		asJSON bool
	)
	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Compute a projection from flags and print it",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			svc := &appscenarios.Service{}
			res, err := svc.Simulate(in)
			if err != nil {
				return err
			}
			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(map[string]any{"success": true, "results": res})
			}
			return printResults(cmd.OutOrStdout(), res)
		},
	}

	f := cmd.Flags()
	f.Float64Var(&in.MonthlyInvoiceVolume, "volume", 2000, "monthly invoice volume")
	f.Float64Var(&in.NumAPStaff, "staff", 3, "AP staff headcount")
	f.Float64Var(&in.AvgHoursPerInvoice, "hours", 0.17, "average hours per invoice")
	f.Float64Var(&in.HourlyWage, "wage", 30, "hourly wage")
	f.Float64Var(&in.ErrorRateManual, "error-rate", 0.5, "manual error rate in percent")
	f.Float64Var(&in.ErrorCost, "error-cost", 100, "cost per error")
	f.IntVar(&in.TimeHorizonMonths, "months", 36, "time horizon in months")
	f.Float64Var(&in.OneTimeImplementationCost, "implementation-cost", 50000, "one-time implementation cost")
	f.BoolVar(&asJSON, "json", false, "print the API JSON envelope")
	return cmd
}

func printResults(w io.Writer, res roi.Results) error {
	payback := "never"
	if res.PaybackMonths != nil {
		payback = fmt.Sprintf("%.1f", *res.PaybackMonths)
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintf(tw, "Monthly savings\t%.0f\t\n", res.MonthlySavings)
	fmt.Fprintf(tw, "Cumulative savings\t%.0f\t\n", res.CumulativeSavings)
	fmt.Fprintf(tw, "Net savings\t%.0f\t\n", res.NetSavings)
	fmt.Fprintf(tw, "Payback (months)\t%s\t\n", payback)
	fmt.Fprintf(tw, "ROI (%%)\t%.1f\t\n", res.ROIPercentage)
	return tw.Flush()
}
