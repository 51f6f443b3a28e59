package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"solar-proposal/internal/config"
	"solar-proposal/internal/dispatch"
	"solar-proposal/internal/model"
	"solar-proposal/internal/proposal"
	"solar-proposal/internal/solar"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func main() {
	root := &cobra.Command{
		Use:           "solar-proposal",
		Short:         "Residential solar and battery proposal calculator",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newRunCmd(), newZoneCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func newRunCmd() *cobra.Command {
	var (
		customerPath string
		configPath   string
		outPath      string
		csvPath      string
		asJSON       bool
	)

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Calculate a proposal for one customer",
		RunE: func(cmd *cobra.Command, args []string) error {
			cust, err := loadCustomer(customerPath)
			if err != nil {
				return err
			}

			cfg := config.Default()
			if configPath != "" {
				if cfg, err = config.Load(configPath); err != nil {
					return err
				}
			}
			engine, err := cfg.Engine()
			if err != nil {
				return err
			}

			res, err := engine.Calculate(cust)
			if err != nil {
				return err
			}

			if csvPath != "" {
				rec := res.RecommendedOption()
				if err := os.MkdirAll(filepath.Dir(csvPath), 0o755); err != nil {
					return err
				}
				if err := dispatch.WriteHourlyCSV(csvPath, res.LoadProfile.TotalLoad, rec.SolarCurve, rec.Battery); err != nil {
					return fmt.Errorf("write dispatch csv: %w", err)
				}
				fmt.Fprintln(cmd.ErrOrStderr(), "wrote hourly dispatch to", csvPath)
			}

			if outPath != "" || asJSON {
				raw, err := json.MarshalIndent(res, "", "  ")
				if err != nil {
					return err
				}
				if outPath == "" || outPath == "-" {
					fmt.Fprintln(cmd.OutOrStdout(), string(raw))
					return nil
				}
				return os.WriteFile(outPath, raw, 0o644)
			}

			printSummary(cmd, res)
			return nil
		},
	}

	cmd.Flags().StringVar(&customerPath, "customer", "", "Path to customer profile (YAML or JSON)")
	cmd.Flags().StringVar(&configPath, "config", "", "Path to engine config YAML")
	cmd.Flags().StringVar(&outPath, "out", "", "Write full proposal JSON to this path ('-' for stdout)")
	cmd.Flags().StringVar(&csvPath, "csv", "", "Write the recommended option's hourly dispatch to this CSV path")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print full proposal JSON instead of the summary")
	_ = cmd.MarkFlagRequired("customer")
	return cmd
}

func newZoneCmd() *cobra.Command {
	var state string

	cmd := &cobra.Command{
		Use:   "zone <postcode>",
		Short: "Look up the solar zone for a postcode",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := config.Default().Catalog()
			if err != nil {
				return err
			}
			zone := solar.LookupZone(cat.Zones, args[0], state)

			fmt.Fprintf(cmd.OutOrStdout(), "Zone:     %s (%s)\n", zone.Name, zone.State)
			fmt.Fprintf(cmd.OutOrStdout(), "PSH:      %.2f h/day\n", zone.PSH)
			fmt.Fprintf(cmd.OutOrStdout(), "Network:  %s\n", cat.Zones.NetworkOperator(args[0]))
			if zone.Estimated {
				fmt.Fprintln(cmd.OutOrStdout(), "Note:     postcode not in table, state estimate used")
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&state, "state", "", "State fallback when the postcode is unknown")
	return cmd
}

// loadCustomer reads a customer profile from YAML or JSON. YAML goes through
// a JSON round-trip so both formats share the struct's json tags.
func loadCustomer(path string) (model.CustomerProfile, error) {
	var cust model.CustomerProfile

	raw, err := os.ReadFile(path)
	if err != nil {
		return cust, err
	}

	if strings.EqualFold(filepath.Ext(path), ".json") {
		err = json.Unmarshal(raw, &cust)
		return cust, err
	}

	var generic map[string]any
	if err := yaml.Unmarshal(raw, &generic); err != nil {
		return cust, fmt.Errorf("parse customer %s: %w", path, err)
	}
	bridged, err := json.Marshal(generic)
	if err != nil {
		return cust, err
	}
	err = json.Unmarshal(bridged, &cust)
	return cust, err
}

func printSummary(cmd *cobra.Command, res *proposal.Result) {
	out := cmd.OutOrStdout()
	a := res.Assumptions

	fmt.Fprintf(out, "Customer:  %.1f kWh/day, %s %s (zone %s, %.2f PSH",
		res.LoadProfile.DailyTotalKwh, res.Customer.Postcode, res.Customer.State, a.Zone.Name, a.Zone.PSH)
	if a.Zone.Estimated {
		fmt.Fprint(out, ", estimated")
	}
	fmt.Fprintf(out, ")\nNetwork:   %s\n", a.NetworkOperator)
	fmt.Fprintf(out, "Tariff:    $%.2f/kWh + $%.2f/day, FiT $%.2f/kWh, escalation %.1f%%/yr\n\n",
		a.TariffRate, a.SupplyCharge, a.FeedInTariff, a.Escalation*100)

	fmt.Fprintf(out, "%-9s %7s %8s %9s %9s %12s %9s %8s\n",
		"coverage", "panels", "array", "battery", "self-pwr", "price", "payback", "savings")
	for _, opt := range res.Options {
		marker := " "
		if opt.Recommended {
			marker = "*"
		}
		payback := "never"
		if opt.Financial.PaidBack {
			payback = fmt.Sprintf("yr %d", opt.Financial.PaybackYear)
		}
		fmt.Fprintf(out, "%s%-8.0f%% %6d %7.2fkW %7.1fkWh %8.0f%% %12s %9s %8s\n",
			marker, opt.CoverageTier*100,
			opt.Spec.PanelCount, opt.Spec.ArrayKw, opt.Spec.BatteryTotalKwh,
			opt.Battery.SelfPowered*100,
			money(opt.Pricing.CustomerPrice),
			payback,
			money(opt.Financial.TotalSavings))
	}

	rec := res.RecommendedOption()
	fmt.Fprintf(out, "\nRecommended: %.0f%% coverage, %s installed\n", rec.CoverageTier*100, money(rec.Pricing.CustomerPrice))
	fmt.Fprintf(out, "Bills:       $%.0f/yr now -> $%.0f/yr in year %d without solar\n",
		res.BillOutlook.Year1, res.BillOutlook.FinalYear, res.Options[0].Financial.Years)
	if rec.BillToZero.Converged {
		fmt.Fprintln(out, "Bill-to-zero: achieved")
	} else {
		fmt.Fprintf(out, "Bill-to-zero: not reached (residual $%.2f/day)\n", rec.BillToZero.NetDailyCost)
	}
}

func money(x float64) string {
	return fmt.Sprintf("$%.0f", x)
}
