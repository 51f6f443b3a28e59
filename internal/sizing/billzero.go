package sizing

import (
	"solar-proposal/internal/dispatch"
	"solar-proposal/internal/solar"
)

// Outcome is the tagged result of the bill-to-zero verification search.
// When Converged is false the spec holds the last attempted size, which
// callers must not present as a guaranteed-zero-bill system.
type Outcome struct {
	Spec         SizeSpec `json:"spec"`
	Converged    bool     `json:"converged"`
	Attempts     int      `json:"attempts"`
	NetDailyCost float64  `json:"net_daily_cost"`
}

// VerifyBillToZero checks that the sized system zeroes the customer's net
// daily cost, adding one panel per attempt until it does. The search is a
// bounded fixed-point loop: it can diverge when the marginal export value
// never overcomes the remaining bill (e.g. a zero feed-in tariff), so the
// attempt cap is a hard termination guarantee, not a tuning knob.
func VerifyBillToZero(in Inputs, spec SizeSpec, initialSOC float64) Outcome {
	cat := in.Catalog
	maxAttempts := cat.Sizing.MaxBillToZeroAttempts
	if maxAttempts < 1 {
		maxAttempts = 1
	}

	out := Outcome{Spec: spec}
	for {
		curve := solar.Curve(out.Spec.ArrayKw, in.Zone.PSH, in.Customer.Orientation, cat.Sizing.SystemLosses)
		sim := dispatch.Simulate(in.Profile.TotalLoad, curve, out.Spec.DispatchParams(cat.Battery, initialSOC))

		out.NetDailyCost = sim.TotalGridImport*in.Customer.TariffRate +
			in.Customer.SupplyCharge -
			sim.TotalGridExport*in.Customer.FeedInTariff

		if out.NetDailyCost <= 0 {
			out.Converged = true
			return out
		}
		if out.Attempts >= maxAttempts {
			return out
		}

		grown := out.Spec.withPanels(out.Spec.PanelCount+1, cat.Panel)
		if cat.Sizing.MaxArrayKw > 0 && grown.ArrayKw > cat.Sizing.MaxArrayKw {
			// Export cap reached; adding panels is no longer possible.
			return out
		}
		out.Spec = grown
		out.Attempts++
	}
}
