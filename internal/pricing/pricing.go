package pricing

import (
	"fmt"
	"math"

	"solar-proposal/internal/catalog"
	"solar-proposal/internal/model"
	"solar-proposal/internal/sizing"
)

// Result itemizes the pricing waterfall for one system configuration.
// All values are dollars; CustomerPrice is rounded to the catalog step.
type Result struct {
	CostOfGoods    float64 `json:"cost_of_goods"`
	SellPriceExTax float64 `json:"sell_price_ex_tax"`
	Commission     float64 `json:"commission"`
	GrossPrice     float64 `json:"gross_price"`

	STCUnits      int     `json:"stc_units"`
	STCRebate     float64 `json:"stc_rebate"`
	BatteryRebate float64 `json:"battery_rebate"`

	CustomerPrice float64 `json:"customer_price"`

	Inverter          catalog.InverterSKU `json:"inverter"`
	InverterOversized bool                `json:"inverter_oversized"`
}

// Price runs the cost-plus waterfall for a sized system:
// itemized cost of goods, gross margin, grossed-up sales commission,
// consumption tax, then itemized rebates and rounding.
func Price(spec sizing.SizeSpec, phase model.Phase, state string, cat *catalog.Catalog) (Result, error) {
	inv, oversized, err := SelectInverter(spec.ArrayKw, phase, cat.Inverters)
	if err != nil {
		return Result{}, err
	}

	p := cat.Pricing
	cogs := float64(spec.PanelCount)*p.PanelUnitPrice +
		inv.Price +
		float64(spec.BatteryModules)*p.BatteryModulePrice +
		spec.ArrayKw*p.PVInstallPerKw +
		p.BatteryInstallPerStack

	sellExTax, commission, gross := waterfall(cogs, p.GrossMargin, p.CommissionRate, p.TaxMultiplier)

	stcUnits, stcRebate := stcRebateFor(spec.ArrayKw, state, cat.Rebates)
	batteryRebate := batteryRebateFor(spec.BatteryUsableKwh, cat.Rebates)

	price := roundToStep(gross-stcRebate-batteryRebate, p.RoundingStep)
	if price < 0 {
		price = 0
	}

	return Result{
		CostOfGoods:       cogs,
		SellPriceExTax:    sellExTax,
		Commission:        commission,
		GrossPrice:        gross,
		STCUnits:          stcUnits,
		STCRebate:         stcRebate,
		BatteryRebate:     batteryRebate,
		CustomerPrice:     price,
		Inverter:          inv,
		InverterOversized: oversized,
	}, nil
}

// waterfall applies margin, commission and tax.
//
// The commission is a fraction of the final tax-inclusive price but is paid
// out of ex-tax revenue, so the ex-tax sell price must be grossed up:
//
//	S = COGS*(1+margin) + rate*tax*S  =>  S = COGS*(1+margin) / (1 - rate*tax)
//
// A naive S = COGS*(1+margin)*(1+rate) under-recovers the commission once
// tax is applied; the divisor form keeps the rep's cut exact.
func waterfall(cogs, margin, commissionRate, taxMult float64) (sellExTax, commission, gross float64) {
	sellExTax = cogs * (1 + margin) / (1 - commissionRate*taxMult)
	gross = sellExTax * taxMult
	commission = commissionRate * gross
	return
}

// stcRebateFor computes the small-scale certificate rebate: units are
// floored to whole certificates before pricing, per the scheme rules.
func stcRebateFor(arrayKw float64, state string, r catalog.RebateRules) (int, float64) {
	rating, ok := r.STCZoneRating[state]
	if !ok {
		return 0, 0
	}
	units := int(math.Floor(arrayKw * rating * r.STCDeemingYears))
	if units < 0 {
		units = 0
	}
	return units, float64(units) * r.STCUnitPrice
}

// batteryRebateFor computes the per-kWh battery rebate, capped at the
// scheme's maximum claimable capacity.
func batteryRebateFor(usableKwh float64, r catalog.RebateRules) float64 {
	claimable := math.Min(usableKwh, r.BatteryCapKwh)
	if claimable < 0 {
		claimable = 0
	}
	return claimable * r.BatteryPerKwh
}

// SelectInverter picks the cheapest SKU of the right phase that supports
// the array. When nothing fits it falls back to the largest SKU of that
// phase and reports the mismatch instead of swallowing it.
func SelectInverter(arrayKw float64, phase model.Phase, skus []catalog.InverterSKU) (catalog.InverterSKU, bool, error) {
	var best, largest *catalog.InverterSKU
	for i := range skus {
		sku := &skus[i]
		if sku.Phase != string(phase) {
			continue
		}
		if largest == nil || sku.MaxPvKw > largest.MaxPvKw {
			largest = sku
		}
		if sku.MaxPvKw >= arrayKw && (best == nil || sku.Price < best.Price) {
			best = sku
		}
	}
	if best != nil {
		return *best, false, nil
	}
	if largest != nil {
		return *largest, true, nil
	}
	return catalog.InverterSKU{}, false, fmt.Errorf("no inverter SKU for phase %q", phase)
}

// roundToStep rounds to the nearest multiple of step dollars; a zero step
// rounds to whole dollars.
func roundToStep(x, step float64) float64 {
	if step <= 0 {
		return math.Round(x)
	}
	return math.Round(x/step) * step
}
