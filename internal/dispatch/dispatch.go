package dispatch

import "math"

// Action is a human-friendly operating mode for one hour.
// Keep these values stable; they are intended for CSV output.
type Action string

const (
	ActionCharging    Action = "CHARGING"
	ActionIdle        Action = "IDLE"
	ActionDischarging Action = "DISCHARGING"
)

// Params defines the battery as the simulator sees it.
//
// Units:
// - UsableCapacityKwh: kWh (nameplate x depth of discharge)
// - MaxChargeKw, MaxDischargeKw: kW
// - RoundTripEfficiency: fraction 0..1, applied on charge only
// - InitialSOCFraction: starting state of charge as a fraction of usable capacity
type Params struct {
	UsableCapacityKwh   float64
	MaxChargeKw         float64
	MaxDischargeKw      float64
	RoundTripEfficiency float64
	InitialSOCFraction  float64
}

// hasBattery reports whether the params describe a battery that can do
// anything. Zero capacity or rates degrade to solar-only passthrough
// rather than dividing by zero.
func (p Params) hasBattery() bool {
	return p.UsableCapacityKwh > 0 && p.RoundTripEfficiency > 0 &&
		(p.MaxChargeKw > 0 || p.MaxDischargeKw > 0)
}

// Result captures the full day of simulated energy flows. All hourly
// arrays are kWh for that hour; SOC is the state of charge at the end of
// the hour.
type Result struct {
	SOC         [24]float64 `json:"soc"`
	Charge      [24]float64 `json:"charge"`
	Discharge   [24]float64 `json:"discharge"`
	GridImport  [24]float64 `json:"grid_import"`
	GridExport  [24]float64 `json:"grid_export"`
	SelfConsume [24]float64 `json:"self_consume"`
	Actions     [24]Action  `json:"actions"`

	TotalCharge      float64 `json:"total_charge"`
	TotalDischarge   float64 `json:"total_discharge"`
	TotalGridImport  float64 `json:"total_grid_import"`
	TotalGridExport  float64 `json:"total_grid_export"`
	TotalSelfConsume float64 `json:"total_self_consume"`
	TotalLoad        float64 `json:"total_load"`
	TotalSolar       float64 `json:"total_solar"`

	// SelfPowered is the fraction of load met without the grid, 0..1.
	SelfPowered float64 `json:"self_powered"`
}

// Simulate runs the hour-by-hour charge/discharge simulation over one day.
// Hour h depends on hour h-1 through the SOC, so the loop is strictly
// sequential.
//
// Per hour, with net = solar - load:
// - surplus: charge min(net, rate, headroom/eff); efficiency loss is taken
//   on the way in; the remainder exports.
// - deficit: discharge min(deficit, rate, soc); the remainder imports.
// - self-consumption is min(load, solar) regardless of battery action.
func Simulate(load, solar [24]float64, p Params) Result {
	var r Result

	soc := 0.0
	if p.hasBattery() {
		soc = clamp(p.InitialSOCFraction, 0, 1) * p.UsableCapacityKwh
	}

	for h := 0; h < 24; h++ {
		net := solar[h] - load[h]
		sc := math.Min(load[h], solar[h])

		var charge, discharge, imp, exp float64
		if net > 0 {
			if p.hasBattery() {
				headroom := (p.UsableCapacityKwh - soc) / p.RoundTripEfficiency
				charge = math.Max(0, math.Min(math.Min(net, p.MaxChargeKw), headroom))
				soc = math.Min(soc+charge*p.RoundTripEfficiency, p.UsableCapacityKwh)
			}
			exp = net - charge
		} else if net < 0 {
			deficit := -net
			if p.hasBattery() {
				discharge = math.Max(0, math.Min(math.Min(deficit, p.MaxDischargeKw), soc))
				soc = math.Max(0, soc-discharge)
			}
			imp = deficit - discharge
		}

		r.SOC[h] = soc
		r.Charge[h] = charge
		r.Discharge[h] = discharge
		r.GridImport[h] = imp
		r.GridExport[h] = exp
		r.SelfConsume[h] = sc
		r.Actions[h] = actionFor(charge, discharge)

		r.TotalCharge += charge
		r.TotalDischarge += discharge
		r.TotalGridImport += imp
		r.TotalGridExport += exp
		r.TotalSelfConsume += sc
		r.TotalLoad += load[h]
		r.TotalSolar += solar[h]
	}

	if r.TotalLoad > 0 {
		r.SelfPowered = clamp((r.TotalSelfConsume+r.TotalDischarge)/r.TotalLoad, 0, 1)
	}
	return r
}

func actionFor(charge, discharge float64) Action {
	switch {
	case charge > 0:
		return ActionCharging
	case discharge > 0:
		return ActionDischarging
	default:
		return ActionIdle
	}
}

func clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}
