package catalog

// Default returns the compiled-in catalog. A deployment normally overlays
// this with a YAML file (see Load) so pricing and rebate rates can change
// without a code release.
func Default() *Catalog {
	return &Catalog{
		Panel: PanelSpec{
			Brand:                    "LONGi",
			Model:                    "Hi-MO X10",
			WattageW:                 475,
			Efficiency:               0.243,
			TempCoeffPerC:            -0.0026,
			DegradationAnnual:        0.0035,
			WarrantyProductYears:     15,
			WarrantyPerformanceYears: 30,
		},
		Battery: BatterySpec{
			Brand:                   "SigEnergy",
			Model:                   "SigenStor",
			CapacityPerModuleKwh:    8,
			DepthOfDischarge:        0.95,
			MaxChargeKwPerModule:    2.5,
			MaxDischargeKwPerModule: 2.5,
			RoundTripEfficiency:     0.95,
			InverterCapKw:           10,
			DegradationAnnual:       0.015,
			Chemistry:               "LiFePO4",
			CycleLife:               "10,000+",
			WarrantyYears:           10,
			EVChargerKw:             12.5,
		},
		Inverters: []InverterSKU{
			{Model: "Sigen Hybrid 5.0 SP", Phase: "single", MaxPvKw: 6.6, Price: 1850},
			{Model: "Sigen Hybrid 8.0 SP", Phase: "single", MaxPvKw: 10.6, Price: 2400},
			{Model: "Sigen Hybrid 10.0 SP", Phase: "single", MaxPvKw: 13.3, Price: 2950},
			{Model: "Sigen Hybrid 10.0 TP", Phase: "three", MaxPvKw: 13.3, Price: 3250},
			{Model: "Sigen Hybrid 15.0 TP", Phase: "three", MaxPvKw: 20.0, Price: 4200},
			{Model: "Sigen Hybrid 20.0 TP", Phase: "three", MaxPvKw: 26.6, Price: 5400},
			{Model: "Sigen Hybrid 25.0 TP", Phase: "three", MaxPvKw: 33.3, Price: 6500},
		},
		Pricing: PricingRules{
			PanelUnitPrice:         210,
			BatteryModulePrice:     3400,
			PVInstallPerKw:         350,
			BatteryInstallPerStack: 1200,
			GrossMargin:            0.35,
			CommissionRate:         0.05,
			TaxMultiplier:          1.10,
			RoundingStep:           500,
		},
		Rebates: RebateRules{
			STCUnitPrice:    38,
			STCDeemingYears: 5,
			STCZoneRating: map[string]float64{
				"NSW": 1.382, "VIC": 1.185, "QLD": 1.382, "SA": 1.382,
				"WA": 1.382, "TAS": 1.185, "NT": 1.622, "ACT": 1.382,
			},
			BatteryPerKwh: 330,
			BatteryCapKwh: 50,
		},
		Sizing: SizingRules{
			MinPanels:             10,
			MinBatteryModules:     2,
			EveningBuffer:         1.10,
			BatteryUsageRatio:     1.50,
			CoverageTiers:         []float64{1.00, 1.25, 1.50, 1.75},
			RecommendedTier:       1.50,
			MaxBillToZeroAttempts: 20,
			SystemLosses:          0.14,
			MaxArrayKw:            30,
		},
		Tariff: TariffDefaults{
			DailyUsageKwh: 30,
			TariffRate:    0.32,
			SupplyCharge:  1.10,
			FeedInTariff:  0.05,
			FeedInByState: map[string]float64{
				"NSW": 0.05, "VIC": 0.04, "QLD": 0.06, "SA": 0.05,
				"WA": 0.025, "TAS": 0.087, "NT": 0.09, "ACT": 0.07,
			},
			Escalation:      0.05,
			ProjectionYears: 20,
		},
		Zones: defaultZoneTable(),
	}
}

func defaultZoneTable() ZoneTable {
	return ZoneTable{
		Prefixes: map[string]ZoneInfo{
			"20": {Name: "Sydney", PSH: 4.2, State: "NSW"},
			"21": {Name: "Sydney", PSH: 4.2, State: "NSW"},
			"22": {Name: "Sydney", PSH: 4.2, State: "NSW"},
			"23": {Name: "Wollongong", PSH: 4.1, State: "NSW"},
			"24": {Name: "South Coast", PSH: 4.0, State: "NSW"},
			"25": {Name: "Canberra", PSH: 4.3, State: "ACT"},
			"26": {Name: "Canberra", PSH: 4.3, State: "ACT"},
			"28": {Name: "Hunter", PSH: 4.3, State: "NSW"},
			"29": {Name: "North NSW", PSH: 4.5, State: "NSW"},
			"30": {Name: "Melbourne", PSH: 3.6, State: "VIC"},
			"31": {Name: "Melbourne", PSH: 3.6, State: "VIC"},
			"32": {Name: "Melbourne", PSH: 3.6, State: "VIC"},
			"33": {Name: "Geelong", PSH: 3.7, State: "VIC"},
			"34": {Name: "Gippsland", PSH: 3.5, State: "VIC"},
			"35": {Name: "West VIC", PSH: 3.8, State: "VIC"},
			"36": {Name: "North VIC", PSH: 4.0, State: "VIC"},
			"40": {Name: "Brisbane", PSH: 4.8, State: "QLD"},
			"41": {Name: "Brisbane", PSH: 4.8, State: "QLD"},
			"42": {Name: "Gold Coast", PSH: 4.7, State: "QLD"},
			"43": {Name: "Sunshine Coast", PSH: 4.9, State: "QLD"},
			"44": {Name: "Toowoomba", PSH: 4.8, State: "QLD"},
			"45": {Name: "Townsville", PSH: 5.2, State: "QLD"},
			"46": {Name: "Mackay", PSH: 5.1, State: "QLD"},
			"47": {Name: "Rockhampton", PSH: 5.0, State: "QLD"},
			"48": {Name: "Cairns", PSH: 5.0, State: "QLD"},
			"49": {Name: "Far North QLD", PSH: 5.0, State: "QLD"},
			"50": {Name: "Adelaide", PSH: 4.4, State: "SA"},
			"51": {Name: "Adelaide", PSH: 4.4, State: "SA"},
			"52": {Name: "Adelaide Hills", PSH: 4.3, State: "SA"},
			"60": {Name: "Perth", PSH: 5.0, State: "WA"},
			"61": {Name: "Perth", PSH: 5.0, State: "WA"},
			"62": {Name: "Perth South", PSH: 5.0, State: "WA"},
			"70": {Name: "Hobart", PSH: 3.5, State: "TAS"},
			"71": {Name: "Launceston", PSH: 3.6, State: "TAS"},
			"08": {Name: "Darwin", PSH: 5.4, State: "NT"},
		},
		StateDefaults: map[string]float64{
			"NSW": 4.2, "VIC": 3.6, "QLD": 4.8, "SA": 4.4,
			"WA": 5.0, "TAS": 3.5, "NT": 5.4, "ACT": 4.3,
		},
		BaselineState: "QLD",
		Network: map[string]string{
			"20": "Ausgrid", "21": "Ausgrid", "22": "Ausgrid",
			"23": "Endeavour Energy", "25": "Evoenergy", "26": "Evoenergy",
			"28": "Ausgrid", "29": "Essential Energy",
			"30": "CitiPower", "31": "United Energy", "32": "Jemena",
			"33": "Powercor", "34": "AusNet",
			"40": "Energex", "41": "Energex", "42": "Energex",
			"43": "Energex", "44": "Ergon", "45": "Ergon",
			"46": "Ergon", "47": "Ergon", "48": "Ergon", "49": "Ergon",
			"50": "SA Power Networks", "51": "SA Power Networks", "52": "SA Power Networks",
			"60": "Western Power", "61": "Western Power", "62": "Western Power",
			"70": "TasNetworks", "71": "TasNetworks",
			"08": "Power and Water",
		},
	}
}
