package dispatch

import (
	"encoding/csv"
	"os"
	"strconv"
)

// WriteHourlyCSV writes the simulated day as one row per hour, alongside
// the load and solar curves that drove it.
func WriteHourlyCSV(path string, load, solar [24]float64, r Result) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	header := []string{
		"hour",
		"load_kwh",
		"solar_kwh",
		"action",
		"charge_kwh",
		"discharge_kwh",
		"grid_import_kwh",
		"grid_export_kwh",
		"self_consume_kwh",
		"soc_kwh",
	}
	if err := w.Write(header); err != nil {
		return err
	}

	for h := 0; h < 24; h++ {
		row := []string{
			strconv.Itoa(h),
			fmtFloat(load[h]),
			fmtFloat(solar[h]),
			string(r.Actions[h]),
			fmtFloat(r.Charge[h]),
			fmtFloat(r.Discharge[h]),
			fmtFloat(r.GridImport[h]),
			fmtFloat(r.GridExport[h]),
			fmtFloat(r.SelfConsume[h]),
			fmtFloat(r.SOC[h]),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	return w.Error()
}

func fmtFloat(x float64) string {
	return strconv.FormatFloat(x, 'f', 4, 64)
}
