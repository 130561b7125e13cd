package backtest

import (
	"encoding/csv"
	"os"
	"strconv"
	"time"
)

func WriteLedgerCSV(path string, ledger []LedgerRow) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	header := []string{
		"index",
		"timestamp",
		"open",
		"high",
		"low",
		"close",
		"box_high",
		"box_low",
		"action",
		"raw_return",
		"strategy_return",
		"equity",
	}
	if err := w.Write(header); err != nil {
		return err
	}

	for _, r := range ledger {
		row := []string{
			strconv.Itoa(r.Index),
			fmtTime(r.Timestamp),
			fmtFloat(r.Open),
			fmtFloat(r.High),
			fmtFloat(r.Low),
			fmtFloat(r.Close),
			fmtBox(r.BoxHigh, r.HasBox),
			fmtBox(r.BoxLow, r.HasBox),
			string(r.Action),
			fmtFloat(r.RawReturn),
			fmtFloat(r.StrategyReturn),
			fmtFloat(r.Equity),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	return w.Error()
}

func fmtTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(time.RFC3339)
}

func fmtFloat(x float64) string {
	return strconv.FormatFloat(x, 'f', 6, 64)
}

// fmtBox leaves the cell empty when the trailing window was incomplete.
func fmtBox(x float64, ok bool) string {
	if !ok {
		return ""
	}
	return fmtFloat(x)
}
