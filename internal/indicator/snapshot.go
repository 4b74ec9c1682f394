package indicator

import "CycleSentinel/internal/model"

// Snapshot computes every configured indicator for one validated series.
// Indicators the series is too short for come back absent; the snapshot is
// still produced. The series itself failing validation is the only error.
func Snapshot(series *model.PriceSeries, p Params) (*model.IndicatorSnapshot, error) {
	if err := series.Validate(); err != nil {
		return nil, err
	}

	closes := series.Closes()
	snap := &model.IndicatorSnapshot{
		AssetID:      series.AssetID,
		CurrentPrice: series.CurrentPrice,
		MACross:      model.NoCross,
	}
	if snap.CurrentPrice == 0 && len(closes) > 0 {
		snap.CurrentPrice = closes[len(closes)-1]
	}

	if v, err := RSI(closes, p.RSIPeriod); err == nil {
		snap.RSI = model.Some(v)
	}

	if macd, signal, hist, err := MACD(closes, p.MACDFast, p.MACDSlow, p.MACDSignal); err == nil {
		snap.MACD = model.Some(macd)
		snap.MACDSignal = model.Some(signal)
		snap.MACDHistogram = model.Some(hist)
	}

	if short, long, cross, err := MACrossover(closes, p.MAShort, p.MALong); err == nil {
		snap.MAShort = model.Some(short)
		snap.MALong = model.Some(long)
		snap.MACross = cross
	}

	if ratio, crossed, err := PiCycle(closes, p.PiCycleShort, p.PiCycleLong); err == nil {
		snap.PiCycleRatio = model.Some(ratio)
		snap.PiCycleCrossed = crossed
	}

	short, medium, long, sOK, mOK, lOK := RCITriple(closes, p.RCIPeriods)
	if sOK {
		snap.RCI.Short = model.Some(short)
	}
	if mOK {
		snap.RCI.Medium = model.Some(medium)
	}
	if lOK {
		snap.RCI.Long = model.Some(long)
	}

	if upper, middle, lower, err := Bollinger(closes, p.BollingerPeriod, p.BollingerStdDev); err == nil {
		snap.BollingerUpper = model.Some(upper)
		snap.BollingerMiddle = model.Some(middle)
		snap.BollingerLower = model.Some(lower)
	}

	if k, d, err := Stochastic(series.Bars, p.StochK, p.StochD); err == nil {
		snap.StochK = model.Some(k)
		snap.StochD = model.Some(d)
	}

	return snap, nil
}
