package raster

import (
	"math"
	"testing"
)

func TestBand_Stats(t *testing.T) {
	b := Band{Rows: 2, Cols: 2, Data: []float64{2, 4, 4, 6}}
	st := b.Stats()

	if st.Min != 2 || st.Max != 6 {
		t.Errorf("range: got [%g,%g], want [2,6]", st.Min, st.Max)
	}
	if st.Mean != 4 {
		t.Errorf("Mean: got %g, want 4", st.Mean)
	}
	if math.Abs(st.StdDev-math.Sqrt(2)) > 1e-9 {
		t.Errorf("StdDev: got %g, want sqrt(2)", st.StdDev)
	}
	if st.NoDataCount != 0 {
		t.Errorf("NoDataCount: got %d, want 0", st.NoDataCount)
	}
}

func TestBand_Stats_SkipsNaN(t *testing.T) {
	b := Band{Rows: 1, Cols: 4, Data: []float64{1, math.NaN(), 3, math.NaN()}}
	st := b.Stats()

	if st.NoDataCount != 2 {
		t.Errorf("NoDataCount: got %d, want 2", st.NoDataCount)
	}
	if st.Min != 1 || st.Max != 3 || st.Mean != 2 {
		t.Errorf("stats over valid samples: got min=%g max=%g mean=%g", st.Min, st.Max, st.Mean)
	}
}

func TestBand_Stats_AllNaN(t *testing.T) {
	b := Band{Rows: 1, Cols: 2, Data: []float64{math.NaN(), math.NaN()}}
	st := b.Stats()

	if st.NoDataCount != 2 {
		t.Errorf("NoDataCount: got %d, want 2", st.NoDataCount)
	}
	if st.Min != 0 || st.Max != 0 || st.Mean != 0 || st.StdDev != 0 {
		t.Errorf("all-nodata band should report zero stats: %+v", st)
	}
}

func TestBand_Stats_Constant(t *testing.T) {
	b := Band{Rows: 1, Cols: 3, Data: []float64{7, 7, 7}}
	st := b.Stats()

	if st.Min != 7 || st.Max != 7 || st.Mean != 7 {
		t.Errorf("constant band: %+v", st)
	}
	if st.StdDev != 0 {
		t.Errorf("StdDev of constant band: got %g, want 0", st.StdDev)
	}
}
