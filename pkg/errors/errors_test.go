package errors

import (
	"math"
	"strings"
	"testing"
)

func TestWarnUsesConfiguredHandler(t *testing.T) {
	var captured []error
	SetWarningHandler(func(w error) {
		captured = append(captured, w)
	})
	defer SetWarningHandler(nil)

	w := NewRegularizationWarning("AltNNLS", 0.5, 0)
	Warn(w)

	if len(captured) != 1 {
		t.Fatalf("expected 1 captured warning, got %d", len(captured))
	}
	if captured[0] != w {
		t.Errorf("captured warning is not the one raised")
	}
	if !strings.Contains(captured[0].Error(), "0.5") {
		t.Errorf("warning message missing supplied weight: %v", captured[0])
	}
}

func TestNumericalWarningTruncatesValues(t *testing.T) {
	values := []float64{math.NaN(), 1, 2, 3, 4, 5, 6}
	w := NewNumericalWarning("alpha_step", 3, values)
	msg := w.Error()
	if !strings.Contains(msg, "iteration 3") {
		t.Errorf("message missing iteration: %s", msg)
	}
	if !strings.Contains(msg, "...") {
		t.Errorf("message should be truncated: %s", msg)
	}
}

func TestNotFittedErrorAs(t *testing.T) {
	err := NewNotFittedError("Regression", "Predict")

	var nf *NotFittedError
	if !As(err, &nf) {
		t.Fatalf("expected NotFittedError in chain, got %v", err)
	}
	if nf.ModelName != "Regression" || nf.Method != "Predict" {
		t.Errorf("unexpected fields: %+v", nf)
	}
}

func TestDimensionErrorMessage(t *testing.T) {
	err := NewDimensionError("Regression.Fit", 4, 3, 0)
	if !strings.Contains(err.Error(), "rows") {
		t.Errorf("axis 0 should report rows: %v", err)
	}
	err = NewDimensionError("Regression.Fit", 4, 3, 1)
	if !strings.Contains(err.Error(), "attributes") {
		t.Errorf("axis 1 should report attributes: %v", err)
	}
}

func TestAllFinite(t *testing.T) {
	if !AllFinite([]float64{0, 1, -2.5}) {
		t.Error("finite slice reported non-finite")
	}
	if AllFinite([]float64{0, math.Inf(1)}) {
		t.Error("Inf not detected")
	}
	if AllFinite([]float64{math.NaN()}) {
		t.Error("NaN not detected")
	}

	bad := NonFinite([]float64{1, math.NaN(), 2, math.Inf(-1)})
	if len(bad) != 2 {
		t.Errorf("expected 2 non-finite entries, got %d", len(bad))
	}
}
