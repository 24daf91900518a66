package screener

import "testing"

func TestTickerRecord_Flags(t *testing.T) {
	r := TickerRecord{Ticker: "BBCA"}

	for _, l := range PrimaryLabels() {
		if r.HasFlag(l) {
			t.Fatalf("expected %s unset on zero record", l)
		}
	}

	r.SetFlag(LabelFrequency)
	r.SetFlag(LabelHVB)
	r.SetFlag(LabelProt7D) // not a primary signal, must be ignored
	r.SetFlag(LabelOther)

	if !r.Frequency || !r.HVB {
		t.Fatalf("expected frequency and hvb set, got %+v", r)
	}
	if got := r.CountSignals(); got != 2 {
		t.Fatalf("expected 2 signals, got %d", got)
	}
}

func TestSignalLabel_IsPrimary(t *testing.T) {
	for _, l := range PrimaryLabels() {
		if !l.IsPrimary() {
			t.Errorf("%s should be primary", l)
		}
	}
	if LabelProt7D.IsPrimary() || LabelOther.IsPrimary() {
		t.Error("prot7d/other must not be primary")
	}
}

func TestTickerRecord_Validate(t *testing.T) {
	if err := (TickerRecord{}).Validate(); err == nil {
		t.Fatal("expected error for empty ticker")
	}
	if err := (TickerRecord{Ticker: "BBCA", Category: Category("Scalp")}).Validate(); err == nil {
		t.Fatal("expected error for unknown category")
	}
	if err := (TickerRecord{Ticker: "BBCA", Category: CategorySwing}).Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
