package screener

import (
	"testing"

	"idx-smart-screener/internal/application/ingestion"
	domain "idx-smart-screener/internal/domain/screener"
)

func pairs(kv ...interface{}) []domain.TickerPrice {
	out := make([]domain.TickerPrice, 0, len(kv)/2)
	for i := 0; i < len(kv); i += 2 {
		p := domain.TickerPrice{Ticker: kv[i].(string)}
		if v, ok := kv[i+1].(float64); ok {
			p.Price = &v
		}
		out = append(out, p)
	}
	return out
}

func TestAggregation_MedianPrice(t *testing.T) {
	// same ticker observed at 10/20/30 across three tables, order shuffled
	tables := []ingestion.TableSignals{
		{Source: "a.csv", Label: domain.LabelFF1W, Pairs: pairs("BBCA", 30.0)},
		{Source: "b.csv", Label: domain.LabelBandar, Pairs: pairs("BBCA", 10.0)},
		{Source: "c.csv", Label: domain.LabelOther, Pairs: pairs("BBCA", 20.0)},
	}

	for _, order := range [][]int{{0, 1, 2}, {2, 0, 1}, {1, 2, 0}} {
		agg := NewAggregation()
		for _, i := range order {
			agg.Add(tables[i])
		}
		recs := agg.Records()
		if len(recs) != 1 {
			t.Fatalf("expected 1 record, got %d", len(recs))
		}
		if recs[0].Price == nil || *recs[0].Price != 20 {
			t.Fatalf("order %v: expected median 20, got %v", order, recs[0].Price)
		}
	}
}

func TestAggregation_MedianEvenSamples(t *testing.T) {
	agg := NewAggregation()
	agg.Add(ingestion.TableSignals{Source: "a", Label: domain.LabelOther, Pairs: pairs("ANTM", 100.0)})
	agg.Add(ingestion.TableSignals{Source: "b", Label: domain.LabelOther, Pairs: pairs("ANTM", 110.0)})

	recs := agg.Records()
	if recs[0].Price == nil || *recs[0].Price != 105 {
		t.Fatalf("expected median 105, got %v", recs[0].Price)
	}
}

func TestAggregation_SignalUnionAndFlags(t *testing.T) {
	agg := NewAggregation()
	agg.Add(ingestion.TableSignals{Source: "freq1", Label: domain.LabelFrequency, Pairs: pairs("BBCA", 100.0)})
	agg.Add(ingestion.TableSignals{Source: "freq2", Label: domain.LabelFrequency, Pairs: pairs("ANTM", 200.0)})
	agg.Add(ingestion.TableSignals{Source: "hvb", Label: domain.LabelHVB, Pairs: pairs("BBCA", 101.0)})

	recs := agg.Records()
	if len(recs) != 2 {
		t.Fatalf("expected 2 records, got %d", len(recs))
	}
	// sorted by ticker: ANTM first
	if recs[0].Ticker != "ANTM" || !recs[0].Frequency || recs[0].SignalCount != 1 {
		t.Errorf("unexpected ANTM record: %+v", recs[0])
	}
	if recs[1].Ticker != "BBCA" || !recs[1].Frequency || !recs[1].HVB || recs[1].SignalCount != 2 {
		t.Errorf("unexpected BBCA record: %+v", recs[1])
	}
}

func TestAggregation_ProtectionSeparateFromSignals(t *testing.T) {
	agg := NewAggregation()
	agg.Add(ingestion.TableSignals{Source: "7d", Label: domain.LabelProt7D, Pairs: pairs("BBCA", 100.0)})

	recs := agg.Records()
	if len(recs) != 1 {
		t.Fatalf("expected ticker record for protection table, got %d", len(recs))
	}
	if recs[0].SignalCount != 0 {
		t.Errorf("prot7d must not count as a signal: %+v", recs[0])
	}
	if !agg.Protected()["BBCA"] {
		t.Error("expected BBCA in protection set")
	}
	// price from the protection table still feeds the pool
	if recs[0].Price == nil || *recs[0].Price != 100 {
		t.Errorf("expected price 100, got %v", recs[0].Price)
	}
}

func TestAggregation_OtherPriceOnly(t *testing.T) {
	agg := NewAggregation()
	agg.Add(ingestion.TableSignals{Source: "misc", Label: domain.LabelOther, Pairs: pairs("TLKM", 3000.0)})

	recs := agg.Records()
	if len(recs) != 1 || recs[0].SignalCount != 0 {
		t.Fatalf("other tables must set no flags: %+v", recs)
	}
}

func TestAggregation_Empty(t *testing.T) {
	agg := NewAggregation()
	if !agg.Empty() {
		t.Fatal("new aggregation should be empty")
	}
	agg.Add(ingestion.TableSignals{Source: "empty", Label: domain.LabelFF1W})
	if !agg.Empty() {
		t.Fatal("table without pairs must not count")
	}
	agg.Add(ingestion.TableSignals{Source: "a", Label: domain.LabelFF1W, Pairs: pairs("BBCA", 1.0)})
	if agg.Empty() || agg.TableCount() != 1 {
		t.Fatalf("expected 1 contributing table, got %d", agg.TableCount())
	}
}

func TestAggregation_NoNumericPriceStaysAbsent(t *testing.T) {
	agg := NewAggregation()
	agg.Add(ingestion.TableSignals{Source: "a", Label: domain.LabelFF1W, Pairs: pairs("XXXX", nil)})

	recs := agg.Records()
	if len(recs) != 1 || recs[0].Price != nil {
		t.Fatalf("expected absent price, got %+v", recs)
	}
}
