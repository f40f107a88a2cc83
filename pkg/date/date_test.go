package date

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/fxamacker/cbor/v2"
)

func TestJSON(t *testing.T) {
	d := Of(2025, time.May, 1)
	b, err := json.Marshal(d)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(b) != `"2025-05-01"` {
		t.Fatalf("unexpected json: %s", b)
	}
	var got Date
	if err := json.Unmarshal(b, &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if got != d {
		t.Fatalf("expected %v, got %v", d, got)
	}
}

func TestCBOR(t *testing.T) {
	type wrapper struct {
		When Date `json:"when"`
	}
	in := wrapper{When: Of(1913, time.July, 11)}
	b, err := cbor.Marshal(in)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var out wrapper
	if err := cbor.Unmarshal(b, &out); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if out.When != in.When {
		t.Fatalf("expected %v, got %v", in.When, out.When)
	}
}

func TestScan(t *testing.T) {
	var d Date
	if err := d.Scan(time.Date(2017, 8, 17, 0, 0, 0, 0, time.UTC)); err != nil {
		t.Fatalf("scan time: %v", err)
	}
	if d != Of(2017, time.August, 17) {
		t.Fatalf("unexpected date %v", d)
	}
	if err := d.Scan([]byte("2005-12-01")); err != nil {
		t.Fatalf("scan bytes: %v", err)
	}
	if d != Of(2005, time.December, 1) {
		t.Fatalf("unexpected date %v", d)
	}
	if err := d.Scan(42); err == nil {
		t.Fatal("expected error scanning int")
	}
}

func TestParseInvalid(t *testing.T) {
	if _, err := Parse("01/05/2025"); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestZeroIsNull(t *testing.T) {
	b, err := json.Marshal(Date{})
	if err != nil || string(b) != "null" {
		t.Fatalf("expected null, got %s (%v)", b, err)
	}
	d := Of(2025, time.May, 1)
	if err := json.Unmarshal([]byte("null"), &d); err != nil {
		t.Fatalf("unmarshal null: %v", err)
	}
	if !d.IsZero() {
		t.Fatalf("expected zero date, got %v", d)
	}
	v, err := Date{}.Value()
	if err != nil || v != nil {
		t.Fatalf("expected nil driver value, got %v (%v)", v, err)
	}
	if err := json.Unmarshal([]byte(`"May 1st"`), &d); err == nil {
		t.Fatal("expected error for malformed date")
	}
}
