package value

import "testing"

func TestScanInt(t *testing.T) {
	v := Scan("1700000000")
	if v.Kind() != KindInt {
		t.Fatalf("got kind %v, want KindInt", v.Kind())
	}
}

func TestScanFloat(t *testing.T) {
	v := Scan("3.25")
	if v.Kind() != KindFloat {
		t.Fatalf("got kind %v, want KindFloat", v.Kind())
	}
}

func TestScanError(t *testing.T) {
	v := Scan("foo")
	if !v.IsError() {
		t.Fatalf("got kind %v, want error", v.Kind())
	}
}

func TestAddIntInt(t *testing.T) {
	got := Add(Int(3), Int(4))
	if got.Kind() != KindInt {
		t.Fatalf("got kind %v, want KindInt", got.Kind())
	}
	if f, _ := got.AsFloat(); f != 7 {
		t.Fatalf("got %v, want 7", f)
	}
}

func TestMulPromotesToFloat(t *testing.T) {
	got := Mul(Int(4), Float(2.5))
	if got.Kind() != KindFloat {
		t.Fatalf("got kind %v, want KindFloat", got.Kind())
	}
	if f, _ := got.AsFloat(); f != 10 {
		t.Fatalf("got %v, want 10", f)
	}
}

func TestFunctionBodyExpression(t *testing.T) {
	// return x + y*2, with x=3, y=4: 3 + 4*2 = 11
	got := Add(Int(3), Mul(Int(4), Int(2)))
	if f, _ := got.AsFloat(); f != 11 {
		t.Fatalf("got %v, want 11", f)
	}
}

func TestFormatISO8601GMT(t *testing.T) {
	got, ok := FormatISO8601GMT(Int(1700000000))
	if !ok {
		t.Fatal("expected ok")
	}
	want := "2023-11-14T22:13:20Z"
	if got.String() != want {
		t.Fatalf("got %q, want %q", got.String(), want)
	}
}

func TestFormatISO8601GMTNonNumeric(t *testing.T) {
	_, ok := FormatISO8601GMT(Error("boom"))
	if ok {
		t.Fatal("expected non-numeric input to fail")
	}
}

func TestAbsentDistinctFromEmpty(t *testing.T) {
	if Absent().Kind() == Empty().Kind() {
		t.Fatal("absent and empty must be distinct kinds")
	}
}
