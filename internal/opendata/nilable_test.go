package opendata

import (
	"encoding/json"
	"testing"
	"time"
)

func TestNilString_NullForms(t *testing.T) {
	cases := []struct {
		name string
		in   string
	}{
		{"null", `null`},
		{"empty string", `""`},
		{"whitespace", `"  "`},
		{"xsi nil", `{"@xsi:nil":"true"}`},
		{"xsi nil uppercase", `{"@xsi:nil":"TRUE"}`},
		{"xsi nil bool", `{"@xsi:nil":true}`},
		{"blank text payload", `{"#text":"  "}`},
		{"empty object", `{}`},
		{"number", `42`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var s NilString
			if err := json.Unmarshal([]byte(tc.in), &s); err != nil {
				t.Fatalf("unmarshal %s: %v", tc.in, err)
			}
			if s.Valid {
				t.Fatalf("expected null for %s, got %q", tc.in, s.Value)
			}
			if s.Ptr() != nil {
				t.Fatalf("expected nil pointer for %s", tc.in)
			}
		})
	}
}

func TestNilString_TextForms(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"bare string", `"PA1234"`, "PA1234"},
		{"padded string", `"  PA1234 "`, "PA1234"},
		{"text key", `{"#text":"PA1234"}`, "PA1234"},
		{"plain text key", `{"text":"x"}`, "x"},
		{"value key", `{"value":" y "}`, "y"},
		{"wrapper with attrs", `{"@xmlns:xsi":"ns","@xsi:type":"t","#text":"PA1"}`, "PA1"},
		{"singleton list", `["PA1"]`, "PA1"},
		{"list first non nil", `[null, {"@xsi:nil":"true"}, "PA2"]`, "PA2"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var s NilString
			if err := json.Unmarshal([]byte(tc.in), &s); err != nil {
				t.Fatalf("unmarshal %s: %v", tc.in, err)
			}
			if !s.Valid || s.Value != tc.want {
				t.Fatalf("got (%q, %v), want (%q, true)", s.Value, s.Valid, tc.want)
			}
		})
	}
}

func TestNilString_NilMarkerWinsOverText(t *testing.T) {
	var s NilString
	if err := json.Unmarshal([]byte(`{"@xsi:nil":"true","#text":"ignored"}`), &s); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if s.Valid {
		t.Fatalf("nil marker should win over text payload, got %q", s.Value)
	}
}

func TestNilDate_Parsing(t *testing.T) {
	var d NilDate
	if err := json.Unmarshal([]byte(`"2024-06-18"`), &d); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	want := time.Date(2024, 6, 18, 0, 0, 0, 0, time.UTC)
	if !d.Valid || !d.Value.Equal(want) {
		t.Fatalf("got (%v, %v), want (%v, true)", d.Value, d.Valid, want)
	}
}

func TestNilDate_TimestampKeepsDateComponent(t *testing.T) {
	var d NilDate
	if err := json.Unmarshal([]byte(`"2024-06-18T14:30:00+02:00"`), &d); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	want := time.Date(2024, 6, 18, 0, 0, 0, 0, time.UTC)
	if !d.Valid || !d.Value.Equal(want) {
		t.Fatalf("got (%v, %v), want (%v, true)", d.Value, d.Valid, want)
	}
}

func TestNilDate_UnparseableBecomesNull(t *testing.T) {
	var d NilDate
	if err := json.Unmarshal([]byte(`"not-a-date"`), &d); err != nil {
		t.Fatalf("unparseable date must not hard-fail: %v", err)
	}
	if d.Valid {
		t.Fatalf("expected null, got %v", d.Value)
	}
}

func TestNilDate_NilMarker(t *testing.T) {
	var d NilDate
	if err := json.Unmarshal([]byte(`{"@xmlns:xsi":"ns","@xsi:nil":"true"}`), &d); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if d.Valid {
		t.Fatalf("expected null date")
	}
}

func TestNilTime_KeepsTimeOfDay(t *testing.T) {
	var ts NilTime
	if err := json.Unmarshal([]byte(`"2024-06-18T14:30:00+02:00"`), &ts); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !ts.Valid || ts.Value.Hour() != 14 || ts.Value.Minute() != 30 {
		t.Fatalf("got (%v, %v)", ts.Value, ts.Valid)
	}
}

func TestList_Forms(t *testing.T) {
	type item struct {
		Name string `json:"name"`
	}

	var l List[item]
	if err := json.Unmarshal([]byte(`null`), &l); err != nil {
		t.Fatalf("null: %v", err)
	}
	if len(l) != 0 {
		t.Fatalf("null should normalize to empty list, got %d items", len(l))
	}

	if err := json.Unmarshal([]byte(`{"name":"a"}`), &l); err != nil {
		t.Fatalf("singleton: %v", err)
	}
	if len(l) != 1 || l[0].Name != "a" {
		t.Fatalf("singleton should normalize to one-element list, got %+v", l)
	}

	if err := json.Unmarshal([]byte(`[{"name":"a"},{"name":"b"}]`), &l); err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(l) != 2 || l[0].Name != "a" || l[1].Name != "b" {
		t.Fatalf("list should pass through, got %+v", l)
	}
}
