package json2tab

import (
	"reflect"
	"testing"
)

func TestParseValueKeyOrder(t *testing.T) {
	value, err := ParseValue(`{"zulu":1,"alpha":2,"mike":{"b":1,"a":2}}`)
	if err != nil {
		t.Fatalf("ParseValue() error = %v", err)
	}
	obj, ok := value.(*Object)
	if !ok {
		t.Fatalf("ParseValue() = %T, want *Object", value)
	}
	wantKeys := []string{"zulu", "alpha", "mike"}
	if !reflect.DeepEqual(obj.Keys, wantKeys) {
		t.Errorf("keys = %v, want %v", obj.Keys, wantKeys)
	}
	inner, _ := obj.Get("mike")
	innerObj, ok := inner.(*Object)
	if !ok {
		t.Fatalf("inner value = %T, want *Object", inner)
	}
	if !reflect.DeepEqual(innerObj.Keys, []string{"b", "a"}) {
		t.Errorf("inner keys = %v, want [b a]", innerObj.Keys)
	}
}

func TestParseValueKinds(t *testing.T) {
	tests := []struct {
		name     string
		jsonText string
		want     any
	}{
		{name: "String", jsonText: `"x"`, want: "x"},
		{name: "Number", jsonText: `2.5`, want: float64(2.5)},
		{name: "Bool", jsonText: `true`, want: true},
		{name: "Null", jsonText: `null`, want: nil},
		{name: "Array", jsonText: `[1,"a",null]`, want: []any{float64(1), "a", nil}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseValue(tt.jsonText)
			if err != nil {
				t.Fatalf("ParseValue() error = %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ParseValue() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestParseValueMalformed(t *testing.T) {
	inputs := []string{``, `{`, `{"a":}`, `[1,]`, `{"a":1} trailing`, `nul`}
	for _, text := range inputs {
		if _, err := ParseValue(text); err == nil {
			t.Errorf("ParseValue(%q) expected an error", text)
		}
	}
}

func TestObjectMarshalJSONPreservesOrder(t *testing.T) {
	obj := NewObject()
	obj.Set("z", float64(1))
	obj.Set("a", "x")
	obj.Set("m", nil)
	got, err := obj.MarshalJSON()
	if err != nil {
		t.Fatalf("MarshalJSON() error = %v", err)
	}
	want := `{"z":1,"a":"x","m":null}`
	if string(got) != want {
		t.Errorf("MarshalJSON() = %s, want %s", got, want)
	}
}
