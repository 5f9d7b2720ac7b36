package carapi

import (
	"encoding/json"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestEfficiency_UnmarshalForms(t *testing.T) {
	tests := []struct {
		name      string
		in        string
		present   bool
		numeric   bool
		want      float64
		wantInput string
	}{
		{"number", `29`, true, true, 29, "29"},
		{"decimal number", `27.5`, true, true, 27.5, "27.5"},
		{"numeric string", `"25"`, true, true, 25, "25"},
		{"sentinel", `"` + Unavailable + `"`, true, false, 0, Unavailable},
		{"null", `null`, false, false, 0, ""},
		{"nan string", `"NaN"`, true, false, 0, "NaN"},
		{"inf string", `"+Inf"`, true, false, 0, "+Inf"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var e Efficiency
			if err := json.Unmarshal([]byte(tt.in), &e); err != nil {
				t.Fatalf("Unmarshal returned error: %v", err)
			}
			if e.Present() != tt.present {
				t.Fatalf("Present = %v, want %v", e.Present(), tt.present)
			}
			got, ok := e.Float()
			if ok != tt.numeric || got != tt.want {
				t.Fatalf("Float = %v, %v, want %v, %v", got, ok, tt.want, tt.numeric)
			}
			if e.String() != tt.wantInput {
				t.Fatalf("String = %q, want %q", e.String(), tt.wantInput)
			}
		})
	}
}

func TestEfficiency_RejectsObjects(t *testing.T) {
	var e Efficiency
	if err := json.Unmarshal([]byte(`{"x":1}`), &e); err == nil {
		t.Fatalf("Unmarshal returned nil error for an object")
	}
}

func TestEfficiency_MissingFieldIsAbsent(t *testing.T) {
	var v Vehicle
	if err := json.Unmarshal([]byte(`{"make":"kia","model":"rio","year":2012}`), &v); err != nil {
		t.Fatalf("Unmarshal returned error: %v", err)
	}
	if v.CityMPG.Present() || v.HighwayMPG.Present() || v.CombinationMPG.Present() {
		t.Fatalf("efficiency fields present, want absent")
	}
	if v.Cylinders != nil || v.Displacement != nil || v.Drive != nil {
		t.Fatalf("optional fields set, want nil")
	}
}

func TestEfficiency_MarshalPreservesForm(t *testing.T) {
	v := Vehicle{Make: "x", CityMPG: MPG(29), HighwayMPG: MPGText("31"), CombinationMPG: Efficiency{}}
	data, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("Marshal returned error: %v", err)
	}
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		t.Fatalf("Unmarshal returned error: %v", err)
	}
	if raw["city_mpg"] != float64(29) {
		t.Fatalf("city_mpg = %#v, want number 29", raw["city_mpg"])
	}
	if raw["highway_mpg"] != "31" {
		t.Fatalf("highway_mpg = %#v, want string 31", raw["highway_mpg"])
	}
	if raw["combination_mpg"] != nil {
		t.Fatalf("combination_mpg = %#v, want null", raw["combination_mpg"])
	}
	if _, ok := raw["latitude"]; ok {
		t.Fatalf("latitude present for zero value, want omitted")
	}
}

func TestEfficiency_MarshalYAML(t *testing.T) {
	out, err := yaml.Marshal(map[string]Efficiency{"n": MPG(30), "s": MPGText(Unavailable)})
	if err != nil {
		t.Fatalf("yaml.Marshal returned error: %v", err)
	}
	want := "n: 30\ns: " + Unavailable + "\n"
	if string(out) != want {
		t.Fatalf("yaml = %q, want %q", string(out), want)
	}
}

func TestVehicle_TransmissionLabel(t *testing.T) {
	tests := map[string]string{"a": "automatic", " M ": "manual", "cvt": "cvt"}
	for code, want := range tests {
		if got := (Vehicle{Transmission: code}).TransmissionLabel(); got != want {
			t.Fatalf("TransmissionLabel(%q) = %q, want %q", code, got, want)
		}
	}
}

func TestSimulatedVehicles_HaveCoordinatesAndFreshSlices(t *testing.T) {
	a := SimulatedVehicles()
	if len(a) != 7 {
		t.Fatalf("len = %d, want 7", len(a))
	}
	for _, v := range a {
		if !v.HasCoordinates() {
			t.Fatalf("vehicle %d has no coordinates", v.ID)
		}
	}
	a[0].Make = "changed"
	if b := SimulatedVehicles(); b[0].Make != "toyota" {
		t.Fatalf("SimulatedVehicles shares backing data")
	}
}
