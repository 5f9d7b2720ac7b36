package carapi

// SimulatedVehicles returns the bundled dataset used when the remote API is not
// wanted. Every record carries real coordinates. A fresh slice is returned on
// each call.
func SimulatedVehicles() []Vehicle {
	return []Vehicle{
		{
			ID: 1, Make: "toyota", Model: "camry", Year: 1993, Class: "midsize car",
			FuelType: "gas", Transmission: TransmissionAutomatic,
			CityMPG: MPGText(Unavailable), HighwayMPG: MPGText(Unavailable), CombinationMPG: MPGText(Unavailable),
			Cylinders: intPtr(4), Displacement: floatPtr(2.2), Drive: strPtr("fwd"),
			Latitude: -22.270270270270267, Longitude: -71.63963963963964,
		},
		{
			ID: 2, Make: "honda", Model: "civic", Year: 2010, Class: "compact car",
			FuelType: "gas", Transmission: TransmissionManual,
			CityMPG: MPGText("25"), HighwayMPG: MPGText("32"), CombinationMPG: MPGText("28"),
			Cylinders: intPtr(4), Displacement: floatPtr(1.8), Drive: strPtr("fwd"),
			Latitude: 34.05, Longitude: -118.25,
		},
		{
			ID: 3, Make: "bmw", Model: "330d", Year: 2015, Class: "sedan",
			FuelType: "diesel", Transmission: TransmissionAutomatic,
			CityMPG: MPGText("30"), HighwayMPG: MPGText("36"), CombinationMPG: MPGText("33"),
			Cylinders: intPtr(6), Displacement: floatPtr(3.0), Drive: strPtr("rwd"),
			Latitude: 48.85, Longitude: 2.35,
		},
		{
			ID: 4, Make: "jeep", Model: "grand cherokee", Year: 2018, Class: "suv",
			FuelType: "gas", Transmission: TransmissionAutomatic,
			CityMPG: MPGText("22"), HighwayMPG: MPGText("26"), CombinationMPG: MPGText("24"),
			Cylinders: intPtr(8), Displacement: floatPtr(4.0), Drive: strPtr("awd"),
			Latitude: 40.71, Longitude: -74.01,
		},
		{
			ID: 5, Make: "toyota", Model: "corolla", Year: 2019, Class: "compact car",
			FuelType: "gas", Transmission: TransmissionManual,
			CityMPG: MPG(29), HighwayMPG: MPG(37), CombinationMPG: MPG(32),
			Cylinders: intPtr(4), Displacement: floatPtr(1.8), Drive: strPtr("fwd"),
			Latitude: -33.45, Longitude: -70.66,
		},
		{
			ID: 6, Make: "mazda", Model: "3", Year: 2016, Class: "compact car",
			FuelType: "gas", Transmission: TransmissionManual,
			CityMPG: MPGText("27"), HighwayMPG: MPGText("37"), CombinationMPG: MPGText("31"),
			Cylinders: intPtr(4), Displacement: floatPtr(2.0), Drive: strPtr("fwd"),
			Latitude: 35.68, Longitude: 139.69,
		},
		{
			ID: 7, Make: "tesla", Model: "model 3", Year: 2021, Class: "midsize car",
			FuelType: "electricity", Transmission: TransmissionAutomatic,
			CityMPG: MPG(138), HighwayMPG: MPG(126), CombinationMPG: MPG(132),
			Drive: strPtr("rwd"),
			Latitude: 37.39, Longitude: -122.15,
		},
	}
}

func intPtr(v int) *int           { return &v }
func floatPtr(v float64) *float64 { return &v }
func strPtr(v string) *string     { return &v }
