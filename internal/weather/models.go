package weather

// Conditions is one entry of the `weather` array in an OpenWeatherMap
// response. ID is the numeric condition code classified by ClassifyCode.
type Conditions struct {
	ID          float64 `json:"id"`
	Main        string  `json:"main"`
	Description string  `json:"description"`
}

// Report is the parsed OpenWeatherMap current-weather payload, reduced to the
// fields the application reads. Main.Temp is a pointer so a response missing
// the primary temperature field can be told apart from a literal zero.
type Report struct {
	Weather []Conditions `json:"weather"`
	Main    struct {
		Temp     *float64 `json:"temp"`
		Humidity float64  `json:"humidity"`
	} `json:"main"`
	Sys struct {
		Sunrise int64 `json:"sunrise"`
		Sunset  int64 `json:"sunset"`
	} `json:"sys"`
	Name string `json:"name"`
	Dt   int64  `json:"dt"`
}
