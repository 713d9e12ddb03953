package external

// GeocodingResponse is the body of GET /v1/search.
type GeocodingResponse struct {
	Results []GeocodingResult `json:"results"`
}

type GeocodingResult struct {
	ID        int64   `json:"id"`
	Name      string  `json:"name"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Country   string  `json:"country"`
	Timezone  string  `json:"timezone"`
}

// ForecastResponse is the body of GET /v1/forecast with timeformat=unixtime.
type ForecastResponse struct {
	Latitude  float64        `json:"latitude"`
	Longitude float64        `json:"longitude"`
	Current   CurrentWeather `json:"current"`
	Daily     DailyForecast  `json:"daily"`
}

type CurrentWeather struct {
	Time             int64   `json:"time"`
	Temperature      float64 `json:"temperature_2m"`
	RelativeHumidity float64 `json:"relative_humidity_2m"`
	WindSpeed        float64 `json:"wind_speed_10m"`
	WindDirection    float64 `json:"wind_direction_10m"`
	WeatherCode      int     `json:"weather_code"`
}

type DailyForecast struct {
	Time           []int64   `json:"time"`
	WeatherCode    []int     `json:"weather_code"`
	TemperatureMax []float64 `json:"temperature_2m_max"`
	TemperatureMin []float64 `json:"temperature_2m_min"`
	Sunrise        []int64   `json:"sunrise"`
	Sunset         []int64   `json:"sunset"`
}

// APIErrorResponse is returned by Open-Meteo on 4xx.
type APIErrorResponse struct {
	Error  bool   `json:"error"`
	Reason string `json:"reason"`
}
