package placedataclient

const (
	SearchToolName  = "search_tool"
	WeatherToolName = "weather_tool"
	NewsToolName    = "news_tool"
	PlacesToolName  = "places_tool"
)

func SearchConfig(baseURL, apiKey string) Config {
	return Config{
		Name:        SearchToolName,
		Description: "Search the web for up-to-date information about a place: attractions, events, travel advisories and things to do.",
		BaseURL:     baseURL,
		PlaceParam:  "q",
		KeyHeader:   "X-Subscription-Token",
		APIKey:      apiKey,
		Params:      map[string]string{"count": "5"},
	}
}

func WeatherConfig(baseURL, apiKey string) Config {
	return Config{
		Name:        WeatherToolName,
		Description: "Get the current weather for a city.",
		BaseURL:     baseURL,
		PlaceParam:  "city",
		KeyParam:    "key",
		APIKey:      apiKey,
	}
}

func NewsConfig(baseURL, apiKey string) Config {
	return Config{
		Name:        NewsToolName,
		Description: "Get the latest news articles mentioning a place.",
		BaseURL:     baseURL,
		PlaceParam:  "q",
		KeyParam:    "apikey",
		APIKey:      apiKey,
	}
}

func PlacesConfig(baseURL, apiKey string) Config {
	return Config{
		Name:        PlacesToolName,
		Description: "Look up the full address, coordinates and location details of a place.",
		BaseURL:     baseURL,
		PlaceParam:  "address",
		KeyParam:    "key",
		APIKey:      apiKey,
	}
}
