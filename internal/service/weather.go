package service

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"time"

	"github.com/evandev76/event-organizer-app/internal/cache"
	"github.com/evandev76/event-organizer-app/internal/config"
	apperrors "github.com/evandev76/event-organizer-app/internal/errors"
)

// Upstream rain thresholds. A day is rainy when any one trips.
const (
	rainPrecipSumMin  = 0.2
	rainPrecipProbMin = 50
	rainWeatherCode   = 50
)

const (
	weatherCacheTTL    = 15 * time.Minute
	geocodeResultCount = 5
)

var ymdPattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// WeatherService proxies Open-Meteo geocoding and daily forecast lookups.
// It stores nothing durable; range icons are cached best-effort in Redis.
type WeatherService struct {
	client      *http.Client
	cache       *cache.Cache
	forecastURL string
	geocodeURL  string
}

// NewWeatherService creates a new weather service
func NewWeatherService(cfg *config.Config, cache *cache.Cache) *WeatherService {
	return &WeatherService{
		client:      &http.Client{Timeout: time.Duration(cfg.WeatherTimeoutSec) * time.Second},
		cache:       cache,
		forecastURL: strings.TrimSuffix(cfg.WeatherBaseURL, "/"),
		geocodeURL:  strings.TrimSuffix(cfg.GeocodingBaseURL, "/"),
	}
}

// GeocodeResult represents one matched place
type GeocodeResult struct {
	Name    string  `json:"name"`
	Admin1  string  `json:"admin1"`
	Country string  `json:"country"`
	Lat     float64 `json:"lat"`
	Lon     float64 `json:"lon"`
}

// DayIconResponse represents the weather icon for a single day
type DayIconResponse struct {
	Icon string `json:"icon"`
}

// RangeIconsResponse maps each YYYY-MM-DD date in a range to its icon
type RangeIconsResponse struct {
	Icons map[string]string `json:"icons"`
}

type geocodeUpstream struct {
	Results []struct {
		Name      string  `json:"name"`
		Admin1    string  `json:"admin1"`
		Country   string  `json:"country"`
		Latitude  float64 `json:"latitude"`
		Longitude float64 `json:"longitude"`
	} `json:"results"`
}

type forecastUpstream struct {
	Daily struct {
		Time                        []string  `json:"time"`
		PrecipitationSum            []float64 `json:"precipitation_sum"`
		PrecipitationProbabilityMax []float64 `json:"precipitation_probability_max"`
		WeatherCode                 []float64 `json:"weather_code"`
	} `json:"daily"`
}

// isRainyDay applies the rain heuristic over one forecast day
func isRainyDay(precipSum, precipProbMax, weatherCode float64) bool {
	return precipSum >= rainPrecipSumMin ||
		precipProbMax >= rainPrecipProbMin ||
		weatherCode >= rainWeatherCode
}

func validYMD(s string) bool {
	return ymdPattern.MatchString(s)
}

// Geocode resolves a free-text place query to candidate coordinates. When
// the raw query yields nothing, a digit-stripped variant is retried.
func (s *WeatherService) Geocode(ctx context.Context, query string) ([]GeocodeResult, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, apperrors.NewValidationError("q", "query is required")
	}

	attempts := []string{query}
	noDigits := strings.Join(strings.Fields(regexp.MustCompile(`[0-9]`).ReplaceAllString(query, " ")), " ")
	if noDigits != "" && noDigits != query {
		attempts = append(attempts, noDigits)
	}

	for _, name := range attempts {
		u := fmt.Sprintf("%s/v1/search?name=%s&count=%d&language=fr&format=json",
			s.geocodeURL, url.QueryEscape(name), geocodeResultCount)
		var data geocodeUpstream
		if err := s.fetchJSON(ctx, u, &data); err != nil {
			return nil, err
		}
		if len(data.Results) == 0 {
			continue
		}
		results := make([]GeocodeResult, 0, len(data.Results))
		for _, r := range data.Results {
			results = append(results, GeocodeResult{
				Name:    r.Name,
				Admin1:  r.Admin1,
				Country: r.Country,
				Lat:     r.Latitude,
				Lon:     r.Longitude,
			})
		}
		return results, nil
	}
	return nil, apperrors.NewNotFoundError("place")
}

// DayIcon returns the sun/rain icon for one day at the given coordinates
func (s *WeatherService) DayIcon(ctx context.Context, lat, lon float64, date string) (*DayIconResponse, error) {
	if !validYMD(date) {
		return nil, apperrors.NewValidationError("date", "must be YYYY-MM-DD")
	}
	icons, err := s.rangeIcons(ctx, lat, lon, date, date)
	if err != nil {
		return nil, err
	}
	icon, ok := icons[date]
	if !ok {
		return nil, apperrors.NewUpstreamError("weather", "no data for requested day")
	}
	return &DayIconResponse{Icon: icon}, nil
}

// RangeIcons returns sun/rain icons for each day in [start, end], one
// upstream call, cached for a short while per (coordinates, range).
func (s *WeatherService) RangeIcons(ctx context.Context, lat, lon float64, start, end string) (*RangeIconsResponse, error) {
	if !validYMD(start) || !validYMD(end) {
		return nil, apperrors.NewValidationError("start", "start/end must be YYYY-MM-DD")
	}

	key := fmt.Sprintf("weather:range:%.3f:%.3f:%s:%s", lat, lon, start, end)
	if cached, ok := s.cache.Get(ctx, key); ok {
		var icons map[string]string
		if json.Unmarshal([]byte(cached), &icons) == nil {
			return &RangeIconsResponse{Icons: icons}, nil
		}
	}

	icons, err := s.rangeIcons(ctx, lat, lon, start, end)
	if err != nil {
		return nil, err
	}
	if encoded, err := json.Marshal(icons); err == nil {
		s.cache.Set(ctx, key, string(encoded), weatherCacheTTL)
	}
	return &RangeIconsResponse{Icons: icons}, nil
}

func (s *WeatherService) rangeIcons(ctx context.Context, lat, lon float64, start, end string) (map[string]string, error) {
	u := fmt.Sprintf("%s/v1/forecast?latitude=%s&longitude=%s"+
		"&daily=precipitation_sum,precipitation_probability_max,weather_code"+
		"&start_date=%s&end_date=%s&timezone=auto",
		s.forecastURL,
		url.QueryEscape(fmt.Sprintf("%v", lat)),
		url.QueryEscape(fmt.Sprintf("%v", lon)),
		url.QueryEscape(start), url.QueryEscape(end))

	var data forecastUpstream
	if err := s.fetchJSON(ctx, u, &data); err != nil {
		return nil, err
	}
	if len(data.Daily.Time) == 0 {
		return nil, apperrors.NewUpstreamError("weather", "no forecast data")
	}

	at := func(values []float64, i int) float64 {
		if i < len(values) {
			return values[i]
		}
		return 0
	}
	icons := make(map[string]string, len(data.Daily.Time))
	for i, ymd := range data.Daily.Time {
		if !validYMD(ymd) {
			continue
		}
		icon := "sun"
		if isRainyDay(at(data.Daily.PrecipitationSum, i), at(data.Daily.PrecipitationProbabilityMax, i), at(data.Daily.WeatherCode, i)) {
			icon = "rain"
		}
		icons[ymd] = icon
	}
	return icons, nil
}

func (s *WeatherService) fetchJSON(ctx context.Context, url string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("User-Agent", "event-organizer/1.0")

	resp, err := s.client.Do(req)
	if err != nil {
		return apperrors.NewUpstreamError("weather", err.Error())
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 160))
		return apperrors.NewUpstreamError("weather", fmt.Sprintf("upstream %d: %s", resp.StatusCode, string(snippet)))
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return apperrors.NewUpstreamError("weather", "malformed upstream response")
	}
	return nil
}
