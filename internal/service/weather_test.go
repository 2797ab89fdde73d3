package service_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/evandev76/event-organizer-app/internal/cache"
	"github.com/evandev76/event-organizer-app/internal/config"
	apperrors "github.com/evandev76/event-organizer-app/internal/errors"
	"github.com/evandev76/event-organizer-app/internal/service"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newWeatherService(t *testing.T, forecastURL, geocodeURL string) *service.WeatherService {
	t.Helper()
	cfg := &config.Config{
		WeatherBaseURL:    forecastURL,
		GeocodingBaseURL:  geocodeURL,
		WeatherTimeoutSec: 5,
	}
	return service.NewWeatherService(cfg, nil)
}

func TestGeocode(t *testing.T) {
	var queries []string
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		name := r.URL.Query().Get("name")
		queries = append(queries, name)
		if name == "Lyon" {
			fmt.Fprint(w, `{"results":[{"name":"Lyon","admin1":"Auvergne-Rhone-Alpes","country":"France","latitude":45.76,"longitude":4.84}]}`)
			return
		}
		fmt.Fprint(w, `{"results":[]}`)
	}))
	defer upstream.Close()

	svc := newWeatherService(t, upstream.URL, upstream.URL)

	t.Run("Direct hit", func(t *testing.T) {
		queries = nil
		results, err := svc.Geocode(context.Background(), " Lyon ")
		require.NoError(t, err)
		require.Len(t, results, 1)
		assert.Equal(t, "Lyon", results[0].Name)
		assert.Equal(t, 45.76, results[0].Lat)
		assert.Equal(t, 4.84, results[0].Lon)
		assert.Equal(t, []string{"Lyon"}, queries)
	})

	t.Run("Retries without digits", func(t *testing.T) {
		queries = nil
		results, err := svc.Geocode(context.Background(), "Lyon 690022")
		require.NoError(t, err)
		require.Len(t, results, 1)
		assert.Equal(t, []string{"Lyon 690022", "Lyon"}, queries)
	})

	t.Run("Nothing matches", func(t *testing.T) {
		_, err := svc.Geocode(context.Background(), "Atlantis")
		assert.True(t, apperrors.IsNotFound(err))
	})

	t.Run("Blank query", func(t *testing.T) {
		_, err := svc.Geocode(context.Background(), "   ")
		assert.True(t, apperrors.IsValidation(err))
	})
}

func forecastHandler(hits *int) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if hits != nil {
			*hits++
		}
		fmt.Fprint(w, `{"daily":{
			"time":["2026-07-14","2026-07-15","2026-07-16"],
			"precipitation_sum":[0.0,3.2,0.1],
			"precipitation_probability_max":[10,90,20],
			"weather_code":[1,61,2]
		}}`)
	}
}

func TestDayIcon(t *testing.T) {
	upstream := httptest.NewServer(forecastHandler(nil))
	defer upstream.Close()

	svc := newWeatherService(t, upstream.URL, upstream.URL)

	t.Run("Sunny day", func(t *testing.T) {
		response, err := svc.DayIcon(context.Background(), 45.76, 4.84, "2026-07-14")
		require.NoError(t, err)
		assert.Equal(t, "sun", response.Icon)
	})

	t.Run("Rainy day", func(t *testing.T) {
		response, err := svc.DayIcon(context.Background(), 45.76, 4.84, "2026-07-15")
		require.NoError(t, err)
		assert.Equal(t, "rain", response.Icon)
	})

	t.Run("Malformed date", func(t *testing.T) {
		_, err := svc.DayIcon(context.Background(), 45.76, 4.84, "14/07/2026")
		assert.True(t, apperrors.IsValidation(err))
	})
}

func TestRangeIcons(t *testing.T) {
	hits := 0
	upstream := httptest.NewServer(forecastHandler(&hits))
	defer upstream.Close()

	svc := newWeatherService(t, upstream.URL, upstream.URL)

	response, err := svc.RangeIcons(context.Background(), 45.76, 4.84, "2026-07-14", "2026-07-16")
	require.NoError(t, err)
	assert.Equal(t, map[string]string{
		"2026-07-14": "sun",
		"2026-07-15": "rain",
		"2026-07-16": "sun",
	}, response.Icons)
	assert.Equal(t, 1, hits)
}

func TestRangeIconsCached(t *testing.T) {
	mr := miniredis.RunT(t)
	redisCache := cache.New(mr.Addr(), "")
	require.NotNil(t, redisCache)
	defer redisCache.Close()

	hits := 0
	upstream := httptest.NewServer(forecastHandler(&hits))
	defer upstream.Close()

	cfg := &config.Config{
		WeatherBaseURL:    upstream.URL,
		GeocodingBaseURL:  upstream.URL,
		WeatherTimeoutSec: 5,
	}
	svc := service.NewWeatherService(cfg, redisCache)

	first, err := svc.RangeIcons(context.Background(), 45.76, 4.84, "2026-07-14", "2026-07-16")
	require.NoError(t, err)
	second, err := svc.RangeIcons(context.Background(), 45.76, 4.84, "2026-07-14", "2026-07-16")
	require.NoError(t, err)

	assert.Equal(t, first.Icons, second.Icons)
	// the second read must come from the cache
	assert.Equal(t, 1, hits)

	// nearby coordinates are a different cache entry
	_, err = svc.RangeIcons(context.Background(), 48.85, 2.35, "2026-07-14", "2026-07-16")
	require.NoError(t, err)
	assert.Equal(t, 2, hits)
}

func TestWeatherUpstreamFailure(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusBadGateway)
	}))
	defer upstream.Close()

	svc := newWeatherService(t, upstream.URL, upstream.URL)

	_, err := svc.RangeIcons(context.Background(), 45.76, 4.84, "2026-07-14", "2026-07-16")
	assert.True(t, apperrors.IsUpstream(err))

	_, err = svc.Geocode(context.Background(), "Lyon")
	assert.True(t, apperrors.IsUpstream(err))
}
