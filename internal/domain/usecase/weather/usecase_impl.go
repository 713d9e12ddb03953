package weather

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"weather-dashboard/internal/domain/display"
	"weather-dashboard/internal/domain/entity"
	"weather-dashboard/internal/domain/gateway/api"
	"weather-dashboard/internal/domain/gateway/cache"
	"weather-dashboard/internal/domain/gateway/db"
	"weather-dashboard/internal/domain/gateway/queue"
	"weather-dashboard/internal/domain/model"
	"weather-dashboard/pkg/log"
	"weather-dashboard/pkg/msg"
	"weather-dashboard/pkg/util/numberutils"
)

const (
	defaultBatchSize = 100
	maxBatchSize     = 1000
)

type weatherUseCase struct {
	queueName       string
	batchSize       int
	apiGateway      api.WeatherGateway
	readingCache    cache.ReadingCache
	favoriteGateway db.FavoriteGateway
	queueSender     queue.Sender
	now             func() time.Time
}

// Options wires the optional collaborators. A nil ReadingCache disables caching and a nil
// QueueSender makes EnqueueFavoritesRefresh a no-op.
type Options struct {
	QueueName       string
	BatchSize       int
	ReadingCache    cache.ReadingCache
	FavoriteGateway db.FavoriteGateway
	QueueSender     queue.Sender
	Now             func() time.Time
}

func NewWeatherUseCase(apiGateway api.WeatherGateway, options Options) UseCase {
	if !numberutils.IsIntInRange(options.BatchSize, 1, maxBatchSize) {
		options.BatchSize = defaultBatchSize
	}
	if options.Now == nil {
		options.Now = time.Now
	}
	return &weatherUseCase{
		queueName:       options.QueueName,
		batchSize:       options.BatchSize,
		apiGateway:      apiGateway,
		readingCache:    options.ReadingCache,
		favoriteGateway: options.FavoriteGateway,
		queueSender:     options.QueueSender,
		now:             options.Now,
	}
}

func (uc *weatherUseCase) FindByCity(ctx context.Context, city string, unit entity.Unit) (*model.WeatherResponse, error) {
	city = strings.TrimSpace(city)
	if city == "" {
		return nil, entity.ErrMissingFields
	}

	report, err := uc.cached(ctx, cache.CityKey(city), city, func() (*entity.WeatherReport, error) {
		return uc.apiGateway.FindByCity(ctx, city)
	})
	if err != nil {
		return nil, err
	}
	return uc.respond(report, unit), nil
}

func (uc *weatherUseCase) FindByCoordinates(ctx context.Context, lat, lon float64, unit entity.Unit) (*model.WeatherResponse, error) {
	if !validCoordinates(lat, lon) {
		return nil, entity.ErrInvalidCoordinates
	}

	key := cache.CoordinatesKey(lat, lon)
	report, err := uc.cached(ctx, key, key, func() (*entity.WeatherReport, error) {
		return uc.apiGateway.FindByCoordinates(ctx, lat, lon)
	})
	if err != nil {
		return nil, err
	}
	return uc.respond(report, unit), nil
}

func (uc *weatherUseCase) Project(request model.DisplayRequest) (*display.View, error) {
	unit := entity.UnitCelsius
	if strings.TrimSpace(request.Unit) != "" {
		parsed, ok := entity.ParseUnit(request.Unit)
		if !ok {
			return nil, entity.ErrInvalidUnit
		}
		unit = parsed
	}

	now := uc.now().Unix()
	if request.Now != nil {
		now = *request.Now
	}

	view := display.BuildView(entity.WeatherReport{Reading: request.Reading, Forecast: request.Forecast}, unit, now)
	return &view, nil
}

func (uc *weatherUseCase) RefreshCity(ctx context.Context, city string) error {
	city = strings.TrimSpace(city)
	if city == "" {
		return entity.ErrMissingFields
	}

	report, err := uc.apiGateway.FindByCity(ctx, city)
	if err != nil {
		return fmt.Errorf("failed to refresh %s: %w", city, err)
	}

	if uc.readingCache != nil {
		if err := uc.readingCache.Set(ctx, cache.CityKey(city), report); err != nil {
			return fmt.Errorf("failed to cache %s: %w", city, err)
		}
	}

	log.Info(msg.GetMessage("weather.refresh.city-done", city), zap.String("city", city))
	return nil
}

func (uc *weatherUseCase) EnqueueFavoritesRefresh(ctx context.Context, requestID string) (*model.RefreshResponse, error) {
	response := &model.RefreshResponse{}
	if uc.queueSender == nil || uc.favoriteGateway == nil {
		log.Warn("Favorites refresh requested but no queue is configured", zap.String("request_id", requestID))
		return response, nil
	}

	log.Info("Starting favorites refresh with key-set pagination", zap.String("request_id", requestID))

	var lastCity string
	batch := 0
	for {
		// one extra row tells whether another page exists
		rows, err := uc.favoriteGateway.FindDistinctCitiesWithKeysetPagination(ctx, lastCity, uc.batchSize+1)
		if err != nil {
			log.Error("Failed to fetch favorite cities with key-set pagination",
				zap.String("request_id", requestID),
				zap.String("last_city", lastCity),
				zap.Error(err))
			return response, fmt.Errorf("failed to fetch favorite cities (last city: %q): %w", lastCity, err)
		}

		page := model.NewCursorPage(rows, uc.batchSize, func(city string) string { return city })
		if len(page.Content) == 0 {
			break
		}

		enqueued, failed := uc.enqueueBatch(ctx, requestID, batch, page.Content)
		response.Enqueued += enqueued
		response.Failed += failed

		if !page.HasNext() {
			break
		}
		lastCity = page.NextCursor
		batch++
	}

	log.Info(msg.GetMessage("weather.refresh.enqueued", response.Enqueued),
		zap.String("request_id", requestID),
		zap.Int("enqueued", response.Enqueued),
		zap.Int("failed", response.Failed))
	return response, nil
}

// enqueueBatch sends one page of cities. Message ids must be unique within a batch and
// limited to alphanumerics, hyphen and underscore, so they are built from the position.
func (uc *weatherUseCase) enqueueBatch(ctx context.Context, requestID string, batch int, cities []string) (int, int) {
	messages := make([]queue.BatchMessage, len(cities))
	byID := make(map[string]string, len(cities))
	for i, city := range cities {
		id := fmt.Sprintf("refresh-%d-%d", batch, i)
		byID[id] = city
		messages[i] = queue.BatchMessage{MessageID: id, Body: model.RefreshMessage{City: city}}
	}

	result, err := uc.queueSender.SendMessageBatch(ctx, uc.queueName, messages)
	if err != nil {
		log.Warn("Failed to send refresh batch",
			zap.String("request_id", requestID),
			zap.Int("batch", batch),
			zap.Error(err))
		return 0, len(cities)
	}

	if len(result.Failed) > 0 {
		failedCities := make([]string, 0, len(result.Failed))
		for _, id := range result.Failed {
			failedCities = append(failedCities, byID[id])
		}
		log.Warn(msg.GetMessage("weather.refresh.partial", len(result.Failed)),
			zap.String("request_id", requestID),
			zap.Strings("cities", failedCities))
	}
	return len(result.Successful), len(result.Failed)
}

// cached reads through the reading cache. Cache failures are logged and never fail the lookup.
func (uc *weatherUseCase) cached(ctx context.Context, key, label string, load func() (*entity.WeatherReport, error)) (*entity.WeatherReport, error) {
	if uc.readingCache != nil {
		report, found, err := uc.readingCache.Get(ctx, key)
		if err != nil {
			log.Warn(msg.GetMessage("weather.cache.read-failed", label), zap.Error(err))
		} else if found {
			return report, nil
		}
	}

	report, err := load()
	if err != nil {
		return nil, err
	}

	if uc.readingCache != nil {
		if err := uc.readingCache.Set(ctx, key, report); err != nil {
			log.Warn(msg.GetMessage("weather.cache.write-failed", label), zap.Error(err))
		}
	}
	return report, nil
}

func (uc *weatherUseCase) respond(report *entity.WeatherReport, unit entity.Unit) *model.WeatherResponse {
	return &model.WeatherResponse{
		Report:  *report,
		Display: display.BuildView(*report, unit, uc.now().Unix()),
	}
}

// validCoordinates rejects NaN as well, since every comparison with it is false.
func validCoordinates(lat, lon float64) bool {
	return numberutils.IsFloat64InRange(lat, -90, 90) && numberutils.IsFloat64InRange(lon, -180, 180)
}
