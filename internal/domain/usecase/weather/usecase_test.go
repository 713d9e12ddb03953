package weather

import (
	"context"
	"errors"
	"math"
	"sort"
	"strings"
	"testing"
	"time"

	"weather-dashboard/internal/domain/entity"
	"weather-dashboard/internal/domain/gateway/queue"
	"weather-dashboard/internal/domain/model"
)

var fixedNow = time.Date(2026, 10, 17, 12, 0, 0, 0, time.UTC)

type fakeSource struct {
	calls int
	err   error
}

func (f *fakeSource) report(city string) *entity.WeatherReport {
	return &entity.WeatherReport{
		Reading: entity.WeatherReading{
			City:               city,
			TemperatureCelsius: 22,
			Condition:          entity.ConditionRainy,
			SunriseEpochSec:    fixedNow.Add(-6 * time.Hour).Unix(),
			SunsetEpochSec:     fixedNow.Add(6 * time.Hour).Unix(),
		},
		Forecast: []entity.ForecastDay{{Date: fixedNow.AddDate(0, 0, 1), Condition: entity.ConditionSunny, HighC: 30, LowC: 10}},
	}
}

func (f *fakeSource) FindByCity(_ context.Context, city string) (*entity.WeatherReport, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.report(city), nil
}

func (f *fakeSource) FindByCoordinates(context.Context, float64, float64) (*entity.WeatherReport, error) {
	f.calls++
	return f.report("Your Location"), nil
}

type fakeCache struct {
	entries  map[string]*entity.WeatherReport
	getErr   error
	setErr   error
	setCalls int
}

func newFakeCache() *fakeCache {
	return &fakeCache{entries: map[string]*entity.WeatherReport{}}
}

func (f *fakeCache) Get(_ context.Context, key string) (*entity.WeatherReport, bool, error) {
	if f.getErr != nil {
		return nil, false, f.getErr
	}
	report, ok := f.entries[key]
	return report, ok, nil
}

func (f *fakeCache) Set(_ context.Context, key string, report *entity.WeatherReport) error {
	f.setCalls++
	if f.setErr != nil {
		return f.setErr
	}
	f.entries[key] = report
	return nil
}

type fakeFavorites struct {
	cities []string
	sizes  []int
}

func (f *fakeFavorites) FindAllByUser(context.Context, uint) ([]entity.FavoriteCity, error) {
	return nil, nil
}

func (f *fakeFavorites) Create(context.Context, entity.FavoriteCity) (*entity.FavoriteCity, error) {
	return nil, nil
}

func (f *fakeFavorites) DeleteByIDAndUser(context.Context, uint, uint) (bool, error) {
	return false, nil
}

func (f *fakeFavorites) FindDistinctCitiesWithKeysetPagination(_ context.Context, lastCity string, size int) ([]string, error) {
	f.sizes = append(f.sizes, size)
	sorted := append([]string(nil), f.cities...)
	sort.Strings(sorted)

	var result []string
	for _, city := range sorted {
		if city > lastCity && len(result) < size {
			result = append(result, city)
		}
	}
	return result, nil
}

type fakeSender struct {
	batches [][]queue.BatchMessage
	failIDs map[string]bool
}

func (f *fakeSender) SendMessage(context.Context, string, any) error {
	return nil
}

func (f *fakeSender) SendMessageBatch(_ context.Context, _ string, messages []queue.BatchMessage) (*queue.BatchResult, error) {
	f.batches = append(f.batches, messages)
	result := &queue.BatchResult{}
	for _, message := range messages {
		if f.failIDs[message.MessageID] {
			result.Failed = append(result.Failed, message.MessageID)
		} else {
			result.Successful = append(result.Successful, message.MessageID)
		}
	}
	return result, nil
}

func clock() time.Time { return fixedNow }

func TestFindByCityUsesCache(t *testing.T) {
	ctx := context.Background()
	source := &fakeSource{}
	readings := newFakeCache()
	uc := NewWeatherUseCase(source, Options{ReadingCache: readings, Now: clock})

	first, err := uc.FindByCity(ctx, "London", entity.UnitFahrenheit)
	if err != nil {
		t.Fatalf("FindByCity: %v", err)
	}
	if first.Display.Current.TemperatureLabel != "72°F" || first.Report.Reading.TemperatureCelsius != 22 {
		t.Errorf("response = %+v", first.Display.Current)
	}

	second, err := uc.FindByCity(ctx, " london ", entity.UnitCelsius)
	if err != nil {
		t.Fatal(err)
	}
	if source.calls != 1 {
		t.Errorf("source calls = %d, want 1", source.calls)
	}
	if second.Display.Current.TemperatureLabel != "22°C" {
		t.Errorf("cached projection label = %s", second.Display.Current.TemperatureLabel)
	}
}

func TestFindByCityToleratesCacheFailures(t *testing.T) {
	readings := newFakeCache()
	readings.getErr = errors.New("redis down")
	readings.setErr = errors.New("redis down")
	source := &fakeSource{}
	uc := NewWeatherUseCase(source, Options{ReadingCache: readings, Now: clock})

	response, err := uc.FindByCity(context.Background(), "Paris", entity.UnitCelsius)
	if err != nil {
		t.Fatalf("cache failure leaked: %v", err)
	}
	if response.Report.Reading.City != "Paris" || source.calls != 1 || readings.setCalls != 1 {
		t.Errorf("response %+v calls %d sets %d", response.Report.Reading, source.calls, readings.setCalls)
	}
}

func TestFindByCityErrors(t *testing.T) {
	source := &fakeSource{err: entity.ErrCityNotFound}
	uc := NewWeatherUseCase(source, Options{Now: clock})

	if _, err := uc.FindByCity(context.Background(), "   ", entity.UnitCelsius); !errors.Is(err, entity.ErrMissingFields) {
		t.Errorf("blank city error = %v", err)
	}
	if _, err := uc.FindByCity(context.Background(), "Atlantis", entity.UnitCelsius); !errors.Is(err, entity.ErrCityNotFound) {
		t.Errorf("unknown city error = %v", err)
	}
}

func TestFindByCoordinates(t *testing.T) {
	readings := newFakeCache()
	source := &fakeSource{}
	uc := NewWeatherUseCase(source, Options{ReadingCache: readings, Now: clock})

	for _, c := range [][2]float64{{91, 0}, {0, -180.5}, {math.NaN(), 0}} {
		if _, err := uc.FindByCoordinates(context.Background(), c[0], c[1], entity.UnitCelsius); !errors.Is(err, entity.ErrInvalidCoordinates) {
			t.Errorf("FindByCoordinates(%v) error = %v", c, err)
		}
	}

	if _, err := uc.FindByCoordinates(context.Background(), 51.5072, -0.1276, entity.UnitCelsius); err != nil {
		t.Fatal(err)
	}
	if _, err := uc.FindByCoordinates(context.Background(), 51.5051, -0.1301, entity.UnitCelsius); err != nil {
		t.Fatal(err)
	}
	if source.calls != 1 {
		t.Errorf("nearby lookups hit the source %d times", source.calls)
	}
	if _, ok := readings.entries["coords:51.51,-0.13"]; !ok {
		t.Errorf("cache keys = %v", readings.entries)
	}
}

func TestProject(t *testing.T) {
	uc := NewWeatherUseCase(&fakeSource{}, Options{Now: clock})
	report := (&fakeSource{}).report("Oslo")

	view, err := uc.Project(model.DisplayRequest{Reading: report.Reading, Forecast: report.Forecast, Unit: "f"})
	if err != nil {
		t.Fatal(err)
	}
	if view.Current.TemperatureLabel != "72°F" || view.Current.IsNight {
		t.Errorf("view = %+v", view.Current)
	}

	midnight := fixedNow.Add(12 * time.Hour).Unix()
	view, err = uc.Project(model.DisplayRequest{Reading: report.Reading, Now: &midnight})
	if err != nil {
		t.Fatal(err)
	}
	if !view.Current.IsNight || view.Current.Unit != entity.UnitCelsius {
		t.Errorf("night view = %+v", view.Current)
	}

	if _, err := uc.Project(model.DisplayRequest{Reading: report.Reading, Unit: "kelvin"}); !errors.Is(err, entity.ErrInvalidUnit) {
		t.Errorf("kelvin error = %v", err)
	}
}

func TestRefreshCityOverwritesCache(t *testing.T) {
	readings := newFakeCache()
	readings.entries["city:rome"] = &entity.WeatherReport{Reading: entity.WeatherReading{City: "stale"}}
	uc := NewWeatherUseCase(&fakeSource{}, Options{ReadingCache: readings, Now: clock})

	if err := uc.RefreshCity(context.Background(), "Rome"); err != nil {
		t.Fatal(err)
	}
	if readings.entries["city:rome"].Reading.City != "Rome" {
		t.Errorf("cache entry = %+v", readings.entries["city:rome"].Reading)
	}

	failing := NewWeatherUseCase(&fakeSource{err: entity.ErrCityNotFound}, Options{ReadingCache: readings, Now: clock})
	if err := failing.RefreshCity(context.Background(), "Nowhere"); !errors.Is(err, entity.ErrCityNotFound) {
		t.Errorf("refresh error = %v", err)
	}
}

func TestEnqueueFavoritesRefresh(t *testing.T) {
	favorites := &fakeFavorites{cities: []string{"Rome", "Berlin", "Oslo", "Lima", "Cairo"}}
	sender := &fakeSender{failIDs: map[string]bool{"refresh-1-0": true}}
	uc := NewWeatherUseCase(&fakeSource{}, Options{
		QueueName:       "weather-refresh",
		BatchSize:       2,
		FavoriteGateway: favorites,
		QueueSender:     sender,
		Now:             clock,
	})

	response, err := uc.EnqueueFavoritesRefresh(context.Background(), "req-1")
	if err != nil {
		t.Fatal(err)
	}
	if response.Enqueued != 4 || response.Failed != 1 {
		t.Errorf("response = %+v", response)
	}
	if len(sender.batches) != 3 {
		t.Fatalf("batches = %d, want 3", len(sender.batches))
	}

	var order []string
	for _, batch := range sender.batches {
		for _, message := range batch {
			order = append(order, message.Body.(model.RefreshMessage).City)
		}
	}
	if got := strings.Join(order, ","); got != "Berlin,Cairo,Lima,Oslo,Rome" {
		t.Errorf("enqueue order = %s", got)
	}
	for _, size := range favorites.sizes {
		if size != 3 {
			t.Errorf("page fetched with size %d, want batch size + 1", size)
		}
	}
}

func TestEnqueueFavoritesRefreshWithoutQueue(t *testing.T) {
	uc := NewWeatherUseCase(&fakeSource{}, Options{Now: clock})
	response, err := uc.EnqueueFavoritesRefresh(context.Background(), "req-2")
	if err != nil || response.Enqueued != 0 {
		t.Errorf("response = %+v %v", response, err)
	}
}
