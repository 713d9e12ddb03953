package main

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"weather-dashboard/internal/domain/display"
	"weather-dashboard/internal/domain/entity"
	"weather-dashboard/internal/domain/gateway/api"
	"weather-dashboard/internal/domain/model"
)

func newDisplayCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "display [city]",
		Short: "Print the display projection of a reading as JSON",
		Long: "Fetches a reading from the configured provider (the mock one by default), " +
			"loads it into a dashboard state and prints the projection. " +
			"Without a city, --lat and --lon select a coordinate lookup.",
		Args: cobra.MaximumNArgs(1),
		RunE: runDisplay,
	}

	cmd.Flags().StringP("unit", "u", string(entity.UnitCelsius), "celsius or fahrenheit")
	cmd.Flags().String("provider", "mock", "Reading source: mock or open-meteo")
	cmd.Flags().Uint64("seed", 0, "Seed for the mock provider; 0 picks one from the clock")
	cmd.Flags().Int64("now", 0, "Evaluation instant in epoch seconds; 0 uses the clock")
	cmd.Flags().Float64("lat", 0, "Latitude for coordinate lookups")
	cmd.Flags().Float64("lon", 0, "Longitude for coordinate lookups")
	return cmd
}

func runDisplay(cmd *cobra.Command, args []string) error {
	flags := cmd.Flags()
	unitFlag, _ := flags.GetString("unit")
	provider, _ := flags.GetString("provider")
	seed, _ := flags.GetUint64("seed")
	now, _ := flags.GetInt64("now")

	unit, ok := entity.ParseUnit(unitFlag)
	if !ok {
		return fmt.Errorf("%w: %s", entity.ErrInvalidUnit, unitFlag)
	}
	if now == 0 {
		now = time.Now().Unix()
	}

	report, err := fetchReport(cmd, newWeatherGateway(provider, seed), args)
	if err != nil {
		return err
	}

	state := display.Reduce(display.NewState(unit), display.ReadingLoaded{Report: *report})
	view, _ := display.Project(state, now)

	encoder := json.NewEncoder(cmd.OutOrStdout())
	encoder.SetIndent("", "  ")
	return encoder.Encode(model.WeatherResponse{Report: *report, Display: view})
}

func fetchReport(cmd *cobra.Command, gateway api.WeatherGateway, args []string) (*entity.WeatherReport, error) {
	if len(args) == 1 {
		return gateway.FindByCity(cmd.Context(), args[0])
	}

	lat, _ := cmd.Flags().GetFloat64("lat")
	lon, _ := cmd.Flags().GetFloat64("lon")
	if !cmd.Flags().Changed("lat") || !cmd.Flags().Changed("lon") {
		return nil, fmt.Errorf("a city or both --lat and --lon are required")
	}
	return gateway.FindByCoordinates(cmd.Context(), lat, lon)
}
