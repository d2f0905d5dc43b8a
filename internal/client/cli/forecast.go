package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/iudanet/codehours/internal/forecast"
	"github.com/iudanet/codehours/internal/validation"
)

func (c *Cli) runForecast(ctx context.Context, args []string) error {
	fs := c.newFlagSet("forecast")
	horizon := fs.IntP("horizon", "n", forecast.DefaultHorizon, fmt.Sprintf("days to forecast (1-%d)", forecast.MaxHorizon))
	historyFile := fs.String("history-file", "", "JSON file with [{date, hours}] points instead of the journal")
	if err := parseFlags(fs, args); err != nil {
		return err
	}

	session, err := c.session(ctx)
	if err != nil {
		return err
	}

	raw := json.RawMessage(nil)
	if *historyFile != "" {
		data, err := os.ReadFile(*historyFile)
		if err != nil {
			return fmt.Errorf("failed to read history file: %w", err)
		}
		raw = data
	}
	history, err := validation.ParseHistory(raw)
	if err != nil {
		return err
	}
	if *historyFile != "" && history == nil {
		return validation.ErrInvalidHistory
	}

	fc, err := c.api.Forecast(ctx, session.Token, history, forecast.ClampHorizon(float64(*horizon)))
	if err != nil {
		return c.wrapAuthError(err)
	}

	if len(fc.Predictions) == 0 {
		c.io.Println("No history to forecast from. Log some hours first.")
		return nil
	}

	return c.render(forecastTemplate, newForecastView(fc))
}
