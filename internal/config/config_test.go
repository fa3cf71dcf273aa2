package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoundTrip(t *testing.T) {
	cfg := Default("Household")
	cfg.Report.Period = PeriodCustom
	cfg.Report.Year = 2025
	cfg.Report.StartMonth = 3
	cfg.Report.EndMonth = 6
	cfg.Report.SubtotalByMonth = true

	path := filepath.Join(t.TempDir(), FileName)
	require.NoError(t, Save(path, cfg))

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, got)
}

func TestDefaults(t *testing.T) {
	cfg := Default("Household")

	assert.Equal(t, "Household", cfg.Report.Budget)
	assert.Equal(t, PeriodAutomatic, cfg.Report.Period)
	assert.True(t, cfg.Report.SubtotalParents)
	assert.False(t, cfg.Report.SubtotalByMonth)
	assert.Equal(t, "USD", cfg.Currency.Code)
	assert.Equal(t, int32(2), cfg.Currency.DecimalPlaces)
	assert.False(t, cfg.Git.Enabled)
	require.NoError(t, cfg.Validate())
}

func TestLoadNotFound(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nonexistent.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadInvalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		want string
	}{
		{"bad period", "report:\n  period: fortnightly\n", "unknown period"},
		{"bad places", "currency:\n  decimal_places: 9\n", "decimal_places"},
		{"custom without year", "report:\n  period: custom\n  start_month: 1\n  end_month: 2\n", "needs a year"},
		{"not yaml", "report: [", "parsing config"},
	}
	for _, tt := range tests {
		path := filepath.Join(t.TempDir(), FileName)
		require.NoError(t, os.WriteFile(path, []byte(tt.yaml), 0o644))
		_, err := Load(path)
		require.Error(t, err, tt.name)
		assert.Contains(t, err.Error(), tt.want, tt.name)
	}
}

func TestYAMLFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	require.NoError(t, Save(path, Default("Household")))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	contents := string(data)

	assert.Contains(t, contents, "budget: Household")
	assert.Contains(t, contents, "period: automatic")
	assert.Contains(t, contents, "decimal_places: 2")
	assert.NotContains(t, contents, "start_month", "custom-only fields are omitted")
}

func TestWindow(t *testing.T) {
	may := time.Date(2025, time.May, 17, 0, 0, 0, 0, time.UTC)
	january := time.Date(2025, time.January, 3, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		period Period
		now    time.Time
		want   Window
	}{
		{PeriodAutomatic, may, Window{Year: 2025, StartMonth: 1, EndMonth: 5}},
		{"", may, Window{Year: 2025, StartMonth: 1, EndMonth: 5}},
		{PeriodThisYear, may, Window{Year: 2025, StartMonth: 1, EndMonth: 12}},
		{PeriodLastYear, may, Window{Year: 2024, StartMonth: 1, EndMonth: 12}},
		{PeriodThisMonth, may, Window{Year: 2025, StartMonth: 5, EndMonth: 5}},
		{PeriodLastMonth, may, Window{Year: 2025, StartMonth: 4, EndMonth: 4}},
		{PeriodLastMonth, january, Window{Year: 2024, StartMonth: 12, EndMonth: 12}},
	}
	for _, tt := range tests {
		got, err := ReportConfig{Period: tt.period}.Window(tt.now)
		require.NoError(t, err, "period %q", tt.period)
		assert.Equal(t, tt.want, got, "period %q", tt.period)
	}
}

func TestWindow_Custom(t *testing.T) {
	r := ReportConfig{Period: PeriodCustom, Year: 2023, StartMonth: 4, EndMonth: 9}
	w, err := r.Window(time.Now())
	require.NoError(t, err)
	assert.Equal(t, Window{Year: 2023, StartMonth: 4, EndMonth: 9}, w)
	assert.Equal(t, 6, w.Months())

	r.EndMonth = 3
	_, err = r.Window(time.Now())
	assert.Error(t, err)

	r.EndMonth = 13
	_, err = r.Window(time.Now())
	assert.Error(t, err)
}
