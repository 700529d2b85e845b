package handlers

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/sorriso-perfeito/internal/calendar"
	"github.com/BruksfildServices01/sorriso-perfeito/internal/timezone"
)

func queryContext(target string) *gin.Context {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", target, nil)
	return c
}

func TestParseYearMonth(t *testing.T) {
	now := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)

	cases := []struct {
		query string
		want  calendar.YearMonth
		code  string
	}{
		{"", calendar.YearMonth{Year: 2024, Month: time.March}, ""},
		{"?month=12", calendar.YearMonth{Year: 2024, Month: time.December}, ""},
		{"?year=1999&month=1", calendar.YearMonth{Year: 1999, Month: time.January}, ""},
		{"?month=0", calendar.YearMonth{}, "invalid_month"},
		{"?month=13", calendar.YearMonth{}, "invalid_month"},
		{"?year=0", calendar.YearMonth{}, "invalid_year"},
		{"?year=10000", calendar.YearMonth{}, "invalid_year"},
	}

	for _, tc := range cases {
		ym, code, ok := parseYearMonth(queryContext("/"+tc.query), now)
		assert.Equal(t, tc.code, code, tc.query)
		assert.Equal(t, tc.code == "", ok, tc.query)
		if ok {
			assert.Equal(t, tc.want, ym, tc.query)
		}
	}
}

func TestParseDateTimeInClinic(t *testing.T) {
	loc := timezone.Location("America/Sao_Paulo")

	local, err := parseDateTimeInClinic("2024-03-15T14:00", loc)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 3, 15, 17, 0, 0, 0, time.UTC), local.UTC())

	abs, err := parseDateTimeInClinic("2024-03-15T17:00:00Z", loc)
	require.NoError(t, err)
	assert.True(t, abs.Equal(local))
	assert.Equal(t, 14, abs.Hour())

	_, err = parseDateTimeInClinic("15/03/2024 14:00", loc)
	assert.Error(t, err)
}
