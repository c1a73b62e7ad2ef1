package stats

import (
	"bytes"
	"testing"
	"time"

	"github.com/pterm/pterm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ayoisaiah/tracker/internal/models"
)

func TestTableData(t *testing.T) {
	pterm.DisableStyling()

	writing := focus("Writing", true, session(date(4, 9, 0), 90*time.Minute))
	reading := focus("Reading", true, session(date(6, 9, 0), 20*time.Minute))

	data := tableData(Weekly([]*models.Focus{writing, reading}, date(4, 9, 0)))

	require.Len(t, data, 4)
	assert.Equal(
		t,
		[]string{"Focus", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun", "Total"},
		data[0],
	)
	assert.Equal(
		t,
		[]string{"Writing", "1h 30m", "-", "-", "-", "-", "-", "-", "1h 30m"},
		data[1],
	)
	assert.Equal(t, "20m", data[2][3])
	assert.Equal(t, "Total", data[3][0])
	assert.Equal(t, "1h 50m", data[3][8])
}

func TestTableDataSingleSeriesHasNoTotalsRow(t *testing.T) {
	writing := focus("Writing", true, session(date(4, 9, 0), 90*time.Minute))

	data := tableData(Weekly([]*models.Focus{writing}, date(4, 9, 0)))

	assert.Len(t, data, 2)
}

func TestRenderPlaceholder(t *testing.T) {
	pterm.DisableStyling()

	var buf bytes.Buffer

	require.NoError(t, Render(&buf, Weekly(nil, date(4, 9, 0))))

	out := buf.String()
	assert.Contains(t, out, "Week of March 04, 2024 - March 10, 2024")
	assert.Contains(t, out, "No focus is included in the report")
}

func TestRenderSeries(t *testing.T) {
	pterm.DisableStyling()

	var buf bytes.Buffer

	writing := focus("Writing", true, session(date(4, 9, 0), 90*time.Minute))

	require.NoError(t, Render(&buf, Weekly([]*models.Focus{writing}, date(4, 9, 0))))

	out := buf.String()
	assert.Contains(t, out, "Writing (minutes)")
	assert.Contains(t, out, "Mon")
	assert.Contains(t, out, "1h 30m")
}
