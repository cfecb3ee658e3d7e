package pipeline

import (
	"testing"

	"github.com/stretchr/testify/require"

	"covidstats/internal/table"
	"covidstats/internal/transform"
)

const fixturePage = `<!doctype html>
<html>
  <head><title>COVID-19 statistics</title></head>
  <body>
    <h1>Cases reported</h1>
    <table>
      <tr><th>Day</th><th>New staff cases</th><th>New student cases</th></tr>
      <tr><td>13 Oct 2020</td><td>1</td><td>2*</td></tr>
      <tr><td>12 Oct 2020</td><td>3*</td><td>5</td></tr>
    </table>
  </body>
</html>`

func TestRun_EndToEnd(t *testing.T) {
	ds, err := Run([]byte(fixturePage), 3)
	require.NoError(t, err)
	require.Equal(t, transform.Dataset{
		{Date: "2020-10-12", Counts: []int{3, 5}},
		{Date: "2020-10-13", Counts: []int{1, 2}},
	}, ds)
}

func TestRun_SchemaMismatchAborts(t *testing.T) {
	page := `<table>
	  <tr><th>Day</th><th>Staff</th><th>Student</th></tr>
	  <tr><td>12 Oct 2020</td><td>3</td><td>5</td></tr>
	</table>`

	ds, err := Run([]byte(page), 3)
	require.ErrorIs(t, err, table.ErrSchemaMismatch)
	require.Nil(t, ds)
}

func TestRun_BadCellAborts(t *testing.T) {
	page := `<table>
	  <tr><th>Day</th><th>New staff cases</th><th>New student cases</th></tr>
	  <tr><td>12 Oct 2020</td><td>N/A</td><td>5</td></tr>
	</table>`

	ds, err := Run([]byte(page), 3)
	require.ErrorIs(t, err, transform.ErrNumericParse)
	require.Nil(t, ds)
}

func TestRun_RowOutsideSchemaAborts(t *testing.T) {
	// Stray non-data rows elsewhere in the document are extracted too and
	// must fail loudly rather than be silently dropped.
	page := `<table>
	  <tr><td>12 Oct 2020</td><td>3</td><td>5</td></tr>
	</table>
	<table>
	  <tr><td>footnote about reporting lag</td></tr>
	</table>`

	_, err := Run([]byte(page), 3)
	require.ErrorIs(t, err, transform.ErrRowShape)
}
