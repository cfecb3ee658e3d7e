package transform

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"covidstats/internal/table"
)

func TestTransform_WorkedExample(t *testing.T) {
	rows := []table.ValidatedRow{
		{"12 Oct 2020", "3", "5"},
		{"13 Oct 2020", "1", "2"},
	}

	ds, err := Transform(rows, 3)
	require.NoError(t, err)
	require.Equal(t, Dataset{
		{Date: "2020-10-12", Counts: []int{3, 5}},
		{Date: "2020-10-13", Counts: []int{1, 2}},
	}, ds)
}

func TestTransform_TolerantDateFormats(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"12 Oct 2020", "2020-10-12"},
		{"Oct 13, 2020", "2020-10-13"},
		{"2020-10-14", "2020-10-14"},
		{"15 October 2020", "2020-10-15"},
	}
	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			ds, err := Transform([]table.ValidatedRow{{tc.in, "0", "0"}}, 3)
			require.NoError(t, err)
			require.Equal(t, tc.want, ds[0].Date)
		})
	}
}

func TestTransform_SortsChronologically(t *testing.T) {
	rows := []table.ValidatedRow{
		{"14 Oct 2020", "2", "9"},
		{"12 Oct 2020", "3", "5"},
		{"13 Oct 2020", "1", "2"},
	}

	ds, err := Transform(rows, 3)
	require.NoError(t, err)
	require.Equal(t, []string{"2020-10-12", "2020-10-13", "2020-10-14"}, ds.Dates())
}

func TestTransform_CountsBreakDateTies(t *testing.T) {
	rows := []table.ValidatedRow{
		{"12 Oct 2020", "4", "1"},
		{"12 Oct 2020", "3", "9"},
	}

	ds, err := Transform(rows, 3)
	require.NoError(t, err)
	require.Equal(t, []int{3, 9}, ds[0].Counts)
	require.Equal(t, []int{4, 1}, ds[1].Counts)
}

func TestTransform_Errors(t *testing.T) {
	tests := []struct {
		name string
		row  table.ValidatedRow
		want error
	}{
		{"unparseable date", table.ValidatedRow{"not a date", "1", "2"}, ErrDateParse},
		{"not a number", table.ValidatedRow{"12 Oct 2020", "N/A", "2"}, ErrNumericParse},
		{"dash for missing data", table.ValidatedRow{"12 Oct 2020", "1", "-"}, ErrNumericParse},
		{"blank cell", table.ValidatedRow{"12 Oct 2020", "", "2"}, ErrNumericParse},
		{"too few cells", table.ValidatedRow{"12 Oct 2020", "1"}, ErrRowShape},
		{"too many cells", table.ValidatedRow{"12 Oct 2020", "1", "2", "3"}, ErrRowShape},
		{"empty row", table.ValidatedRow{}, ErrRowShape},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Transform([]table.ValidatedRow{tc.row}, 3)
			require.ErrorIs(t, err, tc.want)
		})
	}
}

func TestTransform_NoPartialResultOnFailure(t *testing.T) {
	rows := []table.ValidatedRow{
		{"12 Oct 2020", "3", "5"},
		{"13 Oct 2020", "N/A", "2"},
	}

	ds, err := Transform(rows, 3)
	require.ErrorIs(t, err, ErrNumericParse)
	require.Nil(t, ds)
}

func TestTypedRow_JSONShape(t *testing.T) {
	ds := Dataset{
		{Date: "2020-10-12", Counts: []int{3, 5}},
		{Date: "2020-10-13", Counts: []int{1, 2}},
	}

	data, err := json.Marshal(ds)
	require.NoError(t, err)
	require.JSONEq(t, `[["2020-10-12",3,5],["2020-10-13",1,2]]`, string(data))
}
