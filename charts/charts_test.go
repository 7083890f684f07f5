package charts_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/netkit-wifi/netkit/charts"
)

func TestNewLineChartDataRejectsEmptySeries(t *testing.T) {
	_, err := charts.NewLineChartData("rssi", nil, "")
	require.Error(t, err)
}

func TestNewLineChartDataRejectsBadColor(t *testing.T) {
	_, err := charts.NewLineChartData("rssi", []charts.Point{{X: 0, Y: 1}}, "not-a-color")
	require.Error(t, err)
}

func TestNewMultiSeriesChartDataAssignsPaletteColors(t *testing.T) {
	data, err := charts.NewMultiSeriesChartData("bands", []charts.Series{
		{Name: "2.4GHz", Points: []charts.Point{{X: 0, Y: 1}}},
		{Name: "5GHz", Points: []charts.Point{{X: 0, Y: 2}}},
	}, charts.SchemeDefault)
	require.NoError(t, err)
	require.NotEqual(t, data.Series[0].Color, data.Series[1].Color)
}

func TestNewBoxPlotDataRejectsUnorderedQuintiles(t *testing.T) {
	_, err := charts.NewBoxPlotData("rssi", []charts.BoxPlotEntry{
		{Label: "ap1", Quintiles: charts.BoxPlotQuintiles{Min: 0, Q1: 5, Median: 3, Q3: 8, Max: 10}},
	})
	require.Error(t, err)
}

func TestNewGraphDataRejectsDanglingEdge(t *testing.T) {
	_, err := charts.NewGraphData("mesh", []charts.GraphNode{{ID: "a"}}, []charts.GraphEdge{{From: "a", To: "ghost"}})
	require.Error(t, err)
}

func TestNewChannelDiagramDataRejectsUnknownChannel(t *testing.T) {
	_, err := charts.NewChannelDiagramData("2.4GHz", []int{1, 6, 11}, []charts.ChannelOccupant{{BSSIDLabel: "ap1", Channel: 3}})
	require.Error(t, err)
}
