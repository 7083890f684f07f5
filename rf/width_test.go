package rf_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/netkit-wifi/netkit/domain"
	"github.com/netkit-wifi/netkit/rf"
)

func TestOptimizeChannelWidth24GHzLowUtilization(t *testing.T) {
	rec := rf.OptimizeChannelWidth(6, domain.Band2_4GHz, 10, 0, rf.ChannelPlanningConstraints{Allows40MHzIn24GHz: true})
	require.Equal(t, domain.Width40, rec.Width)
	require.Greater(t, rec.ExpectedThroughputImprovement, 0.0)
}

func TestOptimizeChannelWidth5GHzCongested(t *testing.T) {
	rec := rf.OptimizeChannelWidth(36, domain.Band5GHz, 80, 10, rf.ChannelPlanningConstraints{})
	require.Equal(t, domain.Width20, rec.Width)
}
