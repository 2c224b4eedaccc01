package tzsync_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	tzsync "github.com/Egwau-Godfrey/time-zone-sync"
)

func TestSystemClockNow(t *testing.T) {
	now := tzsync.SystemClock{}.Now()
	assert.False(t, now.IsZero())
	assert.WithinDuration(t, time.Now(), now, time.Minute)
}

func TestNewWithNilClockFallsBack(t *testing.T) {
	converter, err := tzsync.NewWithClock("UTC", "UTC", nil)
	require.NoError(t, err)

	now, err := converter.CurrentTimeInSource()
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now(), now, time.Minute)
}
