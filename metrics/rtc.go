//go:build tinygo

// RTC-backed TimerSource and process-wide metrics singleton wiring.
//
// Grounded on original_source/src/metrics.rs's RTCTimerSource and
// init_global_time_source/init_debug_metrics: RTC2 running off the LFCLK
// (32.768 kHz) is the free-running counter, started once and published
// through onceslot the same way the original publishes it through
// DynamicReadOnlyCell.
package metrics

import (
	"device/nrf"

	"github.com/tinygo-community/rgb75-matrix/onceslot"
)

// LFCLKFrequency is the low-frequency clock rate RTC2 counts at once
// started, matching the original's microbit::hal::clocks::LFCLK_FREQ.
const LFCLKFrequency = 32768

// DrawCycleLogPeriodMillis is the averaging window for the published
// draw-cycle frequency measure.
const DrawCycleLogPeriodMillis = 1000

// RTCSource is a TimerSource backed by RTC2's free-running counter.
type RTCSource struct{}

// NewRTCSource starts the low-frequency clock (if not already running)
// and RTC2's counter, and returns a TimerSource reading it.
func NewRTCSource() *RTCSource {
	nrf.CLOCK.TASKS_LFCLKSTART.Set(1)
	for nrf.CLOCK.EVENTS_LFCLKSTARTED.Get() == 0 {
	}
	nrf.CLOCK.EVENTS_LFCLKSTARTED.Set(0)

	nrf.RTC2.TASKS_START.Set(1)
	return &RTCSource{}
}

// CurrentValue returns RTC2's current 24-bit counter value.
func (s *RTCSource) CurrentValue() uint32 { return nrf.RTC2.COUNTER.Get() }

// Frequency returns the LFCLK rate RTC2 counts at.
func (s *RTCSource) Frequency() uint32 { return LFCLKFrequency }

// timeSource publishes the process-wide RTCSource singleton, mirroring
// the original's static TIMER_SOURCE DynamicReadOnlyCell.
var timeSource onceslot.Cell[*RTCSource]

// InitGlobalTimeSource starts RTC2 on first call and publishes it as the
// process-wide time source; subsequent calls return the same instance.
func InitGlobalTimeSource() *RTCSource {
	if existing, ok := timeSource.TryGet(); ok {
		return existing
	}
	src := NewRTCSource()
	timeSource.Set(src)
	return src
}

// drawCycleMetrics publishes the process-wide draw-cycle frequency
// measure, mirroring the original's static DRAW_CYCLE_METRICS mutex cell.
var drawCycleMetrics *AverageFrequencyMeasure

// InitDebugMetrics wires source into a published AverageFrequencyMeasure
// that logs its result through logAverageFrequency (see metrics_log.go /
// metrics_nolog.go), and returns it so callers can call IncPeriod once
// per draw cycle.
func InitDebugMetrics(source TimerSource) *AverageFrequencyMeasure {
	drawCycleMetrics = NewAverageFrequencyMeasure(source, DrawCycleLogPeriodMillis, logAverageFrequency)
	return drawCycleMetrics
}
