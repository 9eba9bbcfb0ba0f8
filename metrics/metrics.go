// Package metrics tracks the refresh engine's actual draw-cycle
// frequency and periodically reports an average, the way a developer
// debugging refresh timing on real hardware would want to see it without
// an oscilloscope.
//
// Grounded on original_source/src/metrics.rs: TimerSource,
// AverageFrequencyMeasure, and the wraparound-safe delta computation in
// IncPeriod/trigger_end_cycle are translated field-for-field. This
// package has no build tag: TimerSource is an interface, so
// AverageFrequencyMeasure itself is host-testable against a fake clock;
// only the concrete RTC-backed TimerSource in rtc.go needs the tinygo
// build.
package metrics

import "math"

// TimerSource is a free-running counter metrics can sample to measure
// elapsed time between draw cycles.
type TimerSource interface {
	// CurrentValue returns the counter's current value.
	CurrentValue() uint32
	// Frequency returns the counter's tick rate in Hz.
	Frequency() uint32
}

// AverageFrequencyMeasure counts calls to IncPeriod and, once
// logPeriodMillis worth of TimerSource ticks have elapsed, reports the
// average call frequency over that window to action and resets the
// count.
type AverageFrequencyMeasure struct {
	source   TimerSource
	action   func(avgFreqHz uint32)
	deltaMax uint32

	counter      uint32
	lastMeasured uint32
}

// NewAverageFrequencyMeasure returns a measure sampling source, reporting
// an average frequency to action roughly every logPeriodMillis.
func NewAverageFrequencyMeasure(source TimerSource, logPeriodMillis uint32, action func(avgFreqHz uint32)) *AverageFrequencyMeasure {
	freq := source.Frequency()
	return &AverageFrequencyMeasure{
		source:   source,
		action:   action,
		deltaMax: freq * logPeriodMillis / 1000,
	}
}

// IncPeriod records that one more cycle (e.g. one completed frame) has
// occurred. Call this once per cycle; it calls action with the average
// frequency and resets the counter whenever the measurement window has
// elapsed.
func (m *AverageFrequencyMeasure) IncPeriod() {
	current := m.source.CurrentValue()
	if m.counter == 0 {
		m.lastMeasured = current
		m.counter++
		return
	}

	var delta uint32
	if current > m.lastMeasured {
		delta = current - m.lastMeasured
	} else {
		// the counter wrapped around its uint32 range since lastMeasured.
		delta = current + (math.MaxUint32 - m.lastMeasured)
	}

	if delta >= m.deltaMax {
		m.triggerEndCycle(delta)
	} else {
		m.counter++
	}
}

func (m *AverageFrequencyMeasure) triggerEndCycle(delta uint32) {
	freq := m.source.Frequency()
	avg := m.counter * freq / delta
	m.action(avg)
	m.counter = 0
}
