package graph

import (
	"fmt"
	"strings"
)

// FilterType identifies a biquad filter response kind.
type FilterType int

const (
	// FilterTypeLowpass passes frequencies below the cutoff.
	FilterTypeLowpass FilterType = iota
	// FilterTypeHighpass passes frequencies above the cutoff.
	FilterTypeHighpass
	// FilterTypeBandpass passes a band around the center frequency.
	FilterTypeBandpass
	// FilterTypeNotch rejects a band around the center frequency.
	FilterTypeNotch
	// FilterTypeAllpass passes all frequencies with a phase shift.
	FilterTypeAllpass
	// FilterTypePeak boosts or cuts a band by the gain in dB.
	FilterTypePeak
	// FilterTypeLowShelf boosts or cuts below the corner frequency.
	FilterTypeLowShelf
	// FilterTypeHighShelf boosts or cuts above the corner frequency.
	FilterTypeHighShelf

	filterTypeCount // sentinel for validation
)

var filterTypeNames = [filterTypeCount]string{
	"lowpass", "highpass", "bandpass", "notch",
	"allpass", "peak", "lowshelf", "highshelf",
}

// String returns the name of the filter type.
func (t FilterType) String() string {
	if t >= 0 && t < filterTypeCount {
		return filterTypeNames[t]
	}
	return fmt.Sprintf("FilterType(%d)", int(t))
}

// Valid reports whether t is a known filter type.
func (t FilterType) Valid() bool {
	return t >= 0 && t < filterTypeCount
}

// ParseFilterType resolves a filter type by name, case-insensitively.
func ParseFilterType(name string) (FilterType, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, n := range filterTypeNames {
		if n == name {
			return FilterType(i), nil
		}
	}
	return 0, fmt.Errorf("unknown filter type %q", name)
}
