// Package day06 scans a datastream for its start markers: the first
// position after a run of distinct characters.
package day06

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrNoMarker indicates a stream with no window of distinct characters.
var ErrNoMarker = errors.New("day06: no marker found")

const (
	packetMarkerLen  = 4
	messageMarkerLen = 14
)

// Marker returns the number of characters consumed up to and including the
// first window of size distinct characters.
func Marker(stream string, size int) (int, error) {
	counts := [256]int{}
	distinct := 0
	for i := 0; i < len(stream); i++ {
		if counts[stream[i]] == 0 {
			distinct++
		}
		counts[stream[i]]++
		if i >= size {
			old := stream[i-size]
			counts[old]--
			if counts[old] == 0 {
				distinct--
			}
		}
		if i >= size-1 && distinct == size {
			return i + 1, nil
		}
	}

	return 0, fmt.Errorf("%w: window %d", ErrNoMarker, size)
}

// Solve answers both parts: the packet marker (4 distinct) and the message
// marker (14 distinct).
func Solve(text string) (string, string, error) {
	stream := strings.TrimSpace(text)

	p1, err := Marker(stream, packetMarkerLen)
	if err != nil {
		return "", "", err
	}
	p2, err := Marker(stream, messageMarkerLen)
	if err != nil {
		return "", "", err
	}

	return strconv.Itoa(p1), strconv.Itoa(p2), nil
}
