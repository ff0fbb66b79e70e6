// Package day16 releases pressure from a network of valves, alone for 30
// minutes and with a trained elephant for 26. The search itself lives in
// the pressure package.
package day16

import (
	"strconv"

	"github.com/adventcode/advent2022/pressure"
)

// Solve parses the scan report and answers both parts.
func Solve(text string) (string, string, error) {
	net, err := pressure.Parse(text)
	if err != nil {
		return "", "", err
	}

	alone, err := pressure.MaxPressure(net)
	if err != nil {
		return "", "", err
	}
	paired, err := pressure.MaxPressureWithPartner(net)
	if err != nil {
		return "", "", err
	}

	return strconv.Itoa(alone), strconv.Itoa(paired), nil
}
