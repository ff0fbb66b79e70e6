// Package day13 orders distress-signal packets: arbitrarily nested lists
// of integers compared element-wise, with a bare integer promoted to a
// one-element list when matched against a list.
package day13

import (
	"errors"
	"fmt"
	"sort"
	"strconv"

	"github.com/adventcode/advent2022/input"
)

// ErrBadPacket indicates text outside the packet grammar.
var ErrBadPacket = errors.New("day13: malformed packet")

// Packet is either a number (List nil) or a list of packets.
type Packet struct {
	Number int
	List   []Packet
	isList bool
}

// num wraps an integer as a packet.
func num(n int) Packet {
	return Packet{Number: n}
}

// list wraps packets as a list packet; list() is the empty list.
func list(items ...Packet) Packet {
	return Packet{List: items, isList: true}
}

// ParsePacket reads one packet from a full line.
func ParsePacket(s string) (Packet, error) {
	p, rest, err := parseValue(s)
	if err != nil {
		return Packet{}, err
	}
	if rest != "" {
		return Packet{}, fmt.Errorf("%w: trailing %q", ErrBadPacket, rest)
	}

	return p, nil
}

func parseValue(s string) (Packet, string, error) {
	if s == "" {
		return Packet{}, "", fmt.Errorf("%w: empty value", ErrBadPacket)
	}
	if s[0] != '[' {
		i := 0
		for i < len(s) && s[i] >= '0' && s[i] <= '9' {
			i++
		}
		if i == 0 {
			return Packet{}, "", fmt.Errorf("%w: unexpected %q", ErrBadPacket, s[0])
		}
		n, err := strconv.Atoi(s[:i])
		if err != nil {
			return Packet{}, "", fmt.Errorf("%w: %v", ErrBadPacket, err)
		}

		return num(n), s[i:], nil
	}

	s = s[1:]
	items := []Packet{}
	for {
		if s == "" {
			return Packet{}, "", fmt.Errorf("%w: unterminated list", ErrBadPacket)
		}
		if s[0] == ']' {
			return list(items...), s[1:], nil
		}
		if len(items) > 0 {
			if s[0] != ',' {
				return Packet{}, "", fmt.Errorf("%w: expected comma before %q", ErrBadPacket, s)
			}
			s = s[1:]
		}
		item, rest, err := parseValue(s)
		if err != nil {
			return Packet{}, "", err
		}
		items = append(items, item)
		s = rest
	}
}

// Compare orders two packets: negative when a sorts before b, zero when
// equal, positive when after.
func Compare(a, b Packet) int {
	switch {
	case !a.isList && !b.isList:
		return a.Number - b.Number
	case !a.isList:
		return Compare(list(a), b)
	case !b.isList:
		return Compare(a, list(b))
	}

	for i := 0; i < len(a.List) && i < len(b.List); i++ {
		if c := Compare(a.List[i], b.List[i]); c != 0 {
			return c
		}
	}

	return len(a.List) - len(b.List)
}

// Parse reads the packet pairs, two lines per blank-separated block.
func Parse(text string) ([][2]Packet, error) {
	var pairs [][2]Packet
	for i, block := range input.Blocks(text) {
		if len(block) != 2 {
			return nil, fmt.Errorf("%w: pair %d has %d lines", ErrBadPacket, i+1, len(block))
		}
		first, err := ParsePacket(block[0])
		if err != nil {
			return nil, err
		}
		second, err := ParsePacket(block[1])
		if err != nil {
			return nil, err
		}
		pairs = append(pairs, [2]Packet{first, second})
	}

	return pairs, nil
}

// OrderedPairSum adds up the 1-based indices of pairs already in order.
func OrderedPairSum(pairs [][2]Packet) int {
	sum := 0
	for i, pair := range pairs {
		if Compare(pair[0], pair[1]) < 0 {
			sum += i + 1
		}
	}

	return sum
}

// DecoderKey sorts all packets together with the [[2]] and [[6]] dividers
// and multiplies the dividers' 1-based positions.
func DecoderKey(pairs [][2]Packet) int {
	divA, divB := list(list(num(2))), list(list(num(6)))

	all := []Packet{divA, divB}
	for _, pair := range pairs {
		all = append(all, pair[0], pair[1])
	}
	sort.SliceStable(all, func(i, j int) bool {
		return Compare(all[i], all[j]) < 0
	})

	key := 1
	for i, p := range all {
		if Compare(p, divA) == 0 || Compare(p, divB) == 0 {
			key *= i + 1
		}
	}

	return key
}

// Solve answers both parts over the packet list.
func Solve(text string) (string, string, error) {
	pairs, err := Parse(text)
	if err != nil {
		return "", "", err
	}

	return strconv.Itoa(OrderedPairSum(pairs)), strconv.Itoa(DecoderKey(pairs)), nil
}
