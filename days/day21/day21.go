// Package day21 evaluates the monkey riddle tree. Part two treats the
// human shout as an unknown and propagates linear forms a + b*humn in
// exact rationals, so the root equality solves in one division.
package day21

import (
	"errors"
	"fmt"
	"math/big"
	"strconv"
	"strings"

	"github.com/adventcode/advent2022/input"
)

var (
	// ErrBadJob indicates a monkey line outside the two job grammars.
	ErrBadJob = errors.New("day21: malformed job")
	// ErrUnknownMonkey indicates a job referencing an undefined monkey.
	ErrUnknownMonkey = errors.New("day21: unknown monkey")
	// ErrNotLinear indicates a riddle outside the linear fragment:
	// unknowns multiplied together or an unknown divisor.
	ErrNotLinear = errors.New("day21: riddle is not linear")
	// ErrNoSolution indicates a root equation with no or infinitely many
	// answers, or a fractional one.
	ErrNoSolution = errors.New("day21: no integer solution")
)

const (
	rootName  = "root"
	humanName = "humn"
)

// Job is one monkey: either a literal number or a binary operation over
// two other monkeys.
type Job struct {
	Num      int
	Op       byte // 0 for literals
	Lhs, Rhs string
}

// Parse reads the monkey list into a name-keyed riddle.
func Parse(text string) (map[string]Job, error) {
	jobs := map[string]Job{}
	for _, line := range input.Lines(text) {
		name, rest, ok := strings.Cut(line, ": ")
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrBadJob, line)
		}
		if n, err := strconv.Atoi(rest); err == nil {
			jobs[name] = Job{Num: n}
			continue
		}
		fields := strings.Fields(rest)
		if len(fields) != 3 || len(fields[1]) != 1 ||
			!strings.ContainsAny(fields[1], "+-*/") {
			return nil, fmt.Errorf("%w: %q", ErrBadJob, line)
		}
		jobs[name] = Job{Op: fields[1][0], Lhs: fields[0], Rhs: fields[2]}
	}

	for name, job := range jobs {
		if job.Op == 0 {
			continue
		}
		for _, ref := range []string{job.Lhs, job.Rhs} {
			if _, ok := jobs[ref]; !ok {
				return nil, fmt.Errorf("%w: %q shouted by %q", ErrUnknownMonkey, ref, name)
			}
		}
	}

	return jobs, nil
}

// linear is a + b*h in exact rationals.
type linear struct {
	a, b *big.Rat
}

func constant(n int) linear {
	return linear{a: big.NewRat(int64(n), 1), b: new(big.Rat)}
}

// eval folds a monkey's subtree into a linear form. withUnknown makes
// humn the unknown instead of its literal value.
func eval(jobs map[string]Job, name string, withUnknown bool, memo map[string]linear) (linear, error) {
	if v, ok := memo[name]; ok {
		return v, nil
	}

	job := jobs[name]
	var result linear
	switch {
	case withUnknown && name == humanName:
		result = linear{a: new(big.Rat), b: big.NewRat(1, 1)}
	case job.Op == 0:
		result = constant(job.Num)
	default:
		lhs, err := eval(jobs, job.Lhs, withUnknown, memo)
		if err != nil {
			return linear{}, err
		}
		rhs, err := eval(jobs, job.Rhs, withUnknown, memo)
		if err != nil {
			return linear{}, err
		}
		result, err = combine(job.Op, lhs, rhs)
		if err != nil {
			return linear{}, err
		}
	}
	memo[name] = result

	return result, nil
}

// combine applies one arithmetic job to two linear forms.
func combine(op byte, lhs, rhs linear) (linear, error) {
	out := linear{a: new(big.Rat), b: new(big.Rat)}
	switch op {
	case '+':
		out.a.Add(lhs.a, rhs.a)
		out.b.Add(lhs.b, rhs.b)
	case '-':
		out.a.Sub(lhs.a, rhs.a)
		out.b.Sub(lhs.b, rhs.b)
	case '*':
		// One side must be constant to stay linear.
		switch {
		case lhs.b.Sign() == 0:
			out.a.Mul(lhs.a, rhs.a)
			out.b.Mul(lhs.a, rhs.b)
		case rhs.b.Sign() == 0:
			out.a.Mul(rhs.a, lhs.a)
			out.b.Mul(rhs.a, lhs.b)
		default:
			return linear{}, fmt.Errorf("%w: unknown times unknown", ErrNotLinear)
		}
	case '/':
		if rhs.b.Sign() != 0 {
			return linear{}, fmt.Errorf("%w: unknown divisor", ErrNotLinear)
		}
		if rhs.a.Sign() == 0 {
			return linear{}, fmt.Errorf("%w: division by zero", ErrNoSolution)
		}
		inv := new(big.Rat).Inv(rhs.a)
		out.a.Mul(lhs.a, inv)
		out.b.Mul(lhs.b, inv)
	}

	return out, nil
}

// RootValue evaluates the root monkey with everyone, humn included,
// shouting literally.
func RootValue(jobs map[string]Job) (int, error) {
	if _, ok := jobs[rootName]; !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownMonkey, rootName)
	}

	v, err := eval(jobs, rootName, false, map[string]linear{})
	if err != nil {
		return 0, err
	}

	return ratInt(v.a)
}

// HumanShout solves for the humn value that makes root's two operands
// equal.
func HumanShout(jobs map[string]Job) (int, error) {
	root, ok := jobs[rootName]
	if !ok || root.Op == 0 {
		return 0, fmt.Errorf("%w: %q must compare two monkeys", ErrUnknownMonkey, rootName)
	}

	memo := map[string]linear{}
	lhs, err := eval(jobs, root.Lhs, true, memo)
	if err != nil {
		return 0, err
	}
	rhs, err := eval(jobs, root.Rhs, true, memo)
	if err != nil {
		return 0, err
	}

	// a1 + b1*h = a2 + b2*h  =>  h = (a2-a1)/(b1-b2)
	db := new(big.Rat).Sub(lhs.b, rhs.b)
	if db.Sign() == 0 {
		return 0, fmt.Errorf("%w: humn cancels out", ErrNoSolution)
	}
	h := new(big.Rat).Sub(rhs.a, lhs.a)
	h.Quo(h, db)

	return ratInt(h)
}

// ratInt converts an exact rational to int, rejecting fractions.
func ratInt(r *big.Rat) (int, error) {
	if !r.IsInt() {
		return 0, fmt.Errorf("%w: %s is fractional", ErrNoSolution, r.RatString())
	}

	return int(r.Num().Int64()), nil
}

// Solve answers both readings of the riddle.
func Solve(text string) (string, string, error) {
	jobs, err := Parse(text)
	if err != nil {
		return "", "", err
	}

	p1, err := RootValue(jobs)
	if err != nil {
		return "", "", err
	}
	p2, err := HumanShout(jobs)
	if err != nil {
		return "", "", err
	}

	return strconv.Itoa(p1), strconv.Itoa(p2), nil
}
