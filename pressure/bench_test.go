package pressure_test

import (
	"os"
	"testing"

	"github.com/adventcode/advent2022/pressure"
)

func benchNetwork(b *testing.B) pressure.Network {
	b.Helper()

	data, err := os.ReadFile("testdata/example.txt")
	if err != nil {
		b.Fatal(err)
	}
	net, err := pressure.Parse(string(data))
	if err != nil {
		b.Fatal(err)
	}

	return net
}

func BenchmarkMaxPressure(b *testing.B) {
	net := benchNetwork(b)
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if _, err := pressure.MaxPressure(net); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkMaxPressureWithPartner(b *testing.B) {
	net := benchNetwork(b)
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if _, err := pressure.MaxPressureWithPartner(net); err != nil {
			b.Fatal(err)
		}
	}
}
