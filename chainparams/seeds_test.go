package chainparams

import (
	"math/rand"
	"net"
	"testing"
	"time"
)

func TestConvertSeedsLocalhost(t *testing.T) {
	const localhost = 0x7f000001
	for _, count := range []int{0, 1, 5} {
		data := make([]uint32, count)
		for i := range data {
			data[i] = localhost
		}
		addrs := ConvertSeeds(data, 10338)
		if len(addrs) != count {
			t.Errorf("expecting %d addresses, got %d", count, len(addrs))
			continue
		}
		for _, addr := range addrs {
			if !addr.IP.Equal(net.IPv4(127, 0, 0, 1)) {
				t.Errorf("expecting 127.0.0.1, got %s", addr.IP)
			}
			if addr.Port != 10338 {
				t.Errorf("expecting port 10338, got %d", addr.Port)
			}
		}
	}
}

func TestConvertSeedsOctetOrder(t *testing.T) {
	addrs := ConvertSeeds([]uint32{0x2d3f5a11, 0xc0a80001}, 11338)
	if addrs[0].IP.String() != "45.63.90.17" {
		t.Errorf("expecting 45.63.90.17, got %s", addrs[0].IP)
	}
	if addrs[1].IP.String() != "192.168.0.1" {
		t.Errorf("expecting 192.168.0.1, got %s", addrs[1].IP)
	}
}

func TestConvertSeedsTimestamps(t *testing.T) {
	data := make([]uint32, 64)
	now := time.Unix(1600000000, 0)
	for seed := int64(0); seed < 100; seed++ {
		rnd := rand.New(rand.NewSource(seed))
		for _, addr := range convertSeeds(data, 10338, now, rnd) {
			if addr.Timestamp.Before(now.Add(-2*oneWeek)) || addr.Timestamp.After(now.Add(-oneWeek)) {
				t.Fatalf("seed %d: timestamp %s outside of one to two weeks before %s", seed, addr.Timestamp, now)
			}
		}
	}

	// Same property against the wall clock.
	for i := 0; i < 50; i++ {
		before := time.Now().Truncate(time.Second)
		addrs := ConvertSeeds(data, 10338)
		after := time.Now()
		for _, addr := range addrs {
			if addr.Timestamp.Before(before.Add(-2*oneWeek)) || addr.Timestamp.After(after.Add(-oneWeek)) {
				t.Fatalf("timestamp %s outside of one to two weeks ago", addr.Timestamp)
			}
		}
	}
}

func TestConvertSeedsEmpty(t *testing.T) {
	if addrs := ConvertSeeds(nil, 10338); len(addrs) != 0 {
		t.Errorf("expecting no addresses, got %d", len(addrs))
	}
}
