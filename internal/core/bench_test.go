package core

import "testing"

func benchmarkBroadcast(b *testing.B, recipients int) {
	s := NewSession(nil)

	sender, err := s.Connect()
	if err != nil {
		b.Fatalf("connect sender: %v", err)
	}

	for i := 0; i < recipients; i++ {
		c, err := s.Connect()
		if err != nil {
			b.Fatalf("connect recipient: %v", err)
		}
		// Drain events so the queue never fills during the benchmark.
		go func(cl *Client) {
			for range cl.Events {
			}
		}(c)
	}
	go func() {
		for range sender.Events {
		}
	}()

	payload := []byte("benchmark message")

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		s.HandleMessage(sender.ID, payload, false)
	}

	b.StopTimer()
	s.Shutdown()
}

func BenchmarkBroadcast4(b *testing.B)  { benchmarkBroadcast(b, 4) }
func BenchmarkBroadcast64(b *testing.B) { benchmarkBroadcast(b, 64) }
