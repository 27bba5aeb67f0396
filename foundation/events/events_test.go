package events_test

import (
	"testing"

	"github.com/ardanlabs/solsign/foundation/events"
)

// Success and failure markers.
const (
	success = "\u2713"
	failed  = "\u2717"
)

func Test_Events(t *testing.T) {
	t.Log("Given the need to fan events out to subscribers.")
	{
		evts := events.New()

		ch1 := evts.Acquire("1")
		ch2 := evts.Acquire("2")

		evts.Send(events.Event{Kind: "sign", Message: "hello"})

		for i, ch := range []<-chan events.Event{ch1, ch2} {
			e := <-ch
			if e.Message != "hello" {
				t.Fatalf("\t%s\tShould receive the event on channel %d.", failed, i)
			}
		}
		t.Logf("\t%s\tShould receive the event on every channel.", success)

		if err := evts.Release("1"); err != nil {
			t.Fatalf("\t%s\tShould be able to release a channel: %s", failed, err)
		}
		if _, open := <-ch1; open {
			t.Fatalf("\t%s\tShould close a released channel.", failed)
		}
		if err := evts.Release("1"); err == nil {
			t.Fatalf("\t%s\tShould not release a channel twice.", failed)
		}
		t.Logf("\t%s\tShould be able to release a channel once.", success)

		evts.Shutdown()
		if _, open := <-ch2; open {
			t.Fatalf("\t%s\tShould close every channel on shutdown.", failed)
		}
		t.Logf("\t%s\tShould close every channel on shutdown.", success)
	}
}
