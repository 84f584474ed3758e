package ui

import (
	"testing"
	"time"

	"github.com/jonboulle/clockwork"

	"uikit/internal/alert"
)

func TestFeedKeepsOnlyLatestState(t *testing.T) {
	s := alert.NewStore(alert.WithClock(clockwork.NewFakeClockAt(time.Unix(0, 0))))
	defer s.Close()
	f := NewFeed(s)
	defer f.Close()

	s.Show("a", alert.VariantInfo, true, alert.PositionTopRight)
	s.Show("b", alert.VariantInfo, true, alert.PositionTopRight)
	s.Show("c", alert.VariantInfo, true, alert.PositionTopLeft)

	msg, ok := f.Wait()().(AlertsChangedMsg)
	if !ok {
		t.Fatal("Wait() did not return AlertsChangedMsg")
	}
	if msg.Groups.Len() != 3 {
		t.Errorf("Groups.Len() = %d, want 3 (latest state)", msg.Groups.Len())
	}

	select {
	case <-f.latest:
		t.Error("stale state left in feed")
	default:
	}
}

func TestFeedCloseReleasesWait(t *testing.T) {
	s := alert.NewStore()
	defer s.Close()
	f := NewFeed(s)

	done := make(chan any, 1)
	go func() { done <- f.Wait()() }()
	f.Close()
	f.Close()

	select {
	case msg := <-done:
		if msg != nil {
			t.Errorf("Wait() after Close = %T, want nil", msg)
		}
	case <-time.After(time.Second):
		t.Fatal("Wait() not released by Close")
	}

	s.Show("ignored", alert.VariantInfo, true, alert.PositionTopRight)
	select {
	case <-f.latest:
		t.Error("closed feed still receives states")
	default:
	}
}
