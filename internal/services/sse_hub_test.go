package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/influmatch/influmatch-backend/internal/models"
)

func TestBroadcastCommunicationLogReachesBothScopes(t *testing.T) {
	hub := NewSSEHub()
	outreachChan := hub.RegisterClient("outreach", "o1")
	brandChan := hub.RegisterClient("brand", "b1")
	defer hub.UnregisterClient("outreach", "o1", outreachChan)
	defer hub.UnregisterClient("brand", "b1", brandChan)

	hub.BroadcastCommunicationLog(&models.CommunicationLog{
		OutreachID: "o1",
		Channel:    "phone",
		Direction:  models.DirectionOutbound,
		Transcript: "hello",
	}, "b1")

	for name, ch := range map[string]chan []byte{"outreach": outreachChan, "brand": brandChan} {
		select {
		case msg := <-ch:
			assert.Contains(t, string(msg), "event: communication_log\n", name)
			assert.Contains(t, string(msg), `"transcript":"hello"`, name)
		default:
			t.Fatalf("no message delivered to %s scope", name)
		}
	}
}

func TestBroadcastNotificationOnlyReachesOwningBrand(t *testing.T) {
	hub := NewSSEHub()
	owner := hub.RegisterClient("brand", "b1")
	stranger := hub.RegisterClient("brand", "b2")
	defer hub.UnregisterClient("brand", "b1", owner)
	defer hub.UnregisterClient("brand", "b2", stranger)

	hub.BroadcastNotification(&models.Notification{BrandID: "b1", Title: "t", Message: "m"})

	select {
	case msg := <-owner:
		assert.Contains(t, string(msg), "event: notification\n")
	default:
		t.Fatal("owning brand received nothing")
	}

	select {
	case <-stranger:
		t.Fatal("notification leaked to another brand's feed")
	default:
	}
}

func TestSlowClientIsSkippedNotBlocked(t *testing.T) {
	hub := NewSSEHub()
	ch := hub.RegisterClient("brand", "b1")
	defer hub.UnregisterClient("brand", "b1", ch)

	// Fill the buffered channel past capacity; broadcasts must not block.
	for i := 0; i < 15; i++ {
		hub.BroadcastNotification(&models.Notification{BrandID: "b1", Title: "t", Message: "m"})
	}
	require.Len(t, ch, cap(ch))
}

func TestSendHeartbeatReachesRegisteredClients(t *testing.T) {
	hub := NewSSEHub()
	ch := hub.RegisterClient("brand", "b1")
	defer hub.UnregisterClient("brand", "b1", ch)

	hub.SendHeartbeat("brand", "b1")

	select {
	case msg := <-ch:
		got := string(msg)
		assert.True(t, strings.HasPrefix(got, ": heartbeat "), got)
		assert.True(t, strings.HasSuffix(got, "\n\n"), got)
	default:
		t.Fatal("expected a heartbeat message")
	}

	// Unknown scope is a no-op, not a panic.
	hub.SendHeartbeat("brand", "missing")
}
