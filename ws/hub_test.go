package ws

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"

	"github.com/nikunjj1175/Cafe_Order_Management_Backend/events"
	middleware "github.com/nikunjj1175/Cafe_Order_Management_Backend/middlewares"
	"github.com/nikunjj1175/Cafe_Order_Management_Backend/models"
)

// dialAs connects a fake staff member of the given role to the hub.
func dialAs(t *testing.T, hub *Hub, role, cafeID string) *websocket.Conn {
	t.Helper()

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := context.WithValue(r.Context(), middleware.UidKey, "staff-1")
		ctx = context.WithValue(ctx, middleware.RoleKey, role)
		ctx = context.WithValue(ctx, middleware.CafeIDKey, cafeID)
		hub.HandleOrderSocket(w, r.WithContext(ctx))
	})

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	url := "ws" + strings.TrimPrefix(server.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	// Give the hub a beat to process the registration.
	time.Sleep(100 * time.Millisecond)
	return conn
}

func TestHubBroadcastsToSubscribedGroup(t *testing.T) {
	hub := NewHub()
	go hub.Run()

	conn := dialAs(t, hub, models.RoleKitchen, "cafe-1")

	hub.Publish(events.CafeGroup("cafe-1", events.AudienceKitchen), "order_created", map[string]interface{}{"order_id": "o-1"})

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	var received envelope
	if err := conn.ReadJSON(&received); err != nil {
		t.Fatalf("read: %v", err)
	}
	if received.Event != "order_created" {
		t.Errorf("event = %q, want order_created", received.Event)
	}
}

func TestHubDoesNotCrossGroups(t *testing.T) {
	hub := NewHub()
	go hub.Run()

	conn := dialAs(t, hub, models.RoleWaiter, "cafe-1")

	// Kitchen traffic of the same cafe and waiter traffic of another cafe
	// must both stay invisible to this client.
	hub.Publish(events.CafeGroup("cafe-1", events.AudienceKitchen), "order_created", nil)
	hub.Publish(events.CafeGroup("cafe-2", events.AudienceWaiter), "order_updated", nil)

	conn.SetReadDeadline(time.Now().Add(300 * time.Millisecond))
	var received envelope
	if err := conn.ReadJSON(&received); err == nil {
		t.Fatalf("unexpected event %q delivered across groups", received.Event)
	}
}

func TestHubAdminSeesAllAudiences(t *testing.T) {
	hub := NewHub()
	go hub.Run()

	conn := dialAs(t, hub, models.RoleAdmin, "cafe-1")

	hub.Publish(events.CafeGroup("cafe-1", events.AudienceWaiter), "order_updated", nil)

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	var received envelope
	if err := conn.ReadJSON(&received); err != nil {
		t.Fatalf("read: %v", err)
	}
	if received.Event != "order_updated" {
		t.Errorf("event = %q, want order_updated", received.Event)
	}
}

func TestPublishWithoutSubscribersDoesNotBlock(t *testing.T) {
	hub := NewHub()
	// Hub deliberately not running: Publish must still return.
	done := make(chan struct{})
	go func() {
		for i := 0; i < 100; i++ {
			hub.Publish("cafe:none:admin", "order_updated", nil)
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Publish blocked with no consumer")
	}
}
