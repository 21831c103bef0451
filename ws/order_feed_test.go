package ws

import (
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/Mikjohns10/instabite-backend/entity"
	"github.com/Mikjohns10/instabite-backend/middlewares"
	"github.com/Mikjohns10/instabite-backend/services"
	"github.com/Mikjohns10/instabite-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func newFeedServer(t *testing.T) (*OrderFeedHub, *httptest.Server) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	hub := NewOrderFeedHub()
	go hub.Run()

	r := gin.New()
	r.GET("/ws/orders", middlewares.WSAuthMiddleware(testSecret), hub.HandleWebSocket)
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return hub, srv
}

func dialFeed(t *testing.T, srv *httptest.Server, restID uint) *websocket.Conn {
	t.Helper()
	token, err := utils.GenerateToken(restID, testSecret, time.Hour)
	require.NoError(t, err)

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws/orders?token=" + token
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return conn
}

func TestOrderFeedDelivery(t *testing.T) {
	hub, srv := newFeedServer(t)
	conn := dialFeed(t, srv, 7)

	// let the handler finish registering the subscription
	time.Sleep(200 * time.Millisecond)

	// an event for another restaurant must not reach this client
	hub.Publish(8, services.OrderEvent{Type: "order.created", Order: &entity.Order{OrderCode: "OTHER"}})
	hub.Publish(7, services.OrderEvent{Type: "order.status", Order: &entity.Order{OrderCode: "ORD123456XYZ"}})

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	var ev services.OrderEvent
	require.NoError(t, conn.ReadJSON(&ev))
	assert.Equal(t, "order.status", ev.Type)
	assert.Equal(t, "ORD123456XYZ", ev.Order.OrderCode)
}

func TestOrderFeedRejectsMissingToken(t *testing.T) {
	_, srv := newFeedServer(t)

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws/orders"
	_, resp, err := websocket.DefaultDialer.Dial(url, nil)
	assert.ErrorIs(t, err, websocket.ErrBadHandshake)
	if resp != nil {
		assert.Equal(t, 401, resp.StatusCode)
	}
}
