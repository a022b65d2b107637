package hub

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"
	"github.com/yeremiapane/payroll-app/utils"
)

// Event types
const (
	EventEmployeeUpdate      = "employee_update"
	EventProjectUpdate       = "project_update"
	EventContractorUpdate    = "contractor_update"
	EventAttendanceUpdate    = "attendance_update"
	EventAdvanceUpdate       = "advance_update"
	EventCertificationUpdate = "certification_update"
	EventPayrollCalculated   = "payroll_calculated"
	EventDashboardUpdate     = "dashboard_update"
)

// writeWait bounds each write so a stalled client cannot hold the hub.
const writeWait = 10 * time.Second

type Message struct {
	Event string      `json:"event"`
	Data  interface{} `json:"data"`
}

// Hub fans messages out to every connected dashboard. A nil *Hub drops messages.
type Hub struct {
	clients   map[*websocket.Conn]struct{}
	mutex     sync.Mutex
	writeWait time.Duration
}

func New() *Hub {
	return &Hub{clients: make(map[*websocket.Conn]struct{}), writeWait: writeWait}
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// Serve upgrades the request and keeps the client registered until it disconnects.
func (h *Hub) Serve(w http.ResponseWriter, r *http.Request) error {
	ws, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		return err
	}

	h.Register(ws)
	defer h.Unregister(ws)

	for {
		if _, _, err := ws.ReadMessage(); err != nil {
			return nil
		}
	}
}

func (h *Hub) Register(conn *websocket.Conn) {
	h.mutex.Lock()
	defer h.mutex.Unlock()
	h.clients[conn] = struct{}{}
}

func (h *Hub) Unregister(conn *websocket.Conn) {
	h.mutex.Lock()
	defer h.mutex.Unlock()
	delete(h.clients, conn)
	conn.Close()
}

func (h *Hub) ClientCount() int {
	if h == nil {
		return 0
	}
	h.mutex.Lock()
	defer h.mutex.Unlock()
	return len(h.clients)
}

// Broadcast sends an event to every client. Write failures drop that client.
func (h *Hub) Broadcast(event string, data interface{}) {
	if h == nil {
		return
	}

	payload, err := json.Marshal(Message{Event: event, Data: data})
	if err != nil {
		utils.LogError("hub", "Broadcast", "json.Marshal", event, err)
		return
	}

	h.mutex.Lock()
	defer h.mutex.Unlock()

	for conn := range h.clients {
		err := conn.SetWriteDeadline(time.Now().Add(h.writeWait))
		if err == nil {
			err = conn.WriteMessage(websocket.TextMessage, payload)
		}
		if err != nil {
			utils.Info(logrus.Fields{"event": event}).Warn("dropping websocket client: " + err.Error())
			delete(h.clients, conn)
			conn.Close()
		}
	}
}

// Close disconnects every client; used on shutdown.
func (h *Hub) Close() {
	if h == nil {
		return
	}
	h.mutex.Lock()
	defer h.mutex.Unlock()
	for conn := range h.clients {
		conn.Close()
		delete(h.clients, conn)
	}
}
