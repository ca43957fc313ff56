package realtime

import (
	"log"
	"sync"

	"api/models"

	"github.com/gorilla/websocket"
)

var (
	leaderboardClients = make(map[*websocket.Conn]bool) // Connected leaderboard watchers
	broadcast          = make(chan LeaderboardUpdate)   // Broadcast channel for new entries
	mutex              sync.Mutex                       // Mutex to protect leaderboardClients map
)

// LeaderboardUpdate carries a freshly recorded leaderboard entry to clients
type LeaderboardUpdate struct {
	Entry    models.LeaderboardEntry `json:"entry"`
	Username string                  `json:"username"`
}

// RegisterClient adds a WebSocket client watching the leaderboard
func RegisterClient(conn *websocket.Conn) {
	mutex.Lock()
	leaderboardClients[conn] = true
	mutex.Unlock()
}

// UnregisterClient removes a WebSocket client
func UnregisterClient(conn *websocket.Conn) {
	mutex.Lock()
	delete(leaderboardClients, conn)
	mutex.Unlock()
}

// BroadcastLeaderboardUpdate sends a new entry to all connected clients
func BroadcastLeaderboardUpdate(update LeaderboardUpdate) {
	broadcast <- update
}

func handleBroadcast() {
	for {
		update := <-broadcast
		mutex.Lock()
		for client := range leaderboardClients {
			if err := client.WriteJSON(update); err != nil {
				log.Printf("WebSocket write error: %v", err)
				client.Close()
				delete(leaderboardClients, client)
			}
		}
		mutex.Unlock()
	}
}

func init() {
	go handleBroadcast()
}
