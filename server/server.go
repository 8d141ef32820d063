// Package server streams chunk mesh data to browser viewers over websockets.
// It is a debug surface: clients receive the encoded face buffer and can ask
// for a regeneration with a different seed.
package server

import (
	"fmt"
	"log"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"

	"github.com/FishArmy100/voxel-game/core"
)

// MeshUpdate is the JSON payload pushed to every connected client.
type MeshUpdate struct {
	Type       string      `json:"type"`
	ChunkX     int32       `json:"chunkX"`
	ChunkY     int32       `json:"chunkY"`
	ChunkZ     int32       `json:"chunkZ"`
	ChunkSize  int         `json:"chunkSize"`
	Seed       int64       `json:"seed"`
	SolidCount int         `json:"solidCount"`
	FaceCount  int         `json:"faceCount"`
	Faces      [][2]uint32 `json:"faces"`
	Materials  []string    `json:"materials"`
	Histogram  []int       `json:"materialCounts"`
}

// BuildMeshUpdate assembles the payload for a chunk and its extracted mesh.
func BuildMeshUpdate(chunk *core.Chunk, faces []core.EncodedFace, materials core.MaterialTable, seed int64) MeshUpdate {
	packed := make([][2]uint32, len(faces))
	for i, f := range faces {
		packed[i] = [2]uint32{f.Packed, f.Material}
	}
	names := make([]string, len(materials))
	for i, m := range materials {
		names[i] = m.Name
	}
	histogram := make([]int, len(materials))
	for _, v := range chunk.Voxels {
		histogram[v]++
	}
	return MeshUpdate{
		Type:       "mesh",
		ChunkX:     chunk.Coord.X,
		ChunkY:     chunk.Coord.Y,
		ChunkZ:     chunk.Coord.Z,
		ChunkSize:  chunk.Size,
		Seed:       seed,
		SolidCount: chunk.CountSolid(),
		FaceCount:  len(faces),
		Faces:      packed,
		Materials:  names,
		Histogram:  histogram,
	}
}

// RegenerateFunc is invoked when a client requests a new seed. It returns
// the payload to broadcast.
type RegenerateFunc func(seed int64) (MeshUpdate, error)

// Server fans mesh updates out to websocket clients.
type Server struct {
	port       int
	upgrader   websocket.Upgrader
	regenerate RegenerateFunc

	mu      sync.RWMutex
	clients map[*websocket.Conn]*sync.Mutex
	latest  *MeshUpdate
}

// New builds a server; regenerate may be nil if clients are view-only.
func New(port int, regenerate RegenerateFunc) *Server {
	return &Server{
		port: port,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				return true // debug tool, allow all origins
			},
		},
		regenerate: regenerate,
		clients:    make(map[*websocket.Conn]*sync.Mutex),
	}
}

// Publish stores the latest payload and broadcasts it to every client.
func (s *Server) Publish(update MeshUpdate) {
	s.mu.Lock()
	s.latest = &update
	conns := make([]*websocket.Conn, 0, len(s.clients))
	locks := make([]*sync.Mutex, 0, len(s.clients))
	for conn, lock := range s.clients {
		conns = append(conns, conn)
		locks = append(locks, lock)
	}
	s.mu.Unlock()

	for i, conn := range conns {
		locks[i].Lock()
		err := conn.WriteJSON(update)
		locks[i].Unlock()
		if err != nil {
			log.Println("WebSocket write error:", err)
		}
	}
}

// Run serves until the listener fails. Blocks; run it on its own goroutine.
func (s *Server) Run() error {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", s.handleWebSocket)

	addr := fmt.Sprintf(":%d", s.port)
	fmt.Printf("Mesh server listening on http://localhost%s/ws\n", addr)
	return http.ListenAndServe(addr, mux)
}

func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Println("WebSocket upgrade error:", err)
		return
	}
	defer conn.Close()

	connMutex := &sync.Mutex{}
	s.mu.Lock()
	s.clients[conn] = connMutex
	latest := s.latest
	s.mu.Unlock()
	defer func() {
		s.mu.Lock()
		delete(s.clients, conn)
		s.mu.Unlock()
	}()

	// New clients immediately get the current mesh.
	if latest != nil {
		connMutex.Lock()
		err := conn.WriteJSON(*latest)
		connMutex.Unlock()
		if err != nil {
			log.Println("WebSocket write error:", err)
			return
		}
	}

	for {
		var msg map[string]interface{}
		if err := conn.ReadJSON(&msg); err != nil {
			log.Println("WebSocket read error:", err)
			break
		}

		if seed, ok := msg["seed"].(float64); ok && s.regenerate != nil {
			fmt.Printf("REGENERATE: seed %d\n", int64(seed))
			update, err := s.regenerate(int64(seed))
			if err != nil {
				log.Println("Regenerate error:", err)
				continue
			}
			s.Publish(update)
		}
	}
}
