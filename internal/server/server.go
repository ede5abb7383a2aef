// Package server hosts the live preview: an HTTP page whose graph refreshes
// over a websocket whenever the watched repository changes.
package server

import (
	"bytes"
	"context"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"
)

// BuildFunc regenerates the rendered SVG for the current repository state.
type BuildFunc func(ctx context.Context) ([]byte, error)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		// Local preview tool; the page and the socket share the host.
		return true
	},
}

type Server struct {
	addr     string
	watchDir string
	build    BuildFunc

	mu  sync.RWMutex
	svg []byte

	clientsMu sync.Mutex
	clients   map[*websocket.Conn]bool
	broadcast chan []byte
}

func New(addr, watchDir string, build BuildFunc) *Server {
	return &Server{
		addr:      addr,
		watchDir:  watchDir,
		build:     build,
		clients:   make(map[*websocket.Conn]bool),
		broadcast: make(chan []byte, 16),
	}
}

// Start renders the initial graph, wires the watcher and serves until the
// listener fails or ctx is canceled.
func (s *Server) Start(ctx context.Context) error {
	if err := s.rebuild(ctx); err != nil {
		return err
	}
	if err := s.startWatcher(ctx); err != nil {
		return err
	}
	go s.broadcastLoop(ctx)

	mux := http.NewServeMux()
	mux.HandleFunc("/", s.handleIndex)
	mux.HandleFunc("/ws", s.handleWebSocket)

	srv := &http.Server{Addr: s.addr, Handler: mux}
	go func() {
		<-ctx.Done()
		_ = srv.Close()
	}()
	logrus.Infof("live preview listening on %s", s.addr)
	return srv.ListenAndServe()
}

// rebuild regenerates the SVG and reports whether it was broadcast-worthy.
func (s *Server) rebuild(ctx context.Context) error {
	svg, err := s.build(ctx)
	if err != nil {
		return err
	}

	s.mu.Lock()
	changed := !bytes.Equal(s.svg, svg)
	s.svg = svg
	s.mu.Unlock()

	if changed {
		select {
		case s.broadcast <- svg:
		default:
			logrus.Warn("broadcast channel full, dropping update")
		}
	}
	return nil
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")

	s.mu.RLock()
	svg := s.svg
	s.mu.RUnlock()

	_, _ = w.Write([]byte(indexPrefix))
	_, _ = w.Write(svg)
	_, _ = w.Write([]byte(indexSuffix))
}

func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		logrus.Warnf("websocket upgrade: %v", err)
		return
	}
	defer conn.Close()

	s.clientsMu.Lock()
	s.clients[conn] = true
	total := len(s.clients)
	s.clientsMu.Unlock()
	logrus.Debugf("websocket client connected, %d total", total)

	// Block until the client goes away; writes happen in broadcastLoop.
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}

	s.clientsMu.Lock()
	delete(s.clients, conn)
	s.clientsMu.Unlock()
	logrus.Debug("websocket client disconnected")
}

func (s *Server) broadcastLoop(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case svg := <-s.broadcast:
			s.clientsMu.Lock()
			for conn := range s.clients {
				if err := conn.WriteMessage(websocket.TextMessage, svg); err != nil {
					logrus.Warnf("broadcast: %v", err)
					delete(s.clients, conn)
					conn.Close()
				}
			}
			s.clientsMu.Unlock()
		}
	}
}

const indexPrefix = `<!DOCTYPE html>
<html>
<head>
<meta http-equiv="content-type" content="text/html; charset=utf-8" />
<title>Git commit diagram</title>
<script>
window.addEventListener('load', function() {
  var ws = new WebSocket('ws://' + location.host + '/ws');
  ws.onmessage = function(e) {
    document.getElementById('graph').innerHTML = e.data;
  };
});
</script>
</head>
<body>
<div id="graph">
`

const indexSuffix = `
</div>
</body>
</html>`
