// Terminal client for the broker, the command-line counterpart of the
// original web UI. Keeps only client-side state; every pairing decision
// is made by the broker and reflected back through events.
package main

import (
	"bufio"
	"encoding/base64"
	"encoding/json"
	"flag"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/gabriel-vasile/mimetype"
	"github.com/gookit/color"
	"github.com/gorilla/websocket"
	"github.com/olekukonko/tablewriter"
)

type envelope struct {
	Event string `json:"event"`
	Data  any    `json:"data,omitempty"`
}

type inboundEnvelope struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data"`
}

type filePayload struct {
	Name     string `json:"name"`
	Size     int64  `json:"size"`
	MimeType string `json:"type"`
	Data     string `json:"data"`
}

type clientState struct {
	mu     sync.Mutex
	userID string
	peers  map[string]string // peer id -> connection id
}

func main() {
	addr := flag.String("addr", "localhost:4000", "broker address")
	flag.Parse()

	u := url.URL{Scheme: "ws", Host: *addr, Path: "/ws"}
	conn, _, err := websocket.DefaultDialer.Dial(u.String(), nil)
	if err != nil {
		color.Red.Printf("Cannot reach broker at %s: %v\n", *addr, err)
		os.Exit(1)
	}
	defer conn.Close()

	state := &clientState{peers: make(map[string]string)}
	done := make(chan struct{})
	go readLoop(conn, state, done)

	printHelp()

	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		select {
		case <-done:
			color.Red.Println("Broker closed the connection")
			return
		default:
		}
		if !handleCommand(conn, state, strings.TrimSpace(scanner.Text())) {
			return
		}
	}
}

func printHelp() {
	fmt.Println("Commands:")
	fmt.Println("  /connect ID     request a connection")
	fmt.Println("  /accept ID      accept a pending request")
	fmt.Println("  /decline ID     decline a pending request")
	fmt.Println("  /msg ID text    send a text message")
	fmt.Println("  /file ID path   send a file")
	fmt.Println("  /typing ID on|off  toggle the typing indicator")
	fmt.Println("  /bye ID         end one connection")
	fmt.Println("  /peers          list connected peers")
	fmt.Println("  /quit           leave")
}

func handleCommand(conn *websocket.Conn, state *clientState, line string) bool {
	if line == "" {
		return true
	}
	fields := strings.Fields(line)

	switch fields[0] {
	case "/quit":
		return false

	case "/peers":
		printPeers(state)
		return true

	case "/connect", "/accept", "/decline", "/bye":
		if len(fields) != 2 {
			color.Red.Printf("usage: %s ID\n", fields[0])
			return true
		}
		sendSimple(conn, fields[0], fields[1])
		return true

	case "/msg":
		if len(fields) < 3 {
			color.Red.Println("usage: /msg ID text")
			return true
		}
		send(conn, "message:send", map[string]any{
			"targetUserId": fields[1],
			"type":         "text",
			"message":      strings.Join(fields[2:], " "),
		})
		return true

	case "/file":
		if len(fields) != 3 {
			color.Red.Println("usage: /file ID path")
			return true
		}
		sendFile(conn, fields[1], fields[2])
		return true

	case "/typing":
		if len(fields) != 3 || (fields[2] != "on" && fields[2] != "off") {
			color.Red.Println("usage: /typing ID on|off")
			return true
		}
		name := "typing:start"
		if fields[2] == "off" {
			name = "typing:stop"
		}
		send(conn, name, map[string]any{"targetUserId": fields[1]})
		return true

	default:
		color.Red.Printf("unknown command %q\n", fields[0])
		return true
	}
}

func sendSimple(conn *websocket.Conn, command, id string) {
	switch command {
	case "/connect":
		send(conn, "connection:request", map[string]any{"targetUserId": id})
	case "/accept":
		send(conn, "connection:accept", map[string]any{"fromUserId": id})
	case "/decline":
		send(conn, "connection:decline", map[string]any{"fromUserId": id})
	case "/bye":
		send(conn, "connection:disconnect", map[string]any{"targetUserId": id})
	}
}

func sendFile(conn *websocket.Conn, targetID, path string) {
	raw, err := os.ReadFile(path)
	if err != nil {
		color.Red.Printf("cannot read %s: %v\n", path, err)
		return
	}
	mtype, err := mimetype.DetectFile(path)
	mime := "application/octet-stream"
	if err == nil {
		mime = mtype.String()
	}
	send(conn, "file:send", map[string]any{
		"targetUserId": targetID,
		"file": filePayload{
			Name:     filepath.Base(path),
			Size:     int64(len(raw)),
			MimeType: mime,
			Data:     base64.StdEncoding.EncodeToString(raw),
		},
	})
	color.Cyan.Printf("sending %s (%d bytes, %s)\n", filepath.Base(path), len(raw), mime)
}

func send(conn *websocket.Conn, name string, data any) {
	if err := conn.WriteJSON(envelope{Event: name, Data: data}); err != nil {
		color.Red.Printf("send failed: %v\n", err)
	}
}

func printPeers(state *clientState) {
	state.mu.Lock()
	defer state.mu.Unlock()

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Peer", "Connection"})
	for peerID, connectionID := range state.peers {
		table.Append([]string{peerID, connectionID})
	}
	table.Render()
}

func readLoop(conn *websocket.Conn, state *clientState, done chan struct{}) {
	defer close(done)

	for {
		var env inboundEnvelope
		if err := conn.ReadJSON(&env); err != nil {
			return
		}
		render(state, env)
	}
}

func render(state *clientState, env inboundEnvelope) {
	switch env.Event {
	case "user:assigned":
		var p struct {
			UserID string `json:"userId"`
		}
		decode(env.Data, &p)
		state.mu.Lock()
		state.userID = p.UserID
		state.mu.Unlock()
		color.Green.Printf("Your ID: %s\n", p.UserID)

	case "connection:request:sent":
		var p struct {
			TargetUserID string `json:"targetUserId"`
		}
		decode(env.Data, &p)
		color.Cyan.Printf("Request sent to %s, waiting...\n", p.TargetUserID)

	case "connection:request:received":
		var p struct {
			From string `json:"from"`
		}
		decode(env.Data, &p)
		color.Yellow.Printf("%s wants to connect (/accept %s or /decline %s)\n", p.From, p.From, p.From)

	case "connection:success":
		var p struct {
			ConnectedTo  string `json:"connectedTo"`
			ConnectionID string `json:"connectionId"`
		}
		decode(env.Data, &p)
		state.mu.Lock()
		state.peers[p.ConnectedTo] = p.ConnectionID
		state.mu.Unlock()
		color.Green.Printf("Connected to %s\n", p.ConnectedTo)

	case "connection:declined":
		var p struct {
			DeclinedBy string `json:"declinedBy"`
		}
		decode(env.Data, &p)
		color.Red.Printf("%s declined your request\n", p.DeclinedBy)

	case "connection:error", "message:error":
		var p struct {
			Message string `json:"message"`
		}
		decode(env.Data, &p)
		color.Red.Println(p.Message)

	case "message:received":
		var p struct {
			From string       `json:"from"`
			Kind string       `json:"kind"`
			Text string       `json:"message"`
			File *filePayload `json:"file"`
		}
		decode(env.Data, &p)
		if p.Kind == "file" && p.File != nil {
			color.Blue.Printf("[%s] sent file %s (%d bytes, %s)\n", p.From, p.File.Name, p.File.Size, p.File.MimeType)
			return
		}
		color.White.Printf("[%s] %s\n", p.From, p.Text)

	case "typing:user":
		var p struct {
			UserID   string `json:"userId"`
			IsTyping bool   `json:"isTyping"`
		}
		decode(env.Data, &p)
		if p.IsTyping {
			color.Gray.Printf("%s is typing...\n", p.UserID)
		}

	case "connection:ended":
		var p struct {
			PeerID  string `json:"peerId"`
			Message string `json:"message"`
		}
		decode(env.Data, &p)
		state.mu.Lock()
		delete(state.peers, p.PeerID)
		state.mu.Unlock()
		color.Magenta.Printf("%s: %s\n", p.PeerID, p.Message)
	}
}

func decode(raw json.RawMessage, out any) {
	if err := json.Unmarshal(raw, out); err != nil {
		color.Red.Printf("bad payload: %v\n", err)
	}
}
