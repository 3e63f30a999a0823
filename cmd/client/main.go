package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"time"

	env "github.com/Netflix/go-env"
	"github.com/google/uuid"
	"github.com/gookit/color"
	"github.com/gorilla/websocket"
	"github.com/joho/godotenv"
	"github.com/olekukonko/tablewriter"

	"github.com/Abdelmonaim-malki/quickchat-scolaire/domain"
	"github.com/Abdelmonaim-malki/quickchat-scolaire/protocol"
)

// Exit codes for the client application.
const (
	exitOK      = 0
	exitRuntime = 1
	exitConfig  = 2
)

// reconnectBackoff is the fixed delay between connection attempts while
// the user stays logged in.
const reconnectBackoff = 3 * time.Second

// Config defines the client-side environment variables.
type Config struct {
	ServerURL string `env:"CHAT_SERVER_URL,default=ws://localhost:3000/ws"`
	Pseudo    string `env:"CHAT_PSEUDO"`
}

// serverFrame is the superset of every envelope the relay sends.
type serverFrame struct {
	Type      string           `json:"type"`
	Sender    string           `json:"sender"`
	From      string           `json:"from"`
	To        string           `json:"to"`
	Text      string           `json:"text"`
	ID        string           `json:"id"`
	Timestamp int64            `json:"timestamp"`
	User      string           `json:"user"`
	Users     []string         `json:"users"`
	With      string           `json:"with"`
	Messages  []domain.Message `json:"messages"`
	Message   string           `json:"message"`
}

func main() {
	code, err := run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Client error: %v\n", err)
	}
	os.Exit(code)
}

func run() (int, error) {
	_ = godotenv.Load()
	var config Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return exitConfig, fmt.Errorf("config error: %w", err)
	}

	stdin := bufio.NewScanner(os.Stdin)
	stdin.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	pseudo := strings.TrimSpace(config.Pseudo)
	for len(pseudo) < 2 {
		color.Cyan.Print("Display name (min. 2 characters): ")
		if !stdin.Scan() {
			return exitOK, nil
		}
		pseudo = strings.TrimSpace(stdin.Text())
	}

	// stdin is read by one goroutine for the whole process lifetime so
	// typed lines survive reconnections.
	lines := make(chan string)
	go func() {
		defer close(lines)
		for stdin.Scan() {
			lines <- stdin.Text()
		}
	}()

	client := &client{pseudo: pseudo, lines: lines}

	// Reconnect with a fixed backoff until the user quits. A fresh
	// connection re-authenticates and receives a fresh history snapshot;
	// the relay has no session resumption.
	for {
		quit, err := client.runOnce(config.ServerURL)
		if quit {
			return exitOK, nil
		}
		if err != nil {
			color.Red.Printf("Disconnected: %v — retrying in %s\n", err, reconnectBackoff)
		}
		time.Sleep(reconnectBackoff)
	}
}

type client struct {
	pseudo string
	lines  chan string
	roster []string
}

// runOnce drives a single connection until it drops or the user quits.
func (c *client) runOnce(serverURL string) (quit bool, err error) {
	conn, _, err := websocket.DefaultDialer.Dial(serverURL, nil)
	if err != nil {
		return false, err
	}
	defer conn.Close()

	claim := protocol.Inbound{Type: protocol.TypeSetPseudo, Pseudo: c.pseudo}
	if err := conn.WriteJSON(claim); err != nil {
		return false, err
	}

	frames := make(chan serverFrame)
	readErr := make(chan error, 1)
	go func() {
		defer close(frames)
		for {
			var frame serverFrame
			if err := conn.ReadJSON(&frame); err != nil {
				readErr <- err
				return
			}
			frames <- frame
		}
	}()

	for {
		select {
		case frame, ok := <-frames:
			if !ok {
				return false, <-readErr
			}
			c.render(frame)
		case line, ok := <-c.lines:
			if !ok {
				return true, nil
			}
			quit, err := c.submit(conn, line)
			if quit || err != nil {
				return quit, err
			}
		}
	}
}

func (c *client) submit(conn *websocket.Conn, line string) (quit bool, err error) {
	line = strings.TrimSpace(line)
	if line == "" {
		return false, nil
	}

	switch {
	case line == "/quit":
		return true, nil
	case line == "/who":
		c.renderRoster()
		return false, nil
	case line == "/clear":
		return false, conn.WriteJSON(protocol.Inbound{Type: protocol.TypeClearAll})
	case strings.HasPrefix(line, "/msg "):
		rest := strings.TrimPrefix(line, "/msg ")
		to, text, ok := strings.Cut(rest, " ")
		if !ok {
			color.Yellow.Println("Usage: /msg <name> <text>")
			return false, nil
		}
		return false, conn.WriteJSON(protocol.Inbound{
			Type:      protocol.TypePrivateMessage,
			To:        to,
			Text:      text,
			ID:        c.newMessageID(),
			Timestamp: time.Now().UnixMilli(),
		})
	case strings.HasPrefix(line, "/history "):
		return false, conn.WriteJSON(protocol.Inbound{
			Type: protocol.TypeGetPrivateHistory,
			To:   strings.TrimPrefix(line, "/history "),
		})
	case strings.HasPrefix(line, "/edit "):
		rest := strings.TrimPrefix(line, "/edit ")
		id, text, ok := strings.Cut(rest, " ")
		if !ok {
			color.Yellow.Println("Usage: /edit <id> <text>")
			return false, nil
		}
		return false, conn.WriteJSON(protocol.Inbound{Type: protocol.TypeEdit, ID: id, Text: text})
	case strings.HasPrefix(line, "/delete "):
		return false, conn.WriteJSON(protocol.Inbound{
			Type: protocol.TypeDeleteForAll,
			ID:   strings.TrimPrefix(line, "/delete "),
		})
	default:
		return false, conn.WriteJSON(protocol.Inbound{
			Type:      protocol.TypeMessage,
			Text:      line,
			ID:        c.newMessageID(),
			Timestamp: time.Now().UnixMilli(),
		})
	}
}

// newMessageID mirrors the reference client's id shape: readable,
// unique per sender for the process lifetime.
func (c *client) newMessageID() string {
	return fmt.Sprintf("%s-%d-%s", c.pseudo, time.Now().UnixMilli(), uuid.NewString()[:8])
}

func (c *client) render(frame serverFrame) {
	switch frame.Type {
	case protocol.TypeHistory:
		for _, m := range frame.Messages {
			c.renderMessage(m.Sender, m.Text, m.Timestamp)
		}
	case protocol.TypeMessage:
		c.renderMessage(frame.Sender, frame.Text, frame.Timestamp)
	case protocol.TypePrivateMessage:
		color.Magenta.Printf("[%s] (private) %s -> %s: %s\n",
			formatTime(frame.Timestamp), frame.From, frame.To, frame.Text)
	case protocol.TypePrivateHistory:
		color.Magenta.Printf("--- private history with %s ---\n", frame.With)
		for _, m := range frame.Messages {
			color.Magenta.Printf("[%s] %s: %s\n", formatTime(m.Timestamp), m.Sender, m.Text)
		}
	case protocol.TypeEdit:
		color.Yellow.Printf("(edited) %s: %s\n", frame.ID, frame.Text)
	case protocol.TypeDeleteMessage:
		color.Yellow.Printf("(deleted) %s\n", frame.ID)
	case protocol.TypeClearAll:
		color.Yellow.Println("The room history has been cleared.")
	case protocol.TypeTyping:
		color.Gray.Printf("%s is typing...\n", frame.User)
	case protocol.TypeStopTyping:
		// Quiet: a terminal has no indicator to clear.
	case protocol.TypeOnlineUsers:
		c.roster = frame.Users
	case protocol.TypeError:
		color.Red.Printf("Server error: %s\n", frame.Message)
	}
}

func (c *client) renderMessage(sender, text string, timestamp int64) {
	if sender == c.pseudo {
		color.Green.Printf("[%s] %s: %s\n", formatTime(timestamp), sender, text)
		return
	}
	color.Cyan.Printf("[%s] %s: %s\n", formatTime(timestamp), sender, text)
}

func (c *client) renderRoster() {
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Online", "You"})
	table.SetAutoWrapText(false)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetBorder(false)
	for _, name := range c.roster {
		marker := ""
		if name == c.pseudo {
			marker = "*"
		}
		table.Append([]string{name, marker})
	}
	table.Render()
}

func formatTime(timestamp int64) string {
	if timestamp == 0 {
		return "--:--"
	}
	return time.UnixMilli(timestamp).Format("15:04")
}
