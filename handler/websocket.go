package handler

import (
	"context"
	"encoding/json"
	"log"
	"sync"

	"catering_manager/config"
	"catering_manager/model"

	"github.com/gofiber/contrib/websocket"
	"github.com/redis/go-redis/v9"
)

var (
	redisClient *redis.Client
	redisOnce   sync.Once
)

func getRedisClient() *redis.Client {
	redisOnce.Do(func() {
		addr := config.Config("REDIS_ADDR")
		if addr == "" {
			addr = "localhost:6379"
		}
		redisClient = redis.NewClient(&redis.Options{Addr: addr})
	})
	return redisClient
}

func chatChannel(orderCode string) string {
	return "zamowienie:" + orderCode
}

// chatConn to minimalny interfejs połączenia czatu, wydzielony pod testy.
type chatConn interface {
	WriteMessage(messageType int, data []byte) error
}

// pumpChat przepisuje kolejne payloady z subskrypcji na jedno połączenie.
// Każdy payload trafia do połączenia dokładnie raz; pętla kończy się po
// zamknięciu kanału (zamknięta subskrypcja) albo po pierwszym błędzie zapisu.
func pumpChat(conn chatConn, channel <-chan *redis.Message) {
	for msg := range channel {
		if err := conn.WriteMessage(websocket.TextMessage, []byte(msg.Payload)); err != nil {
			return
		}
	}
}

// ChatWebSocket obsługuje połączenie czatu zamówienia. Każde połączenie ma
// własną subskrypcję kanału Redis zamówienia, więc fan-out do wielu klientów
// (i wielu instancji serwera) robi sam Redis, a handler pisze wyłącznie do
// swojego połączenia.
func ChatWebSocket(c *websocket.Conn) {
	orderCode := c.Params("code")
	defer c.Close()

	// Historia czatu przy pierwszym połączeniu
	if messageService != nil {
		history, err := messageService.ListMessages(context.Background(), orderCode)
		if err == nil {
			c.WriteJSON(history)
		}
	}

	pubsub := getRedisClient().Subscribe(context.Background(), chatChannel(orderCode))
	defer pubsub.Close()

	// Pompa odczytu: klient nic nie wysyła tym połączeniem, ale dopiero błąd
	// odczytu sygnalizuje rozłączenie. Wtedy zamykamy subskrypcję, kanał się
	// domyka i pętla zapisu poniżej kończy pracę.
	go func() {
		for {
			if _, _, err := c.ReadMessage(); err != nil {
				pubsub.Close()
				return
			}
		}
	}()

	pumpChat(c, pubsub.Channel())
}

// RedisBroadcaster publikuje nowe wiadomości na kanał Redis zamówienia.
type RedisBroadcaster struct{}

func (RedisBroadcaster) MessagePosted(orderCode string, msg *model.Message) {
	payload, err := json.Marshal(msg)
	if err != nil {
		log.Println("failed to marshal chat message:", err)
		return
	}
	if err := getRedisClient().Publish(context.Background(), chatChannel(orderCode), payload).Err(); err != nil {
		log.Println("failed to publish chat message:", err)
	}
}
