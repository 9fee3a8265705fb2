package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/segmentio/kafka-go"
)

// путь партии, по которому двигаем заказы
var route = []string{"SHIPPED_FROM_STORE", "ARRIVED_AT_HUB", "IN_TRANSIT", "ARRIVED_AT_OFFICE"}

type ShipmentEvent struct {
	ShipmentID string   `json:"shipment_id"`
	BoxID      string   `json:"box_id,omitempty"`
	OrderIDs   []string `json:"order_ids"`
	Status     string   `json:"status,omitempty"`
}

type order struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

func main() {
	api := flag.String("api", "http://localhost:8080", "fulfillment service address")
	brokers := flag.String("brokers", "localhost:9092", "kafka broker")
	topic := flag.String("topic", "shipments", "shipment events topic")
	flag.Parse()

	writer := &kafka.Writer{
		Addr:  kafka.TCP(*brokers),
		Topic: *topic,
	}
	defer writer.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	ticker := time.NewTicker(2 * time.Second)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			ev, err := nextEvent(ctx, *api)
			if err != nil {
				log.Println("failed to build event:", err)
				continue
			}
			if len(ev.OrderIDs) == 0 {
				continue
			}

			data, _ := json.Marshal(ev)
			if err := writer.WriteMessages(ctx, kafka.Message{Key: []byte(ev.ShipmentID), Value: data}); err != nil {
				log.Println("failed to write event:", err)
				continue
			}
			log.Printf("shipment %s: %d orders -> %s", ev.ShipmentID, len(ev.OrderIDs), ev.Status)
		case <-ctx.Done():
			return
		}
	}
}

// nextEvent берет заказы одного статуса и переводит их на следующий шаг маршрута.
func nextEvent(ctx context.Context, api string) (ShipmentEvent, error) {
	step := rand.Intn(len(route) - 1)
	from, to := route[step], route[step+1]

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fmt.Sprintf("%s/orders?status=%s&limit=5", api, from), nil)
	if err != nil {
		return ShipmentEvent{}, err
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return ShipmentEvent{}, err
	}
	defer resp.Body.Close()

	var orders []order
	if err := json.NewDecoder(resp.Body).Decode(&orders); err != nil {
		return ShipmentEvent{}, err
	}

	ev := ShipmentEvent{
		ShipmentID: fmt.Sprintf("SHP-%04d", rand.Intn(10000)),
		BoxID:      fmt.Sprintf("BOX-%02d", rand.Intn(50)),
		Status:     to,
	}
	for _, o := range orders {
		ev.OrderIDs = append(ev.OrderIDs, o.ID)
	}
	return ev, nil
}
