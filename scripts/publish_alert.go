// +build ignore

package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

type PanicAlertEvent struct {
	AlertID  uuid.UUID `json:"alert_id"`
	UserID   int64     `json:"user_id"`
	Lat      float64   `json:"lat"`
	Lon      float64   `json:"lon"`
	RaisedAt time.Time `json:"raised_at"`
}

func main() {
	redisAddr := flag.String("redis", "localhost:6379", "Redis address for streams")
	flag.Parse()

	client := redis.NewClient(&redis.Options{
		Addr: *redisAddr,
	})
	defer client.Close()

	ctx := context.Background()

	if err := client.Ping(ctx).Err(); err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}

	// Test alert near Gulshan, Dhaka
	event := PanicAlertEvent{
		AlertID:  uuid.New(),
		UserID:   42,
		Lat:      23.7925,
		Lon:      90.4078,
		RaisedAt: time.Now().UTC(),
	}

	data, err := json.Marshal(event)
	if err != nil {
		log.Fatalf("Failed to marshal event: %v", err)
	}

	result, err := client.XAdd(ctx, &redis.XAddArgs{
		Stream: "stream:alerts:panic",
		Values: map[string]interface{}{
			"data": string(data),
		},
	}).Result()
	if err != nil {
		log.Fatalf("Failed to publish event: %v", err)
	}

	fmt.Printf("✅ Alert published successfully!\n")
	fmt.Printf("   Stream: stream:alerts:panic\n")
	fmt.Printf("   Message ID: %s\n", result)
	fmt.Printf("   Alert ID: %s\n", event.AlertID)
	fmt.Printf("   Coordinates: %.6f, %.6f\n", event.Lat, event.Lon)

	fmt.Printf("\n⏳ Waiting for notification in stream:alerts:notify...\n")

	timeout := time.After(30 * time.Second)
	ticker := time.NewTicker(1 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-timeout:
			fmt.Println("❌ Timeout waiting for notification")
			return
		case <-ticker.C:
			results, err := client.XRead(ctx, &redis.XReadArgs{
				Streams: []string{"stream:alerts:notify", "0"},
				Count:   10,
				Block:   0,
			}).Result()

			if err != nil && err != redis.Nil {
				continue
			}

			for _, stream := range results {
				for _, msg := range stream.Messages {
					dataStr, ok := msg.Values["data"].(string)
					if !ok {
						continue
					}

					var response map[string]interface{}
					if err := json.Unmarshal([]byte(dataStr), &response); err != nil {
						continue
					}

					if alertID, ok := response["alert_id"].(string); ok {
						if alertID == event.AlertID.String() {
							fmt.Printf("\n✅ Notification received!\n")
							prettyJSON, _ := json.MarshalIndent(response, "", "  ")
							fmt.Printf("%s\n", prettyJSON)
							return
						}
					}
				}
			}
		}
	}
}
