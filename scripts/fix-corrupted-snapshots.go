package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/redis/go-redis/v9"

	"github.com/vadim010975/retro-tactics/internal/entities"
)

func main() {
	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		redisURL = "redis://localhost:6379"
	}

	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		log.Fatal("Failed to parse Redis URL:", err)
	}

	client := redis.NewClient(opt)
	ctx := context.Background()

	if err := client.Ping(ctx).Err(); err != nil {
		log.Fatal("Failed to connect to Redis:", err)
	}

	fmt.Println("Connected to Redis:", redisURL)
	fmt.Println("Scanning for corrupted saved games...")

	iter := client.Scan(ctx, 0, "snapshot:*", 0).Iterator()

	var corruptedKeys []string
	var checkedCount int

	for iter.Next(ctx) {
		key := iter.Val()
		checkedCount++

		data, err := client.Get(ctx, key).Result()
		if err != nil {
			fmt.Printf("Error reading %s: %v\n", key, err)
			continue
		}

		var snap entities.Snapshot
		if err := json.Unmarshal([]byte(data), &snap); err != nil {
			fmt.Printf("✗ Corrupted JSON in %s\n", key)
			corruptedKeys = append(corruptedKeys, key)
			continue
		}

		if problem := inspect(&snap); problem != "" {
			fmt.Printf("✗ Unusable snapshot in %s: %s\n", key, problem)
			corruptedKeys = append(corruptedKeys, key)
		}
	}

	if err := iter.Err(); err != nil {
		log.Fatal("Error during scan:", err)
	}

	fmt.Printf("\nChecked %d keys, found %d corrupted entries\n", checkedCount, len(corruptedKeys))

	if len(corruptedKeys) == 0 {
		fmt.Println("No corrupted data found!")
		return
	}

	fmt.Println("\nCorrupted keys:")
	for _, key := range corruptedKeys {
		fmt.Printf("  - %s\n", key)
	}

	fmt.Print("\nDo you want to DELETE these corrupted entries? (yes/no): ")
	var response string
	_, _ = fmt.Scanln(&response)

	if response == "yes" {
		for _, key := range corruptedKeys {
			if err := client.Del(ctx, key).Err(); err != nil {
				fmt.Printf("Failed to delete %s: %v\n", key, err)
			} else {
				fmt.Printf("Deleted %s\n", key)
			}
		}
		fmt.Println("\nCleanup complete!")
	} else {
		fmt.Println("Aborted - no changes made")
	}
}

// inspect reports the first structural problem that would make a load fail
func inspect(snap *entities.Snapshot) string {
	if snap.Round < 1 {
		return fmt.Sprintf("round is %d", snap.Round)
	}
	if len(snap.OwnRoster) == 0 || len(snap.EnemyRoster) == 0 {
		return "a roster is empty"
	}
	seen := make(map[int]bool)
	for _, roster := range [][]entities.PositionedCharacter{snap.OwnRoster, snap.EnemyRoster} {
		for _, pc := range roster {
			if pc.Character == nil {
				return "roster entry without a character"
			}
			if seen[pc.Position] {
				return fmt.Sprintf("two characters on cell %d", pc.Position)
			}
			seen[pc.Position] = true
		}
	}
	return ""
}
