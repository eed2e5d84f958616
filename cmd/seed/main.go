package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"aviengine/config"
	"aviengine/internal/catalog"
	"aviengine/internal/repository"
)

func main() {
	cfg := config.Load()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer client.Disconnect(ctx)

	questionRepo := repository.NewQuestionRepo(client.Database(cfg.MongoDB))

	questions := catalog.DefaultQuestions()
	for i := range questions {
		if err := questionRepo.Upsert(ctx, &questions[i]); err != nil {
			log.Fatalf("Failed to upsert question %s: %v", questions[i].ID, err)
		}
	}

	fmt.Printf("Seeded %d interview questions into %s\n", len(questions), cfg.MongoDB)
}
