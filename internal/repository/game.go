package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"gomoku/internal/domain/game"
	gameErrors "gomoku/internal/errors"
)

const gamesCollection = "games"

type GameRepository struct {
	log   *zap.SugaredLogger
	mongo *mongo.Database
}

func NewGameRepository(log *zap.SugaredLogger, mongo *mongo.Database) *GameRepository {
	return &GameRepository{
		log:   log,
		mongo: mongo,
	}
}

func (g *GameRepository) CreateGame(ctx context.Context, session *game.Session) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	collection := g.mongo.Collection(gamesCollection)

	_, err := collection.InsertOne(ctx, session)
	if err != nil {
		g.log.Errorf("failed to insert game to database: %v", err)
		return fmt.Errorf("insert game %s: %w", session.ID, gameErrors.ErrCreateGameFailed)
	}

	g.log.Infof("game inserted successfully with id: %s", session.ID)

	return nil
}

func (g *GameRepository) GetGame(ctx context.Context, id string) (*game.Session, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	collection := g.mongo.Collection(gamesCollection)

	var session game.Session
	err := collection.FindOne(ctx, bson.M{"_id": id}).Decode(&session)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, fmt.Errorf("game %s: %w", id, gameErrors.ErrGameNotFound)
	}
	if err != nil {
		g.log.Errorf("failed to find game %s: %v", id, err)
		return nil, fmt.Errorf("find game %s: %w", id, err)
	}

	return &session, nil
}

func (g *GameRepository) UpdateGame(ctx context.Context, session *game.Session) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	collection := g.mongo.Collection(gamesCollection)

	res, err := collection.ReplaceOne(ctx, bson.M{"_id": session.ID}, session)
	if err != nil {
		g.log.Errorf("failed to update game %s: %v", session.ID, err)
		return fmt.Errorf("update game %s: %w", session.ID, err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("game %s: %w", session.ID, gameErrors.ErrGameNotFound)
	}

	return nil
}
