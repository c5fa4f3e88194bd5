package mongo

import (
	"context"
	"fmt"
	"time"

	"github.com/catalogo-app/recommendation-backend/domain"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func CreateIndexes(db Database) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	// Media Collection
	mediaCollection := db.Collection(domain.CollectionMedia)
	createIndex(ctx, mediaCollection, bson.D{{Key: "type", Value: 1}}, "type")
	createIndex(ctx, mediaCollection, bson.D{{Key: "genres", Value: 1}}, "genres")
	createIndex(ctx, mediaCollection, bson.D{{Key: "year", Value: 1}}, "year")
	createIndex(ctx, mediaCollection, bson.D{{Key: "rating", Value: -1}}, "rating")
	// 候选检索的复合索引
	createIndex(ctx, mediaCollection, bson.D{
		{Key: "type", Value: 1},
		{Key: "rating", Value: -1}}, "type_rating_compound")
	createIndex(ctx, mediaCollection, bson.D{
		{Key: "genres", Value: 1},
		{Key: "year", Value: 1}}, "genres_year_compound")

	// Engagement Event Collection
	eventCollection := db.Collection(domain.CollectionEngagementEvent)
	createIndex(ctx, eventCollection, bson.D{{Key: "user_id", Value: 1}, {Key: "timestamp", Value: -1}}, "user_timestamp")
	createIndex(ctx, eventCollection, bson.D{{Key: "media_id", Value: 1}, {Key: "timestamp", Value: -1}}, "media_timestamp")
	createIndex(ctx, eventCollection, bson.D{{Key: "action", Value: 1}}, "action")
	createIndex(ctx, eventCollection, bson.D{
		{Key: "score", Value: -1},
		{Key: "timestamp", Value: -1}}, "score_timestamp_compound")

	// Exclusion Collection
	exclusionCollection := db.Collection(domain.CollectionExclusion)
	createIndex(ctx, exclusionCollection, bson.D{
		{Key: "user_id", Value: 1},
		{Key: "expires_at", Value: -1}}, "user_expires_compound")

	// Review / Favorite / Saved / Onboarding Collection
	reviewCollection := db.Collection(domain.CollectionReview)
	createIndex(ctx, reviewCollection, bson.D{{Key: "user_id", Value: 1}, {Key: "rating", Value: -1}}, "user_rating")
	favoriteCollection := db.Collection(domain.CollectionFavorite)
	createIndex(ctx, favoriteCollection, bson.D{{Key: "user_id", Value: 1}}, "user_id")
	savedCollection := db.Collection(domain.CollectionSaved)
	createIndex(ctx, savedCollection, bson.D{{Key: "user_id", Value: 1}}, "user_id")
	onboardingCollection := db.Collection(domain.CollectionOnboardingSelection)
	createIndex(ctx, onboardingCollection, bson.D{{Key: "user_id", Value: 1}}, "user_id")

	// User Collection
	userCollection := db.Collection(domain.CollectionUser)
	createIndex(ctx, userCollection, bson.D{{Key: "email", Value: 1}}, "email")
}

func createIndex(ctx context.Context, collection Collection, keys bson.D, name string) {
	specs, err := collection.Indexes().ListSpecifications(ctx)
	if err != nil {
		fmt.Printf("获取索引列表失败: %v\n", err)
		return
	}

	for _, spec := range specs {
		if spec.Name == name {
			fmt.Printf("索引 '%s' 已存在，跳过创建\n", name)
			return
		}
	}

	indexModel := mongo.IndexModel{
		Keys:    keys,
		Options: options.Index().SetName(name),
	}

	if _, err := collection.Indexes().CreateOne(ctx, indexModel); err != nil {
		fmt.Printf("创建索引 '%s' 失败: %v\n", name, err)
	} else {
		fmt.Printf("索引 '%s' 创建成功\n", name)
	}
}
