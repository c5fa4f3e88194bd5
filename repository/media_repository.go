package repository

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/catalogo-app/recommendation-backend/domain"
	"github.com/catalogo-app/recommendation-backend/mongo"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	driver "go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// MediaMongoRepository 目录媒体的只读仓储，写入走目录服务，这里不提供。
type MediaMongoRepository struct {
	db         mongo.Database
	collection string
}

func NewMediaRepository(db mongo.Database, collection string) domain.MediaRepository {
	return &MediaMongoRepository{
		db:         db,
		collection: collection,
	}
}

func (r *MediaMongoRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.MediaItem, error) {
	coll := r.db.Collection(r.collection)

	var media domain.MediaItem
	err := coll.FindOne(ctx, bson.M{"_id": id}).Decode(&media)
	if errors.Is(err, driver.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get media: %w", err)
	}
	return &media, nil
}

func (r *MediaMongoRepository) GetByIDs(ctx context.Context, ids []primitive.ObjectID) ([]domain.MediaItem, error) {
	if len(ids) == 0 {
		return []domain.MediaItem{}, nil
	}
	coll := r.db.Collection(r.collection)

	cursor, err := coll.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, fmt.Errorf("failed to get media batch: %w", err)
	}
	var items []domain.MediaItem
	if err := cursor.All(ctx, &items); err != nil {
		return nil, fmt.Errorf("failed to decode media batch: %w", err)
	}
	return items, nil
}

// filterQuery 把零值字段排除在查询之外。
func filterQuery(filter domain.MediaFilter) bson.M {
	query := bson.M{}
	if filter.Type != "" {
		query["type"] = filter.Type
	}
	if filter.Genre != "" {
		query["genres"] = filter.Genre
	}
	if filter.StartYear > 0 && filter.EndYear > 0 {
		query["year"] = bson.M{"$gte": filter.StartYear, "$lte": filter.EndYear}
	}
	if filter.MinRating > 0 {
		query["rating"] = bson.M{"$gte": filter.MinRating}
	}
	return query
}

func (r *MediaMongoRepository) GetCandidates(ctx context.Context, filter domain.MediaFilter, excludedIDs []primitive.ObjectID, limit int64) ([]domain.MediaItem, error) {
	coll := r.db.Collection(r.collection)

	query := filterQuery(filter)
	// 屏蔽媒体在查询层剔除，绝不进入打分
	if len(excludedIDs) > 0 {
		query["_id"] = bson.M{"$nin": excludedIDs}
	}

	opts := options.Find().SetSort(bson.D{{Key: "rating", Value: -1}})
	if limit > 0 {
		opts.SetLimit(limit)
	}
	cursor, err := coll.Find(ctx, query, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to get candidates: %w", err)
	}
	var items []domain.MediaItem
	if err := cursor.All(ctx, &items); err != nil {
		return nil, fmt.Errorf("failed to decode candidates: %w", err)
	}
	return items, nil
}

func (r *MediaMongoRepository) GetAllExcept(ctx context.Context, excludedIDs []primitive.ObjectID) ([]domain.MediaItem, error) {
	coll := r.db.Collection(r.collection)

	query := bson.M{}
	if len(excludedIDs) > 0 {
		query["_id"] = bson.M{"$nin": excludedIDs}
	}
	cursor, err := coll.Find(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to get media pool: %w", err)
	}
	var items []domain.MediaItem
	if err := cursor.All(ctx, &items); err != nil {
		return nil, fmt.Errorf("failed to decode media pool: %w", err)
	}
	return items, nil
}

func (r *MediaMongoRepository) GetPopular(ctx context.Context, limit int64) ([]domain.MediaItem, error) {
	coll := r.db.Collection(r.collection)

	opts := options.Find().SetSort(bson.D{{Key: "rating", Value: -1}}).SetLimit(limit)
	cursor, err := coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to get popular media: %w", err)
	}
	var items []domain.MediaItem
	if err := cursor.All(ctx, &items); err != nil {
		return nil, fmt.Errorf("failed to decode popular media: %w", err)
	}
	return items, nil
}

func (r *MediaMongoRepository) List(ctx context.Context, filter domain.MediaFilter, opts domain.ListOptions) ([]domain.MediaItem, int64, error) {
	coll := r.db.Collection(r.collection)
	query := filterQuery(filter)

	total, err := coll.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count media: %w", err)
	}

	// 标题排序需要 Unicode 归类，数据库的字节序对多语种目录不可用，
	// 取全量过滤结果在内存排序后再分页
	if opts.Sort == "title" {
		cursor, err := coll.Find(ctx, query)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to list media: %w", err)
		}
		var items []domain.MediaItem
		if err := cursor.All(ctx, &items); err != nil {
			return nil, 0, fmt.Errorf("failed to decode media list: %w", err)
		}

		collator := collate.New(language.Und, collate.Loose)
		sort.SliceStable(items, func(i, j int) bool {
			return collator.CompareString(items[i].Title, items[j].Title) < 0
		})
		return paginate(items, opts.Skip, opts.Limit), total, nil
	}

	sortKey := "rating"
	if opts.Sort == "year" {
		sortKey = "year"
	}
	findOpts := options.Find().
		SetSort(bson.D{{Key: sortKey, Value: -1}}).
		SetSkip(opts.Skip)
	if opts.Limit > 0 {
		findOpts.SetLimit(opts.Limit)
	}
	cursor, err := coll.Find(ctx, query, findOpts)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list media: %w", err)
	}
	var items []domain.MediaItem
	if err := cursor.All(ctx, &items); err != nil {
		return nil, 0, fmt.Errorf("failed to decode media list: %w", err)
	}
	return items, total, nil
}

func paginate(items []domain.MediaItem, skip, limit int64) []domain.MediaItem {
	if skip >= int64(len(items)) {
		return []domain.MediaItem{}
	}
	items = items[skip:]
	if limit > 0 && limit < int64(len(items)) {
		items = items[:limit]
	}
	return items
}
