package store

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/muurk/tuibox/internal/config"
	"github.com/muurk/tuibox/internal/feed"
	"github.com/muurk/tuibox/internal/logging"
)

// videoDoc is one element of a view document's latest_videos array.
// Fields not listed here are dropped on decode.
type videoDoc struct {
	ID          primitive.ObjectID `bson:"_id"`
	Title       string             `bson:"title"`
	VideoID     string             `bson:"video_id"`
	PublishedAt looseTime          `bson:"published_at"`
	URL         looseString        `bson:"url"`
	Duration    looseString        `bson:"duration"`
	Seen        bool               `bson:"seen"`
}

// publishedLayouts are tried, in order, for published_at values stored as
// strings.
var publishedLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	time.DateTime,
	time.DateOnly,
}

// looseTime decodes a BSON datetime, or a string in one of publishedLayouts.
// Anything else decodes to the zero time, which the UI shows as N/A.
type looseTime time.Time

func (lt *looseTime) UnmarshalBSONValue(t bsontype.Type, data []byte) error {
	raw := bson.RawValue{Type: t, Value: data}
	*lt = looseTime{}
	switch t {
	case bson.TypeDateTime:
		*lt = looseTime(raw.Time())
	case bson.TypeString:
		s := raw.StringValue()
		for _, layout := range publishedLayouts {
			if parsed, err := time.Parse(layout, s); err == nil {
				*lt = looseTime(parsed)
				break
			}
		}
	}
	return nil
}

// looseString decodes strings as-is and numbers to their decimal form.
// Null and missing values decode to "".
type looseString string

func (ls *looseString) UnmarshalBSONValue(t bsontype.Type, data []byte) error {
	raw := bson.RawValue{Type: t, Value: data}
	switch t {
	case bson.TypeString:
		*ls = looseString(raw.StringValue())
	case bson.TypeInt32:
		*ls = looseString(strconv.FormatInt(int64(raw.Int32()), 10))
	case bson.TypeInt64:
		*ls = looseString(strconv.FormatInt(raw.Int64(), 10))
	case bson.TypeDouble:
		*ls = looseString(strconv.FormatFloat(raw.Double(), 'f', -1, 64))
	case bson.TypeNull, bson.TypeUndefined:
		*ls = ""
	default:
		*ls = looseString(raw.String())
	}
	return nil
}

// channelDoc is one document of the latest-videos view, grouped by channel.
type channelDoc struct {
	Channel string     `bson:"_id"`
	Videos  []videoDoc `bson:"latest_videos"`
}

// Mongo reads channels from a MongoDB view and writes seen flags back to the
// underlying videos collection.
type Mongo struct {
	client  *mongo.Client
	cfg     config.MongoConfig
	timeout time.Duration
}

// OpenMongo connects to cfg.URI and pings the admin database.
func OpenMongo(ctx context.Context, cfg config.MongoConfig) (*Mongo, error) {
	start := time.Now()
	if cfg.URI == "" {
		err := wrap(SourceMongo, "connect", fmt.Errorf("%w: MONGO_URI is not set", ErrUnavailable))
		logging.LogStoreOp("connect", string(SourceMongo), time.Since(start), err)
		return nil, err
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = config.DefaultTimeout
	}

	opts := options.Client().
		ApplyURI(cfg.URI).
		SetServerSelectionTimeout(timeout).
		SetServerAPIOptions(options.ServerAPI(options.ServerAPIVersion1))

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		err = wrap(SourceMongo, "connect", classifyMongoError(err))
		logging.LogStoreOp("connect", string(SourceMongo), time.Since(start), err)
		return nil, err
	}

	m := &Mongo{client: client, cfg: cfg, timeout: timeout}
	if err := m.Ping(ctx); err != nil {
		_ = client.Disconnect(context.Background())
		logging.LogStoreOp("connect", string(SourceMongo), time.Since(start), err)
		return nil, err
	}

	logging.LogStoreOp("connect", string(SourceMongo), time.Since(start), nil)
	return m, nil
}

// Ping runs the ping command against the admin database.
func (m *Mongo) Ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, m.timeout)
	defer cancel()

	err := m.client.Database("admin").RunCommand(ctx, bson.D{{Key: "ping", Value: 1}}).Err()
	return wrap(SourceMongo, "ping", classifyMongoError(err))
}

func (m *Mongo) Channels(ctx context.Context) ([]feed.Channel, error) {
	start := time.Now()
	ctx, cancel := context.WithTimeout(ctx, m.timeout)
	defer cancel()

	channels, err := m.channels(ctx)
	logging.LogStoreOp("channels", string(SourceMongo), time.Since(start), err)
	return channels, err
}

func (m *Mongo) channels(ctx context.Context) ([]feed.Channel, error) {
	view := m.client.Database(m.cfg.Database).Collection(m.cfg.View)

	cursor, err := view.Find(ctx, bson.D{})
	if err != nil {
		return nil, wrap(SourceMongo, "channels", classifyMongoError(err))
	}

	var docs []channelDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, wrap(SourceMongo, "channels", classifyMongoError(err))
	}
	return channelsFromDocs(docs), nil
}

func (m *Mongo) SetSeen(ctx context.Context, videoObjectID string, seen bool) error {
	start := time.Now()
	err := m.setSeen(ctx, videoObjectID, seen)
	logging.LogStoreOp("set seen", string(SourceMongo), time.Since(start), err)
	return err
}

func (m *Mongo) setSeen(ctx context.Context, videoObjectID string, seen bool) error {
	oid, err := primitive.ObjectIDFromHex(videoObjectID)
	if err != nil {
		return wrap(SourceMongo, "set seen", fmt.Errorf("video %q: %w", videoObjectID, ErrNotFound))
	}

	ctx, cancel := context.WithTimeout(ctx, m.timeout)
	defer cancel()

	coll := m.client.Database(m.cfg.Database).Collection(m.cfg.Collection)
	res, err := coll.UpdateOne(ctx,
		bson.D{{Key: "_id", Value: oid}},
		bson.D{{Key: "$set", Value: bson.D{{Key: "seen", Value: seen}}}},
	)
	if err != nil {
		return wrap(SourceMongo, "set seen", classifyMongoError(err))
	}
	if res.MatchedCount == 0 {
		return wrap(SourceMongo, "set seen", fmt.Errorf("video %s: %w", videoObjectID, ErrNotFound))
	}
	return nil
}

func (m *Mongo) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), m.timeout)
	defer cancel()
	return wrap(SourceMongo, "close", m.client.Disconnect(ctx))
}

func channelsFromDocs(docs []channelDoc) []feed.Channel {
	channels := make([]feed.Channel, 0, len(docs))
	for _, d := range docs {
		ch := feed.Channel{Name: d.Channel, Videos: make([]feed.Video, 0, len(d.Videos))}
		for _, v := range d.Videos {
			id := ""
			if !v.ID.IsZero() {
				id = v.ID.Hex()
			}
			ch.Videos = append(ch.Videos, feed.Video{
				ID:          id,
				Title:       v.Title,
				VideoID:     v.VideoID,
				PublishedAt: time.Time(v.PublishedAt),
				URL:         string(v.URL),
				Duration:    string(v.Duration),
				Seen:        v.Seen,
			}.Normalize())
		}
		channels = append(channels, ch)
	}
	return channels
}

// classifyMongoError marks connectivity failures with ErrUnavailable.
func classifyMongoError(err error) error {
	if err == nil {
		return nil
	}
	switch {
	case mongo.IsTimeout(err),
		mongo.IsNetworkError(err),
		errors.Is(err, context.DeadlineExceeded):
		return fmt.Errorf("%w: %w", ErrUnavailable, err)
	default:
		return err
	}
}
