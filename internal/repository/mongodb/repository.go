package mongodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/mbodj/clinivet/internal/domain/models"
	"github.com/mbodj/clinivet/internal/repository"
)

const (
	stockCollection        = "stock_items"
	salesCollection        = "sales"
	consultationCollection = "consultations"
	clientCollection       = "clients"
	expenseCollection      = "expenses"
)

// Store implements the repository interfaces on top of MongoDB. Each write is
// an independent document update; there is no multi-document transaction, so
// the application assumes a single active operator per item (see the
// inventory service).
type Store struct {
	client *mongo.Client
	dbName string
}

// New connects to MongoDB and verifies the connection with a ping.
func New(ctx context.Context, uri, dbName string) (*Store, error) {
	clientOptions := options.Client().ApplyURI(uri)
	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongodb: %w", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("failed to ping mongodb: %w", err)
	}

	return &Store{client: client, dbName: dbName}, nil
}

// Close disconnects the underlying client.
func (s *Store) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

func (s *Store) coll(name string) *mongo.Collection {
	return s.client.Database(s.dbName).Collection(name)
}

// CreateStockItem inserts a freshly received batch document.
func (s *Store) CreateStockItem(ctx context.Context, item models.StockItem) error {
	if _, err := s.coll(stockCollection).InsertOne(ctx, item); err != nil {
		return fmt.Errorf("insert stock item: %w", err)
	}
	return nil
}

// GetStockItem loads one stock item document by id.
func (s *Store) GetStockItem(ctx context.Context, id string) (models.StockItem, error) {
	var item models.StockItem
	err := s.coll(stockCollection).FindOne(ctx, bson.M{"_id": id}).Decode(&item)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.StockItem{}, repository.ErrNotFound
	}
	if err != nil {
		return models.StockItem{}, fmt.Errorf("find stock item %s: %w", id, err)
	}
	return item, nil
}

// ListStockItems returns all items sorted by the cached total, lowest first,
// so low and out-of-stock goods surface at the top of listings.
func (s *Store) ListStockItems(ctx context.Context) ([]models.StockItem, error) {
	opts := options.Find().SetSort(bson.D{{Key: "total_stock", Value: 1}})
	cursor, err := s.coll(stockCollection).Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("list stock items: %w", err)
	}

	var items []models.StockItem
	if err := cursor.All(ctx, &items); err != nil {
		return nil, fmt.Errorf("decode stock items: %w", err)
	}
	return items, nil
}

// UpdateStockCounters writes only the counter fields and the recomputed
// cached total, leaving the rest of the document untouched.
func (s *Store) UpdateStockCounters(ctx context.Context, id string, counters repository.StockCounters) error {
	update := bson.M{"$set": bson.M{
		"sealed_count":    counters.SealedCount,
		"loose_remainder": counters.LooseRemainder,
		"total_stock":     counters.TotalStock,
		"updated_at":      time.Now().UTC(),
	}}

	res, err := s.coll(stockCollection).UpdateByID(ctx, id, update)
	if err != nil {
		return fmt.Errorf("update stock counters for %s: %w", id, err)
	}
	if res.MatchedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// CreateSale records a completed checkout.
func (s *Store) CreateSale(ctx context.Context, sale models.Sale) error {
	if _, err := s.coll(salesCollection).InsertOne(ctx, sale); err != nil {
		return fmt.Errorf("insert sale: %w", err)
	}
	return nil
}

// ListSalesBetween returns sales created within [start, end).
func (s *Store) ListSalesBetween(ctx context.Context, start, end time.Time) ([]models.Sale, error) {
	filter := bson.M{"created_at": bson.M{"$gte": start, "$lt": end}}
	cursor, err := s.coll(salesCollection).Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list sales: %w", err)
	}

	var sales []models.Sale
	if err := cursor.All(ctx, &sales); err != nil {
		return nil, fmt.Errorf("decode sales: %w", err)
	}
	return sales, nil
}

// CreateConsultation records a medical visit.
func (s *Store) CreateConsultation(ctx context.Context, c models.Consultation) error {
	if _, err := s.coll(consultationCollection).InsertOne(ctx, c); err != nil {
		return fmt.Errorf("insert consultation: %w", err)
	}
	return nil
}

// ListConsultationsByPet returns the visit history of one pet.
func (s *Store) ListConsultationsByPet(ctx context.Context, petID string) ([]models.Consultation, error) {
	cursor, err := s.coll(consultationCollection).Find(ctx, bson.M{"pet_id": petID})
	if err != nil {
		return nil, fmt.Errorf("list consultations for pet %s: %w", petID, err)
	}

	var consultations []models.Consultation
	if err := cursor.All(ctx, &consultations); err != nil {
		return nil, fmt.Errorf("decode consultations: %w", err)
	}
	return consultations, nil
}

// CreateClient registers a pet owner.
func (s *Store) CreateClient(ctx context.Context, c models.Client) error {
	if _, err := s.coll(clientCollection).InsertOne(ctx, c); err != nil {
		return fmt.Errorf("insert client: %w", err)
	}
	return nil
}

// GetClient loads one client document by id.
func (s *Store) GetClient(ctx context.Context, id string) (models.Client, error) {
	var c models.Client
	err := s.coll(clientCollection).FindOne(ctx, bson.M{"_id": id}).Decode(&c)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.Client{}, repository.ErrNotFound
	}
	if err != nil {
		return models.Client{}, fmt.Errorf("find client %s: %w", id, err)
	}
	return c, nil
}

// ListClients returns all registered clients.
func (s *Store) ListClients(ctx context.Context) ([]models.Client, error) {
	cursor, err := s.coll(clientCollection).Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list clients: %w", err)
	}

	var clients []models.Client
	if err := cursor.All(ctx, &clients); err != nil {
		return nil, fmt.Errorf("decode clients: %w", err)
	}
	return clients, nil
}

// CreateExpense records an operating expense.
func (s *Store) CreateExpense(ctx context.Context, e models.Expense) error {
	if _, err := s.coll(expenseCollection).InsertOne(ctx, e); err != nil {
		return fmt.Errorf("insert expense: %w", err)
	}
	return nil
}

// ListExpenses returns all expense entries.
func (s *Store) ListExpenses(ctx context.Context) ([]models.Expense, error) {
	cursor, err := s.coll(expenseCollection).Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list expenses: %w", err)
	}

	var expenses []models.Expense
	if err := cursor.All(ctx, &expenses); err != nil {
		return nil, fmt.Errorf("decode expenses: %w", err)
	}
	return expenses, nil
}
