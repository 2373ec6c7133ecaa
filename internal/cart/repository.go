package cart

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"smart-shopping-cart/internal/cart/cartdb"
)

// SavedList is a persisted shopping list with its storage metadata.
type SavedList struct {
	ID          string
	UserID      string
	List        ShoppingList
	GeneratedAt time.Time
}

// TierCounts reports the stored per-tier item counts.
type TierCounts struct {
	Essential     int
	PantryStaples int
	FreshPriority int
	ShelfStable   int
}

// Repository handles persistence of generated shopping lists. Persistence is
// a boundary concern: the pipeline itself never touches the database.
type Repository struct {
	queries *cartdb.Queries
	db      *sql.DB
}

// NewRepository creates a shopping list repository.
func NewRepository(d *sql.DB) *Repository {
	return &Repository{
		queries: cartdb.New(d),
		db:      d,
	}
}

// Save stores a generated list for a user and returns its assigned ID.
func (r *Repository) Save(ctx context.Context, userID string, list *ShoppingList) (string, error) {
	document, err := json.Marshal(list)
	if err != nil {
		return "", fmt.Errorf("failed to marshal shopping list: %w", err)
	}

	id := uuid.NewString()
	err = r.queries.InsertShoppingList(ctx, cartdb.InsertShoppingListParams{
		ID:             id,
		UserID:         userID,
		Document:       string(document),
		EssentialCount: int64(len(list.Essential)),
		PantryCount:    int64(len(list.PantryStaples)),
		FreshCount:     int64(len(list.FreshPriority)),
		ShelfCount:     int64(len(list.ShelfStable)),
		GeneratedAt:    list.GeneratedAt.UTC(),
	})
	if err != nil {
		return "", fmt.Errorf("failed to insert shopping list: %w", err)
	}
	return id, nil
}

// GetLatestByUser retrieves a user's most recent saved list, or nil when the
// user has none.
func (r *Repository) GetLatestByUser(ctx context.Context, userID string) (*SavedList, error) {
	row, err := r.queries.GetLatestShoppingListByUser(ctx, userID)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get latest shopping list: %w", err)
	}
	return fromRow(row)
}

// ListRecentByUser retrieves up to limit saved lists for a user, newest first.
func (r *Repository) ListRecentByUser(ctx context.Context, userID string, limit int) ([]SavedList, error) {
	rows, err := r.queries.ListRecentShoppingListsByUser(ctx, cartdb.ListRecentShoppingListsByUserParams{
		UserID: userID,
		Limit:  int64(limit),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list shopping lists for user %s: %w", userID, err)
	}

	var saved []SavedList
	for _, row := range rows {
		s, err := fromRow(row)
		if err != nil {
			return nil, err
		}
		saved = append(saved, *s)
	}
	return saved, nil
}

// Delete removes a saved list by ID.
func (r *Repository) Delete(ctx context.Context, id string) error {
	return r.queries.DeleteShoppingList(ctx, id)
}

// Counts reports the per-tier item counts of a saved list.
func (s *SavedList) Counts() TierCounts {
	return TierCounts{
		Essential:     len(s.List.Essential),
		PantryStaples: len(s.List.PantryStaples),
		FreshPriority: len(s.List.FreshPriority),
		ShelfStable:   len(s.List.ShelfStable),
	}
}

func fromRow(row cartdb.ShoppingList) (*SavedList, error) {
	var list ShoppingList
	if err := json.Unmarshal([]byte(row.Document), &list); err != nil {
		return nil, fmt.Errorf("failed to unmarshal stored shopping list %s: %w", row.ID, err)
	}
	return &SavedList{
		ID:          row.ID,
		UserID:      row.UserID,
		List:        list,
		GeneratedAt: row.GeneratedAt,
	}, nil
}
