// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/finantrack/backend/internal/application/adapter"
	"github.com/finantrack/backend/internal/domain/entity"
	"github.com/finantrack/backend/internal/integration/persistence/model"
)

// testDB opens a fresh in-memory database with the full schema migrated.
func testDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	if err := db.AutoMigrate(
		&model.UserModel{},
		&model.CategoryModel{},
		&model.TransactionModel{},
		&model.GoalModel{},
	); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return db
}

func seedUser(t *testing.T, db *gorm.DB) uuid.UUID {
	t.Helper()
	user := entity.NewUser("test@example.com", "Test User", "hashed")
	if err := db.Create(model.UserFromEntity(user)).Error; err != nil {
		t.Fatalf("failed to seed user: %v", err)
	}
	return user.ID
}

func seedCategory(t *testing.T, db *gorm.DB, userID uuid.UUID, name string, categoryType entity.CategoryType) *entity.Category {
	t.Helper()
	category := entity.NewCategory(userID, name, "", categoryType)
	if err := db.Create(model.CategoryFromEntity(category)).Error; err != nil {
		t.Fatalf("failed to seed category: %v", err)
	}
	return category
}

func seedTransaction(t *testing.T, db *gorm.DB, userID, categoryID uuid.UUID, txType entity.TransactionType, amount string, date time.Time) *entity.Transaction {
	t.Helper()
	transaction := entity.NewTransaction(userID, date, "seeded", decimal.RequireFromString(amount), txType, categoryID)
	if err := db.Create(model.TransactionFromEntity(transaction)).Error; err != nil {
		t.Fatalf("failed to seed transaction: %v", err)
	}
	return transaction
}

func TestLedgerRepository_FetchTransactions(t *testing.T) {
	db := testDB(t)
	repo := NewLedgerRepository(db)
	ctx := context.Background()

	userID := seedUser(t, db)
	category := seedCategory(t, db, userID, "Alimentação", entity.CategoryTypeExpense)

	june := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)
	may := time.Date(2025, 5, 10, 0, 0, 0, 0, time.UTC)
	seedTransaction(t, db, userID, category.ID, entity.TransactionTypeExpense, "100.00", june)
	seedTransaction(t, db, userID, category.ID, entity.TransactionTypeExpense, "50.00", may)

	t.Run("filters by date range", func(t *testing.T) {
		start := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
		end := time.Date(2025, 6, 30, 23, 59, 59, 0, time.UTC)

		transactions, err := repo.FetchTransactions(ctx, adapter.LedgerFilter{
			UserID:    userID,
			StartDate: &start,
			EndDate:   &end,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(transactions) != 1 {
			t.Fatalf("expected 1 transaction, got %d", len(transactions))
		}
		if !transactions[0].Amount.Equal(decimal.RequireFromString("100.00")) {
			t.Errorf("expected amount 100.00, got %s", transactions[0].Amount)
		}
	})

	t.Run("returns newest first", func(t *testing.T) {
		transactions, err := repo.FetchTransactions(ctx, adapter.LedgerFilter{UserID: userID})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(transactions) != 2 {
			t.Fatalf("expected 2 transactions, got %d", len(transactions))
		}
		if !transactions[0].Date.After(transactions[1].Date) {
			t.Error("expected descending date order")
		}
	})

	t.Run("does not leak other users' transactions", func(t *testing.T) {
		transactions, err := repo.FetchTransactions(ctx, adapter.LedgerFilter{UserID: uuid.New()})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(transactions) != 0 {
			t.Errorf("expected no transactions for other user, got %d", len(transactions))
		}
	})
}

func TestLedgerRepository_FetchRecentExpenses(t *testing.T) {
	db := testDB(t)
	repo := NewLedgerRepository(db)
	ctx := context.Background()

	userID := seedUser(t, db)
	expenseCat := seedCategory(t, db, userID, "Transporte", entity.CategoryTypeExpense)
	incomeCat := seedCategory(t, db, userID, "Salário", entity.CategoryTypeIncome)

	base := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		seedTransaction(t, db, userID, expenseCat.ID, entity.TransactionTypeExpense, "10.00", base.AddDate(0, 0, i))
	}
	seedTransaction(t, db, userID, incomeCat.ID, entity.TransactionTypeIncome, "1000.00", base)

	t.Run("returns only expenses limited to window", func(t *testing.T) {
		expenses, err := repo.FetchRecentExpenses(ctx, userID, 3)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(expenses) != 3 {
			t.Fatalf("expected 3 expenses, got %d", len(expenses))
		}
		for _, e := range expenses {
			if e.Type != entity.TransactionTypeExpense {
				t.Errorf("expected only expenses, got %s", e.Type)
			}
		}
		// Most recent expense is the one dated June 5.
		if expenses[0].Date.Day() != 5 {
			t.Errorf("expected most recent first, got day %d", expenses[0].Date.Day())
		}
	})
}

func TestLedgerRepository_CountSince(t *testing.T) {
	db := testDB(t)
	repo := NewLedgerRepository(db)
	ctx := context.Background()

	userID := seedUser(t, db)
	category := seedCategory(t, db, userID, "Geral", entity.CategoryTypeExpense)

	seedTransaction(t, db, userID, category.ID, entity.TransactionTypeExpense, "10.00", time.Date(2025, 6, 18, 0, 0, 0, 0, time.UTC))
	seedTransaction(t, db, userID, category.ID, entity.TransactionTypeExpense, "10.00", time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC))

	count, err := repo.CountSince(ctx, userID, time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if count != 1 {
		t.Errorf("expected count 1, got %d", count)
	}
}

func TestLedgerRepository_FetchUnusedCategories(t *testing.T) {
	db := testDB(t)
	repo := NewLedgerRepository(db)
	ctx := context.Background()

	userID := seedUser(t, db)
	active := seedCategory(t, db, userID, "Lazer", entity.CategoryTypeExpense)
	stale := seedCategory(t, db, userID, "Educação", entity.CategoryTypeExpense)
	seedCategory(t, db, userID, "Nunca usada", entity.CategoryTypeExpense)

	since := time.Date(2025, 5, 21, 0, 0, 0, 0, time.UTC)
	// Recent usage keeps a category out of the result.
	seedTransaction(t, db, userID, active.ID, entity.TransactionTypeExpense, "10.00", time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC))
	// Historical usage only.
	seedTransaction(t, db, userID, stale.ID, entity.TransactionTypeExpense, "10.00", time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC))
	seedTransaction(t, db, userID, stale.ID, entity.TransactionTypeExpense, "10.00", time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC))

	unused, err := repo.FetchUnusedCategories(ctx, userID, since)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(unused) != 2 {
		t.Fatalf("expected 2 unused categories, got %d", len(unused))
	}

	byName := make(map[string]*entity.CategoryUsage, len(unused))
	for _, cu := range unused {
		byName[cu.Category.Name] = cu
	}

	if cu, ok := byName["Educação"]; !ok {
		t.Error("expected Educação in result")
	} else if cu.TransactionCount != 2 {
		t.Errorf("expected historical count 2, got %d", cu.TransactionCount)
	}
	if cu, ok := byName["Nunca usada"]; !ok {
		t.Error("expected Nunca usada in result")
	} else if cu.TransactionCount != 0 {
		t.Errorf("expected historical count 0, got %d", cu.TransactionCount)
	}
	if _, ok := byName["Lazer"]; ok {
		t.Error("expected recently used category excluded")
	}
}

func TestLedgerRepository_FetchGoal(t *testing.T) {
	db := testDB(t)
	repo := NewLedgerRepository(db)
	ctx := context.Background()

	userID := seedUser(t, db)

	t.Run("missing goal yields nil without error", func(t *testing.T) {
		goal, err := repo.FetchGoal(ctx, userID, 6, 2025)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if goal != nil {
			t.Errorf("expected nil goal, got %+v", goal)
		}
	})

	t.Run("returns the goal for the period", func(t *testing.T) {
		seeded := entity.NewMonthlyGoal(userID, 6, 2025, decimal.RequireFromString("5000.00"), decimal.RequireFromString("3000.00"))
		if err := db.Create(model.GoalFromEntity(seeded)).Error; err != nil {
			t.Fatalf("failed to seed goal: %v", err)
		}

		goal, err := repo.FetchGoal(ctx, userID, 6, 2025)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if goal == nil {
			t.Fatal("expected goal")
		}
		if !goal.Income.Equal(decimal.RequireFromString("5000.00")) {
			t.Errorf("expected income 5000.00, got %s", goal.Income)
		}
		if !goal.Expense.Equal(decimal.RequireFromString("3000.00")) {
			t.Errorf("expected expense 3000.00, got %s", goal.Expense)
		}
	})
}

func TestLedgerRepository_FetchWithCategories(t *testing.T) {
	db := testDB(t)
	repo := NewLedgerRepository(db)
	ctx := context.Background()

	userID := seedUser(t, db)
	category := seedCategory(t, db, userID, "Alimentação", entity.CategoryTypeExpense)
	seedTransaction(t, db, userID, category.ID, entity.TransactionTypeExpense, "42.00", time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC))

	result, err := repo.FetchWithCategories(ctx, adapter.LedgerFilter{UserID: userID})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(result) != 1 {
		t.Fatalf("expected 1 transaction, got %d", len(result))
	}
	if result[0].Category == nil {
		t.Fatal("expected category preloaded")
	}
	if result[0].Category.Name != "Alimentação" {
		t.Errorf("expected category name Alimentação, got %s", result[0].Category.Name)
	}
}
