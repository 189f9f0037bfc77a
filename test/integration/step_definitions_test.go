//go:build integration

// Package integration runs the API feature tests with Godog against a full
// server wired to in-memory infrastructure.
package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"os"
	"reflect"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/cucumber/godog"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/finantrack/backend/internal/application/adapter"
	"github.com/finantrack/backend/internal/application/usecase/auth"
	"github.com/finantrack/backend/internal/application/usecase/category"
	"github.com/finantrack/backend/internal/application/usecase/goal"
	"github.com/finantrack/backend/internal/application/usecase/notification"
	"github.com/finantrack/backend/internal/application/usecase/report"
	"github.com/finantrack/backend/internal/application/usecase/transaction"
	"github.com/finantrack/backend/internal/domain/entity"
	"github.com/finantrack/backend/internal/infra/server/router"
	"github.com/finantrack/backend/internal/integration/adapters"
	"github.com/finantrack/backend/internal/integration/cache"
	"github.com/finantrack/backend/internal/integration/email"
	"github.com/finantrack/backend/internal/integration/entrypoint/controller"
	"github.com/finantrack/backend/internal/integration/entrypoint/middleware"
	"github.com/finantrack/backend/internal/integration/persistence"
	"github.com/finantrack/backend/internal/integration/persistence/model"
	"github.com/finantrack/backend/test/integration/mock"
)

const testJWTSecret = "test-jwt-secret-key-for-testing-purposes"

// testNow pins the engine clock so notification content and report periods
// are stable across runs.
var testNow = time.Date(2025, 6, 20, 12, 0, 0, 0, time.UTC)

var testTokenService = adapters.NewTokenService(testJWTSecret, 15*time.Minute, 168*time.Hour)
var testEmailSender = email.NewMockEmailSender()

type testContext struct {
	uri               string
	headers           map[string]string
	client            *http.Client
	response          *response
	db                *mock.Db
	serverPort        int
	accessToken       string
	currentUserID     uuid.UUID
	currentUserEmail  string
	currentCategoryID uuid.UUID
	currentGoalID     uuid.UUID
	lastTransactionID uuid.UUID
	categoriesByType  map[entity.CategoryType]uuid.UUID
}

type response struct {
	status int
	body   any
}

var serverInit sync.Once
var testDB *mock.Db
var testServerPort int
var portInit sync.Once

func initializePort() {
	portInit.Do(func() {
		testServerPort = findAvailablePort()
		_ = os.Setenv("ENV", "test")
	})
}

// InitializeScenario registers the step definitions and scenario hooks.
func InitializeScenario(ctx *godog.ScenarioContext) {
	initializePort()

	test := &testContext{
		uri:        fmt.Sprintf("http://localhost:%d", testServerPort),
		client:     &http.Client{Timeout: 10 * time.Second},
		serverPort: testServerPort,
		db: mock.NewDb(map[string]any{
			"users":         &model.UserModel{},
			"categories":    &model.CategoryModel{},
			"transactions":  &model.TransactionModel{},
			"monthly_goals": &model.GoalModel{},
		}),
	}

	testDB = test.db

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		test.before()
		return ctx, nil
	})

	// Background steps
	ctx.Given(`^the API server is running$`, test.theAPIServerIsRunning)

	// Data setup steps
	ctx.Given(`^a user exists with email "([^"]*)"$`, test.aUserExistsWithEmail)
	ctx.Given(`^a user exists with email "([^"]*)" and password "([^"]*)"$`, test.aUserExistsWithEmailAndPassword)
	ctx.Given(`^the user is logged in$`, test.theUserIsLoggedIn)
	ctx.Given(`^a category exists with name "([^"]*)" and type "([^"]*)"$`, test.aCategoryExistsWithNameAndType)
	ctx.Given(`^a "([^"]*)" transaction of "([^"]*)" exists on "([^"]*)"$`, test.aTransactionExistsOn)
	ctx.Given(`^a monthly goal exists for (\d+)/(\d+) with income "([^"]*)" and expense "([^"]*)"$`, test.aMonthlyGoalExistsFor)

	// Request steps
	ctx.When(`^I send a "([^"]*)" request to "([^"]*)"$`, test.iSendARequestTo)
	ctx.When(`^I send a "([^"]*)" request to "([^"]*)" with body:$`, test.iSendARequestToWithBody)

	// Response assertion steps
	ctx.Then(`^the response status should be (\d+)$`, test.theResponseStatusShouldBe)
	ctx.Then(`^the response field "([^"]*)" should be "([^"]*)"$`, test.theResponseFieldShouldBe)
	ctx.Then(`^the response field "([^"]*)" should exist$`, test.theResponseFieldShouldExist)
	ctx.Then(`^the response field "([^"]*)" should start with "([^"]*)"$`, test.theResponseFieldShouldStartWith)
	ctx.Then(`^the response list "([^"]*)" should have (\d+) items$`, test.theResponseListShouldHaveItems)

	// Database assertion steps
	ctx.Then(`^the db should contain (\d+) objects in the "([^"]*)" table$`, test.theDbShouldContainObjectsInTheTable)

	// Email assertion steps
	ctx.Then(`^a digest email should have been sent to "([^"]*)"$`, test.aDigestEmailShouldHaveBeenSentTo)
}

func findAvailablePort() int {
	listener, err := net.Listen("tcp", ":0")
	if err != nil {
		panic(err)
	}
	defer listener.Close()
	return listener.Addr().(*net.TCPAddr).Port
}

func (t *testContext) before() {
	t.headers = make(map[string]string)
	t.accessToken = ""
	t.currentUserID = uuid.Nil
	t.currentUserEmail = ""
	t.currentCategoryID = uuid.Nil
	t.currentGoalID = uuid.Nil
	t.lastTransactionID = uuid.Nil
	t.categoriesByType = make(map[entity.CategoryType]uuid.UUID)
	t.response = nil

	if t.db != nil {
		_ = t.db.ClearDB()
	}
	_ = mock.ClearRedis(mock.NewRedis())
	testEmailSender.SentEmails = nil
}

func (t *testContext) startServer() {
	serverInit.Do(func() {
		go func() {
			userRepo := persistence.NewUserRepository(testDB.DbConn)
			categoryRepo := persistence.NewCategoryRepository(testDB.DbConn)
			transactionRepo := persistence.NewTransactionRepository(testDB.DbConn)
			goalRepo := persistence.NewGoalRepository(testDB.DbConn)
			ledgerRepo := persistence.NewLedgerRepository(testDB.DbConn)

			passwordService := adapters.NewPasswordService()
			clock := adapter.ClockFunc(func() time.Time { return testNow })
			notificationCache := cache.NewNotificationCache(mock.NewRedis())

			registerUseCase := auth.NewRegisterUserUseCase(userRepo, passwordService, testTokenService)
			loginUseCase := auth.NewLoginUserUseCase(userRepo, passwordService, testTokenService)

			createCategoryUseCase := category.NewCreateCategoryUseCase(categoryRepo)
			listCategoriesUseCase := category.NewListCategoriesUseCase(categoryRepo)
			updateCategoryUseCase := category.NewUpdateCategoryUseCase(categoryRepo)
			deleteCategoryUseCase := category.NewDeleteCategoryUseCase(categoryRepo)

			createTransactionUseCase := transaction.NewCreateTransactionUseCase(transactionRepo, categoryRepo)
			listTransactionsUseCase := transaction.NewListTransactionsUseCase(transactionRepo)
			updateTransactionUseCase := transaction.NewUpdateTransactionUseCase(transactionRepo, categoryRepo)
			deleteTransactionUseCase := transaction.NewDeleteTransactionUseCase(transactionRepo)

			setGoalUseCase := goal.NewSetGoalUseCase(goalRepo)
			listGoalsUseCase := goal.NewListGoalsUseCase(goalRepo)
			getGoalUseCase := goal.NewGetGoalUseCase(goalRepo)
			updateGoalUseCase := goal.NewUpdateGoalUseCase(goalRepo)
			deleteGoalUseCase := goal.NewDeleteGoalUseCase(goalRepo)

			summaryUseCase := report.NewGetSummaryUseCase(ledgerRepo, clock)
			monthlyReportUseCase := report.NewGetMonthlyReportUseCase(ledgerRepo)
			customReportUseCase := report.NewGetCustomPeriodReportUseCase(ledgerRepo)
			trendUseCase := report.NewGetMonthlyTrendUseCase(ledgerRepo, clock)
			budgetStatusUseCase := report.NewGetBudgetStatusUseCase(ledgerRepo)
			unusualExpensesUseCase := report.NewGetUnusualExpensesUseCase(ledgerRepo, 0, 0)

			getNotificationsUseCase := notification.NewGetNotificationsUseCase(ledgerRepo, notificationCache, clock, 0, 0, time.Minute)
			digestSender := email.NewDigestSender(testEmailSender)
			sendDigestUseCase := notification.NewSendDigestUseCase(userRepo, getNotificationsUseCase, digestSender)

			healthController := controller.NewHealthController(func() bool {
				return testDB != nil && testDB.DbConn != nil
			})
			authController := controller.NewAuthController(registerUseCase, loginUseCase)
			categoryController := controller.NewCategoryController(
				createCategoryUseCase,
				listCategoriesUseCase,
				updateCategoryUseCase,
				deleteCategoryUseCase,
			)
			transactionController := controller.NewTransactionController(
				createTransactionUseCase,
				listTransactionsUseCase,
				updateTransactionUseCase,
				deleteTransactionUseCase,
			)
			goalController := controller.NewGoalController(
				setGoalUseCase,
				listGoalsUseCase,
				getGoalUseCase,
				updateGoalUseCase,
				deleteGoalUseCase,
			)
			reportController := controller.NewReportController(
				summaryUseCase,
				monthlyReportUseCase,
				customReportUseCase,
				trendUseCase,
				budgetStatusUseCase,
				unusualExpensesUseCase,
			)
			notificationController := controller.NewNotificationController(getNotificationsUseCase, sendDigestUseCase)

			loginRateLimiter := middleware.NewRateLimiter()
			authMiddleware := middleware.NewAuthMiddleware(testTokenService)

			r := router.NewRouter(
				healthController,
				authController,
				categoryController,
				transactionController,
				goalController,
				reportController,
				notificationController,
				loginRateLimiter,
				authMiddleware,
			)
			engine := r.Setup("test")

			server := &http.Server{
				Addr:    fmt.Sprintf(":%d", testServerPort),
				Handler: engine,
			}
			_ = server.ListenAndServe()
		}()
	})

	// Wait for the server to come up
	for i := 0; i < 50; i++ {
		resp, err := http.Get(t.uri + "/health")
		if err == nil && resp.StatusCode == http.StatusOK {
			resp.Body.Close()
			return
		}
		time.Sleep(100 * time.Millisecond)
	}
}

func (t *testContext) theAPIServerIsRunning() error {
	t.startServer()
	return nil
}

func (t *testContext) aUserExistsWithEmail(email string) error {
	return t.createUser(email, "DefaultPass123!", "Test User")
}

func (t *testContext) aUserExistsWithEmailAndPassword(email, password string) error {
	return t.createUser(email, password, "Test User")
}

func (t *testContext) createUser(email, password, name string) error {
	user := entity.NewUser(email, name, hashPassword(password))
	t.currentUserID = user.ID
	t.currentUserEmail = email

	return t.db.DbConn.Create(model.UserFromEntity(user)).Error
}

func hashPassword(password string) string {
	hashedBytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		panic(fmt.Sprintf("failed to hash password: %v", err))
	}
	return string(hashedBytes)
}

func (t *testContext) theUserIsLoggedIn() error {
	if t.currentUserID == uuid.Nil {
		return errors.New("no user created in this scenario")
	}

	pair, err := testTokenService.GenerateTokenPair(context.Background(), t.currentUserID, t.currentUserEmail)
	if err != nil {
		return fmt.Errorf("failed to generate tokens: %w", err)
	}
	t.accessToken = pair.AccessToken
	return nil
}

func (t *testContext) aCategoryExistsWithNameAndType(name, categoryType string) error {
	cat := entity.NewCategory(t.currentUserID, name, "", entity.CategoryType(categoryType))
	if err := t.db.DbConn.Create(model.CategoryFromEntity(cat)).Error; err != nil {
		return err
	}

	t.currentCategoryID = cat.ID
	t.categoriesByType[cat.Type] = cat.ID
	return nil
}

func (t *testContext) aTransactionExistsOn(transactionType, amount, date string) error {
	txType := entity.TransactionType(transactionType)
	categoryType := entity.CategoryTypeExpense
	if txType == entity.TransactionTypeIncome {
		categoryType = entity.CategoryTypeIncome
	}

	categoryID, ok := t.categoriesByType[categoryType]
	if !ok {
		name := "Despesas"
		if categoryType == entity.CategoryTypeIncome {
			name = "Receitas"
		}
		if err := t.aCategoryExistsWithNameAndType(name, string(categoryType)); err != nil {
			return err
		}
		categoryID = t.categoriesByType[categoryType]
	}

	parsedDate, err := time.Parse("2006-01-02", date)
	if err != nil {
		return fmt.Errorf("invalid date %q: %w", date, err)
	}
	parsedAmount, err := decimal.NewFromString(amount)
	if err != nil {
		return fmt.Errorf("invalid amount %q: %w", amount, err)
	}

	tx := entity.NewTransaction(t.currentUserID, parsedDate, "seeded", parsedAmount, txType, categoryID)
	if err := t.db.DbConn.Create(model.TransactionFromEntity(tx)).Error; err != nil {
		return err
	}

	t.lastTransactionID = tx.ID
	return nil
}

func (t *testContext) aMonthlyGoalExistsFor(month, year int, income, expense string) error {
	parsedIncome, err := decimal.NewFromString(income)
	if err != nil {
		return fmt.Errorf("invalid income %q: %w", income, err)
	}
	parsedExpense, err := decimal.NewFromString(expense)
	if err != nil {
		return fmt.Errorf("invalid expense %q: %w", expense, err)
	}

	monthlyGoal := entity.NewMonthlyGoal(t.currentUserID, month, year, parsedIncome, parsedExpense)
	if err := t.db.DbConn.Create(model.GoalFromEntity(monthlyGoal)).Error; err != nil {
		return err
	}

	t.currentGoalID = monthlyGoal.ID
	return nil
}

func (t *testContext) iSendARequestTo(method, path string) error {
	return t.executeRequest(method, t.replacePlaceholders(path), nil)
}

func (t *testContext) iSendARequestToWithBody(method, path string, body *godog.DocString) error {
	var payload []byte
	if body != nil && body.Content != "" {
		payload = []byte(t.replacePlaceholders(body.Content))
	}
	return t.executeRequest(method, t.replacePlaceholders(path), payload)
}

func (t *testContext) replacePlaceholders(content string) string {
	content = strings.ReplaceAll(content, "{{category_id}}", t.currentCategoryID.String())
	content = strings.ReplaceAll(content, "{{goal_id}}", t.currentGoalID.String())
	content = strings.ReplaceAll(content, "{{transaction_id}}", t.lastTransactionID.String())
	content = strings.ReplaceAll(content, "{{user_id}}", t.currentUserID.String())
	return content
}

func (t *testContext) executeRequest(method, path string, payload []byte) error {
	var req *http.Request
	var err error

	url := t.uri + path

	if payload != nil {
		req, err = http.NewRequest(method, url, bytes.NewReader(payload))
	} else {
		req, err = http.NewRequest(method, url, nil)
	}
	if err != nil {
		return err
	}

	req.Header.Set("Content-Type", "application/json")

	if t.accessToken != "" {
		req.Header.Set("Authorization", "Bearer "+t.accessToken)
	}
	for key, value := range t.headers {
		req.Header.Set(key, value)
	}

	resp, err := t.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	t.response = &response{
		status: resp.StatusCode,
	}

	var responseBody map[string]any
	if err := json.Unmarshal(bodyBytes, &responseBody); err != nil {
		t.response.body = string(bodyBytes)
		return nil
	}
	t.response.body = responseBody

	// Capture created resource IDs for later placeholder substitution. The
	// response shape tells the resource kind apart.
	if idStr, ok := responseBody["id"].(string); ok {
		if id, err := uuid.Parse(idStr); err == nil {
			switch {
			case hasKey(responseBody, "is_active"):
				t.currentCategoryID = id
			case hasKey(responseBody, "month"):
				t.currentGoalID = id
			case hasKey(responseBody, "category_id"):
				t.lastTransactionID = id
			}
		}
	}

	return nil
}

func hasKey(body map[string]any, key string) bool {
	_, ok := body[key]
	return ok
}

func (t *testContext) theResponseStatusShouldBe(expectedStatus int) error {
	if t.response == nil {
		return errors.New("no response received")
	}
	if t.response.status != expectedStatus {
		return fmt.Errorf("expected status %d, got %d (body: %v)", expectedStatus, t.response.status, t.response.body)
	}
	return nil
}

func (t *testContext) theResponseFieldShouldBe(field, expectedValue string) error {
	value, err := t.responseField(field)
	if err != nil {
		return err
	}

	expectedValue = t.replacePlaceholders(expectedValue)
	actualValue := fmt.Sprintf("%v", value)
	if actualValue != expectedValue {
		return fmt.Errorf("field '%s' expected '%s', got '%s'", field, expectedValue, actualValue)
	}
	return nil
}

func (t *testContext) theResponseFieldShouldExist(field string) error {
	_, err := t.responseField(field)
	return err
}

func (t *testContext) theResponseFieldShouldStartWith(field, prefix string) error {
	value, err := t.responseField(field)
	if err != nil {
		return err
	}

	actualValue := fmt.Sprintf("%v", value)
	if !strings.HasPrefix(actualValue, prefix) {
		return fmt.Errorf("field '%s' expected prefix '%s', got '%s'", field, prefix, actualValue)
	}
	return nil
}

func (t *testContext) theResponseListShouldHaveItems(field string, expectedCount int) error {
	value, err := t.responseField(field)
	if err != nil {
		return err
	}

	list, ok := value.([]any)
	if !ok {
		return fmt.Errorf("field '%s' is not a list: %v", field, value)
	}
	if len(list) != expectedCount {
		return fmt.Errorf("field '%s' expected %d items, got %d", field, expectedCount, len(list))
	}
	return nil
}

func (t *testContext) responseField(dotSeparatedField string) (any, error) {
	if t.response == nil {
		return nil, errors.New("no response received")
	}

	value := getFieldValue(t.response.body, dotSeparatedField)
	if value == nil {
		return nil, fmt.Errorf("field '%s' not found in response: %v", dotSeparatedField, t.response.body)
	}
	return value, nil
}

// getFieldValue walks a dot-separated path through nested JSON objects.
// Numeric path segments index into arrays.
func getFieldValue(object any, dotSeparatedField string) any {
	current := object
	for _, segment := range strings.Split(dotSeparatedField, ".") {
		switch v := current.(type) {
		case map[string]any:
			value, ok := v[segment]
			if !ok {
				return nil
			}
			current = value
		case []any:
			index, err := strconv.Atoi(segment)
			if err != nil || index < 0 || index >= len(v) {
				return nil
			}
			current = v[index]
		default:
			return nil
		}
	}
	return current
}

func (t *testContext) theDbShouldContainObjectsInTheTable(quantity int, table string) error {
	entityModel, ok := t.db.GetModel(table)
	if !ok {
		return fmt.Errorf("table '%s' not found in models", table)
	}

	entityType := reflect.TypeOf(entityModel).Elem()
	entitySlicePtr := reflect.New(reflect.SliceOf(entityType))

	result := t.db.DbConn.Unscoped().Find(entitySlicePtr.Interface())
	if result.Error != nil && !errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return result.Error
	}

	count := entitySlicePtr.Elem().Len()
	if count != quantity {
		return fmt.Errorf("expected %d objects in '%s', got %d", quantity, table, count)
	}
	return nil
}

func (t *testContext) aDigestEmailShouldHaveBeenSentTo(recipient string) error {
	if len(testEmailSender.SentEmails) == 0 {
		return errors.New("no digest emails were sent")
	}

	last := testEmailSender.SentEmails[len(testEmailSender.SentEmails)-1]
	if last.To != recipient {
		return fmt.Errorf("expected digest sent to '%s', got '%s'", recipient, last.To)
	}
	return nil
}
