// Package steps provides step definitions for BDD integration tests.
package steps

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"regexp"
	"strconv"
	"strings"

	"github.com/cucumber/godog"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/toolbox/backend/config"
	"github.com/toolbox/backend/internal/infra/dependency"
	"github.com/toolbox/backend/internal/integration/email"
	"github.com/toolbox/backend/internal/integration/persistence/model"
	"github.com/toolbox/backend/test/integration/mock"
)

const testJWTSecret = "test-jwt-secret-key-for-testing-purposes"

var (
	placeholderRegex = regexp.MustCompile(`\{([a-z_]+)\}`)
	resetTokenRegex  = regexp.MustCompile(`token=([a-f0-9]+)`)
)

// TestContext holds the test state for each scenario.
type TestContext struct {
	// HTTP
	server       *httptest.Server
	injector     *dependency.Injector
	response     *http.Response
	responseBody []byte

	// Request building
	requestHeaders map[string]string

	// Auth
	accessToken string

	// Values captured from earlier responses, substituted for {name} in paths and bodies
	vars map[string]string

	db    *mock.Db
	cache *redis.Client
}

// contextKey is used to store TestContext in context.Context.
type contextKey struct{}

// GetTestContext retrieves the TestContext from context.
func GetTestContext(ctx context.Context) *TestContext {
	if tc, ok := ctx.Value(contextKey{}).(*TestContext); ok {
		return tc
	}
	return nil
}

// SetTestContext stores the TestContext in context.
func SetTestContext(ctx context.Context, tc *TestContext) context.Context {
	return context.WithValue(ctx, contextKey{}, tc)
}

// InitializeTestSuite sets up resources before any scenarios run.
func InitializeTestSuite(ctx *godog.TestSuiteContext) {
	ctx.BeforeSuite(func() {
		gin.SetMode(gin.TestMode)
	})
}

func testConfig() *config.Config {
	cfg := config.Load()
	cfg.Server.Environment = "test"
	cfg.JWT.Secret = testJWTSecret
	cfg.Email.ResendAPIKey = ""
	cfg.Email.AppBaseURL = "http://toolbox.test"
	cfg.Google.ClientID = ""
	cfg.Gemini.APIKey = ""
	cfg.Scheduler.Enabled = false
	cfg.Redis.KeyPrefix = "it:"
	return cfg
}

// InitializeScenario registers all step definitions.
func InitializeScenario(ctx *godog.ScenarioContext) {
	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		tc := &TestContext{
			requestHeaders: make(map[string]string),
			vars:           make(map[string]string),
			db:             mock.NewDb(model.All()),
			cache:          mock.NewRedis(),
		}
		if err := tc.db.ClearDB(); err != nil {
			return ctx, err
		}
		if err := mock.ClearRedis(tc.cache); err != nil {
			return ctx, err
		}

		injector, err := dependency.NewInjector(testConfig(), tc.db.DbConn, tc.cache, dependency.Options{PasswordCost: 4})
		if err != nil {
			return ctx, fmt.Errorf("failed to wire application: %w", err)
		}
		tc.injector = injector
		tc.server = httptest.NewServer(injector.Router.Setup("test"))

		return SetTestContext(ctx, tc), nil
	})

	ctx.After(func(ctx context.Context, sc *godog.Scenario, err error) (context.Context, error) {
		if tc := GetTestContext(ctx); tc != nil {
			if tc.server != nil {
				tc.server.Close()
			}
			if tc.injector != nil {
				tc.injector.Close()
			}
		}
		return ctx, nil
	})

	registerSetupSteps(ctx)
	registerAPISteps(ctx)
	registerResponseSteps(ctx)
	registerEmailSteps(ctx)
}

// registerSetupSteps registers session and state setup steps.
func registerSetupSteps(ctx *godog.ScenarioContext) {
	ctx.Step(`^the API server is running$`, theAPIServerIsRunning)
	ctx.Step(`^I am registered as "([^"]*)" with password "([^"]*)"$`, iAmRegisteredAsWithPassword)
	ctx.Step(`^I use the tokens from the response$`, iUseTheTokensFromTheResponse)
	ctx.Step(`^I am signed out$`, iAmSignedOut)
	ctx.Step(`^I remember the response field "([^"]*)" as "([^"]*)"$`, iRememberTheResponseFieldAs)
}

// registerAPISteps registers HTTP request steps.
func registerAPISteps(ctx *godog.ScenarioContext) {
	ctx.Step(`^I send a "([^"]*)" request to "([^"]*)"$`, iSendARequestTo)
	ctx.Step(`^I send a "([^"]*)" request to "([^"]*)" with body:$`, iSendARequestToWithBody)
	ctx.Step(`^I set header "([^"]*)" to "([^"]*)"$`, iSetHeaderTo)
}

// registerResponseSteps registers response validation steps.
func registerResponseSteps(ctx *godog.ScenarioContext) {
	ctx.Step(`^the response status should be (\d+)$`, theResponseStatusShouldBe)
	ctx.Step(`^the response should be JSON$`, theResponseShouldBeJSON)
	ctx.Step(`^the response should contain "([^"]*)"$`, theResponseShouldContain)
	ctx.Step(`^the response field "([^"]*)" should be "([^"]*)"$`, theResponseFieldShouldBe)
	ctx.Step(`^the response field "([^"]*)" should exist$`, theResponseFieldShouldExist)
	ctx.Step(`^the db should contain (\d+) objects in the "([^"]*)" table$`, theDbShouldContainObjectsInTheTable)
}

// registerEmailSteps registers email queue steps.
func registerEmailSteps(ctx *godog.ScenarioContext) {
	ctx.Step(`^the email queue is processed$`, theEmailQueueIsProcessed)
	ctx.Step(`^an email with subject "([^"]*)" should have been sent to "([^"]*)"$`, anEmailWithSubjectShouldHaveBeenSentTo)
	ctx.Step(`^I remember the reset token sent to "([^"]*)"$`, iRememberTheResetTokenSentTo)
}

func testContext(ctx context.Context) (*TestContext, error) {
	tc := GetTestContext(ctx)
	if tc == nil {
		return nil, fmt.Errorf("test context not found")
	}
	return tc, nil
}

// Setup steps

func theAPIServerIsRunning(ctx context.Context) error {
	tc, err := testContext(ctx)
	if err != nil {
		return err
	}
	if tc.server == nil {
		return fmt.Errorf("test server is not running")
	}
	return nil
}

func iAmRegisteredAsWithPassword(ctx context.Context, email, password string) (context.Context, error) {
	tc, err := testContext(ctx)
	if err != nil {
		return ctx, err
	}

	body, _ := json.Marshal(map[string]string{
		"email":    email,
		"name":     "Test User",
		"password": password,
	})
	if err := tc.send(http.MethodPost, "/api/v1/auth/register", body); err != nil {
		return ctx, err
	}
	if tc.response.StatusCode != http.StatusCreated {
		return ctx, fmt.Errorf("registration failed with %d: %s", tc.response.StatusCode, tc.responseBody)
	}
	return ctx, tc.useTokens()
}

func iUseTheTokensFromTheResponse(ctx context.Context) (context.Context, error) {
	tc, err := testContext(ctx)
	if err != nil {
		return ctx, err
	}
	return ctx, tc.useTokens()
}

func iAmSignedOut(ctx context.Context) (context.Context, error) {
	tc, err := testContext(ctx)
	if err != nil {
		return ctx, err
	}
	tc.accessToken = ""
	return ctx, nil
}

func iRememberTheResponseFieldAs(ctx context.Context, field, name string) (context.Context, error) {
	tc, err := testContext(ctx)
	if err != nil {
		return ctx, err
	}
	value, err := tc.field(field)
	if err != nil {
		return ctx, err
	}
	tc.vars[name] = fmt.Sprintf("%v", value)
	return ctx, nil
}

// Request steps

func iSendARequestTo(ctx context.Context, method, endpoint string) (context.Context, error) {
	tc, err := testContext(ctx)
	if err != nil {
		return ctx, err
	}
	return ctx, tc.send(method, endpoint, nil)
}

func iSendARequestToWithBody(ctx context.Context, method, endpoint string, body *godog.DocString) (context.Context, error) {
	tc, err := testContext(ctx)
	if err != nil {
		return ctx, err
	}
	return ctx, tc.send(method, endpoint, []byte(tc.expand(body.Content)))
}

func iSetHeaderTo(ctx context.Context, header, value string) (context.Context, error) {
	tc, err := testContext(ctx)
	if err != nil {
		return ctx, err
	}
	tc.requestHeaders[header] = value
	return ctx, nil
}

// Response steps

func theResponseStatusShouldBe(ctx context.Context, expectedStatus int) error {
	tc, err := testContext(ctx)
	if err != nil {
		return err
	}
	if tc.response == nil {
		return fmt.Errorf("no response received")
	}
	if tc.response.StatusCode != expectedStatus {
		return fmt.Errorf("expected status %d, got %d. Body: %s", expectedStatus, tc.response.StatusCode, string(tc.responseBody))
	}
	return nil
}

func theResponseShouldBeJSON(ctx context.Context) error {
	tc, err := testContext(ctx)
	if err != nil {
		return err
	}
	var js json.RawMessage
	if err := json.Unmarshal(tc.responseBody, &js); err != nil {
		return fmt.Errorf("response is not valid JSON: %w", err)
	}
	return nil
}

func theResponseShouldContain(ctx context.Context, expected string) error {
	tc, err := testContext(ctx)
	if err != nil {
		return err
	}
	if !strings.Contains(string(tc.responseBody), expected) {
		return fmt.Errorf("response does not contain '%s'. Body: %s", expected, string(tc.responseBody))
	}
	return nil
}

func theResponseFieldShouldBe(ctx context.Context, field, expected string) error {
	tc, err := testContext(ctx)
	if err != nil {
		return err
	}
	value, err := tc.field(field)
	if err != nil {
		return err
	}
	if actual := fmt.Sprintf("%v", value); actual != tc.expand(expected) {
		return fmt.Errorf("field '%s' expected '%s', got '%s'", field, expected, actual)
	}
	return nil
}

func theResponseFieldShouldExist(ctx context.Context, field string) error {
	tc, err := testContext(ctx)
	if err != nil {
		return err
	}
	_, err = tc.field(field)
	return err
}

func theDbShouldContainObjectsInTheTable(ctx context.Context, expected int, table string) error {
	tc, err := testContext(ctx)
	if err != nil {
		return err
	}
	count, err := tc.db.Count(table)
	if err != nil {
		return err
	}
	if count != int64(expected) {
		return fmt.Errorf("expected %d rows in %s, got %d", expected, table, count)
	}
	return nil
}

// Email steps

func theEmailQueueIsProcessed(ctx context.Context) (context.Context, error) {
	tc, err := testContext(ctx)
	if err != nil {
		return ctx, err
	}
	tc.injector.EmailWorker.ProcessNow(ctx)
	return ctx, nil
}

func anEmailWithSubjectShouldHaveBeenSentTo(ctx context.Context, subject, to string) error {
	tc, err := testContext(ctx)
	if err != nil {
		return err
	}
	sender, ok := tc.injector.EmailSender.(*email.MockEmailSender)
	if !ok {
		return fmt.Errorf("email sender is not the mock sender")
	}
	for _, sent := range sender.SentEmails() {
		if sent.To == to && sent.Subject == subject {
			return nil
		}
	}
	return fmt.Errorf("no email %q sent to %s (sent: %d)", subject, to, len(sender.SentEmails()))
}

func iRememberTheResetTokenSentTo(ctx context.Context, to string) (context.Context, error) {
	tc, err := testContext(ctx)
	if err != nil {
		return ctx, err
	}
	sender, ok := tc.injector.EmailSender.(*email.MockEmailSender)
	if !ok {
		return ctx, fmt.Errorf("email sender is not the mock sender")
	}
	sent := sender.SentEmails()
	for i := len(sent) - 1; i >= 0; i-- {
		if sent[i].To != to {
			continue
		}
		if m := resetTokenRegex.FindStringSubmatch(sent[i].Text); m != nil {
			tc.vars["reset_token"] = m[1]
			return ctx, nil
		}
	}
	return ctx, fmt.Errorf("no reset email sent to %s", to)
}

// Helpers

func (tc *TestContext) send(method, endpoint string, body []byte) error {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req, err := http.NewRequest(method, tc.server.URL+tc.expand(endpoint), reader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for key, value := range tc.requestHeaders {
		req.Header.Set(key, value)
	}
	if tc.accessToken != "" {
		req.Header.Set("Authorization", "Bearer "+tc.accessToken)
	}

	resp, err := tc.server.Client().Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	tc.response = resp
	tc.responseBody, err = io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}
	return nil
}

func (tc *TestContext) useTokens() error {
	access, err := tc.field("access_token")
	if err != nil {
		return err
	}
	refresh, err := tc.field("refresh_token")
	if err != nil {
		return err
	}
	tc.accessToken = fmt.Sprintf("%v", access)
	tc.vars["access_token"] = tc.accessToken
	tc.vars["refresh_token"] = fmt.Sprintf("%v", refresh)
	return nil
}

// expand substitutes {name} with remembered values; unknown names are left as-is.
func (tc *TestContext) expand(s string) string {
	return placeholderRegex.ReplaceAllStringFunc(s, func(m string) string {
		if v, ok := tc.vars[m[1:len(m)-1]]; ok {
			return v
		}
		return m
	})
}

// field resolves a dotted path such as "groups.0.items.1.name" in the response body.
func (tc *TestContext) field(path string) (any, error) {
	var current any
	if err := json.Unmarshal(tc.responseBody, &current); err != nil {
		return nil, fmt.Errorf("failed to parse response JSON: %w", err)
	}

	for _, part := range strings.Split(path, ".") {
		switch node := current.(type) {
		case map[string]any:
			value, ok := node[part]
			if !ok {
				return nil, fmt.Errorf("field '%s' not found in response: %s", path, tc.responseBody)
			}
			current = value
		case []any:
			idx, err := strconv.Atoi(part)
			if err != nil || idx < 0 || idx >= len(node) {
				return nil, fmt.Errorf("index '%s' of '%s' out of range", part, path)
			}
			current = node[idx]
		default:
			return nil, fmt.Errorf("field '%s' not found in response", path)
		}
	}
	return current, nil
}
