package integration_test

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/docker/go-connections/nat"
	"github.com/google/uuid"
	_ "github.com/go-sql-driver/mysql"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"golang.org/x/crypto/bcrypt"

	"github.com/PrVille/json-mock-data-api-sub000/internal/app"
	"github.com/PrVille/json-mock-data-api-sub000/internal/config"
	"github.com/PrVille/json-mock-data-api-sub000/internal/database"
	"github.com/PrVille/json-mock-data-api-sub000/internal/models"
	"github.com/PrVille/json-mock-data-api-sub000/internal/services"
	"github.com/PrVille/json-mock-data-api-sub000/tests/helpers"
)

// TestWithMariaDB runs the whole API against a real MariaDB container
func TestWithMariaDB(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	ctx := context.Background()

	image := os.Getenv("DB_IMAGE")
	if image == "" {
		image = "mariadb:11"
	}

	mariadbContainer, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        image,
			ExposedPorts: []string{"3306/tcp"},
			Env: map[string]string{
				"MYSQL_ROOT_PASSWORD": "rootpass",
				"MYSQL_DATABASE":      "testdb",
				"MYSQL_USER":          "testuser",
				"MYSQL_PASSWORD":      "testpass",
			},
			WaitingFor: wait.ForLog("ready for connections").WithStartupTimeout(60 * time.Second),
		},
		Started: true,
	})
	if err != nil {
		t.Fatalf("Failed to start MariaDB container: %v", err)
	}
	defer func() {
		if err := mariadbContainer.Terminate(ctx); err != nil {
			t.Logf("Failed to terminate MariaDB container: %v", err)
		}
	}()

	host, err := mariadbContainer.Host(ctx)
	if err != nil {
		t.Fatalf("Failed to get container host: %v", err)
	}
	port, err := mariadbContainer.MappedPort(ctx, nat.Port("3306/tcp"))
	if err != nil {
		t.Fatalf("Failed to get container port: %v", err)
	}

	waitForMySQL(t, host, port.Port())

	cfg := &config.Config{
		DBType:            "mysql",
		DBHost:            host,
		DBPort:            port.Port(),
		DBDatabase:        "testdb",
		DBUser:            "testuser",
		DBPassword:        "testpass",
		DBConnectionLimit: 5,
		JWTSecret:         "integration-test-secret",
		BcryptCost:        bcrypt.MinCost,
		DefaultAccountID:  uuid.NewString(),
	}

	db, err := database.Connect(cfg)
	if err != nil {
		t.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.Close(db)

	if err := database.AutoMigrate(db); err != nil {
		t.Fatalf("Failed to run migrations: %v", err)
	}

	sandbox := models.ApiAccount{
		ID:           cfg.DefaultAccountID,
		Email:        "default@example.com",
		PasswordHash: "not-a-real-hash",
	}
	if err := db.Create(&sandbox).Error; err != nil {
		t.Fatalf("Failed to create default account: %v", err)
	}

	srv := app.New(cfg, db, app.Options{})

	t.Run("SignUpAndSandboxLifecycle", func(t *testing.T) {
		account := helpers.SignUpAccount(t, srv, "it@example.com", "password123")

		resp := helpers.DoJSON(t, srv, "GET", "/api/account/"+account.ID+"/resources", nil, account.Token)
		helpers.AssertStatus(t, resp, 200)
		var res services.AccountResources
		helpers.ParseJSON(t, resp, &res)
		if res.Users != 10 || res.Posts != 100 || res.Comments != 250 {
			t.Fatalf("Expected the seeded counts, got %+v", res)
		}

		resp = helpers.DoJSON(t, srv, "DELETE", "/api/account/"+account.ID+"/resources", nil, account.Token)
		helpers.AssertStatus(t, resp, 200)

		resp = helpers.DoJSON(t, srv, "POST", "/api/account/"+account.ID+"/resources", nil, account.Token)
		helpers.AssertStatus(t, resp, 200)
		helpers.ParseJSON(t, resp, &res)
		if res.Users != 10 || res.Posts != 100 || res.Comments != 250 {
			t.Fatalf("Expected reset to restore the seed batch, got %+v", res)
		}
	})

	t.Run("CrudRoundTrip", func(t *testing.T) {
		account := helpers.SignUpAccount(t, srv, "crud@example.com", "password123")

		resp := helpers.DoJSON(t, srv, "POST", "/api/users", map[string]string{
			"username":  "integration",
			"email":     "integration@example.com",
			"firstName": "Inte",
			"lastName":  "Gration",
		}, account.Token)
		helpers.AssertStatus(t, resp, 200)
		var user models.PublicUser
		helpers.ParseJSON(t, resp, &user)

		resp = helpers.DoJSON(t, srv, "POST", "/api/posts", map[string]string{
			"title":   "Integration post",
			"content": "Written against a real database.",
			"userId":  user.ID,
		}, account.Token)
		helpers.AssertStatus(t, resp, 200)
		var post models.PublicPost
		helpers.ParseJSON(t, resp, &post)

		resp = helpers.DoJSON(t, srv, "DELETE", "/api/users/"+user.ID, nil, account.Token)
		helpers.AssertStatus(t, resp, 200)

		// The post went with its owner
		resp = helpers.DoJSON(t, srv, "GET", "/api/posts/"+post.ID, nil, account.Token)
		helpers.AssertStatus(t, resp, 400)
	})

	t.Run("TenantIsolation", func(t *testing.T) {
		a := helpers.SignUpAccount(t, srv, "iso-a@example.com", "password123")
		b := helpers.SignUpAccount(t, srv, "iso-b@example.com", "password123")

		resp := helpers.DoJSON(t, srv, "GET", "/api/users?take=1", nil, a.Token)
		helpers.AssertStatus(t, resp, 200)
		var page struct {
			Data []models.PublicUser `json:"data"`
		}
		helpers.ParseJSON(t, resp, &page)
		if len(page.Data) != 1 {
			t.Fatalf("Expected one user, got %d", len(page.Data))
		}

		// Tenant A's id does not resolve for tenant B
		resp = helpers.DoJSON(t, srv, "GET", "/api/users/"+page.Data[0].ID, nil, b.Token)
		helpers.AssertStatus(t, resp, 400)
	})
}

// waitForMySQL polls the server until it accepts real connections; the log
// line alone races the final restart of the MariaDB entrypoint.
func waitForMySQL(t *testing.T, host, port string) {
	t.Helper()
	dsn := fmt.Sprintf("testuser:testpass@tcp(%s:%s)/testdb", host, port)
	deadline := time.Now().Add(60 * time.Second)
	for time.Now().Before(deadline) {
		conn, err := sql.Open("mysql", dsn)
		if err == nil {
			pingErr := conn.Ping()
			conn.Close()
			if pingErr == nil {
				return
			}
		}
		time.Sleep(time.Second)
	}
	t.Fatal("MariaDB did not become ready in time")
}
