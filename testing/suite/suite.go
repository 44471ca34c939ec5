package suite

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"github.com/redis/go-redis/v9"
)

const (
	expireDuration  = 600
	maxWaitDuration = 120 * time.Second
)

const (
	redisPort  = "6379/tcp"
	redisImage = "redis"
	redisTag   = "alpine"
)

// container is shared by every test of a package. Run purges it; expireDuration is the fallback.
var container struct {
	once     sync.Once
	pool     *dockertest.Pool
	resource *dockertest.Resource
	addr     string
	err      error
}

type Suite struct {
	*testing.T
	Logger *slog.Logger

	Storage *redis.Client
}

// New returns a client to an empty Redis database. The first call of a test binary starts the container.
func New(t *testing.T) (context.Context, *Suite) {
	t.Helper()

	if testing.Short() {
		t.Skip("skipping redis suite in short mode")
	}

	ctx, cancel := context.WithTimeout(context.Background(), maxWaitDuration)
	t.Cleanup(cancel)

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))

	container.once.Do(func() {
		container.pool, container.resource, container.err = startRedis(ctx)
		if container.err == nil {
			container.addr = container.resource.GetHostPort(redisPort)
		}
	})

	if container.err != nil {
		t.Fatalf("could not start redis: %v", container.err)
	}

	redisClient := redis.NewClient(&redis.Options{
		Addr: container.addr,
	})

	t.Cleanup(func() {
		_ = redisClient.Close()
	})

	if err := redisClient.FlushDB(ctx).Err(); err != nil {
		t.Fatalf("could not flush database: %v", err)
	}

	return ctx, &Suite{
		T:       t,
		Logger:  logger,
		Storage: redisClient,
	}
}

// Run executes the tests of a package and purges the shared container afterwards. Use it from TestMain.
func Run(m *testing.M) int {
	code := m.Run()

	if err := Purge(); err != nil {
		fmt.Fprintf(os.Stderr, "could not purge redis container: %v\n", err)

		if code == 0 {
			code = 1
		}
	}

	return code
}

// Purge removes the shared container. It is a no-op when no test started one; New must not be called after it.
func Purge() error {
	if container.pool == nil || container.resource == nil {
		return nil
	}

	if err := container.pool.Purge(container.resource); err != nil {
		return fmt.Errorf("could not purge resource: %w", err)
	}

	container.resource = nil

	return nil
}

func startRedis(ctx context.Context) (*dockertest.Pool, *dockertest.Resource, error) {
	pool, err := dockertest.NewPool("")
	if err != nil {
		return nil, nil, fmt.Errorf("could not connect to docker: %w", err)
	}

	// pulls an image, creates a container based on it and runs it
	resource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Repository: redisImage,
		Tag:        redisTag,
	}, func(config *docker.HostConfig) {
		// set AutoRemove to true so that stopped container goes away by itself
		config.AutoRemove = true
		config.RestartPolicy = docker.RestartPolicy{Name: "no"}
	})
	if err != nil {
		return nil, nil, fmt.Errorf("could not start resource: %w", err)
	}

	// never returns error
	_ = resource.Expire(expireDuration)

	redisHost := resource.GetHostPort(redisPort)

	// exponential backoff-retry, because the application in the container might not be ready to accept connections yet
	pool.MaxWait = maxWaitDuration

	if err = pool.Retry(func() error {
		client := redis.NewClient(&redis.Options{
			Addr: redisHost,
		})
		defer client.Close()

		return client.Ping(ctx).Err()
	}); err != nil {
		if purgeErr := pool.Purge(resource); purgeErr != nil {
			return nil, nil, fmt.Errorf("could not purge resource: %w", purgeErr)
		}

		return nil, nil, fmt.Errorf("could not connect to redis: %w", err)
	}

	return pool, resource, nil
}
