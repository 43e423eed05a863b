package config

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// configEnvKeys are all environment variables read by Load. setupTestEnv
// clears them so values set by a previous subtest (godotenv.Load writes file
// values into the process environment) do not leak into the next one.
var configEnvKeys = []string{
	"ENV", "PORT", "MONGO_URI", "MONGO_DB", "JWT_SECRET", "TOKEN_EXPIRY_HOURS",
	"FRONTEND_URL", "UPLOAD_DIR", "SMTP_HOST", "SMTP_PORT", "SMTP_USER",
	"SMTP_PASS", "SMTP_FROM", "GOOGLE_CLIENT_ID", "GOOGLE_CLIENT_SECRET",
	"GOOGLE_REDIRECT_URL",
}

// setupTestEnv creates a temporary directory for config files and changes the working directory to it.
// It returns a cleanup function that should be deferred by the caller.
func setupTestEnv(t *testing.T) func() {
	t.Helper()

	tempDir := t.TempDir()
	configDir := filepath.Join(tempDir, "config")
	err := os.Mkdir(configDir, 0755)
	require.NoError(t, err)

	originalWD, err := os.Getwd()
	require.NoError(t, err)

	savedEnv := make(map[string]*string, len(configEnvKeys))
	for _, key := range configEnvKeys {
		if val, ok := os.LookupEnv(key); ok {
			v := val
			savedEnv[key] = &v
		} else {
			savedEnv[key] = nil
		}
		require.NoError(t, os.Unsetenv(key))
	}

	err = os.Chdir(tempDir)
	require.NoError(t, err)

	return func() {
		_ = os.Chdir(originalWD)
		for key, val := range savedEnv {
			if val == nil {
				_ = os.Unsetenv(key)
			} else {
				_ = os.Setenv(key, *val)
			}
		}
	}
}

// createTempConfigFile creates a temporary .env file with the given content.
func createTempConfigFile(t *testing.T, filename, content string) {
	t.Helper()
	filePath := filepath.Join("config", filename)
	err := os.WriteFile(filePath, []byte(content), 0644)
	require.NoError(t, err)
}

func TestLoad(t *testing.T) {
	setRequiredEnvVars := func(t *testing.T) {
		t.Setenv("MONGO_URI", "mongodb://localhost:27017")
		t.Setenv("JWT_SECRET", "test_secret")
	}

	t.Run("loads configuration from dev file", func(t *testing.T) {
		cleanup := setupTestEnv(t)
		defer cleanup()

		// No ENV set, should default to 'development'
		devConfigContent := `
PORT=3000
MONGO_URI=mongodb://localhost:27017/devdb
JWT_SECRET=dev_secret
TOKEN_EXPIRY_HOURS=12
`
		createTempConfigFile(t, ".env.dev", devConfigContent)

		cfg := Load()

		assert.Equal(t, "development", cfg.Env)
		assert.Equal(t, "3000", cfg.Port)
		assert.Equal(t, "mongodb://localhost:27017/devdb", cfg.MongoURI)
		assert.Equal(t, "dev_secret", cfg.JWTSecret)
		assert.Equal(t, 12, cfg.TokenExpiryHours)
		// These values were not in the file, so they should use the defaults
		assert.Equal(t, DefaultMongoDBName, cfg.MongoDBName)
		assert.Equal(t, DefaultFrontendURL, cfg.FrontendURL)
		assert.Equal(t, DefaultUploadDir, cfg.UploadDir)
	})

	t.Run("loads configuration from prod file", func(t *testing.T) {
		cleanup := setupTestEnv(t)
		defer cleanup()

		t.Setenv("ENV", "production")

		prodConfigContent := `
PORT=8000
MONGO_URI=mongodb://db:27017/proddb
JWT_SECRET=prod_secret
FRONTEND_URL=https://tidytask.app
`
		createTempConfigFile(t, ".env.prod", prodConfigContent)

		cfg := Load()

		assert.Equal(t, "production", cfg.Env)
		assert.Equal(t, "8000", cfg.Port)
		assert.Equal(t, "mongodb://db:27017/proddb", cfg.MongoURI)
		assert.Equal(t, "prod_secret", cfg.JWTSecret)
		assert.Equal(t, "https://tidytask.app", cfg.FrontendURL)
		assert.Equal(t, DefaultTokenExpiryHours, cfg.TokenExpiryHours)
	})

	t.Run("uses default values when not set in file or env", func(t *testing.T) {
		cleanup := setupTestEnv(t)
		defer cleanup()

		setRequiredEnvVars(t)

		cfg := Load()

		assert.Equal(t, "development", cfg.Env)
		assert.Equal(t, DefaultPort, cfg.Port)
		assert.Equal(t, DefaultTokenExpiryHours, cfg.TokenExpiryHours)
		assert.Equal(t, DefaultSMTPPort, cfg.SMTPPort)
		assert.Empty(t, cfg.SMTPHost)
		assert.Empty(t, cfg.GoogleClientID)
	})

	t.Run("environment variables override file configuration", func(t *testing.T) {
		cleanup := setupTestEnv(t)
		defer cleanup()

		devConfigContent := `
PORT=3000
MONGO_URI=file_mongo_uri
JWT_SECRET=file_secret
`
		createTempConfigFile(t, ".env.dev", devConfigContent)

		t.Setenv("PORT", "9090")
		t.Setenv("MONGO_URI", "env_mongo_uri")
		t.Setenv("TOKEN_EXPIRY_HOURS", "48")

		cfg := Load()

		assert.Equal(t, "9090", cfg.Port)
		assert.Equal(t, "env_mongo_uri", cfg.MongoURI)
		assert.Equal(t, "file_secret", cfg.JWTSecret) // This was not overridden by env
		assert.Equal(t, 48, cfg.TokenExpiryHours)
	})
}

// TestLoad_FatalOnMissingKeys tests the fatal error handling when required keys are missing.
// It works by re-running the test in a separate process.
func TestLoad_FatalOnMissingKeys(t *testing.T) {
	testCases := map[string]string{
		"MONGO_URI":  "Missing required config: MONGO_URI",
		"JWT_SECRET": "Missing required config: JWT_SECRET",
	}

	for missingKey, expectedErr := range testCases {
		t.Run(fmt.Sprintf("missing_%s", missingKey), func(t *testing.T) {
			// This is the sub-process that will actually run the code and crash.
			if os.Getenv("GO_TEST_FATAL") == "1" {
				Load()
				return // Should not be reached
			}

			cmd := exec.Command(os.Args[0], "-test.run", t.Name())
			cmd.Env = append(os.Environ(), "GO_TEST_FATAL=1")

			// Set all required keys EXCEPT the one we're testing for.
			for key := range testCases {
				if key != missingKey {
					cmd.Env = append(cmd.Env, fmt.Sprintf("%s=some_value", key))
				} else {
					cmd.Env = append(cmd.Env, fmt.Sprintf("%s=", key))
				}
			}

			output, err := cmd.CombinedOutput()

			exitErr, ok := err.(*exec.ExitError)
			require.True(t, ok, "Expected command to exit with an error")
			assert.False(t, exitErr.Success(), "Expected command to fail")

			assert.True(t, strings.Contains(string(output), expectedErr), "Expected output to contain '%s', got '%s'", expectedErr, string(output))
		})
	}
}

func Test_getEnv(t *testing.T) {
	t.Run("returns value if env var is set", func(t *testing.T) {
		key := "TEST_GETENV_KEY"
		expectedValue := "my-test-value"
		t.Setenv(key, expectedValue)

		val := getEnv(key, "fallback")
		assert.Equal(t, expectedValue, val)
	})

	t.Run("returns fallback if env var is not set", func(t *testing.T) {
		key := "TEST_GETENV_UNSET_KEY"
		fallbackValue := "my-fallback-value"

		val := getEnv(key, fallbackValue)
		assert.Equal(t, fallbackValue, val)
	})

	t.Run("returns fallback if env var is set but empty", func(t *testing.T) {
		key := "TEST_GETENV_EMPTY_KEY"
		fallbackValue := "my-fallback-value"
		t.Setenv(key, "")

		val := getEnv(key, fallbackValue)
		assert.Equal(t, fallbackValue, val)
	})
}
