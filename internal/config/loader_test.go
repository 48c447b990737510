package config_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/okian/olympia/internal/config"
	"github.com/smartystreets/goconvey/convey"
)

var configEnvVars = []string{
	"OLYMPIA_CONFIG",
	"OLYMPIA_ADDR",
	"OLYMPIA_API_BASE_URL",
	"OLYMPIA_PAGER_WINDOW",
	"OLYMPIA_GAMES_START_PAGE",
	"OLYMPIA_REQUEST_TIMEOUT_MS",
	"OLYMPIA_UPSTREAM_RPS",
	"OLYMPIA_LOG_LEVEL",
}

func clearConfigEnvVars() {
	for _, k := range configEnvVars {
		_ = os.Unsetenv(k)
	}
}

func createTempConfigFile(t *testing.T, content string) string {
	path := filepath.Join(t.TempDir(), "olympia.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestConfigLoader(t *testing.T) {
	convey.Convey("Given a config loader", t, func() {
		ctx := context.Background()
		clearConfigEnvVars()
		defer clearConfigEnvVars()

		convey.Convey("When loading config with defaults only", func() {
			cfg, err := config.Load(ctx)

			convey.Convey("Then it should load successfully with defaults", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.Addr, convey.ShouldEqual, ":8080")
				convey.So(cfg.PagerWindow, convey.ShouldEqual, 9)
				convey.So(cfg.UpstreamRPS, convey.ShouldEqual, 5)
			})
		})

		convey.Convey("When loading config with environment variables", func() {
			_ = os.Setenv("OLYMPIA_ADDR", ":9090")
			_ = os.Setenv("OLYMPIA_PAGER_WINDOW", "7")
			_ = os.Setenv("OLYMPIA_UPSTREAM_RPS", "2.5")
			_ = os.Setenv("OLYMPIA_API_BASE_URL", "http://localhost:4000/olympic-games")

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should override defaults with env vars", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.Addr, convey.ShouldEqual, ":9090")
				convey.So(cfg.PagerWindow, convey.ShouldEqual, 7)
				convey.So(cfg.UpstreamRPS, convey.ShouldEqual, 2.5)
				convey.So(cfg.APIBaseURL, convey.ShouldEqual, "http://localhost:4000/olympic-games")
			})
		})

		convey.Convey("When loading config with both file and environment variables", func() {
			path := createTempConfigFile(t, `
addr: ":7070"
games_start_page: 3
request_timeout_ms: 2500
log_level: debug
`)
			_ = os.Setenv("OLYMPIA_CONFIG", path)
			_ = os.Setenv("OLYMPIA_ADDR", ":6060")

			cfg, err := config.Load(ctx)

			convey.Convey("Then environment variables should override file values", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.Addr, convey.ShouldEqual, ":6060")
				convey.So(cfg.GamesStartPage, convey.ShouldEqual, 3)
				convey.So(cfg.RequestTimeoutMS, convey.ShouldEqual, 2500)
				convey.So(cfg.LogLevel, convey.ShouldEqual, "debug")
				convey.So(cfg.PagerWindow, convey.ShouldEqual, 9)
			})
		})

		convey.Convey("When loading config with invalid YAML file", func() {
			_ = os.Setenv("OLYMPIA_CONFIG", createTempConfigFile(t, `invalid: yaml: content: [`))

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should return a load error", func() {
				convey.So(cfg, convey.ShouldBeNil)
				convey.So(errors.Is(err, config.ErrLoadConfig), convey.ShouldBeTrue)
			})
		})

		convey.Convey("When loading config with non-existent file", func() {
			_ = os.Setenv("OLYMPIA_CONFIG", "/non/existent/file.yaml")

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should return an error", func() {
				convey.So(err, convey.ShouldNotBeNil)
				convey.So(cfg, convey.ShouldBeNil)
			})
		})

		convey.Convey("When loading config with empty addr", func() {
			_ = os.Setenv("OLYMPIA_ADDR", "")

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should return a validation error", func() {
				convey.So(cfg, convey.ShouldBeNil)
				convey.So(errors.Is(err, config.ErrInvalidConfig), convey.ShouldBeTrue)
				convey.So(err.Error(), convey.ShouldContainSubstring, "addr must not be empty")
			})
		})

		convey.Convey("When the pager window is even", func() {
			_ = os.Setenv("OLYMPIA_PAGER_WINDOW", "8")

			_, err := config.Load(ctx)

			convey.Convey("Then it should be rejected", func() {
				convey.So(errors.Is(err, config.ErrInvalidConfig), convey.ShouldBeTrue)
				convey.So(err.Error(), convey.ShouldContainSubstring, "pager_window")
			})
		})

		convey.Convey("When the base URL is relative", func() {
			_ = os.Setenv("OLYMPIA_API_BASE_URL", "/olympic-games")

			_, err := config.Load(ctx)

			convey.Convey("Then it should be rejected", func() {
				convey.So(errors.Is(err, config.ErrInvalidConfig), convey.ShouldBeTrue)
			})
		})

		convey.Convey("When loading config with invalid numeric environment variables", func() {
			_ = os.Setenv("OLYMPIA_PAGER_WINDOW", "not_a_number")

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should return an error", func() {
				convey.So(err, convey.ShouldNotBeNil)
				convey.So(cfg, convey.ShouldBeNil)
			})
		})
	})
}
