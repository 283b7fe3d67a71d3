package connect_test

import (
	"context"
	"errors"
	"testing"

	kconf "github.com/opst/extlite/pkg/configs/app"
	"github.com/opst/extlite/pkg/db/connect"
)

func TestOpen(t *testing.T) {
	t.Run("it opens sqlite", func(t *testing.T) {
		ctx := context.Background()
		database, err := connect.Open(ctx, kconf.DBConfig{Driver: "sqlite", URL: ":memory:"})
		if err != nil {
			t.Fatal(err)
		}
		defer database.Close()

		if database.Driver() != "sqlite" {
			t.Errorf("driver = %s", database.Driver())
		}
		if err := database.Ping(ctx); err != nil {
			t.Error(err)
		}
	})

	t.Run("When driver is unknown, it should be error", func(t *testing.T) {
		_, err := connect.Open(context.Background(), kconf.DBConfig{Driver: "oracle", URL: "x"})
		if !errors.Is(err, kconf.ErrInvalidConfig) {
			t.Errorf("unexpected error: %v", err)
		}
	})
}
