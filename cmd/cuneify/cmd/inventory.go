package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/f3rmion/cuneify/internal/config"
	"github.com/f3rmion/cuneify/internal/cuneify"
	"github.com/f3rmion/cuneify/internal/logger"
	"github.com/f3rmion/cuneify/internal/sign"
)

// loadInventory loads the first sign inventory found on the configured
// search path.
func loadInventory(ctx context.Context, cfg *config.Config) (*sign.Inventory, error) {
	paths := cfg.InventoryPaths(getConfigDir())
	for _, path := range paths {
		if _, err := os.Stat(path); err != nil {
			logger.Debug("no inventory at %s", path)
			continue
		}

		inv, err := sign.LoadFile(ctx, path)
		if err != nil {
			return nil, err
		}
		logger.Info("loaded %d signs from %s", inv.Len(), path)
		return inv, nil
	}

	return nil, fmt.Errorf("%w: no inventory found (searched %s); run 'cuneify build' first",
		sign.ErrInventoryLoad, strings.Join(paths, ", "))
}

// loadConverter loads the inventory and prepares a converter for opts.
func loadConverter(ctx context.Context, cfg *config.Config, opts cuneify.Options) (*cuneify.Converter, error) {
	inv, err := loadInventory(ctx, cfg)
	if err != nil {
		return nil, err
	}
	return cuneify.NewConverter(inv, opts)
}
