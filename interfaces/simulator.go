package interfaces

import (
	"context"

	"github.com/solidrace/solidrace/core/car"
)

// Simulator defines the public interface for running a race scenario.
type Simulator interface {
	// Run starts every race and blocks until all steps have fired or ctx
	// is done. It returns each car's final state.
	Run(ctx context.Context) ([]car.State, error)
}
