package reporter

import "context"

// Reporter labels every transcript in a folder and writes one consolidated report
type Reporter interface {
	Run(ctx context.Context, dir, output string) (Summary, error)
}
