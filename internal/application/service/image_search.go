package service

import "context"

// ImageSearch resolves a keyword string to a single image URL. An empty URL
// with a nil error means no match; slide generation treats that as "no
// image" rather than a failure.
type ImageSearch interface {
	Search(ctx context.Context, keywords string) (string, error)
}
