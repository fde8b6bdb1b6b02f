package sampler

import "github.com/yndnr/tabsample/internal/core/domain"

// ErrEmptyContainer is returned when a container has no present,
// non-null entry to draw. Match it with errors.Is.
var ErrEmptyContainer = domain.ErrEmptyContainer
