package resources

import "time"

//go:generate mockgen -destination=mock/mock_time_provider.go -package=mockresources -source=time_provider.go

// TimeProvider supplies the storage timestamp
type TimeProvider interface {
	Now() time.Time
}

type realTimeProvider struct{}

func (realTimeProvider) Now() time.Time {
	return time.Now().UTC()
}
