package domain

import (
	"fmt"
	"time"
)

// CloudProvider identifies a cloud mirror of the HRRR archive.
type CloudProvider string

const (
	ProviderAzure  CloudProvider = "azure"
	ProviderAWS    CloudProvider = "aws"
	ProviderGoogle CloudProvider = "google"
)

// CloudProviders lists all providers in declaration order.
func CloudProviders() []CloudProvider {
	return []CloudProvider{ProviderAzure, ProviderAWS, ProviderGoogle}
}

// ParseCloudProvider maps a wire token to a CloudProvider.
func ParseCloudProvider(s string) (CloudProvider, error) {
	switch CloudProvider(s) {
	case ProviderAzure, ProviderAWS, ProviderGoogle:
		return CloudProvider(s), nil
	default:
		return "", fmt.Errorf("%w: cloud provider %q", ErrInvalidEnum, s)
	}
}

func (p CloudProvider) String() string { return string(p) }

// ArchiveStart returns the first date for which the provider mirrors HRRR
// output. Azure's mirror starts much later than AWS and Google.
func (p CloudProvider) ArchiveStart() time.Time {
	if p == ProviderAzure {
		return time.Date(2021, time.March, 21, 0, 0, 0, 0, time.UTC)
	}
	return time.Date(2014, time.July, 30, 0, 0, 0, 0, time.UTC)
}

// HasData reports whether the provider's mirror covers the given reference
// time.
func (p CloudProvider) HasData(referenceTime time.Time) bool {
	return !referenceTime.Before(p.ArchiveStart())
}
