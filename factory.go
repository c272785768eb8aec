package mimekit

import (
	"fmt"
	"sort"
	"sync"
)

// FetcherFactory is a function that creates a Fetcher from a config
type FetcherFactory func(cfg *Config) (Fetcher, error)

var (
	fetcherFactories = make(map[string]FetcherFactory)
	factoryMutex     sync.RWMutex
)

// RegisterFetcher registers a fetcher factory under a URL scheme.
// Sources with a matching "<scheme>://" prefix are routed to it. The
// package itself registers file, http and https.
func RegisterFetcher(scheme string, factory FetcherFactory) {
	factoryMutex.Lock()
	defer factoryMutex.Unlock()
	fetcherFactories[scheme] = factory
}

// CreateFetcher creates the fetcher registered for scheme
func CreateFetcher(scheme string, cfg *Config) (Fetcher, error) {
	factoryMutex.RLock()
	factory, exists := fetcherFactories[scheme]
	factoryMutex.RUnlock()

	if !exists {
		return nil, fmt.Errorf("%w: %s", ErrSchemeNotRegistered, scheme)
	}

	return factory(cfg)
}

// RegisteredSchemes returns the registered scheme names in sorted order
func RegisteredSchemes() []string {
	factoryMutex.RLock()
	defer factoryMutex.RUnlock()

	schemes := make([]string, 0, len(fetcherFactories))
	for s := range fetcherFactories {
		schemes = append(schemes, s)
	}
	sort.Strings(schemes)
	return schemes
}
