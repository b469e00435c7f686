// Package pagination converts listing page indexes into API offsets.
package pagination

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/twitchkit/twitchkit/config"
	"github.com/twitchkit/twitchkit/key"
)

// IndexParam is the query parameter carrying the page index.
const IndexParam = "index"

// Page describes one listing page.
type Page struct {
	Index  int
	Offset int
	Limit  int
}

// ItemsPerPage reads the page size from settings.
func ItemsPerPage(settings config.Settings) (int, error) {
	limit, err := strconv.Atoi(strings.TrimSpace(settings.Get(key.ItemsPerPage)))
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key.ItemsPerPage, err)
	}
	return limit, nil
}

// Calculate returns the page at index.
func Calculate(index int, settings config.Settings) (Page, error) {
	limit, err := ItemsPerPage(settings)
	if err != nil {
		return Page{}, err
	}
	return Page{Index: index, Offset: index * limit, Limit: limit}, nil
}

// CalculateString parses index before calculating, as route parameters arrive as text.
func CalculateString(index string, settings config.Settings) (Page, error) {
	i, err := strconv.Atoi(strings.TrimSpace(index))
	if err != nil {
		return Page{}, fmt.Errorf("%s: %w", IndexParam, err)
	}
	return Calculate(i, settings)
}

// NextPage returns a copy of query pointing at the following page.
// Queries without an index are returned unchanged.
func NextPage(query url.Values) (url.Values, error) {
	next := url.Values{}
	for k, v := range query {
		next[k] = append([]string(nil), v...)
	}

	if !query.Has(IndexParam) {
		return next, nil
	}

	index, err := strconv.Atoi(query.Get(IndexParam))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", IndexParam, err)
	}
	next.Set(IndexParam, strconv.Itoa(index+1))
	return next, nil
}
