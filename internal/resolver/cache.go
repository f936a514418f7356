package resolver

import (
	"context"

	"github.com/rivetbuild/rivet/internal/memo"
)

type importMapLookupKey struct {
	mapIdentity *ImportMap
	request     string
}

// A CachedImportMap memoizes ImportMap lookups in a memo.Store. Lookups are
// deterministic over (map identity, request string), so caching them is
// purely an optimization; invalidation is the store's concern.
type CachedImportMap struct {
	Map   *ImportMap
	Store memo.Store
}

// Lookup behaves exactly like ImportMap.Lookup but answers repeated requests
// from the store. Dynamic requests bypass the store since they have no
// string form to key on.
func (c *CachedImportMap) Lookup(ctx context.Context, request Request) (ImportMapResult, error) {
	requestString, ok := request.RequestString()
	if !ok {
		return c.Map.Lookup(ctx, request)
	}

	key := importMapLookupKey{mapIdentity: c.Map, request: requestString}
	value, err := c.Store.Get(ctx, key, func(ctx context.Context) (interface{}, error) {
		return c.Map.Lookup(ctx, request)
	})
	if err != nil {
		return nil, err
	}
	return value.(ImportMapResult), nil
}
