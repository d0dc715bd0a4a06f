// Package catalog loads the artist's release catalog and answers lookups
// against it.
//
// The package handles three use cases:
//
//  1. Loading the catalog JSON document into normalized releases
//  2. Picking the latest release for the homepage hero
//  3. Detail page lookups (singles, albums, album tracklists)
//
// # Loading
//
//	repo := catalog.NewRepository(client, catalogURL, logger)
//	disco, err := repo.Load(ctx)
//	if errors.Is(err, catalog.ErrFetchFailed) {
//	    // network or HTTP failure
//	}
//	if errors.Is(err, catalog.ErrInvalidShape) {
//	    // body is not a JSON array
//	}
//
// # Latest release
//
// PickLatest is a single linear scan; among releases sharing the newest
// date the first one in catalog order wins:
//
//	latest := catalog.PickLatest(disco.All)
//
// # Catalog format
//
// The document is a JSON array of loosely typed objects:
//
//	[
//	  {"id": "debut-album", "title": "Debut", "type": "album", "releaseDate": "2024-06-01", ...},
//	  {"id": "debut-01", "title": "Intro", "type": "album-track", ...}
//	]
//
// Every field is optional; values are coerced to strings once, at parse time.
package catalog
