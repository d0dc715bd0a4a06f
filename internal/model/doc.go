// Package model defines the release records shared by the rest of rtk-site.
//
// # RawRelease
//
// RawRelease mirrors one element of the catalog JSON document. All fields
// are optional strings:
//
//	raw := model.RawRelease{ID: "night-drive", Title: "Night Drive", Type: model.TypeSingle, ReleaseDate: "2024-06-01"}
//
// # Release
//
// Release embeds RawRelease and adds fields derived once at load time:
//
//	r := model.NewRelease(raw)
//	fmt.Println(r.DisplayDate) // "1st June 2024"
//	fmt.Println(r.TypeTag)     // "SINGLE"
//	fmt.Println(r.DateValue)   // 1717200000000
//
// A missing or malformed date yields DisplayDate "TBD" and DateValue 0.
//
// # Release types
//
// Only the PrimaryTypes (album, ep, single, collab) appear in the
// discography grid. Album tracks ("album-track") are kept for tracklists.
package model
